package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasva-dev/kasva/internal/model"
	"github.com/kasva-dev/kasva/internal/normalize"
)

func testTx(d time.Time, category, desc, umk string) model.Transaction {
	return model.Transaction{
		Date:         d,
		Category:     category,
		Description:  desc,
		Disbursement: decimal.RequireFromString(umk),
		Settlement:   decimal.Zero,
	}
}

func TestService_LoadMissingFile(t *testing.T) {
	svc := NewService(filepath.Join(t.TempDir(), "cashflow.csv"), normalize.LocaleID)

	txns, err := svc.Load()
	require.NoError(t, err)
	assert.Empty(t, txns)
}

func TestService_AppendCreatesFileWithHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cashflow.csv")
	svc := NewService(path, normalize.LocaleID)

	err := svc.Append(testTx(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), "UMPEG", "0001/UMPEG", "1500000"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), Header)

	txns, err := svc.Load()
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "UMPEG", txns[0].Category)
	assert.True(t, txns[0].Disbursement.Equal(decimal.RequireFromString("1500000")))
}

func TestService_AppendToExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cashflow.csv")
	svc := NewService(path, normalize.LocaleID)

	require.NoError(t, svc.Append(testTx(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), "UMPEG", "0001/UMPEG", "1000")))
	require.NoError(t, svc.Append(testTx(time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), "UMPEG", "0002/UMPEG", "2000")))

	txns, err := svc.Load()
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.Equal(t, "0002/UMPEG", txns[1].Description)
}

func TestService_LoadSchemaError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cashflow.csv")
	require.NoError(t, os.WriteFile(path, []byte("tanggal,jumlah\n01/01/2024,1000\n"), 0o644))

	svc := NewService(path, normalize.LocaleID)
	_, err := svc.Load()
	require.Error(t, err)

	var schemaErr *SchemaError
	assert.ErrorAs(t, err, &schemaErr, "schema failure must stay distinguishable")
}

func TestService_Init(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "cashflow.csv")
	svc := NewService(path, normalize.LocaleID)

	require.NoError(t, svc.Init())

	txns, err := svc.Load()
	require.NoError(t, err)
	assert.Empty(t, txns)

	assert.Error(t, svc.Init(), "second init must refuse to clobber")
}
