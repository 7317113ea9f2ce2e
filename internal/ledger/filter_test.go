package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasva-dev/kasva/internal/model"
)

func TestFilter_Empty(t *testing.T) {
	txns := []model.Transaction{
		tx(date(2024, 1, 1), "UMPEG", "Anik", "100", "0"),
		tx(time.Time{}, "RENVAL", "Erna", "200", "0"),
	}

	got := Filter{}.Apply(txns)
	assert.Len(t, got, 2, "zero filter matches everything, undated included")
}

func TestFilter_Category(t *testing.T) {
	txns := []model.Transaction{
		tx(date(2024, 1, 1), "UMPEG", "", "100", "0"),
		tx(date(2024, 1, 2), "RENVAL", "", "200", "0"),
	}

	got := Filter{Category: "UMPEG"}.Apply(txns)
	require.Len(t, got, 1)
	assert.Equal(t, "UMPEG", got[0].Category)
}

func TestFilter_Cashier(t *testing.T) {
	txns := []model.Transaction{
		tx(date(2024, 1, 1), "UMPEG", "Anik", "100", "0"),
		tx(date(2024, 1, 2), "UMPEG", "Erna", "200", "0"),
	}

	got := Filter{Cashier: "Erna"}.Apply(txns)
	require.Len(t, got, 1)
	assert.Equal(t, "Erna", got[0].Cashier)
}

func TestFilter_YearExcludesUndated(t *testing.T) {
	txns := []model.Transaction{
		tx(date(2023, 12, 31), "UMPEG", "", "100", "0"),
		tx(date(2024, 1, 1), "UMPEG", "", "200", "0"),
		tx(time.Time{}, "UMPEG", "", "300", "0"),
	}

	got := Filter{Year: 2024}.Apply(txns)
	require.Len(t, got, 1)
	assert.Equal(t, date(2024, 1, 1), got[0].Date)
}

func TestFilter_DateRangeInclusive(t *testing.T) {
	txns := []model.Transaction{
		tx(date(2024, 1, 1), "UMPEG", "", "1", "0"),
		tx(date(2024, 1, 15), "UMPEG", "", "2", "0"),
		tx(date(2024, 1, 31), "UMPEG", "", "3", "0"),
		tx(date(2024, 2, 1), "UMPEG", "", "4", "0"),
	}

	got := Filter{From: date(2024, 1, 15), To: date(2024, 1, 31)}.Apply(txns)
	require.Len(t, got, 2)
	assert.Equal(t, date(2024, 1, 15), got[0].Date)
	assert.Equal(t, date(2024, 1, 31), got[1].Date)
}

func TestFilter_PreservesOrderAndInput(t *testing.T) {
	txns := []model.Transaction{
		tx(date(2024, 1, 2), "UMPEG", "", "2", "0"),
		tx(date(2024, 1, 1), "UMPEG", "", "1", "0"),
	}

	got := Filter{Year: 2024}.Apply(txns)
	require.Len(t, got, 2)
	assert.Equal(t, date(2024, 1, 2), got[0].Date, "filter must not reorder")
	assert.Len(t, txns, 2)
}
