package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasva-dev/kasva/internal/ledger"
	"github.com/kasva-dev/kasva/internal/normalize"
)

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	cfg := Default("BKPSDM Kabupaten Contoh")
	cfg.Cashiers = []string{"Anik", "Erna", "Indah"}

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), FileName))
	assert.Error(t, err)
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("office: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestDefault_DeterministicPolicy(t *testing.T) {
	cfg := Default("X")

	mode, err := cfg.Ledger.GroupMode()
	require.NoError(t, err)
	assert.Equal(t, ledger.GroupByCategory, mode)

	policy, err := cfg.Ledger.Policy()
	require.NoError(t, err)
	assert.Equal(t, ledger.PolicyPerGroup, policy)

	loc, err := cfg.Ledger.Locale()
	require.NoError(t, err)
	assert.Equal(t, normalize.LocaleID, loc)

	assert.Equal(t, ledger.DefaultGraceDays, cfg.Ledger.GracePeriodDays)
}

func TestLedgerConfig_EmptyDefaults(t *testing.T) {
	// Unset fields resolve to the documented defaults, never error.
	var lc LedgerConfig

	mode, err := lc.GroupMode()
	require.NoError(t, err)
	assert.Equal(t, ledger.GroupByCategory, mode)

	policy, err := lc.Policy()
	require.NoError(t, err)
	assert.Equal(t, ledger.PolicyPerGroup, policy)
}

func TestLedgerConfig_Unknown(t *testing.T) {
	lc := LedgerConfig{Grouping: "by-vibes", BalancePolicy: "yolo", MoneyLocale: "fr"}

	_, err := lc.GroupMode()
	assert.Error(t, err)
	_, err = lc.Policy()
	assert.Error(t, err)
	_, err = lc.Locale()
	assert.Error(t, err)
}
