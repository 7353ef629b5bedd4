package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 6, cfg.Statement.PreambleRows)
	assert.Equal(t, "Mpesa Till", cfg.Accounts.Till)
	assert.Equal(t, "Accounts Receivable", cfg.Accounts.Receivable)
	assert.Equal(t, "Diamond Trust Bank", cfg.Accounts.SettlementBank)
	assert.Equal(t, "01/02/2006", cfg.Export.DateLayout)
	assert.NoError(t, cfg.Validate())
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "qbtill.yaml")

	cfg := Default()
	cfg.Accounts.Till = "KCB Till"
	cfg.Statement.PreambleRows = 3
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qbtill.yaml")
	require.NoError(t, os.WriteFile(path, []byte("accounts: [not a map"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestValidate_BlankAccount(t *testing.T) {
	cfg := Default()
	cfg.Accounts.SettlementBank = "   "

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accounts.settlement_bank")
}

func TestValidate_NegativePreamble(t *testing.T) {
	cfg := Default()
	cfg.Statement.PreambleRows = -1

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "preamble_rows")
}

func TestValidate_DateLayout(t *testing.T) {
	cfg := Default()

	cfg.Export.DateLayout = "02/01/2006"
	assert.NoError(t, cfg.Validate())

	cfg.Export.DateLayout = "not a layout"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "date_layout")

	cfg.Export.DateLayout = ""
	assert.Error(t, cfg.Validate())
}
