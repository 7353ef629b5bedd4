package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level qbtill.yaml configuration.
type Config struct {
	Statement StatementConfig `yaml:"statement"`
	Accounts  AccountsConfig  `yaml:"accounts"`
	Export    ExportConfig    `yaml:"export"`
}

// StatementConfig describes the shape of the source statement file.
type StatementConfig struct {
	// PreambleRows is the number of metadata banner rows before the
	// header row.
	PreambleRows int `yaml:"preamble_rows"`
}

// AccountsConfig enumerates the QuickBooks account names and counterparty
// labels used when generating entries. One name per category side; there is
// no general chart-of-accounts mapping.
type AccountsConfig struct {
	Till            string `yaml:"till"`
	Receivable      string `yaml:"receivable"`
	SettlementBank  string `yaml:"settlement_bank"`
	BankCharges     string `yaml:"bank_charges"`
	MerchantCharges string `yaml:"merchant_charges"`
	ChargeProvider  string `yaml:"charge_provider"`
	WalkInName      string `yaml:"walk_in_name"`
}

// ExportConfig controls IIF rendering.
type ExportConfig struct {
	// DateLayout is a Go time layout applied to every entry in a run.
	DateLayout string `yaml:"date_layout"`
}

// Load reads a qbtill.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the configuration matching the stock M-Pesa merchant
// statement and the original QuickBooks company file.
func Default() *Config {
	return &Config{
		Statement: StatementConfig{
			PreambleRows: 6,
		},
		Accounts: AccountsConfig{
			Till:            "Mpesa Till",
			Receivable:      "Accounts Receivable",
			SettlementBank:  "Diamond Trust Bank",
			BankCharges:     "Bank Service Charges",
			MerchantCharges: "Bank Service Charges:Merchant Fees",
			ChargeProvider:  "Safaricom Merchant Services",
			WalkInName:      "Walk-in Customer",
		},
		Export: ExportConfig{
			DateLayout: "01/02/2006",
		},
	}
}

// Validate checks that the configuration is usable for a conversion run.
func (c *Config) Validate() error {
	var problems []string

	if c.Statement.PreambleRows < 0 {
		problems = append(problems, "statement.preamble_rows must not be negative")
	}

	required := []struct {
		field string
		value string
	}{
		{"accounts.till", c.Accounts.Till},
		{"accounts.receivable", c.Accounts.Receivable},
		{"accounts.settlement_bank", c.Accounts.SettlementBank},
		{"accounts.bank_charges", c.Accounts.BankCharges},
		{"accounts.merchant_charges", c.Accounts.MerchantCharges},
		{"accounts.charge_provider", c.Accounts.ChargeProvider},
		{"accounts.walk_in_name", c.Accounts.WalkInName},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			problems = append(problems, r.field+" must not be blank")
		}
	}

	if layout := c.Export.DateLayout; strings.TrimSpace(layout) == "" {
		problems = append(problems, "export.date_layout must not be blank")
	} else {
		// A layout that cannot round-trip a known date would silently
		// corrupt every date in the export.
		ref := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)
		if parsed, err := time.Parse(layout, ref.Format(layout)); err != nil || !parsed.Equal(ref) {
			problems = append(problems, fmt.Sprintf("export.date_layout %q is not a usable date layout", layout))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}
