// Package convert is the surface consumed by the upload UI: raw statement
// bytes in, a finished IIF buffer plus display totals out.
package convert

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tillworks/qbtill/internal/config"
	"github.com/tillworks/qbtill/internal/iif"
	"github.com/tillworks/qbtill/internal/ledger"
	"github.com/tillworks/qbtill/internal/statement"
)

// Result is one successful conversion run.
type Result struct {
	RunID      string
	IIF        []byte
	EntryCount int
	Totals     ledger.Totals
	Preview    statement.Preview
}

// Converter runs the statement-to-IIF pipeline. It holds no mutable state;
// the same input always yields a byte-identical IIF buffer.
type Converter struct {
	cfg *config.Config
	log zerolog.Logger
}

// New creates a Converter. The config must already be validated.
func New(cfg *config.Config, log zerolog.Logger) *Converter {
	return &Converter{cfg: cfg, log: log}
}

// Convert runs one statement through load, classify, aggregate, generate,
// and serialize. Schema and parse failures come back as their typed errors;
// anything unexpected is caught here and reported as a generic conversion
// failure rather than escaping to the collaborator.
func (c *Converter) Convert(raw []byte, filename string) (result *Result, err error) {
	runID := uuid.NewString()
	log := c.log.With().Str("run_id", runID).Str("file", filename).Logger()

	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("conversion failed")
			result = nil
			err = fmt.Errorf("conversion failed unexpectedly: %v", r)
		}
	}()

	rows, preview, err := statement.Load(raw, filename, c.cfg.Statement.PreambleRows)
	if err != nil {
		log.Warn().Err(err).Msg("statement rejected")
		return nil, err
	}
	log.Debug().Int("rows", len(rows)).Int("columns", preview.ColumnCount).Msg("statement loaded")

	entries := ledger.NewGenerator(c.cfg.Accounts).Entries(rows)
	if verrs := ledger.Validate(entries); len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		return nil, fmt.Errorf("generated ledger failed validation: %s", strings.Join(msgs, "; "))
	}

	totals := ledger.SumTotals(rows)
	buf := iif.Marshal(entries, c.cfg.Export.DateLayout)

	log.Info().
		Int("entries", len(entries)).
		Str("paid_in", totals.PaidIn.StringFixed(2)).
		Str("withdrawn", totals.Withdrawn.StringFixed(2)).
		Str("merchant_charges", totals.MerchantCharges.StringFixed(2)).
		Msg("statement converted")

	return &Result{
		RunID:      runID,
		IIF:        buf,
		EntryCount: len(entries),
		Totals:     totals,
		Preview:    preview,
	}, nil
}
