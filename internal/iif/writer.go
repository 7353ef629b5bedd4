// Package iif renders ledger entries as a QuickBooks IIF exchange buffer.
package iif

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/tillworks/qbtill/internal/model"
)

// Field order declared by the header lines and followed by every data line.
const fieldOrder = "TRNSTYPE\tDATE\tACCNT\tNAME\tAMOUNT\tMEMO"

const (
	headerTrns = "!TRNS\t" + fieldOrder
	headerSpl  = "!SPL\t" + fieldOrder
	headerEnd  = "!ENDTRNS"
	terminator = "ENDTRNS"
)

// Marshal renders entries into an IIF buffer. Dates use dateLayout for every
// entry in the run; amounts carry exactly two fractional digits. Output is a
// pure function of its inputs.
func Marshal(entries []model.LedgerEntry, dateLayout string) []byte {
	var buf bytes.Buffer
	// bytes.Buffer never fails; Write's error path exists for real writers.
	_ = Write(&buf, entries, dateLayout)
	return buf.Bytes()
}

// Write renders entries to w. The three lines of one entry are emitted
// together: a terminator never appears without its TRNS/SPL pair, and
// entries never interleave.
func Write(w io.Writer, entries []model.LedgerEntry, dateLayout string) error {
	for _, line := range []string{headerTrns, headerSpl, headerEnd} {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("writing IIF header: %w", err)
		}
	}

	for i, e := range entries {
		date := e.Date.Format(dateLayout)
		lines := []string{
			join("TRNS", string(e.Type), date, e.Account, e.Name, e.Amount.StringFixed(2), e.Memo),
			join("SPL", string(e.Type), date, e.SplitAccount, e.Name, e.SplitAmount().StringFixed(2), e.Memo),
			terminator,
		}
		for _, line := range lines {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return fmt.Errorf("writing entry %d: %w", i, err)
			}
		}
	}
	return nil
}

func join(fields ...string) string {
	for i, f := range fields {
		fields[i] = sanitize(f)
	}
	return strings.Join(fields, "\t")
}

// sanitize keeps free text from breaking the tab/newline framing.
func sanitize(s string) string {
	r := strings.NewReplacer("\t", " ", "\r", " ", "\n", " ")
	return r.Replace(s)
}
