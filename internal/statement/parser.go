package statement

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// Parser reads one statement file format into a raw cell grid.
type Parser interface {
	Parse(r io.Reader) ([][]string, error)
	Format() string
}

// Registry holds parsers keyed by file extension.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser under one or more extensions. Panics on duplicates.
func (r *Registry) Register(p Parser, exts ...string) {
	for _, ext := range exts {
		key := strings.ToLower(ext)
		if _, ok := r.parsers[key]; ok {
			panic("duplicate parser extension: " + key)
		}
		r.parsers[key] = p
	}
}

// ForFile returns the parser for a filename's extension, or nil.
func (r *Registry) ForFile(filename string) Parser {
	return r.parsers[strings.ToLower(filepath.Ext(filename))]
}

// DefaultRegistry returns a registry with all built-in statement parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&CSVParser{}, ".csv")
	r.Register(&XLSXParser{}, ".xlsx")
	r.Register(&XLSParser{}, ".xls")
	return r
}

// CSVParser reads comma-delimited statement exports. Field counts vary
// between the preamble and the data block, so per-record checking is off.
type CSVParser struct{}

// Format returns the parser name.
func (p *CSVParser) Format() string { return "csv" }

// Parse reads the full CSV into a cell grid.
func (p *CSVParser) Parse(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	return records, nil
}

// XLSXParser reads the first sheet of an Office Open XML workbook.
type XLSXParser struct{}

// Format returns the parser name.
func (p *XLSXParser) Format() string { return "xlsx" }

// Parse reads the first sheet into a cell grid.
func (p *XLSXParser) Parse(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	return rows, nil
}

// xlsMaxRows bounds legacy workbook reads; merchant statements are a few
// thousand rows at most.
const xlsMaxRows = 1 << 16

// XLSParser reads the first sheet of a legacy BIFF workbook.
type XLSParser struct{}

// Format returns the parser name.
func (p *XLSParser) Format() string { return "xls" }

// Parse reads the first sheet into a cell grid.
func (p *XLSParser) Parse(r io.Reader) ([][]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading workbook: %w", err)
	}

	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	return wb.ReadAllCells(xlsMaxRows), nil
}
