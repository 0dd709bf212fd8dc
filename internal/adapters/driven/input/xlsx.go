package input

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/litigio-labs/consulta-cli/internal/core/domain"
	"github.com/litigio-labs/consulta-cli/internal/core/ports/driven"
	"github.com/litigio-labs/consulta-cli/internal/logger"
)

// identifier cells live in column A, data starting after the header row.
const (
	identifierColumn = "A"
	firstDataRow     = 2
)

// Ensure XLSXReader implements the interface.
var _ driven.IdentifierReader = (*XLSXReader)(nil)

// XLSXReader reads filing identifiers from an Excel workbook: first
// sheet, column A, one identifier per row starting at row 2. The first
// blank cell ends the list, matching how operators maintain these
// workbooks (a contiguous block under a header).
type XLSXReader struct{}

// NewXLSXReader creates an XLSX identifier reader.
func NewXLSXReader() *XLSXReader {
	return &XLSXReader{}
}

// Read returns the valid identifiers found in the workbook at path, in
// row order. Rows that fail identifier validation are dropped with a
// logged warning; a bad row never aborts the run. The error is
// domain.ErrNoIdentifiers when nothing valid remains.
func (r *XLSXReader) Read(path string) ([]string, error) {
	valid, invalid, err := r.Scan(path)
	if err != nil {
		return nil, err
	}

	for _, raw := range invalid {
		logger.Warn("dropping invalid identifier %q from %s", raw, path)
	}
	if len(valid) == 0 {
		return nil, fmt.Errorf("%w in %s", domain.ErrNoIdentifiers, path)
	}

	logger.Info("read %d identifiers from %s (%d dropped)", len(valid), path, len(invalid))
	return valid, nil
}

// Scan reads every identifier cell in the workbook at path and splits
// them into valid and invalid, in row order and without logging. Cells
// are trimmed; Excel numeric formatting artifacts (a trailing ".0")
// are stripped before validation.
func (r *XLSXReader) Scan(path string) (valid, invalid []string, err error) {
	workbook, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("workbook %s has no sheets", path)
	}
	sheet := sheets[0]

	for row := firstDataRow; ; row++ {
		cell, err := workbook.GetCellValue(sheet, fmt.Sprintf("%s%d", identifierColumn, row))
		if err != nil {
			return nil, nil, fmt.Errorf("read cell %s%d: %w", identifierColumn, row, err)
		}

		value := strings.TrimSpace(cell)
		if value == "" {
			break
		}
		// Numeric cells sometimes render with a float tail.
		value = strings.TrimSuffix(value, ".0")

		identifier, verr := domain.ValidateIdentifier(value)
		if verr != nil {
			invalid = append(invalid, value)
			continue
		}
		valid = append(valid, identifier)
	}

	return valid, invalid, nil
}
