package grid

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"fjacquet/xlsx-csv/internal/parsererror"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// Magic signatures used to pick a workbook reader.
var (
	zipMagic = []byte{0x50, 0x4b, 0x03, 0x04}                         // .xlsx (zip container)
	oleMagic = []byte{0xd0, 0xcf, 0x11, 0xe0, 0xa1, 0xb1, 0x1a, 0xe1} // legacy .xls (OLE compound file)
)

// Decode turns raw spreadsheet bytes into a Grid. The format is chosen by
// content signature: zip container means .xlsx, OLE compound file means
// legacy .xls, anything else is treated as delimiter-separated text.
// Decoding failures are fatal and abort the whole conversion.
func Decode(data []byte) (Grid, error) {
	if len(data) == 0 {
		return nil, &parsererror.WorkbookError{Err: errors.New("empty input")}
	}

	switch {
	case bytes.HasPrefix(data, zipMagic):
		return decodeXLSX(data)
	case bytes.HasPrefix(data, oleMagic):
		return decodeXLS(data)
	default:
		return decodeCSV(data)
	}
}

// decodeXLSX reads the first sheet of an .xlsx workbook. Raw cell values are
// requested so numeric cells (including serial dates) come back unformatted.
func decodeXLSX(data []byte) (Grid, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, &parsererror.WorkbookError{Format: "xlsx", Err: err}
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &parsererror.WorkbookError{Format: "xlsx", Err: errors.New("workbook has no sheets")}
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, &parsererror.WorkbookError{Format: "xlsx", Err: err}
	}

	if len(rows) == 0 {
		return nil, &parsererror.InvalidFormatError{Msg: "first sheet has no rows"}
	}

	g := make(Grid, 0, len(rows))
	for _, r := range rows {
		g = append(g, rowFromStrings(r))
	}
	return g, nil
}

// decodeXLS reads the first sheet of a legacy .xls workbook.
func decodeXLS(data []byte) (Grid, error) {
	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, &parsererror.WorkbookError{Format: "xls", Err: err}
	}
	if wb.NumSheets() == 0 {
		return nil, &parsererror.WorkbookError{Format: "xls", Err: errors.New("workbook has no sheets")}
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, &parsererror.WorkbookError{Format: "xls", Err: errors.New("first sheet is unreadable")}
	}

	g := make(Grid, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			g = append(g, Row{})
			continue
		}
		values := make([]string, 0, row.LastCol())
		for col := 0; col < row.LastCol(); col++ {
			values = append(values, row.Col(col))
		}
		g = append(g, rowFromStrings(values))
	}
	return g, nil
}

// decodeCSV handles text exports. Many banks label these .xls or .csv
// interchangeably, so the delimiter is sniffed from the first line.
func decodeCSV(data []byte) (Grid, error) {
	text := string(data)
	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = sniffDelimiter(text)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var g Grid
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &parsererror.WorkbookError{
				Format: "csv",
				Err:    fmt.Errorf("not a spreadsheet and not parseable as delimited text: %w", err),
			}
		}
		g = append(g, rowFromStrings(record))
	}
	if len(g) == 0 {
		return nil, &parsererror.InvalidFormatError{Msg: "no rows decoded"}
	}
	return g, nil
}

// sniffDelimiter picks the most frequent candidate separator in the first
// non-empty line. Comma wins ties.
func sniffDelimiter(text string) rune {
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		best, bestCount := ',', strings.Count(line, ",")
		for _, cand := range []rune{';', '\t'} {
			if c := strings.Count(line, string(cand)); c > bestCount {
				best, bestCount = cand, c
			}
		}
		return best
	}
	return ','
}
