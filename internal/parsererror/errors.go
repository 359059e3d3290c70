// Package parsererror defines the typed errors returned by the statement
// ingestion engine. Only workbook-level failures ever reach the caller;
// row-level problems are absorbed by the parser.
package parsererror

import "fmt"

// WorkbookError is the single fatal error class: the input bytes could not
// be decoded into a grid at all.
type WorkbookError struct {
	Format string
	Err    error
}

func (e *WorkbookError) Error() string {
	if e.Format != "" {
		return fmt.Sprintf("cannot decode workbook as %s: %v", e.Format, e.Err)
	}
	return fmt.Sprintf("cannot decode workbook: %v", e.Err)
}

func (e *WorkbookError) Unwrap() error {
	return e.Err
}

// ParseError represents a field-level decoding failure. It is used for
// diagnostics only and never aborts a conversion.
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvalidFormatError represents input that decoded into a grid but does not
// look like a bank statement (for example an empty sheet).
type InvalidFormatError struct {
	FilePath string
	Msg      string
}

func (e *InvalidFormatError) Error() string {
	if e.FilePath == "" {
		return fmt.Sprintf("invalid statement format: %s", e.Msg)
	}
	return fmt.Sprintf("invalid statement format in '%s': %s", e.FilePath, e.Msg)
}
