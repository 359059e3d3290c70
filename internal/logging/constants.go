package logging

// Standardized field names for structured logging. Using the same keys
// everywhere keeps log output easy to filter and aggregate.
const (
	FieldFile       = "file_path"
	FieldSource     = "source"
	FieldRow        = "row"
	FieldColumn     = "column"
	FieldCategory   = "category"
	FieldKeyword    = "keyword"
	FieldReason     = "reason"
	FieldCount      = "count"
	FieldDelimiter  = "delimiter"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
)
