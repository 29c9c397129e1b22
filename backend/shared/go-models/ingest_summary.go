package models

// RowError records a skipped ingestion row. Row is 1-based over data rows.
type RowError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

// IngestSummary reports the outcome of one ingestion batch. Requirements are
// append-only while operators are upserted by name.
type IngestSummary struct {
	TotalRows           int        `json:"total_rows"`
	CreatedOperators    int        `json:"created_operators"`
	UpdatedOperators    int        `json:"updated_operators"`
	CreatedRequirements int        `json:"created_requirements"`
	Errors              []RowError `json:"errors"`
}
