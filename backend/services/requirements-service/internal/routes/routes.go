package routes

const (
	// Health
	Health = "/health"

	// Matching
	MatchingRun = "/api/v1/matching/run"

	// Ingestion
	OperatorCSVRequirements = "/api/v1/operator-csv/requirements"

	// Administration
	Operators    = "/api/v1/operators"
	OperatorByID = "/api/v1/operators/{id}"

	Requirements    = "/api/v1/requirements"
	RequirementByID = "/api/v1/requirements/{id}"
)
