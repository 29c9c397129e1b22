package utils

import "math"

const (
	OrganizationName = "Acquire Intel"

	CORSLowSecurityAllowedOriginLocalhost = "http://localhost:*"

	// Multipart uploads larger than this are rejected before parsing.
	MaxCSVUploadBytes = 5 << 20

	DefaultRecentRequirements = 20
	MaxRecentRequirements     = 200

	// Column limits of operator_requirement_profiles.
	MaxIntegerColumn   = math.MaxInt32 // INTEGER
	FrontageUpperBound = 100_000_000   // NUMERIC(10,2), exclusive
	FrontageScale      = 2
)
