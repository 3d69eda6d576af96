package apierror

// Error type URIs following the urn:horizon:error:* pattern.
// These are used as the "type" field in RFC 9457 Problem Details.
const (
	// TypeValidation indicates request validation failed (400)
	TypeValidation = "urn:horizon:error:validation"

	// TypeNotFound indicates the requested resource was not found (404)
	TypeNotFound = "urn:horizon:error:not_found"

	// TypeRateLimit indicates too many requests (429)
	TypeRateLimit = "urn:horizon:error:rate_limit"

	// TypeUnauthorized indicates missing or invalid authentication (401)
	TypeUnauthorized = "urn:horizon:error:unauthorized"

	// TypeInternal indicates an unexpected server error (500)
	TypeInternal = "urn:horizon:error:internal"

	// TypeInvalidRange indicates an unsupported analytics time range (400)
	TypeInvalidRange = "urn:horizon:error:invalid_range"

	// TypeBadRequest indicates a malformed or invalid request (400)
	TypeBadRequest = "urn:horizon:error:bad_request"
)

// Titles for each error type - human-readable summaries
const (
	TitleValidation   = "Validation Error"
	TitleNotFound     = "Resource Not Found"
	TitleRateLimit    = "Rate Limit Exceeded"
	TitleUnauthorized = "Authentication Required"
	TitleInternal     = "Internal Server Error"
	TitleInvalidRange = "Invalid Time Range"
	TitleBadRequest   = "Bad Request"
)
