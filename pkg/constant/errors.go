package constant

import "errors"

// Standard business errors. Handlers translate these into HTTP status codes.
var (
	// ErrNotFound maps to 404.
	ErrNotFound = errors.New("resource not found")

	// ErrForbidden maps to 403.
	ErrForbidden = errors.New("operation not allowed")

	// ErrConflict maps to 409.
	ErrConflict = errors.New("resource conflict")

	// ErrInternalServer maps to 500.
	ErrInternalServer = errors.New("internal server error")

	// ErrBadRequest maps to 400.
	ErrBadRequest = errors.New("bad request")

	// ErrUnauthorized maps to 401.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidToken maps to 401.
	ErrInvalidToken = errors.New("invalid token")

	// ErrValidation marks input rejected before any backend call; maps to 400
	// with the specific message attached by the service.
	ErrValidation = errors.New("validation failed")

	// ErrSlugTaken is returned when a generated or supplied slug collides with
	// an existing article. The caller must disambiguate; no implicit resolution.
	ErrSlugTaken = errors.New("slug already in use")

	// ErrPartialSave marks a state where the primary entity was persisted but a
	// dependent write (tag associations) failed. The primary write is not rolled
	// back; retrying the dependent step is safe.
	ErrPartialSave = errors.New("article saved but tag update failed")
)
