package mobility

import "errors"

var (
	ErrInvalidCoordinate  = errors.New("invalid coordinate")
	ErrOfficerNotFound    = errors.New("officer not found")
	ErrMalformedSnapshots = errors.New("malformed snapshot list")
)
