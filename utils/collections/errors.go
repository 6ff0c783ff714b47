package collections

import "errors"

// Absence and duplication are reported through these values; callers that
// only care about presence use Contains.
var (
	ErrValueExisted    = errors.New("value existed")
	ErrValueNotExisted = errors.New("value not existed")
)
