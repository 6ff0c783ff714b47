package seq

import "github.com/pkg/errors"

var (
	ErrReservedKey = errors.New("reserved operation name used as key")
	ErrNotObject   = errors.New("encoded value is not an object")
)
