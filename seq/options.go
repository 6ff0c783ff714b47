package seq

import (
	log "github.com/sirupsen/logrus"
)

// ReservedKeyPolicy decides what Set does with a key that is also the name of
// a sequence operation.
type ReservedKeyPolicy int

const (
	ReservedKeysWarn ReservedKeyPolicy = iota
	ReservedKeysAllow
	ReservedKeysReject
)

func (p ReservedKeyPolicy) String() string {
	switch p {
	case ReservedKeysWarn:
		return "warn"
	case ReservedKeysAllow:
		return "allow"
	case ReservedKeysReject:
		return "reject"
	default:
		return "unknown"
	}
}

// FieldAccessor exposes the named fields of a stored value to FindOne and
// FindMany, replacing reflection.
type FieldAccessor func(value any) map[string]any

type options struct {
	log          *log.Entry
	reservedKeys ReservedKeyPolicy
	fields       FieldAccessor
}

type Option func(*options)

func WithLogger(logger *log.Entry) Option {
	return func(o *options) {
		if logger != nil {
			o.log = logger
		}
	}
}

func WithReservedKeyPolicy(policy ReservedKeyPolicy) Option {
	return func(o *options) {
		o.reservedKeys = policy
	}
}

func WithFieldAccessor(accessor FieldAccessor) Option {
	return func(o *options) {
		o.fields = accessor
	}
}

func newOptions(opts ...Option) *options {
	o := &options{
		log:          log.WithFields(log.Fields{"component": "keyedseq"}),
		reservedKeys: ReservedKeysWarn,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
