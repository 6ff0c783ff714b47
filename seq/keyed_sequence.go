// Package seq provides KeyedSequence, an insertion-ordered string-keyed map
// with array-style operations: positional access, sorting, pagination,
// filtering and lookup by field values.
//
// A KeyedSequence is not safe for concurrent use.
package seq

import (
	"github.com/pkg/errors"
	"github.com/tuannh982/keyedseq/utils/collections"

	log "github.com/sirupsen/logrus"
)

var reservedNames = collections.NewStringSet(
	"toArray",
	"toMap",
	"getLength",
	"getKeys",
	"getValues",
	"forEach",
	"sortBy",
	"paginate",
	"filter",
	"find",
	"findIndex",
	"findOne",
	"findMany",
	"atKey",
	"at",
)

// IsReserved reports whether name is one of the operation names of the
// sequence API. Such names are legal keys, subject to ReservedKeyPolicy.
func IsReserved(name string) bool {
	return reservedNames.Contains(name)
}

// KeyedSequence maps unique string keys to values of type V in insertion
// order. The zero value is an empty sequence ready to use.
type KeyedSequence[V any] struct {
	entries collections.Map[string, V]
	opts    *options
}

func New[V any](opts ...Option) *KeyedSequence[V] {
	return &KeyedSequence[V]{
		entries: collections.NewLinkedHashMap[string, V](),
		opts:    newOptions(opts...),
	}
}

// From wraps m without copying it. The sequence owns m afterwards.
func From[V any](m collections.Map[string, V], opts ...Option) *KeyedSequence[V] {
	if m == nil {
		m = collections.NewLinkedHashMap[string, V]()
	}
	return &KeyedSequence[V]{
		entries: m,
		opts:    newOptions(opts...),
	}
}

func (s *KeyedSequence[V]) store() collections.Map[string, V] {
	if s.entries == nil {
		s.entries = collections.NewLinkedHashMap[string, V]()
	}
	return s.entries
}

func (s *KeyedSequence[V]) config() *options {
	if s.opts == nil {
		s.opts = newOptions()
	}
	return s.opts
}

func (s *KeyedSequence[V]) logger() *log.Entry {
	return s.config().log
}

// derive returns an empty sequence sharing the configuration of s.
func (s *KeyedSequence[V]) derive() *KeyedSequence[V] {
	return &KeyedSequence[V]{
		entries: collections.NewLinkedHashMap[string, V](),
		opts:    s.config(),
	}
}

func (s *KeyedSequence[V]) put(key string, value V) {
	_ = s.store().Put(key, value, true)
}

func (s *KeyedSequence[V]) admit(key string) error {
	if !IsReserved(key) {
		return nil
	}
	switch s.config().reservedKeys {
	case ReservedKeysReject:
		return errors.Wrapf(ErrReservedKey, "key %q", key)
	case ReservedKeysWarn:
		s.logger().WithField("key", key).Warn("reserved operation name used as data key")
	}
	return nil
}

func (s *KeyedSequence[V]) Get(key string) (v V, ok bool) {
	v, err := s.store().Get(key)
	if err != nil {
		return v, false
	}
	return v, true
}

// Set stores value under key. A new key is appended, an existing key keeps
// its position. It fails only with ErrReservedKey under ReservedKeysReject.
func (s *KeyedSequence[V]) Set(key string, value V) error {
	if err := s.admit(key); err != nil {
		return err
	}
	s.put(key, value)
	return nil
}

func (s *KeyedSequence[V]) Has(key string) bool {
	return s.store().Contains(key)
}

// Delete is a no-op for a missing key.
func (s *KeyedSequence[V]) Delete(key string) {
	_ = s.store().Delete(key)
}

// Keys enumerates the data keys in insertion order.
func (s *KeyedSequence[V]) Keys() []string {
	return s.store().Keys()
}
