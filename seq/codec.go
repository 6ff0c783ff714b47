package seq

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/tuannh982/keyedseq/utils/collections"
	"gopkg.in/yaml.v3"

	jsoniter "github.com/json-iterator/go"
)

var jsonConfig = jsoniter.ConfigCompatibleWithStandardLibrary

// MarshalJSON encodes s as a JSON object with members in insertion order.
func (s *KeyedSequence[V]) MarshalJSON() ([]byte, error) {
	stream := jsonConfig.BorrowStream(nil)
	defer jsonConfig.ReturnStream(stream)
	stream.WriteObjectStart()
	first := true
	s.store().Range(func(k string, v V) bool {
		if !first {
			stream.WriteMore()
		}
		first = false
		stream.WriteObjectField(k)
		stream.WriteVal(v)
		return stream.Error == nil
	})
	stream.WriteObjectEnd()
	if stream.Error != nil {
		return nil, errors.Wrap(stream.Error, "marshal keyed sequence")
	}
	buf := make([]byte, len(stream.Buffer()))
	copy(buf, stream.Buffer())
	return buf, nil
}

// UnmarshalJSON replaces the content of s with the members of a JSON object,
// in document order. A repeated member keeps its first position and last value.
// On error, including truncated input, s is left unchanged.
func (s *KeyedSequence[V]) UnmarshalJSON(data []byte) error {
	it := jsonConfig.BorrowIterator(data)
	defer jsonConfig.ReturnIterator(it)
	switch next := it.WhatIsNext(); next {
	case jsoniter.NilValue:
		return nil
	case jsoniter.ObjectValue:
	default:
		return errors.Wrapf(ErrNotObject, "json value type %d", next)
	}
	entries := collections.NewLinkedHashMap[string, V]()
	var admitErr error
	it.ReadMapCB(func(it *jsoniter.Iterator, key string) bool {
		if admitErr = s.admit(key); admitErr != nil {
			return false
		}
		var v V
		it.ReadVal(&v)
		if it.Error != nil {
			return false
		}
		_ = entries.Put(key, v, true)
		return true
	})
	if admitErr != nil {
		return admitErr
	}
	if it.Error != nil {
		return errors.Wrap(it.Error, "unmarshal keyed sequence")
	}
	s.entries = entries
	return nil
}

// MarshalYAML encodes s as a YAML mapping with keys in insertion order.
func (s *KeyedSequence[V]) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{
		Kind: yaml.MappingNode,
		Tag:  "!!map",
	}
	var err error
	s.store().Range(func(k string, v V) bool {
		valueNode := &yaml.Node{}
		if err = valueNode.Encode(v); err != nil {
			err = errors.Wrapf(err, "marshal key %q", k)
			return false
		}
		keyNode := &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!str",
			Value: k,
		}
		node.Content = append(node.Content, keyNode, valueNode)
		return true
	})
	if err != nil {
		return nil, err
	}
	return node, nil
}

// UnmarshalYAML replaces the content of s with a YAML mapping, in document order.
func (s *KeyedSequence[V]) UnmarshalYAML(value *yaml.Node) error {
	for value.Kind == yaml.AliasNode && value.Alias != nil {
		value = value.Alias
	}
	if value.Kind == yaml.ScalarNode && value.Tag == "!!null" {
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return errors.Wrapf(ErrNotObject, "yaml node kind %d at line %d", value.Kind, value.Line)
	}
	entries := collections.NewLinkedHashMap[string, V]()
	for i := 0; i+1 < len(value.Content); i += 2 {
		var key string
		if err := value.Content[i].Decode(&key); err != nil {
			return errors.Wrapf(err, "decode key at line %d", value.Content[i].Line)
		}
		if err := s.admit(key); err != nil {
			return err
		}
		var v V
		if err := value.Content[i+1].Decode(&v); err != nil {
			return errors.Wrapf(err, "decode value of key %q", key)
		}
		_ = entries.Put(key, v, true)
	}
	s.entries = entries
	return nil
}

func (s *KeyedSequence[V]) String() string {
	parts := make([]string, 0, s.Len())
	s.store().Range(func(k string, v V) bool {
		parts = append(parts, fmt.Sprintf("%s:%v", k, v))
		return true
	})
	return fmt.Sprintf("{%s}", strings.Join(parts, ", "))
}
