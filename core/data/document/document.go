// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package document provides a JSON-like structured document built on the
// protobuf Struct type. Documents marshal to JSON and to binary protobuf.
package document

import (
	"bytes"
	"math"
	"sort"
	"strconv"

	"github.com/golang/protobuf/jsonpb"
	"github.com/golang/protobuf/proto"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/ValveSoftware/vogl-sub006/core/fault"
)

const (
	// ErrMissingKey is the cause of errors for absent keys and indices.
	ErrMissingKey = fault.Const("Missing document key")
	// ErrWrongType is the cause of errors for values of an unexpected type.
	ErrWrongType = fault.Const("Document value has the wrong type")
)

// Node is an object node of a document.
type Node struct {
	s *structpb.Struct
}

// Array is an array node of a document.
type Array struct {
	l *structpb.ListValue
}

// New returns an empty object node.
func New() *Node {
	return &Node{&structpb.Struct{Fields: map[string]*structpb.Value{}}}
}

func wrap(s *structpb.Struct) *Node {
	if s.Fields == nil {
		s.Fields = map[string]*structpb.Value{}
	}
	return &Node{s}
}

// Proto returns the underlying protobuf message.
func (n *Node) Proto() *structpb.Struct { return n.s }

// Has returns true if the node has the key.
func (n *Node) Has(key string) bool {
	_, ok := n.s.Fields[key]
	return ok
}

// Keys returns the keys of the node in sorted order.
func (n *Node) Keys() []string {
	keys := make([]string, 0, len(n.s.Fields))
	for k := range n.s.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (n *Node) SetString(key, v string)        { n.s.Fields[key] = structpb.NewStringValue(v) }
func (n *Node) SetBool(key string, v bool)     { n.s.Fields[key] = structpb.NewBoolValue(v) }
func (n *Node) SetFloat(key string, v float64) { n.s.Fields[key] = structpb.NewNumberValue(v) }
func (n *Node) SetInt(key string, v int64)     { n.SetFloat(key, float64(v)) }
func (n *Node) SetUint(key string, v uint64)   { n.SetFloat(key, float64(v)) }

// AddNode adds an empty object under key and returns it.
func (n *Node) AddNode(key string) *Node {
	c := New()
	n.s.Fields[key] = structpb.NewStructValue(c.s)
	return c
}

// AddArray adds an empty array under key and returns it.
func (n *Node) AddArray(key string) *Array {
	a := &Array{&structpb.ListValue{}}
	n.s.Fields[key] = structpb.NewListValue(a.l)
	return a
}

func (n *Node) get(key string) (*structpb.Value, error) {
	v, ok := n.s.Fields[key]
	if !ok {
		return nil, errors.Wrapf(ErrMissingKey, "Key %q", key)
	}
	return v, nil
}

func (n *Node) GetString(key string) (string, error) {
	v, err := n.get(key)
	if err != nil {
		return "", err
	}
	return stringOf(v, key)
}

func (n *Node) GetBool(key string) (bool, error) {
	v, err := n.get(key)
	if err != nil {
		return false, err
	}
	b, ok := v.Kind.(*structpb.Value_BoolValue)
	if !ok {
		return false, errors.Wrapf(ErrWrongType, "Key %q is not a bool", key)
	}
	return b.BoolValue, nil
}

func (n *Node) GetFloat(key string) (float64, error) {
	v, err := n.get(key)
	if err != nil {
		return 0, err
	}
	return floatOf(v, key)
}

func (n *Node) GetInt(key string) (int64, error) {
	f, err := n.GetFloat(key)
	if err != nil {
		return 0, err
	}
	return intOf(f, key)
}

func (n *Node) GetUint(key string) (uint64, error) {
	i, err := n.GetInt(key)
	if err != nil {
		return 0, err
	}
	if i < 0 {
		return 0, errors.Wrapf(ErrWrongType, "Key %q is negative", key)
	}
	return uint64(i), nil
}

func (n *Node) GetNode(key string) (*Node, error) {
	v, err := n.get(key)
	if err != nil {
		return nil, err
	}
	return nodeOf(v, key)
}

func (n *Node) GetArray(key string) (*Array, error) {
	v, err := n.get(key)
	if err != nil {
		return nil, err
	}
	l, ok := v.Kind.(*structpb.Value_ListValue)
	if !ok {
		return nil, errors.Wrapf(ErrWrongType, "Key %q is not an array", key)
	}
	return &Array{l.ListValue}, nil
}

// Len returns the number of elements of the array.
func (a *Array) Len() int { return len(a.l.Values) }

func (a *Array) AddString(v string) { a.l.Values = append(a.l.Values, structpb.NewStringValue(v)) }
func (a *Array) AddFloat(v float64) { a.l.Values = append(a.l.Values, structpb.NewNumberValue(v)) }
func (a *Array) AddInt(v int64)     { a.AddFloat(float64(v)) }
func (a *Array) AddBool(v bool)     { a.l.Values = append(a.l.Values, structpb.NewBoolValue(v)) }

// AddNode appends an empty object and returns it.
func (a *Array) AddNode() *Node {
	c := New()
	a.l.Values = append(a.l.Values, structpb.NewStructValue(c.s))
	return c
}

func (a *Array) at(i int) (*structpb.Value, string, error) {
	name := "[" + strconv.Itoa(i) + "]"
	if i < 0 || i >= len(a.l.Values) {
		return nil, name, errors.Wrapf(ErrMissingKey, "Index %d of %d", i, len(a.l.Values))
	}
	return a.l.Values[i], name, nil
}

func (a *Array) GetString(i int) (string, error) {
	v, name, err := a.at(i)
	if err != nil {
		return "", err
	}
	return stringOf(v, name)
}

func (a *Array) GetFloat(i int) (float64, error) {
	v, name, err := a.at(i)
	if err != nil {
		return 0, err
	}
	return floatOf(v, name)
}

func (a *Array) GetInt(i int) (int64, error) {
	f, err := a.GetFloat(i)
	if err != nil {
		return 0, err
	}
	return intOf(f, "["+strconv.Itoa(i)+"]")
}

func (a *Array) GetNode(i int) (*Node, error) {
	v, name, err := a.at(i)
	if err != nil {
		return nil, err
	}
	return nodeOf(v, name)
}

func stringOf(v *structpb.Value, key string) (string, error) {
	s, ok := v.Kind.(*structpb.Value_StringValue)
	if !ok {
		return "", errors.Wrapf(ErrWrongType, "Key %q is not a string", key)
	}
	return s.StringValue, nil
}

func floatOf(v *structpb.Value, key string) (float64, error) {
	f, ok := v.Kind.(*structpb.Value_NumberValue)
	if !ok {
		return 0, errors.Wrapf(ErrWrongType, "Key %q is not a number", key)
	}
	return f.NumberValue, nil
}

func intOf(f float64, key string) (int64, error) {
	if f != math.Trunc(f) || math.Abs(f) > 1<<53 {
		return 0, errors.Wrapf(ErrWrongType, "Key %q is not an integer: %v", key, f)
	}
	return int64(f), nil
}

func nodeOf(v *structpb.Value, key string) (*Node, error) {
	s, ok := v.Kind.(*structpb.Value_StructValue)
	if !ok {
		return nil, errors.Wrapf(ErrWrongType, "Key %q is not an object", key)
	}
	return wrap(s.StructValue), nil
}

// MarshalJSON returns the indented JSON encoding of the node.
func (n *Node) MarshalJSON() ([]byte, error) {
	m := jsonpb.Marshaler{Indent: "  "}
	s, err := m.MarshalToString(n.s)
	if err != nil {
		return nil, errors.Wrap(err, "Marshalling document to JSON")
	}
	return []byte(s), nil
}

// ParseJSON decodes a node from its JSON encoding.
func ParseJSON(data []byte) (*Node, error) {
	s := &structpb.Struct{}
	if err := jsonpb.Unmarshal(bytes.NewReader(data), s); err != nil {
		return nil, errors.Wrap(err, "Parsing JSON document")
	}
	return wrap(s), nil
}

// MarshalBinary returns the binary protobuf encoding of the node.
func (n *Node) MarshalBinary() ([]byte, error) {
	data, err := proto.Marshal(n.s)
	return data, errors.Wrap(err, "Marshalling document")
}

// ParseBinary decodes a node from its binary protobuf encoding.
func ParseBinary(data []byte) (*Node, error) {
	s := &structpb.Struct{}
	if err := proto.Unmarshal(data, s); err != nil {
		return nil, errors.Wrap(err, "Parsing binary document")
	}
	return wrap(s), nil
}

// Equal returns true if both nodes hold the same document.
func Equal(a, b *Node) bool { return proto.Equal(a.s, b.s) }
