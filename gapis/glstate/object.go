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

package glstate

import (
	"context"

	"github.com/ValveSoftware/vogl-sub006/core/data/document"
	"github.com/ValveSoftware/vogl-sub006/core/log"
	"github.com/ValveSoftware/vogl-sub006/gapis/blob"
	"github.com/ValveSoftware/vogl-sub006/gl"
)

// Kind identifies the type of GL object an ObjectState captures.
type Kind int

const (
	KindInvalid Kind = iota
	KindTexture
	KindBuffer
	KindDefaultFramebuffer
)

var kindNames = map[Kind]string{
	KindTexture:            "texture",
	KindBuffer:             "buffer",
	KindDefaultFramebuffer: "default_framebuffer",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "invalid"
}

// KindFromName parses the output of Kind.String.
func KindFromName(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return KindInvalid, false
}

// ObjectState is the captured state of one GL object.
type ObjectState interface {
	Kind() Kind
	// SnapshotHandle is the name the object had when it was captured.
	SnapshotHandle() uint64
	Target() gl.Enum
	IsValid() bool
	Clear()
	// RemapHandles rewrites the names of referenced objects.
	RemapHandles(r HandleRemapper)
	Serialize(ctx context.Context, node *document.Node, blobs blob.Manager) error
	Deserialize(ctx context.Context, node *document.Node, blobs blob.Manager) error
}

// NewObjectState returns an empty state of the given kind.
func NewObjectState(k Kind) (ObjectState, error) {
	switch k {
	case KindTexture:
		return &TextureState{}, nil
	case KindBuffer:
		return &BufferState{}, nil
	case KindDefaultFramebuffer:
		return &DefaultFramebufferState{}, nil
	}
	return nil, ErrUnsupportedTarget
}

// SerializeObject writes the kind of obj followed by its state.
func SerializeObject(ctx context.Context, node *document.Node, blobs blob.Manager, obj ObjectState) error {
	node.SetString("kind", obj.Kind().String())
	return obj.Serialize(ctx, node.AddNode("state"), blobs)
}

// DeserializeObject reads an object written by SerializeObject.
func DeserializeObject(ctx context.Context, node *document.Node, blobs blob.Manager) (ObjectState, error) {
	name, err := node.GetString("kind")
	if err != nil {
		return nil, err
	}
	k, ok := KindFromName(name)
	if !ok {
		return nil, log.Errf(ctx, ErrUnsupportedTarget, "Unknown object kind %q", name)
	}
	obj, err := NewObjectState(k)
	if err != nil {
		return nil, err
	}
	state, err := node.GetNode("state")
	if err != nil {
		return nil, err
	}
	if err := obj.Deserialize(ctx, state, blobs); err != nil {
		return nil, err
	}
	return obj, nil
}
