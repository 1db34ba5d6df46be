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
	"github.com/ValveSoftware/vogl-sub006/gl"
)

// Namespace identifies a GL object namespace for handle remapping.
type Namespace int

const (
	Textures Namespace = iota
	Buffers
	Framebuffers
)

func (n Namespace) String() string {
	switch n {
	case Textures:
		return "textures"
	case Buffers:
		return "buffers"
	case Framebuffers:
		return "framebuffers"
	}
	return "unknown"
}

// HandleRemapper translates between the object handles recorded in a trace
// and the live names of the replay context.
type HandleRemapper interface {
	// DeclareHandle records that the traced handle from is now the live object
	// to.
	DeclareHandle(ns Namespace, from, to uint64, target gl.Enum)
	// RemapHandle returns the live name of the traced handle from.
	RemapHandle(ns Namespace, from uint64) uint64
	// DeleteHandleAndObject forgets the mapping and deletes the live object.
	DeleteHandleAndObject(ns Namespace, from, to uint64)
}

// MapRemapper is a HandleRemapper backed by maps. Handles that were never
// declared remap to themselves.
type MapRemapper struct {
	gl      gl.Functions
	handles map[Namespace]map[uint64]uint64
	targets map[Namespace]map[uint64]gl.Enum
}

var _ HandleRemapper = (*MapRemapper)(nil)

// NewMapRemapper returns an empty MapRemapper that deletes objects through
// fns.
func NewMapRemapper(fns gl.Functions) *MapRemapper {
	return &MapRemapper{
		gl:      fns,
		handles: map[Namespace]map[uint64]uint64{},
		targets: map[Namespace]map[uint64]gl.Enum{},
	}
}

func (m *MapRemapper) DeclareHandle(ns Namespace, from, to uint64, target gl.Enum) {
	if m.handles[ns] == nil {
		m.handles[ns] = map[uint64]uint64{}
		m.targets[ns] = map[uint64]gl.Enum{}
	}
	m.handles[ns][from] = to
	m.targets[ns][from] = target
}

func (m *MapRemapper) RemapHandle(ns Namespace, from uint64) uint64 {
	if to, ok := m.handles[ns][from]; ok {
		return to
	}
	return from
}

// Target returns the target declared with the traced handle.
func (m *MapRemapper) Target(ns Namespace, from uint64) gl.Enum {
	return m.targets[ns][from]
}

func (m *MapRemapper) DeleteHandleAndObject(ns Namespace, from, to uint64) {
	delete(m.handles[ns], from)
	delete(m.targets[ns], from)
	switch ns {
	case Textures:
		m.gl.DeleteTexture(uint32(to))
	case Buffers:
		m.gl.DeleteBuffer(uint32(to))
	case Framebuffers:
		m.gl.DeleteFramebuffer(uint32(to))
	}
}

func remap(r HandleRemapper, ns Namespace, h uint64) uint64 {
	if r == nil || h == 0 {
		return h
	}
	return r.RemapHandle(ns, h)
}
