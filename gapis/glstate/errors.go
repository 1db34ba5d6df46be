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

import "github.com/ValveSoftware/vogl-sub006/core/fault"

const (
	// ErrUnsupportedFormat is returned for internal formats missing from the
	// pixel format catalog.
	ErrUnsupportedFormat = fault.Const("Unsupported internal format")
	// ErrUnsupportedTarget is returned for unknown texture or buffer targets.
	ErrUnsupportedTarget = fault.Const("Unsupported target")
	// ErrBufferOverrun is returned when the driver writes past the end of a
	// readback buffer.
	ErrBufferOverrun = fault.Const("Driver wrote past the end of the readback buffer")
	// ErrNotValid is returned when restoring or serializing a state that holds
	// no valid snapshot.
	ErrNotValid = fault.Const("Object state is not valid")
	// ErrNoSplitter is returned for multisample textures when the context has
	// no MSAA splitter.
	ErrNoSplitter = fault.Const("No MSAA splitter available")
	// ErrInconsistentState is returned when a snapshot contradicts itself, for
	// example when the driver reports samples for a single sample target.
	ErrInconsistentState = fault.Const("Inconsistent object state")
	// ErrIncompleteFramebuffer is returned when a temporary framebuffer is not
	// complete.
	ErrIncompleteFramebuffer = fault.Const("Framebuffer is incomplete")
	// ErrVersion is returned when deserializing a document of a newer version.
	ErrVersion = fault.Const("Unsupported document version")
)
