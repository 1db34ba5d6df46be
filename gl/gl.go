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

// Package gl holds the GL enumerants and the Functions interface through which
// every other package talks to a GL driver.
package gl

import (
	"fmt"
	"strconv"
	"strings"
)

// Enum is a GL enumerant.
type Enum uint32

var enumValues map[string]Enum

func init() {
	enumValues = make(map[string]Enum, len(enumNames)+1)
	for e, n := range enumNames {
		enumValues[n] = e
	}
	enumValues["GL_NONE"] = NONE
}

// String returns the GL name of the enum, or its hex value if it has no name.
func (e Enum) String() string {
	if e == NONE {
		return "GL_NONE"
	}
	if n, ok := enumNames[e]; ok {
		return n
	}
	return fmt.Sprintf("0x%04X", uint32(e))
}

// EnumFromName parses the output of Enum.String. Names may omit the "GL_"
// prefix, and hex values are accepted.
func EnumFromName(name string) (Enum, bool) {
	if e, ok := enumValues[name]; ok {
		return e, true
	}
	if e, ok := enumValues["GL_"+name]; ok {
		return e, true
	}
	if strings.HasPrefix(name, "0x") {
		if v, err := strconv.ParseUint(name[2:], 16, 32); err == nil {
			return Enum(v), true
		}
	}
	return NONE, false
}

// CubeFaces lists the cube map face targets in layer order.
var CubeFaces = [6]Enum{
	TEXTURE_CUBE_MAP_POSITIVE_X,
	TEXTURE_CUBE_MAP_NEGATIVE_X,
	TEXTURE_CUBE_MAP_POSITIVE_Y,
	TEXTURE_CUBE_MAP_NEGATIVE_Y,
	TEXTURE_CUBE_MAP_POSITIVE_Z,
	TEXTURE_CUBE_MAP_NEGATIVE_Z,
}

// IsCubeFace returns true if e is one of the six cube map face targets.
func IsCubeFace(e Enum) bool {
	return e >= TEXTURE_CUBE_MAP_POSITIVE_X && e <= TEXTURE_CUBE_MAP_NEGATIVE_Z
}

// IsMultisampleTarget returns true for the multisample texture targets.
func IsMultisampleTarget(target Enum) bool {
	return target == TEXTURE_2D_MULTISAMPLE || target == TEXTURE_2D_MULTISAMPLE_ARRAY
}

// IsArrayTarget returns true for targets whose storage has array layers.
func IsArrayTarget(target Enum) bool {
	switch target {
	case TEXTURE_1D_ARRAY, TEXTURE_2D_ARRAY, TEXTURE_CUBE_MAP_ARRAY, TEXTURE_2D_MULTISAMPLE_ARRAY:
		return true
	}
	return false
}

// TextureBinding returns the binding query enum for the texture target.
func TextureBinding(target Enum) Enum {
	switch target {
	case TEXTURE_1D:
		return TEXTURE_BINDING_1D
	case TEXTURE_2D:
		return TEXTURE_BINDING_2D
	case TEXTURE_3D:
		return TEXTURE_BINDING_3D
	case TEXTURE_RECTANGLE:
		return TEXTURE_BINDING_RECTANGLE
	case TEXTURE_CUBE_MAP:
		return TEXTURE_BINDING_CUBE_MAP
	case TEXTURE_1D_ARRAY:
		return TEXTURE_BINDING_1D_ARRAY
	case TEXTURE_2D_ARRAY:
		return TEXTURE_BINDING_2D_ARRAY
	case TEXTURE_BUFFER:
		return TEXTURE_BINDING_BUFFER
	case TEXTURE_CUBE_MAP_ARRAY:
		return TEXTURE_BINDING_CUBE_MAP_ARRAY
	case TEXTURE_2D_MULTISAMPLE:
		return TEXTURE_BINDING_2D_MULTISAMPLE
	case TEXTURE_2D_MULTISAMPLE_ARRAY:
		return TEXTURE_BINDING_2D_MULTISAMPLE_ARRAY
	}
	return NONE
}

// BufferBinding returns the binding query enum for the buffer target, or NONE
// if the target has no binding query of its own.
func BufferBinding(target Enum) Enum {
	switch target {
	case ARRAY_BUFFER:
		return ARRAY_BUFFER_BINDING
	case PIXEL_PACK_BUFFER:
		return PIXEL_PACK_BUFFER_BINDING
	case PIXEL_UNPACK_BUFFER:
		return PIXEL_UNPACK_BUFFER_BINDING
	case TEXTURE_BUFFER:
		return TEXTURE_BINDING_BUFFER
	case COPY_READ_BUFFER, COPY_WRITE_BUFFER:
		// The copy targets are their own binding queries.
		return target
	}
	return NONE
}

// Error is a GL error code returned as a Go error.
type Error Enum

func (e Error) Error() string { return "GL error " + Enum(e).String() }

// CheckError returns the pending GL error of f as an Error, or nil.
// All queued errors are drained.
func CheckError(f Functions) error {
	var first Enum
	for i := 0; i < 16; i++ {
		e := f.GetError()
		if e == NO_ERROR {
			break
		}
		if first == NO_ERROR {
			first = e
		}
	}
	if first != NO_ERROR {
		return Error(first)
	}
	return nil
}
