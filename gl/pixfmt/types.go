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

package pixfmt

import "github.com/ValveSoftware/vogl-sub006/gl"

// TypeSize returns the size in bytes of a single element of the pixel type.
// Packed types return the size of the whole packed value, except
// FLOAT_32_UNSIGNED_INT_24_8_REV which is swapped as two 32 bit words and
// reports 4. Unknown types return 0.
func TypeSize(ty gl.Enum) int {
	switch ty {
	case gl.BYTE, gl.UNSIGNED_BYTE, gl.UNSIGNED_BYTE_3_3_2, gl.UNSIGNED_BYTE_2_3_3_REV:
		return 1
	case gl.SHORT, gl.UNSIGNED_SHORT, gl.HALF_FLOAT,
		gl.UNSIGNED_SHORT_5_6_5, gl.UNSIGNED_SHORT_5_6_5_REV,
		gl.UNSIGNED_SHORT_4_4_4_4, gl.UNSIGNED_SHORT_4_4_4_4_REV,
		gl.UNSIGNED_SHORT_5_5_5_1, gl.UNSIGNED_SHORT_1_5_5_5_REV:
		return 2
	case gl.INT, gl.UNSIGNED_INT, gl.FLOAT,
		gl.UNSIGNED_INT_8_8_8_8, gl.UNSIGNED_INT_8_8_8_8_REV,
		gl.UNSIGNED_INT_10_10_10_2, gl.UNSIGNED_INT_2_10_10_10_REV,
		gl.UNSIGNED_INT_24_8, gl.UNSIGNED_INT_10F_11F_11F_REV,
		gl.UNSIGNED_INT_5_9_9_9_REV, gl.FLOAT_32_UNSIGNED_INT_24_8_REV:
		return 4
	}
	return 0
}

// packedSize returns the size of one pixel of a packed type, or 0 if the
// type is not packed.
func packedSize(ty gl.Enum) int {
	switch ty {
	case gl.UNSIGNED_BYTE_3_3_2, gl.UNSIGNED_BYTE_2_3_3_REV:
		return 1
	case gl.UNSIGNED_SHORT_5_6_5, gl.UNSIGNED_SHORT_5_6_5_REV,
		gl.UNSIGNED_SHORT_4_4_4_4, gl.UNSIGNED_SHORT_4_4_4_4_REV,
		gl.UNSIGNED_SHORT_5_5_5_1, gl.UNSIGNED_SHORT_1_5_5_5_REV:
		return 2
	case gl.UNSIGNED_INT_8_8_8_8, gl.UNSIGNED_INT_8_8_8_8_REV,
		gl.UNSIGNED_INT_10_10_10_2, gl.UNSIGNED_INT_2_10_10_10_REV,
		gl.UNSIGNED_INT_24_8, gl.UNSIGNED_INT_10F_11F_11F_REV,
		gl.UNSIGNED_INT_5_9_9_9_REV:
		return 4
	case gl.FLOAT_32_UNSIGNED_INT_24_8_REV:
		return 8
	}
	return 0
}

// FormatComponents returns the number of components of a pixel transfer
// format, or 0 if the format is unknown.
func FormatComponents(f gl.Enum) int {
	switch f {
	case gl.RED, gl.GREEN, gl.BLUE, gl.ALPHA, gl.LUMINANCE, gl.INTENSITY,
		gl.DEPTH_COMPONENT, gl.STENCIL_INDEX,
		gl.RED_INTEGER, gl.GREEN_INTEGER, gl.BLUE_INTEGER, gl.ALPHA_INTEGER:
		return 1
	case gl.RG, gl.RG_INTEGER, gl.LUMINANCE_ALPHA, gl.DEPTH_STENCIL:
		return 2
	case gl.RGB, gl.BGR, gl.RGB_INTEGER, gl.BGR_INTEGER:
		return 3
	case gl.RGBA, gl.BGRA, gl.RGBA_INTEGER, gl.BGRA_INTEGER:
		return 4
	}
	return 0
}

// BytesPerPixel returns the size of one pixel transferred with the format and
// type, or 0 if the combination is unknown.
func BytesPerPixel(f, ty gl.Enum) int {
	if p := packedSize(ty); p > 0 {
		return p
	}
	return FormatComponents(f) * TypeSize(ty)
}
