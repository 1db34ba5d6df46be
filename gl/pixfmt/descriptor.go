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

// Package pixfmt is a catalog of GL internal formats and the byte layouts
// used to transfer them between client memory and the driver.
package pixfmt

import "github.com/ValveSoftware/vogl-sub006/gl"

// Slot is an index into the per-component tables of a Descriptor.
type Slot int

const (
	Red Slot = iota
	Green
	Blue
	Alpha
	Depth
	Stencil
	Intensity
	Luminance

	NumSlots
)

// TexImageFlags is a bitmask of the glTexImage entry points that accept a
// format.
type TexImageFlags uint32

const (
	TexImage1D TexImageFlags = 1 << iota
	TexImage2D
	TexImage3D
	TexImage2DMultisample
	TexImage3DMultisample

	texImageAll   = TexImage1D | TexImage2D | TexImage3D | TexImage2DMultisample | TexImage3DMultisample
	texImageNoMS  = TexImage1D | TexImage2D | TexImage3D
	texImageBlock = TexImage2D | TexImage3D
)

// Descriptor describes the layout of a single GL internal format.
type Descriptor struct {
	Fmt  gl.Enum // The internal format.
	Name string
	// ActualInternalFmt is what drivers report back for Fmt. Unsized formats
	// resolve to their usual sized equivalent.
	ActualInternalFmt gl.Enum
	// BaseFmt is the base internal format (RGBA, RED, DEPTH_STENCIL, ...).
	BaseFmt   gl.Enum
	CompSizes [NumSlots]int
	CompTypes [NumSlots]gl.Enum
	// SharedSize is the shared exponent size in bits, or 0.
	SharedSize    int
	TexImageFlags TexImageFlags
	Compressed    bool
	// OptimumGetImageFmt and OptimumGetImageType are the format and type that
	// read back the image without conversion. Both are NONE for compressed
	// formats.
	OptimumGetImageFmt  gl.Enum
	OptimumGetImageType gl.Enum
	// ImageBytesPerPixelOrBlock is the size of a pixel read back with the
	// optimum format and type, or the size of a compressed block.
	ImageBytesPerPixelOrBlock int
	BlockWidth                int
	BlockHeight               int
}

// MaxComponentSize returns the largest component size in bits.
func (d *Descriptor) MaxComponentSize() int {
	max := 0
	for _, s := range d.CompSizes {
		if s > max {
			max = s
		}
	}
	return max
}

// NumComponents returns the number of components with a non-zero size.
func (d *Descriptor) NumComponents() int {
	n := 0
	for _, s := range d.CompSizes {
		if s > 0 {
			n++
		}
	}
	return n
}

// FirstComponentType returns the data type of the first component with a
// non-zero size, or NONE.
func (d *Descriptor) FirstComponentType() gl.Enum {
	for i, s := range d.CompSizes {
		if s > 0 {
			return d.CompTypes[i]
		}
	}
	return gl.NONE
}

// HasDepth returns true if the format has a depth component.
func (d *Descriptor) HasDepth() bool { return d.CompSizes[Depth] > 0 }

// HasStencil returns true if the format has a stencil component.
func (d *Descriptor) HasStencil() bool { return d.CompSizes[Stencil] > 0 }

// IsDepthStencil returns true if the format has both depth and stencil.
func (d *Descriptor) IsDepthStencil() bool { return d.HasDepth() && d.HasStencil() }

// Kind is the sampling class of a format, as seen by a shader.
type Kind int

const (
	// KindFloat formats are sampled as floats (normalized and float types).
	KindFloat Kind = iota
	// KindInt formats are sampled with isampler types.
	KindInt
	// KindUint formats are sampled with usampler types.
	KindUint
)

// ComponentKind returns how shaders sample the format.
func (d *Descriptor) ComponentKind() Kind {
	switch d.FirstComponentType() {
	case gl.INT:
		return KindInt
	case gl.UNSIGNED_INT:
		return KindUint
	}
	return KindFloat
}

// ImageSize returns the number of bytes of a w×h×depth image in this format,
// as read back with the optimum format and type.
func (d *Descriptor) ImageSize(w, h, depth int) int {
	if w <= 0 || h <= 0 || depth <= 0 {
		return 0
	}
	if d.Compressed {
		bx := (w + d.BlockWidth - 1) / d.BlockWidth
		by := (h + d.BlockHeight - 1) / d.BlockHeight
		return bx * by * depth * d.ImageBytesPerPixelOrBlock
	}
	return w * h * depth * d.ImageBytesPerPixelOrBlock
}
