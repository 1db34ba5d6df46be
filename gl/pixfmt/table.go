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

import (
	"fmt"

	"github.com/ValveSoftware/vogl-sub006/gl"
)

// Component data types, as reported by GL_TEXTURE_*_TYPE.
const (
	tUnorm = gl.UNSIGNED_NORMALIZED
	tSnorm = gl.SIGNED_NORMALIZED
	tFloat = gl.FLOAT
	tInt   = gl.INT
	tUint  = gl.UNSIGNED_INT
)

// layout is the client side format, type and pixel size used to read back an
// uncompressed format.
type layout struct {
	fmt, ty gl.Enum
	bpp     int
}

func readAs(f, ty gl.Enum, bpp int) layout { return layout{f, ty, bpp} }

func uncompressed(f, base gl.Enum, flags TexImageFlags, l layout) Descriptor {
	return Descriptor{
		Fmt:                       f,
		Name:                      f.String(),
		ActualInternalFmt:         f,
		BaseFmt:                   base,
		TexImageFlags:             flags,
		OptimumGetImageFmt:        l.fmt,
		OptimumGetImageType:       l.ty,
		ImageBytesPerPixelOrBlock: l.bpp,
		BlockWidth:                1,
		BlockHeight:               1,
	}
}

func (d Descriptor) with(s Slot, ty gl.Enum, bits int) Descriptor {
	d.CompSizes[s], d.CompTypes[s] = bits, ty
	return d
}

func rgba(f gl.Enum, ty gl.Enum, r, g, b, a int, l layout) Descriptor {
	base := gl.RGBA
	switch {
	case g == 0:
		base = gl.RED
	case b == 0:
		base = gl.RG
	case a == 0:
		base = gl.RGB
	}
	d := uncompressed(f, base, texImageAll, l)
	for i, bits := range [4]int{r, g, b, a} {
		if bits > 0 {
			d = d.with(Slot(i), ty, bits)
		}
	}
	return d
}

func legacy(f gl.Enum, base gl.Enum, l, a, i int, read layout) Descriptor {
	d := uncompressed(f, base, texImageNoMS, read)
	if l > 0 {
		d = d.with(Luminance, tUnorm, l)
	}
	if a > 0 {
		d = d.with(Alpha, tUnorm, a)
	}
	if i > 0 {
		d = d.with(Intensity, tUnorm, i)
	}
	return d
}

func depthStencil(f gl.Enum, dty gl.Enum, depth, stencil int, l layout) Descriptor {
	base := gl.DEPTH_COMPONENT
	switch {
	case depth > 0 && stencil > 0:
		base = gl.DEPTH_STENCIL
	case depth == 0:
		base = gl.STENCIL_INDEX
	}
	d := uncompressed(f, base, texImageAll, l)
	if depth > 0 {
		d = d.with(Depth, dty, depth)
	}
	if stencil > 0 {
		d = d.with(Stencil, tUint, stencil)
	}
	return d
}

func block(f, base gl.Enum, w, h, bytes int) Descriptor {
	return Descriptor{
		Fmt:                       f,
		Name:                      f.String(),
		ActualInternalFmt:         f,
		BaseFmt:                   base,
		TexImageFlags:             texImageBlock,
		Compressed:                true,
		ImageBytesPerPixelOrBlock: bytes,
		BlockWidth:                w,
		BlockHeight:               h,
	}
}

var astcBlocks = [...]struct{ w, h int }{
	{4, 4}, {5, 4}, {5, 5}, {6, 5}, {6, 6}, {8, 5}, {8, 6}, {8, 8},
	{10, 5}, {10, 6}, {10, 8}, {10, 10}, {12, 10}, {12, 12},
}

// unsizedAliases maps unsized internal formats to the sized format drivers
// allocate for them.
var unsizedAliases = [...]struct{ unsized, sized gl.Enum }{
	{gl.RED, gl.R8},
	{gl.RG, gl.RG8},
	{gl.RGB, gl.RGB8},
	{gl.RGBA, gl.RGBA8},
	{gl.ALPHA, gl.ALPHA8},
	{gl.LUMINANCE, gl.LUMINANCE8},
	{gl.LUMINANCE_ALPHA, gl.LUMINANCE8_ALPHA8},
	{gl.INTENSITY, gl.INTENSITY8},
	{gl.SRGB, gl.SRGB8},
	{gl.SRGB_ALPHA, gl.SRGB8_ALPHA8},
	{gl.SLUMINANCE, gl.SLUMINANCE8},
	{gl.SLUMINANCE_ALPHA, gl.SLUMINANCE8_ALPHA8},
	{gl.DEPTH_COMPONENT, gl.DEPTH_COMPONENT24},
	{gl.DEPTH_STENCIL, gl.DEPTH24_STENCIL8},
}

func table() []Descriptor {
	ub, us, ui := gl.UNSIGNED_BYTE, gl.UNSIGNED_SHORT, gl.UNSIGNED_INT
	b, s, i := gl.BYTE, gl.SHORT, gl.INT
	hf, f := gl.HALF_FLOAT, gl.FLOAT

	out := []Descriptor{
		// Normalized unsigned.
		rgba(gl.R8, tUnorm, 8, 0, 0, 0, readAs(gl.RED, ub, 1)),
		rgba(gl.RG8, tUnorm, 8, 8, 0, 0, readAs(gl.RG, ub, 2)),
		rgba(gl.RGB8, tUnorm, 8, 8, 8, 0, readAs(gl.RGB, ub, 3)),
		rgba(gl.RGBA8, tUnorm, 8, 8, 8, 8, readAs(gl.RGBA, ub, 4)),
		rgba(gl.R16, tUnorm, 16, 0, 0, 0, readAs(gl.RED, us, 2)),
		rgba(gl.RG16, tUnorm, 16, 16, 0, 0, readAs(gl.RG, us, 4)),
		rgba(gl.RGB16, tUnorm, 16, 16, 16, 0, readAs(gl.RGB, us, 6)),
		rgba(gl.RGBA16, tUnorm, 16, 16, 16, 16, readAs(gl.RGBA, us, 8)),
		rgba(gl.R3_G3_B2, tUnorm, 3, 3, 2, 0, readAs(gl.RGB, gl.UNSIGNED_BYTE_3_3_2, 1)),
		rgba(gl.RGB4, tUnorm, 4, 4, 4, 0, readAs(gl.RGB, ub, 3)),
		rgba(gl.RGB5, tUnorm, 5, 5, 5, 0, readAs(gl.RGB, ub, 3)),
		rgba(gl.RGB565, tUnorm, 5, 6, 5, 0, readAs(gl.RGB, gl.UNSIGNED_SHORT_5_6_5, 2)),
		rgba(gl.RGB10, tUnorm, 10, 10, 10, 0, readAs(gl.RGB, us, 6)),
		rgba(gl.RGB12, tUnorm, 12, 12, 12, 0, readAs(gl.RGB, us, 6)),
		rgba(gl.RGBA2, tUnorm, 2, 2, 2, 2, readAs(gl.RGBA, ub, 4)),
		rgba(gl.RGBA4, tUnorm, 4, 4, 4, 4, readAs(gl.RGBA, gl.UNSIGNED_SHORT_4_4_4_4, 2)),
		rgba(gl.RGB5_A1, tUnorm, 5, 5, 5, 1, readAs(gl.RGBA, gl.UNSIGNED_SHORT_5_5_5_1, 2)),
		rgba(gl.RGB10_A2, tUnorm, 10, 10, 10, 2, readAs(gl.RGBA, gl.UNSIGNED_INT_2_10_10_10_REV, 4)),
		rgba(gl.RGBA12, tUnorm, 12, 12, 12, 12, readAs(gl.RGBA, us, 8)),

		// Normalized signed.
		rgba(gl.R8_SNORM, tSnorm, 8, 0, 0, 0, readAs(gl.RED, b, 1)),
		rgba(gl.RG8_SNORM, tSnorm, 8, 8, 0, 0, readAs(gl.RG, b, 2)),
		rgba(gl.RGB8_SNORM, tSnorm, 8, 8, 8, 0, readAs(gl.RGB, b, 3)),
		rgba(gl.RGBA8_SNORM, tSnorm, 8, 8, 8, 8, readAs(gl.RGBA, b, 4)),
		rgba(gl.R16_SNORM, tSnorm, 16, 0, 0, 0, readAs(gl.RED, s, 2)),
		rgba(gl.RG16_SNORM, tSnorm, 16, 16, 0, 0, readAs(gl.RG, s, 4)),
		rgba(gl.RGB16_SNORM, tSnorm, 16, 16, 16, 0, readAs(gl.RGB, s, 6)),
		rgba(gl.RGBA16_SNORM, tSnorm, 16, 16, 16, 16, readAs(gl.RGBA, s, 8)),

		// Floating point.
		rgba(gl.R16F, tFloat, 16, 0, 0, 0, readAs(gl.RED, hf, 2)),
		rgba(gl.RG16F, tFloat, 16, 16, 0, 0, readAs(gl.RG, hf, 4)),
		rgba(gl.RGB16F, tFloat, 16, 16, 16, 0, readAs(gl.RGB, hf, 6)),
		rgba(gl.RGBA16F, tFloat, 16, 16, 16, 16, readAs(gl.RGBA, hf, 8)),
		rgba(gl.R32F, tFloat, 32, 0, 0, 0, readAs(gl.RED, f, 4)),
		rgba(gl.RG32F, tFloat, 32, 32, 0, 0, readAs(gl.RG, f, 8)),
		rgba(gl.RGB32F, tFloat, 32, 32, 32, 0, readAs(gl.RGB, f, 12)),
		rgba(gl.RGBA32F, tFloat, 32, 32, 32, 32, readAs(gl.RGBA, f, 16)),
		rgba(gl.R11F_G11F_B10F, tFloat, 11, 11, 10, 0, readAs(gl.RGB, gl.UNSIGNED_INT_10F_11F_11F_REV, 4)),
		withShared(rgba(gl.RGB9_E5, tFloat, 9, 9, 9, 0, readAs(gl.RGB, gl.UNSIGNED_INT_5_9_9_9_REV, 4)), 5),

		// Signed integer.
		rgba(gl.R8I, tInt, 8, 0, 0, 0, readAs(gl.RED_INTEGER, b, 1)),
		rgba(gl.RG8I, tInt, 8, 8, 0, 0, readAs(gl.RG_INTEGER, b, 2)),
		rgba(gl.RGB8I, tInt, 8, 8, 8, 0, readAs(gl.RGB_INTEGER, b, 3)),
		rgba(gl.RGBA8I, tInt, 8, 8, 8, 8, readAs(gl.RGBA_INTEGER, b, 4)),
		rgba(gl.R16I, tInt, 16, 0, 0, 0, readAs(gl.RED_INTEGER, s, 2)),
		rgba(gl.RG16I, tInt, 16, 16, 0, 0, readAs(gl.RG_INTEGER, s, 4)),
		rgba(gl.RGB16I, tInt, 16, 16, 16, 0, readAs(gl.RGB_INTEGER, s, 6)),
		rgba(gl.RGBA16I, tInt, 16, 16, 16, 16, readAs(gl.RGBA_INTEGER, s, 8)),
		rgba(gl.R32I, tInt, 32, 0, 0, 0, readAs(gl.RED_INTEGER, i, 4)),
		rgba(gl.RG32I, tInt, 32, 32, 0, 0, readAs(gl.RG_INTEGER, i, 8)),
		rgba(gl.RGB32I, tInt, 32, 32, 32, 0, readAs(gl.RGB_INTEGER, i, 12)),
		rgba(gl.RGBA32I, tInt, 32, 32, 32, 32, readAs(gl.RGBA_INTEGER, i, 16)),

		// Unsigned integer.
		rgba(gl.R8UI, tUint, 8, 0, 0, 0, readAs(gl.RED_INTEGER, ub, 1)),
		rgba(gl.RG8UI, tUint, 8, 8, 0, 0, readAs(gl.RG_INTEGER, ub, 2)),
		rgba(gl.RGB8UI, tUint, 8, 8, 8, 0, readAs(gl.RGB_INTEGER, ub, 3)),
		rgba(gl.RGBA8UI, tUint, 8, 8, 8, 8, readAs(gl.RGBA_INTEGER, ub, 4)),
		rgba(gl.R16UI, tUint, 16, 0, 0, 0, readAs(gl.RED_INTEGER, us, 2)),
		rgba(gl.RG16UI, tUint, 16, 16, 0, 0, readAs(gl.RG_INTEGER, us, 4)),
		rgba(gl.RGB16UI, tUint, 16, 16, 16, 0, readAs(gl.RGB_INTEGER, us, 6)),
		rgba(gl.RGBA16UI, tUint, 16, 16, 16, 16, readAs(gl.RGBA_INTEGER, us, 8)),
		rgba(gl.R32UI, tUint, 32, 0, 0, 0, readAs(gl.RED_INTEGER, ui, 4)),
		rgba(gl.RG32UI, tUint, 32, 32, 0, 0, readAs(gl.RG_INTEGER, ui, 8)),
		rgba(gl.RGB32UI, tUint, 32, 32, 32, 0, readAs(gl.RGB_INTEGER, ui, 12)),
		rgba(gl.RGBA32UI, tUint, 32, 32, 32, 32, readAs(gl.RGBA_INTEGER, ui, 16)),
		rgba(gl.RGB10_A2UI, tUint, 10, 10, 10, 2, readAs(gl.RGBA_INTEGER, gl.UNSIGNED_INT_2_10_10_10_REV, 4)),

		// sRGB.
		rgba(gl.SRGB8, tUnorm, 8, 8, 8, 0, readAs(gl.RGB, ub, 3)),
		rgba(gl.SRGB8_ALPHA8, tUnorm, 8, 8, 8, 8, readAs(gl.RGBA, ub, 4)),
		legacy(gl.SLUMINANCE8, gl.LUMINANCE, 8, 0, 0, readAs(gl.LUMINANCE, ub, 1)),
		legacy(gl.SLUMINANCE8_ALPHA8, gl.LUMINANCE_ALPHA, 8, 8, 0, readAs(gl.LUMINANCE_ALPHA, ub, 2)),

		// Alpha, luminance and intensity.
		legacy(gl.ALPHA4, gl.ALPHA, 0, 4, 0, readAs(gl.ALPHA, ub, 1)),
		legacy(gl.ALPHA8, gl.ALPHA, 0, 8, 0, readAs(gl.ALPHA, ub, 1)),
		legacy(gl.ALPHA12, gl.ALPHA, 0, 12, 0, readAs(gl.ALPHA, us, 2)),
		legacy(gl.ALPHA16, gl.ALPHA, 0, 16, 0, readAs(gl.ALPHA, us, 2)),
		legacy(gl.LUMINANCE4, gl.LUMINANCE, 4, 0, 0, readAs(gl.LUMINANCE, ub, 1)),
		legacy(gl.LUMINANCE8, gl.LUMINANCE, 8, 0, 0, readAs(gl.LUMINANCE, ub, 1)),
		legacy(gl.LUMINANCE12, gl.LUMINANCE, 12, 0, 0, readAs(gl.LUMINANCE, us, 2)),
		legacy(gl.LUMINANCE16, gl.LUMINANCE, 16, 0, 0, readAs(gl.LUMINANCE, us, 2)),
		legacy(gl.LUMINANCE4_ALPHA4, gl.LUMINANCE_ALPHA, 4, 4, 0, readAs(gl.LUMINANCE_ALPHA, ub, 2)),
		legacy(gl.LUMINANCE6_ALPHA2, gl.LUMINANCE_ALPHA, 6, 2, 0, readAs(gl.LUMINANCE_ALPHA, ub, 2)),
		legacy(gl.LUMINANCE8_ALPHA8, gl.LUMINANCE_ALPHA, 8, 8, 0, readAs(gl.LUMINANCE_ALPHA, ub, 2)),
		legacy(gl.LUMINANCE12_ALPHA4, gl.LUMINANCE_ALPHA, 12, 4, 0, readAs(gl.LUMINANCE_ALPHA, us, 4)),
		legacy(gl.LUMINANCE12_ALPHA12, gl.LUMINANCE_ALPHA, 12, 12, 0, readAs(gl.LUMINANCE_ALPHA, us, 4)),
		legacy(gl.LUMINANCE16_ALPHA16, gl.LUMINANCE_ALPHA, 16, 16, 0, readAs(gl.LUMINANCE_ALPHA, us, 4)),
		legacy(gl.INTENSITY4, gl.INTENSITY, 0, 0, 4, readAs(gl.RED, ub, 1)),
		legacy(gl.INTENSITY8, gl.INTENSITY, 0, 0, 8, readAs(gl.RED, ub, 1)),
		legacy(gl.INTENSITY12, gl.INTENSITY, 0, 0, 12, readAs(gl.RED, us, 2)),
		legacy(gl.INTENSITY16, gl.INTENSITY, 0, 0, 16, readAs(gl.RED, us, 2)),

		// Depth and stencil.
		depthStencil(gl.DEPTH_COMPONENT16, tUnorm, 16, 0, readAs(gl.DEPTH_COMPONENT, us, 2)),
		depthStencil(gl.DEPTH_COMPONENT24, tUnorm, 24, 0, readAs(gl.DEPTH_COMPONENT, ui, 4)),
		depthStencil(gl.DEPTH_COMPONENT32, tUnorm, 32, 0, readAs(gl.DEPTH_COMPONENT, ui, 4)),
		depthStencil(gl.DEPTH_COMPONENT32F, tFloat, 32, 0, readAs(gl.DEPTH_COMPONENT, f, 4)),
		depthStencil(gl.DEPTH24_STENCIL8, tUnorm, 24, 8, readAs(gl.DEPTH_STENCIL, gl.UNSIGNED_INT_24_8, 4)),
		depthStencil(gl.DEPTH32F_STENCIL8, tFloat, 32, 8, readAs(gl.DEPTH_STENCIL, gl.FLOAT_32_UNSIGNED_INT_24_8_REV, 8)),
		depthStencil(gl.STENCIL_INDEX8, tUnorm, 0, 8, readAs(gl.STENCIL_INDEX, ub, 1)),

		// S3TC.
		block(gl.COMPRESSED_RGB_S3TC_DXT1_EXT, gl.RGB, 4, 4, 8),
		block(gl.COMPRESSED_RGBA_S3TC_DXT1_EXT, gl.RGBA, 4, 4, 8),
		block(gl.COMPRESSED_RGBA_S3TC_DXT3_EXT, gl.RGBA, 4, 4, 16),
		block(gl.COMPRESSED_RGBA_S3TC_DXT5_EXT, gl.RGBA, 4, 4, 16),
		block(gl.COMPRESSED_SRGB_S3TC_DXT1_EXT, gl.RGB, 4, 4, 8),
		block(gl.COMPRESSED_SRGB_ALPHA_S3TC_DXT1_EXT, gl.RGBA, 4, 4, 8),
		block(gl.COMPRESSED_SRGB_ALPHA_S3TC_DXT3_EXT, gl.RGBA, 4, 4, 16),
		block(gl.COMPRESSED_SRGB_ALPHA_S3TC_DXT5_EXT, gl.RGBA, 4, 4, 16),

		// RGTC and BPTC.
		block(gl.COMPRESSED_RED_RGTC1, gl.RED, 4, 4, 8),
		block(gl.COMPRESSED_SIGNED_RED_RGTC1, gl.RED, 4, 4, 8),
		block(gl.COMPRESSED_RG_RGTC2, gl.RG, 4, 4, 16),
		block(gl.COMPRESSED_SIGNED_RG_RGTC2, gl.RG, 4, 4, 16),
		block(gl.COMPRESSED_RGBA_BPTC_UNORM, gl.RGBA, 4, 4, 16),
		block(gl.COMPRESSED_SRGB_ALPHA_BPTC_UNORM, gl.RGBA, 4, 4, 16),
		block(gl.COMPRESSED_RGB_BPTC_SIGNED_FLOAT, gl.RGB, 4, 4, 16),
		block(gl.COMPRESSED_RGB_BPTC_UNSIGNED_FLOAT, gl.RGB, 4, 4, 16),

		// ETC and EAC.
		block(gl.ETC1_RGB8_OES, gl.RGB, 4, 4, 8),
		block(gl.COMPRESSED_RGB8_ETC2, gl.RGB, 4, 4, 8),
		block(gl.COMPRESSED_SRGB8_ETC2, gl.RGB, 4, 4, 8),
		block(gl.COMPRESSED_RGB8_PUNCHTHROUGH_ALPHA1_ETC2, gl.RGBA, 4, 4, 8),
		block(gl.COMPRESSED_SRGB8_PUNCHTHROUGH_ALPHA1_ETC2, gl.RGBA, 4, 4, 8),
		block(gl.COMPRESSED_RGBA8_ETC2_EAC, gl.RGBA, 4, 4, 16),
		block(gl.COMPRESSED_SRGB8_ALPHA8_ETC2_EAC, gl.RGBA, 4, 4, 16),
		block(gl.COMPRESSED_R11_EAC, gl.RED, 4, 4, 8),
		block(gl.COMPRESSED_SIGNED_R11_EAC, gl.RED, 4, 4, 8),
		block(gl.COMPRESSED_RG11_EAC, gl.RG, 4, 4, 16),
		block(gl.COMPRESSED_SIGNED_RG11_EAC, gl.RG, 4, 4, 16),
	}

	for n, sz := range astcBlocks {
		out = append(out,
			block(gl.COMPRESSED_RGBA_ASTC_4x4_KHR+gl.Enum(n), gl.RGBA, sz.w, sz.h, 16),
			block(gl.COMPRESSED_SRGB8_ALPHA8_ASTC_4x4_KHR+gl.Enum(n), gl.RGBA, sz.w, sz.h, 16))
	}

	for _, a := range unsizedAliases {
		found := false
		for _, d := range out {
			if d.Fmt == a.sized {
				d.Fmt, d.Name = a.unsized, a.unsized.String()
				out = append(out, d)
				found = true
				break
			}
		}
		if !found {
			panic(fmt.Errorf("Unsized alias %v refers to missing format %v", a.unsized, a.sized))
		}
	}
	return out
}

func withShared(d Descriptor, bits int) Descriptor {
	d.SharedSize = bits
	return d
}
