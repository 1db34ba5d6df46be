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

package pixfmt_test

import (
	"testing"

	"github.com/ValveSoftware/vogl-sub006/core/assert"
	"github.com/ValveSoftware/vogl-sub006/gl"
	"github.com/ValveSoftware/vogl-sub006/gl/pixfmt"
)

func TestCatalogComplete(t *testing.T) {
	assert := assert.To(t)
	all := pixfmt.All()
	assert.For("count").ThatInteger(len(all)).IsAtLeast(150)
	for _, d := range all {
		got := pixfmt.Find(d.Fmt)
		if !assert.For("find %v", d.Name).That(got).Equals(d) {
			continue
		}
		assert.For("%v actual", d.Name).That(got.ActualInternalFmt).NotEquals(gl.NONE)
		if d.Compressed {
			assert.For("%v components", d.Name).ThatInteger(d.NumComponents()).Equals(0)
			assert.For("%v get fmt", d.Name).That(d.OptimumGetImageFmt).Equals(gl.NONE)
		} else {
			assert.For("%v components", d.Name).ThatInteger(d.NumComponents()).IsAtLeast(1)
			assert.For("%v bpp", d.Name).ThatInteger(
				pixfmt.BytesPerPixel(d.OptimumGetImageFmt, d.OptimumGetImageType)).Equals(d.ImageBytesPerPixelOrBlock)
		}
	}
	assert.For("unknown").That(pixfmt.Find(gl.TEXTURE_2D)).IsNil()
}

func TestDescriptors(t *testing.T) {
	assert := assert.To(t)

	rgba8 := pixfmt.Find(gl.RGBA8)
	assert.For("rgba8 max").ThatInteger(rgba8.MaxComponentSize()).Equals(8)
	assert.For("rgba8 count").ThatInteger(rgba8.NumComponents()).Equals(4)
	assert.For("rgba8 type").That(rgba8.FirstComponentType()).Equals(gl.UNSIGNED_NORMALIZED)
	assert.For("rgba8 size").ThatInteger(rgba8.ImageSize(2, 2, 1)).Equals(16)

	ds := pixfmt.Find(gl.DEPTH32F_STENCIL8)
	assert.For("d32fs8 depth").ThatBoolean(ds.HasDepth()).IsTrue()
	assert.For("d32fs8 stencil").ThatBoolean(ds.HasStencil()).IsTrue()
	assert.For("d32fs8 bpp").ThatInteger(ds.ImageBytesPerPixelOrBlock).Equals(8)
	assert.For("d32fs8 kind").That(ds.ComponentKind()).Equals(pixfmt.KindFloat)

	assert.For("r32ui kind").That(pixfmt.Find(gl.R32UI).ComponentKind()).Equals(pixfmt.KindUint)
	assert.For("rg16i kind").That(pixfmt.Find(gl.RG16I).ComponentKind()).Equals(pixfmt.KindInt)
	assert.For("rgb9e5 shared").ThatInteger(pixfmt.Find(gl.RGB9_E5).SharedSize).Equals(5)

	dxt1 := pixfmt.Find(gl.COMPRESSED_RGB_S3TC_DXT1_EXT)
	assert.For("dxt1 size").ThatInteger(dxt1.ImageSize(5, 5, 1)).Equals(4 * 8)
	astc := pixfmt.Find(gl.COMPRESSED_RGBA_ASTC_12x10_KHR)
	assert.For("astc block").ThatInteger(astc.BlockWidth*100 + astc.BlockHeight).Equals(1210)

	rgb := pixfmt.Find(gl.RGB)
	assert.For("unsized actual").That(rgb.ActualInternalFmt).Equals(gl.RGB8)
}

func TestTransferSizes(t *testing.T) {
	assert := assert.To(t)
	assert.For("rgba ub").ThatInteger(pixfmt.BytesPerPixel(gl.RGBA, gl.UNSIGNED_BYTE)).Equals(4)
	assert.For("rgb float").ThatInteger(pixfmt.BytesPerPixel(gl.RGB, gl.FLOAT)).Equals(12)
	assert.For("565").ThatInteger(pixfmt.BytesPerPixel(gl.RGB, gl.UNSIGNED_SHORT_5_6_5)).Equals(2)
	assert.For("d32fs8").ThatInteger(pixfmt.BytesPerPixel(gl.DEPTH_STENCIL, gl.FLOAT_32_UNSIGNED_INT_24_8_REV)).Equals(8)
	assert.For("type size").ThatInteger(pixfmt.TypeSize(gl.HALF_FLOAT)).Equals(2)
	assert.For("unknown").ThatInteger(pixfmt.TypeSize(gl.RGBA)).Equals(0)
}
