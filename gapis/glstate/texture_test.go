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

package glstate_test

import (
	"testing"

	"github.com/ValveSoftware/vogl-sub006/core/assert"
	"github.com/ValveSoftware/vogl-sub006/core/data/document"
	"github.com/ValveSoftware/vogl-sub006/core/image/ktx"
	"github.com/ValveSoftware/vogl-sub006/gapis/blob"
	"github.com/ValveSoftware/vogl-sub006/gapis/glstate"
	"github.com/ValveSoftware/vogl-sub006/gl"
)

func TestTexture2D(t *testing.T) {
	ctx, d, c := setup(t)
	assert := assert.To(t)
	level0, level1 := fill(16, 1), fill(4, 0xA0)
	tex := newTexture2D(d, 2, 2, map[int][]byte{0: level0, 1: level1})
	d.BindTexture(gl.TEXTURE_2D, tex)
	d.TexParameteriv(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, []int32{int32(gl.NEAREST)})
	d.BindTexture(gl.TEXTURE_2D, 0)

	s := glstate.TextureState{}
	if !assert.For("snapshot").ThatError(s.Snapshot(ctx, c, uint64(tex), gl.TEXTURE_2D)).Succeeded() {
		return
	}
	assert.For("valid").ThatBoolean(s.IsValid()).IsTrue()
	assert.For("handle").That(s.SnapshotHandle()).Equals(uint64(tex))
	assert.For("samples").ThatInteger(s.NumSamples()).Equals(1)
	k := s.Texture(0)
	assert.For("format").That(k.InternalFormat()).Equals(gl.RGBA8)
	assert.For("mips").ThatInteger(k.NumMips()).Equals(2)
	assert.For("level 0").ThatBytes(k.ImageData(0, 0, 0, 0)).Equals(level0)
	assert.For("level 1").ThatBytes(k.ImageData(1, 0, 0, 0)).Equals(level1)
	orientation, _ := k.KeyValueString(ktx.KeyOrientation)
	assert.For("orientation").ThatString(orientation).Equals("S=r,T=u")
	filter, _ := s.Params().Int(gl.TEXTURE_MIN_FILTER)
	assert.For("min filter").That(gl.Enum(filter)).Equals(gl.NEAREST)
	width, _ := s.LevelParams(0, 1).Int(gl.TEXTURE_WIDTH)
	assert.For("level 1 width").ThatInteger(int(width)).Equals(1)

	name, err := s.Restore(ctx, c, nil, 0)
	if !assert.For("restore").ThatError(err).Succeeded() {
		return
	}
	assert.For("new name").That(name).NotEquals(uint64(tex))
	restored := d.Texture(uint32(name))
	assert.For("target").That(restored.Target).Equals(gl.TEXTURE_2D)
	assert.For("restored level 0").ThatBytes(image(d, uint32(name), gl.TEXTURE_2D, 0).Data[0]).Equals(level0)
	assert.For("restored level 1").ThatBytes(image(d, uint32(name), gl.TEXTURE_2D, 1).Data[0]).Equals(level1)
	assert.For("restored filter").That(restored.Params[gl.TEXTURE_MIN_FILTER]).DeepEquals([]float32{float32(gl.NEAREST)})
	assert.For("live").ThatInteger(d.LiveTextures()).Equals(2)
	assert.For("error").That(d.PendingError()).Equals(gl.NO_ERROR)
}

func TestTextureSerialize(t *testing.T) {
	ctx, d, c := setup(t)
	assert := assert.To(t)
	tex := newTexture2D(d, 4, 2, map[int][]byte{0: fill(32, 3), 1: fill(8, 0x40), 2: fill(4, 0x80)})
	s := glstate.TextureState{}
	if !assert.For("snapshot").ThatError(s.Snapshot(ctx, c, uint64(tex), gl.TEXTURE_2D)).Succeeded() {
		return
	}

	blobs := blob.NewInMemory(ctx)
	node := document.New()
	if !assert.For("serialize").ThatError(s.Serialize(ctx, node, blobs)).Succeeded() {
		return
	}
	assert.For("blob id").ThatBoolean(node.Has("texture_data_blob_id")).IsTrue()
	ids, _ := blobs.IDs(ctx)
	assert.For("blobs").ThatSlice(ids).IsLength(1)

	data, err := node.MarshalJSON()
	assert.For("json").ThatError(err).Succeeded()
	parsed, err := document.ParseJSON(data)
	if !assert.For("parse").ThatError(err).Succeeded() {
		return
	}

	got := glstate.TextureState{}
	if !assert.For("deserialize").ThatError(got.Deserialize(ctx, parsed, blobs)).Succeeded() {
		return
	}
	assert.For("valid").ThatBoolean(got.IsValid()).IsTrue()
	assert.For("handle").That(got.SnapshotHandle()).Equals(s.SnapshotHandle())
	assert.For("target").That(got.Target()).Equals(gl.TEXTURE_2D)
	assert.For("texture").ThatBoolean(got.Texture(0).Equal(s.Texture(0))).IsTrue()
	assert.For("params").That(got.Params()).DeepEquals(s.Params())
	assert.For("level params").That(got.LevelParams(0, 2)).DeepEquals(s.LevelParams(0, 2))

	wrongTarget, _ := document.ParseJSON(data)
	wrongTarget.SetString("target", gl.TEXTURE_CUBE_MAP.String())
	mismatch := glstate.TextureState{}
	assert.For("2D data for a cube map").ThatError(mismatch.Deserialize(ctx, wrongTarget, blobs)).HasCause(glstate.ErrInconsistentState)
	assert.For("mismatch cleared").ThatBoolean(mismatch.IsValid()).IsFalse()
	wrongTarget.SetString("target", gl.TEXTURE_2D_ARRAY.String())
	assert.For("2D data for an array").ThatError(mismatch.Deserialize(ctx, wrongTarget, blobs)).HasCause(glstate.ErrInconsistentState)

	invalid := glstate.TextureState{}
	assert.For("serialize invalid").ThatError(invalid.Serialize(ctx, document.New(), blobs)).HasCause(glstate.ErrNotValid)

	node.SetInt("version", 99)
	assert.For("future version").ThatError(got.Deserialize(ctx, node, blobs)).HasCause(glstate.ErrVersion)
	assert.For("cleared").ThatBoolean(got.IsValid()).IsFalse()
}

func TestTexturePlaceholderLevels(t *testing.T) {
	ctx, d, c := setup(t)
	assert := assert.To(t)
	tex := newTexture2D(d, 4, 4, map[int][]byte{0: fill(64, 1), 2: fill(4, 0xF0)})
	s := glstate.TextureState{}
	if !assert.For("snapshot").ThatError(s.Snapshot(ctx, c, uint64(tex), gl.TEXTURE_2D)).Succeeded() {
		return
	}
	k := s.Texture(0)
	assert.For("mips").ThatInteger(k.NumMips()).Equals(3)
	assert.For("consistent").ThatError(k.ConsistencyCheck()).Succeeded()
	assert.For("placeholder").ThatBytes(k.ImageData(1, 0, 0, 0)).Equals(make([]byte, 16))
	assert.For("missing level params").That(s.LevelParams(0, 1)).IsNil()
	assert.For("level 2").ThatBytes(k.ImageData(2, 0, 0, 0)).Equals(fill(4, 0xF0))

	name, err := s.Restore(ctx, c, nil, 0)
	if !assert.For("restore").ThatError(err).Succeeded() {
		return
	}
	assert.For("level 1 skipped").That(image(d, uint32(name), gl.TEXTURE_2D, 1)).IsNil()
	assert.For("level 2 restored").ThatBytes(image(d, uint32(name), gl.TEXTURE_2D, 2).Data[0]).Equals(fill(4, 0xF0))
}

func TestTextureBaseLevel(t *testing.T) {
	ctx, d, c := setup(t)
	assert := assert.To(t)
	tex := newTexture2D(d, 8, 8, map[int][]byte{1: fill(64, 2), 2: fill(16, 9)})
	d.BindTexture(gl.TEXTURE_2D, tex)
	d.TexParameteriv(gl.TEXTURE_2D, gl.TEXTURE_BASE_LEVEL, []int32{1})
	d.BindTexture(gl.TEXTURE_2D, 0)

	s := glstate.TextureState{}
	if !assert.For("snapshot").ThatError(s.Snapshot(ctx, c, uint64(tex), gl.TEXTURE_2D)).Succeeded() {
		return
	}
	k := s.Texture(0)
	assert.For("width").ThatInteger(k.Width()).Equals(8)
	assert.For("mips").ThatInteger(k.NumMips()).Equals(3)
	assert.For("level 0 placeholder").ThatBytes(k.ImageData(0, 0, 0, 0)).Equals(make([]byte, 256))
	assert.For("level 1").ThatBytes(k.ImageData(1, 0, 0, 0)).Equals(fill(64, 2))
	base, _ := k.KeyValueString(ktx.KeyBaseLevel)
	assert.For("base key").ThatString(base).Equals("1")

	name, err := s.Restore(ctx, c, nil, 0)
	if !assert.For("restore").ThatError(err).Succeeded() {
		return
	}
	assert.For("level 0 skipped").That(image(d, uint32(name), gl.TEXTURE_2D, 0)).IsNil()
	assert.For("level 2").ThatBytes(image(d, uint32(name), gl.TEXTURE_2D, 2).Data[0]).Equals(fill(16, 9))
	assert.For("base level").That(d.Texture(uint32(name)).Params[gl.TEXTURE_BASE_LEVEL]).DeepEquals([]float32{1})
}

func TestTextureBaseLevelNPOT(t *testing.T) {
	ctx, d, c := setup(t)
	assert := assert.To(t)
	tex := newTexture2D(d, 5, 3, map[int][]byte{0: fill(60, 4), 1: fill(8, 7)})
	d.BindTexture(gl.TEXTURE_2D, tex)
	d.TexParameteriv(gl.TEXTURE_2D, gl.TEXTURE_BASE_LEVEL, []int32{1})
	d.BindTexture(gl.TEXTURE_2D, 0)

	s := glstate.TextureState{}
	if !assert.For("snapshot").ThatError(s.Snapshot(ctx, c, uint64(tex), gl.TEXTURE_2D)).Succeeded() {
		return
	}
	k := s.Texture(0)
	assert.For("width").ThatInteger(k.Width()).Equals(5)
	assert.For("height").ThatInteger(k.Height()).Equals(3)
	assert.For("mips").ThatInteger(k.NumMips()).Equals(2)
	assert.For("level 0").ThatBytes(k.ImageData(0, 0, 0, 0)).Equals(fill(60, 4))
	assert.For("level 1").ThatBytes(k.ImageData(1, 0, 0, 0)).Equals(fill(8, 7))
}

func TestTextureOverrun(t *testing.T) {
	ctx, d, c := setup(t)
	assert := assert.To(t)
	tex := newTexture2D(d, 2, 2, map[int][]byte{0: fill(16, 1)})
	d.Faults.Overrun = 1
	s := glstate.TextureState{}
	assert.For("snapshot").ThatError(s.Snapshot(ctx, c, uint64(tex), gl.TEXTURE_2D)).HasCause(glstate.ErrBufferOverrun)
	assert.For("valid").ThatBoolean(s.IsValid()).IsFalse()
	assert.For("cleared").That(s.Texture(0)).IsNil()
	assert.For("bindings").ThatInteger(int(gl.GetInteger(d, gl.TEXTURE_BINDING_2D))).Equals(0)
}

func TestTextureLeavesStateUnchanged(t *testing.T) {
	ctx, d, c := setup(t)
	assert := assert.To(t)
	tex := newTexture2D(d, 2, 2, map[int][]byte{0: fill(16, 1)})
	other := newTexture2D(d, 1, 1, map[int][]byte{0: fill(4, 7)})
	pbo := d.GenBuffer()
	d.PixelStorei(gl.PACK_ALIGNMENT, 8)
	d.PixelStorei(gl.UNPACK_ALIGNMENT, 2)
	d.PixelStorei(gl.UNPACK_ROW_LENGTH, 5)
	d.BindTexture(gl.TEXTURE_2D, other)
	d.BindBuffer(gl.PIXEL_PACK_BUFFER, pbo)
	d.BindBuffer(gl.PIXEL_UNPACK_BUFFER, pbo)

	check := func(what string) {
		assert.For("%s pack alignment", what).ThatInteger(int(gl.GetInteger(d, gl.PACK_ALIGNMENT))).Equals(8)
		assert.For("%s unpack alignment", what).ThatInteger(int(gl.GetInteger(d, gl.UNPACK_ALIGNMENT))).Equals(2)
		assert.For("%s row length", what).ThatInteger(int(gl.GetInteger(d, gl.UNPACK_ROW_LENGTH))).Equals(5)
		assert.For("%s texture", what).ThatInteger(int(gl.GetInteger(d, gl.TEXTURE_BINDING_2D))).Equals(int(other))
		assert.For("%s pack buffer", what).ThatInteger(int(gl.GetInteger(d, gl.PIXEL_PACK_BUFFER_BINDING))).Equals(int(pbo))
		assert.For("%s unpack buffer", what).ThatInteger(int(gl.GetInteger(d, gl.PIXEL_UNPACK_BUFFER_BINDING))).Equals(int(pbo))
		assert.For("%s error", what).That(d.PendingError()).Equals(gl.NO_ERROR)
	}

	s := glstate.TextureState{}
	assert.For("snapshot").ThatError(s.Snapshot(ctx, c, uint64(tex), gl.TEXTURE_2D)).Succeeded()
	check("snapshot")
	name, err := s.Restore(ctx, c, nil, 0)
	assert.For("restore").ThatError(err).Succeeded()
	check("restore")
	assert.For("data").ThatBytes(image(d, uint32(name), gl.TEXTURE_2D, 0).Data[0]).Equals(fill(16, 1))
}

func TestTextureParamFailures(t *testing.T) {
	ctx, d, c := setup(t)
	assert := assert.To(t)
	tex := newTexture2D(d, 2, 2, map[int][]byte{0: fill(16, 1)})
	d.Faults.TexParamErrors = map[gl.Enum]gl.Enum{gl.TEXTURE_LOD_BIAS: gl.INVALID_ENUM}
	s := glstate.TextureState{}
	if !assert.For("snapshot").ThatError(s.Snapshot(ctx, c, uint64(tex), gl.TEXTURE_2D)).Succeeded() {
		return
	}
	_, has := s.Params()[gl.TEXTURE_LOD_BIAS]
	assert.For("lod bias").ThatBoolean(has).IsFalse()
	_, has = s.Params()[gl.TEXTURE_MAG_FILTER]
	assert.For("mag filter").ThatBoolean(has).IsTrue()

	d.Faults.RejectTexParams = map[gl.Enum]bool{gl.TEXTURE_MAG_FILTER: true}
	name, err := s.Restore(ctx, c, nil, 0)
	assert.For("restore").ThatError(err).Succeeded()
	assert.For("data").ThatBytes(image(d, uint32(name), gl.TEXTURE_2D, 0).Data[0]).Equals(fill(16, 1))
	assert.For("error").That(d.PendingError()).Equals(gl.NO_ERROR)
}

func TestTextureRestoreIdempotent(t *testing.T) {
	ctx, d, c := setup(t)
	assert := assert.To(t)
	tex := newTexture2D(d, 4, 4, map[int][]byte{0: fill(64, 1), 1: fill(16, 2), 2: fill(4, 3)})
	s := glstate.TextureState{}
	if !assert.For("snapshot").ThatError(s.Snapshot(ctx, c, uint64(tex), gl.TEXTURE_2D)).Succeeded() {
		return
	}
	target := d.GenTexture()
	for i := 0; i < 2; i++ {
		name, err := s.Restore(ctx, c, nil, uint64(target))
		assert.For("restore %d", i).ThatError(err).Succeeded()
		assert.For("name %d", i).That(name).Equals(uint64(target))
	}
	assert.For("live").ThatInteger(d.LiveTextures()).Equals(2)

	again := glstate.TextureState{}
	if !assert.For("resnapshot").ThatError(again.Snapshot(ctx, c, uint64(target), gl.TEXTURE_2D)).Succeeded() {
		return
	}
	assert.For("same texture").ThatBoolean(again.Texture(0).Equal(s.Texture(0))).IsTrue()
	assert.For("same params").That(again.Params()).DeepEquals(s.Params())
}

func TestTextureRemapper(t *testing.T) {
	ctx, d, c := setup(t)
	assert := assert.To(t)
	tex := newTexture2D(d, 2, 2, map[int][]byte{0: fill(16, 1)})
	s := glstate.TextureState{}
	assert.For("snapshot").ThatError(s.Snapshot(ctx, c, uint64(tex), gl.TEXTURE_2D)).Succeeded()

	r := glstate.NewMapRemapper(d)
	name, err := s.Restore(ctx, c, r, 0)
	assert.For("restore").ThatError(err).Succeeded()
	assert.For("declared").That(r.RemapHandle(glstate.Textures, uint64(tex))).Equals(name)
	assert.For("target").That(r.Target(glstate.Textures, uint64(tex))).Equals(gl.TEXTURE_2D)
	assert.For("unknown").That(r.RemapHandle(glstate.Textures, 1234)).Equals(uint64(1234))

	r.DeleteHandleAndObject(glstate.Textures, uint64(tex), name)
	assert.For("deleted").That(d.Texture(uint32(name))).IsNil()
	assert.For("forgotten").That(r.RemapHandle(glstate.Textures, uint64(tex))).Equals(uint64(tex))
}

func TestTextureRestoreFailureDeletes(t *testing.T) {
	ctx, d, c := setup(t)
	assert := assert.To(t)
	tex := newTexture2D(d, 2, 2, map[int][]byte{0: fill(16, 1)})
	s := glstate.TextureState{}
	assert.For("snapshot").ThatError(s.Snapshot(ctx, c, uint64(tex), gl.TEXTURE_2D)).Succeeded()

	// A texture name bound to another target cannot be rebound.
	cube := d.GenTexture()
	d.BindTexture(gl.TEXTURE_CUBE_MAP, cube)
	d.BindTexture(gl.TEXTURE_CUBE_MAP, 0)
	_, err := s.Restore(ctx, c, nil, uint64(cube))
	assert.For("wrong target").ThatError(err).Failed()
	assert.For("kept caller name").That(d.Texture(cube)).IsNotNil()

	empty := glstate.TextureState{}
	_, err = empty.Restore(ctx, c, nil, 0)
	assert.For("invalid").ThatError(err).HasCause(glstate.ErrNotValid)
	assert.For("live").ThatInteger(d.LiveTextures()).Equals(2)
}

func TestTextureCubeMap(t *testing.T) {
	ctx, d, c := setup(t)
	assert := assert.To(t)
	tex := d.GenTexture()
	d.BindTexture(gl.TEXTURE_CUBE_MAP, tex)
	for i, face := range gl.CubeFaces {
		d.TexImage2D(face, 0, gl.RGBA8, 2, 2, gl.RGBA, gl.UNSIGNED_BYTE, fill(16, byte(i*16)))
	}
	d.BindTexture(gl.TEXTURE_CUBE_MAP, 0)

	s := glstate.TextureState{}
	if !assert.For("snapshot").ThatError(s.Snapshot(ctx, c, uint64(tex), gl.TEXTURE_CUBE_MAP)).Succeeded() {
		return
	}
	k := s.Texture(0)
	assert.For("cubemap").ThatBoolean(k.IsCubemap()).IsTrue()
	for i := range gl.CubeFaces {
		assert.For("face %d", i).ThatBytes(k.ImageData(0, 0, i, 0)).Equals(fill(16, byte(i*16)))
	}

	name, err := s.Restore(ctx, c, nil, 0)
	if !assert.For("restore").ThatError(err).Succeeded() {
		return
	}
	for i, face := range gl.CubeFaces {
		assert.For("restored face %d", i).ThatBytes(image(d, uint32(name), face, 0).Data[0]).Equals(fill(16, byte(i*16)))
	}
}

func TestTextureArrays(t *testing.T) {
	ctx, d, c := setup(t)
	assert := assert.To(t)

	tex := d.GenTexture()
	d.BindTexture(gl.TEXTURE_2D_ARRAY, tex)
	layers := fill(2*2*4*3, 0)
	d.TexImage3D(gl.TEXTURE_2D_ARRAY, 0, gl.RGBA8, 2, 2, 3, gl.RGBA, gl.UNSIGNED_BYTE, layers)
	d.BindTexture(gl.TEXTURE_2D_ARRAY, 0)

	s := glstate.TextureState{}
	if !assert.For("snapshot").ThatError(s.Snapshot(ctx, c, uint64(tex), gl.TEXTURE_2D_ARRAY)).Succeeded() {
		return
	}
	k := s.Texture(0)
	assert.For("array size").ThatInteger(k.ArraySize()).Equals(3)
	for i := 0; i < 3; i++ {
		assert.For("layer %d", i).ThatBytes(k.ImageData(0, i, 0, 0)).Equals(layers[i*16 : (i+1)*16])
	}
	name, err := s.Restore(ctx, c, nil, 0)
	if assert.For("restore").ThatError(err).Succeeded() {
		img := image(d, uint32(name), gl.TEXTURE_2D_ARRAY, 0)
		assert.For("restored depth").ThatInteger(img.Depth).Equals(3)
		assert.For("restored layers").ThatBytes(img.Data[0]).Equals(layers)
	}

	oneD := d.GenTexture()
	d.BindTexture(gl.TEXTURE_1D_ARRAY, oneD)
	rows := fill(4*4*2, 0x33)
	d.TexImage2D(gl.TEXTURE_1D_ARRAY, 0, gl.RGBA8, 4, 2, gl.RGBA, gl.UNSIGNED_BYTE, rows)
	d.BindTexture(gl.TEXTURE_1D_ARRAY, 0)
	s1 := glstate.TextureState{}
	if !assert.For("1D array snapshot").ThatError(s1.Snapshot(ctx, c, uint64(oneD), gl.TEXTURE_1D_ARRAY)).Succeeded() {
		return
	}
	assert.For("1D").ThatBoolean(s1.Texture(0).Is1D()).IsTrue()
	assert.For("1D layers").ThatInteger(s1.Texture(0).ArraySize()).Equals(2)
	assert.For("1D layer 1").ThatBytes(s1.Texture(0).ImageData(0, 1, 0, 0)).Equals(rows[16:])
}

func TestTexture3D(t *testing.T) {
	ctx, d, c := setup(t)
	assert := assert.To(t)
	tex := d.GenTexture()
	d.BindTexture(gl.TEXTURE_3D, tex)
	level0 := fill(2*2*2*4, 0)
	d.TexImage3D(gl.TEXTURE_3D, 0, gl.RGBA8, 2, 2, 2, gl.RGBA, gl.UNSIGNED_BYTE, level0)
	d.TexImage3D(gl.TEXTURE_3D, 1, gl.RGBA8, 1, 1, 1, gl.RGBA, gl.UNSIGNED_BYTE, fill(4, 0xC0))
	d.BindTexture(gl.TEXTURE_3D, 0)

	s := glstate.TextureState{}
	if !assert.For("snapshot").ThatError(s.Snapshot(ctx, c, uint64(tex), gl.TEXTURE_3D)).Succeeded() {
		return
	}
	k := s.Texture(0)
	assert.For("3D").ThatBoolean(k.Is3D()).IsTrue()
	assert.For("slice 1").ThatBytes(k.ImageData(0, 0, 0, 1)).Equals(level0[16:])
	assert.For("level 1").ThatBytes(k.ImageData(1, 0, 0, 0)).Equals(fill(4, 0xC0))
	assert.For("level 1 slice 1").That(k.ImageData(1, 0, 0, 1)).IsNil()
	orientation, _ := k.KeyValueString(ktx.KeyOrientation)
	assert.For("orientation").ThatString(orientation).Equals("S=r,T=u,R=o")

	name, err := s.Restore(ctx, c, nil, 0)
	if assert.For("restore").ThatError(err).Succeeded() {
		assert.For("restored").ThatBytes(image(d, uint32(name), gl.TEXTURE_3D, 0).Data[0]).Equals(level0)
	}
}

func TestTexture1D(t *testing.T) {
	ctx, d, c := setup(t)
	assert := assert.To(t)
	tex := d.GenTexture()
	d.BindTexture(gl.TEXTURE_1D, tex)
	d.TexImage1D(gl.TEXTURE_1D, 0, gl.RGBA8, 4, gl.RGBA, gl.UNSIGNED_BYTE, fill(16, 5))
	d.BindTexture(gl.TEXTURE_1D, 0)

	s := glstate.TextureState{}
	if !assert.For("snapshot").ThatError(s.Snapshot(ctx, c, uint64(tex), gl.TEXTURE_1D)).Succeeded() {
		return
	}
	orientation, _ := s.Texture(0).KeyValueString(ktx.KeyOrientation)
	assert.For("orientation").ThatString(orientation).Equals("S=r")
	name, err := s.Restore(ctx, c, nil, 0)
	if assert.For("restore").ThatError(err).Succeeded() {
		assert.For("restored").ThatBytes(image(d, uint32(name), gl.TEXTURE_1D, 0).Data[0]).Equals(fill(16, 5))
	}
}

func TestTextureCompressed(t *testing.T) {
	ctx, d, c := setup(t)
	assert := assert.To(t)
	blocks := fill(8, 0x11)
	tex := d.GenTexture()
	d.BindTexture(gl.TEXTURE_2D, tex)
	d.CompressedTexImage2D(gl.TEXTURE_2D, 0, gl.COMPRESSED_RGB_S3TC_DXT1_EXT, 4, 4, blocks)
	d.BindTexture(gl.TEXTURE_2D, 0)

	s := glstate.TextureState{}
	if !assert.For("snapshot").ThatError(s.Snapshot(ctx, c, uint64(tex), gl.TEXTURE_2D)).Succeeded() {
		return
	}
	k := s.Texture(0)
	assert.For("compressed").ThatBoolean(k.IsCompressed()).IsTrue()
	assert.For("blocks").ThatBytes(k.ImageData(0, 0, 0, 0)).Equals(blocks)
	name, err := s.Restore(ctx, c, nil, 0)
	if assert.For("restore").ThatError(err).Succeeded() {
		assert.For("restored").ThatBytes(image(d, uint32(name), gl.TEXTURE_2D, 0).Data[0]).Equals(blocks)
	}
}

func TestTextureWithoutImages(t *testing.T) {
	ctx, d, c := setup(t)
	assert := assert.To(t)

	unbound := d.GenTexture()
	s := glstate.TextureState{}
	assert.For("none snapshot").ThatError(s.Snapshot(ctx, c, uint64(unbound), gl.NONE)).Succeeded()
	assert.For("none valid").ThatBoolean(s.IsValid()).IsTrue()
	name, err := s.Restore(ctx, c, nil, 0)
	assert.For("none restore").ThatError(err).Succeeded()
	assert.For("none name").That(d.Texture(uint32(name))).IsNotNil()
	assert.For("none target").That(d.Texture(uint32(name)).Target).Equals(gl.NONE)

	empty := d.GenTexture()
	d.BindTexture(gl.TEXTURE_2D, empty)
	d.TexParameteriv(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, []int32{int32(gl.CLAMP_TO_EDGE)})
	d.BindTexture(gl.TEXTURE_2D, 0)
	if !assert.For("empty snapshot").ThatError(s.Snapshot(ctx, c, uint64(empty), gl.TEXTURE_2D)).Succeeded() {
		return
	}
	assert.For("unquerable").ThatBoolean(s.IsUnquerable()).IsTrue()
	assert.For("no images").That(s.Texture(0)).IsNil()
	name, err = s.Restore(ctx, c, nil, 0)
	assert.For("empty restore").ThatError(err).Succeeded()
	assert.For("wrap").That(d.Texture(uint32(name)).Params[gl.TEXTURE_WRAP_S]).DeepEquals([]float32{float32(gl.CLAMP_TO_EDGE)})

	assert.For("bad target").ThatError(s.Snapshot(ctx, c, uint64(empty), gl.ARRAY_BUFFER)).HasCause(glstate.ErrUnsupportedTarget)
}

func TestTextureBuffer(t *testing.T) {
	ctx, d, c := setup(t)
	assert := assert.To(t)
	buf := d.GenBuffer()
	d.BindBuffer(gl.ARRAY_BUFFER, buf)
	d.BufferData(gl.ARRAY_BUFFER, fill(16, 0), gl.STATIC_DRAW)
	d.BindBuffer(gl.ARRAY_BUFFER, 0)
	tex := d.GenTexture()
	d.BindTexture(gl.TEXTURE_BUFFER, tex)
	d.TexBuffer(gl.TEXTURE_BUFFER, gl.RGBA8, buf)
	d.BindTexture(gl.TEXTURE_BUFFER, 0)

	s := glstate.TextureState{}
	if !assert.For("snapshot").ThatError(s.Snapshot(ctx, c, uint64(tex), gl.TEXTURE_BUFFER)).Succeeded() {
		return
	}
	assert.For("buffer").That(s.Buffer()).Equals(uint64(buf))

	replayed := d.GenBuffer()
	r := glstate.NewMapRemapper(d)
	r.DeclareHandle(glstate.Buffers, uint64(buf), uint64(replayed), gl.ARRAY_BUFFER)
	name, err := s.Restore(ctx, c, r, 0)
	if !assert.For("restore").ThatError(err).Succeeded() {
		return
	}
	restored := d.Texture(uint32(name))
	assert.For("restored buffer").That(restored.Buffer).Equals(replayed)
	assert.For("restored format").That(restored.BufferFormat).Equals(gl.RGBA8)

	s.RemapHandles(r)
	assert.For("remapped").That(s.Buffer()).Equals(uint64(replayed))
}

func TestTextureFloatParams(t *testing.T) {
	ctx, d, c := setup(t)
	assert := assert.To(t)
	tex := newTexture2D(d, 2, 2, map[int][]byte{0: fill(16, 0)})
	d.BindTexture(gl.TEXTURE_2D, tex)
	d.TexParameterfv(gl.TEXTURE_2D, gl.TEXTURE_MIN_LOD, []float32{1.5})
	d.TexParameterfv(gl.TEXTURE_2D, gl.TEXTURE_LOD_BIAS, []float32{-0.25})
	d.BindTexture(gl.TEXTURE_2D, 0)

	s := glstate.TextureState{}
	if !assert.For("snapshot").ThatError(s.Snapshot(ctx, c, uint64(tex), gl.TEXTURE_2D)).Succeeded() {
		return
	}
	minLOD := s.Params()[gl.TEXTURE_MIN_LOD]
	assert.For("min lod type").That(minLOD.Type).Equals(glstate.FloatParam)
	assert.For("min lod").ThatFloat(float64(minLOD.Floats[0])).Equals(1.5, 0)
	assert.For("lod bias").ThatFloat(float64(s.Params()[gl.TEXTURE_LOD_BIAS].Floats[0])).Equals(-0.25, 0)

	name, err := s.Restore(ctx, c, nil, 0)
	if !assert.For("restore").ThatError(err).Succeeded() {
		return
	}
	restored := d.Texture(uint32(name))
	assert.For("restored min lod").ThatFloat(float64(restored.Params[gl.TEXTURE_MIN_LOD][0])).Equals(1.5, 0)
	assert.For("restored lod bias").ThatFloat(float64(restored.Params[gl.TEXTURE_LOD_BIAS][0])).IsAtMost(-0.25)
}
