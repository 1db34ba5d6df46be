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
	"context"
	"testing"

	"github.com/ValveSoftware/vogl-sub006/core/assert"
	"github.com/ValveSoftware/vogl-sub006/core/data/document"
	"github.com/ValveSoftware/vogl-sub006/gapis/blob"
	"github.com/ValveSoftware/vogl-sub006/gapis/glstate"
	"github.com/ValveSoftware/vogl-sub006/gl"
	"github.com/ValveSoftware/vogl-sub006/gl/gltest"
)

// newMultisample creates a multisample texture whose samples hold distinct
// byte ramps and returns it with the sample data.
func newMultisample(d *gltest.Driver, target, format gl.Enum, samples, w, h, layers int) (uint32, [][]byte) {
	tex := d.GenTexture()
	d.BindTexture(target, tex)
	if target == gl.TEXTURE_2D_MULTISAMPLE_ARRAY {
		d.TexImage3DMultisample(target, int32(samples), format, int32(w), int32(h), int32(layers), true)
	} else {
		d.TexImage2DMultisample(target, int32(samples), format, int32(w), int32(h), true)
	}
	d.BindTexture(target, 0)
	img := image(d, tex, target, 0)
	for i := range img.Data {
		img.Data[i] = fill(len(img.Data[i]), byte(i*64+1))
	}
	return tex, img.Data
}

func TestMultisampleDepthStencil(t *testing.T) {
	ctx, d, c := setup(t)
	assert := assert.To(t)
	tex, samples := newMultisample(d, gl.TEXTURE_2D_MULTISAMPLE, gl.DEPTH24_STENCIL8, 4, 2, 2, 1)

	s := glstate.TextureState{}
	if !assert.For("snapshot").ThatError(s.Snapshot(ctx, c, uint64(tex), gl.TEXTURE_2D_MULTISAMPLE)).Succeeded() {
		return
	}
	assert.For("samples").ThatInteger(s.NumSamples()).Equals(4)
	for i, want := range samples {
		k := s.Texture(i)
		assert.For("sample %d format", i).That(k.InternalFormat()).Equals(gl.DEPTH24_STENCIL8)
		assert.For("sample %d", i).ThatBytes(k.ImageData(0, 0, 0, 0)).Equals(want)
	}
	assert.For("planes deleted").ThatInteger(d.LiveTextures()).Equals(1)

	name, err := s.Restore(ctx, c, nil, 0)
	if !assert.For("restore").ThatError(err).Succeeded() {
		return
	}
	img := image(d, uint32(name), gl.TEXTURE_2D_MULTISAMPLE, 0)
	assert.For("restored samples").ThatInteger(img.Samples).Equals(4)
	for i, want := range samples {
		assert.For("restored sample %d", i).ThatBytes(img.Data[i]).Equals(want)
	}
	assert.For("restore planes deleted").ThatInteger(d.LiveTextures()).Equals(2)
	assert.For("error").That(d.PendingError()).Equals(gl.NO_ERROR)

	blobs := blob.NewInMemory(ctx)
	node := document.New()
	if !assert.For("serialize").ThatError(s.Serialize(ctx, node, blobs)).Succeeded() {
		return
	}
	ids, err := node.GetArray("texture_data_blob_ids")
	if assert.For("blob ids").ThatError(err).Succeeded() {
		assert.For("blob count").ThatInteger(ids.Len()).Equals(4)
	}
	got := glstate.TextureState{}
	if !assert.For("deserialize").ThatError(got.Deserialize(ctx, node, blobs)).Succeeded() {
		return
	}
	assert.For("deserialized samples").ThatInteger(got.NumSamples()).Equals(4)
	for i := range samples {
		assert.For("deserialized sample %d", i).ThatBoolean(got.Texture(i).Equal(s.Texture(i))).IsTrue()
	}
}

func TestMultisampleArray(t *testing.T) {
	ctx, d, c := setup(t)
	assert := assert.To(t)
	tex, samples := newMultisample(d, gl.TEXTURE_2D_MULTISAMPLE_ARRAY, gl.RGBA8, 2, 2, 2, 3)

	s := glstate.TextureState{}
	if !assert.For("snapshot").ThatError(s.Snapshot(ctx, c, uint64(tex), gl.TEXTURE_2D_MULTISAMPLE_ARRAY)).Succeeded() {
		return
	}
	for i, want := range samples {
		k := s.Texture(i)
		assert.For("sample %d layers", i).ThatInteger(k.ArraySize()).Equals(3)
		for layer := 0; layer < 3; layer++ {
			assert.For("sample %d layer %d", i, layer).ThatBytes(k.ImageData(0, layer, 0, 0)).Equals(want[layer*16 : (layer+1)*16])
		}
	}

	name, err := s.Restore(ctx, c, nil, 0)
	if !assert.For("restore").ThatError(err).Succeeded() {
		return
	}
	img := image(d, uint32(name), gl.TEXTURE_2D_MULTISAMPLE_ARRAY, 0)
	assert.For("restored layers").ThatInteger(img.Depth).Equals(3)
	for i, want := range samples {
		assert.For("restored sample %d", i).ThatBytes(img.Data[i]).Equals(want)
	}
}

func TestMultisampleWithoutSplitter(t *testing.T) {
	ctx, d, _ := setup(t)
	assert := assert.To(t)
	c, err := glstate.NewContext(ctx, d, nil)
	if !assert.For("context").ThatError(err).Succeeded() {
		return
	}
	tex, _ := newMultisample(d, gl.TEXTURE_2D_MULTISAMPLE, gl.RGBA8, 2, 2, 2, 1)
	s := glstate.TextureState{}
	assert.For("snapshot").ThatError(s.Snapshot(ctx, c, uint64(tex), gl.TEXTURE_2D_MULTISAMPLE)).HasCause(glstate.ErrNoSplitter)
	assert.For("valid").ThatBoolean(s.IsValid()).IsFalse()
}

func TestStencilLayout(t *testing.T) {
	assert := assert.To(t)
	_, ok := glstate.FindStencilLayout(gl.RGBA8)
	assert.For("rgba8").ThatBoolean(ok).IsFalse()

	l, ok := glstate.FindStencilLayout(gl.DEPTH32F_STENCIL8)
	if !assert.For("d32fs8").ThatBoolean(ok).IsTrue() {
		return
	}
	texels := []byte{1, 2, 3, 4, 0x55, 0, 0, 0, 5, 6, 7, 8, 0xAA, 0, 0, 0}
	proxy := make([]byte, 8)
	l.ExtractStencil(texels, proxy)
	assert.For("proxy").ThatBytes(proxy).Equals([]byte{0x55, 0, 0, 0, 0xAA, 0, 0, 0})

	out := make([]byte, len(texels))
	copy(out, texels)
	out[4], out[12] = 0, 0
	l.MergeStencil(proxy, out)
	assert.For("merged").ThatBytes(out).Equals(texels)

	l, _ = glstate.FindStencilLayout(gl.DEPTH24_STENCIL8)
	proxy = make([]byte, 4)
	l.ExtractStencil([]byte{0x7F, 1, 2, 3}, proxy)
	assert.For("d24s8 proxy").ThatBytes(proxy).Equals([]byte{0, 0, 0, 0x7F})
	assert.For("split target").That(glstate.SplitTarget(gl.TEXTURE_2D_MULTISAMPLE_ARRAY)).Equals(gl.TEXTURE_2D_ARRAY)
}

type switcher struct{ switches, restores int }

func (s *switcher) MakeAuxCurrent(ctx context.Context) (func(), error) {
	s.switches++
	return func() { s.restores++ }, nil
}

func TestShaderSplitterPreservesState(t *testing.T) {
	ctx, d, _ := setup(t)
	assert := assert.To(t)
	sw := &switcher{}
	splitter := glstate.NewShaderSplitter(d, sw)
	defer splitter.Release(ctx)

	d.Viewport(1, 2, 30, 40)
	d.Enable(gl.BLEND)
	d.DepthMask(false)
	check := func(what string) {
		vp := make([]int32, 4)
		d.GetIntegerv(gl.VIEWPORT, vp)
		assert.For("%s viewport", what).That(vp).DeepEquals([]int32{1, 2, 30, 40})
		assert.For("%s blend", what).ThatBoolean(d.IsEnabled(gl.BLEND)).IsTrue()
		assert.For("%s sample mask", what).ThatBoolean(d.IsEnabled(gl.SAMPLE_MASK)).IsFalse()
		assert.For("%s depth mask", what).ThatInteger(int(gl.GetInteger(d, gl.DEPTH_WRITEMASK))).Equals(0)
		assert.For("%s program", what).ThatInteger(int(gl.GetInteger(d, gl.CURRENT_PROGRAM))).Equals(0)
		assert.For("%s vertex array", what).ThatInteger(int(gl.GetInteger(d, gl.VERTEX_ARRAY_BINDING))).Equals(0)
		assert.For("%s framebuffer", what).ThatInteger(int(gl.GetInteger(d, gl.DRAW_FRAMEBUFFER_BINDING))).Equals(0)
		assert.For("%s framebuffers", what).ThatInteger(d.LiveFramebuffers()).Equals(0)
		assert.For("%s error", what).That(d.PendingError()).Equals(gl.NO_ERROR)
	}

	color, _ := newMultisample(d, gl.TEXTURE_2D_MULTISAMPLE, gl.RGBA8, 2, 4, 4, 1)
	planes, err := splitter.Split(ctx, gl.TEXTURE_2D_MULTISAMPLE, color)
	if !assert.For("split").ThatError(err).Succeeded() {
		return
	}
	check("split")
	assert.For("planes").ThatSlice(planes).IsLength(2)
	for i, p := range planes {
		img := image(d, p, gl.TEXTURE_2D, 0)
		if assert.For("plane %d", i).That(img).IsNotNil() {
			assert.For("plane %d format", i).That(img.InternalFormat).Equals(gl.RGBA8)
			assert.For("plane %d width", i).ThatInteger(img.Width).Equals(4)
		}
	}
	assert.For("combine").ThatError(splitter.Combine(ctx, planes, gl.TEXTURE_2D_MULTISAMPLE, color)).Succeeded()
	check("combine")
	assert.For("too few planes").ThatError(splitter.Combine(ctx, planes[:1], gl.TEXTURE_2D_MULTISAMPLE, color)).HasCause(glstate.ErrInconsistentState)
	for _, p := range planes {
		d.DeleteTexture(p)
	}

	ds, _ := newMultisample(d, gl.TEXTURE_2D_MULTISAMPLE, gl.DEPTH24_STENCIL8, 4, 2, 2, 1)
	proxies, err := splitter.SplitStencil(ctx, gl.TEXTURE_2D_MULTISAMPLE, ds)
	if !assert.For("split stencil").ThatError(err).Succeeded() {
		return
	}
	check("split stencil")
	assert.For("proxies").ThatSlice(proxies).IsLength(4)
	assert.For("proxy format").That(image(d, proxies[0], gl.TEXTURE_2D, 0).InternalFormat).Equals(glstate.StencilProxyFormat)
	assert.For("stencil mode").That(d.Texture(ds).Params[gl.DEPTH_STENCIL_TEXTURE_MODE]).DeepEquals([]float32{float32(gl.DEPTH_COMPONENT)})
	assert.For("combine stencil").ThatError(splitter.CombineStencil(ctx, proxies, gl.TEXTURE_2D_MULTISAMPLE, ds)).Succeeded()
	check("combine stencil")

	_, err = splitter.SplitStencil(ctx, gl.TEXTURE_2D_MULTISAMPLE, color)
	assert.For("no stencil").ThatError(err).HasCause(glstate.ErrUnsupportedFormat)
	assert.For("balanced switches").ThatInteger(sw.restores).Equals(sw.switches)
	assert.For("switched").ThatInteger(sw.switches).Equals(6)
}
