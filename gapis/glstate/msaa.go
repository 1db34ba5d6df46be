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
	"fmt"

	"github.com/ValveSoftware/vogl-sub006/core/log"
	"github.com/ValveSoftware/vogl-sub006/gl"
	"github.com/ValveSoftware/vogl-sub006/gl/pixfmt"
)

// MSAASplitter moves the samples of multisample textures in and out of
// single sample textures. Every method leaves the GL state of the caller
// unchanged apart from the textures it creates or writes.
type MSAASplitter interface {
	// Split creates one texture per sample of the multisample texture srcTex
	// bound at src. The textures use SplitTarget(src) and the internal format
	// of srcTex. The stencil bits of depth-stencil formats are undefined.
	Split(ctx context.Context, src gl.Enum, srcTex uint32) ([]uint32, error)
	// SplitStencil creates one StencilProxyFormat texture per sample, holding
	// the stencil index of srcTex in the StencilLayout proxy channel.
	SplitStencil(ctx context.Context, src gl.Enum, srcTex uint32) ([]uint32, error)
	// Combine writes plane i into sample i of dstTex. Stencil is preserved.
	Combine(ctx context.Context, planes []uint32, dst gl.Enum, dstTex uint32) error
	// CombineStencil writes the stencil proxy i into the stencil of sample i
	// of dstTex.
	CombineStencil(ctx context.Context, planes []uint32, dst gl.Enum, dstTex uint32) error
}

// StencilProxyFormat is the internal format of the textures SplitStencil
// produces.
const StencilProxyFormat = gl.RGBA8

// SplitTarget returns the single sample target used for the planes of a
// multisample target.
func SplitTarget(ms gl.Enum) gl.Enum {
	if ms == gl.TEXTURE_2D_MULTISAMPLE_ARRAY {
		return gl.TEXTURE_2D_ARRAY
	}
	return gl.TEXTURE_2D
}

// StencilLayout locates the stencil index in the readback data of a format
// and in the stencil proxy texels.
type StencilLayout struct {
	// ProxyByte is the byte of the RGBA8 proxy texel that holds the stencil.
	ProxyByte int
	// Stride is the size of a texel read back with the optimum format.
	Stride int
	// Offset is the byte of the texel that holds the stencil index.
	Offset int
}

var stencilLayouts = map[gl.Enum]StencilLayout{
	gl.DEPTH24_STENCIL8:  {ProxyByte: 3, Stride: 4, Offset: 0},
	gl.DEPTH_STENCIL:     {ProxyByte: 3, Stride: 4, Offset: 0},
	gl.DEPTH32F_STENCIL8: {ProxyByte: 0, Stride: 8, Offset: 4},
	gl.STENCIL_INDEX8:    {ProxyByte: 0, Stride: 1, Offset: 0},
}

// FindStencilLayout returns the stencil layout of the internal format f.
func FindStencilLayout(f gl.Enum) (StencilLayout, bool) {
	l, ok := stencilLayouts[f]
	return l, ok
}

// ExtractStencil copies the stencil indices of texels into the proxy bytes of
// proxy, which holds 4 bytes per texel.
func (l StencilLayout) ExtractStencil(texels, proxy []byte) {
	for i := 0; i*l.Stride < len(texels) && i*4 < len(proxy); i++ {
		proxy[i*4+l.ProxyByte] = texels[i*l.Stride+l.Offset]
	}
}

// MergeStencil copies the stencil indices in the proxy bytes of proxy into
// texels.
func (l StencilLayout) MergeStencil(proxy, texels []byte) {
	for i := 0; i*l.Stride < len(texels) && i*4 < len(proxy); i++ {
		texels[i*l.Stride+l.Offset] = proxy[i*4+l.ProxyByte]
	}
}

// ContextSwitcher makes an auxiliary context that shares objects with the
// current one current, returning a function that switches back.
type ContextSwitcher interface {
	MakeAuxCurrent(ctx context.Context) (restore func(), err error)
}

// ShaderSplitter implements MSAASplitter by drawing fullscreen triangles that
// fetch individual samples.
type ShaderSplitter struct {
	GL gl.Functions
	// Switcher is optional. When set every operation runs on the auxiliary
	// context.
	Switcher ContextSwitcher

	programs map[programKey]uint32
}

var _ MSAASplitter = (*ShaderSplitter)(nil)

// NewShaderSplitter returns a splitter that draws with fns.
func NewShaderSplitter(fns gl.Functions, switcher ContextSwitcher) *ShaderSplitter {
	return &ShaderSplitter{GL: fns, Switcher: switcher, programs: map[programKey]uint32{}}
}

// Release deletes the programs the splitter has built.
func (s *ShaderSplitter) Release(ctx context.Context) {
	for k, p := range s.programs {
		s.GL.DeleteProgram(p)
		delete(s.programs, k)
	}
}

type programOp int

const (
	opSplit programOp = iota
	opSplitStencil
	opCombine
	opCombineStencil
)

type programKey struct {
	op    programOp
	kind  pixfmt.Kind
	depth bool
	array bool
	proxy int
}

const vertexShader = `#version 150
void main() {
	vec2 p = vec2(float((gl_VertexID & 1) << 2) - 1.0, float((gl_VertexID & 2) << 1) - 1.0);
	gl_Position = vec4(p, 0.0, 1.0);
}
`

func samplerPrefix(k pixfmt.Kind) string {
	switch k {
	case pixfmt.KindInt:
		return "i"
	case pixfmt.KindUint:
		return "u"
	}
	return ""
}

func (k programKey) fragmentShader() string {
	src := "#version 150\n#extension GL_ARB_texture_multisample : enable\n"
	src += "uniform int sample_index;\nuniform int layer;\nuniform int bit;\n"
	sampler, coord, fetch := "sampler2DMS", "ivec2(gl_FragCoord.xy)", "sample_index"
	if k.array {
		sampler, coord = "sampler2DMSArray", "ivec3(ivec2(gl_FragCoord.xy), layer)"
	}
	if k.op == opCombine || k.op == opCombineStencil {
		sampler, fetch = "sampler2D", "0"
		if k.array {
			sampler = "sampler2DArray"
		}
	}
	prefix := samplerPrefix(k.kind)
	if k.op == opSplitStencil {
		prefix = "u"
	}
	if k.op == opCombineStencil {
		prefix = ""
	}
	src += fmt.Sprintf("uniform %s%s tex;\n", prefix, sampler)
	switch {
	case k.op == opSplitStencil:
		src += "out vec4 color;\n"
	case k.op == opCombineStencil || k.depth:
	default:
		src += fmt.Sprintf("out %svec4 color;\n", prefix)
	}
	src += "void main() {\n"
	src += fmt.Sprintf("\t%svec4 v = texelFetch(tex, %s, %s);\n", prefix, coord, fetch)
	switch {
	case k.op == opSplitStencil:
		src += "\tcolor = vec4(0.0);\n"
		src += fmt.Sprintf("\tcolor[%d] = float(v.r) / 255.0;\n", k.proxy)
	case k.op == opCombineStencil:
		src += fmt.Sprintf("\tuint s = uint(v[%d] * 255.0 + 0.5);\n", k.proxy)
		src += "\tif (bit >= 0 && ((s >> uint(bit)) & 1u) == 0u) {\n\t\tdiscard;\n\t}\n"
	case k.depth:
		src += "\tgl_FragDepth = v.r;\n"
	default:
		src += "\tcolor = v;\n"
	}
	return src + "}\n"
}

func (s *ShaderSplitter) compile(ctx context.Context, ty gl.Enum, src string) (uint32, error) {
	sh := s.GL.CreateShader(ty)
	s.GL.ShaderSource(sh, src)
	s.GL.CompileShader(sh)
	status := []int32{0}
	s.GL.GetShaderiv(sh, gl.COMPILE_STATUS, status)
	if status[0] == 0 {
		msg := s.GL.GetShaderInfoLog(sh)
		s.GL.DeleteShader(sh)
		return 0, log.Errf(ctx, nil, "Compiling %v failed:\n%s", ty, msg)
	}
	return sh, nil
}

func (s *ShaderSplitter) program(ctx context.Context, k programKey) (uint32, error) {
	if p, ok := s.programs[k]; ok {
		return p, nil
	}
	vs, err := s.compile(ctx, gl.VERTEX_SHADER, vertexShader)
	if err != nil {
		return 0, err
	}
	defer s.GL.DeleteShader(vs)
	fs, err := s.compile(ctx, gl.FRAGMENT_SHADER, k.fragmentShader())
	if err != nil {
		return 0, err
	}
	defer s.GL.DeleteShader(fs)
	p := s.GL.CreateProgram()
	s.GL.AttachShader(p, vs)
	s.GL.AttachShader(p, fs)
	s.GL.LinkProgram(p)
	status := []int32{0}
	s.GL.GetProgramiv(p, gl.LINK_STATUS, status)
	if status[0] == 0 {
		msg := s.GL.GetProgramInfoLog(p)
		s.GL.DeleteProgram(p)
		return 0, log.Errf(ctx, nil, "Linking MSAA program failed:\n%s", msg)
	}
	s.programs[k] = p
	return p, nil
}

func (s *ShaderSplitter) uniform(p uint32, name string, v int32) {
	if l := s.GL.GetUniformLocation(p, name); l >= 0 {
		s.GL.Uniform1i(l, v)
	}
}

// msTexture describes the level 0 image of a multisample texture.
type msTexture struct {
	width, height, layers, samples int
	desc                           *pixfmt.Descriptor
}

func (s *ShaderSplitter) describe(ctx context.Context, t *tweaker, target gl.Enum, tex uint32) (msTexture, error) {
	t.bindTexture(target, tex)
	q := func(p gl.Enum) int { return int(gl.GetTexLevelParameter(s.GL, target, 0, p)) }
	m := msTexture{
		width:   q(gl.TEXTURE_WIDTH),
		height:  q(gl.TEXTURE_HEIGHT),
		layers:  q(gl.TEXTURE_DEPTH),
		samples: q(gl.TEXTURE_SAMPLES),
	}
	f := gl.Enum(q(gl.TEXTURE_INTERNAL_FORMAT))
	if err := gl.CheckError(s.GL); err != nil {
		return m, log.Errf(ctx, err, "Querying texture %d", tex)
	}
	if m.desc = pixfmt.Find(f); m.desc == nil {
		return m, log.Errf(ctx, ErrUnsupportedFormat, "Texture %d has format %v", tex, f)
	}
	if m.layers < 1 {
		m.layers = 1
	}
	if m.samples < 1 {
		m.samples = 1
	}
	return m, nil
}

func (s *ShaderSplitter) begin(ctx context.Context) (*tweaker, func(), error) {
	restore := func() {}
	if s.Switcher != nil {
		r, err := s.Switcher.MakeAuxCurrent(ctx)
		if err != nil {
			return nil, nil, log.Err(ctx, err, "Switching to the auxiliary context")
		}
		restore = r
	}
	gl.CheckError(s.GL)
	t := newTweaker(s.GL)
	t.activeTexture(gl.TEXTURE0)
	for _, c := range []gl.Enum{gl.BLEND, gl.CULL_FACE, gl.SCISSOR_TEST, gl.STENCIL_TEST,
		gl.DEPTH_TEST, gl.SAMPLE_MASK, gl.RASTERIZER_DISCARD, gl.FRAMEBUFFER_SRGB} {
		t.glDisable(c)
	}
	t.colorMask(true, true, true, true)
	t.depthMask(true)
	t.stencilMask(0xFF)
	t.stencilState()
	t.sampleMask(0xFFFFFFFF)
	t.useProgram(0)
	t.bindVertexArray(t.genVertexArray())
	fb := t.genFramebuffer()
	t.bindFramebuffer(gl.FRAMEBUFFER, fb)
	return t, func() {
		t.revert(ctx)
		restore()
	}, nil
}

// draw renders one fullscreen triangle into attachment for each layer.
func (s *ShaderSplitter) draw(ctx context.Context, t *tweaker, p uint32, m msTexture, target gl.Enum, tex uint32, attachment gl.Enum, sample, bit int) error {
	t.viewport(0, 0, int32(m.width), int32(m.height))
	t.useProgram(p)
	s.uniform(p, "sample_index", int32(sample))
	s.uniform(p, "bit", int32(bit))
	for layer := 0; layer < m.layers; layer++ {
		if gl.IsArrayTarget(target) {
			s.GL.FramebufferTextureLayer(gl.FRAMEBUFFER, attachment, tex, 0, int32(layer))
		} else {
			s.GL.FramebufferTexture2D(gl.FRAMEBUFFER, attachment, target, tex, 0)
		}
		if attachment == gl.COLOR_ATTACHMENT0 {
			s.GL.DrawBuffer(gl.COLOR_ATTACHMENT0)
		} else {
			s.GL.DrawBuffer(gl.NONE)
		}
		s.GL.ReadBuffer(gl.NONE)
		if st := s.GL.CheckFramebufferStatus(gl.FRAMEBUFFER); st != gl.FRAMEBUFFER_COMPLETE {
			return log.Errf(ctx, ErrIncompleteFramebuffer, "Status %v drawing to texture %d", st, tex)
		}
		s.uniform(p, "layer", int32(layer))
		s.GL.DrawArrays(gl.TRIANGLES, 0, 3)
		s.GL.FramebufferTexture2D(gl.FRAMEBUFFER, attachment, gl.TEXTURE_2D, 0, 0)
		if err := gl.CheckError(s.GL); err != nil {
			return log.Errf(ctx, err, "Drawing layer %d of sample %d", layer, sample)
		}
	}
	return nil
}

// newPlanes creates count single sample textures shaped like m.
func (s *ShaderSplitter) newPlanes(ctx context.Context, t *tweaker, target gl.Enum, m msTexture, count int, f gl.Enum) ([]uint32, error) {
	desc := pixfmt.Find(f)
	planes := make([]uint32, 0, count)
	for i := 0; i < count; i++ {
		p := s.GL.GenTexture()
		planes = append(planes, p)
		t.bindTexture(target, p)
		s.GL.TexParameteriv(target, gl.TEXTURE_MIN_FILTER, []int32{int32(gl.NEAREST)})
		s.GL.TexParameteriv(target, gl.TEXTURE_MAG_FILTER, []int32{int32(gl.NEAREST)})
		s.GL.TexParameteriv(target, gl.TEXTURE_MAX_LEVEL, []int32{0})
		if target == gl.TEXTURE_2D_ARRAY {
			s.GL.TexImage3D(target, 0, f, int32(m.width), int32(m.height), int32(m.layers), desc.OptimumGetImageFmt, desc.OptimumGetImageType, nil)
		} else {
			s.GL.TexImage2D(target, 0, f, int32(m.width), int32(m.height), desc.OptimumGetImageFmt, desc.OptimumGetImageType, nil)
		}
		if err := gl.CheckError(s.GL); err != nil {
			for _, p := range planes {
				s.GL.DeleteTexture(p)
			}
			return nil, log.Errf(ctx, err, "Creating plane %d", i)
		}
	}
	return planes, nil
}

func (s *ShaderSplitter) split(ctx context.Context, src gl.Enum, srcTex uint32, stencil bool) (planes []uint32, err error) {
	t, done, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer done()
	m, err := s.describe(ctx, t, src, srcTex)
	if err != nil {
		return nil, err
	}
	k := programKey{op: opSplit, kind: m.desc.ComponentKind(), depth: m.desc.HasDepth(), array: src == gl.TEXTURE_2D_MULTISAMPLE_ARRAY}
	f, attachment := m.desc.ActualInternalFmt, gl.COLOR_ATTACHMENT0
	switch {
	case stencil:
		l, ok := FindStencilLayout(f)
		if !ok {
			return nil, log.Errf(ctx, ErrUnsupportedFormat, "No stencil layout for %v", f)
		}
		k = programKey{op: opSplitStencil, array: k.array, proxy: l.ProxyByte}
		f = StencilProxyFormat
		t.texParameteri(src, gl.DEPTH_STENCIL_TEXTURE_MODE, int32(gl.STENCIL_INDEX))
		t.depthMask(false)
	case k.depth:
		attachment = gl.DEPTH_ATTACHMENT
		t.glEnable(gl.DEPTH_TEST)
		t.depthFunc(gl.ALWAYS)
		t.colorMask(false, false, false, false)
	}
	p, err := s.program(ctx, k)
	if err != nil {
		return nil, err
	}
	target := SplitTarget(src)
	if planes, err = s.newPlanes(ctx, t, target, m, m.samples, f); err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			for _, p := range planes {
				s.GL.DeleteTexture(p)
			}
			planes = nil
		}
	}()
	t.bindTexture(src, srcTex)
	for i, plane := range planes {
		if err := s.draw(ctx, t, p, m, target, plane, attachment, i, -1); err != nil {
			return nil, err
		}
	}
	return planes, nil
}

func (s *ShaderSplitter) Split(ctx context.Context, src gl.Enum, srcTex uint32) ([]uint32, error) {
	return s.split(log.Enter(ctx, "ShaderSplitter.Split"), src, srcTex, false)
}

func (s *ShaderSplitter) SplitStencil(ctx context.Context, src gl.Enum, srcTex uint32) ([]uint32, error) {
	return s.split(log.Enter(ctx, "ShaderSplitter.SplitStencil"), src, srcTex, true)
}

func (s *ShaderSplitter) Combine(ctx context.Context, planes []uint32, dst gl.Enum, dstTex uint32) error {
	ctx = log.Enter(ctx, "ShaderSplitter.Combine")
	t, done, err := s.begin(ctx)
	if err != nil {
		return err
	}
	defer done()
	m, err := s.describe(ctx, t, dst, dstTex)
	if err != nil {
		return err
	}
	if len(planes) != m.samples {
		return log.Errf(ctx, ErrInconsistentState, "%d planes for %d samples", len(planes), m.samples)
	}
	k := programKey{op: opCombine, kind: m.desc.ComponentKind(), depth: m.desc.HasDepth(), array: dst == gl.TEXTURE_2D_MULTISAMPLE_ARRAY}
	attachment := gl.COLOR_ATTACHMENT0
	if k.depth {
		attachment = gl.DEPTH_ATTACHMENT
		t.glEnable(gl.DEPTH_TEST)
		t.depthFunc(gl.ALWAYS)
		t.colorMask(false, false, false, false)
	}
	p, err := s.program(ctx, k)
	if err != nil {
		return err
	}
	t.glEnable(gl.SAMPLE_MASK)
	src := SplitTarget(dst)
	for i, plane := range planes {
		t.bindTexture(src, plane)
		s.GL.SampleMaski(0, 1<<uint(i))
		if err := s.draw(ctx, t, p, m, dst, dstTex, attachment, i, -1); err != nil {
			return err
		}
	}
	return nil
}

func (s *ShaderSplitter) CombineStencil(ctx context.Context, planes []uint32, dst gl.Enum, dstTex uint32) error {
	ctx = log.Enter(ctx, "ShaderSplitter.CombineStencil")
	t, done, err := s.begin(ctx)
	if err != nil {
		return err
	}
	defer done()
	m, err := s.describe(ctx, t, dst, dstTex)
	if err != nil {
		return err
	}
	if len(planes) != m.samples {
		return log.Errf(ctx, ErrInconsistentState, "%d planes for %d samples", len(planes), m.samples)
	}
	l, ok := FindStencilLayout(m.desc.ActualInternalFmt)
	if !ok {
		return log.Errf(ctx, ErrUnsupportedFormat, "No stencil layout for %v", m.desc.ActualInternalFmt)
	}
	p, err := s.program(ctx, programKey{op: opCombineStencil, array: dst == gl.TEXTURE_2D_MULTISAMPLE_ARRAY, proxy: l.ProxyByte})
	if err != nil {
		return err
	}
	t.colorMask(false, false, false, false)
	t.depthMask(false)
	t.glEnable(gl.STENCIL_TEST)
	t.glEnable(gl.SAMPLE_MASK)
	s.GL.StencilOp(gl.REPLACE, gl.REPLACE, gl.REPLACE)
	src := SplitTarget(dst)
	for i, plane := range planes {
		t.bindTexture(src, plane)
		s.GL.SampleMaski(0, 1<<uint(i))
		// Clear the sample, then set one bit per pass.
		s.GL.StencilFunc(gl.ALWAYS, 0, 0xFF)
		s.GL.StencilMask(0xFF)
		if err := s.draw(ctx, t, p, m, dst, dstTex, gl.STENCIL_ATTACHMENT, i, -1); err != nil {
			return err
		}
		s.GL.StencilFunc(gl.ALWAYS, 0xFF, 0xFF)
		for bit := 0; bit < 8; bit++ {
			s.GL.StencilMask(1 << uint(bit))
			if err := s.draw(ctx, t, p, m, dst, dstTex, gl.STENCIL_ATTACHMENT, i, bit); err != nil {
				return err
			}
		}
	}
	return nil
}
