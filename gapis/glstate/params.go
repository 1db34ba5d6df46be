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
	"sort"

	"github.com/pkg/errors"

	"github.com/ValveSoftware/vogl-sub006/core/data/document"
	"github.com/ValveSoftware/vogl-sub006/core/fault"
	"github.com/ValveSoftware/vogl-sub006/core/log"
	"github.com/ValveSoftware/vogl-sub006/gl"
)

// ParamType is the value type of a parameter.
type ParamType int

const (
	IntParam ParamType = iota
	FloatParam
)

func (t ParamType) String() string {
	if t == FloatParam {
		return "float"
	}
	return "int"
}

// Param is a typed parameter value.
type Param struct {
	Type   ParamType
	Ints   []int32
	Floats []float32
}

// ParamTable holds parameter values keyed by GL enum.
type ParamTable map[gl.Enum]Param

func (t ParamTable) SetInts(pname gl.Enum, v ...int32) {
	t[pname] = Param{Type: IntParam, Ints: append([]int32(nil), v...)}
}

func (t ParamTable) SetFloats(pname gl.Enum, v ...float32) {
	t[pname] = Param{Type: FloatParam, Floats: append([]float32(nil), v...)}
}

// Int returns the first value of pname as an integer.
func (t ParamTable) Int(pname gl.Enum) (int32, bool) {
	p, ok := t[pname]
	switch {
	case !ok:
		return 0, false
	case p.Type == IntParam && len(p.Ints) > 0:
		return p.Ints[0], true
	case p.Type == FloatParam && len(p.Floats) > 0:
		return int32(p.Floats[0]), true
	}
	return 0, false
}

// Pnames returns the parameter names in ascending order.
func (t ParamTable) Pnames() []gl.Enum {
	out := make([]gl.Enum, 0, len(t))
	for p := range t {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (t ParamTable) serialize(a *document.Array) {
	for _, pname := range t.Pnames() {
		p := t[pname]
		n := a.AddNode()
		n.SetString("pname", pname.String())
		n.SetString("type", p.Type.String())
		v := n.AddArray("value")
		if p.Type == FloatParam {
			for _, f := range p.Floats {
				v.AddFloat(float64(f))
			}
		} else {
			for _, i := range p.Ints {
				v.AddInt(int64(i))
			}
		}
	}
}

func deserializeParams(a *document.Array) (ParamTable, error) {
	t := ParamTable{}
	for i := 0; i < a.Len(); i++ {
		n, err := a.GetNode(i)
		if err != nil {
			return nil, err
		}
		name, err := n.GetString("pname")
		if err != nil {
			return nil, err
		}
		pname, ok := gl.EnumFromName(name)
		if !ok {
			return nil, errors.Errorf("Unknown parameter %q", name)
		}
		ty, err := n.GetString("type")
		if err != nil {
			return nil, err
		}
		values, err := n.GetArray("value")
		if err != nil {
			return nil, err
		}
		switch ty {
		case "int":
			p := Param{Type: IntParam}
			for j := 0; j < values.Len(); j++ {
				v, err := values.GetInt(j)
				if err != nil {
					return nil, err
				}
				p.Ints = append(p.Ints, int32(v))
			}
			t[pname] = p
		case "float":
			p := Param{Type: FloatParam}
			for j := 0; j < values.Len(); j++ {
				v, err := values.GetFloat(j)
				if err != nil {
					return nil, err
				}
				p.Floats = append(p.Floats, float32(v))
			}
			t[pname] = p
		default:
			return nil, errors.Errorf("Unknown parameter type %q of %v", ty, pname)
		}
	}
	return t, nil
}

// paramDesc describes a queryable parameter and the contexts that have it.
type paramDesc struct {
	pname      gl.Enum
	count      int
	float      bool
	readOnly   bool
	sampler    bool // not available on multisample and buffer targets
	compatOnly bool
	major      int
	minor      int
	ext        string
}

func (p paramDesc) supported(info *ContextInfo, target gl.Enum) bool {
	switch {
	case p.sampler && (gl.IsMultisampleTarget(target) || target == gl.TEXTURE_BUFFER):
		return false
	case p.compatOnly && info.Core:
		return false
	case p.ext != "" && !info.SupportsExtension(p.ext):
		return false
	}
	return info.IsVersionAtLeast(p.major, p.minor)
}

var textureParams = []paramDesc{
	{pname: gl.TEXTURE_MIN_FILTER, count: 1, sampler: true},
	{pname: gl.TEXTURE_MAG_FILTER, count: 1, sampler: true},
	{pname: gl.TEXTURE_WRAP_S, count: 1, sampler: true},
	{pname: gl.TEXTURE_WRAP_T, count: 1, sampler: true},
	{pname: gl.TEXTURE_WRAP_R, count: 1, sampler: true, major: 1, minor: 2},
	{pname: gl.TEXTURE_BORDER_COLOR, count: 4, float: true, sampler: true},
	{pname: gl.TEXTURE_MIN_LOD, count: 1, float: true, sampler: true, major: 1, minor: 2},
	{pname: gl.TEXTURE_MAX_LOD, count: 1, float: true, sampler: true, major: 1, minor: 2},
	{pname: gl.TEXTURE_LOD_BIAS, count: 1, float: true, sampler: true, major: 1, minor: 4},
	{pname: gl.TEXTURE_BASE_LEVEL, count: 1, major: 1, minor: 2},
	{pname: gl.TEXTURE_MAX_LEVEL, count: 1, major: 1, minor: 2},
	{pname: gl.TEXTURE_COMPARE_MODE, count: 1, sampler: true, major: 1, minor: 4},
	{pname: gl.TEXTURE_COMPARE_FUNC, count: 1, sampler: true, major: 1, minor: 4},
	{pname: gl.TEXTURE_SWIZZLE_R, count: 1, sampler: true, major: 3, minor: 3},
	{pname: gl.TEXTURE_SWIZZLE_G, count: 1, sampler: true, major: 3, minor: 3},
	{pname: gl.TEXTURE_SWIZZLE_B, count: 1, sampler: true, major: 3, minor: 3},
	{pname: gl.TEXTURE_SWIZZLE_A, count: 1, sampler: true, major: 3, minor: 3},
	{pname: gl.TEXTURE_MAX_ANISOTROPY_EXT, count: 1, float: true, sampler: true, ext: "GL_EXT_texture_filter_anisotropic"},
	{pname: gl.TEXTURE_SRGB_DECODE_EXT, count: 1, sampler: true, ext: "GL_EXT_texture_sRGB_decode"},
	{pname: gl.DEPTH_STENCIL_TEXTURE_MODE, count: 1, sampler: true, major: 4, minor: 3},
	{pname: gl.GENERATE_MIPMAP, count: 1, sampler: true, compatOnly: true, major: 1, minor: 4},
	{pname: gl.DEPTH_TEXTURE_MODE, count: 1, sampler: true, compatOnly: true, major: 1, minor: 4},
	{pname: gl.TEXTURE_IMMUTABLE_FORMAT, count: 1, readOnly: true, major: 4, minor: 2},
	{pname: gl.TEXTURE_IMMUTABLE_LEVELS, count: 1, readOnly: true, major: 4, minor: 3},
}

var textureParamsByName = func() map[gl.Enum]paramDesc {
	m := map[gl.Enum]paramDesc{}
	for _, p := range textureParams {
		m[p.pname] = p
	}
	return m
}()

// captureTextureParams queries every texture parameter the context supports
// for the texture bound to target. Parameters that raise a GL error are
// skipped and reported as one warning.
func captureTextureParams(ctx context.Context, c *Context, target gl.Enum) ParamTable {
	t := ParamTable{}
	var failed fault.List
	for _, p := range textureParams {
		if !p.supported(c.Info, target) {
			continue
		}
		if p.float {
			v := make([]float32, p.count)
			c.GL.GetTexParameterfv(target, p.pname, v)
			if err := gl.CheckError(c.GL); err != nil {
				failed.Collect(fmt.Errorf("%v: %v", p.pname, err))
				continue
			}
			t.SetFloats(p.pname, v...)
		} else {
			v := make([]int32, p.count)
			c.GL.GetTexParameteriv(target, p.pname, v)
			if err := gl.CheckError(c.GL); err != nil {
				failed.Collect(fmt.Errorf("%v: %v", p.pname, err))
				continue
			}
			t.SetInts(p.pname, v...)
		}
	}
	if len(failed) > 0 {
		log.W(ctx, "%d texture parameters could not be queried:\n%v", len(failed), failed)
	}
	return t
}

// applyTextureParams sets every writable parameter of t on the texture bound
// to target. Failures are returned as a fault.List.
func applyTextureParams(ctx context.Context, c *Context, target gl.Enum, t ParamTable) error {
	var failed fault.List
	for _, pname := range t.Pnames() {
		desc, known := textureParamsByName[pname]
		if !known || desc.readOnly || !desc.supported(c.Info, target) {
			continue
		}
		p := t[pname]
		if p.Type == FloatParam {
			c.GL.TexParameterfv(target, pname, p.Floats)
		} else {
			c.GL.TexParameteriv(target, pname, p.Ints)
		}
		if err := gl.CheckError(c.GL); err != nil {
			failed.Collect(fmt.Errorf("%v: %v", pname, err))
		}
	}
	return failed.Err()
}

var levelParams = []gl.Enum{
	gl.TEXTURE_WIDTH,
	gl.TEXTURE_HEIGHT,
	gl.TEXTURE_DEPTH,
	gl.TEXTURE_INTERNAL_FORMAT,
	gl.TEXTURE_SAMPLES,
	gl.TEXTURE_FIXED_SAMPLE_LOCATIONS,
	gl.TEXTURE_COMPRESSED,
	gl.TEXTURE_RED_SIZE,
	gl.TEXTURE_GREEN_SIZE,
	gl.TEXTURE_BLUE_SIZE,
	gl.TEXTURE_ALPHA_SIZE,
	gl.TEXTURE_DEPTH_SIZE,
	gl.TEXTURE_STENCIL_SIZE,
	gl.TEXTURE_SHARED_SIZE,
}

// captureLevelParams queries the level parameters of one face and level.
// Queries that raise a GL error are left out of the table and collected in
// failed.
func captureLevelParams(c *Context, faceTarget gl.Enum, level int, failed *fault.List) ParamTable {
	t := ParamTable{}
	get := func(pname gl.Enum) {
		v := gl.GetTexLevelParameter(c.GL, faceTarget, int32(level), pname)
		if err := gl.CheckError(c.GL); err != nil {
			failed.Collect(fmt.Errorf("%v of level %d: %v", pname, level, err))
			return
		}
		t.SetInts(pname, v)
	}
	for _, pname := range levelParams {
		get(pname)
	}
	if v, _ := t.Int(gl.TEXTURE_COMPRESSED); v != 0 {
		get(gl.TEXTURE_COMPRESSED_IMAGE_SIZE)
	}
	return t
}
