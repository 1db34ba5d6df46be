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

// Package gltest provides a deterministic software implementation of
// gl.Functions for tests. It models object names, bindings, texture and
// buffer storage and blits closely enough to exercise state capture and
// restore, and can inject driver faults.
//
// Pixel data is stored tightly packed in the optimum readback layout of the
// internal format. Transfers with a different layout fail with
// GL_INVALID_OPERATION. Shaders compile and link but never run.
package gltest

import (
	"fmt"

	"github.com/ValveSoftware/vogl-sub006/gl"
)

// Limits reported by the driver.
const (
	MaxTextureSize   = 4096
	Max3DTextureSize = 512
	MaxArrayLayers   = 256
	MaxSamples       = 8
)

// Extensions reported by the driver.
var Extensions = []string{
	"GL_ARB_texture_multisample",
	"GL_EXT_texture_filter_anisotropic",
	"GL_EXT_texture_sRGB_decode",
}

// Faults configures misbehavior of the driver.
type Faults struct {
	// Overrun is the number of bytes GetTexImage and GetCompressedTexImage
	// write past the end of the image.
	Overrun int
	// TexParamErrors raises the mapped error from GetTexParameter* for pname.
	TexParamErrors map[gl.Enum]gl.Enum
	// LevelParamErrors raises the mapped error from GetTexLevelParameteriv
	// for pname.
	LevelParamErrors map[gl.Enum]gl.Enum
	// RejectTexParams raises GL_INVALID_ENUM from TexParameter* for pname.
	RejectTexParams map[gl.Enum]bool
}

type unitTarget struct {
	unit   int
	target gl.Enum
}

// Driver is a software GL driver. It is not safe for concurrent use.
type Driver struct {
	Faults Faults

	err      gl.Enum
	nextName uint32

	pixelStore   map[gl.Enum]int32
	enabled      map[gl.Enum]bool
	activeUnit   int
	texBindings  map[unitTarget]uint32
	bufBindings  map[gl.Enum]uint32
	readFB       uint32
	drawFB       uint32
	program      uint32
	vertexArray  uint32
	viewport     [4]int32
	colorMask    [4]bool
	depthMask    bool
	depthFunc    gl.Enum
	stencilMask  uint32
	stencilFunc  [3]int32
	stencilOp    [3]gl.Enum
	sampleMask   uint32
	clearStencil int32

	textures     map[uint32]*Texture
	buffers      map[uint32]*Buffer
	framebuffers map[uint32]*framebuffer
	shaders      map[uint32]gl.Enum
	programs     map[uint32]bool
	vertexArrays map[uint32]bool

	def *DefaultFramebuffer
}

// New returns a driver with default GL state and no default framebuffer.
func New() *Driver {
	d := &Driver{
		nextName:     1,
		pixelStore:   map[gl.Enum]int32{},
		enabled:      map[gl.Enum]bool{gl.DITHER: true, gl.MULTISAMPLE: true},
		texBindings:  map[unitTarget]uint32{},
		bufBindings:  map[gl.Enum]uint32{},
		colorMask:    [4]bool{true, true, true, true},
		depthMask:    true,
		depthFunc:    gl.LESS,
		stencilMask:  0xFFFFFFFF,
		stencilFunc:  [3]int32{int32(gl.ALWAYS), 0, -1},
		stencilOp:    [3]gl.Enum{gl.KEEP, gl.KEEP, gl.KEEP},
		sampleMask:   0xFFFFFFFF,
		textures:     map[uint32]*Texture{},
		buffers:      map[uint32]*Buffer{},
		framebuffers: map[uint32]*framebuffer{},
		shaders:      map[uint32]gl.Enum{},
		programs:     map[uint32]bool{},
		vertexArrays: map[uint32]bool{},
	}
	for _, p := range []gl.Enum{gl.PACK_ALIGNMENT, gl.UNPACK_ALIGNMENT} {
		d.pixelStore[p] = 4
	}
	return d
}

var _ gl.Functions = (*Driver)(nil)

func (d *Driver) setError(e gl.Enum) {
	if d.err == gl.NO_ERROR {
		d.err = e
	}
}

func (d *Driver) genName() uint32 {
	n := d.nextName
	d.nextName++
	return n
}

// GetError returns and clears the first recorded error.
func (d *Driver) GetError() gl.Enum {
	e := d.err
	d.err = gl.NO_ERROR
	return e
}

// PendingError returns the recorded error without clearing it.
func (d *Driver) PendingError() gl.Enum { return d.err }

func isPixelStore(pname gl.Enum) bool {
	switch pname {
	case gl.PACK_SWAP_BYTES, gl.PACK_LSB_FIRST, gl.PACK_ROW_LENGTH, gl.PACK_SKIP_ROWS,
		gl.PACK_SKIP_PIXELS, gl.PACK_ALIGNMENT, gl.PACK_SKIP_IMAGES, gl.PACK_IMAGE_HEIGHT,
		gl.UNPACK_SWAP_BYTES, gl.UNPACK_LSB_FIRST, gl.UNPACK_ROW_LENGTH, gl.UNPACK_SKIP_ROWS,
		gl.UNPACK_SKIP_PIXELS, gl.UNPACK_ALIGNMENT, gl.UNPACK_SKIP_IMAGES, gl.UNPACK_IMAGE_HEIGHT:
		return true
	}
	return false
}

func (d *Driver) PixelStorei(pname gl.Enum, param int32) {
	if !isPixelStore(pname) {
		d.setError(gl.INVALID_ENUM)
		return
	}
	if (pname == gl.PACK_ALIGNMENT || pname == gl.UNPACK_ALIGNMENT) &&
		param != 1 && param != 2 && param != 4 && param != 8 {
		d.setError(gl.INVALID_VALUE)
		return
	}
	d.pixelStore[pname] = param
}

func (d *Driver) GetIntegerv(pname gl.Enum, data []int32) {
	if isPixelStore(pname) {
		data[0] = d.pixelStore[pname]
		return
	}
	switch pname {
	case gl.MAJOR_VERSION:
		data[0] = 4
	case gl.MINOR_VERSION:
		data[0] = 5
	case gl.CONTEXT_PROFILE_MASK:
		data[0] = int32(gl.CONTEXT_CORE_PROFILE_BIT)
	case gl.NUM_EXTENSIONS:
		data[0] = int32(len(Extensions))
	case gl.MAX_TEXTURE_SIZE, gl.MAX_CUBE_MAP_TEXTURE_SIZE, gl.MAX_RECTANGLE_TEXTURE_SIZE:
		data[0] = MaxTextureSize
	case gl.MAX_3D_TEXTURE_SIZE:
		data[0] = Max3DTextureSize
	case gl.MAX_ARRAY_TEXTURE_LAYERS:
		data[0] = MaxArrayLayers
	case gl.MAX_SAMPLES, gl.MAX_COLOR_TEXTURE_SAMPLES, gl.MAX_DEPTH_TEXTURE_SAMPLES, gl.MAX_INTEGER_SAMPLES:
		data[0] = MaxSamples
	case gl.MAX_TEXTURE_BUFFER_SIZE:
		data[0] = 1 << 20
	case gl.MAX_COMBINED_TEXTURE_IMAGE_UNITS:
		data[0] = 32
	case gl.MAX_SAMPLE_MASK_WORDS:
		data[0] = 1
	case gl.ACTIVE_TEXTURE:
		data[0] = int32(gl.TEXTURE0) + int32(d.activeUnit)
	case gl.TEXTURE_BINDING_1D, gl.TEXTURE_BINDING_2D, gl.TEXTURE_BINDING_3D,
		gl.TEXTURE_BINDING_RECTANGLE, gl.TEXTURE_BINDING_CUBE_MAP, gl.TEXTURE_BINDING_1D_ARRAY,
		gl.TEXTURE_BINDING_2D_ARRAY, gl.TEXTURE_BINDING_BUFFER, gl.TEXTURE_BINDING_CUBE_MAP_ARRAY,
		gl.TEXTURE_BINDING_2D_MULTISAMPLE, gl.TEXTURE_BINDING_2D_MULTISAMPLE_ARRAY:
		data[0] = int32(d.texBindings[unitTarget{d.activeUnit, bindingTarget(pname)}])
	case gl.ARRAY_BUFFER_BINDING:
		data[0] = int32(d.bufBindings[gl.ARRAY_BUFFER])
	case gl.PIXEL_PACK_BUFFER_BINDING:
		data[0] = int32(d.bufBindings[gl.PIXEL_PACK_BUFFER])
	case gl.PIXEL_UNPACK_BUFFER_BINDING:
		data[0] = int32(d.bufBindings[gl.PIXEL_UNPACK_BUFFER])
	case gl.COPY_READ_BUFFER, gl.COPY_WRITE_BUFFER:
		data[0] = int32(d.bufBindings[pname])
	case gl.READ_FRAMEBUFFER_BINDING:
		data[0] = int32(d.readFB)
	case gl.DRAW_FRAMEBUFFER_BINDING:
		data[0] = int32(d.drawFB)
	case gl.READ_BUFFER:
		data[0] = int32(d.readBufferOf(d.readFB))
	case gl.DRAW_BUFFER:
		data[0] = int32(d.drawBufferOf(d.drawFB))
	case gl.CURRENT_PROGRAM:
		data[0] = int32(d.program)
	case gl.VERTEX_ARRAY_BINDING:
		data[0] = int32(d.vertexArray)
	case gl.VIEWPORT:
		copy(data, d.viewport[:])
	case gl.COLOR_WRITEMASK:
		for i, b := range d.colorMask {
			data[i] = boolToInt(b)
		}
	case gl.DEPTH_WRITEMASK:
		data[0] = boolToInt(d.depthMask)
	case gl.DEPTH_FUNC:
		data[0] = int32(d.depthFunc)
	case gl.STENCIL_WRITEMASK:
		data[0] = int32(d.stencilMask)
	case gl.STENCIL_FUNC:
		data[0] = d.stencilFunc[0]
	case gl.STENCIL_REF:
		data[0] = d.stencilFunc[1]
	case gl.STENCIL_VALUE_MASK:
		data[0] = d.stencilFunc[2]
	case gl.STENCIL_FAIL:
		data[0] = int32(d.stencilOp[0])
	case gl.STENCIL_PASS_DEPTH_FAIL:
		data[0] = int32(d.stencilOp[1])
	case gl.STENCIL_PASS_DEPTH_PASS:
		data[0] = int32(d.stencilOp[2])
	case gl.STENCIL_CLEAR_VALUE:
		data[0] = d.clearStencil
	case gl.SAMPLE_MASK_VALUE:
		data[0] = int32(d.sampleMask)
	case gl.DOUBLEBUFFER:
		data[0] = boolToInt(d.def != nil && d.def.DoubleBuffered)
	case gl.STEREO:
		data[0] = boolToInt(d.def != nil && d.def.Stereo)
	case gl.SAMPLES:
		data[0] = int32(d.framebufferSamples(d.drawFB))
	case gl.SAMPLE_BUFFERS:
		data[0] = boolToInt(d.framebufferSamples(d.drawFB) > 1)
	default:
		d.setError(gl.INVALID_ENUM)
	}
}

func (d *Driver) GetFloatv(pname gl.Enum, data []float32) {
	if pname == gl.MAX_TEXTURE_MAX_ANISOTROPY_EXT {
		data[0] = 16
		return
	}
	v := make([]int32, len(data))
	d.GetIntegerv(pname, v)
	for i := range v {
		data[i] = float32(v[i])
	}
}

func (d *Driver) GetString(name gl.Enum) string {
	switch name {
	case gl.VENDOR:
		return "gltest"
	case gl.RENDERER:
		return "gltest software driver"
	case gl.VERSION:
		return "4.5.0 gltest"
	}
	d.setError(gl.INVALID_ENUM)
	return ""
}

func (d *Driver) GetStringi(name gl.Enum, index uint32) string {
	if name != gl.EXTENSIONS {
		d.setError(gl.INVALID_ENUM)
		return ""
	}
	if int(index) >= len(Extensions) {
		d.setError(gl.INVALID_VALUE)
		return ""
	}
	return Extensions[index]
}

func (d *Driver) IsEnabled(cap gl.Enum) bool { return d.enabled[cap] }
func (d *Driver) Enable(cap gl.Enum)         { d.enabled[cap] = true }
func (d *Driver) Disable(cap gl.Enum)        { d.enabled[cap] = false }

func (d *Driver) Viewport(x, y, width, height int32) {
	if width < 0 || height < 0 {
		d.setError(gl.INVALID_VALUE)
		return
	}
	d.viewport = [4]int32{x, y, width, height}
}

func (d *Driver) ColorMask(r, g, b, a bool) { d.colorMask = [4]bool{r, g, b, a} }
func (d *Driver) DepthMask(flag bool)       { d.depthMask = flag }
func (d *Driver) DepthFunc(fn gl.Enum)      { d.depthFunc = fn }
func (d *Driver) StencilMask(mask uint32)   { d.stencilMask = mask }
func (d *Driver) ClearStencil(s int32)      { d.clearStencil = s }

func (d *Driver) StencilFunc(fn gl.Enum, ref int32, mask uint32) {
	d.stencilFunc = [3]int32{int32(fn), ref, int32(mask)}
}

func (d *Driver) StencilOp(fail, zfail, zpass gl.Enum) {
	d.stencilOp = [3]gl.Enum{fail, zfail, zpass}
}

func (d *Driver) SampleMaski(index, mask uint32) {
	if index != 0 {
		d.setError(gl.INVALID_VALUE)
		return
	}
	d.sampleMask = mask
}

// Clear is accepted but has no effect on storage.
func (d *Driver) Clear(mask uint32) {}

// LiveTextures returns the number of texture names that have not been
// deleted.
func (d *Driver) LiveTextures() int { return len(d.textures) }

// LiveFramebuffers returns the number of framebuffer names that have not been
// deleted.
func (d *Driver) LiveFramebuffers() int { return len(d.framebuffers) }

// LiveBuffers returns the number of buffer names that have not been deleted.
func (d *Driver) LiveBuffers() int { return len(d.buffers) }

func boolToInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

func bindingTarget(binding gl.Enum) gl.Enum {
	for _, t := range []gl.Enum{
		gl.TEXTURE_1D, gl.TEXTURE_2D, gl.TEXTURE_3D, gl.TEXTURE_RECTANGLE, gl.TEXTURE_CUBE_MAP,
		gl.TEXTURE_1D_ARRAY, gl.TEXTURE_2D_ARRAY, gl.TEXTURE_BUFFER, gl.TEXTURE_CUBE_MAP_ARRAY,
		gl.TEXTURE_2D_MULTISAMPLE, gl.TEXTURE_2D_MULTISAMPLE_ARRAY,
	} {
		if gl.TextureBinding(t) == binding {
			return t
		}
	}
	panic(fmt.Errorf("No texture target for binding %v", binding))
}
