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

package gltest

import (
	"github.com/ValveSoftware/vogl-sub006/gl"
	"github.com/ValveSoftware/vogl-sub006/gl/pixfmt"
)

// DefaultFramebuffer describes the window system framebuffer of the driver.
type DefaultFramebuffer struct {
	Width, Height  int
	Samples        int
	DoubleBuffered bool
	Stereo         bool
	// ColorFormat is the sized format of every color plane, or NONE.
	ColorFormat gl.Enum
	// DepthStencilFormat is the sized format of the depth/stencil plane, or
	// NONE.
	DepthStencilFormat gl.Enum

	// Planes holds one buffer per sample for each of FRONT_LEFT, BACK_LEFT,
	// FRONT_RIGHT, BACK_RIGHT and DEPTH_STENCIL.
	Planes map[gl.Enum][][]byte

	readBuffer gl.Enum
	drawBuffer gl.Enum
}

// SetDefaultFramebuffer installs a default framebuffer with zeroed planes and
// returns it.
func (d *Driver) SetDefaultFramebuffer(fb DefaultFramebuffer) *DefaultFramebuffer {
	if fb.Samples < 1 {
		fb.Samples = 1
	}
	fb.Planes = map[gl.Enum][][]byte{}
	alloc := func(plane, format gl.Enum) {
		if format == gl.NONE {
			return
		}
		size := pixfmt.Find(format).ImageSize(fb.Width, fb.Height, 1)
		for i := 0; i < fb.Samples; i++ {
			fb.Planes[plane] = append(fb.Planes[plane], make([]byte, size))
		}
	}
	alloc(gl.FRONT_LEFT, fb.ColorFormat)
	if fb.DoubleBuffered {
		alloc(gl.BACK_LEFT, fb.ColorFormat)
	}
	if fb.Stereo {
		alloc(gl.FRONT_RIGHT, fb.ColorFormat)
		if fb.DoubleBuffered {
			alloc(gl.BACK_RIGHT, fb.ColorFormat)
		}
	}
	alloc(gl.DEPTH_STENCIL, fb.DepthStencilFormat)
	fb.readBuffer, fb.drawBuffer = gl.FRONT, gl.FRONT
	if fb.DoubleBuffered {
		fb.readBuffer, fb.drawBuffer = gl.BACK, gl.BACK
	}
	d.def = &fb
	d.viewport = [4]int32{0, 0, int32(fb.Width), int32(fb.Height)}
	return d.def
}

// Plane returns the per sample buffers of the given default framebuffer
// plane.
func (f *DefaultFramebuffer) Plane(plane gl.Enum) [][]byte { return f.Planes[plane] }

func (f *DefaultFramebuffer) colorPlane(buf gl.Enum) gl.Enum {
	switch buf {
	case gl.FRONT, gl.LEFT:
		buf = gl.FRONT_LEFT
	case gl.BACK:
		buf = gl.BACK_LEFT
	case gl.RIGHT:
		buf = gl.FRONT_RIGHT
	}
	if _, ok := f.Planes[buf]; !ok {
		return gl.NONE
	}
	return buf
}

type attachment struct {
	texture uint32
	face    gl.Enum
	level   int
	layer   int
}

type framebuffer struct {
	attachments map[gl.Enum]attachment
	readBuffer  gl.Enum
	drawBuffers []gl.Enum
}

func (d *Driver) GenFramebuffer() uint32 {
	n := d.genName()
	d.framebuffers[n] = &framebuffer{
		attachments: map[gl.Enum]attachment{},
		readBuffer:  gl.COLOR_ATTACHMENT0,
		drawBuffers: []gl.Enum{gl.COLOR_ATTACHMENT0},
	}
	return n
}

func (d *Driver) DeleteFramebuffer(framebuffer uint32) {
	if framebuffer == 0 {
		return
	}
	delete(d.framebuffers, framebuffer)
	if d.readFB == framebuffer {
		d.readFB = 0
	}
	if d.drawFB == framebuffer {
		d.drawFB = 0
	}
}

func (d *Driver) BindFramebuffer(target gl.Enum, framebuffer uint32) {
	if _, ok := d.framebuffers[framebuffer]; framebuffer != 0 && !ok {
		d.setError(gl.INVALID_OPERATION)
		return
	}
	switch target {
	case gl.FRAMEBUFFER:
		d.readFB, d.drawFB = framebuffer, framebuffer
	case gl.READ_FRAMEBUFFER:
		d.readFB = framebuffer
	case gl.DRAW_FRAMEBUFFER:
		d.drawFB = framebuffer
	default:
		d.setError(gl.INVALID_ENUM)
	}
}

func (d *Driver) boundFramebuffer(target gl.Enum) (uint32, bool) {
	switch target {
	case gl.FRAMEBUFFER, gl.DRAW_FRAMEBUFFER:
		return d.drawFB, true
	case gl.READ_FRAMEBUFFER:
		return d.readFB, true
	}
	d.setError(gl.INVALID_ENUM)
	return 0, false
}

func (d *Driver) attach(target, point gl.Enum, a attachment) {
	name, ok := d.boundFramebuffer(target)
	if !ok {
		return
	}
	fb := d.framebuffers[name]
	if fb == nil {
		d.setError(gl.INVALID_OPERATION)
		return
	}
	if a.texture == 0 {
		delete(fb.attachments, point)
		return
	}
	if d.textures[a.texture] == nil {
		d.setError(gl.INVALID_OPERATION)
		return
	}
	fb.attachments[point] = a
}

func (d *Driver) FramebufferTexture2D(target, point, texTarget gl.Enum, texture uint32, level int32) {
	d.attach(target, point, attachment{texture: texture, face: texTarget, level: int(level)})
}

func (d *Driver) FramebufferTextureLayer(target, point gl.Enum, texture uint32, level, layer int32) {
	face := gl.NONE
	if t := d.textures[texture]; t != nil {
		face = t.Target
	}
	d.attach(target, point, attachment{texture: texture, face: face, level: int(level), layer: int(layer)})
}

func (d *Driver) CheckFramebufferStatus(target gl.Enum) gl.Enum {
	name, ok := d.boundFramebuffer(target)
	if !ok {
		return gl.NONE
	}
	if name == 0 {
		if d.def == nil {
			return gl.FRAMEBUFFER_UNSUPPORTED
		}
		return gl.FRAMEBUFFER_COMPLETE
	}
	fb := d.framebuffers[name]
	if len(fb.attachments) == 0 {
		return gl.FRAMEBUFFER_INCOMPLETE_ATTACHMENT
	}
	for _, a := range fb.attachments {
		if d.attachmentSurface(a) == nil {
			return gl.FRAMEBUFFER_INCOMPLETE_ATTACHMENT
		}
	}
	return gl.FRAMEBUFFER_COMPLETE
}

func (d *Driver) GetFramebufferAttachmentParameteriv(target, point, pname gl.Enum, params []int32) {
	name, ok := d.boundFramebuffer(target)
	if !ok {
		return
	}
	var format gl.Enum
	var object int32
	if name == 0 {
		if d.def == nil {
			d.setError(gl.INVALID_OPERATION)
			return
		}
		switch point {
		case gl.FRONT_LEFT, gl.BACK_LEFT, gl.FRONT_RIGHT, gl.BACK_RIGHT:
			if _, ok := d.def.Planes[point]; ok {
				format = d.def.ColorFormat
			}
		case gl.DEPTH, gl.STENCIL:
			format = d.def.DepthStencilFormat
		default:
			d.setError(gl.INVALID_ENUM)
			return
		}
		if format != gl.NONE {
			object = int32(gl.FRAMEBUFFER_DEFAULT)
		}
	} else {
		a, ok := d.framebuffers[name].attachments[point]
		if ok {
			if s := d.attachmentSurface(a); s != nil {
				format = s.format
				object = int32(a.texture)
			}
		}
	}
	if pname == gl.FRAMEBUFFER_ATTACHMENT_OBJECT_TYPE {
		params[0] = object
		if name != 0 && object != 0 {
			params[0] = int32(gl.TEXTURE_2D)
		}
		return
	}
	if format == gl.NONE {
		d.setError(gl.INVALID_OPERATION)
		return
	}
	desc := pixfmt.Find(format)
	switch pname {
	case gl.FRAMEBUFFER_ATTACHMENT_OBJECT_NAME:
		params[0] = object
	case gl.FRAMEBUFFER_ATTACHMENT_RED_SIZE:
		params[0] = int32(desc.CompSizes[pixfmt.Red])
	case gl.FRAMEBUFFER_ATTACHMENT_GREEN_SIZE:
		params[0] = int32(desc.CompSizes[pixfmt.Green])
	case gl.FRAMEBUFFER_ATTACHMENT_BLUE_SIZE:
		params[0] = int32(desc.CompSizes[pixfmt.Blue])
	case gl.FRAMEBUFFER_ATTACHMENT_ALPHA_SIZE:
		params[0] = int32(desc.CompSizes[pixfmt.Alpha])
	case gl.FRAMEBUFFER_ATTACHMENT_DEPTH_SIZE:
		params[0] = int32(desc.CompSizes[pixfmt.Depth])
	case gl.FRAMEBUFFER_ATTACHMENT_STENCIL_SIZE:
		params[0] = int32(desc.CompSizes[pixfmt.Stencil])
	default:
		d.setError(gl.INVALID_ENUM)
	}
}

func (d *Driver) readBufferOf(name uint32) gl.Enum {
	if name == 0 {
		if d.def == nil {
			return gl.NONE
		}
		return d.def.readBuffer
	}
	return d.framebuffers[name].readBuffer
}

func (d *Driver) drawBufferOf(name uint32) gl.Enum {
	if name == 0 {
		if d.def == nil {
			return gl.NONE
		}
		return d.def.drawBuffer
	}
	if bufs := d.framebuffers[name].drawBuffers; len(bufs) > 0 {
		return bufs[0]
	}
	return gl.NONE
}

func (d *Driver) validBuffer(name uint32, mode gl.Enum) bool {
	if mode == gl.NONE {
		return true
	}
	if name == 0 {
		return d.def != nil && d.def.colorPlane(mode) != gl.NONE
	}
	return mode >= gl.COLOR_ATTACHMENT0 && mode < gl.COLOR_ATTACHMENT0+8
}

func (d *Driver) ReadBuffer(mode gl.Enum) {
	if !d.validBuffer(d.readFB, mode) {
		d.setError(gl.INVALID_OPERATION)
		return
	}
	if d.readFB == 0 {
		d.def.readBuffer = mode
	} else {
		d.framebuffers[d.readFB].readBuffer = mode
	}
}

func (d *Driver) DrawBuffer(mode gl.Enum) { d.DrawBuffers([]gl.Enum{mode}) }

func (d *Driver) DrawBuffers(bufs []gl.Enum) {
	for _, b := range bufs {
		if !d.validBuffer(d.drawFB, b) {
			d.setError(gl.INVALID_OPERATION)
			return
		}
	}
	if d.drawFB == 0 {
		if len(bufs) != 1 {
			d.setError(gl.INVALID_OPERATION)
			return
		}
		d.def.drawBuffer = bufs[0]
	} else {
		d.framebuffers[d.drawFB].drawBuffers = append([]gl.Enum(nil), bufs...)
	}
}

// surface is a view of one image of a framebuffer attachment.
type surface struct {
	w, h    int
	format  gl.Enum
	samples [][]byte
	offset  int
}

func (s *surface) size() int { return pixfmt.Find(s.format).ImageSize(s.w, s.h, 1) }

func (d *Driver) attachmentSurface(a attachment) *surface {
	t := d.textures[a.texture]
	if t == nil {
		return nil
	}
	img := t.Images[ImageKey{a.face, a.level}]
	if img == nil || a.layer >= img.Depth {
		return nil
	}
	s := &surface{w: img.Width, h: img.Height, format: img.InternalFormat, samples: img.Data}
	s.offset = a.layer * s.size()
	return s
}

func (d *Driver) framebufferSamples(name uint32) int {
	if name == 0 {
		if d.def == nil {
			return 0
		}
		return d.def.Samples
	}
	for _, a := range d.framebuffers[name].attachments {
		if s := d.attachmentSurface(a); s != nil {
			return len(s.samples)
		}
	}
	return 0
}

func (d *Driver) colorSurface(name uint32, buf gl.Enum) *surface {
	if name == 0 {
		if d.def == nil {
			return nil
		}
		plane := d.def.colorPlane(buf)
		if plane == gl.NONE {
			return nil
		}
		return &surface{w: d.def.Width, h: d.def.Height, format: d.def.ColorFormat, samples: d.def.Planes[plane]}
	}
	a, ok := d.framebuffers[name].attachments[buf]
	if !ok {
		return nil
	}
	return d.attachmentSurface(a)
}

func (d *Driver) depthSurface(name uint32) *surface {
	if name == 0 {
		if d.def == nil || d.def.DepthStencilFormat == gl.NONE {
			return nil
		}
		return &surface{w: d.def.Width, h: d.def.Height, format: d.def.DepthStencilFormat, samples: d.def.Planes[gl.DEPTH_STENCIL]}
	}
	for _, p := range []gl.Enum{gl.DEPTH_STENCIL_ATTACHMENT, gl.DEPTH_ATTACHMENT, gl.STENCIL_ATTACHMENT} {
		if a, ok := d.framebuffers[name].attachments[p]; ok {
			return d.attachmentSurface(a)
		}
	}
	return nil
}

// copySurface copies src into dst. Multisample sources resolve by taking
// sample 0, single sample sources are replicated into every sample.
func copySurface(dst, src *surface) bool {
	if dst.w != src.w || dst.h != src.h || pixfmt.Find(dst.format).ImageBytesPerPixelOrBlock != pixfmt.Find(src.format).ImageBytesPerPixelOrBlock {
		return false
	}
	size := src.size()
	for i, out := range dst.samples {
		in := src.samples[0]
		if len(src.samples) == len(dst.samples) {
			in = src.samples[i]
		}
		copy(out[dst.offset:dst.offset+size], in[src.offset:src.offset+size])
	}
	return true
}

// BlitFramebuffer supports full surface copies between surfaces of the same
// size and pixel size. Depth and stencil are copied together.
func (d *Driver) BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int32, mask uint32, filter gl.Enum) {
	if srcX0 != 0 || srcY0 != 0 || dstX0 != 0 || dstY0 != 0 || srcX1 != dstX1 || srcY1 != dstY1 {
		d.setError(gl.INVALID_OPERATION)
		return
	}
	check := func(s *surface) bool { return s != nil && s.w == int(srcX1) && s.h == int(srcY1) }
	if mask&uint32(gl.COLOR_BUFFER_BIT) != 0 {
		src := d.colorSurface(d.readFB, d.readBufferOf(d.readFB))
		if !check(src) {
			d.setError(gl.INVALID_OPERATION)
			return
		}
		bufs := []gl.Enum{d.drawBufferOf(d.drawFB)}
		if d.drawFB != 0 {
			bufs = d.framebuffers[d.drawFB].drawBuffers
		}
		for _, b := range bufs {
			if b == gl.NONE {
				continue
			}
			dst := d.colorSurface(d.drawFB, b)
			if !check(dst) || !copySurface(dst, src) {
				d.setError(gl.INVALID_OPERATION)
				return
			}
		}
	}
	if mask&uint32(gl.DEPTH_BUFFER_BIT|gl.STENCIL_BUFFER_BIT) != 0 {
		src, dst := d.depthSurface(d.readFB), d.depthSurface(d.drawFB)
		if !check(src) || !check(dst) || src.format != dst.format || !copySurface(dst, src) {
			d.setError(gl.INVALID_OPERATION)
		}
	}
}
