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

	"github.com/ValveSoftware/vogl-sub006/core/data/document"
	"github.com/ValveSoftware/vogl-sub006/core/log"
	"github.com/ValveSoftware/vogl-sub006/gapis/blob"
	"github.com/ValveSoftware/vogl-sub006/gl"
	"github.com/ValveSoftware/vogl-sub006/gl/pixfmt"
)

const framebufferVersion = 1

// Plane is one buffer of the default framebuffer.
type Plane int

const (
	FrontLeft Plane = iota
	BackLeft
	FrontRight
	BackRight
	DepthStencil

	NumPlanes
)

var planeNames = [NumPlanes]string{"front_left", "back_left", "front_right", "back_right", "depth_stencil"}

var planeBuffers = [NumPlanes]gl.Enum{gl.FRONT_LEFT, gl.BACK_LEFT, gl.FRONT_RIGHT, gl.BACK_RIGHT, gl.NONE}

func (p Plane) String() string {
	if p < 0 || p >= NumPlanes {
		return "invalid"
	}
	return planeNames[p]
}

// DefaultFramebufferAttribs describes the default framebuffer of a context.
type DefaultFramebufferAttribs struct {
	RedBits, GreenBits, BlueBits, AlphaBits int
	DepthBits, StencilBits                  int
	Samples                                 int
	DoubleBuffered                          bool
	Stereo                                  bool
	Width, Height                           int
}

func (a DefaultFramebufferAttribs) colorBits() int {
	return a.RedBits + a.GreenBits + a.BlueBits + a.AlphaBits
}

// HasPlane returns true if the framebuffer described by a has the plane.
func (a DefaultFramebufferAttribs) HasPlane(p Plane) bool {
	switch p {
	case FrontLeft:
		return a.colorBits() > 0
	case BackLeft:
		return a.colorBits() > 0 && a.DoubleBuffered
	case FrontRight:
		return a.colorBits() > 0 && a.Stereo
	case BackRight:
		return a.colorBits() > 0 && a.DoubleBuffered && a.Stereo
	case DepthStencil:
		return a.DepthBits+a.StencilBits > 0
	}
	return false
}

// QueryDefaultFramebufferAttribs reads the bit depths, sample count and
// buffering of the default framebuffer. The size is not queryable and must be
// supplied by the window system.
func QueryDefaultFramebufferAttribs(ctx context.Context, c *Context, width, height int) (DefaultFramebufferAttribs, error) {
	a := DefaultFramebufferAttribs{Width: width, Height: height}
	gl.CheckError(c.GL)
	t := newTweaker(c.GL)
	defer t.revert(ctx)
	t.bindFramebuffer(gl.FRAMEBUFFER, 0)

	a.DoubleBuffered = gl.GetInteger(c.GL, gl.DOUBLEBUFFER) != 0
	a.Stereo = gl.GetInteger(c.GL, gl.STEREO) != 0
	a.Samples = int(gl.GetInteger(c.GL, gl.SAMPLES))
	if a.Samples < 1 {
		a.Samples = 1
	}
	get := func(point, pname gl.Enum) int {
		v := []int32{0}
		c.GL.GetFramebufferAttachmentParameteriv(gl.FRAMEBUFFER, point, gl.FRAMEBUFFER_ATTACHMENT_OBJECT_TYPE, v)
		if gl.CheckError(c.GL) != nil || v[0] == 0 {
			return 0
		}
		c.GL.GetFramebufferAttachmentParameteriv(gl.FRAMEBUFFER, point, pname, v)
		if gl.CheckError(c.GL) != nil {
			return 0
		}
		return int(v[0])
	}
	color := gl.FRONT_LEFT
	if a.DoubleBuffered {
		color = gl.BACK_LEFT
	}
	a.RedBits = get(color, gl.FRAMEBUFFER_ATTACHMENT_RED_SIZE)
	a.GreenBits = get(color, gl.FRAMEBUFFER_ATTACHMENT_GREEN_SIZE)
	a.BlueBits = get(color, gl.FRAMEBUFFER_ATTACHMENT_BLUE_SIZE)
	a.AlphaBits = get(color, gl.FRAMEBUFFER_ATTACHMENT_ALPHA_SIZE)
	a.DepthBits = get(gl.DEPTH, gl.FRAMEBUFFER_ATTACHMENT_DEPTH_SIZE)
	a.StencilBits = get(gl.STENCIL, gl.FRAMEBUFFER_ATTACHMENT_STENCIL_SIZE)
	if err := gl.CheckError(c.GL); err != nil {
		return a, log.Err(ctx, err, "Querying the default framebuffer")
	}
	return a, nil
}

// findFormat returns the first sized format of the catalog matching the
// component sizes.
func findFormat(sizes [pixfmt.NumSlots]int, multisample bool) *pixfmt.Descriptor {
	for _, d := range pixfmt.All() {
		if d.Fmt != d.ActualInternalFmt || d.Compressed || d.CompSizes != sizes {
			continue
		}
		if multisample && d.TexImageFlags&pixfmt.TexImage2DMultisample == 0 {
			continue
		}
		if t := d.FirstComponentType(); t != gl.UNSIGNED_NORMALIZED && !d.HasDepth() && !d.HasStencil() {
			continue
		}
		return d
	}
	return nil
}

func (a DefaultFramebufferAttribs) planeFormat(p Plane) *pixfmt.Descriptor {
	sizes := [pixfmt.NumSlots]int{}
	if p == DepthStencil {
		sizes[pixfmt.Depth], sizes[pixfmt.Stencil] = a.DepthBits, a.StencilBits
	} else {
		sizes[pixfmt.Red], sizes[pixfmt.Green] = a.RedBits, a.GreenBits
		sizes[pixfmt.Blue], sizes[pixfmt.Alpha] = a.BlueBits, a.AlphaBits
	}
	return findFormat(sizes, a.Samples > 1)
}

func depthStencilAttachment(d *pixfmt.Descriptor) (gl.Enum, uint32) {
	switch {
	case d.IsDepthStencil():
		return gl.DEPTH_STENCIL_ATTACHMENT, gl.DEPTH_BUFFER_BIT | gl.STENCIL_BUFFER_BIT
	case d.HasDepth():
		return gl.DEPTH_ATTACHMENT, gl.DEPTH_BUFFER_BIT
	}
	return gl.STENCIL_ATTACHMENT, gl.STENCIL_BUFFER_BIT
}

// DefaultFramebufferState is the captured contents of the default
// framebuffer, one texture snapshot per populated plane.
type DefaultFramebufferState struct {
	attribs DefaultFramebufferAttribs
	planes  [NumPlanes]TextureState
	valid   bool
}

var _ ObjectState = (*DefaultFramebufferState)(nil)

func (s *DefaultFramebufferState) Kind() Kind                    { return KindDefaultFramebuffer }
func (s *DefaultFramebufferState) SnapshotHandle() uint64        { return 0 }
func (s *DefaultFramebufferState) Target() gl.Enum               { return gl.FRAMEBUFFER_DEFAULT }
func (s *DefaultFramebufferState) IsValid() bool                 { return s.valid }
func (s *DefaultFramebufferState) Clear()                        { *s = DefaultFramebufferState{} }
func (s *DefaultFramebufferState) RemapHandles(r HandleRemapper) {}

// Attribs returns the attributes the state was captured with.
func (s *DefaultFramebufferState) Attribs() DefaultFramebufferAttribs { return s.attribs }

// Plane returns the snapshot of plane p, or nil if the plane is absent.
func (s *DefaultFramebufferState) Plane(p Plane) *TextureState {
	if p < 0 || p >= NumPlanes || !s.planes[p].valid {
		return nil
	}
	return &s.planes[p]
}

func (s *DefaultFramebufferState) planeTarget() gl.Enum {
	if s.attribs.Samples > 1 {
		return gl.TEXTURE_2D_MULTISAMPLE
	}
	return gl.TEXTURE_2D
}

// allocPlane creates a texture shaped like plane p, deleted when t reverts.
func (s *DefaultFramebufferState) allocPlane(ctx context.Context, c *Context, t *tweaker, p Plane, desc *pixfmt.Descriptor) (uint32, error) {
	a, target := s.attribs, s.planeTarget()
	tex := t.genTexture()
	t.bindTexture(target, tex)
	if target == gl.TEXTURE_2D_MULTISAMPLE {
		c.GL.TexImage2DMultisample(target, int32(a.Samples), desc.Fmt, int32(a.Width), int32(a.Height), true)
	} else {
		c.GL.TexParameteriv(target, gl.TEXTURE_MAX_LEVEL, []int32{0})
		c.GL.TexImage2D(target, 0, desc.Fmt, int32(a.Width), int32(a.Height), desc.OptimumGetImageFmt, desc.OptimumGetImageType, nil)
	}
	if err := gl.CheckError(c.GL); err != nil {
		return 0, log.Errf(ctx, err, "Allocating %dx%d %v texture for %v", a.Width, a.Height, desc.Fmt, p)
	}
	return tex, nil
}

// Snapshot captures every plane the attributes describe. Temporary objects
// are always deleted and GL state is left unchanged.
func (s *DefaultFramebufferState) Snapshot(ctx context.Context, c *Context, attribs DefaultFramebufferAttribs) (err error) {
	ctx = log.Enter(ctx, "DefaultFramebufferState.Snapshot")
	s.Clear()
	defer func() {
		if err != nil {
			s.Clear()
		}
	}()
	s.attribs = attribs
	if attribs.Width <= 0 || attribs.Height <= 0 {
		return log.Errf(ctx, ErrInconsistentState, "Framebuffer size %dx%d", attribs.Width, attribs.Height)
	}
	gl.CheckError(c.GL)

	t := newTweaker(c.GL)
	defer t.revert(ctx)
	t.glDisable(gl.SCISSOR_TEST)
	t.glDisable(gl.FRAMEBUFFER_SRGB)
	t.bindFramebuffer(gl.READ_FRAMEBUFFER, 0)
	for p := Plane(0); p < NumPlanes; p++ {
		if !attribs.HasPlane(p) {
			continue
		}
		if err := s.snapshotPlane(ctx, c, t, p); err != nil {
			return err
		}
	}
	s.valid = true
	return nil
}

func (s *DefaultFramebufferState) snapshotPlane(ctx context.Context, c *Context, t *tweaker, p Plane) error {
	ctx = log.V{"plane": p}.Bind(ctx)
	a := s.attribs
	desc := a.planeFormat(p)
	if desc == nil {
		return log.Errf(ctx, ErrUnsupportedFormat, "No format for %+v", a)
	}
	tex, err := s.allocPlane(ctx, c, t, p, desc)
	if err != nil {
		return err
	}
	fb := t.genFramebuffer()
	t.bindFramebuffer(gl.DRAW_FRAMEBUFFER, fb)
	attachment, mask := gl.COLOR_ATTACHMENT0, uint32(gl.COLOR_BUFFER_BIT)
	if p == DepthStencil {
		attachment, mask = depthStencilAttachment(desc)
		c.GL.DrawBuffer(gl.NONE)
	} else {
		t.readBuffer(planeBuffers[p])
		c.GL.DrawBuffer(gl.COLOR_ATTACHMENT0)
	}
	c.GL.FramebufferTexture2D(gl.DRAW_FRAMEBUFFER, attachment, s.planeTarget(), tex, 0)
	if st := c.GL.CheckFramebufferStatus(gl.DRAW_FRAMEBUFFER); st != gl.FRAMEBUFFER_COMPLETE {
		return log.Errf(ctx, ErrIncompleteFramebuffer, "Status %v", st)
	}
	w, h := int32(a.Width), int32(a.Height)
	c.GL.BlitFramebuffer(0, 0, w, h, 0, 0, w, h, mask, gl.NEAREST)
	if err := gl.CheckError(c.GL); err != nil {
		return log.Errf(ctx, err, "Copying %dx%d plane", a.Width, a.Height)
	}
	return s.planes[p].Snapshot(ctx, c, uint64(tex), s.planeTarget())
}

// Restore writes every captured plane back into the default framebuffer.
func (s *DefaultFramebufferState) Restore(ctx context.Context, c *Context) error {
	ctx = log.Enter(ctx, "DefaultFramebufferState.Restore")
	if !s.valid {
		return log.Err(ctx, ErrNotValid, "Restoring default framebuffer")
	}
	gl.CheckError(c.GL)

	t := newTweaker(c.GL)
	defer t.revert(ctx)
	t.glDisable(gl.SCISSOR_TEST)
	t.glDisable(gl.FRAMEBUFFER_SRGB)
	t.colorMask(true, true, true, true)
	t.depthMask(true)
	t.stencilMask(0xFF)
	t.bindFramebuffer(gl.DRAW_FRAMEBUFFER, 0)
	for p := Plane(0); p < NumPlanes; p++ {
		if !s.planes[p].valid {
			continue
		}
		if err := s.restorePlane(ctx, c, t, p); err != nil {
			return err
		}
	}
	return nil
}

func (s *DefaultFramebufferState) restorePlane(ctx context.Context, c *Context, t *tweaker, p Plane) error {
	ctx = log.V{"plane": p}.Bind(ctx)
	plane := &s.planes[p]
	name, err := plane.Restore(ctx, c, nil, 0)
	if err != nil {
		return err
	}
	t.onRevert(func() { c.GL.DeleteTexture(uint32(name)) })
	desc := pixfmt.Find(plane.Texture(0).InternalFormat())
	if desc == nil {
		return log.Errf(ctx, ErrUnsupportedFormat, "Plane format %v", plane.Texture(0).InternalFormat())
	}
	fb := t.genFramebuffer()
	t.bindFramebuffer(gl.READ_FRAMEBUFFER, fb)
	attachment, mask := gl.COLOR_ATTACHMENT0, uint32(gl.COLOR_BUFFER_BIT)
	if p == DepthStencil {
		attachment, mask = depthStencilAttachment(desc)
	}
	c.GL.FramebufferTexture2D(gl.READ_FRAMEBUFFER, attachment, plane.Target(), uint32(name), 0)
	if p == DepthStencil {
		c.GL.ReadBuffer(gl.NONE)
	} else {
		c.GL.ReadBuffer(gl.COLOR_ATTACHMENT0)
		t.drawBuffer(planeBuffers[p])
	}
	if st := c.GL.CheckFramebufferStatus(gl.READ_FRAMEBUFFER); st != gl.FRAMEBUFFER_COMPLETE {
		return log.Errf(ctx, ErrIncompleteFramebuffer, "Status %v", st)
	}
	w, h := int32(s.attribs.Width), int32(s.attribs.Height)
	c.GL.BlitFramebuffer(0, 0, w, h, 0, 0, w, h, mask, gl.NEAREST)
	if err := gl.CheckError(c.GL); err != nil {
		return log.Errf(ctx, err, "Copying %dx%d plane", s.attribs.Width, s.attribs.Height)
	}
	return nil
}

func (s *DefaultFramebufferState) Serialize(ctx context.Context, node *document.Node, blobs blob.Manager) error {
	ctx = log.Enter(ctx, "DefaultFramebufferState.Serialize")
	if !s.valid {
		return log.Err(ctx, ErrNotValid, "Serializing default framebuffer")
	}
	node.SetInt("version", framebufferVersion)
	a := s.attribs
	n := node.AddNode("attribs")
	n.SetInt("r_bits", int64(a.RedBits))
	n.SetInt("g_bits", int64(a.GreenBits))
	n.SetInt("b_bits", int64(a.BlueBits))
	n.SetInt("a_bits", int64(a.AlphaBits))
	n.SetInt("depth_bits", int64(a.DepthBits))
	n.SetInt("stencil_bits", int64(a.StencilBits))
	n.SetInt("samples", int64(a.Samples))
	n.SetBool("double_buffered", a.DoubleBuffered)
	n.SetBool("stereo", a.Stereo)
	n.SetInt("width", int64(a.Width))
	n.SetInt("height", int64(a.Height))
	planes := node.AddNode("planes")
	for p := Plane(0); p < NumPlanes; p++ {
		if !s.planes[p].valid {
			continue
		}
		if err := s.planes[p].Serialize(ctx, planes.AddNode(p.String()), blobs); err != nil {
			return log.Errf(ctx, err, "Serializing %v", p)
		}
	}
	return nil
}

func (s *DefaultFramebufferState) Deserialize(ctx context.Context, node *document.Node, blobs blob.Manager) (err error) {
	ctx = log.Enter(ctx, "DefaultFramebufferState.Deserialize")
	s.Clear()
	defer func() {
		if err != nil {
			s.Clear()
		}
	}()
	if version, err := node.GetInt("version"); err != nil {
		return err
	} else if version > framebufferVersion {
		return log.Errf(ctx, ErrVersion, "Default framebuffer version %d", version)
	}
	n, err := node.GetNode("attribs")
	if err != nil {
		return err
	}
	a := &s.attribs
	for _, f := range []struct {
		key string
		out *int
	}{
		{"r_bits", &a.RedBits},
		{"g_bits", &a.GreenBits},
		{"b_bits", &a.BlueBits},
		{"a_bits", &a.AlphaBits},
		{"depth_bits", &a.DepthBits},
		{"stencil_bits", &a.StencilBits},
		{"samples", &a.Samples},
		{"width", &a.Width},
		{"height", &a.Height},
	} {
		v, err := n.GetInt(f.key)
		if err != nil {
			return err
		}
		*f.out = int(v)
	}
	if a.DoubleBuffered, err = n.GetBool("double_buffered"); err != nil {
		return err
	}
	if a.Stereo, err = n.GetBool("stereo"); err != nil {
		return err
	}
	planes, err := node.GetNode("planes")
	if err != nil {
		return err
	}
	for p := Plane(0); p < NumPlanes; p++ {
		if !planes.Has(p.String()) {
			continue
		}
		pn, err := planes.GetNode(p.String())
		if err != nil {
			return err
		}
		if err := s.planes[p].Deserialize(ctx, pn, blobs); err != nil {
			return log.Errf(ctx, err, "Deserializing %v", p)
		}
	}
	s.valid = true
	return nil
}
