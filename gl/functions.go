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

package gl

// Functions is the GL API surface used for object state capture and restore.
// Object names are live driver names. Pixel and buffer transfers always go
// through client memory: pack and unpack buffer bindings are expected to be
// zero when the slice forms are used.
type Functions interface {
	GetError() Enum
	GetIntegerv(pname Enum, data []int32)
	GetFloatv(pname Enum, data []float32)
	GetString(name Enum) string
	GetStringi(name Enum, index uint32) string
	IsEnabled(cap Enum) bool
	Enable(cap Enum)
	Disable(cap Enum)
	PixelStorei(pname Enum, param int32)

	GenTexture() uint32
	DeleteTexture(texture uint32)
	IsTexture(texture uint32) bool
	ActiveTexture(unit Enum)
	BindTexture(target Enum, texture uint32)
	TexParameteriv(target, pname Enum, params []int32)
	TexParameterfv(target, pname Enum, params []float32)
	GetTexParameteriv(target, pname Enum, params []int32)
	GetTexParameterfv(target, pname Enum, params []float32)
	GetTexLevelParameteriv(target Enum, level int32, pname Enum, params []int32)
	TexImage1D(target Enum, level int32, internalFormat Enum, width int32, format, ty Enum, pixels []byte)
	TexImage2D(target Enum, level int32, internalFormat Enum, width, height int32, format, ty Enum, pixels []byte)
	TexImage3D(target Enum, level int32, internalFormat Enum, width, height, depth int32, format, ty Enum, pixels []byte)
	CompressedTexImage1D(target Enum, level int32, internalFormat Enum, width int32, data []byte)
	CompressedTexImage2D(target Enum, level int32, internalFormat Enum, width, height int32, data []byte)
	CompressedTexImage3D(target Enum, level int32, internalFormat Enum, width, height, depth int32, data []byte)
	TexImage2DMultisample(target Enum, samples int32, internalFormat Enum, width, height int32, fixedSampleLocations bool)
	TexImage3DMultisample(target Enum, samples int32, internalFormat Enum, width, height, depth int32, fixedSampleLocations bool)
	TexBuffer(target, internalFormat Enum, buffer uint32)
	GetTexImage(target Enum, level int32, format, ty Enum, pixels []byte)
	GetCompressedTexImage(target Enum, level int32, pixels []byte)

	GenBuffer() uint32
	DeleteBuffer(buffer uint32)
	IsBuffer(buffer uint32) bool
	BindBuffer(target Enum, buffer uint32)
	BufferData(target Enum, data []byte, usage Enum)
	GetBufferParameteriv(target, pname Enum, params []int32)
	GetBufferSubData(target Enum, offset int, data []byte)

	GenFramebuffer() uint32
	DeleteFramebuffer(framebuffer uint32)
	BindFramebuffer(target Enum, framebuffer uint32)
	FramebufferTexture2D(target, attachment, texTarget Enum, texture uint32, level int32)
	FramebufferTextureLayer(target, attachment Enum, texture uint32, level, layer int32)
	CheckFramebufferStatus(target Enum) Enum
	GetFramebufferAttachmentParameteriv(target, attachment, pname Enum, params []int32)
	ReadBuffer(mode Enum)
	DrawBuffer(mode Enum)
	DrawBuffers(bufs []Enum)
	BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int32, mask uint32, filter Enum)
	Viewport(x, y, width, height int32)

	CreateShader(ty Enum) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	GetShaderiv(shader uint32, pname Enum, params []int32)
	GetShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)
	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	GetProgramiv(program uint32, pname Enum, params []int32)
	GetProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)
	GetUniformLocation(program uint32, name string) int32
	Uniform1i(location, v int32)

	GenVertexArray() uint32
	BindVertexArray(array uint32)
	DeleteVertexArray(array uint32)
	DrawArrays(mode Enum, first, count int32)

	ColorMask(r, g, b, a bool)
	DepthMask(flag bool)
	DepthFunc(fn Enum)
	StencilMask(mask uint32)
	StencilFunc(fn Enum, ref int32, mask uint32)
	StencilOp(fail, zfail, zpass Enum)
	SampleMaski(index, mask uint32)
	ClearStencil(s int32)
	Clear(mask uint32)
}

// GetInteger returns the single integer value of pname.
func GetInteger(f Functions, pname Enum) int32 {
	v := []int32{0}
	f.GetIntegerv(pname, v)
	return v[0]
}

// GetTexLevelParameter returns a single integer level parameter.
func GetTexLevelParameter(f Functions, target Enum, level int32, pname Enum) int32 {
	v := []int32{0}
	f.GetTexLevelParameteriv(target, level, pname, v)
	return v[0]
}
