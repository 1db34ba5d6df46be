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

import "github.com/ValveSoftware/vogl-sub006/gl"

func (d *Driver) CreateShader(ty gl.Enum) uint32 {
	if ty != gl.VERTEX_SHADER && ty != gl.FRAGMENT_SHADER {
		d.setError(gl.INVALID_ENUM)
		return 0
	}
	n := d.genName()
	d.shaders[n] = ty
	return n
}

func (d *Driver) ShaderSource(shader uint32, source string) {}
func (d *Driver) CompileShader(shader uint32)               {}
func (d *Driver) GetShaderInfoLog(shader uint32) string     { return "" }
func (d *Driver) DeleteShader(shader uint32)                { delete(d.shaders, shader) }

func (d *Driver) GetShaderiv(shader uint32, pname gl.Enum, params []int32) {
	switch pname {
	case gl.COMPILE_STATUS:
		params[0] = boolToInt(d.shaders[shader] != gl.NONE)
	case gl.INFO_LOG_LENGTH:
		params[0] = 0
	default:
		d.setError(gl.INVALID_ENUM)
	}
}

func (d *Driver) CreateProgram() uint32 {
	n := d.genName()
	d.programs[n] = true
	return n
}

func (d *Driver) AttachShader(program, shader uint32)     {}
func (d *Driver) LinkProgram(program uint32)              {}
func (d *Driver) GetProgramInfoLog(program uint32) string { return "" }
func (d *Driver) DeleteProgram(program uint32)            { delete(d.programs, program) }

func (d *Driver) GetProgramiv(program uint32, pname gl.Enum, params []int32) {
	switch pname {
	case gl.LINK_STATUS:
		params[0] = boolToInt(d.programs[program])
	case gl.INFO_LOG_LENGTH:
		params[0] = 0
	default:
		d.setError(gl.INVALID_ENUM)
	}
}

func (d *Driver) UseProgram(program uint32) {
	if program != 0 && !d.programs[program] {
		d.setError(gl.INVALID_OPERATION)
		return
	}
	d.program = program
}

func (d *Driver) GetUniformLocation(program uint32, name string) int32 { return 0 }
func (d *Driver) Uniform1i(location, v int32)                          {}

func (d *Driver) GenVertexArray() uint32 {
	n := d.genName()
	d.vertexArrays[n] = true
	return n
}

func (d *Driver) BindVertexArray(array uint32) {
	if array != 0 && !d.vertexArrays[array] {
		d.setError(gl.INVALID_OPERATION)
		return
	}
	d.vertexArray = array
}

func (d *Driver) DeleteVertexArray(array uint32) {
	delete(d.vertexArrays, array)
	if d.vertexArray == array {
		d.vertexArray = 0
	}
}

// DrawArrays validates that a program is in use but does not rasterize.
func (d *Driver) DrawArrays(mode gl.Enum, first, count int32) {
	if d.program == 0 || d.vertexArray == 0 {
		d.setError(gl.INVALID_OPERATION)
	}
}
