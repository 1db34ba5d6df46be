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

package gldriver

import (
	"context"
	"runtime"

	gogl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/ValveSoftware/vogl-sub006/core/fault"
	"github.com/ValveSoftware/vogl-sub006/core/log"
	"github.com/ValveSoftware/vogl-sub006/gl"
)

// ErrNoContext is returned when a native context cannot be created.
const ErrNoContext = fault.Const("Unable to create a GL context")

// Config describes the hidden window backing a Context.
type Config struct {
	Width, Height int
	Samples       int
	DoubleBuffer  bool
	DepthBits     int
	StencilBits   int
	Debug         bool
}

// DefaultConfig is a small double buffered RGBA8 window with a D24S8 plane.
var DefaultConfig = Config{Width: 64, Height: 64, DoubleBuffer: true, DepthBits: 24, StencilBits: 8}

// Context is a core profile context on a hidden window plus an auxiliary
// context sharing its objects. All methods must be called from the thread
// that called New.
type Context struct {
	Functions
	window *glfw.Window
	aux    *glfw.Window
	config Config
}

// New initializes GLFW and makes a new context current on the calling
// thread, which is locked to its OS thread.
func New(ctx context.Context, cfg Config) (*Context, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, log.Err(ctx, err, "Initializing GLFW")
	}
	hints := func() {
		glfw.DefaultWindowHints()
		glfw.WindowHint(glfw.Visible, glfw.False)
		glfw.WindowHint(glfw.ContextVersionMajor, 4)
		glfw.WindowHint(glfw.ContextVersionMinor, 1)
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
		if cfg.Debug {
			glfw.WindowHint(glfw.OpenGLDebugContext, glfw.True)
		}
	}
	hints()
	glfw.WindowHint(glfw.Samples, cfg.Samples)
	glfw.WindowHint(glfw.DoubleBuffer, glfwBool(cfg.DoubleBuffer))
	glfw.WindowHint(glfw.DepthBits, cfg.DepthBits)
	glfw.WindowHint(glfw.StencilBits, cfg.StencilBits)
	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, "texsnap", nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, log.Errf(ctx, ErrNoContext, "Creating window: %v", err)
	}
	hints()
	aux, err := glfw.CreateWindow(1, 1, "texsnap aux", nil, window)
	if err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, log.Errf(ctx, ErrNoContext, "Creating auxiliary context: %v", err)
	}
	window.MakeContextCurrent()
	if err := gogl.Init(); err != nil {
		aux.Destroy()
		window.Destroy()
		glfw.Terminate()
		return nil, log.Errf(ctx, ErrNoContext, "Loading GL entry points: %v", err)
	}
	c := &Context{window: window, aux: aux, config: cfg}
	log.I(ctx, "GL %v on %v", c.GetString(gl.VERSION), c.GetString(gl.RENDERER))
	return c, nil
}

func glfwBool(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

// Size returns the size of the default framebuffer.
func (c *Context) Size() (width, height int) { return c.window.GetFramebufferSize() }

// MakeAuxCurrent makes the auxiliary context current until the returned
// function is called.
func (c *Context) MakeAuxCurrent(ctx context.Context) (func(), error) {
	c.aux.MakeContextCurrent()
	return c.window.MakeContextCurrent, nil
}

// SwapBuffers presents the back buffer of the window.
func (c *Context) SwapBuffers() { c.window.SwapBuffers() }

// Close destroys both contexts and terminates GLFW.
func (c *Context) Close() {
	glfw.DetachCurrentContext()
	c.aux.Destroy()
	c.window.Destroy()
	glfw.Terminate()
	runtime.UnlockOSThread()
}
