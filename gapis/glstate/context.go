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

// Package glstate captures the state of GL objects into a portable form and
// restores it into a live context.
//
// A snapshot queries everything it needs through gl.Functions, packs pixel
// data into KTX containers and can be written to a document node plus a blob
// store. Every operation assumes exclusive use of the current GL context and
// leaves the caller's GL state as it found it.
package glstate

import (
	"context"
	"fmt"
	"strings"

	"github.com/ValveSoftware/vogl-sub006/core/log"
	"github.com/ValveSoftware/vogl-sub006/gl"
)

// Context bundles the GL entry points with the properties of the current
// context.
type Context struct {
	GL   gl.Functions
	Info *ContextInfo
	// Splitter is used for multisample textures. It may be nil, in which case
	// multisample snapshots and restores fail.
	Splitter MSAASplitter
}

// NewContext queries the context properties of fns and returns a Context.
func NewContext(ctx context.Context, fns gl.Functions, splitter MSAASplitter) (*Context, error) {
	info, err := QueryContextInfo(ctx, fns)
	if err != nil {
		return nil, err
	}
	return &Context{GL: fns, Info: info, Splitter: splitter}, nil
}

// ContextInfo holds the version, profile, extensions and limits of a GL
// context.
type ContextInfo struct {
	Major, Minor int
	Core         bool
	Vendor       string
	Renderer     string
	Extensions   map[string]bool

	MaxTextureSize          int
	Max3DTextureSize        int
	MaxCubeMapTextureSize   int
	MaxRectangleTextureSize int
	MaxArrayTextureLayers   int
	MaxSamples              int
}

// QueryContextInfo reads the context properties through fns.
func QueryContextInfo(ctx context.Context, fns gl.Functions) (*ContextInfo, error) {
	gl.CheckError(fns)
	i := &ContextInfo{
		Major:      int(gl.GetInteger(fns, gl.MAJOR_VERSION)),
		Minor:      int(gl.GetInteger(fns, gl.MINOR_VERSION)),
		Vendor:     fns.GetString(gl.VENDOR),
		Renderer:   fns.GetString(gl.RENDERER),
		Extensions: map[string]bool{},
	}
	if err := gl.CheckError(fns); err != nil || i.Major == 0 {
		// Contexts older than 3.0 have no MAJOR_VERSION query.
		if _, err := fmt.Sscanf(fns.GetString(gl.VERSION), "%d.%d", &i.Major, &i.Minor); err != nil {
			return nil, log.Errf(ctx, err, "Unable to determine the GL version")
		}
	}
	if i.IsVersionAtLeast(3, 2) {
		i.Core = gl.GetInteger(fns, gl.CONTEXT_PROFILE_MASK)&gl.CONTEXT_CORE_PROFILE_BIT != 0
	}
	if i.IsVersionAtLeast(3, 0) {
		n := int(gl.GetInteger(fns, gl.NUM_EXTENSIONS))
		for e := 0; e < n; e++ {
			i.Extensions[fns.GetStringi(gl.EXTENSIONS, uint32(e))] = true
		}
	} else {
		for _, e := range strings.Fields(fns.GetString(gl.EXTENSIONS)) {
			i.Extensions[e] = true
		}
	}
	i.MaxTextureSize = int(gl.GetInteger(fns, gl.MAX_TEXTURE_SIZE))
	i.Max3DTextureSize = int(gl.GetInteger(fns, gl.MAX_3D_TEXTURE_SIZE))
	i.MaxCubeMapTextureSize = int(gl.GetInteger(fns, gl.MAX_CUBE_MAP_TEXTURE_SIZE))
	i.MaxRectangleTextureSize = int(gl.GetInteger(fns, gl.MAX_RECTANGLE_TEXTURE_SIZE))
	i.MaxArrayTextureLayers = int(gl.GetInteger(fns, gl.MAX_ARRAY_TEXTURE_LAYERS))
	i.MaxSamples = int(gl.GetInteger(fns, gl.MAX_SAMPLES))
	if err := gl.CheckError(fns); err != nil {
		log.W(ctx, "Some context limits could not be queried: %v", err)
	}
	log.D(ctx, "GL %d.%d core:%v %s, %d extensions", i.Major, i.Minor, i.Core, i.Renderer, len(i.Extensions))
	return i, nil
}

// IsVersionAtLeast returns true if the context version is major.minor or
// later.
func (i *ContextInfo) IsVersionAtLeast(major, minor int) bool {
	return i.Major > major || (i.Major == major && i.Minor >= minor)
}

// SupportsExtension returns true if the named extension is exposed.
func (i *ContextInfo) SupportsExtension(name string) bool { return i.Extensions[name] }

// MaxTextureLevels returns the number of mip levels a texture of the given
// target can have in this context.
func (i *ContextInfo) MaxTextureLevels(target gl.Enum) int {
	size := i.MaxTextureSize
	switch target {
	case gl.TEXTURE_RECTANGLE, gl.TEXTURE_BUFFER, gl.TEXTURE_2D_MULTISAMPLE, gl.TEXTURE_2D_MULTISAMPLE_ARRAY:
		return 1
	case gl.TEXTURE_3D:
		size = i.Max3DTextureSize
	case gl.TEXTURE_CUBE_MAP, gl.TEXTURE_CUBE_MAP_ARRAY:
		size = i.MaxCubeMapTextureSize
	}
	levels := 1
	for size > 1 {
		size >>= 1
		levels++
	}
	return levels
}
