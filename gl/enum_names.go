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

var enumNames = map[Enum]string{
	INVALID_ENUM:                              "GL_INVALID_ENUM",
	INVALID_VALUE:                             "GL_INVALID_VALUE",
	INVALID_OPERATION:                         "GL_INVALID_OPERATION",
	STACK_OVERFLOW:                            "GL_STACK_OVERFLOW",
	STACK_UNDERFLOW:                           "GL_STACK_UNDERFLOW",
	OUT_OF_MEMORY:                             "GL_OUT_OF_MEMORY",
	INVALID_FRAMEBUFFER_OPERATION:             "GL_INVALID_FRAMEBUFFER_OPERATION",
	BYTE:                                      "GL_BYTE",
	UNSIGNED_BYTE:                             "GL_UNSIGNED_BYTE",
	SHORT:                                     "GL_SHORT",
	UNSIGNED_SHORT:                            "GL_UNSIGNED_SHORT",
	INT:                                       "GL_INT",
	UNSIGNED_INT:                              "GL_UNSIGNED_INT",
	FLOAT:                                     "GL_FLOAT",
	HALF_FLOAT:                                "GL_HALF_FLOAT",
	UNSIGNED_BYTE_3_3_2:                       "GL_UNSIGNED_BYTE_3_3_2",
	UNSIGNED_SHORT_4_4_4_4:                    "GL_UNSIGNED_SHORT_4_4_4_4",
	UNSIGNED_SHORT_5_5_5_1:                    "GL_UNSIGNED_SHORT_5_5_5_1",
	UNSIGNED_INT_8_8_8_8:                      "GL_UNSIGNED_INT_8_8_8_8",
	UNSIGNED_INT_10_10_10_2:                   "GL_UNSIGNED_INT_10_10_10_2",
	UNSIGNED_BYTE_2_3_3_REV:                   "GL_UNSIGNED_BYTE_2_3_3_REV",
	UNSIGNED_SHORT_5_6_5:                      "GL_UNSIGNED_SHORT_5_6_5",
	UNSIGNED_SHORT_5_6_5_REV:                  "GL_UNSIGNED_SHORT_5_6_5_REV",
	UNSIGNED_SHORT_4_4_4_4_REV:                "GL_UNSIGNED_SHORT_4_4_4_4_REV",
	UNSIGNED_SHORT_1_5_5_5_REV:                "GL_UNSIGNED_SHORT_1_5_5_5_REV",
	UNSIGNED_INT_8_8_8_8_REV:                  "GL_UNSIGNED_INT_8_8_8_8_REV",
	UNSIGNED_INT_2_10_10_10_REV:               "GL_UNSIGNED_INT_2_10_10_10_REV",
	UNSIGNED_INT_24_8:                         "GL_UNSIGNED_INT_24_8",
	UNSIGNED_INT_10F_11F_11F_REV:              "GL_UNSIGNED_INT_10F_11F_11F_REV",
	UNSIGNED_INT_5_9_9_9_REV:                  "GL_UNSIGNED_INT_5_9_9_9_REV",
	FLOAT_32_UNSIGNED_INT_24_8_REV:            "GL_FLOAT_32_UNSIGNED_INT_24_8_REV",
	UNSIGNED_NORMALIZED:                       "GL_UNSIGNED_NORMALIZED",
	SIGNED_NORMALIZED:                         "GL_SIGNED_NORMALIZED",
	STENCIL_INDEX:                             "GL_STENCIL_INDEX",
	DEPTH_COMPONENT:                           "GL_DEPTH_COMPONENT",
	RED:                                       "GL_RED",
	GREEN:                                     "GL_GREEN",
	BLUE:                                      "GL_BLUE",
	ALPHA:                                     "GL_ALPHA",
	RGB:                                       "GL_RGB",
	RGBA:                                      "GL_RGBA",
	LUMINANCE:                                 "GL_LUMINANCE",
	LUMINANCE_ALPHA:                           "GL_LUMINANCE_ALPHA",
	BGR:                                       "GL_BGR",
	BGRA:                                      "GL_BGRA",
	RG:                                        "GL_RG",
	RG_INTEGER:                                "GL_RG_INTEGER",
	DEPTH_STENCIL:                             "GL_DEPTH_STENCIL",
	RED_INTEGER:                               "GL_RED_INTEGER",
	GREEN_INTEGER:                             "GL_GREEN_INTEGER",
	BLUE_INTEGER:                              "GL_BLUE_INTEGER",
	ALPHA_INTEGER:                             "GL_ALPHA_INTEGER",
	RGB_INTEGER:                               "GL_RGB_INTEGER",
	RGBA_INTEGER:                              "GL_RGBA_INTEGER",
	BGR_INTEGER:                               "GL_BGR_INTEGER",
	BGRA_INTEGER:                              "GL_BGRA_INTEGER",
	R3_G3_B2:                                  "GL_R3_G3_B2",
	ALPHA4:                                    "GL_ALPHA4",
	ALPHA8:                                    "GL_ALPHA8",
	ALPHA12:                                   "GL_ALPHA12",
	ALPHA16:                                   "GL_ALPHA16",
	LUMINANCE4:                                "GL_LUMINANCE4",
	LUMINANCE8:                                "GL_LUMINANCE8",
	LUMINANCE12:                               "GL_LUMINANCE12",
	LUMINANCE16:                               "GL_LUMINANCE16",
	LUMINANCE4_ALPHA4:                         "GL_LUMINANCE4_ALPHA4",
	LUMINANCE6_ALPHA2:                         "GL_LUMINANCE6_ALPHA2",
	LUMINANCE8_ALPHA8:                         "GL_LUMINANCE8_ALPHA8",
	LUMINANCE12_ALPHA4:                        "GL_LUMINANCE12_ALPHA4",
	LUMINANCE12_ALPHA12:                       "GL_LUMINANCE12_ALPHA12",
	LUMINANCE16_ALPHA16:                       "GL_LUMINANCE16_ALPHA16",
	INTENSITY:                                 "GL_INTENSITY",
	INTENSITY4:                                "GL_INTENSITY4",
	INTENSITY8:                                "GL_INTENSITY8",
	INTENSITY12:                               "GL_INTENSITY12",
	INTENSITY16:                               "GL_INTENSITY16",
	RGB4:                                      "GL_RGB4",
	RGB5:                                      "GL_RGB5",
	RGB8:                                      "GL_RGB8",
	RGB10:                                     "GL_RGB10",
	RGB12:                                     "GL_RGB12",
	RGB16:                                     "GL_RGB16",
	RGBA2:                                     "GL_RGBA2",
	RGBA4:                                     "GL_RGBA4",
	RGB5_A1:                                   "GL_RGB5_A1",
	RGBA8:                                     "GL_RGBA8",
	RGB10_A2:                                  "GL_RGB10_A2",
	RGBA12:                                    "GL_RGBA12",
	RGBA16:                                    "GL_RGBA16",
	R8:                                        "GL_R8",
	R16:                                       "GL_R16",
	RG8:                                       "GL_RG8",
	RG16:                                      "GL_RG16",
	R16F:                                      "GL_R16F",
	R32F:                                      "GL_R32F",
	RG16F:                                     "GL_RG16F",
	RG32F:                                     "GL_RG32F",
	R8I:                                       "GL_R8I",
	R8UI:                                      "GL_R8UI",
	R16I:                                      "GL_R16I",
	R16UI:                                     "GL_R16UI",
	R32I:                                      "GL_R32I",
	R32UI:                                     "GL_R32UI",
	RG8I:                                      "GL_RG8I",
	RG8UI:                                     "GL_RG8UI",
	RG16I:                                     "GL_RG16I",
	RG16UI:                                    "GL_RG16UI",
	RG32I:                                     "GL_RG32I",
	RG32UI:                                    "GL_RG32UI",
	RGBA32F:                                   "GL_RGBA32F",
	RGB32F:                                    "GL_RGB32F",
	RGBA16F:                                   "GL_RGBA16F",
	RGB16F:                                    "GL_RGB16F",
	RGBA32UI:                                  "GL_RGBA32UI",
	RGB32UI:                                   "GL_RGB32UI",
	RGBA16UI:                                  "GL_RGBA16UI",
	RGB16UI:                                   "GL_RGB16UI",
	RGBA8UI:                                   "GL_RGBA8UI",
	RGB8UI:                                    "GL_RGB8UI",
	RGBA32I:                                   "GL_RGBA32I",
	RGB32I:                                    "GL_RGB32I",
	RGBA16I:                                   "GL_RGBA16I",
	RGB16I:                                    "GL_RGB16I",
	RGBA8I:                                    "GL_RGBA8I",
	RGB8I:                                     "GL_RGB8I",
	R8_SNORM:                                  "GL_R8_SNORM",
	RG8_SNORM:                                 "GL_RG8_SNORM",
	RGB8_SNORM:                                "GL_RGB8_SNORM",
	RGBA8_SNORM:                               "GL_RGBA8_SNORM",
	R16_SNORM:                                 "GL_R16_SNORM",
	RG16_SNORM:                                "GL_RG16_SNORM",
	RGB16_SNORM:                               "GL_RGB16_SNORM",
	RGBA16_SNORM:                              "GL_RGBA16_SNORM",
	RGB10_A2UI:                                "GL_RGB10_A2UI",
	RGB565:                                    "GL_RGB565",
	R11F_G11F_B10F:                            "GL_R11F_G11F_B10F",
	RGB9_E5:                                   "GL_RGB9_E5",
	SRGB:                                      "GL_SRGB",
	SRGB8:                                     "GL_SRGB8",
	SRGB_ALPHA:                                "GL_SRGB_ALPHA",
	SRGB8_ALPHA8:                              "GL_SRGB8_ALPHA8",
	SLUMINANCE_ALPHA:                          "GL_SLUMINANCE_ALPHA",
	SLUMINANCE8_ALPHA8:                        "GL_SLUMINANCE8_ALPHA8",
	SLUMINANCE:                                "GL_SLUMINANCE",
	SLUMINANCE8:                               "GL_SLUMINANCE8",
	DEPTH_COMPONENT16:                         "GL_DEPTH_COMPONENT16",
	DEPTH_COMPONENT24:                         "GL_DEPTH_COMPONENT24",
	DEPTH_COMPONENT32:                         "GL_DEPTH_COMPONENT32",
	DEPTH_COMPONENT32F:                        "GL_DEPTH_COMPONENT32F",
	DEPTH32F_STENCIL8:                         "GL_DEPTH32F_STENCIL8",
	DEPTH24_STENCIL8:                          "GL_DEPTH24_STENCIL8",
	STENCIL_INDEX8:                            "GL_STENCIL_INDEX8",
	COMPRESSED_RGB_S3TC_DXT1_EXT:              "GL_COMPRESSED_RGB_S3TC_DXT1_EXT",
	COMPRESSED_RGBA_S3TC_DXT1_EXT:             "GL_COMPRESSED_RGBA_S3TC_DXT1_EXT",
	COMPRESSED_RGBA_S3TC_DXT3_EXT:             "GL_COMPRESSED_RGBA_S3TC_DXT3_EXT",
	COMPRESSED_RGBA_S3TC_DXT5_EXT:             "GL_COMPRESSED_RGBA_S3TC_DXT5_EXT",
	COMPRESSED_SRGB_S3TC_DXT1_EXT:             "GL_COMPRESSED_SRGB_S3TC_DXT1_EXT",
	COMPRESSED_SRGB_ALPHA_S3TC_DXT1_EXT:       "GL_COMPRESSED_SRGB_ALPHA_S3TC_DXT1_EXT",
	COMPRESSED_SRGB_ALPHA_S3TC_DXT3_EXT:       "GL_COMPRESSED_SRGB_ALPHA_S3TC_DXT3_EXT",
	COMPRESSED_SRGB_ALPHA_S3TC_DXT5_EXT:       "GL_COMPRESSED_SRGB_ALPHA_S3TC_DXT5_EXT",
	COMPRESSED_RED_RGTC1:                      "GL_COMPRESSED_RED_RGTC1",
	COMPRESSED_SIGNED_RED_RGTC1:               "GL_COMPRESSED_SIGNED_RED_RGTC1",
	COMPRESSED_RG_RGTC2:                       "GL_COMPRESSED_RG_RGTC2",
	COMPRESSED_SIGNED_RG_RGTC2:                "GL_COMPRESSED_SIGNED_RG_RGTC2",
	COMPRESSED_RGBA_BPTC_UNORM:                "GL_COMPRESSED_RGBA_BPTC_UNORM",
	COMPRESSED_SRGB_ALPHA_BPTC_UNORM:          "GL_COMPRESSED_SRGB_ALPHA_BPTC_UNORM",
	COMPRESSED_RGB_BPTC_SIGNED_FLOAT:          "GL_COMPRESSED_RGB_BPTC_SIGNED_FLOAT",
	COMPRESSED_RGB_BPTC_UNSIGNED_FLOAT:        "GL_COMPRESSED_RGB_BPTC_UNSIGNED_FLOAT",
	ETC1_RGB8_OES:                             "GL_ETC1_RGB8_OES",
	COMPRESSED_R11_EAC:                        "GL_COMPRESSED_R11_EAC",
	COMPRESSED_SIGNED_R11_EAC:                 "GL_COMPRESSED_SIGNED_R11_EAC",
	COMPRESSED_RG11_EAC:                       "GL_COMPRESSED_RG11_EAC",
	COMPRESSED_SIGNED_RG11_EAC:                "GL_COMPRESSED_SIGNED_RG11_EAC",
	COMPRESSED_RGB8_ETC2:                      "GL_COMPRESSED_RGB8_ETC2",
	COMPRESSED_SRGB8_ETC2:                     "GL_COMPRESSED_SRGB8_ETC2",
	COMPRESSED_RGB8_PUNCHTHROUGH_ALPHA1_ETC2:  "GL_COMPRESSED_RGB8_PUNCHTHROUGH_ALPHA1_ETC2",
	COMPRESSED_SRGB8_PUNCHTHROUGH_ALPHA1_ETC2: "GL_COMPRESSED_SRGB8_PUNCHTHROUGH_ALPHA1_ETC2",
	COMPRESSED_RGBA8_ETC2_EAC:                 "GL_COMPRESSED_RGBA8_ETC2_EAC",
	COMPRESSED_SRGB8_ALPHA8_ETC2_EAC:          "GL_COMPRESSED_SRGB8_ALPHA8_ETC2_EAC",
	COMPRESSED_RGBA_ASTC_4x4_KHR:              "GL_COMPRESSED_RGBA_ASTC_4x4_KHR",
	COMPRESSED_RGBA_ASTC_5x4_KHR:              "GL_COMPRESSED_RGBA_ASTC_5x4_KHR",
	COMPRESSED_RGBA_ASTC_5x5_KHR:              "GL_COMPRESSED_RGBA_ASTC_5x5_KHR",
	COMPRESSED_RGBA_ASTC_6x5_KHR:              "GL_COMPRESSED_RGBA_ASTC_6x5_KHR",
	COMPRESSED_RGBA_ASTC_6x6_KHR:              "GL_COMPRESSED_RGBA_ASTC_6x6_KHR",
	COMPRESSED_RGBA_ASTC_8x5_KHR:              "GL_COMPRESSED_RGBA_ASTC_8x5_KHR",
	COMPRESSED_RGBA_ASTC_8x6_KHR:              "GL_COMPRESSED_RGBA_ASTC_8x6_KHR",
	COMPRESSED_RGBA_ASTC_8x8_KHR:              "GL_COMPRESSED_RGBA_ASTC_8x8_KHR",
	COMPRESSED_RGBA_ASTC_10x5_KHR:             "GL_COMPRESSED_RGBA_ASTC_10x5_KHR",
	COMPRESSED_RGBA_ASTC_10x6_KHR:             "GL_COMPRESSED_RGBA_ASTC_10x6_KHR",
	COMPRESSED_RGBA_ASTC_10x8_KHR:             "GL_COMPRESSED_RGBA_ASTC_10x8_KHR",
	COMPRESSED_RGBA_ASTC_10x10_KHR:            "GL_COMPRESSED_RGBA_ASTC_10x10_KHR",
	COMPRESSED_RGBA_ASTC_12x10_KHR:            "GL_COMPRESSED_RGBA_ASTC_12x10_KHR",
	COMPRESSED_RGBA_ASTC_12x12_KHR:            "GL_COMPRESSED_RGBA_ASTC_12x12_KHR",
	COMPRESSED_SRGB8_ALPHA8_ASTC_4x4_KHR:      "GL_COMPRESSED_SRGB8_ALPHA8_ASTC_4x4_KHR",
	COMPRESSED_SRGB8_ALPHA8_ASTC_5x4_KHR:      "GL_COMPRESSED_SRGB8_ALPHA8_ASTC_5x4_KHR",
	COMPRESSED_SRGB8_ALPHA8_ASTC_5x5_KHR:      "GL_COMPRESSED_SRGB8_ALPHA8_ASTC_5x5_KHR",
	COMPRESSED_SRGB8_ALPHA8_ASTC_6x5_KHR:      "GL_COMPRESSED_SRGB8_ALPHA8_ASTC_6x5_KHR",
	COMPRESSED_SRGB8_ALPHA8_ASTC_6x6_KHR:      "GL_COMPRESSED_SRGB8_ALPHA8_ASTC_6x6_KHR",
	COMPRESSED_SRGB8_ALPHA8_ASTC_8x5_KHR:      "GL_COMPRESSED_SRGB8_ALPHA8_ASTC_8x5_KHR",
	COMPRESSED_SRGB8_ALPHA8_ASTC_8x6_KHR:      "GL_COMPRESSED_SRGB8_ALPHA8_ASTC_8x6_KHR",
	COMPRESSED_SRGB8_ALPHA8_ASTC_8x8_KHR:      "GL_COMPRESSED_SRGB8_ALPHA8_ASTC_8x8_KHR",
	COMPRESSED_SRGB8_ALPHA8_ASTC_10x5_KHR:     "GL_COMPRESSED_SRGB8_ALPHA8_ASTC_10x5_KHR",
	COMPRESSED_SRGB8_ALPHA8_ASTC_10x6_KHR:     "GL_COMPRESSED_SRGB8_ALPHA8_ASTC_10x6_KHR",
	COMPRESSED_SRGB8_ALPHA8_ASTC_10x8_KHR:     "GL_COMPRESSED_SRGB8_ALPHA8_ASTC_10x8_KHR",
	COMPRESSED_SRGB8_ALPHA8_ASTC_10x10_KHR:    "GL_COMPRESSED_SRGB8_ALPHA8_ASTC_10x10_KHR",
	COMPRESSED_SRGB8_ALPHA8_ASTC_12x10_KHR:    "GL_COMPRESSED_SRGB8_ALPHA8_ASTC_12x10_KHR",
	COMPRESSED_SRGB8_ALPHA8_ASTC_12x12_KHR:    "GL_COMPRESSED_SRGB8_ALPHA8_ASTC_12x12_KHR",
	TEXTURE_1D:                                "GL_TEXTURE_1D",
	TEXTURE_2D:                                "GL_TEXTURE_2D",
	TEXTURE_3D:                                "GL_TEXTURE_3D",
	TEXTURE_RECTANGLE:                         "GL_TEXTURE_RECTANGLE",
	TEXTURE_CUBE_MAP:                          "GL_TEXTURE_CUBE_MAP",
	TEXTURE_CUBE_MAP_POSITIVE_X:               "GL_TEXTURE_CUBE_MAP_POSITIVE_X",
	TEXTURE_CUBE_MAP_NEGATIVE_X:               "GL_TEXTURE_CUBE_MAP_NEGATIVE_X",
	TEXTURE_CUBE_MAP_POSITIVE_Y:               "GL_TEXTURE_CUBE_MAP_POSITIVE_Y",
	TEXTURE_CUBE_MAP_NEGATIVE_Y:               "GL_TEXTURE_CUBE_MAP_NEGATIVE_Y",
	TEXTURE_CUBE_MAP_POSITIVE_Z:               "GL_TEXTURE_CUBE_MAP_POSITIVE_Z",
	TEXTURE_CUBE_MAP_NEGATIVE_Z:               "GL_TEXTURE_CUBE_MAP_NEGATIVE_Z",
	TEXTURE_1D_ARRAY:                          "GL_TEXTURE_1D_ARRAY",
	TEXTURE_2D_ARRAY:                          "GL_TEXTURE_2D_ARRAY",
	TEXTURE_BUFFER:                            "GL_TEXTURE_BUFFER",
	TEXTURE_CUBE_MAP_ARRAY:                    "GL_TEXTURE_CUBE_MAP_ARRAY",
	TEXTURE_2D_MULTISAMPLE:                    "GL_TEXTURE_2D_MULTISAMPLE",
	TEXTURE_2D_MULTISAMPLE_ARRAY:              "GL_TEXTURE_2D_MULTISAMPLE_ARRAY",
	TEXTURE_BINDING_1D:                        "GL_TEXTURE_BINDING_1D",
	TEXTURE_BINDING_2D:                        "GL_TEXTURE_BINDING_2D",
	TEXTURE_BINDING_3D:                        "GL_TEXTURE_BINDING_3D",
	TEXTURE_BINDING_RECTANGLE:                 "GL_TEXTURE_BINDING_RECTANGLE",
	TEXTURE_BINDING_CUBE_MAP:                  "GL_TEXTURE_BINDING_CUBE_MAP",
	TEXTURE_BINDING_1D_ARRAY:                  "GL_TEXTURE_BINDING_1D_ARRAY",
	TEXTURE_BINDING_2D_ARRAY:                  "GL_TEXTURE_BINDING_2D_ARRAY",
	TEXTURE_BINDING_BUFFER:                    "GL_TEXTURE_BINDING_BUFFER",
	TEXTURE_BINDING_CUBE_MAP_ARRAY:            "GL_TEXTURE_BINDING_CUBE_MAP_ARRAY",
	TEXTURE_BINDING_2D_MULTISAMPLE:            "GL_TEXTURE_BINDING_2D_MULTISAMPLE",
	TEXTURE_BINDING_2D_MULTISAMPLE_ARRAY:      "GL_TEXTURE_BINDING_2D_MULTISAMPLE_ARRAY",
	TEXTURE0:                                  "GL_TEXTURE0",
	ACTIVE_TEXTURE:                            "GL_ACTIVE_TEXTURE",
	TEXTURE_WIDTH:                             "GL_TEXTURE_WIDTH",
	TEXTURE_HEIGHT:                            "GL_TEXTURE_HEIGHT",
	TEXTURE_INTERNAL_FORMAT:                   "GL_TEXTURE_INTERNAL_FORMAT",
	TEXTURE_BORDER_COLOR:                      "GL_TEXTURE_BORDER_COLOR",
	TEXTURE_BORDER:                            "GL_TEXTURE_BORDER",
	TEXTURE_MAG_FILTER:                        "GL_TEXTURE_MAG_FILTER",
	TEXTURE_MIN_FILTER:                        "GL_TEXTURE_MIN_FILTER",
	TEXTURE_WRAP_S:                            "GL_TEXTURE_WRAP_S",
	TEXTURE_WRAP_T:                            "GL_TEXTURE_WRAP_T",
	TEXTURE_RED_SIZE:                          "GL_TEXTURE_RED_SIZE",
	TEXTURE_GREEN_SIZE:                        "GL_TEXTURE_GREEN_SIZE",
	TEXTURE_BLUE_SIZE:                         "GL_TEXTURE_BLUE_SIZE",
	TEXTURE_ALPHA_SIZE:                        "GL_TEXTURE_ALPHA_SIZE",
	TEXTURE_LUMINANCE_SIZE:                    "GL_TEXTURE_LUMINANCE_SIZE",
	TEXTURE_INTENSITY_SIZE:                    "GL_TEXTURE_INTENSITY_SIZE",
	TEXTURE_DEPTH:                             "GL_TEXTURE_DEPTH",
	TEXTURE_WRAP_R:                            "GL_TEXTURE_WRAP_R",
	GENERATE_MIPMAP:                           "GL_GENERATE_MIPMAP",
	TEXTURE_MIN_LOD:                           "GL_TEXTURE_MIN_LOD",
	TEXTURE_MAX_LOD:                           "GL_TEXTURE_MAX_LOD",
	TEXTURE_BASE_LEVEL:                        "GL_TEXTURE_BASE_LEVEL",
	TEXTURE_MAX_LEVEL:                         "GL_TEXTURE_MAX_LEVEL",
	TEXTURE_IMMUTABLE_LEVELS:                  "GL_TEXTURE_IMMUTABLE_LEVELS",
	TEXTURE_LOD_BIAS:                          "GL_TEXTURE_LOD_BIAS",
	TEXTURE_MAX_ANISOTROPY_EXT:                "GL_TEXTURE_MAX_ANISOTROPY_EXT",
	MAX_TEXTURE_MAX_ANISOTROPY_EXT:            "GL_MAX_TEXTURE_MAX_ANISOTROPY_EXT",
	TEXTURE_COMPRESSED_IMAGE_SIZE:             "GL_TEXTURE_COMPRESSED_IMAGE_SIZE",
	TEXTURE_COMPRESSED:                        "GL_TEXTURE_COMPRESSED",
	TEXTURE_DEPTH_SIZE:                        "GL_TEXTURE_DEPTH_SIZE",
	DEPTH_TEXTURE_MODE:                        "GL_DEPTH_TEXTURE_MODE",
	TEXTURE_COMPARE_MODE:                      "GL_TEXTURE_COMPARE_MODE",
	TEXTURE_COMPARE_FUNC:                      "GL_TEXTURE_COMPARE_FUNC",
	TEXTURE_STENCIL_SIZE:                      "GL_TEXTURE_STENCIL_SIZE",
	TEXTURE_SRGB_DECODE_EXT:                   "GL_TEXTURE_SRGB_DECODE_EXT",
	DECODE_EXT:                                "GL_DECODE_EXT",
	SKIP_DECODE_EXT:                           "GL_SKIP_DECODE_EXT",
	TEXTURE_BUFFER_DATA_STORE_BINDING:         "GL_TEXTURE_BUFFER_DATA_STORE_BINDING",
	TEXTURE_SHARED_SIZE:                       "GL_TEXTURE_SHARED_SIZE",
	TEXTURE_SWIZZLE_R:                         "GL_TEXTURE_SWIZZLE_R",
	TEXTURE_SWIZZLE_G:                         "GL_TEXTURE_SWIZZLE_G",
	TEXTURE_SWIZZLE_B:                         "GL_TEXTURE_SWIZZLE_B",
	TEXTURE_SWIZZLE_A:                         "GL_TEXTURE_SWIZZLE_A",
	DEPTH_STENCIL_TEXTURE_MODE:                "GL_DEPTH_STENCIL_TEXTURE_MODE",
	TEXTURE_SAMPLES:                           "GL_TEXTURE_SAMPLES",
	TEXTURE_FIXED_SAMPLE_LOCATIONS:            "GL_TEXTURE_FIXED_SAMPLE_LOCATIONS",
	TEXTURE_IMMUTABLE_FORMAT:                  "GL_TEXTURE_IMMUTABLE_FORMAT",
	NEVER:                                     "GL_NEVER",
	LESS:                                      "GL_LESS",
	EQUAL:                                     "GL_EQUAL",
	LEQUAL:                                    "GL_LEQUAL",
	GREATER:                                   "GL_GREATER",
	NOTEQUAL:                                  "GL_NOTEQUAL",
	GEQUAL:                                    "GL_GEQUAL",
	ALWAYS:                                    "GL_ALWAYS",
	KEEP:                                      "GL_KEEP",
	REPLACE:                                   "GL_REPLACE",
	NEAREST:                                   "GL_NEAREST",
	LINEAR:                                    "GL_LINEAR",
	NEAREST_MIPMAP_NEAREST:                    "GL_NEAREST_MIPMAP_NEAREST",
	LINEAR_MIPMAP_NEAREST:                     "GL_LINEAR_MIPMAP_NEAREST",
	NEAREST_MIPMAP_LINEAR:                     "GL_NEAREST_MIPMAP_LINEAR",
	LINEAR_MIPMAP_LINEAR:                      "GL_LINEAR_MIPMAP_LINEAR",
	CLAMP:                                     "GL_CLAMP",
	REPEAT:                                    "GL_REPEAT",
	CLAMP_TO_BORDER:                           "GL_CLAMP_TO_BORDER",
	CLAMP_TO_EDGE:                             "GL_CLAMP_TO_EDGE",
	MIRRORED_REPEAT:                           "GL_MIRRORED_REPEAT",
	COMPARE_REF_TO_TEXTURE:                    "GL_COMPARE_REF_TO_TEXTURE",
	UNPACK_SWAP_BYTES:                         "GL_UNPACK_SWAP_BYTES",
	UNPACK_LSB_FIRST:                          "GL_UNPACK_LSB_FIRST",
	UNPACK_ROW_LENGTH:                         "GL_UNPACK_ROW_LENGTH",
	UNPACK_SKIP_ROWS:                          "GL_UNPACK_SKIP_ROWS",
	UNPACK_SKIP_PIXELS:                        "GL_UNPACK_SKIP_PIXELS",
	UNPACK_ALIGNMENT:                          "GL_UNPACK_ALIGNMENT",
	PACK_SWAP_BYTES:                           "GL_PACK_SWAP_BYTES",
	PACK_LSB_FIRST:                            "GL_PACK_LSB_FIRST",
	PACK_ROW_LENGTH:                           "GL_PACK_ROW_LENGTH",
	PACK_SKIP_ROWS:                            "GL_PACK_SKIP_ROWS",
	PACK_SKIP_PIXELS:                          "GL_PACK_SKIP_PIXELS",
	PACK_ALIGNMENT:                            "GL_PACK_ALIGNMENT",
	PACK_SKIP_IMAGES:                          "GL_PACK_SKIP_IMAGES",
	PACK_IMAGE_HEIGHT:                         "GL_PACK_IMAGE_HEIGHT",
	UNPACK_SKIP_IMAGES:                        "GL_UNPACK_SKIP_IMAGES",
	UNPACK_IMAGE_HEIGHT:                       "GL_UNPACK_IMAGE_HEIGHT",
	BUFFER_SIZE:                               "GL_BUFFER_SIZE",
	BUFFER_USAGE:                              "GL_BUFFER_USAGE",
	ARRAY_BUFFER:                              "GL_ARRAY_BUFFER",
	ELEMENT_ARRAY_BUFFER:                      "GL_ELEMENT_ARRAY_BUFFER",
	ARRAY_BUFFER_BINDING:                      "GL_ARRAY_BUFFER_BINDING",
	STREAM_DRAW:                               "GL_STREAM_DRAW",
	STREAM_READ:                               "GL_STREAM_READ",
	STREAM_COPY:                               "GL_STREAM_COPY",
	STATIC_DRAW:                               "GL_STATIC_DRAW",
	STATIC_READ:                               "GL_STATIC_READ",
	STATIC_COPY:                               "GL_STATIC_COPY",
	DYNAMIC_DRAW:                              "GL_DYNAMIC_DRAW",
	DYNAMIC_READ:                              "GL_DYNAMIC_READ",
	DYNAMIC_COPY:                              "GL_DYNAMIC_COPY",
	PIXEL_PACK_BUFFER:                         "GL_PIXEL_PACK_BUFFER",
	PIXEL_UNPACK_BUFFER:                       "GL_PIXEL_UNPACK_BUFFER",
	PIXEL_PACK_BUFFER_BINDING:                 "GL_PIXEL_PACK_BUFFER_BINDING",
	PIXEL_UNPACK_BUFFER_BINDING:               "GL_PIXEL_UNPACK_BUFFER_BINDING",
	UNIFORM_BUFFER:                            "GL_UNIFORM_BUFFER",
	COPY_READ_BUFFER:                          "GL_COPY_READ_BUFFER",
	COPY_WRITE_BUFFER:                         "GL_COPY_WRITE_BUFFER",
	FRONT_LEFT:                                "GL_FRONT_LEFT",
	FRONT_RIGHT:                               "GL_FRONT_RIGHT",
	BACK_LEFT:                                 "GL_BACK_LEFT",
	BACK_RIGHT:                                "GL_BACK_RIGHT",
	FRONT:                                     "GL_FRONT",
	BACK:                                      "GL_BACK",
	LEFT:                                      "GL_LEFT",
	RIGHT:                                     "GL_RIGHT",
	DRAW_BUFFER:                               "GL_DRAW_BUFFER",
	READ_BUFFER:                               "GL_READ_BUFFER",
	DOUBLEBUFFER:                              "GL_DOUBLEBUFFER",
	STEREO:                                    "GL_STEREO",
	COLOR:                                     "GL_COLOR",
	DEPTH:                                     "GL_DEPTH",
	STENCIL:                                   "GL_STENCIL",
	SAMPLE_BUFFERS:                            "GL_SAMPLE_BUFFERS",
	SAMPLES:                                   "GL_SAMPLES",
	FRAMEBUFFER_ATTACHMENT_RED_SIZE:           "GL_FRAMEBUFFER_ATTACHMENT_RED_SIZE",
	FRAMEBUFFER_ATTACHMENT_GREEN_SIZE:         "GL_FRAMEBUFFER_ATTACHMENT_GREEN_SIZE",
	FRAMEBUFFER_ATTACHMENT_BLUE_SIZE:          "GL_FRAMEBUFFER_ATTACHMENT_BLUE_SIZE",
	FRAMEBUFFER_ATTACHMENT_ALPHA_SIZE:         "GL_FRAMEBUFFER_ATTACHMENT_ALPHA_SIZE",
	FRAMEBUFFER_ATTACHMENT_DEPTH_SIZE:         "GL_FRAMEBUFFER_ATTACHMENT_DEPTH_SIZE",
	FRAMEBUFFER_ATTACHMENT_STENCIL_SIZE:       "GL_FRAMEBUFFER_ATTACHMENT_STENCIL_SIZE",
	FRAMEBUFFER_DEFAULT:                       "GL_FRAMEBUFFER_DEFAULT",
	DEPTH_STENCIL_ATTACHMENT:                  "GL_DEPTH_STENCIL_ATTACHMENT",
	DRAW_FRAMEBUFFER_BINDING:                  "GL_DRAW_FRAMEBUFFER_BINDING",
	READ_FRAMEBUFFER:                          "GL_READ_FRAMEBUFFER",
	DRAW_FRAMEBUFFER:                          "GL_DRAW_FRAMEBUFFER",
	READ_FRAMEBUFFER_BINDING:                  "GL_READ_FRAMEBUFFER_BINDING",
	FRAMEBUFFER_ATTACHMENT_OBJECT_TYPE:        "GL_FRAMEBUFFER_ATTACHMENT_OBJECT_TYPE",
	FRAMEBUFFER_ATTACHMENT_OBJECT_NAME:        "GL_FRAMEBUFFER_ATTACHMENT_OBJECT_NAME",
	FRAMEBUFFER_COMPLETE:                      "GL_FRAMEBUFFER_COMPLETE",
	FRAMEBUFFER_INCOMPLETE_ATTACHMENT:         "GL_FRAMEBUFFER_INCOMPLETE_ATTACHMENT",
	FRAMEBUFFER_UNSUPPORTED:                   "GL_FRAMEBUFFER_UNSUPPORTED",
	COLOR_ATTACHMENT0:                         "GL_COLOR_ATTACHMENT0",
	DEPTH_ATTACHMENT:                          "GL_DEPTH_ATTACHMENT",
	STENCIL_ATTACHMENT:                        "GL_STENCIL_ATTACHMENT",
	FRAMEBUFFER:                               "GL_FRAMEBUFFER",
	MAX_SAMPLES:                               "GL_MAX_SAMPLES",
	TRIANGLES:                                 "GL_TRIANGLES",
	TRIANGLE_STRIP:                            "GL_TRIANGLE_STRIP",
	CULL_FACE:                                 "GL_CULL_FACE",
	DEPTH_TEST:                                "GL_DEPTH_TEST",
	DEPTH_WRITEMASK:                           "GL_DEPTH_WRITEMASK",
	DEPTH_FUNC:                                "GL_DEPTH_FUNC",
	STENCIL_TEST:                              "GL_STENCIL_TEST",
	STENCIL_CLEAR_VALUE:                       "GL_STENCIL_CLEAR_VALUE",
	STENCIL_FUNC:                              "GL_STENCIL_FUNC",
	STENCIL_VALUE_MASK:                        "GL_STENCIL_VALUE_MASK",
	STENCIL_FAIL:                              "GL_STENCIL_FAIL",
	STENCIL_PASS_DEPTH_FAIL:                   "GL_STENCIL_PASS_DEPTH_FAIL",
	STENCIL_PASS_DEPTH_PASS:                   "GL_STENCIL_PASS_DEPTH_PASS",
	STENCIL_REF:                               "GL_STENCIL_REF",
	STENCIL_WRITEMASK:                         "GL_STENCIL_WRITEMASK",
	VIEWPORT:                                  "GL_VIEWPORT",
	DITHER:                                    "GL_DITHER",
	BLEND:                                     "GL_BLEND",
	SCISSOR_TEST:                              "GL_SCISSOR_TEST",
	COLOR_WRITEMASK:                           "GL_COLOR_WRITEMASK",
	MAX_TEXTURE_SIZE:                          "GL_MAX_TEXTURE_SIZE",
	VENDOR:                                    "GL_VENDOR",
	RENDERER:                                  "GL_RENDERER",
	VERSION:                                   "GL_VERSION",
	EXTENSIONS:                                "GL_EXTENSIONS",
	MAX_3D_TEXTURE_SIZE:                       "GL_MAX_3D_TEXTURE_SIZE",
	MULTISAMPLE:                               "GL_MULTISAMPLE",
	MAJOR_VERSION:                             "GL_MAJOR_VERSION",
	MINOR_VERSION:                             "GL_MINOR_VERSION",
	NUM_EXTENSIONS:                            "GL_NUM_EXTENSIONS",
	MAX_RECTANGLE_TEXTURE_SIZE:                "GL_MAX_RECTANGLE_TEXTURE_SIZE",
	MAX_CUBE_MAP_TEXTURE_SIZE:                 "GL_MAX_CUBE_MAP_TEXTURE_SIZE",
	VERTEX_ARRAY_BINDING:                      "GL_VERTEX_ARRAY_BINDING",
	MAX_ARRAY_TEXTURE_LAYERS:                  "GL_MAX_ARRAY_TEXTURE_LAYERS",
	FRAGMENT_SHADER:                           "GL_FRAGMENT_SHADER",
	VERTEX_SHADER:                             "GL_VERTEX_SHADER",
	MAX_COMBINED_TEXTURE_IMAGE_UNITS:          "GL_MAX_COMBINED_TEXTURE_IMAGE_UNITS",
	COMPILE_STATUS:                            "GL_COMPILE_STATUS",
	LINK_STATUS:                               "GL_LINK_STATUS",
	INFO_LOG_LENGTH:                           "GL_INFO_LOG_LENGTH",
	CURRENT_PROGRAM:                           "GL_CURRENT_PROGRAM",
	MAX_TEXTURE_BUFFER_SIZE:                   "GL_MAX_TEXTURE_BUFFER_SIZE",
	RASTERIZER_DISCARD:                        "GL_RASTERIZER_DISCARD",
	FRAMEBUFFER_SRGB:                          "GL_FRAMEBUFFER_SRGB",
	SAMPLE_MASK:                               "GL_SAMPLE_MASK",
	SAMPLE_MASK_VALUE:                         "GL_SAMPLE_MASK_VALUE",
	MAX_SAMPLE_MASK_WORDS:                     "GL_MAX_SAMPLE_MASK_WORDS",
	MAX_COLOR_TEXTURE_SAMPLES:                 "GL_MAX_COLOR_TEXTURE_SAMPLES",
	MAX_DEPTH_TEXTURE_SAMPLES:                 "GL_MAX_DEPTH_TEXTURE_SAMPLES",
	MAX_INTEGER_SAMPLES:                       "GL_MAX_INTEGER_SAMPLES",
	CONTEXT_PROFILE_MASK:                      "GL_CONTEXT_PROFILE_MASK",
}
