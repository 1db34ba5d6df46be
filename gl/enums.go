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

const (
	NONE Enum = 0

	// Errors
	NO_ERROR                      Enum = 0x0000
	INVALID_ENUM                  Enum = 0x0500
	INVALID_VALUE                 Enum = 0x0501
	INVALID_OPERATION             Enum = 0x0502
	STACK_OVERFLOW                Enum = 0x0503
	STACK_UNDERFLOW               Enum = 0x0504
	OUT_OF_MEMORY                 Enum = 0x0505
	INVALID_FRAMEBUFFER_OPERATION Enum = 0x0506

	// Data types
	BYTE                           Enum = 0x1400
	UNSIGNED_BYTE                  Enum = 0x1401
	SHORT                          Enum = 0x1402
	UNSIGNED_SHORT                 Enum = 0x1403
	INT                            Enum = 0x1404
	UNSIGNED_INT                   Enum = 0x1405
	FLOAT                          Enum = 0x1406
	HALF_FLOAT                     Enum = 0x140B
	UNSIGNED_BYTE_3_3_2            Enum = 0x8032
	UNSIGNED_SHORT_4_4_4_4         Enum = 0x8033
	UNSIGNED_SHORT_5_5_5_1         Enum = 0x8034
	UNSIGNED_INT_8_8_8_8           Enum = 0x8035
	UNSIGNED_INT_10_10_10_2        Enum = 0x8036
	UNSIGNED_BYTE_2_3_3_REV        Enum = 0x8362
	UNSIGNED_SHORT_5_6_5           Enum = 0x8363
	UNSIGNED_SHORT_5_6_5_REV       Enum = 0x8364
	UNSIGNED_SHORT_4_4_4_4_REV     Enum = 0x8365
	UNSIGNED_SHORT_1_5_5_5_REV     Enum = 0x8366
	UNSIGNED_INT_8_8_8_8_REV       Enum = 0x8367
	UNSIGNED_INT_2_10_10_10_REV    Enum = 0x8368
	UNSIGNED_INT_24_8              Enum = 0x84FA
	UNSIGNED_INT_10F_11F_11F_REV   Enum = 0x8C3B
	UNSIGNED_INT_5_9_9_9_REV       Enum = 0x8C3E
	FLOAT_32_UNSIGNED_INT_24_8_REV Enum = 0x8DAD
	UNSIGNED_NORMALIZED            Enum = 0x8C17
	SIGNED_NORMALIZED              Enum = 0x8F9C

	// Pixel formats
	STENCIL_INDEX   Enum = 0x1901
	DEPTH_COMPONENT Enum = 0x1902
	RED             Enum = 0x1903
	GREEN           Enum = 0x1904
	BLUE            Enum = 0x1905
	ALPHA           Enum = 0x1906
	RGB             Enum = 0x1907
	RGBA            Enum = 0x1908
	LUMINANCE       Enum = 0x1909
	LUMINANCE_ALPHA Enum = 0x190A
	BGR             Enum = 0x80E0
	BGRA            Enum = 0x80E1
	RG              Enum = 0x8227
	RG_INTEGER      Enum = 0x8228
	DEPTH_STENCIL   Enum = 0x84F9
	RED_INTEGER     Enum = 0x8D94
	GREEN_INTEGER   Enum = 0x8D95
	BLUE_INTEGER    Enum = 0x8D96
	ALPHA_INTEGER   Enum = 0x8D97
	RGB_INTEGER     Enum = 0x8D98
	RGBA_INTEGER    Enum = 0x8D99
	BGR_INTEGER     Enum = 0x8D9A
	BGRA_INTEGER    Enum = 0x8D9B

	// Sized internal formats
	R3_G3_B2            Enum = 0x2A10
	ALPHA4              Enum = 0x803B
	ALPHA8              Enum = 0x803C
	ALPHA12             Enum = 0x803D
	ALPHA16             Enum = 0x803E
	LUMINANCE4          Enum = 0x803F
	LUMINANCE8          Enum = 0x8040
	LUMINANCE12         Enum = 0x8041
	LUMINANCE16         Enum = 0x8042
	LUMINANCE4_ALPHA4   Enum = 0x8043
	LUMINANCE6_ALPHA2   Enum = 0x8044
	LUMINANCE8_ALPHA8   Enum = 0x8045
	LUMINANCE12_ALPHA4  Enum = 0x8046
	LUMINANCE12_ALPHA12 Enum = 0x8047
	LUMINANCE16_ALPHA16 Enum = 0x8048
	INTENSITY           Enum = 0x8049
	INTENSITY4          Enum = 0x804A
	INTENSITY8          Enum = 0x804B
	INTENSITY12         Enum = 0x804C
	INTENSITY16         Enum = 0x804D
	RGB4                Enum = 0x804F
	RGB5                Enum = 0x8050
	RGB8                Enum = 0x8051
	RGB10               Enum = 0x8052
	RGB12               Enum = 0x8053
	RGB16               Enum = 0x8054
	RGBA2               Enum = 0x8055
	RGBA4               Enum = 0x8056
	RGB5_A1             Enum = 0x8057
	RGBA8               Enum = 0x8058
	RGB10_A2            Enum = 0x8059
	RGBA12              Enum = 0x805A
	RGBA16              Enum = 0x805B
	R8                  Enum = 0x8229
	R16                 Enum = 0x822A
	RG8                 Enum = 0x822B
	RG16                Enum = 0x822C
	R16F                Enum = 0x822D
	R32F                Enum = 0x822E
	RG16F               Enum = 0x822F
	RG32F               Enum = 0x8230
	R8I                 Enum = 0x8231
	R8UI                Enum = 0x8232
	R16I                Enum = 0x8233
	R16UI               Enum = 0x8234
	R32I                Enum = 0x8235
	R32UI               Enum = 0x8236
	RG8I                Enum = 0x8237
	RG8UI               Enum = 0x8238
	RG16I               Enum = 0x8239
	RG16UI              Enum = 0x823A
	RG32I               Enum = 0x823B
	RG32UI              Enum = 0x823C
	RGBA32F             Enum = 0x8814
	RGB32F              Enum = 0x8815
	RGBA16F             Enum = 0x881A
	RGB16F              Enum = 0x881B
	RGBA32UI            Enum = 0x8D70
	RGB32UI             Enum = 0x8D71
	RGBA16UI            Enum = 0x8D76
	RGB16UI             Enum = 0x8D77
	RGBA8UI             Enum = 0x8D7C
	RGB8UI              Enum = 0x8D7D
	RGBA32I             Enum = 0x8D82
	RGB32I              Enum = 0x8D83
	RGBA16I             Enum = 0x8D88
	RGB16I              Enum = 0x8D89
	RGBA8I              Enum = 0x8D8E
	RGB8I               Enum = 0x8D8F
	R8_SNORM            Enum = 0x8F94
	RG8_SNORM           Enum = 0x8F95
	RGB8_SNORM          Enum = 0x8F96
	RGBA8_SNORM         Enum = 0x8F97
	R16_SNORM           Enum = 0x8F98
	RG16_SNORM          Enum = 0x8F99
	RGB16_SNORM         Enum = 0x8F9A
	RGBA16_SNORM        Enum = 0x8F9B
	RGB10_A2UI          Enum = 0x906F
	RGB565              Enum = 0x8D62
	R11F_G11F_B10F      Enum = 0x8C3A
	RGB9_E5             Enum = 0x8C3D
	SRGB                Enum = 0x8C40
	SRGB8               Enum = 0x8C41
	SRGB_ALPHA          Enum = 0x8C42
	SRGB8_ALPHA8        Enum = 0x8C43
	SLUMINANCE_ALPHA    Enum = 0x8C44
	SLUMINANCE8_ALPHA8  Enum = 0x8C45
	SLUMINANCE          Enum = 0x8C46
	SLUMINANCE8         Enum = 0x8C47
	DEPTH_COMPONENT16   Enum = 0x81A5
	DEPTH_COMPONENT24   Enum = 0x81A6
	DEPTH_COMPONENT32   Enum = 0x81A7
	DEPTH_COMPONENT32F  Enum = 0x8CAC
	DEPTH32F_STENCIL8   Enum = 0x8CAD
	DEPTH24_STENCIL8    Enum = 0x88F0
	STENCIL_INDEX8      Enum = 0x8D48

	// Compressed internal formats
	COMPRESSED_RGB_S3TC_DXT1_EXT              Enum = 0x83F0
	COMPRESSED_RGBA_S3TC_DXT1_EXT             Enum = 0x83F1
	COMPRESSED_RGBA_S3TC_DXT3_EXT             Enum = 0x83F2
	COMPRESSED_RGBA_S3TC_DXT5_EXT             Enum = 0x83F3
	COMPRESSED_SRGB_S3TC_DXT1_EXT             Enum = 0x8C4C
	COMPRESSED_SRGB_ALPHA_S3TC_DXT1_EXT       Enum = 0x8C4D
	COMPRESSED_SRGB_ALPHA_S3TC_DXT3_EXT       Enum = 0x8C4E
	COMPRESSED_SRGB_ALPHA_S3TC_DXT5_EXT       Enum = 0x8C4F
	COMPRESSED_RED_RGTC1                      Enum = 0x8DBB
	COMPRESSED_SIGNED_RED_RGTC1               Enum = 0x8DBC
	COMPRESSED_RG_RGTC2                       Enum = 0x8DBD
	COMPRESSED_SIGNED_RG_RGTC2                Enum = 0x8DBE
	COMPRESSED_RGBA_BPTC_UNORM                Enum = 0x8E8C
	COMPRESSED_SRGB_ALPHA_BPTC_UNORM          Enum = 0x8E8D
	COMPRESSED_RGB_BPTC_SIGNED_FLOAT          Enum = 0x8E8E
	COMPRESSED_RGB_BPTC_UNSIGNED_FLOAT        Enum = 0x8E8F
	ETC1_RGB8_OES                             Enum = 0x8D64
	COMPRESSED_R11_EAC                        Enum = 0x9270
	COMPRESSED_SIGNED_R11_EAC                 Enum = 0x9271
	COMPRESSED_RG11_EAC                       Enum = 0x9272
	COMPRESSED_SIGNED_RG11_EAC                Enum = 0x9273
	COMPRESSED_RGB8_ETC2                      Enum = 0x9274
	COMPRESSED_SRGB8_ETC2                     Enum = 0x9275
	COMPRESSED_RGB8_PUNCHTHROUGH_ALPHA1_ETC2  Enum = 0x9276
	COMPRESSED_SRGB8_PUNCHTHROUGH_ALPHA1_ETC2 Enum = 0x9277
	COMPRESSED_RGBA8_ETC2_EAC                 Enum = 0x9278
	COMPRESSED_SRGB8_ALPHA8_ETC2_EAC          Enum = 0x9279
	COMPRESSED_RGBA_ASTC_4x4_KHR              Enum = 0x93B0
	COMPRESSED_RGBA_ASTC_5x4_KHR              Enum = 0x93B1
	COMPRESSED_RGBA_ASTC_5x5_KHR              Enum = 0x93B2
	COMPRESSED_RGBA_ASTC_6x5_KHR              Enum = 0x93B3
	COMPRESSED_RGBA_ASTC_6x6_KHR              Enum = 0x93B4
	COMPRESSED_RGBA_ASTC_8x5_KHR              Enum = 0x93B5
	COMPRESSED_RGBA_ASTC_8x6_KHR              Enum = 0x93B6
	COMPRESSED_RGBA_ASTC_8x8_KHR              Enum = 0x93B7
	COMPRESSED_RGBA_ASTC_10x5_KHR             Enum = 0x93B8
	COMPRESSED_RGBA_ASTC_10x6_KHR             Enum = 0x93B9
	COMPRESSED_RGBA_ASTC_10x8_KHR             Enum = 0x93BA
	COMPRESSED_RGBA_ASTC_10x10_KHR            Enum = 0x93BB
	COMPRESSED_RGBA_ASTC_12x10_KHR            Enum = 0x93BC
	COMPRESSED_RGBA_ASTC_12x12_KHR            Enum = 0x93BD
	COMPRESSED_SRGB8_ALPHA8_ASTC_4x4_KHR      Enum = 0x93D0
	COMPRESSED_SRGB8_ALPHA8_ASTC_5x4_KHR      Enum = 0x93D1
	COMPRESSED_SRGB8_ALPHA8_ASTC_5x5_KHR      Enum = 0x93D2
	COMPRESSED_SRGB8_ALPHA8_ASTC_6x5_KHR      Enum = 0x93D3
	COMPRESSED_SRGB8_ALPHA8_ASTC_6x6_KHR      Enum = 0x93D4
	COMPRESSED_SRGB8_ALPHA8_ASTC_8x5_KHR      Enum = 0x93D5
	COMPRESSED_SRGB8_ALPHA8_ASTC_8x6_KHR      Enum = 0x93D6
	COMPRESSED_SRGB8_ALPHA8_ASTC_8x8_KHR      Enum = 0x93D7
	COMPRESSED_SRGB8_ALPHA8_ASTC_10x5_KHR     Enum = 0x93D8
	COMPRESSED_SRGB8_ALPHA8_ASTC_10x6_KHR     Enum = 0x93D9
	COMPRESSED_SRGB8_ALPHA8_ASTC_10x8_KHR     Enum = 0x93DA
	COMPRESSED_SRGB8_ALPHA8_ASTC_10x10_KHR    Enum = 0x93DB
	COMPRESSED_SRGB8_ALPHA8_ASTC_12x10_KHR    Enum = 0x93DC
	COMPRESSED_SRGB8_ALPHA8_ASTC_12x12_KHR    Enum = 0x93DD

	// Texture targets and bindings
	TEXTURE_1D                           Enum = 0x0DE0
	TEXTURE_2D                           Enum = 0x0DE1
	TEXTURE_3D                           Enum = 0x806F
	TEXTURE_RECTANGLE                    Enum = 0x84F5
	TEXTURE_CUBE_MAP                     Enum = 0x8513
	TEXTURE_CUBE_MAP_POSITIVE_X          Enum = 0x8515
	TEXTURE_CUBE_MAP_NEGATIVE_X          Enum = 0x8516
	TEXTURE_CUBE_MAP_POSITIVE_Y          Enum = 0x8517
	TEXTURE_CUBE_MAP_NEGATIVE_Y          Enum = 0x8518
	TEXTURE_CUBE_MAP_POSITIVE_Z          Enum = 0x8519
	TEXTURE_CUBE_MAP_NEGATIVE_Z          Enum = 0x851A
	TEXTURE_1D_ARRAY                     Enum = 0x8C18
	TEXTURE_2D_ARRAY                     Enum = 0x8C1A
	TEXTURE_BUFFER                       Enum = 0x8C2A
	TEXTURE_CUBE_MAP_ARRAY               Enum = 0x9009
	TEXTURE_2D_MULTISAMPLE               Enum = 0x9100
	TEXTURE_2D_MULTISAMPLE_ARRAY         Enum = 0x9102
	TEXTURE_BINDING_1D                   Enum = 0x8068
	TEXTURE_BINDING_2D                   Enum = 0x8069
	TEXTURE_BINDING_3D                   Enum = 0x806A
	TEXTURE_BINDING_RECTANGLE            Enum = 0x84F6
	TEXTURE_BINDING_CUBE_MAP             Enum = 0x8514
	TEXTURE_BINDING_1D_ARRAY             Enum = 0x8C1C
	TEXTURE_BINDING_2D_ARRAY             Enum = 0x8C1D
	TEXTURE_BINDING_BUFFER               Enum = 0x8C2C
	TEXTURE_BINDING_CUBE_MAP_ARRAY       Enum = 0x900A
	TEXTURE_BINDING_2D_MULTISAMPLE       Enum = 0x9104
	TEXTURE_BINDING_2D_MULTISAMPLE_ARRAY Enum = 0x9105
	TEXTURE0                             Enum = 0x84C0
	ACTIVE_TEXTURE                       Enum = 0x84E0

	// Texture parameters
	TEXTURE_WIDTH                     Enum = 0x1000
	TEXTURE_HEIGHT                    Enum = 0x1001
	TEXTURE_INTERNAL_FORMAT           Enum = 0x1003
	TEXTURE_BORDER_COLOR              Enum = 0x1004
	TEXTURE_BORDER                    Enum = 0x1005
	TEXTURE_MAG_FILTER                Enum = 0x2800
	TEXTURE_MIN_FILTER                Enum = 0x2801
	TEXTURE_WRAP_S                    Enum = 0x2802
	TEXTURE_WRAP_T                    Enum = 0x2803
	TEXTURE_RED_SIZE                  Enum = 0x805C
	TEXTURE_GREEN_SIZE                Enum = 0x805D
	TEXTURE_BLUE_SIZE                 Enum = 0x805E
	TEXTURE_ALPHA_SIZE                Enum = 0x805F
	TEXTURE_LUMINANCE_SIZE            Enum = 0x8060
	TEXTURE_INTENSITY_SIZE            Enum = 0x8061
	TEXTURE_DEPTH                     Enum = 0x8071
	TEXTURE_WRAP_R                    Enum = 0x8072
	GENERATE_MIPMAP                   Enum = 0x8191
	TEXTURE_MIN_LOD                   Enum = 0x813A
	TEXTURE_MAX_LOD                   Enum = 0x813B
	TEXTURE_BASE_LEVEL                Enum = 0x813C
	TEXTURE_MAX_LEVEL                 Enum = 0x813D
	TEXTURE_IMMUTABLE_LEVELS          Enum = 0x82DF
	TEXTURE_LOD_BIAS                  Enum = 0x8501
	TEXTURE_MAX_ANISOTROPY_EXT        Enum = 0x84FE
	MAX_TEXTURE_MAX_ANISOTROPY_EXT    Enum = 0x84FF
	TEXTURE_COMPRESSED_IMAGE_SIZE     Enum = 0x86A0
	TEXTURE_COMPRESSED                Enum = 0x86A1
	TEXTURE_DEPTH_SIZE                Enum = 0x884A
	DEPTH_TEXTURE_MODE                Enum = 0x884B
	TEXTURE_COMPARE_MODE              Enum = 0x884C
	TEXTURE_COMPARE_FUNC              Enum = 0x884D
	TEXTURE_STENCIL_SIZE              Enum = 0x88F1
	TEXTURE_SRGB_DECODE_EXT           Enum = 0x8A48
	DECODE_EXT                        Enum = 0x8A49
	SKIP_DECODE_EXT                   Enum = 0x8A4A
	TEXTURE_BUFFER_DATA_STORE_BINDING Enum = 0x8C2D
	TEXTURE_SHARED_SIZE               Enum = 0x8C3F
	TEXTURE_SWIZZLE_R                 Enum = 0x8E42
	TEXTURE_SWIZZLE_G                 Enum = 0x8E43
	TEXTURE_SWIZZLE_B                 Enum = 0x8E44
	TEXTURE_SWIZZLE_A                 Enum = 0x8E45
	DEPTH_STENCIL_TEXTURE_MODE        Enum = 0x90EA
	TEXTURE_SAMPLES                   Enum = 0x9106
	TEXTURE_FIXED_SAMPLE_LOCATIONS    Enum = 0x9107
	TEXTURE_IMMUTABLE_FORMAT          Enum = 0x912F

	// Parameter values
	NEVER                  Enum = 0x0200
	LESS                   Enum = 0x0201
	EQUAL                  Enum = 0x0202
	LEQUAL                 Enum = 0x0203
	GREATER                Enum = 0x0204
	NOTEQUAL               Enum = 0x0205
	GEQUAL                 Enum = 0x0206
	ALWAYS                 Enum = 0x0207
	KEEP                   Enum = 0x1E00
	REPLACE                Enum = 0x1E01
	NEAREST                Enum = 0x2600
	LINEAR                 Enum = 0x2601
	NEAREST_MIPMAP_NEAREST Enum = 0x2700
	LINEAR_MIPMAP_NEAREST  Enum = 0x2701
	NEAREST_MIPMAP_LINEAR  Enum = 0x2702
	LINEAR_MIPMAP_LINEAR   Enum = 0x2703
	CLAMP                  Enum = 0x2900
	REPEAT                 Enum = 0x2901
	CLAMP_TO_BORDER        Enum = 0x812D
	CLAMP_TO_EDGE          Enum = 0x812F
	MIRRORED_REPEAT        Enum = 0x8370
	COMPARE_REF_TO_TEXTURE Enum = 0x884E

	// Pixel store
	UNPACK_SWAP_BYTES   Enum = 0x0CF0
	UNPACK_LSB_FIRST    Enum = 0x0CF1
	UNPACK_ROW_LENGTH   Enum = 0x0CF2
	UNPACK_SKIP_ROWS    Enum = 0x0CF3
	UNPACK_SKIP_PIXELS  Enum = 0x0CF4
	UNPACK_ALIGNMENT    Enum = 0x0CF5
	PACK_SWAP_BYTES     Enum = 0x0D00
	PACK_LSB_FIRST      Enum = 0x0D01
	PACK_ROW_LENGTH     Enum = 0x0D02
	PACK_SKIP_ROWS      Enum = 0x0D03
	PACK_SKIP_PIXELS    Enum = 0x0D04
	PACK_ALIGNMENT      Enum = 0x0D05
	PACK_SKIP_IMAGES    Enum = 0x806B
	PACK_IMAGE_HEIGHT   Enum = 0x806C
	UNPACK_SKIP_IMAGES  Enum = 0x806D
	UNPACK_IMAGE_HEIGHT Enum = 0x806E

	// Buffers
	BUFFER_SIZE                 Enum = 0x8764
	BUFFER_USAGE                Enum = 0x8765
	ARRAY_BUFFER                Enum = 0x8892
	ELEMENT_ARRAY_BUFFER        Enum = 0x8893
	ARRAY_BUFFER_BINDING        Enum = 0x8894
	STREAM_DRAW                 Enum = 0x88E0
	STREAM_READ                 Enum = 0x88E1
	STREAM_COPY                 Enum = 0x88E2
	STATIC_DRAW                 Enum = 0x88E4
	STATIC_READ                 Enum = 0x88E5
	STATIC_COPY                 Enum = 0x88E6
	DYNAMIC_DRAW                Enum = 0x88E8
	DYNAMIC_READ                Enum = 0x88E9
	DYNAMIC_COPY                Enum = 0x88EA
	PIXEL_PACK_BUFFER           Enum = 0x88EB
	PIXEL_UNPACK_BUFFER         Enum = 0x88EC
	PIXEL_PACK_BUFFER_BINDING   Enum = 0x88ED
	PIXEL_UNPACK_BUFFER_BINDING Enum = 0x88EF
	UNIFORM_BUFFER              Enum = 0x8A11
	COPY_READ_BUFFER            Enum = 0x8F36
	COPY_WRITE_BUFFER           Enum = 0x8F37

	// Framebuffers
	FRONT_LEFT                          Enum = 0x0400
	FRONT_RIGHT                         Enum = 0x0401
	BACK_LEFT                           Enum = 0x0402
	BACK_RIGHT                          Enum = 0x0403
	FRONT                               Enum = 0x0404
	BACK                                Enum = 0x0405
	LEFT                                Enum = 0x0406
	RIGHT                               Enum = 0x0407
	DRAW_BUFFER                         Enum = 0x0C01
	READ_BUFFER                         Enum = 0x0C02
	DOUBLEBUFFER                        Enum = 0x0C32
	STEREO                              Enum = 0x0C33
	COLOR                               Enum = 0x1800
	DEPTH                               Enum = 0x1801
	STENCIL                             Enum = 0x1802
	SAMPLE_BUFFERS                      Enum = 0x80A8
	SAMPLES                             Enum = 0x80A9
	FRAMEBUFFER_ATTACHMENT_RED_SIZE     Enum = 0x8212
	FRAMEBUFFER_ATTACHMENT_GREEN_SIZE   Enum = 0x8213
	FRAMEBUFFER_ATTACHMENT_BLUE_SIZE    Enum = 0x8214
	FRAMEBUFFER_ATTACHMENT_ALPHA_SIZE   Enum = 0x8215
	FRAMEBUFFER_ATTACHMENT_DEPTH_SIZE   Enum = 0x8216
	FRAMEBUFFER_ATTACHMENT_STENCIL_SIZE Enum = 0x8217
	FRAMEBUFFER_DEFAULT                 Enum = 0x8218
	DEPTH_STENCIL_ATTACHMENT            Enum = 0x821A
	DRAW_FRAMEBUFFER_BINDING            Enum = 0x8CA6
	READ_FRAMEBUFFER                    Enum = 0x8CA8
	DRAW_FRAMEBUFFER                    Enum = 0x8CA9
	READ_FRAMEBUFFER_BINDING            Enum = 0x8CAA
	FRAMEBUFFER_ATTACHMENT_OBJECT_TYPE  Enum = 0x8CD0
	FRAMEBUFFER_ATTACHMENT_OBJECT_NAME  Enum = 0x8CD1
	FRAMEBUFFER_COMPLETE                Enum = 0x8CD5
	FRAMEBUFFER_INCOMPLETE_ATTACHMENT   Enum = 0x8CD6
	FRAMEBUFFER_UNSUPPORTED             Enum = 0x8CDD
	COLOR_ATTACHMENT0                   Enum = 0x8CE0
	DEPTH_ATTACHMENT                    Enum = 0x8D00
	STENCIL_ATTACHMENT                  Enum = 0x8D20
	FRAMEBUFFER                         Enum = 0x8D40
	MAX_SAMPLES                         Enum = 0x8D57

	// Context state
	TRIANGLES                        Enum = 0x0004
	TRIANGLE_STRIP                   Enum = 0x0005
	CULL_FACE                        Enum = 0x0B44
	DEPTH_TEST                       Enum = 0x0B71
	DEPTH_WRITEMASK                  Enum = 0x0B72
	DEPTH_FUNC                       Enum = 0x0B74
	STENCIL_TEST                     Enum = 0x0B90
	STENCIL_CLEAR_VALUE              Enum = 0x0B91
	STENCIL_FUNC                     Enum = 0x0B92
	STENCIL_VALUE_MASK               Enum = 0x0B93
	STENCIL_FAIL                     Enum = 0x0B94
	STENCIL_PASS_DEPTH_FAIL          Enum = 0x0B95
	STENCIL_PASS_DEPTH_PASS          Enum = 0x0B96
	STENCIL_REF                      Enum = 0x0B97
	STENCIL_WRITEMASK                Enum = 0x0B98
	VIEWPORT                         Enum = 0x0BA2
	DITHER                           Enum = 0x0BD0
	BLEND                            Enum = 0x0BE2
	SCISSOR_TEST                     Enum = 0x0C11
	COLOR_WRITEMASK                  Enum = 0x0C23
	MAX_TEXTURE_SIZE                 Enum = 0x0D33
	VENDOR                           Enum = 0x1F00
	RENDERER                         Enum = 0x1F01
	VERSION                          Enum = 0x1F02
	EXTENSIONS                       Enum = 0x1F03
	MAX_3D_TEXTURE_SIZE              Enum = 0x8073
	MULTISAMPLE                      Enum = 0x809D
	MAJOR_VERSION                    Enum = 0x821B
	MINOR_VERSION                    Enum = 0x821C
	NUM_EXTENSIONS                   Enum = 0x821D
	MAX_RECTANGLE_TEXTURE_SIZE       Enum = 0x84F8
	MAX_CUBE_MAP_TEXTURE_SIZE        Enum = 0x851C
	VERTEX_ARRAY_BINDING             Enum = 0x85B5
	MAX_ARRAY_TEXTURE_LAYERS         Enum = 0x88FF
	FRAGMENT_SHADER                  Enum = 0x8B30
	VERTEX_SHADER                    Enum = 0x8B31
	MAX_COMBINED_TEXTURE_IMAGE_UNITS Enum = 0x8B4D
	COMPILE_STATUS                   Enum = 0x8B81
	LINK_STATUS                      Enum = 0x8B82
	INFO_LOG_LENGTH                  Enum = 0x8B84
	CURRENT_PROGRAM                  Enum = 0x8B8D
	MAX_TEXTURE_BUFFER_SIZE          Enum = 0x8C2B
	RASTERIZER_DISCARD               Enum = 0x8C89
	FRAMEBUFFER_SRGB                 Enum = 0x8DB9
	SAMPLE_MASK                      Enum = 0x8E51
	SAMPLE_MASK_VALUE                Enum = 0x8E52
	MAX_SAMPLE_MASK_WORDS            Enum = 0x8E59
	MAX_COLOR_TEXTURE_SAMPLES        Enum = 0x910E
	MAX_DEPTH_TEXTURE_SAMPLES        Enum = 0x910F
	MAX_INTEGER_SAMPLES              Enum = 0x9110
	CONTEXT_PROFILE_MASK             Enum = 0x9126

	// Bitfields and booleans
	DEPTH_BUFFER_BIT   = 0x00000100
	STENCIL_BUFFER_BIT = 0x00000400
	COLOR_BUFFER_BIT   = 0x00004000

	CONTEXT_CORE_PROFILE_BIT          = 0x00000001
	CONTEXT_COMPATIBILITY_PROFILE_BIT = 0x00000002

	FALSE = 0
	TRUE  = 1
)
