package p3d

import "fmt"

// ChunkType is the tag identifying what a chunk holds. The set is open:
// the tree builder handles any value.
type ChunkType uint32

const (
	/** @brief The root chunk of every file, "P3D\xFF" read little-endian. */
	ChunkTypeFile ChunkType = 0xFF443350

	ChunkTypeGeometry       ChunkType = 0x00010000
	ChunkTypePrimitiveGroup ChunkType = 0x00010002
	ChunkTypeBBox           ChunkType = 0x00010003
	ChunkTypeBSphere        ChunkType = 0x00010004
	ChunkTypePositionList   ChunkType = 0x00010005
	ChunkTypeNormalList     ChunkType = 0x00010006
	ChunkTypeUVList         ChunkType = 0x00010007
	ChunkTypeColourList     ChunkType = 0x00010008
	ChunkTypeStripList      ChunkType = 0x00010009
	ChunkTypeIndexList      ChunkType = 0x0001000A

	ChunkTypeShader             ChunkType = 0x00011000
	ChunkTypeShaderTextureParam ChunkType = 0x00011002
	ChunkTypeShaderIntParam     ChunkType = 0x00011003
	ChunkTypeShaderFloatParam   ChunkType = 0x00011004
	ChunkTypeShaderColourParam  ChunkType = 0x00011005

	ChunkTypeTexture   ChunkType = 0x00019000
	ChunkTypeImage     ChunkType = 0x00019001
	ChunkTypeImageData ChunkType = 0x00019002
	ChunkTypeSprite    ChunkType = 0x00019005

	ChunkTypeTextureFont ChunkType = 0x00022000
	ChunkTypeFontGlyphs  ChunkType = 0x00022001

	ChunkTypeSet ChunkType = 0x00023000

	ChunkTypeAnimation                   ChunkType = 0x00121000
	ChunkTypeAnimationGroup              ChunkType = 0x00121001
	ChunkTypeAnimationGroupList          ChunkType = 0x00121002
	ChunkTypeFloat1Channel               ChunkType = 0x00121100
	ChunkTypeFloat2Channel               ChunkType = 0x00121101
	ChunkTypeVector1DOFChannel           ChunkType = 0x00121102
	ChunkTypeVector2DOFChannel           ChunkType = 0x00121103
	ChunkTypeVector3DOFChannel           ChunkType = 0x00121104
	ChunkTypeQuaternionChannel           ChunkType = 0x00121105
	ChunkTypeCompressedQuaternionChannel ChunkType = 0x00121111
)

var chunkTypeNames = map[ChunkType]string{
	ChunkTypeFile:                        "File",
	ChunkTypeGeometry:                    "Geometry",
	ChunkTypePrimitiveGroup:              "PrimitiveGroup",
	ChunkTypeBBox:                        "BBox",
	ChunkTypeBSphere:                     "BSphere",
	ChunkTypePositionList:                "PositionList",
	ChunkTypeNormalList:                  "NormalList",
	ChunkTypeUVList:                      "UVList",
	ChunkTypeColourList:                  "ColourList",
	ChunkTypeStripList:                   "StripList",
	ChunkTypeIndexList:                   "IndexList",
	ChunkTypeShader:                      "Shader",
	ChunkTypeShaderTextureParam:          "ShaderTextureParam",
	ChunkTypeShaderIntParam:              "ShaderIntParam",
	ChunkTypeShaderFloatParam:            "ShaderFloatParam",
	ChunkTypeShaderColourParam:           "ShaderColourParam",
	ChunkTypeTexture:                     "Texture",
	ChunkTypeImage:                       "Image",
	ChunkTypeImageData:                   "ImageData",
	ChunkTypeSprite:                      "Sprite",
	ChunkTypeTextureFont:                 "TextureFont",
	ChunkTypeFontGlyphs:                  "FontGlyphs",
	ChunkTypeSet:                         "Set",
	ChunkTypeAnimation:                   "Animation",
	ChunkTypeAnimationGroup:              "AnimationGroup",
	ChunkTypeAnimationGroupList:          "AnimationGroupList",
	ChunkTypeFloat1Channel:               "Float1Channel",
	ChunkTypeFloat2Channel:               "Float2Channel",
	ChunkTypeVector1DOFChannel:           "Vector1DOFChannel",
	ChunkTypeVector2DOFChannel:           "Vector2DOFChannel",
	ChunkTypeVector3DOFChannel:           "Vector3DOFChannel",
	ChunkTypeQuaternionChannel:           "QuaternionChannel",
	ChunkTypeCompressedQuaternionChannel: "CompressedQuaternionChannel",
}

func (t ChunkType) String() string {
	if name, ok := chunkTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("0x%X", uint32(t))
}

// Known reports whether the tag has a name in this package.
func (t ChunkType) Known() bool {
	_, ok := chunkTypeNames[t]
	return ok
}
