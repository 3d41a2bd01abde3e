// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package glb

import (
	"fmt"

	"github.com/creachadair/jscene/ast"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// A SceneDocument is the complete set of scene records extracted from a GLB
// container or a glTF document.
//
// Index fields refer to positions in the collections of the document.  They
// are not checked against the lengths of those collections; the consumer
// must do so before dereferencing them. Optional indices are nil when absent.
type SceneDocument struct {
	Header Header // zero for a document not read from a GLB container
	Binary []byte // the BIN chunk payload, or nil
	Asset  AssetInfo

	// RawAsset is the unprocessed "asset" object, kept for diagnostics.
	RawAsset ast.Value

	ExtensionsUsed     []string
	ExtensionsRequired []string

	Scene       *int // the default scene
	Scenes      []Scene
	Nodes       []Node
	Materials   []Material
	Meshes      []Mesh
	Textures    []Texture
	Images      []Image
	Skins       []Skin
	Accessors   []Accessor
	BufferViews []BufferView
	Samplers    []Sampler
	Buffers     []Buffer
}

// Header is the fixed-size header of a GLB container.
type Header struct {
	Version    uint32 // container version
	Length     uint32 // declared total length in bytes
	JSONLength uint32 // length of the JSON chunk payload
}

// AssetInfo describes the provenance of a document.
type AssetInfo struct {
	Version    string   // default "2.0"
	Generator  string   // default "N/A"
	Extensions []string // default empty
}

// A Scene is a named set of root nodes.
type Scene struct {
	Name  string // default "N/A" followed by the scene index
	Nodes []int
}

// DefaultRotation is the rotation assigned to a node that does not specify
// one. It is the quaternion (x, y, z, w) = (1, 0, 1, 0), not the identity.
var DefaultRotation = quat.Number{Real: 0, Imag: 1, Jmag: 0, Kmag: 1}

// A Node is an element of the scene hierarchy.
type Node struct {
	Name        string
	Children    []int
	Rotation    quat.Number // glTF (x, y, z, w) maps to (Imag, Jmag, Kmag, Real)
	Translation r3.Vec      // default (0, 0, 0)
	Scale       r3.Vec      // default (1, 1, 1)
	Matrix      *[16]float64
	Mesh        *int
	Skin        *int
}

// Material values for the alpha mode.
const (
	AlphaOpaque = "OPAQUE"
	AlphaMask   = "MASK"
	AlphaBlend  = "BLEND"
)

// A Material describes the surface appearance of a primitive.
type Material struct {
	Name             string
	DoubleSided      bool
	AlphaMode        string  // default "OPAQUE"
	AlphaCutoff      float64 // default 0.5
	OcclusionTexture *int
	NormalTexture    *int
	EmissiveTexture  *int
	EmissiveFactor   [4]float64 // alpha is always 1

	// PBR is nil if the material has no metallic-roughness parameters.
	PBR *PBRMetallicRoughness
}

// PBRMetallicRoughness are the metallic-roughness material parameters.
type PBRMetallicRoughness struct {
	BaseColorTexture *int
	BaseColorFactor  [4]float64 // default (1, 1, 1, 1)
	MetallicFactor   float64    // default 1
	RoughnessFactor  float64    // default 1
}

// A Mesh is a named collection of primitives.
type Mesh struct {
	Name       string
	Primitives []Primitive
}

// Primitive rendering modes.
const (
	ModePoints        = 0
	ModeLines         = 1
	ModeLineLoop      = 2
	ModeLineStrip     = 3
	ModeTriangles     = 4
	ModeTriangleStrip = 5
	ModeTriangleFan   = 6
)

// A Primitive is a unit of geometry.
type Primitive struct {
	Attributes Attributes
	Indices    int
	Material   *int
	Mode       int // default ModeTriangles
}

// Attributes map vertex attribute semantics to accessor indices.  The
// attribute families (TEXCOORD_n and so on) are listed in order of n.
type Attributes struct {
	Position int
	Normal   *int
	Tangent  *int
	TexCoord []int
	Color    []int
	Joints   []int
	Weights  []int
}

// A Texture combines an image with a sampler.
type Texture struct {
	Name    string
	Sampler *int
	Source  *int
}

// An Image is a reference to pixel data, either stored in a buffer view or
// located by a URI. The image bytes are not decoded.
type Image struct {
	Name       string
	MimeType   string
	URI        string
	BufferView *int
}

// A Skin binds a mesh to a joint hierarchy.
type Skin struct {
	Name                string
	InverseBindMatrices *int
	Skeleton            *int
	Joints              []int
}

// ComponentType is the data type of the components of an accessor.
type ComponentType int

// Constants defining the valid ComponentType values.
const (
	Byte          ComponentType = 5120
	UnsignedByte  ComponentType = 5121
	Short         ComponentType = 5122
	UnsignedShort ComponentType = 5123
	UnsignedInt   ComponentType = 5125
	Float         ComponentType = 5126
)

var componentStr = map[ComponentType]string{
	Byte:          "BYTE",
	UnsignedByte:  "UNSIGNED_BYTE",
	Short:         "SHORT",
	UnsignedShort: "UNSIGNED_SHORT",
	UnsignedInt:   "UNSIGNED_INT",
	Float:         "FLOAT",
}

func (t ComponentType) String() string {
	if s, ok := componentStr[t]; ok {
		return s
	}
	return fmt.Sprint(int(t))
}

// Size returns the size of one component in bytes, or 0 if t is unknown.
func (t ComponentType) Size() int {
	switch t {
	case Byte, UnsignedByte:
		return 1
	case Short, UnsignedShort:
		return 2
	case UnsignedInt, Float:
		return 4
	default:
		return 0
	}
}

// Components returns the number of components in an element of the given
// accessor type ("SCALAR", "VEC3", "MAT4", ...), or 0 if the type is unknown.
func Components(elementType string) int {
	switch elementType {
	case "SCALAR":
		return 1
	case "VEC2":
		return 2
	case "VEC3":
		return 3
	case "VEC4", "MAT2":
		return 4
	case "MAT3":
		return 9
	case "MAT4":
		return 16
	default:
		return 0
	}
}

// An Accessor describes how to interpret the contents of a buffer view.
type Accessor struct {
	Name          string
	BufferView    *int
	ByteOffset    int
	ComponentType ComponentType
	Normalized    bool
	Count         int
	Type          string // "SCALAR", "VEC2", "VEC3", "VEC4", "MAT2", "MAT3", "MAT4"
	Min, Max      []float64
}

// Buffer view targets.
const (
	TargetArrayBuffer        = 34962
	TargetElementArrayBuffer = 34963
)

// A BufferView is a contiguous range of a buffer.
type BufferView struct {
	Name       string
	Buffer     int
	ByteOffset int
	ByteLength int
	ByteStride *int
	Target     *int
}

// Sampler filter and wrap modes.
const (
	FilterNearest              = 9728
	FilterLinear               = 9729
	FilterNearestMipmapNearest = 9984
	FilterLinearMipmapNearest  = 9985
	FilterNearestMipmapLinear  = 9986
	FilterLinearMipmapLinear   = 9987

	WrapClampToEdge    = 33071
	WrapMirroredRepeat = 33648
	WrapRepeat         = 10497
)

// A Sampler describes texture filtering and wrapping.
type Sampler struct {
	Name      string
	MagFilter *int
	MinFilter *int
	WrapS     int // default WrapRepeat
	WrapT     int // default WrapRepeat
}

// A Buffer is a block of binary data. In a GLB container, a buffer without a
// URI refers to the BIN chunk.
type Buffer struct {
	Name       string
	URI        string
	ByteLength int
}
