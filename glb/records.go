// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package glb

import (
	"fmt"
	"strconv"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

func acquireScene(o object, i int) (Scene, error) {
	nodes, err := o.requireIndices("nodes")
	if err != nil {
		return Scene{}, err
	}
	return Scene{
		Name:  o.stringOr("name", "N/A"+strconv.Itoa(i)),
		Nodes: nodes,
	}, nil
}

func acquireNode(o object, _ int) (Node, error) {
	name, err := o.requireString("name")
	if err != nil {
		return Node{}, err
	}
	node := Node{Name: name}
	if node.Children, err = o.indices("children"); err != nil {
		return Node{}, err
	}

	rot, err := o.vector("rotation", 4, nil)
	if err != nil {
		return Node{}, err
	} else if rot == nil {
		node.Rotation = DefaultRotation
	} else {
		node.Rotation = quat.Number{Imag: rot[0], Jmag: rot[1], Kmag: rot[2], Real: rot[3]}
	}

	pos, err := o.vector("translation", 3, []float64{0, 0, 0})
	if err != nil {
		return Node{}, err
	}
	node.Translation = r3.Vec{X: pos[0], Y: pos[1], Z: pos[2]}

	scale, err := o.vector("scale", 3, []float64{1, 1, 1})
	if err != nil {
		return Node{}, err
	}
	node.Scale = r3.Vec{X: scale[0], Y: scale[1], Z: scale[2]}

	mat, err := o.vector("matrix", 16, nil)
	if err != nil {
		return Node{}, err
	} else if mat != nil {
		node.Matrix = (*[16]float64)(mat)
	}

	if node.Mesh, err = o.index("mesh"); err != nil {
		return Node{}, err
	}
	if node.Skin, err = o.index("skin"); err != nil {
		return Node{}, err
	}
	return node, nil
}

func acquireMaterial(o object, _ int) (Material, error) {
	m := Material{
		Name:        o.stringOr("name", ""),
		DoubleSided: o.boolOr("doubleSided", false),
		AlphaMode:   o.stringOr("alphaMode", AlphaOpaque),
		AlphaCutoff: o.numberOr("alphaCutoff", 0.5),
	}
	var err error
	if m.OcclusionTexture, err = o.textureIndex("occlusionTexture", true); err != nil {
		return Material{}, err
	}
	normalKey := "normalTexture"
	if !o.has(normalKey) {
		normalKey = "normalMap"
	}
	if m.NormalTexture, err = o.textureIndex(normalKey, true); err != nil {
		return Material{}, err
	}
	if m.EmissiveTexture, err = o.textureIndex("emissiveTexture", false); err != nil {
		return Material{}, err
	}

	emissive, err := o.vector("emissiveFactor", 3, []float64{0, 0, 0})
	if err != nil {
		return Material{}, err
	}
	m.EmissiveFactor = [4]float64{emissive[0], emissive[1], emissive[2], 1}

	if pbr, ok := o.object("pbrMetallicRoughness"); ok {
		p := &PBRMetallicRoughness{
			MetallicFactor:  pbr.numberOr("metallicFactor", 1),
			RoughnessFactor: pbr.numberOr("roughnessFactor", 1),
		}
		if p.BaseColorTexture, err = pbr.textureIndex("baseColorTexture", false); err != nil {
			return Material{}, err
		}
		base, err := pbr.vector("baseColorFactor", 4, []float64{1, 1, 1, 1})
		if err != nil {
			return Material{}, err
		}
		p.BaseColorFactor = [4]float64(base)
		m.PBR = p
	}
	return m, nil
}

func acquireMesh(o object, _ int) (Mesh, error) {
	prims, err := o.list("primitives")
	if err != nil {
		return Mesh{}, err
	}
	mesh := Mesh{Name: o.stringOr("name", "")}
	for _, p := range prims {
		prim, err := acquirePrimitive(p)
		if err != nil {
			return Mesh{}, err
		}
		mesh.Primitives = append(mesh.Primitives, prim)
	}
	return mesh, nil
}

func acquirePrimitive(o object) (Primitive, error) {
	attr, err := o.requireObject("attributes")
	if err != nil {
		return Primitive{}, err
	}
	var p Primitive
	if p.Attributes.Position, err = attr.requireInt("POSITION"); err != nil {
		return Primitive{}, err
	}
	if p.Attributes.Normal, err = attr.index("NORMAL"); err != nil {
		return Primitive{}, err
	}
	if p.Attributes.Tangent, err = attr.index("TANGENT"); err != nil {
		return Primitive{}, err
	}
	for _, fam := range []struct {
		prefix string
		dst    *[]int
	}{
		{"TEXCOORD", &p.Attributes.TexCoord},
		{"COLOR", &p.Attributes.Color},
		{"JOINTS", &p.Attributes.Joints},
		{"WEIGHTS", &p.Attributes.Weights},
	} {
		if *fam.dst, err = attr.family(fam.prefix); err != nil {
			return Primitive{}, err
		}
	}

	if p.Indices, err = o.requireInt("indices"); err != nil {
		return Primitive{}, err
	}
	if p.Material, err = o.index("material"); err != nil {
		return Primitive{}, err
	}
	if p.Mode, err = o.intOr("mode", ModeTriangles); err != nil {
		return Primitive{}, err
	}
	return p, nil
}

// family returns the accessor indices of the attributes prefix_0, prefix_1,
// and so on, up to but not including the first that is absent.
func (o object) family(prefix string) ([]int, error) {
	var out []int
	for i := 0; ; i++ {
		idx, err := o.index(fmt.Sprintf("%s_%d", prefix, i))
		if err != nil {
			return nil, err
		} else if idx == nil {
			return out, nil
		}
		out = append(out, *idx)
	}
}

func acquireTexture(o object, _ int) (Texture, error) {
	sampler, err := o.index("sampler")
	if err != nil {
		return Texture{}, err
	}
	source, err := o.index("source")
	if err != nil {
		return Texture{}, err
	}
	return Texture{Name: o.stringOr("name", ""), Sampler: sampler, Source: source}, nil
}

func acquireImage(o object, _ int) (Image, error) {
	view, err := o.index("bufferView")
	if err != nil {
		return Image{}, err
	}
	return Image{
		Name:       o.stringOr("name", ""),
		MimeType:   o.stringOr("mimeType", ""),
		URI:        o.stringOr("uri", ""),
		BufferView: view,
	}, nil
}

func acquireSkin(o object, _ int) (Skin, error) {
	joints, err := o.requireIndices("joints")
	if err != nil {
		return Skin{}, err
	}
	s := Skin{Name: o.stringOr("name", ""), Joints: joints}
	if s.InverseBindMatrices, err = o.index("inverseBindMatrices"); err != nil {
		return Skin{}, err
	}
	if s.Skeleton, err = o.index("skeleton"); err != nil {
		return Skin{}, err
	}
	return s, nil
}

func acquireAccessor(o object, _ int) (Accessor, error) {
	ctype, err := o.requireInt("componentType")
	if err != nil {
		return Accessor{}, err
	}
	count, err := o.requireInt("count")
	if err != nil {
		return Accessor{}, err
	}
	etype, err := o.requireString("type")
	if err != nil {
		return Accessor{}, err
	}
	a := Accessor{
		Name:          o.stringOr("name", ""),
		ComponentType: ComponentType(ctype),
		Normalized:    o.boolOr("normalized", false),
		Count:         count,
		Type:          etype,
	}
	if a.BufferView, err = o.index("bufferView"); err != nil {
		return Accessor{}, err
	}
	if a.ByteOffset, err = o.intOr("byteOffset", 0); err != nil {
		return Accessor{}, err
	}

	// The bounds have one entry per component, when the type is known.
	n := Components(etype)
	if n == 0 {
		n = -1
	}
	if a.Min, err = o.vector("min", n, nil); err != nil {
		return Accessor{}, err
	}
	if a.Max, err = o.vector("max", n, nil); err != nil {
		return Accessor{}, err
	}
	return a, nil
}

func acquireBufferView(o object, _ int) (BufferView, error) {
	buf, err := o.requireInt("buffer")
	if err != nil {
		return BufferView{}, err
	}
	size, err := o.requireInt("byteLength")
	if err != nil {
		return BufferView{}, err
	}
	v := BufferView{Name: o.stringOr("name", ""), Buffer: buf, ByteLength: size}
	if v.ByteOffset, err = o.intOr("byteOffset", 0); err != nil {
		return BufferView{}, err
	}
	if v.ByteStride, err = o.index("byteStride"); err != nil {
		return BufferView{}, err
	}
	if v.Target, err = o.index("target"); err != nil {
		return BufferView{}, err
	}
	return v, nil
}

func acquireSampler(o object, _ int) (Sampler, error) {
	s := Sampler{Name: o.stringOr("name", "")}
	var err error
	if s.MagFilter, err = o.index("magFilter"); err != nil {
		return Sampler{}, err
	}
	if s.MinFilter, err = o.index("minFilter"); err != nil {
		return Sampler{}, err
	}
	if s.WrapS, err = o.intOr("wrapS", WrapRepeat); err != nil {
		return Sampler{}, err
	}
	if s.WrapT, err = o.intOr("wrapT", WrapRepeat); err != nil {
		return Sampler{}, err
	}
	return s, nil
}

func acquireBuffer(o object, _ int) (Buffer, error) {
	size, err := o.requireInt("byteLength")
	if err != nil {
		return Buffer{}, err
	}
	return Buffer{
		Name:       o.stringOr("name", ""),
		URI:        o.stringOr("uri", ""),
		ByteLength: size,
	}, nil
}
