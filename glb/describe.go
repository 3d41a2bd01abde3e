// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package glb

import (
	"github.com/creachadair/jscene/ast"
)

// Describe renders doc as a JSON value, using glTF member names. Absent
// optional indices are rendered as null. The binary payload is summarized
// by its length.
func Describe(doc *SceneDocument) ast.Value {
	out := ast.Object{
		"asset": ast.Object{
			"version":    ast.String(doc.Asset.Version),
			"generator":  ast.String(doc.Asset.Generator),
			"extensions": stringsOf(doc.Asset.Extensions),
		},
		"extensionsUsed":     stringsOf(doc.ExtensionsUsed),
		"extensionsRequired": stringsOf(doc.ExtensionsRequired),
		"scene":              optIndex(doc.Scene),
		"scenes":             describeAll(doc.Scenes, describeScene),
		"nodes":              describeAll(doc.Nodes, describeNode),
		"materials":          describeAll(doc.Materials, describeMaterial),
		"meshes":             describeAll(doc.Meshes, describeMesh),
		"textures":           describeAll(doc.Textures, describeTexture),
		"images":             describeAll(doc.Images, describeImage),
		"skins":              describeAll(doc.Skins, describeSkin),
		"accessors":          describeAll(doc.Accessors, describeAccessor),
		"bufferViews":        describeAll(doc.BufferViews, describeBufferView),
		"samplers":           describeAll(doc.Samplers, describeSampler),
		"buffers":            describeAll(doc.Buffers, describeBuffer),
	}
	if doc.Header != (Header{}) {
		out["header"] = ast.Object{
			"version":    ast.Number(doc.Header.Version),
			"length":     ast.Number(doc.Header.Length),
			"jsonLength": ast.Number(doc.Header.JSONLength),
			"binLength":  ast.Number(len(doc.Binary)),
		}
	}
	return out
}

func describeAll[T any](recs []T, f func(T) ast.Object) ast.Array {
	out := make(ast.Array, len(recs))
	for i, r := range recs {
		out[i] = f(r)
	}
	return out
}

func optIndex(p *int) ast.Value {
	if p == nil {
		return ast.Null{}
	}
	return ast.Number(*p)
}

func stringsOf(ss []string) ast.Array {
	out := make(ast.Array, len(ss))
	for i, s := range ss {
		out[i] = ast.String(s)
	}
	return out
}

func numbers[T ~int | ~float64](vs ...T) ast.Array {
	out := make(ast.Array, len(vs))
	for i, v := range vs {
		out[i] = ast.Number(v)
	}
	return out
}

func describeScene(s Scene) ast.Object {
	return ast.Object{"name": ast.String(s.Name), "nodes": numbers(s.Nodes...)}
}

func describeNode(n Node) ast.Object {
	r := n.Rotation
	out := ast.Object{
		"name":        ast.String(n.Name),
		"children":    numbers(n.Children...),
		"rotation":    numbers(r.Imag, r.Jmag, r.Kmag, r.Real),
		"translation": numbers(n.Translation.X, n.Translation.Y, n.Translation.Z),
		"scale":       numbers(n.Scale.X, n.Scale.Y, n.Scale.Z),
		"mesh":        optIndex(n.Mesh),
		"skin":        optIndex(n.Skin),
	}
	if n.Matrix != nil {
		out["matrix"] = numbers(n.Matrix[:]...)
	}
	return out
}

func describeMaterial(m Material) ast.Object {
	out := ast.Object{
		"name":             ast.String(m.Name),
		"doubleSided":      ast.Bool(m.DoubleSided),
		"alphaMode":        ast.String(m.AlphaMode),
		"alphaCutoff":      ast.Number(m.AlphaCutoff),
		"occlusionTexture": optIndex(m.OcclusionTexture),
		"normalTexture":    optIndex(m.NormalTexture),
		"emissiveTexture":  optIndex(m.EmissiveTexture),
		"emissiveFactor":   numbers(m.EmissiveFactor[:]...),
	}
	if p := m.PBR; p != nil {
		out["pbrMetallicRoughness"] = ast.Object{
			"baseColorTexture": optIndex(p.BaseColorTexture),
			"baseColorFactor":  numbers(p.BaseColorFactor[:]...),
			"metallicFactor":   ast.Number(p.MetallicFactor),
			"roughnessFactor":  ast.Number(p.RoughnessFactor),
		}
	}
	return out
}

func describeMesh(m Mesh) ast.Object {
	return ast.Object{
		"name":       ast.String(m.Name),
		"primitives": describeAll(m.Primitives, describePrimitive),
	}
}

func describePrimitive(p Primitive) ast.Object {
	a := p.Attributes
	return ast.Object{
		"attributes": ast.Object{
			"POSITION": ast.Number(a.Position),
			"NORMAL":   optIndex(a.Normal),
			"TANGENT":  optIndex(a.Tangent),
			"TEXCOORD": numbers(a.TexCoord...),
			"COLOR":    numbers(a.Color...),
			"JOINTS":   numbers(a.Joints...),
			"WEIGHTS":  numbers(a.Weights...),
		},
		"indices":  ast.Number(p.Indices),
		"material": optIndex(p.Material),
		"mode":     ast.Number(p.Mode),
	}
}

func describeTexture(t Texture) ast.Object {
	return ast.Object{
		"name":    ast.String(t.Name),
		"sampler": optIndex(t.Sampler),
		"source":  optIndex(t.Source),
	}
}

func describeImage(m Image) ast.Object {
	return ast.Object{
		"name":       ast.String(m.Name),
		"mimeType":   ast.String(m.MimeType),
		"uri":        ast.String(m.URI),
		"bufferView": optIndex(m.BufferView),
	}
}

func describeSkin(s Skin) ast.Object {
	return ast.Object{
		"name":                ast.String(s.Name),
		"inverseBindMatrices": optIndex(s.InverseBindMatrices),
		"skeleton":            optIndex(s.Skeleton),
		"joints":              numbers(s.Joints...),
	}
}

func describeAccessor(a Accessor) ast.Object {
	return ast.Object{
		"name":          ast.String(a.Name),
		"bufferView":    optIndex(a.BufferView),
		"byteOffset":    ast.Number(a.ByteOffset),
		"componentType": ast.String(a.ComponentType.String()),
		"normalized":    ast.Bool(a.Normalized),
		"count":         ast.Number(a.Count),
		"type":          ast.String(a.Type),
		"min":           numbers(a.Min...),
		"max":           numbers(a.Max...),
	}
}

func describeBufferView(v BufferView) ast.Object {
	return ast.Object{
		"name":       ast.String(v.Name),
		"buffer":     ast.Number(v.Buffer),
		"byteOffset": ast.Number(v.ByteOffset),
		"byteLength": ast.Number(v.ByteLength),
		"byteStride": optIndex(v.ByteStride),
		"target":     optIndex(v.Target),
	}
}

func describeSampler(s Sampler) ast.Object {
	return ast.Object{
		"name":      ast.String(s.Name),
		"magFilter": optIndex(s.MagFilter),
		"minFilter": optIndex(s.MinFilter),
		"wrapS":     ast.Number(s.WrapS),
		"wrapT":     ast.Number(s.WrapT),
	}
}

func describeBuffer(b Buffer) ast.Object {
	return ast.Object{
		"name":       ast.String(b.Name),
		"uri":        ast.String(b.URI),
		"byteLength": ast.Number(b.ByteLength),
	}
}
