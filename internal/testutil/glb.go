// Package testutil defines support code for unit tests.
package testutil

import (
	"encoding/binary"
)

// Chunk and container tags, in little-endian order.
const (
	MagicGLTF = 0x46546C67
	ChunkJSON = 0x4E4F534A
	ChunkBIN  = 0x004E4942
)

// A GLB describes a binary glTF container to be assembled for a test.
// Fields left zero take their standard values.
type GLB struct {
	Magic     uint32 // default MagicGLTF
	Version   uint32 // default 2
	ChunkType uint32 // type of the first chunk; default ChunkJSON
	JSON      string // the text of the first chunk
	Binary    []byte // if non-nil, a BIN chunk is appended
}

// Bytes assembles the container described by g. The JSON chunk is padded
// with spaces to a multiple of 4 bytes.
func (g GLB) Bytes() []byte {
	magic := g.Magic
	if magic == 0 {
		magic = MagicGLTF
	}
	version := g.Version
	if version == 0 {
		version = 2
	}
	ctype := g.ChunkType
	if ctype == 0 {
		ctype = ChunkJSON
	}

	text := []byte(g.JSON)
	for len(text)%4 != 0 {
		text = append(text, ' ')
	}
	var bin []byte
	if g.Binary != nil {
		bin = binary.LittleEndian.AppendUint32(bin, uint32(len(g.Binary)))
		bin = binary.LittleEndian.AppendUint32(bin, ChunkBIN)
		bin = append(bin, g.Binary...)
	}

	var out []byte
	out = binary.LittleEndian.AppendUint32(out, magic)
	out = binary.LittleEndian.AppendUint32(out, version)
	out = binary.LittleEndian.AppendUint32(out, uint32(20+len(text)+len(bin)))
	out = binary.LittleEndian.AppendUint32(out, uint32(len(text)))
	out = binary.LittleEndian.AppendUint32(out, ctype)
	out = append(out, text...)
	return append(out, bin...)
}
