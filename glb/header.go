// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package glb

import (
	"fmt"

	"github.com/creachadair/jscene"
	"go4.org/mem"
)

// Little-endian tags of the GLB container.
const (
	magicGLTF = 0x46546C67 // "glTF"
	chunkJSON = 0x4E4F534A // "JSON"
	chunkBIN  = 0x004E4942 // "BIN\x00"

	// HeaderSize is the length in bytes of the container header, including
	// the header of the JSON chunk.
	HeaderSize = 20
)

// readHeader reads the container header and the JSON chunk from c.  It
// returns the header fields and the JSON payload, with any trailing NUL
// padding removed.
func readHeader(c *jscene.Cursor) (Header, mem.RO, error) {
	if c.Remaining() < HeaderSize {
		return Header{}, mem.RO{}, fmt.Errorf("%w: truncated header (%d bytes)", jscene.ErrMalformedHeader, c.Remaining())
	}
	var fields [5]uint32
	for i := range fields {
		v, err := c.ReadUint32()
		if err != nil {
			return Header{}, mem.RO{}, fmt.Errorf("%w: %w", jscene.ErrMalformedHeader, err)
		}
		fields[i] = v
	}
	if fields[0] != magicGLTF {
		return Header{}, mem.RO{}, fmt.Errorf("%w: bad magic %#08x", jscene.ErrMalformedHeader, fields[0])
	}
	if fields[4] != chunkJSON {
		return Header{}, mem.RO{}, fmt.Errorf("%w: first chunk type is %#08x, not JSON", jscene.ErrMalformedHeader, fields[4])
	}
	hdr := Header{Version: fields[1], Length: fields[2], JSONLength: fields[3]}
	text, err := c.ReadExact(int(hdr.JSONLength))
	if err != nil {
		return hdr, mem.RO{}, fmt.Errorf("reading JSON chunk: %w", err)
	}
	return hdr, mem.TrimRightCutset(text, mem.S("\x00")), nil
}

// readBinary reads the optional BIN chunk following the JSON chunk.  It
// returns nil if there is no such chunk or it is not well formed.
func readBinary(c *jscene.Cursor) []byte {
	// Chunks are aligned to 4-byte boundaries.
	if pad := c.Pos() % 4; pad != 0 && c.Advance(4-pad) != nil {
		return nil
	}
	if c.Remaining() < 8 {
		return nil
	}
	n, _ := c.ReadUint32()
	tag, _ := c.ReadUint32()
	if tag != chunkBIN {
		return nil
	}
	data, err := c.ReadExact(int(n))
	if err != nil {
		return nil
	}
	return mem.Append(nil, data)
}
