// Package lz4x provides a pure-Go implementation of the LZ4 block
// compression format: a symmetric pair of operations that compress a
// whole in-memory buffer into an LZ4 block and decompress such a
// block back into its original bytes.
//
// The allocation-free core lives in the block subpackage
// (block.Encode, block.Decode, block.WorstCaseDstLen); the functions
// here are thin, allocating convenience wrappers over it.
package lz4x

import (
	"fmt"

	"github.com/go-lz4x/lz4x/block"
)

// Version constants.
const (
	// Version of the library.
	Version = "1.0.0"
	// VersionMajor is the major version number.
	VersionMajor = 1
	// VersionMinor is the minor version number.
	VersionMinor = 0
	// VersionPatch is the patch version number.
	VersionPatch = 0
)

// WorstCaseDstLen returns the largest number of bytes CompressBlockInto
// could write for a source of the given length.
func WorstCaseDstLen(srcLen int) (int, error) {
	n, st := block.WorstCaseDstLen(srcLen)
	return n, statusError(st)
}

// CompressBlock compresses src into an LZ4 block, reusing dst as the
// destination if it has enough room and allocating a new buffer
// otherwise. The returned slice is the compressed block and may share
// storage with dst.
func CompressBlock(src, dst []byte) ([]byte, error) {
	want, st := block.WorstCaseDstLen(len(src))
	if !st.OK() {
		return nil, statusError(st)
	}
	if cap(dst) < want {
		dst = make([]byte, want)
	} else {
		dst = dst[:want]
	}
	return CompressBlockInto(dst, src)
}

// CompressBlockInto compresses src into dst, which must already have
// at least WorstCaseDstLen(len(src)) bytes of capacity, and returns the
// slice of dst actually written.
func CompressBlockInto(dst, src []byte) ([]byte, error) {
	n, st := block.Encode(dst, src)
	if !st.OK() {
		return nil, statusError(st)
	}
	return dst[:n], nil
}

// DecompressBlock decompresses the LZ4 block src, reusing dst as the
// destination if it has enough room (up to maxSize bytes) and
// allocating a new buffer otherwise. maxSize bounds how large a
// destination this call is willing to allocate; pass 0 to use a 64KiB
// default.
func DecompressBlock(src, dst []byte, maxSize int) ([]byte, error) {
	if maxSize <= 0 {
		maxSize = 64 * 1024
	}

	buf := dst
	if cap(buf) == 0 {
		buf = make([]byte, maxSize)
	} else {
		buf = buf[:cap(buf)]
	}

	for {
		n, st := block.Decode(buf, src)
		switch {
		case st.OK():
			return buf[:n], nil
		case st == block.ErrDstTooShort && len(buf) < maxSize:
			grown := len(buf) * 2
			if grown > maxSize {
				grown = maxSize
			}
			if grown <= len(buf) {
				return nil, statusError(st)
			}
			buf = make([]byte, grown)
		default:
			return nil, statusError(st)
		}
	}
}

// statusError adapts a block.Status into a plain error, returning nil
// for success so callers can use ordinary Go error-handling idiom.
func statusError(st block.Status) error {
	if st.OK() {
		return nil
	}
	return fmt.Errorf("lz4x: %w", st)
}
