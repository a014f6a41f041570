package format

import "github.com/joshuapare/piplkit/internal/buf"

// ScanChunkStream scans a flat 8BIM chunk stream for the chunk whose key
// equals key and returns its 32-bit value. The key chunk carries two length
// fields before the value; the first is read and discarded.
//
// A position that does not start with the 8BIM signature advances the scan
// by a single byte, which tolerates leading noise and misaligned streams.
// This resynchronization is a byte-at-a-time brute force, O(n) worst case
// over the buffer; acceptable because resource buffers are small.
func ScanChunkStream(b []byte, key uint32) (uint32, bool) {
	pos := 0
	for pos+ChunkScanMin < len(b) {
		if buf.U32BE(b[pos:]) != ChunkSignature {
			pos++
			continue
		}
		chunkKey := buf.U32BE(b[pos+ChunkSignatureSize:])
		lengthPos := pos + ChunkSignatureSize + ChunkKeySize
		if !buf.Has(b, lengthPos, ChunkLengthSize) {
			return 0, false
		}
		length := int(buf.U32BE(b[lengthPos:]))

		if chunkKey == key {
			// The matched chunk carries a second length field before the
			// 4-byte value; both reads must fit.
			valuePos := lengthPos + 2*ChunkLengthSize
			if !buf.Has(b, valuePos, 4) {
				return 0, false
			}
			return buf.U32BE(b[valuePos:]), true
		}

		next, ok := buf.AddOverflowSafe(lengthPos+ChunkLengthSize, length)
		if !ok {
			return 0, false
		}
		pos = next
	}
	return 0, false
}

// ScanChunkProperties collects tagged records from an 8BIM chunk stream
// using the 16-byte record header layout (signature, key, padding, length).
// Positions that do not parse as a complete record advance by one byte, so
// arbitrary surrounding binary may produce stray keys; callers filter on
// the keys they understand.
func ScanChunkProperties(b []byte) []Property {
	var props []Property
	pos := 0
	for pos+PropHeaderSize-4 < len(b) {
		if buf.U32BE(b[pos:]) != ChunkSignature {
			pos++
			continue
		}
		key := buf.U32BE(b[pos+PropKeyOffset:])
		if !buf.Has(b, pos+PropLengthOffset, 4) {
			pos++
			continue
		}
		length := int(buf.U32BE(b[pos+PropLengthOffset:]))
		data, ok := buf.Slice(b, pos+PropHeaderSize, length)
		if !ok {
			pos++
			continue
		}
		props = append(props, Property{Key: key, Data: data})
		pos += PropHeaderSize + length
	}
	return props
}
