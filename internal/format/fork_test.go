package format

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// buildFork assembles a minimal synthetic resource fork holding the given
// payloads under a single type entry. The data/map gap is padded so the
// result also satisfies the detection heuristic.
func buildFork(typeCode uint32, payloads ...[]byte) []byte {
	const dataOffset = 16

	var data []byte
	var resOffsets []int
	for _, p := range payloads {
		resOffsets = append(resOffsets, len(data))
		var l [4]byte
		binary.BigEndian.PutUint32(l[:], uint32(len(p)))
		data = append(data, l[:]...)
		data = append(data, p...)
	}
	for len(data) <= DetectMinRegionGap {
		data = append(data, 0)
	}
	mapOffset := dataOffset + len(data)

	// Map: header copy (16), handle fields (10), type-list and name-list
	// offsets (2+2). Type list directly after at map+30.
	const typeListOffset = 30
	m := make([]byte, typeListOffset)
	binary.BigEndian.PutUint16(m[MapHeaderCopySize+MapHandleFieldsSize:], typeListOffset)

	// Type list: count-minus-one, then one 8-byte entry. The reference list
	// offset is relative to the type-list start.
	refListOffset := 2 + TypeEntrySize
	var tl [2 + TypeEntrySize]byte
	binary.BigEndian.PutUint16(tl[0:], 0) // one type, stored as count-1
	binary.BigEndian.PutUint32(tl[2:], typeCode)
	binary.BigEndian.PutUint16(tl[6:], uint16(len(payloads)-1))
	binary.BigEndian.PutUint16(tl[8:], uint16(refListOffset))
	m = append(m, tl[:]...)

	for i := range payloads {
		var ref [RefEntrySize]byte
		binary.BigEndian.PutUint16(ref[0:], uint16(16000+i)) // resource ID
		binary.BigEndian.PutUint16(ref[2:], 0xFFFF)          // no name
		binary.BigEndian.PutUint32(ref[4:], uint32(resOffsets[i]))
		m = append(m, ref[:]...)
	}

	fork := make([]byte, ForkHeaderSize)
	binary.BigEndian.PutUint32(fork[0:], dataOffset)
	binary.BigEndian.PutUint32(fork[4:], uint32(mapOffset))
	binary.BigEndian.PutUint32(fork[8:], uint32(len(data)))
	binary.BigEndian.PutUint32(fork[12:], uint32(len(m)))
	fork = append(fork, data...)
	fork = append(fork, m...)
	return fork
}

func TestScanForkSinglePayload(t *testing.T) {
	payload := []byte("pipl resource body")
	fork := buildFork(TypePiPL, payload)

	got := ScanFork(fork, TypePiPL)
	if len(got) != 1 {
		t.Fatalf("resource count = %d, want 1", len(got))
	}
	if !bytes.Equal(got[0].Data, payload) {
		t.Fatalf("payload = %q, want %q", got[0].Data, payload)
	}
	if got[0].ID != 16000 {
		t.Fatalf("resource ID = %d, want 16000", got[0].ID)
	}
}

func TestScanForkTraversalOrder(t *testing.T) {
	first := []byte("first")
	second := []byte("second")
	got := ScanFork(buildFork(TypePiPL, first, second), TypePiPL)
	if len(got) != 2 {
		t.Fatalf("resource count = %d, want 2", len(got))
	}
	if !bytes.Equal(got[0].Data, first) || !bytes.Equal(got[1].Data, second) {
		t.Fatalf("payloads out of order: %q, %q", got[0].Data, got[1].Data)
	}
	if got[0].ID != 16000 || got[1].ID != 16001 {
		t.Fatalf("resource IDs = %d, %d, want 16000, 16001", got[0].ID, got[1].ID)
	}
}

func TestScanForkNegativeResourceID(t *testing.T) {
	fork := buildFork(TypePiPL, []byte("payload"))

	// IDs are signed 16-bit; system resources use the negative range.
	refPos := len(fork) - RefEntrySize
	binary.BigEndian.PutUint16(fork[refPos:], 0x8000)
	got := ScanFork(fork, TypePiPL)
	if len(got) != 1 {
		t.Fatalf("resource count = %d, want 1", len(got))
	}
	if got[0].ID != -32768 {
		t.Fatalf("resource ID = %d, want -32768", got[0].ID)
	}
}

func TestScanForkTypeMismatch(t *testing.T) {
	fork := buildFork(0x49434E23, []byte("icon data")) // 'ICN#'
	if got := ScanFork(fork, TypePiPL); got != nil {
		t.Fatalf("expected no payloads, got %d", len(got))
	}
}

func TestScanForkBuilderSatisfiesHeuristic(t *testing.T) {
	if !LooksLikeResourceFork(buildFork(TypePiPL, []byte("x"))) {
		t.Fatalf("synthetic fork should pass the detection heuristic")
	}
}

func TestScanForkTruncated(t *testing.T) {
	fork := buildFork(TypePiPL, []byte("payload"))

	// Too short for the fork header.
	if got := ScanFork(fork[:8], TypePiPL); got != nil {
		t.Fatalf("8-byte buffer: got %d payloads", len(got))
	}

	// Cut before the map header duplicate ends.
	mapOffset := binary.BigEndian.Uint32(fork[4:])
	if got := ScanFork(fork[:mapOffset+8], TypePiPL); got != nil {
		t.Fatalf("truncated map: got %d payloads", len(got))
	}

	// Cut in the middle of the type list: must stop early, not panic.
	if got := ScanFork(fork[:int(mapOffset)+32], TypePiPL); got != nil {
		t.Fatalf("truncated type list: got %d payloads", len(got))
	}
}

func TestScanForkResourceOffsetOutOfRange(t *testing.T) {
	fork := buildFork(TypePiPL, []byte("payload"))

	// Point the reference's packed data offset far past the buffer. The
	// entry is skipped without error.
	refPos := len(fork) - RefEntrySize
	binary.BigEndian.PutUint32(fork[refPos+4:], 0x00FFFFFF)
	if got := ScanFork(fork, TypePiPL); got != nil {
		t.Fatalf("out-of-range resource: got %d payloads", len(got))
	}
}

func TestScanForkResourceLengthOverrun(t *testing.T) {
	fork := buildFork(TypePiPL, []byte("payload"))

	// Corrupt the resource length prefix so payload would run off the end.
	dataOffset := binary.BigEndian.Uint32(fork[0:])
	binary.BigEndian.PutUint32(fork[dataOffset:], 0xFFFFFFF0)
	if got := ScanFork(fork, TypePiPL); got != nil {
		t.Fatalf("overrunning resource length: got %d payloads", len(got))
	}
}

func TestStoredCount(t *testing.T) {
	if storedCount(0) != 1 {
		t.Fatalf("storedCount(0) = %d, want 1", storedCount(0))
	}
	if storedCount(0xFFFF) != 0x10000 {
		t.Fatalf("storedCount(0xFFFF) = %d, want 65536", storedCount(0xFFFF))
	}
}
