// Package format houses low-level decoders for the legacy plugin resource
// containers: the classic Mac resource-fork layout and the flat 8BIM tagged
// chunk stream. The goal is to keep the parsing focused, allocation-free
// where possible, and independent from the public API so higher-level
// packages can orchestrate the data in a more ergonomic form.
//
// All multi-byte fields in both containers are big-endian.
package format

// Four-byte tags. Stored as big-endian uint32 so they compare directly
// against buf.U32BE reads.
const (
	// TypePiPL identifies a Plug-in Property List resource ("PiPL").
	TypePiPL uint32 = 0x5069504C

	// KeyVersion identifies the packed effect-version property ("eVER").
	KeyVersion uint32 = 0x65564552

	// ChunkSignature marks a tagged record in a chunk stream ("8BIM").
	ChunkSignature uint32 = 0x3842494D
)

// Resource fork layout.
//
//	Offset  Size  Description
//	------  ----  ----------------------------------------------------------
//	 0x00    4    Offset from start of fork to resource data
//	 0x04    4    Offset from start of fork to resource map
//	 0x08    4    Length of resource data
//	 0x0C    4    Length of resource map
//
// The resource map begins with a 16-byte copy of the fork header, followed
// by next-handle (4), next-file (4) and file-ref (2) fields, then the
// 16-bit type-list and name-list offsets (both relative to the map).
const (
	ForkHeaderSize     = 16
	ForkMapOffsetField = 0x04

	// MapHeaderCopySize is the duplicate of the fork header at the start of
	// the resource map.
	MapHeaderCopySize = 16

	// MapHandleFieldsSize covers the next-handle, next-file and file-ref
	// fields between the header copy and the type-list offset.
	MapHandleFieldsSize = 4 + 4 + 2

	// TypeEntrySize is one type-list entry: 4-byte type code, 16-bit
	// resource count (stored as count-minus-one), 16-bit reference-list
	// offset.
	TypeEntrySize = 8

	// RefEntrySize is one resource reference: 16-bit ID, 16-bit name
	// offset, 32-bit packed attributes+offset, 32-bit handle placeholder.
	RefEntrySize = 12

	// RefDataOffsetMask extracts the resource data offset from the packed
	// attributes+offset field (attributes live in the high byte).
	RefDataOffsetMask = 0x00FFFFFF
)

// Resource-fork detection heuristic. There is no magic number; the only
// signal is offset plausibility.
const (
	// DetectMinSize is the smallest buffer the heuristic will consider.
	DetectMinSize = 16

	// DetectMapHeaderRoom is the slack required past the map offset so a
	// map header can plausibly fit.
	DetectMapHeaderRoom = 32

	// DetectMinRegionGap is the minimum distance between the data and map
	// regions. Guards against false positives on arbitrary binary data.
	DetectMinRegionGap = 400
)

// PiPL property list layout. The resource payload starts with a 4-byte
// version field and a 32-bit property count, followed by fixed-layout
// property records:
//
//	Offset  Size  Description
//	------  ----  ----------------------------------------------------------
//	 0x00    4    Vendor signature (ignored)
//	 0x04    4    Property key
//	 0x08    4    Padding (ignored)
//	 0x0C    4    Property data length
//	 0x10    n    Property data
const (
	PiPLVersionSize   = 4
	PropKeyOffset     = 0x04
	PropLengthOffset  = 0x0C
	PropHeaderSize    = 0x10
	PropDataAlignment = 4
)

// Chunk stream layout. Each record is the 4-byte "8BIM" signature, a 4-byte
// key and a 32-bit length. The eVER record carries a second length field
// directly before its 4-byte value.
const (
	ChunkSignatureSize = 4
	ChunkKeySize       = 4
	ChunkLengthSize    = 4

	// ChunkScanMin is the smallest tail worth scanning; below this no
	// signature and key can fit.
	ChunkScanMin = ChunkSignatureSize + ChunkKeySize
)

// Packed version bitfield (PF_VERS layout). The 7-bit major version is
// split into a low and a high part.
//
//	Bits    Field
//	------  -----------
//	 [0,9)  build
//	 [9,11) stage
//	[11,15) bugfix
//	[15,19) subversion
//	[19,22) version (low 3 bits)
//	[26,30) version (high 4 bits)
const (
	VersBuildBits  = 0x1FF
	VersBuildShift = 0

	VersStageBits  = 0x3
	VersStageShift = 9

	VersBugfixBits  = 0xF
	VersBugfixShift = 11

	VersSubversBits  = 0xF
	VersSubversShift = 15

	VersVersBits  = 0x7
	VersVersShift = 19

	VersVersHighBits  = 0xF
	VersVersHighShift = 26
	VersVersLowShift  = 3
)

// Stage codes carried in the 2-bit stage field.
const (
	StageDevelop = 0
	StageAlpha   = 1
	StageBeta    = 2
	StageRelease = 3
)
