package format

import "github.com/joshuapare/piplkit/internal/buf"

// storedCount converts a count field stored as value-minus-one into the true
// count. The convention recurs for both the type list and each reference
// list.
func storedCount(v uint16) int {
	return int(v) + 1
}

// Resource is one entry lifted from a fork's data region: the reference
// entry's signed ID and the length-prefixed payload it points at. Data is a
// sub-slice of the scanned buffer.
type Resource struct {
	ID   int16
	Data []byte
}

// ScanFork traverses the resource map of a classic resource fork and returns
// every resource whose type code equals typeCode, in traversal order.
//
// Malformed or truncated forks are an expected input class: every
// dereference is bounds-checked and any failure abandons the current entry
// or the traversal, yielding whatever was collected so far.
func ScanFork(b []byte, typeCode uint32) []Resource {
	if len(b) < ForkHeaderSize {
		return nil
	}
	dataOffset := int(buf.U32BE(b))
	mapOffset := int(buf.U32BE(b[ForkMapOffsetField:]))

	if mapOffset+MapHeaderCopySize >= len(b) {
		return nil
	}

	// The type-list offset sits past the map's header copy and its
	// next-handle/next-file/file-ref fields.
	fieldPos := mapOffset + MapHeaderCopySize + MapHandleFieldsSize
	if !buf.Has(b, fieldPos, 2) {
		return nil
	}
	typeListOffset := int(buf.U16BE(b[fieldPos:]))

	typeListPos := mapOffset + typeListOffset
	if !buf.Has(b, typeListPos, 2) {
		return nil
	}
	numTypes := storedCount(buf.U16BE(b[typeListPos:]))

	var resources []Resource
	pos := typeListPos + 2
	for i := 0; i < numTypes; i++ {
		if !buf.Has(b, pos, TypeEntrySize) {
			break
		}
		code := buf.U32BE(b[pos:])
		numResources := storedCount(buf.U16BE(b[pos+4:]))
		refListOffset := int(buf.U16BE(b[pos+6:]))
		pos += TypeEntrySize

		if code != typeCode {
			continue
		}

		// Reference-list offsets are relative to the start of the type
		// list. The type-list cursor (pos) is untouched here, so iteration
		// resumes at the next type entry afterwards.
		refPos := mapOffset + typeListOffset + refListOffset
		for j := 0; j < numResources; j++ {
			if !buf.Has(b, refPos, RefEntrySize) {
				break
			}
			id := buf.I16BE(b[refPos:])
			packed := buf.U32BE(b[refPos+4:])
			refPos += RefEntrySize

			resPos := dataOffset + int(packed&RefDataOffsetMask)
			if !buf.Has(b, resPos, 4) {
				continue
			}
			length := int(buf.U32BE(b[resPos:]))
			payload, ok := buf.Slice(b, resPos+4, length)
			if !ok {
				continue
			}
			resources = append(resources, Resource{ID: id, Data: payload})
		}
	}
	return resources
}
