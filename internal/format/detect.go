package format

import "github.com/joshuapare/piplkit/internal/buf"

// LooksLikeResourceFork reports whether b plausibly begins with a classic
// resource-fork header. The fork format has no magic number, so this is a
// heuristic over the two leading offsets: both must land inside the buffer,
// the map must follow the data region with room for a map header, and the
// two regions must be far enough apart to be real. False positives and
// negatives are possible on adversarial input; callers degrade to the
// chunk-stream path or to not-found rather than failing.
func LooksLikeResourceFork(b []byte) bool {
	if len(b) < DetectMinSize {
		return false
	}
	dataOffset := buf.U32BE(b)
	mapOffset := buf.U32BE(b[ForkMapOffsetField:])
	size := uint32(len(b))
	return dataOffset < size &&
		mapOffset < size &&
		dataOffset > 0 &&
		mapOffset > dataOffset &&
		mapOffset+DetectMapHeaderRoom < size &&
		mapOffset-dataOffset > DetectMinRegionGap
}
