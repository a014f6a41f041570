package format

import "github.com/joshuapare/piplkit/internal/buf"

// Property is one raw property record lifted out of a PiPL payload or a
// chunk stream. Data is a sub-slice of the scanned buffer.
type Property struct {
	Key  uint32
	Data []byte
}

// propSkip returns how far the cursor advances past a property's data.
// Forks written on classic Mac toolchains pad each property's data out to a
// 4-byte boundary; Windows-origin forks do not. The caller states which
// layout the buffer uses via aligned.
func propSkip(length int, aligned bool) int {
	if !aligned {
		return length
	}
	if rem := length % PropDataAlignment; rem != 0 {
		return length + PropDataAlignment - rem
	}
	return length
}

// ScanPiPL walks the property records of one PiPL resource payload and
// returns the packed version integer of the first eVER property. The eVER
// value is always exactly 4 bytes regardless of the record's declared
// length, so the length/skip logic never applies to the match.
//
// A property count or length field that would push the cursor past the
// payload end terminates the scan as not-found.
func ScanPiPL(b []byte, aligned bool) (uint32, bool) {
	pos := PiPLVersionSize // skip the 4-byte version field
	if !buf.Has(b, pos, 4) {
		return 0, false
	}
	count := int(buf.U32BE(b[pos:]))
	pos += 4

	for i := 0; i < count; i++ {
		if !buf.Has(b, pos, PropHeaderSize) {
			return 0, false
		}
		key := buf.U32BE(b[pos+PropKeyOffset:])
		length := int(buf.U32BE(b[pos+PropLengthOffset:]))
		pos += PropHeaderSize

		if key == KeyVersion {
			if !buf.Has(b, pos, 4) {
				return 0, false
			}
			return buf.U32BE(b[pos:]), true
		}

		next, ok := buf.AddOverflowSafe(pos, propSkip(length, aligned))
		if !ok || next > len(b) {
			return 0, false
		}
		pos = next
	}
	return 0, false
}

// ScanPiPLProperties walks the same records as ScanPiPL but collects every
// property's key and declared-length data. Records whose data would overrun
// the payload end the scan; everything collected so far is returned.
func ScanPiPLProperties(b []byte, aligned bool) []Property {
	pos := PiPLVersionSize
	if !buf.Has(b, pos, 4) {
		return nil
	}
	count := int(buf.U32BE(b[pos:]))
	pos += 4

	var props []Property
	for i := 0; i < count; i++ {
		if !buf.Has(b, pos, PropHeaderSize) {
			return props
		}
		key := buf.U32BE(b[pos+PropKeyOffset:])
		length := int(buf.U32BE(b[pos+PropLengthOffset:]))
		pos += PropHeaderSize

		data, ok := buf.Slice(b, pos, length)
		if !ok {
			return props
		}
		props = append(props, Property{Key: key, Data: data})

		next, ok := buf.AddOverflowSafe(pos, propSkip(length, aligned))
		if !ok || next > len(b) {
			return props
		}
		pos = next
	}
	return props
}
