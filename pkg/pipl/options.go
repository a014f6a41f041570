package pipl

// Options configures how containers are scanned.
type Options struct {
	// AlignedProperties selects the classic Mac property-list layout in
	// which each property's data is padded out to a 4-byte boundary.
	// The flag describes the resource file's origin platform, not the host:
	// the same buffer must parse identically on every machine. The zero
	// value is the Windows-origin layout with no padding.
	AlignedProperties bool
}
