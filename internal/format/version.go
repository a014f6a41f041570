package format

// Version carries the five fields unpacked from a packed version integer.
// Stage is the raw 2-bit stage code; the public layer maps it onto the
// release-stage enumeration.
type Version struct {
	Version    uint32
	Subversion uint32
	Bugfix     uint32
	Stage      uint32
	Build      uint32
}

// DecodeVersion unpacks a packed 32-bit version integer. The decoding is
// total: every input is a valid encoding.
func DecodeVersion(encoded uint32) Version {
	low := (encoded >> VersVersShift) & VersVersBits
	high := (encoded >> VersVersHighShift) & VersVersHighBits
	return Version{
		Version:    high<<VersVersLowShift | low,
		Subversion: (encoded >> VersSubversShift) & VersSubversBits,
		Bugfix:     (encoded >> VersBugfixShift) & VersBugfixBits,
		Stage:      (encoded >> VersStageShift) & VersStageBits,
		Build:      (encoded >> VersBuildShift) & VersBuildBits,
	}
}
