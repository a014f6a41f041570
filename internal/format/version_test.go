package format

import "testing"

func TestDecodeVersionZero(t *testing.T) {
	v := DecodeVersion(0)
	if v.Version != 0 || v.Subversion != 0 || v.Bugfix != 0 || v.Stage != StageDevelop || v.Build != 0 {
		t.Fatalf("DecodeVersion(0) = %+v", v)
	}
}

func TestDecodeVersionFields(t *testing.T) {
	// version 13 = high 1 (bits 26-29), low 5 (bits 19-21)
	encoded := uint32(1)<<VersVersHighShift |
		uint32(5)<<VersVersShift |
		uint32(2)<<VersSubversShift |
		uint32(7)<<VersBugfixShift |
		uint32(StageRelease)<<VersStageShift |
		uint32(42)

	v := DecodeVersion(encoded)
	if v.Version != 13 {
		t.Fatalf("version = %d, want 13", v.Version)
	}
	if v.Subversion != 2 {
		t.Fatalf("subversion = %d, want 2", v.Subversion)
	}
	if v.Bugfix != 7 {
		t.Fatalf("bugfix = %d, want 7", v.Bugfix)
	}
	if v.Stage != StageRelease {
		t.Fatalf("stage = %d, want %d", v.Stage, StageRelease)
	}
	if v.Build != 42 {
		t.Fatalf("build = %d, want 42", v.Build)
	}
}

func TestDecodeVersionStages(t *testing.T) {
	for code, want := range map[uint32]uint32{
		0b00: StageDevelop,
		0b01: StageAlpha,
		0b10: StageBeta,
		0b11: StageRelease,
	} {
		v := DecodeVersion(code << VersStageShift)
		if v.Stage != want {
			t.Fatalf("stage code %b decoded to %d, want %d", code, v.Stage, want)
		}
	}
}

// TestDecodeVersionRoundTrip re-encodes the five extracted fields with the
// documented shifts and checks the relevant bits of the input reconstruct
// exactly, for a spread of encodings.
func TestDecodeVersionRoundTrip(t *testing.T) {
	inputs := []uint32{
		0x00000000,
		0x12345678,
		0xFFFFFFFF,
		0xDEADBEEF,
		0x80000001,
		0x04000000,
		0x0007FFFF,
	}
	// Bits [22,26) and [30,32) are outside every field and never survive a
	// round trip.
	const relevant = uint32(VersBuildBits)<<VersBuildShift |
		uint32(VersStageBits)<<VersStageShift |
		uint32(VersBugfixBits)<<VersBugfixShift |
		uint32(VersSubversBits)<<VersSubversShift |
		uint32(VersVersBits)<<VersVersShift |
		uint32(VersVersHighBits)<<VersVersHighShift

	for _, encoded := range inputs {
		v := DecodeVersion(encoded)
		re := v.Build<<VersBuildShift |
			v.Stage<<VersStageShift |
			v.Bugfix<<VersBugfixShift |
			v.Subversion<<VersSubversShift |
			(v.Version&VersVersBits)<<VersVersShift |
			(v.Version>>VersVersLowShift)<<VersVersHighShift
		if re != encoded&relevant {
			t.Fatalf("0x%08X: re-encoded 0x%08X, want 0x%08X", encoded, re, encoded&relevant)
		}
	}
}
