package types

import "fmt"

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindFormat   ErrKind = iota // buffer too short/inconsistent to attempt a search
	ErrKindNotFound                // containers parsed exhaustively, property absent
	ErrKindState                   // caller-level failure (e.g. unreadable file)
)

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinels commonly returned by implementations.
var (
	// ErrNotFound indicates no version property was located in either
	// container format. Truncated or internally inconsistent containers
	// fold into this outcome; partial resource files are an expected,
	// non-exceptional input class.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "version property not found"}
	// ErrTooShort indicates the buffer cannot hold even a single tagged
	// record, so no search could be attempted.
	ErrTooShort = &Error{Kind: ErrKindFormat, Msg: "buffer too short to scan"}
)

// -----------------------------------------------------------------------------
// Decoded version values
// -----------------------------------------------------------------------------

// Stage is the plugin's release maturity, packed into 2 bits of the version
// integer.
type Stage uint32

const (
	StageDevelop Stage = 0
	StageAlpha   Stage = 1
	StageBeta    Stage = 2
	StageRelease Stage = 3
)

// String implements the Stringer interface for Stage.
func (s Stage) String() string {
	switch s {
	case StageDevelop:
		return "Develop"
	case StageAlpha:
		return "Alpha"
	case StageBeta:
		return "Beta"
	case StageRelease:
		return "Release"
	default:
		return fmt.Sprintf("UNKNOWN_STAGE_%d", uint32(s))
	}
}

// StageFromCode maps a raw 2-bit stage code onto the enumeration. Codes
// outside the known range fall back to Develop; with a masked 2-bit field
// that branch is unreachable in practice but the mapping stays total.
func StageFromCode(code uint32) Stage {
	switch code {
	case 0:
		return StageDevelop
	case 1:
		return StageAlpha
	case 2:
		return StageBeta
	case 3:
		return StageRelease
	default:
		return StageDevelop
	}
}

// VersionInfo is the decoded form of a packed plugin version integer.
// It is a pure value: created once by the decoder, never mutated.
type VersionInfo struct {
	Version    uint32
	Subversion uint32
	Bugfix     uint32
	Stage      Stage
	Build      uint32
}

// String renders the conventional human-readable form, e.g.
// "13.2.1 Release (Build 42)".
func (v VersionInfo) String() string {
	return fmt.Sprintf("%d.%d.%d %s (Build %d)", v.Version, v.Subversion, v.Bugfix, v.Stage, v.Build)
}
