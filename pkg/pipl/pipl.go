package pipl

import (
	"encoding/binary"

	"github.com/joshuapare/piplkit/internal/format"
	"github.com/joshuapare/piplkit/internal/mmfile"
	"github.com/joshuapare/piplkit/pkg/types"
)

// Result couples a decoded plugin version with the raw packed integer that
// produced it.
type Result struct {
	Raw     uint32
	Version types.VersionInfo
}

// DecodeVersion unpacks a raw packed version integer. The decoding is total:
// every 32-bit input yields a VersionInfo, with unrecognized stage codes
// mapped to Develop.
func DecodeVersion(raw uint32) types.VersionInfo {
	v := format.DecodeVersion(raw)
	return types.VersionInfo{
		Version:    v.Version,
		Subversion: v.Subversion,
		Bugfix:     v.Bugfix,
		Stage:      types.StageFromCode(v.Stage),
		Build:      v.Build,
	}
}

// ExtractVersion locates the eVER property in data and decodes it. The
// buffer may hold either a classic resource fork or an 8BIM chunk stream;
// the container format is detected by offset plausibility and ambiguous
// buffers fall back to the chunk-stream path.
//
// Returns types.ErrTooShort when the buffer cannot hold a single tagged
// record, and types.ErrNotFound when both traversals end without locating
// the property. Truncated or internally inconsistent containers degrade to
// ErrNotFound rather than failing.
func ExtractVersion(data []byte, opts Options) (Result, error) {
	raw, err := findRawVersion(data, opts)
	if err != nil {
		return Result{}, err
	}
	return Result{Raw: raw, Version: DecodeVersion(raw)}, nil
}

// ExtractVersionFile maps the file at path and extracts its plugin version.
func ExtractVersionFile(path string, opts Options) (Result, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return Result{}, &types.Error{Kind: types.ErrKindState, Msg: "read resource file", Err: err}
	}
	defer func() { _ = cleanup() }() // read-only mapping
	return ExtractVersion(data, opts)
}

// Properties enumerates the PiPL properties found in data, from either
// container format. Chunk-stream scanning resynchronizes byte-by-byte and
// can surface stray matches from surrounding binary, so that path keeps
// only documented property keys. An empty result with a nil error means
// the containers parsed but held no recognizable properties.
func Properties(data []byte, opts Options) ([]types.Property, error) {
	if len(data) < format.ChunkScanMin {
		return nil, types.ErrTooShort
	}
	if format.LooksLikeResourceFork(data) {
		var props []types.Property
		for _, res := range format.ScanFork(data, format.TypePiPL) {
			for _, p := range format.ScanPiPLProperties(res.Data, opts.AlignedProperties) {
				props = append(props, types.Property{Key: keyString(p.Key), Data: p.Data})
			}
		}
		return props, nil
	}
	var props []types.Property
	for _, p := range format.ScanChunkProperties(data) {
		prop := types.Property{Key: keyString(p.Key), Data: p.Data}
		if prop.Known() {
			props = append(props, prop)
		}
	}
	return props, nil
}

func findRawVersion(data []byte, opts Options) (uint32, error) {
	if len(data) < format.ChunkScanMin {
		return 0, types.ErrTooShort
	}
	if format.LooksLikeResourceFork(data) {
		for _, res := range format.ScanFork(data, format.TypePiPL) {
			if raw, ok := format.ScanPiPL(res.Data, opts.AlignedProperties); ok {
				return raw, nil
			}
		}
		return 0, types.ErrNotFound
	}
	if raw, ok := format.ScanChunkStream(data, format.KeyVersion); ok {
		return raw, nil
	}
	return 0, types.ErrNotFound
}

func keyString(key uint32) string {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], key)
	return string(b[:])
}
