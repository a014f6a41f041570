package pipl

import "golang.org/x/text/encoding/charmap"

// PascalString decodes a length-prefixed MacRoman string, the payload shape
// of the name and catg properties. Returns false when the payload is empty
// or shorter than its declared length.
func PascalString(data []byte) (string, bool) {
	if len(data) == 0 {
		return "", false
	}
	n := int(data[0])
	if n > len(data)-1 {
		return "", false
	}
	raw := data[1 : 1+n]
	if isASCII(raw) {
		return string(raw), true
	}
	decoded, err := charmap.Macintosh.NewDecoder().Bytes(raw)
	if err != nil {
		return "", false
	}
	return string(decoded), true
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c >= 0x80 {
			return false
		}
	}
	return true
}
