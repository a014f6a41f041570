package types

// Property is one raw PiPL property lifted from a container: a 4-character
// key and its data bytes.
type Property struct {
	Key  string
	Data []byte
}

// Name returns the well-known name for the property's key, or "" when the
// key is not a documented PiPL property.
func (p Property) Name() string {
	return propertyNames[p.Key]
}

// Known reports whether the property's key is a documented PiPL property.
func (p Property) Known() bool {
	_, ok := propertyNames[p.Key]
	return ok
}

// propertyNames maps documented PiPL property keys to their names.
var propertyNames = map[string]string{
	"kind": "Kind",
	"name": "Name",
	"catg": "Category",
	"8664": "CodeWin64X86",   // Windows 64-bit entry point
	"mi64": "CodeMacIntel64", // Mac Intel 64-bit entry point
	"ma64": "CodeMacARM64",   // Mac ARM 64-bit entry point
	"ePVR": "AE_PiPL_Version",
	"eSVR": "AE_Effect_Spec_Version",
	"eVER": "AE_Effect_Version",
	"eINF": "AE_Effect_Info_Flags",
	"eGLO": "AE_Effect_Global_OutFlags",
	"eGL2": "AE_Effect_Global_OutFlags_2",
	"eMNA": "AE_Effect_Match_Name",
	"aeFL": "AE_Reserved_Info",
}

// KindName resolves a plugin kind code ("eFKT", "8BFM", ...) to its name,
// or "" when unrecognized.
func KindName(code string) string {
	return pluginKinds[code]
}

var pluginKinds = map[string]string{
	"eFKT": "AEEffect",
	"SPEA": "AdobeSuitePea",
	"ARPI": "AdobeIllustrator",
	"8BFM": "FilterModule",
	"8BIF": "FormatModule",
}
