package main

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/piplkit/internal/mmfile"
	"github.com/joshuapare/piplkit/pkg/pipl"
	"github.com/joshuapare/piplkit/pkg/types"
)

func init() {
	rootCmd.AddCommand(newPropsCmd())
}

func newPropsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "props <file>",
		Short: "List the PiPL properties in a resource file",
		Long: `The props command enumerates every property record found in the file's
PiPL resource, resolving documented property keys to their names.

Example:
  piplctl props Blur.rsrc
  piplctl props --json Blur.rsrc`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProps(args[0])
		},
	}
}

func runProps(path string) error {
	printVerbose("Reading resource file: %s\n", path)

	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	defer func() { _ = cleanup() }() // read-only mapping

	props, err := pipl.Properties(data, pipl.Options{AlignedProperties: aligned})
	if err != nil {
		return fmt.Errorf("scan %s: %w", path, err)
	}
	if len(props) == 0 {
		return fmt.Errorf("no PiPL properties found in %s", path)
	}

	if jsonOut {
		out := make([]map[string]interface{}, 0, len(props))
		for _, p := range props {
			entry := map[string]interface{}{
				"key":    p.Key,
				"name":   p.Name(),
				"length": len(p.Data),
			}
			if v, ok := propertyValue(p); ok {
				entry["value"] = v
			}
			out = append(out, entry)
		}
		return printJSON(out)
	}

	printInfo("%d properties:\n", len(props))
	for _, p := range props {
		label := p.Key
		if name := p.Name(); name != "" {
			label = fmt.Sprintf("%s (%s)", p.Key, name)
		}
		if v, ok := propertyValue(p); ok {
			printInfo("  %-40s %s\n", label, v)
		} else {
			printInfo("  %-40s %d bytes\n", label, len(p.Data))
		}
	}
	return nil
}

// propertyValue renders the payloads piplctl knows how to decode: the packed
// version, plugin kind codes, global out-flags words, and Pascal-string
// names and categories.
func propertyValue(p types.Property) (string, bool) {
	switch p.Key {
	case "eVER":
		if len(p.Data) < 4 {
			return "", false
		}
		return pipl.DecodeVersion(binary.BigEndian.Uint32(p.Data)).String(), true
	case "kind":
		if kind := types.KindName(string(p.Data)); kind != "" {
			return kind, true
		}
		return "", false
	case "name", "catg":
		return pipl.PascalString(p.Data)
	case "eMNA":
		if s, ok := pipl.PascalString(p.Data); ok {
			return s, true
		}
		return string(p.Data), true
	case "eINF":
		if len(p.Data) < 4 {
			return "", false
		}
		return fmt.Sprintf("%d", binary.BigEndian.Uint32(p.Data)), true
	case "eGLO":
		return flagsValue(p.Data, types.OutFlagNames)
	case "eGL2":
		return flagsValue(p.Data, types.OutFlag2Names)
	default:
		return "", false
	}
}

// flagsValue renders a 4-byte flags word as its set flag names, "0" when no
// bit is set.
func flagsValue(data []byte, names func(uint32) []string) (string, bool) {
	if len(data) < 4 {
		return "", false
	}
	set := names(binary.BigEndian.Uint32(data))
	if len(set) == 0 {
		return "0", true
	}
	return strings.Join(set, " | "), true
}
