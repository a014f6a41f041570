package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/piplkit/pkg/pipl"
)

func init() {
	rootCmd.AddCommand(newVersionCmd())
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version <file>",
		Short: "Extract the plugin version from a resource file",
		Long: `The version command locates the eVER property inside the file's PiPL
resource and decodes the packed version integer.

Example:
  piplctl version Blur.rsrc
  piplctl version --aligned Blur.rsrc
  piplctl version --json Blur.rsrc`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersion(args[0])
		},
	}
}

func runVersion(path string) error {
	printVerbose("Reading resource file: %s\n", path)

	res, err := pipl.ExtractVersionFile(path, pipl.Options{AlignedProperties: aligned})
	if err != nil {
		return fmt.Errorf("extract version from %s: %w", path, err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":       path,
			"raw":        fmt.Sprintf("0x%08X", res.Raw),
			"version":    res.Version.Version,
			"subversion": res.Version.Subversion,
			"bugfix":     res.Version.Bugfix,
			"stage":      res.Version.Stage.String(),
			"build":      res.Version.Build,
			"full":       res.Version.String(),
		})
	}

	printInfo("Raw encoded version: 0x%08X\n", res.Raw)
	printInfo("Decoded version information:\n")
	printInfo("  Version: %d\n", res.Version.Version)
	printInfo("  Subversion: %d\n", res.Version.Subversion)
	printInfo("  Bugfix: %d\n", res.Version.Bugfix)
	printInfo("  Stage: %s\n", res.Version.Stage)
	printInfo("  Build: %d\n", res.Version.Build)
	printInfo("  Full version: %s\n", res.Version)
	return nil
}
