/*
Package pipl extracts plugin version information from the binary resource
containers used by the After-Effects-style plugin architecture.

A plugin's capabilities, including its version, live in a PiPL (Plug-in
Property List) carried in one of two historical containers: a classic Mac
resource fork, or a flat stream of 8BIM-tagged records. The packed 32-bit
version sits under the eVER property key in either container.

# Quick Start

Extract a version from an in-memory buffer:

	res, err := pipl.ExtractVersion(data, pipl.Options{})
	if err != nil {
	    log.Fatal(err)
	}
	fmt.Printf("0x%08X -> %s\n", res.Raw, res.Version)

Or straight from a .rsrc file:

	res, err := pipl.ExtractVersionFile("Blur.rsrc", pipl.Options{})

Enumerate every property in the PiPL:

	props, err := pipl.Properties(data, pipl.Options{})
	for _, p := range props {
	    fmt.Printf("%s (%s): %d bytes\n", p.Key, p.Name(), len(p.Data))
	}

# Error Handling

Malformed, truncated, and partially corrupted containers are an expected
input class: traversal failures degrade to types.ErrNotFound. Only a buffer
too small to scan at all reports types.ErrTooShort. Both carry a stable
types.ErrKind for programmatic branching.

# Concurrency

The scanners hold no shared state; every call is a single pass over the
caller's buffer and is safe to run concurrently with other calls.
*/
package pipl
