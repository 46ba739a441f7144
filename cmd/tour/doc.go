// Command tour runs the built-in demonstration sections in order and prints
// their output to stdout.
//
// Usage:
//
//	tour [flags]
//
// Flags:
//
//	--config    path to a YAML config file (sections, sample file, colors)
//	--only      run only the named sections, in the given order
//	--verbose   enable debug logging
//	--no-color  disable styled output
//
// Examples:
//
//	tour
//	tour --only taxonomy,wrapping
//	tour --config tour.yaml --verbose
//
// Section selection precedence: --only beats the config file; the config
// file beats "run everything". Environment overrides (TOUR_SECTIONS,
// TOUR_SAMPLE_FILE, TOUR_KEEP_SAMPLE, TOUR_NO_COLOR) are applied by the
// config loader.
package main
