/*
Package otquery provides typed, read-only query views over a parsed TrueType
font: header and profile information, glyph bounding boxes and statistics of
decoded outlines.

Functions in this package never modify the font and are safe to call
concurrently. Values are decoded from the raw table bytes on each call; clients
querying in loops should keep the results.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package otquery

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'tyse.fonts'
func tracer() tracing.Trace {
	return tracing.Select("tyse.fonts")
}
