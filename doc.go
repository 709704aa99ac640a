// Package njson is a small reflection-driven JSON decoder. It converts a
// JSON document into a statically-typed destination (struct, slice, map or
// primitive) or, when no type is given, into a dynamic tree of generic
// containers.
//
// The decoder normalizes the document once, then walks fragments of the
// compact text with a recursive-descent dispatcher directed by the
// destination type. Struct members are resolved through a process-wide
// descriptor cache and assigned via xunsafe field offsets, bypassing any
// per-field reflection on the hot path.
//
// By default the decoder is permissive: shape mismatches and numeric parse
// failures degrade to zero values and null yields the destination's
// default, so Decode only fails for destinations no instance can be built
// for. ModeStrict reports the same conditions as errors instead.
package njson
