// Package featstore persists the typed parameter sets of feature-detector
// configurations.
//
// - A Schema is the fixed, ordered parameter catalogue of one variant
//   (type tag, optional format version, fields with kind, width and default).
// - A Document is a snapshot of parameter values conforming to a Schema.
// - Codecs (see the codec package) turn Documents into byte-exact text and
//   back, reporting problems as Issues (path, code, message, line).
//
// Design policy:
// - Keep the data model and error model in the root package; put codecs under
//   codec/, the per-variant tables under features2d/ and implementation
//   details under internal/.
// - Schemas are static: build them once, register them, never mutate them.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	s := featstore.NewSchema("Feature2D.BRISK").
//		Int("threshold", 30).
//		Int("octaves", 3).
//		Float32("patternScale", 1).
//		MustBuild()
//	doc := s.Defaults()
//	text, _ := codec.YAML().Encode(doc, featstore.EncodeOpt{})
//	dec, err := codec.YAML().Decode(text, s, featstore.DefaultParseOpt())
package featstore
