// Package ebml implements the EBML (Extensible Binary Meta Language)
// container primitives on top of the vint subpackage's variable-length
// integer codec: element header framing, the seven leaf value codecs,
// and a schema-driven master element decoder/encoder.
//
// This package knows nothing about Matroska specifically — it is the
// generic binary framing that any EBML-based format builds on. The
// element catalogue and typed document tree for Matroska/WebM live in
// the schema and matroska subpackages.
package ebml
