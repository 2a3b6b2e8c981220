package ebml

// LeafKind enumerates the Matroska body types: master plus the seven
// primitive kinds. The schema catalogue tags every element definition
// with one of these. The generic master decoder does not read it; each
// caller's handle function picks the leaf codec in leaf.go for the IDs
// it knows.
type LeafKind int

const (
	KindMaster LeafKind = iota
	KindUint
	KindInt
	KindFloat
	KindString
	KindUTF8
	KindBinary
	KindDate
)

// String names a LeafKind for log and error messages.
func (k LeafKind) String() string {
	switch k {
	case KindMaster:
		return "master"
	case KindUint:
		return "uint"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindUTF8:
		return "utf8"
	case KindBinary:
		return "binary"
	case KindDate:
		return "date"
	default:
		return "unknown"
	}
}

// An "element" here is any type that carries a compile-time encoded
// ID, knows whether it has a default, and can decode/encode its own
// body. Because the seven leaf kinds decode to different Go types
// (uint64, int64, float64, string, []byte), that contract cannot be
// expressed as a single non-generic Go interface without boxing every
// value in interface{}; the schema package instead records a LeafKind
// per element, the codecs stay standalone functions in leaf.go called
// directly by the typed decoders, and a master's "own
// encoded ID" and "has default" are plain fields on its
// schema.MasterDef and schema.ElementDef. This keeps the hot decode
// path free of per-element interface dispatch.
