// Package schema holds the generated Matroska/EBML element catalogue:
// every element's encoded ID, name, wire type, and (for masters) the
// legal child IDs grouped by cardinality. elements_gen.go is produced
// by schema/gen from a Matroska XML schema fragment; this file holds
// the hand-written types the generated data populates.
//
//go:generate go run ./gen
package schema

import "github.com/gomkv/ebml"

// ElementDef describes one leaf or master element type as the
// Matroska XML schema states it: its encoded ID, human name, wire
// kind, and whether it carries a default value that can rescue a
// missing required occurrence.
type ElementDef struct {
	ID         ebml.ElementID
	Name       string
	Kind       ebml.LeafKind
	HasDefault bool
}

// MasterDef is the per-master slice of the catalogue: which child IDs
// are legal under this master and how each one may repeat.
type MasterDef struct {
	ID       ebml.ElementID
	Name     string
	Required []ebml.ElementID
	Optional []ebml.ElementID
	Repeated []ebml.ElementID
}

// Catalogue is the full, immutable element table. Default is the
// package-wide instance built from the embedded schema fragment;
// nothing in this package constructs a second one at runtime.
type Catalogue struct {
	Elements map[ebml.ElementID]ElementDef
	Masters  map[ebml.ElementID]MasterDef
}

// Lookup returns the element definition for id, if the catalogue
// knows it.
func (c *Catalogue) Lookup(id ebml.ElementID) (ElementDef, bool) {
	def, ok := c.Elements[id]
	return def, ok
}

// MasterSpec renders a MasterDef as the ebml.MasterSpec the generic
// master decoder/encoder needs, tagging every listed child with its
// cardinality.
func (c *Catalogue) MasterSpec(id ebml.ElementID) (ebml.MasterSpec, bool) {
	m, ok := c.Masters[id]
	if !ok {
		return ebml.MasterSpec{}, false
	}
	children := make(map[ebml.ElementID]ebml.ChildRule, len(m.Required)+len(m.Optional)+len(m.Repeated))
	for _, childID := range m.Required {
		def := c.Elements[childID]
		children[childID] = ebml.ChildRule{Cardinality: ebml.Required, HasDefault: def.HasDefault}
	}
	for _, childID := range m.Optional {
		children[childID] = ebml.ChildRule{Cardinality: ebml.Optional}
	}
	for _, childID := range m.Repeated {
		children[childID] = ebml.ChildRule{Cardinality: ebml.Repeated}
	}
	return ebml.MasterSpec{ID: id, Children: children}, true
}

// Name returns the schema name for id, or its hex form if the
// catalogue does not recognize it.
func (c *Catalogue) Name(id ebml.ElementID) string {
	if def, ok := c.Elements[id]; ok {
		return def.Name
	}
	return id.String()
}
