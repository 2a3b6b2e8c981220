// Command gen reads matroska.xml and writes ../elements_gen.go.
//
// Invoke it via "go generate ./schema/...".
package main

import (
	_ "embed"
	"encoding/xml"
	"fmt"
	"go/format"
	"os"
	"strings"
)

//go:embed matroska.xml
var schemaXML []byte

type xmlElement struct {
	Name     string `xml:"name,attr"`
	ID       string `xml:"id,attr"`
	Type     string `xml:"type,attr"`
	Default  string `xml:"default,attr"`
	Required string `xml:"required,attr"`
	Optional string `xml:"optional,attr"`
	Repeated string `xml:"repeated,attr"`
}

type xmlSchema struct {
	Elements []xmlElement `xml:"element"`
}

var kindFor = map[string]string{
	"uint":   "ebml.KindUint",
	"int":    "ebml.KindInt",
	"float":  "ebml.KindFloat",
	"string": "ebml.KindString",
	"utf8":   "ebml.KindUTF8",
	"binary": "ebml.KindBinary",
	"date":   "ebml.KindDate",
	"master": "ebml.KindMaster",
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "gen:", err)
		os.Exit(1)
	}
}

func run() error {
	var schema xmlSchema
	if err := xml.Unmarshal(schemaXML, &schema); err != nil {
		return fmt.Errorf("parse matroska.xml: %w", err)
	}

	var b strings.Builder
	b.WriteString("// Code generated by schema/gen from matroska.xml. DO NOT EDIT.\n\n")
	b.WriteString("package schema\n\n")
	b.WriteString("import \"github.com/gomkv/ebml\"\n\n")

	writeConsts(&b, schema.Elements)
	b.WriteString("\n// Default is the package-wide catalogue built from the embedded\n")
	b.WriteString("// schema fragment. Regenerating against a fuller matroska.xml changes\n")
	b.WriteString("// only the ID constants and the elementDefs/masterDefs tables, never\n")
	b.WriteString("// this variable or the types in schema.go.\n")
	b.WriteString("var Default = &Catalogue{\n\tElements: elementDefs,\n\tMasters:  masterDefs,\n}\n\n")

	writeElementDefs(&b, schema.Elements)
	writeMasterDefs(&b, schema.Elements)

	out, err := format.Source([]byte(b.String()))
	if err != nil {
		return fmt.Errorf("gofmt generated source: %w", err)
	}
	// go generate runs this command from the schema directory.
	return os.WriteFile("elements_gen.go", out, 0644)
}

func writeConsts(b *strings.Builder, elems []xmlElement) {
	b.WriteString("// Element ID constants, encoded form (leading marker bit included).\n")
	b.WriteString("const (\n")
	for _, e := range elems {
		fmt.Fprintf(b, "\tID%s ebml.ElementID = %s\n", e.Name, e.ID)
	}
	b.WriteString(")\n")
}

func writeElementDefs(b *strings.Builder, elems []xmlElement) {
	b.WriteString("var elementDefs = map[ebml.ElementID]ElementDef{\n")
	for _, e := range elems {
		hasDefault := e.Default != ""
		fmt.Fprintf(b, "\tID%s: {ID: ID%s, Name: %q, Kind: %s, HasDefault: %v},\n",
			e.Name, e.Name, e.Name, kindFor[e.Type], hasDefault)
	}
	b.WriteString("}\n\n")
}

func writeMasterDefs(b *strings.Builder, elems []xmlElement) {
	b.WriteString("var masterDefs = map[ebml.ElementID]MasterDef{\n")
	for _, e := range elems {
		if e.Type != "master" {
			continue
		}
		if e.Required == "" && e.Optional == "" && e.Repeated == "" {
			continue
		}
		fmt.Fprintf(b, "\tID%s: {\n\t\tID: ID%s,\n\t\tName: %q,\n", e.Name, e.Name, e.Name)
		writeIDList(b, "Required", e.Required)
		writeIDList(b, "Optional", e.Optional)
		writeIDList(b, "Repeated", e.Repeated)
		b.WriteString("\t},\n")
	}
	b.WriteString("}\n")
}

func writeIDList(b *strings.Builder, field, csv string) {
	if csv == "" {
		return
	}
	names := strings.Split(csv, ",")
	for i, n := range names {
		names[i] = "ID" + n
	}
	fmt.Fprintf(b, "\t\t%s: []ebml.ElementID{%s},\n", field, strings.Join(names, ", "))
}
