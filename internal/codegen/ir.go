// Package codegen implements C5: it turns a canonicalized schema.Dialect
// into Go source. It never reaches for go/ast — building an AST by hand
// for generated struct/method declarations is more machinery than the
// output warrants — and instead renders a small intermediate
// representation through text/template, leaving gofmt (or go/format, if
// the caller wants it formatted) as a downstream step the caller invokes
// on the written files.
package codegen

import (
	"fmt"
	"strings"

	"github.com/b71729/mavgen/internal/canon"
	"github.com/b71729/mavgen/internal/schema"
	"github.com/b71729/mavgen/internal/wiretype"
)

// FieldIR is one canonical-order field, reduced to what the message
// template needs to declare a struct field and call into wiretype.
type FieldIR struct {
	GoName     string
	GoType     string
	EncodeFunc string
	DecodeFunc string
	Size       int
	IsArray    bool
	ArrayLen   int
	ElemGoType string
}

// MessageIR is one message, reduced to what the per-message template
// needs: its struct, ENCODED_LEN, and Encode/Decode bodies.
type MessageIR struct {
	Name        string
	StructName  string
	ID          uint32
	EncodedLen  int
	ExtraCRC    byte
	Fields      []FieldIR
	Description string
}

// EnumEntryIR is one enum variant reduced for the enum template.
type EnumEntryIR struct {
	GoName      string
	Value       int64
	Description string
}

// EnumIR is one enum, reduced for the enum template. Per spec.md §9's
// resolved open question: Bitmask marks an enum that should render as
// a bitmask type (any referencing field carried display="bitmask");
// Entries carry explicit values from the dialect, or a dense 0..n-1
// sequence when the dialect omitted them entirely.
type EnumIR struct {
	GoName      string
	Bitmask     bool
	Entries     []EnumEntryIR
	Description string
}

// DialectIR is the whole-dialect view the dispatch template needs.
type DialectIR struct {
	Messages []MessageIR
	Enums    []EnumIR
}

var goTypeByKind = map[wiretype.Kind]string{
	wiretype.KindU8Version: "uint8",
	wiretype.KindU8:        "uint8",
	wiretype.KindU16:       "uint16",
	wiretype.KindU32:       "uint32",
	wiretype.KindU64:       "uint64",
	wiretype.KindI8:        "int8",
	wiretype.KindI16:       "int16",
	wiretype.KindI32:       "int32",
	wiretype.KindI64:       "int64",
	wiretype.KindChar:      "byte",
	wiretype.KindF32:       "float32",
	wiretype.KindF64:       "float64",
}

var codecSuffixByKind = map[wiretype.Kind]string{
	wiretype.KindU8Version: "U8",
	wiretype.KindU8:        "U8",
	wiretype.KindU16:       "U16",
	wiretype.KindU32:       "U32",
	wiretype.KindU64:       "U64",
	wiretype.KindI8:        "I8",
	wiretype.KindI16:       "I16",
	wiretype.KindI32:       "I32",
	wiretype.KindI64:       "I64",
	wiretype.KindChar:      "Char",
	wiretype.KindF32:       "F32",
	wiretype.KindF64:       "F64",
}

// buildField reduces one schema.Field to a FieldIR.
func buildField(f schema.Field) FieldIR {
	if f.Type.IsArray() {
		suffix := codecSuffixByKind[f.Type.Elem.Kind]
		return FieldIR{
			GoName:     exportedName(f.Name),
			GoType:     fmt.Sprintf("[%d]%s", f.Type.Len, goTypeByKind[f.Type.Elem.Kind]),
			EncodeFunc: "wiretype.Encode" + suffix + "Array",
			DecodeFunc: "wiretype.Decode" + suffix + "Array",
			Size:       f.Type.Size(),
			IsArray:    true,
			ArrayLen:   f.Type.Len,
			ElemGoType: goTypeByKind[f.Type.Elem.Kind],
		}
	}
	suffix := codecSuffixByKind[f.Type.Kind]
	return FieldIR{
		GoName:     exportedName(f.Name),
		GoType:     goTypeByKind[f.Type.Kind],
		EncodeFunc: "wiretype.Encode" + suffix,
		DecodeFunc: "wiretype.Decode" + suffix,
		Size:       f.Type.Size(),
	}
}

// BuildMessageIR reduces a canonicalized schema.Message into a
// MessageIR ready for template rendering.
func BuildMessageIR(m schema.Message) MessageIR {
	fields := make([]FieldIR, len(m.Fields))
	for i, f := range m.Fields {
		fields[i] = buildField(f)
	}
	return MessageIR{
		Name:        m.Name,
		StructName:  m.Name + "_DATA",
		ID:          m.ID,
		EncodedLen:  canon.EncodedLen(m),
		ExtraCRC:    canon.ExtraCRC(m),
		Fields:      fields,
		Description: m.Description,
	}
}

// BuildEnumIR reduces a schema.Enum into an EnumIR. Per spec.md §9's
// resolved open question: entries keep their declared value if any
// entry in the enum declared one; otherwise the whole enum gets a
// dense 0..n-1 sequence (MAVLink dialects always declare explicit
// values in practice, but the dialect grammar permits omitting them).
func BuildEnumIR(e schema.Enum) EnumIR {
	anyExplicit := false
	for _, entry := range e.Entries {
		if entry.HasValue {
			anyExplicit = true
			break
		}
	}

	entries := make([]EnumEntryIR, len(e.Entries))
	for i, entry := range e.Entries {
		value := entry.Value
		if !anyExplicit {
			value = int64(i)
		}
		entries[i] = EnumEntryIR{
			GoName:      titleCaseUnderscored(entry.Name),
			Value:       value,
			Description: entry.Description,
		}
	}

	return EnumIR{
		GoName:      e.Name,
		Bitmask:     e.Bitmask,
		Entries:     entries,
		Description: e.Description,
	}
}

// BuildDialectIR reduces every message and enum in d into a DialectIR.
func BuildDialectIR(d schema.Dialect) DialectIR {
	messages := make([]MessageIR, len(d.Messages))
	for i, m := range d.Messages {
		messages[i] = BuildMessageIR(m)
	}
	enums := make([]EnumIR, len(d.Enums))
	for i, e := range d.Enums {
		enums[i] = BuildEnumIR(e)
	}
	return DialectIR{Messages: messages, Enums: enums}
}

// titleCaseUnderscored turns a MAVLink name like "MAV_TYPE_QUADROTOR"
// into the Go identifier "MavTypeQuadrotor".
func titleCaseUnderscored(s string) string {
	parts := strings.Split(s, "_")
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		lower := strings.ToLower(p)
		b.WriteString(strings.ToUpper(lower[:1]))
		b.WriteString(lower[1:])
	}
	return b.String()
}

// exportedName capitalizes the first letter of each underscore-separated
// part of a snake_case field name and joins the parts, so it is an
// exported Go struct field (mavtype -> Mavtype, custom_mode ->
// CustomMode).
func exportedName(name string) string {
	parts := strings.Split(name, "_")
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}
