// Package schema holds the normalized, in-memory representation of a
// MAVLink dialect (C2): the data model that C3 builds by parsing XML and
// that C4/C5 consume. Nothing here touches XML or I/O.
package schema

import "github.com/b71729/mavgen/internal/wiretype"

// Field is one message field as declared in the dialect, before
// canonicalization reorders it.
type Field struct {
	Name         string // Go-safe name, e.g. "mavtype" for XML attr "type"
	OriginalName string // the XML-declared name, e.g. "type"
	Type         wiretype.Type
	Description  string
	EnumName     string // non-empty if this field's values are drawn from an Enum
	Display      string // the XML "display" attribute, e.g. "bitmask"
	Index        int    // declaration order, before canonicalization
}

// Message is one <message> element: an id, a name, and its fields.
// Canonicalization (C4) reorders Fields in place, and the dialect parser
// runs it as each message closes, so a parsed message's Fields are in
// canonical order; each Field's Index keeps its declaration position.
type Message struct {
	ID          uint32
	Name        string
	Description string
	Fields      []Field
}

// EnumEntry is one <entry> of an <enum>.
type EnumEntry struct {
	Value       int64
	HasValue    bool // false if the XML omitted the value attribute
	Name        string
	Description string
	Params      []string // index i holds the text of <param index="i+1">
}

// Enum is one <enum> element.
type Enum struct {
	Name        string
	Description string
	Bitmask     bool
	Entries     []EnumEntry
}

// Dialect is the fully parsed contents of one dialect XML file: every
// <message> (fields already canonicalized) and <enum> it declares.
// <include> elements are accepted by the parser but neither resolved nor
// recorded, so a Dialect only ever holds one file's declarations.
type Dialect struct {
	Version  int
	Dialect  int
	Messages []Message
	Enums    []Enum
}

// NewDialect returns a Dialect with empty, non-nil slices, matching the
// "constructors produce default-initialized values" rule: range loops and
// append calls against a fresh Dialect need no nil guard.
func NewDialect() Dialect {
	return Dialect{
		Messages: []Message{},
		Enums:    []Enum{},
	}
}

// MessageByName returns the message with the given name and whether it
// was found.
func (d Dialect) MessageByName(name string) (Message, bool) {
	for _, m := range d.Messages {
		if m.Name == name {
			return m, true
		}
	}
	return Message{}, false
}

// MessageByID returns the message with the given id and whether it was
// found.
func (d Dialect) MessageByID(id uint32) (Message, bool) {
	for _, m := range d.Messages {
		if m.ID == id {
			return m, true
		}
	}
	return Message{}, false
}

// EnumByName returns the enum with the given name and whether it was
// found.
func (d Dialect) EnumByName(name string) (Enum, bool) {
	for _, e := range d.Enums {
		if e.Name == name {
			return e, true
		}
	}
	return Enum{}, false
}
