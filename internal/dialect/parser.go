package dialect

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"github.com/b71729/mavgen/internal/canon"
	"github.com/b71729/mavgen/internal/mavconfig"
	"github.com/b71729/mavgen/internal/schema"
)

// frame holds the per-element state pushed onto the parser's stack: its
// kind and an accumulator for character data seen directly inside it.
type frame struct {
	kind elementKind
	text strings.Builder
}

// Parser streams a dialect XML document into a schema.Dialect, per
// spec.md §4.3. It never buffers the whole document; it consumes tokens
// one at a time from the underlying xml.Decoder.
type Parser struct {
	dec   *xml.Decoder
	stack []frame

	dialect schema.Dialect

	curMessage *schema.Message
	curEnum    *schema.Enum
	curField   *schema.Field
	curEntry   *schema.EnumEntry
	curParamIx int // 1-based index attribute of the <param> currently open

	strict  bool
	seenIDs map[uint32]string // id -> name of the message that first claimed it; only populated in strict mode
}

// NewParser wraps r for streaming parse. Strictness (whether a reused
// message id aborts the parse) is read once from mavconfig.GetConfig()
// at construction time, matching MAVGEN_STRICT.
func NewParser(r io.Reader) *Parser {
	return &Parser{
		dec:     xml.NewDecoder(r),
		dialect: schema.NewDialect(),
		strict:  mavconfig.GetConfig().StrictMode,
		seenIDs: map[uint32]string{},
	}
}

// Parse consumes the entire document and returns the resulting dialect,
// or the first error encountered. The parser's own error types carry the
// decoder's byte offset; malformed XML is reported by the encoding/xml
// error as returned, which carries a line number rather than an offset.
func Parse(r io.Reader) (schema.Dialect, error) {
	p := NewParser(r)
	return p.Parse()
}

func (p *Parser) top() elementKind {
	if len(p.stack) == 0 {
		return kindRoot
	}
	return p.stack[len(p.stack)-1].kind
}

func (p *Parser) parent() elementKind {
	if len(p.stack) < 2 {
		return kindRoot
	}
	return p.stack[len(p.stack)-2].kind
}

// Parse runs the token loop to completion.
func (p *Parser) Parse() (schema.Dialect, error) {
	for {
		tok, err := p.dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return schema.Dialect{}, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if err := p.startElement(t); err != nil {
				return schema.Dialect{}, err
			}
		case xml.EndElement:
			if err := p.endElement(t); err != nil {
				return schema.Dialect{}, err
			}
		case xml.CharData:
			p.charData(t)
		}
	}
	p.resolveBitmasks()
	return p.dialect, nil
}

// resolveBitmasks marks every enum referenced by a field carrying
// display="bitmask" as a bitmask enum. A field's enum attribute can
// name an enum declared anywhere in the document, so this runs once
// the whole dialect is assembled rather than as each message closes.
func (p *Parser) resolveBitmasks() {
	bitmaskNames := map[string]bool{}
	for _, m := range p.dialect.Messages {
		for _, f := range m.Fields {
			if f.EnumName != "" && f.Display == "bitmask" {
				bitmaskNames[f.EnumName] = true
			}
		}
	}
	for i := range p.dialect.Enums {
		if bitmaskNames[p.dialect.Enums[i].Name] {
			p.dialect.Enums[i].Bitmask = true
		}
	}
}

func (p *Parser) offset() int64 {
	return p.dec.InputOffset()
}

func (p *Parser) startElement(se xml.StartElement) error {
	kind, ok := kindsByName[se.Name.Local]
	if !ok {
		return &BadNestingError{Offset: p.offset(), Child: se.Name.Local, Parent: elementNames[p.top()]}
	}
	if !validParent(kind, p.top()) {
		return &BadNestingError{Offset: p.offset(), Child: se.Name.Local, Parent: elementNames[p.top()]}
	}

	switch kind {
	case kindMessage:
		m := schema.Message{}
		id, err := attrUint32(se, "id")
		if err != nil {
			return &BadAttributeError{Offset: p.offset(), Element: "message", Attr: "id", Reason: err.Error()}
		}
		m.ID = id
		m.Name = attrString(se, "name")
		p.curMessage = &m
	case kindField:
		f := schema.Field{}
		original := attrString(se, "name")
		f.OriginalName = original
		f.Name = renameField(original)
		f.Index = len(p.curMessage.Fields)
		typeAttr := attrString(se, "type")
		wt, err := parseWireType(typeAttr)
		if err != nil {
			if bt, ok := err.(*BadTypeError); ok {
				bt.Offset = p.offset()
				return bt
			}
			return err
		}
		f.Type = wt
		if enumAttr := attrString(se, "enum"); enumAttr != "" {
			f.EnumName = titleCaseEnumName(enumAttr)
		}
		f.Display = attrString(se, "display")
		p.curField = &f
	case kindEnum:
		// Stored TitleCased so it matches field.EnumName, which a
		// referencing <field enum="..."> attribute also TitleCases.
		e := schema.Enum{Name: titleCaseEnumName(attrString(se, "name"))}
		p.curEnum = &e
	case kindEntry:
		entry := schema.EnumEntry{Name: attrString(se, "name")}
		if v := attrString(se, "value"); v != "" {
			n, err := strconv.ParseInt(v, 0, 64)
			if err != nil {
				return &BadAttributeError{Offset: p.offset(), Element: "entry", Attr: "value", Reason: err.Error()}
			}
			entry.Value = n
			entry.HasValue = true
		}
		p.curEntry = &entry
	case kindParam:
		idxAttr := attrString(se, "index")
		n, err := strconv.Atoi(idxAttr)
		if err != nil || n < 1 {
			return &BadAttributeError{Offset: p.offset(), Element: "param", Attr: "index", Reason: "must be a positive integer"}
		}
		p.curParamIx = n
	}

	p.stack = append(p.stack, frame{kind: kind})
	return nil
}

func (p *Parser) charData(cd xml.CharData) {
	if len(p.stack) == 0 {
		return
	}
	top := &p.stack[len(p.stack)-1]
	top.text.Write(cd)
}

func (p *Parser) endElement(ee xml.EndElement) error {
	if len(p.stack) == 0 {
		return &BadNestingError{Offset: p.offset(), Child: ee.Name.Local, Parent: elementNames[kindRoot]}
	}
	f := p.stack[len(p.stack)-1]
	text := collapseNewlines(f.text.String())
	parent := p.parent()

	switch f.kind {
	case kindField:
		p.curField.Description = text
		p.curMessage.Fields = append(p.curMessage.Fields, *p.curField)
		p.curField = nil
	case kindEntry:
		p.curEnum.Entries = append(p.curEnum.Entries, *p.curEntry)
		p.curEntry = nil
	case kindMessage:
		if p.strict {
			if first, dup := p.seenIDs[p.curMessage.ID]; dup {
				return &DuplicateMessageIDError{
					Offset: p.offset(),
					ID:     p.curMessage.ID,
					First:  first,
					Second: p.curMessage.Name,
				}
			}
			p.seenIDs[p.curMessage.ID] = p.curMessage.Name
		}
		canon.Canonicalize(p.curMessage)
		p.dialect.Messages = append(p.dialect.Messages, *p.curMessage)
		p.curMessage = nil
	case kindEnum:
		p.dialect.Enums = append(p.dialect.Enums, *p.curEnum)
		p.curEnum = nil
	case kindDescription:
		switch parent {
		case kindMessage:
			p.curMessage.Description = text
		case kindEnum:
			p.curEnum.Description = text
		case kindEntry:
			p.curEntry.Description = text
		}
	case kindParam:
		if parent == kindEntry {
			p.setEntryParam(p.curParamIx, text)
		}
	}

	p.stack = p.stack[:len(p.stack)-1]
	return nil
}

// setEntryParam places text at index-1 in curEntry.Params, growing the
// slice as needed (param elements need not appear in index order).
func (p *Parser) setEntryParam(index int, text string) {
	if index < 1 {
		return
	}
	for len(p.curEntry.Params) < index {
		p.curEntry.Params = append(p.curEntry.Params, "")
	}
	p.curEntry.Params[index-1] = text
}

func collapseNewlines(s string) string {
	replacer := strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")
	collapsed := replacer.Replace(s)
	return strings.TrimSpace(collapsed)
}

func attrString(se xml.StartElement, name string) string {
	for _, a := range se.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

func attrUint32(se xml.StartElement, name string) (uint32, error) {
	v := attrString(se, name)
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(n), nil
}
