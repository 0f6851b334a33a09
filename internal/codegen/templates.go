package codegen

import "text/template"

// messageTemplate renders one message's generated artifact: its record
// type, ENCODED_LEN, and Encode/Decode per spec.md §4.5.
var messageTemplate = template.Must(template.New("message").Parse(
	`// Code generated by mavgen. DO NOT EDIT.

package mavcommon

import "github.com/b71729/mavgen/internal/wiretype"

{{if .Description}}// {{.StructName}} is the {{.Name}} message.
// {{.Description}}{{end}}
type {{.StructName}} struct {
{{- range .Fields}}
	{{.GoName}} {{.GoType}}
{{- end}}
}

// {{.Name}}_ENCODED_LEN is the wire size of {{.StructName}}, in bytes.
const {{.Name}}_ENCODED_LEN = {{.EncodedLen}}

// {{.Name}}_MESSAGE_ID is the message id {{.StructName}} dispatches on.
const {{.Name}}_MESSAGE_ID = {{.ID}}

// {{.Name}}_EXTRA_CRC is the extra-CRC byte fed into every frame carrying
// this message, per the canonical field order below.
const {{.Name}}_EXTRA_CRC = {{.ExtraCRC}}

// MessageID returns the wire id of v.
func (v *{{.StructName}}) MessageID() uint32 {
	return {{.Name}}_MESSAGE_ID
}

// Encode writes v's fields, in canonical order, to out. It returns the
// number of bytes written, or a *wiretype.ShortBufferError if out is too
// small.
func (v *{{.StructName}}) Encode(out []byte) (int, error) {
	offset := 0
	var n int
	var err error
{{range .Fields}}
	{{if .IsArray}}n, err = {{.EncodeFunc}}(v.{{.GoName}}[:], out[offset:]){{else}}n, err = {{.EncodeFunc}}(v.{{.GoName}}, out[offset:]){{end}}
	if err != nil {
		return offset, err
	}
	offset += n
{{end}}
	return offset, nil
}

// EncodeMessage allocates a fresh buffer sized to {{.Name}}_ENCODED_LEN and
// encodes v into it.
func (v *{{.StructName}}) EncodeMessage() ([]byte, error) {
	buf := make([]byte, {{.Name}}_ENCODED_LEN)
	n, err := v.Encode(buf)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}

// Decode{{.StructName}} reads a {{.StructName}} from in, in canonical field
// order. It returns the number of bytes consumed, or a
// *wiretype.ShortBufferError if in under-runs.
func Decode{{.StructName}}(in []byte) ({{.StructName}}, int, error) {
	var v {{.StructName}}
	offset := 0
	var n int
	var err error
{{range .Fields}}
	{{if .IsArray}}var arr{{.GoName}} []{{.ElemGoType}}
	arr{{.GoName}}, n, err = {{.DecodeFunc}}(in[offset:], {{.ArrayLen}})
	if err != nil {
		return v, offset, err
	}
	copy(v.{{.GoName}}[:], arr{{.GoName}})
	offset += n
	{{else}}v.{{.GoName}}, n, err = {{.DecodeFunc}}(in[offset:])
	if err != nil {
		return v, offset, err
	}
	offset += n
	{{end}}
{{end}}
	return v, offset, nil
}
`))

// enumTemplate renders one enum's generated artifact, per the resolved
// open question in spec.md §9: dense variants when the dialect omitted
// values, explicit values otherwise. A bitmask enum (any referencing
// field carried display="bitmask") gets the same uint32 declaration as
// any other enum; only its doc comment gains a line marking it a bitmask.
var enumTemplate = template.Must(template.New("enum").Parse(
	`// Code generated by mavgen. DO NOT EDIT.

package mavcommon

{{if .Description}}// {{.GoName}} is the {{.Description}}{{else}}// {{.GoName}} is a generated enum.{{end}}
{{if .Bitmask}}// It is a bitmask: entries are intended to be OR'd together.
{{end}}type {{.GoName}} uint32

const (
{{- range .Entries}}
	{{.GoName}} {{$.GoName}} = {{.Value}}
{{- end}}
)
`))

// dispatchTemplate renders the single union/dispatch artifact covering
// every message in the dialect, per spec.md §4.5.
var dispatchTemplate = template.Must(template.New("dispatch").Parse(
	`// Code generated by mavgen. DO NOT EDIT.

package mavcommon

import "fmt"

// Message is the tagged-union interface every generated *_DATA type
// satisfies: a dispatchable message id and a self-contained encoder.
type Message interface {
	MessageID() uint32
	EncodeMessage() ([]byte, error)
}

// UnknownMsgIdError reports a message id the dispatcher has no variant
// for.
type UnknownMsgIdError struct {
	ID uint32
}

func (e *UnknownMsgIdError) Error() string {
	return fmt.Sprintf("mavcommon: unknown message id %d", e.ID)
}

// DecodeMessage matches id to a registered variant and decodes payload
// into it. An id with no variant fails with *UnknownMsgIdError; a
// payload too short for its variant fails with *wiretype.ShortBufferError.
func DecodeMessage(id uint32, payload []byte) (Message, error) {
	switch id {
{{- range .Messages}}
	case {{.Name}}_MESSAGE_ID:
		v, _, err := Decode{{.StructName}}(payload)
		if err != nil {
			return nil, err
		}
		return &v, nil
{{- end}}
	default:
		return nil, &UnknownMsgIdError{ID: id}
	}
}

// ExtraCRC looks up the extra-CRC byte for a message id. ok is false
// for an id with no registered variant: the frame reader treats that
// as an unknown message id rather than guessing at a CRC (a legitimate
// extra-CRC byte can itself be zero, so a bare zero return would be
// ambiguous).
func ExtraCRC(id uint32) (extra byte, ok bool) {
	switch id {
{{- range .Messages}}
	case {{.Name}}_MESSAGE_ID:
		return {{.Name}}_EXTRA_CRC, true
{{- end}}
	default:
		return 0, false
	}
}
`))
