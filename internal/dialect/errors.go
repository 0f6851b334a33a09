package dialect

import "fmt"

// BadNestingError reports a start-element that is not a permitted child of
// the current top of stack.
type BadNestingError struct {
	Offset int64
	Child  string
	Parent string
}

func (e *BadNestingError) Error() string {
	return fmt.Sprintf("dialect: offset %d: <%s> is not valid inside <%s>", e.Offset, e.Child, e.Parent)
}

// BadTypeError reports a field's type attribute that does not match the
// wire-type grammar from spec.md §6.
type BadTypeError struct {
	Offset int64
	Type   string
}

func (e *BadTypeError) Error() string {
	return fmt.Sprintf("dialect: offset %d: unknown primitive type %q", e.Offset, e.Type)
}

// BadAttributeError reports a required attribute that is missing or fails
// to parse (e.g. message id, entry value, param index). A bad field array
// length is reported as a BadTypeError instead.
type BadAttributeError struct {
	Offset  int64
	Element string
	Attr    string
	Reason  string
}

func (e *BadAttributeError) Error() string {
	return fmt.Sprintf("dialect: offset %d: <%s> attribute %q: %s", e.Offset, e.Element, e.Attr, e.Reason)
}

// DuplicateMessageIDError reports a message id already claimed by an
// earlier message in the same dialect. Only raised in strict mode
// (mavconfig.Config.StrictMode); by default the parser keeps the
// last-write-wins behavior a naive id->message map would give.
type DuplicateMessageIDError struct {
	Offset int64
	ID     uint32
	First  string
	Second string
}

func (e *DuplicateMessageIDError) Error() string {
	return fmt.Sprintf("dialect: offset %d: message %q reuses id %d already claimed by %q", e.Offset, e.Second, e.ID, e.First)
}
