package dialect

// elementKind is one of the closed set of element names a dialect file may
// contain, per spec.md §4.3. root is a synthetic kind used only as the
// base of the stack, standing in for "no enclosing element yet".
type elementKind int

const (
	kindRoot elementKind = iota
	kindMavlink
	kindVersion
	kindInclude
	kindEnums
	kindEnum
	kindEntry
	kindDescription
	kindParam
	kindMessages
	kindMessage
	kindField
	kindDeprecated
	kindWip
	kindExtensions
)

var elementNames = map[elementKind]string{
	kindRoot:        "(root)",
	kindMavlink:     "mavlink",
	kindVersion:     "version",
	kindInclude:     "include",
	kindEnums:       "enums",
	kindEnum:        "enum",
	kindEntry:       "entry",
	kindDescription: "description",
	kindParam:       "param",
	kindMessages:    "messages",
	kindMessage:     "message",
	kindField:       "field",
	kindDeprecated:  "deprecated",
	kindWip:         "wip",
	kindExtensions:  "extensions",
}

var kindsByName = func() map[string]elementKind {
	m := make(map[string]elementKind, len(elementNames))
	for k, name := range elementNames {
		m[name] = k
	}
	return m
}()

// allowedParents is the static nesting-validation table from spec.md §6:
// for each child kind, the set of kinds it may directly nest under.
var allowedParents = map[elementKind]map[elementKind]bool{
	kindMavlink:     {kindRoot: true},
	kindVersion:     {kindMavlink: true},
	kindInclude:     {kindMavlink: true},
	kindEnums:       {kindMavlink: true},
	kindMessages:    {kindMavlink: true},
	kindEnum:        {kindEnums: true},
	kindEntry:       {kindEnum: true},
	kindParam:       {kindEntry: true},
	kindDescription: {kindEntry: true, kindMessage: true, kindEnum: true},
	kindDeprecated:  {kindEntry: true, kindMessage: true, kindEnum: true},
	kindWip:         {kindEntry: true, kindMessage: true, kindEnum: true},
	kindMessage:     {kindMessages: true},
	kindField:       {kindMessage: true},
	kindExtensions:  {kindMessage: true},
}

// validParent reports whether child may directly nest under parent.
func validParent(child, parent elementKind) bool {
	parents, ok := allowedParents[child]
	if !ok {
		return false
	}
	return parents[parent]
}
