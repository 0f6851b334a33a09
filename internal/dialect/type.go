package dialect

import (
	"strconv"
	"strings"

	"github.com/b71729/mavgen/internal/wiretype"
)

var baseKindByName = map[string]wiretype.Kind{
	"uint8_t_mavlink_version": wiretype.KindU8Version,
	"uint8_t":                 wiretype.KindU8,
	"uint16_t":                wiretype.KindU16,
	"uint32_t":                wiretype.KindU32,
	"uint64_t":                wiretype.KindU64,
	"int8_t":                  wiretype.KindI8,
	"int16_t":                 wiretype.KindI16,
	"int32_t":                 wiretype.KindI32,
	"int64_t":                 wiretype.KindI64,
	"char":                    wiretype.KindChar,
	"float":                   wiretype.KindF32,
	"Double":                  wiretype.KindF64,
}

// parseWireType parses the field type grammar from spec.md §6:
// IDENT ( '[' DECIMAL ']' )?.
func parseWireType(s string) (wiretype.Type, error) {
	base := s
	arrayLen := -1
	if i := strings.IndexByte(s, '['); i >= 0 {
		if !strings.HasSuffix(s, "]") {
			return wiretype.Type{}, &BadTypeError{Type: s}
		}
		base = s[:i]
		n, err := strconv.Atoi(s[i+1 : len(s)-1])
		if err != nil {
			return wiretype.Type{}, &BadTypeError{Type: s}
		}
		arrayLen = n
	}

	kind, ok := baseKindByName[base]
	if !ok {
		return wiretype.Type{}, &BadTypeError{Type: s}
	}
	elem := wiretype.Type{Kind: kind}
	if arrayLen < 0 {
		return elem, nil
	}
	if arrayLen < 1 || arrayLen > 255 {
		return wiretype.Type{}, &BadTypeError{Type: s}
	}
	return wiretype.NewArray(elem, arrayLen), nil
}

// titleCaseEnumName applies spec.md §4.3's enum-attribute transform: split
// on '_', lowercase each part, capitalize its first letter, join with no
// separator. "MAV_TYPE" -> "MavType".
func titleCaseEnumName(s string) string {
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

// renameField applies the one fixed field-name rename from spec.md §4.3:
// an XML field named "type" is exposed as "mavtype" in the generated
// record, though the original name still feeds the extra-CRC input.
func renameField(originalName string) string {
	if originalName == "type" {
		return "mavtype"
	}
	return originalName
}
