package canon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/b71729/mavgen/internal/schema"
	"github.com/b71729/mavgen/internal/wiretype"
)

// TestCanonicalOrderSeedVectorS6 reproduces spec's S6 seed vector: a
// message declared {u8 a, u32 b, u16 c} canonicalizes to {u32 b, u16 c,
// u8 a}, with ENCODED_LEN 7.
func TestCanonicalOrderSeedVectorS6(t *testing.T) {
	t.Parallel()
	m := schema.Message{
		Name: "S6_TEST",
		Fields: []schema.Field{
			{Name: "a", OriginalName: "a", Type: wiretype.Type{Kind: wiretype.KindU8}},
			{Name: "b", OriginalName: "b", Type: wiretype.Type{Kind: wiretype.KindU32}},
			{Name: "c", OriginalName: "c", Type: wiretype.Type{Kind: wiretype.KindU16}},
		},
	}

	Canonicalize(&m)

	assert.Equal(t, []string{"b", "c", "a"}, fieldNames(m))
	assert.Equal(t, 7, EncodedLen(m))
}

func TestCanonicalOrderInvariant(t *testing.T) {
	t.Parallel()
	m := schema.Message{
		Name: "MIXED",
		Fields: []schema.Field{
			{Name: "f1", Type: wiretype.Type{Kind: wiretype.KindU8}},
			{Name: "f2", Type: wiretype.Type{Kind: wiretype.KindU64}},
			{Name: "f3", Type: wiretype.Type{Kind: wiretype.KindU16}},
			{Name: "f4", Type: wiretype.Type{Kind: wiretype.KindU32}},
			{Name: "f5", Type: wiretype.Type{Kind: wiretype.KindI8}},
		},
	}
	Canonicalize(&m)
	for i := 1; i < len(m.Fields); i++ {
		assert.GreaterOrEqual(t, m.Fields[i-1].Type.OrderClass(), m.Fields[i].Type.OrderClass())
	}
}

// TestExtraCRCIndependentOfDeclarationOrder covers property #7: extra-CRC
// depends on names/types, not on XML declaration order, since
// canonicalization runs before the CRC walk.
func TestExtraCRCIndependentOfDeclarationOrder(t *testing.T) {
	t.Parallel()
	fieldA := schema.Field{Name: "a", OriginalName: "a", Type: wiretype.Type{Kind: wiretype.KindU8}}
	fieldB := schema.Field{Name: "b", OriginalName: "b", Type: wiretype.Type{Kind: wiretype.KindU32}}

	m1 := schema.Message{Name: "ORDER_TEST", Fields: []schema.Field{fieldA, fieldB}}
	m2 := schema.Message{Name: "ORDER_TEST", Fields: []schema.Field{fieldB, fieldA}}
	Canonicalize(&m1)
	Canonicalize(&m2)

	assert.Equal(t, ExtraCRC(m1), ExtraCRC(m2))
}

// TestExtraCRCRenameAsymmetry covers property #8: a field renamed
// type->mavtype still feeds "type" into the CRC input.
func TestExtraCRCRenameAsymmetry(t *testing.T) {
	t.Parallel()
	withOriginal := schema.Message{
		Name: "RENAME_TEST",
		Fields: []schema.Field{
			{Name: "mavtype", OriginalName: "type", Type: wiretype.Type{Kind: wiretype.KindU8}},
		},
	}
	withRenamedOriginal := schema.Message{
		Name: "RENAME_TEST",
		Fields: []schema.Field{
			{Name: "mavtype", OriginalName: "mavtype", Type: wiretype.Type{Kind: wiretype.KindU8}},
		},
	}

	assert.NotEqual(t, ExtraCRC(withOriginal), ExtraCRC(withRenamedOriginal))
}

func fieldNames(m schema.Message) []string {
	names := make([]string, len(m.Fields))
	for i, f := range m.Fields {
		names[i] = f.Name
	}
	return names
}
