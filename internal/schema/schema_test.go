package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/b71729/mavgen/internal/wiretype"
)

func TestNewDialectIsEmptyNotNil(t *testing.T) {
	t.Parallel()
	d := NewDialect()
	assert.Len(t, d.Messages, 0)
	assert.Len(t, d.Enums, 0)
	assert.NotNil(t, d.Messages)
	assert.NotNil(t, d.Enums)
}

func TestMessageLookup(t *testing.T) {
	t.Parallel()
	d := NewDialect()
	d.Messages = append(d.Messages, Message{
		ID:   0,
		Name: "HEARTBEAT",
		Fields: []Field{
			{Name: "mavtype", OriginalName: "type", Type: wiretype.Type{Kind: wiretype.KindU8}},
		},
	})

	m, ok := d.MessageByName("HEARTBEAT")
	assert.True(t, ok)
	assert.Equal(t, uint32(0), m.ID)
	assert.Equal(t, "mavtype", m.Fields[0].Name)
	assert.Equal(t, "type", m.Fields[0].OriginalName)

	m, ok = d.MessageByID(0)
	assert.True(t, ok)
	assert.Equal(t, "HEARTBEAT", m.Name)

	_, ok = d.MessageByName("NO_SUCH_MESSAGE")
	assert.False(t, ok)
}

func TestEnumLookup(t *testing.T) {
	t.Parallel()
	d := NewDialect()
	d.Enums = append(d.Enums, Enum{
		Name: "MAV_STATE",
		Entries: []EnumEntry{
			{Value: 0, Name: "MAV_STATE_UNINIT"},
		},
	})

	e, ok := d.EnumByName("MAV_STATE")
	assert.True(t, ok)
	assert.Equal(t, "MAV_STATE_UNINIT", e.Entries[0].Name)

	_, ok = d.EnumByName("MAV_NOPE")
	assert.False(t, ok)
}
