package dialect

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/b71729/mavgen/internal/mavconfig"
)

const sampleDialect = `<?xml version="1.0"?>
<mavlink>
  <version>3</version>
  <enums>
    <enum name="MAV_STATE">
      <description>State flags</description>
      <entry value="0" name="MAV_STATE_UNINIT">
        <description>Uninitialized</description>
      </entry>
      <entry value="3" name="MAV_STATE_STANDBY"/>
    </enum>
  </enums>
  <messages>
    <message id="0" name="HEARTBEAT">
      <description>The heartbeat message.</description>
      <field type="uint8_t" name="type" enum="MAV_TYPE">Type of the system.</field>
      <field type="uint32_t" name="custom_mode">A bitfield.</field>
      <field type="uint16_t[2]" name="pair">Two values.</field>
    </message>
  </messages>
</mavlink>
`

func TestParseSampleDialect(t *testing.T) {
	t.Parallel()
	d, err := Parse(strings.NewReader(sampleDialect))
	require.NoError(t, err)

	require.Len(t, d.Enums, 1)
	assert.Equal(t, "MavState", d.Enums[0].Name)
	assert.Equal(t, "State flags", d.Enums[0].Description)
	require.Len(t, d.Enums[0].Entries, 2)
	assert.Equal(t, int64(0), d.Enums[0].Entries[0].Value)
	assert.Equal(t, "Uninitialized", d.Enums[0].Entries[0].Description)
	assert.Equal(t, int64(3), d.Enums[0].Entries[1].Value)

	require.Len(t, d.Messages, 1)
	m := d.Messages[0]
	assert.Equal(t, uint32(0), m.ID)
	assert.Equal(t, "HEARTBEAT", m.Name)
	assert.Equal(t, "The heartbeat message.", m.Description)

	// canonicalization already ran: widest field first.
	require.Len(t, m.Fields, 3)
	assert.Equal(t, "custom_mode", m.Fields[0].Name)
	assert.Equal(t, "pair", m.Fields[1].Name)
	assert.Equal(t, "mavtype", m.Fields[2].Name)
	assert.Equal(t, "type", m.Fields[2].OriginalName)
	assert.Equal(t, "MavType", m.Fields[2].EnumName)
}

func TestParseRejectsBadNesting(t *testing.T) {
	t.Parallel()
	const bad = `<mavlink><field type="uint8_t" name="x"/></mavlink>`
	_, err := Parse(strings.NewReader(bad))
	require.Error(t, err)
	var nestErr *BadNestingError
	assert.ErrorAs(t, err, &nestErr)
}

func TestParseRejectsBadType(t *testing.T) {
	t.Parallel()
	const bad = `<mavlink><messages><message id="1" name="X">
	  <field type="not_a_real_type" name="y"/>
	</message></messages></mavlink>`
	_, err := Parse(strings.NewReader(bad))
	require.Error(t, err)
	var typeErr *BadTypeError
	assert.ErrorAs(t, err, &typeErr)
}

func TestParseRejectsBadMessageID(t *testing.T) {
	t.Parallel()
	const bad = `<mavlink><messages><message id="not-a-number" name="X">
	</message></messages></mavlink>`
	_, err := Parse(strings.NewReader(bad))
	require.Error(t, err)
	var attrErr *BadAttributeError
	assert.ErrorAs(t, err, &attrErr)
}

func TestParseParamsPlacedByIndex(t *testing.T) {
	t.Parallel()
	const withParams = `<mavlink><enums><enum name="X"><entry name="E" value="1">
	  <param index="2">second</param>
	  <param index="1">first</param>
	</entry></enum></enums></mavlink>`
	d, err := Parse(strings.NewReader(withParams))
	require.NoError(t, err)
	require.Len(t, d.Enums, 1)
	require.Len(t, d.Enums[0].Entries, 1)
	assert.Equal(t, []string{"first", "second"}, d.Enums[0].Entries[0].Params)
}

func TestTitleCaseEnumName(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "MavType", titleCaseEnumName("MAV_TYPE"))
	assert.Equal(t, "MavAutopilot", titleCaseEnumName("MAV_AUTOPILOT"))
	assert.Equal(t, "X", titleCaseEnumName("x"))
}

// TestStrictModeRejectsDuplicateMessageID covers MAVGEN_STRICT: two
// messages declaring the same id abort the parse instead of the
// last-write-wins behavior a naive id->message map would otherwise give.
func TestStrictModeRejectsDuplicateMessageID(t *testing.T) {
	defer mavconfig.OverrideConfig(mavconfig.Config{})
	mavconfig.OverrideConfig(mavconfig.Config{StrictMode: true})

	const dup = `<mavlink><messages>
	  <message id="9" name="FIRST"><field type="uint8_t" name="a"/></message>
	  <message id="9" name="SECOND"><field type="uint8_t" name="b"/></message>
	</messages></mavlink>`
	_, err := Parse(strings.NewReader(dup))
	require.Error(t, err)
	var dupErr *DuplicateMessageIDError
	assert.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "FIRST", dupErr.First)
	assert.Equal(t, "SECOND", dupErr.Second)
}

func TestNonStrictModeAllowsDuplicateMessageID(t *testing.T) {
	defer mavconfig.OverrideConfig(mavconfig.Config{})
	mavconfig.OverrideConfig(mavconfig.Config{StrictMode: false})

	const dup = `<mavlink><messages>
	  <message id="9" name="FIRST"><field type="uint8_t" name="a"/></message>
	  <message id="9" name="SECOND"><field type="uint8_t" name="b"/></message>
	</messages></mavlink>`
	d, err := Parse(strings.NewReader(dup))
	require.NoError(t, err)
	assert.Len(t, d.Messages, 2)
}

func TestParseWireTypeGrammar(t *testing.T) {
	t.Parallel()
	wt, err := parseWireType("uint16_t[4]")
	require.NoError(t, err)
	assert.True(t, wt.IsArray())
	assert.Equal(t, 4, wt.Len)
	assert.Equal(t, 8, wt.Size())

	_, err = parseWireType("not_a_type")
	assert.Error(t, err)

	_, err = parseWireType("uint8_t[0]")
	assert.Error(t, err)
}
