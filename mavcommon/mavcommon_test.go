package mavcommon

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/b71729/mavgen/internal/frame"
)

func TestHeartbeatEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()
	v := HEARTBEAT_DATA{
		CustomMode:     5,
		Mavtype:        uint8(MavTypeQuadrotor),
		Autopilot:      uint8(MavAutopilotArdupilotmega),
		BaseMode:       0x59,
		SystemStatus:   uint8(MavStateStandby),
		MavlinkVersion: 3,
	}
	buf := make([]byte, HEARTBEAT_ENCODED_LEN)
	n, err := v.Encode(buf)
	require.NoError(t, err)
	assert.Equal(t, HEARTBEAT_ENCODED_LEN, n)

	got, n, err := DecodeHEARTBEAT_DATA(buf)
	require.NoError(t, err)
	assert.Equal(t, HEARTBEAT_ENCODED_LEN, n)
	assert.Equal(t, v, got)
}

func TestSysStatusEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()
	v := SYS_STATUS_DATA{
		OnboardControlSensorsPresent: 1,
		OnboardControlSensorsEnabled: 2,
		OnboardControlSensorsHealth:  3,
		Load:                         4,
		VoltageBattery:               5,
		CurrentBattery:               -6,
		DropRateComm:                 7,
		ErrorsComm:                   8,
		ErrorsCount1:                 9,
		ErrorsCount2:                 10,
		ErrorsCount3:                 11,
		ErrorsCount4:                 12,
		BatteryRemaining:             -1,
	}
	buf := make([]byte, SYS_STATUS_ENCODED_LEN)
	n, err := v.Encode(buf)
	require.NoError(t, err)
	assert.Equal(t, SYS_STATUS_ENCODED_LEN, n)

	got, n, err := DecodeSYS_STATUS_DATA(buf)
	require.NoError(t, err)
	assert.Equal(t, SYS_STATUS_ENCODED_LEN, n)
	assert.Equal(t, v, got)
}

func TestParamRequestReadArrayFieldRoundTrip(t *testing.T) {
	t.Parallel()
	v := PARAM_REQUEST_READ_DATA{
		ParamIndex:      -1,
		TargetSystem:    1,
		TargetComponent: 1,
	}
	copy(v.ParamId[:], "THR_MIN")

	buf := make([]byte, PARAM_REQUEST_READ_ENCODED_LEN)
	n, err := v.Encode(buf)
	require.NoError(t, err)
	assert.Equal(t, PARAM_REQUEST_READ_ENCODED_LEN, n)

	got, _, err := DecodePARAM_REQUEST_READ_DATA(buf)
	require.NoError(t, err)
	assert.Equal(t, v, got)
}

func TestDecodeMessageDispatchesByID(t *testing.T) {
	t.Parallel()
	v := PING_DATA{TimeUsec: 42, Seq: 1, TargetSystem: 1, TargetComponent: 1}
	payload, err := v.EncodeMessage()
	require.NoError(t, err)

	msg, err := DecodeMessage(PING_MESSAGE_ID, payload)
	require.NoError(t, err)
	ping, ok := msg.(*PING_DATA)
	require.True(t, ok)
	assert.Equal(t, v, *ping)
}

func TestDecodeMessageUnknownID(t *testing.T) {
	t.Parallel()
	_, err := DecodeMessage(0xFFFFFF, nil)
	require.Error(t, err)
	var unknownErr *UnknownMsgIdError
	assert.ErrorAs(t, err, &unknownErr)
}

func TestExtraCRCKnownAndUnknown(t *testing.T) {
	t.Parallel()
	extra, ok := ExtraCRC(HEARTBEAT_MESSAGE_ID)
	assert.True(t, ok)
	assert.Equal(t, byte(HEARTBEAT_EXTRA_CRC), extra)

	_, ok = ExtraCRC(0xFFFFFF)
	assert.False(t, ok)
}

// TestS1HeartbeatFullStackDecode wires the frame reader to mavcommon's
// dispatcher and reproduces the spec's S1 seed vector end-to-end.
func TestS1HeartbeatFullStackDecode(t *testing.T) {
	t.Parallel()
	s1 := []byte{
		0xFD, 0x09, 0x00, 0x00, 0xEF, 0x01, 0x01, 0x00, 0x00, 0x00,
		0x05, 0x00, 0x00, 0x00, 0x02, 0x03, 0x59, 0x03, 0x03,
		0x10, 0xF0,
	}

	r := frame.NewReader(bytes.NewReader(s1), ExtraCRC)
	hdr, payload, err := r.ReadFrame()
	require.NoError(t, err)
	assert.Equal(t, uint8(239), hdr.Seq)
	assert.Equal(t, uint8(1), hdr.SysID)
	assert.Equal(t, uint8(1), hdr.CompID)
	assert.Equal(t, uint32(0), hdr.MsgID)

	msg, err := DecodeMessage(hdr.MsgID, payload)
	require.NoError(t, err)
	hb, ok := msg.(*HEARTBEAT_DATA)
	require.True(t, ok)
	assert.Equal(t, uint32(5), hb.CustomMode)
	assert.Equal(t, uint8(MavTypeQuadrotor), hb.Mavtype)
	assert.Equal(t, uint8(MavAutopilotArdupilotmega), hb.Autopilot)
	assert.Equal(t, uint8(0x59), hb.BaseMode)
	assert.Equal(t, uint8(MavStateStandby), hb.SystemStatus)
	assert.Equal(t, uint8(3), hb.MavlinkVersion)
}
