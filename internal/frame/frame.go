// Package frame implements C6: the v1/v2 MAVLink wire framing, its
// resynchronizing reader state machine, and a writer. Decoding a
// message's payload into Go values is mavcommon's job (via the
// dispatcher C5 generates); this package only knows about header
// fields, payload bytes, and the CRC that binds them together.
package frame

import (
	"fmt"
	"io"
)

// Magic bytes that open a v1 or v2 frame.
const (
	MagicV1 byte = 0xFE
	MagicV2 byte = 0xFD
)

// MaxPayloadLen is the largest payload a frame can carry: LEN is a u8.
const MaxPayloadLen = 255

// SignatureLen is the length of a v2 signature block. It is read and
// discarded; this package does not authenticate it.
const SignatureLen = 13

// v1FixedHeaderLen and v2FixedHeaderLen count the header bytes that
// follow the magic byte (already consumed by SEARCH_SYNC): LEN, SEQ,
// SYSID, COMPID, MSGID for v1; LEN, INCOMPAT, COMPAT, SEQ, SYSID,
// COMPID, MSGID(3) for v2.
const (
	v1FixedHeaderLen = 5
	v2FixedHeaderLen = 9
)

// ByteSource is the minimal input the reader needs: a single byte at a
// time, or exactly n bytes at a time.
type ByteSource interface {
	io.Reader
	io.ByteReader
}

// ByteSink is the minimal output the writer needs.
type ByteSink = io.Writer

// Header carries the per-frame fields common to both protocol versions.
// IncompatFlags and CompatFlags are always zero for a v1 frame, and a v1
// Header's Signed() is always false.
type Header struct {
	Version       int
	Seq           uint8
	SysID         uint8
	CompID        uint8
	MsgID         uint32
	IncompatFlags uint8
	CompatFlags   uint8
}

// Signed reports whether the frame this header describes carries (or
// should carry, on write) a v2 signature block.
func (h Header) Signed() bool {
	return h.Version == 2 && h.IncompatFlags&0x01 != 0
}

// ExtraCRCLookup resolves a message id to its extra-CRC byte. ok is
// false for an id the caller's dispatcher does not recognize, which the
// reader surfaces as *UnknownMsgIdError rather than silently dropping.
type ExtraCRCLookup func(msgID uint32) (extra byte, ok bool)

// UnknownMsgIdError reports a frame whose message id has no known
// extra-CRC entry. Unlike a bad sync byte or a CRC mismatch, this is
// surfaced to the caller rather than silently recovered from, per
// spec.md §7: it may simply mean the peer runs a newer dialect.
type UnknownMsgIdError struct {
	MsgID uint32
}

func (e *UnknownMsgIdError) Error() string {
	return fmt.Sprintf("frame: unknown message id %d", e.MsgID)
}
