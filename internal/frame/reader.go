package frame

import (
	"io"

	"github.com/b71729/mavgen/internal/crc16"
)

// readerState names the position in the state machine from spec.md
// §4.6. There is no terminal state: DELIVER and the drop path both loop
// back to searchSync.
type readerState int

const (
	stateSearchSync readerState = iota
	stateHeader
	statePayload
	stateCRC
	stateSig
)

// Reader pulls frames out of a ByteSource, silently resynchronizing on
// a bad sync byte or a CRC mismatch. It holds fixed scratch buffers
// sized to the protocol's worst case, so steady-state operation makes
// no heap allocations beyond the payload slice ReadFrame hands back.
type Reader struct {
	src      ByteSource
	extraCRC ExtraCRCLookup

	headerV1 [v1FixedHeaderLen]byte
	headerV2 [v2FixedHeaderLen]byte
	payload  [MaxPayloadLen]byte
	sig      [SignatureLen]byte
	crcBuf   [checksumLen]byte
}

// NewReader returns a Reader consuming src. lookup resolves a message
// id to its extra-CRC byte; an id it doesn't recognize causes ReadFrame
// to surface *UnknownMsgIdError.
func NewReader(src ByteSource, lookup ExtraCRCLookup) *Reader {
	return &Reader{src: src, extraCRC: lookup}
}

// Reset rebinds the Reader to a new source, for pooled reuse.
func (r *Reader) Reset(src ByteSource, lookup ExtraCRCLookup) {
	r.src = src
	r.extraCRC = lookup
}

// ReadFrame runs the state machine until it delivers one frame or hits
// a fatal I/O error or an unknown message id. Bad sync bytes and CRC
// mismatches are recovered from internally and never returned; the
// caller only sees a fully verified frame, an *UnknownMsgIdError, or an
// I/O error.
func (r *Reader) ReadFrame() (Header, []byte, error) {
	state := stateSearchSync
	var hdr Header
	var payloadLen int
	var extra byte

	for {
		switch state {
		case stateSearchSync:
			b, err := r.src.ReadByte()
			if err != nil {
				return Header{}, nil, err
			}
			switch b {
			case MagicV1:
				hdr = Header{}
				state = stateHeader
				hdr.Version = 1
			case MagicV2:
				hdr = Header{}
				state = stateHeader
				hdr.Version = 2
			default:
				// not a magic byte: stay in stateSearchSync and consume
				// the next byte on the following loop iteration.
			}

		case stateHeader:
			if hdr.Version == 1 {
				if _, err := io.ReadFull(r.src, r.headerV1[:]); err != nil {
					return Header{}, nil, err
				}
				payloadLen, hdr = decodeHeaderV1(r.headerV1[:])
			} else {
				if _, err := io.ReadFull(r.src, r.headerV2[:]); err != nil {
					return Header{}, nil, err
				}
				payloadLen, hdr = decodeHeaderV2(r.headerV2[:])
			}
			state = statePayload

		case statePayload:
			if payloadLen > 0 {
				if _, err := io.ReadFull(r.src, r.payload[:payloadLen]); err != nil {
					return Header{}, nil, err
				}
			}
			state = stateCRC

		case stateCRC:
			if _, err := io.ReadFull(r.src, r.crcBuf[:]); err != nil {
				return Header{}, nil, err
			}
			var ok bool
			extra, ok = r.extraCRC(hdr.MsgID)
			if !ok {
				return Header{}, nil, &UnknownMsgIdError{MsgID: hdr.MsgID}
			}
			if hdr.Signed() {
				state = stateSig
				continue
			}
			if !r.verifyCRC(hdr, payloadLen, extra) {
				state = stateSearchSync
				continue
			}
			cp := make([]byte, payloadLen)
			copy(cp, r.payload[:payloadLen])
			return hdr, cp, nil

		case stateSig:
			if _, err := io.ReadFull(r.src, r.sig[:]); err != nil {
				return Header{}, nil, err
			}
			if !r.verifyCRC(hdr, payloadLen, extra) {
				state = stateSearchSync
				continue
			}
			cp := make([]byte, payloadLen)
			copy(cp, r.payload[:payloadLen])
			return hdr, cp, nil
		}
	}
}

// verifyCRC recomputes the frame CRC over header[1:] (LEN inclusive,
// magic excluded), the payload, and the message's extra-CRC byte, then
// compares it little-endian to the bytes read in stateCRC.
func (r *Reader) verifyCRC(hdr Header, payloadLen int, extra byte) bool {
	acc := crc16.New()
	if hdr.Version == 1 {
		acc = acc.UpdateBytes(r.headerV1[:])
	} else {
		acc = acc.UpdateBytes(r.headerV2[:])
	}
	acc = acc.UpdateBytes(r.payload[:payloadLen])
	acc = acc.Update(extra)

	got := uint16(r.crcBuf[0]) | uint16(r.crcBuf[1])<<8
	return acc.Sum16() == got
}
