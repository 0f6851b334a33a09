package frame

// decodeHeaderV1 reads the v1 fixed header fields (LEN, SEQ, SYSID,
// COMPID, MSGID) from buf, which must be exactly v1FixedHeaderLen bytes
// (the magic byte already consumed). It returns the payload length and
// the populated Header.
func decodeHeaderV1(buf []byte) (payloadLen int, hdr Header) {
	hdr.Version = 1
	payloadLen = int(buf[0])
	hdr.Seq = buf[1]
	hdr.SysID = buf[2]
	hdr.CompID = buf[3]
	hdr.MsgID = uint32(buf[4])
	return payloadLen, hdr
}

// encodeHeaderV1 writes hdr's v1 fixed header fields (not including the
// magic byte) into buf, which must be at least v1FixedHeaderLen bytes.
func encodeHeaderV1(hdr Header, payloadLen int, buf []byte) {
	buf[0] = byte(payloadLen)
	buf[1] = hdr.Seq
	buf[2] = hdr.SysID
	buf[3] = hdr.CompID
	buf[4] = byte(hdr.MsgID)
}

// decodeHeaderV2 reads the v2 fixed header fields (LEN, INCOMPAT,
// COMPAT, SEQ, SYSID, COMPID, MSGID(3) LE) from buf, which must be
// exactly v2FixedHeaderLen bytes.
func decodeHeaderV2(buf []byte) (payloadLen int, hdr Header) {
	hdr.Version = 2
	payloadLen = int(buf[0])
	hdr.IncompatFlags = buf[1]
	hdr.CompatFlags = buf[2]
	hdr.Seq = buf[3]
	hdr.SysID = buf[4]
	hdr.CompID = buf[5]
	hdr.MsgID = uint32(buf[6]) | uint32(buf[7])<<8 | uint32(buf[8])<<16
	return payloadLen, hdr
}

// encodeHeaderV2 writes hdr's v2 fixed header fields (not including the
// magic byte) into buf, which must be at least v2FixedHeaderLen bytes.
func encodeHeaderV2(hdr Header, payloadLen int, buf []byte) {
	buf[0] = byte(payloadLen)
	buf[1] = hdr.IncompatFlags
	buf[2] = hdr.CompatFlags
	buf[3] = hdr.Seq
	buf[4] = hdr.SysID
	buf[5] = hdr.CompID
	buf[6] = byte(hdr.MsgID)
	buf[7] = byte(hdr.MsgID >> 8)
	buf[8] = byte(hdr.MsgID >> 16)
}

// checksumLen is the wire size of the trailing CRC16.
const checksumLen = 2
