// Package canon implements C4: field canonicalization and the extra-CRC
// fingerprint that detects schema drift between a dialect a sender
// compiled against and the one a receiver did.
package canon

import (
	"sort"

	"github.com/b71729/mavgen/internal/crc16"
	"github.com/b71729/mavgen/internal/schema"
)

// Canonicalize stably sorts m.Fields by wire order class, descending, so
// wider scalars come first and MAVLink's wire layout needs no
// natural-alignment padding. Called once, right after a message's
// end-element, per spec.md §4.4.
func Canonicalize(m *schema.Message) {
	sort.SliceStable(m.Fields, func(i, j int) bool {
		return m.Fields[i].Type.OrderClass() > m.Fields[j].Type.OrderClass()
	})
}

// ExtraCRC computes the 8-bit fingerprint for m, per spec.md §4.4. m's
// fields must already be in canonical order (true of any schema.Message
// produced by the dialect parser).
func ExtraCRC(m schema.Message) byte {
	acc := crc16.New()
	acc = acc.UpdateBytes([]byte(m.Name))
	acc = acc.Update(' ')

	for _, f := range m.Fields {
		acc = acc.UpdateBytes([]byte(f.Type.PrimitiveName()))
		acc = acc.Update(' ')
		acc = acc.UpdateBytes([]byte(f.OriginalName))
		acc = acc.Update(' ')
		if f.Type.IsArray() {
			acc = acc.Update(byte(f.Type.Len))
		}
	}

	return crc16.ExtraByte(acc.Sum16())
}

// EncodedLen is the sum of each field's wire size: C5's ENCODED_LEN
// constant for m.
func EncodedLen(m schema.Message) int {
	total := 0
	for _, f := range m.Fields {
		total += f.Type.Size()
	}
	return total
}
