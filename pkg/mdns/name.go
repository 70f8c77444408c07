package mdns

import (
	"fmt"
	"strings"
)

// Name is the canonical dotted form of a DNS name, trailing dot included
// (e.g. "_shelly._tcp.local."). Labels are arbitrary octet strings stored
// verbatim: comparisons here are case-sensitive byte compares, even though
// mDNS matching treats names case-insensitively elsewhere in the stack.
type Name string

const maxLabelLength = 63

// parseName decodes a name starting at *cursor, following compression
// pointers as needed, and leaves *cursor just past the name's own
// encoding: past the terminating zero byte for an uncompressed name, or
// past the first pointer's two bytes when one or more pointers were
// followed. It never reads past the end of packet and always terminates,
// because every pointer it follows must land strictly before the most
// recent pointer target (initially the position where this name starts).
func parseName(packet []byte, cursor *int) (Name, error) {
	var b strings.Builder

	origin := *cursor
	walk := *cursor
	postPointerCursor := -1

parseLoop:
	for {
		lengthByte, ok := readUint8(packet, &walk)
		if !ok {
			return "", fmt.Errorf("name label length: %w", ErrOutOfBounds)
		}

		switch {
		case lengthByte == 0:
			break parseLoop

		case isCompressionPointer(lengthByte):
			second, ok := readUint8(packet, &walk)
			if !ok {
				return "", fmt.Errorf("compression pointer: %w", ErrOutOfBounds)
			}
			newOffset := (int(lengthByte&0x3F) << 8) | int(second)
			if newOffset >= origin {
				return "", ErrCompressionLoop
			}
			origin = newOffset
			if postPointerCursor == -1 {
				postPointerCursor = walk
			}
			walk = newOffset

		case isReservedLabelTag(lengthByte):
			return "", ErrBadLabelTag

		default:
			n := int(lengthByte)
			if n > maxLabelLength {
				return "", ErrBadLabelTag
			}
			label, ok := readBytes(packet, &walk, n)
			if !ok {
				return "", fmt.Errorf("name label content: %w", ErrOutOfBounds)
			}
			b.Write(label)
			b.WriteByte('.')
		}
	}

	if postPointerCursor != -1 {
		walk = postPointerCursor
	}
	*cursor = walk

	if b.Len() == 0 {
		return ".", nil
	}
	return Name(b.String()), nil
}

// writeName encodes name into buf, compressing against any suffix already
// present in nameMap. offset tracks the position the written bytes will
// occupy in the final packet; it is threaded separately from buf itself so
// that rdata serialized into a scratch buffer still compresses against
// names already written to the real packet (see record.go).
func writeName(buf *[]byte, offset *int, name Name, nameMap map[string]int) {
	fragment := strings.TrimSuffix(string(name), ".")

	for len(fragment) > 0 {
		if pointerOffset, ok := nameMap[fragment]; ok {
			writeUint16(buf, offset, uint16(compressionPointerMask)|uint16(pointerOffset&0x3FFF))
			return
		}

		nameMap[fragment] = *offset

		idx := strings.IndexByte(fragment, '.')
		if idx == -1 {
			idx = len(fragment)
		}

		writeUint8(buf, offset, uint8(idx))
		writeBytes(buf, offset, []byte(fragment[:idx]))

		if idx < len(fragment) {
			fragment = fragment[idx+1:]
		} else {
			fragment = ""
		}
	}

	writeUint8(buf, offset, 0)
}
