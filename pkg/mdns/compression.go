package mdns

// compressionPointerMask marks the top two bits of a 16-bit pointer field,
// the 11 tag from RFC 1035 §4.1.4.
const compressionPointerMask = 0xC000

// createCompressionPointer packs an offset into the two wire bytes of a
// compression pointer.
func createCompressionPointer(offset int) []byte {
	pointer := uint16(compressionPointerMask) | uint16(offset&0x3FFF)
	return []byte{byte(pointer >> 8), byte(pointer & 0xFF)}
}

// isCompressionPointer reports whether a label's length byte carries the
// 11 tag identifying a compression pointer rather than a literal label.
func isCompressionPointer(lengthByte byte) bool {
	return lengthByte&0xC0 == 0xC0
}

// isReservedLabelTag reports whether a length byte carries one of the two
// tag values RFC 1035 reserves (01, 10) and this package rejects.
func isReservedLabelTag(lengthByte byte) bool {
	tag := lengthByte & 0xC0
	return tag == 0x40 || tag == 0x80
}

// extractCompressionOffset decodes the 14-bit offset out of a two-byte
// compression pointer. Callers must ensure data has at least two bytes.
func extractCompressionOffset(data []byte) int {
	return int(data[0]&0x3F)<<8 | int(data[1])
}
