package mdns

import "errors"

// Sentinel errors identifying why a decode failed. Every parse function in
// this package ultimately fails with one of these, wrapped with fmt.Errorf
// for context; callers that need to distinguish a specific cause should
// use errors.Is against the sentinel rather than matching message text.
var (
	// ErrTruncatedHeader is returned when the packet is shorter than the
	// fixed 12-byte DNS header.
	ErrTruncatedHeader = errors.New("mdns: packet shorter than 12-byte header")

	// ErrOutOfBounds is returned when any read would cross the end of
	// the packet.
	ErrOutOfBounds = errors.New("mdns: read past end of packet")

	// ErrBadLabelTag is returned when a name label's length byte carries
	// the reserved top-bit pattern 01 or 10.
	ErrBadLabelTag = errors.New("mdns: reserved label length tag")

	// ErrCompressionLoop is returned when a compression pointer's target
	// does not strictly decrease from the most recent pointer origin,
	// which would otherwise allow an unbounded or cyclic jump chain.
	ErrCompressionLoop = errors.New("mdns: compression pointer does not strictly decrease")

	// ErrInvalidNSECWindow is returned when an NSEC record's window
	// number is not 0, the only window this package supports.
	ErrInvalidNSECWindow = errors.New("mdns: NSEC bitmap window must be 0")

	// ErrMalformedRecord is returned when a resource record's type-specific
	// payload cannot be parsed within the bounds the common header implies.
	ErrMalformedRecord = errors.New("mdns: malformed resource record")
)
