package mdns

import "fmt"

// Query is a single question: a name/type pair plus the mDNS
// unicast-response bit. The class is always implicitly IN and is not
// stored.
type Query struct {
	Name            Name
	Type            RRType
	UnicastResponse bool
}

// parseQuery decodes one question starting at *cursor, advancing it past
// the question's class field.
func parseQuery(packet []byte, cursor *int) (Query, error) {
	name, err := parseName(packet, cursor)
	if err != nil {
		return Query{}, err
	}
	rrType, ok := readUint16(packet, cursor)
	if !ok {
		return Query{}, fmt.Errorf("question type: %w", ErrOutOfBounds)
	}
	class, ok := readUint16(packet, cursor)
	if !ok {
		return Query{}, fmt.Errorf("question class: %w", ErrOutOfBounds)
	}
	return Query{
		Name:            name,
		Type:            RRType(rrType),
		UnicastResponse: class&0x8000 != 0,
	}, nil
}

// writeQuery encodes query into buf using the shared name-compression map.
func writeQuery(buf *[]byte, offset *int, query Query, nameMap map[string]int) {
	writeName(buf, offset, query.Name, nameMap)
	writeUint16(buf, offset, uint16(query.Type))

	classWord := uint16(0x0001)
	if query.UnicastResponse {
		classWord = 0x8001
	}
	writeUint16(buf, offset, classWord)
}
