package mdns

import (
	"bytes"
	"fmt"
	"net"
)

// RRType is a DNS resource record (and query) type code.
type RRType uint16

// Supported type codes. Anything else decodes into a [Record] with an
// empty payload and its rdata bytes simply skipped (see §1 non-goals:
// record types outside this set are never surfaced).
const (
	TypeA    RRType = 1
	TypePTR  RRType = 12
	TypeTXT  RRType = 16
	TypeAAAA RRType = 28
	TypeSRV  RRType = 33
	TypeNSEC RRType = 47
	TypeANY  RRType = 255
)

// String returns the mnemonic for the supported type codes, or "?" for
// anything else.
func (t RRType) String() string {
	switch t {
	case TypeA:
		return "A"
	case TypeAAAA:
		return "AAAA"
	case TypeANY:
		return "ANY"
	case TypeNSEC:
		return "NSEC"
	case TypePTR:
		return "PTR"
	case TypeSRV:
		return "SRV"
	case TypeTXT:
		return "TXT"
	default:
		return "?"
	}
}

// SRVData is the rdata of an SRV record.
type SRVData struct {
	Priority uint16
	Weight   uint16
	Port     uint16
	Target   Name
}

// NSECData is the rdata of an NSEC record restricted to window 0, the
// only window this package understands.
type NSECData struct {
	NextDomainName Name
	Bitmap         Bitmap
}

// TXTAttribute is one key/value pair from a TXT record's rdata. Absent
// means the entry had no '=' on the wire, distinct from a present but
// empty value.
type TXTAttribute struct {
	Key    []byte
	Value  []byte
	Absent bool
}

// TXTAttributes is an ordered key/value mapping built from a TXT record's
// rdata: insertion order is preserved, but setting a key that already
// exists overwrites its value in place rather than appending a second
// entry, so duplicate keys collapse to last-wins exactly as the wire
// parser builds them (see record_test.go for the exact scenario).
type TXTAttributes struct {
	entries []TXTAttribute
	index   map[string]int
}

// Set inserts or overwrites the attribute for key. When absent is true the
// value is discarded and the stored Value is nil, since an absent entry
// carries no value on the wire.
func (t *TXTAttributes) Set(key, value []byte, absent bool) {
	if absent {
		value = nil
	}
	k := string(key)
	if t.index == nil {
		t.index = make(map[string]int)
	}
	if i, ok := t.index[k]; ok {
		t.entries[i] = TXTAttribute{Key: key, Value: value, Absent: absent}
		return
	}
	t.index[k] = len(t.entries)
	t.entries = append(t.entries, TXTAttribute{Key: key, Value: value, Absent: absent})
}

// Get looks up the current value for key.
func (t TXTAttributes) Get(key []byte) (TXTAttribute, bool) {
	i, ok := t.index[string(key)]
	if !ok {
		return TXTAttribute{}, false
	}
	return t.entries[i], true
}

// Entries returns the attributes in insertion order. Callers must not
// mutate the returned slice.
func (t TXTAttributes) Entries() []TXTAttribute {
	return t.entries
}

// Record is a single resource record: common header fields plus exactly
// one type-specific payload, selected by Type. This mirrors the wire
// format directly rather than using per-type structs behind an interface,
// since the supported type set is closed and small.
type Record struct {
	Name       Name
	Type       RRType
	FlushCache bool
	TTL        uint32

	A    net.IP        // set when Type == TypeA
	AAAA net.IP        // set when Type == TypeAAAA
	PTR  Name          // set when Type == TypePTR
	SRV  SRVData       // set when Type == TypeSRV
	TXT  TXTAttributes // set when Type == TypeTXT
	NSEC NSECData      // set when Type == TypeNSEC
}

// parseRecord decodes one resource record starting at *cursor, advancing
// it past the record's rdata.
func parseRecord(packet []byte, cursor *int) (Record, error) {
	name, err := parseName(packet, cursor)
	if err != nil {
		return Record{}, err
	}

	rrType, ok := readUint16(packet, cursor)
	if !ok {
		return Record{}, fmt.Errorf("record type: %w", ErrOutOfBounds)
	}
	class, ok := readUint16(packet, cursor)
	if !ok {
		return Record{}, fmt.Errorf("record class: %w", ErrOutOfBounds)
	}
	ttl, ok := readUint32(packet, cursor)
	if !ok {
		return Record{}, fmt.Errorf("record ttl: %w", ErrOutOfBounds)
	}
	rdlength, ok := readUint16(packet, cursor)
	if !ok {
		return Record{}, fmt.Errorf("record rdlength: %w", ErrOutOfBounds)
	}

	record := Record{
		Name:       name,
		Type:       RRType(rrType),
		FlushCache: class&0x8000 != 0,
		TTL:        ttl,
	}

	switch record.Type {
	case TypeA:
		addr, ok := readBytes(packet, cursor, 4)
		if !ok {
			return Record{}, fmt.Errorf("A rdata: %w", ErrOutOfBounds)
		}
		record.A = net.IP(addr)

	case TypeAAAA:
		addr, ok := readBytes(packet, cursor, 16)
		if !ok {
			return Record{}, fmt.Errorf("AAAA rdata: %w", ErrOutOfBounds)
		}
		record.AAAA = net.IP(addr)

	case TypePTR:
		target, err := parseName(packet, cursor)
		if err != nil {
			return Record{}, fmt.Errorf("PTR target: %w", err)
		}
		record.PTR = target

	case TypeSRV:
		priority, ok := readUint16(packet, cursor)
		if !ok {
			return Record{}, fmt.Errorf("SRV priority: %w", ErrOutOfBounds)
		}
		weight, ok := readUint16(packet, cursor)
		if !ok {
			return Record{}, fmt.Errorf("SRV weight: %w", ErrOutOfBounds)
		}
		port, ok := readUint16(packet, cursor)
		if !ok {
			return Record{}, fmt.Errorf("SRV port: %w", ErrOutOfBounds)
		}
		target, err := parseName(packet, cursor)
		if err != nil {
			return Record{}, fmt.Errorf("SRV target: %w", err)
		}
		record.SRV = SRVData{Priority: priority, Weight: weight, Port: port, Target: target}

	case TypeTXT:
		start := *cursor
		end := start + int(rdlength)
		if end > len(packet) {
			return Record{}, fmt.Errorf("TXT rdata: %w", ErrOutOfBounds)
		}
		var attrs TXTAttributes
		for *cursor < end {
			n, ok := readUint8(packet, cursor)
			if !ok {
				return Record{}, fmt.Errorf("TXT entry length: %w", ErrOutOfBounds)
			}
			if n == 0 {
				break
			}
			if *cursor+int(n) > end {
				return Record{}, fmt.Errorf("TXT entry crosses rdlength boundary: %w", ErrMalformedRecord)
			}
			entry, ok := readBytes(packet, cursor, int(n))
			if !ok {
				return Record{}, fmt.Errorf("TXT entry: %w", ErrOutOfBounds)
			}
			if i := bytes.IndexByte(entry, '='); i == -1 {
				attrs.Set(entry, nil, true)
			} else {
				attrs.Set(entry[:i], entry[i+1:], false)
			}
		}
		*cursor = end
		record.TXT = attrs

	case TypeNSEC:
		nextDomain, err := parseName(packet, cursor)
		if err != nil {
			return Record{}, fmt.Errorf("NSEC next domain: %w", err)
		}
		window, ok := readUint8(packet, cursor)
		if !ok {
			return Record{}, fmt.Errorf("NSEC window: %w", ErrOutOfBounds)
		}
		if window != 0 {
			return Record{}, ErrInvalidNSECWindow
		}
		length, ok := readUint8(packet, cursor)
		if !ok {
			return Record{}, fmt.Errorf("NSEC bitmap length: %w", ErrOutOfBounds)
		}
		bitmap, ok := readBytes(packet, cursor, int(length))
		if !ok {
			return Record{}, fmt.Errorf("NSEC bitmap: %w", ErrOutOfBounds)
		}
		record.NSEC = NSECData{NextDomainName: nextDomain, Bitmap: Bitmap(bitmap)}

	default:
		if _, ok := readBytes(packet, cursor, int(rdlength)); !ok {
			return Record{}, fmt.Errorf("opaque rdata: %w", ErrOutOfBounds)
		}
	}

	return record, nil
}

// writeRecord encodes record into buf. It writes the common header
// directly, then serializes the rdata into a scratch buffer so rdlength
// can be backpatched once the payload's length is known; names inside the
// payload still compress against nameMap as if written to buf directly,
// because offset keeps tracking the final packet position throughout.
func writeRecord(buf *[]byte, offset *int, record Record, nameMap map[string]int) {
	writeName(buf, offset, record.Name, nameMap)
	writeUint16(buf, offset, uint16(record.Type))

	classWord := uint16(0x0001)
	if record.FlushCache {
		classWord = 0x8001
	}
	writeUint16(buf, offset, classWord)
	writeUint32(buf, offset, record.TTL)

	rdlengthIndex := len(*buf)
	*buf = append(*buf, 0, 0)
	*offset += 2

	var data []byte
	switch record.Type {
	case TypeA:
		addr := record.A.To4()
		if addr == nil {
			addr = make([]byte, 4)
		}
		writeBytes(&data, offset, addr)

	case TypeAAAA:
		addr := record.AAAA.To16()
		if addr == nil {
			addr = make([]byte, 16)
		}
		writeBytes(&data, offset, addr)

	case TypePTR:
		writeName(&data, offset, record.PTR, nameMap)

	case TypeSRV:
		writeUint16(&data, offset, record.SRV.Priority)
		writeUint16(&data, offset, record.SRV.Weight)
		writeUint16(&data, offset, record.SRV.Port)
		writeName(&data, offset, record.SRV.Target, nameMap)

	case TypeTXT:
		entries := record.TXT.Entries()
		if len(entries) == 0 {
			writeUint8(&data, offset, 0)
			break
		}
		for _, attr := range entries {
			var entry []byte
			if attr.Absent {
				entry = attr.Key
			} else {
				entry = make([]byte, 0, len(attr.Key)+1+len(attr.Value))
				entry = append(entry, attr.Key...)
				entry = append(entry, '=')
				entry = append(entry, attr.Value...)
			}
			writeUint8(&data, offset, uint8(len(entry)))
			writeBytes(&data, offset, entry)
		}

	case TypeNSEC:
		writeName(&data, offset, record.NSEC.NextDomainName, nameMap)
		writeUint8(&data, offset, 0)
		writeUint8(&data, offset, uint8(len(record.NSEC.Bitmap)))
		writeBytes(&data, offset, record.NSEC.Bitmap)
	}

	rdlength := uint16(len(data))
	(*buf)[rdlengthIndex] = byte(rdlength >> 8)
	(*buf)[rdlengthIndex+1] = byte(rdlength & 0xFF)
	*buf = append(*buf, data...)
}
