package mdns

import "testing"

func TestReadUint8(t *testing.T) {
	tests := []struct {
		name    string
		packet  []byte
		cursor  int
		want    uint8
		wantOK  bool
		wantEnd int
	}{
		{"ok", []byte{0x05}, 0, 0x05, true, 1},
		{"at end", []byte{0x05}, 1, 0, false, 1},
		{"past end", []byte{0x05}, 2, 0, false, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cursor := tc.cursor
			got, ok := readUint8(tc.packet, &cursor)
			if got != tc.want || ok != tc.wantOK {
				t.Errorf("readUint8() = (%v, %v), want (%v, %v)", got, ok, tc.want, tc.wantOK)
			}
			if cursor != tc.wantEnd {
				t.Errorf("cursor = %d, want %d", cursor, tc.wantEnd)
			}
		})
	}
}

func TestReadUint16(t *testing.T) {
	packet := []byte{0x01, 0x02, 0x03}
	cursor := 0

	got, ok := readUint16(packet, &cursor)
	if !ok || got != 0x0102 {
		t.Fatalf("readUint16() = (0x%04X, %v), want (0x0102, true)", got, ok)
	}
	if cursor != 2 {
		t.Fatalf("cursor = %d, want 2", cursor)
	}

	cursor = 2
	if _, ok := readUint16(packet, &cursor); ok {
		t.Fatal("readUint16() at truncated tail should fail")
	}
}

func TestReadUint32(t *testing.T) {
	packet := []byte{0x00, 0x00, 0x01, 0x00}
	cursor := 0

	got, ok := readUint32(packet, &cursor)
	if !ok || got != 256 {
		t.Fatalf("readUint32() = (%d, %v), want (256, true)", got, ok)
	}
	if cursor != 4 {
		t.Fatalf("cursor = %d, want 4", cursor)
	}
}

func TestReadBytes(t *testing.T) {
	packet := []byte{0xAA, 0xBB, 0xCC}
	cursor := 1

	got, ok := readBytes(packet, &cursor, 2)
	if !ok {
		t.Fatal("readBytes() failed unexpectedly")
	}
	if string(got) != string([]byte{0xBB, 0xCC}) {
		t.Errorf("readBytes() = %v, want [0xBB 0xCC]", got)
	}
	if cursor != 3 {
		t.Errorf("cursor = %d, want 3", cursor)
	}

	cursor = 0
	if _, ok := readBytes(packet, &cursor, 10); ok {
		t.Error("readBytes() past end should fail")
	}

	cursor = 0
	if _, ok := readBytes(packet, &cursor, 0); !ok {
		t.Error("readBytes() with n=0 should succeed")
	}
}

func TestWriteUint8(t *testing.T) {
	var buf []byte
	offset := 0
	writeUint8(&buf, &offset, 0x42)

	if string(buf) != string([]byte{0x42}) || offset != 1 {
		t.Errorf("writeUint8() buf=%v offset=%d, want [0x42] 1", buf, offset)
	}
}

func TestWriteUint16(t *testing.T) {
	var buf []byte
	offset := 0
	writeUint16(&buf, &offset, 0x1234)

	want := []byte{0x12, 0x34}
	if string(buf) != string(want) || offset != 2 {
		t.Errorf("writeUint16() buf=%v offset=%d, want %v 2", buf, offset, want)
	}
}

func TestWriteUint32(t *testing.T) {
	var buf []byte
	offset := 0
	writeUint32(&buf, &offset, 0x01020304)

	want := []byte{0x01, 0x02, 0x03, 0x04}
	if string(buf) != string(want) || offset != 4 {
		t.Errorf("writeUint32() buf=%v offset=%d, want %v 4", buf, offset, want)
	}
}

func TestWriteBytes(t *testing.T) {
	var buf []byte
	offset := 5 // offset need not match len(buf); record.go relies on that
	writeBytes(&buf, &offset, []byte{0x01, 0x02})

	if string(buf) != string([]byte{0x01, 0x02}) {
		t.Errorf("buf = %v, want [0x01 0x02]", buf)
	}
	if offset != 7 {
		t.Errorf("offset = %d, want 7", offset)
	}
}

func TestRoundTripPrimitives(t *testing.T) {
	var buf []byte
	offset := 0

	writeUint8(&buf, &offset, 7)
	writeUint16(&buf, &offset, 1000)
	writeUint32(&buf, &offset, 100000)
	writeBytes(&buf, &offset, []byte("hi"))

	cursor := 0
	v8, _ := readUint8(buf, &cursor)
	v16, _ := readUint16(buf, &cursor)
	v32, _ := readUint32(buf, &cursor)
	vb, _ := readBytes(buf, &cursor, 2)

	if v8 != 7 || v16 != 1000 || v32 != 100000 || string(vb) != "hi" {
		t.Errorf("round trip mismatch: %d %d %d %q", v8, v16, v32, vb)
	}
}
