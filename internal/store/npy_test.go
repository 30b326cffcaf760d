package store

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func npyHeader(t *testing.T, dict string) []byte {
	t.Helper()
	dict += strings.Repeat(" ", 64-(10+len(dict)+1)%64) + "\n"
	var buf bytes.Buffer
	buf.WriteString("\x93NUMPY\x01\x00")
	if err := binary.Write(&buf, binary.LittleEndian, uint16(len(dict))); err != nil {
		t.Fatal(err)
	}
	buf.WriteString(dict)
	return buf.Bytes()
}

func TestBytesNPYLayout(t *testing.T) {
	var buf bytes.Buffer
	if err := writeBytesNPY(&buf, []byte("hello")); err != nil {
		t.Fatal(err)
	}
	b := buf.Bytes()
	if !bytes.HasPrefix(b, []byte("\x93NUMPY\x01\x00")) {
		t.Fatalf("bad prefix %q", b[:8])
	}
	hlen := int(b[8]) | int(b[9])<<8
	if (10+hlen)%64 != 0 {
		t.Errorf("header not aligned: %d", 10+hlen)
	}
	header := string(b[10 : 10+hlen])
	if !strings.Contains(header, "'descr': '|S5'") || !strings.HasSuffix(header, "\n") {
		t.Errorf("unexpected header %q", header)
	}
	if got := string(b[10+hlen:]); got != "hello" {
		t.Errorf("payload = %q", got)
	}
}

func TestBytesNPYMatchesNumpy(t *testing.T) {
	want, err := os.ReadFile(filepath.Join("testdata", "style-0-chars.npy"))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := writeBytesNPY(&buf, []byte("hello world")); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("chars file differs from numpy output:\n got %q\nwant %q", buf.Bytes(), want)
	}
}

func TestBytesNPYRoundTrip(t *testing.T) {
	for _, text := range []string{"", "x", "The quick brown fox jumps over the lazy dog", "naïve café", strings.Repeat("ab", 200)} {
		var buf bytes.Buffer
		if err := writeBytesNPY(&buf, []byte(text)); err != nil {
			t.Fatal(err)
		}
		got, err := decodeBytesNPY(buf.Bytes())
		if err != nil {
			t.Fatalf("%q: %v", text, err)
		}
		if got != text {
			t.Errorf("got %q, want %q", got, text)
		}
	}
}

func TestBytesNPYRejectsMalformed(t *testing.T) {
	for _, tc := range []struct {
		name string
		data []byte
	}{
		{"numeric", npyHeader(t, "{'descr': '<f8', 'fortran_order': False, 'shape': (2, 3), }")},
		{"not 0-d", append(npyHeader(t, "{'descr': '|S2', 'fortran_order': False, 'shape': (2,), }"), "abcd"...)},
		{"huge itemsize", append(npyHeader(t, "{'descr': '|S999999999999999999', 'fortran_order': False, 'shape': (), }"), "abc"...)},
		{"itemsize overflow", npyHeader(t, "{'descr': '|S99999999999999999999999', 'fortran_order': False, 'shape': (), }")},
		{"truncated payload", append(npyHeader(t, "{'descr': '|S10', 'fortran_order': False, 'shape': (), }"), "abc"...)},
		{"no newline", []byte("\x93NUMPY\x01\x00\x04\x00{}  ")},
		{"v2 header length", []byte("\x93NUMPY\x02\x00\xff\xff\xff\xff{")},
		{"magic only", []byte("\x93NUMPY\x01\x00")},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := decodeBytesNPY(tc.data); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
