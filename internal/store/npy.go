package store

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/sbinet/npyio"
)

// The reference text is stored the way numpy saves a bytes object: a 0-d
// array of dtype |S<n>. npyio reads that dtype but its writer labels Go
// strings as <U<n>, so the writer lives here.

var npyMagic = []byte("\x93NUMPY")

var bytesDtypeRe = regexp.MustCompile(`^\|?[Sa](\d+)$`)

func writeBytesNPY(w io.Writer, text []byte) error {
	// numpy stores b"" as a single NUL with itemsize 1.
	payload := text
	if len(payload) == 0 {
		payload = []byte{0}
	}
	header := fmt.Sprintf("{'descr': '|S%d', 'fortran_order': False, 'shape': (), }", len(payload))
	// magic(6) + version(2) + length(2) + header + '\n' is padded to 64
	// bytes; numpy adds a full block when already aligned.
	pad := 64 - (10+len(header)+1)%64
	header += string(bytes.Repeat([]byte{' '}, pad)) + "\n"

	var buf bytes.Buffer
	buf.Write(npyMagic)
	buf.Write([]byte{1, 0})
	if err := binary.Write(&buf, binary.LittleEndian, uint16(len(header))); err != nil {
		return err
	}
	buf.WriteString(header)
	buf.Write(payload)
	_, err := w.Write(buf.Bytes())
	return err
}

// decodeBytesNPY returns the text held by an in-memory chars file.
func decodeBytesNPY(data []byte) (text string, err error) {
	// npyio slices the header without bounds checks.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("decode header: %v", r)
		}
	}()

	// npyio allocates the declared v2 header length up front.
	if len(data) >= 12 && bytes.HasPrefix(data, npyMagic) && data[6] >= 2 {
		if n := binary.LittleEndian.Uint32(data[8:12]); int64(n) > int64(len(data)-12) {
			return "", fmt.Errorf("header length %d exceeds file size", n)
		}
	}

	br := bytes.NewReader(data)
	r, err := npyio.NewReader(br)
	if err != nil {
		return "", err
	}
	if len(r.Header.Descr.Shape) != 0 {
		return "", fmt.Errorf("expected a 0-d array, got shape %v", r.Header.Descr.Shape)
	}
	m := bytesDtypeRe.FindStringSubmatch(r.Header.Descr.Type)
	if m == nil {
		return "", fmt.Errorf("unexpected dtype %q", r.Header.Descr.Type)
	}
	size, err := strconv.Atoi(m[1])
	if err != nil {
		return "", fmt.Errorf("bad itemsize: %w", err)
	}
	if size > br.Len() {
		return "", fmt.Errorf("payload truncated: itemsize %d, %d bytes left", size, br.Len())
	}

	if err := r.Read(&text); err != nil {
		return "", err
	}
	return strings.TrimRight(text, "\x00"), nil
}
