package format

import (
	"math"

	"github.com/calebcase/numtext/integer"
)

// maxSize is the largest output a formatter produces.
const maxSize = math.MaxInt32

// writer accumulates output text. A fixed writer has its size computed ahead
// of time and must never grow; a growable writer doubles as needed.
type writer struct {
	buf   []byte
	sized bool
}

func newFixedWriter(size int) *writer {
	return &writer{buf: make([]byte, 0, size), sized: true}
}

func newGrowableWriter(size int) *writer {
	return &writer{buf: make([]byte, 0, size)}
}

// fixedSize returns the size of a fixed writer, or an OverflowError when it
// exceeds what a string of the output may hold.
func fixedSize(size int64) (int, error) {
	if size < 0 || size > maxSize {
		return 0, OverflowError.New("output size %d out of range", size)
	}

	return int(size), nil
}

func (w *writer) ensure(n int) {
	if len(w.buf)+n <= cap(w.buf) {
		return
	}

	invariant(!w.sized, "write of %d bytes at %d exceeds fixed size %d", n, len(w.buf), cap(w.buf))

	grown := make([]byte, len(w.buf), max(2*cap(w.buf), len(w.buf)+n))
	copy(grown, w.buf)
	w.buf = grown
}

func (w *writer) writeByte(c byte) {
	w.ensure(1)
	w.buf = append(w.buf, c)
}

func (w *writer) writeString(s string) {
	w.ensure(len(s))
	w.buf = append(w.buf, s...)
}

// reserve extends the output by n bytes and returns them for the caller to
// fill.
func (w *writer) reserve(n int) []byte {
	w.ensure(n)

	start := len(w.buf)
	w.buf = w.buf[:start+n]

	return w.buf[start:]
}

// exponent writes the exponent marker followed by the signed value padded to
// minDigits. An empty positive sign writes nothing for positive values.
func (w *writer) exponent(value int, marker byte, minDigits int, positive, negative string) {
	w.writeByte(marker)

	if value < 0 {
		w.writeString(negative)
	} else {
		w.writeString(positive)
	}

	var buf [24]byte

	ds := integer.FromInt64(int64(value)).AppendDec(buf[:0], minDigits, "")
	w.writeString(string(ds))
}

func (w *writer) String() string {
	return string(w.buf)
}
