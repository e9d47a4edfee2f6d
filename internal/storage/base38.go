// internal/storage/base38.go
package storage

import (
	"errors"
	"fmt"
)

// Алфавит кодировки: 38 символов, безопасных для имён файлов и текстовых редакторов.
const base38Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz-_"

const (
	chunkBytes  = 5
	chunkDigits = 8
)

// digitsFor[n] — число цифр, кодирующих хвост из n байт.
var digitsFor = [chunkBytes + 1]int{0, 2, 4, 5, 7, 8}

var base38Index = func() [256]int8 {
	var idx [256]int8
	for i := range idx {
		idx[i] = -1
	}
	for i := 0; i < len(base38Alphabet); i++ {
		idx[base38Alphabet[i]] = int8(i)
	}
	return idx
}()

var ErrBadEncoding = errors.New("invalid base38 data")

// EncodeBase38 упаковывает каждые 5 байт в 8 цифр, старшая цифра первой.
func EncodeBase38(src []byte) []byte {
	out := make([]byte, 0, (len(src)+chunkBytes-1)/chunkBytes*chunkDigits)
	for len(src) > 0 {
		n := min(len(src), chunkBytes)
		var v uint64
		for _, b := range src[:n] {
			v = v<<8 | uint64(b)
		}
		digits := make([]byte, digitsFor[n])
		for i := len(digits) - 1; i >= 0; i-- {
			digits[i] = base38Alphabet[v%38]
			v /= 38
		}
		out = append(out, digits...)
		src = src[n:]
	}
	return out
}

// DecodeBase38 — обратное преобразование к EncodeBase38.
func DecodeBase38(src []byte) ([]byte, error) {
	out := make([]byte, 0, len(src)/chunkDigits*chunkBytes+chunkBytes)
	for len(src) > 0 {
		d := min(len(src), chunkDigits)
		n := bytesFor(d)
		if n == 0 {
			return nil, fmt.Errorf("%w: dangling %d digits", ErrBadEncoding, d)
		}
		var v uint64
		for _, c := range src[:d] {
			x := base38Index[c]
			if x < 0 {
				return nil, fmt.Errorf("%w: unexpected %q", ErrBadEncoding, c)
			}
			v = v*38 + uint64(x)
		}
		if v >= 1<<(8*n) {
			return nil, fmt.Errorf("%w: chunk overflows %d bytes", ErrBadEncoding, n)
		}
		for i := n - 1; i >= 0; i-- {
			out = append(out, byte(v>>(8*i)))
		}
		src = src[d:]
	}
	return out, nil
}

func bytesFor(digits int) int {
	for n, d := range digitsFor {
		if n > 0 && d == digits {
			return n
		}
	}
	return 0
}
