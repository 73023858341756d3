package spotifyid

import (
	"fmt"
	"strings"

	"lukechampine.com/uint128"
)

const (
	base16Digits = "0123456789abcdef"
	base62Digits = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

const (
	Base16Len = 32 // hex characters in a rendered [ID]
	Base62Len = 22 // base62 characters in a rendered [ID]
	RawLen    = 16 // bytes in a raw [ID]
)

// decode reads s as a big-endian number written in alphabet, one digit per byte.
//
// Values wider than 128 bits wrap.
func decode(s, alphabet string) (uint128.Uint128, error) {
	base := uint64(len(alphabet))
	n := uint128.Zero
	for i := 0; i < len(s); i++ {
		d := strings.IndexByte(alphabet, s[i])
		if d < 0 {
			return uint128.Zero, fmt.Errorf("%w: %q at position %d", ErrInvalidDigit, s[i], i)
		}
		n = n.MulWrap64(base).AddWrap64(uint64(d))
	}
	return n, nil
}

// encode renders n in alphabet as exactly width digits, least significant digit last.
// width must be large enough to hold 2^128-1 in the given base.
func encode(n uint128.Uint128, alphabet string, width int) string {
	base := uint64(len(alphabet))
	buf := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		var r uint64
		n, r = n.QuoRem64(base)
		buf[i] = alphabet[r]
	}
	return string(buf)
}
