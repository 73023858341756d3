package spotifyid

import "fmt"

var (
	ErrInvalidDigit     = fmt.Errorf("invalid digit")
	ErrInvalidLength    = fmt.Errorf("invalid length")
	ErrInvalidReference = fmt.Errorf("invalid reference")
)
