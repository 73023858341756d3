// package models defines the data model for identifier conversions
package models

import (
	"fmt"
	"strings"
)

// InputKind selects the decoder used for an input string.
type InputKind int

const (
	KindAuto InputKind = iota
	KindBase62
	KindBase16
	KindURI
	KindRaw // 32 hex characters read as the 16 raw bytes
)

var inputKinds = map[InputKind]string{
	KindAuto:   "auto",
	KindBase62: "base62",
	KindBase16: "base16",
	KindURI:    "uri",
	KindRaw:    "raw",
}

func (k InputKind) String() string {
	if s, ok := inputKinds[k]; ok {
		return s
	}
	return fmt.Sprintf("InputKind(%d)", int(k))
}

// ParseInputKind maps a flag value to an [InputKind].
func ParseInputKind(s string) (InputKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return KindAuto, nil
	}
	for k, name := range inputKinds {
		if name == s {
			return k, nil
		}
	}
	return KindAuto, fmt.Errorf("unknown input kind %q", s)
}

// Conversion is one decoded identifier rendered in every supported form.
//
// When decoding fails only Input, Kind and Err are set.
type Conversion struct {
	Input    string `json:"input"`
	Kind     string `json:"kind"`
	Category string `json:"category,omitempty"`
	Base62   string `json:"base62,omitempty"`
	Base16   string `json:"base16,omitempty"`
	Raw      string `json:"raw,omitempty"` // the 16 raw bytes as space separated hex
	URI      string `json:"uri,omitempty"`
	UUID     string `json:"uuid,omitempty"`
	Err      string `json:"error,omitempty"`
}

// OK reports whether the input decoded.
func (c Conversion) OK() bool { return c.Err == "" }

// ConversionSet is a batch of conversions read from one source (arguments, a file, stdin).
type ConversionSet struct {
	Source string       `json:"source"`
	Items  []Conversion `json:"items"`
}

// Valid returns the number of inputs that decoded.
func (s *ConversionSet) Valid() int {
	n := 0
	for _, c := range s.Items {
		if c.OK() {
			n++
		}
	}
	return n
}

// Failed returns the number of inputs that did not decode.
func (s *ConversionSet) Failed() int {
	return len(s.Items) - s.Valid()
}
