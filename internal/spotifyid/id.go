package spotifyid

import (
	"cmp"
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"lukechampine.com/uint128"
)

// Category distinguishes track identifiers from podcast (show/episode) identifiers.
//
// The zero value is [Track].
type Category int

const (
	Track Category = iota
	Podcast
)

func (c Category) String() string {
	switch c {
	case Podcast:
		return "podcast"
	default:
		return "track"
	}
}

// ParseCategory maps a category name to a [Category].
//
// "episode" and "show" are accepted as aliases for [Podcast].
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "track":
		return Track, nil
	case "podcast", "episode", "show":
		return Podcast, nil
	}
	return Track, fmt.Errorf("unknown category %q", s)
}

func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(b []byte) error {
	parsed, err := ParseCategory(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ID is a 128-bit content identifier with a [Category].
//
// IDs are small comparable values: use == for equality, as map keys, and [ID.Compare] for ordering.
type ID struct {
	magnitude uint128.Uint128
	category  Category
}

// New builds an [ID] from its parts.
func New(magnitude uint128.Uint128, category Category) ID {
	return ID{magnitude: magnitude, category: category}
}

func asTrack(n uint128.Uint128) ID {
	return ID{magnitude: n, category: Track}
}

// FromBase16 decodes a big-endian hex string (lowercase digits only) into a track [ID].
func FromBase16(s string) (ID, error) {
	n, err := decode(s, base16Digits)
	if err != nil {
		return ID{}, err
	}
	return asTrack(n), nil
}

// FromBase62 decodes a big-endian base62 string into a track [ID].
func FromBase62(s string) (ID, error) {
	n, err := decode(s, base62Digits)
	if err != nil {
		return ID{}, err
	}
	return asTrack(n), nil
}

// FromRaw decodes exactly [RawLen] big-endian bytes into a track [ID].
func FromRaw(b []byte) (ID, error) {
	if len(b) != RawLen {
		return ID{}, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidLength, len(b), RawLen)
	}
	return asTrack(uint128.Uint128{
		Hi: binary.BigEndian.Uint64(b[0:8]),
		Lo: binary.BigEndian.Uint64(b[8:16]),
	}), nil
}

// FromURI decodes a colon-delimited reference such as "spotify:track:4cOdK2wGLETKBW3PvgPWqT".
//
// The third segment is decoded as base62.
// References containing ":show:" or ":episode:" yield a [Podcast] ID.
// Payload decode failures match both [ErrInvalidReference] and the underlying error.
func FromURI(uri string) (ID, error) {
	parts := strings.Split(uri, ":")
	if len(parts) < 3 {
		return ID{}, fmt.Errorf("%w: %q has %d segments, want at least 3", ErrInvalidReference, uri, len(parts))
	}

	id, err := FromBase62(parts[2])
	if err != nil {
		return ID{}, fmt.Errorf("%w: %q: %w", ErrInvalidReference, uri, err)
	}

	if strings.Contains(uri, ":show:") || strings.Contains(uri, ":episode:") {
		id.category = Podcast
	}
	return id, nil
}

// FromUUID reinterprets the 16 bytes of u as a big-endian track [ID].
func FromUUID(u uuid.UUID) ID {
	id, _ := FromRaw(u[:])
	return id
}

// Parse guesses the form of s: anything with a colon is a URI, otherwise
// [Base62Len] characters are base62 and [Base16Len] characters are base16.
func Parse(s string) (ID, error) {
	switch {
	case strings.Contains(s, ":"):
		return FromURI(s)
	case len(s) == Base62Len:
		return FromBase62(s)
	case len(s) == Base16Len:
		return FromBase16(s)
	}
	return ID{}, fmt.Errorf("%w: %d characters, want %d (base62) or %d (base16)", ErrInvalidLength, len(s), Base62Len, Base16Len)
}

func (id ID) Category() Category { return id.category }

func (id ID) Magnitude() uint128.Uint128 { return id.magnitude }

// ToBase16 renders the magnitude as [Base16Len] lowercase hex digits, zero-padded.
func (id ID) ToBase16() string {
	return encode(id.magnitude, base16Digits, Base16Len)
}

// ToBase62 renders the magnitude as [Base62Len] base62 digits, zero-padded.
func (id ID) ToBase62() string {
	return encode(id.magnitude, base62Digits, Base62Len)
}

// ToRaw renders the magnitude as 16 big-endian bytes, high half first.
func (id ID) ToRaw() [RawLen]byte {
	var b [RawLen]byte
	binary.BigEndian.PutUint64(b[0:8], id.magnitude.Hi)
	binary.BigEndian.PutUint64(b[8:16], id.magnitude.Lo)
	return b
}

// ToURI renders the canonical reference, "spotify:track:<base62>" or "spotify:episode:<base62>".
func (id ID) ToURI() string {
	kind := "track"
	if id.category == Podcast {
		kind = "episode"
	}
	return "spotify:" + kind + ":" + id.ToBase62()
}

// UUID views the raw bytes as a [uuid.UUID]. No version or variant bits are set.
func (id ID) UUID() uuid.UUID {
	return uuid.UUID(id.ToRaw())
}

// Compare orders by magnitude, then by category.
func (id ID) Compare(other ID) int {
	if c := id.magnitude.Cmp(other.magnitude); c != 0 {
		return c
	}
	return cmp.Compare(id.category, other.category)
}

func (id ID) String() string { return id.ToBase62() }

func (id ID) GoString() string {
	return fmt.Sprintf("spotifyid.ID{%s:%s}", id.category, id.ToBase62())
}

func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.ToURI()), nil
}

func (id *ID) UnmarshalText(b []byte) error {
	parsed, err := FromURI(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
