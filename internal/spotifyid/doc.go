// Package spotifyid converts content identifiers between their base62, base16, URI and raw 16-byte forms.
//
// An [ID] is a 128-bit unsigned magnitude tagged with a [Category] (track or podcast).
// The same magnitude has three textual or binary renderings:
//   - base62 : 22 characters from 0-9a-zA-Z, the form shown in share links
//   - base16 : 32 lowercase hex characters, used by older endpoints
//   - raw    : 16 big-endian bytes, the wire form
//
// Renderings are fixed width and zero-padded, so [FromBase62] of [ID.ToBase62] returns the same magnitude for every value.
// Decoding never panics: bad digits, wrong raw lengths and short URIs return [ErrInvalidDigit], [ErrInvalidLength] and [ErrInvalidReference].
//
// Decoded text longer than the rendered width is not rejected.
// Digits beyond 128 bits wrap modulo 2^128.
//
// A [FileID] is an opaque 20-byte content hash with a 40 character hex rendering.
// It carries no arithmetic and is ordered byte-wise.
package spotifyid
