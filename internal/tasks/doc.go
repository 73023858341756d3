// Package tasks decodes batches of identifiers and renders them into [models.Conversion] values.
//
// # Converter
//
// [Converter] is configured with an [models.InputKind]:
//   - auto   : [spotifyid.Parse] guesses URI, base62 or base16 from the input
//   - base62 : [spotifyid.FromBase62]
//   - base16 : [spotifyid.FromBase16]
//   - uri    : [spotifyid.FromURI]
//   - raw    : 32 hex characters read as the 16 raw bytes, [spotifyid.FromRaw]
//
// A failed decode is recorded on the conversion rather than returned, so one bad line never aborts a batch.
//
// # Progress Reporting
//
// [Converter.ConvertReader] emits a [ProgressUpdate] per line on an optional channel.
// Sends use select with default and never block the conversion.
package tasks
