// Package models defines the data transfer objects passed between the conversion, export and presentation layers.
//
//   - [Conversion] : one input decoded and rendered in every supported form
//   - [ConversionSet] : a batch of conversions from a single source
//   - [InputKind] : how an input string should be interpreted
//
// Conversions are plain values with JSON tags so they can be printed, exported or shown in the TUI without further mapping.
package models
