// Package ui implements an interactive identifier converter using bubbletea's Elm architecture.
//
// The TUI has two views:
//  1. [InputView] : type or paste an identifier and see every rendering update on each keystroke
//  2. [HistoryView] : browse conversions saved with enter
//
// Decoding goes through the same [tasks.Converter] used by the CLI, so the TUI and batch output always agree.
//
// Keyboard: enter saves, tab switches view, esc or ctrl+c quits. Contextual help is rendered with charmbracelet/bubbles/help.
package ui
