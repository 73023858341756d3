// package formatter provides functions to export conversion results to various formats (CSV, Markdown, JSON, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/desertthunder/spotid/internal/models"
	"github.com/desertthunder/spotid/internal/shared"
)

// Format names an export format.
type Format string

const (
	FormatText     Format = "text"
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
)

// ParseFormat maps a flag or config value to a [Format]. "md" is accepted for Markdown.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return FormatText, nil
	case "csv":
		return FormatCSV, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, s)
}

// Export renders set in the given format.
func Export(set *models.ConversionSet, format Format, pretty bool) ([]byte, error) {
	switch format {
	case FormatText:
		return ExportToText(set)
	case FormatCSV:
		return ExportToCSV(set)
	case FormatMarkdown:
		return ExportToMarkdown(set)
	case FormatJSON:
		return ExportToJSON(set, pretty)
	default:
		return nil, fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, format)
	}
}

// ExportToCSV converts a ConversionSet to CSV format with columns: Input, Kind, Category, Base62, Base16, Raw, URI, UUID, Error
func ExportToCSV(set *models.ConversionSet) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Input", "Kind", "Category", "Base62", "Base16", "Raw", "URI", "UUID", "Error"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, c := range set.Items {
		record := []string{c.Input, c.Kind, c.Category, c.Base62, c.Base16, c.Raw, c.URI, c.UUID, c.Err}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a ConversionSet to a Markdown summary and table.
func ExportToMarkdown(set *models.ConversionSet) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# Identifiers from %s\n\n", set.Source))
	buf.WriteString(fmt.Sprintf("**Converted**: %d\n", set.Valid()))
	buf.WriteString(fmt.Sprintf("**Failed**: %d\n\n", set.Failed()))

	buf.WriteString("| # | Input | Category | Base62 | Base16 | URI |\n")
	buf.WriteString("|---|-------|----------|--------|--------|-----|\n")
	for i, c := range set.Items {
		if !c.OK() {
			buf.WriteString(fmt.Sprintf("| %d | %s | error | %s | | |\n", i+1, codeCell(c.Input), escapeCell(c.Err)))
			continue
		}
		buf.WriteString(fmt.Sprintf("| %d | %s | %s | `%s` | `%s` | `%s` |\n", i+1, codeCell(c.Input), c.Category, c.Base62, c.Base16, c.URI))
	}

	return buf.Bytes(), nil
}

// ExportToText converts a ConversionSet to plain text format, one line per input
func ExportToText(set *models.ConversionSet) ([]byte, error) {
	var buf bytes.Buffer

	for _, c := range set.Items {
		if !c.OK() {
			buf.WriteString(fmt.Sprintf("%s !! %s\n", c.Input, c.Err))
			continue
		}
		buf.WriteString(fmt.Sprintf("%s -> %s\n", c.Input, c.URI))
		buf.WriteString(fmt.Sprintf("  base62: %s\n", c.Base62))
		buf.WriteString(fmt.Sprintf("  base16: %s\n", c.Base16))
		buf.WriteString(fmt.Sprintf("  raw:    %s\n", c.Raw))
		buf.WriteString(fmt.Sprintf("  uuid:   %s\n", c.UUID))
	}

	return buf.Bytes(), nil
}

// ExportToJSON converts a ConversionSet to JSON, with a trailing newline
func ExportToJSON(set *models.ConversionSet, pretty bool) ([]byte, error) {
	data, err := shared.MarshalJSON(set, pretty)
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// WriteExport renders set and writes it to path.
func WriteExport(set *models.ConversionSet, format Format, pretty bool, path string) error {
	if path == "" {
		return fmt.Errorf("%w: output path", shared.ErrMissingArgument)
	}

	data, err := Export(set, format, pretty)
	if err != nil {
		return fmt.Errorf("failed to generate %s: %w", format, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s file: %w", format, err)
	}
	return nil
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// codeCell wraps s in a code span fenced by one more backtick than the longest run inside it.
func codeCell(s string) string {
	longest, run := 0, 0
	for _, r := range s {
		if r == '`' {
			run++
			longest = max(longest, run)
		} else {
			run = 0
		}
	}
	if longest == 0 {
		return "`" + escapeCell(s) + "`"
	}
	fence := strings.Repeat("`", longest+1)
	return fence + " " + escapeCell(s) + " " + fence
}
