// package tasks implements batch identifier conversion.
package tasks

import (
	"bufio"
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/spotid/internal/models"
	"github.com/desertthunder/spotid/internal/shared"
	"github.com/desertthunder/spotid/internal/spotifyid"
)

// Converter decodes identifier strings with a fixed [models.InputKind].
type Converter struct {
	kind   models.InputKind
	logger *log.Logger
}

// NewConverter creates a Converter. A nil logger defaults to [shared.NewLogger] on stderr.
func NewConverter(kind models.InputKind, logger *log.Logger) *Converter {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Converter{kind: kind, logger: logger}
}

// Kind returns the input kind the converter decodes.
func (c *Converter) Kind() models.InputKind { return c.kind }

// Decode parses input according to the converter's kind.
func (c *Converter) Decode(input string) (spotifyid.ID, error) {
	input = strings.TrimSpace(input)

	switch c.kind {
	case models.KindBase62:
		return spotifyid.FromBase62(input)
	case models.KindBase16:
		return spotifyid.FromBase16(input)
	case models.KindURI:
		return spotifyid.FromURI(input)
	case models.KindRaw:
		// accepts the space separated form produced by Render
		raw, err := hex.DecodeString(strings.Join(strings.Fields(input), ""))
		if err != nil {
			return spotifyid.ID{}, fmt.Errorf("%w: %v", spotifyid.ErrInvalidDigit, err)
		}
		return spotifyid.FromRaw(raw)
	case models.KindAuto:
		return spotifyid.Parse(input)
	default:
		return spotifyid.ID{}, fmt.Errorf("%w: unsupported input kind %v", shared.ErrInvalidArgument, c.kind)
	}
}

// Convert decodes input and renders it in every form.
//
// Decode errors are stored in [models.Conversion.Err].
func (c *Converter) Convert(input string) models.Conversion {
	input = strings.TrimSpace(input)

	id, err := c.Decode(input)
	if err != nil {
		c.logger.Debug("failed to decode identifier", "input", input, "kind", c.kind, "error", err)
		return models.Conversion{Input: input, Kind: c.kind.String(), Err: err.Error()}
	}

	conversion := Render(id)
	conversion.Input = input
	conversion.Kind = c.kind.String()
	return conversion
}

// ConvertAll converts every input in order.
func (c *Converter) ConvertAll(source string, inputs []string) *models.ConversionSet {
	set := &models.ConversionSet{Source: source, Items: make([]models.Conversion, 0, len(inputs))}
	for _, input := range inputs {
		set.Items = append(set.Items, c.Convert(input))
	}
	c.logger.Debug("converted identifiers", "source", source, "valid", set.Valid(), "failed", set.Failed())
	return set
}

// ConvertReader converts one identifier per line from r.
//
// Blank lines and lines starting with '#' are skipped.
// The context is checked between lines; cancellation returns the partial set with the context error.
func (c *Converter) ConvertReader(ctx context.Context, source string, r io.Reader, progress chan<- ProgressUpdate) (*models.ConversionSet, error) {
	set := &models.ConversionSet{Source: source, Items: []models.Conversion{}}

	sendProgress(progress, readInputUpdate(source))

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return set, err
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		conversion := c.Convert(line)
		set.Items = append(set.Items, conversion)
		sendProgress(progress, decodeInputUpdate(len(set.Items), conversion))
	}

	if err := scanner.Err(); err != nil {
		return set, fmt.Errorf("failed to read %s: %w", source, err)
	}

	sendProgress(progress, completeUpdate(set))
	c.logger.Debug("converted identifiers", "source", source, "valid", set.Valid(), "failed", set.Failed())
	return set, nil
}

// Render fills every output form of id. Input and Kind are left empty.
func Render(id spotifyid.ID) models.Conversion {
	raw := id.ToRaw()
	return models.Conversion{
		Category: id.Category().String(),
		Base62:   id.ToBase62(),
		Base16:   id.ToBase16(),
		Raw:      fmt.Sprintf("% x", raw[:]),
		URI:      id.ToURI(),
		UUID:     id.UUID().String(),
	}
}

// sendProgress sends a progress update through the channel without blocking.
func sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}
