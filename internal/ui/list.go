package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/spotid/internal/models"
)

var _ list.Item = conversionItem{}

// conversionItem wraps [models.Conversion] to implement [list.Item].
type conversionItem struct {
	conversion models.Conversion
}

func (i conversionItem) FilterValue() string { return i.conversion.Input }
func (i conversionItem) Title() string       { return i.conversion.URI }
func (i conversionItem) Description() string {
	return fmt.Sprintf("%s • %s", i.conversion.Base16, i.conversion.UUID)
}
