package tasks

import (
	"fmt"

	"github.com/desertthunder/spotid/internal/models"
)

// ProgressUpdate represents a progress event during a batch conversion.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase, 0 when unknown
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data, a [models.Conversion] while decoding
}

// Operation phase enumeration
type Phase int

const (
	ReadInput Phase = iota
	DecodeInput
	Complete
)

func (p Phase) String() string {
	switch p {
	case ReadInput:
		return "read_input"
	case DecodeInput:
		return "decode_input"
	case Complete:
		return "complete"
	default:
		return ""
	}
}

func readInputUpdate(source string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ReadInput,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Reading identifiers from %s...", source),
	}
}

func decodeInputUpdate(step int, conversion models.Conversion) ProgressUpdate {
	msg := fmt.Sprintf("Decoded %s", conversion.Input)
	if !conversion.OK() {
		msg = fmt.Sprintf("Failed to decode %s: %s", conversion.Input, conversion.Err)
	}
	return ProgressUpdate{
		Phase:   DecodeInput,
		Step:    step,
		Message: msg,
		Data:    conversion,
	}
}

func completeUpdate(set *models.ConversionSet) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Complete,
		Step:    len(set.Items),
		Total:   len(set.Items),
		Message: fmt.Sprintf("Converted %d/%d identifiers", set.Valid(), len(set.Items)),
		Data:    set,
	}
}
