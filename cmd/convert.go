package main

import (
	"context"
	"fmt"
	"io"
	"math/big"
	"os"
	"slices"

	"github.com/desertthunder/spotid/internal/models"
	"github.com/desertthunder/spotid/internal/shared"
	"github.com/desertthunder/spotid/internal/spotifyid"
	"github.com/desertthunder/spotid/internal/tasks"
	"github.com/urfave/cli/v3"
	"lukechampine.com/uint128"
)

// progressBuffer bounds the progress updates kept for debug logging during a batch.
const progressBuffer = 1024

// Decode converts every argument and prints the result.
//
// Output is written even when some inputs fail; the command then returns [shared.ErrInvalidInput].
func (r *Runner) Decode(ctx context.Context, cmd *cli.Command) error {
	values := cmd.Args().Slice()
	if len(values) == 0 {
		return fmt.Errorf("%w: at least one identifier", shared.ErrMissingArgument)
	}

	converter, err := r.converter(cmd)
	if err != nil {
		return err
	}

	set := converter.ConvertAll("arguments", values)
	if err := r.emit(cmd, set); err != nil {
		return err
	}
	return failures(set)
}

// Encode renders an identifier from --magnitude or --hex.
func (r *Runner) Encode(ctx context.Context, cmd *cli.Command) error {
	magnitude, hex := cmd.String("magnitude"), cmd.String("hex")

	if magnitude == "" && hex == "" {
		return fmt.Errorf("%w: either --magnitude or --hex must be provided", shared.ErrMissingArgument)
	}
	if magnitude != "" && hex != "" {
		return fmt.Errorf("%w: cannot specify both --magnitude and --hex", shared.ErrInvalidArgument)
	}

	category, err := spotifyid.ParseCategory(cmd.String("category"))
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrInvalidFlag, err)
	}

	var (
		n     uint128.Uint128
		input string
		kind  string
	)
	if magnitude != "" {
		if n, err = parseMagnitude(magnitude); err != nil {
			return err
		}
		input, kind = magnitude, "magnitude"
	} else {
		if len(hex) > spotifyid.Base16Len {
			return fmt.Errorf("%w: --hex has %d digits, at most %d fit in 128 bits", shared.ErrInvalidFlag, len(hex), spotifyid.Base16Len)
		}
		id, err := spotifyid.FromBase16(hex)
		if err != nil {
			return fmt.Errorf("%w: %w", shared.ErrInvalidFlag, err)
		}
		n, input, kind = id.Magnitude(), hex, "base16"
	}

	conversion := tasks.Render(spotifyid.New(n, category))
	conversion.Input, conversion.Kind = input, kind

	return r.emit(cmd, &models.ConversionSet{Source: "flags", Items: []models.Conversion{conversion}})
}

// Convert reads identifiers line by line from --input and prints the batch.
func (r *Runner) Convert(ctx context.Context, cmd *cli.Command) error {
	converter, err := r.converter(cmd)
	if err != nil {
		return err
	}

	source := cmd.String("input")
	var reader io.Reader
	if source == "" || source == "-" {
		source, reader = "stdin", r.input
	} else {
		f, err := os.Open(source)
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		reader = f
	}

	logger := shared.WithLogger(r.logger, "source", source)
	logger.Info("converting identifiers", "kind", converter.Kind())

	progress := make(chan tasks.ProgressUpdate, progressBuffer)
	set, err := converter.ConvertReader(ctx, source, reader, progress)
	close(progress)
	for update := range progress {
		logger.Debug(update.Message, "phase", update.Phase, "step", update.Step)
	}
	if err != nil {
		return err
	}

	logger.Info("conversion complete", "valid", set.Valid(), "failed", set.Failed())
	if err := r.emit(cmd, set); err != nil {
		return err
	}
	return failures(set)
}

// FileIDs validates each argument as a [spotifyid.FileID] and prints the normalized hex.
func (r *Runner) FileIDs(ctx context.Context, cmd *cli.Command) error {
	values := cmd.Args().Slice()
	if len(values) == 0 {
		return fmt.Errorf("%w: at least one file id", shared.ErrMissingArgument)
	}

	ids := make([]spotifyid.FileID, 0, len(values))
	for _, v := range values {
		id, err := spotifyid.ParseFileID(v)
		if err != nil {
			return fmt.Errorf("%w: file id %q: %w", shared.ErrInvalidInput, v, err)
		}
		ids = append(ids, id)
	}

	if cmd.Bool("sort") {
		slices.SortFunc(ids, spotifyid.FileID.Compare)
	}

	if cmd.Bool("json") {
		return r.writeJSON(ids, false)
	}
	for _, id := range ids {
		if err := r.writePlain("%s\n", id); err != nil {
			return err
		}
	}
	return nil
}

// parseMagnitude reads an unsigned decimal that must fit in 128 bits.
func parseMagnitude(s string) (uint128.Uint128, error) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return uint128.Zero, fmt.Errorf("%w: --magnitude %q is not a decimal integer", shared.ErrInvalidFlag, s)
	}
	if n.Sign() < 0 || n.BitLen() > 128 {
		return uint128.Zero, fmt.Errorf("%w: --magnitude %s is outside [0, 2^128-1]", shared.ErrInvalidFlag, s)
	}
	return uint128.FromBig(n), nil
}

func failures(set *models.ConversionSet) error {
	if n := set.Failed(); n > 0 {
		return fmt.Errorf("%w: %d of %d identifiers failed to decode", shared.ErrInvalidInput, n, len(set.Items))
	}
	return nil
}
