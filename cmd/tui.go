package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/spotid/internal/formatter"
	"github.com/desertthunder/spotid/internal/models"
	"github.com/desertthunder/spotid/internal/shared"
	"github.com/desertthunder/spotid/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive converter.
//
// Saved conversions are exported to --output when the program exits.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	format, pretty, err := r.outputOptions(cmd)
	if err != nil {
		return err
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, closer, err := shared.NewFileLogger(r.config.Log.File)
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	defer closer.Close()
	shared.SetLogLevel(fileLogger, r.logger.GetLevel())
	r.SetLogger(fileLogger)

	converter, err := r.converter(cmd)
	if err != nil {
		return err
	}

	model := ui.NewModel(converter)
	p := tea.NewProgram(model, tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	saved := model.Saved()
	r.logger.Info("TUI closed", "saved", len(saved))

	path := cmd.String("output")
	if path == "" || len(saved) == 0 {
		return nil
	}

	set := &models.ConversionSet{Source: "tui", Items: saved}
	if err := formatter.WriteExport(set, format, pretty, path); err != nil {
		return err
	}
	return r.writePlain("✓ Wrote %d saved identifiers to %s\n", len(saved), path)
}
