package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/spotid/internal/formatter"
	"github.com/desertthunder/spotid/internal/models"
	"github.com/desertthunder/spotid/internal/shared"
	"github.com/desertthunder/spotid/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	configPath string
	logger     *log.Logger
	output     io.Writer
	input      io.Reader
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	ConfigPath string
	Logger     *log.Logger
	Output     io.Writer
	Input      io.Reader
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Input == nil {
		opts.Input = os.Stdin
	}

	return &Runner{
		config:     opts.Config,
		configPath: opts.ConfigPath,
		logger:     opts.Logger,
		output:     opts.Output,
		input:      opts.Input,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		decodeCommand, encodeCommand, convertCommand, fileIDCommand, configCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}
	return commands
}

// SetLogger replaces the runner's logger.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
}

// LoadConfig reads --config when the file exists and applies the log level.
//
// A missing file keeps the defaults; an unreadable or invalid one is an error.
func (r *Runner) LoadConfig(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	r.configPath = cmd.String("config")

	if _, err := os.Stat(r.configPath); err == nil {
		config, err := shared.LoadConfig(r.configPath)
		if err != nil {
			return ctx, fmt.Errorf("failed to load %s: %w", r.configPath, err)
		}
		r.config = config
		r.logger.Debug("loaded config", "path", r.configPath)
	}

	if cmd.Bool("verbose") {
		shared.SetLogLevel(r.logger, log.DebugLevel)
	} else {
		shared.SetLogLevel(r.logger, r.config.LogLevel())
	}
	return ctx, nil
}

// converter builds a [tasks.Converter] from --kind, falling back to output.kind in the config.
func (r *Runner) converter(cmd *cli.Command) (*tasks.Converter, error) {
	value := r.config.Output.Kind
	if cmd.IsSet("kind") {
		value = cmd.String("kind")
	}

	kind, err := models.ParseInputKind(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrInvalidFlag, err)
	}
	return tasks.NewConverter(kind, r.logger), nil
}

// outputOptions resolves --format and --pretty against the config.
func (r *Runner) outputOptions(cmd *cli.Command) (formatter.Format, bool, error) {
	value := r.config.Output.Format
	if cmd.IsSet("format") {
		value = cmd.String("format")
	}
	format, err := formatter.ParseFormat(value)
	if err != nil {
		return "", false, err
	}

	pretty := r.config.Output.Pretty
	if cmd.IsSet("pretty") {
		pretty = cmd.Bool("pretty")
	}
	return format, pretty, nil
}

// emit writes set to --output when given, otherwise to the runner's output.
func (r *Runner) emit(cmd *cli.Command, set *models.ConversionSet) error {
	format, pretty, err := r.outputOptions(cmd)
	if err != nil {
		return err
	}

	if path := cmd.String("output"); path != "" {
		if err := formatter.WriteExport(set, format, pretty, path); err != nil {
			return err
		}
		r.logger.Info("export written", "path", path, "format", format, "items", len(set.Items))
		return r.writePlain("✓ Wrote %d identifiers to %s\n", len(set.Items), path)
	}

	data, err := formatter.Export(set, format, pretty)
	if err != nil {
		return err
	}
	if _, err := r.output.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	output, err := shared.MarshalJSON(data, pretty)
	if err != nil {
		return err
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}
	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
