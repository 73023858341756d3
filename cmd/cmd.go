// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func outputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format: text, csv, markdown or json (default from config)",
		},
		&cli.BoolFlag{
			Name:  "pretty",
			Usage: "Pretty-print JSON output (default from config)",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Write output to a file instead of stdout",
		},
	}
}

func kindFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "kind",
		Aliases: []string{"k"},
		Usage:   "Input form: auto, base62, base16, uri or raw (default from config)",
	}
}

// decodeCommand converts identifiers given as arguments
func decodeCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "decode",
		Aliases:   []string{"d"},
		Usage:     "Decode identifiers and print every form",
		ArgsUsage: "<id>...",
		Flags:     append([]cli.Flag{kindFlag()}, outputFlags()...),
		Action:    r.Decode,
	}
}

// encodeCommand renders an identifier from its numeric magnitude
func encodeCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "encode",
		Usage: "Render an identifier from a decimal or hex magnitude",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:  "magnitude",
				Usage: "Unsigned decimal magnitude, at most 2^128-1",
			},
			&cli.StringFlag{
				Name:  "hex",
				Usage: "Hex magnitude, at most 32 digits",
			},
			&cli.StringFlag{
				Name:  "category",
				Usage: "track or podcast",
				Value: "track",
			},
		}, outputFlags()...),
		Action: r.Encode,
	}
}

// convertCommand converts identifiers from a file or stdin, one per line
func convertCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "convert",
		Usage: "Batch convert identifiers, one per line",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "Input file, or - for stdin",
				Value:   "-",
			},
			kindFlag(),
		}, outputFlags()...),
		Action: r.Convert,
	}
}

// fileIDCommand validates and orders 20-byte file ids
func fileIDCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "file-id",
		Aliases:   []string{"file"},
		Usage:     "Validate 40 character file ids and print them normalized",
		ArgsUsage: "<hex>...",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "sort",
				Usage: "Sort file ids byte-wise",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output a JSON array",
			},
		},
		Action: r.FileIDs,
	}
}

// configCommand handles configuration file operations
func configCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Configuration commands",
		Commands: []*cli.Command{
			{
				Name:   "init",
				Usage:  "Write the example configuration to --config",
				Action: r.ConfigInit,
			},
			{
				Name:   "show",
				Usage:  "Print the effective configuration",
				Action: r.ConfigShow,
			},
		},
	}
}

// tuiCommand returns the top-level TUI command for interactive conversion.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch the interactive converter",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Export saved conversions to this file on exit",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Export format for --output",
			},
		},
		Action: r.TUI,
	}
}
