package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gobbmd/internal/configloader"
	"github.com/yaklabco/gobbmd/internal/logging"
	"github.com/yaklabco/gobbmd/internal/ui/pretty"
	"github.com/yaklabco/gobbmd/pkg/bbast"
	"github.com/yaklabco/gobbmd/pkg/config"
	"github.com/yaklabco/gobbmd/pkg/fsutil"
	"github.com/yaklabco/gobbmd/pkg/parser/bbcode"
	"github.com/yaklabco/gobbmd/pkg/render"
	"github.com/yaklabco/gobbmd/pkg/render/html"
	"github.com/yaklabco/gobbmd/pkg/render/markdown"
)

// newConvertCommand creates the convert subcommand.
func newConvertCommand() *cobra.Command {
	var (
		output        string
		format        string
		tabWidth      int
		verbatimTags  []string
		requireEquals bool
		toStdout      bool
	)

	cmd := &cobra.Command{
		Use:   "convert [flags] [path...]",
		Short: "Convert BBCode inputs to Markdown or HTML",
		Long: `Convert BBCode sources to the configured output format.

With no arguments, convert reads BBCode from standard input and writes the
result to standard output. File arguments are converted to sibling files
with the output format's extension; directory arguments are searched for
sources by extension first.`,
		Example: `  # stdin to stdout
  echo '[b]hello[/b]' | gobbmd convert

  # one file, output path derived from the input
  gobbmd convert post.bb

  # a directory tree, rendered as HTML
  gobbmd convert --format html docs/`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx = logging.WithLogger(ctx, logging.Default())

			cfg, err := loadCommandConfig(ctx, cmd, func(cli *config.Config) {
				if cmd.Flags().Changed("format") {
					cli.Format = config.Format(format)
				}
				if cmd.Flags().Changed("verbatim") {
					cli.VerbatimTags = verbatimTags
				}
			}, flagIntPtr(cmd, "tab-width", &tabWidth), flagBoolPtr(cmd, "require-equals", &requireEquals))
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("output") {
				cfg.Output = output
			}

			if len(args) == 0 {
				return convertStdin(ctx, cmd, cfg)
			}
			return convertFiles(ctx, cmd, cfg, args, toStdout)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output path (single input only)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: markdown, html")
	cmd.Flags().IntVar(&tabWidth, "tab-width", 0, "expand tabs to this many spaces (0-255)")
	cmd.Flags().StringSliceVar(&verbatimTags, "verbatim", nil,
		"tag names whose interior is never parsed")
	cmd.Flags().BoolVar(&requireEquals, "require-equals", true,
		"reject [name value] style parameters")
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "write results to stdout instead of files")

	return cmd
}

// loadCommandConfig resolves configuration for one command invocation,
// layering explicitly-set CLI flags on top of file and environment sources.
func loadCommandConfig(
	ctx context.Context,
	cmd *cobra.Command,
	applyFlags func(cli *config.Config),
	tabWidth *int,
	requireEquals *bool,
) (*config.Config, error) {
	explicitPath, _ := cmd.Flags().GetString("config")

	cliCfg := &config.Config{}
	if applyFlags != nil {
		applyFlags(cliCfg)
	}

	result, err := configloader.Load(ctx, configloader.LoadOptions{
		ExplicitPath:     explicitPath,
		CLIConfig:        cliCfg,
		CLITabWidth:      tabWidth,
		CLIRequireEquals: requireEquals,
	})
	if err != nil {
		return nil, err
	}

	logger := logging.Default()
	for _, w := range result.Warnings {
		logger.Warn("configuration warning", logging.FieldError, w)
	}
	for _, path := range result.LoadedFrom {
		logger.Debug("loaded config", logging.FieldPath, path)
	}

	return result.Config, nil
}

// flagIntPtr returns the flag value when it was explicitly set, nil
// otherwise. Zero is a meaningful value for some flags, so presence has to
// be tracked separately from the value.
func flagIntPtr(cmd *cobra.Command, name string, value *int) *int {
	if cmd.Flags().Changed(name) {
		return value
	}
	return nil
}

// flagBoolPtr is the bool counterpart of flagIntPtr.
func flagBoolPtr(cmd *cobra.Command, name string, value *bool) *bool {
	if cmd.Flags().Changed(name) {
		return value
	}
	return nil
}

// convertStdin converts standard input to standard output (or --output).
func convertStdin(ctx context.Context, cmd *cobra.Command, cfg *config.Config) error {
	source, err := fsutil.ReadSource(ctx, fsutil.StdinPath)
	if err != nil {
		return err
	}

	rendered, _, err := convertSource(ctx, source, cfg)
	if err != nil {
		return err
	}

	if cfg.Output != "" {
		return fsutil.WriteAtomic(ctx, cfg.Output, rendered, 0)
	}

	_, err = cmd.OutOrStdout().Write(rendered)
	return err
}

// convertFiles converts the discovered file set and prints a run summary.
func convertFiles(
	ctx context.Context,
	cmd *cobra.Command,
	cfg *config.Config,
	args []string,
	toStdout bool,
) error {
	inputs, err := discoverInputs(ctx, args, cfg)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no BBCode sources found in %s", strings.Join(args, ", "))
	}

	if cfg.Output != "" && len(inputs) > 1 {
		return fmt.Errorf("--output requires a single input, got %d", len(inputs))
	}

	logger := logging.Default()
	summary := pretty.Summary{}

	for _, input := range inputs {
		source, err := fsutil.ReadSource(ctx, input)
		if err != nil {
			return err
		}

		rendered, unknownTags, err := convertSource(ctx, source, cfg)
		if err != nil {
			return fmt.Errorf("convert %s: %w", input, err)
		}
		summary.UnknownTags += unknownTags

		if toStdout {
			if _, err := cmd.OutOrStdout().Write(rendered); err != nil {
				return err
			}
		} else {
			outPath := cfg.Output
			if outPath == "" {
				outPath = outputPath(input, cfg.Format)
			}
			if err := fsutil.WriteAtomic(ctx, outPath, rendered, 0); err != nil {
				return err
			}
			logger.Debug("wrote output",
				logging.FieldInput, input,
				logging.FieldOutput, outPath,
				logging.FieldBytesWritten, len(rendered))
		}

		summary.FilesConverted++
		summary.BytesWritten += int64(len(rendered))
	}

	if !toStdout {
		colorMode, _ := cmd.Flags().GetString("color")
		styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, os.Stderr))
		if err := pretty.RenderSummary(cmd.ErrOrStderr(), styles, summary); err != nil {
			return err
		}
	}
	return nil
}

// convertSource parses one BBCode source and renders it with the configured
// backend. It also reports how many tags fell back to raw passthrough.
func convertSource(ctx context.Context, source []byte, cfg *config.Config) ([]byte, int, error) {
	doc := bbcode.ParseBytes(source, bbcode.Options{
		VerbatimTags:  cfg.VerbatimTags,
		RequireEquals: cfg.RequireEquals,
	})

	var buf bytes.Buffer
	if err := newRenderer(cfg).Render(ctx, doc, &buf); err != nil {
		return nil, 0, err
	}

	return buf.Bytes(), countUnknownTags(doc), nil
}

// newRenderer selects the backend for the configured format.
func newRenderer(cfg *config.Config) render.Renderer {
	opts := markdown.Options{TabWidth: cfg.TabWidth}
	if cfg.Format == config.FormatHTML {
		return html.New(opts)
	}
	return markdown.New(opts)
}

// countUnknownTags counts elements that no conversion rule matched.
func countUnknownTags(doc *bbast.Document) int {
	unknown := bbast.FindAll(doc.Root, func(n *bbast.Node) bool {
		return n.Kind == bbast.NodeElement &&
			bbast.Classify(n.TagName()) == bbast.ElemUnrecognized
	})
	return len(unknown)
}

// outputPath derives the sibling output path for an input file.
func outputPath(input string, format config.Format) string {
	ext := ".md"
	if format == config.FormatHTML {
		ext = ".html"
	}
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + ext
}
