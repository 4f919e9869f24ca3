package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gobbmd/internal/ui/pretty"
	"github.com/yaklabco/gobbmd/pkg/bbast"
	"github.com/yaklabco/gobbmd/pkg/config"
	"github.com/yaklabco/gobbmd/pkg/fsutil"
	"github.com/yaklabco/gobbmd/pkg/parser/bbcode"
)

// tagFinding is one unrecognized tag occurrence in a source file.
type tagFinding struct {
	path string
	tag  string
}

// newCheckCommand creates the check subcommand.
func newCheckCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check [flags] [path...]",
		Short: "Report BBCode tags that have no conversion rule",
		Long: `Parse BBCode sources and report every tag that would pass through
unconverted. Nothing is written; check is a dry run for convert.

With --strict, any finding fails the command with exit code 1.`,
		Example: `  gobbmd check post.bb
  gobbmd check --strict docs/`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			cfg, err := loadCommandConfig(ctx, cmd, nil, nil, nil)
			if err != nil {
				return err
			}
			if strict {
				cfg.Strict = true
			}

			findings, checked, err := runCheck(ctx, cfg, args)
			if err != nil {
				return err
			}

			colorMode, _ := cmd.Flags().GetString("color")
			styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.OutOrStdout()))
			reportFindings(cmd, styles, findings, checked)

			if cfg.Strict && len(findings) > 0 {
				return ErrFindings
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when findings exist")

	return cmd
}

// runCheck parses every input and collects unrecognized-tag findings.
func runCheck(ctx context.Context, cfg *config.Config, args []string) ([]tagFinding, int, error) {
	var inputs []string
	if len(args) == 0 {
		inputs = []string{fsutil.StdinPath}
	} else {
		var err error
		inputs, err = discoverInputs(ctx, args, cfg)
		if err != nil {
			return nil, 0, err
		}
	}

	var findings []tagFinding
	for _, input := range inputs {
		source, err := fsutil.ReadSource(ctx, input)
		if err != nil {
			return nil, 0, err
		}

		doc := bbcode.ParseBytes(source, bbcode.Options{
			VerbatimTags:  cfg.VerbatimTags,
			RequireEquals: cfg.RequireEquals,
		})

		displayPath := input
		if input == fsutil.StdinPath {
			displayPath = "<stdin>"
		}

		for _, n := range bbast.FindAll(doc.Root, isUnrecognizedElement) {
			findings = append(findings, tagFinding{
				path: displayPath,
				tag:  string(n.TagName()),
			})
		}
	}

	return findings, len(inputs), nil
}

// isUnrecognizedElement reports whether the node is a tag with no
// conversion rule.
func isUnrecognizedElement(n *bbast.Node) bool {
	return n.Kind == bbast.NodeElement &&
		bbast.Classify(n.TagName()) == bbast.ElemUnrecognized
}

// reportFindings prints findings grouped per file, then a one-line verdict.
func reportFindings(cmd *cobra.Command, styles *pretty.Styles, findings []tagFinding, checked int) {
	out := cmd.OutOrStdout()

	sort.SliceStable(findings, func(i, j int) bool {
		return findings[i].path < findings[j].path
	})

	for _, f := range findings {
		fmt.Fprintf(out, "%s %s: unrecognized tag %s\n",
			styles.Warning.Render("warn"),
			styles.FilePath.Render(f.path),
			styles.TagName.Render("["+f.tag+"]"))
	}

	if len(findings) == 0 {
		fmt.Fprintf(out, "%s %d file(s) checked, every tag has a conversion rule\n",
			styles.Success.Render("ok"), checked)
		return
	}
	fmt.Fprintf(out, "%s %d file(s) checked, %d unrecognized tag(s)\n",
		styles.Warning.Render("warn"), checked, len(findings))
}
