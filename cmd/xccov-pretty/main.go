package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/jupierce/xccov-pretty/pkg/config"
	"github.com/jupierce/xccov-pretty/pkg/format"
	"github.com/jupierce/xccov-pretty/pkg/log"
	"github.com/jupierce/xccov-pretty/pkg/render"
	"github.com/jupierce/xccov-pretty/pkg/report"
)

func main() {
	cmd := newRootCommand(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		handleError(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	opts := config.NewOptions()

	cmd := &cobra.Command{
		Use:   "xccov-pretty",
		Short: "Pretty-print an Xcode coverage report",
		Long: `xccov-pretty reads the JSON produced by 'xcrun xccov view --report --json'
from standard input and prints it either as an indented per-target file tree
or, with --comment, as an HTML summary suitable for a pull request comment.`,
		Example: `  # Print a coverage tree
  xcrun xccov view --report --json Test.xcresult | xccov-pretty

  # Print a pull request comment for a single target
  xcrun xccov view --report --json Test.xcresult | xccov-pretty --comment --target Core`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.Load(cmd.Flags()); err != nil {
				return err
			}
			if err := opts.Validate(); err != nil {
				return err
			}

			logger := log.New(opts.Level(), stderr)
			defer logger.Sync()

			return run(stdin, stdout, logger, opts)
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	opts.BindFlags(cmd.Flags())

	return cmd
}

func run(stdin io.Reader, stdout io.Writer, logger *log.Logger, opts *config.Options) error {
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return fmt.Errorf("%w: pipe the output of 'xcrun xccov view --report --json' into this command", report.ErrNoInput)
	}

	data, err := report.Read(stdin)
	if err != nil {
		return err
	}
	logger.Debug("Read %s of coverage JSON", humanize.Bytes(uint64(len(data))))

	project, err := report.Decode(data)
	if err != nil {
		return err
	}
	logger.Debug("Decoded %d targets", len(project.Targets))

	renderOpts := render.Options{
		Targets:   opts.AllowList(),
		Formatter: format.Default(),
	}
	logger.Debug("Formatting numbers for locale %s", renderOpts.Formatter.Tag())
	checkTargets(logger, project, renderOpts.Targets)

	var out bytes.Buffer
	mode := "coverage table"
	if opts.Comment {
		mode = "pull request comment"
		logger.Debug("Rendering %s", mode)
		if err := render.NewComment(project, renderOpts).Render(&out); err != nil {
			return fmt.Errorf("render comment: %w", err)
		}
	} else {
		logger.Debug("Rendering %s", mode)
		out.WriteString(render.NewTable(project, renderOpts).String())
		out.WriteString(render.Overall(project, renderOpts.Formatter))
		out.WriteString("\n")
	}

	size := humanize.Bytes(uint64(out.Len()))
	if _, err := out.WriteTo(stdout); err != nil {
		logger.Error("Writing %s %s failed", size, mode)
		return fmt.Errorf("write output: %w", err)
	}
	logger.Info("Wrote %s %s", size, mode)
	return nil
}

// checkTargets warns about --target names missing from the report and traces
// every target that will not be rendered.
func checkTargets(logger *log.Logger, project *report.ProjectReport, allowList []string) {
	present := make(map[string]bool, len(project.Targets))
	for _, target := range project.Targets {
		present[target.Name] = true
	}
	allowed := make(map[string]bool, len(allowList))
	for _, name := range allowList {
		allowed[name] = true
		if !present[name] {
			logger.Warning("Target %s not found in report", name)
		}
	}

	for _, target := range project.Targets {
		switch {
		case len(target.Files) == 0:
			logger.Trace("Skipping target %s: no files", target.Name)
		case allowList != nil && !allowed[target.Name]:
			logger.Trace("Skipping target %s: not in --target", target.Name)
		}
	}
}

func handleError(w io.Writer, err error) {
	if err == nil || errors.Is(err, pflag.ErrHelp) {
		return
	}
	message := err.Error()
	var decodeErr *report.DecodeError
	if errors.As(err, &decodeErr) {
		message = fmt.Sprintf("%s\nHint: the input must be the output of 'xcrun xccov view --report --json'.", err)
	}
	fmt.Fprintf(w, "%s %s\n", color.New(color.FgRed, color.Bold).Sprint("Error:"), message)
}
