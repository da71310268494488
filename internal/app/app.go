// Package app wires the recfmt command: it reads records, serializes them
// through the registry and displays the results.
package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/bjaus/recfmt"
	"github.com/bjaus/recfmt/internal/config"
	"github.com/bjaus/recfmt/internal/display"
	"github.com/bjaus/recfmt/internal/logutil"
	"github.com/bjaus/recfmt/internal/source"
)

// Run executes the command with args (args[0] is the program name) and
// returns the process exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	err := New(stdout, stderr).RunContext(ctx, args)
	if err == nil {
		return 0
	}
	if ec, ok := err.(cli.ExitCoder); ok {
		if msg := ec.Error(); msg != "" {
			fmt.Fprintln(stderr, "recfmt:", msg)
		}
		return ec.ExitCode()
	}
	fmt.Fprintln(stderr, "recfmt:", err)
	return 1
}

// New builds the cli application writing to stdout and stderr.
func New(stdout, stderr io.Writer) *cli.App {
	formats := strings.Join(formatNames(recfmt.NewDefaultRegistry()), ", ")
	styles := strings.Join(lo.Map(display.Styles(), func(s display.Style, _ int) string { return s.String() }), ", ")
	return &cli.App{
		Name:      "recfmt",
		Usage:     "serialize personal records into JSON, XML, YAML, TOML or a frame",
		Writer:    stdout,
		ErrWriter: stderr,
		// Errors are returned to Run instead of exiting.
		ExitErrHandler: func(*cli.Context, error) {},
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "delimited file of records"},
			&cli.StringFlag{Name: "format", Usage: "output format, one of (any case): " + formats, Value: "JSON"},
			&cli.BoolFlag{Name: "header", Usage: "take field names from the first row"},
			&cli.StringFlag{Name: "delimiter", Usage: "input field delimiter", Value: ","},
			&cli.StringFlag{Name: "display", Usage: "summary style, one of: " + styles + " or go-template=<tmpl>", Value: "table"},
			&cli.StringFlag{Name: "border", Usage: "rounded, ascii, heavy, double or none", Value: "rounded"},
			&cli.BoolFlag{Name: "combine", Usage: "merge all results into one (FRAME only)"},
			&cli.BoolFlag{Name: "export", Usage: "prefix env display lines with export"},
			&cli.BoolFlag{Name: "index", Usage: "add a row number column to the summary table"},
			&cli.StringFlag{Name: "index-header", Usage: "header of the row number column"},
			&cli.IntFlag{Name: "max-width", Usage: "truncate summary cells wider than this (0 for no limit)"},
			&cli.StringFlag{Name: "caption", Usage: "line printed under the summary table"},
			&cli.StringFlag{Name: "align", Usage: "summary cell alignment: left, center or right", Value: "left"},
			&cli.StringFlag{Name: "config", Usage: "config file (yaml, json or toml)"},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error", Value: "warn"},
		},
		Action: func(cCtx *cli.Context) error {
			cfg, err := loadConfig(cCtx)
			if err != nil {
				return err
			}
			log, err := logutil.New(cfg.LogLevel, stderr)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()
			return convert(cfg, log, stdout)
		},
		Commands: []*cli.Command{
			{
				Name:  "formats",
				Usage: "list the registered formats",
				Action: func(cCtx *cli.Context) error {
					for _, name := range formatNames(recfmt.NewDefaultRegistry()) {
						if _, err := fmt.Fprintln(cCtx.App.Writer, name); err != nil {
							return err
						}
					}
					return nil
				},
			},
		},
	}
}

var flagKeys = []string{
	"file", "format", "header", "delimiter", "display", "border", "combine", "export",
	"index", "index-header", "max-width", "caption", "align", "log-level",
}

// loadConfig layers explicitly set flags over the config file and env.
func loadConfig(cCtx *cli.Context) (*config.Config, error) {
	overrides := make(map[string]any)
	for _, name := range flagKeys {
		if cCtx.IsSet(name) {
			overrides[name] = cCtx.Value(name)
		}
	}
	return config.Load(cCtx.String("config"), overrides)
}

func formatNames(reg *recfmt.Registry) []string {
	var names []string
	for _, f := range reg.Formats() {
		names = append(names, f.String())
	}
	return names
}

func registryFor(cfg *config.Config, border display.BorderStyle) *recfmt.Registry {
	return recfmt.NewDefaultRegistry(
		recfmt.WithJSONIndent(cfg.JSON.Indent),
		recfmt.WithXMLRoot(cfg.XML.Root),
		recfmt.WithXMLIndent(cfg.XML.Indent),
		recfmt.WithYAMLSortKeys(cfg.YAML.SortKeys),
		recfmt.WithYAMLIndent(cfg.YAML.Indent),
		recfmt.WithBorder(border),
	)
}

func convert(cfg *config.Config, log *zap.Logger, stdout io.Writer) error {
	if cfg.File == "" {
		return errors.New("missing --file")
	}
	border, err := display.ParseBorder(cfg.Border)
	if err != nil {
		return err
	}
	reg := registryFor(cfg, border)
	format, err := reg.ParseFormat(cfg.Format)
	if err != nil {
		return errors.Wrapf(err, "allowed formats are %s", strings.Join(formatNames(reg), ", "))
	}
	style, err := display.ParseStyle(cfg.Display)
	if err != nil {
		return err
	}
	delim, err := cfg.DelimiterRune()
	if err != nil {
		return err
	}
	align, err := display.ParseAlign(cfg.Align)
	if err != nil {
		return err
	}
	mode := source.Positional
	if cfg.Header {
		mode = source.Header
	}

	records, err := source.ReadFile(cfg.File, source.Options{Mode: mode, Delimiter: delim})
	if err != nil {
		return err
	}
	log.Debug("read records", zap.String("file", cfg.File), zap.Int("count", len(records)))

	results, errs := reg.CreateAll(format, records)
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	if cfg.Combine {
		combined, err := combine(results)
		if err != nil {
			return err
		}
		if combined == nil {
			return nil
		}
		results = []*recfmt.Result{combined}
	}

	b := &batch{log: log, out: stdout}
	for i, res := range results {
		b.emit(i+1, res)
	}
	if b.werr != nil {
		return b.werr
	}
	if err := display.Write(stdout, style, b.header, b.rows, display.Options{
		Table:     tableOptions(cfg, border, align, len(b.header)),
		Delimiter: delim,
		Export:    cfg.Export,
	}); err != nil {
		return errors.Wrap(err, "display")
	}
	if b.failed > 0 {
		return cli.Exit(fmt.Sprintf("%d of %d records failed to serialize", b.failed, len(results)), 1)
	}
	return nil
}

// tableOptions applies the configured alignment and width limit to every one
// of n columns.
func tableOptions(cfg *config.Config, border display.BorderStyle, align display.Alignment, n int) display.TableOptions {
	opts := display.TableOptions{
		Border:      border,
		Aligns:      lo.RepeatBy(n, func(int) display.Alignment { return align }),
		Index:       cfg.Index,
		IndexHeader: cfg.IndexHeader,
		Caption:     cfg.Caption,
	}
	if cfg.MaxWidth > 0 {
		opts.MaxWidths = lo.RepeatBy(n, func(int) int { return cfg.MaxWidth })
	}
	return opts
}

func combine(results []*recfmt.Result) (*recfmt.Result, error) {
	if len(results) == 0 {
		return nil, nil
	}
	acc := results[0]
	for _, res := range results[1:] {
		next, err := acc.Merge(res)
		if err != nil {
			return nil, errors.Wrap(err, "combine")
		}
		acc = next
	}
	return acc, nil
}

// batch prints each result, skipping and logging the ones that fail so the
// rest of the records still come out.
type batch struct {
	log    *zap.Logger
	out    io.Writer
	header []string
	rows   [][]string
	failed int
	werr   error
}

func (b *batch) emit(n int, res *recfmt.Result) {
	if b.werr != nil {
		return
	}
	text, err := res.Stringify()
	if err != nil {
		b.failed++
		b.log.Warn("skipping record", zap.Int("record", n), zap.Stringer("format", res.Format()), zap.Error(err))
		return
	}
	if _, err := fmt.Fprintln(b.out, strings.TrimRight(text, "\n")); err != nil {
		b.werr = errors.Wrap(err, "write output")
		return
	}
	// A frame may hold many rows after --combine; show them all.
	if df, ok := res.Representation().(*recfmt.DataFrame); ok {
		if b.header == nil {
			b.header = df.Columns()
		}
		b.rows = append(b.rows, df.Cells()...)
		return
	}
	header, values := res.Flatten()
	if b.header == nil {
		b.header = header
	}
	b.rows = append(b.rows, values)
}
