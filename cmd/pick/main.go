// pick cleans a social-media comment export and draws giveaway winners
// fairly, with an auditable seed and a post-hoc engagement report.
//
// Usage:
//
//	pick clean raw.csv --out cleaned.csv
//	pick draw cleaned.csv --winners 10 --seed 42
//	pick stats cleaned.csv --winners alice,bob
//
// Output modes (auto-detected):
//
//	terminal  — styled Unicode output (default when TTY)
//	llm       — terse plain text (default when piped)
//	json      — structured JSON for automation
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/dkoosis/pick/internal/config"
	"github.com/dkoosis/pick/internal/report"
	"github.com/dkoosis/pick/internal/version"
	"github.com/dkoosis/pick/pkg/entry"
	"github.com/dkoosis/pick/pkg/pattern"
	"github.com/dkoosis/pick/pkg/render"
	"github.com/dkoosis/pick/pkg/reveal"
	"github.com/dkoosis/pick/pkg/selector"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return 2
	}

	switch args[0] {
	case "clean":
		return runClean(args[1:], stdout, stderr)
	case "draw":
		return runDraw(args[1:], stdout, stderr)
	case "stats":
		return runStats(args[1:], stdout, stderr)
	case "version", "--version", "-version":
		fmt.Fprintf(stdout, "pick %s (%s, built %s)\n", version.Version, version.CommitHash, version.BuildDate)
		return 0
	case "help", "--help", "-h":
		usage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "pick: unknown command %q\n", args[0])
		usage(stderr)
		return 2
	}
}

func usage(w io.Writer) {
	fmt.Fprint(w, `pick — giveaway cleaning, drawing, and reporting

Commands:
  clean <raw.csv>      relabel columns, drop duplicate rows, write cleaned CSV
  draw  <cleaned.csv>  draw winners by weighted random sampling
  stats <cleaned.csv>  engagement report for a finished giveaway
  version              print version

Run 'pick <command> -h' for command flags.
`)
}

// commonFlags registers the flags shared by every subcommand.
type commonFlags struct {
	format  *string
	theme   *string
	noColor *bool
	ci      *bool
}

func registerCommon(fs *flag.FlagSet) commonFlags {
	return commonFlags{
		format:  fs.String("format", "auto", "Output format: auto, terminal, llm, json"),
		theme:   fs.String("theme", "", "Theme: default, orca, mono"),
		noColor: fs.Bool("no-color", false, "Disable colors"),
		ci:      fs.Bool("ci", false, "CI mode: mono theme, no interactive reveal"),
	}
}

func runClean(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("pick clean", flag.ContinueOnError)
	fs.SetOutput(stderr)
	out := fs.String("out", "cleaned.csv", "Path for the cleaned CSV")
	common := registerCommon(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "pick clean: expected exactly one input file")
		return 2
	}
	if !checkFormat(*common.format, stderr) {
		return 2
	}

	cfg := effectiveConfig(fs, common, nil)

	rows, err := entry.ReadRawFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "pick: %v\n", err)
		return 1
	}

	cleaned, stats := entry.Clean(rows)
	if err := entry.WriteFile(*out, cleaned); err != nil {
		fmt.Fprintf(stderr, "pick: %v\n", err)
		return 1
	}

	emit(stdout, cfg, *common.format, report.Clean(stats, *out))
	return 0
}

func runDraw(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("pick draw", flag.ContinueOnError)
	fs.SetOutput(stderr)
	winners := fs.Int("winners", selector.DefaultWinners, "How many winners to draw")
	minMentions := fs.Int("min-mentions", selector.DefaultMinMentions, "Mentions required for a valid entry")
	seed := fs.Int64("seed", 0, "Random seed for a reproducible draw")
	doReveal := fs.Bool("reveal", false, "Animate the winner announcement (TTY only)")
	common := registerCommon(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "pick draw: expected exactly one input file")
		return 2
	}
	if !checkFormat(*common.format, stderr) {
		return 2
	}

	cfg := effectiveConfig(fs, common, &config.Flags{
		Winners:     *winners,
		MinMentions: *minMentions,
		Seed:        *seed,
	})

	entries, err := entry.ReadFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "pick: %v\n", err)
		return 1
	}

	valid := selector.FilterValid(entries, cfg.MinMentions)
	scores, err := selector.Aggregate(valid)
	if err != nil {
		return pipelineError(stderr, err)
	}

	// Without an explicit seed the draw derives one and reports it, so
	// any run can be replayed for audit.
	drawSeed := cfg.SeedValue
	if !cfg.SeedExplicit {
		drawSeed = time.Now().UnixNano()
	}

	res, err := selector.Draw(scores, cfg.Winners, drawSeed)
	if err != nil {
		return pipelineError(stderr, err)
	}

	patterns := report.Draw(res, scores, cfg.Winners, drawSeed, len(entries), len(valid))

	if *doReveal && !cfg.CI && isTTYWriter(stdout) {
		if table := winnerTable(patterns); table != nil {
			if err := reveal.Run(table); err != nil {
				fmt.Fprintf(stderr, "pick: reveal failed: %v\n", err)
			}
		}
	}

	emit(stdout, cfg, *common.format, patterns)
	return 0
}

func runStats(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("pick stats", flag.ContinueOnError)
	fs.SetOutput(stderr)
	winnersList := fs.String("winners", "", "Comma-separated usernames that won")
	minMentions := fs.Int("min-mentions", selector.DefaultMinMentions, "Mentions required for a valid entry")
	highVolume := fs.Int("high-volume", selector.DefaultHighVolume, "Valid-entry count above which a user is flagged")
	common := registerCommon(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "pick stats: expected exactly one input file")
		return 2
	}
	if !checkFormat(*common.format, stderr) {
		return 2
	}

	cfg := effectiveConfig(fs, common, &config.Flags{
		MinMentions: *minMentions,
		HighVolume:  *highVolume,
	})

	entries, err := entry.ReadFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "pick: %v\n", err)
		return 1
	}

	valid := selector.FilterValid(entries, cfg.MinMentions)
	scores, err := selector.Aggregate(valid)
	if err != nil {
		return pipelineError(stderr, err)
	}

	var winners []string
	for _, w := range strings.Split(*winnersList, ",") {
		if u := entry.NormalizeUsername(w); u != "" {
			winners = append(winners, u)
		}
	}

	flagged := selector.FlagHighVolume(scores, cfg.HighVolume)
	patterns := report.Stats(scores, winners, flagged, cfg.HighVolume)
	if len(patterns) == 0 {
		fmt.Fprintln(stderr, "pick: nothing to report (no winners named and no high-volume users)")
		return 0
	}

	emit(stdout, cfg, *common.format, patterns)
	return 0
}

// effectiveConfig merges .pick.yaml, environment, and flags. extra
// carries subcommand-specific flag values; Visit marks what the user
// actually set so defaults do not clobber the YAML layer.
func effectiveConfig(fs *flag.FlagSet, common commonFlags, extra *config.Flags) *config.AppConfig {
	flags := config.Flags{}
	if extra != nil {
		flags = *extra
	}
	flags.ThemeName = *common.theme
	flags.NoColor = *common.noColor
	flags.CI = *common.ci

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "winners":
			flags.WinnersSet = true
		case "min-mentions":
			flags.MinMentionsSet = true
		case "high-volume":
			flags.HighVolumeSet = true
		case "seed":
			flags.SeedSet = true
		case "no-color":
			flags.NoColorSet = true
		case "ci":
			flags.CISet = true
		}
	})

	return config.Merge(config.Load(), flags)
}

// checkFormat validates the --format flag, writing a usage error for
// unknown values.
func checkFormat(format string, stderr io.Writer) bool {
	if validFormat(format) {
		return true
	}
	fmt.Fprintf(stderr, "pick: unknown format %q (expected auto, terminal, llm, json)\n", format)
	return false
}

// emit renders patterns in the resolved format and writes them out.
func emit(stdout io.Writer, cfg *config.AppConfig, formatFlag string, patterns []pattern.Pattern) {
	mode := resolveFormat(formatFlag, stdout)
	fmt.Fprint(stdout, selectRenderer(mode, cfg.Theme, stdout).Render(patterns))
}

func validFormat(f string) bool {
	switch f {
	case "auto", "terminal", "llm", "json":
		return true
	}
	return false
}

// resolveFormat maps "auto" to terminal on a TTY, llm otherwise.
func resolveFormat(formatFlag string, stdout io.Writer) string {
	if formatFlag != "auto" {
		return formatFlag
	}
	if isTTYWriter(stdout) {
		return "terminal"
	}
	return "llm"
}

func selectRenderer(mode, themeName string, stdout io.Writer) render.Renderer {
	switch mode {
	case "json":
		return render.NewJSON()
	case "llm":
		return render.NewLLM()
	default:
		width, _ := termSize(stdout)
		return render.NewTerminal(render.ThemeByName(themeName), width)
	}
}

func pipelineError(stderr io.Writer, err error) int {
	if errors.Is(err, selector.ErrEmptyInput) {
		fmt.Fprintln(stderr, "pick: no valid entries found — check the upstream cleaning step and the mention threshold")
		return 1
	}
	fmt.Fprintf(stderr, "pick: %v\n", err)
	return 1
}

func winnerTable(patterns []pattern.Pattern) *pattern.WinnerTable {
	for _, p := range patterns {
		if t, ok := p.(*pattern.WinnerTable); ok {
			return t
		}
	}
	return nil
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// termSize returns the terminal dimensions for w, defaulting to 80x24.
func termSize(w io.Writer) (width, height int) {
	width, height = 80, 24
	if f, ok := w.(*os.File); ok {
		if tw, th, err := term.GetSize(int(f.Fd())); err == nil {
			if tw > 0 {
				width = tw
			}
			if th > 0 {
				height = th
			}
		}
	}
	return width, height
}
