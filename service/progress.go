package service

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

// ProgressReporter receives per-module progress notifications from a
// Builder.Build run. Describe is called before a module is parsed;
// Increment(1) is called once it's done; Complete runs when the
// fixed-point loop terminates. The module count isn't known up front (the
// module vector grows as the loop discovers new imports), so implementations
// render an indeterminate/growing bar rather than a fixed-total one.
type ProgressReporter interface {
	Describe(path string)
	Increment(n int)
	Complete()
}

// NewProgressReporter returns a terminal progress bar when enabled and
// stderr is an interactive terminal, and a no-op reporter otherwise.
func NewProgressReporter(enabled bool) ProgressReporter {
	if enabled && isInteractiveEnvironment() {
		return newBarProgressReporter(os.Stderr)
	}
	return noOpProgressReporter{}
}

func isInteractiveEnvironment() bool {
	return isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
}

type barProgressReporter struct {
	bar *progressbar.ProgressBar
}

func newBarProgressReporter(w io.Writer) *barProgressReporter {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowBytes(false),
		progressbar.OptionSetWidth(18),
		progressbar.OptionSetDescription("building module graph"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionShowCount(),
	)
	return &barProgressReporter{bar: bar}
}

func (p *barProgressReporter) Describe(path string) {
	p.bar.Describe(path)
}

func (p *barProgressReporter) Increment(n int) {
	_ = p.bar.Add(n)
}

func (p *barProgressReporter) Complete() {
	_ = p.bar.Finish()
}

type noOpProgressReporter struct{}

func (noOpProgressReporter) Describe(string) {}
func (noOpProgressReporter) Increment(int)   {}
func (noOpProgressReporter) Complete()       {}
