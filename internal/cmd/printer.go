package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/renato0307/gitwalk/internal/config"
	"github.com/renato0307/gitwalk/internal/domain"
	"github.com/renato0307/gitwalk/internal/services"
)

// printer writes outcomes line by line. Only the current line is ever coloured.
type printer struct {
	current *color.Color
	out     io.Writer
}

func newPrinter(out io.Writer, mode string) *printer {
	current := color.New(color.FgGreen, color.Bold)
	if colorEnabled(out, mode) {
		current.EnableColor()
	} else {
		current.DisableColor()
	}
	return &printer{current: current, out: out}
}

// colorEnabled resolves the color mode; auto means a terminal and no NO_COLOR
func colorEnabled(out io.Writer, mode string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}

	if _, noColor := os.LookupEnv("NO_COLOR"); noColor {
		return false
	}
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Line prints a plain line
func (p *printer) Line(line string) {
	fmt.Fprintln(p.out, line)
}

// Outcome prints every line of the outcome, highlighting the current one
func (p *printer) Outcome(outcome *services.Outcome) {
	for i, line := range outcome.Lines {
		if i == outcome.Current {
			p.current.Fprintln(p.out, line)
			continue
		}
		p.Line(line)
	}
}

// UserError prints a recoverable failure as a single line
func (p *printer) UserError(err error) {
	if errors.Is(err, domain.ErrEmptyHistory) {
		p.Line(err.Error())
		return
	}
	p.Line("Error: " + err.Error())
}
