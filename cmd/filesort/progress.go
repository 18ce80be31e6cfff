package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/schollz/progressbar/v3"

	"filesort/internal/organizer"
)

// verboseObserver prints one line per move.
type verboseObserver struct {
	organizer.NopObserver
	out      io.Writer
	colorize bool
}

func (v verboseObserver) OnMove(m organizer.Move) {
	fmt.Fprintln(v.out, renderMoveLine(filepath.Base(m.Source), m.Dir, v.colorize))
}

// progressObserver drives a terminal progress bar.
type progressObserver struct {
	organizer.NopObserver
	out         io.Writer
	description string
	bar         *progressbar.ProgressBar
}

func (p *progressObserver) OnStart(total int) {
	if total == 0 {
		return
	}
	p.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(p.out),
		progressbar.OptionSetDescription(p.description),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionThrottle(0),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionEnableColorCodes(shouldColorize(p.out)),
	)
}

func (p *progressObserver) OnMove(organizer.Move) {
	if p.bar != nil {
		_ = p.bar.Add(1)
	}
}

func (p *progressObserver) OnSkip(string) {
	if p.bar != nil {
		_ = p.bar.Add(1)
	}
}

func (p *progressObserver) OnFinish(_ organizer.Summary, err error) {
	if p.bar == nil {
		return
	}
	if err != nil {
		_ = p.bar.Exit()
		return
	}
	_ = p.bar.Finish()
}

// selectObserver picks the progress reporting for a sort command. JSON
// output and non-terminal stdout get no progress at all.
func selectObserver(out io.Writer, verbose, jsonOutput bool, description string) organizer.Observer {
	switch {
	case jsonOutput:
		return organizer.NopObserver{}
	case verbose:
		return verboseObserver{out: out, colorize: shouldColorize(out)}
	case isTerminal(out):
		return &progressObserver{out: out, description: description}
	default:
		return organizer.NopObserver{}
	}
}
