package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/dmp-tools/tokenpanel/internal/panel"
)

const (
	defaultWidth = 80
	minWidth     = 40
	maxWidth     = 120
)

// terminalWidth returns the width to lay the panel out in
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return defaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return clampWidth(width)
}

func clampWidth(width int) int {
	switch {
	case width < minWidth:
		return minWidth
	case width > maxWidth:
		return maxWidth
	default:
		return width
	}
}

func renderView(w io.Writer, v panel.View, width int) {
	title := color.New(color.Bold)
	label := color.New(color.FgCyan)

	title.Fprintln(w, v.Title)
	fmt.Fprintln(w, strings.Repeat("─", width))

	if v.ShowForm {
		label.Fprintf(w, "%s:\n", v.Placeholder)
		for _, o := range v.Options {
			mark := " "
			if o.Selected {
				mark = "*"
			}
			fmt.Fprintf(w, "  [%s] %-10s %s\n", mark, o.Name, o.Label)
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, v.EmptyPrompt)
		return
	}

	label.Fprintf(w, "%s: ", v.HeaderName)
	fmt.Fprintln(w, v.Token)
	fmt.Fprintln(w, v.CopyTip)
	fmt.Fprintln(w)
	title.Fprintln(w, v.UsageTitle)
	fmt.Fprintln(w, strings.Repeat("─", width))
	fmt.Fprintln(w, v.Guide)
}
