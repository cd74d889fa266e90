package main

import (
	"errors"
	"io"
	"sync"

	"github.com/fatih/color"

	"github.com/dmp-tools/tokenpanel/internal/client"
)

// activity is a progress indicator drawn on the notifier's writer
type activity interface {
	Start()
	Stop()
}

// notifier prints panel feedback as colored one-line notices. A running
// activity is stopped before anything is printed.
type notifier struct {
	w       io.Writer
	warn    *color.Color
	success *color.Color
	fail    *color.Color

	mu       sync.Mutex
	active   activity
	reported bool
}

func newNotifier(w io.Writer) *notifier {
	return &notifier{
		w:       w,
		warn:    color.New(color.FgYellow),
		success: color.New(color.FgGreen),
		fail:    color.New(color.FgRed),
	}
}

// start runs a until the next notice or stop
func (n *notifier) start(a activity) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.active = a
	a.Start()
}

func (n *notifier) stop() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.stopLocked()
}

func (n *notifier) stopLocked() {
	if n.active != nil {
		n.active.Stop()
		n.active = nil
	}
}

// hasReported tells whether a warning or error was already shown
func (n *notifier) hasReported() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.reported
}

func (n *notifier) Warn(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.stopLocked()
	n.reported = true
	n.warn.Fprintln(n.w, "! "+message)
}

func (n *notifier) Success(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.stopLocked()
	n.success.Fprintln(n.w, "✓ "+message)
}

func (n *notifier) Error(err error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.stopLocked()
	n.reported = true
	n.fail.Fprintln(n.w, "✗ "+err.Error())
	if errors.Is(err, client.ErrUnauthorized) {
		n.fail.Fprintln(n.w, "  run 'tokenpanel login' to refresh the session")
	}
}

// reportedError marks an error the user has already been shown
type reportedError struct {
	err error
}

func (e *reportedError) Error() string {
	return e.err.Error()
}

func (e *reportedError) Unwrap() error {
	return e.err
}

// markReported wraps err when n has already shown it
func markReported(err error, n *notifier) error {
	if err == nil || !n.hasReported() {
		return err
	}
	return &reportedError{err: err}
}
