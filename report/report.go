// Package report holds the run summary of a flatten pass and prints the
// human-readable progress stream.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
)

// Status is the terminal state of a single file.
type Status int

const (
	AlreadyOK Status = iota
	Fixed
	Errored
)

func (s Status) String() string {
	switch s {
	case AlreadyOK:
		return "already OK"
	case Fixed:
		return "fixed"
	case Errored:
		return "errored"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Outcome is the result of processing one file.
type Outcome struct {
	Name    string
	Status  Status
	Variant string
	Err     error
}

// FileError is a failure to process one file.
type FileError struct {
	Name string
	Err  error
}

func (e FileError) Error() string {
	return e.Name + ": " + e.Err.Error()
}

func (e FileError) Unwrap() error { return e.Err }

// Summary aggregates outcomes in processing order.
type Summary struct {
	Dir       string
	DryRun    bool
	Fixed     int
	AlreadyOK int
	Errors    []FileError
}

// Add counts o. Errored outcomes without an error get a placeholder message.
func (s *Summary) Add(o Outcome) {
	switch o.Status {
	case Fixed:
		s.Fixed++
	case AlreadyOK:
		s.AlreadyOK++
	case Errored:
		err := o.Err
		if err == nil {
			err = errUnknown
		}
		s.Errors = append(s.Errors, FileError{Name: o.Name, Err: err})
	}
}

// Total is the number of files counted.
func (s Summary) Total() int {
	return s.Fixed + s.AlreadyOK + len(s.Errors)
}

// OK reports whether no file failed.
func (s Summary) OK() bool {
	return len(s.Errors) == 0
}

var errUnknown = errors.New("unknown error")

var rule = strings.Repeat("=", 60)

// Printer writes the progress stream. Its Fixing, AlreadyOK and Failed
// methods receive per-file events from the flattener.
type Printer struct {
	w  io.Writer
	au aurora.Aurora
}

// NewPrinter returns a Printer writing to w. A nil au disables colors.
func NewPrinter(w io.Writer, au aurora.Aurora) *Printer {
	if au == nil {
		au = aurora.NewAurora(false)
	}
	return &Printer{w: w, au: au}
}

// Banner prints the header shown before any file is processed.
func (p *Printer) Banner(dir string, dryRun bool) {
	fmt.Fprintln(p.w, p.au.Bold("🔧 Removing alpha channel from all app icons..."))
	if dryRun {
		fmt.Fprintln(p.w, p.au.Yellow("🧪 Dry run: no files will be written"))
	}
	fmt.Fprintf(p.w, "📁 Directory: %s\n\n", dir)
}

func (p *Printer) Fixing(name string) {
	fmt.Fprintf(p.w, "✏️  Fixing %s...\n", name)
}

func (p *Printer) AlreadyOK(name string) {
	fmt.Fprintf(p.w, "✅ %s %s\n", name, p.au.Faint("(already OK)"))
}

func (p *Printer) Failed(name string, err error) {
	fmt.Fprintf(p.w, "❌ %s\n", p.au.Red(fmt.Sprintf("Error processing %s: %v", name, err)))
}

// Summary prints the closing bordered block.
func (p *Printer) Summary(s Summary) {
	fmt.Fprintf(p.w, "\n%s\n", rule)
	if s.DryRun {
		fmt.Fprintf(p.w, "✏️  Would fix: %d icons\n", s.Fixed)
	} else {
		fmt.Fprintf(p.w, "✅ Fixed: %d icons\n", s.Fixed)
	}
	fmt.Fprintf(p.w, "✓  Already OK: %d icons\n", s.AlreadyOK)

	if !s.OK() {
		fmt.Fprintf(p.w, "❌ %s\n", p.au.Red(fmt.Sprintf("Errors: %d", len(s.Errors))))
		for _, e := range s.Errors {
			fmt.Fprintf(p.w, "   - %s\n", e.Error())
		}
	} else {
		fmt.Fprintf(p.w, "🎉 %s\n", p.au.Green("All icons processed successfully!"))
	}

	fmt.Fprintln(p.w, rule)
}
