// Package prompt asks the user for input. It wraps the huh form library
// behind a small Prompter interface so the scaffolding flow can be driven by
// a scripted implementation in tests.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
)

// ErrCancelled is returned when the user aborts a prompt (Ctrl+C or Esc).
var ErrCancelled = errors.New("prompt cancelled")

// Prompter defines the interactive questions the scaffolder can ask.
type Prompter interface {
	// Input asks for a line of text, pre-filled with value. validate runs on
	// every submission; a non-nil error is shown and the question repeats.
	Input(title, value string, validate func(string) error) (string, error)
	// Confirm asks a yes/no question with value as the default answer.
	Confirm(title string, value bool) (bool, error)
}

// IsTerminal reports whether the file refers to a terminal device.
var IsTerminal = func(file *os.File) bool {
	if file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

var runForm = func(field huh.Field, accessible bool, in io.Reader, out io.Writer) error {
	form := huh.NewForm(huh.NewGroup(field)).WithAccessible(accessible)
	if in != nil {
		form = form.WithInput(in)
	}
	if out != nil {
		form = form.WithOutput(out)
	}
	return form.Run()
}

// HuhPrompter implements Prompter using the huh TUI library.
type HuhPrompter struct {
	// Accessible switches huh to plain line-based prompts, used when stdin
	// is not a terminal.
	Accessible bool

	in  *lineReader
	out io.Writer
}

// NewHuhPrompter returns a HuhPrompter configured for the current stdin.
func NewHuhPrompter() HuhPrompter {
	if IsTerminal(os.Stdin) {
		return HuhPrompter{}
	}
	return NewLinePrompter(os.Stdin, os.Stdout)
}

// NewLinePrompter returns a prompter that asks on w and reads one answer
// per line from r. Reaching the end of r without a usable answer cancels
// the prompt.
func NewLinePrompter(r io.Reader, w io.Writer) HuhPrompter {
	return HuhPrompter{Accessible: true, in: newLineReader(r), out: w}
}

func (p HuhPrompter) Input(title, value string, validate func(string) error) (string, error) {
	input := value
	field := huh.NewInput().
		Title(title).
		Placeholder(value).
		Value(&input)
	if validate != nil {
		check := validate
		if p.Accessible {
			// An empty line takes the pre-filled value.
			check = func(s string) error {
				if strings.TrimSpace(s) == "" {
					s = value
				}
				return validate(s)
			}
		}
		field.Validate(check)
	}
	if err := p.run(field); err != nil {
		return "", promptError("prompt input", err)
	}
	if p.in != nil && p.in.eof {
		if p.in.partial == 0 {
			return "", ErrCancelled
		}
		if validate != nil && validate(input) != nil {
			return "", ErrCancelled
		}
	}
	return input, nil
}

func (p HuhPrompter) Confirm(title string, value bool) (bool, error) {
	confirmed := value
	field := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&confirmed)
	if err := p.run(field); err != nil {
		return false, promptError("prompt confirm", err)
	}
	if p.in != nil && p.in.eof && p.in.partial == 0 {
		return false, ErrCancelled
	}
	return confirmed, nil
}

func (p HuhPrompter) run(field huh.Field) error {
	if p.in == nil {
		return runForm(field, p.Accessible, nil, p.out)
	}
	p.in.partial = 0
	return runForm(field, p.Accessible, p.in, p.out)
}

// lineReader returns at most one line per Read, so each prompt consumes
// only its own answer. It notes when the input ran out and how many bytes
// of an unterminated line were read since the current prompt started.
type lineReader struct {
	r       *bufio.Reader
	partial int
	eof     bool
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{r: bufio.NewReader(r)}
}

func (l *lineReader) Read(b []byte) (int, error) {
	n := 0
	for n < len(b) {
		c, err := l.r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				l.eof = true
			}
			if n > 0 {
				return n, nil
			}
			return 0, err
		}
		b[n] = c
		n++
		if c == '\n' {
			l.partial = 0
			return n, nil
		}
		l.partial++
	}
	return n, nil
}

func promptError(op string, err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrCancelled
	}
	return fmt.Errorf("%s: %w", op, err)
}
