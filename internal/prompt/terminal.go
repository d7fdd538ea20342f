package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sudo-init-do/sgu/internal/user"
)

// LineReader reads one line of input after showing a prompt.
// *term.Terminal from golang.org/x/term satisfies it.
type LineReader interface {
	ReadLine() (string, error)
	SetPrompt(prompt string)
}

type scannerLines struct {
	sc     *bufio.Scanner
	out    io.Writer
	prompt string
}

// NewLineReader reads lines from r and writes prompts to w. It is the
// fallback when stdin is not a terminal.
func NewLineReader(r io.Reader, w io.Writer) LineReader {
	return &scannerLines{sc: bufio.NewScanner(r), out: w}
}

func (s *scannerLines) SetPrompt(prompt string) {
	s.prompt = prompt
}

func (s *scannerLines) ReadLine() (string, error) {
	fmt.Fprint(s.out, s.prompt)
	if !s.sc.Scan() {
		if err := s.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.sc.Text(), nil
}

// Terminal is the interactive Prompter and Notifier.
type Terminal struct {
	lines LineReader
	out   io.Writer
}

func NewTerminal(lines LineReader, out io.Writer) *Terminal {
	return &Terminal{lines: lines, out: out}
}

func (t *Terminal) Confirm(ctx context.Context, c Confirmation) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	fmt.Fprintf(t.out, "%s\n%s\n", c.Title, c.Text)
	t.lines.SetPrompt(fmt.Sprintf("%s / %s [s/N]: ", c.ConfirmLabel, c.CancelLabel))
	line, err := t.lines.ReadLine()
	if errors.Is(err, io.EOF) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return isYes(line), nil
}

// PromptForEdit shows each field with its current value; an empty answer
// keeps it. Blank results are rejected and asked again. EOF cancels.
func (t *Terminal) PromptForEdit(ctx context.Context, u user.User) (user.Fields, bool, error) {
	fmt.Fprintln(t.out, "Editar Usuario")
	values := u.Fields()
	for {
		if err := ctx.Err(); err != nil {
			return user.Fields{}, false, err
		}
		f, err := t.fill(values)
		if errors.Is(err, io.EOF) {
			return user.Fields{}, false, nil
		}
		if err != nil {
			return user.Fields{}, false, err
		}
		f = f.Trimmed()
		if !f.Complete() {
			fmt.Fprintln(t.out, "Todos los campos son obligatorios")
			values = f
			continue
		}

		t.lines.SetPrompt("Guardar / Cancelar [S/n]: ")
		line, err := t.lines.ReadLine()
		if errors.Is(err, io.EOF) || isNo(line) {
			return user.Fields{}, false, nil
		}
		if err != nil {
			return user.Fields{}, false, err
		}
		return f, true, nil
	}
}

// FillDraft asks for the create form fields, offering current as defaults.
func (t *Terminal) FillDraft(ctx context.Context, current user.Fields) (user.Fields, error) {
	if err := ctx.Err(); err != nil {
		return current, err
	}
	fmt.Fprintln(t.out, "Nuevo Usuario")
	f, err := t.fill(current)
	if err != nil {
		return current, err
	}
	return f, nil
}

func (t *Terminal) fill(current user.Fields) (user.Fields, error) {
	var (
		f   user.Fields
		err error
	)
	if f.Name, err = t.ask("Nombre completo", current.Name); err != nil {
		return current, err
	}
	if f.Email, err = t.ask("Correo electrónico", current.Email); err != nil {
		return current, err
	}
	if f.Phone, err = t.ask("Número de teléfono", current.Phone); err != nil {
		return current, err
	}
	return f, nil
}

func (t *Terminal) ask(label, current string) (string, error) {
	if current != "" {
		t.lines.SetPrompt(fmt.Sprintf("%s [%s]: ", label, current))
	} else {
		t.lines.SetPrompt(label + ": ")
	}
	line, err := t.lines.ReadLine()
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(line) == "" {
		return current, nil
	}
	return line, nil
}

func (t *Terminal) Toast(title string) {
	fmt.Fprintf(t.out, "✔ %s\n", title)
}

func (t *Terminal) Warn(title, text string) {
	fmt.Fprintf(t.out, "⚠ %s: %s\n", title, text)
}

func (t *Terminal) Fail(title, text string) {
	fmt.Fprintf(t.out, "✖ %s: %s\n", title, text)
}

func isYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "s", "si", "sí", "y", "yes":
		return true
	}
	return false
}

func isNo(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "n", "no":
		return true
	}
	return false
}
