// Package prompt provides the confirmation, edit and notification
// capabilities the directory client needs from its user interface.
package prompt

import (
	"context"

	"github.com/sudo-init-do/sgu/internal/user"
)

// Confirmation describes a yes/no question about a destructive action.
type Confirmation struct {
	Title        string
	Text         string
	ConfirmLabel string
	CancelLabel  string
}

type Prompter interface {
	// Confirm reports whether the user accepted c.
	Confirm(ctx context.Context, c Confirmation) (bool, error)
	// PromptForEdit asks for new values for u, pre-populated with the current
	// ones. ok is false when the user dismissed the prompt.
	PromptForEdit(ctx context.Context, u user.User) (f user.Fields, ok bool, err error)
}

type Kind int

const (
	// Success notices are transient toasts.
	Success Kind = iota
	// Warning notices report local validation failures.
	Warning
	// Error notices report failed server calls.
	Error
)

func (k Kind) String() string {
	switch k {
	case Success:
		return "success"
	case Warning:
		return "warning"
	case Error:
		return "error"
	}
	return "unknown"
}

type Notice struct {
	Kind  Kind
	Title string
	Text  string
}

type Notifier interface {
	Toast(title string)
	Warn(title, text string)
	Fail(title, text string)
}
