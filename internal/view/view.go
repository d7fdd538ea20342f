// Package view renders directory state as plain text.
package view

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"unicode"
	"unicode/utf8"

	"github.com/sudo-init-do/sgu/internal/directory"
)

const EmptyState = "No hay usuarios registrados"

// Badge is the count shown next to the table title.
func Badge(s directory.State) string {
	if s.Loading {
		return "Cargando..."
	}
	return fmt.Sprintf("%d usuarios", len(s.Users))
}

// FormatPhone shows "-" for a missing phone.
func FormatPhone(phone string) string {
	if phone == "" {
		return "-"
	}
	return phone
}

// Initial is the avatar letter for name.
func Initial(name string) string {
	r, _ := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return "?"
	}
	return string(unicode.ToUpper(r))
}

// Render writes the users table with its badge and error banner.
func Render(w io.Writer, s directory.State) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Usuarios (%s)\n", Badge(s))
	if s.Error != "" {
		fmt.Fprintf(&b, "! %s\n", s.Error)
	}

	tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "\tUsuario\tID\tCorreo\tTeléfono")
	if len(s.Users) == 0 && !s.Loading {
		fmt.Fprintf(tw, "\t%s\t\t\t\n", EmptyState)
	}
	for _, u := range s.Users {
		fmt.Fprintf(tw, "(%s)\t%s\t%s\t%s\t%s\n", Initial(u.Name), u.Name, u.ID, u.Email, FormatPhone(u.Phone))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := io.WriteString(w, b.String())
	return err
}
