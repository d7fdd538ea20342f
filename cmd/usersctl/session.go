package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sudo-init-do/sgu/internal/directory"
	"github.com/sudo-init-do/sgu/internal/prompt"
	"github.com/sudo-init-do/sgu/internal/user"
	"github.com/sudo-init-do/sgu/internal/view"
)

const helpText = `Comandos:
  list              Recargar y mostrar usuarios
  add               Agregar usuario
  edit <id>         Editar usuario
  delete <id>       Eliminar usuario
  help              Mostrar esta ayuda
  quit              Salir
`

type drafter interface {
	FillDraft(ctx context.Context, current user.Fields) (user.Fields, error)
}

type session struct {
	dir    *directory.Directory
	drafts drafter
	lines  prompt.LineReader
	out    io.Writer
}

func (s *session) run(ctx context.Context) error {
	s.refresh(ctx)
	fmt.Fprint(s.out, "Escribe help para ver los comandos.\n")
	for {
		if ctx.Err() != nil {
			return nil
		}
		s.lines.SetPrompt("sgu> ")
		line, err := s.lines.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if quit := s.exec(ctx, line); quit {
			return nil
		}
	}
}

// exec runs one command line and reports whether the session should end.
func (s *session) exec(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "quit", "exit", "salir":
		return true
	case "help", "ayuda", "?":
		fmt.Fprint(s.out, helpText)
	case "list", "ls":
		s.refresh(ctx)
	case "add", "nuevo":
		s.add(ctx)
	case "edit", "editar":
		id, ok := s.idArg(cmd, args)
		if !ok {
			return false
		}
		err := s.dir.Update(ctx, id)
		if errors.Is(err, directory.ErrUnknownUser) {
			fmt.Fprintf(s.out, "No existe un usuario con ID %s\n", id)
			return false
		}
		s.render()
	case "delete", "rm", "eliminar":
		id, ok := s.idArg(cmd, args)
		if !ok {
			return false
		}
		_ = s.dir.Remove(ctx, id)
		s.render()
	default:
		fmt.Fprintf(s.out, "Comando desconocido: %s\n", cmd)
		fmt.Fprint(s.out, helpText)
	}
	return false
}

// add edits the draft in place, so a failed submission keeps what was typed.
func (s *session) add(ctx context.Context) {
	f, err := s.drafts.FillDraft(ctx, s.dir.Snapshot().Draft)
	s.dir.SetDraft(f)
	if err != nil {
		fmt.Fprintln(s.out)
		return
	}
	if err := s.dir.Create(ctx); err == nil {
		s.render()
	}
}

func (s *session) refresh(ctx context.Context) {
	_ = s.dir.FetchAll(ctx)
	s.render()
}

func (s *session) render() {
	_ = view.Render(s.out, s.dir.Snapshot())
}

func (s *session) idArg(cmd string, args []string) (string, bool) {
	if len(args) != 1 {
		fmt.Fprintf(s.out, "Uso: %s <id>\n", cmd)
		return "", false
	}
	return args[0], true
}
