package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/sudo-init-do/sgu/internal/config"
	"github.com/sudo-init-do/sgu/internal/directory"
	"github.com/sudo-init-do/sgu/internal/logging"
	"github.com/sudo-init-do/sgu/internal/prompt"
	"github.com/sudo-init-do/sgu/internal/userapi"
)

type flags struct {
	Debug       bool
	EnvFile     string
	LogFileName string
}

func parseFlags() *flags {
	f := &flags{}
	flag.BoolVar(&f.Debug, "debug", false, "Enable debug log level")
	flag.StringVar(&f.EnvFile, "env", ".env", "Optional .env file with API_PROTOCOL, API_HOST, API_PORT and API_BASE")
	flag.StringVar(&f.LogFileName, "log", "usersctl.log", "Log file name")
	flag.Parse()
	return f
}

func main() {
	f := parseFlags()

	level := "info"
	if f.Debug {
		level = "debug"
	}
	log := logging.New(logging.Options{Level: level, File: f.LogFileName})

	cfg, err := config.LoadClient(f.EnvFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}
	log.WithField("url", cfg.UsersURL()).Debug("users API configured")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	lines, out, restore := openConsole(log)
	defer restore()

	tty := prompt.NewTerminal(lines, out)
	dir := directory.New(userapi.New(cfg.UsersURL(), userapi.WithLogger(log)), tty, tty, log)

	s := &session{dir: dir, drafts: tty, lines: lines, out: out}
	if err := s.run(ctx); err != nil {
		log.WithError(err).Error("session ended")
	}
}

// openConsole puts a terminal stdin into raw mode for line editing and
// history; otherwise input is read line by line.
func openConsole(log logrus.FieldLogger) (prompt.LineReader, io.Writer, func()) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return prompt.NewLineReader(os.Stdin, os.Stdout), os.Stdout, func() {}
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		log.WithError(err).Warn("could not enter raw mode")
		return prompt.NewLineReader(os.Stdin, os.Stdout), os.Stdout, func() {}
	}
	t := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}, "")
	if w, h, err := term.GetSize(fd); err == nil {
		_ = t.SetSize(w, h)
	}
	return t, t, func() { _ = term.Restore(fd, oldState) }
}
