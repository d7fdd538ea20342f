package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"github.com/sudo-init-do/sgu/internal/config"
	"github.com/sudo-init-do/sgu/internal/db"
	"github.com/sudo-init-do/sgu/internal/logging"
	"github.com/sudo-init-do/sgu/internal/user"
	"github.com/sudo-init-do/sgu/internal/userfile"
)

func main() {
	file := flag.String("file", "", "INI file with one [section] per user (name, email, phone)")
	envFile := flag.String("env", ".env", "Optional .env file with DB_* settings")
	flag.Parse()

	log := logging.New(logging.Options{Level: "info"})

	if *file == "" {
		log.Fatal("usage: go run ./cmd/adminutil/seed_users -file users.ini")
	}

	entries, err := readEntries(*file, log)
	if err != nil {
		log.Fatal(err)
	}

	dbCfg, err := config.LoadDB(*envFile)
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx := context.Background()
	pool, err := db.Open(ctx, dbCfg.DSN(), log)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	if err := seed(ctx, user.NewPGStore(pool), entries, log); err != nil {
		log.Error(err)
		pool.Close()
		os.Exit(1)
	}
	fmt.Printf("Imported %d users.\n", len(entries))
}

// readEntries loads the users file. Invalid sections are logged and skipped;
// a file that cannot be loaded is an error.
func readEntries(path string, log logrus.FieldLogger) ([]userfile.Entry, error) {
	entries, err := userfile.Read(path)
	var skipped *multierror.Error
	if errors.As(err, &skipped) {
		log.WithError(skipped).Warnf("%d sections were skipped", len(skipped.Errors))
		return entries, nil
	}
	return entries, err
}

func seed(ctx context.Context, store user.Store, entries []userfile.Entry, log logrus.FieldLogger) error {
	var result *multierror.Error
	for _, e := range entries {
		u, err := store.Create(ctx, e.Fields)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("section %s: %w", e.Section, err))
			continue
		}
		log.WithFields(logrus.Fields{"section": e.Section, "user_id": u.ID}).Info("user imported")
	}
	return result.ErrorOrNil()
}
