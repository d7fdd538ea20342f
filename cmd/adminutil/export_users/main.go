package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/sudo-init-do/sgu/internal/config"
	"github.com/sudo-init-do/sgu/internal/db"
	"github.com/sudo-init-do/sgu/internal/logging"
	"github.com/sudo-init-do/sgu/internal/user"
	"github.com/sudo-init-do/sgu/internal/userfile"
)

func main() {
	file := flag.String("file", "", "Output INI file (stdout when empty)")
	envFile := flag.String("env", ".env", "Optional .env file with DB_* settings")
	flag.Parse()

	log := logging.New(logging.Options{Level: "info"})

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

	users, err := user.NewPGStore(pool).List(ctx)
	if err != nil {
		log.Fatalf("failed to list users: %v", err)
	}

	if *file == "" {
		if err := userfile.Write(os.Stdout, users); err != nil {
			log.Fatalf("failed to write users: %v", err)
		}
		return
	}
	if err := writeFile(*file, users); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Exported %d users to %s.\n", len(users), *file)
}

func writeFile(path string, users []user.User) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := userfile.Write(out, users); err != nil {
		out.Close()
		return fmt.Errorf("failed to write users: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
