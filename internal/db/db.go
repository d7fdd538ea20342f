package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

// Open connects to Postgres, pings it and makes sure the users table exists.
func Open(ctx context.Context, dsn string, log logrus.FieldLogger) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	log.Info("Connected to Postgres successfully")

	if err := ensureUsersTable(ctx, pool, log); err != nil {
		pool.Close()
		return nil, err
	}

	// Older deployments created users without a phone column
	ensurePhoneColumn(ctx, pool, log)

	return pool, nil
}

// ensureUsersTable creates the users table if it doesn't exist
func ensureUsersTable(ctx context.Context, pool *pgxpool.Pool, log logrus.FieldLogger) error {
	var exists bool
	err := pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.tables
			WHERE table_schema = 'public' AND table_name = 'users'
		)`).Scan(&exists)
	if err != nil {
		return fmt.Errorf("schema check failed: %w", err)
	}
	if exists {
		return nil
	}
	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_users_created ON users(created_at);
	`)
	if err != nil {
		return fmt.Errorf("failed to create users table: %w", err)
	}
	log.Info("users table created")
	return nil
}

// ensurePhoneColumn adds users.phone if missing
func ensurePhoneColumn(ctx context.Context, pool *pgxpool.Pool, log logrus.FieldLogger) {
	var exists bool
	err := pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.columns
			WHERE table_schema = 'public' AND table_name = 'users' AND column_name = 'phone'
		)`).Scan(&exists)
	if err != nil {
		log.WithError(err).Warn("schema check failed")
		return
	}
	if exists {
		return
	}
	if _, err := pool.Exec(ctx, `ALTER TABLE users ADD COLUMN IF NOT EXISTS phone TEXT NOT NULL DEFAULT ''`); err != nil {
		log.WithError(err).Warn("failed to add users.phone")
		return
	}
	log.Info("users.phone column ensured")
}
