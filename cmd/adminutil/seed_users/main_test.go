package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sudo-init-do/sgu/internal/user"
	"github.com/sudo-init-do/sgu/internal/userfile"
)

type failingStore struct {
	*user.MemoryStore
	failFor string
}

func (s failingStore) Create(ctx context.Context, f user.Fields) (user.User, error) {
	if f.Name == s.failFor {
		return user.User{}, errors.New("duplicate")
	}
	return s.MemoryStore.Create(ctx, f)
}

func TestSeed(t *testing.T) {
	logger, hook := test.NewNullLogger()
	store := user.NewMemoryStore()
	entries := []userfile.Entry{
		{Section: "ana", Fields: user.Fields{Name: "Ana", Email: "a@x.com", Phone: "123"}},
		{Section: "eva", Fields: user.Fields{Name: "Eva", Email: "e@x.com", Phone: "456"}},
	}

	require.NoError(t, seed(context.Background(), store, entries, logger))

	users, _ := store.List(context.Background())
	assert.Len(t, users, 2)
	assert.Len(t, hook.AllEntries(), 2)
}

func TestSeedAggregatesFailures(t *testing.T) {
	logger, _ := test.NewNullLogger()
	store := failingStore{MemoryStore: user.NewMemoryStore(), failFor: "Eva"}
	entries := []userfile.Entry{
		{Section: "ana", Fields: user.Fields{Name: "Ana", Email: "a@x.com", Phone: "123"}},
		{Section: "eva", Fields: user.Fields{Name: "Eva", Email: "e@x.com", Phone: "456"}},
	}

	err := seed(context.Background(), store, entries, logger)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "section eva: duplicate")
	users, _ := store.List(context.Background())
	assert.Len(t, users, 1)
}

func TestReadEntriesMissingFile(t *testing.T) {
	logger, hook := test.NewNullLogger()

	entries, err := readEntries(filepath.Join(t.TempDir(), "missing.ini"), logger)

	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Empty(t, entries)
	assert.Empty(t, hook.AllEntries())
}

func TestReadEntriesSkipsBadSections(t *testing.T) {
	logger, hook := test.NewNullLogger()
	path := filepath.Join(t.TempDir(), "users.ini")
	content := "[ana]\nname = Ana\nemail = a@x.com\nphone = 123\n\n[eva]\nname = Eva\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	entries, err := readEntries(path, logger)

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "ana", entries[0].Section)
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "1 sections were skipped", entry.Message)
}
