package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestSQLite(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := OpenSQLite(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close(context.Background()) })
	return s
}

func TestSQLiteStore_Contract(t *testing.T) {
	runStoreContract(t, openTestSQLite(t))
}

func TestSQLiteStore_UpdateUnknownID(t *testing.T) {
	s := openTestSQLite(t)

	err := s.Update(context.Background(), "user", uuid.New().String(), map[string]any{"stage": "Healing"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteStore_CollectionsAreIsolated(t *testing.T) {
	s := openTestSQLite(t)
	ctx := context.Background()

	id, err := s.Insert(ctx, "mantra", map[string]any{"user_id": "u1"})
	require.NoError(t, err)

	docs, err := s.Find(ctx, "journalentry", Filter{"user_id": "u1"}, 0)
	require.NoError(t, err)
	assert.Empty(t, docs)

	err = s.Update(ctx, "journalentry", id, map[string]any{"text": "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteStore_Reopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s, err := OpenSQLite(dir)
	require.NoError(t, err)
	id, err := s.Insert(ctx, "payment", map[string]any{"reference": "SIM-1", "amount_cents": 500})
	require.NoError(t, err)
	require.NoError(t, s.Close(ctx))

	s, err = OpenSQLite(dir)
	require.NoError(t, err)
	defer s.Close(ctx)

	doc, err := s.FindOne(ctx, "payment", Filter{"amount_cents": 500})
	require.NoError(t, err)
	assert.Equal(t, id, doc.ID())
	assert.Equal(t, SQLiteFile, s.Name())
}

func TestBuildFindQuery(t *testing.T) {
	q, args := buildFindQuery("user", Filter{"email": "a@b.c", "active": true, "deleted_at": nil}, 10)

	assert.Equal(t,
		`SELECT id, body FROM documents WHERE collection = ? AND json_extract(body, ?) = ? AND json_extract(body, ?) IS NULL AND json_extract(body, ?) = ? ORDER BY rowid LIMIT ?`,
		q)
	assert.Equal(t, []any{"user", `$."active"`, 1, `$."deleted_at"`, `$."email"`, "a@b.c", 10}, args)
}
