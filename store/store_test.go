package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type journalDoc struct {
	UserID  string  `json:"user_id" bson:"user_id"`
	Content string  `json:"content" bson:"content"`
	Mood    *string `json:"mood" bson:"mood"`
	Private bool    `json:"private" bson:"private"`
}

// runStoreContract exercises the behaviour every backend must share.
func runStoreContract(t *testing.T, s Store) {
	ctx := context.Background()

	t.Run("insert and find", func(t *testing.T) {
		calm := "calm"
		id1, err := s.Insert(ctx, "journalentry", journalDoc{UserID: "u1", Content: "first", Mood: &calm})
		require.NoError(t, err)
		require.NotEmpty(t, id1)
		_, err = s.Insert(ctx, "journalentry", journalDoc{UserID: "u2", Content: "other"})
		require.NoError(t, err)
		id3, err := s.Insert(ctx, "journalentry", journalDoc{UserID: "u1", Content: "second", Private: true})
		require.NoError(t, err)
		assert.NotEqual(t, id1, id3)

		docs, err := s.Find(ctx, "journalentry", Filter{"user_id": "u1"}, 50)
		require.NoError(t, err)
		require.Len(t, docs, 2)
		assert.Equal(t, id1, docs[0].ID())
		assert.Equal(t, "first", docs[0]["content"])
		assert.Equal(t, "calm", docs[0]["mood"])
		assert.Contains(t, docs[0], "created_at")
		assert.Equal(t, id3, docs[1].ID())

		docs, err = s.Find(ctx, "journalentry", Filter{"user_id": "u1", "private": true}, 0)
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "second", docs[0]["content"])

		docs, err = s.Find(ctx, "journalentry", Filter{"user_id": "u1"}, 1)
		require.NoError(t, err)
		assert.Len(t, docs, 1)
	})

	t.Run("find one and update", func(t *testing.T) {
		id, err := s.Insert(ctx, "user", map[string]any{"email": "ada@example.com", "stage": "Awakening"})
		require.NoError(t, err)

		doc, err := s.FindOne(ctx, "user", Filter{"email": "ada@example.com"})
		require.NoError(t, err)
		assert.Equal(t, id, doc.ID())

		require.NoError(t, s.Update(ctx, "user", id, map[string]any{"stage": "Healing"}))

		doc, err = s.FindOne(ctx, "user", Filter{IDField: id})
		require.NoError(t, err)
		assert.Equal(t, "Healing", doc["stage"])
		assert.Equal(t, "ada@example.com", doc["email"])
	})

	t.Run("not found", func(t *testing.T) {
		_, err := s.FindOne(ctx, "user", Filter{"email": "nobody@example.com"})
		assert.ErrorIs(t, err, ErrNotFound)

		err = s.Update(ctx, "user", "not-an-id", map[string]any{"stage": "Healing"})
		assert.ErrorIs(t, err, ErrInvalidID)
	})

	t.Run("collections", func(t *testing.T) {
		names, err := s.Collections(ctx)
		require.NoError(t, err)
		assert.Contains(t, names, "journalentry")
		assert.Contains(t, names, "user")
		assert.NoError(t, s.Ping(ctx))
		assert.NotEmpty(t, s.Name())
	})
}
