package store

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Runs against a live server only when MONGODB_TEST_URI is set.
func TestMongoStore_Contract(t *testing.T) {
	uri := os.Getenv("MONGODB_TEST_URI")
	if uri == "" {
		t.Skip("MONGODB_TEST_URI not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	dbName := fmt.Sprintf("wonderlens_test_%d", time.Now().UnixNano())
	s, err := OpenMongo(ctx, uri, dbName)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.db.Drop(context.Background())
		_ = s.Close(context.Background())
	})

	runStoreContract(t, s)
}

func TestOpenMongo_RequiresSettings(t *testing.T) {
	_, err := OpenMongo(context.Background(), "", "db")
	require.Error(t, err)
}
