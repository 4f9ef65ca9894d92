// Package testutil provides shared helpers for package tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/amitrd/revtrack/internal/database"
	"github.com/amitrd/revtrack/internal/kvstore"
	"github.com/amitrd/revtrack/internal/tracker"
)

// NopPusher discards every scheduled remote write.
type NopPusher struct{}

func (NopPusher) PushItem(string, string, any) {}
func (NopPusher) DeleteItem(string, string)    {}
func (NopPusher) DropCollection(string)        {}

// NewStore opens an in-memory database and returns a store backed by it.
func NewStore(t *testing.T) *tracker.LocalStore {
	t.Helper()

	db, err := database.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	return tracker.NewLocalStore(kvstore.New(db), NopPusher{})
}
