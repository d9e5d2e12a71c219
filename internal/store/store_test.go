package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/o2scale/goodboyholidayhomesverce/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "data.json"), 5*time.Second)
}

func TestInitSeedsAbsentFile(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Init(context.Background()))

	var got Data
	require.NoError(t, s.View(context.Background(), func(d *Data) error {
		got = *d
		return nil
	}))
	require.Len(t, got.Properties, 3)
	assert.Equal(t, "Misty Mountain Villa", got.Properties[0].Title)
	assert.Empty(t, got.Bookings)
	assert.Empty(t, got.Users)
}

func TestLoadBackfillsMissingUsersCollection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	legacy := map[string]any{
		"properties": []models.Property{{ID: "p1", Title: "Old Cabin"}},
		"bookings":   []models.Booking{},
	}
	raw, err := json.Marshal(legacy)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	s := New(path, 5*time.Second)
	require.NoError(t, s.View(context.Background(), func(d *Data) error {
		require.NotNil(t, d.Users)
		assert.Empty(t, d.Users)
		// existing collections untouched
		require.Len(t, d.Properties, 1)
		assert.Equal(t, "Old Cabin", d.Properties[0].Title)
		return nil
	}))

	// migration was persisted
	onDisk, err := os.ReadFile(path)
	require.NoError(t, err)
	var parsed map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(onDisk, &parsed))
	assert.Contains(t, parsed, "users")
}

func TestUpdatePersistsAndViewDiscards(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Update(context.Background(), func(d *Data) error {
		d.Users = append(d.Users, models.User{ID: "u1", Email: "a@b.test", Role: models.RoleCustomer})
		return nil
	}))

	// A View mutation must not leak to disk.
	require.NoError(t, s.View(context.Background(), func(d *Data) error {
		d.Users = nil
		return nil
	}))

	require.NoError(t, s.View(context.Background(), func(d *Data) error {
		require.Len(t, d.Users, 1)
		assert.Equal(t, "a@b.test", d.Users[0].Email)
		return nil
	}))
}

func TestUpdateErrorLeavesFileUnchanged(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Init(context.Background()))

	wantErr := assert.AnError
	err := s.Update(context.Background(), func(d *Data) error {
		d.Properties = nil
		return wantErr
	})
	require.ErrorIs(t, err, wantErr)

	require.NoError(t, s.View(context.Background(), func(d *Data) error {
		assert.Len(t, d.Properties, 3)
		return nil
	}))
}

func TestUpdateHonorsContextCancellation(t *testing.T) {
	s := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Update(ctx, func(d *Data) error { return nil })
	require.Error(t, err)
}
