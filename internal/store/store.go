// Package store owns the single JSON data file holding the properties,
// bookings and users collections. Every operation is a whole-file
// read-modify-write serialized through one writer lock, so a
// read-check-write sequence inside an Update callback is atomic with
// respect to every other store operation.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/o2scale/goodboyholidayhomesverce/internal/models"
	"github.com/o2scale/goodboyholidayhomesverce/internal/utils"
)

// Data is the persisted schema: three named collections with stable
// opaque identifiers.
type Data struct {
	Properties []models.Property `json:"properties"`
	Bookings   []models.Booking  `json:"bookings"`
	Users      []models.User     `json:"users"`
}

type Store struct {
	mu        sync.Mutex
	path      string
	opTimeout time.Duration
}

// New returns a store over the given file path. opTimeout bounds each
// View/Update call; zero disables the bound.
func New(path string, opTimeout time.Duration) *Store {
	return &Store{path: path, opTimeout: opTimeout}
}

// Init creates the data file with the demo seed if it is absent, and
// applies the additive users migration if the file predates the users
// collection.
func (s *Store) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := s.bound(ctx)
	defer cancel()

	data, created, err := s.loadLocked(ctx)
	if err != nil {
		return err
	}
	if created {
		utils.Logger.Infof("Data file %s absent, seeded %d demo properties", s.path, len(data.Properties))
	}
	return nil
}

// View runs fn against a snapshot of the data under the store lock.
// Mutations made by fn are discarded.
func (s *Store) View(ctx context.Context, fn func(*Data) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := s.bound(ctx)
	defer cancel()

	data, _, err := s.loadLocked(ctx)
	if err != nil {
		return err
	}
	return fn(data)
}

// Update runs fn under the store lock and persists the mutated data
// before returning. If fn errors, nothing is written.
func (s *Store) Update(ctx context.Context, fn func(*Data) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := s.bound(ctx)
	defer cancel()

	data, _, err := s.loadLocked(ctx)
	if err != nil {
		return err
	}
	if err := fn(data); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("store update timed out before write: %w", err)
	}
	return s.saveLocked(data)
}

func (s *Store) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.opTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.opTimeout)
}

// loadLocked reads the file, seeding it when absent and backfilling the
// users collection when missing. Caller holds the lock. The boolean
// reports whether the seed was written.
func (s *Store) loadLocked(ctx context.Context) (*Data, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, fmt.Errorf("store read timed out: %w", err)
	}

	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		data := &Data{
			Properties: SeedProperties(),
			Bookings:   []models.Booking{},
			Users:      []models.User{},
		}
		if err := s.saveLocked(data); err != nil {
			return nil, false, err
		}
		return data, true, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read data file %s: %w", s.path, err)
	}

	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, false, fmt.Errorf("parse data file %s: %w", s.path, err)
	}

	// Additive schema migration only: older files have no users list.
	if data.Users == nil {
		data.Users = []models.User{}
		if err := s.saveLocked(&data); err != nil {
			return nil, false, err
		}
	}
	return &data, false, nil
}

// saveLocked writes the whole file atomically: temp file in the same
// directory, then rename.
func (s *Store) saveLocked(data *Data) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode data file: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp data file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp data file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp data file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace data file %s: %w", s.path, err)
	}
	return nil
}
