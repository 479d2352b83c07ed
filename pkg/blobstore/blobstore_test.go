package blobstore_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"task-tracker/pkg/blobstore"
)

func openDrivers(t *testing.T) map[string]blobstore.Store {
	t.Helper()
	dir := t.TempDir()

	file, err := blobstore.NewFile(filepath.Join(dir, "blobs"))
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	sqlite, err := blobstore.NewSQLite(filepath.Join(dir, "db", "tracker.db"))
	if err != nil {
		t.Fatalf("NewSQLite: %v", err)
	}
	cachedFile, err := blobstore.NewFile(filepath.Join(dir, "cached"))
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}

	stores := map[string]blobstore.Store{
		"memory": blobstore.NewMemory(),
		"file":   file,
		"sqlite": sqlite,
		"cached": blobstore.NewCached(cachedFile, 8, time.Minute),
	}
	t.Cleanup(func() {
		for _, s := range stores {
			s.Close()
		}
	})
	return stores
}

func TestStoreContract(t *testing.T) {
	ctx := context.Background()

	for name, s := range openDrivers(t) {
		t.Run(name, func(t *testing.T) {
			if _, ok, err := s.Get(ctx, "2024/4/1"); err != nil || ok {
				t.Fatalf("Get on empty store = ok %v err %v", ok, err)
			}

			if err := s.Set(ctx, "2024/4/1", `{"a":1}`); err != nil {
				t.Fatalf("Set: %v", err)
			}
			if err := s.Set(ctx, "2024/3/30", `{"b":2}`); err != nil {
				t.Fatalf("Set: %v", err)
			}
			if err := s.Set(ctx, "2024/4/1", `{"a":2}`); err != nil {
				t.Fatalf("overwrite: %v", err)
			}

			v, ok, err := s.Get(ctx, "2024/4/1")
			if err != nil || !ok || v != `{"a":2}` {
				t.Errorf("Get = %q ok %v err %v", v, ok, err)
			}

			keys, err := s.Keys(ctx)
			if err != nil {
				t.Fatalf("Keys: %v", err)
			}
			if want := []string{"2024/3/30", "2024/4/1"}; !reflect.DeepEqual(keys, want) {
				t.Errorf("Keys = %v, want %v", keys, want)
			}
		})
	}
}

func TestFileStoreEscapesKeys(t *testing.T) {
	dir := t.TempDir()
	s, err := blobstore.NewFile(dir)
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}

	if err := s.Set(context.Background(), "2024/4/1", "{}"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "2024%2F4%2F1.json")); err != nil {
		t.Errorf("expected escaped file name: %v", err)
	}
}

func TestFileStoreSkipsForeignFiles(t *testing.T) {
	dir := t.TempDir()
	s, _ := blobstore.NewFile(dir)
	os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644)
	os.Mkdir(filepath.Join(dir, "sub.json"), 0755)

	keys, err := s.Keys(context.Background())
	if err != nil {
		t.Fatalf("Keys: %v", err)
	}
	if len(keys) != 0 {
		t.Errorf("expected no keys, got %v", keys)
	}
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracker.db")
	ctx := context.Background()

	s, err := blobstore.NewSQLite(path)
	if err != nil {
		t.Fatalf("NewSQLite: %v", err)
	}
	s.Set(ctx, "2024/4/1", "persisted")
	s.Close()

	s, err = blobstore.NewSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	v, ok, err := s.Get(ctx, "2024/4/1")
	if err != nil || !ok || v != "persisted" {
		t.Errorf("Get after reopen = %q ok %v err %v", v, ok, err)
	}
}

type countingStore struct {
	*blobstore.Memory
	gets int
}

func (c *countingStore) Get(ctx context.Context, key string) (string, bool, error) {
	c.gets++
	return c.Memory.Get(ctx, key)
}

func TestCachedServesRepeatedReads(t *testing.T) {
	ctx := context.Background()
	inner := &countingStore{Memory: blobstore.NewMemory()}
	inner.Memory.Set(ctx, "k", "v1")

	c := blobstore.NewCached(inner, 4, time.Minute)
	for i := 0; i < 3; i++ {
		if v, ok, _ := c.Get(ctx, "k"); !ok || v != "v1" {
			t.Fatalf("Get = %q ok %v", v, ok)
		}
	}
	if inner.gets != 1 {
		t.Errorf("expected 1 inner read, got %d", inner.gets)
	}

	c.Set(ctx, "k", "v2")
	if v, _, _ := c.Get(ctx, "k"); v != "v2" {
		t.Errorf("write-through not visible, got %q", v)
	}
	if inner.gets != 1 {
		t.Errorf("expected cached read after Set, got %d inner reads", inner.gets)
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		cfg     blobstore.Config
		wantErr error
	}{
		{name: "Default memory", cfg: blobstore.Config{}},
		{name: "File", cfg: blobstore.Config{Driver: blobstore.DriverFile, Dir: filepath.Join(dir, "f")}},
		{name: "File cached", cfg: blobstore.Config{Driver: blobstore.DriverFile, Dir: filepath.Join(dir, "c"), CacheSize: 4}},
		{name: "SQLite", cfg: blobstore.Config{Driver: blobstore.DriverSQLite, SQLitePath: filepath.Join(dir, "t.db")}},
		{name: "Unknown", cfg: blobstore.Config{Driver: "redis"}, wantErr: blobstore.ErrUnknownDriver},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := blobstore.Open(tt.cfg)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Open() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Open() error = %v", err)
			}
			s.Close()
		})
	}
}
