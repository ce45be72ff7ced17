package storage

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *LocalStore {
	t.Helper()
	store, err := NewLocalStore(filepath.Join(t.TempDir(), "resources"))
	if err != nil {
		t.Fatalf("NewLocalStore returned error %v", err)
	}
	return store
}

func TestSaveThenOpenRoundtrip(t *testing.T) {
	store := newTestStore(t)
	blob := []byte{0x89, 'P', 'N', 'G', 0x00, 0x01, 0x02, 0xff}

	id, err := store.Save(bytes.NewReader(blob))
	if err != nil {
		t.Fatalf("Save returned error %v", err)
	}
	if id == "" {
		t.Fatal("Save returned empty identifier")
	}

	f, err := store.Open(id)
	if err != nil {
		t.Fatalf("Open returned error %v", err)
	}
	defer f.Close()

	got, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("reading blob: %v", err)
	}
	if !bytes.Equal(got, blob) {
		t.Errorf("fetched blob differs from uploaded: got %v want %v", got, blob)
	}
}

func TestOpenMissingBlob(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Open("does-not-exist")
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Open for missing blob = %v; want os.ErrNotExist", err)
	}
}

func TestPathStaysInsideRoot(t *testing.T) {
	store := newTestStore(t)

	path := store.Path("../../etc/passwd")
	if filepath.Dir(path) != filepath.Dir(store.Path("x")) {
		t.Errorf("Path escaped the storage root: %s", path)
	}
}

func TestSaveGeneratesDistinctIdentifiers(t *testing.T) {
	store := newTestStore(t)

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		id, err := store.Save(bytes.NewReader([]byte("same content")))
		if err != nil {
			t.Fatalf("Save returned error %v", err)
		}
		if seen[id] {
			t.Fatalf("duplicate identifier %s", id)
		}
		seen[id] = true
	}
}
