package storage

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/resonanse/resonanse_api/util"
)

// LocalStore writes uploaded blobs verbatim to a root directory,
// one file per generated identifier. No metadata is kept anywhere
// else; retrieval trusts the filesystem alone.
type LocalStore struct {
	root string
}

func NewLocalStore(root string) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create storage directory %s", root)
	}
	return &LocalStore{root: root}, nil
}

// Save streams the blob to disk and returns the generated identifier.
func (s *LocalStore) Save(r io.Reader) (string, error) {
	id := util.GenerateUUID().String()

	f, err := os.Create(s.Path(id))
	if err != nil {
		return "", errors.Wrap(err, "failed to create resource file")
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", errors.Wrap(err, "failed to write resource file")
	}
	return id, nil
}

// Open returns the stored blob for streaming. A missing file
// surfaces as the os.Open error.
func (s *LocalStore) Open(id string) (io.ReadCloser, error) {
	return os.Open(s.Path(id))
}

// Path resolves an identifier inside the storage root. Base strips
// any separators so an identifier cannot escape the root.
func (s *LocalStore) Path(id string) string {
	return filepath.Join(s.root, filepath.Base(id))
}
