package storage

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF
	_ "image/jpeg" // register JPEG
	_ "image/png"  // register PNG
	"io/fs"
	"os"
	"path/filepath"

	"github.com/h2non/filetype"
	"github.com/mitchellh/go-homedir"
	_ "golang.org/x/image/bmp"  // register BMP
	_ "golang.org/x/image/tiff" // register TIFF
	_ "golang.org/x/image/webp" // register WebP

	"github.com/gogpu/pathanim"
)

// sniffLen is the number of leading bytes used for type detection.
const sniffLen = 262

// Store reads images from a directory tree.
type Store struct {
	root string
}

// NewStore returns a store rooted at root. A leading ~ expands to the home
// directory. The root must be an existing directory.
func NewStore(root string) (*Store, error) {
	expanded, err := homedir.Expand(root)
	if err != nil {
		return nil, fmt.Errorf("storage: root %s: %w", root, err)
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return nil, fmt.Errorf("storage: root %s: %w", root, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("storage: root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("storage: root %s: not a directory", root)
	}
	return &Store{root: abs}, nil
}

// Root returns the absolute root directory.
func (s *Store) Root() string {
	return s.root
}

// Path returns the file a reference points to. Type, when set, selects a
// top-level folder ("input", "output", ...) as host storage does.
func (s *Store) Path(ref pathanim.ImageRef) (string, error) {
	if ref.Name == "" {
		return "", fmt.Errorf("%w: empty name", ErrInvalidRef)
	}
	rel := filepath.Join(ref.Type, ref.Subfolder, ref.Name)
	if !filepath.IsLocal(rel) {
		return "", fmt.Errorf("%w: %q escapes the store", ErrInvalidRef, rel)
	}
	return filepath.Join(s.root, rel), nil
}

// Open reads and decodes the referenced image.
func (s *Store) Open(ref pathanim.ImageRef) (image.Image, error) {
	path, err := s.Path(ref)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, ref.Name)
		}
		return nil, fmt.Errorf("storage: read %s: %w", ref.Name, err)
	}

	head := data[:min(len(data), sniffLen)]
	kind, err := filetype.Match(head)
	if err != nil || !filetype.IsImage(head) {
		return nil, fmt.Errorf("%w: %s (%s)", ErrNotImage, ref.Name, kind.MIME.Value)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("storage: decode %s (%s): %w", ref.Name, kind.Extension, err)
	}
	pathanim.Logger().Debug("storage: loaded image",
		"name", ref.Name, "type", kind.MIME.Value, "size", img.Bounds().Size())
	return img, nil
}
