package export

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"runtime"

	"github.com/anthonynsimon/bild/imgio"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/pathanim"
)

// FrameName returns the file name of frame i (zero-based) with prefix,
// numbered from 1 and zero-padded to four digits: frame_0001.png.
func FrameName(prefix string, i int) string {
	return fmt.Sprintf("%s_%04d.png", prefix, i+1)
}

// WriteFrames writes frames as frame_NNNN.png and masks as mask_NNNN.png
// into dir, creating it when needed. Files are encoded concurrently, at
// most GOMAXPROCS at a time. It returns the written paths, frames first.
func WriteFrames(ctx context.Context, dir string, frames []*image.RGBA, masks []*image.Gray) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}

	paths := make([]string, len(frames)+len(masks))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	save := func(slot int, name string, img image.Image) {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path := filepath.Join(dir, name)
			if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
				return fmt.Errorf("export: save %s: %w", name, err)
			}
			paths[slot] = path
			return nil
		})
	}
	for i, f := range frames {
		save(i, FrameName("frame", i), f)
	}
	for i, m := range masks {
		save(len(frames)+i, FrameName("mask", i), m)
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	pathanim.Logger().Info("export: wrote frames", "dir", dir, "frames", len(frames), "masks", len(masks))
	return paths, nil
}

// WriteTracks writes the formatted coordinate tracks to path.
func WriteTracks(path, coords string) error {
	if err := os.WriteFile(path, []byte(coords), 0o644); err != nil {
		return fmt.Errorf("export: write tracks: %w", err)
	}
	return nil
}
