// Command pathanim renders a path document into animation frames, masks
// and coordinate tracks.
//
// Usage:
//
//	pathanim -doc paths.json [-params batch.toml] [-out out] [-storage ~/input]
//	         [-preview preview.png] [-pdf tracks.pdf] [-workers N] [-watch] [-v]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"

	"github.com/gogpu/pathanim"
	"github.com/gogpu/pathanim/export"
	"github.com/gogpu/pathanim/render"
	"github.com/gogpu/pathanim/storage"
)

// watchDebounce coalesces the burst of events an editor save produces.
const watchDebounce = 200 * time.Millisecond

type config struct {
	doc     string
	params  string
	out     string
	storage string
	preview string
	pdf     string
	workers int
	watch   bool
	verbose bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.doc, "doc", "", "path document (JSON)")
	flag.StringVar(&cfg.params, "params", "", "render parameters (.toml, .yaml or .json)")
	flag.StringVar(&cfg.out, "out", "out", "output directory")
	flag.StringVar(&cfg.storage, "storage", "", "root directory for background images")
	flag.StringVar(&cfg.preview, "preview", "", "write a document preview PNG")
	flag.StringVar(&cfg.pdf, "pdf", "", "write a PDF track sheet")
	flag.IntVar(&cfg.workers, "workers", 0, "frame workers (0 = GOMAXPROCS)")
	flag.BoolVar(&cfg.watch, "watch", false, "re-render when the document or parameters change")
	flag.BoolVar(&cfg.verbose, "v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	pathanim.SetLogger(logger)

	if cfg.doc == "" {
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := newApp(cfg)
	if err != nil {
		logger.Error("pathanim: setup failed", "err", err)
		os.Exit(1)
	}

	if err := app.run(ctx); err != nil {
		logger.Error("pathanim: render failed", "err", err)
		if !cfg.watch {
			os.Exit(1)
		}
	}
	if cfg.watch {
		if err := app.watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("pathanim: watch failed", "err", err)
			os.Exit(1)
		}
	}
}

type app struct {
	cfg   config
	cache *storage.Cache
	log   *slog.Logger
}

func newApp(cfg config) (*app, error) {
	a := &app{cfg: cfg, log: pathanim.Logger()}

	var err error
	for _, p := range []*string{&a.cfg.doc, &a.cfg.out, &a.cfg.preview, &a.cfg.pdf} {
		if *p == "" {
			continue
		}
		if *p, err = homedir.Expand(*p); err != nil {
			return nil, err
		}
	}

	if cfg.storage != "" {
		store, err := storage.NewStore(cfg.storage)
		if err != nil {
			return nil, err
		}
		a.cache = storage.NewCache(store, storage.DefaultCacheLimit)
	}
	return a, nil
}

// run renders the document once and writes every requested output.
func (a *app) run(ctx context.Context) error {
	start := time.Now()

	data, err := os.ReadFile(a.cfg.doc)
	if err != nil {
		return err
	}
	doc := pathanim.ParseDocument(data)

	params := render.DefaultParams()
	if a.cfg.params != "" {
		if params, err = render.LoadParams(a.cfg.params); err != nil {
			return err
		}
	}

	bg := a.background(doc)

	res, err := render.Animate(ctx, doc, params,
		render.WithWorkers(a.cfg.workers),
		render.WithBackground(bg),
	)
	if err != nil {
		return err
	}

	if _, err := export.WriteFrames(ctx, a.cfg.out, res.Frames, res.Masks); err != nil {
		return err
	}
	if err := export.WriteTracks(filepath.Join(a.cfg.out, "tracks.json"), res.Coordinates); err != nil {
		return err
	}

	if a.cfg.preview != "" {
		img, err := render.Preview(doc, bg)
		if err != nil {
			return err
		}
		if err := imgio.Save(a.cfg.preview, img, imgio.PNGEncoder()); err != nil {
			return fmt.Errorf("save preview: %w", err)
		}
	}

	if a.cfg.pdf != "" {
		sheet := make([]export.SheetTrack, len(res.Tracks))
		for i, t := range res.Tracks {
			sheet[i] = export.SheetTrack{Name: doc.Paths[i].Name, Color: doc.Paths[i].Color, Track: t}
		}
		frame := pathanim.Size{Width: float64(params.FrameWidth), Height: float64(params.FrameHeight)}
		if err := export.WriteTrackSheet(a.cfg.pdf, frame, sheet); err != nil {
			return err
		}
	}

	a.log.Info("pathanim: done",
		"paths", len(doc.Paths), "frames", len(res.Frames), "out", a.cfg.out, "elapsed", time.Since(start))
	return nil
}

// background resolves the document's background image. Failures are
// logged and rendering continues on the plain background color.
func (a *app) background(doc *pathanim.Document) image.Image {
	if doc.Background == nil {
		return nil
	}
	if a.cache == nil {
		a.log.Warn("pathanim: document has a background image but no -storage root", "name", doc.Background.Name)
		return nil
	}
	img, err := a.cache.Background(a.cfg.doc, doc.Background)
	if err != nil {
		a.log.Warn("pathanim: background image unavailable", "err", err)
		return nil
	}
	return img
}

// watch re-renders whenever the document or parameter file changes, until
// ctx is done. The parent directories are watched since editors often
// replace files instead of writing them in place.
func (a *app) watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	targets := map[string]bool{}
	for _, p := range []string{a.cfg.doc, a.cfg.params} {
		if p == "" {
			continue
		}
		p, err := homedir.Expand(p)
		if err != nil {
			return err
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		targets[abs] = true
		if err := w.Add(filepath.Dir(abs)); err != nil {
			return err
		}
	}
	a.log.Info("pathanim: watching for changes", "files", len(targets))

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			abs, _ := filepath.Abs(ev.Name)
			if !targets[abs] || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)) {
				continue
			}
			a.log.Debug("pathanim: change detected", "file", ev.Name, "op", ev.Op.String())
			pending = time.After(watchDebounce)

		case <-pending:
			pending = nil
			if err := a.run(ctx); err != nil {
				a.log.Error("pathanim: render failed", "err", err)
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			a.log.Warn("pathanim: watcher error", "err", err)
		}
	}
}
