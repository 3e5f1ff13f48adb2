// Package watch re-masks files whenever they change on disk.
package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"

	"go.jacobcolvin.com/streamguard/mask"
)

// DefaultDebounce is the delay between the last change to a file and the
// moment it is re-masked.
const DefaultDebounce = 50 * time.Millisecond

var (
	// ErrWatch indicates that file watching could not be set up.
	ErrWatch = errors.New("watch")
	// ErrNoFiles indicates that [Watcher.Run] was called before any file was
	// added.
	ErrNoFiles = errors.New("no files to watch")
)

// HandlerFunc receives the masking result of a watched file. The path is
// the one given to [Watcher.Add].
type HandlerFunc func(path string, res mask.Result)

// Option configures a [Watcher].
type Option func(*Watcher)

// WithDebounce sets how long a file must stay unchanged before it is
// re-masked. Non-positive values disable debouncing.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		w.debounce = max(d, 0)
	}
}

// Watcher masks a set of files once and again after every change.
//
// Create instances with [New].
type Watcher struct {
	masker   *mask.Masker
	fs       afero.Fs
	files    map[string]string
	timers   map[string]*time.Timer
	ready    chan string
	sends    sync.WaitGroup
	debounce time.Duration
	mu       sync.Mutex
}

// New creates a [Watcher] that masks files with m.
func New(m *mask.Masker, opts ...Option) *Watcher {
	w := &Watcher{
		masker:   m,
		fs:       afero.NewOsFs(),
		files:    make(map[string]string),
		timers:   make(map[string]*time.Timer),
		ready:    make(chan string, 16),
		debounce: DefaultDebounce,
	}
	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Add registers files to watch. Call Add before [Watcher.Run].
func (w *Watcher) Add(paths ...string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrWatch, p, err)
		}

		w.files[abs] = p
	}

	return nil
}

// Run masks every added file, then watches their parent directories and
// re-masks a file after it is written or re-created. fn is called from the
// goroutine running Run. Watch errors and unreadable files are logged. Run
// returns nil once ctx is cancelled or the underlying watcher closes, and
// pending changes are dropped.
func (w *Watcher) Run(ctx context.Context, fn HandlerFunc) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWatch, err)
	}

	defer func() {
		err := fsw.Close()
		if err != nil {
			slog.Debug("close watcher", slog.Any("error", err))
		}
	}()

	files := w.snapshot()
	if len(files) == 0 {
		return ErrNoFiles
	}

	dirs := make(map[string]struct{})
	for abs := range files {
		dirs[filepath.Dir(abs)] = struct{}{}
	}

	for dir := range dirs {
		err := fsw.Add(dir)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrWatch, dir, err)
		}
	}

	defer func() {
		cancel()
		w.stopTimers()
		w.sends.Wait()
	}()

	for abs, display := range files {
		w.process(abs, display, fn)
	}

	for {
		select {
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}

			w.handleEvent(ctx, event)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}

			slog.Warn("watch error", slog.Any("error", err))

		case abs := <-w.ready:
			w.process(abs, files[abs], fn)

		case <-ctx.Done():
			return nil
		}
	}
}

func (w *Watcher) handleEvent(ctx context.Context, event fsnotify.Event) {
	abs := filepath.Clean(event.Name)

	w.mu.Lock()
	_, watched := w.files[abs]
	w.mu.Unlock()

	if !watched {
		return
	}

	switch {
	case event.Has(fsnotify.Write), event.Has(fsnotify.Create):
		w.schedule(ctx, abs)
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		slog.Debug("watched file removed", slog.String("path", abs))
	}
}

// schedule queues abs for processing once it has been quiet for the
// debounce delay. Every queued send is tracked by w.sends until it delivers,
// ctx is cancelled or its timer is stopped.
func (w *Watcher) schedule(ctx context.Context, abs string) {
	send := func() {
		defer w.sends.Done()

		select {
		case w.ready <- abs:
		case <-ctx.Done():
		}
	}

	w.sends.Add(1)

	if w.debounce == 0 {
		go send()

		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if t, ok := w.timers[abs]; ok && t.Stop() {
		w.sends.Done()
	}

	w.timers[abs] = time.AfterFunc(w.debounce, send)
}

func (w *Watcher) process(abs, display string, fn HandlerFunc) {
	doc, err := mask.ReadDocument(w.fs, abs)
	if err != nil {
		slog.Warn("cannot read watched file",
			slog.String("path", display),
			slog.Any("error", err),
		)

		return
	}

	doc.Path = display

	fn(display, w.masker.Mask(doc))
}

func (w *Watcher) snapshot() map[string]string {
	w.mu.Lock()
	defer w.mu.Unlock()

	return maps.Clone(w.files)
}

func (w *Watcher) stopTimers() {
	w.mu.Lock()
	defer w.mu.Unlock()

	for abs, t := range w.timers {
		if t.Stop() {
			w.sends.Done()
		}

		delete(w.timers, abs)
	}
}
