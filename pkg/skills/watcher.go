package skills

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"

	"github.com/skillcat-dev/skillcat/pkg/logger"
)

const defaultDebounce = 500 * time.Millisecond

// Watcher observes the skill roots for filesystem changes and triggers a
// resync on the manager after a short debounce, so a burst of writes (editor
// saves, directory copies) collapses into one reconciliation pass.
type Watcher struct {
	manager  *Manager
	roots    []string
	debounce time.Duration
	fsw      *fsnotify.Watcher
}

// NewWatcher creates a watcher over the given roots. Roots that do not exist
// yet are skipped; they get picked up once a sync or add operation creates them.
func NewWatcher(manager *Manager, roots ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create filesystem watcher")
	}

	w := &Watcher{
		manager:  manager,
		roots:    roots,
		debounce: defaultDebounce,
		fsw:      fsw,
	}

	for _, root := range roots {
		w.watchTree(root)
	}

	return w, nil
}

// watchTree registers the root and its immediate subdirectories. Definition
// files live one level below the root, so two levels of watches suffice.
func (w *Watcher) watchTree(root string) {
	if err := w.fsw.Add(root); err != nil {
		return
	}
	entries, err := os.ReadDir(root)
	if err != nil {
		return
	}
	for _, entry := range entries {
		if entry.IsDir() {
			_ = w.fsw.Add(filepath.Join(root, entry.Name()))
		}
	}
}

// Run blocks, resyncing the manager whenever the watched trees settle after a
// change. It returns when the context is canceled or the watcher fails.
func (w *Watcher) Run(ctx context.Context) error {
	log := logger.G(ctx)

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fsw.Events:
			if !ok {
				return errors.New("filesystem watcher closed")
			}
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = w.fsw.Add(event.Name)
				}
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				fire = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return errors.New("filesystem watcher closed")
			}
			log.WithError(err).Warn("filesystem watcher error")

		case <-fire:
			timer = nil
			fire = nil
			if _, err := w.manager.Resync(ctx); err != nil {
				log.WithError(err).Error("resync after filesystem change failed")
			}
			// New skill directories may have appeared; refresh the watch set.
			for _, root := range w.roots {
				w.watchTree(root)
			}
		}
	}
}

// Close stops the underlying filesystem watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
