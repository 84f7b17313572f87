package host

import (
	"context"
	"path/filepath"
	"time"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"
)

// WatchBundle watches the bundle file and calls onChange after writes
// settle. Editors and esbuild replace the file instead of writing in place,
// so the parent directory is watched and events are debounced.
func WatchBundle(ctx context.Context, path string, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()

	if err != nil {
		return err
	}

	defer watcher.Close()

	if err = watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}

	log.Infof("watching %s", path)

	debounced := debounce.New(500 * time.Millisecond)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if event.Name != path {
				continue
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				debounced(onChange)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			log.Errorf("watch: %s", err.Error())
		}
	}
}
