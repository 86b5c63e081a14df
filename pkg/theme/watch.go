package theme

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	apperrors "github.com/odvcencio/tessera/pkg/errors"
)

// watchDebounce coalesces the burst of filesystem events most editors
// emit per save into a single reload.
const watchDebounce = 100 * time.Millisecond

// Watch reloads the theme file whenever it changes on disk and hands
// the result to onChange. A reload that fails to load or parse goes to
// onError instead; the previous theme stays in effect and watching
// continues. Watch blocks until ctx is cancelled.
func Watch(ctx context.Context, path string, onChange func(*Theme), onError func(error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeThemeLoad, "failed to create theme watcher")
	}
	defer watcher.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeThemeLoad, "failed to resolve theme path").
			WithContext("path", path)
	}

	// Watch the directory, not the file: editors usually save by
	// writing a temp file and renaming it over the original, which
	// silently drops a watch held on the file itself.
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeThemeLoad, "failed to watch theme directory").
			WithContext("path", abs)
	}

	var reload <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return apperrors.New(apperrors.ErrCodeInternal, "theme watcher closed unexpectedly")
			}
			if filepath.Base(event.Name) != filepath.Base(abs) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			reload = time.After(watchDebounce)

		case <-reload:
			reload = nil
			t, err := Load(abs)
			if err != nil {
				if onError != nil {
					onError(err)
				}
				continue
			}
			if onChange != nil {
				onChange(t)
			}

		case werr, ok := <-watcher.Errors:
			if !ok {
				return apperrors.New(apperrors.ErrCodeInternal, "theme watcher closed unexpectedly")
			}
			if onError != nil {
				onError(apperrors.Wrap(werr, apperrors.ErrCodeInternal, "theme watcher error"))
			}
		}
	}
}
