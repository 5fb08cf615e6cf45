package watches

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/reusee/auhui/logs"
	"github.com/reusee/auhui/modes"
)

// Debounce is how long a file must stay quiet before it is read again.
type Debounce time.Duration

func (Module) Debounce(
	mode modes.Mode,
) Debounce {
	if mode == modes.ModeDevelopment {
		return Debounce(20 * time.Millisecond)
	}
	return Debounce(200 * time.Millisecond)
}

// Watch yields the content of path now and after every change that settles.
// Unchanged contents are not yielded twice. The sequence ends when ctx is done.
type Watch func(ctx context.Context, path string) iter.Seq2[[]byte, error]

func (Module) Watch(
	logger logs.Logger,
	debounce Debounce,
) Watch {
	return func(ctx context.Context, path string) iter.Seq2[[]byte, error] {
		return func(yield func([]byte, error) bool) {
			path, err := filepath.Abs(path)
			if err != nil {
				yield(nil, wrap(err))
				return
			}

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				yield(nil, wrap(err))
				return
			}
			defer watcher.Close()
			// editors often replace the file, so watch its directory
			if err := watcher.Add(filepath.Dir(path)); err != nil {
				yield(nil, wrap(err))
				return
			}
			logger.InfoContext(ctx, "watching",
				"path", path,
			)

			last, err := os.ReadFile(path)
			if err != nil {
				yield(nil, wrap(err))
				return
			}
			if !yield(last, nil) {
				return
			}

			timer := time.NewTimer(time.Duration(debounce))
			timer.Stop()
			defer timer.Stop()

			for {
				select {

				case <-ctx.Done():
					return

				case event, ok := <-watcher.Events:
					if !ok {
						return
					}
					if filepath.Clean(event.Name) != path {
						continue
					}
					if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
						continue
					}
					logger.DebugContext(ctx, "file event",
						"op", event.Op.String(),
					)
					timer.Reset(time.Duration(debounce))

				case err, ok := <-watcher.Errors:
					if !ok {
						return
					}
					if !yield(nil, wrap(err)) {
						return
					}

				case <-timer.C:
					content, err := os.ReadFile(path)
					if errors.Is(err, fs.ErrNotExist) {
						// removed or mid-rename, wait for the next create
						continue
					}
					if err != nil {
						if !yield(nil, wrap(err)) {
							return
						}
						continue
					}
					if bytes.Equal(content, last) {
						continue
					}
					last = content
					if !yield(content, nil) {
						return
					}

				}
			}
		}
	}
}
