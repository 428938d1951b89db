package commands

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/objschema/objschema"
)

// DefaultDebounce quiet period after the last change before revalidating
const DefaultDebounce = 100 * time.Millisecond

// NewWatchCommand creates the watch command.
func NewWatchCommand() *cobra.Command {
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Revalidate a schema document whenever it changes",
		Long: `Validate a schema document, then validate it again on every change until
interrupted.`,
		Example: `  objschema watch schema.yaml`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := setup(cmd)
			if err != nil {
				return err
			}
			return watchFile(cmd.Context(), db, args[0], cmd.OutOrStdout(), debounce)
		},
	}

	cmd.Flags().DurationVar(&debounce, "debounce", DefaultDebounce, "Quiet period before revalidating")
	return cmd
}

// watchFile reports the validity of path on start and after each change, until ctx is done
func watchFile(ctx context.Context, db *objschema.DB, path string, w io.Writer, debounce time.Duration) error {
	path, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// editors replace files on save, so the directory is watched
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}

	report(db, path, w)

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			pending = time.After(debounce)
		case <-pending:
			pending = nil
			report(db, path, w)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			printf(w, "watcher error: %v\n", err)
		}
	}
}

func report(db *objschema.DB, path string, w io.Writer) {
	result, err := db.ParseFile(path)
	if err != nil {
		printf(w, "FAIL  %v\n", err)
		return
	}
	printf(w, "ok    %s (%d object types)\n", path, len(result.Schema))
	result.Release()
}
