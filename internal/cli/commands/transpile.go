package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/sqlbridge/sqlbridge/internal/cli/config"
	"github.com/sqlbridge/sqlbridge/pkg/transpile"
)

// NewTranspileCommand creates the transpile command.
func NewTranspileCommand() *cobra.Command {
	var (
		fromName string
		toName   string
		watch    bool
	)

	cmd := &cobra.Command{
		Use:   "transpile [file...]",
		Short: "Transpile SQL between dialects",
		Long: `Transpile reads SQL from files or stdin, parses it in the source
dialect, and prints it rendered in the target dialect. With --watch the
input files are re-transpiled whenever they change.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromContext(cmd.Context())
			fromName = pick(fromName, cfg.From)
			toName = pick(toName, cfg.To)

			from, err := resolveDialect(fromName)
			if err != nil {
				return err
			}
			to, err := resolveDialect(toName)
			if err != nil {
				return err
			}

			if watch {
				if len(args) == 0 {
					return fmt.Errorf("--watch requires file arguments")
				}
				return watchAndTranspile(cmd, args, fromName, toName)
			}

			if len(args) == 0 {
				input, err := readInput(cmd, args)
				if err != nil {
					return err
				}
				stmts, err := transpile.TranspileAll(input, from, to)
				if err != nil {
					return err
				}
				writeStatements(cmd, stmts)
				return nil
			}

			// Files are independent; transpile them concurrently but
			// print results in argument order.
			results := make([][]string, len(args))
			g, _ := errgroup.WithContext(cmd.Context())
			for i, path := range args {
				g.Go(func() error {
					data, err := os.ReadFile(path)
					if err != nil {
						return fmt.Errorf("failed to read %s: %w", path, err)
					}
					stmts, err := transpile.TranspileAll(string(data), from, to)
					if err != nil {
						return fmt.Errorf("%s: %w", path, err)
					}
					results[i] = stmts
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			for _, stmts := range results {
				writeStatements(cmd, stmts)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&fromName, "from", "", "Source dialect (default from config)")
	cmd.Flags().StringVar(&toName, "to", "", "Target dialect (default from config)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Re-transpile when input files change")
	return cmd
}

func writeStatements(cmd *cobra.Command, stmts []string) {
	for _, s := range stmts {
		fmt.Fprintf(cmd.OutOrStdout(), "%s;\n", s)
	}
}

// watchAndTranspile re-runs the transpilation whenever one of the input
// files changes. Editors often replace files on save, so renamed or removed
// paths are re-added to the watcher.
func watchAndTranspile(cmd *cobra.Command, paths []string, fromName, toName string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	for _, path := range paths {
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
	}

	runOnce := func() {
		from, _ := resolveDialect(fromName)
		to, _ := resolveDialect(toName)

		for _, path := range paths {
			data, err := os.ReadFile(path)
			if err != nil {
				slog.Error("read failed", "path", path, "error", err)
				continue
			}
			stmts, err := transpile.TranspileAll(string(data), from, to)
			if err != nil {
				slog.Error("transpile failed", "path", path, "error", err)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "-- %s\n", path)
			writeStatements(cmd, stmts)
		}
	}

	runOnce()
	slog.Info("watching for changes", "files", strings.Join(paths, ", "))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		// Editors fire bursts of events; debounce before re-running.
		var timer *time.Timer
		pending := make(chan struct{}, 1)

		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
					continue
				}
				slog.Debug("fs event", "op", event.Op.String(), "path", event.Name)
				if event.Op&(fsnotify.Rename|fsnotify.Remove) != 0 {
					_ = watcher.Add(event.Name)
				}
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(100*time.Millisecond, func() {
					select {
					case pending <- struct{}{}:
					default:
					}
				})
			case <-pending:
				runOnce()
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				slog.Error("watch error", "error", err)
			}
		}
	})

	err = g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
