package commands

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/pennywise-dev/pennywise/internal/codec"
)

func newImportCommand(opts *appOptions) *cobra.Command {
	var modeStr, scanDir string
	var watch bool

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import expenses from a JSON backup or CSV file",
		Long: `Import expenses from a JSON backup or CSV file.

JSON imports honor --mode: "replace" swaps the whole ledger for the
file's contents, "merge" adds only transactions whose ids are not
already present. Either mode applies the file's budget when set.

CSV rows always add as new expenses with fresh ids. A single bad row
rejects the whole file.

With --scan, every .json and .csv file in the directory is imported
and moved to a processed/ subdirectory. Add --watch to keep polling.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := codec.ParseMode(modeStr)
			if err != nil {
				return err
			}

			app, err := openApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()

			if scanDir != "" {
				return runScan(app, scanDir, mode, watch)
			}
			if len(args) == 0 {
				return fmt.Errorf("pass a file to import, or --scan with a directory")
			}
			return importFile(app, args[0], mode)
		},
	}

	cmd.Flags().StringVar(&modeStr, "mode", "merge", "JSON import mode: merge or replace")
	cmd.Flags().StringVar(&scanDir, "scan", "", "import every .json/.csv file in this directory")
	cmd.Flags().BoolVar(&watch, "watch", false, "with --scan, keep polling the directory until interrupted")

	return cmd
}

func importFile(app *app, path string, mode codec.Mode) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := codec.ImportJSON(data, app.ledger, mode); err != nil {
			return fmt.Errorf("importing %s: %w", path, err)
		}
		fmt.Printf("Imported %s (%s)\n", path, mode)
	case ".csv":
		n, err := codec.ImportCSV(bytes.NewReader(data), app.ledger)
		if err != nil {
			return fmt.Errorf("importing %s: %w", path, err)
		}
		fmt.Printf("Imported %d expenses from %s\n", n, path)
	default:
		return fmt.Errorf("unsupported file type %q: want .json or .csv", filepath.Ext(path))
	}
	return nil
}

// runScan imports every importable file in dir, moving successes to
// dir/processed. With watch it keeps polling on the autosave interval and
// re-saves the ledger in the background until interrupted.
func runScan(app *app, dir string, mode codec.Mode, watch bool) error {
	pass := func() error {
		files, err := codec.Scan(dir)
		if err != nil {
			return err
		}
		for _, fi := range files {
			if err := importFile(app, fi.Path, mode); err != nil {
				app.logger.Warn("skipping file", "file", fi.Name, "error", err)
				continue
			}
			if err := codec.MarkProcessed(dir, fi.Name); err != nil {
				return err
			}
		}
		return nil
	}

	if !watch {
		return pass()
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The group context cancels on the first failure too, so only the
	// signal context says whether an interrupt ended the run.
	g, ctx := errgroup.WithContext(sigCtx)
	g.Go(func() error {
		app.ledger.Autosave(ctx, app.cfg.AutosaveInterval)
		return nil
	})
	g.Go(func() error {
		ticker := time.NewTicker(app.cfg.AutosaveInterval)
		defer ticker.Stop()
		for {
			if err := pass(); err != nil {
				return err
			}
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
			}
		}
	})

	if err := g.Wait(); err != nil && sigCtx.Err() == nil {
		return err
	}
	return nil
}
