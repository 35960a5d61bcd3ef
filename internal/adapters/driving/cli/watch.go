package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/deglyph/deglyph/internal/core/services"
	"github.com/deglyph/deglyph/internal/logger"
)

var (
	watchConfig string
	watchInput  string
	watchOutput string
	watchPreset string
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-normalize a file whenever it changes",
	Long: `Normalizes the input file once, then watches it and re-normalizes on
every change until interrupted. Useful for keeping a cleaned copy of a
file that another tool keeps writing.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchConfig, "config", "c", "", "TOML rule file")
	watchCmd.Flags().StringVarP(&watchInput, "input", "i", "", "input file to watch (required)")
	watchCmd.Flags().StringVarP(&watchOutput, "output", "o", "", "output file (required)")
	watchCmd.Flags().StringVar(&watchPreset, "preset", "", "built-in rule set when no rule file is given")
	_ = watchCmd.MarkFlagRequired("input")
	_ = watchCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	svc, err := buildService(ctx, watchConfig, watchPreset)
	if err != nil {
		return err
	}

	if err := normalizeFile(ctx, svc, watchInput, watchOutput); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors replace files by rename,
	// which drops a direct file watch.
	if err := watcher.Add(filepath.Dir(watchInput)); err != nil {
		return fmt.Errorf("watch %s: %w", watchInput, err)
	}
	logger.Info("watching %s", watchInput)

	target := filepath.Clean(watchInput)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			logger.Debug("change detected: %s", event.Op)
			if err := normalizeFile(ctx, svc, watchInput, watchOutput); err != nil {
				// The file may be mid-rewrite; report and keep watching.
				logger.Warn("normalize failed: %v", err)
			}
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			if werr != nil && !errors.Is(werr, fsnotify.ErrClosed) {
				return fmt.Errorf("watch: %w", werr)
			}
		}
	}
}

// normalizeFile runs one input file through the chain into the output file.
func normalizeFile(ctx context.Context, svc *services.NormalizeService, input, output string) error {
	in, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	out, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	if err := svc.Normalize(ctx, in, out); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
