package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yusufwagh/retouch"
	"github.com/yusufwagh/retouch/internal"
	"github.com/yusufwagh/retouch/internal/snapshot"
	"github.com/yusufwagh/retouch/internal/symtab"
	"github.com/yusufwagh/retouch/internal/types"
)

var outDir string

var runCmd = &cobra.Command{
	Use:   "run [snapshots...]",
	Short: "Post-process translator snapshots",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide snapshot paths")
			os.Exit(1)
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		pipeline, err := newPipeline()
		if err != nil {
			logger.Fatal("Failed to initialize pipeline", zap.Error(err))
		}
		defer pipeline.Close()

		if err := runSnapshots(ctx, pipeline, args); err != nil {
			logger.Error("Processing failed", zap.Error(err))
			os.Exit(1)
		}
	},
}

func init() {
	runCmd.Flags().StringVarP(&outDir, "output", "o", "", "Directory for processed output (default: stdout)")
}

func newPipeline() (*internal.Pipeline, error) {
	settings := types.DefaultSettings()
	if cfgFile != "" {
		loaded, err := retouch.LoadSettings(cfgFile)
		if err != nil {
			return nil, err
		}
		settings = loaded
	}

	var universe symtab.Universe
	if indexPath != "" {
		loaded, err := snapshot.LoadUniverse(indexPath)
		if err != nil {
			return nil, err
		}
		universe = loaded
	}

	return internal.NewPipeline(settings,
		internal.WithLogger(logger),
		internal.WithUniverse(universe),
	), nil
}

func runSnapshots(ctx context.Context, pipeline *internal.Pipeline, paths []string) error {
	var bar *progressbar.ProgressBar
	if len(paths) > 1 {
		bar = progressbar.NewOptions(len(paths),
			progressbar.OptionSetDescription("retouch"),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
		)
	}

	failed := 0
	for _, path := range paths {
		if err := runSnapshot(ctx, pipeline, path); err != nil {
			logger.Error("error processing snapshot", zap.String("path", path), zap.Error(err))
			failed++
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		fmt.Println()
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d snapshot(s) failed", failed, len(paths))
	}
	return nil
}

func runSnapshot(ctx context.Context, pipeline *internal.Pipeline, path string) error {
	t, err := snapshot.Load(path)
	if err != nil {
		return err
	}

	report, err := pipeline.Run(ctx, t, nil)
	if err != nil {
		return err
	}
	fmt.Print(internal.FormatReport(report))

	text := t.Text()
	if outDir == "" {
		fmt.Println(text)
		return nil
	}

	out := filepath.Join(outDir, filepath.Base(path)+".out")
	if err := os.WriteFile(out, []byte(text+"\n"), 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
