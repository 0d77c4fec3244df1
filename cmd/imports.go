package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yusufwagh/retouch"
	"github.com/yusufwagh/retouch/internal/snapshot"
	"github.com/yusufwagh/retouch/internal/symtab"
)

var qualifiedName string

var importsCmd = &cobra.Command{
	Use:   "imports [snapshot]",
	Short: "Insert an import for a qualified name into a snapshot",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 || qualifiedName == "" {
			fmt.Println("error: Please provide one snapshot path and --name")
			os.Exit(1)
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := insertImport(ctx, args[0]); err != nil {
			logger.Fatal("Failed to insert import", zap.Error(err))
		}
	},
}

func init() {
	importsCmd.Flags().StringVar(&qualifiedName, "name", "", "Qualified name to resolve (e.g. strings.Join)")
}

func insertImport(ctx context.Context, path string) error {
	t, err := snapshot.Load(path)
	if err != nil {
		return err
	}

	var universe symtab.Universe
	if indexPath != "" {
		universe, err = snapshot.LoadUniverse(indexPath)
		if err != nil {
			return err
		}
	}

	if err := retouch.InsertImport(ctx, t, qualifiedName, universe); err != nil {
		return err
	}
	fmt.Println(t.Text())
	return nil
}
