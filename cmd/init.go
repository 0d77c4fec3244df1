package cmd

import (
	"fmt"

	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/yusufwagh/retouch/internal/types"
)

// initCmd: retouch init
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new settings file",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSettingsFile(cfgFile); err != nil {
			logger.Error("Error initializing settings file", zap.Error(err))
			return
		}
		fmt.Printf("Settings file created/updated: %s\n", cfgFile)
	},
}

func initSettingsFile(path string) error {
	if path == "" {
		path = ".retouch.yaml"
	}

	settings := types.DefaultSettings()
	settings.Rules = map[string]types.RuleConfig{}
	d, err := yaml.Marshal(settings)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(d)
	if err != nil {
		return err
	}

	return nil
}
