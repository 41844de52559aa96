package cmd

import (
	"context"
	"errors"
	"io/fs"
	"log"

	"github.com/josephlewis42/catfish/core"
	"github.com/josephlewis42/catfish/core/config"
	"github.com/josephlewis42/catfish/core/logger"
	"github.com/josephlewis42/catfish/core/vos"
	"github.com/spf13/cobra"
)

var cfgPath string

func configDir() (string, error) {
	if cfgPath != "" {
		return cfgPath, nil
	}
	return config.DefaultDir()
}

func loadConfig() (*config.Configuration, error) {
	dir, err := configDir()
	if err != nil {
		return nil, err
	}

	configuration, err := config.Load(dir)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("Couldn't load config: did you run init?")
	}

	return configuration, err
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "catfish",
	Short: "A small interactive shell",
	Long: `A small interactive shell with pipelines, cd and exit builtins,
filename completion and persistent history.

Running catfish without a subcommand starts the shell.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		configuration, err := loadConfig()
		if err != nil {
			return err
		}

		appLog, err := configuration.OpenAppLog()
		if err != nil {
			return err
		}
		defer appLog.Close()
		events := logger.NewJsonLinesLogRecorder(appLog).NewSession()

		stop := core.IgnoreInterrupts()
		defer stop()

		sh, err := core.NewShell(vos.NewHostOS(), configuration, events)
		if err != nil {
			return err
		}
		defer sh.Close()

		return sh.Run(cmd.Context())
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.ExecuteContext(context.Background()))
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config directory (default $HOME/catfish)")
}
