package main

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	// imported for registration of the default Initializer
	_ "github.com/verbocado/PAGNNs/initializers"
)

var logger zerolog.Logger

func main() {
	root := &cobra.Command{
		Use:          "pagnn",
		Short:        "Train, evolve, and evaluate persistent graph-based neural networks",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd)
		},
	}

	root.PersistentFlags().String("config", "", "path to a yaml config file")
	root.PersistentFlags().String("log-level", "info", "log level (trace, debug, info, warn, error)")

	root.AddCommand(trainCmd(), evalCmd(), evolveCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup wires flags, environment (PAGNN_*), and an optional config file into viper, in that
// order of precedence, and builds the logger.
func setup(cmd *cobra.Command) error {
	viper.SetEnvPrefix("PAGNN")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return err
		}
	}

	level, err := zerolog.ParseLevel(viper.GetString("log-level"))
	if err != nil {
		return err
	}

	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	return nil
}
