package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	cfgFile string
	verbose bool
	logger  = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "uitree",
	Short: "Format intent payloads into renderable UI trees",
	Long: `uitree turns loosely-structured intent payloads into validated UI tree
documents. Structural defects are repaired or degraded so the output is
always renderable, unless strict mode requests hard failures.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func main() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./uitree.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(formatCmd, validateCmd, catalogCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "uitree: %v\n", err)
		os.Exit(1)
	}
}

// setup configures logging and layered configuration: flags beat UITREE_*
// environment variables, which beat the optional config file.
func setup(cmd *cobra.Command, args []string) error {
	if verbose {
		dev, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("build logger: %w", err)
		}
		logger = dev
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("uitree")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}
	viper.SetEnvPrefix("UITREE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" {
			return fmt.Errorf("read config %s: %w", cfgFile, err)
		}
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	} else {
		logger.Debug("loaded config", zap.String("file", viper.ConfigFileUsed()))
	}
	return nil
}
