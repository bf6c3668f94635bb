package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "artkv"

func newRootCmd() *cobra.Command {
	v := viper.New()
	root := &cobra.Command{
		Use:   "artkv",
		Short: "in-memory key-value store on an adaptive radix tree",
		Long: `artkv keeps byte-string keys in an adaptive radix tree with path
compression and serves them over the Redis protocol.

Every flag can also be set through the environment as ARTKV_<FLAG>
(e.g. ARTKV_MAX_KEY=256). .env and .env.local are loaded when present.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(v, cmd)
		},
	}
	root.PersistentFlags().String("log-level", "info", "log level (trace, debug, info, warn, error)")
	root.PersistentFlags().Bool("log-json", false, "emit logs as JSON")

	root.AddCommand(newServeCmd(v), newInspectCmd(v), newVersionCmd())
	return root
}

func initConfig(v *viper.Viper, cmd *cobra.Command) error {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v.BindPFlags(cmd.Flags())
}

func newLogger(v *viper.Viper) (hclog.Logger, error) {
	name := v.GetString("log-level")
	level := hclog.LevelFromString(name)
	if level == hclog.NoLevel {
		return nil, fmt.Errorf("invalid log level %q", name)
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:       "artkv",
		Level:      level,
		JSONFormat: v.GetBool("log-json"),
		Output:     os.Stderr,
	}), nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of artkv",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "artkv %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}
