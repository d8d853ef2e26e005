package main

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/lagoon/internal/cliconfig"
	"github.com/bft-labs/lagoon/internal/parser"
)

var longHelp = strings.TrimSpace(`
Compute how many cubic meters of lava a dig plan can hold.

Each line of the input looks like "R 6 (#70c710)". By default the direction
and distance are decoded from the color code: the first five hex digits are
the distance and the last digit is the direction (0=R, 1=D, 2=L, 3=U).
The answer counts every lattice point inside or on the dug trench.
`)

var exampleUsage = strings.TrimSpace(`
  lagoon
  lagoon --input plan.txt --decoder literal
  lagoon --watch --log-level debug
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func newRootCommand(cfg *cliconfig.Config, cfgPath *string) *cobra.Command {
	root := &cobra.Command{
		Use:           "lagoon",
		Short:         "Count the lattice points enclosed by a dig plan",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if err := loadConfig(cfg, *cfgPath, changed); err != nil {
				return &configError{err: err}
			}
			return run(cmd.Context(), *cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &configError{err: err}
	})

	root.Flags().StringVar(cfgPath, "config", "", "path to config file (default: $HOME/.lagoon/config.toml)")
	root.Flags().StringVar(&cfg.InputPath, "input", cfg.InputPath, "dig plan file")
	root.Flags().StringVar(&cfg.Decoder, "decoder", cfg.Decoder, fmt.Sprintf("line decoder (%s)", strings.Join(parser.DecoderNames(), "|")))
	root.Flags().BoolVar(&cfg.CheckClosed, "check-closed", cfg.CheckClosed, "fail if the path does not return to the origin")
	root.Flags().BoolVar(&cfg.Dump, "dump", cfg.Dump, "log the decoded plan at debug level")
	root.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "re-solve whenever the input file changes")
	root.Flags().DurationVar(&cfg.Debounce, "debounce", cfg.Debounce, "delay after a change before re-solving (watch mode)")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug|info|warn|error)")

	return root
}

// loadConfig layers file, then env, under explicitly set flags.
func loadConfig(cfg *cliconfig.Config, cfgPath string, changed map[string]bool) error {
	cfgFile := cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	if cfgFile != "" && (cfgPath != "" || cliconfig.FileExists(cfgFile)) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(cfg, fc, changed); err != nil {
			return err
		}
	}

	if err := cliconfig.ApplyEnvConfig(cfg, changed); err != nil {
		return err
	}

	return cfg.Validate()
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := newRootCommand(&cfg, &cfgPath)
	if err := root.Execute(); err != nil {
		log := cfg.Logger()
		log.Error().Err(err).Msg("lagoon")
		os.Exit(exitCode(err))
	}
}
