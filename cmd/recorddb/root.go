package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ajwerner/bst/internal/config"
	"github.com/ajwerner/bst/internal/logging"
	"github.com/ajwerner/bst/recorddb"
)

const (
	flagConfig = "config"
	flagSearch = "search"
	flagOutput = "output"
)

// nolint: gochecknoglobals
var Version = "master"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recorddb",
		Short: "Seeds a record store, lists it, and removes the record found by brand",
		Long: "Seeds a record store from the configuration, lists it in brand order,\n" +
			"searches for a brand, removes the matching record if any, and lists again.",
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configFile, _ := cmd.Flags().GetString(flagConfig)

			conf, err := config.Load(configFile, flagOverrides(cmd.Flags()))
			if err != nil {
				return err
			}

			return run(conf, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	registerFlags(cmd.Flags())

	return cmd
}

func registerFlags(flags *pflag.FlagSet) {
	flags.StringP(flagConfig, "c", "", "Path to a YAML configuration file")
	flags.StringP(flagSearch, "s", "", "Brand to search for and remove (default from configuration)")
	flags.StringP(flagOutput, "o", "", "Output format, table or json (default from configuration)")
}

// flagOverrides returns the configuration keys explicitly set on the command
// line.
func flagOverrides(flags *pflag.FlagSet) map[string]any {
	overrides := map[string]any{}

	for _, name := range []string{flagSearch, flagOutput} {
		if flags.Changed(name) {
			value, _ := flags.GetString(name)
			overrides[name] = value
		}
	}

	return overrides
}

func run(conf *config.Configuration, stdout, stderr io.Writer) error {
	logger := logging.NewLogger(conf.Log, stderr)

	store := recorddb.New(recorddb.WithLogger(logger))
	defer store.Drop()

	for _, rc := range conf.Records {
		if err := store.Insert(recorddb.NewRecord(rc.Brand, rc.Founder, rc.Year)); err != nil {
			logger.Warn().Err(err).Msg("Skipping record")
		}
	}

	renderer := recorddb.TableRenderer
	if conf.Output == config.OutputJSON {
		renderer = recorddb.JSONRenderer
	}

	if err := store.List(stdout, renderer); err != nil {
		return err
	}

	if record, found := store.Search(conf.Search); found {
		store.Remove(record)
		logger.Info().Str("_brand", conf.Search).Msg("Record removed")
	} else {
		logger.Info().Str("_brand", conf.Search).Msg("Record not found")
	}

	fmt.Fprintln(stdout)

	if err := store.List(stdout, renderer); err != nil {
		return err
	}

	logger.Info().Int("_rows", store.Len()).Msg("Done")

	return nil
}
