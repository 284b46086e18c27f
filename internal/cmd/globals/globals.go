// Package globals provides shared flag structures and utilities for CLI commands.
package globals

import "github.com/spf13/cobra"

// Flags holds global common flags across all commands.
type Flags struct {
	ConfigFile string
	Format     string
	LogLevel   string
	Quiet      bool
	Verbose    bool
	NoColor    bool
}

// AddFlags adds common flags to the root command.
func AddFlags(cmd *cobra.Command) *Flags {
	flags := &Flags{}

	cmd.PersistentFlags().StringVar(&flags.ConfigFile, "config", "",
		"config file (default is $HOME/.nycdb-schema.yaml)")
	cmd.PersistentFlags().StringVarP(&flags.Format, "format", "o", "",
		"output format: table, json, yaml, wide")
	cmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", "",
		"log level: trace, debug, info, warn, error (overrides -v/-q)")
	cmd.PersistentFlags().BoolVarP(&flags.Quiet, "quiet", "q", false,
		"minimal output (shortcut for --log-level=warn)")
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false,
		"verbose output (shortcut for --log-level=debug)")
	cmd.PersistentFlags().BoolVar(&flags.NoColor, "no-color", false,
		"disable colored output")

	return flags
}

// Parse extracts global flags from the command hierarchy.
// This is useful for subcommands that need to access global flags when
// they weren't passed the flags struct directly.
func Parse(cmd *cobra.Command) *Flags {
	root := cmd
	for root.Parent() != nil {
		root = root.Parent()
	}

	pf := root.PersistentFlags()
	return &Flags{
		ConfigFile: mustGetString(pf.GetString("config")),
		Format:     mustGetString(pf.GetString("format")),
		LogLevel:   mustGetString(pf.GetString("log-level")),
		Quiet:      mustGetBool(pf.GetBool("quiet")),
		Verbose:    mustGetBool(pf.GetBool("verbose")),
		NoColor:    mustGetBool(pf.GetBool("no-color")),
	}
}

// mustGetString unwraps a flag lookup or panics if the flag doesn't exist.
func mustGetString(val string, err error) string {
	if err != nil {
		panic("programming error: " + err.Error())
	}
	return val
}

// mustGetBool unwraps a flag lookup or panics if the flag doesn't exist.
func mustGetBool(val bool, err error) bool {
	if err != nil {
		panic("programming error: " + err.Error())
	}
	return val
}
