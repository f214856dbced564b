package main

import (
	"fmt"
	"github.com/spf13/cobra"
)

// version - Set at build time with -ldflags "-X main.version=..."
var version = "dev"

func rootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tablestat",
		Short:         "Load keys into a hash table and report how they spread",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(runCommand(), versionCommand())

	return cmd
}

func runCommand() *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Insert every key of a file into a configured table and print its statistics as YAML",
		Long: "Reads one key per line from the keys file and inserts it with its line number as value into a table " +
			"built from the configuration file. Blank lines are skipped. With --erase-every N every Nth key is " +
			"erased again once all keys are loaded.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "table configuration file (.toml, .yaml or .yml), defaults apply if not given")
	cmd.Flags().StringVarP(&opts.keysPath, "keys", "k", "", "file with one key per line")
	cmd.Flags().IntVar(&opts.eraseEvery, "erase-every", 0, "erase every Nth loaded key, 0 erases nothing")
	cmd.Flags().BoolVar(&opts.distribution, "distribution", false, "include the number of elements per bucket")
	_ = cmd.MarkFlagRequired("keys")

	return cmd
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}
