package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-rvv/config"
)

const defaultSDKConfig = "sdkconfig"

func newFlagsCmd(opts *rootOptions) *cobra.Command {
	var outPath, defsPath string

	cmd := &cobra.Command{
		Use:   "flags",
		Short: "Derive the C++ compile flags and definitions from an sdkconfig file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := opts.configPath
			if path == "" {
				path = defaultSDKConfig
			}
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}

			if defsPath != "" {
				if err := writeFile(defsPath, cfg, config.WriteDefinitions); err != nil {
					return err
				}
			}

			if outPath == "" || outPath == "-" {
				if err := config.WriteFlags(cmd.OutOrStdout(), cfg); err != nil {
					return err
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout())
				return err
			}

			return writeFile(outPath, cfg, config.WriteFlags)
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "compile flags file (default stdout)")
	cmd.Flags().StringVar(&defsPath, "definitions", "", "also write the preprocessor definitions to this file")
	return cmd
}

func writeFile(path string, cfg config.Config, write func(io.Writer, config.Config) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f, cfg); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
