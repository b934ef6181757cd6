package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"omibyte.io/coresight/defs"
	"omibyte.io/coresight/generator"
)

var (
	generateOpts = struct {
		config string
		output string
		check  bool
	}{}

	generateCmd = &cobra.Command{
		Use:   "generate [peripheral...]",
		Short: "Generate register map packages",
		Long: `Generate a Go package for every selected register map. Without arguments
every map with a configured package is generated. The default configuration
reproduces the packages of this module when run from its root directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := defs.Config()
			if generateOpts.config != "" {
				buf, err := os.ReadFile(generateOpts.config)
				if err != nil {
					return err
				}
				if config, err = generator.LoadConfig(buf); err != nil {
					return fmt.Errorf("%s: %w", generateOpts.config, err)
				}
			}
			if cmd.Flags().Changed("output") {
				config.Output = generateOpts.output
			}

			periphs, err := loadMaps(svdFiles)
			if err != nil {
				return err
			}
			selected, err := config.Select(periphs, args)
			if err != nil {
				return err
			}

			if generateOpts.check {
				for _, p := range selected {
					if err = p.Validate(); err != nil {
						return fmt.Errorf("%s:\n%w", p.Name, err)
					}
				}
			}

			written, err := config.Write(selected)
			for _, fname := range written {
				log.Printf("wrote %s", fname)
			}
			return err
		},
	}
)

func init() {
	generateCmd.Flags().StringVarP(&generateOpts.config, "config", "c", "", "generator configuration file")
	generateCmd.Flags().StringVarP(&generateOpts.output, "output", "o", ".", "directory of the module root")
	generateCmd.Flags().BoolVar(&generateOpts.check, "check", true, "validate the register maps before generating")
}
