package main

import (
	"log"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "regmap",
	Short: "Cortex-M7 and CoreSight register map tool",
	Long: `regmap inspects, validates and generates the register map packages of this
module from their SVD descriptions.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	log.SetFlags(0)
	log.SetPrefix("regmap: ")

	addSourceFlags(rootCmd.PersistentFlags())
	rootCmd.AddCommand(listCmd, showCmd, decodeCmd, checkCmd, generateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
