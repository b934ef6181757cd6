package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var ErrCheckFailed = errors.New("register maps failed validation")

var checkCmd = &cobra.Command{
	Use:   "check [svd...]",
	Short: "Validate register maps",
	Long: `Validate the structure of register maps: offsets in order and word aligned,
no overlapping registers or fields, an overlay matching the span and
consistent value ranges. Without arguments the embedded descriptions are
checked.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		periphs, err := loadMaps(append(svdFiles, args...))
		if err != nil {
			return err
		}

		failed := 0
		for _, p := range periphs {
			if err := p.Validate(); err != nil {
				failed++
				log.Printf("%s:\n%v", p.Name, err)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok\t%s\t%d registers\n", p.Name, len(p.Registers))
		}
		if failed > 0 {
			return fmt.Errorf("%w: %d of %d", ErrCheckFailed, failed, len(periphs))
		}
		return nil
	},
}
