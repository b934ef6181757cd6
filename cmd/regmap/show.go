package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"omibyte.io/coresight/defs"
	"omibyte.io/coresight/regmap"
)

var (
	listCmd = &cobra.Command{
		Use:   "list",
		Short: "List the register maps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			periphs, err := loadMaps(svdFiles)
			if err != nil {
				return err
			}

			config := defs.Config()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tBASE\tSPAN\tPACKAGE")
			for _, p := range periphs {
				base, err := p.Address()
				if err != nil {
					return fmt.Errorf("%s: %w", p.Name, err)
				}
				pkg := "-"
				if _, ok := config.Packages[p.Name]; ok {
					pkg = config.ImportPath(p.Name)
				}
				fmt.Fprintf(w, "%s\t%s\t%#x\t%s\n", p.Name, base, p.Span, pkg)
			}
			return w.Flush()
		},
	}

	showCmd = &cobra.Command{
		Use:   "show <peripheral>",
		Short: "Print the layout of a register map",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := findMap(args[0])
			if err != nil {
				return err
			}
			base, err := p.Address()
			if err != nil {
				return fmt.Errorf("%s: %w", p.Name, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s at %s (%s), span %#x\n", p.Name, base, p.Binding, p.Span)
			if p.Description != "" {
				fmt.Fprintln(out, p.Description)
			}
			fmt.Fprintln(out)

			w := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)
			for i := range p.Registers {
				printRegister(w, &p.Registers[i])
			}
			return w.Flush()
		},
	}

	decodeCmd = &cobra.Command{
		Use:   "decode <peripheral> <register> <value>",
		Short: "Decode a register value into its fields",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := findMap(args[0])
			if err != nil {
				return err
			}
			word, err := strconv.ParseUint(args[2], 0, 32)
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", args[2], err)
			}
			values, err := p.Decode(args[1], uint32(word))
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
			for _, v := range values {
				fmt.Fprintf(w, "%s\t%s\t%#x\t%s\n", v.Field.Name, bits(v.Field), v.Value, v.Name)
			}
			return w.Flush()
		},
	}
)

func bits(f *regmap.Field) string {
	if f.Width == 1 {
		return fmt.Sprintf("[%d]", f.Offset)
	}
	return fmt.Sprintf("[%d:%d]", f.Offset+f.Width-1, f.Offset)
}

func printRegister(w *tabwriter.Writer, r *regmap.Register) {
	name := r.Name
	if r.Count > 1 {
		name = fmt.Sprintf("%s[%d]", r.Name, r.Count)
	}
	note := r.Description
	switch {
	case r.DerivedFrom != "":
		note = "alias of " + r.DerivedFrom
	case r.Alternate != "":
		note = "alternate of " + r.Alternate
	case r.Banked:
		note = fmt.Sprintf("%s (bank %d)", note, r.Bank)
	}
	fmt.Fprintf(w, "0x%03x\t%s\t%s\t0x%08x\t%s\n", r.Offset, name, r.Access.Short(), r.ResetValue, note)

	if r.DerivedFrom != "" {
		return
	}
	for i := range r.Fields {
		f := &r.Fields[i]
		fmt.Fprintf(w, "\t  %s\t%s\t%s\t%s\n", bits(f), f.Name, r.FieldAccess(f).Short(), fieldNote(f))
	}
}

func fieldNote(f *regmap.Field) string {
	switch {
	case f.Composed():
		return fmt.Sprintf("bit %d of %s", f.Index, f.Base)
	case f.Enum != nil:
		s := ""
		for i, v := range f.Enum.Values {
			if i > 0 {
				s += ", "
			}
			s += fmt.Sprintf("%s=%d", v.Name, v.Value)
		}
		return s
	case f.Range != nil:
		return fmt.Sprintf("%s 0..%d", f.Range.Name, f.Range.Max)
	default:
		return f.Description
	}
}
