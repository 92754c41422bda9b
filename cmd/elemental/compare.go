package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/elemental/internal/element"
	"github.com/alexisbeaulieu97/elemental/pkg/diff"
)

func newCompareCmd(app *AppContext) *cobra.Command {
	opts := &printOptions{}

	cmd := &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Show the differences between the properties of two elements",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, app, args[0], args[1], opts)
		},
	}

	cmd.Flags().Float64VarP(&opts.temperature, "temperature", "t", 0, "Temperature in Kelvin for the phase entry (default from settings)")
	cmd.Flags().StringVar(&opts.category, "category", "", "Compare only one category, such as thermal")

	return cmd
}

func runCompare(cmd *cobra.Command, app *AppContext, a, b string, opts *printOptions) error {
	reg := app.Registry

	sheet, err := sheetOptions(cmd, app, "compare", opts)
	if err != nil {
		return err
	}

	var rendered [2][]byte
	var elements [2]*element.Element
	for i, which := range []string{a, b} {
		e, err := reg.Lookup(which)
		if err != nil {
			return newCommandError("compare", fmt.Sprintf("looking up element %q", which), err,
				fmt.Sprintf("Use a symbol such as Fe or an atomic number from 1 to %d.", reg.Len()))
		}
		var buf bytes.Buffer
		if err := reg.WriteSheet(&buf, e, sheet); err != nil {
			return newCommandError("compare", "rendering "+e.Name(), err, "Report this as a bug.")
		}
		rendered[i] = buf.Bytes()
		elements[i] = e
	}

	out, stats := diff.UnifiedStats(rendered[0], rendered[1], elements[0].Symbol(), elements[1].Symbol())
	if app.Log.Enabled("debug") {
		app.Log.WithFields(map[string]any{
			"added":   stats.Added,
			"removed": stats.Removed,
			"same":    stats.Same,
		}).Debug("sheets compared")
	}

	if !stats.Changed() {
		fmt.Fprintf(cmd.OutOrStdout(), "%s and %s have identical properties\n", elements[0].Name(), elements[1].Name())
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
