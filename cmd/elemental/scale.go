package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/elemental/internal/element"
	"github.com/alexisbeaulieu97/elemental/internal/entries"
	"github.com/alexisbeaulieu97/elemental/internal/value"
)

type scaleOptions struct {
	logarithmic bool
}

func newScaleCmd(app *AppContext) *cobra.Command {
	opts := &scaleOptions{}

	cmd := &cobra.Command{
		Use:   "scale <property>",
		Short: "Show the range of a numeric property and where each element falls in it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("log") {
				if p, err := element.LookupProperty(args[0]); err == nil {
					opts.logarithmic = app.Settings.IsLogarithmic(p.ID)
				}
			}
			return runScale(cmd, app, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.logarithmic, "log", false, "Use a logarithmic scale (default from settings)")

	return cmd
}

func runScale(cmd *cobra.Command, app *AppContext, name string, opts *scaleOptions) error {
	reg := app.Registry
	loc := reg.Localizer()

	p, err := element.LookupProperty(name)
	if err != nil {
		return newCommandError("show scale", fmt.Sprintf("looking up property %q", name), err,
			"Run 'elemental properties' to list the property keys.")
	}
	scale, err := reg.Scale(p.ID)
	if err != nil {
		return newCommandError("show scale", "reading the scale of "+p.Key, err,
			"Only numeric properties, such as melting_point, have a scale.")
	}
	midpoint, err := scale.Midpoint(opts.logarithmic)
	if err != nil {
		return newCommandError("show scale", "reading the scale of "+p.Key, err,
			"A logarithmic scale needs positive bounds; drop --log or choose another property.")
	}
	lo, _ := scale.Minimum()
	hi, _ := scale.Maximum()

	out := cmd.OutOrStdout()
	paint := painter(app.useColor(out))

	mode := "linear"
	if opts.logarithmic {
		mode = "logarithmic"
	}
	fmt.Fprintf(out, "%s (%s)\n", paint.render(headingStyle, p.DisplayName(loc)), mode)

	writer := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(writer, "Minimum:\t%s\n", formatMeasure(p, loc, lo))
	fmt.Fprintf(writer, "Midpoint:\t%s\n", formatMeasure(p, loc, midpoint))
	fmt.Fprintf(writer, "Maximum:\t%s\n", formatMeasure(p, loc, hi))
	if err := writer.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(out)

	writer = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(writer, "NUMBER\tSYMBOL\tVALUE\tPOSITION\tCOLOR")
	for _, e := range reg.Elements() {
		f, err := element.PropertyAs[value.Float](e, p.ID)
		if err != nil || !f.HasValue() {
			fmt.Fprintf(writer, "%d\t%s\t-\t-\t-\n", e.Number(), e.Symbol())
			continue
		}
		rendered := entries.Flatten(f.Render(loc, p.LocalizedFormat(loc)))
		position, err := scale.Position(f, opts.logarithmic)
		if err != nil {
			fmt.Fprintf(writer, "%d\t%s\t%s\t-\t-\n", e.Number(), e.Symbol(), rendered)
			continue
		}
		color := value.ColorAtPosition(position, value.Neutral).Color()
		fmt.Fprintf(writer, "%d\t%s\t%s\t%s\t%s%s\n", e.Number(), e.Symbol(), rendered,
			strconv.FormatFloat(position, 'f', 3, 64), paint.swatch(color), color.Hex())
	}
	return writer.Flush()
}
