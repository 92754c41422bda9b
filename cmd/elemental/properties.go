package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/elemental/internal/element"
	"github.com/alexisbeaulieu97/elemental/internal/entries"
	"github.com/alexisbeaulieu97/elemental/internal/i18n"
	"github.com/alexisbeaulieu97/elemental/internal/table"
	"github.com/alexisbeaulieu97/elemental/internal/value"
)

func newPropertiesCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "properties [category]",
		Short: "Describe the element properties, their sources and ranges",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category := ""
			if len(args) == 1 {
				category = args[0]
			}
			return runProperties(cmd, app, category)
		},
	}

	return cmd
}

func runProperties(cmd *cobra.Command, app *AppContext, category string) error {
	reg := app.Registry
	loc := reg.Localizer()

	categories := reg.Categories()
	if category != "" {
		c, ok := element.LookupCategory(category, loc)
		if !ok {
			keys := make([]string, 0, len(categories))
			for _, c := range categories {
				keys = append(keys, c.Key)
			}
			return newCommandError("list properties", fmt.Sprintf("selecting category %q", category),
				errors.New("unknown category"), "Choose one of: "+strings.Join(keys, ", ")+".")
		}
		categories = []*element.Category{c}
	}

	out := cmd.OutOrStdout()
	paint := painter(app.useColor(out))
	for i, c := range categories {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "%s %s\n", paint.render(headingStyle, c.DisplayName(loc)), paint.render(mutedStyle, "("+c.Key+")"))
		for _, p := range c.Descriptors() {
			writeProperty(out, reg, p, loc, paint)
		}
	}
	return nil
}

func writeProperty(out io.Writer, reg *table.Registry, p *element.Property, loc *i18n.Localizer, paint painter) {
	fmt.Fprintf(out, "  %s  %s\n", paint.render(keyStyle, p.Key), p.DisplayName(loc))
	if p.Description != "" {
		fmt.Fprintf(out, "      %s\n", entries.Flatten(p.LocalizedDescription(loc)))
	}
	if rng, ok := scaleRange(reg, p, loc); ok {
		fmt.Fprintf(out, "      %s %s\n", loc.T("Range:"), rng)
	}
	for _, source := range p.Sources {
		fmt.Fprintf(out, "      %s\n", paint.render(mutedStyle, entries.Flatten(source.Localized(loc))))
	}
}

// scaleRange formats the observed range of a float property.
func scaleRange(reg *table.Registry, p *element.Property, loc *i18n.Localizer) (string, bool) {
	if !p.Scaled() {
		return "", false
	}
	scale, err := reg.Scale(p.ID)
	if err != nil || !scale.Valid() {
		return "", false
	}
	lo, _ := scale.Minimum()
	hi, _ := scale.Maximum()
	return formatMeasure(p, loc, lo) + " – " + formatMeasure(p, loc, hi), true
}

// formatMeasure renders a scale bound the way the property renders its own
// values.
func formatMeasure(p *element.Property, loc *i18n.Localizer, v float64) string {
	return entries.Flatten(value.NewValue(v, value.Neutral).Render(loc, p.LocalizedFormat(loc)))
}
