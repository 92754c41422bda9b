package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/elemental/internal/element"
	"github.com/alexisbeaulieu97/elemental/internal/entries"
	"github.com/alexisbeaulieu97/elemental/internal/table"
)

type printOptions struct {
	jsonOutput  bool
	temperature float64
	category    string
	all         bool
}

func newPrintCmd(app *AppContext) *cobra.Command {
	opts := &printOptions{}

	cmd := &cobra.Command{
		Use:     "print <symbol|number>...",
		Aliases: []string{"show"},
		Short:   "Print the properties of one or more elements",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runPrint(cmd, app, args, opts)
			if err != nil {
				app.Log.Error(err, "print command failed")
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output entries as JSON")
	cmd.Flags().Float64VarP(&opts.temperature, "temperature", "t", 0, "Temperature in Kelvin for the phase entry (default from settings)")
	cmd.Flags().StringVar(&opts.category, "category", "", "Print only one category, such as thermal")
	cmd.Flags().BoolVarP(&opts.all, "all", "a", false, "Include the name, symbol and atomic number")

	return cmd
}

func runPrint(cmd *cobra.Command, app *AppContext, args []string, opts *printOptions) error {
	reg := app.Registry

	sheet, err := sheetOptions(cmd, app, "print", opts)
	if err != nil {
		return err
	}

	elements := make([]*element.Element, 0, len(args))
	for _, arg := range args {
		e, err := reg.Lookup(arg)
		if err != nil {
			return newCommandError("print", fmt.Sprintf("looking up element %q", arg), err,
				fmt.Sprintf("Use a symbol such as Fe or an atomic number from 1 to %d.", reg.Len()))
		}
		elements = append(elements, e)
	}

	if opts.jsonOutput {
		return renderPrintJSON(cmd, reg, elements, sheet)
	}

	if app.useColor(cmd.OutOrStdout()) {
		styles := entries.DefaultStreamStyles()
		sheet.Styles = &styles
	}
	for _, e := range elements {
		if err := reg.WriteSheet(cmd.OutOrStdout(), e, sheet); err != nil {
			return newCommandError("print", "writing "+e.Name(), err, "Check that standard output is writable.")
		}
	}
	return nil
}

func sheetOptions(cmd *cobra.Command, app *AppContext, operation string, opts *printOptions) (table.SheetOptions, error) {
	sheet := table.SheetOptions{}
	sheet.All = opts.all
	sheet.Temperature = app.Settings.Temperature

	if cmd.Flags().Changed("temperature") {
		if opts.temperature <= 0 {
			return sheet, newCommandError(operation, "reading --temperature",
				fmt.Errorf("temperature %g K is not above absolute zero", opts.temperature),
				"Pass a temperature in Kelvin, such as 1000.")
		}
		sheet.Temperature = opts.temperature
	}

	if opts.category != "" {
		c, ok := element.LookupCategory(opts.category, app.Registry.Localizer())
		if !ok {
			return sheet, newCommandError(operation, fmt.Sprintf("selecting category %q", opts.category),
				errors.New("unknown category"), "Run 'elemental properties' to list the categories.")
		}
		sheet.Category = c
	}

	return sheet, nil
}

type printJSONPayload struct {
	Number   int               `json:"number"`
	Symbol   string            `json:"symbol"`
	Sections []entries.Section `json:"sections"`
}

func renderPrintJSON(cmd *cobra.Command, reg *table.Registry, elements []*element.Element, sheet table.SheetOptions) error {
	payload := make([]printJSONPayload, 0, len(elements))
	for _, e := range elements {
		collector := reg.Collect(e, sheet)
		sections := collector.Sections
		if sections == nil {
			sections = []entries.Section{}
		}
		payload = append(payload, printJSONPayload{Number: e.Number(), Symbol: e.Symbol(), Sections: sections})
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
