package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/elemental/internal/element"
	"github.com/alexisbeaulieu97/elemental/internal/tui/browser"
)

type browseOptions struct {
	selectElement string
	colorBy       string
}

func newBrowseCmd(app *AppContext) *cobra.Command {
	opts := &browseOptions{}

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Launch the interactive periodic table",
		Long:  `Launch the interactive periodic table, colored by a property, with a property sheet for each element.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, app, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.selectElement, "select", "s", "", "Element selected on start, by symbol or number")
	cmd.Flags().StringVar(&opts.colorBy, "color-by", "", "Property the elements are colored by (default from settings)")

	return cmd
}

func runBrowse(cmd *cobra.Command, app *AppContext, opts *browseOptions) error {
	modelOpts, err := browserOptions(cmd, app, opts)
	if err != nil {
		return err
	}

	app.Log.WithFields(map[string]any{
		"select":   modelOpts.Select,
		"color_by": modelOpts.ColorBy.String(),
	}).Info("launching browser")

	m := browser.NewModel(app.Registry, modelOpts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(cmd.OutOrStdout()))
	if _, err := p.Run(); err != nil {
		return newCommandError("browse", "running the periodic table", err, "Run elemental from an interactive terminal.")
	}
	return nil
}

func browserOptions(cmd *cobra.Command, app *AppContext, opts *browseOptions) (browser.Options, error) {
	reg := app.Registry
	settings := app.Settings

	modelOpts := browser.Options{
		Logarithmic: settings.IsLogarithmic,
		Temperature: settings.Temperature,
		Select:      1,
		Color:       app.useColor(cmd.OutOrStdout()),
	}

	if opts.selectElement != "" {
		e, err := reg.Lookup(opts.selectElement)
		if err != nil {
			return modelOpts, newCommandError("browse", fmt.Sprintf("selecting element %q", opts.selectElement), err,
				fmt.Sprintf("Use a symbol such as Fe or an atomic number from 1 to %d.", reg.Len()))
		}
		modelOpts.Select = e.Number()
	}

	colorBy := settings.Browse.ColorBy
	if opts.colorBy != "" {
		colorBy = opts.colorBy
	}
	p, err := element.LookupProperty(colorBy)
	if err == nil && !p.Colorable(reg) {
		err = fmt.Errorf("%s has no colors or numeric scale", p.Key)
	}
	if err != nil {
		return modelOpts, newCommandError("browse", fmt.Sprintf("coloring by %q", colorBy), err,
			"Choose a property such as series, block or melting_point.")
	}
	modelOpts.ColorBy = p.ID

	return modelOpts, nil
}
