package commands

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/sqlbridge/sqlbridge/pkg/dialects"
)

// NewDialectsCommand creates the dialects command.
func NewDialectsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dialects",
		Short: "List available SQL dialects",
		Run: func(cmd *cobra.Command, _ []string) {
			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"Name", "Extends", "Default Schema", "Quote"})

			for _, name := range dialects.Names() {
				d, _ := dialects.ByName(name)
				extends := ""
				if d.Fallback != nil {
					extends = d.Fallback.Name
				}
				t.AppendRow(table.Row{d.Name, extends, d.DefaultSchema, d.Identifiers.Quote})
			}

			t.SetStyle(table.StyleLight)
			t.Render()
		},
	}
}
