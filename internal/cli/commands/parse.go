package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sqlbridge/sqlbridge/internal/cli/config"
	"github.com/sqlbridge/sqlbridge/pkg/core"
	"github.com/sqlbridge/sqlbridge/pkg/parser"
	"github.com/sqlbridge/sqlbridge/pkg/transpile"
)

// stmtSummary is the serializable view of a parsed statement.
type stmtSummary struct {
	Kind        string            `json:"kind" yaml:"kind"`
	Table       string            `json:"table" yaml:"table"`
	External    bool              `json:"external" yaml:"external"`
	Temporary   bool              `json:"temporary,omitempty" yaml:"temporary,omitempty"`
	IfNotExists bool              `json:"if_not_exists,omitempty" yaml:"if_not_exists,omitempty"`
	Columns     []columnSummary   `json:"columns,omitempty" yaml:"columns,omitempty"`
	Properties  []propertySummary `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type columnSummary struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
}

type propertySummary struct {
	Kind  string `json:"kind" yaml:"kind"`
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
}

// NewParseCommand creates the parse command.
func NewParseCommand() *cobra.Command {
	var (
		dialectName string
		output      string
	)

	cmd := &cobra.Command{
		Use:   "parse [file...]",
		Short: "Parse SQL and show its structure",
		Long: `Parse reads SQL from files or stdin, parses each statement in the
chosen dialect, and prints a structural summary.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromContext(cmd.Context())
			d, err := resolveDialect(pick(dialectName, cfg.From))
			if err != nil {
				return err
			}

			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			var summaries []stmtSummary
			for _, sql := range transpile.SplitStatements(input) {
				stmt, err := parser.ParseStatement(sql, d)
				if err != nil {
					return err
				}
				create, ok := stmt.(*core.CreateStmt)
				if !ok {
					return fmt.Errorf("unsupported statement type %T", stmt)
				}
				summaries = append(summaries, summarize(create))
			}

			switch output {
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(summaries)
			case "yaml":
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				defer func() { _ = enc.Close() }()
				return enc.Encode(summaries)
			case "table":
				renderSummaryTables(cmd, summaries)
				return nil
			default:
				return fmt.Errorf("unknown output format %q (table, json, yaml)", output)
			}
		},
	}

	cmd.Flags().StringVarP(&dialectName, "dialect", "d", "", "Dialect to parse with (default from config)")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format (table|json|yaml)")
	return cmd
}

func summarize(stmt *core.CreateStmt) stmtSummary {
	s := stmtSummary{
		Kind:        stmt.Kind,
		Table:       stmt.Table.String(),
		External:    stmt.IsExternal(),
		Temporary:   stmt.Temporary,
		IfNotExists: stmt.IfNotExists,
	}

	for _, col := range stmt.Columns {
		typ := col.Type
		if len(col.TypeArgs) > 0 {
			typ += "(" + strings.Join(col.TypeArgs, ", ") + ")"
		}
		s.Columns = append(s.Columns, columnSummary{Name: col.Name, Type: typ})
	}

	for _, prop := range stmt.Properties {
		switch p := prop.(type) {
		case *core.LocationProperty:
			s.Properties = append(s.Properties, propertySummary{Kind: "location", Value: p.URI})
		case *core.FileFormatProperty:
			s.Properties = append(s.Properties, propertySummary{Kind: "format", Name: p.Name, Value: formatOptions(p.Options)})
		case *core.GenericProperty:
			s.Properties = append(s.Properties, propertySummary{Kind: "generic", Name: p.Name, Value: p.Value})
		case *core.ExternalProperty:
			// Surfaced via the External field instead.
		}
	}
	return s
}

func formatOptions(opts []core.GenericProperty) string {
	parts := make([]string, 0, len(opts))
	for _, o := range opts {
		parts = append(parts, o.Name+"="+o.Value)
	}
	return strings.Join(parts, ", ")
}

func renderSummaryTables(cmd *cobra.Command, summaries []stmtSummary) {
	for i, s := range summaries {
		if i > 0 {
			fmt.Fprintln(cmd.OutOrStdout())
		}

		header := s.Kind
		if s.External {
			header = "EXTERNAL " + header
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", header, s.Table)

		if len(s.Columns) > 0 {
			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"Column", "Type"})
			for _, col := range s.Columns {
				t.AppendRow(table.Row{col.Name, col.Type})
			}
			t.SetStyle(table.StyleLight)
			t.Render()
		}

		if len(s.Properties) > 0 {
			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"Property", "Name", "Value"})
			for _, p := range s.Properties {
				t.AppendRow(table.Row{p.Kind, p.Name, p.Value})
			}
			t.SetStyle(table.StyleLight)
			t.Render()
		}
	}
}
