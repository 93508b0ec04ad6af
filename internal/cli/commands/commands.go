// Package commands implements the sqlbridge subcommands.
package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sqlbridge/sqlbridge/pkg/dialect"
	"github.com/sqlbridge/sqlbridge/pkg/dialects"
)

// pick returns the flag value when set, else the config value.
func pick(flagVal, cfgVal string) string {
	if flagVal != "" {
		return flagVal
	}
	return cfgVal
}

// resolveDialect resolves a dialect name or fails with the list of known
// names.
func resolveDialect(name string) (*dialect.Dialect, error) {
	d, ok := dialects.ByName(name)
	if !ok {
		return nil, fmt.Errorf("unknown dialect %q (known: %s)", name, strings.Join(dialects.Names(), ", "))
	}
	return d, nil
}

// readInput returns SQL text from the given file arguments, or from stdin
// when no files are given.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	var sb strings.Builder
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", path, err)
		}
		sb.Write(data)
		if !strings.HasSuffix(string(data), "\n") {
			sb.WriteByte('\n')
		}
	}
	return sb.String(), nil
}
