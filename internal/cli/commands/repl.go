package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sqlbridge/sqlbridge/internal/cli/config"
	"github.com/sqlbridge/sqlbridge/pkg/dialects"
	"github.com/sqlbridge/sqlbridge/pkg/transpile"
)

// NewReplCommand creates the repl command.
func NewReplCommand() *cobra.Command {
	var (
		fromName string
		toName   string
	)

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactive transpilation shell",
		Long: `Repl starts an interactive shell. SQL statements are transpiled from
the source dialect to the target dialect as they are entered; statements
may span multiple lines and end with a semicolon.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !term.IsTerminal(int(os.Stdin.Fd())) {
				return fmt.Errorf("repl requires an interactive terminal (pipe input to 'transpile' instead)")
			}
			cfg := config.FromContext(cmd.Context())
			return runRepl(cmd, pick(fromName, cfg.From), pick(toName, cfg.To))
		},
	}

	cmd.Flags().StringVar(&fromName, "from", "", "Source dialect (default from config)")
	cmd.Flags().StringVar(&toName, "to", "", "Target dialect (default from config)")
	return cmd
}

func runRepl(cmd *cobra.Command, fromName, toName string) error {
	if _, err := resolveDialect(fromName); err != nil {
		return err
	}
	if _, err := resolveDialect(toName); err != nil {
		return err
	}

	historyFile := filepath.Join(os.TempDir(), "sqlbridge_history")
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "sqlbridge> ",
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize repl: %w", err)
	}
	defer func() { _ = rl.Close() }()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "sqlbridge repl (%s -> %s)\n", fromName, toName)
	fmt.Fprintln(out, "Type .help for commands, .quit to exit")
	fmt.Fprintln(out)

	var buf strings.Builder
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			buf.Reset()
			rl.SetPrompt("sqlbridge> ")
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") && buf.Len() == 0 {
			quit := handleDotCommand(out, line, &fromName, &toName)
			if quit {
				break
			}
			continue
		}

		buf.WriteString(line)
		if !strings.HasSuffix(line, ";") {
			buf.WriteByte('\n')
			rl.SetPrompt("      ...> ")
			continue
		}
		rl.SetPrompt("sqlbridge> ")

		sql := buf.String()
		buf.Reset()

		from, _ := resolveDialect(fromName)
		to, _ := resolveDialect(toName)
		stmts, err := transpile.TranspileAll(sql, from, to)
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		for _, s := range stmts {
			fmt.Fprintf(out, "%s;\n", s)
		}
	}

	return nil
}

// handleDotCommand processes repl meta-commands. Returns true for quit.
func handleDotCommand(out io.Writer, line string, fromName, toName *string) bool {
	fields := strings.Fields(line)
	switch fields[0] {
	case ".quit", ".exit":
		return true
	case ".help":
		fmt.Fprintln(out, "  .from <dialect>   set the source dialect")
		fmt.Fprintln(out, "  .to <dialect>     set the target dialect")
		fmt.Fprintln(out, "  .dialects         list available dialects")
		fmt.Fprintln(out, "  .quit             exit")
	case ".from", ".to":
		if len(fields) != 2 {
			fmt.Fprintf(out, "usage: %s <dialect>\n", fields[0])
			return false
		}
		if _, err := resolveDialect(fields[1]); err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			return false
		}
		if fields[0] == ".from" {
			*fromName = fields[1]
		} else {
			*toName = fields[1]
		}
		fmt.Fprintf(out, "transpiling %s -> %s\n", *fromName, *toName)
	case ".dialects":
		fmt.Fprintln(out, strings.Join(dialects.Names(), "\n"))
	default:
		fmt.Fprintf(out, "unknown command %s (try .help)\n", fields[0])
	}
	return false
}
