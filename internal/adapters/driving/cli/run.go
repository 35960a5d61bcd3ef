package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/deglyph/deglyph/internal/logger"
)

var (
	runConfig string
	runInput  string
	runOutput string
	runPreset string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Normalize text from input to output",
	Long: `Reads text, passes every codepoint through the translator chain, and
writes the result. Input and output default to stdin and stdout, so the
command works as a pipe filter:

  cat suspicious.txt | deglyph run -c rules.toml`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVarP(&runConfig, "config", "c", "", "TOML rule file")
	runCmd.Flags().StringVarP(&runInput, "input", "i", "-", "input file, - for stdin")
	runCmd.Flags().StringVarP(&runOutput, "output", "o", "-", "output file, - for stdout")
	runCmd.Flags().StringVar(&runPreset, "preset", "", "built-in rule set when no rule file is given")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	svc, err := buildService(ctx, runConfig, runPreset)
	if err != nil {
		return err
	}

	in, closeIn, err := openInput(cmd, runInput)
	if err != nil {
		return err
	}
	defer closeIn()

	out, closeOut, err := openOutput(cmd, runOutput)
	if err != nil {
		return err
	}

	if err := svc.Normalize(ctx, in, out); err != nil {
		closeOut()
		return err
	}
	return closeOut()
}

// openInput resolves an input flag value to a reader. "-" means stdin;
// reading rules from an interactive terminal is usually a mistake, so it
// draws a warning.
func openInput(cmd *cobra.Command, path string) (io.Reader, func(), error) {
	if path == "-" {
		in := cmd.InOrStdin()
		if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			logger.Warn("reading from a terminal; pipe input or pass --input (ctrl-d to end)")
		}
		return in, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

// openOutput resolves an output flag value to a writer. "-" means stdout.
// The returned close function reports flush/close errors for real files.
func openOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "-" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}
	return f, f.Close, nil
}
