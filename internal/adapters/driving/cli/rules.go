package cli

import (
	"github.com/spf13/cobra"
)

var (
	rulesConfig string
	rulesPreset string
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Validate a rule source and print the resulting chain",
	Long: `Parses a rule file (or preset), constructs every translator, and prints
the chain in evaluation order. Construction errors are reported with the
offending rule, field and value, so a broken rule file can be fixed
without normalizing anything.`,
	Args: cobra.NoArgs,
	RunE: runRules,
}

func init() {
	rulesCmd.Flags().StringVarP(&rulesConfig, "config", "c", "", "TOML rule file")
	rulesCmd.Flags().StringVar(&rulesPreset, "preset", "", "built-in rule set when no rule file is given")
	rootCmd.AddCommand(rulesCmd)
}

func runRules(cmd *cobra.Command, _ []string) error {
	set, err := buildRuleSet(cmd.Context(), rulesConfig, rulesPreset)
	if err != nil {
		return err
	}

	chain, err := set.Chain()
	if err != nil {
		return err
	}

	cmd.Printf("Chain with %d translators (first match wins):\n", len(chain))
	for i, t := range chain {
		cmd.Printf("  [%d] %v\n", i+1, t)
	}
	return nil
}
