package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"detektw/internal/detekt"
)

// argsOutput is the --json form of the args command.
type argsOutput struct {
	Command    []string          `json:"command"`
	Args       []string          `json:"args"`
	Export     bool              `json:"export"`
	Skip       bool              `json:"skip"`
	ConfigFile string            `json:"configFile,omitempty"`
	Sources    map[string]string `json:"sources"`
}

func newArgsCommand(opts *Options, env Env) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "args",
		Short: "Print the detekt command line without running it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := prepare(opts, env)
			if err != nil {
				return err
			}

			detektArgs := detekt.BuildArgs(inv.Detekt)
			if inv.Detekt.GenerateConfig {
				detektArgs = detekt.ExportArgs(inv.Detekt)
			}

			out := cmd.OutOrStdout()
			if jsonOutput {
				data, err := json.MarshalIndent(argsOutput{
					Command:    inv.Command,
					Args:       detektArgs,
					Export:     inv.Detekt.GenerateConfig,
					Skip:       inv.Detekt.Skip,
					ConfigFile: inv.ConfigPath,
					Sources:    inv.Sources,
				}, "", "  ")
				if err != nil {
					return fmt.Errorf("cannot serialize arguments: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			for _, a := range detektArgs {
				fmt.Fprintln(out, a)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print command and arguments as JSON")
	return cmd
}
