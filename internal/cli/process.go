package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/roster/pkg/process"
)

func newProcessCmd(a *app) *cobra.Command {
	var strategyName string
	var batch bool
	cmd := &cobra.Command{
		Use:   "process <text>...",
		Short: "Transform text with a processing strategy",
		Long: "Process applies the named strategy to the arguments joined by spaces.\n" +
			"With --batch each argument is processed separately, one per line.\n\n" +
			"Strategies: " + strings.Join(process.Names(), ", "),
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := process.Lookup(strategyName)
			if err != nil {
				return err
			}

			if batch {
				out, err := process.ProcessBatch(s, args)
				if err != nil {
					return err
				}
				if a.flags.jsonMode {
					return printJSON(cmd, out)
				}
				for _, line := range out {
					fmt.Fprintln(cmd.OutOrStdout(), line)
				}
				return nil
			}

			result := process.ProcessWith(s, strings.Join(args, " "))
			if a.flags.jsonMode {
				return printJSON(cmd, map[string]string{"strategy": strategyName, "result": result})
			}
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}
	cmd.Flags().StringVarP(&strategyName, "strategy", "s", process.NameUpper, "strategy name")
	cmd.Flags().BoolVar(&batch, "batch", false, "process each argument separately")
	return cmd
}
