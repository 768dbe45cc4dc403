package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/remogolf/wallace/pkg/schema"
)

// schemaCmd represents the schema command
var schemaCmd = &cobra.Command{
	Use:   "schema <registry.json>",
	Short: "Validate a message registry and list its types",
	Long: `Validate a message registry file and list the message types it defines.

Validation fails on non-numeric type IDs and on tail fields that are not the
last field of their schema. Fields with unresolvable type codes are reported
but do not fail validation; they surface as warnings at extract time.

Example:
  wallace schema messages.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := schema.Load(args[0])
		if err != nil {
			return err
		}

		unresolvable := 0
		for _, id := range reg.Types() {
			def, _ := reg.Lookup(id)
			bad := 0
			for _, f := range def.Fields {
				if _, ok := f.Rule(); !ok && !f.Tail() {
					bad++
				}
			}
			unresolvable += bad
			line := fmt.Sprintf("%5d  %-24s %d fields", id, def.Name, len(def.Fields))
			if bad > 0 {
				line += fmt.Sprintf("  (%d unresolvable type codes)", bad)
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d message types\n", reg.Len())
		if unresolvable > 0 {
			logger.Warn().Int("count", unresolvable).
				Msg("registry contains unresolvable type codes")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
