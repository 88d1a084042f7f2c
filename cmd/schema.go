package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovetools/hooks/config"
	"github.com/grovetools/hooks/schema"
)

func NewSchemaCmd() *cobra.Command {
	var generated bool

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for the hook configuration",
		Long: `Prints the embedded JSON Schema that configuration files are
validated against. With --generated, prints the schema reflected from
the Go types instead, which is how the embedded copy is produced.

Examples:
  hooks schema
  hooks schema --generated`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if generated {
				data, err := config.GenerateSchema()
				if err != nil {
					return err
				}
				fmt.Println(string(data))
				return nil
			}

			fmt.Print(string(schema.Source()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&generated, "generated", false, "Print the schema reflected from the Go types")
	return cmd
}
