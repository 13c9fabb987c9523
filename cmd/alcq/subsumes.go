package main

import (
	"fmt"

	errors "gopkg.in/src-d/go-errors.v1"

	"github.com/spf13/cobra"

	"github.com/nodeadmin/alcq-tableau/reasoner"
	"github.com/nodeadmin/alcq-tableau/scenario"
)

var errNoPremise = errors.NewKind("scenario %s has no subsumes premise")

func newSubsumesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subsumes <scenario-file>",
		Short: "decide premise_subsumes for a scenario's subsumes premise",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadScenario(args[0])
			if err != nil {
				return err
			}
			if s.Operation.Kind != scenario.OpSubsumes || s.Operation.Premise == nil {
				return errNoPremise.New(args[0])
			}
			ab, _, err := scenario.Build(s)
			if err != nil {
				return err
			}
			premise, err := scenario.BuildPremise(ab.SymbolTable(), s.Operation.Premise)
			if err != nil {
				return err
			}

			opts := workerOptions(cmd, s)
			explored, holds, err := reasoner.PremiseSubsumes(ab, premise, opts...)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "subsumes: %v\n", holds)
			format, _ := cmd.Flags().GetString("format")
			return renderModels(cmd.OutOrStdout(), ab.SymbolTable(), explored, format)
		},
	}
	return cmd
}
