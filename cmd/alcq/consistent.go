package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/nodeadmin/alcq-tableau/reasoner"
	"github.com/nodeadmin/alcq-tableau/scenario"
)

func newConsistentCmd() *cobra.Command {
	var withT, withObjAndT bool

	cmd := &cobra.Command{
		Use:   "consistent <scenario-file>",
		Short: "decide abox_consistent (optionally --with-t or --with-obj-and-t)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadScenario(args[0])
			if err != nil {
				return err
			}
			ab, _, err := scenario.Build(s)
			if err != nil {
				return err
			}
			opts := workerOptions(cmd, s)

			var ok bool
			var models []*reasoner.ABox
			switch {
			case withObjAndT:
				ok, models, err = reasoner.AboxConsistentWithObjAndT(ab, opts...)
			case withT:
				ok, models, err = reasoner.AboxConsistentWithT(ab, opts...)
			default:
				var model *reasoner.ABox
				ok, model, err = reasoner.AboxConsistent(ab, opts...)
				if model != nil {
					models = []*reasoner.ABox{model}
				}
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "consistent: %v\n", ok)
			if !ok {
				return nil
			}
			format, _ := cmd.Flags().GetString("format")
			return renderModels(cmd.OutOrStdout(), ab.SymbolTable(), models, format)
		},
	}

	cmd.Flags().BoolVar(&withT, "with-t", false, "force a decision on every atomic concept per individual")
	cmd.Flags().BoolVar(&withObjAndT, "with-obj-and-t", false, "as --with-t, plus pairwise inequality on all named individuals")
	return cmd
}

func loadScenario(path string) (*scenario.Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return scenario.Decode(f)
}

func workerOptions(cmd *cobra.Command, s *scenario.Scenario) []reasoner.Option {
	workers, _ := cmd.Flags().GetInt("workers")
	if workers == 0 {
		workers = s.Workers
	}
	if workers == 0 {
		return nil
	}
	return []reasoner.Option{reasoner.WithWorkers(workers)}
}

func renderModels(out io.Writer, st *reasoner.SymbolTable, models []*reasoner.ABox, format string) error {
	for i, m := range models {
		if len(models) > 1 {
			fmt.Fprintf(out, "--- model %d ---\n", i)
		}
		w := scenario.RenderWitness(m, st)
		var err error
		switch format {
		case "json":
			err = scenario.WriteJSONPretty(w, out)
		default:
			err = scenario.WriteText(w, out)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
