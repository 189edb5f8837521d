package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type gainCmdConfig struct {
	*rootCmdConfig
	minPoints int
	threshold bool
}

func gainCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &gainCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "gain INPUT...",
		Short: "Find the best split of sets",
		Long:  `Find the split with the best Gini gain of each input set, writing a row per input with the feature index and the gain (and the split value if requested). Inputs without an improving split get an empty feature cell and a 0 gain.`,
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			rows, err := config.gains(args)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			if err = config.writeResults(rows); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
		},
	}
	cmd.Flags().IntVarP(&(config.minPoints), "min-points", "n", 1, "minimum number of points on each side of a split")
	cmd.Flags().BoolVar(&(config.threshold), "threshold", false, "add the value of the split as a third column")
	return cmd
}

func (gcc *gainCmdConfig) Validate() error {
	if gcc.minPoints < 1 {
		return fmt.Errorf("min-points must be at least 1, got %d", gcc.minPoints)
	}
	return nil
}

func (gcc *gainCmdConfig) gains(inputs []string) ([][]interface{}, error) {
	var rows [][]interface{}
	for _, input := range inputs {
		s, err := gcc.readSet(input)
		if err != nil {
			return nil, err
		}
		ps, err := s.PointSet()
		if err != nil {
			return nil, fmt.Errorf("%s: %v", input, err)
		}
		split := ps.BestGain(gcc.minPoints)
		log.Debug().Str("input", input).Stringer("split", split).Msg("Best split found")
		row := []interface{}{nil, split.Gain}
		if f, ok := split.Feature(); ok {
			row[0] = f
		}
		if gcc.threshold {
			var value interface{}
			if v, ok := split.Value(); ok {
				value = v
			}
			row = append(row, value)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
