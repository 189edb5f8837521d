package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func impurityCmd(rootConfig *rootCmdConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "impurity INPUT...",
		Short: "Compute the Gini impurity of sets",
		Long:  `Compute the Gini impurity of the labels of each input set, writing a row per input`,
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			rows, err := rootConfig.impurities(args)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			if err = rootConfig.writeResults(rows); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
		},
	}
}

func (rcc *rootCmdConfig) impurities(inputs []string) ([][]interface{}, error) {
	var rows [][]interface{}
	for _, input := range inputs {
		s, err := rcc.readSet(input)
		if err != nil {
			return nil, err
		}
		ps, err := s.PointSet()
		if err != nil {
			return nil, fmt.Errorf("%s: %v", input, err)
		}
		rows = append(rows, []interface{}{ps.Impurity()})
	}
	return rows, nil
}
