package main

import (
	"fmt"
	"os"

	"github.com/pbanos/cart/evaluation"
	"github.com/pbanos/cart/set/csv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func scoreCmd(rootConfig *rootCmdConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "score INPUT...",
		Short: "Score predictions",
		Long:  `Score the predictions of CSV files with an expected and an actual label per row, writing a row per input with the precision, recall and F1 score. Undefined scores are left empty.`,
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			rows, err := scores(args)
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

func scores(inputs []string) ([][]interface{}, error) {
	var rows [][]interface{}
	for _, input := range inputs {
		f, err := os.Open(input)
		if err != nil {
			return nil, fmt.Errorf("reading predictions: %v", err)
		}
		expected, actual, err := csv.ReadPredictions(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("parsing predictions from %s: %v", input, err)
		}
		p, r, err := evaluation.PrecisionRecall(expected, actual)
		if err != nil {
			log.Warn().Str("input", input).Err(err).Msg("Cannot score predictions")
			rows = append(rows, []interface{}{nil, nil, nil})
			continue
		}
		var f1 interface{}
		if score, err := evaluation.F1(p, r); err != nil {
			log.Warn().Str("input", input).Err(err).Msg("Cannot score predictions")
		} else {
			f1 = score
		}
		rows = append(rows, []interface{}{p, r, f1})
	}
	return rows, nil
}
