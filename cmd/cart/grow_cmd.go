package main

import (
	"fmt"
	"os"

	"github.com/pbanos/cart"
	"github.com/pbanos/cart/evaluation"
	"github.com/pbanos/cart/tree"
	"github.com/pbanos/cart/tree/graphviz"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type growCmdConfig struct {
	*rootCmdConfig
	maxHeight          int
	minPoints          int
	trainingProportion float64
	graphOutput        string
	print              bool
}

func growCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &growCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "grow INPUT...",
		Short: "Grow trees and evaluate them",
		Long:  `Grow a tree on the leading points of each input set and write a row per input with the F1 score of its decisions on the remaining points. An undefined F1 score is left empty.`,
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate(args)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			rows, err := config.grow(args)
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
	ss := cart.DefaultStoppingStrategy()
	cmd.Flags().IntVarP(&(config.maxHeight), "max-height", "H", ss.MaxHeight, "maximum height of the grown trees")
	cmd.Flags().IntVarP(&(config.minPoints), "min-points", "n", ss.MinPoints, "minimum number of points on each side of a split")
	cmd.Flags().Float64VarP(&(config.trainingProportion), "training-proportion", "p", 0.8, "proportion of leading points of each input used to grow the tree, the rest are used to evaluate it")
	cmd.Flags().StringVarP(&(config.graphOutput), "graph", "g", "", "path to a file to which the grown tree will be drawn, in the format given by its extension: dot, gv, svg, png or jpg (only with a single input)")
	cmd.Flags().BoolVar(&(config.print), "print", false, "print the grown trees to STDERR")
	return cmd
}

func (gcc *growCmdConfig) Validate(inputs []string) error {
	if err := gcc.stoppingStrategy().Validate(); err != nil {
		return err
	}
	if gcc.trainingProportion <= 0 || gcc.trainingProportion > 1 {
		return fmt.Errorf("training-proportion must be in (0, 1], got %v", gcc.trainingProportion)
	}
	if gcc.graphOutput != "" {
		if len(inputs) > 1 {
			return fmt.Errorf("cannot set the graph flag with %d inputs", len(inputs))
		}
		if _, err := graphviz.ParseFormat(gcc.graphOutput); err != nil {
			return err
		}
	}
	return nil
}

func (gcc *growCmdConfig) stoppingStrategy() cart.StoppingStrategy {
	ss := cart.DefaultStoppingStrategy()
	for _, opt := range []cart.Option{cart.MaxHeight(gcc.maxHeight), cart.MinPoints(gcc.minPoints)} {
		opt(&ss)
	}
	return ss
}

func (gcc *growCmdConfig) grow(inputs []string) ([][]interface{}, error) {
	var rows [][]interface{}
	for _, input := range inputs {
		s, err := gcc.readSet(input)
		if err != nil {
			return nil, err
		}
		training, testing, err := s.TrainTestSplit(gcc.trainingProportion)
		if err != nil {
			return nil, err
		}
		ps, err := training.PointSet()
		if err != nil {
			return nil, fmt.Errorf("%s: training set: %v", input, err)
		}
		log.Info().Str("input", input).Int("training", training.Len()).Int("testing", testing.Len()).Msg("Growing tree")
		t, err := cart.Grow(gcc.Context(), ps, gcc.stoppingStrategy())
		if err != nil {
			return nil, fmt.Errorf("%s: growing the tree: %v", input, err)
		}
		if gcc.print {
			fmt.Fprintf(os.Stderr, "%s:\n%v\n", input, t)
		}
		if gcc.graphOutput != "" {
			if err = drawTree(t, gcc.graphOutput); err != nil {
				return nil, err
			}
		}
		rows = append(rows, []interface{}{f1(input, t, testing.Features, testing.Labels)})
	}
	return rows, nil
}

// f1 returns the F1 score of the tree decisions on the points, or nil
// if it is undefined
func f1(input string, t *tree.Tree, points [][]float64, labels []bool) interface{} {
	decisions, err := t.DecideAll(points)
	if err != nil {
		log.Warn().Str("input", input).Err(err).Msg("Cannot decide testing points")
		return nil
	}
	score, err := evaluation.F1Score(labels, decisions)
	if err != nil {
		log.Warn().Str("input", input).Err(err).Msg("Cannot score tree")
		return nil
	}
	log.Info().Str("input", input).Float64("f1", score).Msg("Tree scored")
	return score
}

func drawTree(t *tree.Tree, path string) error {
	format, err := graphviz.ParseFormat(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %v", path, err)
	}
	if err = graphviz.Render(t, format, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
