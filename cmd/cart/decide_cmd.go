package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pbanos/cart"
	"github.com/pbanos/cart/set/inputpoint"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type decideCmdConfig struct {
	*rootCmdConfig
	maxHeight int
	minPoints int
}

func decideCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &decideCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "decide INPUT",
		Short: "Grow a tree and decide the label of points",
		Long:  `Grow a tree on every point of the input set and then decide the label of points whose feature values are read from STDIN, one per line, writing a 1 or a 0 per point to STDOUT`,
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			if err = config.decide(args[0], os.Stdin, os.Stderr, os.Stdout); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
		},
	}
	ss := cart.DefaultStoppingStrategy()
	cmd.Flags().IntVarP(&(config.maxHeight), "max-height", "H", ss.MaxHeight, "maximum height of the grown tree")
	cmd.Flags().IntVarP(&(config.minPoints), "min-points", "n", ss.MinPoints, "minimum number of points on each side of a split")
	return cmd
}

func (dcc *decideCmdConfig) Validate() error {
	return cart.StoppingStrategy{MaxHeight: dcc.maxHeight, MinPoints: dcc.minPoints}.Validate()
}

/*
decide grows a tree on the input and writes the decision for each point
read from in to out, prompting for feature values on prompts.
*/
func (dcc *decideCmdConfig) decide(input string, in io.Reader, prompts, out io.Writer) error {
	s, err := dcc.readSet(input)
	if err != nil {
		return err
	}
	t, err := cart.NewTree(s.Features, s.Labels, s.Types, cart.MaxHeight(dcc.maxHeight), cart.MinPoints(dcc.minPoints))
	if err != nil {
		return fmt.Errorf("growing the tree: %v", err)
	}
	log.Debug().Int("height", t.Height()).Int("leaves", t.Leaves()).Msg("Tree ready to decide")
	r := inputpoint.New(in, s.Names, s.Types, inputpoint.Prompter{W: prompts})
	for {
		point, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading point: %v", err)
		}
		d, err := t.Decide(point)
		if err != nil {
			return err
		}
		result := 0
		if d {
			result = 1
		}
		if _, err = fmt.Fprintln(out, result); err != nil {
			return err
		}
	}
}
