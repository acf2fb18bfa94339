package cli

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/roster/pkg/geometry"
	"github.com/mesh-intelligence/roster/pkg/numeric"
	"github.com/mesh-intelligence/roster/pkg/textutil"
	"github.com/mesh-intelligence/roster/pkg/types"
)

// emit prints human text or, in JSON mode, the given value.
func (a *app) emit(cmd *cobra.Command, human string, v any) error {
	if a.flags.jsonMode {
		return printJSON(cmd, v)
	}
	fmt.Fprintln(cmd.OutOrStdout(), human)
	return nil
}

func newReverseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reverse <text>...",
		Short: "Reverse text by user-perceived characters",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := textutil.Reverse(strings.Join(args, " "))
			return a.emit(cmd, out, map[string]string{"result": out})
		},
	}
}

func newWordsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "words <text>...",
		Short: "Count whitespace-separated words",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n := textutil.CountWords(strings.Join(args, " "))
			human := humanize.Comma(int64(n)) + " words"
			if n == 1 {
				human = "1 word"
			}
			return a.emit(cmd, human, map[string]int{"words": n})
		},
	}
}

func newDivideCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "divide <a> <b>",
		Short: "Divide a by b, rejecting a zero divisor",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseFloat("dividend", args[0])
			if err != nil {
				return err
			}
			y, err := parseFloat("divisor", args[1])
			if err != nil {
				return err
			}
			q, err := numeric.SafeDivide(x, y)
			if err != nil {
				return err
			}
			return a.emit(cmd, fmt.Sprintf("%g", q), map[string]float64{"result": q})
		},
	}
}

func newDistanceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "distance <x1> <y1> [<x2> <y2>]",
		Short: "Euclidean distance between two points, or from the origin",
		Args:  cobra.RangeArgs(2, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 3 {
				return fmt.Errorf("distance takes 2 or 4 coordinates, got 3: %w", types.ErrInvalidInput)
			}
			coords := make([]float64, len(args))
			for i, s := range args {
				f, err := parseFloat("coordinate", s)
				if err != nil {
					return err
				}
				coords[i] = f
			}

			p := geometry.NewPoint(coords[0], coords[1])
			var d float64
			if len(coords) == 4 {
				d = geometry.Distance(p, geometry.NewPoint(coords[2], coords[3]))
			} else {
				d = p.DistanceFromOrigin()
			}
			return a.emit(cmd, fmt.Sprintf("%g", d), map[string]float64{"distance": d})
		},
	}
}

func newClassifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "classify <n>",
		Short: "Classify an integer by range",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInt("number", args[0])
			if err != nil {
				return err
			}
			class := numeric.Classify(n)
			return a.emit(cmd, class, map[string]any{"n": n, "class": class})
		},
	}
}

func newCheckAddressCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check-address <text>",
		Short: "Report whether text looks like a contact address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok := textutil.IsPlausibleAddress(args[0])
			return a.emit(cmd, fmt.Sprintf("%t", ok), map[string]bool{"plausible": ok})
		},
	}
}
