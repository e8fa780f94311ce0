package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newProbeCmd(st *state) *cobra.Command {
	var (
		attractors []string
		cells      []string
	)
	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Print the force at grid cells after adding attractors.",
		Example: "  fieldprobe probe --attractor 5,5,1000 --cell 0,5\n" +
			"  fieldprobe probe -a 100,40,30 -a 180,60,30 --cell 140,50 --cell 10,10",
		RunE: func(cmd *cobra.Command, args []string) error {
			as, err := parseAttractors(attractors)
			if err != nil {
				return err
			}
			f := st.buildField(as)
			out := cmd.OutOrStdout()
			for _, arg := range cells {
				gx, gy, err := parseCell(arg, f.Layout())
				if err != nil {
					return err
				}
				fx, fy := f.At(gx, gy)
				fmt.Fprintf(out, "cell (%d,%d): fx=%d fy=%d\n", gx, gy, fx, fy)
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&attractors, "attractor", "a", nil, "attractor as x,y,mass in world units (repeatable)")
	cmd.Flags().StringArrayVar(&cells, "cell", nil, "grid cell as gx,gy (repeatable)")
	_ = cmd.MarkFlagRequired("cell")
	return cmd
}

func newRowCmd(st *state) *cobra.Command {
	var (
		attractors []string
		gy         int
		axis       string
	)
	cmd := &cobra.Command{
		Use:   "row",
		Short: "Print one grid row of a force layer.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if axis != "x" && axis != "y" {
				return fmt.Errorf("%w: axis must be x or y, got %q", ErrBadArg, axis)
			}
			as, err := parseAttractors(attractors)
			if err != nil {
				return err
			}
			f := st.buildField(as)
			l := f.Layout()
			if gy < 0 || gy >= l.Rows() {
				return fmt.Errorf("%w: row %d outside 0..%d", ErrBadArg, gy, l.Rows()-1)
			}
			vals := make([]string, l.Cols())
			for gx := range vals {
				fx, fy := f.At(gx, gy)
				v := fx
				if axis == "y" {
					v = fy
				}
				vals[gx] = fmt.Sprint(v)
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(vals, " "))
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&attractors, "attractor", "a", nil, "attractor as x,y,mass in world units (repeatable)")
	cmd.Flags().IntVar(&gy, "gy", 0, "grid row to print")
	cmd.Flags().StringVar(&axis, "axis", "x", "force layer to print: x or y")
	return cmd
}
