package main

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"archuser.org/idle-ladder/internal/sim"
)

type simulateOptions struct {
	ticks    int
	step     time.Duration
	prestige bool
	buyMax   bool
}

func newSimulateCmd(root *rootOptions) *cobra.Command {
	opts := &simulateOptions{}
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play a session with a greedy buyer and report the outcome",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.loadContent()
			if err != nil {
				return err
			}
			report, err := sim.Run(c, sim.Options{
				Ticks:        opts.ticks,
				Step:         opts.step,
				AutoPrestige: opts.prestige,
				BuyMax:       opts.buyMax,
				Logger:       root.logger(cmd),
			})
			if err != nil {
				return err
			}
			return printReport(cmd.OutOrStdout(), report)
		},
	}

	cmd.Flags().IntVarP(&opts.ticks, "ticks", "t", 600, "Number of simulation steps")
	cmd.Flags().DurationVarP(&opts.step, "step", "s", time.Second, "Game time per step")
	cmd.Flags().BoolVarP(&opts.prestige, "prestige", "p", false, "Prestige whenever a tier is available")
	cmd.Flags().BoolVarP(&opts.buyMax, "max", "m", false, "Buy as many copies as affordable at once")
	return cmd
}

func printReport(w io.Writer, report sim.Report) error {
	successColor := color.New(color.FgGreen, color.Bold)
	infoColor := color.New(color.FgYellow)

	successColor.Fprintf(w, "Simulated %s in %d steps\n", report.Elapsed, report.Ticks)
	infoColor.Fprintf(w, "Prestiges: %d, production multiplier x%s\n\n",
		report.Prestiges, report.State.PrestigeBonuses.ProductionMultiplier.StringFixed(2))

	ids := make([]string, 0, len(report.Purchases))
	for id := range report.Purchases {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		fmt.Fprintf(w, "  bought %-16s %d\n", id, report.Purchases[id])
	}
	if len(ids) > 0 {
		fmt.Fprintln(w)
	}

	return printResources(w, report.State.Resources, report.Rates)
}
