package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"archuser.org/idle-ladder/internal/content"
	"archuser.org/idle-ladder/internal/game"
)

func newInspectCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "List generators, upgrades and prestige tiers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.loadContent()
			if err != nil {
				return err
			}
			return printContent(cmd.OutOrStdout(), c)
		},
	}
}

func printContent(w io.Writer, c *content.Content) error {
	titleColor := color.New(color.FgCyan, color.Bold)
	s := c.NewState()

	titleColor.Fprintln(w, "Generators")
	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"ID", "Name", "Produces", "Rate", "Cost", "Scaling", "Visible"}),
	)
	for _, gen := range c.Generators {
		_ = table.Append([]string{
			gen.ID,
			gen.Name,
			gen.Resource,
			gen.BaseProduction.String(),
			formatCost(game.GeneratorCost(gen, s), gen.Cost.Resource),
			gen.Cost.Scaling.String(),
			yesNo(gen.Unlocked(s)),
		})
	}
	if err := table.Render(); err != nil {
		return err
	}

	if len(c.Upgrades) > 0 {
		fmt.Fprintln(w)
		titleColor.Fprintln(w, "Upgrades")
		table = tablewriter.NewTable(w,
			tablewriter.WithHeader([]string{"ID", "Name", "Target", "Effects", "Cost", "Scaling", "Visible"}),
		)
		for _, upgrade := range c.Upgrades {
			_ = table.Append([]string{
				upgrade.ID,
				upgrade.Name,
				upgrade.GeneratorID,
				formatEffects(upgrade.Effects),
				formatCost(game.UpgradeCost(upgrade, s), upgrade.Cost.Resource),
				upgrade.Cost.Scaling.String(),
				yesNo(upgrade.Unlocked(s)),
			})
		}
		if err := table.Render(); err != nil {
			return err
		}
	}

	if len(c.Prestige) > 0 {
		fmt.Fprintln(w)
		titleColor.Fprintln(w, "Prestige")
		table = tablewriter.NewTable(w, tablewriter.WithHeader([]string{"ID", "Name", "Available"}))
		for _, tier := range c.Prestige {
			_ = table.Append([]string{tier.ID, tier.Name, yesNo(game.CanPrestige(tier, s))})
		}
		if err := table.Render(); err != nil {
			return err
		}
	}
	return nil
}

func printResources(w io.Writer, resources, rates map[string]decimal.Decimal) error {
	keys := make([]string, 0, len(resources))
	for key := range resources {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	table := tablewriter.NewTable(w, tablewriter.WithHeader([]string{"Resource", "Amount", "Per second"}))
	for _, key := range keys {
		_ = table.Append([]string{key, resources[key].StringFixed(2), rates[key].StringFixed(2)})
	}
	return table.Render()
}

func formatCost(cost decimal.Decimal, resource string) string {
	return fmt.Sprintf("%s %s", cost.StringFixed(2), resource)
}

func formatEffects(effects []game.UpgradeEffect) string {
	parts := make([]string, 0, len(effects))
	for _, e := range effects {
		parts = append(parts, fmt.Sprintf("%s x%s (%s)", e.Resource, e.Value, e.Stacking))
	}
	return strings.Join(parts, ", ")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
