// Package sim drives a player state forward in fixed steps with a simple
// greedy buyer, standing in for a real host game loop.
package sim

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"archuser.org/idle-ladder/internal/content"
	"archuser.org/idle-ladder/internal/game"
)

var ErrInvalidOptions = errors.New("invalid options")

type Options struct {
	Ticks        int
	Step         time.Duration
	AutoPrestige bool
	// BuyMax buys as many copies of the chosen item as funds allow instead
	// of one at a time.
	BuyMax bool
	Logger *slog.Logger
}

type Report struct {
	Ticks     int
	Elapsed   time.Duration
	Purchases map[string]int
	Prestiges int
	State     *game.PlayerState
	Rates     map[string]decimal.Decimal
}

type purchase struct {
	id    string
	cost  decimal.Decimal
	curve game.CostCurve
	owned decimal.Decimal
	buy   func(n int64) error
}

// Run plays c from a fresh state. Each tick credits production, buys the
// cheapest affordable visible item until nothing is affordable (at most
// game.MaxBulk purchases per tick), then takes the first available prestige
// tier when AutoPrestige is set.
func Run(c *content.Content, opts Options) (Report, error) {
	if opts.Ticks <= 0 {
		return Report{}, fmt.Errorf("%w: ticks must be positive, got %d", ErrInvalidOptions, opts.Ticks)
	}
	if opts.Step <= 0 {
		return Report{}, fmt.Errorf("%w: step must be positive, got %s", ErrInvalidOptions, opts.Step)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s := c.NewState()
	report := Report{Purchases: make(map[string]int)}

	for tick := 1; tick <= opts.Ticks; tick++ {
		game.Advance(s, c.Generators, c.Upgrades, opts.Step)

		for bought := 0; bought < game.MaxBulk; bought++ {
			next, ok := cheapest(c, s)
			if !ok {
				break
			}
			n := int64(1)
			if opts.BuyMax {
				n = max(1, game.MaxAffordable(next.curve, next.owned, s.Resource(next.curve.Resource)))
			}
			if err := next.buy(n); err != nil {
				return report, fmt.Errorf("tick %d: %w", tick, err)
			}
			report.Purchases[next.id] += int(n)
			logger.Debug("purchased", "tick", tick, "id", next.id, "count", n, "cost", next.cost.StringFixed(2))
		}

		if !opts.AutoPrestige {
			continue
		}
		available := game.AvailablePrestiges(c.Prestige, s)
		if len(available) == 0 {
			continue
		}
		tier := available[0]
		if game.Prestige(tier, s) {
			// Prestige zeroes everything, so restore the opening funds.
			for resource, amount := range c.StartingResources {
				s.Resources[resource] = amount
			}
			report.Prestiges++
			logger.Info("prestiged", "tick", tick, "tier", tier.ID,
				"multiplier", s.PrestigeBonuses.ProductionMultiplier.StringFixed(2))
		}
	}

	report.Ticks = opts.Ticks
	report.Elapsed = time.Duration(opts.Ticks) * opts.Step
	report.State = s.Clone()
	report.Rates = game.ProductionByResource(c.Generators, s, c.Upgrades)
	logger.Info("simulation finished", "ticks", report.Ticks, "elapsed", report.Elapsed, "prestiges", report.Prestiges,
		"resources", strings.Join(report.State.ResourceSummary(), ", "))
	return report, nil
}

// cheapest picks the lowest-priced visible generator or upgrade the player can
// pay for right now. Ties go to the earlier definition, generators first.
func cheapest(c *content.Content, s *game.PlayerState) (purchase, bool) {
	var (
		best  purchase
		found bool
	)
	consider := func(p purchase, resource string) {
		if p.cost.GreaterThan(s.Resource(resource)) {
			return
		}
		if !found || p.cost.LessThan(best.cost) {
			best, found = p, true
		}
	}

	for _, gen := range game.FindVisibleGenerators(c.Generators, s) {
		consider(purchase{
			id:    gen.ID,
			cost:  game.GeneratorCost(gen, s),
			curve: gen.Cost,
			owned: game.OwnedGenerators(s, gen.ID),
			buy:   func(n int64) error { return game.BuyGenerator(gen, s, n) },
		}, gen.Cost.Resource)
	}
	for _, upgrade := range game.FindVisibleUpgrades(c.Upgrades, s) {
		consider(purchase{
			id:    upgrade.ID,
			cost:  game.UpgradeCost(upgrade, s),
			curve: upgrade.Cost,
			owned: game.OwnedUpgrades(s, upgrade.ID),
			buy:   func(n int64) error { return game.BuyUpgrade(upgrade, s, n) },
		}, upgrade.Cost.Resource)
	}
	return best, found
}
