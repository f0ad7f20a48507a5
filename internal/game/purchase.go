package game

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrLocked            = errors.New("not unlocked")
	ErrInsufficientFunds = errors.New("cannot afford")
	ErrInvalidQuantity   = errors.New("quantity must be at least 1")
)

// BuyGenerator buys n copies of def, paying the bulk cost from the curve's
// resource.
func BuyGenerator(def GeneratorDefinition, s *PlayerState, n int64) error {
	if !def.Unlocked(s) {
		return fmt.Errorf("generator %s: %w", def.ID, ErrLocked)
	}
	owned := OwnedGenerators(s, def.ID)
	if err := pay(def.Cost, owned, s, n); err != nil {
		return fmt.Errorf("generator %s: %w", def.ID, err)
	}
	s.Generators[def.ID] = Owned{Owned: owned.Add(decimal.NewFromInt(n))}
	return nil
}

func BuyUpgrade(def UpgradeDefinition, s *PlayerState, n int64) error {
	if !def.Unlocked(s) {
		return fmt.Errorf("upgrade %s: %w", def.ID, ErrLocked)
	}
	owned := OwnedUpgrades(s, def.ID)
	if err := pay(def.Cost, owned, s, n); err != nil {
		return fmt.Errorf("upgrade %s: %w", def.ID, err)
	}
	s.Upgrades[def.ID] = Owned{Owned: owned.Add(decimal.NewFromInt(n))}
	return nil
}

func pay(curve CostCurve, owned decimal.Decimal, s *PlayerState, n int64) error {
	if n < 1 {
		return ErrInvalidQuantity
	}
	cost := BulkCost(curve, owned, n)
	funds := s.Resource(curve.Resource)
	if funds.LessThan(cost) {
		return fmt.Errorf("%w: need %s %s, have %s", ErrInsufficientFunds, cost.StringFixed(2), curve.Resource, funds.StringFixed(2))
	}
	s.Resources[curve.Resource] = funds.Sub(cost)
	return nil
}
