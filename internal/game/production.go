package game

import "github.com/shopspring/decimal"

// Production returns the per-second output of gen. Upgrades targeting gen
// are applied first and the prestige multiplier last.
//
// Multiplicative effects compound per owned copy (value^owned). Additive
// effects contribute (value-1)*owned each and are applied together as a
// single 1+sum factor, which never drops below zero.
func Production(gen GeneratorDefinition, s *PlayerState, upgrades []UpgradeDefinition) decimal.Decimal {
	production := gen.BaseProduction.Mul(OwnedGenerators(s, gen.ID))

	additive := decimal.Zero
	for _, upgrade := range upgrades {
		if upgrade.GeneratorID != gen.ID {
			continue
		}
		owned := OwnedUpgrades(s, upgrade.ID)
		if !owned.IsPositive() {
			continue
		}
		for _, effect := range upgrade.Effects {
			if effect.Type != EffectMultiply {
				continue
			}
			switch effect.Stacking {
			case StackingMultiplicative:
				production = production.Mul(effect.Value.Pow(owned))
			case StackingAdditive:
				additive = additive.Add(effect.Value.Sub(One).Mul(owned))
			}
		}
	}
	if !additive.IsZero() {
		production = production.Mul(decimal.Max(decimal.Zero, One.Add(additive)))
	}

	return production.Mul(s.PrestigeBonuses.ProductionMultiplier)
}

// ProductionByResource sums the per-second output of every generator into
// the resource it produces.
func ProductionByResource(gens []GeneratorDefinition, s *PlayerState, upgrades []UpgradeDefinition) map[string]decimal.Decimal {
	rates := make(map[string]decimal.Decimal, len(gens))
	for _, gen := range gens {
		rate := Production(gen, s, upgrades)
		if rate.IsZero() {
			continue
		}
		rates[gen.Resource] = rates[gen.Resource].Add(rate)
	}
	return rates
}
