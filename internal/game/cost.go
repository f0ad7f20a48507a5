package game

import "github.com/shopspring/decimal"

// MaxBulk caps how many copies MaxAffordable will consider at once.
const MaxBulk = 1000

// Cost prices the next copy given how many are already owned.
func Cost(curve CostCurve, owned decimal.Decimal) decimal.Decimal {
	return curve.Base.Mul(curve.Scaling.Pow(owned))
}

func GeneratorCost(def GeneratorDefinition, s *PlayerState) decimal.Decimal {
	return Cost(def.Cost, OwnedGenerators(s, def.ID))
}

func UpgradeCost(def UpgradeDefinition, s *PlayerState) decimal.Decimal {
	return Cost(def.Cost, OwnedUpgrades(s, def.ID))
}

// BulkCost is the total price of the next n copies bought one after another.
func BulkCost(curve CostCurve, owned decimal.Decimal, n int64) decimal.Decimal {
	total := decimal.Zero
	for i := int64(0); i < n; i++ {
		total = total.Add(Cost(curve, owned.Add(decimal.NewFromInt(i))))
	}
	return total
}

// MaxAffordable returns how many copies funds can buy, up to MaxBulk.
func MaxAffordable(curve CostCurve, owned, funds decimal.Decimal) int64 {
	spent := decimal.Zero
	var count int64
	for count < MaxBulk {
		next := spent.Add(Cost(curve, owned.Add(decimal.NewFromInt(count))))
		if next.GreaterThan(funds) {
			break
		}
		spent = next
		count++
	}
	return count
}
