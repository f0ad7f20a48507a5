package game

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func owned(s string) Owned { return Owned{Owned: d(s)} }

// assertDecimal compares numerically, so "10" and "10.00" are equal.
func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Truef(t, d(want).Equal(got), "expected %s, got %s %v", want, got.String(), msgAndArgs)
}

func solarPanel() GeneratorDefinition {
	return GeneratorDefinition{
		ID:             "solarPanel",
		Name:           "Solar Panel",
		BaseProduction: d("10"),
		Resource:       "energy",
		Cost:           CostCurve{Resource: "energy", Base: d("10"), Scaling: d("1.15")},
	}
}

func doubler(id, generatorID string) UpgradeDefinition {
	return UpgradeDefinition{
		ID:          id,
		Name:        id,
		GeneratorID: generatorID,
		Effects: []UpgradeEffect{
			{Type: EffectMultiply, Resource: "energy", Value: d("2"), Stacking: StackingMultiplicative},
		},
		Cost: CostCurve{Resource: "energy", Base: d("100"), Scaling: d("2")},
	}
}

func resourceAtLeast(resource, threshold string) Condition {
	return ConditionFunc(func(s *PlayerState) bool {
		return s.Resource(resource).GreaterThanOrEqual(d(threshold))
	})
}
