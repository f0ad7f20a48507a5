package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func baseState() *PlayerState {
	return &PlayerState{
		Generators:      map[string]Owned{"solarPanel": owned("1")},
		Upgrades:        map[string]Owned{},
		PrestigeBonuses: PrestigeBonuses{ProductionMultiplier: d("1")},
	}
}

func TestProduction(t *testing.T) {
	gen := solarPanel()

	t.Run("base production without upgrades", func(t *testing.T) {
		assertDecimal(t, "10", Production(gen, baseState(), nil))
	})

	t.Run("scales with owned generators", func(t *testing.T) {
		s := baseState()
		s.Generators["solarPanel"] = owned("3")
		assertDecimal(t, "30", Production(gen, s, nil))
	})

	t.Run("absent generator produces nothing", func(t *testing.T) {
		s := baseState()
		delete(s.Generators, "solarPanel")
		assertDecimal(t, "0", Production(gen, s, nil))
	})

	t.Run("applies upgrade multipliers", func(t *testing.T) {
		s := baseState()
		s.Upgrades["upgrade1"] = owned("1")
		assertDecimal(t, "20", Production(gen, s, []UpgradeDefinition{doubler("upgrade1", "solarPanel")}))
	})

	t.Run("owned upgrade copies compound", func(t *testing.T) {
		s := baseState()
		s.Upgrades["upgrade1"] = owned("3")
		assertDecimal(t, "80", Production(gen, s, []UpgradeDefinition{doubler("upgrade1", "solarPanel")}))
	})

	t.Run("unowned upgrade has no effect", func(t *testing.T) {
		assertDecimal(t, "10", Production(gen, baseState(), []UpgradeDefinition{doubler("upgrade1", "solarPanel")}))
	})

	t.Run("applies prestige bonus", func(t *testing.T) {
		s := baseState()
		s.PrestigeBonuses.ProductionMultiplier = d("2")
		assertDecimal(t, "20", Production(gen, s, nil))
	})

	t.Run("combines upgrades and prestige multipliers", func(t *testing.T) {
		s := baseState()
		s.Upgrades["upgrade1"] = owned("1")
		s.PrestigeBonuses.ProductionMultiplier = d("2")
		assertDecimal(t, "40", Production(gen, s, []UpgradeDefinition{doubler("upgrade1", "solarPanel")}))
	})

	t.Run("ignores upgrades for other generators", func(t *testing.T) {
		s := baseState()
		s.Upgrades["upgrade1"] = owned("5")
		assertDecimal(t, "10", Production(gen, s, []UpgradeDefinition{doubler("upgrade1", "windTurbine")}))
	})

	t.Run("additive stacking sums bonuses", func(t *testing.T) {
		s := baseState()
		s.Upgrades["flat"] = owned("3")
		s.Upgrades["flat2"] = owned("1")
		upgrades := []UpgradeDefinition{
			{ID: "flat", GeneratorID: "solarPanel", Effects: []UpgradeEffect{
				{Type: EffectMultiply, Value: d("1.5"), Stacking: StackingAdditive},
			}},
			{ID: "flat2", GeneratorID: "solarPanel", Effects: []UpgradeEffect{
				{Type: EffectMultiply, Value: d("2"), Stacking: StackingAdditive},
			}},
		}
		// 10 * (1 + 0.5*3 + 1*1)
		assertDecimal(t, "35", Production(gen, s, upgrades))
	})

	t.Run("additive penalties stop at zero", func(t *testing.T) {
		s := baseState()
		s.Resources = NewPlayerState().Resources
		s.Upgrades["dampener"] = owned("3")
		upgrades := []UpgradeDefinition{{ID: "dampener", GeneratorID: "solarPanel", Effects: []UpgradeEffect{
			{Type: EffectMultiply, Value: d("0.5"), Stacking: StackingAdditive},
		}}}
		// 1 + (-0.5*3) is negative, so the factor is zero.
		assertDecimal(t, "0", Production(gen, s, upgrades))

		Advance(s, []GeneratorDefinition{gen}, upgrades, time.Second)
		assert.False(t, s.Resource("energy").IsNegative())
	})

	t.Run("unknown effect types are ignored", func(t *testing.T) {
		s := baseState()
		s.Upgrades["odd"] = owned("1")
		upgrades := []UpgradeDefinition{{ID: "odd", GeneratorID: "solarPanel", Effects: []UpgradeEffect{
			{Type: EffectType("sum"), Value: d("100")},
		}}}
		assertDecimal(t, "10", Production(gen, s, upgrades))
	})
}

func TestProduction_OrderIndependent(t *testing.T) {
	gen := solarPanel()
	s := baseState()
	s.Upgrades["a"] = owned("2")
	s.Upgrades["b"] = owned("1")
	s.PrestigeBonuses.ProductionMultiplier = d("1.5")

	a := doubler("a", "solarPanel")
	b := doubler("b", "solarPanel")
	b.Effects[0].Value = d("3")

	forward := Production(gen, s, []UpgradeDefinition{a, b})
	backward := Production(gen, s, []UpgradeDefinition{b, a})
	assert.True(t, forward.Equal(backward))
	// 10 * 2^2 * 3 * 1.5
	assertDecimal(t, "180", forward)
}

func TestProductionByResource(t *testing.T) {
	wind := GeneratorDefinition{ID: "windTurbine", BaseProduction: d("4"), Resource: "energy"}
	mine := GeneratorDefinition{ID: "mine", BaseProduction: d("1"), Resource: "ore"}
	idle := GeneratorDefinition{ID: "idle", BaseProduction: d("1"), Resource: "dust"}

	s := baseState()
	s.Generators["windTurbine"] = owned("2")
	s.Generators["mine"] = owned("7")

	rates := ProductionByResource([]GeneratorDefinition{solarPanel(), wind, mine, idle}, s, nil)
	assert.Len(t, rates, 2)
	assertDecimal(t, "18", rates["energy"])
	assertDecimal(t, "7", rates["ore"])
}
