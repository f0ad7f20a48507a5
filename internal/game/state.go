package game

import (
	"maps"
	"slices"

	"github.com/shopspring/decimal"
)

// PlayerState is the mutable progression record owned by the host game loop.
// Absent ids are treated as zero-owned.
type PlayerState struct {
	Resources       map[string]decimal.Decimal `json:"resources"`
	Generators      map[string]Owned           `json:"generators"`
	Upgrades        map[string]Owned           `json:"upgrades"`
	PrestigeBonuses PrestigeBonuses            `json:"prestigeBonuses"`
}

type Owned struct {
	Owned decimal.Decimal `json:"owned"`
}

type PrestigeBonuses struct {
	ProductionMultiplier decimal.Decimal `json:"productionMultiplier"`
}

func NewPlayerState() *PlayerState {
	return &PlayerState{
		Resources:       make(map[string]decimal.Decimal),
		Generators:      make(map[string]Owned),
		Upgrades:        make(map[string]Owned),
		PrestigeBonuses: PrestigeBonuses{ProductionMultiplier: One},
	}
}

// Clone returns a deep copy of s.
func (s *PlayerState) Clone() *PlayerState {
	c := &PlayerState{
		Resources:       make(map[string]decimal.Decimal, len(s.Resources)),
		Generators:      make(map[string]Owned, len(s.Generators)),
		Upgrades:        make(map[string]Owned, len(s.Upgrades)),
		PrestigeBonuses: s.PrestigeBonuses,
	}
	for id, amount := range s.Resources {
		c.Resources[id] = amount
	}
	for id, owned := range s.Generators {
		c.Generators[id] = owned
	}
	for id, owned := range s.Upgrades {
		c.Upgrades[id] = owned
	}
	return c
}

// Resource returns the amount held of a resource, zero when absent.
func (s *PlayerState) Resource(id string) decimal.Decimal {
	return s.Resources[id]
}

func OwnedGenerators(s *PlayerState, id string) decimal.Decimal {
	return s.Generators[id].Owned
}

func OwnedUpgrades(s *PlayerState, id string) decimal.Decimal {
	return s.Upgrades[id].Owned
}

// ApplyPrestigeBonus adds the tier's bonus to the accumulated production
// multiplier.
func ApplyPrestigeBonus(def PrestigeDefinition, s *PlayerState) {
	if def.Bonus == nil {
		return
	}
	delta := def.Bonus.ProductionMultiplier(s)
	s.PrestigeBonuses.ProductionMultiplier = s.PrestigeBonuses.ProductionMultiplier.Add(delta)
}

func ResetResources(s *PlayerState) {
	for id := range s.Resources {
		s.Resources[id] = decimal.Zero
	}
}

func ResetGenerators(s *PlayerState) {
	for id := range s.Generators {
		s.Generators[id] = Owned{Owned: decimal.Zero}
	}
}

func ResetUpgrades(s *PlayerState) {
	for id := range s.Upgrades {
		s.Upgrades[id] = Owned{Owned: decimal.Zero}
	}
}

// ResourceSummary lists held amounts as "id: amount" in id order, for logs.
func (s *PlayerState) ResourceSummary() []string {
	var lines []string
	for _, id := range slices.Sorted(maps.Keys(s.Resources)) {
		lines = append(lines, id+": "+s.Resources[id].StringFixed(2))
	}
	if lines == nil {
		return []string{"no resources"}
	}
	return lines
}
