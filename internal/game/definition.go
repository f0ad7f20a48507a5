package game

import "github.com/shopspring/decimal"

// One is the identity multiplier.
var One = decimal.NewFromInt(1)

// Condition gates visibility and eligibility of a definition.
type Condition interface {
	Unlocked(s *PlayerState) bool
}

// ConditionFunc adapts a plain function to a Condition.
type ConditionFunc func(s *PlayerState) bool

func (f ConditionFunc) Unlocked(s *PlayerState) bool { return f(s) }

// Bonus computes the production multiplier a prestige grants.
type Bonus interface {
	ProductionMultiplier(s *PlayerState) decimal.Decimal
}

// BonusFunc adapts a plain function to a Bonus.
type BonusFunc func(s *PlayerState) decimal.Decimal

func (f BonusFunc) ProductionMultiplier(s *PlayerState) decimal.Decimal { return f(s) }

// CostCurve prices the next copy of something as Base * Scaling^owned,
// paid in Resource.
type CostCurve struct {
	Resource string
	Base     decimal.Decimal
	Scaling  decimal.Decimal
}

type GeneratorDefinition struct {
	ID             string
	Name           string
	BaseProduction decimal.Decimal
	Resource       string
	Cost           CostCurve
	Unlock         Condition
}

type EffectType string

const EffectMultiply EffectType = "multiply"

// StackingBehavior says how owned copies of one upgrade combine.
type StackingBehavior int

const (
	StackingMultiplicative StackingBehavior = iota
	StackingAdditive
)

func (b StackingBehavior) String() string {
	switch b {
	case StackingMultiplicative:
		return "multiplicative"
	case StackingAdditive:
		return "additive"
	}
	return "unknown"
}

type UpgradeEffect struct {
	Type     EffectType
	Resource string
	Value    decimal.Decimal
	Stacking StackingBehavior
}

type UpgradeDefinition struct {
	ID          string
	Name        string
	GeneratorID string
	Effects     []UpgradeEffect
	Cost        CostCurve
	Unlock      Condition
}

// PrestigeDefinition is one prestige tier. Bonus is evaluated against the
// state before the reset.
type PrestigeDefinition struct {
	ID     string
	Name   string
	Unlock Condition
	Bonus  Bonus
}

// Definition is implemented by every content definition so lookups can be
// shared across kinds.
type Definition interface {
	DefinitionID() string
	Unlocked(s *PlayerState) bool
}

func (g GeneratorDefinition) DefinitionID() string { return g.ID }

// Unlocked reports whether the generator is visible. A nil condition is
// always unlocked.
func (g GeneratorDefinition) Unlocked(s *PlayerState) bool { return unlocked(g.Unlock, s) }

func (u UpgradeDefinition) DefinitionID() string { return u.ID }

func (u UpgradeDefinition) Unlocked(s *PlayerState) bool { return unlocked(u.Unlock, s) }

func (p PrestigeDefinition) DefinitionID() string { return p.ID }

func (p PrestigeDefinition) Unlocked(s *PlayerState) bool { return unlocked(p.Unlock, s) }

func unlocked(c Condition, s *PlayerState) bool {
	if c == nil {
		return true
	}
	return c.Unlocked(s)
}
