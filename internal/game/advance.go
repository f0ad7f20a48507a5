package game

import (
	"time"

	"github.com/shopspring/decimal"
)

// Advance credits elapsed time worth of production to s.
func Advance(s *PlayerState, gens []GeneratorDefinition, upgrades []UpgradeDefinition, elapsed time.Duration) {
	if elapsed <= 0 {
		return
	}
	seconds := decimal.NewFromInt(elapsed.Nanoseconds()).Div(decimal.NewFromInt(int64(time.Second)))
	for resource, rate := range ProductionByResource(gens, s, upgrades) {
		s.Resources[resource] = s.Resource(resource).Add(rate.Mul(seconds))
	}
}
