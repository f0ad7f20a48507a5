package game

func CanPrestige(def PrestigeDefinition, s *PlayerState) bool {
	return def.Unlocked(s)
}

// Prestige trades all resources, generators and upgrades for a permanent
// production multiplier. It returns false and leaves s untouched when the
// tier is locked.
func Prestige(def PrestigeDefinition, s *PlayerState) bool {
	if !CanPrestige(def, s) {
		return false
	}

	// The bonus reads totals the resets below zero out.
	ApplyPrestigeBonus(def, s)
	ResetResources(s)
	ResetGenerators(s)
	ResetUpgrades(s)

	return true
}

// AvailablePrestiges returns the tiers the player may take right now.
func AvailablePrestiges(defs []PrestigeDefinition, s *PlayerState) []PrestigeDefinition {
	return FindVisible(defs, s)
}
