package game

// FindVisible returns the definitions whose unlock condition currently holds,
// in input order. Conditions are evaluated on every call.
func FindVisible[D Definition](defs []D, s *PlayerState) []D {
	visible := make([]D, 0, len(defs))
	for _, def := range defs {
		if def.Unlocked(s) {
			visible = append(visible, def)
		}
	}
	return visible
}

// FindByID returns the first definition with the given id.
func FindByID[D Definition](defs []D, id string) (D, bool) {
	for _, def := range defs {
		if def.DefinitionID() == id {
			return def, true
		}
	}
	var zero D
	return zero, false
}

func FindVisibleGenerators(defs []GeneratorDefinition, s *PlayerState) []GeneratorDefinition {
	return FindVisible(defs, s)
}

func FindGeneratorByID(defs []GeneratorDefinition, id string) (GeneratorDefinition, bool) {
	return FindByID(defs, id)
}

func FindVisibleUpgrades(defs []UpgradeDefinition, s *PlayerState) []UpgradeDefinition {
	return FindVisible(defs, s)
}

func FindUpgradeByID(defs []UpgradeDefinition, id string) (UpgradeDefinition, bool) {
	return FindByID(defs, id)
}
