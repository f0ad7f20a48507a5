package content

import (
	"github.com/shopspring/decimal"

	"archuser.org/idle-ladder/internal/game"
)

type references struct {
	generators map[string]bool
	upgrades   map[string]bool
	resources  map[string]bool
}

// unlockConfig holds minimum amounts; every listed threshold must be met.
// An empty block is always unlocked.
type unlockConfig struct {
	Resources  map[string]string `yaml:"resources"`
	Generators map[string]string `yaml:"generators"`
	Upgrades   map[string]string `yaml:"upgrades"`
}

type threshold struct {
	id  string
	min decimal.Decimal
}

// thresholds is the compiled form of unlockConfig.
type thresholds struct {
	resources  []threshold
	generators []threshold
	upgrades   []threshold
}

func (t thresholds) Unlocked(s *game.PlayerState) bool {
	for _, r := range t.resources {
		if s.Resource(r.id).LessThan(r.min) {
			return false
		}
	}
	for _, g := range t.generators {
		if game.OwnedGenerators(s, g.id).LessThan(g.min) {
			return false
		}
	}
	for _, u := range t.upgrades {
		if game.OwnedUpgrades(s, u.id).LessThan(u.min) {
			return false
		}
	}
	return true
}

func (u unlockConfig) compile(where string, refs references) (game.Condition, error) {
	var (
		t   thresholds
		err error
	)
	if t.resources, err = compileThresholds(u.Resources, where+" unlock resource", nil); err != nil {
		return nil, err
	}
	if t.generators, err = compileThresholds(u.Generators, where+" unlock generator", refs.generators); err != nil {
		return nil, err
	}
	if t.upgrades, err = compileThresholds(u.Upgrades, where+" unlock upgrade", refs.upgrades); err != nil {
		return nil, err
	}
	return t, nil
}

// compileThresholds parses raw minimums. When known is non-nil every id must
// be in it.
func compileThresholds(raw map[string]string, where string, known map[string]bool) ([]threshold, error) {
	out := make([]threshold, 0, len(raw))
	for id, value := range raw {
		if known != nil && !known[id] {
			return nil, invalid("%s %q is not defined", where, id)
		}
		minimum, err := nonNegative(value, where+" "+id)
		if err != nil {
			return nil, err
		}
		out = append(out, threshold{id: id, min: minimum})
	}
	return out, nil
}

// bonusConfig describes a prestige bonus of flat + floor(resource/per) * step.
type bonusConfig struct {
	Resource string `yaml:"resource"`
	Per      string `yaml:"per"`
	Step     string `yaml:"step"`
	Flat     string `yaml:"flat"`
}

type stepBonus struct {
	resource string
	per      decimal.Decimal
	step     decimal.Decimal
	flat     decimal.Decimal
}

func (b stepBonus) ProductionMultiplier(s *game.PlayerState) decimal.Decimal {
	bonus := b.flat
	if b.resource != "" {
		bonus = bonus.Add(s.Resource(b.resource).Div(b.per).Floor().Mul(b.step))
	}
	return bonus
}

func (b bonusConfig) compile(where string, resources map[string]bool) (game.Bonus, error) {
	var (
		bonus stepBonus
		err   error
	)
	bonus.flat = decimal.Zero
	if b.Flat != "" {
		if bonus.flat, err = nonNegative(b.Flat, where+" bonus flat"); err != nil {
			return nil, err
		}
	}
	if b.Resource == "" {
		if bonus.flat.IsZero() {
			return nil, invalid("%s bonus grants nothing", where)
		}
		return bonus, nil
	}

	if !resources[b.Resource] {
		return nil, invalid("%s bonus resource %q is not defined", where, b.Resource)
	}
	bonus.resource = b.Resource
	if bonus.per, err = parseDecimal(b.Per, where+" bonus per"); err != nil {
		return nil, err
	}
	if !bonus.per.IsPositive() {
		return nil, invalid("%s bonus per must be positive, got %s", where, bonus.per)
	}
	if bonus.step, err = nonNegative(b.Step, where+" bonus step"); err != nil {
		return nil, err
	}
	return bonus, nil
}
