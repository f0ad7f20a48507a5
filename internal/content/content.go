// Package content loads game definitions from YAML and validates them once,
// at load time, so the core calculations can assume well-formed input.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"archuser.org/idle-ladder/internal/game"
)

//go:embed default.yaml
var defaultContent []byte

// ErrInvalidContent is wrapped by every validation failure.
var ErrInvalidContent = errors.New("invalid content")

// Content is the validated, immutable set of definitions for one game.
type Content struct {
	StartingResources map[string]decimal.Decimal
	Generators        []game.GeneratorDefinition
	Upgrades          []game.UpgradeDefinition
	Prestige          []game.PrestigeDefinition
}

type fileConfig struct {
	StartingResources map[string]string `yaml:"startingResources"`
	Generators        []generatorConfig `yaml:"generators"`
	Upgrades          []upgradeConfig   `yaml:"upgrades"`
	Prestige          []prestigeConfig  `yaml:"prestige"`
}

type costConfig struct {
	Resource string `yaml:"resource"`
	Base     string `yaml:"base"`
	Scaling  string `yaml:"scaling"`
}

type generatorConfig struct {
	ID             string       `yaml:"id"`
	Name           string       `yaml:"name"`
	Resource       string       `yaml:"resource"`
	BaseProduction string       `yaml:"baseProduction"`
	Cost           costConfig   `yaml:"cost"`
	Unlock         unlockConfig `yaml:"unlock"`
}

type effectConfig struct {
	Type     string `yaml:"type"`
	Resource string `yaml:"resource"`
	Value    string `yaml:"value"`
	Stacking string `yaml:"stacking"`
}

type upgradeConfig struct {
	ID        string         `yaml:"id"`
	Name      string         `yaml:"name"`
	Generator string         `yaml:"generator"`
	Effects   []effectConfig `yaml:"effects"`
	Cost      costConfig     `yaml:"cost"`
	Unlock    unlockConfig   `yaml:"unlock"`
}

type prestigeConfig struct {
	ID     string       `yaml:"id"`
	Name   string       `yaml:"name"`
	Unlock unlockConfig `yaml:"unlock"`
	Bonus  bonusConfig  `yaml:"bonus"`
}

func Load(path string) (*Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}
	return Parse(data)
}

// Default returns the content bundled with the binary.
func Default() *Content {
	c, err := Parse(defaultContent)
	if err != nil {
		panic(fmt.Sprintf("bundled content: %v", err))
	}
	return c
}

func Parse(data []byte) (*Content, error) {
	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return build(cfg)
}

func build(cfg fileConfig) (*Content, error) {
	if len(cfg.Generators) == 0 {
		return nil, invalid("no generators defined")
	}

	c := &Content{StartingResources: make(map[string]decimal.Decimal, len(cfg.StartingResources))}
	for resource, raw := range cfg.StartingResources {
		amount, err := nonNegative(raw, "starting resource "+resource)
		if err != nil {
			return nil, err
		}
		c.StartingResources[resource] = amount
	}

	generatorIDs := make(map[string]bool, len(cfg.Generators))
	for i, gen := range cfg.Generators {
		if gen.ID == "" {
			return nil, invalid("generator %d missing id", i)
		}
		if generatorIDs[gen.ID] {
			return nil, invalid("duplicate generator %s", gen.ID)
		}
		generatorIDs[gen.ID] = true
	}

	upgradeIDs := make(map[string]bool, len(cfg.Upgrades))
	for i, upgrade := range cfg.Upgrades {
		if upgrade.ID == "" {
			return nil, invalid("upgrade %d missing id", i)
		}
		if upgradeIDs[upgrade.ID] {
			return nil, invalid("duplicate upgrade %s", upgrade.ID)
		}
		upgradeIDs[upgrade.ID] = true
	}
	refs := references{generators: generatorIDs, upgrades: upgradeIDs}

	for _, raw := range cfg.Generators {
		gen, err := buildGenerator(raw, refs)
		if err != nil {
			return nil, err
		}
		c.Generators = append(c.Generators, gen)
	}

	for _, raw := range cfg.Upgrades {
		upgrade, err := buildUpgrade(raw, refs)
		if err != nil {
			return nil, err
		}
		c.Upgrades = append(c.Upgrades, upgrade)
	}

	refs.resources = make(map[string]bool)
	for _, resource := range c.Resources() {
		refs.resources[resource] = true
	}

	prestigeIDs := make(map[string]bool, len(cfg.Prestige))
	for i, raw := range cfg.Prestige {
		if raw.ID == "" {
			return nil, invalid("prestige %d missing id", i)
		}
		if prestigeIDs[raw.ID] {
			return nil, invalid("duplicate prestige %s", raw.ID)
		}
		prestigeIDs[raw.ID] = true

		tier, err := buildPrestige(raw, refs)
		if err != nil {
			return nil, err
		}
		c.Prestige = append(c.Prestige, tier)
	}

	return c, nil
}

func buildGenerator(raw generatorConfig, refs references) (game.GeneratorDefinition, error) {
	where := "generator " + raw.ID
	if raw.Resource == "" {
		return game.GeneratorDefinition{}, invalid("%s missing resource", where)
	}
	production, err := nonNegative(raw.BaseProduction, where+" baseProduction")
	if err != nil {
		return game.GeneratorDefinition{}, err
	}
	cost, err := buildCost(raw.Cost, where)
	if err != nil {
		return game.GeneratorDefinition{}, err
	}
	unlock, err := raw.Unlock.compile(where, refs)
	if err != nil {
		return game.GeneratorDefinition{}, err
	}

	name := raw.Name
	if name == "" {
		name = raw.ID
	}
	return game.GeneratorDefinition{
		ID:             raw.ID,
		Name:           name,
		BaseProduction: production,
		Resource:       raw.Resource,
		Cost:           cost,
		Unlock:         unlock,
	}, nil
}

func buildUpgrade(raw upgradeConfig, refs references) (game.UpgradeDefinition, error) {
	where := "upgrade " + raw.ID
	if !refs.generators[raw.Generator] {
		return game.UpgradeDefinition{}, invalid("%s targets unknown generator %q", where, raw.Generator)
	}
	if len(raw.Effects) == 0 {
		return game.UpgradeDefinition{}, invalid("%s missing effects", where)
	}

	effects := make([]game.UpgradeEffect, 0, len(raw.Effects))
	for i, e := range raw.Effects {
		effect, err := buildEffect(e, fmt.Sprintf("%s effect %d", where, i))
		if err != nil {
			return game.UpgradeDefinition{}, err
		}
		effects = append(effects, effect)
	}

	cost, err := buildCost(raw.Cost, where)
	if err != nil {
		return game.UpgradeDefinition{}, err
	}
	unlock, err := raw.Unlock.compile(where, refs)
	if err != nil {
		return game.UpgradeDefinition{}, err
	}

	name := raw.Name
	if name == "" {
		name = raw.ID
	}
	return game.UpgradeDefinition{
		ID:          raw.ID,
		Name:        name,
		GeneratorID: raw.Generator,
		Effects:     effects,
		Cost:        cost,
		Unlock:      unlock,
	}, nil
}

func buildEffect(raw effectConfig, where string) (game.UpgradeEffect, error) {
	if game.EffectType(raw.Type) != game.EffectMultiply {
		return game.UpgradeEffect{}, invalid("%s has unsupported type %q", where, raw.Type)
	}
	var stacking game.StackingBehavior
	switch raw.Stacking {
	case "", "multiplicative":
		stacking = game.StackingMultiplicative
	case "additive":
		stacking = game.StackingAdditive
	default:
		return game.UpgradeEffect{}, invalid("%s has unsupported stacking %q", where, raw.Stacking)
	}
	value, err := nonNegative(raw.Value, where+" value")
	if err != nil {
		return game.UpgradeEffect{}, err
	}
	if stacking == game.StackingAdditive && value.LessThan(game.One) {
		return game.UpgradeEffect{}, invalid("%s additive value must be at least 1, got %s", where, value)
	}
	return game.UpgradeEffect{
		Type:     game.EffectMultiply,
		Resource: raw.Resource,
		Value:    value,
		Stacking: stacking,
	}, nil
}

func buildPrestige(raw prestigeConfig, refs references) (game.PrestigeDefinition, error) {
	where := "prestige " + raw.ID
	unlock, err := raw.Unlock.compile(where, refs)
	if err != nil {
		return game.PrestigeDefinition{}, err
	}
	bonus, err := raw.Bonus.compile(where, refs.resources)
	if err != nil {
		return game.PrestigeDefinition{}, err
	}

	name := raw.Name
	if name == "" {
		name = raw.ID
	}
	return game.PrestigeDefinition{ID: raw.ID, Name: name, Unlock: unlock, Bonus: bonus}, nil
}

func buildCost(raw costConfig, where string) (game.CostCurve, error) {
	if raw.Resource == "" {
		return game.CostCurve{}, invalid("%s cost missing resource", where)
	}
	base, err := nonNegative(raw.Base, where+" cost base")
	if err != nil {
		return game.CostCurve{}, err
	}
	scaling, err := parseDecimal(raw.Scaling, where+" cost scaling")
	if err != nil {
		return game.CostCurve{}, err
	}
	if !scaling.IsPositive() {
		return game.CostCurve{}, invalid("%s cost scaling must be positive, got %s", where, scaling)
	}
	return game.CostCurve{Resource: raw.Resource, Base: base, Scaling: scaling}, nil
}

// NewState returns a fresh player state with every defined resource,
// generator and upgrade present at zero and starting resources applied.
func (c *Content) NewState() *game.PlayerState {
	s := game.NewPlayerState()
	for _, resource := range c.Resources() {
		s.Resources[resource] = decimal.Zero
	}
	for resource, amount := range c.StartingResources {
		s.Resources[resource] = amount
	}
	for _, gen := range c.Generators {
		s.Generators[gen.ID] = game.Owned{Owned: decimal.Zero}
	}
	for _, upgrade := range c.Upgrades {
		s.Upgrades[upgrade.ID] = game.Owned{Owned: decimal.Zero}
	}
	return s
}

// Resources lists every resource the content produces or spends, sorted.
func (c *Content) Resources() []string {
	seen := make(map[string]bool)
	for resource := range c.StartingResources {
		seen[resource] = true
	}
	for _, gen := range c.Generators {
		seen[gen.Resource] = true
		seen[gen.Cost.Resource] = true
	}
	for _, upgrade := range c.Upgrades {
		seen[upgrade.Cost.Resource] = true
	}
	resources := make([]string, 0, len(seen))
	for resource := range seen {
		resources = append(resources, resource)
	}
	sort.Strings(resources)
	return resources
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidContent, fmt.Sprintf(format, args...))
}

func parseDecimal(raw, field string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Decimal{}, invalid("%s missing", field)
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, invalid("%s: %v", field, err)
	}
	return value, nil
}

func nonNegative(raw, field string) (decimal.Decimal, error) {
	value, err := parseDecimal(raw, field)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if value.IsNegative() {
		return decimal.Decimal{}, invalid("%s must not be negative, got %s", field, value)
	}
	return value, nil
}
