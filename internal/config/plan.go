package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"ferro/internal/domain"
)

// ExerciseConfig is one exercise declaration in the plan file
type ExerciseConfig struct {
	Name               string   `yaml:"name"`
	Sets               int      `yaml:"sets"`
	Reps               string   `yaml:"reps"`
	Alternatives       []string `yaml:"alternatives,omitempty"`
	OptimalRestSeconds int      `yaml:"optimal_rest_seconds,omitempty"`
	QuickRestSeconds   int      `yaml:"quick_rest_seconds,omitempty"`
	Notes              string   `yaml:"notes,omitempty"`
}

// Day is one workout day within a block
type Day struct {
	Name      string           `yaml:"name"`
	Exercises []ExerciseConfig `yaml:"exercises"`
}

// Block is a multi-week grouping of workout days
type Block struct {
	Name  string `yaml:"name"`
	Weeks int    `yaml:"weeks,omitempty"`
	Days  []Day  `yaml:"days"`
}

// Plan is the root of the training-plan file
type Plan struct {
	Blocks []Block `yaml:"blocks"`
}

// LoadPlan reads and parses the YAML training plan
func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file %s: %w", path, err)
	}

	var plan Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("invalid plan file %s: %w", path, err)
	}

	return &plan, nil
}

// Block finds a block by name. An empty name selects the first block.
func (p *Plan) Block(name string) (*Block, error) {
	if len(p.Blocks) == 0 {
		return nil, fmt.Errorf("plan has no blocks")
	}
	if name == "" {
		return &p.Blocks[0], nil
	}
	for i := range p.Blocks {
		if p.Blocks[i].Name == name {
			return &p.Blocks[i], nil
		}
	}
	return nil, fmt.Errorf("block %q not found in plan", name)
}

// Day finds a workout day by name within the block
func (b *Block) Day(name string) (*Day, error) {
	for i := range b.Days {
		if b.Days[i].Name == name {
			return &b.Days[i], nil
		}
	}
	return nil, fmt.Errorf("day %q: %w", name, domain.ErrDayNotFound)
}

// Specs converts the day's exercise declarations into immutable exercise
// specs, parsing each rep scheme exactly once at ingestion.
func (d *Day) Specs() []domain.ExerciseSpec {
	specs := make([]domain.ExerciseSpec, len(d.Exercises))
	for i, e := range d.Exercises {
		specs[i] = domain.ExerciseSpec{
			Name:               e.Name,
			TargetSets:         e.Sets,
			RepScheme:          domain.ParseRepScheme(e.Reps),
			Alternatives:       e.Alternatives,
			OptimalRestSeconds: e.OptimalRestSeconds,
			QuickRestSeconds:   e.QuickRestSeconds,
			Notes:              e.Notes,
		}
	}
	return specs
}
