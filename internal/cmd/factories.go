package cmd

import (
	"fmt"

	"ferro/internal/adapters/sound"
	"ferro/internal/adapters/storage"
	"ferro/internal/config"
	"ferro/internal/domain"
	"ferro/internal/ports"
	"ferro/internal/session"
)

// Container holds all dependencies for the application
type Container struct {
	Notifier   ports.Notifier
	Repository ports.WorkoutRepository

	dbPath   string
	planPath string
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(dbPath, planPath string) (*Container, error) {
	repo, err := storage.NewSQLiteRepository(dbPath)
	if err != nil {
		return nil, err
	}

	return &Container{
		Notifier:   sound.NewPlayer(),
		Repository: repo,
		dbPath:     dbPath,
		planPath:   planPath,
	}, nil
}

// DBPath returns the resolved database path
func (c *Container) DBPath() string {
	return c.dbPath
}

// PlanPath returns the resolved plan file path
func (c *Container) PlanPath() string {
	return c.planPath
}

// LoadPlan loads and parses the training plan file
func (c *Container) LoadPlan() (*config.Plan, error) {
	return config.LoadPlan(c.planPath)
}

// ResolveDay finds the (block, day) pair for a session. An empty block
// name selects the plan's first block; an empty day name the block's
// first day.
func (c *Container) ResolveDay(blockName, dayName string) (*config.Block, *config.Day, error) {
	plan, err := c.LoadPlan()
	if err != nil {
		return nil, nil, err
	}

	block, err := plan.Block(blockName)
	if err != nil {
		return nil, nil, err
	}

	if dayName == "" {
		if len(block.Days) == 0 {
			return nil, nil, fmt.Errorf("block %q has no workout days", block.Name)
		}
		return block, &block.Days[0], nil
	}

	day, err := block.Day(dayName)
	if err != nil {
		return nil, nil, err
	}
	return block, day, nil
}

// NewSession assembles the store and persistence bridge for one
// (day, block, week) session
func (c *Container) NewSession(specs []domain.ExerciseSpec, dayName, blockName string, week int) (*session.Store, *session.Bridge) {
	store := session.NewStore(specs, week)
	bridge := session.NewBridge(c.Repository, specs, dayName, blockName, week)
	return store, bridge
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.Repository != nil {
		return c.Repository.Close()
	}
	return nil
}
