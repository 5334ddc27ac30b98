package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"ferro/internal/domain"
)

const testPlanYAML = `blocks:
  - name: hypertrophy
    weeks: 4
    days:
      - name: push
        exercises:
          - name: Bench Press
            sets: 3
            reps: "8-12"
            alternatives:
              - Dumbbell Press
            optimal_rest_seconds: 180
            quick_rest_seconds: 90
          - name: Cable Fly
            sets: 2
            reps: "12-10-8"
      - name: pull
        exercises:
          - name: Deadlift
            sets: 3
            reps: "Week 1: 8-10, Week 2: 6-8"
  - name: strength
    weeks: 6
    days:
      - name: squat day
        exercises:
          - name: Back Squat
            sets: 5
            reps: "5"
`

func writePlan(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plans.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadPlan(t *testing.T) {
	plan, err := LoadPlan(writePlan(t, testPlanYAML))

	assert.NoError(t, err)
	assert.Len(t, plan.Blocks, 2)
	assert.Equal(t, "hypertrophy", plan.Blocks[0].Name)
	assert.Equal(t, 4, plan.Blocks[0].Weeks)
	assert.Len(t, plan.Blocks[0].Days, 2)
}

func TestLoadPlan_MissingFile(t *testing.T) {
	_, err := LoadPlan(filepath.Join(t.TempDir(), "nope.yaml"))

	assert.Error(t, err)
}

func TestLoadPlan_InvalidYAML(t *testing.T) {
	_, err := LoadPlan(writePlan(t, "blocks: [broken"))

	assert.Error(t, err)
}

func TestPlanBlock(t *testing.T) {
	plan, err := LoadPlan(writePlan(t, testPlanYAML))
	assert.NoError(t, err)

	t.Run("by name", func(t *testing.T) {
		block, err := plan.Block("strength")
		assert.NoError(t, err)
		assert.Equal(t, "strength", block.Name)
	})

	t.Run("empty name selects first", func(t *testing.T) {
		block, err := plan.Block("")
		assert.NoError(t, err)
		assert.Equal(t, "hypertrophy", block.Name)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := plan.Block("peaking")
		assert.Error(t, err)
	})

	t.Run("empty plan", func(t *testing.T) {
		empty := &Plan{}
		_, err := empty.Block("")
		assert.Error(t, err)
	})
}

func TestBlockDay(t *testing.T) {
	plan, err := LoadPlan(writePlan(t, testPlanYAML))
	assert.NoError(t, err)
	block, err := plan.Block("hypertrophy")
	assert.NoError(t, err)

	day, err := block.Day("pull")
	assert.NoError(t, err)
	assert.Equal(t, "pull", day.Name)

	_, err = block.Day("legs")
	assert.True(t, errors.Is(err, domain.ErrDayNotFound))
}

func TestDaySpecs(t *testing.T) {
	plan, err := LoadPlan(writePlan(t, testPlanYAML))
	assert.NoError(t, err)
	block, _ := plan.Block("hypertrophy")
	day, _ := block.Day("push")

	specs := day.Specs()

	assert.Len(t, specs, 2)

	bench := specs[0]
	assert.Equal(t, "Bench Press", bench.Name)
	assert.Equal(t, 3, bench.TargetSets)
	assert.Equal(t, []string{"Dumbbell Press"}, bench.Alternatives)
	assert.Equal(t, 180, bench.OptimalRestSeconds)
	assert.Equal(t, 90, bench.QuickRestSeconds)
	assert.Equal(t, domain.SchemeStraight, bench.RepScheme.Kind)

	fly := specs[1]
	assert.Equal(t, domain.SchemePyramid, fly.RepScheme.Kind)
	assert.Zero(t, fly.OptimalRestSeconds)
}

func TestDaySpecs_WeeklyScheme(t *testing.T) {
	plan, err := LoadPlan(writePlan(t, testPlanYAML))
	assert.NoError(t, err)
	block, _ := plan.Block("hypertrophy")
	day, _ := block.Day("pull")

	specs := day.Specs()

	assert.Equal(t, domain.SchemeWeekly, specs[0].RepScheme.Kind)
	assert.Equal(t, 8, specs[0].RepScheme.ForWeek(1).Min)
	assert.Equal(t, 6, specs[0].RepScheme.ForWeek(2).Min)
}
