package levels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTOML = `
[[level]]
number = 1
letter = "a"

  [[level.step]]
  type = "findWords"
  reward_per_word = 10.0
  required = 2

[[level]]
number = 7
letter = "B"

  [[level.step]]
  type = "findWords"
  reward_per_word = 5.5
  required = 1
`

func TestLoadAndGet(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Load("en", []byte(sampleTOML)))

	level, err := registry.Get("en", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, level.Number)
	assert.Equal(t, "a", level.Letter)
	require.Len(t, level.Steps, 1)
	assert.Equal(t, StepFindWords, level.Steps[0].Type)
	assert.Equal(t, 10.0, level.Steps[0].RewardPerWord)
	assert.Equal(t, 2, level.Steps[0].Required)
}

func TestLetterIsLowercased(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Load("en", []byte(sampleTOML)))

	level, err := registry.Get("en", 7)
	require.NoError(t, err)
	assert.Equal(t, "b", level.Letter)
}

func TestSparseLevelNumbers(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Load("en", []byte(sampleTOML)))

	// Levels 1 and 7 exist, nothing in between; lookups are exact-key.
	_, err := registry.Get("en", 7)
	assert.NoError(t, err)

	_, err = registry.Get("en", 3)
	assert.ErrorIs(t, err, ErrLevelNotFound)
}

func TestGetUnknownLanguage(t *testing.T) {
	registry := NewRegistry()
	_, err := registry.Get("xx", 1)
	assert.ErrorIs(t, err, ErrLevelNotFound)
}

func TestFirstStepFirstMatchWins(t *testing.T) {
	level := Level{
		Number: 1,
		Letter: "a",
		Steps: []Step{
			{Type: "bonus", RewardPerWord: 1},
			{Type: StepFindWords, RewardPerWord: 10, Required: 2},
			{Type: StepFindWords, RewardPerWord: 99, Required: 9},
		},
	}

	step, ok := level.FirstStep(StepFindWords)
	require.True(t, ok)
	assert.Equal(t, 10.0, step.RewardPerWord)

	_, ok = level.FirstStep("memorize")
	assert.False(t, ok)
}

func TestUnknownStepTagsLoad(t *testing.T) {
	source := `
[[level]]
number = 1
letter = "a"

  [[level.step]]
  type = "someFutureStep"
  reward_per_word = 3.0

  [[level.step]]
  type = "findWords"
  reward_per_word = 10.0
  required = 2
`
	registry := NewRegistry()
	require.NoError(t, registry.Load("en", []byte(source)))

	level, err := registry.Get("en", 1)
	require.NoError(t, err)
	require.Len(t, level.Steps, 2)

	step, ok := level.FirstStep(StepFindWords)
	require.True(t, ok)
	assert.Equal(t, 2, step.Required)
}

func TestAddValidation(t *testing.T) {
	cases := []struct {
		name  string
		level Level
	}{
		{"zero number", Level{Number: 0, Letter: "a"}},
		{"negative number", Level{Number: -1, Letter: "a"}},
		{"empty letter", Level{Number: 1, Letter: ""}},
		{"multi-char letter", Level{Number: 1, Letter: "ab"}},
		{"untyped step", Level{Number: 1, Letter: "a", Steps: []Step{{Required: 1}}}},
		{"negative reward", Level{Number: 1, Letter: "a", Steps: []Step{{Type: StepFindWords, RewardPerWord: -1}}}},
		{"negative required", Level{Number: 1, Letter: "a", Steps: []Step{{Type: StepFindWords, Required: -2}}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			registry := NewRegistry()
			assert.Error(t, registry.Add("en", tc.level))
		})
	}
}

func TestDuplicateLevelNumberRejected(t *testing.T) {
	registry := NewRegistry()
	level := Level{Number: 1, Letter: "a", Steps: []Step{{Type: StepFindWords, RewardPerWord: 1, Required: 1}}}
	require.NoError(t, registry.Add("en", level))
	assert.Error(t, registry.Add("en", level))
}

func TestLoadRejectsWholeFileOnBadLevel(t *testing.T) {
	source := `
[[level]]
number = 1
letter = "a"

  [[level.step]]
  type = "findWords"
  reward_per_word = 10.0
  required = 2

[[level]]
number = 2
letter = "toolong"
`
	registry := NewRegistry()
	require.Error(t, registry.Load("en", []byte(source)))

	// Nothing from the bad file sticks, not even the valid first level.
	_, err := registry.Get("en", 1)
	assert.ErrorIs(t, err, ErrLevelNotFound)
}

func TestLoadRejectsInvalidTOML(t *testing.T) {
	registry := NewRegistry()
	assert.Error(t, registry.Load("en", []byte("not [valid toml")))
}

func TestLanguagesAndLevelCount(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Load("en", []byte(sampleTOML)))

	assert.Equal(t, []string{"en"}, registry.Languages())
	assert.Equal(t, 2, registry.LevelCount("en"))
	assert.Equal(t, 0, registry.LevelCount("fr"))
}
