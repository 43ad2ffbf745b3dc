package intake

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelector_SuggestionsFilterCaseInsensitive(t *testing.T) {
	s := NewSelector([]string{"React", "Redux", "Go", "PyTorch"}, 5)

	assert.Equal(t, []string{"React", "Redux"}, s.Suggestions("re"))
	assert.Equal(t, []string{"PyTorch"}, s.Suggestions("TORCH"))
	assert.Len(t, s.Suggestions(""), 4)
}

func TestSelector_SuggestionsHideSelected(t *testing.T) {
	s := NewSelector([]string{"React", "Redux"}, 5)
	s.Add("React")

	assert.Equal(t, []string{"Redux"}, s.Suggestions("re"))
}

func TestSelector_AddRespectsLimitAndDuplicates(t *testing.T) {
	s := NewSelector(nil, 2)

	assert.True(t, s.Add("Go"))
	assert.False(t, s.Add("Go"), "duplicate")
	assert.True(t, s.Add("Rust"))
	assert.True(t, s.AtLimit())
	assert.False(t, s.Add("Zig"), "over limit")
	assert.Equal(t, []string{"Go", "Rust"}, s.Selected())
}

func TestSelector_AddCustomTrimsAndIgnoresBlank(t *testing.T) {
	s := NewSelector(nil, 3)

	assert.False(t, s.AddCustom("   "))
	assert.True(t, s.AddCustom("  Elixir "))
	assert.False(t, s.AddCustom("Elixir"))
	assert.Equal(t, []string{"Elixir"}, s.Selected())
}

func TestSelector_Remove(t *testing.T) {
	s := NewSelector(nil, 3)
	s.Add("Go")
	s.Add("Rust")

	s.Remove("Go")
	s.Remove("missing")

	assert.Equal(t, []string{"Rust"}, s.Selected())
	assert.False(t, s.AtLimit())
}

func TestSelector_DefaultLimit(t *testing.T) {
	assert.Equal(t, DefaultMaxSkills, NewSelector(nil, 0).Max())
}

func TestSelector_SelectedIsCopy(t *testing.T) {
	s := NewSelector(nil, 3)
	s.Add("Go")
	got := s.Selected()
	got[0] = "changed"
	assert.Equal(t, []string{"Go"}, s.Selected())
}

func TestExperienceLabel(t *testing.T) {
	assert.Equal(t, "0 (Fresher)", ExperienceLabel(0))
	assert.Equal(t, "3 years", ExperienceLabel(3))
	assert.Equal(t, "6-8 years", ExperienceLabel(7))
	assert.Equal(t, "13+ years", ExperienceLabel(20))
}
