package tailor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jacobdsantos/resume-tailor/internal/types"
)

func TestSkillItemScore(t *testing.T) {
	terms := []string{"python", "reverse engineering"}

	assert.Equal(t, 2, skillItemScore("Python", terms))
	assert.Equal(t, 1, skillItemScore("Reverse Engineering Tools", terms))
	assert.Equal(t, 0, skillItemScore("Excel", terms))
}

func TestReorderSkills_RelevantItemsFirst(t *testing.T) {
	groups := []types.SkillGroup{
		{Group: "Languages", Items: []string{"Java", "Python", "Go"}},
	}
	reordered := reorderSkills(groups, []string{"python"})

	assert.Equal(t, []string{"Python", "Java", "Go"}, reordered[0].Items)
}

func TestReorderSkills_GroupsSortedBySummedScore(t *testing.T) {
	groups := []types.SkillGroup{
		{Group: "Office", Items: []string{"Excel", "Word"}},
		{Group: "Analysis", Items: []string{"Ghidra", "YARA"}},
	}
	reordered := reorderSkills(groups, []string{"ghidra", "yara"})

	assert.Equal(t, "Analysis", reordered[0].Group)
	assert.Equal(t, "Office", reordered[1].Group)
}

func TestReorderSkills_TiesKeepAuthoredOrder(t *testing.T) {
	groups := []types.SkillGroup{
		{Group: "A", Items: []string{"One", "Two"}},
		{Group: "B", Items: []string{"Three"}},
	}
	reordered := reorderSkills(groups, nil)

	assert.Equal(t, "A", reordered[0].Group)
	assert.Equal(t, []string{"One", "Two"}, reordered[0].Items)
}

func TestReorderSkills_DoesNotMutateInput(t *testing.T) {
	groups := []types.SkillGroup{
		{Group: "Languages", Items: []string{"Java", "Python"}},
	}
	_ = reorderSkills(groups, []string{"python"})

	assert.Equal(t, []string{"Java", "Python"}, groups[0].Items)
}
