package ats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jacobdsantos/resume-tailor/internal/types"
)

func TestComputeScore_EmptyTotal(t *testing.T) {
	assert.Equal(t, 0, ComputeScore(nil, nil, nil))
	assert.Equal(t, 0, ComputeScore([]string{"python"}, nil, nil))
}

func TestComputeScore_FullMatch(t *testing.T) {
	terms := []string{"a", "b", "c"}
	assert.Equal(t, 100, ComputeScore(terms, terms, nil))
}

func TestComputeScore_HalfMatch(t *testing.T) {
	score := ComputeScore([]string{"a", "b"}, []string{"a", "b", "c", "d"}, nil)
	assert.Equal(t, 50, score)
}

func TestComputeScore_Weighted(t *testing.T) {
	weights := []types.ExtractedKeyword{
		{Term: "Malware", Weight: 3.0},
		{Term: "excel", Weight: 1.0},
	}
	// matched weight 3.0 of total 4.0 -> 75. Term lookup is case-insensitive.
	score := ComputeScore([]string{"malware"}, []string{"malware", "excel"}, weights)
	assert.Equal(t, 75, score)
}

func TestComputeScore_WeightedDefaultsUnknownToOne(t *testing.T) {
	weights := []types.ExtractedKeyword{{Term: "yara", Weight: 2.0}}
	// yara=2.0 matched, unknown=1.0 unmatched -> 2/3 -> 67
	score := ComputeScore([]string{"yara"}, []string{"yara", "unknown"}, weights)
	assert.Equal(t, 67, score)
}

func TestComputeScore_Bounds(t *testing.T) {
	cases := [][2][]string{
		{nil, nil},
		{{"a"}, {"a"}},
		{nil, {"a", "b"}},
		{{"a", "b", "c"}, {"a"}},
	}
	for _, c := range cases {
		score := ComputeScore(c[0], c[1], nil)
		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, 100)
	}
}

func TestGrade_Thresholds(t *testing.T) {
	assert.Equal(t, GradeExcellent, Grade(80))
	assert.Equal(t, GradeGood, Grade(60))
	assert.Equal(t, GradeFair, Grade(40))
	assert.Equal(t, GradePoor, Grade(39))
	assert.Equal(t, GradeExcellent, Grade(100))
	assert.Equal(t, GradePoor, Grade(0))
}

func TestFindMissing_CaseInsensitive(t *testing.T) {
	assert.Empty(t, FindMissing([]string{"Python"}, []string{"python"}))
}

func TestFindMissing_PreservesCasingAndOrder(t *testing.T) {
	missing := FindMissing([]string{"python", "Rust", "go"}, []string{"python"})
	assert.Equal(t, []string{"Rust", "go"}, missing)
}

func TestFindMissing_EmptyInputs(t *testing.T) {
	assert.Empty(t, FindMissing(nil, []string{"python"}))
	assert.Equal(t, []string{"go"}, FindMissing([]string{"go"}, nil))
}
