package extractor

import (
	"encoding/json"
	"testing"

	"github.com/Kart8ik/LeetCode-Analytics-Platform/internal/leetcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flexInt(v int) *leetcode.FlexInt {
	f := leetcode.FlexInt(v)
	return &f
}

func TestCountByLabel_NamedDifficulties(t *testing.T) {
	buckets := []leetcode.SubmissionBucket{
		{Difficulty: "All", Count: flexInt(60)},
		{Difficulty: "Easy", Count: flexInt(30)},
		{Difficulty: "Medium", Count: flexInt(20)},
		{Difficulty: "Hard", Count: flexInt(10)},
	}

	assert.Equal(t, 30, CountByLabel(buckets, "easy"))
	assert.Equal(t, 20, CountByLabel(buckets, "medium"))
	assert.Equal(t, 10, CountByLabel(buckets, "hard"))
}

func TestCountByLabel_AllExplicitEntry(t *testing.T) {
	buckets := []leetcode.SubmissionBucket{
		{Difficulty: "All", Count: flexInt(55)},
		{Difficulty: "Easy", Count: flexInt(30)},
		{Difficulty: "Medium", Count: flexInt(20)},
		{Difficulty: "Hard", Count: flexInt(10)},
	}

	// L'entrée "All" gagne même si elle diverge de la somme des trois
	assert.Equal(t, 55, CountByLabel(buckets, "all"))
}

func TestCountByLabel_AllEmptyLabelEntry(t *testing.T) {
	buckets := []leetcode.SubmissionBucket{
		{Difficulty: "", Count: flexInt(42)},
		{Difficulty: "Easy", Count: flexInt(30)},
	}

	assert.Equal(t, 42, CountByLabel(buckets, "all"))
}

func TestCountByLabel_AllSumFallback(t *testing.T) {
	buckets := []leetcode.SubmissionBucket{
		{Difficulty: "Easy", Count: flexInt(3)},
		{Difficulty: "Medium", Count: flexInt(2)},
		{Difficulty: "Hard", Count: flexInt(1)},
	}

	assert.Equal(t, 6, CountByLabel(buckets, "all"))
}

func TestCountByLabel_SubmissionsFallback(t *testing.T) {
	buckets := []leetcode.SubmissionBucket{
		{Difficulty: "Easy", Submissions: flexInt(7)},
	}

	assert.Equal(t, 7, CountByLabel(buckets, "easy"))
}

func TestCountByLabel_NeitherFieldPresent(t *testing.T) {
	buckets := []leetcode.SubmissionBucket{
		{Difficulty: "Easy"},
	}

	assert.Equal(t, 0, CountByLabel(buckets, "easy"))
	assert.Equal(t, 0, CountByLabel(buckets, "all"))
}

func TestCountByLabel_NilAndUnknown(t *testing.T) {
	assert.Equal(t, 0, CountByLabel(nil, "easy"))
	assert.Equal(t, 0, CountByLabel(nil, "all"))

	buckets := []leetcode.SubmissionBucket{{Difficulty: "Easy", Count: flexInt(3)}}
	assert.Equal(t, 0, CountByLabel(buckets, "extreme"))
}

func TestCountByLabel_CaseInsensitiveSubstring(t *testing.T) {
	buckets := []leetcode.SubmissionBucket{
		{Difficulty: "MEDIUM-ish", Count: flexInt(4)},
	}

	assert.Equal(t, 4, CountByLabel(buckets, "medium"))
}

func TestAcceptanceRate(t *testing.T) {
	ac := []leetcode.SubmissionBucket{{Difficulty: "All", Count: flexInt(50)}}
	total := []leetcode.SubmissionBucket{{Difficulty: "All", Count: flexInt(200)}}

	rate := AcceptanceRate(ac, total)
	require.NotNil(t, rate)
	assert.Equal(t, 25.0, *rate)
}

func TestAcceptanceRate_Rounding(t *testing.T) {
	ac := []leetcode.SubmissionBucket{{Difficulty: "All", Count: flexInt(1)}}
	total := []leetcode.SubmissionBucket{{Difficulty: "All", Count: flexInt(3)}}

	rate := AcceptanceRate(ac, total)
	require.NotNil(t, rate)
	assert.Equal(t, 33.33, *rate)
}

func TestAcceptanceRate_NilWhenNoSubmissions(t *testing.T) {
	ac := []leetcode.SubmissionBucket{{Difficulty: "All", Count: flexInt(50)}}

	assert.Nil(t, AcceptanceRate(ac, nil))
	assert.Nil(t, AcceptanceRate(ac, []leetcode.SubmissionBucket{{Difficulty: "All", Count: flexInt(0)}}))
}

func TestFlattenTopics_TierOrder(t *testing.T) {
	tags := &leetcode.TagProblemCounts{
		Advanced:     []leetcode.TagCount{{TagName: "dp", ProblemsSolved: 5}},
		Intermediate: []leetcode.TagCount{{TagName: "graphs", ProblemsSolved: 3}},
		Fundamental:  []leetcode.TagCount{{TagName: "arrays", ProblemsSolved: 12}},
	}

	topics := FlattenTopics(tags)
	require.Len(t, topics, 3)
	assert.Equal(t, "advanced", topics[0].DifficultyLevel)
	assert.Equal(t, "dp", topics[0].TagName)
	assert.Equal(t, "intermediate", topics[1].DifficultyLevel)
	assert.Equal(t, "fundamental", topics[2].DifficultyLevel)
	assert.Equal(t, 12, topics[2].ProblemsSolved)
}

func TestFlattenTopics_MissingTier(t *testing.T) {
	tags := &leetcode.TagProblemCounts{
		Advanced:     []leetcode.TagCount{{TagName: "dp", ProblemsSolved: 5}},
		Intermediate: []leetcode.TagCount{{TagName: "graphs", ProblemsSolved: 3}},
	}

	topics := FlattenTopics(tags)
	require.Len(t, topics, 2)
	assert.Equal(t, "advanced", topics[0].DifficultyLevel)
	assert.Equal(t, "intermediate", topics[1].DifficultyLevel)
}

func TestFlattenTopics_Nil(t *testing.T) {
	assert.Empty(t, FlattenTopics(nil))
}

func TestSafeJSON(t *testing.T) {
	out := SafeJSON([]string{"go", "python"})
	assert.Equal(t, `["go","python"]`, out)
}

func TestSafeJSON_FallbackOnEncodeFailure(t *testing.T) {
	// un canal n'est pas encodable en JSON
	out := SafeJSON(map[string]chan int{"c": make(chan int)})

	var s string
	require.NoError(t, json.Unmarshal([]byte(out), &s), "fallback should still be valid JSON")
	assert.NotEmpty(t, s)
}
