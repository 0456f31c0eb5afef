package service

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseListParamsDefaults(t *testing.T) {
	p := ParseListParams(url.Values{})

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.Limit)
	assert.Empty(t, p.Search)
	assert.Empty(t, p.Category)
	assert.Empty(t, p.Tags)
	assert.Nil(t, p.Steps)
	assert.Equal(t, "title", p.SortBy)
	assert.Equal(t, "asc", p.SortOrder)
}

func TestParseListParamsMalformedNumbers(t *testing.T) {
	query := url.Values{
		"page":  {"abc"},
		"limit": {"-5"},
		"steps": {"many"},
	}
	p := ParseListParams(query)

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.Limit)
	assert.Nil(t, p.Steps)
}

func TestParseListParamsValues(t *testing.T) {
	query := url.Values{
		"page":      {"3"},
		"limit":     {"10"},
		"search":    {"  chocolate  "},
		"category":  {" Dessert "},
		"tags":      {"vegan, quick , ,italian"},
		"steps":     {"5"},
		"sortBy":    {"rating"},
		"sortOrder": {"desc"},
	}
	p := ParseListParams(query)

	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, "chocolate", p.Search)
	assert.Equal(t, "Dessert", p.Category)
	assert.Equal(t, []string{"vegan", "quick", "italian"}, p.Tags)
	require.NotNil(t, p.Steps)
	assert.Equal(t, 5, *p.Steps)
	assert.Equal(t, "rating", p.SortBy)
	assert.Equal(t, "desc", p.SortOrder)
}

func TestListParamsSkip(t *testing.T) {
	assert.Equal(t, 0, ListParams{Page: 1, Limit: 20}.Skip())
	assert.Equal(t, 20, ListParams{Page: 2, Limit: 20}.Skip())
	assert.Equal(t, 50, ListParams{Page: 6, Limit: 10}.Skip())
}

// stageKey returns the operator name of an aggregation stage.
func stageKey(t *testing.T, stage bson.D) string {
	t.Helper()
	require.Len(t, stage, 1)
	return stage[0].Key
}

func TestBuildListPipelineStageOrder(t *testing.T) {
	steps := 4
	p := ListParams{
		Page:      2,
		Limit:     10,
		Search:    "cake",
		Category:  "dessert",
		Tags:      []string{"baking"},
		Steps:     &steps,
		SortBy:    "rating",
		SortOrder: "desc",
	}

	pipeline := BuildListPipeline(p)
	require.Len(t, pipeline, 7)

	for i := 0; i < 4; i++ {
		assert.Equal(t, "$match", stageKey(t, pipeline[i]))
	}
	assert.Equal(t, "$sort", stageKey(t, pipeline[4]))
	assert.Equal(t, "$skip", stageKey(t, pipeline[5]))
	assert.Equal(t, "$limit", stageKey(t, pipeline[6]))

	assert.Equal(t, int64(10), pipeline[5][0].Value)
	assert.Equal(t, int64(10), pipeline[6][0].Value)
}

func TestBuildListPipelineMinimal(t *testing.T) {
	pipeline := BuildListPipeline(ListParams{Page: 1, Limit: 20, SortBy: "title", SortOrder: "asc"})
	require.Len(t, pipeline, 3)
	assert.Equal(t, "$sort", stageKey(t, pipeline[0]))
	assert.Equal(t, "$skip", stageKey(t, pipeline[1]))
	assert.Equal(t, "$limit", stageKey(t, pipeline[2]))

	sort, ok := pipeline[0][0].Value.(bson.D)
	require.True(t, ok)
	require.Len(t, sort, 1)
	assert.Equal(t, "title", sort[0].Key)
	assert.Equal(t, 1, sort[0].Value)
}

func TestBuildListPipelineSearchQuotesRegex(t *testing.T) {
	pipeline := BuildListPipeline(ListParams{Page: 1, Limit: 20, Search: "a.b*", SortBy: "title"})

	match, ok := pipeline[0][0].Value.(bson.D)
	require.True(t, ok)
	assert.Equal(t, "title", match[0].Key)

	regex, ok := match[0].Value.(primitive.Regex)
	require.True(t, ok)
	assert.Equal(t, `a\.b\*`, regex.Pattern)
	assert.Equal(t, "i", regex.Options)
}

func TestBuildListPipelineTagsExactMatch(t *testing.T) {
	pipeline := BuildListPipeline(ListParams{Page: 1, Limit: 20, Tags: []string{"Vegan", "quick"}, SortBy: "title"})

	match, ok := pipeline[0][0].Value.(bson.D)
	require.True(t, ok)
	assert.Equal(t, "tags", match[0].Key)

	in, ok := match[0].Value.(bson.D)
	require.True(t, ok)
	assert.Equal(t, "$in", in[0].Key)

	patterns, ok := in[0].Value.(bson.A)
	require.True(t, ok)
	require.Len(t, patterns, 2)

	first, ok := patterns[0].(primitive.Regex)
	require.True(t, ok)
	assert.Equal(t, "^Vegan$", first.Pattern)
	assert.Equal(t, "i", first.Options)
}

func TestBuildListPipelineStepsUsesSize(t *testing.T) {
	steps := 3
	pipeline := BuildListPipeline(ListParams{Page: 1, Limit: 20, Steps: &steps, SortBy: "title"})

	match, ok := pipeline[0][0].Value.(bson.D)
	require.True(t, ok)
	assert.Equal(t, "instructions", match[0].Key)

	size, ok := match[0].Value.(bson.D)
	require.True(t, ok)
	assert.Equal(t, "$size", size[0].Key)
	assert.Equal(t, 3, size[0].Value)
}

func TestBuildListPipelineSortAllowList(t *testing.T) {
	tests := []struct {
		sortBy string
		field  string
	}{
		{"title", "title"},
		{"rating", "averageRating"},
		{"published", "publishedAt"},
		{"averageRating", "title"},
		{"'; drop recipes", "title"},
	}

	for _, tt := range tests {
		pipeline := BuildListPipeline(ListParams{Page: 1, Limit: 20, SortBy: tt.sortBy})
		sort, ok := pipeline[0][0].Value.(bson.D)
		require.True(t, ok, "sortBy=%s", tt.sortBy)
		assert.Equal(t, tt.field, sort[0].Key, "sortBy=%s", tt.sortBy)
	}
}
