package service

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	defaultPage  = 1
	defaultLimit = 20
)

// sortFields is the allow-list of sortable fields. Anything else falls back
// to title rather than being passed through to the store.
var sortFields = map[string]string{
	"title":     "title",
	"category":  "category",
	"prep":      "prep",
	"cook":      "cook",
	"servings":  "servings",
	"rating":    "averageRating",
	"published": "publishedAt",
}

// ListParams are the parsed catalog listing parameters.
type ListParams struct {
	Page      int
	Limit     int
	Search    string
	Category  string
	Tags      []string
	Steps     *int
	SortBy    string
	SortOrder string
}

// ParseListParams parses raw query values into ListParams. Malformed numeric
// inputs fall back to defaults instead of failing the request.
func ParseListParams(query url.Values) ListParams {
	p := ListParams{
		Page:      defaultPage,
		Limit:     defaultLimit,
		Search:    strings.TrimSpace(query.Get("search")),
		Category:  strings.TrimSpace(query.Get("category")),
		SortBy:    query.Get("sortBy"),
		SortOrder: query.Get("sortOrder"),
	}

	if page, err := strconv.Atoi(query.Get("page")); err == nil && page >= 1 {
		p.Page = page
	}
	if limit, err := strconv.Atoi(query.Get("limit")); err == nil && limit > 0 {
		p.Limit = limit
	}
	if steps, err := strconv.Atoi(query.Get("steps")); err == nil {
		p.Steps = &steps
	}

	if raw := query.Get("tags"); raw != "" {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				p.Tags = append(p.Tags, tag)
			}
		}
	}

	if p.SortBy == "" {
		p.SortBy = "title"
	}
	if p.SortOrder == "" {
		p.SortOrder = "asc"
	}

	return p
}

// Skip returns the number of documents to skip for the requested page.
func (p ListParams) Skip() int {
	return (p.Page - 1) * p.Limit
}

// BuildListPipeline translates ListParams into an ordered sequence of
// aggregation stages. Match stages come first in a fixed order (search,
// category, tags, steps), then the sort stage, then skip and limit. Sort
// must precede pagination for pages to be stable.
func BuildListPipeline(p ListParams) mongo.Pipeline {
	pipeline := mongo.Pipeline{}

	if p.Search != "" {
		pipeline = append(pipeline, matchSubstring("title", p.Search))
	}
	if p.Category != "" {
		pipeline = append(pipeline, matchSubstring("category", p.Category))
	}
	if len(p.Tags) > 0 {
		patterns := make(bson.A, 0, len(p.Tags))
		for _, tag := range p.Tags {
			patterns = append(patterns, primitive.Regex{
				Pattern: "^" + regexp.QuoteMeta(tag) + "$",
				Options: "i",
			})
		}
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.D{
			{Key: "tags", Value: bson.D{{Key: "$in", Value: patterns}}},
		}}})
	}
	if p.Steps != nil {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.D{
			{Key: "instructions", Value: bson.D{{Key: "$size", Value: *p.Steps}}},
		}}})
	}

	field, ok := sortFields[p.SortBy]
	if !ok {
		field = "title"
	}
	order := 1
	if p.SortOrder == "desc" {
		order = -1
	}
	pipeline = append(pipeline, bson.D{{Key: "$sort", Value: bson.D{
		{Key: field, Value: order},
	}}})

	pipeline = append(pipeline,
		bson.D{{Key: "$skip", Value: int64(p.Skip())}},
		bson.D{{Key: "$limit", Value: int64(p.Limit)}},
	)

	return pipeline
}

// matchSubstring builds a case-insensitive substring match stage. The term
// is quoted so user input never acts as a regex.
func matchSubstring(field, term string) bson.D {
	return bson.D{{Key: "$match", Value: bson.D{
		{Key: field, Value: primitive.Regex{
			Pattern: regexp.QuoteMeta(term),
			Options: "i",
		}},
	}}}
}
