package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalValidate(t *testing.T) {
	g := &Goal{Title: "Run a marathon", Category: "health"}
	require.NoError(t, g.Validate())

	g.Title = "   "
	assert.Error(t, g.Validate())

	g.Title = strings.Repeat("x", MaxGoalTitleLen+1)
	assert.Error(t, g.Validate())

	g.Title = "ok"
	g.Category = strings.Repeat("c", MaxGoalCategoryLen+1)
	assert.Error(t, g.Validate())
}

func TestGoalMarkCompleted_OnlyOnce(t *testing.T) {
	g := &Goal{Title: "Learn Go"}
	now := time.Now().UTC()

	assert.True(t, g.MarkCompleted(now))
	require.NotNil(t, g.CompletedAt)
	assert.True(t, g.IsCompleted)

	assert.False(t, g.MarkCompleted(now.Add(time.Hour)))
	assert.Equal(t, now, *g.CompletedAt)
}

func TestGoalReplaceRoadmap_Wholesale(t *testing.T) {
	g := &Goal{Roadmap: Roadmap{MilestoneStart: "old start", FullPlan: "old plan"}}
	first := g.ReplaceRoadmap(Roadmap{Milestone3Months: "new"}, time.Now())
	assert.True(t, first)
	assert.NotNil(t, g.RoadmapGeneratedAt)

	assert.Equal(t, "", g.Roadmap.MilestoneStart)
	assert.Equal(t, "", g.Roadmap.FullPlan)
	assert.Equal(t, "new", g.Roadmap.Milestone3Months)

	assert.False(t, g.ReplaceRoadmap(Roadmap{FullPlan: "again"}, time.Now()))
	assert.Equal(t, "again", g.Roadmap.FullPlan)
}

func TestRoadmapIsEmpty(t *testing.T) {
	assert.True(t, Roadmap{}.IsEmpty())
	assert.False(t, Roadmap{FullPlan: "x"}.IsEmpty())
}

func TestResourceValidate(t *testing.T) {
	r := &Resource{Title: "Docs", Link: "https://go.dev/doc"}
	require.NoError(t, r.Validate())

	r.Link = "go.dev/doc"
	assert.Error(t, r.Validate())

	r.Link = "ftp://example.com/file"
	assert.Error(t, r.Validate())

	r.Link = "https://example.com"
	r.Title = ""
	assert.Error(t, r.Validate())
}

func TestStepValidate(t *testing.T) {
	s := &RoadmapStep{Text: "Buy shoes", Order: 1}
	require.NoError(t, s.Validate())

	s.Order = -1
	assert.Error(t, s.Validate())

	s.Order = 0
	s.Text = ""
	assert.Error(t, s.Validate())
}
