package domain

import (
	"strings"
	"time"
)

// DimensionMap maps personality dimensions to their values.
type DimensionMap map[Dimension]string

// NewDimensionMap returns a map holding every known dimension set to "".
func NewDimensionMap() DimensionMap {
	m := make(DimensionMap, len(AllDimensions))
	for _, d := range AllDimensions {
		m[d] = ""
	}
	return m
}

// NonEmpty returns a copy that keeps only populated, known dimensions, with
// surrounding whitespace trimmed. A whitespace-only value counts as empty.
func (m DimensionMap) NonEmpty() DimensionMap {
	out := make(DimensionMap)
	for d, v := range m {
		if v = strings.TrimSpace(v); d.IsKnown() && v != "" {
			out[d] = v
		}
	}
	return out
}

// PersonalityProfile is the per-user derived profile.
type PersonalityProfile struct {
	UserID     string
	Dimensions DimensionMap
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewPersonalityProfile creates a profile from a mapping. Empty values are not
// recorded, so unanswered dimensions are absent on first creation.
func NewPersonalityProfile(userID string, m DimensionMap, now time.Time) *PersonalityProfile {
	return &PersonalityProfile{
		UserID:     userID,
		Dimensions: m.NonEmpty(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// ApplyPatch merges m into the profile. Non-empty values overwrite stored
// ones after trimming; empty or whitespace-only values never clear a stored
// value. Returns the number of dimensions whose value changed.
func (p *PersonalityProfile) ApplyPatch(m DimensionMap, now time.Time) int {
	if p.Dimensions == nil {
		p.Dimensions = make(DimensionMap)
	}
	changed := 0
	for d, v := range m.NonEmpty() {
		if p.Dimensions[d] != v {
			p.Dimensions[d] = v
			changed++
		}
	}
	p.UpdatedAt = now
	return changed
}

// Get returns the stored value for d, or "".
func (p *PersonalityProfile) Get(d Dimension) string {
	if p == nil || p.Dimensions == nil {
		return ""
	}
	return p.Dimensions[d]
}
