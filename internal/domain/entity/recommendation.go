// Package entity contains the core business objects of the project.
package entity

import "time"

// Recommendation is a piece of advice derived from the current crops, the
// active alerts and the weather snapshot. RelatedCrop and RelatedAlert are
// lookup references, not ownership: deleting the crop does not delete the
// advice.
type Recommendation struct {
	ID           string                 `json:"id"`
	Title        string                 `json:"title"`
	Description  string                 `json:"description"`
	Category     RecommendationCategory `json:"type"`
	Priority     SeverityLevel          `json:"priority"`
	Actions      []string               `json:"actions"`
	RelatedCrop  string                 `json:"relatedCrop,omitempty"`
	RelatedAlert string                 `json:"relatedAlert,omitempty"`
	IsRead       bool                   `json:"isRead"`
	CreatedAt    time.Time              `json:"createdAt"`
	ValidUntil   *time.Time             `json:"validUntil,omitempty"`
}

// IsExpired reports whether the advice has outlived its validity window.
// Advice without a window never expires on its own.
func (r *Recommendation) IsExpired(now time.Time) bool {
	return r.ValidUntil != nil && !r.ValidUntil.After(now)
}
