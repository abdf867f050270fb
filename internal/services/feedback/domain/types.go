// Package domain holds the feedback entity and DTOs
package domain

import (
	"time"

	"shuardict/internal/core/scoring"
)

// Feedback is one community annotation on a translation
type Feedback struct {
	ID                   string       `json:"id"`
	TranslationID        string       `json:"translation_id"`
	Rating               *int         `json:"rating,omitempty"`
	Role                 scoring.Role `json:"user_role"`
	NativeSpeaker        bool         `json:"is_native_speaker"`
	Comment              string       `json:"comment,omitempty"`
	CulturalContext      string       `json:"cultural_context,omitempty"`
	SuggestedTranslation string       `json:"suggested_translation,omitempty"`
	CreatedAt            time.Time    `json:"created_at"`
}

// CreateInput records feedback; a rating is optional when the item
// carries only text
type CreateInput struct {
	TranslationID        string `json:"translation_id" validate:"required,uuid"`
	Rating               *int   `json:"rating,omitempty" validate:"omitempty,min=1,max=5" example:"4"`
	Role                 string `json:"user_role" validate:"required,oneof=visitor community_member verified_speaker expert admin"`
	NativeSpeaker        bool   `json:"is_native_speaker"`
	Comment              string `json:"comment,omitempty" validate:"omitempty,max=2000"`
	CulturalContext      string `json:"cultural_context,omitempty" validate:"omitempty,max=2000"`
	SuggestedTranslation string `json:"suggested_translation,omitempty" validate:"omitempty,max=500"`
}

// ListInput pages feedback for one translation
type ListInput struct {
	TranslationID string `json:"translation_id" validate:"required,uuid"`
	Limit         int    `json:"limit,omitempty" validate:"omitempty,min=1,max=200"`
	Offset        int    `json:"offset,omitempty" validate:"omitempty,min=0"`
}
