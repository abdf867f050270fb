// Package domain holds the translation entity and DTOs
package domain

import (
	"time"

	"shuardict/internal/core/langdetect"
	"shuardict/internal/core/phonology"
	"shuardict/internal/core/scoring"
)

// Translation links a Shuar word to a Spanish rendering with review state
type Translation struct {
	ID            string         `json:"id"`
	WordID        string         `json:"word_id"`
	SourceText    string         `json:"source_text"`
	TargetText    string         `json:"target_text"`
	Status        scoring.Status `json:"status"`
	UsageCount    int            `json:"usage_count"`
	AverageRating float64        `json:"average_rating"`
	TotalRatings  int            `json:"total_ratings"`
	ApprovedBy    *string        `json:"approved_by,omitempty"`
	CulturalNotes string         `json:"cultural_notes,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// CreateInput creates a translation for an existing word
type CreateInput struct {
	WordID        string `json:"word_id" validate:"required,uuid" example:"6f1e3f1a-1d5f-4a9e-9a51-b7a6c24f2f10"`
	TargetText    string `json:"target_text" validate:"required,min=1,max=500" example:"flecha de cerbatana"`
	CulturalNotes string `json:"cultural_notes,omitempty" validate:"omitempty,max=2000"`
}

// RateInput records one community rating
type RateInput struct {
	Rating int `json:"rating" validate:"required,min=1,max=5" example:"4"`
}

// ApproveInput marks expert approval
type ApproveInput struct {
	ApproverID string `json:"approver_id" validate:"required,uuid"`
}

// ListInput pages translations for one word
type ListInput struct {
	WordID string `json:"word_id" validate:"required,uuid"`
	Limit  int    `json:"limit,omitempty" validate:"omitempty,min=1,max=200"`
	Offset int    `json:"offset,omitempty" validate:"omitempty,min=0"`
}

// TranslateInput asks for a dictionary translation of free text.
// The source language is detected, never declared.
type TranslateInput struct {
	Text            string `json:"text" validate:"required,min=1,max=500" example:"tsentsak"`
	MaxSimilarWords int    `json:"max_similar_words,omitempty" validate:"omitempty,min=1,max=20" example:"5"`
}

// TranslationHit is one stored rendering returned by Translate
type TranslationHit struct {
	Text          string  `json:"text"`
	Confidence    float64 `json:"confidence"`
	UsageCount    int     `json:"usage_count"`
	AverageRating float64 `json:"average_rating"`
}

// SimilarSuggestion is a fuzzy fallback hit when no exact entry exists
type SimilarSuggestion struct {
	ShuarText   string  `json:"shuar_text"`
	SpanishText string  `json:"spanish_text,omitempty"`
	Similarity  float64 `json:"similarity"`
	Explanation string  `json:"explanation,omitempty"`
}

// TranslateResult is the outcome of a lookup: exact renderings when the
// headword exists, similar-word suggestions otherwise
type TranslateResult struct {
	OriginalText     string              `json:"original_text"`
	DetectedLanguage langdetect.Language `json:"detected_language"`
	DetectionScore   float64             `json:"detection_confidence"`
	Found            bool                `json:"found"`
	Translations     []TranslationHit    `json:"translations,omitempty"`
	Phonetics        *phonology.Info     `json:"phonetic_info,omitempty"`
	SimilarWords     []SimilarSuggestion `json:"similar_words,omitempty"`
}

// QualityReport bundles the computed metrics with advisory follow-ups
type QualityReport struct {
	TranslationID   string          `json:"translation_id"`
	Metrics         scoring.Metrics `json:"metrics"`
	Recommendations []string        `json:"recommendations"`
}
