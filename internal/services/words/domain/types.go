// Package domain holds the word entity and DTOs for http and service contracts
package domain

import (
	"time"

	"shuardict/internal/core/phonology"
)

// Morphology is the stored decomposition of an agglutinated Shuar word
type Morphology struct {
	Root     string   `json:"root_word"`
	Suffixes []string `json:"applied_suffixes"`
}

// Word is a dictionary headword with its linguistic annotations
type Word struct {
	ID              string           `json:"id"`
	ShuarText       string           `json:"shuar_text"`
	SpanishText     string           `json:"spanish_text"`
	Phonology       *phonology.Info  `json:"phonological_info,omitempty"`
	Morphology      *Morphology      `json:"morphological_info,omitempty"`
	IsVerified      bool             `json:"is_verified"`
	ConfidenceLevel float64          `json:"confidence_level"`
	FrequencyScore  float64          `json:"frequency_score"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// CreateInput creates a new word; phonology is derived, never supplied
type CreateInput struct {
	ShuarText       string      `json:"shuar_text" validate:"required,min=1,max=100" example:"tsentsak"`
	SpanishText     string      `json:"spanish_text" validate:"required,min=1,max=200" example:"flecha"`
	Morphology      *Morphology `json:"morphological_info,omitempty"`
	ConfidenceLevel float64     `json:"confidence_level" validate:"min=0,max=1" example:"0.8"`
}

// UpdateInput mutates an existing word; zero fields are left untouched
type UpdateInput struct {
	SpanishText     *string     `json:"spanish_text,omitempty" validate:"omitempty,min=1,max=200"`
	Morphology      *Morphology `json:"morphological_info,omitempty"`
	ConfidenceLevel *float64    `json:"confidence_level,omitempty" validate:"omitempty,min=0,max=1"`
}

// ListInput filters and pages the word list
type ListInput struct {
	Query    string `json:"query,omitempty" validate:"omitempty,max=100" example:"tsen"`
	Verified *bool  `json:"verified,omitempty"`
	Limit    int    `json:"limit,omitempty" validate:"omitempty,min=1,max=200" example:"50"`
	Offset   int    `json:"offset,omitempty" validate:"omitempty,min=0"`
}
