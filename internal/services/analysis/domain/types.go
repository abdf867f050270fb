// Package domain holds DTOs for the linguistic analysis endpoints
package domain

import (
	"shuardict/internal/core/langdetect"
	"shuardict/internal/core/phonology"
	"shuardict/internal/core/similarity"
)

// AnalyzeInput asks for the phonological breakdown of one word
type AnalyzeInput struct {
	Word string `json:"word" validate:"required,min=1,max=100" example:"tsentsak"`
}

// Analysis is the full phonological report for one word
type Analysis struct {
	Word              string                `json:"word"`
	IPA               string                `json:"ipa_transcription"`
	SyllableCount     int                   `json:"syllable_count"`
	SyllablePattern   string                `json:"syllable_pattern"`
	VocalTypes        []phonology.VocalType `json:"vocal_types"`
	Digraphs          []string              `json:"digraphs"`
	ConsonantClusters []string              `json:"consonant_clusters"`
	Complexity        float64               `json:"complexity"`
}

// DetectInput asks which language a text belongs to
type DetectInput struct {
	Text string `json:"text" validate:"required,min=1,max=2000" example:"entsa chicham"`
}

// DetectResult mirrors the classifier output
type DetectResult = langdetect.Result

// CompareInput asks for pairwise phonological similarity
type CompareInput struct {
	Word1 string `json:"word1" validate:"required,min=1,max=100" example:"nuka"`
	Word2 string `json:"word2" validate:"required,min=1,max=100" example:"yuka"`
}

// CompareResult carries a single similarity value
type CompareResult struct {
	Word1      string  `json:"word1"`
	Word2      string  `json:"word2"`
	Similarity float64 `json:"similarity"`
}

// SimilarInput searches the dictionary for words close to a target
type SimilarInput struct {
	Word                 string  `json:"word" validate:"required,min=1,max=100" example:"nuka"`
	MinSimilarity        float64 `json:"min_similarity,omitempty" validate:"omitempty,min=0,max=1" example:"0.3"`
	MaxResults           int     `json:"max_results,omitempty" validate:"omitempty,min=1,max=100" example:"10"`
	IncludeMorphological *bool   `json:"include_morphological,omitempty"`
}

// SimilarWord is one ranked search hit
type SimilarWord struct {
	ShuarText   string           `json:"shuar_text"`
	SpanishText string           `json:"spanish_text,omitempty"`
	Score       similarity.Score `json:"score"`
	Explanation string           `json:"explanation"`
}

// RhymesInput searches for rhyming words
type RhymesInput struct {
	Word              string `json:"word" validate:"required,min=1,max=100" example:"nuka"`
	MinSyllablesMatch int    `json:"min_syllables_match,omitempty" validate:"omitempty,min=1,max=5" example:"1"`
}

// MinimalPairsInput searches stored words for minimal pairs
type MinimalPairsInput struct {
	MaxDifferences int `json:"max_differences,omitempty" validate:"omitempty,min=1,max=5" example:"1"`
	Limit          int `json:"limit,omitempty" validate:"omitempty,min=2,max=500" example:"200"`
}

// MinimalPair is two words separated by few phonological features
type MinimalPair struct {
	A string `json:"a"`
	B string `json:"b"`
}

// GroupsInput buckets stored words by phonological pattern
type GroupsInput struct {
	Limit int `json:"limit,omitempty" validate:"omitempty,min=1,max=500" example:"200"`
}
