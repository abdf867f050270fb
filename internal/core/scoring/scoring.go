// Package scoring folds a translation's quality signals, from review
// status and community ratings to role-weighted feedback, into single
// confidence and quality scores.
package scoring

import (
	"math"
	"strings"

	"github.com/montanaflynn/stats"
)

// Status is a translation's review state
type Status string

const (
	StatusPending     Status = "pending"
	StatusApproved    Status = "approved"
	StatusRejected    Status = "rejected"
	StatusNeedsReview Status = "needs_review"
)

// Role tags who left a feedback item
type Role string

const (
	RoleVisitor         Role = "visitor"
	RoleCommunityMember Role = "community_member"
	RoleVerifiedSpeaker Role = "verified_speaker"
	RoleExpert          Role = "expert"
	RoleAdmin           Role = "admin"
)

// roleWeights scales feedback influence by contributor role
var roleWeights = map[Role]float64{
	RoleVisitor:         1.0,
	RoleCommunityMember: 1.2,
	RoleVerifiedSpeaker: 2.0,
	RoleExpert:          3.0,
	RoleAdmin:           3.0,
}

// nativeSpeakerBoost multiplies the role weight for native-speaker feedback
const nativeSpeakerBoost = 1.5

// Translation is the read-only view of a translation the scorer consumes
type Translation struct {
	SourceText       string
	TargetText       string
	Status           Status
	UsageCount       int
	AverageRating    float64
	TotalRatings     int
	ExpertApproved   bool
	HasCulturalNotes bool
}

// Word is the read-only view of the source word, when available
type Word struct {
	Verified        bool
	ConfidenceLevel float64
	FrequencyScore  float64
	HasPhonology    bool
}

// Feedback is one community feedback item. Rating is nil when the item
// carries only text.
type Feedback struct {
	Rating               *int
	Role                 Role
	NativeSpeaker        bool
	CulturalContext      string
	SuggestedTranslation string
}

// Metrics is the full quality report for one translation
type Metrics struct {
	ConfidenceScore         float64 `json:"confidence_score"`
	CommunityRating         float64 `json:"community_rating"`
	ExpertApproval          bool    `json:"expert_approval"`
	UsageFrequency          int     `json:"usage_frequency"`
	FeedbackCount           int     `json:"feedback_count"`
	NativeSpeakerApproval   bool    `json:"native_speaker_approval"`
	PhonologicalAccuracy    float64 `json:"phonological_accuracy"`
	CulturalAppropriateness float64 `json:"cultural_appropriateness"`
	OverallQuality          float64 `json:"overall_quality_score"`
}

// Overall quality blend weights
const (
	confidenceWeight    = 0.25
	ratingWeight        = 0.30
	phonologicalWeight  = 0.15
	culturalWeight      = 0.15
	expertApprovalBonus = 0.2
)

type factor struct {
	score  float64
	weight float64
}

// Confidence computes the weighted confidence for a translation. Signals
// without applicable data are skipped and the weights renormalize over
// what remains; when nothing contributes the result is a neutral 0.5.
func Confidence(t Translation, w *Word, feedback []Feedback) float64 {
	factors := []factor{
		{statusConfidence(t.Status), 0.3},
	}
	if t.TotalRatings > 0 {
		factors = append(factors, factor{ratingConfidence(t.AverageRating, t.TotalRatings), 0.25})
	}
	if t.UsageCount > 0 {
		factors = append(factors, factor{usageConfidence(t.UsageCount), 0.15})
	}
	if w != nil {
		factors = append(factors, factor{wordConfidence(*w), 0.15})
	}
	if len(feedback) > 0 {
		factors = append(factors, factor{feedbackConfidence(feedback), 0.15})
	}

	totalWeight, weightedSum := 0.0, 0.0
	for _, f := range factors {
		totalWeight += f.weight
		weightedSum += f.score * f.weight
	}
	if totalWeight == 0 {
		return 0.5
	}
	return math.Min(1.0, weightedSum/totalWeight)
}

func statusConfidence(s Status) float64 {
	switch s {
	case StatusApproved:
		return 0.9
	case StatusNeedsReview:
		return 0.6
	case StatusPending:
		return 0.4
	case StatusRejected:
		return 0.1
	default:
		return 0.5
	}
}

// ratingConfidence rescales the 1-5 average to [0,1] and blends it toward
// neutral by a reliability factor that reaches full strength at 10 ratings
func ratingConfidence(average float64, total int) float64 {
	if total == 0 {
		return 0.5
	}
	base := (average - 1) / 4
	reliability := math.Min(1.0, float64(total)/10)
	return base*reliability + 0.5*(1-reliability)
}

// usageConfidence ramps logarithmically from 0.3, saturating at 100 uses
func usageConfidence(uses int) float64 {
	if uses == 0 {
		return 0.3
	}
	return math.Min(1.0, 0.3+0.7*math.Log(float64(uses+1))/math.Log(101))
}

func wordConfidence(w Word) float64 {
	c := 0.5
	if w.Verified {
		c += 0.3
	}
	c += w.ConfidenceLevel * 0.2
	if w.FrequencyScore > 10 {
		c += 0.1
	}
	return math.Min(1.0, c)
}

// feedbackConfidence is the role-weighted mean of rescaled ratings; items
// without a rating are skipped
func feedbackConfidence(feedback []Feedback) float64 {
	sum, totalWeight := 0.0, 0.0
	for _, f := range feedback {
		if f.Rating == nil {
			continue
		}
		weight := feedbackWeight(f)
		sum += (float64(*f.Rating) - 1) / 4 * weight
		totalWeight += weight
	}
	if totalWeight == 0 {
		return 0.5
	}
	return sum / totalWeight
}

func feedbackWeight(f Feedback) float64 {
	weight, ok := roleWeights[f.Role]
	if !ok {
		weight = 1.0
	}
	if f.NativeSpeaker {
		weight *= nativeSpeakerBoost
	}
	return weight
}

// QualityMetrics computes the full quality report for a translation
func QualityMetrics(t Translation, feedback []Feedback, w *Word) Metrics {
	confidence := Confidence(t, w, feedback)
	rating := CommunityRating(feedback)

	phonological := 0.5
	if w != nil && w.HasPhonology {
		phonological = phonologicalAccuracy(t, *w)
	}
	cultural := culturalAppropriateness(t, feedback)

	return Metrics{
		ConfidenceScore:         confidence,
		CommunityRating:         rating,
		ExpertApproval:          t.ExpertApproved,
		UsageFrequency:          t.UsageCount,
		FeedbackCount:           len(feedback),
		NativeSpeakerApproval:   nativeSpeakerApproval(feedback),
		PhonologicalAccuracy:    phonological,
		CulturalAppropriateness: cultural,
		OverallQuality:          overallQuality(confidence, rating, t.ExpertApproved, t.UsageCount, phonological, cultural),
	}
}

// CommunityRating is the role-weighted mean of raw 1-5 ratings, 0.0 when
// no rated feedback exists
func CommunityRating(feedback []Feedback) float64 {
	sum, totalWeight := 0.0, 0.0
	for _, f := range feedback {
		if f.Rating == nil {
			continue
		}
		weight := feedbackWeight(f)
		sum += float64(*f.Rating) * weight
		totalWeight += weight
	}
	if totalWeight == 0 {
		return 0.0
	}
	return sum / totalWeight
}

func nativeSpeakerApproval(feedback []Feedback) bool {
	for _, f := range feedback {
		if f.NativeSpeaker && f.Rating != nil && *f.Rating >= 4 {
			return true
		}
	}
	return false
}

// phonologicalAccuracy is a coarse heuristic pending real articulatory
// comparison: longer targets tend to preserve more phonological material,
// verified sources are trusted more
func phonologicalAccuracy(t Translation, w Word) float64 {
	accuracy := 0.5
	if len([]rune(t.TargetText)) >= len([]rune(t.SourceText)) {
		accuracy += 0.2
	}
	if w.Verified {
		accuracy += 0.3
	}
	return math.Min(1.0, accuracy)
}

// culturalAppropriateness starts neutral; when feedback carrying cultural
// context exists its mean rating replaces the base, and the translation's
// own cultural notes add a bonus
func culturalAppropriateness(t Translation, feedback []Feedback) float64 {
	appropriateness := 0.5

	var culturalRatings []float64
	for _, f := range feedback {
		if strings.TrimSpace(f.CulturalContext) == "" || f.Rating == nil {
			continue
		}
		culturalRatings = append(culturalRatings, float64(*f.Rating))
	}
	if avg, err := stats.Mean(culturalRatings); err == nil {
		appropriateness = (avg - 1) / 4
	}

	if t.HasCulturalNotes {
		appropriateness += 0.2
	}
	return math.Min(1.0, appropriateness)
}

func overallQuality(confidence, rating float64, expertApproved bool, uses int, phonological, cultural float64) float64 {
	normalizedRating := 0.5
	if rating > 0 {
		normalizedRating = (rating - 1) / 4
	}
	expertBonus := 0.0
	if expertApproved {
		expertBonus = expertApprovalBonus
	}
	usageFactor := math.Min(0.2, math.Log(float64(uses+1))/25)

	quality := confidence*confidenceWeight +
		normalizedRating*ratingWeight +
		phonological*phonologicalWeight +
		cultural*culturalWeight +
		expertBonus +
		usageFactor
	return math.Min(1.0, quality)
}

// RecommendImprovements lists advisory follow-ups triggered by quality
// threshold breaches. No side effects.
func RecommendImprovements(m Metrics, feedback []Feedback) []string {
	var recs []string
	if m.ConfidenceScore < 0.6 {
		recs = append(recs, "Consider seeking expert review to improve confidence")
	}
	if m.CommunityRating < 3.0 {
		recs = append(recs, "Review community feedback for suggested improvements")
	}
	if !m.ExpertApproval {
		recs = append(recs, "Submit for expert linguistic review")
	}
	if m.UsageFrequency < 5 {
		recs = append(recs, "Translation needs more community validation through usage")
	}
	if m.PhonologicalAccuracy < 0.6 {
		recs = append(recs, "Review phonological accuracy with native speakers")
	}
	if m.CulturalAppropriateness < 0.6 {
		recs = append(recs, "Add cultural context or seek cultural validation")
	}
	for _, f := range feedback {
		if f.Rating != nil && *f.Rating <= 2 {
			recs = append(recs, "Address concerns raised in low-rating feedback")
			break
		}
	}
	for _, f := range feedback {
		if strings.TrimSpace(f.SuggestedTranslation) != "" {
			recs = append(recs, "Consider alternative translations suggested by community")
			break
		}
	}
	return recs
}
