package scoring

import (
	"math"
	"testing"
)

func intp(v int) *int { return &v }

func TestConfidenceNeutralDefault(t *testing.T) {
	// nothing applicable beyond an unrecognized status
	if c := Confidence(Translation{}, nil, nil); c != 0.5 {
		t.Fatalf("confidence = %v, want exactly 0.5", c)
	}
}

func TestConfidenceStatusTable(t *testing.T) {
	cases := []struct {
		status Status
		want   float64
	}{
		{StatusApproved, 0.9},
		{StatusNeedsReview, 0.6},
		{StatusPending, 0.4},
		{StatusRejected, 0.1},
	}
	for _, tc := range cases {
		// status is the only applicable signal, so it passes through
		got := Confidence(Translation{Status: tc.status}, nil, nil)
		if math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("status %q confidence = %v, want %v", tc.status, got, tc.want)
		}
	}
}

func TestConfidenceBounded(t *testing.T) {
	tr := Translation{
		Status:        StatusApproved,
		UsageCount:    10000,
		AverageRating: 5.0,
		TotalRatings:  500,
	}
	w := &Word{Verified: true, ConfidenceLevel: 1.0, FrequencyScore: 100}
	fb := []Feedback{{Rating: intp(5), Role: RoleExpert, NativeSpeaker: true}}
	if c := Confidence(tr, w, fb); c < 0 || c > 1 {
		t.Fatalf("confidence = %v, out of [0,1]", c)
	}
}

func TestRatingConfidenceReliabilityRamp(t *testing.T) {
	// few ratings pull the score toward the neutral 0.5
	few := ratingConfidence(5.0, 1)
	many := ratingConfidence(5.0, 10)
	if few >= many {
		t.Fatalf("reliability ramp inverted: %v >= %v", few, many)
	}
	if math.Abs(many-1.0) > 1e-9 {
		t.Fatalf("full reliability at 10 ratings = %v, want 1.0", many)
	}
	if math.Abs(few-(1.0*0.1+0.5*0.9)) > 1e-9 {
		t.Fatalf("single rating confidence = %v", few)
	}
}

func TestUsageConfidence(t *testing.T) {
	if c := usageConfidence(0); c != 0.3 {
		t.Fatalf("zero usage = %v, want 0.3", c)
	}
	if c := usageConfidence(100); math.Abs(c-1.0) > 1e-9 {
		t.Fatalf("usage 100 = %v, want 1.0", c)
	}
	if usageConfidence(5) >= usageConfidence(50) {
		t.Fatalf("usage confidence not increasing")
	}
}

func TestFeedbackConfidenceRoleWeights(t *testing.T) {
	// an expert 5 outweighs a visitor 1
	fb := []Feedback{
		{Rating: intp(5), Role: RoleExpert},
		{Rating: intp(1), Role: RoleVisitor},
	}
	c := feedbackConfidence(fb)
	if c <= 0.5 {
		t.Fatalf("expert-weighted confidence = %v, want > 0.5", c)
	}
	// unrated feedback is ignored entirely
	if c := feedbackConfidence([]Feedback{{Role: RoleExpert}}); c != 0.5 {
		t.Fatalf("unrated feedback confidence = %v, want neutral 0.5", c)
	}
}

func TestCommunityRating(t *testing.T) {
	if r := CommunityRating(nil); r != 0.0 {
		t.Fatalf("no feedback rating = %v, want 0.0", r)
	}
	fb := []Feedback{
		{Rating: intp(4), Role: RoleCommunityMember},
		{Rating: intp(4), Role: RoleVisitor, NativeSpeaker: true},
	}
	r := CommunityRating(fb)
	if math.Abs(r-4.0) > 1e-9 {
		t.Fatalf("uniform 4s rating = %v, want 4.0", r)
	}
}

func TestNativeSpeakerApproval(t *testing.T) {
	if nativeSpeakerApproval([]Feedback{{Rating: intp(5), Role: RoleExpert}}) {
		t.Fatalf("non-native high rating counted as native approval")
	}
	if nativeSpeakerApproval([]Feedback{{Rating: intp(3), NativeSpeaker: true}}) {
		t.Fatalf("native rating below 4 counted as approval")
	}
	if !nativeSpeakerApproval([]Feedback{{Rating: intp(4), NativeSpeaker: true}}) {
		t.Fatalf("native rating 4 not counted as approval")
	}
}

func TestQualityMetrics(t *testing.T) {
	tr := Translation{
		SourceText:     "nuka",
		TargetText:     "hoja grande",
		Status:         StatusApproved,
		UsageCount:     20,
		AverageRating:  4.2,
		TotalRatings:   12,
		ExpertApproved: true,
	}
	w := &Word{Verified: true, ConfidenceLevel: 0.8, HasPhonology: true}
	fb := []Feedback{
		{Rating: intp(5), Role: RoleVerifiedSpeaker, NativeSpeaker: true},
		{Rating: intp(4), Role: RoleCommunityMember},
	}

	m := QualityMetrics(tr, fb, w)
	if m.FeedbackCount != 2 || m.UsageFrequency != 20 {
		t.Fatalf("counters wrong: %+v", m)
	}
	if !m.ExpertApproval || !m.NativeSpeakerApproval {
		t.Fatalf("approval flags wrong: %+v", m)
	}
	// verified word, target at least as long as source
	if math.Abs(m.PhonologicalAccuracy-1.0) > 1e-9 {
		t.Fatalf("phonological accuracy = %v, want 1.0", m.PhonologicalAccuracy)
	}
	if m.OverallQuality <= 0.5 || m.OverallQuality > 1.0 {
		t.Fatalf("overall = %v, want in (0.5, 1.0]", m.OverallQuality)
	}
}

func TestQualityMetricsDefaults(t *testing.T) {
	m := QualityMetrics(Translation{Status: StatusPending}, nil, nil)
	if m.PhonologicalAccuracy != 0.5 {
		t.Fatalf("no-word phonological accuracy = %v, want 0.5", m.PhonologicalAccuracy)
	}
	if m.CulturalAppropriateness != 0.5 {
		t.Fatalf("no-feedback cultural score = %v, want 0.5", m.CulturalAppropriateness)
	}
	if m.CommunityRating != 0.0 {
		t.Fatalf("no-feedback rating = %v, want 0.0", m.CommunityRating)
	}
}

func TestCulturalAppropriateness(t *testing.T) {
	fb := []Feedback{
		{Rating: intp(5), CulturalContext: "used in ceremonial speech"},
		{Rating: intp(3), CulturalContext: "also everyday usage"},
		{Rating: intp(1)}, // no cultural context, ignored
	}
	got := culturalAppropriateness(Translation{}, fb)
	want := (4.0 - 1) / 4 // mean of 5 and 3 rescaled
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("cultural score = %v, want %v", got, want)
	}
	withNotes := culturalAppropriateness(Translation{HasCulturalNotes: true}, fb)
	if math.Abs(withNotes-(want+0.2)) > 1e-9 {
		t.Fatalf("cultural notes bonus = %v, want %v", withNotes, want+0.2)
	}
}

func TestOverallQualityMonotonicInRatings(t *testing.T) {
	tr := Translation{Status: StatusApproved, UsageCount: 5, AverageRating: 3, TotalRatings: 5}
	low := QualityMetrics(tr, []Feedback{{Rating: intp(2), Role: RoleCommunityMember}}, nil)
	high := QualityMetrics(tr, []Feedback{{Rating: intp(5), Role: RoleCommunityMember}}, nil)
	if high.OverallQuality < low.OverallQuality {
		t.Fatalf("overall quality decreased with better ratings: %v < %v",
			high.OverallQuality, low.OverallQuality)
	}
}

func TestRecommendImprovements(t *testing.T) {
	weak := Metrics{
		ConfidenceScore:         0.3,
		CommunityRating:         2.0,
		UsageFrequency:          1,
		PhonologicalAccuracy:    0.4,
		CulturalAppropriateness: 0.4,
	}
	fb := []Feedback{
		{Rating: intp(1)},
		{SuggestedTranslation: "alternative"},
	}
	recs := RecommendImprovements(weak, fb)
	if len(recs) != 8 {
		t.Fatalf("got %d recommendations, want all 8: %v", len(recs), recs)
	}

	strong := Metrics{
		ConfidenceScore:         0.9,
		CommunityRating:         4.5,
		ExpertApproval:          true,
		UsageFrequency:          50,
		PhonologicalAccuracy:    0.9,
		CulturalAppropriateness: 0.9,
	}
	if recs := RecommendImprovements(strong, nil); len(recs) != 0 {
		t.Fatalf("strong translation got recommendations: %v", recs)
	}
}
