package service

import (
	"context"
	"fmt"
	"testing"

	"shuardict/internal/core/scoring"
	perr "shuardict/internal/platform/errors"
	"shuardict/internal/platform/store"
	"shuardict/internal/services/translations/domain"
	"shuardict/internal/services/translations/repo"
)

type fakeRepo struct {
	byID     map[string]domain.Translation
	feedback map[string][]scoring.Feedback
	words    map[string]scoring.Word
	nextID   int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		byID:     map[string]domain.Translation{},
		feedback: map[string][]scoring.Feedback{},
		words:    map[string]scoring.Word{},
	}
}

func (f *fakeRepo) Insert(_ context.Context, t domain.Translation) (domain.Translation, error) {
	f.nextID++
	t.ID = fmt.Sprintf("t%d", f.nextID)
	f.byID[t.ID] = t
	return t, nil
}

func (f *fakeRepo) Get(_ context.Context, id string) (domain.Translation, error) {
	t, ok := f.byID[id]
	if !ok {
		return domain.Translation{}, perr.NotFoundf("translation %s", id)
	}
	return t, nil
}

func (f *fakeRepo) List(_ context.Context, in domain.ListInput) ([]domain.Translation, error) {
	var out []domain.Translation
	for _, t := range f.byID {
		if t.WordID == in.WordID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeRepo) Update(_ context.Context, t domain.Translation) (domain.Translation, error) {
	f.byID[t.ID] = t
	return t, nil
}

func (f *fakeRepo) Delete(_ context.Context, id string) error {
	delete(f.byID, id)
	return nil
}

func (f *fakeRepo) SourceWord(_ context.Context, wordID string) (scoring.Word, error) {
	w, ok := f.words[wordID]
	if !ok {
		return scoring.Word{}, perr.NotFoundf("word %s", wordID)
	}
	return w, nil
}

func (f *fakeRepo) FeedbackFor(_ context.Context, translationID string) ([]scoring.Feedback, error) {
	return f.feedback[translationID], nil
}

type fakeBinder struct{ r *fakeRepo }

func (b fakeBinder) Bind(store.RowQuerier) repo.Repo { return b.r }

type noopDB struct{}

func (noopDB) Exec(context.Context, string, ...any) (store.CommandTag, error) { return nil, nil }
func (noopDB) Query(context.Context, string, ...any) (store.Rows, error)      { return nil, nil }
func (noopDB) QueryRow(context.Context, string, ...any) store.Row             { return nil }
func (noopDB) Tx(_ context.Context, fn func(q store.RowQuerier) error) error {
	return fn(noopDB{})
}

type fakeWords struct{ refs map[string]WordRef }

func (w fakeWords) ShuarText(_ context.Context, wordID string) (string, error) {
	ref, ok := w.refs[wordID]
	if !ok {
		return "", perr.NotFoundf("word %s", wordID)
	}
	return ref.ShuarText, nil
}

func (w fakeWords) ByShuarText(_ context.Context, text string) (WordRef, error) {
	for _, ref := range w.refs {
		if ref.ShuarText == text {
			return ref, nil
		}
	}
	return WordRef{}, perr.NotFoundf("word %q", text)
}

func (w fakeWords) SearchSpanish(_ context.Context, query string, _ int) ([]WordRef, error) {
	var out []WordRef
	for _, ref := range w.refs {
		if ref.SpanishText == query {
			out = append(out, ref)
		}
	}
	return out, nil
}

type fakeSimilar struct{ hits []domain.SimilarSuggestion }

func (f fakeSimilar) Similar(context.Context, string, int) ([]domain.SimilarSuggestion, error) {
	return f.hits, nil
}

func newTestSvc() (*Svc, *fakeRepo) {
	fr := newFakeRepo()
	words := fakeWords{refs: map[string]WordRef{
		"w1": {ID: "w1", ShuarText: "tsentsak", SpanishText: "flecha", Confidence: 0.8},
	}}
	similar := fakeSimilar{hits: []domain.SimilarSuggestion{
		{ShuarText: "tsentsa", Similarity: 0.7},
	}}
	return New(noopDB{}, fakeBinder{r: fr}, words, similar), fr
}

func TestCreateCapturesSourceText(t *testing.T) {
	svc, _ := newTestSvc()

	tr, err := svc.Create(context.Background(), domain.CreateInput{
		WordID:     "w1",
		TargetText: "  flecha de cerbatana  ",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if tr.SourceText != "tsentsak" {
		t.Fatalf("source text = %q", tr.SourceText)
	}
	if tr.TargetText != "flecha de cerbatana" {
		t.Fatalf("target text = %q", tr.TargetText)
	}
	if tr.Status != scoring.StatusPending {
		t.Fatalf("status = %q, want pending", tr.Status)
	}

	if _, err := svc.Create(context.Background(), domain.CreateInput{WordID: "missing", TargetText: "x"}); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("expected not found for unknown word, got %v", err)
	}
}

func TestTranslateExactHit(t *testing.T) {
	svc, fr := newTestSvc()

	tr, err := svc.Create(context.Background(), domain.CreateInput{WordID: "w1", TargetText: "flecha"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	res, err := svc.Translate(context.Background(), domain.TranslateInput{Text: "Tsentsak"})
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if !res.Found || len(res.Translations) != 1 {
		t.Fatalf("expected one exact hit: %+v", res)
	}
	if res.Translations[0].Text != "flecha" {
		t.Fatalf("hit text = %q", res.Translations[0].Text)
	}
	if res.Translations[0].Confidence <= 0 || res.Translations[0].Confidence > 1 {
		t.Fatalf("hit confidence out of range: %v", res.Translations[0].Confidence)
	}

	// serving the hit counts as usage
	if got := fr.byID[tr.ID].UsageCount; got != 1 {
		t.Fatalf("usage count = %d, want 1", got)
	}

	// modest confidence still pulls in suggestions
	if len(res.SimilarWords) == 0 {
		t.Fatalf("expected similar-word suggestions alongside a weak hit")
	}
}

func TestTranslateUnknownWordSuggests(t *testing.T) {
	svc, _ := newTestSvc()

	res, err := svc.Translate(context.Background(), domain.TranslateInput{Text: "tsere"})
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if res.Found || len(res.Translations) != 0 {
		t.Fatalf("expected no exact hit: %+v", res)
	}
	if len(res.SimilarWords) != 1 || res.SimilarWords[0].ShuarText != "tsentsa" {
		t.Fatalf("suggestions: %+v", res.SimilarWords)
	}
}

func TestTranslateSpanishReverseLookup(t *testing.T) {
	svc, _ := newTestSvc()

	res, err := svc.Translate(context.Background(), domain.TranslateInput{Text: "el perro come en la casa roja"})
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if res.DetectedLanguage != "spanish" {
		t.Fatalf("detected = %q", res.DetectedLanguage)
	}
	if res.Found {
		t.Fatalf("no stored word has that spanish text: %+v", res)
	}
}

func TestRateFoldsRunningAverage(t *testing.T) {
	svc, _ := newTestSvc()

	tr, err := svc.Create(context.Background(), domain.CreateInput{WordID: "w1", TargetText: "flecha"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	for i, rating := range []int{5, 3} {
		if tr, err = svc.Rate(context.Background(), tr.ID, domain.RateInput{Rating: rating}); err != nil {
			t.Fatalf("Rate #%d: %v", i+1, err)
		}
	}
	if tr.TotalRatings != 2 {
		t.Fatalf("total ratings = %d", tr.TotalRatings)
	}
	if tr.AverageRating != 4.0 {
		t.Fatalf("average = %v, want 4.0", tr.AverageRating)
	}
}

func TestApproveRejectsRejected(t *testing.T) {
	svc, fr := newTestSvc()

	tr, err := svc.Create(context.Background(), domain.CreateInput{WordID: "w1", TargetText: "flecha"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := svc.Approve(context.Background(), tr.ID, domain.ApproveInput{ApproverID: "expert-1"})
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if got.Status != scoring.StatusApproved || got.ApprovedBy == nil || *got.ApprovedBy != "expert-1" {
		t.Fatalf("approve result: %+v", got)
	}

	// a rejected translation stays rejected
	got.Status = scoring.StatusRejected
	fr.byID[got.ID] = got
	if _, err := svc.Approve(context.Background(), got.ID, domain.ApproveInput{ApproverID: "expert-1"}); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestRecordUsageIncrements(t *testing.T) {
	svc, _ := newTestSvc()

	tr, err := svc.Create(context.Background(), domain.CreateInput{WordID: "w1", TargetText: "flecha"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	for i := 0; i < 3; i++ {
		if tr, err = svc.RecordUsage(context.Background(), tr.ID); err != nil {
			t.Fatalf("RecordUsage: %v", err)
		}
	}
	if tr.UsageCount != 3 {
		t.Fatalf("usage count = %d", tr.UsageCount)
	}
}

func TestQualityComposesSignals(t *testing.T) {
	svc, fr := newTestSvc()

	tr, err := svc.Create(context.Background(), domain.CreateInput{
		WordID:        "w1",
		TargetText:    "flecha",
		CulturalNotes: "usada en la caza con cerbatana",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	rating := 5
	fr.feedback[tr.ID] = []scoring.Feedback{
		{Rating: &rating, Role: scoring.RoleExpert, NativeSpeaker: true},
	}
	fr.words["w1"] = scoring.Word{Verified: true, ConfidenceLevel: 0.9, HasPhonology: true}

	rep, err := svc.Quality(context.Background(), tr.ID)
	if err != nil {
		t.Fatalf("Quality: %v", err)
	}
	if rep.TranslationID != tr.ID {
		t.Fatalf("report id = %q", rep.TranslationID)
	}
	if rep.Metrics.ConfidenceScore <= 0 || rep.Metrics.ConfidenceScore > 1 {
		t.Fatalf("confidence out of range: %v", rep.Metrics.ConfidenceScore)
	}
	if rep.Metrics.OverallQuality <= 0 || rep.Metrics.OverallQuality > 1 {
		t.Fatalf("overall out of range: %v", rep.Metrics.OverallQuality)
	}
	if len(rep.Recommendations) == 0 {
		t.Fatalf("expected recommendations for a pending translation")
	}

	// word lookup miss is tolerated, other errors are not
	delete(fr.words, "w1")
	if _, err := svc.Quality(context.Background(), tr.ID); err != nil {
		t.Fatalf("Quality without source word: %v", err)
	}
}
