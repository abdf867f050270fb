// Package repo provides postgres access for translations
package repo

import (
	"context"

	"shuardict/internal/core/scoring"
	perr "shuardict/internal/platform/errors"
	"shuardict/internal/platform/store"
	"shuardict/internal/services/translations/domain"
)

// Repo is the minimal persistence surface for translations
type Repo interface {
	Insert(ctx context.Context, t domain.Translation) (domain.Translation, error)
	Get(ctx context.Context, id string) (domain.Translation, error)
	List(ctx context.Context, in domain.ListInput) ([]domain.Translation, error)
	Update(ctx context.Context, t domain.Translation) (domain.Translation, error)
	Delete(ctx context.Context, id string) error

	// read-only scoring inputs
	SourceWord(ctx context.Context, wordID string) (scoring.Word, error)
	FeedbackFor(ctx context.Context, translationID string) ([]scoring.Feedback, error)
}

type (
	// PG is a binder that can bind the repo to a RowQuerier
	PG struct{}
	queries struct{ q store.RowQuerier }
)

// NewPG returns a binder for the translations repo
func NewPG() store.Binder[Repo] { return PG{} }

// Bind wires a RowQuerier to the repo
func (PG) Bind(q store.RowQuerier) Repo { return &queries{q: q} }

const translationCols = `
id, word_id, source_text, target_text, status, usage_count,
average_rating, total_ratings, approved_by, coalesce(cultural_notes, ''),
created_at, updated_at
`

func (r *queries) Insert(ctx context.Context, t domain.Translation) (domain.Translation, error) {
	const sql = `
insert into translations (word_id, source_text, target_text, status, cultural_notes)
values ($1, $2, $3, $4, nullif($5, ''))
returning ` + translationCols
	row := r.q.QueryRow(ctx, sql, t.WordID, t.SourceText, t.TargetText, t.Status, t.CulturalNotes)
	out, err := scanTranslation(row)
	if err != nil {
		return domain.Translation{}, perr.FromPg(err, "insert translation")
	}
	return out, nil
}

func (r *queries) Get(ctx context.Context, id string) (domain.Translation, error) {
	const sql = `select ` + translationCols + ` from translations where id = $1`
	out, err := scanTranslation(r.q.QueryRow(ctx, sql, id))
	if err != nil {
		return domain.Translation{}, perr.FromPg(err, "get translation")
	}
	return out, nil
}

func (r *queries) List(ctx context.Context, in domain.ListInput) ([]domain.Translation, error) {
	const sql = `
select ` + translationCols + `
from translations
where word_id = $1
order by average_rating desc, created_at asc
limit $2 offset $3
`
	limit := in.Limit
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.q.Query(ctx, sql, in.WordID, limit, in.Offset)
	if err != nil {
		return nil, perr.FromPg(err, "list translations")
	}
	defer rows.Close()

	var out []domain.Translation
	for rows.Next() {
		t, err := scanTranslation(rows)
		if err != nil {
			return nil, perr.FromPg(err, "scan translation")
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *queries) Update(ctx context.Context, t domain.Translation) (domain.Translation, error) {
	const sql = `
update translations
set target_text = $2,
    status = $3,
    usage_count = $4,
    average_rating = $5,
    total_ratings = $6,
    approved_by = $7,
    cultural_notes = nullif($8, ''),
    updated_at = now()
where id = $1
returning ` + translationCols
	row := r.q.QueryRow(ctx, sql,
		t.ID, t.TargetText, t.Status, t.UsageCount, t.AverageRating,
		t.TotalRatings, t.ApprovedBy, t.CulturalNotes,
	)
	out, err := scanTranslation(row)
	if err != nil {
		return domain.Translation{}, perr.FromPg(err, "update translation")
	}
	return out, nil
}

func (r *queries) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `delete from translations where id = $1`, id)
	if err != nil {
		return perr.FromPg(err, "delete translation")
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("translation %s not found", id)
	}
	return nil
}

func (r *queries) SourceWord(ctx context.Context, wordID string) (scoring.Word, error) {
	const sql = `
select is_verified, confidence_level, frequency_score, phonological_info is not null
from words
where id = $1
`
	var w scoring.Word
	err := r.q.QueryRow(ctx, sql, wordID).Scan(
		&w.Verified, &w.ConfidenceLevel, &w.FrequencyScore, &w.HasPhonology,
	)
	if err != nil {
		return scoring.Word{}, perr.FromPg(err, "get source word")
	}
	return w, nil
}

func (r *queries) FeedbackFor(ctx context.Context, translationID string) ([]scoring.Feedback, error) {
	const sql = `
select rating, user_role, is_native_speaker,
       coalesce(cultural_context, ''), coalesce(suggested_translation, '')
from feedback
where translation_id = $1
order by created_at asc
`
	rows, err := r.q.Query(ctx, sql, translationID)
	if err != nil {
		return nil, perr.FromPg(err, "list feedback for translation")
	}
	defer rows.Close()

	var out []scoring.Feedback
	for rows.Next() {
		var f scoring.Feedback
		if err := rows.Scan(&f.Rating, &f.Role, &f.NativeSpeaker, &f.CulturalContext, &f.SuggestedTranslation); err != nil {
			return nil, perr.FromPg(err, "scan feedback")
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func scanTranslation(row store.Row) (domain.Translation, error) {
	var t domain.Translation
	err := row.Scan(
		&t.ID, &t.WordID, &t.SourceText, &t.TargetText, &t.Status, &t.UsageCount,
		&t.AverageRating, &t.TotalRatings, &t.ApprovedBy, &t.CulturalNotes,
		&t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}
