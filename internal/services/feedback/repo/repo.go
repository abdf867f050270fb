// Package repo provides postgres access for feedback
package repo

import (
	"context"

	perr "shuardict/internal/platform/errors"
	"shuardict/internal/platform/store"
	"shuardict/internal/services/feedback/domain"
)

// Repo is the minimal persistence surface for feedback
type Repo interface {
	Insert(ctx context.Context, f domain.Feedback) (domain.Feedback, error)
	List(ctx context.Context, in domain.ListInput) ([]domain.Feedback, error)
	Delete(ctx context.Context, id string) error
}

type (
	// PG is a binder that can bind the repo to a RowQuerier
	PG struct{}
	queries struct{ q store.RowQuerier }
)

// NewPG returns a binder for the feedback repo
func NewPG() store.Binder[Repo] { return PG{} }

// Bind wires a RowQuerier to the repo
func (PG) Bind(q store.RowQuerier) Repo { return &queries{q: q} }

const feedbackCols = `
id, translation_id, rating, user_role, is_native_speaker,
coalesce(comment, ''), coalesce(cultural_context, ''), coalesce(suggested_translation, ''),
created_at
`

func (r *queries) Insert(ctx context.Context, f domain.Feedback) (domain.Feedback, error) {
	const sql = `
insert into feedback
  (translation_id, rating, user_role, is_native_speaker, comment, cultural_context, suggested_translation)
values ($1, $2, $3, $4, nullif($5, ''), nullif($6, ''), nullif($7, ''))
returning ` + feedbackCols
	row := r.q.QueryRow(ctx, sql,
		f.TranslationID, f.Rating, f.Role, f.NativeSpeaker,
		f.Comment, f.CulturalContext, f.SuggestedTranslation,
	)
	out, err := scanFeedback(row)
	if err != nil {
		return domain.Feedback{}, perr.FromPg(err, "insert feedback")
	}
	return out, nil
}

func (r *queries) List(ctx context.Context, in domain.ListInput) ([]domain.Feedback, error) {
	const sql = `
select ` + feedbackCols + `
from feedback
where translation_id = $1
order by created_at asc
limit $2 offset $3
`
	limit := in.Limit
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.q.Query(ctx, sql, in.TranslationID, limit, in.Offset)
	if err != nil {
		return nil, perr.FromPg(err, "list feedback")
	}
	defer rows.Close()

	var out []domain.Feedback
	for rows.Next() {
		f, err := scanFeedback(rows)
		if err != nil {
			return nil, perr.FromPg(err, "scan feedback")
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *queries) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `delete from feedback where id = $1`, id)
	if err != nil {
		return perr.FromPg(err, "delete feedback")
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("feedback %s not found", id)
	}
	return nil
}

func scanFeedback(row store.Row) (domain.Feedback, error) {
	var f domain.Feedback
	err := row.Scan(
		&f.ID, &f.TranslationID, &f.Rating, &f.Role, &f.NativeSpeaker,
		&f.Comment, &f.CulturalContext, &f.SuggestedTranslation, &f.CreatedAt,
	)
	return f, err
}
