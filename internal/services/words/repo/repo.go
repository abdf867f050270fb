// Package repo provides postgres access for words
package repo

import (
	"context"
	"encoding/json"

	"shuardict/internal/core/phonology"
	perr "shuardict/internal/platform/errors"
	"shuardict/internal/platform/store"
	"shuardict/internal/services/words/domain"
)

// Repo is the minimal persistence surface for words
type Repo interface {
	Insert(ctx context.Context, w domain.Word) (domain.Word, error)
	Get(ctx context.Context, id string) (domain.Word, error)
	GetByText(ctx context.Context, shuarText string) (domain.Word, error)
	List(ctx context.Context, in domain.ListInput) ([]domain.Word, error)
	Update(ctx context.Context, w domain.Word) (domain.Word, error)
	Delete(ctx context.Context, id string) error
}

type (
	// PG is a binder that can bind the repo to a RowQuerier
	PG struct{}
	// queries implements the Repo interface
	queries struct{ q store.RowQuerier }
)

// NewPG returns a binder for the words repo
func NewPG() store.Binder[Repo] { return PG{} }

// Bind wires a RowQuerier to the repo
func (PG) Bind(q store.RowQuerier) Repo { return &queries{q: q} }

const wordCols = `
id, shuar_text, spanish_text, phonological_info, morphological_info,
is_verified, confidence_level, frequency_score, created_at, updated_at
`

func (r *queries) Insert(ctx context.Context, w domain.Word) (domain.Word, error) {
	phon, morph, err := marshalInfo(w)
	if err != nil {
		return domain.Word{}, err
	}
	const sql = `
insert into words (shuar_text, spanish_text, phonological_info, morphological_info, confidence_level)
values ($1, $2, $3, $4, $5)
returning ` + wordCols
	row := r.q.QueryRow(ctx, sql, w.ShuarText, w.SpanishText, phon, morph, w.ConfidenceLevel)
	out, err := scanWord(row)
	if err != nil {
		return domain.Word{}, perr.FromPg(err, "insert word")
	}
	return out, nil
}

func (r *queries) Get(ctx context.Context, id string) (domain.Word, error) {
	const sql = `select ` + wordCols + ` from words where id = $1`
	out, err := scanWord(r.q.QueryRow(ctx, sql, id))
	if err != nil {
		return domain.Word{}, perr.FromPg(err, "get word")
	}
	return out, nil
}

func (r *queries) GetByText(ctx context.Context, shuarText string) (domain.Word, error) {
	const sql = `select ` + wordCols + ` from words where lower(shuar_text) = lower($1)`
	out, err := scanWord(r.q.QueryRow(ctx, sql, shuarText))
	if err != nil {
		return domain.Word{}, perr.FromPg(err, "get word by text")
	}
	return out, nil
}

func (r *queries) List(ctx context.Context, in domain.ListInput) ([]domain.Word, error) {
	const sql = `
select ` + wordCols + `
from words
where ($1 = '' or shuar_text ilike '%' || $1 || '%' or spanish_text ilike '%' || $1 || '%')
and ($2::bool is null or is_verified = $2)
order by shuar_text asc
limit $3 offset $4
`
	limit := in.Limit
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.q.Query(ctx, sql, in.Query, in.Verified, limit, in.Offset)
	if err != nil {
		return nil, perr.FromPg(err, "list words")
	}
	defer rows.Close()

	var out []domain.Word
	for rows.Next() {
		w, err := scanWord(rows)
		if err != nil {
			return nil, perr.FromPg(err, "scan word")
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

func (r *queries) Update(ctx context.Context, w domain.Word) (domain.Word, error) {
	phon, morph, err := marshalInfo(w)
	if err != nil {
		return domain.Word{}, err
	}
	const sql = `
update words
set spanish_text = $2,
    phonological_info = $3,
    morphological_info = $4,
    is_verified = $5,
    confidence_level = $6,
    frequency_score = $7,
    updated_at = now()
where id = $1
returning ` + wordCols
	row := r.q.QueryRow(ctx, sql,
		w.ID, w.SpanishText, phon, morph, w.IsVerified, w.ConfidenceLevel, w.FrequencyScore,
	)
	out, err := scanWord(row)
	if err != nil {
		return domain.Word{}, perr.FromPg(err, "update word")
	}
	return out, nil
}

func (r *queries) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `delete from words where id = $1`, id)
	if err != nil {
		return perr.FromPg(err, "delete word")
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("word %s not found", id)
	}
	return nil
}

func marshalInfo(w domain.Word) (phon, morph []byte, err error) {
	if w.Phonology != nil {
		if phon, err = json.Marshal(w.Phonology); err != nil {
			return nil, nil, perr.Wrap(err, perr.ErrorCodeJSON, "marshal phonological info")
		}
	}
	if w.Morphology != nil {
		if morph, err = json.Marshal(w.Morphology); err != nil {
			return nil, nil, perr.Wrap(err, perr.ErrorCodeJSON, "marshal morphological info")
		}
	}
	return phon, morph, nil
}

func scanWord(row store.Row) (domain.Word, error) {
	var w domain.Word
	var phon, morph []byte
	err := row.Scan(
		&w.ID, &w.ShuarText, &w.SpanishText, &phon, &morph,
		&w.IsVerified, &w.ConfidenceLevel, &w.FrequencyScore, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return domain.Word{}, err
	}
	if len(phon) > 0 {
		w.Phonology = &phonology.Info{}
		if err := json.Unmarshal(phon, w.Phonology); err != nil {
			return domain.Word{}, perr.Wrap(err, perr.ErrorCodeJSON, "unmarshal phonological info")
		}
	}
	if len(morph) > 0 {
		w.Morphology = &domain.Morphology{}
		if err := json.Unmarshal(morph, w.Morphology); err != nil {
			return domain.Word{}, perr.Wrap(err, perr.ErrorCodeJSON, "unmarshal morphological info")
		}
	}
	return w, nil
}
