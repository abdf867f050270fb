// Package repo provides read-only postgres access for analysis candidates
package repo

import (
	"context"
	"encoding/json"

	"shuardict/internal/core/phonology"
	"shuardict/internal/core/similarity"
	perr "shuardict/internal/platform/errors"
	"shuardict/internal/platform/store"
)

// Candidate is a dictionary word prepared for the similarity engine
type Candidate struct {
	similarity.Word
	SpanishText string
}

// Repo is the read surface analysis needs over the dictionary
type Repo interface {
	Candidates(ctx context.Context, limit int) ([]Candidate, error)
}

type (
	// PG is a binder that can bind the repo to a RowQuerier
	PG struct{}
	queries struct{ q store.RowQuerier }
)

// NewPG returns a binder for the analysis repo
func NewPG() store.Binder[Repo] { return PG{} }

// Bind wires a RowQuerier to the repo
func (PG) Bind(q store.RowQuerier) Repo { return &queries{q: q} }

func (r *queries) Candidates(ctx context.Context, limit int) ([]Candidate, error) {
	const sql = `
select shuar_text, spanish_text, phonological_info, morphological_info
from words
order by frequency_score desc, shuar_text asc
limit $1
`
	if limit <= 0 {
		limit = 200
	}
	rows, err := r.q.Query(ctx, sql, limit)
	if err != nil {
		return nil, perr.FromPg(err, "list analysis candidates")
	}
	defer rows.Close()

	var out []Candidate
	for rows.Next() {
		var c Candidate
		var phon, morph []byte
		if err := rows.Scan(&c.Text, &c.SpanishText, &phon, &morph); err != nil {
			return nil, perr.FromPg(err, "scan analysis candidate")
		}
		if len(phon) > 0 {
			c.Phonology = &phonology.Info{}
			if err := json.Unmarshal(phon, c.Phonology); err != nil {
				return nil, perr.Wrap(err, perr.ErrorCodeJSON, "unmarshal phonological info")
			}
		}
		if len(morph) > 0 {
			var m struct {
				Root     string   `json:"root_word"`
				Suffixes []string `json:"applied_suffixes"`
			}
			if err := json.Unmarshal(morph, &m); err != nil {
				return nil, perr.Wrap(err, perr.ErrorCodeJSON, "unmarshal morphological info")
			}
			c.Morphology = &similarity.Morphology{Root: m.Root, Suffixes: m.Suffixes}
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
