package errors

import (
	stderrs "errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func pg(code string) *pgconn.PgError {
	return &pgconn.PgError{Code: code}
}

func TestDBErrorCodeMappings(t *testing.T) {
	cases := []struct {
		code string
		want ErrorCode
	}{
		{"23505", ErrorCodeDuplicateKey},    // unique violation
		{"23503", ErrorCodeInvalidArgument}, // fk violation -> invalid input
		{"23502", ErrorCodeInvalidArgument}, // not null
		{"23514", ErrorCodeInvalidArgument}, // check
		{"22001", ErrorCodeValidation},      // string truncation
		{"22P02", ErrorCodeValidation},      // invalid text representation
		{"25006", ErrorCodeUnavailable},     // read-only
		{"57P03", ErrorCodeUnavailable},     // cannot connect now
		{"40001", ErrorCodeDB},              // serialization failure -> generic DB
		{"XXXXX", ErrorCodeDB},              // default branch
	}
	for _, c := range cases {
		got, ok := DBErrorCode(pg(c.code))
		if !ok {
			t.Fatalf("expected ok for PgError code %s", c.code)
		}
		if got != c.want {
			t.Fatalf("DBErrorCode(%s) = %v, want %v", c.code, got, c.want)
		}
	}

	// Non-pg error path
	if _, ok := DBErrorCode(stderrs.New("nope")); ok {
		t.Fatalf("DBErrorCode should return ok=false for non-pg error")
	}
}

func TestExtractPgErrorAndPredicates(t *testing.T) {
	src := pg("23505")
	wrapped := Wrap(src, ErrorCodeDB, "insert word")

	got, ok := ExtractPgError(wrapped)
	if !ok || got.Code != "23505" {
		t.Fatalf("ExtractPgError through wrap failed: %v %v", got, ok)
	}
	if _, ok := ExtractPgError(stderrs.New("x")); ok {
		t.Fatalf("ExtractPgError true for foreign error")
	}

	if !IsDuplicateKey(wrapped) {
		t.Fatalf("IsDuplicateKey should see through wrapping")
	}
	if IsForeignKeyViolation(wrapped) {
		t.Fatalf("IsForeignKeyViolation false positive")
	}
	if !IsForeignKeyViolation(pg("23503")) {
		t.Fatalf("IsForeignKeyViolation missed 23503")
	}
}

func TestFromPg(t *testing.T) {
	if FromPg(nil, "x") != nil {
		t.Fatalf("FromPg(nil) should be nil")
	}

	// QueryRow miss maps to not found
	err := FromPg(pgx.ErrNoRows, "get word")
	if CodeOf(err) != ErrorCodeNotFound {
		t.Fatalf("FromPg(ErrNoRows) code = %v, want %v", CodeOf(err), ErrorCodeNotFound)
	}

	// Mapped PgError keeps its classification
	if got := CodeOf(FromPg(pg("23505"), "insert word")); got != ErrorCodeDuplicateKey {
		t.Fatalf("FromPg(23505) code = %v", got)
	}
	if got := CodeOf(FromPg(pg("22P02"), "bad uuid")); got != ErrorCodeValidation {
		t.Fatalf("FromPg(22P02) code = %v", got)
	}

	// Non-pg errors land on generic DB
	plain := FromPg(stderrs.New("conn reset"), "list words")
	if CodeOf(plain) != ErrorCodeDB {
		t.Fatalf("FromPg(plain) code = %v", CodeOf(plain))
	}
	if HTTPStatus(plain) != 500 {
		t.Fatalf("FromPg(plain) status = %d", HTTPStatus(plain))
	}
}
