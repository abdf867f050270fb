package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusCodeMapping(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeInvalidArgument, http.StatusUnprocessableEntity},
		{ErrorCodeDuplicateKey, http.StatusConflict},
		{ErrorCodeConflict, http.StatusConflict},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeJSON, http.StatusBadRequest},
		{ErrorCodeUnauthorized, http.StatusUnauthorized},
		{ErrorCodeForbidden, http.StatusForbidden},
		{ErrorCodeTooManyRequests, http.StatusTooManyRequests},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{ErrorCodeDB, http.StatusInternalServerError},
		{ErrorCodePanic, http.StatusInternalServerError},
		{ErrorCodeUnknown, http.StatusInternalServerError},
		{9999, http.StatusInternalServerError}, // default branch
	}
	for _, c := range cases {
		if got := HTTPStatusCode(c.code); got != c.want {
			t.Fatalf("HTTPStatusCode(%v) = %d, want %d", c.code, got, c.want)
		}
	}
}

func TestNewWrapUnwrap(t *testing.T) {
	var e *Error
	if e.Error() != "<nil>" {
		t.Fatalf("nil *Error render = %q, want <nil>", e.Error())
	}

	e1 := New(ErrorCodeValidation, "word cannot be empty")
	if CodeOf(e1) != ErrorCodeValidation {
		t.Fatalf("CodeOf(New) = %v", CodeOf(e1))
	}
	e2 := Newf(ErrorCodeJSON, "bad payload at byte %d", 12)
	if got := e2.Error(); got != "bad payload at byte 12" {
		t.Fatalf("Newf().Error = %q", got)
	}

	src := stderrs.New("connection reset")
	e3 := Wrap(src, ErrorCodeDB, "list words")
	if u := stderrs.Unwrap(e3); u == nil || u.Error() != "connection reset" {
		t.Fatalf("Wrap did not keep orig")
	}
	if CodeOf(e3) != ErrorCodeDB {
		t.Fatalf("CodeOf(Wrap) = %v", CodeOf(e3))
	}
	e4 := Wrapf(src, ErrorCodeDB, "scan word %q", "yawá")
	if want := `scan word "yawá": connection reset`; e4.Error() != want {
		t.Fatalf("Wrapf().Error = %q, want %q", e4.Error(), want)
	}

	if WrapIf(nil, ErrorCodeDB, "ignored") != nil {
		t.Fatalf("WrapIf(nil) should return nil")
	}
	if WrapIf(src, ErrorCodeDB, "list") == nil {
		t.Fatalf("WrapIf(non-nil) should wrap")
	}

	deep := fmt.Errorf("service: %w", fmt.Errorf("repo: %w", src))
	if got := Root(deep); got == nil || got.Error() != "connection reset" {
		t.Fatalf("Root() = %v", got)
	}
}

func TestAsAndFieldAttachment(t *testing.T) {
	src := stderrs.New("boom")

	if _, ok := As(src); ok {
		t.Fatalf("As() true for foreign error")
	}

	e := Wrap(src, ErrorCodeInvalidArgument, "bad rating")
	withField := WithField(e, "rating")
	withOp := WithOp(withField, "feedback.create")
	if fe, ok := As(withField); !ok || fe.Field() != "rating" {
		t.Fatalf("WithField failed")
	}
	if oe, ok := As(withOp); !ok || oe.Op() != "feedback.create" {
		t.Fatalf("WithOp failed")
	}
	// copy-on-write leaves the source untouched
	if e0, _ := As(e); e0.Field() != "" || e0.Op() != "" {
		t.Fatalf("copy-on-write mutated original")
	}

	// foreign errors get wrapped so the field sticks
	chained := WithFieldChain(src, "shuar_text")
	ce, ok := As(chained)
	if !ok || ce.Field() != "shuar_text" || ce.Code() != ErrorCodeUnknown {
		t.Fatalf("WithFieldChain failed: %+v", ce)
	}
}

func TestWireAndHTTP(t *testing.T) {
	src := stderrs.New("boom")

	w := (&Error{code: ErrorCodeUnauthorized, msg: "nope", field: "token"}).ToWire()
	if w.Code != ErrorCodeUnauthorized || w.Message != "nope" || w.Field != "token" {
		t.Fatalf("ToWire mismatch: %+v", w)
	}
	if wf := WireFrom(nil); wf != (Wire{}) {
		t.Fatalf("WireFrom(nil) = %+v, want zero", wf)
	}
	if wf := WireFrom(src); wf.Code != ErrorCodeUnknown || wf.Message != "boom" {
		t.Fatalf("WireFrom(foreign) = %+v", wf)
	}
	// our errors expose only their own message on the wire, never orig
	e := Wrapf(src, ErrorCodeDB, "get translation")
	if wf := WireFrom(e); wf.Code != ErrorCodeDB || wf.Message != "get translation" {
		t.Fatalf("WireFrom(ours) = %+v", wf)
	}

	if st, _ := HTTP(nil); st != http.StatusOK {
		t.Fatalf("HTTP(nil) status = %d", st)
	}
	if st := HTTPStatus(e); st != http.StatusInternalServerError {
		t.Fatalf("HTTPStatus = %d", st)
	}
}

func TestSugarConstructors(t *testing.T) {
	cases := []struct {
		err  error
		code ErrorCode
	}{
		{NotFoundf("x"), ErrorCodeNotFound},
		{InvalidArgf("x"), ErrorCodeInvalidArgument},
		{Validationf("x"), ErrorCodeValidation},
		{DuplicateKeyf("x"), ErrorCodeDuplicateKey},
		{DBf("x"), ErrorCodeDB},
		{JSONErrf("x"), ErrorCodeJSON},
		{PanicErrf("x"), ErrorCodePanic},
		{Unauthorizedf("x"), ErrorCodeUnauthorized},
		{Forbiddenf("x"), ErrorCodeForbidden},
		{Conflictf("x"), ErrorCodeConflict},
		{Unavailablef("x"), ErrorCodeUnavailable},
		{Internalf("x"), ErrorCodeUnknown},
	}
	for _, c := range cases {
		if !IsCode(c.err, c.code) {
			t.Fatalf("sugar constructor code mismatch: %v != %v", CodeOf(c.err), c.code)
		}
	}
	if !IsValidation(Validationf("x")) {
		t.Fatalf("IsValidation miss")
	}
	if !IsCode(ErrNotFound, ErrorCodeNotFound) {
		t.Fatalf("ErrNotFound code mismatch")
	}
}
