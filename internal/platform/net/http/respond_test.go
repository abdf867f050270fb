package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "shuardict/internal/platform/errors"
	pnet "shuardict/internal/platform/net"
	phttp "shuardict/internal/platform/net/http"
)

// helper to build a request with a request_id in context
func reqWithReqID(method, path, rid string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	return req.WithContext(pnet.WithRequestID(req.Context(), rid))
}

func TestJSONWritesStatusAndContentType(t *testing.T) {
	rec := httptest.NewRecorder()
	phttp.JSON(rec, http.StatusTeapot, map[string]any{"k": "v"})
	if rec.Code != http.StatusTeapot {
		t.Fatalf("JSON status: expected 418, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct == "" {
		t.Fatalf("expected content-type set")
	}
}

func TestRespondOKEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	req := reqWithReqID("GET", "/x", "rid-1")
	phttp.RespondOK(rec, req, map[string]string{"a": "b"})
	if rec.Code != http.StatusOK {
		t.Fatalf("RespondOK code: %d", rec.Code)
	}
	var env phttp.Envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	if env.StatusCode != 200 || env.RequestID != "rid-1" || env.Data == nil {
		t.Fatalf("bad envelope: %+v", env)
	}
}

func TestRespondErrorMapsCode(t *testing.T) {
	rec := httptest.NewRecorder()
	req := reqWithReqID("GET", "/x", "rid-2")
	phttp.RespondError(rec, req, perr.NotFoundf("no such word"))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("RespondError code: %d", rec.Code)
	}
	var env phttp.Envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	if env.Code != perr.ErrorCodeNotFound || env.Error != "no such word" || env.RequestID != "rid-2" {
		t.Fatalf("bad envelope: %+v", env)
	}
}

func TestHandleResponseVariants(t *testing.T) {
	req := reqWithReqID("GET", "/x", "rid-3")

	// OK
	rec := httptest.NewRecorder()
	phttp.Handle(func(*http.Request) phttp.Response {
		return phttp.OK(map[string]int{"n": 1})
	})(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("OK code: %d", rec.Code)
	}

	// Created
	recC := httptest.NewRecorder()
	phttp.Handle(func(*http.Request) phttp.Response {
		return phttp.Created(map[string]int{"id": 7})
	})(recC, req)
	if recC.Code != http.StatusCreated {
		t.Fatalf("Created code: %d", recC.Code)
	}

	// NoContent writes no body
	recN := httptest.NewRecorder()
	phttp.Handle(func(*http.Request) phttp.Response {
		return phttp.NoContent()
	})(recN, req)
	if recN.Code != http.StatusNoContent {
		t.Fatalf("NoContent code: %d", recN.Code)
	}
	if recN.Body.Len() != 0 {
		t.Fatalf("NoContent wrote a body: %q", recN.Body.String())
	}

	// Error derives status from the error body
	recE := httptest.NewRecorder()
	phttp.Handle(func(*http.Request) phttp.Response {
		return phttp.Error(perr.Validationf("rating out of range"))
	})(recE, req)
	if recE.Code != http.StatusBadRequest {
		t.Fatalf("Error code: %d", recE.Code)
	}
	var env phttp.Envelope
	_ = json.Unmarshal(recE.Body.Bytes(), &env)
	if env.Code != perr.ErrorCodeValidation || env.Error != "rating out of range" {
		t.Fatalf("bad error envelope: %+v", env)
	}

	// Zero status defaults to 200
	recZ := httptest.NewRecorder()
	phttp.Handle(func(*http.Request) phttp.Response {
		return phttp.Response{Body: "plain"}
	})(recZ, req)
	if recZ.Code != http.StatusOK {
		t.Fatalf("zero status code: %d", recZ.Code)
	}
}
