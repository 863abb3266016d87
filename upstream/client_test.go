package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bitbucket.org/mmdatafocus/console_backend/config"
	"bitbucket.org/mmdatafocus/console_backend/utils"
)

func testClient(baseURL string) *Client {
	return NewClient(config.UpstreamConfig{
		BaseURL:        baseURL,
		AuthHeader:     "Authorization",
		RequestTimeout: 5 * time.Second,
	})
}

func TestListRecords_DecodesBothEnvelopes(t *testing.T) {
	bodies := []string{
		`[{"id":"1"},{"id":"2"}]`,
		`{"results":[{"id":"1"},{"id":"2"}],"total":2}`,
		`{"data":[{"id":"1"},{"id":"2"}]}`,
	}
	for _, body := range bodies {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/departments" {
				t.Fatalf("unexpected path %s", r.URL.Path)
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(body))
		}))

		records, err := testClient(server.URL).ListRecords(context.Background(), "departments", nil)
		server.Close()
		if err != nil {
			t.Fatalf("ListRecords error for %q: %v", body, err)
		}
		if len(records) != 2 {
			t.Fatalf("expected 2 records for %q, got %d", body, len(records))
		}
	}
}

func TestDo_SendsAuthAndCorrelationHeaders(t *testing.T) {
	var gotAuth, gotCorrelation string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotCorrelation = r.Header.Get("X-Correlation-Id")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	ctx := utils.SetTokenInContext(context.Background(), "tok-123")
	ctx = utils.SetCorrelationIdInContext(ctx, "corr-456")
	if _, err := testClient(server.URL).ListRecords(ctx, "departments", nil); err != nil {
		t.Fatalf("ListRecords error: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("expected bearer token, got %q", gotAuth)
	}
	if gotCorrelation != "corr-456" {
		t.Fatalf("expected correlation id, got %q", gotCorrelation)
	}
}

func TestDo_NonSuccessBecomesAPIError(t *testing.T) {
	cases := []struct {
		status int
		body   string
		detail string
	}{
		{422, `{"detail":"name is taken"}`, "name is taken"},
		{500, `{"message":"internal failure"}`, "internal failure"},
		{400, `{"error":"bad input"}`, "bad input"},
		{502, `plain text failure`, "plain text failure"},
	}
	for _, tc := range cases {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
			w.Write([]byte(tc.body))
		}))

		_, err := testClient(server.URL).GetRecord(context.Background(), "departments", "d1")
		server.Close()

		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected APIError for %d, got %v", tc.status, err)
		}
		if apiErr.Status != tc.status {
			t.Fatalf("expected status %d, got %d", tc.status, apiErr.Status)
		}
		if apiErr.Detail != tc.detail {
			t.Fatalf("expected detail %q, got %q", tc.detail, apiErr.Detail)
		}
	}
}

func TestAPIError_IsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"no such record"}`, http.StatusNotFound)
	}))
	defer server.Close()

	_, err := testClient(server.URL).GetRecord(context.Background(), "departments", "missing")
	var apiErr *APIError
	if !errors.As(err, &apiErr) || !apiErr.IsNotFound() {
		t.Fatalf("expected not-found APIError, got %v", err)
	}
}

func TestUploadMultipart_SendsFieldsAndFilesAsParts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(16 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		if got := r.FormValue("name"); got != "plan.pdf" {
			t.Fatalf("expected name field, got %q", got)
		}
		if got := r.FormValue("project_id"); got != "p1" {
			t.Fatalf("expected project_id field, got %q", got)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("file part missing: %v", err)
		}
		defer file.Close()
		if header.Filename != "plan.pdf" {
			t.Fatalf("unexpected filename %q", header.Filename)
		}
		w.Write([]byte(`{"id":"doc1","name":"plan.pdf"}`))
	}))
	defer server.Close()

	raw, err := testClient(server.URL).UploadMultipart(context.Background(), "documents",
		map[string]string{"name": "plan.pdf", "project_id": "p1"},
		[]FilePart{{FieldName: "file", FileName: "plan.pdf", Content: []byte("%PDF-1.4")}},
	)
	if err != nil {
		t.Fatalf("UploadMultipart error: %v", err)
	}
	if raw.String("id") != "doc1" {
		t.Fatalf("expected reconciled response, got %v", raw)
	}
}

func TestDeleteRecord_EscapesId(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	if err := testClient(server.URL).DeleteRecord(context.Background(), "documents", "a/b"); err != nil {
		t.Fatalf("DeleteRecord error: %v", err)
	}
	if gotPath != "/documents/a%2Fb" {
		t.Fatalf("expected escaped id in path, got %q", gotPath)
	}
}
