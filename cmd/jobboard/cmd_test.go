package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeAPI(t *testing.T, posted *[]byte) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/jobs":
			*posted, _ = io.ReadAll(r.Body)
			_, _ = w.Write([]byte("Job saved successfully"))
		case r.URL.Path == "/api/jobs":
			if r.URL.Query().Get("type") == "Contract" {
				_, _ = w.Write([]byte(`[{"_id":"1","title":"SRE","company":"Acme","location":"Remote","type":"Contract","tags":["k8s","go"],"createdAt":"2026-10-17T09:00:00Z"}]`))
				return
			}
			_, _ = w.Write([]byte(`[]`))
		case r.URL.Path == "/api/preview":
			_, _ = w.Write([]byte(`{"title":"Acme","description":"","image":"","url":"https://acme.test"}`))
		case r.URL.Path == "/api/jobs/export":
			w.Header().Set("Content-Disposition", `attachment; filename="jobs_x.csv"`)
			_, _ = w.Write([]byte("TITLE\n"))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestListCommand(t *testing.T) {
	var posted []byte
	srv := fakeAPI(t, &posted)

	out, _, err := run(t, "list", "--api-url", srv.URL, "--type", "Contract")
	require.NoError(t, err)
	assert.Contains(t, out, "SRE")
	assert.Contains(t, out, "k8s,go")

	out, _, err = run(t, "list", "--api-url", srv.URL, "--type", "all")
	require.NoError(t, err)
	assert.Contains(t, out, "No jobs found.")
}

func TestSubmitCommand(t *testing.T) {
	var posted []byte
	srv := fakeAPI(t, &posted)

	_, stderr, err := run(t, "submit", "--api-url", srv.URL,
		"--title", "Go Dev", "--company", "Acme", "--link", "https://acme.test/1",
		"--description", "Build APIs", "--tag", "go", "--tag", "go", "--tag", "k8s")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Job submitted successfully")
	assert.JSONEq(t, `{"title":"Go Dev","company":"Acme","location":"Remote","link":"https://acme.test/1",
		"description":"Build APIs","type":"Full Time","tags":["go","k8s"]}`, string(posted))
}

func TestSubmitCommandMissingFields(t *testing.T) {
	var posted []byte
	srv := fakeAPI(t, &posted)

	_, stderr, err := run(t, "submit", "--api-url", srv.URL, "--title", "Go Dev")
	assert.Error(t, err)
	assert.Contains(t, stderr, "Please fill in all required fields")
	assert.Nil(t, posted)
}

func TestPreviewCommand(t *testing.T) {
	var posted []byte
	srv := fakeAPI(t, &posted)

	out, _, err := run(t, "preview", "--api-url", srv.URL, "https://acme.test")
	require.NoError(t, err)
	assert.Contains(t, out, `"title": "Acme"`)
}

func TestExportCommand(t *testing.T) {
	var posted []byte
	srv := fakeAPI(t, &posted)
	target := filepath.Join(t.TempDir(), "out.csv")

	_, _, err := run(t, "export", "--api-url", srv.URL, "--format", "csv", "--out", target)
	require.NoError(t, err)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "TITLE\n", string(data))
}

func TestTypeFlagCompletion(t *testing.T) {
	out, _, err := run(t, "__complete", "submit", "--type", "")
	require.NoError(t, err)
	assert.Contains(t, out, "Full Time\nPart Time\nInternship\nContract\n")
	assert.NotContains(t, out, "all")

	out, _, err = run(t, "__complete", "list", "--type", "")
	require.NoError(t, err)
	assert.Contains(t, out, "Contract\nall\n")
}
