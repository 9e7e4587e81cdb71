package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmdPrintsResponse(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("SMOKE_VENDOR_ID", "VND1")

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/service-requests", r.URL.Path)
		assert.Equal(t, "vendor_id=VND1", r.URL.RawQuery)
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer ts.Close()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--base-url", ts.URL})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "Status: 200\nResponse:\n{\n  \"data\": []\n}\n", out.String())
}

func TestRootCmdPrintsErrorAndSucceeds(t *testing.T) {
	chdir(t, t.TempDir())

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close()

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"--base-url", url})

	require.NoError(t, cmd.Execute())
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "Error: request failed")
}

func TestRootCmdRejectsBadBaseURL(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--base-url", "not-a-url"})

	assert.Error(t, cmd.Execute())
}
