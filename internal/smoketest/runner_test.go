package smoketest

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type mockClient struct {
	resp     *Response
	err      error
	vendorID string
}

func (m *mockClient) FetchServiceRequests(ctx context.Context, vendorID string) (*Response, error) {
	m.vendorID = vendorID
	return m.resp, m.err
}

func TestRunPrintsStatusAndBody(t *testing.T) {
	m := &mockClient{resp: &Response{StatusCode: 200, Body: []byte("{\n  \"data\": []\n}")}}
	var out, errOut bytes.Buffer

	Run(context.Background(), m, "VND1", &out, &errOut)

	assert.Equal(t, "VND1", m.vendorID)
	assert.Equal(t, "Status: 200\nResponse:\n{\n  \"data\": []\n}\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestRunPrintsError(t *testing.T) {
	m := &mockClient{err: errors.New("request failed: connection refused")}
	var out, errOut bytes.Buffer

	Run(context.Background(), m, "VND1", &out, &errOut)

	assert.Empty(t, out.String())
	assert.Equal(t, "Error: request failed: connection refused\n", errOut.String())
}
