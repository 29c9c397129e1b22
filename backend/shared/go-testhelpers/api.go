package testhelpers

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/stretchr/testify/require"
)

// BuildJSONRequest builds a request against BaseURL with a JSON body.
func (h *TestHelper) BuildJSONRequest(method, path string, body []byte) *http.Request {
	req, err := http.NewRequest(method, h.BaseURL+path, bytes.NewReader(body))
	require.NoError(h.T, err)
	if len(body) > 0 {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// BuildCSVUploadRequest builds a multipart request carrying csvBody in the "file" field.
func (h *TestHelper) BuildCSVUploadRequest(path, csvBody string) *http.Request {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "requirements.csv")
	require.NoError(h.T, err)
	_, err = io.WriteString(fw, csvBody)
	require.NoError(h.T, err)
	require.NoError(h.T, mw.Close())

	req, err := http.NewRequest(http.MethodPost, h.BaseURL+path, &buf)
	require.NoError(h.T, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

// DoRequest performs an HTTP request and asserts that no network-level error occurred.
func (h *TestHelper) DoRequest(req *http.Request) *http.Response {
	resp, err := http.DefaultClient.Do(req)
	require.NoError(h.T, err, "HTTP request failed")
	return resp
}

// ReadBody reads the response body and returns it as a string for logging or inspection.
func (h *TestHelper) ReadBody(resp *http.Response) string {
	if resp == nil || resp.Body == nil {
		return "<nil response or body>"
	}
	bodyBytes, err := io.ReadAll(resp.Body)
	// Restore the body so it can be read again if needed.
	resp.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
	require.NoError(h.T, err, "Failed to read response body")
	return string(bodyBytes)
}
