package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// TestServer wraps a gin router for handler tests.
type TestServer struct {
	Router *gin.Engine
}

// NewTestServer creates a bare test router in gin test mode.
func NewTestServer() *TestServer {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	return &TestServer{
		Router: router,
	}
}

// MakeRequest performs an HTTP request against the test router. A non-nil
// body is marshalled to JSON.
func (s *TestServer) MakeRequest(
	t *testing.T,
	method, path string,
	body interface{},
	headers map[string]string,
) *httptest.ResponseRecorder {
	t.Helper()

	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err, "Failed to marshal request body")
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, path, bodyReader)
	require.NoError(t, err, "Failed to create request")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)

	return w
}

// ParseResponseBody unmarshals a JSON response body into target.
func ParseResponseBody(t *testing.T, body *bytes.Buffer, target interface{}) {
	t.Helper()

	err := json.Unmarshal(body.Bytes(), target)
	require.NoError(t, err, "Failed to parse response body")
}

// AssertResponse checks the status code and parses the body into target.
func AssertResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target interface{}) {
	t.Helper()

	require.Equal(t, expectedStatus, w.Code, "Unexpected status code")

	if target != nil && w.Body.Len() > 0 {
		ParseResponseBody(t, w.Body, target)
	}
}

// AssertErrorResponse checks an error response and its "error" message.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMessage string) {
	t.Helper()

	require.Equal(t, expectedStatus, w.Code, "Unexpected status code")

	var response map[string]interface{}
	ParseResponseBody(t, w.Body, &response)

	if expectedMessage != "" {
		errVal, ok := response["error"].(string)
		require.True(t, ok, "Expected 'error' field to be a string, got: %T", response["error"])
		AssertContains(t, errVal, expectedMessage)
	}
}

// MakeGetRequest performs a GET request.
func (s *TestServer) MakeGetRequest(t *testing.T, path string, headers map[string]string) *httptest.ResponseRecorder {
	return s.MakeRequest(t, http.MethodGet, path, nil, headers)
}

// MakePostRequest performs a POST request.
func (s *TestServer) MakePostRequest(t *testing.T, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	return s.MakeRequest(t, http.MethodPost, path, body, headers)
}

// MakePutRequest performs a PUT request.
func (s *TestServer) MakePutRequest(t *testing.T, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	return s.MakeRequest(t, http.MethodPut, path, body, headers)
}

// MakeDeleteRequest performs a DELETE request.
func (s *TestServer) MakeDeleteRequest(t *testing.T, path string, headers map[string]string) *httptest.ResponseRecorder {
	return s.MakeRequest(t, http.MethodDelete, path, nil, headers)
}

// WithAuth builds an Authorization header with a bearer token.
func WithAuth(token string) map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + token,
	}
}

// MergeHeaders merges several header maps, later maps win.
func MergeHeaders(headers ...map[string]string) map[string]string {
	result := make(map[string]string)
	for _, h := range headers {
		for k, v := range h {
			result[k] = v
		}
	}
	return result
}

// CreateTestContext creates a gin test context and its recorder.
func CreateTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}
