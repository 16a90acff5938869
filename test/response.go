package test

import (
	"camp-signup-system/internal/global/response"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// NotFound 断言 404 且 error 字段等于 msg
func NotFound(t *testing.T, w *httptest.ResponseRecorder, msg string) {
	t.Helper()
	require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	body := Decode[response.ResponseBody](t, w)
	require.Equal(t, msg, body.Error)
}

// BadRequest 断言 400 且 errors 中每个 substr 都至少出现一次
func BadRequest(t *testing.T, w *httptest.ResponseRecorder, substrs ...string) {
	t.Helper()
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	body := Decode[response.ResponseBody](t, w)
	require.NotEmpty(t, body.Errors)
	joined := strings.Join(body.Errors, "\n")
	for _, s := range substrs {
		require.Contains(t, joined, s)
	}
}
