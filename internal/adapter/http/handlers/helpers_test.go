package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"andicot_proforma/pkg"

	"github.com/gin-gonic/gin"
)

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) pkg.HTTPError {
	t.Helper()
	var e pkg.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &e); err != nil {
		t.Fatalf("invalid error body %q: %v", w.Body.String(), err)
	}
	return e
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}
