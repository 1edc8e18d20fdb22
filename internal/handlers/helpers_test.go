package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

// The metrics defer is registered before handlePanic in every order handler,
// so after a panic it must observe the 500 written by the recover, not the
// pre-panic status.
func TestHandlePanicStatusVisibleToMetricsDefer(t *testing.T) {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest("POST", "/api/orders/create", nil)

	observed := 0
	func() {
		defer func() { observed = c.Writer.Status() }()
		defer handlePanic(c, "POST /api/orders/create")
		panic("boom")
	}()

	if recorder.Code != http.StatusInternalServerError {
		t.Fatalf("expected recovered 500, got %d", recorder.Code)
	}
	if observed != http.StatusInternalServerError {
		t.Fatalf("expected status defer to observe 500, got %d", observed)
	}
}
