package httpresp

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestListRendersEmptyArray(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var none []string
	List(c, none)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := w.Body.String(); got != `{"data":[],"total":0}` {
		t.Fatalf("unexpected body %s", got)
	}
}

func TestPageKeepsQueryTotal(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Page(c, []int{1, 2}, 40, 3, 2)

	if got := w.Body.String(); got != `{"data":[1,2],"total":40,"page":3,"limit":2}` {
		t.Fatalf("unexpected body %s", got)
	}
}
