package response

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest("GET", "/", nil)
	return c, recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body failed: %v", err)
	}
	return body
}

func TestSuccessEnvelope(t *testing.T) {
	c, recorder := newTestContext(t)
	Success(c, gin.H{"id": 1})

	if recorder.Code != 200 {
		t.Fatalf("http status want 200 got %d", recorder.Code)
	}
	body := decodeBody(t, recorder)
	if body["status_code"].(float64) != 0 {
		t.Fatalf("status_code want 0 got %v", body["status_code"])
	}
	if body["msg"] != "success" {
		t.Fatalf("msg want success got %v", body["msg"])
	}
}

func TestErrorEnvelopeKeepsHTTP200(t *testing.T) {
	c, recorder := newTestContext(t)
	Error(c, CodeNotFound, "order not found")

	if recorder.Code != 200 {
		t.Fatalf("errors ride the envelope, http status want 200 got %d", recorder.Code)
	}
	body := decodeBody(t, recorder)
	if body["status_code"].(float64) != float64(CodeNotFound) {
		t.Fatalf("status_code want %d got %v", CodeNotFound, body["status_code"])
	}
	if body["msg"] != "order not found" {
		t.Fatalf("msg mismatch: %v", body["msg"])
	}
}

func TestErrorAttachesRequestID(t *testing.T) {
	c, recorder := newTestContext(t)
	c.Set("request_id", "req-123")
	Error(c, CodeInternal, "boom")

	body := decodeBody(t, recorder)
	data, ok := body["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("data should carry the request id, got %v", body["data"])
	}
	if data["request_id"] != "req-123" {
		t.Fatalf("request_id want req-123 got %v", data["request_id"])
	}
}

func TestSuccessWithPage(t *testing.T) {
	c, recorder := newTestContext(t)
	SuccessWithPage(c, []int{1, 2, 3}, Pagination{Page: 2, PageSize: 3, Total: 7, TotalPage: 3})

	body := decodeBody(t, recorder)
	pagination, ok := body["pagination"].(map[string]interface{})
	if !ok {
		t.Fatalf("missing pagination: %v", body)
	}
	if pagination["page"].(float64) != 2 || pagination["total_page"].(float64) != 3 {
		t.Fatalf("pagination mismatch: %v", pagination)
	}
}
