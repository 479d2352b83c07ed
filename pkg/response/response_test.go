package response_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	pkgErrors "task-tracker/pkg/errors"
	"task-tracker/pkg/response"
)

func TestEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		write    func(c *gin.Context)
		wantCode int
		wantResp response.Resp
	}{
		{
			name:     "ok carries data",
			write:    func(c *gin.Context) { response.OK(c, "2024/4/1") },
			wantCode: http.StatusOK,
			wantResp: response.Resp{Message: response.MessageSuccess, Data: "2024/4/1"},
		},
		{
			name:     "plain error is a client error",
			write:    func(c *gin.Context) { response.Error(c, errors.New("bad input")) },
			wantCode: http.StatusBadRequest,
			wantResp: response.Resp{ErrorCode: response.ErrorCodeClient, Message: "bad input"},
		},
		{
			name: "wrapped HTTPError keeps its status",
			write: func(c *gin.Context) {
				response.Error(c, fmt.Errorf("handler: %w", pkgErrors.NewHTTPError(http.StatusConflict, "no reservation")))
			},
			wantCode: http.StatusConflict,
			wantResp: response.Resp{ErrorCode: response.ErrorCodeClient, Message: "no reservation"},
		},
		{
			name:     "5xx HTTPError uses the internal code",
			write:    func(c *gin.Context) { response.Error(c, pkgErrors.ErrInternalServerError) },
			wantCode: http.StatusInternalServerError,
			wantResp: response.Resp{ErrorCode: response.InternalServerErrorCode, Message: pkgErrors.ErrInternalServerError.Message},
		},
		{
			name:     "internal error hides details",
			write:    response.InternalError,
			wantCode: http.StatusInternalServerError,
			wantResp: response.Resp{ErrorCode: response.InternalServerErrorCode, Message: response.DefaultErrorMessage},
		},
		{
			name:     "too many requests",
			write:    response.TooManyRequests,
			wantCode: http.StatusTooManyRequests,
			wantResp: response.Resp{ErrorCode: http.StatusTooManyRequests, Message: "Too Many Requests"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			tt.write(c)

			if w.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", w.Code, tt.wantCode)
			}
			var got response.Resp
			if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got != tt.wantResp {
				t.Errorf("body = %+v, want %+v", got, tt.wantResp)
			}
		})
	}
}

func TestTooManyRequestsAborts(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	response.TooManyRequests(c)

	if !c.IsAborted() {
		t.Error("context not aborted")
	}
}
