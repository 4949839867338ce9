package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"manitto_web/internal/transform"
)

type fakeRewriter struct {
	result string
	err    error
}

func (f *fakeRewriter) Rewrite(ctx context.Context, profile transform.Profile, message string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.result, nil
}

func newTransformRouter(t *testing.T, rewriter Rewriter) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	profile, err := transform.ProfileByName("gentle")
	require.NoError(t, err)

	r := gin.New()
	handler := NewTransformHandler(rewriter, profile, "service-key", zap.NewNop())
	r.POST("/functions/transform-message", handler.TransformMessage)
	return r
}

func postTransform(r *gin.Engine, body string, authorized bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/functions/transform-message", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if authorized {
		req.Header.Set("Authorization", "Bearer service-key")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTransformMessageSuccess(t *testing.T) {
	r := newTransformRouter(t, &fakeRewriter{result: "고마워! 😊"})

	w := postTransform(r, `{"message":"고마워!"}`, true)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "고마워!", resp["originalMessage"])
	assert.Equal(t, "고마워! 😊", resp["transformedMessage"])
}

func TestTransformMessageMissingBearer(t *testing.T) {
	r := newTransformRouter(t, &fakeRewriter{result: "변환"})

	w := postTransform(r, `{"message":"안녕"}`, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTransformMessageValidation(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantError  string
	}{
		{name: "invalid json", body: `{invalid`, wantStatus: http.StatusBadRequest, wantError: "Invalid JSON in request body"},
		{name: "missing message", body: `{}`, wantStatus: http.StatusBadRequest, wantError: "Message is required"},
		{name: "message too long", body: `{"message":"` + strings.Repeat("가", 201) + `"}`, wantStatus: http.StatusBadRequest, wantError: "Message too long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTransformRouter(t, &fakeRewriter{result: "변환"})
			w := postTransform(r, tt.body, true)

			assert.Equal(t, tt.wantStatus, w.Code)
			var resp map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantError, resp["error"])
		})
	}
}

func TestTransformMessageUpstreamFailure(t *testing.T) {
	r := newTransformRouter(t, &fakeRewriter{err: errors.New("upstream down")})

	w := postTransform(r, `{"message":"안녕"}`, true)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	// 업스트림 에러의 상세 내용은 응답에 포함하지 않는다
	assert.Equal(t, "Failed to transform message", resp["error"])
}

func TestTransformMessageEmptyCompletion(t *testing.T) {
	r := newTransformRouter(t, &fakeRewriter{err: transform.ErrEmptyCompletion})

	w := postTransform(r, `{"message":"안녕"}`, true)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "No transformed message received", resp["error"])
}

func TestTransformMessageOversizeFallback(t *testing.T) {
	r := newTransformRouter(t, &fakeRewriter{result: strings.Repeat("가", 201)})

	w := postTransform(r, `{"message":"짧은 원문"}`, true)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "짧은 원문", resp["transformedMessage"], "변환 결과가 200자를 넘으면 원본을 돌려준다")
}
