package transform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"manitto_web/internal/models"
)

// ErrorKind 는 변환 실패의 종류를 구분한다
type ErrorKind int

const (
	// KindServiceUnavailable 전송 실패, 타임아웃, 2xx 가 아닌 응답
	KindServiceUnavailable ErrorKind = iota
	// KindEmptyResult 성공 응답이지만 변환 결과가 비어 있음
	KindEmptyResult
)

// Error 는 변환 서비스 호출이 실패했을 때의 타입 있는 에러이다
// 부분 결과는 절대 담지 않는다
type Error struct {
	Kind  ErrorKind
	cause error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindEmptyResult:
		return "transform: empty result"
	default:
		if e.cause != nil {
			return fmt.Sprintf("transform: service unavailable: %v", e.cause)
		}
		return "transform: service unavailable"
	}
}

func (e *Error) Unwrap() error { return e.cause }

// Client 는 외부 말투 변환 서비스를 호출하는 클라이언트이다
type Client struct {
	endpoint string
	apiKey   string
	profile  Profile
	client   *http.Client
	logger   *zap.Logger
}

// NewClient 는 변환 클라이언트를 만든다
// timeout 은 호출 전체에 걸리는 상한이며, 응답이 없는 호출이 제출 요청을
// 무한정 붙잡지 않도록 반드시 지정해야 한다
func NewClient(endpoint, apiKey string, profile Profile, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		profile:  profile,
		client:   &http.Client{Timeout: timeout},
		logger:   logger,
	}
}

type transformRequest struct {
	Message string `json:"message"`
}

type transformResponse struct {
	OriginalMessage    string `json:"originalMessage"`
	TransformedMessage string `json:"transformedMessage"`
	Error              string `json:"error,omitempty"`
}

// Transform 은 원본 메시지를 변환 서비스로 보내고 변환된 본문을 돌려준다
// 호출자는 원본이 1~200자(유니코드 문자 수)임을 보장해야 한다
//
// 실패 정책은 비대칭이다:
//   - 전송 실패 / 2xx 아님 → KindServiceUnavailable, 본문 없음
//   - 성공이지만 결과 없음 → KindEmptyResult
//   - 성공이지만 결과가 200자 초과 → 원본을 그대로 돌려준다 (에러 아님)
//
// 마지막 경우는 버그가 아니라 정책이다. 길이 안전이 말투 개선보다 우선한다.
func (c *Client) Transform(ctx context.Context, original string) (string, error) {
	body, err := json.Marshal(transformRequest{Message: original})
	if err != nil {
		return "", &Error{Kind: KindServiceUnavailable, cause: err}
	}

	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.client.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", &Error{Kind: KindServiceUnavailable, cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &Error{Kind: KindServiceUnavailable, cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// 서비스의 에러 본문은 서버 로그에만 남기고 호출자에게는 돌려주지 않는다
		var errResp transformResponse
		if decErr := json.NewDecoder(resp.Body).Decode(&errResp); decErr == nil && errResp.Error != "" {
			c.logger.Warn("변환 서비스 오류 응답",
				zap.Int("status", resp.StatusCode),
				zap.String("error", errResp.Error))
		}
		return "", &Error{Kind: KindServiceUnavailable, cause: fmt.Errorf("status %d", resp.StatusCode)}
	}

	var result transformResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", &Error{Kind: KindEmptyResult, cause: err}
	}
	if result.TransformedMessage == "" {
		return "", &Error{Kind: KindEmptyResult}
	}

	if utf8.RuneCountInString(result.TransformedMessage) > models.MaxMessageRunes {
		return original, nil
	}
	return result.TransformedMessage, nil
}
