package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// Target 上游请求描述：地址、方法和附加请求头
type Target struct {
	Method string
	URL    string
	Header map[string]string
}

// UpstreamClient 上游 API 客户端
// 不做重试，只负责单次请求，并发由调用方控制
type UpstreamClient struct {
	client      *http.Client
	imageClient *http.Client
	timeout     time.Duration
}

// NewUpstreamClient 创建上游客户端，timeout 为 0 时默认 10 秒
func NewUpstreamClient(timeout time.Duration) *UpstreamClient {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &UpstreamClient{
		client: &http.Client{
			Timeout: timeout,
		},
		// 海报直链最多跟随一次重定向
		imageClient: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) > 1 {
					return errors.New("stopped after 1 redirect")
				}
				return nil
			},
		},
		timeout: timeout,
	}
}

// upstreamErrorBody 上游错误响应中可能携带消息的字段
type upstreamErrorBody struct {
	Message string `json:"message"`
	Error   string `json:"Error"`
}

// Request 发送请求并返回原始响应体
// 非 200 响应映射为 API 错误，消息取响应体中的 message/Error 字段
func (c *UpstreamClient) Request(ctx context.Context, target Target) ([]byte, error) {
	method := target.Method
	if method == "" {
		method = http.MethodGet
	}

	req, err := http.NewRequestWithContext(ctx, method, target.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("创建请求失败: %w", err)
	}
	for k, v := range target.Header {
		req.Header.Set(k, v)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewNetworkError("failed to read upstream response", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, NewAPIError(upstreamMessage(body), resp.StatusCode)
	}

	return body, nil
}

// RequestJSON 发送请求并解析 JSON 响应
func (c *UpstreamClient) RequestJSON(ctx context.Context, target Target, into interface{}) error {
	body, err := c.Request(ctx, target)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, into); err != nil {
		return NewParseError("failed to parse upstream response", err)
	}
	return nil
}

// FetchImage 直接抓取图片二进制内容（海报透传路径）
func (c *UpstreamClient) FetchImage(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("创建请求失败: %w", err)
	}

	resp, err := c.imageClient.Do(req)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, NewAPIError(fmt.Sprintf("image fetch returned status %d", resp.StatusCode), http.StatusInternalServerError)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewNetworkError("failed to read image response", err)
	}
	return data, nil
}

// classifyTransportError 区分超时和其他传输层失败
func classifyTransportError(err error) *Error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return NewTimeoutError("upstream request timed out", err)
	}
	return NewNetworkError("upstream request failed", err)
}

// upstreamMessage 从错误响应体中提取消息，解析失败时返回 "Unknown error"
func upstreamMessage(body []byte) string {
	var parsed upstreamErrorBody
	if err := json.Unmarshal(body, &parsed); err == nil {
		if parsed.Message != "" {
			return parsed.Message
		}
		if parsed.Error != "" {
			return parsed.Error
		}
	}
	return "Unknown error"
}
