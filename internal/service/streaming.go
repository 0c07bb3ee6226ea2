package service

import (
	"context"
	"fmt"
	"net/url"

	"github.com/Ebad-S/Movie-Streaming-API/internal/config"
	"github.com/Ebad-S/Movie-Streaming-API/internal/model"
)

// StreamingClient 流媒体可用性 API 客户端（RapidAPI）
type StreamingClient struct {
	upstream *UpstreamClient
	baseURL  string
	host     string
	apiKey   string
}

// NewStreamingClient 创建流媒体可用性客户端
func NewStreamingClient(upstream *UpstreamClient, cfg *config.Config) *StreamingClient {
	return &StreamingClient{
		upstream: upstream,
		baseURL:  cfg.StreamingAPIURL,
		host:     cfg.StreamingAPIHost,
		apiKey:   cfg.StreamingAPIKey,
	}
}

// GetShow 按 IMDb ID 获取单部影片的流媒体信息
func (c *StreamingClient) GetShow(ctx context.Context, imdbID string) (*model.StreamingShow, error) {
	target := Target{
		URL:    fmt.Sprintf("%s/shows/%s?country=us", c.baseURL, url.PathEscape(imdbID)),
		Header: c.headers(),
	}

	var show model.StreamingShow
	if err := c.upstream.RequestJSON(ctx, target, &show); err != nil {
		return nil, fmt.Errorf("流媒体信息查询失败 (imdbID: %s): %w", imdbID, err)
	}
	return &show, nil
}

// SearchByTitle 按标题搜索影片
func (c *StreamingClient) SearchByTitle(ctx context.Context, title string) ([]model.StreamingShow, error) {
	target := Target{
		URL: fmt.Sprintf("%s/shows/search/title?title=%s&country=us&show_type=movie&output_language=en",
			c.baseURL, url.QueryEscape(title)),
		Header: c.headers(),
	}

	var shows []model.StreamingShow
	if err := c.upstream.RequestJSON(ctx, target, &shows); err != nil {
		return nil, fmt.Errorf("流媒体标题搜索失败 (title: %s): %w", title, err)
	}
	return shows, nil
}

func (c *StreamingClient) headers() map[string]string {
	return map[string]string{
		"X-RapidAPI-Key":  c.apiKey,
		"X-RapidAPI-Host": c.host,
	}
}
