package service

import (
	"context"
	"fmt"
	"net/url"

	"github.com/Ebad-S/Movie-Streaming-API/internal/config"
	"github.com/Ebad-S/Movie-Streaming-API/internal/model"
)

// OMDbClient 元数据 API 客户端
type OMDbClient struct {
	upstream *UpstreamClient
	baseURL  string
	apiKey   string
}

// NewOMDbClient 创建 OMDb 客户端
func NewOMDbClient(upstream *UpstreamClient, cfg *config.Config) *OMDbClient {
	return &OMDbClient{
		upstream: upstream,
		baseURL:  cfg.OMDBAPIURL,
		apiKey:   cfg.OMDBAPIKey,
	}
}

// GetByID 按 IMDb ID 查询电影记录
// 未命中时记录的 Response 为 "False"，是否命中由调用方判断
func (c *OMDbClient) GetByID(ctx context.Context, imdbID string) (*model.OMDbMovie, error) {
	target := Target{
		URL: fmt.Sprintf("%s/?i=%s&apikey=%s", c.baseURL, url.QueryEscape(imdbID), url.QueryEscape(c.apiKey)),
	}

	var movie model.OMDbMovie
	if err := c.upstream.RequestJSON(ctx, target, &movie); err != nil {
		return nil, fmt.Errorf("OMDb 查询失败 (imdbID: %s): %w", imdbID, err)
	}
	return &movie, nil
}
