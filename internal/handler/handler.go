package handler

import (
	"log"
	"net/http"

	"github.com/Ebad-S/Movie-Streaming-API/internal/config"
	"github.com/Ebad-S/Movie-Streaming-API/internal/middleware"
	"github.com/Ebad-S/Movie-Streaming-API/internal/service"
	"github.com/Ebad-S/Movie-Streaming-API/internal/utils"
	"github.com/gin-gonic/gin"
)

// Handler HTTP 处理器
type Handler struct {
	Config     *config.Config
	Aggregator *service.Aggregator
	Posters    *service.PosterStore
}

// NewHandler 创建处理器并组装服务依赖
func NewHandler(cfg *config.Config) *Handler {
	// 创建上游客户端
	upstream := service.NewUpstreamClient(cfg.UpstreamTimeout)

	// 创建两个上游 API 客户端
	omdb := service.NewOMDbClient(upstream, cfg)
	streaming := service.NewStreamingClient(upstream, cfg)

	// 创建聚合服务和海报存储
	aggregator := service.NewAggregator(omdb, streaming, upstream)
	posters := service.NewPosterStore(cfg.PostersDir, aggregator)

	return &Handler{
		Config:     cfg,
		Aggregator: aggregator,
		Posters:    posters,
	}
}

// Health 健康检查
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// respondError 按错误分类渲染统一的错误响应
func (h *Handler) respondError(c *gin.Context, err error) {
	status := service.StatusOf(err)
	if status >= http.StatusInternalServerError {
		log.Printf("[Handler] %s 请求处理失败 (%s): %v", middleware.GetRequestID(c), c.Request.URL.Path, err)
	}
	utils.Error(c, status, service.MessageOf(err))
}
