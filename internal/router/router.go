package router

import (
	"net/http"

	"github.com/Ebad-S/Movie-Streaming-API/internal/handler"
	"github.com/Ebad-S/Movie-Streaming-API/internal/utils"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes 注册所有路由
func RegisterRoutes(r *gin.Engine, h *handler.Handler) {
	// 健康检查
	r.GET("/health", h.Health)

	// ==================== 电影查询 ====================
	movies := r.Group("/movies")
	{
		movies.GET("/search/:title", h.SearchMovies)
		movies.GET("/data/:id", h.GetMovie)
	}

	// ==================== 海报 ====================
	posters := r.Group("/posters")
	{
		posters.POST("/add/:id", h.UploadPoster)
		posters.GET("/:id", h.GetPoster)
	}

	// 未匹配的路由统一返回错误结构
	r.NoRoute(func(c *gin.Context) {
		utils.Error(c, http.StatusNotFound, "Resource not found")
	})
}
