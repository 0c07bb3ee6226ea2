package handler

import (
	"github.com/Ebad-S/Movie-Streaming-API/internal/utils"
	"github.com/gin-gonic/gin"
)

// SearchMovies 按标题搜索电影，返回合并后的记录列表
func (h *Handler) SearchMovies(c *gin.Context) {
	title := c.Param("title")

	movies, err := h.Aggregator.SearchByTitle(c.Request.Context(), title)
	if err != nil {
		h.respondError(c, err)
		return
	}
	utils.JSON(c, movies)
}

// GetMovie 按 IMDb ID 获取单部电影的完整记录
func (h *Handler) GetMovie(c *gin.Context) {
	imdbID := c.Param("id")

	movie, err := h.Aggregator.GetByID(c.Request.Context(), imdbID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	utils.JSON(c, movie)
}
