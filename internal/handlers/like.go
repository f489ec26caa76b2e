package handlers

import (
	"net/http"

	"goboard/internal/services"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	likes *services.LikeService
}

func NewLikeHandler(likes *services.LikeService) *LikeHandler {
	return &LikeHandler{likes: likes}
}

type createLikeRequest struct {
	CreatedBy string `json:"created_by" binding:"required"`
}

func (h *LikeHandler) Create(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}
	var req createLikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.likes.Create(id, req.CreatedBy); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
