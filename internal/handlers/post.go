package handlers

import (
	"net/http"

	"goboard/internal/repository"
	"goboard/internal/services"
	"goboard/internal/utils"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	posts *services.PostService
}

func NewPostHandler(posts *services.PostService) *PostHandler {
	return &PostHandler{posts: posts}
}

type createPostRequest struct {
	Title     string   `json:"title" binding:"required"`
	Content   string   `json:"content"`
	CreatedBy string   `json:"created_by" binding:"required"`
	Tags      []string `json:"tags"`
}

type updatePostRequest struct {
	Title     string    `json:"title" binding:"required"`
	Content   string    `json:"content"`
	UpdatedBy string    `json:"updated_by" binding:"required"`
	Tags      *[]string `json:"tags"`
}

type deletePostRequest struct {
	DeletedBy string `json:"deleted_by" binding:"required"`
}

func (h *PostHandler) Create(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.posts.Create(req.Title, req.Content, req.CreatedBy, req.Tags)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *PostHandler) Update(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}
	var req updatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updatedID, err := h.posts.Update(id, req.Title, req.Content, req.UpdatedBy, req.Tags)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": updatedID})
}

func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}
	var req deletePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deletedID, err := h.posts.Delete(id, req.DeletedBy)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": deletedID})
}

func (h *PostHandler) Detail(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}

	detail, err := h.posts.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// List handles GET /api/posts?page=&size=&title=&created_by=&tag=.
// page is zero-based; an out-of-range page returns an empty content slice
// with the total count intact.
func (h *PostHandler) List(c *gin.Context) {
	page := utils.StringToInt(c.Query("page"), 0)
	size := utils.StringToInt(c.Query("size"), 20)

	filter := repository.PostFilter{
		Title:     c.Query("title"),
		CreatedBy: c.Query("created_by"),
		Tag:       c.Query("tag"),
	}

	result, err := h.posts.FindPage(page, size, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
