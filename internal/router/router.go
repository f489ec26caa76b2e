package router

import (
	"net/http"

	"goboard/internal/db"
	"goboard/internal/handlers"
	"goboard/internal/services"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Services
	likeService := services.NewLikeService(db.DB)
	postService := services.NewPostService(db.DB, likeService)
	commentService := services.NewCommentService(db.DB)

	// Handlers
	postHandler := handlers.NewPostHandler(postService)
	likeHandler := handlers.NewLikeHandler(likeService)
	commentHandler := handlers.NewCommentHandler(commentService)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/posts", postHandler.List)                    // 列表 / 搜索
		api.POST("/posts", postHandler.Create)                 // 发布帖子
		api.GET("/posts/:id", postHandler.Detail)              // 帖子详情
		api.PUT("/posts/:id", postHandler.Update)              // 更新帖子
		api.DELETE("/posts/:id", postHandler.Delete)           // 删除帖子
		api.POST("/posts/:id/like", likeHandler.Create)        // 点赞
		api.POST("/posts/:id/comments", commentHandler.Create) // 发表评论
	}
}
