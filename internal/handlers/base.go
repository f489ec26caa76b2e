package handlers

import (
	"net/http"
	"strconv"

	"goboard/internal/errs"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// respondError maps a domain error to its HTTP status. Storage failures are
// logged and surfaced as an opaque server error.
func respondError(c *gin.Context, err error) {
	status := errs.StatusCode(err)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// postID parses the :id path parameter. Non-numeric ids are client errors.
func postID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return 0, false
	}
	return uint(id), true
}
