package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/just-tech-news/backend/internal/auth"
	"github.com/just-tech-news/backend/internal/store"
)

type CommentHandler struct {
	store *store.Store
}

// List returns all comments with the commenting user.
func (h *CommentHandler) List(c *gin.Context) {
	comments, err := h.store.Comments.All()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// Create adds a comment by the session user on an existing post.
func (h *CommentHandler) Create(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Please log in first"})
		return
	}

	var input struct {
		CommentText string `json:"comment_text"`
		PostID      int    `json:"post_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	comment, err := h.store.Comments.Create(input.CommentText, input.PostID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

// Delete removes a comment owned by the session user.
func (h *CommentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	userID, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Please log in first"})
		return
	}

	rows, err := h.store.Comments.Delete(id, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": rows})
}
