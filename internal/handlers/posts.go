package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/just-tech-news/backend/internal/auth"
	"github.com/just-tech-news/backend/internal/store"
)

type PostHandler struct {
	store *store.Store
}

// List returns all posts, newest first, each with its author and vote count.
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.store.Posts.All()
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]gin.H, 0, len(posts))
	for _, post := range posts {
		count, err := h.store.Votes.CountForPost(post.ID)
		if err != nil {
			respondError(c, err)
			return
		}
		responses = append(responses, gin.H{
			"id":         post.ID,
			"title":      post.Title,
			"content":    post.Content,
			"user_id":    post.UserID,
			"user":       gin.H{"username": post.User.Username},
			"vote_count": count,
		})
	}

	c.JSON(http.StatusOK, responses)
}

// Get returns one post with its author, comments and vote count.
func (h *PostHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	post, err := h.store.Posts.ByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	count, err := h.store.Votes.CountForPost(post.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         post.ID,
		"title":      post.Title,
		"content":    post.Content,
		"user_id":    post.UserID,
		"user":       gin.H{"username": post.User.Username},
		"comments":   post.Comments,
		"vote_count": count,
	})
}

// Create adds a post authored by the session user.
func (h *PostHandler) Create(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Please log in first"})
		return
	}

	var input struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	post, err := h.store.Posts.Create(input.Title, input.Content, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// Update edits a post owned by the session user.
func (h *PostHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	userID, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Please log in first"})
		return
	}

	var input struct {
		Title   *string `json:"title"`
		Content *string `json:"content"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	rows, err := h.store.Posts.Update(id, userID, store.PostChanges{
		Title:   input.Title,
		Content: input.Content,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": rows})
}

// Upvote casts the session user's vote on a post and returns the new count.
func (h *PostHandler) Upvote(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	userID, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Please log in first"})
		return
	}

	count, err := h.store.Votes.Cast(userID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"post_id": id, "vote_count": count})
}

// Delete removes a post owned by the session user, along with its
// comments and votes.
func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	userID, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Please log in first"})
		return
	}

	rows, err := h.store.Posts.Delete(id, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": rows})
}
