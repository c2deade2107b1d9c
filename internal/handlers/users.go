package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/just-tech-news/backend/internal/apperror"
	"github.com/just-tech-news/backend/internal/auth"
	"github.com/just-tech-news/backend/internal/logger"
	"github.com/just-tech-news/backend/internal/store"
)

type UserHandler struct {
	store    *store.Store
	sessions *auth.Sessions
}

// List returns all users. The password hash is excluded by the model's
// json tag, so the raw structs are safe to serialize.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.store.Users.All()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Get returns one user with their posts, comments and voted posts.
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	user, err := h.store.Users.ByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Votes returns the raw vote rows a user has cast.
func (h *UserHandler) Votes(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	votes, err := h.store.Votes.ForUser(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, votes)
}

// Create registers a new user. The store hashes the password before it
// is persisted; the response never carries it.
func (h *UserHandler) Create(c *gin.Context) {
	var input struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	user, err := h.store.Users.Create(store.NewUser{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Sugar.Infow("user created", "id", user.ID, "username", user.Username)
	c.JSON(http.StatusOK, user)
}

// Login checks the credentials against the stored hash and starts a
// session. Unknown email and wrong password keep their distinct messages.
func (h *UserHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	user, err := h.store.Users.ByEmail(input.Email)
	if err != nil {
		// A missing user at login gets the fixed auth message, not a 404.
		if errors.Is(err, apperror.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "No user with that email address!"})
			return
		}
		respondError(c, err)
		return
	}

	if !auth.CheckPassword(user.Password, input.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Incorrect password!"})
		return
	}

	token, err := h.sessions.Issue(user.ID, user.Username)
	if err != nil {
		respondError(c, apperror.Storage("issuing session", err))
		return
	}
	h.sessions.SetCookie(c, token)

	c.JSON(http.StatusOK, gin.H{
		"user":    user,
		"message": "You are now logged in!",
	})
}

// Logout ends the session by expiring the cookie.
func (h *UserHandler) Logout(c *gin.Context) {
	h.sessions.ClearCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "You are now logged out!"})
}

// Update applies a partial update; a new password is re-hashed on the way in.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input struct {
		Username *string `json:"username"`
		Email    *string `json:"email"`
		Password *string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	rows, err := h.store.Users.Update(id, store.UserChanges{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": rows})
}

// Delete removes a user permanently.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	rows, err := h.store.Users.Delete(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": rows})
}
