package handlers

import (
	"github.com/just-tech-news/backend/internal/auth"
	"github.com/just-tech-news/backend/internal/store"
)

// Handler combines the per-resource handlers.
type Handler struct {
	Users    *UserHandler
	Posts    *PostHandler
	Comments *CommentHandler
}

// New wires every handler to the shared store and session manager.
func New(st *store.Store, sessions *auth.Sessions) *Handler {
	return &Handler{
		Users:    &UserHandler{store: st, sessions: sessions},
		Posts:    &PostHandler{store: st},
		Comments: &CommentHandler{store: st},
	}
}
