// Package store is the data-access layer. Each entity gets an explicit
// repository over the injected gorm handle; the User write path is where
// passwords are hashed, so a plaintext value never reaches the database.
package store

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/just-tech-news/backend/internal/apperror"
)

// Store bundles the per-entity repositories over one shared connection.
type Store struct {
	Users    *UserStore
	Posts    *PostStore
	Comments *CommentStore
	Votes    *VoteStore
}

func New(db *gorm.DB) *Store {
	validate := validator.New()
	return &Store{
		Users:    &UserStore{db: db, validate: validate},
		Posts:    &PostStore{db: db},
		Comments: &CommentStore{db: db},
		Votes:    &VoteStore{db: db},
	}
}

// notFoundOr classifies a read error: a missing row becomes the resource's
// NotFound error, anything else is a storage fault.
func notFoundOr(err error, resource, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound(resource)
	}
	return apperror.Storage(op, err)
}
