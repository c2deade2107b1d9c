package store

import (
	"strings"

	"gorm.io/gorm"

	"github.com/just-tech-news/backend/internal/apperror"
	"github.com/just-tech-news/backend/internal/models"
)

// PostStore persists posts.
type PostStore struct {
	db *gorm.DB
}

// PostChanges holds the fields of a partial post update.
type PostChanges struct {
	Title   *string
	Content *string
}

// All returns every post with its author, newest first.
func (s *PostStore) All() ([]models.Post, error) {
	var posts []models.Post
	if err := s.db.Preload("User").Order("id desc").Find(&posts).Error; err != nil {
		return nil, apperror.Storage("listing posts", err)
	}
	return posts, nil
}

// ByID loads one post with its author and comments (each with the
// commenting user).
func (s *PostStore) ByID(id int) (*models.Post, error) {
	var post models.Post
	err := s.db.
		Preload("User").
		Preload("Comments").
		Preload("Comments.User").
		First(&post, id).Error
	if err != nil {
		return nil, notFoundOr(err, "post", "loading post")
	}
	return &post, nil
}

// Create inserts a post authored by userID.
func (s *PostStore) Create(title, content string, userID int) (*models.Post, error) {
	if strings.TrimSpace(title) == "" {
		return nil, apperror.ValidationFailed("title", "title is required")
	}
	if strings.TrimSpace(content) == "" {
		return nil, apperror.ValidationFailed("content", "content is required")
	}

	post := models.Post{
		Title:   title,
		Content: content,
		UserID:  userID,
	}
	if err := s.db.Create(&post).Error; err != nil {
		return nil, apperror.Storage("creating post", err)
	}

	if err := s.db.Preload("User").First(&post, post.ID).Error; err != nil {
		return nil, apperror.Storage("reloading post", err)
	}
	return &post, nil
}

// Update edits a post owned by userID and returns the updated row count.
func (s *PostStore) Update(id, userID int, ch PostChanges) (int64, error) {
	var post models.Post
	if err := s.db.First(&post, id).Error; err != nil {
		return 0, notFoundOr(err, "post", "loading post")
	}
	if post.UserID != userID {
		return 0, apperror.Forbidden("You can only edit your own posts")
	}

	updates := map[string]interface{}{}
	if ch.Title != nil {
		if strings.TrimSpace(*ch.Title) == "" {
			return 0, apperror.ValidationFailed("title", "title is required")
		}
		updates["title"] = *ch.Title
	}
	if ch.Content != nil {
		if strings.TrimSpace(*ch.Content) == "" {
			return 0, apperror.ValidationFailed("content", "content is required")
		}
		updates["content"] = *ch.Content
	}
	if len(updates) == 0 {
		return 0, apperror.ValidationFailed("", "No fields to update")
	}

	tx := s.db.Model(&post).Updates(updates)
	if tx.Error != nil {
		return 0, apperror.Storage("updating post", tx.Error)
	}
	return tx.RowsAffected, nil
}

// Delete removes a post owned by userID along with its comments and
// votes, returning the deletion count.
func (s *PostStore) Delete(id, userID int) (int64, error) {
	var post models.Post
	if err := s.db.First(&post, id).Error; err != nil {
		return 0, notFoundOr(err, "post", "loading post")
	}
	if post.UserID != userID {
		return 0, apperror.Forbidden("You can only delete your own posts")
	}

	var deleted int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Vote{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Post{}, id)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, apperror.Storage("deleting post", err)
	}
	return deleted, nil
}
