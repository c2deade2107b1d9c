package store

import (
	"strings"

	"gorm.io/gorm"

	"github.com/just-tech-news/backend/internal/apperror"
	"github.com/just-tech-news/backend/internal/models"
)

// CommentStore persists comments.
type CommentStore struct {
	db *gorm.DB
}

// All returns every comment with the commenting user, newest first.
func (s *CommentStore) All() ([]models.Comment, error) {
	var comments []models.Comment
	if err := s.db.Preload("User").Order("id desc").Find(&comments).Error; err != nil {
		return nil, apperror.Storage("listing comments", err)
	}
	return comments, nil
}

// Create adds a comment by userID on the given post. The post must exist.
func (s *CommentStore) Create(commentText string, postID, userID int) (*models.Comment, error) {
	if strings.TrimSpace(commentText) == "" {
		return nil, apperror.ValidationFailed("comment_text", "comment_text is required")
	}

	var post models.Post
	if err := s.db.First(&post, postID).Error; err != nil {
		return nil, notFoundOr(err, "post", "loading post")
	}

	comment := models.Comment{
		CommentText: commentText,
		PostID:      postID,
		UserID:      userID,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, apperror.Storage("creating comment", err)
	}

	if err := s.db.Preload("User").First(&comment, comment.ID).Error; err != nil {
		return nil, apperror.Storage("reloading comment", err)
	}
	return &comment, nil
}

// Delete removes a comment owned by userID and returns the deletion count.
func (s *CommentStore) Delete(id, userID int) (int64, error) {
	var comment models.Comment
	if err := s.db.First(&comment, id).Error; err != nil {
		return 0, notFoundOr(err, "comment", "loading comment")
	}
	if comment.UserID != userID {
		return 0, apperror.Forbidden("You can only delete your own comments")
	}

	tx := s.db.Delete(&models.Comment{}, id)
	if tx.Error != nil {
		return 0, apperror.Storage("deleting comment", tx.Error)
	}
	return tx.RowsAffected, nil
}
