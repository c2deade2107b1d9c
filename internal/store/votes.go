package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/just-tech-news/backend/internal/apperror"
	"github.com/just-tech-news/backend/internal/models"
)

// VoteStore persists votes and answers the join queries that hang off
// them: per-post counts and the posts a user has voted on.
type VoteStore struct {
	db *gorm.DB
}

// Cast records userID's vote on postID and returns the post's new vote
// count. A second vote by the same user on the same post is rejected.
func (s *VoteStore) Cast(userID, postID int) (int64, error) {
	var post models.Post
	if err := s.db.First(&post, postID).Error; err != nil {
		return 0, notFoundOr(err, "post", "loading post")
	}

	var existing models.Vote
	err := s.db.Where("user_id = ? AND post_id = ?", userID, postID).First(&existing).Error
	if err == nil {
		return 0, apperror.ValidationFailed("post_id", "Already upvoted this post")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, apperror.Storage("checking existing vote", err)
	}

	vote := models.Vote{UserID: userID, PostID: postID}
	if err := s.db.Create(&vote).Error; err != nil {
		return 0, apperror.Storage("creating vote", err)
	}

	return s.CountForPost(postID)
}

// CountForPost counts the votes on one post.
func (s *VoteStore) CountForPost(postID int) (int64, error) {
	var count int64
	if err := s.db.Model(&models.Vote{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, apperror.Storage("counting votes", err)
	}
	return count, nil
}

// ForUser returns the raw vote rows a user has cast.
func (s *VoteStore) ForUser(userID int) ([]models.Vote, error) {
	var votes []models.Vote
	if err := s.db.Where("user_id = ?", userID).Find(&votes).Error; err != nil {
		return nil, apperror.Storage("listing votes", err)
	}
	return votes, nil
}

// VotedPostsForUser resolves the many-to-many view with an explicit join
// through the vote table.
func (s *VoteStore) VotedPostsForUser(userID int) ([]models.Post, error) {
	var posts []models.Post
	err := s.db.
		Joins("JOIN vote ON vote.post_id = post.id").
		Where("vote.user_id = ?", userID).
		Find(&posts).Error
	if err != nil {
		return nil, apperror.Storage("listing voted posts", err)
	}
	return posts, nil
}
