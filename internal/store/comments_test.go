package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/just-tech-news/backend/internal/apperror"
)

func TestCommentCreate(t *testing.T) {
	resetTables(t)
	author := createTestUser(t, "author", "author@example.com", "password1")
	commenter := createTestUser(t, "commenter", "commenter@example.com", "password1")
	post := createTestPost(t, "news", "content", author.ID)

	comment, err := testStore.Comments.Create("great find", post.ID, commenter.ID)
	require.NoError(t, err)
	assert.NotZero(t, comment.ID)
	assert.Equal(t, post.ID, comment.PostID)
	assert.Equal(t, "commenter", comment.User.Username)
}

func TestCommentCreate_RequiresText(t *testing.T) {
	resetTables(t)
	user := createTestUser(t, "user", "user@example.com", "password1")
	post := createTestPost(t, "news", "content", user.ID)

	_, err := testStore.Comments.Create("   ", post.ID, user.ID)
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestCommentCreate_RequiresExistingPost(t *testing.T) {
	resetTables(t)
	user := createTestUser(t, "user", "user@example.com", "password1")

	_, err := testStore.Comments.Create("into the void", 999, user.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestCommentAll(t *testing.T) {
	resetTables(t)
	user := createTestUser(t, "user", "user@example.com", "password1")
	post := createTestPost(t, "news", "content", user.ID)

	_, err := testStore.Comments.Create("first", post.ID, user.ID)
	require.NoError(t, err)
	_, err = testStore.Comments.Create("second", post.ID, user.ID)
	require.NoError(t, err)

	comments, err := testStore.Comments.All()
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "second", comments[0].CommentText)
	assert.Equal(t, "user", comments[0].User.Username)
}

func TestCommentDelete_OwnerOnly(t *testing.T) {
	resetTables(t)
	owner := createTestUser(t, "owner", "owner@example.com", "password1")
	other := createTestUser(t, "other", "other@example.com", "password1")
	post := createTestPost(t, "news", "content", owner.ID)

	comment, err := testStore.Comments.Create("mine", post.ID, owner.ID)
	require.NoError(t, err)

	_, err = testStore.Comments.Delete(comment.ID, other.ID)
	assert.ErrorIs(t, err, apperror.ErrForbidden)

	rows, err := testStore.Comments.Delete(comment.ID, owner.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, rows)

	_, err = testStore.Comments.Delete(comment.ID, owner.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
