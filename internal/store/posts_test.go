package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/just-tech-news/backend/internal/apperror"
)

func TestPostCreate(t *testing.T) {
	resetTables(t)
	user := createTestUser(t, "poster", "poster@example.com", "password1")

	post, err := testStore.Posts.Create("Taskmaster goes public!", "https://example.com/taskmaster", user.ID)
	require.NoError(t, err)
	assert.NotZero(t, post.ID)
	assert.Equal(t, user.ID, post.UserID)
	assert.Equal(t, "poster", post.User.Username)
}

func TestPostCreate_RequiresTitleAndContent(t *testing.T) {
	resetTables(t)
	user := createTestUser(t, "poster", "poster@example.com", "password1")

	_, err := testStore.Posts.Create("", "some content", user.ID)
	assert.ErrorIs(t, err, apperror.ErrValidation)

	_, err = testStore.Posts.Create("a title", "   ", user.ID)
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestPostAll_NewestFirst(t *testing.T) {
	resetTables(t)
	user := createTestUser(t, "poster", "poster@example.com", "password1")
	createTestPost(t, "first", "one", user.ID)
	createTestPost(t, "second", "two", user.ID)

	posts, err := testStore.Posts.All()
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "second", posts[0].Title)
	assert.Equal(t, "first", posts[1].Title)
	assert.Equal(t, "poster", posts[0].User.Username)
}

func TestPostByID_PreloadsComments(t *testing.T) {
	resetTables(t)
	author := createTestUser(t, "author", "author@example.com", "password1")
	commenter := createTestUser(t, "commenter", "commenter@example.com", "password1")
	post := createTestPost(t, "discuss", "please", author.ID)

	_, err := testStore.Comments.Create("interesting", post.ID, commenter.ID)
	require.NoError(t, err)

	loaded, err := testStore.Posts.ByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "author", loaded.User.Username)
	require.Len(t, loaded.Comments, 1)
	assert.Equal(t, "interesting", loaded.Comments[0].CommentText)
	assert.Equal(t, "commenter", loaded.Comments[0].User.Username)
}

func TestPostByID_NotFound(t *testing.T) {
	resetTables(t)

	_, err := testStore.Posts.ByID(12345)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestPostUpdate_OwnerOnly(t *testing.T) {
	resetTables(t)
	owner := createTestUser(t, "owner", "owner@example.com", "password1")
	other := createTestUser(t, "other", "other@example.com", "password1")
	post := createTestPost(t, "original", "content", owner.ID)

	title := "hijacked"
	_, err := testStore.Posts.Update(post.ID, other.ID, PostChanges{Title: &title})
	assert.ErrorIs(t, err, apperror.ErrForbidden)

	title = "edited"
	rows, err := testStore.Posts.Update(post.ID, owner.ID, PostChanges{Title: &title})
	require.NoError(t, err)
	assert.EqualValues(t, 1, rows)

	loaded, err := testStore.Posts.ByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "edited", loaded.Title)
	assert.Equal(t, "content", loaded.Content)
}

func TestPostDelete_CascadesCommentsAndVotes(t *testing.T) {
	resetTables(t)
	owner := createTestUser(t, "owner", "owner@example.com", "password1")
	voter := createTestUser(t, "voter", "voter@example.com", "password1")
	post := createTestPost(t, "doomed", "content", owner.ID)

	_, err := testStore.Comments.Create("rip", post.ID, voter.ID)
	require.NoError(t, err)
	_, err = testStore.Votes.Cast(voter.ID, post.ID)
	require.NoError(t, err)

	rows, err := testStore.Posts.Delete(post.ID, owner.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, rows)

	_, err = testStore.Posts.ByID(post.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	comments, err := testStore.Comments.All()
	require.NoError(t, err)
	assert.Empty(t, comments)

	count, err := testStore.Votes.CountForPost(post.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestPostDelete_OwnerOnly(t *testing.T) {
	resetTables(t)
	owner := createTestUser(t, "owner", "owner@example.com", "password1")
	other := createTestUser(t, "other", "other@example.com", "password1")
	post := createTestPost(t, "keep", "content", owner.ID)

	_, err := testStore.Posts.Delete(post.ID, other.ID)
	assert.ErrorIs(t, err, apperror.ErrForbidden)

	_, err = testStore.Posts.ByID(post.ID)
	assert.NoError(t, err)
}
