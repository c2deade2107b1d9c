package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/just-tech-news/backend/internal/apperror"
)

func TestVoteCast_IncrementsCount(t *testing.T) {
	resetTables(t)
	author := createTestUser(t, "author", "author@example.com", "password1")
	a := createTestUser(t, "alice", "alice@example.com", "password1")
	b := createTestUser(t, "bob", "bob@example.com", "password1")
	post := createTestPost(t, "votable", "content", author.ID)

	count, err := testStore.Votes.Cast(a.ID, post.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	count, err = testStore.Votes.Cast(b.ID, post.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestVoteCast_RejectsDuplicate(t *testing.T) {
	resetTables(t)
	user := createTestUser(t, "user", "user@example.com", "password1")
	post := createTestPost(t, "votable", "content", user.ID)

	_, err := testStore.Votes.Cast(user.ID, post.ID)
	require.NoError(t, err)

	_, err = testStore.Votes.Cast(user.ID, post.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrValidation)

	count, err := testStore.Votes.CountForPost(post.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestVoteCast_RequiresExistingPost(t *testing.T) {
	resetTables(t)
	user := createTestUser(t, "user", "user@example.com", "password1")

	_, err := testStore.Votes.Cast(user.ID, 999)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestVotesForUser(t *testing.T) {
	resetTables(t)
	user := createTestUser(t, "user", "user@example.com", "password1")
	p1 := createTestPost(t, "one", "content", user.ID)
	p2 := createTestPost(t, "two", "content", user.ID)

	_, err := testStore.Votes.Cast(user.ID, p1.ID)
	require.NoError(t, err)
	_, err = testStore.Votes.Cast(user.ID, p2.ID)
	require.NoError(t, err)

	votes, err := testStore.Votes.ForUser(user.ID)
	require.NoError(t, err)
	assert.Len(t, votes, 2)
}

func TestVotedPostsForUser(t *testing.T) {
	resetTables(t)
	author := createTestUser(t, "author", "author@example.com", "password1")
	voter := createTestUser(t, "voter", "voter@example.com", "password1")
	liked := createTestPost(t, "liked", "content", author.ID)
	createTestPost(t, "ignored", "content", author.ID)

	_, err := testStore.Votes.Cast(voter.ID, liked.ID)
	require.NoError(t, err)

	posts, err := testStore.Votes.VotedPostsForUser(voter.ID)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "liked", posts[0].Title)

	posts, err = testStore.Votes.VotedPostsForUser(author.ID)
	require.NoError(t, err)
	assert.Empty(t, posts)
}
