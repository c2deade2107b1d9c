package models

import "gorm.io/gorm"

// SetupAssociations registers Vote as the join table behind the User/Post
// many-to-many relation. It has to run before AutoMigrate and before any
// query that preloads VotedPosts; otherwise gorm would invent its own
// user_voted_posts table instead of reusing vote.
func SetupAssociations(db *gorm.DB) error {
	return db.SetupJoinTable(&User{}, "VotedPosts", &Vote{})
}
