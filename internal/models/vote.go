package models

// Vote links a user to a post they voted on. It is a pure join record:
// it has no meaning beyond connecting the two foreign keys, and it doubles
// as the through table for User.VotedPosts.
type Vote struct {
	ID     int `gorm:"primaryKey" json:"id"`
	UserID int `gorm:"not null" json:"user_id"`
	PostID int `gorm:"not null" json:"post_id"`
}

func (Vote) TableName() string { return "vote" }
