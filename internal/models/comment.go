package models

// Comment is a user's reply on a post.
type Comment struct {
	ID          int    `gorm:"primaryKey" json:"id"`
	CommentText string `gorm:"not null" json:"comment_text"`
	UserID      int    `gorm:"not null" json:"user_id"`
	PostID      int    `gorm:"not null" json:"post_id"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Comment) TableName() string { return "comment" }
