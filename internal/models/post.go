package models

// Post is an article written by a user.
type Post struct {
	ID      int    `gorm:"primaryKey" json:"id"`
	Title   string `gorm:"not null" json:"title"`
	Content string `gorm:"not null" json:"content"`
	UserID  int    `gorm:"not null" json:"user_id"`

	User     User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Comments []Comment `gorm:"foreignKey:PostID" json:"comments,omitempty"`
	Votes    []Vote    `gorm:"foreignKey:PostID" json:"votes,omitempty"`
}

func (Post) TableName() string { return "post" }
