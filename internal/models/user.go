package models

// User is an account that authors posts and comments and casts votes.
// The password column only ever holds a bcrypt hash; the json "-" tag
// keeps it out of every serialized response.
type User struct {
	ID       int    `gorm:"primaryKey" json:"id"`
	Username string `gorm:"not null" json:"username"`
	Email    string `gorm:"unique;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`

	Posts    []Post    `gorm:"foreignKey:UserID" json:"posts,omitempty"`
	Comments []Comment `gorm:"foreignKey:UserID" json:"comments,omitempty"`
	Votes    []Vote    `gorm:"foreignKey:UserID" json:"votes,omitempty"`

	// VotedPosts resolves the many-to-many relation through the vote
	// table. SetupAssociations must register Vote as the join table
	// before this relation is migrated or preloaded.
	VotedPosts []Post `gorm:"many2many:vote" json:"voted_posts,omitempty"`
}

// TableName keeps the table singular; gorm would otherwise pluralize to "users".
func (User) TableName() string { return "user" }
