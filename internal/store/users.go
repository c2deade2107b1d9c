package store

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/just-tech-news/backend/internal/apperror"
	"github.com/just-tech-news/backend/internal/auth"
	"github.com/just-tech-news/backend/internal/models"
)

// UserStore persists users. Every write that carries a password replaces
// it with its bcrypt hash before the row is handed to gorm.
type UserStore struct {
	db       *gorm.DB
	validate *validator.Validate
}

// NewUser is the validated input for creating an account.
type NewUser struct {
	Username string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=4"`
}

// UserChanges holds the fields of a partial update; nil means unchanged.
type UserChanges struct {
	Username *string
	Email    *string
	Password *string
}

// All returns every user. Password hashes stay in the struct but are
// excluded from serialization by the model's json tag.
func (s *UserStore) All() ([]models.User, error) {
	var users []models.User
	if err := s.db.Find(&users).Error; err != nil {
		return nil, apperror.Storage("listing users", err)
	}
	return users, nil
}

// ByID loads one user together with their posts, comments and voted posts.
func (s *UserStore) ByID(id int) (*models.User, error) {
	var user models.User
	err := s.db.
		Preload("Posts").
		Preload("Comments").
		Preload("VotedPosts").
		First(&user, id).Error
	if err != nil {
		return nil, notFoundOr(err, "user", "loading user")
	}
	return &user, nil
}

// ByEmail loads a user by email for the login path.
func (s *UserStore) ByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, notFoundOr(err, "user", "loading user by email")
	}
	return &user, nil
}

// Create validates the input, rejects duplicate emails, hashes the
// password, and inserts the row.
func (s *UserStore) Create(in NewUser) (*models.User, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, asValidationError(err)
	}

	var existing models.User
	err := s.db.Where("email = ?", in.Email).First(&existing).Error
	if err == nil {
		return nil, apperror.ValidationFailed("email", "This email is already registered")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.Storage("checking email uniqueness", err)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, apperror.Storage("hashing password", err)
	}

	user := models.User{
		Username: in.Username,
		Email:    in.Email,
		Password: hash,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, apperror.Storage("creating user", err)
	}
	return &user, nil
}

// Update applies a partial update to the user with the given id and
// returns the number of updated rows. A new password is re-hashed before
// it touches the database.
func (s *UserStore) Update(id int, ch UserChanges) (int64, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return 0, notFoundOr(err, "user", "loading user")
	}

	updates := map[string]interface{}{}

	if ch.Username != nil {
		if err := s.validate.Var(*ch.Username, "required"); err != nil {
			return 0, apperror.ValidationFailed("username", "username is required")
		}
		updates["username"] = *ch.Username
	}
	if ch.Email != nil {
		if err := s.validate.Var(*ch.Email, "required,email"); err != nil {
			return 0, apperror.ValidationFailed("email", "email must be a valid email address")
		}
		var existing models.User
		err := s.db.Where("email = ? AND id <> ?", *ch.Email, id).First(&existing).Error
		if err == nil {
			return 0, apperror.ValidationFailed("email", "This email is already registered")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperror.Storage("checking email uniqueness", err)
		}
		updates["email"] = *ch.Email
	}
	if ch.Password != nil {
		if err := s.validate.Var(*ch.Password, "required,min=4"); err != nil {
			return 0, apperror.ValidationFailed("password", "password must be at least 4 characters long")
		}
		hash, err := auth.HashPassword(*ch.Password)
		if err != nil {
			return 0, apperror.Storage("hashing password", err)
		}
		updates["password"] = hash
	}

	if len(updates) == 0 {
		return 0, apperror.ValidationFailed("", "No fields to update")
	}

	tx := s.db.Model(&user).Updates(updates)
	if tx.Error != nil {
		return 0, apperror.Storage("updating user", tx.Error)
	}
	return tx.RowsAffected, nil
}

// Delete removes a user by primary key and returns the deletion count.
func (s *UserStore) Delete(id int) (int64, error) {
	tx := s.db.Delete(&models.User{}, id)
	if tx.Error != nil {
		return 0, apperror.Storage("deleting user", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return 0, apperror.NotFound("user")
	}
	return tx.RowsAffected, nil
}

// asValidationError turns the first field failure from the validator into
// the API's validation error with a readable message.
func asValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperror.ValidationFailed("", "invalid input")
	}
	fe := verrs[0]
	switch fe.Field() {
	case "Username":
		return apperror.ValidationFailed("username", "username is required")
	case "Email":
		return apperror.ValidationFailed("email", "email must be a valid email address")
	case "Password":
		if fe.Tag() == "min" {
			return apperror.ValidationFailed("password", "password must be at least 4 characters long")
		}
		return apperror.ValidationFailed("password", "password is required")
	}
	return apperror.ValidationFailed(fe.Field(), fmt.Sprintf("invalid value for %s", fe.Field()))
}
