package model

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	UID          string `json:"uid" gorm:"type:uuid;primaryKey"`
	Username     string `json:"username" gorm:"type:varchar(8);not null"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email" gorm:"type:varchar(40);uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"column:password_hash;not null"`
	Role         Role   `json:"role" gorm:"type:varchar(20);not null;default:'user'"`
	IsVerified   bool   `json:"is_verified" gorm:"not null;default:false"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Books   []Book   `json:"books,omitempty" gorm:"foreignKey:UserUID"`
	Reviews []Review `json:"reviews,omitempty" gorm:"foreignKey:UserUID"`
}

func (User) TableName() string {
	return "user_accounts"
}
