package model

import "time"

type Book struct {
	UID           string    `json:"uid" gorm:"type:uuid;primaryKey"`
	Title         string    `json:"title" gorm:"not null"`
	Author        string    `json:"author" gorm:"not null"`
	Publisher     string    `json:"publisher" gorm:"not null"`
	PublishedDate time.Time `json:"published_date" gorm:"type:date"`
	PageCount     int       `json:"page_count" gorm:"not null"`
	Language      string    `json:"language" gorm:"not null"`
	UserUID       *string   `json:"user_uid" gorm:"type:uuid;index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Reviews []Review `json:"reviews,omitempty" gorm:"foreignKey:BookUID"`
	Tags    []Tag    `json:"tags,omitempty" gorm:"many2many:book_tags;foreignKey:UID;joinForeignKey:BookUID;References:UID;joinReferences:TagUID"`
}

func (Book) TableName() string {
	return "books"
}
