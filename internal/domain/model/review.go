package model

import "time"

type Review struct {
	UID        string  `json:"uid" gorm:"type:uuid;primaryKey"`
	Rating     int     `json:"rating" gorm:"not null"`
	ReviewText string  `json:"review_text" gorm:"type:varchar;not null"`
	UserUID    *string `json:"user_uid" gorm:"type:uuid;index"`
	BookUID    *string `json:"book_uid" gorm:"type:uuid;index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Review) TableName() string {
	return "reviews"
}
