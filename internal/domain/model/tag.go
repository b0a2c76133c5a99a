package model

import "time"

type Tag struct {
	UID  string `json:"uid" gorm:"type:uuid;primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;not null"`

	CreatedAt time.Time `json:"created_at"`

	Books []Book `json:"-" gorm:"many2many:book_tags;foreignKey:UID;joinForeignKey:TagUID;References:UID;joinReferences:BookUID"`
}

func (Tag) TableName() string {
	return "tags"
}

// 中間テーブル（book ⇔ tag の多対多）
type BookTag struct {
	BookUID string `gorm:"type:uuid;primaryKey"`
	TagUID  string `gorm:"type:uuid;primaryKey"`
}

func (BookTag) TableName() string {
	return "book_tags"
}
