package model

import (
	"time"
)

type Post struct {
	ID        uint64    `gorm:"primaryKey"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	AuthorID  uint64    `gorm:"not null;index:idx_author_id" json:"author_id"`
	GroupID   *uint64   `gorm:"index:idx_group_id" json:"group_id"` // nil 表示不属于任何小组
	Image     string    `gorm:"type:varchar(255)" json:"image"`
	CreatedAt time.Time `json:"created_at"`

	// 关联关系
	Author User   `gorm:"foreignKey:AuthorID;references:ID;constraint:OnDelete:CASCADE"`
	Group  *Group `gorm:"foreignKey:GroupID;references:ID;constraint:OnDelete:SET NULL"`
}

func (Post) TableName() string {
	return "posts"
}
