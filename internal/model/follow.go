package model

import "time"

// Follow 订阅关系，(UserID, AuthorID) 作为复合主键保证唯一
type Follow struct {
	UserID    uint64    `gorm:"primaryKey" json:"user_id"`
	AuthorID  uint64    `gorm:"primaryKey;index:idx_follow_author" json:"author_id"`
	CreatedAt time.Time `json:"created_at"`

	User   User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	Author User `gorm:"foreignKey:AuthorID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Follow) TableName() string {
	return "follows"
}
