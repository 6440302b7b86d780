package models

// Reply is a comment attached to a board post.
type Reply struct {
	Base
	Content string `gorm:"size:120;not null"`
	BoardID uint   `gorm:"not null;index"`
	UserID  uint   `gorm:"not null;index"`
}

func (Reply) TableName() string { return "reply" }
