package models

// Board is a single post on the board.
type Board struct {
	Base
	Title   string  `gorm:"size:100;not null"`
	Writer  string  `gorm:"size:10;not null"`
	Tag     string  `gorm:"size:10"`
	Content string  `gorm:"type:text;not null"`
	Replies []Reply `gorm:"foreignKey:BoardID"`
}

func (Board) TableName() string { return "board" }
