package models

import "time"

// Base carries the columns shared by every table: surrogate key, audit
// timestamps (maintained by GORM on write) and the soft-delete flag.
//
// Soft deletion is deliberately a plain boolean rather than gorm.DeletedAt:
// repositories filter on is_deleted explicitly so the contract is visible at
// the call site instead of hidden in query rewriting.
type Base struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Deleted   bool `gorm:"column:is_deleted;not null;default:false"`
}
