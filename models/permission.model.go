package models

import "gorm.io/gorm"

// Permission grants a user a single named capability. Rows are seeded at
// registration based on role and checked by the permission middleware.
type Permission struct {
	gorm.Model
	UserID     uint   `json:"user_id" gorm:"index;not null"`
	Role       string `json:"role"`
	Permission string `json:"permission" gorm:"index;not null"`
	IsDeleted  bool   `gorm:"default:false"`
}
