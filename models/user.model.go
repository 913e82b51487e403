package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name        string `json:"name" gorm:"default:''"`
	Email       string `json:"email" gorm:"unique;not null"`
	Password    string `json:"password,omitempty" gorm:"not null"`
	Role        string `json:"role" gorm:"default:'EMPLOYEE'"` // EMPLOYEE, ADMIN
	Designation string `json:"designation" gorm:"default:''"`
	IsDeleted   bool   `gorm:"default:false"`
}
