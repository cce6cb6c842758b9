package models

import "time"

// Role values for UserModel.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// UserModel links an identity-provider account to a local role.
// Created on first successful login or by the one-time admin setup.
type UserModel struct {
	Base
	Email       string     `json:"email"        gorm:"uniqueIndex;not null"`
	Role        string     `json:"role"         gorm:"default:user;not null;index"`
	ProviderUID string     `json:"provider_uid" gorm:"uniqueIndex;not null"`
	LastLogin   *time.Time `json:"last_login"`
}

func (UserModel) TableName() string { return "users" }
