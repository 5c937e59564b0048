package model

import (
	"time"
)

// UserRoleModel keeps the role in its own relation (admin | course_user),
// one row per user.
type UserRoleModel struct {
	UserRoleID        uint      `gorm:"column:user_role_id;primaryKey;autoIncrement" json:"user_role_id"`
	UserRoleUserID    string    `gorm:"column:user_role_user_id;type:uuid;not null;uniqueIndex" json:"user_role_user_id"`
	UserRoleRole      string    `gorm:"column:user_role_role;type:varchar(32);not null" json:"user_role_role"`
	UserRoleCreatedAt time.Time `gorm:"column:user_role_created_at;autoCreateTime" json:"user_role_created_at"`
}

func (UserRoleModel) TableName() string {
	return "user_roles"
}
