// Package model 定义数据模型
package model

import (
	"gorm.io/gorm"
)

// AutoMigrate 迁移全部数据表
// 多对多关联表 note_category 由 GORM 随 Note 一起建立
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&Category{}, &Note{})
}
