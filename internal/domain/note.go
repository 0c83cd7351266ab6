// Package domain 定义领域模型和接口
package domain

import (
	"strings"
	"time"
)

// NoCategoryPlaceholder 笔记没有分类时的展示文本
const NoCategoryPlaceholder = "No category"

// Note 笔记领域模型
type Note struct {
	ID         int64
	Title      string
	Content    string
	IsFavorite bool
	Categories []*Category
	CreatedAt  time.Time
}

// CategoriesString 返回分类名称的拼接文本，供展示层使用
// 无分类时返回占位文本
func (n *Note) CategoriesString() string {
	if len(n.Categories) == 0 {
		return NoCategoryPlaceholder
	}
	names := make([]string, 0, len(n.Categories))
	for _, c := range n.Categories {
		names = append(names, c.Name)
	}
	return strings.Join(names, ", ")
}

// HasCategory 判断笔记是否引用了指定分类
func (n *Note) HasCategory(categoryID int64) bool {
	for _, c := range n.Categories {
		if c.ID == categoryID {
			return true
		}
	}
	return false
}

// CategoryIDs 返回笔记引用的分类 ID 列表
func (n *Note) CategoryIDs() []int64 {
	ids := make([]int64, 0, len(n.Categories))
	for _, c := range n.Categories {
		ids = append(ids, c.ID)
	}
	return ids
}
