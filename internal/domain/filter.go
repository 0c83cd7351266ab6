package domain

import "time"

// NoteFilter 笔记查询过滤条件
// 所有字段均为可选，未设置的字段不参与过滤，已设置字段之间为 AND 关系
type NoteFilter struct {
	// StartDate 创建时间下界（含）
	StartDate *time.Time
	// EndDate 创建时间上界（含）
	EndDate *time.Time
	// CategoryID 笔记必须引用的分类
	CategoryID *int64
	// IsFavorite 收藏标记精确匹配
	IsFavorite *bool
}

// Match 判断笔记是否满足过滤条件
func (f *NoteFilter) Match(n *Note) bool {
	if f == nil {
		return true
	}
	if f.StartDate != nil && n.CreatedAt.Before(*f.StartDate) {
		return false
	}
	if f.EndDate != nil && n.CreatedAt.After(*f.EndDate) {
		return false
	}
	if f.CategoryID != nil && !n.HasCategory(*f.CategoryID) {
		return false
	}
	if f.IsFavorite != nil && n.IsFavorite != *f.IsFavorite {
		return false
	}
	return true
}

// CategoryFilter 分类查询过滤条件
type CategoryFilter struct {
	// NameContains 名称包含匹配（不区分大小写）
	NameContains string
}
