package domain

import "time"

// NoDataPlaceholder 统计结果为空时的占位文本
const NoDataPlaceholder = "No data"

// NotesByMonth 按月统计结果
type NotesByMonth struct {
	Year  int
	Month int
	Total int
}

// MonthName 返回月份的英文名称，供展示层使用
func (m NotesByMonth) MonthName() string {
	return time.Date(m.Year, time.Month(m.Month), 1, 0, 0, 0, 0, time.UTC).Month().String()
}

// CategoryStatItem 单个分类的使用统计
type CategoryStatItem struct {
	CategoryID   int64
	CategoryName string
	NoteCount    int
}

// CategoryStatSummary 分类使用统计汇总
type CategoryStatSummary struct {
	TotalCategories        int
	UsedCategories         int
	UnusedCategories       int
	TotalNotesInCategories int
	// MostPopularCategoryName 引用笔记最多的分类名称
	// 没有被引用的分类时为 NoDataPlaceholder
	MostPopularCategoryName  string
	MostPopularCategoryCount int
}

// GeneralStatistics 总体统计
type GeneralStatistics struct {
	TotalNotes        int
	TotalCategories   int
	FavoriteNotes     int
	NotesInLast30Days int
}
