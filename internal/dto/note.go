// Package dto 定义服务层的请求参数对象
package dto

// NoteCreateRequest 创建笔记请求参数
type NoteCreateRequest struct {
	Title       string  `json:"title" form:"title" validate:"max=256"`
	Content     string  `json:"content" form:"content"`
	IsFavorite  bool    `json:"isFavorite" form:"isFavorite"`
	CategoryIDs []int64 `json:"categoryIds" form:"categoryIds" validate:"dive,gt=0"`
}

// NoteUpdateRequest 更新笔记请求参数
// 分类集合为全量替换语义，调用方必须传入期望的完整集合
type NoteUpdateRequest struct {
	Title       string  `json:"title" form:"title" validate:"max=256"`
	Content     string  `json:"content" form:"content"`
	IsFavorite  bool    `json:"isFavorite" form:"isFavorite"`
	CategoryIDs []int64 `json:"categoryIds" form:"categoryIds" validate:"dive,gt=0"`
}

// NoteListRequest 笔记列表过滤参数
// 全部字段可选，设置的字段之间为 AND 关系
type NoteListRequest struct {
	StartDate  string `json:"startDate" form:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate    string `json:"endDate" form:"endDate" validate:"omitempty,datetime=2006-01-02"`
	CategoryID *int64 `json:"categoryId" form:"categoryId" validate:"omitempty,gt=0"`
	IsFavorite *bool  `json:"isFavorite" form:"isFavorite"`
}
