package dto

// CategoryCreateRequest 创建分类请求参数
type CategoryCreateRequest struct {
	Name string `json:"name" form:"name" validate:"max=64"`
}

// CategoryUpdateRequest 重命名分类请求参数
type CategoryUpdateRequest struct {
	Name string `json:"name" form:"name" validate:"max=64"`
}

// CategoryListRequest 分类列表过滤参数
type CategoryListRequest struct {
	// NameContains 名称包含匹配（不区分大小写）
	NameContains string `json:"nameContains" form:"nameContains" validate:"max=64"`
}
