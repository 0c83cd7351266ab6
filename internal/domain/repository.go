// Package domain 定义领域模型和接口
package domain

import "context"

// NoteRepository 笔记仓储接口
// 所有读取返回的都是快照副本，后续的写操作不会影响已返回的对象
type NoteRepository interface {
	// GetAll 获取全部笔记，按创建时间倒序
	GetAll(ctx context.Context) ([]*Note, error)

	// GetAllFiltered 按过滤条件获取笔记，按创建时间倒序
	GetAllFiltered(ctx context.Context, filter *NoteFilter) ([]*Note, error)

	// GetByID 根据ID获取笔记，不存在时返回 nil
	GetByID(ctx context.Context, id int64) (*Note, error)

	// Add 创建笔记并分配ID
	// 引用的分类按ID解析为库内记录，未知的分类ID被静默丢弃
	Add(ctx context.Context, note *Note) (*Note, error)

	// Update 全量替换更新
	// 覆盖标题、内容、收藏标记，并整体替换分类集合；CreatedAt 不变
	// 笔记不存在时为静默空操作
	Update(ctx context.Context, note *Note) error

	// Remove 删除笔记及其全部分类关联，重复删除不报错
	Remove(ctx context.Context, id int64) error

	// SetFavorite 单独设置收藏标记，笔记不存在时为静默空操作
	SetFavorite(ctx context.Context, id int64, isFavorite bool) error

	// RemoveCategoryFromNote 解除单条笔记与分类的关联，其他字段不变
	RemoveCategoryFromNote(ctx context.Context, noteID, categoryID int64) error

	// HasNotesInCategory 判断是否存在引用指定分类的笔记
	HasNotesInCategory(ctx context.Context, categoryID int64) (bool, error)

	// GetNoteCountByCategory 获取引用指定分类的笔记数量
	GetNoteCountByCategory(ctx context.Context, categoryID int64) (int, error)
}

// CategoryRepository 分类仓储接口
type CategoryRepository interface {
	// GetAll 获取全部分类
	GetAll(ctx context.Context) ([]*Category, error)

	// GetAllFiltered 按过滤条件获取分类
	GetAllFiltered(ctx context.Context, filter *CategoryFilter) ([]*Category, error)

	// GetByID 根据ID获取分类，不存在时返回 nil
	GetByID(ctx context.Context, id int64) (*Category, error)

	// Add 创建分类并分配ID
	Add(ctx context.Context, category *Category) (*Category, error)

	// Update 更新分类名称，分类不存在时为静默空操作
	Update(ctx context.Context, category *Category) error

	// Remove 删除分类并清除笔记侧的关联边，保证不留下悬挂引用
	// 是否允许删除仍在使用的分类由上层业务决定
	Remove(ctx context.Context, id int64) error

	// IsCategoryUsed 判断分类是否被任意笔记引用
	IsCategoryUsed(ctx context.Context, categoryID int64) (bool, error)
}
