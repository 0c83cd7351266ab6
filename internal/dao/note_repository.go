package dao

import (
	"context"
	"time"

	"github.com/haierkeys/note-keeper-service/internal/domain"
	"github.com/haierkeys/note-keeper-service/internal/model"
	"github.com/haierkeys/note-keeper-service/pkg/timex"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// noteRepository 实现 domain.NoteRepository 接口
type noteRepository struct {
	dao *Dao
}

// NewNoteRepository 创建 NoteRepository 实例
func NewNoteRepository(dao *Dao) domain.NoteRepository {
	return &noteRepository{dao: dao}
}

// toDomain 将数据库模型转换为领域模型
func (r *noteRepository) toDomain(m *model.Note) *domain.Note {
	if m == nil {
		return nil
	}
	note := &domain.Note{
		ID:         m.ID,
		Title:      m.Title,
		Content:    m.Content,
		IsFavorite: m.IsFavorite,
		CreatedAt:  time.Time(m.CreatedAt),
	}
	for _, c := range m.Categories {
		note.Categories = append(note.Categories, &domain.Category{ID: c.ID, Name: c.Name})
	}
	return note
}

// resolveCategories 将分类ID解析为库内分类记录
// 未知的分类ID被静默丢弃，重复的ID只保留一次
func (r *noteRepository) resolveCategories(ctx context.Context, categories []*domain.Category) ([]*model.Category, error) {
	if len(categories) == 0 {
		return nil, nil
	}
	seen := make(map[int64]bool, len(categories))
	ids := make([]int64, 0, len(categories))
	for _, c := range categories {
		if c == nil || seen[c.ID] {
			continue
		}
		seen[c.ID] = true
		ids = append(ids, c.ID)
	}
	if len(ids) == 0 {
		return nil, nil
	}
	var resolved []*model.Category
	err := r.dao.db.WithContext(ctx).Where("id IN ?", ids).Find(&resolved).Error
	if err != nil {
		return nil, errors.Wrap(err, "resolve categories failed")
	}
	return resolved, nil
}

// query 构造按过滤条件约束的笔记查询
func (r *noteRepository) query(ctx context.Context, filter *domain.NoteFilter) *gorm.DB {
	q := r.dao.db.WithContext(ctx).Model(&model.Note{})
	if filter == nil {
		return q
	}
	if filter.StartDate != nil {
		q = q.Where("created_at >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		q = q.Where("created_at <= ?", *filter.EndDate)
	}
	if filter.IsFavorite != nil {
		q = q.Where("is_favorite = ?", *filter.IsFavorite)
	}
	if filter.CategoryID != nil {
		sub := r.dao.db.Model(&model.NoteCategory{}).
			Select("note_id").
			Where("category_id = ?", *filter.CategoryID)
		q = q.Where("id IN (?)", sub)
	}
	return q
}

// GetAll 获取全部笔记，按创建时间倒序
func (r *noteRepository) GetAll(ctx context.Context) ([]*domain.Note, error) {
	return r.GetAllFiltered(ctx, nil)
}

// GetAllFiltered 按过滤条件获取笔记，按创建时间倒序
// 创建时间相同的按插入顺序排列
func (r *noteRepository) GetAllFiltered(ctx context.Context, filter *domain.NoteFilter) ([]*domain.Note, error) {
	var ms []*model.Note
	err := r.query(ctx, filter).
		Preload("Categories").
		Order("created_at DESC, id ASC").
		Find(&ms).Error
	if err != nil {
		return nil, errors.Wrap(err, "query notes failed")
	}
	notes := make([]*domain.Note, 0, len(ms))
	for _, m := range ms {
		notes = append(notes, r.toDomain(m))
	}
	return notes, nil
}

// GetByID 根据ID获取笔记，不存在时返回 nil
func (r *noteRepository) GetByID(ctx context.Context, id int64) (*domain.Note, error) {
	var m model.Note
	err := r.dao.db.WithContext(ctx).Preload("Categories").Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "query note failed")
	}
	return r.toDomain(&m), nil
}

// Add 创建笔记并分配ID
func (r *noteRepository) Add(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	resolved, err := r.resolveCategories(ctx, note.Categories)
	if err != nil {
		return nil, err
	}

	createdAt := note.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Time(timex.Now())
	}

	m := &model.Note{
		Title:      note.Title,
		Content:    note.Content,
		IsFavorite: note.IsFavorite,
		Categories: resolved,
		CreatedAt:  timex.Time(createdAt),
	}

	// Omit 跳过分类记录本身的写入，只建立关联边
	err = r.dao.db.WithContext(ctx).Omit("Categories.*").Create(m).Error
	if err != nil {
		return nil, errors.Wrap(err, "create note failed")
	}
	return r.toDomain(m), nil
}

// Update 全量替换更新
// 覆盖标题、内容、收藏标记并整体替换分类集合，CreatedAt 不变
// 笔记不存在时为静默空操作
func (r *noteRepository) Update(ctx context.Context, note *domain.Note) error {
	var m model.Note
	err := r.dao.db.WithContext(ctx).Where("id = ?", note.ID).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return errors.Wrap(err, "query note failed")
	}

	resolved, err := r.resolveCategories(ctx, note.Categories)
	if err != nil {
		return err
	}

	return r.dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&m).Updates(map[string]interface{}{
			"title":       note.Title,
			"content":     note.Content,
			"is_favorite": note.IsFavorite,
		}).Error
		if err != nil {
			return errors.Wrap(err, "update note failed")
		}
		// Replace 整体替换关联边，旧集合中未出现在新集合里的边被解除
		err = tx.Model(&m).Association("Categories").Replace(resolved)
		if err != nil {
			return errors.Wrap(err, "replace note categories failed")
		}
		return nil
	})
}

// Remove 删除笔记及其全部分类关联，重复删除不报错
func (r *noteRepository) Remove(ctx context.Context, id int64) error {
	return r.dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("note_id = ?", id).Delete(&model.NoteCategory{}).Error
		if err != nil {
			return errors.Wrap(err, "delete note categories failed")
		}
		err = tx.Where("id = ?", id).Delete(&model.Note{}).Error
		if err != nil {
			return errors.Wrap(err, "delete note failed")
		}
		return nil
	})
}

// SetFavorite 单独设置收藏标记，笔记不存在时为静默空操作
func (r *noteRepository) SetFavorite(ctx context.Context, id int64, isFavorite bool) error {
	err := r.dao.db.WithContext(ctx).Model(&model.Note{}).
		Where("id = ?", id).
		Update("is_favorite", isFavorite).Error
	if err != nil {
		return errors.Wrap(err, "set favorite failed")
	}
	return nil
}

// RemoveCategoryFromNote 解除单条笔记与分类的关联
func (r *noteRepository) RemoveCategoryFromNote(ctx context.Context, noteID, categoryID int64) error {
	err := r.dao.db.WithContext(ctx).
		Where("note_id = ? AND category_id = ?", noteID, categoryID).
		Delete(&model.NoteCategory{}).Error
	if err != nil {
		return errors.Wrap(err, "remove note category failed")
	}
	return nil
}

// HasNotesInCategory 判断是否存在引用指定分类的笔记
func (r *noteRepository) HasNotesInCategory(ctx context.Context, categoryID int64) (bool, error) {
	count, err := r.GetNoteCountByCategory(ctx, categoryID)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetNoteCountByCategory 获取引用指定分类的笔记数量
func (r *noteRepository) GetNoteCountByCategory(ctx context.Context, categoryID int64) (int, error) {
	var count int64
	err := r.dao.db.WithContext(ctx).Model(&model.NoteCategory{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "count notes in category failed")
	}
	return int(count), nil
}
