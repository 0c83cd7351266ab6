package dao

import (
	"context"
	"strings"

	"github.com/haierkeys/note-keeper-service/internal/domain"
	"github.com/haierkeys/note-keeper-service/internal/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// categoryRepository 实现 domain.CategoryRepository 接口
type categoryRepository struct {
	dao *Dao
}

// NewCategoryRepository 创建 CategoryRepository 实例
func NewCategoryRepository(dao *Dao) domain.CategoryRepository {
	return &categoryRepository{dao: dao}
}

func (r *categoryRepository) toDomain(m *model.Category) *domain.Category {
	if m == nil {
		return nil
	}
	return &domain.Category{ID: m.ID, Name: m.Name}
}

// GetAll 获取全部分类，按插入顺序
func (r *categoryRepository) GetAll(ctx context.Context) ([]*domain.Category, error) {
	return r.GetAllFiltered(ctx, nil)
}

// GetAllFiltered 按过滤条件获取分类
// 名称匹配不区分大小写
func (r *categoryRepository) GetAllFiltered(ctx context.Context, filter *domain.CategoryFilter) ([]*domain.Category, error) {
	q := r.dao.db.WithContext(ctx).Model(&model.Category{}).Order("id ASC")
	if filter != nil && filter.NameContains != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.NameContains)+"%")
	}
	var ms []*model.Category
	if err := q.Find(&ms).Error; err != nil {
		return nil, errors.Wrap(err, "query categories failed")
	}
	categories := make([]*domain.Category, 0, len(ms))
	for _, m := range ms {
		categories = append(categories, r.toDomain(m))
	}
	return categories, nil
}

// GetByID 根据ID获取分类，不存在时返回 nil
func (r *categoryRepository) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	var m model.Category
	err := r.dao.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "query category failed")
	}
	return r.toDomain(&m), nil
}

// Add 创建分类并分配ID
func (r *categoryRepository) Add(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	m := &model.Category{Name: category.Name}
	if err := r.dao.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, errors.Wrap(err, "create category failed")
	}
	return r.toDomain(m), nil
}

// Update 更新分类名称，分类不存在时为静默空操作
func (r *categoryRepository) Update(ctx context.Context, category *domain.Category) error {
	err := r.dao.db.WithContext(ctx).Model(&model.Category{}).
		Where("id = ?", category.ID).
		Update("name", category.Name).Error
	if err != nil {
		return errors.Wrap(err, "update category failed")
	}
	return nil
}

// Remove 删除分类并清除笔记侧的关联边，重复删除不报错
func (r *categoryRepository) Remove(ctx context.Context, id int64) error {
	return r.dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("category_id = ?", id).Delete(&model.NoteCategory{}).Error
		if err != nil {
			return errors.Wrap(err, "delete category references failed")
		}
		err = tx.Where("id = ?", id).Delete(&model.Category{}).Error
		if err != nil {
			return errors.Wrap(err, "delete category failed")
		}
		return nil
	})
}

// IsCategoryUsed 判断分类是否被任意笔记引用
func (r *categoryRepository) IsCategoryUsed(ctx context.Context, categoryID int64) (bool, error) {
	var count int64
	err := r.dao.db.WithContext(ctx).Model(&model.NoteCategory{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "count category references failed")
	}
	return count > 0, nil
}
