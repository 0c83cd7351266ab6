package memdb

import (
	"context"
	"strings"

	"github.com/haierkeys/note-keeper-service/internal/domain"
)

// categoryRepository 实现 domain.CategoryRepository 接口
type categoryRepository struct {
	store *Store
}

// GetAll 获取全部分类，按插入顺序
func (r *categoryRepository) GetAll(ctx context.Context) ([]*domain.Category, error) {
	return r.GetAllFiltered(ctx, nil)
}

// GetAllFiltered 按过滤条件获取分类
// 名称匹配不区分大小写
func (r *categoryRepository) GetAllFiltered(ctx context.Context, filter *domain.CategoryFilter) ([]*domain.Category, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var categories []*domain.Category
	for _, c := range r.store.categories {
		if filter != nil && filter.NameContains != "" {
			if !strings.Contains(strings.ToLower(c.Name), strings.ToLower(filter.NameContains)) {
				continue
			}
		}
		categories = append(categories, &domain.Category{ID: c.ID, Name: c.Name})
	}
	return categories, nil
}

// GetByID 根据ID获取分类，不存在时返回 nil
func (r *categoryRepository) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if c := r.store.categoryByID(id); c != nil {
		return &domain.Category{ID: c.ID, Name: c.Name}, nil
	}
	return nil, nil
}

// Add 创建分类并分配ID
func (r *categoryRepository) Add(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	c := &domain.Category{
		ID:   r.store.nextCategoryID,
		Name: category.Name,
	}
	r.store.nextCategoryID++
	r.store.categories = append(r.store.categories, c)
	return &domain.Category{ID: c.ID, Name: c.Name}, nil
}

// Update 更新分类名称，分类不存在时为静默空操作
func (r *categoryRepository) Update(ctx context.Context, category *domain.Category) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if c := r.store.categoryByID(category.ID); c != nil {
		c.Name = category.Name
	}
	return nil
}

// Remove 删除分类并清除笔记侧的关联边，重复删除不报错
func (r *categoryRepository) Remove(ctx context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, c := range r.store.categories {
		if c.ID == id {
			r.store.categories = append(r.store.categories[:i], r.store.categories[i+1:]...)
			break
		}
	}
	// 清除笔记侧引用，保证不留下悬挂引用
	for _, rec := range r.store.notes {
		for i, cid := range rec.categoryIDs {
			if cid == id {
				rec.categoryIDs = append(rec.categoryIDs[:i], rec.categoryIDs[i+1:]...)
				break
			}
		}
	}
	return nil
}

// IsCategoryUsed 判断分类是否被任意笔记引用
func (r *categoryRepository) IsCategoryUsed(ctx context.Context, categoryID int64) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, rec := range r.store.notes {
		for _, id := range rec.categoryIDs {
			if id == categoryID {
				return true, nil
			}
		}
	}
	return false, nil
}
