package service

import (
	"context"
	"strings"

	"github.com/haierkeys/note-keeper-service/internal/domain"
	"github.com/haierkeys/note-keeper-service/internal/dto"
	"github.com/haierkeys/note-keeper-service/pkg/code"
	"github.com/haierkeys/note-keeper-service/pkg/logger"

	"go.uber.org/zap"
)

// CategoryService 定义分类业务服务接口
type CategoryService interface {
	// Get 获取单个分类
	Get(ctx context.Context, id int64) (*domain.Category, error)

	// List 获取分类列表
	List(ctx context.Context, filter *domain.CategoryFilter) ([]*domain.Category, error)

	// Create 创建分类
	// 名称去除首尾空白后不能为空，且在现存分类中不区分大小写唯一
	Create(ctx context.Context, params *dto.CategoryCreateRequest) (*domain.Category, error)

	// Update 重命名分类，同样执行唯一性检查；分类不存在时为静默空操作
	Update(ctx context.Context, id int64, params *dto.CategoryUpdateRequest) error

	// Delete 删除分类，仍被笔记引用时拒绝删除
	Delete(ctx context.Context, id int64) error

	// DeleteWithCleanup 级联清理删除
	// 先把分类从每条引用它的笔记上摘除，再删除分类本身
	DeleteWithCleanup(ctx context.Context, id int64) error
}

// categoryService 实现 CategoryService 接口
type categoryService struct {
	categoryRepo domain.CategoryRepository
	noteRepo     domain.NoteRepository
	log          *zap.Logger
}

// NewCategoryService 创建 CategoryService 实例
func NewCategoryService(categoryRepo domain.CategoryRepository, noteRepo domain.NoteRepository, log *zap.Logger) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		noteRepo:     noteRepo,
		log:          noopLogger(log),
	}
}

// Get 获取单个分类
func (s *categoryService) Get(ctx context.Context, id int64) (*domain.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	if category == nil {
		return nil, code.ErrorCategoryNotFound
	}
	return category, nil
}

// List 获取分类列表
func (s *categoryService) List(ctx context.Context, filter *domain.CategoryFilter) ([]*domain.Category, error) {
	categories, err := s.categoryRepo.GetAllFiltered(ctx, filter)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	return categories, nil
}

// findByNameFold 在现存分类中查找同名分类（不区分大小写）
// excludeID 用于重命名场景排除自身
func (s *categoryService) findByNameFold(ctx context.Context, name string, excludeID int64) (*domain.Category, error) {
	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range categories {
		if c.ID != excludeID && strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	return nil, nil
}

// Create 创建分类
func (s *categoryService) Create(ctx context.Context, params *dto.CategoryCreateRequest) (*domain.Category, error) {
	if err := checkParams(params); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, code.ErrorCategoryNameEmpty
	}

	existing, err := s.findByNameFold(ctx, name, 0)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	if existing != nil {
		return nil, code.ErrorCategoryNameDuplicate.WithDetails(existing.Name)
	}

	created, err := s.categoryRepo.Add(ctx, &domain.Category{Name: name})
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}

	s.log.Info("category created",
		zap.String(logger.FieldTraceID, newTraceID()),
		zap.Int64(logger.FieldCategoryID, created.ID),
		zap.String(logger.FieldName, created.Name),
	)
	return created, nil
}

// Update 重命名分类
func (s *categoryService) Update(ctx context.Context, id int64, params *dto.CategoryUpdateRequest) error {
	if err := checkParams(params); err != nil {
		return err
	}
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return code.ErrorCategoryNameEmpty
	}

	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return code.ErrorDBQuery.WithDetails(err.Error())
	}
	if category == nil {
		return nil
	}

	existing, err := s.findByNameFold(ctx, name, id)
	if err != nil {
		return code.ErrorDBQuery.WithDetails(err.Error())
	}
	if existing != nil {
		return code.ErrorCategoryNameDuplicate.WithDetails(existing.Name)
	}

	category.Name = name
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return code.ErrorDBQuery.WithDetails(err.Error())
	}

	s.log.Info("category renamed",
		zap.String(logger.FieldTraceID, newTraceID()),
		zap.Int64(logger.FieldCategoryID, id),
		zap.String(logger.FieldName, name),
	)
	return nil
}

// Delete 删除分类，仍被笔记引用时拒绝删除
func (s *categoryService) Delete(ctx context.Context, id int64) error {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return code.ErrorDBQuery.WithDetails(err.Error())
	}
	if category == nil {
		return nil
	}

	used, err := s.categoryRepo.IsCategoryUsed(ctx, id)
	if err != nil {
		return code.ErrorDBQuery.WithDetails(err.Error())
	}
	if used {
		return code.ErrorCategoryInUse.WithDetails(category.Name)
	}

	if err := s.categoryRepo.Remove(ctx, id); err != nil {
		return code.ErrorDBQuery.WithDetails(err.Error())
	}

	s.log.Info("category deleted",
		zap.String(logger.FieldTraceID, newTraceID()),
		zap.Int64(logger.FieldCategoryID, id),
		zap.String(logger.FieldName, category.Name),
	)
	return nil
}

// DeleteWithCleanup 级联清理删除
func (s *categoryService) DeleteWithCleanup(ctx context.Context, id int64) error {
	traceID := newTraceID()

	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return code.ErrorDBQuery.WithDetails(err.Error())
	}
	if category == nil {
		return nil
	}

	notes, err := s.noteRepo.GetAllFiltered(ctx, &domain.NoteFilter{CategoryID: &id})
	if err != nil {
		return code.ErrorDBQuery.WithDetails(err.Error())
	}
	for _, note := range notes {
		if err := s.noteRepo.RemoveCategoryFromNote(ctx, note.ID, id); err != nil {
			return code.ErrorDBQuery.WithDetails(err.Error())
		}
	}

	if err := s.categoryRepo.Remove(ctx, id); err != nil {
		return code.ErrorDBQuery.WithDetails(err.Error())
	}

	s.log.Info("category deleted with cleanup",
		zap.String(logger.FieldTraceID, traceID),
		zap.Int64(logger.FieldCategoryID, id),
		zap.String(logger.FieldName, category.Name),
		zap.Int(logger.FieldCount, len(notes)),
	)
	return nil
}
