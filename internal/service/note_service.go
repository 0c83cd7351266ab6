package service

import (
	"context"
	"strings"

	"github.com/haierkeys/note-keeper-service/internal/domain"
	"github.com/haierkeys/note-keeper-service/internal/dto"
	"github.com/haierkeys/note-keeper-service/pkg/code"
	"github.com/haierkeys/note-keeper-service/pkg/convert"
	"github.com/haierkeys/note-keeper-service/pkg/logger"

	"go.uber.org/zap"
)

// NoteService 定义笔记业务服务接口
type NoteService interface {
	// Get 获取单条笔记
	Get(ctx context.Context, id int64) (*domain.Note, error)

	// List 获取笔记列表，按创建时间倒序
	List(ctx context.Context, filter *domain.NoteFilter) ([]*domain.Note, error)

	// Create 创建笔记
	// 标题去除首尾空白后不能为空；未知的分类ID被静默跳过
	Create(ctx context.Context, params *dto.NoteCreateRequest) (*domain.Note, error)

	// Update 全量替换更新
	// 分类集合整体替换，调用方必须传入期望的完整集合；笔记不存在时为静默空操作
	Update(ctx context.Context, id int64, params *dto.NoteUpdateRequest) error

	// Delete 删除笔记，重复删除不报错
	Delete(ctx context.Context, id int64) error

	// ToggleFavorite 翻转收藏标记，笔记不存在时为静默空操作
	ToggleFavorite(ctx context.Context, id int64) error

	// GetFavorites 获取全部收藏笔记
	GetFavorites(ctx context.Context) ([]*domain.Note, error)
}

// noteService 实现 NoteService 接口
type noteService struct {
	noteRepo     domain.NoteRepository
	categoryRepo domain.CategoryRepository
	log          *zap.Logger
}

// NewNoteService 创建 NoteService 实例
func NewNoteService(noteRepo domain.NoteRepository, categoryRepo domain.CategoryRepository, log *zap.Logger) NoteService {
	return &noteService{
		noteRepo:     noteRepo,
		categoryRepo: categoryRepo,
		log:          noopLogger(log),
	}
}

// Get 获取单条笔记
func (s *noteService) Get(ctx context.Context, id int64) (*domain.Note, error) {
	note, err := s.noteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	if note == nil {
		return nil, code.ErrorNoteNotFound
	}
	return note, nil
}

// List 获取笔记列表，按创建时间倒序
func (s *noteService) List(ctx context.Context, filter *domain.NoteFilter) ([]*domain.Note, error) {
	notes, err := s.noteRepo.GetAllFiltered(ctx, filter)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	return notes, nil
}

// categoryRefs 将分类ID转换为领域引用，存储层负责解析并丢弃未知ID
func categoryRefs(ids []int64) []*domain.Category {
	refs := make([]*domain.Category, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, &domain.Category{ID: id})
	}
	return refs
}

// Create 创建笔记
func (s *noteService) Create(ctx context.Context, params *dto.NoteCreateRequest) (*domain.Note, error) {
	if err := checkParams(params); err != nil {
		return nil, err
	}
	if strings.TrimSpace(params.Title) == "" {
		return nil, code.ErrorNoteTitleEmpty
	}

	note := &domain.Note{}
	if err := convert.StructAssign(note, params); err != nil {
		return nil, code.ErrorInvalidParams.WithDetails(err.Error())
	}
	note.Categories = categoryRefs(params.CategoryIDs)

	created, err := s.noteRepo.Add(ctx, note)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}

	s.log.Info("note created",
		zap.String(logger.FieldTraceID, newTraceID()),
		zap.Int64(logger.FieldNoteID, created.ID),
		zap.String(logger.FieldTitle, created.Title),
		zap.Int(logger.FieldCount, len(created.Categories)),
	)
	return created, nil
}

// Update 全量替换更新
func (s *noteService) Update(ctx context.Context, id int64, params *dto.NoteUpdateRequest) error {
	if err := checkParams(params); err != nil {
		return err
	}
	if strings.TrimSpace(params.Title) == "" {
		return code.ErrorNoteTitleEmpty
	}

	note := &domain.Note{}
	if err := convert.StructAssign(note, params); err != nil {
		return code.ErrorInvalidParams.WithDetails(err.Error())
	}
	note.ID = id
	note.Categories = categoryRefs(params.CategoryIDs)

	if err := s.noteRepo.Update(ctx, note); err != nil {
		return code.ErrorDBQuery.WithDetails(err.Error())
	}

	s.log.Info("note updated",
		zap.String(logger.FieldTraceID, newTraceID()),
		zap.Int64(logger.FieldNoteID, id),
		zap.String(logger.FieldTitle, note.Title),
	)
	return nil
}

// Delete 删除笔记
func (s *noteService) Delete(ctx context.Context, id int64) error {
	if err := s.noteRepo.Remove(ctx, id); err != nil {
		return code.ErrorDBQuery.WithDetails(err.Error())
	}

	s.log.Info("note deleted",
		zap.String(logger.FieldTraceID, newTraceID()),
		zap.Int64(logger.FieldNoteID, id),
	)
	return nil
}

// ToggleFavorite 翻转收藏标记
// 读取-取反-写回，笔记不存在时为静默空操作
func (s *noteService) ToggleFavorite(ctx context.Context, id int64) error {
	note, err := s.noteRepo.GetByID(ctx, id)
	if err != nil {
		return code.ErrorDBQuery.WithDetails(err.Error())
	}
	if note == nil {
		return nil
	}

	if err := s.noteRepo.SetFavorite(ctx, id, !note.IsFavorite); err != nil {
		return code.ErrorDBQuery.WithDetails(err.Error())
	}

	s.log.Info("note favorite toggled",
		zap.String(logger.FieldTraceID, newTraceID()),
		zap.Int64(logger.FieldNoteID, id),
		zap.Bool(logger.FieldFavorite, !note.IsFavorite),
	)
	return nil
}

// GetFavorites 获取全部收藏笔记
func (s *noteService) GetFavorites(ctx context.Context) ([]*domain.Note, error) {
	isFavorite := true
	return s.List(ctx, &domain.NoteFilter{IsFavorite: &isFavorite})
}
