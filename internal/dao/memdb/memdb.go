// Package memdb 实现内存版数据访问层
// 与 dao 包的 GORM 实现遵循完全相同的仓储语义，用于无持久化场景和测试
package memdb

import (
	"sync"

	"github.com/haierkeys/note-keeper-service/internal/domain"
)

// Store 内存存储，持有笔记与分类的权威记录
// 所有读取返回深拷贝快照，调用方不会看到内部的活动对象
type Store struct {
	mu sync.RWMutex

	// 笔记按插入顺序保存，时间并列时保持插入序
	notes      []*noteRecord
	categories []*domain.Category

	nextNoteID     int64
	nextCategoryID int64
}

// noteRecord 内部笔记记录
// 分类以ID集合保存，读取时再解析为分类快照，保证引用一致性
type noteRecord struct {
	note        domain.Note
	categoryIDs []int64
}

// NewStore 创建内存存储
func NewStore() *Store {
	return &Store{
		nextNoteID:     1,
		nextCategoryID: 1,
	}
}

// NoteRepository 返回笔记仓储视图
func (s *Store) NoteRepository() domain.NoteRepository {
	return &noteRepository{store: s}
}

// CategoryRepository 返回分类仓储视图
func (s *Store) CategoryRepository() domain.CategoryRepository {
	return &categoryRepository{store: s}
}

// categoryByID 按ID查找分类，持锁调用
func (s *Store) categoryByID(id int64) *domain.Category {
	for _, c := range s.categories {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// snapshotNote 生成笔记快照，持锁调用
// 只包含当前仍然存在的分类，悬挂引用不会出现在快照里
func (s *Store) snapshotNote(rec *noteRecord) *domain.Note {
	n := rec.note
	n.Categories = nil
	for _, id := range rec.categoryIDs {
		if c := s.categoryByID(id); c != nil {
			n.Categories = append(n.Categories, &domain.Category{ID: c.ID, Name: c.Name})
		}
	}
	return &n
}
