package memdb

import (
	"context"
	"sort"
	"time"

	"github.com/haierkeys/note-keeper-service/internal/domain"
)

// noteRepository 实现 domain.NoteRepository 接口
type noteRepository struct {
	store *Store
}

// GetAll 获取全部笔记，按创建时间倒序
func (r *noteRepository) GetAll(ctx context.Context) ([]*domain.Note, error) {
	return r.GetAllFiltered(ctx, nil)
}

// GetAllFiltered 按过滤条件获取笔记，按创建时间倒序
// 创建时间相同的按插入顺序排列
func (r *noteRepository) GetAllFiltered(ctx context.Context, filter *domain.NoteFilter) ([]*domain.Note, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var notes []*domain.Note
	for _, rec := range r.store.notes {
		n := r.store.snapshotNote(rec)
		if filter.Match(n) {
			notes = append(notes, n)
		}
	}
	// 稳定排序，时间并列时保持插入顺序
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].CreatedAt.After(notes[j].CreatedAt)
	})
	return notes, nil
}

// GetByID 根据ID获取笔记，不存在时返回 nil
func (r *noteRepository) GetByID(ctx context.Context, id int64) (*domain.Note, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, rec := range r.store.notes {
		if rec.note.ID == id {
			return r.store.snapshotNote(rec), nil
		}
	}
	return nil, nil
}

// resolveCategoryIDs 将分类解析为存在的分类ID集合，持锁调用
// 未知的分类ID被静默丢弃，重复的ID只保留一次
func (r *noteRepository) resolveCategoryIDs(categories []*domain.Category) []int64 {
	seen := make(map[int64]bool, len(categories))
	var ids []int64
	for _, c := range categories {
		if c == nil || seen[c.ID] {
			continue
		}
		seen[c.ID] = true
		if r.store.categoryByID(c.ID) != nil {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

// Add 创建笔记并分配ID
func (r *noteRepository) Add(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	rec := &noteRecord{
		note: domain.Note{
			ID:         r.store.nextNoteID,
			Title:      note.Title,
			Content:    note.Content,
			IsFavorite: note.IsFavorite,
			CreatedAt:  note.CreatedAt,
		},
		categoryIDs: r.resolveCategoryIDs(note.Categories),
	}
	if rec.note.CreatedAt.IsZero() {
		rec.note.CreatedAt = time.Now()
	}
	r.store.nextNoteID++
	r.store.notes = append(r.store.notes, rec)
	return r.store.snapshotNote(rec), nil
}

// Update 全量替换更新，笔记不存在时为静默空操作
func (r *noteRepository) Update(ctx context.Context, note *domain.Note) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, rec := range r.store.notes {
		if rec.note.ID == note.ID {
			rec.note.Title = note.Title
			rec.note.Content = note.Content
			rec.note.IsFavorite = note.IsFavorite
			// CreatedAt 不变，分类集合整体替换
			rec.categoryIDs = r.resolveCategoryIDs(note.Categories)
			return nil
		}
	}
	return nil
}

// Remove 删除笔记及其全部分类关联，重复删除不报错
func (r *noteRepository) Remove(ctx context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, rec := range r.store.notes {
		if rec.note.ID == id {
			r.store.notes = append(r.store.notes[:i], r.store.notes[i+1:]...)
			return nil
		}
	}
	return nil
}

// SetFavorite 单独设置收藏标记，笔记不存在时为静默空操作
func (r *noteRepository) SetFavorite(ctx context.Context, id int64, isFavorite bool) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, rec := range r.store.notes {
		if rec.note.ID == id {
			rec.note.IsFavorite = isFavorite
			return nil
		}
	}
	return nil
}

// RemoveCategoryFromNote 解除单条笔记与分类的关联
func (r *noteRepository) RemoveCategoryFromNote(ctx context.Context, noteID, categoryID int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, rec := range r.store.notes {
		if rec.note.ID != noteID {
			continue
		}
		for i, id := range rec.categoryIDs {
			if id == categoryID {
				rec.categoryIDs = append(rec.categoryIDs[:i], rec.categoryIDs[i+1:]...)
				break
			}
		}
		return nil
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
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	count := 0
	for _, rec := range r.store.notes {
		for _, id := range rec.categoryIDs {
			if id == categoryID {
				count++
				break
			}
		}
	}
	return count, nil
}
