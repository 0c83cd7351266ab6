package dao

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/haierkeys/note-keeper-service/internal/domain"

	"github.com/gookit/goutil/dump"
	"github.com/stretchr/testify/assert"
)

// newTestDao 在临时目录创建 sqlite 数据库
func newTestDao(t *testing.T) *Dao {
	t.Helper()

	db, err := NewDBEngine(DBConfig{
		Type:         "sqlite",
		Path:         filepath.Join(t.TempDir(), "test.db"),
		AutoMigrate:  true,
		MaxIdleConns: 10,
		MaxOpenConns: 10,
	})
	if err != nil {
		t.Fatal(err)
	}
	return New(db)
}

func TestNoteAddAndGetByID(t *testing.T) {
	d := newTestDao(t)
	ctx := context.Background()
	notes := NewNoteRepository(d)
	categories := NewCategoryRepository(d)

	work, err := categories.Add(ctx, &domain.Category{Name: "Work"})
	assert.Nil(t, err)

	// 未知的分类ID 999 应被静默丢弃
	created, err := notes.Add(ctx, &domain.Note{
		Title:      "meeting notes",
		Content:    "agenda",
		IsFavorite: true,
		Categories: []*domain.Category{{ID: work.ID}, {ID: 999}},
	})
	assert.Nil(t, err)
	dump.P(created)

	assert.True(t, created.ID > 0)
	assert.Equal(t, "meeting notes", created.Title)
	assert.Len(t, created.Categories, 1)
	assert.Equal(t, "Work", created.Categories[0].Name)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := notes.GetByID(ctx, created.ID)
	assert.Nil(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Title, got.Title)
	assert.True(t, got.IsFavorite)
	assert.Len(t, got.Categories, 1)
}

func TestNoteGetByIDMissing(t *testing.T) {
	d := newTestDao(t)
	ctx := context.Background()
	notes := NewNoteRepository(d)

	got, err := notes.GetByID(ctx, 12345)
	assert.Nil(t, err)
	assert.Nil(t, got)
}

func TestNoteGetAllFilteredOrdering(t *testing.T) {
	d := newTestDao(t)
	ctx := context.Background()
	notes := NewNoteRepository(d)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	_, err := notes.Add(ctx, &domain.Note{Title: "oldest", CreatedAt: base})
	assert.Nil(t, err)
	_, err = notes.Add(ctx, &domain.Note{Title: "newest", CreatedAt: base.Add(2 * time.Hour)})
	assert.Nil(t, err)
	_, err = notes.Add(ctx, &domain.Note{Title: "middle", CreatedAt: base.Add(time.Hour)})
	assert.Nil(t, err)

	got, err := notes.GetAll(ctx)
	assert.Nil(t, err)
	assert.Len(t, got, 3)
	assert.Equal(t, "newest", got[0].Title)
	assert.Equal(t, "middle", got[1].Title)
	assert.Equal(t, "oldest", got[2].Title)
}

func TestNoteGetAllFilteredTieBreak(t *testing.T) {
	d := newTestDao(t)
	ctx := context.Background()
	notes := NewNoteRepository(d)

	// 创建时间完全相同，应保持插入顺序
	same := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for _, title := range []string{"first", "second", "third"} {
		_, err := notes.Add(ctx, &domain.Note{Title: title, CreatedAt: same})
		assert.Nil(t, err)
	}

	got, err := notes.GetAll(ctx)
	assert.Nil(t, err)
	assert.Len(t, got, 3)
	assert.Equal(t, "first", got[0].Title)
	assert.Equal(t, "second", got[1].Title)
	assert.Equal(t, "third", got[2].Title)
}

func TestNoteGetAllFilteredConditions(t *testing.T) {
	d := newTestDao(t)
	ctx := context.Background()
	notes := NewNoteRepository(d)
	categories := NewCategoryRepository(d)

	work, err := categories.Add(ctx, &domain.Category{Name: "Work"})
	assert.Nil(t, err)

	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	_, err = notes.Add(ctx, &domain.Note{Title: "a", CreatedAt: base, IsFavorite: true,
		Categories: []*domain.Category{{ID: work.ID}}})
	assert.Nil(t, err)
	_, err = notes.Add(ctx, &domain.Note{Title: "b", CreatedAt: base.AddDate(0, 0, 10)})
	assert.Nil(t, err)
	_, err = notes.Add(ctx, &domain.Note{Title: "c", CreatedAt: base.AddDate(0, 1, 0), IsFavorite: true})
	assert.Nil(t, err)

	fav := true
	got, err := notes.GetAllFiltered(ctx, &domain.NoteFilter{IsFavorite: &fav})
	assert.Nil(t, err)
	assert.Len(t, got, 2)

	got, err = notes.GetAllFiltered(ctx, &domain.NoteFilter{CategoryID: &work.ID})
	assert.Nil(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "a", got[0].Title)

	start := base.AddDate(0, 0, 5)
	end := base.AddDate(0, 0, 15)
	got, err = notes.GetAllFiltered(ctx, &domain.NoteFilter{StartDate: &start, EndDate: &end})
	assert.Nil(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "b", got[0].Title)

	// 多个条件为 AND 关系
	got, err = notes.GetAllFiltered(ctx, &domain.NoteFilter{IsFavorite: &fav, CategoryID: &work.ID})
	assert.Nil(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "a", got[0].Title)
}

func TestNoteUpdateReplacesCategories(t *testing.T) {
	d := newTestDao(t)
	ctx := context.Background()
	notes := NewNoteRepository(d)
	categories := NewCategoryRepository(d)

	work, err := categories.Add(ctx, &domain.Category{Name: "Work"})
	assert.Nil(t, err)
	home, err := categories.Add(ctx, &domain.Category{Name: "Home"})
	assert.Nil(t, err)

	created, err := notes.Add(ctx, &domain.Note{
		Title:      "draft",
		Categories: []*domain.Category{{ID: work.ID}},
	})
	assert.Nil(t, err)
	createdAt := created.CreatedAt

	err = notes.Update(ctx, &domain.Note{
		ID:         created.ID,
		Title:      "final",
		Content:    "done",
		IsFavorite: true,
		Categories: []*domain.Category{{ID: home.ID}},
	})
	assert.Nil(t, err)

	got, err := notes.GetByID(ctx, created.ID)
	assert.Nil(t, err)
	assert.Equal(t, "final", got.Title)
	assert.Equal(t, "done", got.Content)
	assert.True(t, got.IsFavorite)
	assert.Len(t, got.Categories, 1)
	assert.Equal(t, "Home", got.Categories[0].Name)
	// CreatedAt 不因更新改变
	assert.True(t, got.CreatedAt.Equal(createdAt))

	used, err := categories.IsCategoryUsed(ctx, work.ID)
	assert.Nil(t, err)
	assert.False(t, used)
}

func TestNoteUpdateClearsCategories(t *testing.T) {
	d := newTestDao(t)
	ctx := context.Background()
	notes := NewNoteRepository(d)
	categories := NewCategoryRepository(d)

	work, err := categories.Add(ctx, &domain.Category{Name: "Work"})
	assert.Nil(t, err)
	home, err := categories.Add(ctx, &domain.Category{Name: "Home"})
	assert.Nil(t, err)

	created, err := notes.Add(ctx, &domain.Note{
		Title:      "draft",
		Categories: []*domain.Category{{ID: work.ID}, {ID: home.ID}},
	})
	assert.Nil(t, err)
	assert.Len(t, created.Categories, 2)

	// 更新为空分类集合时清空全部关联
	err = notes.Update(ctx, &domain.Note{
		ID:    created.ID,
		Title: "draft",
	})
	assert.Nil(t, err)

	got, err := notes.GetByID(ctx, created.ID)
	assert.Nil(t, err)
	assert.Empty(t, got.Categories)

	used, err := categories.IsCategoryUsed(ctx, work.ID)
	assert.Nil(t, err)
	assert.False(t, used)
	used, err = categories.IsCategoryUsed(ctx, home.ID)
	assert.Nil(t, err)
	assert.False(t, used)
}

func TestNoteUpdateMissingIsNoop(t *testing.T) {
	d := newTestDao(t)
	ctx := context.Background()
	notes := NewNoteRepository(d)

	err := notes.Update(ctx, &domain.Note{ID: 777, Title: "ghost"})
	assert.Nil(t, err)

	got, err := notes.GetAll(ctx)
	assert.Nil(t, err)
	assert.Len(t, got, 0)
}

func TestNoteRemove(t *testing.T) {
	d := newTestDao(t)
	ctx := context.Background()
	notes := NewNoteRepository(d)
	categories := NewCategoryRepository(d)

	work, err := categories.Add(ctx, &domain.Category{Name: "Work"})
	assert.Nil(t, err)
	created, err := notes.Add(ctx, &domain.Note{
		Title:      "to delete",
		Categories: []*domain.Category{{ID: work.ID}},
	})
	assert.Nil(t, err)

	err = notes.Remove(ctx, created.ID)
	assert.Nil(t, err)

	got, err := notes.GetByID(ctx, created.ID)
	assert.Nil(t, err)
	assert.Nil(t, got)

	// 关联边一并清除
	used, err := categories.IsCategoryUsed(ctx, work.ID)
	assert.Nil(t, err)
	assert.False(t, used)

	// 重复删除不报错
	err = notes.Remove(ctx, created.ID)
	assert.Nil(t, err)
}

func TestNoteSetFavorite(t *testing.T) {
	d := newTestDao(t)
	ctx := context.Background()
	notes := NewNoteRepository(d)

	created, err := notes.Add(ctx, &domain.Note{Title: "plain"})
	assert.Nil(t, err)

	err = notes.SetFavorite(ctx, created.ID, true)
	assert.Nil(t, err)

	got, err := notes.GetByID(ctx, created.ID)
	assert.Nil(t, err)
	assert.True(t, got.IsFavorite)

	// 不存在的ID为静默空操作
	err = notes.SetFavorite(ctx, 999, true)
	assert.Nil(t, err)
}

func TestNoteRemoveCategoryFromNote(t *testing.T) {
	d := newTestDao(t)
	ctx := context.Background()
	notes := NewNoteRepository(d)
	categories := NewCategoryRepository(d)

	work, err := categories.Add(ctx, &domain.Category{Name: "Work"})
	assert.Nil(t, err)
	home, err := categories.Add(ctx, &domain.Category{Name: "Home"})
	assert.Nil(t, err)

	created, err := notes.Add(ctx, &domain.Note{
		Title:      "tagged",
		Categories: []*domain.Category{{ID: work.ID}, {ID: home.ID}},
	})
	assert.Nil(t, err)

	err = notes.RemoveCategoryFromNote(ctx, created.ID, work.ID)
	assert.Nil(t, err)

	got, err := notes.GetByID(ctx, created.ID)
	assert.Nil(t, err)
	assert.Len(t, got.Categories, 1)
	assert.Equal(t, "Home", got.Categories[0].Name)

	count, err := notes.GetNoteCountByCategory(ctx, home.ID)
	assert.Nil(t, err)
	assert.Equal(t, 1, count)

	has, err := notes.HasNotesInCategory(ctx, work.ID)
	assert.Nil(t, err)
	assert.False(t, has)
}
