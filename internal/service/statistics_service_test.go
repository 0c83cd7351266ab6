package service

import (
	"context"
	"testing"
	"time"

	"github.com/haierkeys/note-keeper-service/internal/domain"

	"golang.org/x/sync/singleflight"
)

type mockStatsNoteRepo struct {
	domain.NoteRepository
	notes  []*domain.Note
	counts map[int64]int
}

func (m *mockStatsNoteRepo) GetAll(ctx context.Context) ([]*domain.Note, error) {
	return m.notes, nil
}

func (m *mockStatsNoteRepo) GetAllFiltered(ctx context.Context, filter *domain.NoteFilter) ([]*domain.Note, error) {
	var out []*domain.Note
	for _, n := range m.notes {
		if filter.Match(n) {
			out = append(out, n)
		}
	}
	return out, nil
}

func (m *mockStatsNoteRepo) GetNoteCountByCategory(ctx context.Context, categoryID int64) (int, error) {
	return m.counts[categoryID], nil
}

type mockStatsCategoryRepo struct {
	domain.CategoryRepository
	categories []*domain.Category
}

func (m *mockStatsCategoryRepo) GetAll(ctx context.Context) ([]*domain.Category, error) {
	return m.categories, nil
}

func newStatsService(noteRepo domain.NoteRepository, categoryRepo domain.CategoryRepository, now func() time.Time) *statisticsService {
	if now == nil {
		now = time.Now
	}
	return &statisticsService{
		noteRepo:     noteRepo,
		categoryRepo: categoryRepo,
		log:          noopLogger(nil),
		sf:           &singleflight.Group{},
		now:          now,
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestNotesByMonthGrouping(t *testing.T) {
	ctx := context.Background()
	repo := &mockStatsNoteRepo{
		notes: []*domain.Note{
			{ID: 1, Title: "a", CreatedAt: date(2025, time.December, 30)},
			{ID: 2, Title: "b", CreatedAt: date(2026, time.January, 5)},
			{ID: 3, Title: "c", CreatedAt: date(2026, time.January, 20)},
			{ID: 4, Title: "d", CreatedAt: date(2026, time.March, 2)},
		},
	}
	svc := newStatsService(repo, &mockStatsCategoryRepo{}, nil)

	got, err := svc.NotesByMonth(ctx, date(2025, time.December, 1), date(2026, time.March, 31))
	if err != nil {
		t.Fatalf("NotesByMonth failed: %v", err)
	}

	// 没有笔记的二月不出现，结果按年、月升序
	want := []domain.NotesByMonth{
		{Year: 2025, Month: 12, Total: 1},
		{Year: 2026, Month: 1, Total: 2},
		{Year: 2026, Month: 3, Total: 1},
	}
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d mismatch: got %+v, want %+v", i, got[i], want[i])
		}
	}
	if got[0].MonthName() != "December" || got[1].MonthName() != "January" {
		t.Errorf("month names mismatch: %s, %s", got[0].MonthName(), got[1].MonthName())
	}
}

func TestNotesByMonthRespectsRange(t *testing.T) {
	ctx := context.Background()
	repo := &mockStatsNoteRepo{
		notes: []*domain.Note{
			{ID: 1, Title: "in", CreatedAt: date(2026, time.January, 15)},
			{ID: 2, Title: "out", CreatedAt: date(2026, time.June, 15)},
		},
	}
	svc := newStatsService(repo, &mockStatsCategoryRepo{}, nil)

	got, err := svc.NotesByMonth(ctx, date(2026, time.January, 1), date(2026, time.January, 31))
	if err != nil {
		t.Fatalf("NotesByMonth failed: %v", err)
	}
	if len(got) != 1 || got[0].Month != 1 || got[0].Total != 1 {
		t.Errorf("range not respected: %+v", got)
	}
}

func TestCategoryStatisticsSorting(t *testing.T) {
	ctx := context.Background()
	noteRepo := &mockStatsNoteRepo{
		counts: map[int64]int{1: 3, 2: 0, 3: 3, 4: 5},
	}
	categoryRepo := &mockStatsCategoryRepo{
		categories: []*domain.Category{
			{ID: 1, Name: "Work"},
			{ID: 2, Name: "Idle"},
			{ID: 3, Name: "Home"},
			{ID: 4, Name: "Travel"},
		},
	}

	tests := []struct {
		name       string
		descending bool
		wantNames  []string
	}{
		{
			// 计数并列的 Work 和 Home 按名称升序
			name:       "descending with name tie-break",
			descending: true,
			wantNames:  []string{"Travel", "Home", "Work", "Idle"},
		},
		{
			name:       "ascending with name tie-break",
			descending: false,
			wantNames:  []string{"Idle", "Home", "Work", "Travel"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newStatsService(noteRepo, categoryRepo, nil)

			got, err := svc.CategoryStatistics(ctx, tt.descending)
			if err != nil {
				t.Fatalf("CategoryStatistics failed: %v", err)
			}
			if len(got) != len(tt.wantNames) {
				t.Fatalf("length mismatch: got %d, want %d", len(got), len(tt.wantNames))
			}
			for i, name := range tt.wantNames {
				if got[i].CategoryName != name {
					t.Errorf("position %d: got %q, want %q", i, got[i].CategoryName, name)
				}
			}
		})
	}
}

func TestCategoryStatisticsIncludesUnused(t *testing.T) {
	ctx := context.Background()
	noteRepo := &mockStatsNoteRepo{counts: map[int64]int{}}
	categoryRepo := &mockStatsCategoryRepo{
		categories: []*domain.Category{{ID: 1, Name: "Empty"}},
	}
	svc := newStatsService(noteRepo, categoryRepo, nil)

	got, err := svc.CategoryStatistics(ctx, true)
	if err != nil {
		t.Fatalf("CategoryStatistics failed: %v", err)
	}
	if len(got) != 1 || got[0].NoteCount != 0 {
		t.Errorf("unused category missing from stats: %+v", got)
	}
}

func TestCategoryStatSummary(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		counts      map[int64]int
		categories  []*domain.Category
		wantUsed    int
		wantUnused  int
		wantTotal   int
		wantPopular string
		wantCount   int
	}{
		{
			name:   "mixed usage",
			counts: map[int64]int{1: 4, 2: 0, 3: 2},
			categories: []*domain.Category{
				{ID: 1, Name: "Work"},
				{ID: 2, Name: "Idle"},
				{ID: 3, Name: "Home"},
			},
			wantUsed:    2,
			wantUnused:  1,
			wantTotal:   6,
			wantPopular: "Work",
			wantCount:   4,
		},
		{
			name:   "nothing used",
			counts: map[int64]int{1: 0},
			categories: []*domain.Category{
				{ID: 1, Name: "Idle"},
			},
			wantUsed:    0,
			wantUnused:  1,
			wantTotal:   0,
			wantPopular: domain.NoDataPlaceholder,
			wantCount:   0,
		},
		{
			name:        "no categories at all",
			counts:      map[int64]int{},
			categories:  nil,
			wantPopular: domain.NoDataPlaceholder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			noteRepo := &mockStatsNoteRepo{counts: tt.counts}
			categoryRepo := &mockStatsCategoryRepo{categories: tt.categories}
			svc := newStatsService(noteRepo, categoryRepo, nil)

			got, err := svc.CategoryStatSummary(ctx)
			if err != nil {
				t.Fatalf("CategoryStatSummary failed: %v", err)
			}
			if got.TotalCategories != len(tt.categories) {
				t.Errorf("TotalCategories: got %d, want %d", got.TotalCategories, len(tt.categories))
			}
			if got.UsedCategories != tt.wantUsed || got.UnusedCategories != tt.wantUnused {
				t.Errorf("used/unused: got %d/%d, want %d/%d",
					got.UsedCategories, got.UnusedCategories, tt.wantUsed, tt.wantUnused)
			}
			if got.TotalNotesInCategories != tt.wantTotal {
				t.Errorf("TotalNotesInCategories: got %d, want %d", got.TotalNotesInCategories, tt.wantTotal)
			}
			if got.MostPopularCategoryName != tt.wantPopular || got.MostPopularCategoryCount != tt.wantCount {
				t.Errorf("most popular: got %q/%d, want %q/%d",
					got.MostPopularCategoryName, got.MostPopularCategoryCount, tt.wantPopular, tt.wantCount)
			}
		})
	}
}

func TestGeneralStatistics(t *testing.T) {
	ctx := context.Background()
	now := date(2026, time.August, 29)

	noteRepo := &mockStatsNoteRepo{
		notes: []*domain.Note{
			{ID: 1, Title: "recent fav", IsFavorite: true, CreatedAt: now.AddDate(0, 0, -5)},
			{ID: 2, Title: "recent", CreatedAt: now.AddDate(0, 0, -29)},
			{ID: 3, Title: "old fav", IsFavorite: true, CreatedAt: now.AddDate(0, 0, -60)},
			{ID: 4, Title: "old", CreatedAt: now.AddDate(-1, 0, 0)},
		},
	}
	categoryRepo := &mockStatsCategoryRepo{
		categories: []*domain.Category{{ID: 1, Name: "Work"}},
	}
	svc := newStatsService(noteRepo, categoryRepo, func() time.Time { return now })

	got, err := svc.GeneralStatistics(ctx)
	if err != nil {
		t.Fatalf("GeneralStatistics failed: %v", err)
	}
	if got.TotalNotes != 4 {
		t.Errorf("TotalNotes: got %d, want 4", got.TotalNotes)
	}
	if got.TotalCategories != 1 {
		t.Errorf("TotalCategories: got %d, want 1", got.TotalCategories)
	}
	if got.FavoriteNotes != 2 {
		t.Errorf("FavoriteNotes: got %d, want 2", got.FavoriteNotes)
	}
	if got.NotesInLast30Days != 2 {
		t.Errorf("NotesInLast30Days: got %d, want 2", got.NotesInLast30Days)
	}
}
