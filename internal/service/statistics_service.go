package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/haierkeys/note-keeper-service/internal/domain"
	"github.com/haierkeys/note-keeper-service/pkg/code"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// StatisticsService 定义统计报表服务接口
// 所有方法只读，基于仓储当前快照计算，不修改任何状态
type StatisticsService interface {
	// NotesByMonth 按月统计指定日期范围（含端点）内的笔记数量
	// 按年、月升序排列，没有笔记的月份不出现在结果中
	NotesByMonth(ctx context.Context, startDate, endDate time.Time) ([]domain.NotesByMonth, error)

	// CategoryStatistics 统计每个分类（含未使用的，计数为0）的引用笔记数
	// 主排序为计数（方向由 sortDescending 决定），并列时按名称升序
	CategoryStatistics(ctx context.Context, sortDescending bool) ([]domain.CategoryStatItem, error)

	// CategoryStatSummary 分类使用统计汇总
	// 最热门分类取计数大于0的首个条目，不存在时为占位文本
	CategoryStatSummary(ctx context.Context) (*domain.CategoryStatSummary, error)

	// GeneralStatistics 总体统计，最近30天相对于调用时刻计算
	GeneralStatistics(ctx context.Context) (*domain.GeneralStatistics, error)
}

// statisticsService 实现 StatisticsService 接口
type statisticsService struct {
	noteRepo     domain.NoteRepository
	categoryRepo domain.CategoryRepository
	log          *zap.Logger
	sf           *singleflight.Group

	// now 可注入时钟，便于测试最近30天统计
	now func() time.Time
}

// NewStatisticsService 创建 StatisticsService 实例
func NewStatisticsService(noteRepo domain.NoteRepository, categoryRepo domain.CategoryRepository, log *zap.Logger) StatisticsService {
	return &statisticsService{
		noteRepo:     noteRepo,
		categoryRepo: categoryRepo,
		log:          noopLogger(log),
		sf:           &singleflight.Group{},
		now:          time.Now,
	}
}

// NotesByMonth 按月统计指定日期范围内的笔记数量
func (s *statisticsService) NotesByMonth(ctx context.Context, startDate, endDate time.Time) ([]domain.NotesByMonth, error) {
	key := fmt.Sprintf("notes-by-month:%d:%d", startDate.Unix(), endDate.Unix())
	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		filter := &domain.NoteFilter{StartDate: &startDate, EndDate: &endDate}
		notes, err := s.noteRepo.GetAllFiltered(ctx, filter)
		if err != nil {
			return nil, code.ErrorDBQuery.WithDetails(err.Error())
		}

		// 按 (年, 月) 分组计数
		type yearMonth struct {
			year  int
			month int
		}
		groups := make(map[yearMonth]int)
		for _, n := range notes {
			ym := yearMonth{year: n.CreatedAt.Year(), month: int(n.CreatedAt.Month())}
			groups[ym]++
		}

		result := make([]domain.NotesByMonth, 0, len(groups))
		for k, total := range groups {
			result = append(result, domain.NotesByMonth{Year: k.year, Month: k.month, Total: total})
		}
		sort.Slice(result, func(i, j int) bool {
			if result[i].Year != result[j].Year {
				return result[i].Year < result[j].Year
			}
			return result[i].Month < result[j].Month
		})
		return result, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.NotesByMonth), nil
}

// CategoryStatistics 统计每个分类的引用笔记数
func (s *statisticsService) CategoryStatistics(ctx context.Context, sortDescending bool) ([]domain.CategoryStatItem, error) {
	key := fmt.Sprintf("category-statistics:%t", sortDescending)
	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		categories, err := s.categoryRepo.GetAll(ctx)
		if err != nil {
			return nil, code.ErrorDBQuery.WithDetails(err.Error())
		}

		result := make([]domain.CategoryStatItem, 0, len(categories))
		for _, c := range categories {
			count, err := s.noteRepo.GetNoteCountByCategory(ctx, c.ID)
			if err != nil {
				return nil, code.ErrorDBQuery.WithDetails(err.Error())
			}
			result = append(result, domain.CategoryStatItem{
				CategoryID:   c.ID,
				CategoryName: c.Name,
				NoteCount:    count,
			})
		}

		// 主排序为计数，并列时按名称升序
		sort.Slice(result, func(i, j int) bool {
			if result[i].NoteCount != result[j].NoteCount {
				if sortDescending {
					return result[i].NoteCount > result[j].NoteCount
				}
				return result[i].NoteCount < result[j].NoteCount
			}
			return result[i].CategoryName < result[j].CategoryName
		})
		return result, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.CategoryStatItem), nil
}

// CategoryStatSummary 分类使用统计汇总
func (s *statisticsService) CategoryStatSummary(ctx context.Context) (*domain.CategoryStatSummary, error) {
	stats, err := s.CategoryStatistics(ctx, true)
	if err != nil {
		return nil, err
	}

	summary := &domain.CategoryStatSummary{
		TotalCategories:          len(stats),
		MostPopularCategoryName:  domain.NoDataPlaceholder,
		MostPopularCategoryCount: 0,
	}
	for _, item := range stats {
		if item.NoteCount > 0 {
			summary.UsedCategories++
			summary.TotalNotesInCategories += item.NoteCount
		}
	}
	summary.UnusedCategories = summary.TotalCategories - summary.UsedCategories

	// 降序排列下计数大于0的首个条目即为最热门分类
	if len(stats) > 0 && stats[0].NoteCount > 0 {
		summary.MostPopularCategoryName = stats[0].CategoryName
		summary.MostPopularCategoryCount = stats[0].NoteCount
	}
	return summary, nil
}

// GeneralStatistics 总体统计
func (s *statisticsService) GeneralStatistics(ctx context.Context) (*domain.GeneralStatistics, error) {
	notes, err := s.noteRepo.GetAll(ctx)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}

	stats := &domain.GeneralStatistics{
		TotalNotes:      len(notes),
		TotalCategories: len(categories),
	}
	cutoff := s.now().AddDate(0, 0, -30)
	for _, n := range notes {
		if n.IsFavorite {
			stats.FavoriteNotes++
		}
		if !n.CreatedAt.Before(cutoff) {
			stats.NotesInLast30Days++
		}
	}
	return stats, nil
}
