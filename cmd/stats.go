package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type statsFlags struct {
	startDate string
	endDate   string
	ascending bool
}

func init() {
	statsEnv := new(statsFlags)

	var statsCmd = &cobra.Command{
		Use:   "stats",
		Short: "Show statistics",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	var statsMonthsCmd = &cobra.Command{
		Use:   "months",
		Short: "Note totals grouped by month",
		Run: func(cmd *cobra.Command, args []string) {
			a, err := newApp()
			if err != nil {
				bootstrapLogger.Error("app init err", zap.Error(err))
				return
			}
			defer a.Close()

			// 默认统计最近一年
			end := time.Now()
			start := end.AddDate(-1, 0, 0)
			if statsEnv.startDate != "" {
				start, err = time.Parse(a.Config.App.DateFormat, statsEnv.startDate)
				if err != nil {
					fmt.Println("invalid start date:", statsEnv.startDate)
					return
				}
			}
			if statsEnv.endDate != "" {
				end, err = time.Parse(a.Config.App.DateFormat, statsEnv.endDate)
				if err != nil {
					fmt.Println("invalid end date:", statsEnv.endDate)
					return
				}
				end = end.AddDate(0, 0, 1).Add(-time.Nanosecond)
			}

			months, err := a.StatisticsService.NotesByMonth(context.Background(), start, end)
			if err != nil {
				printErr(err)
				return
			}
			if len(months) == 0 {
				fmt.Println("no notes in range")
				return
			}
			for _, m := range months {
				fmt.Printf("%d %-9s %d\n", m.Year, m.MonthName(), m.Total)
			}
		},
	}
	statsMonthsCmd.Flags().StringVar(&statsEnv.startDate, "start", "", "range start date")
	statsMonthsCmd.Flags().StringVar(&statsEnv.endDate, "end", "", "range end date")

	var statsCategoriesCmd = &cobra.Command{
		Use:   "categories",
		Short: "Note counts per category",
		Run: func(cmd *cobra.Command, args []string) {
			a, err := newApp()
			if err != nil {
				bootstrapLogger.Error("app init err", zap.Error(err))
				return
			}
			defer a.Close()

			stats, err := a.StatisticsService.CategoryStatistics(context.Background(), !statsEnv.ascending)
			if err != nil {
				printErr(err)
				return
			}
			if len(stats) == 0 {
				fmt.Println("no categories")
				return
			}
			for _, s := range stats {
				fmt.Printf("%-32s %d\n", s.CategoryName, s.NoteCount)
			}
		},
	}
	statsCategoriesCmd.Flags().BoolVar(&statsEnv.ascending, "asc", false, "sort by count ascending")

	var statsSummaryCmd = &cobra.Command{
		Use:   "summary",
		Short: "Category usage summary",
		Run: func(cmd *cobra.Command, args []string) {
			a, err := newApp()
			if err != nil {
				bootstrapLogger.Error("app init err", zap.Error(err))
				return
			}
			defer a.Close()

			summary, err := a.StatisticsService.CategoryStatSummary(context.Background())
			if err != nil {
				printErr(err)
				return
			}
			fmt.Printf("total categories:   %d\n", summary.TotalCategories)
			fmt.Printf("used categories:    %d\n", summary.UsedCategories)
			fmt.Printf("unused categories:  %d\n", summary.UnusedCategories)
			fmt.Printf("notes categorized:  %d\n", summary.TotalNotesInCategories)
			fmt.Printf("most popular:       %s (%d)\n", summary.MostPopularCategoryName, summary.MostPopularCategoryCount)
		},
	}

	var statsGeneralCmd = &cobra.Command{
		Use:   "general",
		Short: "Overall note statistics",
		Run: func(cmd *cobra.Command, args []string) {
			a, err := newApp()
			if err != nil {
				bootstrapLogger.Error("app init err", zap.Error(err))
				return
			}
			defer a.Close()

			general, err := a.StatisticsService.GeneralStatistics(context.Background())
			if err != nil {
				printErr(err)
				return
			}
			fmt.Printf("total notes:        %d\n", general.TotalNotes)
			fmt.Printf("total categories:   %d\n", general.TotalCategories)
			fmt.Printf("favorite notes:     %d\n", general.FavoriteNotes)
			fmt.Printf("notes last 30 days: %d\n", general.NotesInLast30Days)
		},
	}

	statsCmd.AddCommand(statsMonthsCmd, statsCategoriesCmd, statsSummaryCmd, statsGeneralCmd)
	rootCmd.AddCommand(statsCmd)
}
