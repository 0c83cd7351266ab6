package cmd

import (
	"context"
	"fmt"
	"time"

	internalApp "github.com/haierkeys/note-keeper-service/internal/app"
	"github.com/haierkeys/note-keeper-service/internal/domain"
	"github.com/haierkeys/note-keeper-service/internal/dto"
	"github.com/haierkeys/note-keeper-service/pkg/convert"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type noteFlags struct {
	title      string
	content    string
	favorite   bool
	categories []int64
	startDate  string
	endDate    string
	categoryID int64
}

func init() {
	noteEnv := new(noteFlags)

	var noteCmd = &cobra.Command{
		Use:   "note",
		Short: "Manage notes",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	var noteListCmd = &cobra.Command{
		Use:   "list",
		Short: "List notes, newest first",
		Run: func(cmd *cobra.Command, args []string) {
			a, err := newApp()
			if err != nil {
				bootstrapLogger.Error("app init err", zap.Error(err))
				return
			}
			defer a.Close()

			filter := new(domain.NoteFilter)
			if noteEnv.startDate != "" {
				t, err := time.Parse(a.Config.App.DateFormat, noteEnv.startDate)
				if err != nil {
					fmt.Println("invalid start date:", noteEnv.startDate)
					return
				}
				filter.StartDate = &t
			}
			if noteEnv.endDate != "" {
				t, err := time.Parse(a.Config.App.DateFormat, noteEnv.endDate)
				if err != nil {
					fmt.Println("invalid end date:", noteEnv.endDate)
					return
				}
				// 上界包含当天，取当天最后一纳秒
				t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
				filter.EndDate = &t
			}
			if noteEnv.categoryID > 0 {
				filter.CategoryID = &noteEnv.categoryID
			}
			if cmd.Flags().Changed("favorite") {
				filter.IsFavorite = &noteEnv.favorite
			}

			notes, err := a.NoteService.List(context.Background(), filter)
			if err != nil {
				printErr(err)
				return
			}
			printNotes(a, notes)
		},
	}
	noteListCmd.Flags().StringVar(&noteEnv.startDate, "start", "", "filter: created on or after this date")
	noteListCmd.Flags().StringVar(&noteEnv.endDate, "end", "", "filter: created on or before this date")
	noteListCmd.Flags().Int64Var(&noteEnv.categoryID, "category", 0, "filter: category id")
	noteListCmd.Flags().BoolVar(&noteEnv.favorite, "favorite", false, "filter: favorite state")

	var noteGetCmd = &cobra.Command{
		Use:   "get <id>",
		Short: "Show a note",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			a, err := newApp()
			if err != nil {
				bootstrapLogger.Error("app init err", zap.Error(err))
				return
			}
			defer a.Close()

			note, err := a.NoteService.Get(context.Background(), convert.StrTo(args[0]).MustInt64())
			if err != nil {
				printErr(err)
				return
			}
			printNoteDetail(a, note)
		},
	}

	var noteAddCmd = &cobra.Command{
		Use:   "add",
		Short: "Create a note",
		Run: func(cmd *cobra.Command, args []string) {
			a, err := newApp()
			if err != nil {
				bootstrapLogger.Error("app init err", zap.Error(err))
				return
			}
			defer a.Close()

			note, err := a.NoteService.Create(context.Background(), &dto.NoteCreateRequest{
				Title:       noteEnv.title,
				Content:     noteEnv.content,
				IsFavorite:  noteEnv.favorite,
				CategoryIDs: noteEnv.categories,
			})
			if err != nil {
				printErr(err)
				return
			}
			fmt.Printf("note created, id=%d\n", note.ID)
		},
	}
	noteAddCmd.Flags().StringVarP(&noteEnv.title, "title", "t", "", "note title")
	noteAddCmd.Flags().StringVar(&noteEnv.content, "content", "", "note content")
	noteAddCmd.Flags().BoolVar(&noteEnv.favorite, "favorite", false, "mark as favorite")
	noteAddCmd.Flags().Int64SliceVar(&noteEnv.categories, "categories", nil, "category ids")

	var noteUpdateCmd = &cobra.Command{
		Use:   "update <id>",
		Short: "Update a note, categories are replaced as a whole",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			a, err := newApp()
			if err != nil {
				bootstrapLogger.Error("app init err", zap.Error(err))
				return
			}
			defer a.Close()

			err = a.NoteService.Update(context.Background(), convert.StrTo(args[0]).MustInt64(), &dto.NoteUpdateRequest{
				Title:       noteEnv.title,
				Content:     noteEnv.content,
				IsFavorite:  noteEnv.favorite,
				CategoryIDs: noteEnv.categories,
			})
			if err != nil {
				printErr(err)
				return
			}
			fmt.Println("note updated")
		},
	}
	noteUpdateCmd.Flags().StringVarP(&noteEnv.title, "title", "t", "", "note title")
	noteUpdateCmd.Flags().StringVar(&noteEnv.content, "content", "", "note content")
	noteUpdateCmd.Flags().BoolVar(&noteEnv.favorite, "favorite", false, "mark as favorite")
	noteUpdateCmd.Flags().Int64SliceVar(&noteEnv.categories, "categories", nil, "category ids")

	var noteDeleteCmd = &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			a, err := newApp()
			if err != nil {
				bootstrapLogger.Error("app init err", zap.Error(err))
				return
			}
			defer a.Close()

			if err := a.NoteService.Delete(context.Background(), convert.StrTo(args[0]).MustInt64()); err != nil {
				printErr(err)
				return
			}
			fmt.Println("note deleted")
		},
	}

	var noteFavoriteCmd = &cobra.Command{
		Use:   "favorite <id>",
		Short: "Toggle favorite state of a note",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			a, err := newApp()
			if err != nil {
				bootstrapLogger.Error("app init err", zap.Error(err))
				return
			}
			defer a.Close()

			if err := a.NoteService.ToggleFavorite(context.Background(), convert.StrTo(args[0]).MustInt64()); err != nil {
				printErr(err)
				return
			}
			fmt.Println("favorite toggled")
		},
	}

	var noteFavoritesCmd = &cobra.Command{
		Use:   "favorites",
		Short: "List favorite notes",
		Run: func(cmd *cobra.Command, args []string) {
			a, err := newApp()
			if err != nil {
				bootstrapLogger.Error("app init err", zap.Error(err))
				return
			}
			defer a.Close()

			notes, err := a.NoteService.GetFavorites(context.Background())
			if err != nil {
				printErr(err)
				return
			}
			printNotes(a, notes)
		},
	}

	noteCmd.AddCommand(noteListCmd, noteGetCmd, noteAddCmd, noteUpdateCmd, noteDeleteCmd, noteFavoriteCmd, noteFavoritesCmd)
	rootCmd.AddCommand(noteCmd)
}

func printNotes(a *internalApp.App, notes []*domain.Note) {
	if len(notes) == 0 {
		fmt.Println("no notes")
		return
	}
	for _, n := range notes {
		star := " "
		if n.IsFavorite {
			star = "*"
		}
		fmt.Printf("%s %-6d %-10s %-32s [%s]\n",
			star, n.ID, n.CreatedAt.Format(a.Config.App.DateFormat), n.Title, n.CategoriesString())
	}
	fmt.Printf("%d note(s)\n", len(notes))
}

func printNoteDetail(a *internalApp.App, n *domain.Note) {
	star := ""
	if n.IsFavorite {
		star = " *"
	}
	fmt.Printf("id:         %d%s\n", n.ID, star)
	fmt.Printf("title:      %s\n", n.Title)
	fmt.Printf("created:    %s\n", n.CreatedAt.Format(a.Config.App.DateFormat))
	fmt.Printf("categories: %s\n", n.CategoriesString())
	fmt.Printf("content:\n%s\n", n.Content)
}
