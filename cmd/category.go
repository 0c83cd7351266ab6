package cmd

import (
	"context"
	"fmt"

	"github.com/haierkeys/note-keeper-service/internal/domain"
	"github.com/haierkeys/note-keeper-service/internal/dto"
	"github.com/haierkeys/note-keeper-service/pkg/convert"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type categoryFlags struct {
	contains string
	cleanup  bool
}

func init() {
	categoryEnv := new(categoryFlags)

	var categoryCmd = &cobra.Command{
		Use:   "category",
		Short: "Manage categories",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	var categoryListCmd = &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Run: func(cmd *cobra.Command, args []string) {
			a, err := newApp()
			if err != nil {
				bootstrapLogger.Error("app init err", zap.Error(err))
				return
			}
			defer a.Close()

			filter := new(domain.CategoryFilter)
			if categoryEnv.contains != "" {
				filter.NameContains = categoryEnv.contains
			}

			categories, err := a.CategoryService.List(context.Background(), filter)
			if err != nil {
				printErr(err)
				return
			}
			if len(categories) == 0 {
				fmt.Println("no categories")
				return
			}
			for _, c := range categories {
				fmt.Printf("%-6d %s\n", c.ID, c.Name)
			}
			fmt.Printf("%d category(ies)\n", len(categories))
		},
	}
	categoryListCmd.Flags().StringVar(&categoryEnv.contains, "contains", "", "filter: name contains (case-insensitive)")

	var categoryAddCmd = &cobra.Command{
		Use:   "add <name>",
		Short: "Create a category",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			a, err := newApp()
			if err != nil {
				bootstrapLogger.Error("app init err", zap.Error(err))
				return
			}
			defer a.Close()

			category, err := a.CategoryService.Create(context.Background(), &dto.CategoryCreateRequest{Name: args[0]})
			if err != nil {
				printErr(err)
				return
			}
			fmt.Printf("category created, id=%d\n", category.ID)
		},
	}

	var categoryRenameCmd = &cobra.Command{
		Use:   "rename <id> <name>",
		Short: "Rename a category",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			a, err := newApp()
			if err != nil {
				bootstrapLogger.Error("app init err", zap.Error(err))
				return
			}
			defer a.Close()

			err = a.CategoryService.Update(context.Background(), convert.StrTo(args[0]).MustInt64(), &dto.CategoryUpdateRequest{Name: args[1]})
			if err != nil {
				printErr(err)
				return
			}
			fmt.Println("category renamed")
		},
	}

	var categoryDeleteCmd = &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category, refused while notes still reference it unless --cleanup",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			a, err := newApp()
			if err != nil {
				bootstrapLogger.Error("app init err", zap.Error(err))
				return
			}
			defer a.Close()

			id := convert.StrTo(args[0]).MustInt64()
			if categoryEnv.cleanup {
				err = a.CategoryService.DeleteWithCleanup(context.Background(), id)
			} else {
				err = a.CategoryService.Delete(context.Background(), id)
			}
			if err != nil {
				printErr(err)
				return
			}
			fmt.Println("category deleted")
		},
	}
	categoryDeleteCmd.Flags().BoolVar(&categoryEnv.cleanup, "cleanup", false, "detach the category from all notes first")

	categoryCmd.AddCommand(categoryListCmd, categoryAddCmd, categoryRenameCmd, categoryDeleteCmd)
	rootCmd.AddCommand(categoryCmd)
}
