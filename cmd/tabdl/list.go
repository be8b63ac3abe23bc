package main

import (
	"fmt"

	"github.com/TadeasHofman/TableauAPI/pkg/tabdl"
	"github.com/TadeasHofman/TableauAPI/pkg/tabdl/models"
	"github.com/spf13/cobra"
)

func newWorkbooksCmd() *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "workbooks NAME",
		Short: "List workbooks with the given name",
		Long: `List every workbook whose name is exactly NAME. Workbook names are not
unique; use the id column to pick one for download.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}

			var matches []models.WorkbookRef
			if id != "" {
				matches, err = tabdl.FindWorkbooksByNameAndID(cmd.Context(), s, args[0], id, cfg.Options())
			} else {
				matches, err = tabdl.FindWorkbooksByName(cmd.Context(), s, args[0], cfg.Options())
			}
			if err != nil {
				return err
			}

			if len(matches) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No workbooks found with the name %q.\n", args[0])
				return nil
			}
			renderWorkbooks(cmd.OutOrStdout(), matches)
			return nil
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "only show the workbook with this id")

	return cmd
}

func newViewsCmd() *cobra.Command {
	var workbook, workbookID string

	cmd := &cobra.Command{
		Use:   "views",
		Short: "List the views of a workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}

			matches, err := tabdl.FindWorkbooksByNameAndID(cmd.Context(), s, workbook, workbookID, cfg.Options())
			if err != nil {
				return err
			}
			if len(matches) == 0 {
				return tabdl.NewNotFoundError("workbook", workbook, workbookID)
			}

			views, err := tabdl.ListViews(cmd.Context(), s, matches[0])
			if err != nil {
				return err
			}
			renderViews(cmd.OutOrStdout(), views)
			return nil
		},
	}
	cmd.Flags().StringVar(&workbook, "workbook", "", "workbook name")
	cmd.Flags().StringVar(&workbookID, "workbook-id", "", "workbook id")
	_ = cmd.MarkFlagRequired("workbook")
	_ = cmd.MarkFlagRequired("workbook-id")

	return cmd
}
