package tabdl

import (
	"context"
	"iter"

	"github.com/TadeasHofman/TableauAPI/pkg/tabdl/models"
	"github.com/TadeasHofman/TableauAPI/pkg/tabdl/tableau"
)

// WorkbookPages yields the pages of workbooks whose name equals name.
//
// The sequence is finite: it ends once the items seen cover the total the
// server reported, when a page comes back empty, or after the number of pages
// the first page's total implies. Ranging over it again starts from page one.
func WorkbookPages(ctx context.Context, s *Session, name string, pageSize int) iter.Seq2[[]models.WorkbookRef, error] {
	if pageSize <= 0 {
		pageSize = tableau.DefaultPageSize
	}
	return func(yield func([]models.WorkbookRef, error) bool) {
		if err := s.Connect(ctx); err != nil {
			yield(nil, err)
			return
		}

		seen, maxPages := 0, 0
		for pageNumber := 1; ; pageNumber++ {
			items, page, err := s.svc.ListWorkbooks(ctx, tableau.ListOptions{
				Name:       name,
				PageSize:   pageSize,
				PageNumber: pageNumber,
			})
			if err != nil {
				yield(nil, err)
				return
			}
			if pageNumber == 1 {
				maxPages = pageBound(page, pageSize)
			}

			seen += len(items)
			if len(items) > 0 && !yield(items, nil) {
				return
			}
			if len(items) == 0 || seen >= page.TotalAvailable || pageNumber >= maxPages {
				return
			}
		}
	}
}

// pageBound returns how many pages the reported total spans. The server may
// cap the page size below what was asked for.
func pageBound(page models.Pagination, requested int) int {
	size := requested
	if page.PageSize > 0 && page.PageSize < size {
		size = page.PageSize
	}
	return (page.TotalAvailable + size - 1) / size
}

// FindWorkbooksByName returns every workbook named name. Names are not unique,
// so several workbooks may match. No match yields an empty slice.
func FindWorkbooksByName(ctx context.Context, s *Session, name string, opts Options) ([]models.WorkbookRef, error) {
	s.logger.Info("searching for workbooks", "name", name)

	matches := []models.WorkbookRef{}
	for items, err := range WorkbookPages(ctx, s, name, opts.pageSize()) {
		if err != nil {
			return nil, err
		}
		matches = append(matches, items...)
	}

	s.logger.Info("workbook search finished", "name", name, "matches", len(matches))
	for _, wb := range matches {
		s.logger.Debug("workbook match", "name", wb.Name, "id", wb.ID, "project", wb.ProjectName)
	}
	return matches, nil
}

// FindWorkbooksByNameAndID returns the workbooks named name whose ID equals id.
// No match yields an empty slice, not an error.
func FindWorkbooksByNameAndID(ctx context.Context, s *Session, name, id string, opts Options) ([]models.WorkbookRef, error) {
	all, err := FindWorkbooksByName(ctx, s, name, opts)
	if err != nil {
		return nil, err
	}

	matches := []models.WorkbookRef{}
	for _, wb := range all {
		if wb.ID == id {
			matches = append(matches, wb)
		}
	}
	s.logger.Info("workbook id filter applied", "name", name, "id", id, "matches", len(matches))
	return matches, nil
}
