package tabdl

import (
	"context"
	"maps"
	"slices"

	"github.com/TadeasHofman/TableauAPI/pkg/tabdl/models"
	"github.com/TadeasHofman/TableauAPI/pkg/tabdl/parser"
)

// DownloadRequest names the view to download and the filters to apply.
type DownloadRequest struct {
	WorkbookName string
	WorkbookID   string
	ViewName     string
	// Filters restricts the download. Nil or empty downloads the whole view.
	Filters models.FilterSpec
}

// DownloadView downloads the data of one view as a single table.
//
// Without filters it issues one query. With filters, each key's distinct
// values are split into batches of at most opts.BatchSize and every batch is
// queried on its own, so keys multiply the number of queries. The first
// batch's columns set the column order of the result; later batches are
// reordered to it and rows are concatenated in query order without
// deduplication.
//
// A missing workbook or view returns a *NotFoundError. A failed query returns
// a *QueryError and an unusable response a *ParseError; in both cases nothing
// that was already downloaded is returned.
func DownloadView(ctx context.Context, s *Session, req DownloadRequest, opts Options) (*models.Table, error) {
	log := s.logger.With("workbook", req.WorkbookName, "view", req.ViewName)
	log.Info("starting download")

	if err := s.Connect(ctx); err != nil {
		return nil, err
	}

	workbooks, err := FindWorkbooksByNameAndID(ctx, s, req.WorkbookName, req.WorkbookID, opts)
	if err != nil {
		return nil, err
	}
	if len(workbooks) == 0 {
		log.Warn("workbook not found", "id", req.WorkbookID)
		return nil, NewNotFoundError("workbook", req.WorkbookName, req.WorkbookID)
	}

	view, ok, err := ResolveView(ctx, s, workbooks[0], req.ViewName)
	if err != nil {
		return nil, err
	}
	if !ok {
		log.Warn("view not found")
		return nil, NewNotFoundError("view", req.ViewName, "")
	}

	if req.Filters.Empty() {
		log.Info("no filters applied, downloading whole view")
		return queryBatch(ctx, s, *view, "", 0, nil)
	}

	var m merger
	for _, key := range slices.Sorted(maps.Keys(req.Filters)) {
		values := Dedupe(req.Filters[key])
		log.Info("applying filter", "key", key, "unique_values", len(values))

		for i, batch := range Partition(values, opts.batchSize()) {
			log.Debug("querying batch", "key", key, "batch", i, "size", len(batch))
			filter := &models.ViewFilter{Field: key, Values: formatValues(batch)}
			table, err := queryBatch(ctx, s, *view, key, i, filter)
			if err != nil {
				return nil, err
			}
			if err := m.add(table); err != nil {
				return nil, NewParseError(key, i, err)
			}
		}
	}

	log.Info("combining batches", "batches", len(m.batches))
	return m.result()
}

// queryBatch issues one scoped query and parses its response.
func queryBatch(ctx context.Context, s *Session, view models.ViewRef, key string, index int, filter *models.ViewFilter) (*models.Table, error) {
	data, err := s.svc.ViewData(ctx, view, filter)
	if err != nil {
		return nil, NewQueryError(key, index, err)
	}
	table, err := parser.ParseCSV(data)
	if err != nil {
		return nil, NewParseError(key, index, err)
	}
	return table, nil
}

// merger accumulates batch tables under the column order of the first one.
type merger struct {
	columns []string
	batches []*models.Table
}

func (m *merger) add(t *models.Table) error {
	if m.columns == nil {
		m.columns = t.Columns
		m.batches = append(m.batches, t)
		return nil
	}
	projected, err := t.Project(m.columns)
	if err != nil {
		return err
	}
	m.batches = append(m.batches, projected)
	return nil
}

// result concatenates the batches. With no batches at all the table is empty.
func (m *merger) result() (*models.Table, error) {
	if m.columns == nil {
		return &models.Table{Columns: []string{}, Rows: [][]string{}}, nil
	}
	return models.Concat(m.columns, m.batches...)
}
