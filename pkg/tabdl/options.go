// Package tabdl downloads the data behind Tableau views, splitting large
// filter value sets into bounded batches and merging the results into one
// table.
package tabdl

import "github.com/TadeasHofman/TableauAPI/pkg/tabdl/tableau"

// DefaultBatchSize is the maximum number of filter values sent in one query.
const DefaultBatchSize = 50

// Options configures lookups and downloads.
type Options struct {
	// BatchSize bounds the number of values per filter clause.
	// Zero or negative uses DefaultBatchSize.
	BatchSize int
	// PageSize is the workbook listing page size.
	// Zero or negative uses tableau.DefaultPageSize.
	PageSize int
}

// DefaultOptions returns default download options.
func DefaultOptions() Options {
	return Options{
		BatchSize: DefaultBatchSize,
		PageSize:  tableau.DefaultPageSize,
	}
}

// batchSize returns the effective batch size.
func (o Options) batchSize() int {
	if o.BatchSize > 0 {
		return o.BatchSize
	}
	return DefaultBatchSize
}

// pageSize returns the effective listing page size.
func (o Options) pageSize() int {
	if o.PageSize > 0 {
		return o.PageSize
	}
	return tableau.DefaultPageSize
}
