package tabdl

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/TadeasHofman/TableauAPI/internal/testutil"
	"github.com/TadeasHofman/TableauAPI/pkg/tabdl/models"
	"github.com/TadeasHofman/TableauAPI/pkg/tabdl/tableau"
)

// fakeService is an in-memory Service that records every call.
type fakeService struct {
	signInErr error
	signIns   int

	// pages[i] is returned for page number i+1; later pages are empty.
	pages [][]models.WorkbookRef
	// totals[i] is the total reported on page i+1; the last entry repeats.
	totals    []int
	listErr   error
	listCalls []tableau.ListOptions

	views    map[string][]models.ViewRef
	viewsErr error

	// data answers view data queries; nil uses regionCSV.
	data    func(filter *models.ViewFilter) ([]byte, error)
	queries []*models.ViewFilter
}

func (f *fakeService) SignIn(context.Context) error {
	f.signIns++
	return f.signInErr
}

func (f *fakeService) ListWorkbooks(_ context.Context, opts tableau.ListOptions) ([]models.WorkbookRef, models.Pagination, error) {
	f.listCalls = append(f.listCalls, opts)
	if f.listErr != nil {
		return nil, models.Pagination{}, f.listErr
	}
	idx := opts.PageNumber - 1
	var items []models.WorkbookRef
	if idx < len(f.pages) {
		items = f.pages[idx]
	}
	total := 0
	if len(f.totals) > 0 {
		total = f.totals[min(idx, len(f.totals)-1)]
	}
	return items, models.Pagination{PageNumber: opts.PageNumber, PageSize: opts.PageSize, TotalAvailable: total}, nil
}

func (f *fakeService) ListViews(_ context.Context, wb models.WorkbookRef) ([]models.ViewRef, error) {
	if f.viewsErr != nil {
		return nil, f.viewsErr
	}
	views := f.views[wb.ID]
	for i := range views {
		views[i].Workbook = wb
	}
	return views, nil
}

func (f *fakeService) ViewData(_ context.Context, _ models.ViewRef, filter *models.ViewFilter) ([]byte, error) {
	f.queries = append(f.queries, filter)
	if f.data != nil {
		return f.data(filter)
	}
	return regionCSV(filter), nil
}

// regionCSV answers with one row per filter value, or two rows unfiltered.
func regionCSV(filter *models.ViewFilter) []byte {
	var b strings.Builder
	b.WriteString("Region,Sales\n")
	if filter == nil {
		b.WriteString("east,10\nwest,20\n")
		return []byte(b.String())
	}
	for _, v := range filter.Values {
		fmt.Fprintf(&b, "%s,1\n", v)
	}
	return []byte(b.String())
}

// salesService has one workbook "Sales" (id wb-2, sharing its name with wb-1)
// holding views "Overview" and "Detail".
func salesService() *fakeService {
	return &fakeService{
		pages: [][]models.WorkbookRef{{
			{ID: "wb-1", Name: "Sales"},
			{ID: "wb-2", Name: "Sales"},
		}},
		totals: []int{2},
		views: map[string][]models.ViewRef{
			"wb-2": {
				{ID: "v-1", Name: "Overview"},
				{ID: "v-2", Name: "Detail"},
			},
		},
	}
}

func newTestSession(t *testing.T, svc Service) *Session {
	t.Helper()
	return NewSession(svc, "https://tableau.test", testutil.NewTestLogger(t))
}

func workbooks(ids ...string) []models.WorkbookRef {
	out := make([]models.WorkbookRef, len(ids))
	for i, id := range ids {
		out[i] = models.WorkbookRef{ID: id, Name: "Sales"}
	}
	return out
}
