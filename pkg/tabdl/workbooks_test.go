package tabdl

import (
	"context"
	"errors"
	"testing"

	"github.com/TadeasHofman/TableauAPI/pkg/tabdl/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindWorkbooksByName_Pagination(t *testing.T) {
	tests := []struct {
		name      string
		pages     [][]models.WorkbookRef
		totals    []int
		wantIDs   []string
		wantCalls int
	}{
		{
			name:      "partial last page is kept",
			pages:     [][]models.WorkbookRef{workbooks("a", "b"), workbooks("c", "d"), workbooks("e")},
			totals:    []int{5},
			wantIDs:   []string{"a", "b", "c", "d", "e"},
			wantCalls: 3,
		},
		{
			name:      "exact multiple stops without an extra call",
			pages:     [][]models.WorkbookRef{workbooks("a", "b"), workbooks("c", "d")},
			totals:    []int{4},
			wantIDs:   []string{"a", "b", "c", "d"},
			wantCalls: 2,
		},
		{
			name:      "no matches",
			totals:    []int{0},
			wantIDs:   []string{},
			wantCalls: 1,
		},
		{
			name:      "total overstated stops on empty page",
			pages:     [][]models.WorkbookRef{workbooks("a", "b")},
			totals:    []int{100},
			wantIDs:   []string{"a", "b"},
			wantCalls: 2,
		},
		{
			name:      "growing total is bounded by the first page",
			pages:     [][]models.WorkbookRef{workbooks("a", "b"), workbooks("c", "d"), workbooks("e", "f")},
			totals:    []int{4, 1000},
			wantIDs:   []string{"a", "b", "c", "d"},
			wantCalls: 2,
		},
		{
			name:      "zero total with items returns the first page",
			pages:     [][]models.WorkbookRef{workbooks("a")},
			totals:    []int{0},
			wantIDs:   []string{"a"},
			wantCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{pages: tt.pages, totals: tt.totals}
			s := newTestSession(t, svc)

			got, err := FindWorkbooksByName(context.Background(), s, "Sales", Options{PageSize: 2})
			require.NoError(t, err)
			require.NotNil(t, got)

			ids := make([]string, len(got))
			for i, wb := range got {
				ids[i] = wb.ID
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Len(t, svc.listCalls, tt.wantCalls)
			for i, call := range svc.listCalls {
				assert.Equal(t, "Sales", call.Name)
				assert.Equal(t, 2, call.PageSize)
				assert.Equal(t, i+1, call.PageNumber)
			}
		})
	}
}

func TestFindWorkbooksByName_DefaultPageSize(t *testing.T) {
	svc := &fakeService{totals: []int{0}}
	s := newTestSession(t, svc)

	_, err := FindWorkbooksByName(context.Background(), s, "Sales", Options{})
	require.NoError(t, err)
	require.Len(t, svc.listCalls, 1)
	assert.Equal(t, 100, svc.listCalls[0].PageSize)
}

func TestFindWorkbooksByName_ListError(t *testing.T) {
	cause := errors.New("connection reset")
	s := newTestSession(t, &fakeService{listErr: cause})

	got, err := FindWorkbooksByName(context.Background(), s, "Sales", DefaultOptions())
	assert.ErrorIs(t, err, cause)
	assert.Nil(t, got)
}

func TestFindWorkbooksByNameAndID(t *testing.T) {
	svc := salesService()
	s := newTestSession(t, svc)

	got, err := FindWorkbooksByNameAndID(context.Background(), s, "Sales", "wb-2", DefaultOptions())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "wb-2", got[0].ID)

	got, err = FindWorkbooksByNameAndID(context.Background(), s, "Sales", "wb-9", DefaultOptions())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestWorkbookPages_Restartable(t *testing.T) {
	svc := &fakeService{
		pages:  [][]models.WorkbookRef{workbooks("a", "b"), workbooks("c")},
		totals: []int{3},
	}
	s := newTestSession(t, svc)
	pages := WorkbookPages(context.Background(), s, "Sales", 2)

	count := func() int {
		n := 0
		for items, err := range pages {
			require.NoError(t, err)
			n += len(items)
		}
		return n
	}
	assert.Equal(t, 3, count())
	assert.Equal(t, 3, count())
	assert.Len(t, svc.listCalls, 4)
	assert.Equal(t, 1, svc.signIns)
}

func TestWorkbookPages_EarlyBreak(t *testing.T) {
	svc := &fakeService{
		pages:  [][]models.WorkbookRef{workbooks("a", "b"), workbooks("c")},
		totals: []int{3},
	}
	s := newTestSession(t, svc)

	for range WorkbookPages(context.Background(), s, "Sales", 2) {
		break
	}
	assert.Len(t, svc.listCalls, 1)
}

func TestWorkbookPages_ConnectFailure(t *testing.T) {
	svc := &fakeService{signInErr: errors.New("bad token")}
	s := newTestSession(t, svc)

	for _, err := range WorkbookPages(context.Background(), s, "Sales", 2) {
		assert.ErrorIs(t, err, ErrAuthentication)
	}
	assert.Empty(t, svc.listCalls)
}

func TestResolveView(t *testing.T) {
	svc := salesService()
	s := newTestSession(t, svc)
	wb := models.WorkbookRef{ID: "wb-2", Name: "Sales"}

	view, ok, err := ResolveView(context.Background(), s, wb, "Detail")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "v-2", view.ID)
	assert.Equal(t, wb, view.Workbook)

	view, ok, err = ResolveView(context.Background(), s, wb, "detail")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, view)
}

func TestResolveView_FetchError(t *testing.T) {
	cause := errors.New("timeout")
	s := newTestSession(t, &fakeService{viewsErr: cause})

	_, ok, err := ResolveView(context.Background(), s, models.WorkbookRef{ID: "wb-2"}, "Detail")
	assert.ErrorIs(t, err, cause)
	assert.False(t, ok)
}
