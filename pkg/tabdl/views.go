package tabdl

import (
	"context"

	"github.com/TadeasHofman/TableauAPI/pkg/tabdl/models"
)

// ListViews fetches the views of wb.
func ListViews(ctx context.Context, s *Session, wb models.WorkbookRef) ([]models.ViewRef, error) {
	if err := s.Connect(ctx); err != nil {
		return nil, err
	}
	s.logger.Info("populating views", "workbook", wb.Name, "id", wb.ID)
	return s.svc.ListViews(ctx, wb)
}

// ResolveView fetches the views of wb and returns the first one named
// viewName. A missing view returns ok == false and a nil error.
func ResolveView(ctx context.Context, s *Session, wb models.WorkbookRef, viewName string) (view *models.ViewRef, ok bool, err error) {
	views, err := ListViews(ctx, s, wb)
	if err != nil {
		return nil, false, err
	}

	for i := range views {
		if views[i].Name == viewName {
			return &views[i], true, nil
		}
	}
	return nil, false, nil
}
