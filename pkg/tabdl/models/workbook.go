package models

// WorkbookRef identifies a workbook on the server.
// Names are not unique; ID is.
type WorkbookRef struct {
	// ID is the server-assigned workbook identifier.
	ID string `json:"id"`
	// Name is the workbook display name.
	Name string `json:"name"`
	// ContentURL is the URL-safe workbook name.
	ContentURL string `json:"content_url,omitempty"`
	// ProjectName is the name of the project containing the workbook.
	ProjectName string `json:"project_name,omitempty"`
}

// ViewRef identifies a view nested inside a workbook.
type ViewRef struct {
	// ID is the server-assigned view identifier.
	ID string `json:"id"`
	// Name is the view display name.
	Name string `json:"name"`
	// ContentURL is the URL-safe view path.
	ContentURL string `json:"content_url,omitempty"`
	// Workbook is the workbook the view belongs to.
	Workbook WorkbookRef `json:"workbook"`
}

// Pagination describes one page of a listing response.
type Pagination struct {
	// PageNumber is the 1-based page index.
	PageNumber int `json:"page_number"`
	// PageSize is the number of items requested per page.
	PageSize int `json:"page_size"`
	// TotalAvailable is the total number of items across all pages.
	TotalAvailable int `json:"total_available"`
}
