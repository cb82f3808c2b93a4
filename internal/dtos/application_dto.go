package dtos

// ApplicationCreateRequest is the body for POST /applications.
// DateApplied is a calendar date, formatted 2006-01-02.
type ApplicationCreateRequest struct {
	CompanyName string `json:"companyName" binding:"required"`
	Position    string `json:"position" binding:"required"`
	DateApplied string `json:"dateApplied" binding:"required"`
	TagIDs      []uint `json:"tagIds"`
}

// ApplicationUpdateRequest is the body for PUT /applications/:id.
// ID must match the path id. TagIDs is the full desired tag set; the
// stored associations are reconciled against it.
type ApplicationUpdateRequest struct {
	ID          uint   `json:"id" binding:"required"`
	CompanyName string `json:"companyName" binding:"required"`
	Position    string `json:"position" binding:"required"`
	DateApplied string `json:"dateApplied" binding:"required"`
	TagIDs      []uint `json:"tagIds"`
}

// ApplicationQuery carries the list parameters. Values the handler could
// not parse arrive as zero values and fall back to defaults in the
// service; a malformed query never errors.
type ApplicationQuery struct {
	SearchTerm string
	Page       int
	PageSize   int
	SortBy     string
	SortDir    string
}

// ApplicationSummary is the display-ready projection of an application,
// with resolved tag names instead of ids.
type ApplicationSummary struct {
	ID          uint     `json:"id"`
	CompanyName string   `json:"companyName"`
	Position    string   `json:"position"`
	DateApplied string   `json:"dateApplied"`
	Tags        []string `json:"tags"`
}

// ApplicationPage is one page of query results. TotalCount is the number
// of matching records before paging.
type ApplicationPage struct {
	TotalCount int64                `json:"totalCount"`
	Page       int                  `json:"page"`
	PageSize   int                  `json:"pageSize"`
	Items      []ApplicationSummary `json:"items"`
}
