package dtos

// TagCreateRequest is the body for POST /tags.
type TagCreateRequest struct {
	Name string `json:"name" binding:"required"`
}

// TagUpdateRequest is the body for PUT /tags/:id. ID must match the path id.
type TagUpdateRequest struct {
	ID   uint   `json:"id" binding:"required"`
	Name string `json:"name" binding:"required"`
}

// DashboardSummary is the GET /dashboard payload. ApplicationsByTag has
// an entry for every registered tag, zero counts included.
type DashboardSummary struct {
	TotalApplications int64            `json:"totalApplications"`
	ApplicationsByTag map[string]int64 `json:"applicationsByTag"`
}
