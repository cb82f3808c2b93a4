package services

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/mkendrick/jobtrack/internal/apperr"
	"github.com/mkendrick/jobtrack/internal/dtos"
	"github.com/mkendrick/jobtrack/internal/models"
	"gorm.io/gorm"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100

	maxFieldLen = 100
	dateLayout  = "2006-01-02"
)

// sortOrders maps the accepted (sortBy, sortDir) pairs to their ORDER BY
// clause. The id tie-break keeps paging deterministic when several rows
// share a sort-key value. Adding a sortable field is a table entry, not
// new control flow.
type sortKey struct {
	field, dir string
}

var sortOrders = map[sortKey]string{
	{"companyName", "asc"}:  "company_name ASC, id ASC",
	{"companyName", "desc"}: "company_name DESC, id DESC",
	{"position", "asc"}:     "position ASC, id ASC",
	{"position", "desc"}:    "position DESC, id DESC",
	{"dateApplied", "asc"}:  "date_applied ASC, id ASC",
	{"dateApplied", "desc"}: "date_applied DESC, id DESC",
}

const defaultOrder = "date_applied DESC, id DESC"

// likeEscaper neutralizes LIKE metacharacters so a search term matches
// as a literal substring. The queries declare '\' as the escape rune.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// orderClause resolves the requested sort. Anything unrecognized falls
// back to dateApplied descending rather than erroring.
func orderClause(sortBy, sortDir string) string {
	dir := strings.ToLower(sortDir)
	if dir != "asc" {
		dir = "desc"
	}
	if clause, ok := sortOrders[sortKey{sortBy, dir}]; ok {
		return clause
	}
	return defaultOrder
}

// ApplicationService handles application CRUD and the list query
// (filter, sort, page).
type ApplicationService struct {
	db           *gorm.DB
	associations *AssociationService
}

func NewApplicationService(db *gorm.DB, associations *AssociationService) *ApplicationService {
	return &ApplicationService{db: db, associations: associations}
}

// Query returns one page of application summaries. The search term
// matches case-insensitively as a substring of the company name, the
// position, or any linked tag's name. TotalCount is computed before
// paging, so it is the same for every page of a given filter; a page
// past the end returns empty items with the count unchanged.
func (s *ApplicationService) Query(ctx context.Context, q *dtos.ApplicationQuery) (*dtos.ApplicationPage, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	pageSize := q.PageSize
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	base := s.db.WithContext(ctx).Model(&models.JobApplication{})
	if term := strings.TrimSpace(q.SearchTerm); term != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
		tagMatch := s.db.Model(&models.ApplicationTag{}).
			Select("application_tags.application_id").
			Joins("JOIN tags ON tags.id = application_tags.tag_id").
			Where(`LOWER(tags.name) LIKE ? ESCAPE '\'`, pattern)
		base = base.Where(
			`LOWER(company_name) LIKE ? ESCAPE '\' OR LOWER(position) LIKE ? ESCAPE '\' OR id IN (?)`,
			pattern, pattern, tagMatch,
		)
	}
	query := base.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var apps []models.JobApplication
	err := query.Order(orderClause(q.SortBy, q.SortDir)).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&apps).Error
	if err != nil {
		return nil, err
	}

	items := make([]dtos.ApplicationSummary, 0, len(apps))
	for i := range apps {
		summary, err := s.toSummary(ctx, &apps[i])
		if err != nil {
			return nil, err
		}
		items = append(items, *summary)
	}

	return &dtos.ApplicationPage{
		TotalCount: total,
		Page:       page,
		PageSize:   pageSize,
		Items:      items,
	}, nil
}

// Get returns a single application as a summary with resolved tag names.
func (s *ApplicationService) Get(ctx context.Context, id uint) (*dtos.ApplicationSummary, error) {
	var app models.JobApplication
	if err := s.db.WithContext(ctx).First(&app, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("application %d not found", id)
		}
		return nil, err
	}
	return s.toSummary(ctx, &app)
}

// Create validates the input and stores the record plus its initial tag
// links in one transaction.
func (s *ApplicationService) Create(ctx context.Context, req *dtos.ApplicationCreateRequest) (*dtos.ApplicationSummary, error) {
	app, err := buildApplication(req.CompanyName, req.Position, req.DateApplied)
	if err != nil {
		return nil, err
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(app).Error; err != nil {
			return err
		}
		return s.associations.Reconcile(ctx, tx, app.ID, req.TagIDs)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, app.ID)
}

// Update replaces the scalar fields and reconciles the tag set against
// req.TagIDs, all in one transaction. The body id must match the path id.
func (s *ApplicationService) Update(ctx context.Context, id uint, req *dtos.ApplicationUpdateRequest) (*dtos.ApplicationSummary, error) {
	if req.ID != id {
		return nil, apperr.Conflictf("body id %d does not match path id %d", req.ID, id)
	}
	fields, err := buildApplication(req.CompanyName, req.Position, req.DateApplied)
	if err != nil {
		return nil, err
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.JobApplication
		if err := tx.First(&existing, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFoundf("application %d not found", id)
			}
			return err
		}
		existing.CompanyName = fields.CompanyName
		existing.Position = fields.Position
		existing.DateApplied = fields.DateApplied
		if err := tx.Save(&existing).Error; err != nil {
			return err
		}
		return s.associations.Reconcile(ctx, tx, id, req.TagIDs)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Delete removes the application and cascades its associations in one
// transaction.
func (s *ApplicationService) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var app models.JobApplication
		if err := tx.First(&app, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFoundf("application %d not found", id)
			}
			return err
		}
		if err := s.associations.CascadeDeleteForApplication(ctx, tx, id); err != nil {
			return err
		}
		return tx.Delete(&models.JobApplication{}, id).Error
	})
}

func (s *ApplicationService) toSummary(ctx context.Context, app *models.JobApplication) (*dtos.ApplicationSummary, error) {
	names, err := s.associations.TagNamesFor(ctx, app.ID)
	if err != nil {
		return nil, err
	}
	return &dtos.ApplicationSummary{
		ID:          app.ID,
		CompanyName: app.CompanyName,
		Position:    app.Position,
		DateApplied: app.DateApplied.Format(dateLayout),
		Tags:        names,
	}, nil
}

func buildApplication(company, position, date string) (*models.JobApplication, error) {
	company = strings.TrimSpace(company)
	position = strings.TrimSpace(position)
	if company == "" {
		return nil, apperr.Validationf("companyName is required")
	}
	if utf8.RuneCountInString(company) > maxFieldLen {
		return nil, apperr.Validationf("companyName must be at most %d characters", maxFieldLen)
	}
	if position == "" {
		return nil, apperr.Validationf("position is required")
	}
	if utf8.RuneCountInString(position) > maxFieldLen {
		return nil, apperr.Validationf("position must be at most %d characters", maxFieldLen)
	}
	applied, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, apperr.Validationf("dateApplied must be a %s date", dateLayout)
	}
	return &models.JobApplication{
		CompanyName: company,
		Position:    position,
		DateApplied: applied,
	}, nil
}
