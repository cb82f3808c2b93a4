package services

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/mkendrick/jobtrack/internal/apperr"
	"github.com/mkendrick/jobtrack/internal/models"
	"gorm.io/gorm"
)

const maxTagNameLen = 50

// TagService is the tag registry: CRUD over the available tags, with
// cascade removal of associations on delete.
type TagService struct {
	db           *gorm.DB
	associations *AssociationService
}

func NewTagService(db *gorm.DB, associations *AssociationService) *TagService {
	return &TagService{db: db, associations: associations}
}

// List returns all tags ordered by id.
func (s *TagService) List(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	if err := s.db.WithContext(ctx).Order("id").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (s *TagService) Get(ctx context.Context, id uint) (*models.Tag, error) {
	var tag models.Tag
	if err := s.db.WithContext(ctx).First(&tag, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("tag %d not found", id)
		}
		return nil, err
	}
	return &tag, nil
}

func (s *TagService) Create(ctx context.Context, name string) (*models.Tag, error) {
	name, err := validTagName(name)
	if err != nil {
		return nil, err
	}
	tag := &models.Tag{Name: name}
	if err := s.db.WithContext(ctx).Create(tag).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflictf("tag %q already exists", name)
		}
		return nil, err
	}
	return tag, nil
}

func (s *TagService) Update(ctx context.Context, id uint, name string) (*models.Tag, error) {
	name, err := validTagName(name)
	if err != nil {
		return nil, err
	}
	tag, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	tag.Name = name
	if err := s.db.WithContext(ctx).Save(tag).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflictf("tag %q already exists", name)
		}
		return nil, err
	}
	return tag, nil
}

// Delete removes a tag and every association referencing it, in one
// transaction.
func (s *TagService) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var tag models.Tag
		if err := tx.First(&tag, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFoundf("tag %d not found", id)
			}
			return err
		}
		if err := s.associations.CascadeDeleteForTag(ctx, tx, id); err != nil {
			return err
		}
		return tx.Delete(&models.Tag{}, id).Error
	})
}

func validTagName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", apperr.Validationf("tag name is required")
	}
	if utf8.RuneCountInString(name) > maxTagNameLen {
		return "", apperr.Validationf("tag name must be at most %d characters", maxTagNameLen)
	}
	return name, nil
}
