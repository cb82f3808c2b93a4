package services

import (
	"context"
	"errors"
	"log"
	"sort"

	"github.com/mkendrick/jobtrack/internal/apperr"
	"github.com/mkendrick/jobtrack/internal/models"
	"gorm.io/gorm"
)

// AssociationService owns the many-to-many links between applications
// and tags. It is the only code that reads or writes application_tags;
// the cascade helpers are called from the owning entity's delete path
// and are not exposed over HTTP.
type AssociationService struct {
	db *gorm.DB
}

func NewAssociationService(db *gorm.DB) *AssociationService {
	return &AssociationService{db: db}
}

// Reconcile brings an application's stored tag links in line with the
// desired tag-id set: links missing from desired are removed, links only
// in desired are added. Duplicate ids in the input count once, and a
// second call with the same set writes nothing. Runs on the caller's
// transaction so the whole diff applies or none of it does.
func (s *AssociationService) Reconcile(ctx context.Context, tx *gorm.DB, appID uint, desiredTagIDs []uint) error {
	desired := make(map[uint]bool, len(desiredTagIDs))
	for _, id := range desiredTagIDs {
		desired[id] = true
	}

	var current []uint
	err := tx.WithContext(ctx).Model(&models.ApplicationTag{}).
		Where("application_id = ?", appID).
		Pluck("tag_id", &current).Error
	if err != nil {
		return err
	}

	have := make(map[uint]bool, len(current))
	var toRemove []uint
	for _, id := range current {
		have[id] = true
		if !desired[id] {
			toRemove = append(toRemove, id)
		}
	}

	var toAdd []models.ApplicationTag
	for id := range desired {
		if !have[id] {
			toAdd = append(toAdd, models.ApplicationTag{ApplicationID: appID, TagID: id})
		}
	}
	sort.Slice(toAdd, func(i, j int) bool { return toAdd[i].TagID < toAdd[j].TagID })

	if len(toRemove) > 0 {
		err := tx.WithContext(ctx).
			Where("application_id = ? AND tag_id IN ?", appID, toRemove).
			Delete(&models.ApplicationTag{}).Error
		if err != nil {
			return err
		}
	}
	if len(toAdd) > 0 {
		if err := tx.WithContext(ctx).Create(&toAdd).Error; err != nil {
			// A duplicate key here means a concurrent reconcile won the
			// race for the same pair; the caller retries or reports it.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperr.Conflictf("tags for application %d were modified concurrently", appID)
			}
			return err
		}
	}
	return nil
}

// TagsFor returns the ids of the tags currently linked to an
// application, ordered by tag id.
func (s *AssociationService) TagsFor(ctx context.Context, appID uint) ([]uint, error) {
	var ids []uint
	err := s.db.WithContext(ctx).Model(&models.ApplicationTag{}).
		Where("application_id = ?", appID).
		Order("tag_id").
		Pluck("tag_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// TagNamesFor resolves the tag names for an application. A link whose
// tag no longer exists still occupies a slot, with an empty name: the
// dangling reference is a data integrity problem worth logging, not a
// reason to fail the read or shrink the count.
func (s *AssociationService) TagNamesFor(ctx context.Context, appID uint) ([]string, error) {
	ids, err := s.TagsFor(ctx, appID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []string{}, nil
	}

	var tags []models.Tag
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&tags).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint]string, len(tags))
	for _, t := range tags {
		byID[t.ID] = t.Name
	}

	names := make([]string, 0, len(ids))
	for _, id := range ids {
		name, ok := byID[id]
		if !ok {
			log.Print(apperr.Integrityf("application %d references missing tag %d", appID, id))
		}
		names = append(names, name)
	}
	return names, nil
}

// CascadeDeleteForApplication removes every link owned by the given
// application. Called from the application delete transaction.
func (s *AssociationService) CascadeDeleteForApplication(ctx context.Context, tx *gorm.DB, appID uint) error {
	return tx.WithContext(ctx).
		Where("application_id = ?", appID).
		Delete(&models.ApplicationTag{}).Error
}

// CascadeDeleteForTag removes every link referencing the given tag.
// Called from the tag delete transaction.
func (s *AssociationService) CascadeDeleteForTag(ctx context.Context, tx *gorm.DB, tagID uint) error {
	return tx.WithContext(ctx).
		Where("tag_id = ?", tagID).
		Delete(&models.ApplicationTag{}).Error
}
