package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkendrick/jobtrack/internal/apperr"
)

func TestTagCreate(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()

	tag, err := ts.tags.Create(ctx, "  Interviewed  ")
	require.NoError(t, err)
	assert.Equal(t, "Interviewed", tag.Name)
	assert.NotZero(t, tag.ID)
}

func TestTagCreateValidation(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()

	_, err := ts.tags.Create(ctx, "")
	assert.True(t, apperr.IsValidation(err))

	_, err = ts.tags.Create(ctx, "   ")
	assert.True(t, apperr.IsValidation(err))

	_, err = ts.tags.Create(ctx, strings.Repeat("x", 51))
	assert.True(t, apperr.IsValidation(err))

	// The limit counts characters, not bytes: 50 multibyte runes pass.
	tag, err := ts.tags.Create(ctx, strings.Repeat("é", 50))
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("é", 50), tag.Name)
}

func TestTagCreateDuplicateName(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()

	seedTag(t, ts, "Offer")
	_, err := ts.tags.Create(ctx, "Offer")
	assert.True(t, apperr.IsConflict(err))
}

func TestTagGetMissing(t *testing.T) {
	ts := newTestServices(t)

	_, err := ts.tags.Get(context.Background(), 42)
	assert.True(t, apperr.IsNotFound(err))
}

func TestTagUpdate(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()

	tag := seedTag(t, ts, "Offer")
	updated, err := ts.tags.Update(ctx, tag.ID, "Offer Received")
	require.NoError(t, err)
	assert.Equal(t, "Offer Received", updated.Name)

	_, err = ts.tags.Update(ctx, 42, "Anything")
	assert.True(t, apperr.IsNotFound(err))
}

func TestTagList(t *testing.T) {
	ts := newTestServices(t)

	b := seedTag(t, ts, "B")
	a := seedTag(t, ts, "A")

	tags, err := ts.tags.List(context.Background())
	require.NoError(t, err)
	require.Len(t, tags, 2)
	// Stable order by id, not by name.
	assert.Equal(t, b.ID, tags[0].ID)
	assert.Equal(t, a.ID, tags[1].ID)
}

func TestTagDeleteMissing(t *testing.T) {
	ts := newTestServices(t)

	err := ts.tags.Delete(context.Background(), 42)
	assert.True(t, apperr.IsNotFound(err))
}

func TestTagDeleteCascadesAssociations(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()

	offer := seedTag(t, ts, "Offer")
	applied := seedTag(t, ts, "Applied")
	app := seedApplication(t, ts, "Acme", "Engineer", "2024-01-01", offer.ID, applied.ID)

	require.NoError(t, ts.tags.Delete(ctx, offer.ID))

	_, err := ts.tags.Get(ctx, offer.ID)
	assert.True(t, apperr.IsNotFound(err))

	names, err := ts.associations.TagNamesFor(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Applied"}, names)
}
