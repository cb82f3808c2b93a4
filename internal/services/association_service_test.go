package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkendrick/jobtrack/internal/models"
)

func TestReconcileAddsAndRemoves(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()

	t1 := seedTag(t, ts, "Applied")
	t2 := seedTag(t, ts, "Interviewed")
	t3 := seedTag(t, ts, "Offer")
	app := seedApplication(t, ts, "Acme", "Engineer", "2024-01-01")

	require.NoError(t, ts.associations.Reconcile(ctx, ts.db, app.ID, []uint{t1.ID, t2.ID}))
	ids, err := ts.associations.TagsFor(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{t1.ID, t2.ID}, ids)

	// t1 drops out, t3 comes in, t2 is untouched.
	require.NoError(t, ts.associations.Reconcile(ctx, ts.db, app.ID, []uint{t2.ID, t3.ID}))
	ids, err = ts.associations.TagsFor(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{t2.ID, t3.ID}, ids)
}

func TestReconcileIsIdempotent(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()

	t1 := seedTag(t, ts, "Applied")
	t2 := seedTag(t, ts, "Offer")
	app := seedApplication(t, ts, "Acme", "Engineer", "2024-01-01", t1.ID, t2.ID)

	var before []models.ApplicationTag
	require.NoError(t, ts.db.Order("tag_id").Find(&before).Error)

	require.NoError(t, ts.associations.Reconcile(ctx, ts.db, app.ID, []uint{t1.ID, t2.ID}))

	var after []models.ApplicationTag
	require.NoError(t, ts.db.Order("tag_id").Find(&after).Error)
	assert.Equal(t, before, after, "reconciling the same set should write nothing")
}

func TestReconcileDeduplicatesInput(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()

	t1 := seedTag(t, ts, "Applied")
	app := seedApplication(t, ts, "Acme", "Engineer", "2024-01-01")

	require.NoError(t, ts.associations.Reconcile(ctx, ts.db, app.ID, []uint{t1.ID, t1.ID, t1.ID}))

	var count int64
	require.NoError(t, ts.db.Model(&models.ApplicationTag{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestReconcileEmptySetRemovesAll(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()

	t1 := seedTag(t, ts, "Applied")
	t2 := seedTag(t, ts, "Offer")
	app := seedApplication(t, ts, "Acme", "Engineer", "2024-01-01", t1.ID, t2.ID)

	require.NoError(t, ts.associations.Reconcile(ctx, ts.db, app.ID, nil))
	ids, err := ts.associations.TagsFor(ctx, app.ID)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestCascadeDeleteForApplication(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()

	t1 := seedTag(t, ts, "Applied")
	a := seedApplication(t, ts, "Acme", "Engineer", "2024-01-01", t1.ID)
	b := seedApplication(t, ts, "Zeta", "Engineer", "2024-02-01", t1.ID)

	require.NoError(t, ts.associations.CascadeDeleteForApplication(ctx, ts.db, a.ID))

	ids, err := ts.associations.TagsFor(ctx, a.ID)
	require.NoError(t, err)
	assert.Empty(t, ids)

	// The other application's links survive.
	ids, err = ts.associations.TagsFor(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{t1.ID}, ids)
}

func TestCascadeDeleteForTag(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()

	t1 := seedTag(t, ts, "Applied")
	t2 := seedTag(t, ts, "Offer")
	app := seedApplication(t, ts, "Acme", "Engineer", "2024-01-01", t1.ID, t2.ID)

	require.NoError(t, ts.associations.CascadeDeleteForTag(ctx, ts.db, t1.ID))

	ids, err := ts.associations.TagsFor(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{t2.ID}, ids)
}

func TestTagNamesForDanglingReference(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()

	t1 := seedTag(t, ts, "Applied")
	app := seedApplication(t, ts, "Acme", "Engineer", "2024-01-01", t1.ID)

	// Remove the tag row directly, leaving the link behind.
	require.NoError(t, ts.db.Delete(&models.Tag{}, t1.ID).Error)

	names, err := ts.associations.TagNamesFor(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{""}, names, "dangling link keeps its slot with an empty name")
}
