package service

import (
	"context"
	"testing"

	"schoolsite/internal/model"
	"schoolsite/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnouncementLifecycle(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAnnouncementService(
		repository.NewAnnouncementRepository(db),
		repository.NewAuditRepository(db),
		repository.NewTransactionManager(db),
		nil,
	)
	ctx := context.Background()
	actor := createReviewer(t, db)

	t.Run("create", func(t *testing.T) {
		created, err := svc.Create(ctx, actor.ID.String(), CreateAnnouncementRequest{
			Title:   "Enrollment opens Monday",
			Content: "Doors open at 8am.",
			Date:    "2026-06-01",
			Type:    model.AnnouncementTypeEnrollment,
		})
		require.NoError(t, err)
		assert.True(t, created.IsActive)

		var auditCount int64
		db.Model(&model.AuditLog{}).Where("action = ?", model.ActionCreateContent).Count(&auditCount)
		assert.EqualValues(t, 1, auditCount)
	})

	t.Run("invalid date is refused", func(t *testing.T) {
		_, err := svc.Create(ctx, actor.ID.String(), CreateAnnouncementRequest{
			Title:   "Bad date",
			Content: "x",
			Date:    "June 1st",
		})
		assert.Error(t, err)
	})

	t.Run("public list hides inactive", func(t *testing.T) {
		inactive := false
		_, err := svc.Create(ctx, actor.ID.String(), CreateAnnouncementRequest{
			Title:    "Draft item",
			Content:  "Not ready yet.",
			Date:     "2026-06-15",
			IsActive: &inactive,
		})
		require.NoError(t, err)

		public, total, err := svc.ListPublic(ctx, 1, 50)
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		for _, a := range public {
			assert.True(t, a.IsActive)
		}

		all, total, err := svc.ListAll(ctx, "", 1, 50)
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		assert.Len(t, all, 2)
	})

	t.Run("update and delete", func(t *testing.T) {
		created, err := svc.Create(ctx, actor.ID.String(), CreateAnnouncementRequest{
			Title:   "Sports fest",
			Content: "All levels.",
			Date:    "2026-07-10",
			Type:    model.AnnouncementTypeEvent,
		})
		require.NoError(t, err)

		updated, err := svc.Update(ctx, actor.ID.String(), created.ID.String(), UpdateAnnouncementRequest{
			Title:   "Sports fest (rescheduled)",
			Content: created.Content,
			Date:    "2026-07-17",
		})
		require.NoError(t, err)
		assert.Equal(t, "Sports fest (rescheduled)", updated.Title)

		require.NoError(t, svc.Delete(ctx, actor.ID.String(), created.ID.String()))
		_, err = svc.Get(ctx, created.ID.String())
		assert.ErrorIs(t, err, ErrContentNotFound)
	})
}
