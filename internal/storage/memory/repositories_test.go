package memory

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/redlitmus-in/MeterSquare-sub012/pkg/domain"
	"github.com/redlitmus-in/MeterSquare-sub012/pkg/interfaces/store"
)

func newInboxRecord(userID, title string) *domain.InboxNotification {
	return &domain.InboxNotification{
		UserID:   userID,
		Role:     "estimator",
		Title:    title,
		Message:  "body",
		Category: "boq",
		Unread:   true,
	}
}

func TestInboxCreateAssignsIdentity(t *testing.T) {
	repo := NewInboxRepository()
	record := newInboxRecord("user-1", "BOQ Approved")

	if err := repo.Create(context.Background(), record); err != nil {
		t.Fatalf("create: %v", err)
	}
	if record.ID == uuid.Nil {
		t.Fatal("expected generated id")
	}
	if record.CreatedAt.IsZero() {
		t.Fatal("expected created timestamp")
	}

	got, err := repo.GetByID(context.Background(), record.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "BOQ Approved" {
		t.Fatalf("unexpected title %q", got.Title)
	}
}

func TestInboxGetMissing(t *testing.T) {
	repo := NewInboxRepository()
	if _, err := repo.GetByID(context.Background(), uuid.New()); err != store.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestInboxUpdateMissing(t *testing.T) {
	repo := NewInboxRepository()
	record := newInboxRecord("user-1", "orphan")
	record.EnsureID()
	if err := repo.Update(context.Background(), record); err != store.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestInboxListByUserScoping(t *testing.T) {
	repo := NewInboxRepository()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := repo.Create(ctx, newInboxRecord("user-1", "mine")); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	if err := repo.Create(ctx, newInboxRecord("user-2", "theirs")); err != nil {
		t.Fatalf("create: %v", err)
	}

	result, err := repo.ListByUser(ctx, "user-1", store.InboxQuery{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if result.Total != 3 {
		t.Fatalf("expected 3 records, got %d", result.Total)
	}
	for _, item := range result.Items {
		if item.UserID != "user-1" {
			t.Fatalf("leaked record for %q", item.UserID)
		}
	}
}

func TestInboxListPagination(t *testing.T) {
	repo := NewInboxRepository()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := repo.Create(ctx, newInboxRecord("user-1", "n")); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	result, err := repo.ListByUser(ctx, "user-1", store.InboxQuery{Limit: 2, Offset: 4})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if result.Total != 5 {
		t.Fatalf("expected total 5, got %d", result.Total)
	}
	if len(result.Items) != 1 {
		t.Fatalf("expected 1 item on last page, got %d", len(result.Items))
	}
}

func TestInboxListFiltersApplyBeforePagination(t *testing.T) {
	repo := NewInboxRepository()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := repo.Create(ctx, newInboxRecord("user-1", "boq update")); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	read := newInboxRecord("user-1", "already seen")
	if err := repo.Create(ctx, read); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.MarkRead(ctx, read.ID, true); err != nil {
		t.Fatalf("mark read: %v", err)
	}
	task := newInboxRecord("user-1", "task update")
	task.Category = "task"
	if err := repo.Create(ctx, task); err != nil {
		t.Fatalf("create: %v", err)
	}
	dismissed := newInboxRecord("user-1", "noisy")
	if err := repo.Create(ctx, dismissed); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Dismiss(ctx, dismissed.ID); err != nil {
		t.Fatalf("dismiss: %v", err)
	}

	result, err := repo.ListByUser(ctx, "user-1", store.InboxQuery{
		Category:   "boq",
		UnreadOnly: true,
		Limit:      2,
		Offset:     2,
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if result.Total != 5 {
		t.Fatalf("expected total to count all matches, got %d", result.Total)
	}
	if len(result.Items) != 2 {
		t.Fatalf("expected a full page of 2, got %d", len(result.Items))
	}
	for _, item := range result.Items {
		if item.Category != "boq" || !item.Unread {
			t.Fatalf("filter leaked record %q", item.Title)
		}
	}

	// Dismissed records come back only on request.
	result, err = repo.ListByUser(ctx, "user-1", store.InboxQuery{IncludeDismissed: true})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if result.Total != 8 {
		t.Fatalf("expected dismissed record included, got %d", result.Total)
	}
}

func TestInboxMarkReadAndBadge(t *testing.T) {
	repo := NewInboxRepository()
	ctx := context.Background()

	first := newInboxRecord("user-1", "first")
	second := newInboxRecord("user-1", "second")
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Create(ctx, second); err != nil {
		t.Fatalf("create: %v", err)
	}

	count, err := repo.CountUnread(ctx, "user-1")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 unread, got %d", count)
	}

	if err := repo.MarkRead(ctx, first.ID, true); err != nil {
		t.Fatalf("mark read: %v", err)
	}
	got, err := repo.GetByID(ctx, first.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Unread {
		t.Fatal("expected record to be read")
	}
	if got.ReadAt.IsZero() {
		t.Fatal("expected read timestamp")
	}

	count, err = repo.CountUnread(ctx, "user-1")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 unread, got %d", count)
	}

	// Toggling back clears the timestamp.
	if err := repo.MarkRead(ctx, first.ID, false); err != nil {
		t.Fatalf("mark unread: %v", err)
	}
	got, err = repo.GetByID(ctx, first.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.Unread || !got.ReadAt.IsZero() {
		t.Fatal("expected record back to unread")
	}
}

func TestInboxDismissDropsFromBadge(t *testing.T) {
	repo := NewInboxRepository()
	ctx := context.Background()

	record := newInboxRecord("user-1", "noisy")
	if err := repo.Create(ctx, record); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Dismiss(ctx, record.ID); err != nil {
		t.Fatalf("dismiss: %v", err)
	}

	count, err := repo.CountUnread(ctx, "user-1")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0 unread after dismiss, got %d", count)
	}

	got, err := repo.GetByID(ctx, record.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.DismissedAt.IsZero() {
		t.Fatal("expected dismissal timestamp")
	}
}

func TestInboxSoftDeleteHidesRecord(t *testing.T) {
	repo := NewInboxRepository()
	ctx := context.Background()

	record := newInboxRecord("user-1", "gone")
	if err := repo.Create(ctx, record); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.SoftDelete(ctx, record.ID); err != nil {
		t.Fatalf("soft delete: %v", err)
	}

	if _, err := repo.GetByID(ctx, record.ID); err != store.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	result, err := repo.ListByUser(ctx, "user-1", store.InboxQuery{IncludeSoftDeleted: true})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if result.Total != 1 {
		t.Fatalf("expected soft-deleted record in unfiltered list, got %d", result.Total)
	}
}
