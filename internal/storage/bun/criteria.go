package bunrepo

import (
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/redlitmus-in/MeterSquare-sub012/pkg/interfaces/store"
)

func withID(id uuid.UUID) repository.SelectCriteria {
	return func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("id = ?", id)
	}
}

func withoutDeleted() repository.SelectCriteria {
	return func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("deleted_at IS NULL")
	}
}

func withUser(userID string) repository.SelectCriteria {
	return func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("user_id = ?", userID)
	}
}

// withInboxQuery translates the inbox filters into WHERE clauses and
// pagination. The count side of List ignores limit and offset, which keeps
// Total at the overall match count.
func withInboxQuery(opts store.InboxQuery) repository.SelectCriteria {
	return func(q *bun.SelectQuery) *bun.SelectQuery {
		if opts.Limit > 0 {
			q = q.Limit(opts.Limit)
		}
		if opts.Offset > 0 {
			q = q.Offset(opts.Offset)
		}
		if !opts.IncludeSoftDeleted {
			q = q.Where("deleted_at IS NULL")
		}
		if !opts.IncludeDismissed {
			q = q.Where("dismissed_at IS NULL")
		}
		if opts.UnreadOnly {
			q = q.Where("unread = TRUE")
		}
		if opts.Category != "" {
			q = q.Where("LOWER(category) = LOWER(?)", opts.Category)
		}
		if !opts.Since.IsZero() {
			q = q.Where("created_at >= ?", opts.Since)
		}
		if !opts.Until.IsZero() {
			q = q.Where("created_at <= ?", opts.Until)
		}
		if !opts.Before.IsZero() {
			q = q.Where("created_at < ?", opts.Before)
		}
		return q
	}
}

func orderNewestFirst() repository.SelectCriteria {
	return func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("created_at DESC")
	}
}
