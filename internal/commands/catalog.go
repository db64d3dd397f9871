package commands

import (
	"context"
	"errors"
	"strings"

	command "github.com/goliatone/go-command"

	"github.com/redlitmus-in/MeterSquare-sub012/internal/inbox"
	"github.com/redlitmus-in/MeterSquare-sub012/pkg/domain"
	"github.com/redlitmus-in/MeterSquare-sub012/pkg/interfaces/logger"
)

// Catalog exposes go-command compatible handlers for host transports.
type Catalog struct {
	DeliverNotification command.Commander[DeliverNotification]
	InboxMarkRead       command.Commander[InboxMarkRead]
	InboxDismiss        command.Commander[InboxDismiss]
}

type inboxService interface {
	Deliver(ctx context.Context, input inbox.DeliverInput) (*domain.InboxNotification, error)
	MarkRead(ctx context.Context, userID string, ids []string, read bool) error
	Dismiss(ctx context.Context, userID, id string) error
}

// Dependencies wires services into the command catalog.
type Dependencies struct {
	Inbox  inboxService
	Logger logger.Logger
}

// NewCatalog builds the command catalog using the supplied dependencies.
func NewCatalog(deps Dependencies) (*Catalog, error) {
	if deps.Inbox == nil {
		return nil, errors.New("commands: inbox service is required")
	}
	if deps.Logger == nil {
		deps.Logger = &logger.Nop{}
	}

	return &Catalog{
		DeliverNotification: deliverCommand{svc: deps.Inbox},
		InboxMarkRead:       inboxMarkReadCommand{svc: deps.Inbox},
		InboxDismiss:        inboxDismissCommand{svc: deps.Inbox},
	}, nil
}

// DeliverNotification is the payload for routing a notification into a
// recipient's inbox.
type DeliverNotification struct {
	UserID   string         `json:"user_id"`
	Role     any            `json:"role"`
	Title    string         `json:"title"`
	Message  string         `json:"message"`
	Category string         `json:"category"`
	Type     string         `json:"type"`
	Metadata map[string]any `json:"metadata"`
}

type deliverCommand struct {
	svc inboxService
}

func (c deliverCommand) Execute(ctx context.Context, msg DeliverNotification) error {
	if strings.TrimSpace(msg.UserID) == "" {
		return errors.New("commands: user_id is required")
	}
	_, err := c.svc.Deliver(ctx, inbox.DeliverInput{
		UserID: msg.UserID,
		Role:   msg.Role,
		Notification: domain.Notification{
			Title:    msg.Title,
			Message:  msg.Message,
			Category: msg.Category,
			Type:     msg.Type,
			Metadata: domain.MetadataFromMap(msg.Metadata),
		},
	})
	return err
}

// InboxMarkRead request payload.
type InboxMarkRead struct {
	UserID string   `json:"user_id"`
	IDs    []string `json:"ids"`
	Read   bool     `json:"read"`
}

type inboxMarkReadCommand struct {
	svc inboxService
}

func (c inboxMarkReadCommand) Execute(ctx context.Context, msg InboxMarkRead) error {
	return c.svc.MarkRead(ctx, msg.UserID, msg.IDs, msg.Read)
}

// InboxDismiss dismisses a notification.
type InboxDismiss struct {
	UserID string `json:"user_id"`
	ID     string `json:"id"`
}

type inboxDismissCommand struct {
	svc inboxService
}

func (c inboxDismissCommand) Execute(ctx context.Context, msg InboxDismiss) error {
	return c.svc.Dismiss(ctx, msg.UserID, msg.ID)
}
