package cpanel

import (
	"context"
	"encoding/json"
)

// EmailAPI is the per-account capability of the client: mailbox, quota,
// password, and forwarder management via the UAPI namespace.
type EmailAPI interface {
	AddEmailAccount(ctx context.Context, email, password string, quota int) (json.RawMessage, error)
	DeleteEmailAccount(ctx context.Context, email string) (json.RawMessage, error)
	ListEmailAccounts(ctx context.Context, domain string) ([]EmailAccount, error)
	ChangePassword(ctx context.Context, email, newPassword string) (json.RawMessage, error)
	UpdateQuota(ctx context.Context, email string, quota int) (json.RawMessage, error)
	GetEmailSettings(ctx context.Context) (json.RawMessage, error)
	CreateForwarder(ctx context.Context, email, destination string) (json.RawMessage, error)
	DeleteForwarder(ctx context.Context, email, destination string) (json.RawMessage, error)
	ListForwarders(ctx context.Context, domain string) ([]Forwarder, error)
	GetForwarderSettings(ctx context.Context) (json.RawMessage, error)
}

// ZoneAPI is the administrative capability of the client: DNS zone record
// management via the WHM API namespace.
type ZoneAPI interface {
	GetZoneRecords(ctx context.Context, domain string) ([]ZoneRecord, error)
	AddZoneRecord(ctx context.Context, input ZoneRecordInput) (json.RawMessage, error)
	EditZoneRecord(ctx context.Context, line int, input ZoneRecordInput) (json.RawMessage, error)
	DeleteZoneRecord(ctx context.Context, domain string, line int) (json.RawMessage, error)
}

// The one client implements both capabilities; callers pick the namespace
// explicitly by the method they invoke.
var (
	_ EmailAPI = (*Client)(nil)
	_ ZoneAPI  = (*Client)(nil)
)
