package cpanel

import "fmt"

// ValidationError reports a caller-supplied argument that failed a local
// precondition. It is always returned before any network call is made.
type ValidationError struct {
	// Param is the name of the offending parameter (e.g., "email", "ttl")
	Param string

	// Message describes why the value was rejected
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Param, e.Message)
}

// APIError reports a logical failure from the remote cPanel API. The
// Message field carries the remote error text verbatim.
type APIError struct {
	// Namespace is the API namespace the call went to ("uapi" or "whm")
	Namespace string

	// Function is the remote function that failed (e.g., "add_pop")
	Function string

	// Message is the human-readable error reported inside the envelope
	Message string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("cpanel %s %s: %s", e.Namespace, e.Function, e.Message)
}

// EmailAccount describes a mailbox as reported by Email::list_pops.
type EmailAccount struct {
	// Email is the full address (e.g., "user@example.com")
	Email string `json:"email"`

	// Login is the account login, usually identical to Email
	Login string `json:"login,omitempty"`

	// Domain is the domain part of the address
	Domain string `json:"domain,omitempty"`

	// DiskQuota is the mailbox size limit in MB; "unlimited" when no
	// quota is set
	DiskQuota string `json:"diskquota,omitempty"`

	// DiskUsed is the current mailbox usage in MB
	DiskUsed string `json:"diskused,omitempty"`
}

// Forwarder describes a mail forwarding rule as reported by
// Email::list_forwarders.
type Forwarder struct {
	// Dest is the source address mail arrives at
	Dest string `json:"dest"`

	// Forward is the destination the mail is routed to
	Forward string `json:"forward"`
}

// ZoneRecord describes one line of a DNS zone file as reported by the WHM
// dumpzone function. Line numbers are assigned by the remote zone file and
// are only valid until the zone is next mutated; callers must re-fetch
// after any add or delete to get current line numbers.
type ZoneRecord struct {
	// Line is the zone-file line number, the handle for edit and delete
	Line int `json:"Line"`

	// Name is the record name (e.g., "www.example.com.")
	Name string `json:"name"`

	// Type is the record type (A, AAAA, CNAME, MX, TXT, ...)
	Type string `json:"type"`

	// Class is the DNS class, normally "IN"
	Class string `json:"class,omitempty"`

	// TTL is the time to live in seconds
	TTL int `json:"ttl,omitempty"`

	// Address is the record value for address-style records
	Address string `json:"address,omitempty"`

	// CName is the target for CNAME records
	CName string `json:"cname,omitempty"`

	// TXTData is the value for TXT records
	TXTData string `json:"txtdata,omitempty"`
}

// Value returns the record's payload regardless of which field the remote
// API used for it.
func (r ZoneRecord) Value() string {
	switch {
	case r.Address != "":
		return r.Address
	case r.CName != "":
		return r.CName
	default:
		return r.TXTData
	}
}

// ZoneRecordInput carries the caller-supplied fields for adding or editing
// a zone record.
type ZoneRecordInput struct {
	// Domain is the zone the record belongs to
	Domain string

	// Name is the record name (e.g., "app.example.com" or "www")
	Name string

	// Type is the record type; must be one of RecordTypes
	Type string

	// Address is the record value (e.g., an IP address for an A record)
	Address string

	// TTL is the time to live in seconds; must be positive
	TTL int

	// Class is the DNS class; defaults to "IN" when empty
	Class string
}

// DefaultTTL is the time to live applied when a caller does not supply one.
const DefaultTTL = 3600

// DefaultRecordClass is the DNS class applied when a caller does not
// supply one.
const DefaultRecordClass = "IN"

// recordTypes is the fixed set of zone record types the WHM tools accept.
var recordTypes = map[string]bool{
	"A":     true,
	"AAAA":  true,
	"CNAME": true,
	"MX":    true,
	"TXT":   true,
	"NS":    true,
	"PTR":   true,
	"SRV":   true,
	"CAA":   true,
	"TLSA":  true,
}

// RecordTypes returns the supported zone record types in a stable order,
// suitable for error messages and tool documentation.
func RecordTypes() []string {
	return []string{"A", "AAAA", "CNAME", "MX", "TXT", "NS", "PTR", "SRV", "CAA", "TLSA"}
}

// ValidRecordType reports whether t is one of the supported record types.
// The check is case-sensitive; cPanel expects upper-case types.
func ValidRecordType(t string) bool {
	return recordTypes[t]
}
