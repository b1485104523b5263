package cpanel

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// defaultTimeout bounds every outbound API call. The remote API must not
// be able to hang a tool invocation indefinitely.
const defaultTimeout = 30 * time.Second

// WHM listens on its own well-known ports next to the cPanel account port.
const (
	whmPortSSL   = 2087
	whmPortPlain = 2086
)

// Params is the string-keyed parameter mapping handed to the remote API.
// Each operation builds its own Params; the transport treats it as opaque.
type Params map[string]string

// Client issues authenticated calls against the cPanel UAPI and WHM API 1.
// It holds no state between calls other than the immutable configuration
// and a pooled transport.
type Client struct {
	config     *Config
	httpClient *http.Client
	baseURL    string
	whmBaseURL string
}

// NewClient creates a client for the configured cPanel account.
func NewClient(config *Config) (*Client, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	scheme := "https"
	whmPort := whmPortSSL
	if !config.SSL {
		scheme = "http"
		whmPort = whmPortPlain
	}
	// WHM normally lives on the conventional port next to the configured
	// account port; CPANEL_WHM_PORT overrides it for non-standard setups.
	if config.WHMPort != 0 {
		whmPort = config.WHMPort
	}

	return &Client{
		config:     config,
		baseURL:    fmt.Sprintf("%s://%s:%d", scheme, config.Hostname, config.Port),
		whmBaseURL: fmt.Sprintf("%s://%s:%d", scheme, config.Hostname, whmPort),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}, nil
}

// Username returns the account name the client is configured for.
func (c *Client) Username() string {
	return c.config.Username
}

// uapiEnvelope is the response wrapper of the per-account API. Status is 1
// on success and 0 on logical failure, independent of the HTTP status.
type uapiEnvelope struct {
	Status int             `json:"status"`
	Errors []string        `json:"errors"`
	Data   json.RawMessage `json:"data"`
}

// whmEnvelope is the response wrapper of the administrative API.
type whmEnvelope struct {
	Metadata struct {
		Result int    `json:"result"`
		Reason string `json:"reason"`
	} `json:"metadata"`
	Data json.RawMessage `json:"data"`
}

// get performs one HTTP GET and returns the raw body. Exactly one request
// is sent; transport failures surface immediately without retries since
// idempotence of the remote operations cannot be assumed.
func (c *Client) get(ctx context.Context, rawURL, authScheme string, params Params) ([]byte, error) {
	query := url.Values{}
	for key, value := range params {
		query.Set(key, value)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if q := req.URL.Query(); len(q) > 0 {
		for key := range q {
			query.Set(key, q.Get(key))
		}
	}
	req.URL.RawQuery = query.Encode()
	req.Header.Set("Authorization", fmt.Sprintf("%s %s:%s", authScheme, c.config.Username, c.config.APIToken))
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	// 4xx/5xx responses from cPanel still carry a JSON envelope with the
	// real error message, so the envelope check below stays authoritative.
	// Only treat the HTTP status as fatal when the body is not parseable.
	if resp.StatusCode >= 400 && !json.Valid(body) {
		return nil, fmt.Errorf("unexpected HTTP status %d", resp.StatusCode)
	}

	return body, nil
}

// uapi calls a per-account API function (e.g., Email::add_pop) and returns
// the envelope's data payload.
func (c *Client) uapi(ctx context.Context, module, function string, params Params) (json.RawMessage, error) {
	callURL := fmt.Sprintf("%s/execute/%s/%s", c.baseURL, module, function)

	body, err := c.get(ctx, callURL, "cpanel", params)
	if err != nil {
		return nil, err
	}

	var envelope uapiEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("invalid JSON response from cPanel API: %w", err)
	}

	if envelope.Status == 0 {
		message := "Unknown API error"
		if len(envelope.Errors) > 0 && envelope.Errors[0] != "" {
			message = envelope.Errors[0]
		}
		return nil, &APIError{Namespace: "uapi", Function: function, Message: message}
	}

	return envelope.Data, nil
}

// whm calls an administrative API function (e.g., dumpzone) and returns
// the envelope's data payload.
func (c *Client) whm(ctx context.Context, function string, params Params) (json.RawMessage, error) {
	callURL := fmt.Sprintf("%s/json-api/%s?api.version=1", c.whmBaseURL, function)

	body, err := c.get(ctx, callURL, "whm", params)
	if err != nil {
		return nil, err
	}

	var envelope whmEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("invalid JSON response from WHM API: %w", err)
	}

	if envelope.Metadata.Result != 1 {
		message := envelope.Metadata.Reason
		if message == "" {
			message = "Unknown API error"
		}
		return nil, &APIError{Namespace: "whm", Function: function, Message: message}
	}

	return envelope.Data, nil
}

// SplitEmail splits a full email address into its local part and domain.
func SplitEmail(email string) (string, string, error) {
	parts := strings.Split(email, "@")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", &ValidationError{Param: "email", Message: fmt.Sprintf("%q is not a valid email address", email)}
	}
	return parts[0], parts[1], nil
}

// validateEmail checks the address shape and reports the failure under the
// given parameter name.
func validateEmail(param, email string) error {
	if _, _, err := SplitEmail(email); err != nil {
		return &ValidationError{Param: param, Message: fmt.Sprintf("%q is not a valid email address", email)}
	}
	return nil
}

// Email account management

// AddEmailAccount creates a new mailbox. Quota is the mailbox size limit
// in MB; 0 means unlimited.
func (c *Client) AddEmailAccount(ctx context.Context, email, password string, quota int) (json.RawMessage, error) {
	user, domain, err := SplitEmail(email)
	if err != nil {
		return nil, err
	}
	if password == "" {
		return nil, &ValidationError{Param: "password", Message: "password cannot be empty"}
	}
	if quota < 0 {
		return nil, &ValidationError{Param: "quota", Message: fmt.Sprintf("quota must be a non-negative integer, got %d", quota)}
	}

	return c.uapi(ctx, "Email", "add_pop", Params{
		"domain":   domain,
		"email":    user,
		"password": password,
		"quota":    strconv.Itoa(quota),
	})
}

// DeleteEmailAccount removes a mailbox.
func (c *Client) DeleteEmailAccount(ctx context.Context, email string) (json.RawMessage, error) {
	user, domain, err := SplitEmail(email)
	if err != nil {
		return nil, err
	}

	return c.uapi(ctx, "Email", "del_pop", Params{
		"domain": domain,
		"email":  user,
	})
}

// ListEmailAccounts returns the mailboxes scoped to a domain.
func (c *Client) ListEmailAccounts(ctx context.Context, domain string) ([]EmailAccount, error) {
	if domain == "" {
		return nil, &ValidationError{Param: "domain", Message: "domain cannot be empty"}
	}

	data, err := c.uapi(ctx, "Email", "list_pops", Params{"domain": domain})
	if err != nil {
		return nil, err
	}

	var accounts []EmailAccount
	if err := json.Unmarshal(data, &accounts); err != nil {
		return nil, fmt.Errorf("failed to parse mailbox list: %w", err)
	}
	return accounts, nil
}

// ChangePassword sets a new password on a mailbox.
func (c *Client) ChangePassword(ctx context.Context, email, newPassword string) (json.RawMessage, error) {
	user, domain, err := SplitEmail(email)
	if err != nil {
		return nil, err
	}
	if newPassword == "" {
		return nil, &ValidationError{Param: "new_password", Message: "password cannot be empty"}
	}

	return c.uapi(ctx, "Email", "passwd_pop", Params{
		"username": user,
		"domain":   domain,
		"password": newPassword,
	})
}

// UpdateQuota changes a mailbox size limit in MB. A quota of 0 is valid
// and means unlimited.
func (c *Client) UpdateQuota(ctx context.Context, email string, quota int) (json.RawMessage, error) {
	user, domain, err := SplitEmail(email)
	if err != nil {
		return nil, err
	}
	if quota < 0 {
		return nil, &ValidationError{Param: "quota", Message: fmt.Sprintf("quota must be a non-negative integer, got %d", quota)}
	}

	return c.uapi(ctx, "Email", "edit_pop_quota", Params{
		"username": user,
		"domain":   domain,
		"quota":    strconv.Itoa(quota),
	})
}

// GetEmailSettings fetches the mail client configuration hints (hosts,
// ports, protocols) as supplied by the remote API.
func (c *Client) GetEmailSettings(ctx context.Context) (json.RawMessage, error) {
	return c.uapi(ctx, "Email", "get_client_settings", nil)
}

// Email forwarder management

// CreateForwarder routes mail for email to destination.
func (c *Client) CreateForwarder(ctx context.Context, email, destination string) (json.RawMessage, error) {
	user, domain, err := SplitEmail(email)
	if err != nil {
		return nil, err
	}
	if err := validateEmail("destination", destination); err != nil {
		return nil, err
	}

	return c.uapi(ctx, "Email", "add_forwarder", Params{
		"username": user,
		"domain":   domain,
		"fwdopt":   "fwd",
		"fwdemail": destination,
	})
}

// DeleteForwarder removes the forwarding rule from email to destination.
func (c *Client) DeleteForwarder(ctx context.Context, email, destination string) (json.RawMessage, error) {
	if err := validateEmail("email", email); err != nil {
		return nil, err
	}
	if err := validateEmail("destination", destination); err != nil {
		return nil, err
	}

	return c.uapi(ctx, "Email", "delete_forwarder", Params{
		"address":   email,
		"forwarder": destination,
	})
}

// ListForwarders returns the forwarding rules scoped to a domain.
func (c *Client) ListForwarders(ctx context.Context, domain string) ([]Forwarder, error) {
	if domain == "" {
		return nil, &ValidationError{Param: "domain", Message: "domain cannot be empty"}
	}

	data, err := c.uapi(ctx, "Email", "list_forwarders", Params{"domain": domain})
	if err != nil {
		return nil, err
	}

	var forwarders []Forwarder
	if err := json.Unmarshal(data, &forwarders); err != nil {
		return nil, fmt.Errorf("failed to parse forwarder list: %w", err)
	}
	return forwarders, nil
}

// GetForwarderSettings fetches the forwarder configuration as supplied by
// the remote API.
func (c *Client) GetForwarderSettings(ctx context.Context) (json.RawMessage, error) {
	return c.uapi(ctx, "Email", "get_forwarder_settings", nil)
}

// DNS zone management (WHM)

// GetZoneRecords returns the zone records for a domain in zone-file order,
// each tagged with its current line number. The numbering is authoritative
// only until the zone is next mutated.
func (c *Client) GetZoneRecords(ctx context.Context, domain string) ([]ZoneRecord, error) {
	if domain == "" {
		return nil, &ValidationError{Param: "domain", Message: "domain cannot be empty"}
	}

	data, err := c.whm(ctx, "dumpzone", Params{"domain": domain})
	if err != nil {
		return nil, err
	}

	var payload struct {
		Zone []struct {
			Record []ZoneRecord `json:"record"`
		} `json:"zone"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse zone dump: %w", err)
	}
	if len(payload.Zone) == 0 {
		return nil, &APIError{Namespace: "whm", Function: "dumpzone", Message: fmt.Sprintf("no zone data returned for %s", domain)}
	}

	// Zone dumps interleave resource records with raw text lines
	// (comments, $TTL directives) tagged ":RAW". Only resource records
	// are returned; their remote line numbers are preserved.
	records := make([]ZoneRecord, 0, len(payload.Zone[0].Record))
	for _, record := range payload.Zone[0].Record {
		if record.Type == "" || record.Type == ":RAW" {
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

// validateZoneRecordInput checks the shared preconditions of add and edit.
func validateZoneRecordInput(input ZoneRecordInput) error {
	if input.Domain == "" {
		return &ValidationError{Param: "domain", Message: "domain cannot be empty"}
	}
	if input.Name == "" {
		return &ValidationError{Param: "name", Message: "record name cannot be empty"}
	}
	if !ValidRecordType(input.Type) {
		return &ValidationError{
			Param:   "record_type",
			Message: fmt.Sprintf("unsupported record type %q, must be one of: %s", input.Type, strings.Join(RecordTypes(), ", ")),
		}
	}
	if input.Address == "" {
		return &ValidationError{Param: "address", Message: "record address cannot be empty"}
	}
	if input.TTL <= 0 {
		return &ValidationError{Param: "ttl", Message: fmt.Sprintf("ttl must be a positive integer, got %d", input.TTL)}
	}
	return nil
}

// AddZoneRecord appends a record to a domain's zone.
func (c *Client) AddZoneRecord(ctx context.Context, input ZoneRecordInput) (json.RawMessage, error) {
	if input.Class == "" {
		input.Class = DefaultRecordClass
	}
	if err := validateZoneRecordInput(input); err != nil {
		return nil, err
	}

	return c.whm(ctx, "addzonerecord", Params{
		"zone":    input.Domain,
		"name":    input.Name,
		"type":    input.Type,
		"address": input.Address,
		"ttl":     strconv.Itoa(input.TTL),
		"class":   input.Class,
	})
}

// EditZoneRecord replaces the record at the given zone-file line. The
// remote API is authoritative on whether that line still exists.
func (c *Client) EditZoneRecord(ctx context.Context, line int, input ZoneRecordInput) (json.RawMessage, error) {
	if line <= 0 {
		return nil, &ValidationError{Param: "line", Message: fmt.Sprintf("line must be a positive integer, got %d", line)}
	}
	if input.Class == "" {
		input.Class = DefaultRecordClass
	}
	if err := validateZoneRecordInput(input); err != nil {
		return nil, err
	}

	return c.whm(ctx, "editzonerecord", Params{
		"domain":  input.Domain,
		"line":    strconv.Itoa(line),
		"name":    input.Name,
		"type":    input.Type,
		"address": input.Address,
		"ttl":     strconv.Itoa(input.TTL),
		"class":   input.Class,
	})
}

// DeleteZoneRecord removes the record at the given zone-file line.
func (c *Client) DeleteZoneRecord(ctx context.Context, domain string, line int) (json.RawMessage, error) {
	if domain == "" {
		return nil, &ValidationError{Param: "domain", Message: "domain cannot be empty"}
	}
	if line <= 0 {
		return nil, &ValidationError{Param: "line", Message: fmt.Sprintf("line must be a positive integer, got %d", line)}
	}

	return c.whm(ctx, "removezonerecord", Params{
		"zone": domain,
		"line": strconv.Itoa(line),
	})
}
