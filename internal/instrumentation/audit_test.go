package instrumentation

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/teemow/cpanel-mcp/internal/logging"
)

const (
	testMailbox    = "jane@example.com"
	testDomainName = "example.com"
	testToolAdd    = "add_email_account"
	testToolList   = "list_email_accounts"
)

func TestToolInvocation_NewAndComplete(t *testing.T) {
	ti := NewToolInvocation(testToolList)

	if ti.Tool != testToolList {
		t.Errorf("Tool = %q, want %q", ti.Tool, testToolList)
	}
	if ti.StartTime.IsZero() {
		t.Error("StartTime should not be zero")
	}

	ti.CompleteSuccess()

	if !ti.Success {
		t.Error("Success should be true")
	}
	if ti.Duration < 0 {
		t.Error("Duration should not be negative")
	}
	if ti.Error != "" {
		t.Errorf("Error should be empty, got %q", ti.Error)
	}
}

func TestToolInvocation_CompleteWithError(t *testing.T) {
	ti := NewToolInvocation(testToolAdd)
	err := errors.New("You must specify a password.")

	ti.CompleteWithError(err)

	if ti.Success {
		t.Error("Success should be false")
	}
	if ti.Error != "You must specify a password." {
		t.Errorf("Error = %q, want the original message", ti.Error)
	}
	if ti.Status() != StatusError {
		t.Errorf("Status() = %q, want %q", ti.Status(), StatusError)
	}
}

func TestToolInvocation_MailboxDomain(t *testing.T) {
	tests := []struct {
		name    string
		mailbox string
		domain  string
		want    string
	}{
		{"mailbox set", testMailbox, "", testDomainName},
		{"domain only", "", testDomainName, testDomainName},
		{"neither set", "", "", "unknown"},
		{"mailbox wins over domain", testMailbox, "other.com", testDomainName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ti := NewToolInvocation(testToolAdd).WithMailbox(tt.mailbox).WithDomain(tt.domain)
			if got := ti.MailboxDomain(); got != tt.want {
				t.Errorf("MailboxDomain() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestToolInvocation_LogAttrsExcludesMailbox(t *testing.T) {
	ti := NewToolInvocation(testToolAdd).
		WithMailbox(testMailbox).
		WithFunction(NamespaceUAPI, "add_pop").
		CompleteSuccess()

	for _, attr := range ti.LogAttrs() {
		if attr.Value.Kind() == slog.KindString && strings.Contains(attr.Value.String(), testMailbox) {
			t.Errorf("LogAttrs leaked full mailbox address in %s", attr.Key)
		}
	}
}

func TestToolInvocation_LogAttrsCarriesMailboxHash(t *testing.T) {
	ti := NewToolInvocation(testToolAdd).
		WithMailbox(testMailbox).
		WithFunction(NamespaceUAPI, "add_pop").
		CompleteSuccess()

	found := false
	for _, attr := range ti.LogAttrs() {
		if attr.Key == logging.KeyMailboxHash {
			found = true
			if got, want := attr.Value.String(), logging.AnonymizeMailbox(testMailbox); got != want {
				t.Errorf("mailbox hash = %q, want %q", got, want)
			}
		}
	}
	if !found {
		t.Error("LogAttrs should carry the anonymized mailbox identifier")
	}
}

func TestToolInvocation_LogAuditAttrsIncludesMailbox(t *testing.T) {
	ti := NewToolInvocation(testToolAdd).
		WithMailbox(testMailbox).
		WithFunction(NamespaceUAPI, "add_pop").
		CompleteSuccess()

	found := false
	for _, attr := range ti.LogAuditAttrs() {
		if attr.Key == "mailbox" && attr.Value.String() == testMailbox {
			found = true
		}
	}
	if !found {
		t.Error("LogAuditAttrs should include the full mailbox address")
	}
}

func TestAuditLogger_LogToolInvocation(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	al := NewAuditLogger(logger)
	ti := NewToolInvocation(testToolList).
		WithDomain(testDomainName).
		WithFunction(NamespaceUAPI, "list_pops").
		CompleteSuccess()

	al.LogToolInvocation(ti)

	out := buf.String()
	if !strings.Contains(out, "tool_executed") {
		t.Errorf("expected tool_executed message, got %q", out)
	}
	if !strings.Contains(out, testToolList) {
		t.Errorf("expected tool name in output, got %q", out)
	}
}

func TestAuditLogger_FailureLogsWarning(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	al := NewAuditLogger(logger)
	ti := NewToolInvocation(testToolAdd).
		WithMailbox(testMailbox).
		CompleteWithError(errors.New("The account already exists!"))

	al.LogToolInvocation(ti)

	out := buf.String()
	if !strings.Contains(out, "tool_failed") {
		t.Errorf("expected tool_failed message, got %q", out)
	}
	if !strings.Contains(out, "The account already exists!") {
		t.Errorf("expected the error message in output, got %q", out)
	}
	if strings.Contains(out, testMailbox) {
		t.Errorf("PII disabled but full mailbox leaked: %q", out)
	}
	if !strings.Contains(out, logging.AnonymizeMailbox(testMailbox)) {
		t.Errorf("expected anonymized mailbox identifier in output, got %q", out)
	}
}

func TestAuditLogger_IncludePII(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	al := NewAuditLoggerWithConfig(logger, AuditLoggingConfig{Enabled: true, IncludePII: true})
	ti := NewToolInvocation(testToolAdd).
		WithMailbox(testMailbox).
		CompleteSuccess()

	al.LogToolInvocation(ti)

	if !strings.Contains(buf.String(), testMailbox) {
		t.Errorf("IncludePII set but mailbox not logged: %q", buf.String())
	}
}

func TestAuditLogger_Disabled(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	al := NewAuditLoggerWithConfig(logger, AuditLoggingConfig{Enabled: false})
	al.LogToolInvocation(NewToolInvocation(testToolList).CompleteSuccess())

	if buf.Len() != 0 {
		t.Errorf("disabled audit logger wrote output: %q", buf.String())
	}
}
