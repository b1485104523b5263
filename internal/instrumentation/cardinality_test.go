package instrumentation

import "testing"

func TestExtractMailboxDomain(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  string
	}{
		{"valid address", "jane@example.com", "example.com"},
		{"subdomain", "info@mail.example.com", "mail.example.com"},
		{"no at sign", "invalid", "unknown"},
		{"empty string", "", "unknown"},
		{"trailing at", "user@", "unknown"},
		{"multiple at signs", "a@b@c", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractMailboxDomain(tt.email); got != tt.want {
				t.Errorf("ExtractMailboxDomain(%q) = %q, want %q", tt.email, got, tt.want)
			}
		})
	}
}
