package utils

import "testing"

func TestValidateSource(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		wantErr bool
	}{
		{"Valid hostname", "monkeytype.co", false},
		{"Valid with digits", "typo123.com", false},
		{"Empty", "", true},
		{"Missing TLD", "monkeytype", true},
		{"Subdomain chain", "www.monkeytype.co", true},
		{"With scheme", "https://monkeytype.co", true},
		{"With path", "monkeytype.co/page", true},
		{"With port", "monkeytype.co:3000", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSource(tt.source)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSource(%q) error = %v, wantErr %v", tt.source, err, tt.wantErr)
			}
		})
	}
}

func TestValidateTarget(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		wantErr bool
	}{
		{"Valid https", "https://monkeytype.com", false},
		{"Valid http", "http://example.com/path", false},
		{"Trailing slash", "https://monkeytype.com/", false},
		{"Empty", "", true},
		{"No scheme", "monkeytype.com", true},
		{"Wrong scheme", "ftp://example.com", true},
		{"Scheme only", "https://", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTarget(tt.target)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTarget(%q) error = %v, wantErr %v", tt.target, err, tt.wantErr)
			}
		})
	}
}

func TestNormalizeHostname(t *testing.T) {
	tests := []struct {
		name     string
		hostname string
		want     string
	}{
		{"No prefix", "example.com", "example.com"},
		{"Strips www", "www.example.com", "example.com"},
		{"Strips only once", "www.www.example.com", "www.example.com"},
		{"Not a prefix match", "wwwexample.com", "wwwexample.com"},
		{"Bare www domain", "www.com", "com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeHostname(tt.hostname); got != tt.want {
				t.Errorf("NormalizeHostname(%q) = %q, want %q", tt.hostname, got, tt.want)
			}
		})
	}
}

func TestValidateCredentials(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantErr  bool
	}{
		{"Valid", "alice", "secret1", false},
		{"Short username", "al", "secret1", true},
		{"Short password", "alice", "12345", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCredentials(tt.username, tt.password)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCredentials(%q, %q) error = %v, wantErr %v", tt.username, tt.password, err, tt.wantErr)
			}
		})
	}
}
