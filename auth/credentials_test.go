package auth

import "testing"

func TestLoadCredentials_Defaults(t *testing.T) {
	creds, err := LoadCredentials()
	if err != nil {
		t.Fatalf("LoadCredentials error: %v", err)
	}

	if !creds.Verify("admin", "admin123") {
		t.Error("expected the default pair to verify")
	}
}

func TestLoadCredentials_Env(t *testing.T) {
	t.Setenv("QUOTEGEN_USERNAME", "sales")
	t.Setenv("QUOTEGEN_PASSWORD", "s3cret")

	creds, err := LoadCredentials()
	if err != nil {
		t.Fatalf("LoadCredentials error: %v", err)
	}

	if !creds.Verify("sales", "s3cret") {
		t.Error("expected the configured pair to verify")
	}
	if creds.Verify("admin", "admin123") {
		t.Error("expected the default pair to be rejected when overridden")
	}
}

func TestVerify_Rejections(t *testing.T) {
	creds, err := LoadCredentials()
	if err != nil {
		t.Fatalf("LoadCredentials error: %v", err)
	}

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong username", "root", "admin123"},
		{"wrong password", "admin", "letmein"},
		{"both wrong", "root", "letmein"},
		{"empty pair", "", ""},
		{"case-sensitive username", "Admin", "admin123"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if creds.Verify(tt.username, tt.password) {
				t.Errorf("expected Verify(%q, %q) to fail", tt.username, tt.password)
			}
		})
	}
}
