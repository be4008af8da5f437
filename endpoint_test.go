package friends

import "testing"

func TestNewEndpoint_Valid(t *testing.T) {
	ep, err := NewEndpoint("Test Blog", "https://blog.example.com")
	if err != nil {
		t.Fatalf("NewEndpoint() error = %v", err)
	}

	if ep.Name() != "Test Blog" {
		t.Errorf("Name() = %v, want %v", ep.Name(), "Test Blog")
	}
	if ep.URL() != "https://blog.example.com" {
		t.Errorf("URL() = %v, want %v", ep.URL(), "https://blog.example.com")
	}
	if ep.Hidden() {
		t.Error("Hidden() = true, want false by default")
	}
}

func TestNewEndpoint_EmptyName(t *testing.T) {
	_, err := NewEndpoint("", "https://blog.example.com")
	if err == nil {
		t.Error("NewEndpoint() expected error for empty name, got nil")
	}
}

func TestNewEndpoint_InvalidURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"no scheme", "blog.example.com"},
		{"empty url", ""},
		{"just path", "/about"},
		{"ftp scheme", "ftp://files.example.com"},
		{"no host", "https://"},
		{"unparseable", "http://[::1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEndpoint("Test", tt.url)
			if err == nil {
				t.Errorf("NewEndpoint() expected error for URL %q, got nil", tt.url)
			}
		})
	}
}

func TestNewEndpoint_ValidURLs(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"https", "https://blog.example.com"},
		{"http", "http://localhost:8080"},
		{"with path", "https://example.com/~user/"},
		{"with query", "https://example.com/?lang=zh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewEndpoint("Test", tt.url); err != nil {
				t.Errorf("NewEndpoint() error = %v for URL %q", err, tt.url)
			}
		})
	}
}

func TestNewEndpoint_Options(t *testing.T) {
	ep, err := NewEndpoint("Test", "https://blog.example.com",
		WithHidden(true),
		WithAvatar("https://blog.example.com/avatar.png"),
		WithDescription("Notes on Go"),
	)
	if err != nil {
		t.Fatalf("NewEndpoint() error = %v", err)
	}

	if !ep.Hidden() {
		t.Error("Hidden() = false, want true")
	}
	if ep.Avatar() != "https://blog.example.com/avatar.png" {
		t.Errorf("Avatar() = %q", ep.Avatar())
	}
	if ep.Description() != "Notes on Go" {
		t.Errorf("Description() = %q", ep.Description())
	}
}

func TestWithAvatar_Invalid(t *testing.T) {
	_, err := NewEndpoint("Test", "https://blog.example.com", WithAvatar("http://[::1"))
	if err == nil {
		t.Error("NewEndpoint() expected error for invalid avatar URL, got nil")
	}
}

func TestWithAvatar_RelativeAccepted(t *testing.T) {
	ep, err := NewEndpoint("Test", "https://blog.example.com", WithAvatar("/images/a.png"))
	if err != nil {
		t.Fatalf("NewEndpoint() error = %v", err)
	}
	if ep.Avatar() != "/images/a.png" {
		t.Errorf("Avatar() = %q, want %q", ep.Avatar(), "/images/a.png")
	}
}

func TestVisibleEndpoints(t *testing.T) {
	a, _ := NewEndpoint("A", "https://a.example.com")
	b, _ := NewEndpoint("B", "https://b.example.com", WithHidden(true))
	c, _ := NewEndpoint("C", "https://c.example.com")

	got := VisibleEndpoints([]Endpoint{a, b, c})

	if len(got) != 2 {
		t.Fatalf("len(VisibleEndpoints()) = %d, want 2", len(got))
	}
	if got[0].Name() != "A" || got[1].Name() != "C" {
		t.Errorf("VisibleEndpoints() = [%s %s], want [A C]", got[0].Name(), got[1].Name())
	}
}
