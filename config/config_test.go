package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const tomlList = `
[[blogs]]
name = "Alice"
url = "https://alice.example.com"
avatar = "https://alice.example.com/a.png"
description = "Notes on Go"

[[blogs]]
name = "Bob"
url = "https://bob.example.com"
avatar = "/avatars/bob.png"
hidden = true

[[nonBlogs]]
name = "Carol"
url = "http://carol.example.com"
avatar = "https://carol.example.com/c.png"
`

const yamlList = `
blogs:
  - name: Alice
    url: https://alice.example.com
    avatar: https://alice.example.com/a.png
    description: Notes on Go
  - name: Bob
    url: https://bob.example.com
    avatar: /avatars/bob.png
    hidden: true
nonBlogs:
  - name: Carol
    url: http://carol.example.com
    avatar: https://carol.example.com/c.png
`

const jsonList = `{
  "blogs": [
    {"name": "Alice", "url": "https://alice.example.com", "avatar": "https://alice.example.com/a.png", "description": "Notes on Go"},
    {"name": "Bob", "url": "https://bob.example.com", "avatar": "/avatars/bob.png", "hidden": true}
  ],
  "nonBlogs": [
    {"name": "Carol", "url": "http://carol.example.com", "avatar": "https://carol.example.com/c.png"}
  ]
}`

func TestParse_FormatsAgree(t *testing.T) {
	tests := []struct {
		format string
		data   string
	}{
		{FormatTOML, tomlList},
		{FormatYAML, yamlList},
		{FormatJSON, jsonList},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.data), tt.format)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}

			if len(cfg.Blogs) != 2 {
				t.Fatalf("len(Blogs) = %d, want 2", len(cfg.Blogs))
			}
			if len(cfg.NonBlogs) != 1 {
				t.Fatalf("len(NonBlogs) = %d, want 1", len(cfg.NonBlogs))
			}

			alice := cfg.Blogs[0]
			if alice.Name != "Alice" || alice.URL != "https://alice.example.com" {
				t.Errorf("Blogs[0] = %+v", alice)
			}
			if alice.Description != "Notes on Go" {
				t.Errorf("Description = %q, want %q", alice.Description, "Notes on Go")
			}
			if alice.Hidden {
				t.Error("Alice should not be hidden")
			}
			if !cfg.Blogs[1].Hidden {
				t.Error("Bob should be hidden")
			}
			if cfg.NonBlogs[0].Name != "Carol" {
				t.Errorf("NonBlogs[0].Name = %q, want Carol", cfg.NonBlogs[0].Name)
			}
		})
	}
}

func TestConfig_All(t *testing.T) {
	cfg, err := Parse([]byte(tomlList), FormatTOML)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	var names []string
	for _, f := range cfg.All() {
		names = append(names, f.Name)
	}
	if strings.Join(names, ",") != "Alice,Bob,Carol" {
		t.Errorf("All() names = %v, want [Alice Bob Carol]", names)
	}
}

func TestParse_NonBlogsOnly(t *testing.T) {
	data := `
nonBlogs:
  - name: Carol
    url: https://carol.example.com
`
	cfg, err := Parse([]byte(data), FormatYAML)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(cfg.Blogs) != 0 || len(cfg.NonBlogs) != 1 {
		t.Errorf("got %d blogs and %d nonBlogs, want 0 and 1", len(cfg.Blogs), len(cfg.NonBlogs))
	}
}

func TestParse_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{
			name:    "empty list",
			data:    "",
			wantErr: "at least one friend",
		},
		{
			name: "missing name",
			data: `
blogs:
  - url: https://example.com
`,
			wantErr: "blogs[0]: name is required",
		},
		{
			name: "missing url",
			data: `
nonBlogs:
  - name: Carol
`,
			wantErr: "nonBlogs[0] (Carol): url is required",
		},
		{
			name: "no scheme",
			data: `
blogs:
  - name: Alice
    url: alice.example.com
`,
			wantErr: "must have a scheme",
		},
		{
			name: "unsupported scheme",
			data: `
blogs:
  - name: Alice
    url: ftp://alice.example.com
`,
			wantErr: `scheme must be http or https, got "ftp"`,
		},
		{
			name: "error points at second entry",
			data: `
blogs:
  - name: Alice
    url: https://alice.example.com
  - name: Bob
`,
			wantErr: "blogs[1] (Bob)",
		},
		{
			name:    "malformed yaml",
			data:    "blogs: [",
			wantErr: "failed to parse YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), FormatYAML)
			if err == nil {
				t.Fatal("Parse() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want containing %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestParse_MalformedInput(t *testing.T) {
	tests := []struct {
		format  string
		data    string
		wantErr string
	}{
		{FormatTOML, "[[blogs]\nname =", "failed to parse TOML"},
		{FormatJSON, `{"blogs": [`, "failed to parse JSON"},
		{"ini", "blogs=1", "unknown friend list format"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), tt.format)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Parse() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestParse_EnvExpansion(t *testing.T) {
	t.Setenv("FRIENDS_TEST_HOST", "env.example.com")

	data := `
[[blogs]]
name = "Env"
url = "https://${FRIENDS_TEST_HOST}/blog"

[[blogs]]
name = "Default"
url = "https://${FRIENDS_TEST_UNSET:-fallback.example.com}"
`
	cfg, err := Parse([]byte(data), FormatTOML)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.Blogs[0].URL != "https://env.example.com/blog" {
		t.Errorf("Blogs[0].URL = %q, want %q", cfg.Blogs[0].URL, "https://env.example.com/blog")
	}
	if cfg.Blogs[1].URL != "https://fallback.example.com" {
		t.Errorf("Blogs[1].URL = %q, want %q", cfg.Blogs[1].URL, "https://fallback.example.com")
	}
}

func TestParse_EnvExpansionMissingVar(t *testing.T) {
	data := `
[[blogs]]
name = "Env"
url = "https://${FRIENDS_TEST_DEFINITELY_UNSET}"
`
	_, err := Parse([]byte(data), FormatTOML)
	if err == nil {
		t.Fatal("Parse() error = nil, want error")
	}
	if !strings.Contains(err.Error(), `"FRIENDS_TEST_DEFINITELY_UNSET" is not set`) {
		t.Errorf("error = %q", err.Error())
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("FRIENDS_A", "a")
	t.Setenv("FRIENDS_EMPTY", "")

	tests := []struct {
		in   string
		want string
	}{
		{"no vars", "no vars"},
		{"${FRIENDS_A}", "a"},
		{"${FRIENDS_A}-${FRIENDS_A}", "a-a"},
		{"${FRIENDS_EMPTY:-d}", ""},
		{"${FRIENDS_NOPE:-d}", "d"},
		{"${FRIENDS_NOPE:-}", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := expandEnvVars(tt.in)
			if err != nil {
				t.Fatalf("expandEnvVars() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("expandEnvVars() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{"friends.toml", FormatTOML, false},
		{"dir/Friends.TOML", FormatTOML, false},
		{"friends.yaml", FormatYAML, false},
		{"friends.yml", FormatYAML, false},
		{"friends.json", FormatJSON, false},
		{"friends.ini", "", true},
		{"friends", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FormatFromPath() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("FormatFromPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "friends.json")
	if err := os.WriteFile(path, []byte(jsonList), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(cfg.All()) != 3 {
		t.Errorf("len(All()) = %d, want 3", len(cfg.All()))
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("Load() error = nil, want error")
	}
	if !strings.Contains(err.Error(), "failed to read config file") {
		t.Errorf("error = %q, want read failure", err.Error())
	}
}

func TestLoad_UnknownExtension(t *testing.T) {
	_, err := Load("friends.txt")
	if err == nil || !strings.Contains(err.Error(), "unsupported friend list extension") {
		t.Errorf("Load() error = %v, want extension error", err)
	}
}

func TestParse_HiddenEntrySkipsURLValidation(t *testing.T) {
	data := `
[[blogs]]
name = "Alice"
url = "https://alice.example.com"

[[blogs]]
name = "Retired"
url = "alice.example.com/old"
hidden = true

[[nonBlogs]]
name = "Gone"
url = "https://${FRIENDS_TEST_NEVER_SET}"
hidden = true
`
	cfg, err := Parse([]byte(data), FormatTOML)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(cfg.All()) != 3 {
		t.Errorf("len(All()) = %d, want 3", len(cfg.All()))
	}
}

func TestParse_HiddenEntryStillNeedsName(t *testing.T) {
	data := `
[[blogs]]
url = "https://alice.example.com"
hidden = true
`
	_, err := Parse([]byte(data), FormatTOML)
	if err == nil || !strings.Contains(err.Error(), "blogs[0]: name is required") {
		t.Errorf("Parse() error = %v, want name error", err)
	}
}
