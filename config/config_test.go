package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestLoadWithViperDefaults(t *testing.T) {
	// Create isolated viper instance without loading user/system config
	v := viper.New()
	SetDefaults(v)

	config, err := LoadWithViper(v)
	if err != nil {
		t.Fatalf("LoadWithViper() error: %v", err)
	}

	if config.Database.Path != "dym.db" {
		t.Errorf("Database.Path = %q, want %q", config.Database.Path, "dym.db")
	}
	if config.Suggest.Threshold != -1 {
		t.Errorf("Suggest.Threshold = %d, want -1 (derive from word)", config.Suggest.Threshold)
	}
	if config.Log.JSON {
		t.Error("Log.JSON = true, want false by default")
	}
}

func TestLoadWithViperOverrides(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("database.path", "/var/lib/dym/cities.db")
	v.Set("suggest.table", "cities")
	v.Set("suggest.fields", []string{"city", "country"})
	v.Set("suggest.threshold", 2)

	config, err := LoadWithViper(v)
	if err != nil {
		t.Fatalf("LoadWithViper() error: %v", err)
	}

	if config.Database.Path != "/var/lib/dym/cities.db" {
		t.Errorf("Database.Path = %q", config.Database.Path)
	}
	if config.Suggest.Table != "cities" {
		t.Errorf("Suggest.Table = %q, want cities", config.Suggest.Table)
	}
	if len(config.Suggest.Fields) != 2 {
		t.Errorf("Suggest.Fields = %v, want [city country]", config.Suggest.Fields)
	}
	if config.Suggest.Threshold != 2 {
		t.Errorf("Suggest.Threshold = %d, want 2", config.Suggest.Threshold)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "dym.toml")

	content := `
[database]
path = "test.db"

[suggest]
table = "cities"
fields = ["city"]
threshold = 1

[log]
json = true
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config fixture: %v", err)
	}

	config, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile() error: %v", err)
	}

	if config.Database.Path != "test.db" {
		t.Errorf("Database.Path = %q, want test.db", config.Database.Path)
	}
	if config.Suggest.Table != "cities" {
		t.Errorf("Suggest.Table = %q, want cities", config.Suggest.Table)
	}
	if !config.Log.JSON {
		t.Error("Log.JSON = false, want true")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Fatal("LoadFromFile() succeeded for missing file, want error")
	}
}
