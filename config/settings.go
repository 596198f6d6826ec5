package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

// EnvironmentDevelopment switches the metadata layer to fixture data.
const EnvironmentDevelopment = "development"

// Settings represents the application configuration persisted to disk.
type Settings struct {
	Server      ServerSettings  `json:"server"`
	TMDB        TMDBSettings    `json:"tmdb"`
	Environment string          `json:"environment"`
	Fixtures    FixtureSettings `json:"fixtures"`
	Log         LogConfig       `json:"log"`
}

type ServerSettings struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

type TMDBSettings struct {
	APIKey         string `json:"apiKey"`
	BaseURL        string `json:"baseUrl"`
	Language       string `json:"language"`
	TimeoutSeconds int    `json:"timeoutSeconds"`
}

// Timeout returns the upstream request timeout, defaulting to 15s.
func (t TMDBSettings) Timeout() time.Duration {
	if t.TimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(t.TimeoutSeconds) * time.Second
}

// FixtureSettings points the fixture store at an on-disk directory.
// Empty means the embedded fixtures are used.
type FixtureSettings struct {
	Directory string `json:"directory"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File       string `json:"file"`
	Level      string `json:"level"`
	MaxSize    int    `json:"maxSize"`
	MaxAge     int    `json:"maxAge"`
	MaxBackups int    `json:"maxBackups"`
	Compress   bool   `json:"compress"`
}

// Debug reports whether level asks for per-request trace lines.
func (l LogConfig) Debug() bool {
	return strings.EqualFold(strings.TrimSpace(l.Level), "debug")
}

// FixtureMode reports whether canned data replaces live calls.
func (s Settings) FixtureMode() bool {
	return strings.EqualFold(strings.TrimSpace(s.Environment), EnvironmentDevelopment)
}

// DefaultSettings returns sane defaults for a fresh install.
func DefaultSettings() Settings {
	return Settings{
		Server: ServerSettings{Host: "0.0.0.0", Port: 3000},
		TMDB: TMDBSettings{
			APIKey:         "",
			BaseURL:        "https://api.themoviedb.org/3",
			Language:       "en-US",
			TimeoutSeconds: 15,
		},
		Environment: "production",
		Fixtures:    FixtureSettings{Directory: ""},
		Log: LogConfig{
			File:       "cache/logs/cinescope.log",
			Level:      "info",
			MaxSize:    20,   // 20 MB per file
			MaxBackups: 3,    // keep 3 old files
			MaxAge:     7,    // 7 days
			Compress:   true, // compress old files
		},
	}
}

// Manager loads and persists settings to a JSON file.
type Manager struct {
	path string
}

func NewManager(configPath string) *Manager {
	return &Manager{path: configPath}
}

// Path returns the settings file location.
func (m *Manager) Path() string {
	return m.path
}

// EnsureDir ensures parent directory exists.
func (m *Manager) EnsureDir() error {
	dir := filepath.Dir(m.path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

// Load reads settings.json from disk or creates defaults if missing.
func (m *Manager) Load() (Settings, error) {
	if m.path == "" {
		return Settings{}, errors.New("config path not set")
	}
	if _, err := os.Stat(m.path); errors.Is(err, fs.ErrNotExist) {
		// create with defaults
		defaults := DefaultSettings()
		if err := m.Save(defaults); err != nil {
			return Settings{}, err
		}
		return defaults, nil
	}
	f, err := os.Open(m.path)
	if err != nil {
		return Settings{}, err
	}
	defer f.Close()

	// Start from defaults so sections missing on disk keep sane values
	s := DefaultSettings()
	if err := json.NewDecoder(f).Decode(&s); err != nil {
		return Settings{}, fmt.Errorf("decode %s: %w", m.path, err)
	}

	s.TMDB.APIKey = strings.TrimSpace(s.TMDB.APIKey)
	s.TMDB.BaseURL = strings.TrimRight(strings.TrimSpace(s.TMDB.BaseURL), "/")
	if s.TMDB.BaseURL == "" {
		s.TMDB.BaseURL = DefaultSettings().TMDB.BaseURL
	}
	s.TMDB.Language = NormalizeLanguage(s.TMDB.Language)

	return s, nil
}

// Save writes the provided settings to disk atomically.
func (m *Manager) Save(s Settings) error {
	if m.path == "" {
		return errors.New("config path not set")
	}
	if err := m.EnsureDir(); err != nil {
		return err
	}
	tmp := m.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, m.path)
}

// Environment variables that override the settings file.
const (
	EnvAPIKey      = "CINESCOPE_TMDB_API_KEY"
	EnvEnvironment = "CINESCOPE_ENV"
	EnvBaseURL     = "CINESCOPE_TMDB_BASE_URL"
	EnvPort        = "CINESCOPE_PORT"
	EnvFixturesDir = "CINESCOPE_FIXTURES_DIR"
)

// LoadDotEnv loads KEY=VALUE pairs from the given files into the process
// environment without overwriting variables that are already set. Missing
// files are ignored.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// ApplyEnv overlays environment overrides onto s. lookup is usually
// os.LookupEnv; tests pass a map-backed function.
func ApplyEnv(s *Settings, lookup func(string) (string, bool)) error {
	if v, ok := lookupTrimmed(lookup, EnvAPIKey); ok {
		s.TMDB.APIKey = v
	}
	if v, ok := lookupTrimmed(lookup, EnvEnvironment); ok {
		s.Environment = v
	}
	if v, ok := lookupTrimmed(lookup, EnvBaseURL); ok {
		s.TMDB.BaseURL = strings.TrimRight(v, "/")
	}
	if v, ok := lookupTrimmed(lookup, EnvFixturesDir); ok {
		s.Fixtures.Directory = v
	}
	if v, ok := lookupTrimmed(lookup, EnvPort); ok {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			return fmt.Errorf("invalid %s %q", EnvPort, v)
		}
		s.Server.Port = port
	}
	return nil
}

func lookupTrimmed(lookup func(string) (string, bool), key string) (string, bool) {
	v, ok := lookup(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

// NormalizeLanguage canonicalizes a BCP 47 tag ("en_us" -> "en-US"). Bare
// languages get their most likely region ("fr" -> "fr-FR"). Unparseable
// input falls back to en-US.
func NormalizeLanguage(lang string) string {
	lang = strings.ReplaceAll(strings.TrimSpace(lang), "_", "-")
	if lang == "" {
		return "en-US"
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return "en-US"
	}
	base, _ := tag.Base()
	region, _ := tag.Region()
	if region.String() == "ZZ" {
		return base.String() + "-US"
	}
	return base.String() + "-" + region.String()
}
