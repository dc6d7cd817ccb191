package config

import (
	"flag"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string
	Env  string

	Gemini GeminiConfig
	Store  StoreConfig
	Media  MediaConfig
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

// Available reports whether a credential is configured. Its absence is not
// an error: it selects the deterministic offline mode up front.
func (c GeminiConfig) Available() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

type StoreConfig struct {
	// SnapshotPath is where created projects persist when no DSN is set.
	SnapshotPath string
	// AuthPath is the file holding the persisted authentication flag.
	AuthPath string
}

type MediaConfig struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port := flag.String("port", ":8081", "server port")
	flag.Parse()

	if envPort := os.Getenv("PORT"); envPort != "" {
		if strings.HasPrefix(envPort, ":") {
			*port = envPort
		} else {
			*port = ":" + envPort
		}
	}

	env := strings.TrimSpace(os.Getenv("APP_ENV"))
	if env == "" {
		env = "local"
	}

	return &Config{
		Port: *port,
		Env:  env,
		Gemini: GeminiConfig{
			APIKey: strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
			Model:  firstNonEmpty(strings.TrimSpace(os.Getenv("GEMINI_MODEL")), "gemini-2.5-flash"),
		},
		Store: StoreConfig{
			SnapshotPath: firstNonEmpty(strings.TrimSpace(os.Getenv("PORTAL_STORE_PATH")), filepath.Join("tmp", "portal_projects.json")),
			AuthPath:     firstNonEmpty(strings.TrimSpace(os.Getenv("PORTAL_AUTH_PATH")), filepath.Join("tmp", "portal_auth.json")),
		},
		Media: loadMediaConfig(env),
	}, nil
}

func loadMediaConfig(env string) MediaConfig {
	endpoint := resolveMediaEndpoint(env)
	return MediaConfig{
		Endpoint:  endpoint,
		Region:    firstNonEmpty(strings.TrimSpace(os.Getenv("MEDIA_S3_REGION")), "us-east-1"),
		AccessKey: firstNonEmpty(strings.TrimSpace(os.Getenv("MEDIA_S3_ACCESS_KEY")), strings.TrimSpace(os.Getenv("MINIO_ROOT_USER"))),
		SecretKey: firstNonEmpty(strings.TrimSpace(os.Getenv("MEDIA_S3_SECRET_KEY")), strings.TrimSpace(os.Getenv("MINIO_ROOT_PASSWORD"))),
		Bucket:    firstNonEmpty(strings.TrimSpace(os.Getenv("MEDIA_S3_BUCKET")), "omniportal-media"),
		UseSSL:    resolveMediaUseSSL(env),
	}
}

func resolveMediaEndpoint(env string) string {
	if strings.EqualFold(strings.TrimSpace(env), "local") {
		return strings.TrimSpace(os.Getenv("MEDIA_MINIO_ENDPOINT"))
	}
	return strings.TrimSpace(os.Getenv("MEDIA_S3_ENDPOINT"))
}

func resolveMediaUseSSL(env string) bool {
	if strings.EqualFold(strings.TrimSpace(env), "local") {
		return false
	}
	raw := strings.TrimSpace(os.Getenv("MEDIA_S3_USE_SSL"))
	if raw == "" {
		return true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return true
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
