package app

import (
	"log"

	"omniportal/internal/gateway/config"
	"omniportal/internal/gateway/repository/media"
)

// chooseMediaStore prefers the configured S3-compatible bucket and falls back
// to the in-memory store when the settings are incomplete.
func chooseMediaStore(cfg *config.Config) media.Store {
	s3Cfg := media.S3Config{
		Endpoint:  cfg.Media.Endpoint,
		Region:    cfg.Media.Region,
		AccessKey: cfg.Media.AccessKey,
		SecretKey: cfg.Media.SecretKey,
		Bucket:    cfg.Media.Bucket,
		UseSSL:    cfg.Media.UseSSL,
	}
	if s3Cfg.CanUse() {
		s3Store, err := media.NewS3Store(s3Cfg)
		if err == nil {
			log.Printf("media store: s3 bucket=%s endpoint=%s", s3Cfg.Bucket, s3Cfg.Endpoint)
			return s3Store
		}
		log.Printf("media store: s3 init failed, using in-memory fallback: %v", err)
	}
	return media.NewMemoryStore()
}
