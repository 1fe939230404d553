// Package config provides configuration loading for the scorer-ui service.
//
// The configuration is stored in scorer-ui.json. Every field has a default,
// so the file may be partial or absent. Environment variables override the
// file:
//
//	SCORER_UI_HOST, SCORER_UI_PORT          server listen address
//	GIT_COMMIT_HASH                         commit linked from the footer
//	SCORER_UI_LOG_LEVEL, SCORER_UI_LOG_FORMAT
//	SCORER_UI_ASSET_MANIFEST                fingerprint manifest path
//	SCORER_UI_S3_BUCKET, SCORER_UI_S3_REGION, SCORER_UI_S3_ENDPOINT
//
// # Configuration File Structure
//
//	{
//	  "server": {"host": "0.0.0.0", "port": 8080, "shutdownTimeout": "10s"},
//	  "static": {"prefix": "/assets/", "manifest": "", "maxAge": 86400},
//	  "footer": {"commitHash": "", "defaultMode": "light"},
//	  "metrics": {"enabled": true, "path": "/metrics", "namespace": "scorer_ui"},
//	  "log": {"level": "info", "format": "text"},
//	  "publish": {"bucket": "", "prefix": "footer/", "region": "us-east-1"}
//	}
//
// # Usage
//
//	cfg, err := config.LoadFile("scorer-ui.json")
//	if err != nil {
//	    return err
//	}
//	if err := cfg.ApplyEnv(os.Getenv); err != nil {
//	    return err
//	}
package config
