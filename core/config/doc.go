// Package config provides configuration management for the Asset Curator.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults are declared next to each field through `default`
// struct tags and registered by reflection.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Log: Logging level and format
//   - Database: run history database (sqlite or mysql)
//   - Storage: S3/MinIO report sink
//   - Curator: target directories, asset subdirectories, trash and document patterns
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Curator.ScanDirs)
package config
