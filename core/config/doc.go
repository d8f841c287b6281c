// Package config provides configuration management for the showroom audit service.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Defaults come from `default` struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP port, API key and upload limit
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: Logging level and format
//   - Database: optional point-of-sale database used as an import source
//   - RFID: reader bridge queue size
//   - Inventory: demo seeding and import object prefix
//   - Scan: history retention
//   - Export: output directory, object prefix and cache sizing
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
