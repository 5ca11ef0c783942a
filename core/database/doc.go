// Package database handles the connection to the run history database.
//
// It wraps GORM and selects the dialector from configuration: sqlite (the default, a
// local file next to the binary) or mysql for shared deployments.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logger.Warn("Run history disabled", zap.Error(err))
//	}
package database
