// Package database handles the optional database connection.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to configure
// MySQL or SQLite connections from the application's configuration. The portal
// only uses the database to keep a history of synchronization runs, so a
// failing connection is reported as a warning and the portal keeps running.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logger.Warn("Optional database connection failed", zap.Error(err))
//	}
package database
