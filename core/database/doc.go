// Package database handles the optional point-of-sale database connection.
//
// It wraps GORM to open MySQL or SQLite connections from the application's
// configuration. The inventory feature uses it as a read-only import source
// for the master stock list.
//
// # Connect
//
// Connect picks the dialector from Config.Driver, applies pool settings and
// pings with the configured timeout. Callers treat a failure as "source
// unavailable" rather than fatal.
//
// # Schema Inspection
//
// GetTableColumns and ColumnNames list the columns of a table (SHOW COLUMNS
// on MySQL, PRAGMA table_info on SQLite). The importer uses them to check the
// stock table carries the required columns before reading any rows.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logger.Warn("POS database unavailable", zap.Error(err))
//	}
//
//	columns, err := database.ColumnNames(db, cfg.Database.Table)
package database
