package database

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"cropcast/entities"
	"cropcast/logger"
)

// Models lists every table the server owns, in dependency order.
func Models() []any {
	return []any{
		&entities.Profile{},
		&entities.Farm{},
		&entities.Field{},
		&entities.Crop{},
		&entities.Reminder{},
		&entities.CropRecommendation{},
		&entities.ChatMessage{},
		&entities.Advisory{},
	}
}

// OpenSQLite opens the database at path with foreign keys enabled and brings the
// schema up to date.
func OpenSQLite(path string) (*gorm.DB, error) {
	dsn := path
	if !strings.Contains(dsn, "?") {
		dsn += "?_pragma=foreign_keys(1)"
	}
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: newGormLogger(logger.L()),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// must run before AutoMigrate: the serializer cannot read the legacy text form
	if err := migrateLegacyPreviousCrops(db); err != nil {
		return nil, fmt.Errorf("migrate previous_crops: %w", err)
	}
	if err := db.AutoMigrate(Models()...); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	return db, nil
}

// newGormLogger sends gorm's warnings, slow queries and SQL errors to l.
// Missing rows are an expected outcome of lookups and are not reported.
func newGormLogger(l *zap.Logger) gormlogger.Interface {
	std, err := zap.NewStdLogAt(l.Named("gorm"), zap.WarnLevel)
	if err != nil {
		std = zap.NewStdLog(l.Named("gorm"))
	}
	return gormlogger.New(std, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
	})
}

// migrateLegacyPreviousCrops rewrites fields.previous_crops values stored as
// comma-separated text ("Wheat, Soy") into JSON arrays.
func migrateLegacyPreviousCrops(db *gorm.DB) error {
	var tbl string
	if err := db.Raw(`SELECT name FROM sqlite_master WHERE type='table' AND name='fields'`).Scan(&tbl).Error; err != nil {
		return fmt.Errorf("check table exist: %w", err)
	}
	if tbl == "" {
		return nil
	}

	type colInfo struct {
		Cid  int
		Name string
		Type string
	}
	var cols []colInfo
	if err := db.Raw(`PRAGMA table_info(fields)`).Scan(&cols).Error; err != nil {
		return fmt.Errorf("table_info: %w", err)
	}
	has := false
	for _, c := range cols {
		if strings.EqualFold(c.Name, "previous_crops") {
			has = true
			break
		}
	}
	if !has {
		return nil
	}

	type row struct {
		ID            string
		PreviousCrops string
	}
	var rows []row
	if err := db.Raw(`SELECT id, previous_crops FROM fields WHERE previous_crops IS NOT NULL AND previous_crops NOT LIKE '[%'`).Scan(&rows).Error; err != nil {
		return fmt.Errorf("scan legacy rows: %w", err)
	}
	if len(rows) == 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, r := range rows {
			crops := []string{}
			for _, p := range strings.Split(r.PreviousCrops, ",") {
				if p = strings.TrimSpace(p); p != "" {
					crops = append(crops, p)
				}
			}
			b, _ := json.Marshal(crops)
			if err := tx.Exec(`UPDATE fields SET previous_crops = ? WHERE id = ?`, string(b), r.ID).Error; err != nil {
				return err
			}
		}
		logger.Info("migrated legacy previous_crops", zap.Int("rows", len(rows)))
		return nil
	})
}
