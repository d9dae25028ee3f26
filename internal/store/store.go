// Package store persists computed estimates to a local SQLite database. The
// engine itself stays stateless; persistence is an optional layer on top.
package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/flipcalc/rehab-intelligence/internal/estimate"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// EstimateRecord is one saved estimate. The full result is kept as a JSON
// document; the scalar columns exist for listing and filtering.
type EstimateRecord struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	ZipCode      string    `gorm:"index" json:"zip_code"`
	SquareFeet   float64   `json:"square_feet"`
	YearBuilt    int       `json:"year_built"`
	ARV          float64   `json:"arv"`
	AssetClass   string    `json:"asset_class"`
	Condition    string    `json:"condition"`
	TotalRehab   float64   `json:"total_rehab"`
	TotalProject float64   `json:"total_project_cost"`
	WarningCount int       `json:"warning_count"`
	EstimateJSON string    `gorm:"type:text" json:"-"`
}

// Store wraps the database handle.
type Store struct {
	db     *gorm.DB
	logger *zap.Logger
}

// Open opens (creating if necessary) the SQLite database at path and migrates
// the schema.
func Open(zlog *zap.Logger, path string) (*Store, error) {
	if zlog == nil {
		zlog = zap.NewNop()
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open estimate store at %s: %w", path, err)
	}

	if err := db.AutoMigrate(&EstimateRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate estimate store: %w", err)
	}

	return &Store{db: db, logger: zlog}, nil
}

// Save persists a computed estimate together with the input it was derived
// from and returns the stored record.
func (s *Store) Save(input estimate.PropertyInput, result *estimate.RehabEstimate) (*EstimateRecord, error) {
	payload, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to encode estimate: %w", err)
	}

	record := EstimateRecord{
		ZipCode:      input.ZipCode,
		SquareFeet:   input.SquareFeet,
		YearBuilt:    input.YearBuilt,
		ARV:          input.ARV,
		AssetClass:   string(result.AssetClass),
		Condition:    string(result.Condition),
		TotalRehab:   result.TotalRehab,
		TotalProject: result.TotalProjectCost,
		WarningCount: len(result.Warnings),
		EstimateJSON: string(payload),
	}

	if err := s.db.Create(&record).Error; err != nil {
		return nil, fmt.Errorf("failed to save estimate: %w", err)
	}

	s.logger.Debug("estimate saved",
		zap.String("op", "store.Save"),
		zap.Uint("id", record.ID),
		zap.String("zip", record.ZipCode),
	)

	return &record, nil
}

// List returns the most recent records, newest first.
func (s *Store) List(limit int) ([]EstimateRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	var records []EstimateRecord
	if err := s.db.Order("created_at desc").Limit(limit).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list estimates: %w", err)
	}
	return records, nil
}

// Get loads one record by ID and decodes its stored estimate.
func (s *Store) Get(id uint) (*EstimateRecord, *estimate.RehabEstimate, error) {
	var record EstimateRecord
	if err := s.db.First(&record, id).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to load estimate %d: %w", id, err)
	}

	var result estimate.RehabEstimate
	if err := json.Unmarshal([]byte(record.EstimateJSON), &result); err != nil {
		return nil, nil, fmt.Errorf("failed to decode stored estimate %d: %w", id, err)
	}
	return &record, &result, nil
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
