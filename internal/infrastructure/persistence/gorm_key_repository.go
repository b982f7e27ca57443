package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/MGTheTrain/rsa-vault/internal/domain/keys"
	"github.com/MGTheTrain/rsa-vault/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/rsa-vault/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormKeyRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormKeyRepository creates a new GORM-based KeyRepository implementation
func NewGormKeyRepository(db *gorm.DB, logger logger.Logger) (keys.KeyRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection cannot be nil")
	}
	return &gormKeyRepository{
		db:     db,
		logger: logger,
	}, nil
}

// AutoMigrate creates or updates the key_pairs table
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.KeyPairModel{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

func (r *gormKeyRepository) Create(ctx context.Context, record *keys.KeyRecord) error {
	if err := record.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.KeyPairModel{}
	model.FromDomain(record)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create key pair: %w", err)
	}

	r.logger.Info("Created key pair with id ", record.ID)
	return nil
}

func (r *gormKeyRepository) List(ctx context.Context, query *keys.KeyQuery) ([]*keys.KeyRecord, error) {
	if query == nil {
		query = keys.NewKeyQuery()
	}
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.KeyPairModel
	dbQuery := r.db.WithContext(ctx).Model(&models.KeyPairModel{})

	if query.Label != "" {
		dbQuery = dbQuery.Where("label = ?", query.Label)
	}
	if !query.DateTimeCreated.IsZero() {
		dbQuery = dbQuery.Where("date_time_created >= ?", query.DateTimeCreated)
	}

	sortBy := query.SortBy
	if sortBy == "" {
		sortBy = "date_time_created"
	}
	order := query.SortOrder
	if order == "" {
		order = "asc"
	}
	dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", sortBy, order))

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch key pairs: %w", err)
	}

	records := make([]*keys.KeyRecord, len(modelList))
	for i, model := range modelList {
		record, err := model.ToDomain()
		if err != nil {
			return nil, err
		}
		records[i] = record
	}

	return records, nil
}

func (r *gormKeyRepository) GetByID(ctx context.Context, keyID string) (*keys.KeyRecord, error) {
	var model models.KeyPairModel
	if err := r.db.WithContext(ctx).Where("id = ?", keyID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: key pair with ID %s not found", keys.ErrKeyNotFound, keyID)
		}
		return nil, fmt.Errorf("failed to fetch key pair: %w", err)
	}
	return model.ToDomain()
}

func (r *gormKeyRepository) DeleteByID(ctx context.Context, keyID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", keyID).Delete(&models.KeyPairModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete key pair: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: key pair with ID %s not found", keys.ErrKeyNotFound, keyID)
	}

	r.logger.Info("Deleted key pair with id ", keyID)
	return nil
}
