package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/finswitch/account-lookup/internal/domain/directory"
	"github.com/finswitch/account-lookup/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOracleRepository implements directory.OracleRepository using GORM
type GormOracleRepository struct {
	db *gorm.DB
}

// NewGormOracleRepository creates a new GORM-based oracle repository
func NewGormOracleRepository(db *gorm.DB) *GormOracleRepository {
	return &GormOracleRepository{db: db}
}

// Save persists a new oracle routing rule
func (r *GormOracleRepository) Save(ctx context.Context, oracle *directory.Oracle) error {
	if err := r.db.WithContext(ctx).Create(oracle).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return directory.NewDuplicateOracleError(oracle.Name)
		}
		return err
	}
	return nil
}

// Delete removes an oracle by id
func (r *GormOracleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&directory.Oracle{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return directory.NewOracleNotFoundError(fmt.Sprintf("id %s", id))
	}
	return nil
}

// FindByID retrieves an oracle by id; nil when absent
func (r *GormOracleRepository) FindByID(ctx context.Context, id uuid.UUID) (*directory.Oracle, error) {
	var oracle directory.Oracle
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&oracle).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &oracle, nil
}

// FindByName retrieves an oracle by name; nil when absent
func (r *GormOracleRepository) FindByName(ctx context.Context, name string) (*directory.Oracle, error) {
	var oracle directory.Oracle
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&oracle).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &oracle, nil
}

// FindAll retrieves all registered oracles
func (r *GormOracleRepository) FindAll(ctx context.Context, filter shared.Filter) ([]directory.Oracle, error) {
	var oracles []directory.Oracle
	query := r.applyFilter(r.db.WithContext(ctx), filter)
	if err := query.Find(&oracles).Error; err != nil {
		return nil, err
	}
	return oracles, nil
}

// Count returns the number of registered oracles
func (r *GormOracleRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applyOracleFilters(r.db.WithContext(ctx).Model(&directory.Oracle{}), filter)
	err := query.Count(&count).Error
	return count, err
}

// FindForRouting resolves the oracle owning a party type and currency. An
// exact (party_type, currency) match wins; an oracle registered with no
// currency acts as the wildcard fallback for its party type.
func (r *GormOracleRepository) FindForRouting(ctx context.Context, partyType string, currency *string) (*directory.Oracle, error) {
	normalized := strings.ToUpper(strings.TrimSpace(partyType))

	if currency != nil {
		var oracle directory.Oracle
		err := r.db.WithContext(ctx).
			Where("party_type = ? AND currency = ?", normalized, strings.ToUpper(*currency)).
			First(&oracle).Error
		if err == nil {
			return &oracle, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	var oracle directory.Oracle
	err := r.db.WithContext(ctx).
		Where("party_type = ? AND currency IS NULL", normalized).
		First(&oracle).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, directory.NewOracleNotFoundError(fmt.Sprintf("party type %s", normalized))
		}
		return nil, err
	}
	return &oracle, nil
}

// ExistsByID checks whether an oracle with the given id exists
func (r *GormOracleRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&directory.Oracle{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

// ExistsByName checks whether an oracle with the given name exists
func (r *GormOracleRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&directory.Oracle{}).
		Where("name = ?", name).
		Count(&count).Error
	return count > 0, err
}

// applyOracleFilters applies search and field filters shared by list and count
func applyOracleFilters(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("name ILIKE ? OR party_type ILIKE ?", "%"+filter.Search+"%", "%"+filter.Search+"%")
	}
	if partyType, ok := filter.Filters["party_type"]; ok {
		query = query.Where("party_type = ?", partyType)
	}
	if oracleType, ok := filter.Filters["type"]; ok {
		query = query.Where("type = ?", oracleType)
	}
	return query
}

// applyFilter applies filtering, pagination and ordering to a query
func (r *GormOracleRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = applyOracleFilters(query, filter)
	// Whitelist sortable columns to keep the interpolation safe
	orderBy := ValidateSortField(filter.OrderBy, OracleSortFields, "created_at")
	orderDir := strings.ToLower(ValidateSortOrder(filter.OrderDir))
	query = query.Order(fmt.Sprintf("%s %s", orderBy, orderDir))
	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query = query.Offset((page - 1) * filter.PageSize).Limit(filter.PageSize)
	}
	return query
}

// Ensure GormOracleRepository implements directory.OracleRepository
var _ directory.OracleRepository = (*GormOracleRepository)(nil)
