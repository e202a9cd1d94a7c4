package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/finswitch/account-lookup/internal/domain/directory"
	"gorm.io/gorm"
)

// GormAssociationRepository implements directory.AssociationRepository using
// GORM. It backs the built-in oracle provider.
type GormAssociationRepository struct {
	db *gorm.DB
}

// NewGormAssociationRepository creates a new GORM-based association repository
func NewGormAssociationRepository(db *gorm.DB) *GormAssociationRepository {
	return &GormAssociationRepository{db: db}
}

// Save persists a new association; the exact tuple must not already exist
func (r *GormAssociationRepository) Save(ctx context.Context, association *directory.Association) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing directory.Association
		err := tupleScope(tx, association.FspID, association.Party()).First(&existing).Error
		if err == nil {
			return directory.NewAssociationExistsError(association.FspID)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := tx.Create(association).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return directory.NewAssociationExistsError(association.FspID)
			}
			return err
		}
		return nil
	})
}

// FindFspID returns the FSP owning the party tuple, or nil when absent
func (r *GormAssociationRepository) FindFspID(ctx context.Context, party directory.PartyLookup) (*string, error) {
	var association directory.Association
	err := partyScope(r.db.WithContext(ctx), party).First(&association).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &association.FspID, nil
}

// Delete removes the association matching the exact tuple
func (r *GormAssociationRepository) Delete(ctx context.Context, fspID string, party directory.PartyLookup) error {
	result := tupleScope(r.db.WithContext(ctx), fspID, party).Delete(&directory.Association{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return directory.NewAssociationNotFoundError(fspID)
	}
	return nil
}

// FindAllByPartyType returns every association stored for a party type
func (r *GormAssociationRepository) FindAllByPartyType(ctx context.Context, partyType string) ([]directory.Association, error) {
	var associations []directory.Association
	err := r.db.WithContext(ctx).
		Where("party_type = ?", strings.ToUpper(strings.TrimSpace(partyType))).
		Order("created_at ASC").
		Find(&associations).Error
	if err != nil {
		return nil, err
	}
	return associations, nil
}

// partyScope narrows a query to the party identification tuple. Optional
// dimensions match on IS NULL so that a lookup without a sub-type or
// currency never matches a qualified association.
func partyScope(db *gorm.DB, party directory.PartyLookup) *gorm.DB {
	query := db.Model(&directory.Association{}).
		Where("party_type = ? AND party_id = ?", party.PartyType, party.PartyID)
	if party.PartySubType != nil {
		query = query.Where("party_sub_type = ?", *party.PartySubType)
	} else {
		query = query.Where("party_sub_type IS NULL")
	}
	if party.Currency != nil {
		query = query.Where("currency = ?", *party.Currency)
	} else {
		query = query.Where("currency IS NULL")
	}
	return query
}

// tupleScope narrows a query to the full association tuple including the fsp
func tupleScope(db *gorm.DB, fspID string, party directory.PartyLookup) *gorm.DB {
	return partyScope(db, party).Where("fsp_id = ?", fspID)
}

// Ensure GormAssociationRepository implements directory.AssociationRepository
var _ directory.AssociationRepository = (*GormAssociationRepository)(nil)
