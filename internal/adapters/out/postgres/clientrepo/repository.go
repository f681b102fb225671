// Package clientrepo implements the client reputation provider against the
// client_reputations table. The reputation itself is maintained by an external
// process; this adapter only reads it for the payment workflow.
package clientrepo

import (
	"context"
	"errors"

	"vinylshop/internal/core/domain/model/client"
	"vinylshop/internal/core/domain/model/kernel"
	"vinylshop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClientReputationDTO represents one stored reputation classification.
type ClientReputationDTO struct {
	ClientID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Reputation string    `gorm:"type:varchar(16)"`
}

// TableName specifies the database table name for reputation rows.
func (ClientReputationDTO) TableName() string {
	return "client_reputations"
}

// GormClientReputationProvider implements ClientReputationProvider using GORM.
//
// A missing client is reported as an ObjectNotFoundError rather than a default
// tier, so absence is never silently masked.
type GormClientReputationProvider struct {
	db *gorm.DB
}

// NewGormClientReputationProvider creates a new GORM reputation provider.
func NewGormClientReputationProvider(db *gorm.DB) *GormClientReputationProvider {
	return &GormClientReputationProvider{db: db}
}

// Get retrieves the reputation tier of a client.
func (r *GormClientReputationProvider) Get(ctx context.Context, clientID kernel.UUID) (client.Reputation, error) {
	if err := clientID.Validate(); err != nil {
		return client.UnknownReputation, err
	}

	var dto ClientReputationDTO
	if err := r.db.WithContext(ctx).First(&dto, "client_id = ?", clientID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return client.UnknownReputation, errs.NewObjectNotFoundError("client", clientID.String())
		}
		return client.UnknownReputation, err
	}

	return client.ReputationFromString(dto.Reputation)
}
