package ports

import (
	"context"

	"vinylshop/internal/core/domain/model/client"
	"vinylshop/internal/core/domain/model/kernel"
)

// ClientReputationProvider supplies the trust classification of a client.
// It is a pure read. A missing client is the provider's own error, surfaced
// as an error unwrapping to errs.ErrObjectNotFound; implementations must not
// return a default tier that masks absence.
type ClientReputationProvider interface {
	Get(ctx context.Context, clientID kernel.UUID) (client.Reputation, error)
}
