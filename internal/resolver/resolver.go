// Package resolver turns a request host into the pointer record of its
// account, caching successful resolutions.
package resolver

import (
	"context"
	"fmt"

	"github.com/LerianStudio/lib-commons/commons/log"
	libErr "github.com/LerianStudio/dweb-gateway/error"
	"github.com/LerianStudio/dweb-gateway/internal/cache"
	"github.com/LerianStudio/dweb-gateway/model"
	"github.com/LerianStudio/dweb-gateway/util"
)

// RecordLookup fetches the records of an account. A nil result with a nil
// error means the account has no data.
//
//go:generate mockgen -destination=../../test/mocks/record_lookup.go -package=mocks . RecordLookup
type RecordLookup interface {
	Records(ctx context.Context, account string) (*model.RecordsData, error)
}

// Resolver resolves hosts to pointers
type Resolver struct {
	lookup     RecordLookup
	cache      *cache.Manager
	suffix     string
	bypassHost string
	logger     log.Logger
}

// New creates a resolver. Hosts equal to bypassHost are never resolved.
func New(lookup RecordLookup, resolutionCache *cache.Manager, suffix, bypassHost string, logger log.Logger) *Resolver {
	return &Resolver{
		lookup:     lookup,
		cache:      resolutionCache,
		suffix:     suffix,
		bypassHost: util.NormalizeHost(bypassHost),
		logger:     logger,
	}
}

// Resolve returns the pointer for host. It returns libErr.ErrPassthrough when
// the request must be forwarded unmodified, and the lookup's *libErr.APIError
// when the lookup answered with a non-success status.
func (r *Resolver) Resolve(ctx context.Context, host string) (model.Pointer, error) {
	if util.NormalizeHost(host) == r.bypassHost {
		return model.Pointer{}, libErr.ErrPassthrough
	}

	account, ok := util.AccountFromHost(host, r.suffix)
	if !ok {
		r.logger.Debugf("Host %s carries no account", host)
		return model.Pointer{}, libErr.ErrPassthrough
	}

	if encoded, found := r.cache.Get(account); found {
		if p, ok := model.DecodePointer(encoded); ok {
			return p, nil
		}
	}

	data, err := r.lookup.Records(ctx, account)
	if err != nil {
		if _, isAPI := libErr.AsAPIError(err); isAPI {
			return model.Pointer{}, err
		}

		return model.Pointer{}, fmt.Errorf("record lookup for %s: %w", account, err)
	}

	if data == nil {
		r.logger.Debugf("Account %s has no data", account)
		return model.Pointer{}, libErr.ErrPassthrough
	}

	p, ok := Choose(data.Records)
	if !ok {
		r.logger.Debugf("Account %s has no dweb record", account)
		return model.Pointer{}, libErr.ErrPassthrough
	}

	r.cache.Store(account, p.Encode())

	return p, nil
}
