// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"sync"

	"github.com/bitmark-inc/assetregistry/access"
	"github.com/bitmark-inc/assetregistry/account"
	"github.com/bitmark-inc/assetregistry/asset"
	"github.com/bitmark-inc/assetregistry/counter"
	"github.com/bitmark-inc/assetregistry/fault"
	"github.com/bitmark-inc/assetregistry/ownership"
	"github.com/bitmark-inc/assetregistry/storage"
	"github.com/bitmark-inc/logger"
)

// key of the allocator in the counters pool
var allocatorKey = []byte("assets")

// Registry - the asset registry
type Registry struct {
	sync.Mutex

	log           *logger.L
	database      *storage.Database
	access        *access.Store
	allocator     counter.Counter
	clock         Clock
	administrator account.Identity
	metrics       *Metrics
}

// New - a registry over an open database
//
// the allocator resumes from the value last committed to the database
func New(database *storage.Database, clock Clock, administrator account.Identity, metrics *Metrics) (*Registry, error) {
	if administrator.IsEmpty() {
		return nil, fault.MissingAdministrator
	}

	if nil == metrics {
		metrics, _ = NewMetrics(nil)
	}

	r := &Registry{
		log:           logger.New("registry"),
		database:      database,
		access:        access.New(database.Pool.Access),
		clock:         clock,
		administrator: administrator,
		metrics:       metrics,
	}

	n, _ := database.Pool.Counters.GetN(allocatorKey)
	r.allocator.Set(n)
	r.metrics.Allocated.Set(float64(n))

	r.log.Infof("allocated: %d  administrator: %q", n, administrator)
	return r, nil
}

// fetch the stored form and decoded record of an asset
func (r *Registry) fetch(id asset.Identifier) (asset.Packed, *asset.Record, error) {
	packed := asset.Packed(r.database.Pool.Assets.Get(id.Bytes()))
	if nil == packed {
		return nil, nil, fault.AssetMissing
	}

	record, err := packed.Unpack()
	if nil != err {
		r.log.Errorf("asset: %s  unpack error: %s", id, err)
		return nil, nil, err
	}
	return packed, record, nil
}

// authorisation facts for caller on a record
func (r *Registry) subject(caller account.Identity, id asset.Identifier, record *asset.Record) ownership.Subject {
	return ownership.Subject{
		Caller:        caller,
		Owner:         record.Owner,
		Administrator: r.administrator,
		Granted:       r.access.IsEnabled(nil, id, caller),
	}
}

// fetch a record the caller owns
func (r *Registry) fetchOwned(caller account.Identity, id asset.Identifier) (*asset.Record, error) {
	_, record, err := r.fetch(id)
	if nil != err {
		return nil, err
	}
	if !ownership.CanModify(r.subject(caller, id, record)) {
		return nil, fault.OwnershipMismatch
	}
	return record, nil
}

// stage writes in a single transaction and commit them
func (r *Registry) commit(stage func(storage.Transaction)) error {
	trx, err := r.database.Begin()
	if nil != err {
		return err
	}
	stage(trx)
	return trx.Commit()
}

// replace a stored record
func (r *Registry) store(id asset.Identifier, record *asset.Record) error {
	packed, err := record.Pack()
	if nil != err {
		return err
	}
	return r.commit(func(trx storage.Transaction) {
		trx.Put(r.database.Pool.Assets, id.Bytes(), packed)
	})
}

// record the outcome of an operation
func (r *Registry) done(operation string, caller account.Identity, err error) error {
	r.metrics.observe(operation, err)
	if nil != err {
		r.log.Debugf("%s: caller: %q  rejected: %s", operation, caller, err)
	}
	return err
}
