// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/assetregistry/account"
	"github.com/bitmark-inc/assetregistry/asset"
	"github.com/bitmark-inc/assetregistry/fault"
	"github.com/bitmark-inc/assetregistry/ownership"
	"github.com/bitmark-inc/assetregistry/storage"
)

// Create - register a new asset owned by caller
//
// an empty caller could never own the record, so it is refused before
// the fields are checked; the record, the caller's grant and the
// allocator value are written together and the allocator only advances
// once they are committed
func (r *Registry) Create(caller account.Identity, name string, size uint64, summary string, labels []string) (asset.Identifier, error) {
	r.Lock()
	defer r.Unlock()

	id, err := r.create(caller, name, size, summary, labels)
	return id, r.done("create", caller, err)
}

func (r *Registry) create(caller account.Identity, name string, size uint64, summary string, labels []string) (asset.Identifier, error) {
	if caller.IsEmpty() {
		return 0, fault.UnauthorizedOperation
	}
	if err := asset.CheckFields(name, size, summary, labels); nil != err {
		return 0, err
	}

	id := asset.Identifier(r.allocator.Next())
	if r.database.Pool.Assets.Has(id.Bytes()) {
		r.log.Criticalf("allocated asset: %s already stored", id)
		return 0, fault.DuplicateEntry
	}

	record := &asset.Record{
		Name:      name,
		Owner:     caller,
		Size:      size,
		CreatedAt: r.clock.Height(),
		Summary:   summary,
		Labels:    append([]string(nil), labels...),
	}
	packed, err := record.Pack()
	if nil != err {
		return 0, err
	}

	err = r.commit(func(trx storage.Transaction) {
		trx.Put(r.database.Pool.Assets, id.Bytes(), packed)
		r.access.Enable(trx, id, caller)
		trx.PutN(r.database.Pool.Counters, allocatorKey, uint64(id))
	})
	if nil != err {
		return 0, err
	}

	r.allocator.Increment()
	r.metrics.Allocated.Set(float64(id))

	r.log.Infof("create: asset: %s  owner: %q  height: %d", id, caller, record.CreatedAt)
	return id, nil
}

// Update - replace the descriptive fields of an asset
//
// owner and creation height are kept
func (r *Registry) Update(caller account.Identity, id asset.Identifier, name string, size uint64, summary string, labels []string) error {
	r.Lock()
	defer r.Unlock()

	return r.done("update", caller, r.update(caller, id, name, size, summary, labels))
}

func (r *Registry) update(caller account.Identity, id asset.Identifier, name string, size uint64, summary string, labels []string) error {
	record, err := r.fetchOwned(caller, id)
	if nil != err {
		return err
	}
	if err := asset.CheckFields(name, size, summary, labels); nil != err {
		return err
	}

	record.Name = name
	record.Size = size
	record.Summary = summary
	record.Labels = append([]string(nil), labels...)

	if err := r.store(id, record); nil != err {
		return err
	}
	r.log.Infof("update: asset: %s", id)
	return nil
}

// GrantAccess - owner request to let accessor read an asset
//
// the request is checked and logged but does not change any grant
func (r *Registry) GrantAccess(caller account.Identity, id asset.Identifier, accessor account.Identity) error {
	r.Lock()
	defer r.Unlock()

	_, err := r.fetchOwned(caller, id)
	if nil == err {
		r.log.Warnf("grant access: asset: %s  accessor: %q  not applied", id, accessor)
	}
	return r.done("grantAccess", caller, err)
}

// RevokeAccess - remove the grant of accessor on an asset
//
// an owner cannot revoke their own grant
func (r *Registry) RevokeAccess(caller account.Identity, id asset.Identifier, accessor account.Identity) error {
	r.Lock()
	defer r.Unlock()

	return r.done("revokeAccess", caller, r.revokeAccess(caller, id, accessor))
}

func (r *Registry) revokeAccess(caller account.Identity, id asset.Identifier, accessor account.Identity) error {
	if _, err := r.fetchOwned(caller, id); nil != err {
		return err
	}
	if accessor == caller {
		return fault.UnauthorizedOperation
	}

	err := r.commit(func(trx storage.Transaction) {
		r.access.Revoke(trx, id, accessor)
	})
	if nil != err {
		return err
	}
	r.log.Infof("revoke access: asset: %s  accessor: %q", id, accessor)
	return nil
}

// TransferOwnership - make newOwner the owner of an asset
//
// grants, including the previous owner's, are left as they are
func (r *Registry) TransferOwnership(caller account.Identity, id asset.Identifier, newOwner account.Identity) error {
	r.Lock()
	defer r.Unlock()

	return r.done("transferOwnership", caller, r.transferOwnership(caller, id, newOwner))
}

func (r *Registry) transferOwnership(caller account.Identity, id asset.Identifier, newOwner account.Identity) error {
	record, err := r.fetchOwned(caller, id)
	if nil != err {
		return err
	}

	record.Owner = newOwner
	if err := r.store(id, record); nil != err {
		return err
	}
	r.log.Infof("transfer: asset: %s  from: %q  to: %q", id, caller, newOwner)
	return nil
}

// GetAnalytics - age, size and label count of an asset
func (r *Registry) GetAnalytics(caller account.Identity, id asset.Identifier) (*Analytics, error) {
	r.Lock()
	defer r.Unlock()

	result, err := r.getAnalytics(caller, id)
	return result, r.done("getAnalytics", caller, err)
}

func (r *Registry) getAnalytics(caller account.Identity, id asset.Identifier) (*Analytics, error) {
	_, record, err := r.fetch(id)
	if nil != err {
		return nil, err
	}
	if !ownership.CanRead(r.subject(caller, id, record)) {
		return nil, fault.InsufficientPermissions
	}

	return &Analytics{
		Age:        record.Age(r.clock.Height()),
		Size:       record.Size,
		LabelCount: len(record.Labels),
	}, nil
}

// Lockdown - owner or administrator request to freeze an asset
//
// the request is checked and logged but does not change the asset
func (r *Registry) Lockdown(caller account.Identity, id asset.Identifier) error {
	r.Lock()
	defer r.Unlock()

	return r.done("lockdown", caller, r.lockdown(caller, id))
}

func (r *Registry) lockdown(caller account.Identity, id asset.Identifier) error {
	_, record, err := r.fetch(id)
	if nil != err {
		return err
	}
	if !ownership.CanLockdown(r.subject(caller, id, record)) {
		return fault.UnauthorizedOperation
	}
	r.log.Warnf("lockdown: asset: %s  caller: %q  not applied", id, caller)
	return nil
}

// VerifyIntegrity - compare the stored owner with expectedOwner
//
// a mismatch is reported in the result, not as an error
func (r *Registry) VerifyIntegrity(caller account.Identity, id asset.Identifier, expectedOwner account.Identity) (*Integrity, error) {
	r.Lock()
	defer r.Unlock()

	result, err := r.verifyIntegrity(caller, id, expectedOwner)
	return result, r.done("verifyIntegrity", caller, err)
}

func (r *Registry) verifyIntegrity(caller account.Identity, id asset.Identifier, expectedOwner account.Identity) (*Integrity, error) {
	packed, record, err := r.fetch(id)
	if nil != err {
		return nil, err
	}
	if !ownership.CanRead(r.subject(caller, id, record)) {
		return nil, fault.InsufficientPermissions
	}

	height := r.clock.Height()
	return &Integrity{
		Match:  record.Owner == expectedOwner,
		Height: height,
		Age:    record.Age(height),
		Digest: packed.Digest(),
	}, nil
}

// Diagnostics - registry state for the administrator
func (r *Registry) Diagnostics(caller account.Identity) (*Diagnostics, error) {
	r.Lock()
	defer r.Unlock()

	s := ownership.Subject{
		Caller:        caller,
		Administrator: r.administrator,
	}
	if !ownership.CanDiagnose(s) {
		return nil, r.done("diagnostics", caller, fault.UnauthorizedOperation)
	}

	result := &Diagnostics{
		TotalAssets: r.allocator.Uint64(),
		Operational: true,
		Height:      r.clock.Height(),
	}
	return result, r.done("diagnostics", caller, nil)
}

// Delete - remove an asset record
//
// grant rows of the asset are not removed
func (r *Registry) Delete(caller account.Identity, id asset.Identifier) error {
	r.Lock()
	defer r.Unlock()

	return r.done("delete", caller, r.delete(caller, id))
}

func (r *Registry) delete(caller account.Identity, id asset.Identifier) error {
	if _, err := r.fetchOwned(caller, id); nil != err {
		return err
	}

	err := r.commit(func(trx storage.Transaction) {
		trx.Delete(r.database.Pool.Assets, id.Bytes())
	})
	if nil != err {
		return err
	}
	r.log.Infof("delete: asset: %s", id)
	return nil
}

// AugmentMetadata - append labels to an asset
func (r *Registry) AugmentMetadata(caller account.Identity, id asset.Identifier, extra []string) error {
	r.Lock()
	defer r.Unlock()

	return r.done("augmentMetadata", caller, r.appendLabels(caller, id, extra))
}

// MarkHistorical - append the historical label to an asset
func (r *Registry) MarkHistorical(caller account.Identity, id asset.Identifier) error {
	r.Lock()
	defer r.Unlock()

	return r.done("markHistorical", caller, r.appendLabels(caller, id, []string{asset.HistoricalLabel}))
}

func (r *Registry) appendLabels(caller account.Identity, id asset.Identifier, extra []string) error {
	record, err := r.fetchOwned(caller, id)
	if nil != err {
		return err
	}

	labels, err := asset.AppendLabels(record.Labels, extra)
	if nil != err {
		return err
	}
	if 0 == len(extra) {
		return nil
	}

	record.Labels = labels
	if err := r.store(id, record); nil != err {
		return err
	}
	r.log.Infof("labels: asset: %s  added: %q", id, extra)
	return nil
}
