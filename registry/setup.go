// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/bitmark-inc/assetregistry/blockheader"
	"github.com/bitmark-inc/assetregistry/configuration"
	"github.com/bitmark-inc/assetregistry/fault"
	"github.com/bitmark-inc/assetregistry/storage"
	"github.com/bitmark-inc/logger"
)

// Instance - a registry together with the resources it was built on
type Instance struct {
	*Registry

	Database *storage.Database
	Header   *blockheader.Header
}

// Initialise - start logging, open the configured database and start a
// registry on it
//
// the clock starts at the configured genesis height; logging must not
// already be initialised
func Initialise(c *configuration.Configuration, registerer prometheus.Registerer) (*Instance, error) {
	if err := os.MkdirAll(c.Logging.Directory, 0700); nil != err {
		return nil, err
	}
	if err := logger.Initialise(c.Logging); nil != err {
		return nil, err
	}
	if err := fault.Initialise(); nil != err {
		logger.Finalise()
		return nil, err
	}

	instance, err := start(c, registerer)
	if nil != err {
		fault.Finalise()
		logger.Finalise()
		return nil, err
	}
	return instance, nil
}

func start(c *configuration.Configuration, registerer prometheus.Registerer) (*Instance, error) {
	log := logger.New("main")
	log.Info("starting…")

	if err := os.MkdirAll(c.Database.Directory, 0700); nil != err {
		return nil, err
	}

	db, err := storage.Open(c.DatabaseFile(), storage.ReadWrite)
	if nil != err {
		log.Criticalf("open database: %q  error: %s", c.DatabaseFile(), err)
		return nil, err
	}

	metrics, err := NewMetrics(registerer)
	if nil != err {
		db.Close()
		return nil, err
	}

	header := blockheader.New(c.GenesisHeight)

	r, err := New(db, header, c.AdministratorIdentity(), metrics)
	if nil != err {
		db.Close()
		return nil, err
	}

	return &Instance{
		Registry: r,
		Database: db,
		Header:   header,
	}, nil
}

// Finalise - close the database then stop logging
func (i *Instance) Finalise() {
	i.Lock()
	defer i.Unlock()

	i.log.Info("shutting down…")
	i.Database.Close()

	fault.Finalise()
	logger.Finalise()
}
