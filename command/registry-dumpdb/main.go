// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"reflect"
	"strconv"

	"github.com/bitmark-inc/assetregistry/configuration"
	"github.com/bitmark-inc/assetregistry/fault"
	"github.com/bitmark-inc/assetregistry/storage"
	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// log file name, kept apart from the registry's own log
const logFile = "registry-dumpdb.log"

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "list", HasArg: getoptions.NO_ARGUMENT, Short: 'l'},
		{Long: "file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'f'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "count", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'n'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["list"]) > 0 {

		// this will be a struct type
		poolType := reflect.TypeOf(storage.Pools{})

		// print all available tags
		fmt.Printf(" tags:\n")
		for i := 0; i < poolType.NumField(); i += 1 {
			fieldInfo := poolType.Field(i)
			prefixTag := fieldInfo.Tag.Get("prefix")
			fmt.Printf("       %s → %s\n", prefixTag, fieldInfo.Name)
		}
		return
	}

	sources := len(options["file"]) + len(options["config-file"])
	if len(options["help"]) > 0 || 0 == len(arguments) || 1 != sources {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--count=N] (--file=FILE | --config-file=FILE) tag [start-id] | --list", program)
	}

	verbose := len(options["verbose"]) > 0

	count := 10
	if len(options["count"]) > 0 {
		count, err = strconv.Atoi(options["count"][0])
		if nil != err {
			exitwithstatus.Message("%s: convert count error: %s", program, err)
		}
		if count < 1 {
			exitwithstatus.Message("%s: invalid count: %d", program, count)
		}
	}

	filename := ""
	var c *configuration.Configuration
	if len(options["file"]) > 0 {
		filename = options["file"][0]
	} else {
		c, err = configuration.Get(options["config-file"][0])
		if nil != err {
			exitwithstatus.Message("%s: configuration error: %s", program, err)
		}
		filename = c.DatabaseFile()
	}

	logging := logConfiguration(c)
	if err := os.MkdirAll(logging.Directory, 0700); nil != err {
		exitwithstatus.Message("%s: log directory error: %s", program, err)
	}

	tag := arguments[0]
	if verbose {
		fmt.Printf("read tag: %s from file: %q\n", tag, filename)
	}

	start := uint64(0)
	if len(arguments) > 1 {
		start, err = strconv.ParseUint(arguments[1], 10, 64)
		if nil != err {
			exitwithstatus.Message("%s: convert start error: %s", program, err)
		}
	}

	// start logging
	if err = logger.Initialise(logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// start of main processing
	db, err := storage.Open(filename, storage.ReadOnly)
	if nil != err {
		exitwithstatus.Message("%s: storage setup failed with error: %s", program, err)
	}
	defer db.Close()

	if verbose {
		fmt.Printf("database version: %d  read only: %t\n", db.Version(), db.IsReadOnly())
	}

	if err := dump(os.Stdout, db, tag, start, count); nil != err {
		exitwithstatus.Message("%s: dump error: %s", program, err)
	}
}

// logging settings: from the configuration file when one is given,
// always writing to logFile
func logConfiguration(c *configuration.Configuration) logger.Configuration {
	if nil != c {
		logging := c.Logging
		logging.File = logFile
		return logging
	}
	return logger.Configuration{
		Directory: ".",
		File:      logFile,
		Size:      1048576,
		Count:     10,
		Console:   true,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
}
