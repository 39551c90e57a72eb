// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/assetsettle/fault"
	"github.com/bitmark-inc/assetsettle/fill"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLevelDBDirectory = "data"
	defaultDatabase         = "assets.leveldb"

	defaultWatchDirectory = "incoming"

	defaultLogDirectory = "log"
	defaultLogFile      = "asset-validator.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - location of the transaction store
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// ContractType - asset contract parameters
type ContractType struct {
	UnspendableKey string `gluamapper:"unspendable_key" json:"unspendable_key"`
}

// Key - the escrow key, nil selects the built in default
func (c ContractType) Key() (ed25519.PublicKey, error) {
	if "" == c.UnspendableKey {
		return nil, nil
	}
	b, err := hex.DecodeString(c.UnspendableKey)
	if nil != err {
		return nil, err
	}
	if ed25519.PublicKeySize != len(b) {
		return nil, fault.ErrInvalidKeyLength
	}
	return ed25519.PublicKey(b), nil
}

// Configuration - the whole asset-validator setup
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Database      DatabaseType         `gluamapper:"database" json:"database"`
	Watch         string               `gluamapper:"watch" json:"watch"`
	Contract      ContractType         `gluamapper:"contract" json:"contract"`
	Pricing       string               `gluamapper:"pricing" json:"pricing"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// PricingMode - the decoded pricing setting
func (c *Configuration) PricingMode() fill.Mode {
	mode, _ := fill.ModeFromString(c.Pricing)
	return mode
}

// Get - will read decode and verify the configuration
//
// relative paths are resolved against the data directory, and the
// database and log directories are created
func Get(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	if !isRegularFile(configurationFileName) {
		return nil, fault.ErrNotFoundConfigFile
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultDatabase,
		},

		Watch:   defaultWatchDirectory,
		Pricing: fill.Integer.String(),

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    make(LoglevelMap),
		},
	}
	for tag, level := range defaultLogLevels {
		options.Logging.Levels[tag] = level
	}

	if err := ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	options.Pricing = strings.ToLower(options.Pricing)
	if _, err := fill.ModeFromString(options.Pricing); nil != err {
		return nil, fmt.Errorf("pricing: %q  error: %s", options.Pricing, err)
	}

	if _, err := options.Contract.Key(); nil != err {
		return nil, fmt.Errorf("unspendable key: %q  error: %s", options.Contract.UnspendableKey, err)
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fault.ErrInvalidDataDirectory
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fault.ErrInvalidDataDirectory
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path seperator, then add the correct directory
	// prefix, file item is first and corresponding directory is
	// second (or nil if no prefix can be added)
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, nil},
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f[0]) {
		case "", ".":
			if nil != f[1] {
				*f[1] = underDirectory(options.DataDirectory, *f[1])
				*f[0] = underDirectory(*f[1], *f[0])
			}
		default:
			return nil, fault.ErrInvalidFileName
		}
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
		&options.Watch,
		&options.Logging.Directory,
	} {
		*d = underDirectory(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}
