// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

const AppName = "candlechart"
const configFileName = "chartconfig.yaml"
const configFileVersion = 1

// StoredConfig persists a ChartConfig as a yaml file in the user
// configuration directory.
type StoredConfig struct {
	dir              string
	loaded           bool
	version          VersionConfig
	chartConfig      ChartConfig
	chartConfigMutex sync.Mutex
}

type VersionConfig struct {
	FileVersion int
}

func NewStoredConfig() *StoredConfig {
	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		// We do not want to run on operating systems without config dir.
		// This is considered to be a fatal error.
		log.Fatalf("unable to determine configuration path: %v", err)
	}
	return NewStoredConfigAt(filepath.Join(userConfigDir, AppName))
}

// NewStoredConfigAt uses an explicit configuration directory.
func NewStoredConfigAt(dir string) *StoredConfig {
	return &StoredConfig{
		dir: dir,
		version: VersionConfig{
			FileVersion: configFileVersion,
		},
		chartConfig: NewChartConfig(),
	}
}

// Locks access to the configuration and returns a copy which can be modified.
// Unlock needs to be called afterwards, if no error was returned.
func (g *StoredConfig) Lock() (*ChartConfig, error) {
	g.chartConfigMutex.Lock()
	if !g.loaded {
		err := g.read()
		if err != nil {
			g.chartConfigMutex.Unlock()
			return nil, err
		}
	}
	chartConfigCopy := g.chartConfig.deepCopy()
	return &chartConfigCopy, nil
}

// Update the configuration and unlock access.
// If the configuration was changed, the configuration will be written before unlocking.
func (g *StoredConfig) Unlock(c *ChartConfig) error {
	var err error
	if !cmp.Equal(g.chartConfig, *c) {
		g.chartConfig = *c
		err = g.write()
	}
	g.chartConfigMutex.Unlock()
	return err
}

func (g *StoredConfig) Copy() (ChartConfig, error) {
	g.chartConfigMutex.Lock()
	defer g.chartConfigMutex.Unlock()
	if !g.loaded {
		err := g.read()
		if err != nil {
			return ChartConfig{}, err
		}
	}
	return g.chartConfig.deepCopy(), nil
}

func (g *StoredConfig) read() error {
	fileName := filepath.Join(g.dir, configFileName)
	if _, err := os.Stat(fileName); os.IsNotExist(err) {
		// It is fine if the configuration file does not yet exist.
		g.loaded = true
		return nil
	}
	file, err := os.ReadFile(fileName)
	if err != nil {
		return fmt.Errorf("failed to read configuration file: %v", err)
	}
	err = yaml.Unmarshal(file, &g.version)
	if err != nil {
		return fmt.Errorf("failed to parse configuration version: %v", err)
	}
	// Avoid removing new unknown settings if an old release is started with a newer config file.
	if g.version.FileVersion > configFileVersion {
		return fmt.Errorf(
			"invalid configuration file version %d instead of %d, probably from a newer release",
			g.version.FileVersion,
			configFileVersion)
	}
	err = yaml.Unmarshal(file, &g.chartConfig)
	if err != nil {
		return fmt.Errorf("failed to parse chart configuration: %v", err)
	}
	g.chartConfig.Sanitize()
	g.loaded = true
	return nil
}

func (g *StoredConfig) write() error {
	err := os.MkdirAll(g.dir, 0700)
	if err != nil {
		return fmt.Errorf("failed to create configuration directory: %v", err)
	}
	g.chartConfig.Sanitize()
	fileVersion, err := yaml.Marshal(&g.version)
	if err != nil {
		return fmt.Errorf("error generating configuration version: %v", err)
	}
	fileChartConfig, err := yaml.Marshal(&g.chartConfig)
	if err != nil {
		return fmt.Errorf("error generating chart configuration: %v", err)
	}

	file := append(fileVersion, fileChartConfig...)
	fileName := filepath.Join(g.dir, configFileName)
	tmpFileName := fileName + ".tmp"
	// Writing may fail, so we write to a temporary file and replace afterwards.
	err = os.WriteFile(tmpFileName, file, 0600)
	if err != nil {
		return fmt.Errorf("failed to write configuration file: %v", err)
	}
	err = os.Rename(tmpFileName, fileName)
	if err != nil {
		return fmt.Errorf("failed to replace configuration file: %v", err)
	}
	return nil
}
