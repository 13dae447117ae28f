// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"
)

const (
	defaultHTTPAddress    = "localhost:8080"
	defaultRequestTimeout = 30 * time.Second
	defaultBlobDir        = "./media"
	defaultUsersTable     = "users"
	defaultRegion         = "us-east-1"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	config.applyLegacy()
	config.applyDefaults()

	return config, config.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flags := ParseFlags()

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string

	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath != "" {
		jsonCfg, err := parseJSON(jsonPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, jsonCfg)
	}

	return b
}

// applyLegacy fills prefixed settings from the unprefixed variables when the
// prefixed ones are empty.
func (cfg *StructuredConfig) applyLegacy() {
	if cfg.Storage.DynamoDB.CardsTable == "" {
		cfg.Storage.DynamoDB.CardsTable = cfg.Legacy.DynamoDBTable
	}
	if cfg.Storage.Region == "" {
		cfg.Storage.Region = cfg.Legacy.AWSRegion
	}
	if cfg.Storage.S3.Bucket == "" {
		cfg.Storage.S3.Bucket = cfg.Legacy.S3Bucket
	}
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.PasswordHasher == "" {
		cfg.App.PasswordHasher = HasherSHA256
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.App.PublicBaseURL == "" {
		cfg.App.PublicBaseURL = "http://" + cfg.Server.HTTPAddress
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = DriverMemory
	}
	if cfg.Storage.BlobDriver == "" {
		cfg.Storage.BlobDriver = BlobDriverFile
	}
	if cfg.Storage.Files.BlobDir == "" {
		cfg.Storage.Files.BlobDir = defaultBlobDir
	}
	if cfg.Storage.DynamoDB.UsersTable == "" {
		cfg.Storage.DynamoDB.UsersTable = defaultUsersTable
	}
	if cfg.Storage.Region == "" {
		cfg.Storage.Region = defaultRegion
	}
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = cfg.Server.HTTPAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultRequestTimeout
	}
}
