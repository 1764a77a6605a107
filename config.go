// Tencent is pleased to support the open source community by making tRPC available.
// Copyright (C) 2023 THL A29 Limited, a Tencent company. All rights reserved.
// If you have downloaded a copy of the tRPC source code from Tencent,
// please note that tRPC source code is licensed under the Apache 2.0 License that can be found in the LICENSE file.

package xmlbody

import (
	"fmt"
	"mime"
	"os"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"trpc.group/trpc-go/xmlbody/errs"
)

// DefaultLimit is the max body size accepted when no limit is configured,
// 256kB, matching the sibling body extractors of the host ecosystem.
const DefaultLimit = 262_144

// Config carries the per-route extraction settings. A Config is built once at
// application setup and never mutated afterwards, so it may be shared across
// concurrent extractions without synchronization.
type Config struct {
	// Limit is the max accepted body size in bytes after decompression.
	Limit int
	// ContentType optionally accepts media types beyond the built-in set.
	// It receives the media type stripped of its parameters.
	ContentType func(mediaType string) bool
}

// Option sets extraction config options.
type Option func(*Config)

// WithLimit changes the max size of the body. By default max size is 256kB.
func WithLimit(limit int) Option {
	return func(cfg *Config) {
		cfg.Limit = limit
	}
}

// WithContentType sets a predicate for additionally allowed content types.
func WithContentType(accept func(mediaType string) bool) Option {
	return func(cfg *Config) {
		cfg.ContentType = accept
	}
}

// NewConfig creates a Config from opts on top of the defaults.
func NewConfig(opts ...Option) *Config {
	cfg := &Config{Limit: DefaultLimit}
	for _, o := range opts {
		o(cfg)
	}
	return cfg
}

// fileConfig is the yaml form of Config.
type fileConfig struct {
	Limit        int      `yaml:"limit"`
	ContentTypes []string `yaml:"content_types"`
}

// LoadConfig reads a Config from a yaml file. A zero or absent limit falls
// back to DefaultLimit; content_types, when present, become the ContentType
// predicate. Validation problems are accumulated and reported together.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrapf(err, errs.CodeConfigInvalid, "read config file %s", path)
	}
	return parseConfig(data)
}

func parseConfig(data []byte) (*Config, error) {
	fc := &fileConfig{}
	if err := yaml.Unmarshal(data, fc); err != nil {
		return nil, errs.Wrap(err, errs.CodeConfigInvalid, "parse config")
	}

	var verr *multierror.Error
	if fc.Limit < 0 {
		verr = multierror.Append(verr, fmt.Errorf("limit must not be negative, got %d", fc.Limit))
	}
	accepted := make(map[string]struct{}, len(fc.ContentTypes))
	for _, ct := range fc.ContentTypes {
		mediaType, _, err := mime.ParseMediaType(ct)
		if err != nil {
			verr = multierror.Append(verr, fmt.Errorf("invalid content type %q: %w", ct, err))
			continue
		}
		accepted[mediaType] = struct{}{}
	}
	if err := verr.ErrorOrNil(); err != nil {
		return nil, errs.Wrap(err, errs.CodeConfigInvalid, "validate config")
	}

	cfg := &Config{Limit: fc.Limit}
	if cfg.Limit == 0 {
		cfg.Limit = DefaultLimit
	}
	if len(accepted) > 0 {
		cfg.ContentType = func(mediaType string) bool {
			_, ok := accepted[mediaType]
			return ok
		}
	}
	return cfg, nil
}
