// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
)

// Source is a key-value environment the configuration is read from. It may
// be partial; missing required keys are reported by validation.
type Source map[string]string

// FromEnviron builds a Source from "KEY=value" pairs as returned by
// os.Environ.
func FromEnviron(environ []string) Source {
	src := make(Source, len(environ))
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		src[key] = value
	}

	return src
}

// FromDotEnv reads the dotenv file at path and returns a new Source holding
// base plus every key from the file that base does not already define. Real
// environment values always win over the file.
//
// A missing file is not an error: base is returned unchanged.
func FromDotEnv(path string, base Source) (Source, error) {
	merged := make(Source, len(base))
	for k, v := range base {
		merged[k] = v
	}

	if path == "" {
		return merged, nil
	}

	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return merged, nil
		}
		return nil, fmt.Errorf("error reading dotenv file %q: %w", path, err)
	}

	for k, v := range values {
		if _, ok := merged[k]; !ok {
			merged[k] = v
		}
	}

	return merged, nil
}
