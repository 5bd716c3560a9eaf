// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asset

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"cogentcore.org/core/base/iox/jsonx"
	"cogentcore.org/core/base/iox/tomlx"
	"cogentcore.org/core/base/iox/yamlx"
	"github.com/mitchellh/go-homedir"
)

// Openers are the functions used to read each supported file
// type, keyed by lower case extension.
var Openers = map[string]func(v any, filename string) error{
	".toml": tomlx.Open,
	".yaml": yamlx.Open,
	".yml":  yamlx.Open,
	".json": jsonx.Open,
}

// OpenFile reads v from the given file, using the [Openers] entry
// for its extension. A leading ~ is expanded to the home directory.
// An empty file leaves v unchanged.
func OpenFile(v any, filename string) error {
	open, ok := Openers[strings.ToLower(filepath.Ext(filename))]
	if !ok {
		return fmt.Errorf("asset: unsupported file type %q", filename)
	}
	fn, err := homedir.Expand(filename)
	if err != nil {
		return err
	}
	err = open(v, fn)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("asset: reading %s: %w", fn, err)
	}
	return nil
}

// AbsPath returns the absolute path for filename,
// expanding a leading ~ to the home directory.
func AbsPath(filename string) (string, error) {
	fn, err := homedir.Expand(filename)
	if err != nil {
		return "", err
	}
	return filepath.Abs(fn)
}
