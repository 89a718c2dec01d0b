// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// yamlConfig is a [kong.ConfigurationLoader] for YAML config files.
// Nested mappings flatten with hyphens, so
//
//	log:
//	  level: debug
//	trace: true
//
// satisfies --log-level and --trace. Command-line flags override
// config file values.
func yamlConfig(r io.Reader) (kong.Resolver, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	values := make(flagValues)
	flatten("", doc, values)
	return values, nil
}

// flagValues implements [kong.Resolver] over a flattened document.
type flagValues map[string]any

// Validate implements [kong.Resolver].
func (f flagValues) Validate(*kong.Application) error { return nil }

// Resolve implements [kong.Resolver]. Keys may use underscores in
// place of the hyphens in flag names.
func (f flagValues) Resolve(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
	if v, ok := f[flag.Name]; ok {
		return v, nil
	}
	if v, ok := f[strings.ReplaceAll(flag.Name, "-", "_")]; ok {
		return v, nil
	}
	return nil, nil
}

// flatten joins nested keys with hyphens. Numbers become strings,
// which is the form kong feeds through its flag decoders.
func flatten(prefix string, in map[string]any, out flagValues) {
	for k, v := range in {
		key := k
		if prefix != "" {
			key = prefix + "-" + k
		}
		switch t := v.(type) {
		case map[string]any:
			flatten(key, t, out)
		case int:
			out[key] = strconv.Itoa(t)
		case int64:
			out[key] = strconv.FormatInt(t, 10)
		case uint64:
			out[key] = strconv.FormatUint(t, 10)
		case float64:
			out[key] = strconv.FormatFloat(t, 'f', -1, 64)
		default:
			out[key] = v
		}
	}
}
