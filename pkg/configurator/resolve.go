// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package configurator

import (
	"fmt"
	"strconv"
	"strings"

	mcerrors "github.com/NVIDIA/multiconf/pkg/errors"
)

// splitKeyPath turns "a.b[0].c" into ["a", "b", "0", "c"].
func splitKeyPath(keyPath string) []string {
	normalized := strings.NewReplacer("[", ".", "]", "").Replace(keyPath)
	parts := strings.Split(normalized, ".")

	segments := parts[:0]
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}

// lookupKeyPath walks doc along keyPath. Map levels are indexed by key and
// list levels by integer position. An empty path returns doc itself.
func lookupKeyPath(doc any, keyPath string) (any, error) {
	current := doc
	walked := make([]string, 0)

	for _, segment := range splitKeyPath(keyPath) {
		walked = append(walked, segment)

		switch node := current.(type) {
		case map[string]any:
			next, ok := node[segment]
			if !ok {
				return nil, keyNotFound(keyPath, walked)
			}
			current = next
		case map[any]any:
			next, ok := lookupAnyKey(node, segment)
			if !ok {
				return nil, keyNotFound(keyPath, walked)
			}
			current = next
		case []any:
			index, err := strconv.Atoi(segment)
			if err != nil || index < 0 || index >= len(node) {
				return nil, keyNotFound(keyPath, walked)
			}
			current = node[index]
		default:
			return nil, keyNotFound(keyPath, walked)
		}
	}

	return current, nil
}

// lookupAnyKey matches segment against the text form of each key.
func lookupAnyKey(node map[any]any, segment string) (any, bool) {
	for k, v := range node {
		if fmt.Sprint(k) == segment {
			return v, true
		}
	}
	return nil, false
}

func keyNotFound(keyPath string, walked []string) error {
	return mcerrors.NewWithContext(mcerrors.ErrCodeNotFound,
		fmt.Sprintf("configuration key %q not found", keyPath),
		map[string]any{
			"key":     keyPath,
			"missing": strings.Join(walked, "."),
		})
}
