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

// Package serializer provides encoding and decoding of configuration documents
// in multiple formats.
//
// # Supported Formats
//
// YAML:
//   - Human-readable with preserved structure
//   - The native format of configuration files
//   - gopkg.in/yaml.v3 package
//
// JSON:
//   - Accepted as input, since every JSON object is also a valid document
//   - Standard encoding/json package for output
//
// Table:
//   - Flattened dotted keys, one row per value
//   - Suitable for terminal viewing
//   - Write-only (no deserialization support)
//
// # Usage - Decoding
//
// Read a configuration file, detecting the format from its extension or,
// failing that, from its content:
//
//	reader, err := serializer.NewFileReaderAuto("/etc/app/conf.yaml")
//	if err != nil {
//	    return err
//	}
//	defer reader.Close()
//
//	var doc map[string]any
//	if err := reader.Deserialize(&doc); err != nil {
//	    return err
//	}
//
// # Usage - Encoding
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, "")
//	defer w.Close()
//	if err := w.Serialize(ctx, doc); err != nil {
//	    return err
//	}
package serializer
