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

// Package header provides the envelope placed around documents emitted by the
// multiconf CLI.
//
// The Header follows Kubernetes-style resource conventions:
//
//	kind: Configuration
//	apiVersion: multiconf.nvidia.com/v1alpha1
//	metadata:
//	  timestamp: "2025-01-15T10:30:00Z"
//	  version: v1.0.0
//	  source: /etc/app/conf.yaml
//
// New stamps the timestamp and APIVersion; options fill in the rest:
//
//	h := header.New(
//	    header.WithKind(header.KindConfiguration),
//	    header.WithVersion(version),
//	    header.WithMetadata("source", path),
//	)
package header
