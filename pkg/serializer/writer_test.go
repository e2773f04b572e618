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

package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestWriter_SerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatJSON, &buf)

	require.NoError(t, w.Serialize(context.Background(), testConfig{Name: "a", Value: 1}))

	var got testConfig
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, testConfig{Name: "a", Value: 1}, got)
}

func TestWriter_SerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatYAML, &buf)

	require.NoError(t, w.Serialize(context.Background(), map[string]any{"db": map[string]any{"port": 5432}}))

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 5432, got["db"].(map[string]any)["port"])
}

func TestWriter_SerializeTable(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)

	doc := map[string]any{
		"db":    map[string]any{"host": "localhost"},
		"hosts": []any{"a", "b"},
	}
	require.NoError(t, w.Serialize(context.Background(), doc))

	out := buf.String()
	assert.Contains(t, out, "KEY")
	assert.Contains(t, out, "db.host")
	assert.Contains(t, out, "localhost")
	assert.Contains(t, out, "hosts[0]")
	assert.Contains(t, out, "hosts[1]")
}

func TestWriter_SerializeTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)

	require.NoError(t, w.Serialize(context.Background(), map[string]any{}))
	assert.Equal(t, "<empty>", strings.TrimSpace(buf.String()))
}

func TestWriter_SerializeTableUsesYAMLTags(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)

	require.NoError(t, w.Serialize(context.Background(), testConfig{Name: "n", Value: 2}))
	assert.Contains(t, buf.String(), "name")
	assert.NotContains(t, buf.String(), "Name")
}

func TestWriter_SerializeTableTimestamp(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)

	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, w.Serialize(context.Background(), map[string]any{"at": at}))
	assert.Contains(t, buf.String(), "2024-05-01 12:00:00")
}

func TestWriter_UnknownFormatDefaultsToYAML(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(Format("xml"), &buf)

	require.NoError(t, w.Serialize(context.Background(), map[string]string{"k": "v"}))
	assert.Equal(t, "k: v", strings.TrimSpace(buf.String()))
}

func TestWriter_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	w := NewWriter(FormatYAML, &buf)
	assert.ErrorIs(t, w.Serialize(ctx, "x"), context.Canceled)
	assert.Zero(t, buf.Len())
}

func TestNewFileWriterOrStdout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	w := NewFileWriterOrStdout(FormatJSON, path)
	require.NoError(t, w.Serialize(context.Background(), map[string]int{"n": 1}))
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"n":1}`, string(data))

	stdout := NewFileWriterOrStdout(FormatYAML, "  ")
	assert.Equal(t, os.Stdout, stdout.output)
	assert.NoError(t, stdout.Close())
}

type InlineHeader struct {
	Kind string `yaml:"kind"`
}

type inlineOuter struct {
	InlineHeader `yaml:",inline"`

	Body string `yaml:"body"`
}

func TestWriter_SerializeTableInline(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)

	require.NoError(t, w.Serialize(context.Background(), inlineOuter{InlineHeader: InlineHeader{Kind: "Configuration"}, Body: "b"}))
	out := buf.String()
	assert.Contains(t, out, "kind")
	assert.Contains(t, out, "body")
	assert.NotContains(t, out, "InlineHeader")
}
