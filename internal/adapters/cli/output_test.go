// SPDX-FileCopyrightText: 2026 The Hearth Authors
// SPDX-License-Identifier: EUPL-1.2

package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultTextFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	adapter := NewOutputAdapterWithWriter(&buf, TextFormat, false)
	require.NoError(t, adapter.Result("terminal"))

	assert.Equal(t, "terminal\n", buf.String())
}

func TestResultJSONFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	adapter := NewOutputAdapterWithWriter(&buf, JSONFormat, false)
	require.NoError(t, adapter.Result(map[string]any{"id": "terminal", "count": 3}))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "terminal", decoded["id"])
}

func TestResultJSONIgnoresQuiet(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	adapter := NewOutputAdapterWithWriter(&buf, JSONFormat, true)
	require.NoError(t, adapter.Result([]string{"a"}))

	assert.NotEmpty(t, buf.String(), "JSON results are data, not chatter")
}

func TestQuietSuppressesTextOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	adapter := NewOutputAdapterWithWriter(&buf, TextFormat, true)
	require.NoError(t, adapter.Result("terminal"))
	require.NoError(t, adapter.Info("working"))
	require.NoError(t, adapter.Error("boom"))

	assert.Empty(t, buf.String())
}

func TestErrorFormats(t *testing.T) {
	t.Parallel()

	var text bytes.Buffer

	adapter := NewOutputAdapterWithWriter(&text, TextFormat, false)
	require.NoError(t, adapter.Error("not found"))
	assert.Equal(t, "Error: not found\n", text.String())

	var jsonBuf bytes.Buffer

	adapter = NewOutputAdapterWithWriter(&jsonBuf, JSONFormat, false)
	require.NoError(t, adapter.Error("not found"))
	assert.Contains(t, jsonBuf.String(), `"error": "not found"`)
}

func TestTableTextFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	adapter := NewOutputAdapterWithWriter(&buf, TextFormat, false)
	require.NoError(t, adapter.Table(
		[]string{"ID", "Name"},
		[][]string{{"terminal", "Terminal"}, {"files", "Files"}},
	))

	output := buf.String()
	assert.Contains(t, output, "ID")
	assert.Contains(t, output, "terminal")
	assert.Contains(t, output, "files")
}

func TestParseOutputFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected OutputFormat
		wantErr  bool
	}{
		{input: "", expected: TextFormat},
		{input: "text", expected: TextFormat},
		{input: "json", expected: JSONFormat},
		{input: "JSON", expected: JSONFormat},
		{input: "yaml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("format "+tt.input, func(t *testing.T) {
			t.Parallel()

			format, err := ParseOutputFormat(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnsupportedFormat)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, format)
		})
	}
}
