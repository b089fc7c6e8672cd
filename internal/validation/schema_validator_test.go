package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const instrumentSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"symbol": {"type": "string", "pattern": "^[A-Z0-9.]{1,20}$"},
		"kind": {"type": "string", "enum": ["crypto", "stock"]},
		"lot": {"type": "number", "exclusiveMinimum": 0}
	},
	"required": ["symbol", "kind"]
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSchemaValidator_ValidateFile(t *testing.T) {
	validator := NewSchemaValidator()
	tmpDir := t.TempDir()
	schemaPath := writeFile(t, tmpDir, "instrument.schema.json", instrumentSchema)

	tests := []struct {
		name     string
		data     string
		errorMsg string
	}{
		{name: "valid data", data: `{"symbol": "BTC", "kind": "crypto", "lot": 0.01}`},
		{name: "valid without optional field", data: `{"symbol": "AAPL", "kind": "stock"}`},
		{name: "missing required field", data: `{"symbol": "AAPL"}`, errorMsg: "required"},
		{name: "wrong type", data: `{"symbol": 7, "kind": "stock"}`, errorMsg: "/symbol"},
		{name: "enum violation", data: `{"symbol": "F", "kind": "bond"}`, errorMsg: "/kind"},
		{name: "pattern violation", data: `{"symbol": "btc usd", "kind": "crypto"}`, errorMsg: "pattern"},
		{name: "constraint violation", data: `{"symbol": "F", "kind": "stock", "lot": 0}`, errorMsg: "/lot"},
		{name: "invalid JSON", data: `{"symbol": }`, errorMsg: "parse JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dataPath := writeFile(t, tmpDir, "data.json", tt.data)
			err := validator.ValidateFile(dataPath, schemaPath)

			if tt.errorMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_MissingFiles(t *testing.T) {
	validator := NewSchemaValidator()
	tmpDir := t.TempDir()
	dataPath := writeFile(t, tmpDir, "data.json", `{}`)
	schemaPath := writeFile(t, tmpDir, "s.schema.json", `{"type": "object"}`)

	err := validator.ValidateFile(dataPath, "nonexistent.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load schema")

	err = validator.ValidateFile(filepath.Join(tmpDir, "nope.json"), schemaPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read data file")
}

func TestSchemaValidator_CachesCompiledSchemas(t *testing.T) {
	v := NewSchemaValidator().(*validator)
	schemaPath := writeFile(t, t.TempDir(), "s.schema.json", `{"type": "object"}`)

	require.NoError(t, v.ValidateBytes([]byte(`{"a": 1}`), schemaPath))
	require.NoError(t, v.ValidateBytes([]byte(`{"b": 2}`), schemaPath))
	assert.Len(t, v.schemas, 1)
}

func TestDecodeFile(t *testing.T) {
	tmpDir := t.TempDir()
	schemaPath := writeFile(t, tmpDir, "instrument.schema.json", instrumentSchema)

	type instrument struct {
		Symbol string  `json:"symbol"`
		Kind   string  `json:"kind"`
		Lot    float64 `json:"lot"`
	}

	var got instrument
	dataPath := writeFile(t, tmpDir, "ok.json", `{"symbol": "ETH", "kind": "crypto", "lot": 0.01}`)
	require.NoError(t, DecodeFile(NewSchemaValidator(), dataPath, schemaPath, &got))
	assert.Equal(t, instrument{Symbol: "ETH", Kind: "crypto", Lot: 0.01}, got)

	// The schema tolerates extra fields but the decoder does not
	dataPath = writeFile(t, tmpDir, "extra.json", `{"symbol": "ETH", "kind": "crypto", "colour": "blue"}`)
	err := DecodeFile(NewSchemaValidator(), dataPath, schemaPath, &got)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "colour")

	dataPath = writeFile(t, tmpDir, "bad.json", `{"kind": "crypto"}`)
	err = DecodeFile(NewSchemaValidator(), dataPath, schemaPath, &got)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation failed")
}
