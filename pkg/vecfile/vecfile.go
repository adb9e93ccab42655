// Package vecfile reads and writes embedding vectors as files.
//
// Two encodings are supported, chosen by file extension:
//
//   - ".json" — pretty-printed JSON, for inspection and interop
//   - anything else (conventionally ".vec") — msgpack binary
//
// Each file carries the vector together with its dimensionality so that a
// truncated or hand-edited file is rejected on read instead of producing a
// silently short embedding.
package vecfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// envelope is the on-disk representation.
type envelope struct {
	Dimension int       `json:"dimension" msgpack:"dimension"`
	Embedding []float64 `json:"embedding" msgpack:"embedding"`
}

// Write stores the embedding at path, creating parent directories as needed.
func Write(path string, embedding []float64) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("vecfile: create directory: %w", err)
	}

	env := envelope{Dimension: len(embedding), Embedding: embedding}

	var data []byte
	var err error
	if isJSON(path) {
		data, err = json.MarshalIndent(env, "", "  ")
	} else {
		data, err = msgpack.Marshal(env)
	}
	if err != nil {
		return fmt.Errorf("vecfile: encode %s: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("vecfile: write %s: %w", path, err)
	}
	return nil
}

// Read loads the embedding stored at path.
func Read(path string) ([]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("vecfile: read %s: %w", path, err)
	}

	var env envelope
	if isJSON(path) {
		err = json.Unmarshal(data, &env)
	} else {
		err = msgpack.Unmarshal(data, &env)
	}
	if err != nil {
		return nil, fmt.Errorf("vecfile: decode %s: %w", path, err)
	}

	if len(env.Embedding) == 0 {
		return nil, fmt.Errorf("vecfile: %s contains no embedding", path)
	}
	if env.Dimension != len(env.Embedding) {
		return nil, fmt.Errorf("vecfile: %s declares %d dims but carries %d",
			path, env.Dimension, len(env.Embedding))
	}
	return env.Embedding, nil
}

// ReadAll loads multiple embedding files in order.
func ReadAll(paths []string) ([][]float64, error) {
	out := make([][]float64, 0, len(paths))
	for _, p := range paths {
		emb, err := Read(p)
		if err != nil {
			return nil, err
		}
		out = append(out, emb)
	}
	return out, nil
}

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}
