package cmd

import (
	"encoding/json"
	"fmt"
	"io"
)

// printResult writes a decoded result: JSON values indented, text as-is,
// and nothing for an empty response.
func printResult(w io.Writer, result any) error {
	switch v := result.(type) {
	case nil:
		return nil
	case string:
		_, err := io.WriteString(w, v)
		return err
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		return nil
	}
}
