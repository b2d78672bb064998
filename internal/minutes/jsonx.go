package minutes

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// decodeObject extracts and unmarshals the JSON object embedded in a
// model response. Models habitually wrap JSON in prose or code fences,
// so the substring between the first "{" and the last "}" is taken
// first; if strict parsing still fails the payload is run through
// jsonrepair once and retried.
func decodeObject(raw string, v any) error {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return fmt.Errorf("no JSON object in response")
	}
	payload := raw[start : end+1]

	if err := json.Unmarshal([]byte(payload), v); err == nil {
		return nil
	}

	fixed, err := jsonrepair.JSONRepair(payload)
	if err != nil {
		return fmt.Errorf("repair JSON response: %w", err)
	}
	if err := json.Unmarshal([]byte(fixed), v); err != nil {
		return fmt.Errorf("parse repaired JSON response: %w", err)
	}

	return nil
}
