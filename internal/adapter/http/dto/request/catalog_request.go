package request

import (
	"encoding/json"
	"strings"
)

// Catalog writes arrive as multipart forms, so the scalar fields are parsed
// from form values by the handler; only the JSON bodies below bind directly.

// BulkDeleteRequest carries the ids for a bulk catalog delete.
type BulkDeleteRequest struct {
	IDs []string `json:"ids" binding:"required"`
}

// ParseSizes accepts the sizes form field either as a JSON array
// (`["S","M"]`) or as a comma-separated string (`S,M`); both forms appear in
// the wild. A blank field means "not supplied" and returns nil.
func ParseSizes(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	if strings.HasPrefix(raw, "[") {
		var sizes []string
		if err := json.Unmarshal([]byte(raw), &sizes); err == nil {
			return cleanSizes(sizes)
		}
	}
	return cleanSizes(strings.Split(raw, ","))
}

func cleanSizes(values []string) []string {
	out := []string{}
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}
