package normalize

import (
	"bytes"
	"encoding/json"
)

// DecodeList accepts the upstream's list shapes: a bare JSON array, or an
// object wrapping the array under "results", "data" or "items" (the
// paginated variants). Anything else decodes to an empty list, never an
// error: a list page must still render its empty state.
func DecodeList(data []byte) []RawRecord {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var anything interface{}
	if err := dec.Decode(&anything); err != nil {
		return []RawRecord{}
	}

	switch v := anything.(type) {
	case []interface{}:
		return toRawRecords(v)
	case map[string]interface{}:
		for _, key := range []string{"results", "data", "items"} {
			if arr, ok := v[key].([]interface{}); ok {
				return toRawRecords(arr)
			}
		}
	}
	return []RawRecord{}
}

func toRawRecords(arr []interface{}) []RawRecord {
	out := make([]RawRecord, 0, len(arr))
	for _, elem := range arr {
		if obj, ok := elem.(map[string]interface{}); ok {
			out = append(out, RawRecord(obj))
		}
	}
	return out
}
