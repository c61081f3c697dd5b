package neo4j

import (
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// recordString reads a string field off a record, tolerating missing keys
// and nulls. Absent values read as the empty string.
func recordString(record *neo4j.Record, key string) string {
	value, ok := record.Get(key)
	if !ok || value == nil {
		return ""
	}
	s, ok := value.(string)
	if !ok {
		return ""
	}
	return s
}

// recordInt reads an integer field off a record. Absent values read as zero.
func recordInt(record *neo4j.Record, key string) int64 {
	value, ok := record.Get(key)
	if !ok || value == nil {
		return 0
	}
	switch v := value.(type) {
	case int64:
		return v
	case float64:
		return int64(v)
	default:
		return 0
	}
}

// recordFloat reads a numeric field off a record, accepting both float and
// integer wire representations.
func recordFloat(record *neo4j.Record, key string) float64 {
	value, ok := record.Get(key)
	if !ok || value == nil {
		return 0
	}
	switch v := value.(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	default:
		return 0
	}
}
