package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// The progress documents keep their nested collections in TEXT columns as
// JSON, so the same schema works on both Postgres and SQLite. Each collection
// type implements driver.Valuer and sql.Scanner.

func jsonValue(v interface{}, empty string) (driver.Value, error) {
	if v == nil {
		return empty, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal json column: %w", err)
	}
	return string(b), nil
}

func jsonScan(src, dst interface{}) error {
	switch s := src.(type) {
	case nil:
		return nil
	case []byte:
		if len(s) == 0 {
			return nil
		}
		return json.Unmarshal(s, dst)
	case string:
		if s == "" {
			return nil
		}
		return json.Unmarshal([]byte(s), dst)
	default:
		return fmt.Errorf("unsupported json column type %T", src)
	}
}

// StringList is a JSON array of strings stored in a TEXT column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	return jsonValue([]string(l), "[]")
}

func (l *StringList) Scan(src interface{}) error { return jsonScan(src, l) }

// Contains reports whether s is already in the list.
func (l StringList) Contains(s string) bool {
	for _, v := range l {
		if v == s {
			return true
		}
	}
	return false
}

// StringMap is a JSON object of string values stored in a TEXT column.
type StringMap map[string]string

func (m StringMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	return jsonValue(map[string]string(m), "{}")
}

func (m *StringMap) Scan(src interface{}) error { return jsonScan(src, m) }

// VocabularyMap maps a learned word to the entry recording where it was
// first learned.
type VocabularyMap map[string]VocabularyEntry

func (m VocabularyMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	return jsonValue(map[string]VocabularyEntry(m), "{}")
}

func (m *VocabularyMap) Scan(src interface{}) error { return jsonScan(src, m) }

// HistoryMap maps a timestamp key to a curriculum session record.
type HistoryMap map[string]SessionRecord

func (m HistoryMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	return jsonValue(map[string]SessionRecord(m), "{}")
}

func (m *HistoryMap) Scan(src interface{}) error { return jsonScan(src, m) }

// PodcastHistoryMap maps a timestamp key to a conversation session record.
type PodcastHistoryMap map[string]PodcastSessionRecord

func (m PodcastHistoryMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	return jsonValue(map[string]PodcastSessionRecord(m), "{}")
}

func (m *PodcastHistoryMap) Scan(src interface{}) error { return jsonScan(src, m) }

// WordUsageMap maps a word to its usage stats across conversations.
type WordUsageMap map[string]WordUsage

func (m WordUsageMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	return jsonValue(map[string]WordUsage(m), "{}")
}

func (m *WordUsageMap) Scan(src interface{}) error { return jsonScan(src, m) }

// PetList is a JSON array of pets stored in a TEXT column.
type PetList []Pet

func (l PetList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	return jsonValue([]Pet(l), "[]")
}

func (l *PetList) Scan(src interface{}) error { return jsonScan(src, l) }
