package database

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Persisted keys shared by every component that touches the session.
const (
	KeyToken = "token"
	KeyUser  = "user"
	KeyTheme = "theme"
)

// Storage is a small persistent key/value store. Values are JSON encoded.
// Get reports false, without error, when the key is absent.
type Storage interface {
	Get(key string, dst any) (bool, error)
	Set(key string, value any) error
	Remove(key string) error
}

// Open returns the backend named by kind: "sqlite", "file" or "memory".
func Open(kind, path string) (Storage, error) {
	switch strings.ToLower(kind) {
	case "", "sqlite":
		return NewSQLStorage(path)
	case "file":
		return NewFileStorage(path), nil
	case "memory":
		return NewMemoryStorage(), nil
	default:
		return nil, fmt.Errorf("unsupported session store %q", kind)
	}
}

func encode(value any) ([]byte, error) {
	return json.Marshal(value)
}

func decode(raw []byte, dst any) error {
	return json.Unmarshal(raw, dst)
}
