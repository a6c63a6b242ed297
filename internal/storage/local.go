// Package storage persists small string values between runs, the way a
// browser's localStorage does for the web shell.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

// Local is a key/value store backed by a single YAML file.
// Every write rewrites the file atomically.
type Local struct {
	mu   sync.RWMutex
	path string
	data map[string]string
}

// Open loads the store at path. A missing file is an empty store.
func Open(path string) (*Local, error) {
	l := &Local{
		path: path,
		data: make(map[string]string),
	}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return l, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read storage file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &l.data); err != nil {
		return nil, fmt.Errorf("failed to parse storage file %s: %w", path, err)
	}
	if l.data == nil {
		l.data = make(map[string]string)
	}
	return l, nil
}

// Path returns the backing file location.
func (l *Local) Path() string {
	return l.path
}

// Get returns the value stored under key and whether it exists.
func (l *Local) Get(key string) (string, bool, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	v, ok := l.data[key]
	return v, ok, nil
}

// Set stores value under key and persists the store.
func (l *Local) Set(key, value string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	prev, existed := l.data[key]
	l.data[key] = value
	if err := l.save(); err != nil {
		if existed {
			l.data[key] = prev
		} else {
			delete(l.data, key)
		}
		return err
	}
	return nil
}

// Remove deletes key. Removing a missing key is not an error.
func (l *Local) Remove(key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	prev, existed := l.data[key]
	if !existed {
		return nil
	}
	delete(l.data, key)
	if err := l.save(); err != nil {
		l.data[key] = prev
		return err
	}
	return nil
}

// Keys returns all stored keys in sorted order.
func (l *Local) Keys() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	keys := make([]string, 0, len(l.data))
	for k := range l.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// save writes the store through a temp file and rename. Callers hold l.mu.
func (l *Local) save() error {
	raw, err := yaml.Marshal(l.data)
	if err != nil {
		return fmt.Errorf("failed to marshal storage: %w", err)
	}

	dir := filepath.Dir(l.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create storage directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".localstorage-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tmpName, l.path); err != nil {
		return fmt.Errorf("failed to replace storage file: %w", err)
	}
	return nil
}
