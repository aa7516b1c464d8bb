package queue

import (
	"fmt"
	"os"
	"path/filepath"
)

func (l *implLedger) MarkProcessed(item string) error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return fmt.Errorf("create ledger dir: %w", err)
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open ledger: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(item + "\n"); err != nil {
		return fmt.Errorf("append ledger: %w", err)
	}
	return nil
}

// IsProcessed scans the whole ledger on every call.
func (l *implLedger) IsProcessed(item string) (bool, error) {
	entries, err := l.Entries()
	if err != nil {
		return false, err
	}
	_, ok := entries[item]
	return ok, nil
}

func (l *implLedger) Entries() (map[string]struct{}, error) {
	items, err := readItems(l.path)
	if err != nil {
		return nil, err
	}
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set, nil
}
