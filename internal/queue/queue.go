// Package queue persists pending work items and the record of finished ones
// as plain text files.
package queue

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

const header = "# Voice Note Processing Queue\n" +
	"# Format: file_path_or_url\n" +
	"# Lines starting with # are comments\n\n"

func (q *implQueue) Load() ([]string, error) {
	return readItems(q.path)
}

// Save rewrites the queue file through a temp file and rename.
func (q *implQueue) Save(items []string) error {
	var sb strings.Builder
	sb.WriteString(header)
	for _, item := range items {
		sb.WriteString(item)
		sb.WriteByte('\n')
	}

	dir := filepath.Dir(q.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create queue dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(q.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp queue file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(sb.String()); err != nil {
		tmp.Close()
		return fmt.Errorf("write queue: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close queue: %w", err)
	}
	if err := os.Rename(tmp.Name(), q.path); err != nil {
		return fmt.Errorf("replace queue file: %w", err)
	}
	return nil
}

func (q *implQueue) Add(ctx context.Context, items ...string) ([]AddResult, error) {
	current, err := q.Load()
	if err != nil {
		return nil, err
	}

	results := make([]AddResult, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if slices.Contains(current, item) {
			q.logger.Warn(ctx, "Already in queue: %s", item)
			results = append(results, AddResult{Item: item, Duplicate: true})
			continue
		}
		current = append(current, item)
		q.logger.Info(ctx, "Added to queue: %s", item)
		results = append(results, AddResult{Item: item})
	}

	if err := q.Save(current); err != nil {
		return nil, err
	}
	return results, nil
}

func (q *implQueue) Remove(ctx context.Context, item string) (bool, error) {
	current, err := q.Load()
	if err != nil {
		return false, err
	}

	idx := slices.Index(current, item)
	if idx < 0 {
		return false, nil
	}

	current = slices.Delete(current, idx, idx+1)
	if err := q.Save(current); err != nil {
		return false, err
	}
	q.logger.Info(ctx, "Removed from queue: %s", item)
	return true, nil
}

func (q *implQueue) Clear(ctx context.Context) error {
	if err := q.Save(nil); err != nil {
		return err
	}
	q.logger.Info(ctx, "Queue cleared")
	return nil
}

func (q *implQueue) Next() (string, bool, error) {
	items, err := q.Load()
	if err != nil || len(items) == 0 {
		return "", false, err
	}
	return items[0], true, nil
}

// readItems returns non-blank, non-comment lines in file order. A missing
// file reads as empty.
func readItems(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var items []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		items = append(items, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return items, nil
}
