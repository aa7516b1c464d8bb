package watcher

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"time"
)

// Filter decides which files in the folder are finished audio recordings.
type Filter struct {
	Extensions   []string
	TempPatterns []string
	// TempAge is how recently a file may have been modified and still be
	// considered in progress.
	TempAge time.Duration
	Now     func() time.Time
}

func (f Filter) now() time.Time {
	if f.Now != nil {
		return f.Now()
	}
	return time.Now()
}

// IsAudio checks the extension against the configured list.
func (f Filter) IsAudio(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return slices.ContainsFunc(f.Extensions, func(e string) bool {
		return strings.ToLower(e) == ext
	})
}

// IsTempName reports names that look like a recording app's scratch file.
func (f Filter) IsTempName(path string) bool {
	name := strings.ToLower(filepath.Base(path))
	return slices.ContainsFunc(f.TempPatterns, func(p string) bool {
		return p != "" && strings.Contains(name, strings.ToLower(p))
	})
}

// IsTemp reports whether the file is probably still being recorded.
func (f Filter) IsTemp(path string, info os.FileInfo) bool {
	if f.IsTempName(path) {
		return true
	}
	return info != nil && f.inProgress(info.ModTime())
}

func (f Filter) inProgress(modTime time.Time) bool {
	return f.now().Sub(modTime) < f.TempAge
}

type candidate struct {
	path    string
	modTime time.Time
}

// Unprocessed lists finished audio files in dir that are not in the ledger,
// newest first.
func Unprocessed(dir string, filter Filter, ledger Ledger) ([]string, error) {
	files, err := scan(dir, filter, ledger)
	if err != nil {
		return nil, err
	}

	var out []string
	for _, c := range files {
		if !filter.inProgress(c.modTime) {
			out = append(out, c.path)
		}
	}
	return out, nil
}

// scan lists audio files in dir that are neither in the ledger nor named
// like scratch files, newest first. Recently modified files are included.
func scan(dir string, filter Filter, ledger Ledger) ([]candidate, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read voice notes folder: %w", err)
	}

	done, err := ledger.Entries()
	if err != nil {
		return nil, fmt.Errorf("read ledger: %w", err)
	}

	var files []candidate
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(dir, e.Name())
		if !filter.IsAudio(path) || filter.IsTempName(path) {
			continue
		}
		if _, ok := done[path]; ok {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, candidate{path: path, modTime: info.ModTime()})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].modTime.After(files[j].modTime)
	})
	return files, nil
}

// Latest returns the newest unprocessed recording in dir.
func Latest(dir string, filter Filter, ledger Ledger) (string, bool, error) {
	files, err := Unprocessed(dir, filter, ledger)
	if err != nil || len(files) == 0 {
		return "", false, err
	}
	return files[0], true, nil
}
