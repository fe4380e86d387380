package dictfile

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/wenzhuo/jiebago"
)

// userDictGlob matches user dictionary files during directory discovery.
const userDictGlob = "*.dict"

// Load builds a ready-to-use segmenter from a main dictionary stream
// and an optional emission stream.
//
// Example usage:
//
//	dict, _ := os.Open("path/to/dict.txt")
//	defer dict.Close()
//	emit, _ := os.Open("path/to/prob_emit.txt")
//	defer emit.Close()
//
//	seg, err := dictfile.Load(dict, emit)
func Load(dict io.Reader, emit io.Reader) (*jiebago.Segmenter, error) {
	if emit == nil {
		return jiebago.New(NewReader(dict), nil)
	}
	return jiebago.New(NewReader(dict), NewEmissionReader(emit))
}

// LoadFiles builds a segmenter from the two file paths. An empty
// emitPath disables the HMM fallback.
func LoadFiles(dictPath, emitPath string) (*jiebago.Segmenter, error) {
	dict, err := os.Open(dictPath)
	if err != nil {
		return nil, fmt.Errorf("dictfile: main dictionary: %w", err)
	}
	defer dict.Close()
	if emitPath == "" {
		return Load(dict, nil)
	}
	emit, err := os.Open(emitPath)
	if err != nil {
		tracer().Errorf("%s: open failure, HMM fallback disabled: %v", emitPath, err)
		return Load(dict, nil)
	}
	defer emit.Close()
	return Load(dict, emit)
}

// InitUserDict merges user dictionaries into seg. A directory path
// loads every *.dict file inside it; a file path loads that file. Each
// source is loaded at most once per segmenter, keyed by absolute path.
// Unreadable files inside a directory are logged and skipped; a file
// path that cannot be loaded returns its error.
func InitUserDict(seg *jiebago.Segmenter, pathOrDir string) error {
	abs, err := filepath.Abs(pathOrDir)
	if err != nil {
		return fmt.Errorf("dictfile: %s: %w", pathOrDir, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("dictfile: %s: %w", pathOrDir, err)
	}
	if !info.IsDir() {
		return loadUserFile(seg, abs)
	}
	paths, err := filepath.Glob(filepath.Join(abs, userDictGlob))
	if err != nil {
		return fmt.Errorf("dictfile: %s: %w", pathOrDir, err)
	}
	for _, path := range paths {
		if err := loadUserFile(seg, path); err != nil {
			tracer().Errorf("%s: load user dict failure: %v", path, err)
		}
	}
	return nil
}

// InitUserDictPaths merges an explicit list of user dictionary files.
func InitUserDictPaths(seg *jiebago.Segmenter, paths ...string) error {
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			tracer().Errorf("%s: load user dict failure: %v", path, err)
			continue
		}
		if err := loadUserFile(seg, abs); err != nil {
			tracer().Errorf("%s: load user dict failure: %v", path, err)
		}
	}
	return nil
}

func loadUserFile(seg *jiebago.Segmenter, abspath string) error {
	f, err := os.Open(abspath)
	if err != nil {
		return err
	}
	defer f.Close()
	return seg.LoadUserEntries(abspath, NewUserReader(f))
}
