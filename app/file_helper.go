package app

import (
	"os"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

// FileHelper expands CLI path arguments into the candidate entry files C3
// discovers modules from: directories are walked recursively, single files
// are passed through unchanged, and both .gitignore and the configured
// ignore globs are honored.
type FileHelper struct {
	extensions []string
	ignore     []string
}

// NewFileHelper builds a FileHelper using the given extension list (each
// entry including its leading dot) and ignore globs.
func NewFileHelper(extensions, ignorePatterns []string) *FileHelper {
	return &FileHelper{extensions: extensions, ignore: ignorePatterns}
}

// CollectEntryFiles expands paths into the list of candidate entry files, in
// argument order (a directory's files in filepath.Walk's lexical order):
// directories are walked, honoring .gitignore rooted at each directory
// argument plus the configured ignore globs; files are kept as-is regardless
// of extension (the caller asked for them explicitly). The list is not
// de-duplicated.
func (h *FileHelper) CollectEntryFiles(paths []string) ([]string, error) {
	var files []string

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			files = append(files, path)
			continue
		}

		gi := loadGitIgnore(path)
		err = filepath.Walk(path, func(filePath string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if gi != nil {
				if relPath, relErr := filepath.Rel(path, filePath); relErr == nil && gi.MatchesPath(relPath) {
					if info.IsDir() {
						return filepath.SkipDir
					}
					return nil
				}
			}
			if info.IsDir() {
				if h.isIgnoredDir(filepath.Base(filePath)) {
					return filepath.SkipDir
				}
				return nil
			}
			if h.hasTrackedExtension(filePath) && !h.isIgnored(filePath) {
				files = append(files, filePath)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

func (h *FileHelper) hasTrackedExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	// .json files are never modules, even when listed as a resolver extension.
	if ext == ".json" {
		return false
	}
	for _, tracked := range h.extensions {
		if ext == strings.ToLower(tracked) {
			return true
		}
	}
	return false
}

func (h *FileHelper) isIgnoredDir(dirName string) bool {
	if dirName == "node_modules" || dirName == ".git" {
		return true
	}
	for _, pattern := range h.ignore {
		if matched, err := filepath.Match(pattern, dirName); err == nil && matched {
			return true
		}
	}
	return false
}

func (h *FileHelper) isIgnored(path string) bool {
	baseName := filepath.Base(path)
	for _, pattern := range h.ignore {
		if matched, err := filepath.Match(pattern, baseName); err == nil && matched {
			return true
		}
		if matched, err := filepath.Match(pattern, path); err == nil && matched {
			return true
		}
	}
	return false
}

// loadGitIgnore loads a .gitignore file from the root directory.
// Returns nil if the file does not exist or cannot be read.
func loadGitIgnore(root string) *ignore.GitIgnore {
	gitignorePath := filepath.Join(root, ".gitignore")
	gi, err := ignore.CompileIgnoreFile(gitignorePath)
	if err != nil {
		return nil
	}
	return gi
}
