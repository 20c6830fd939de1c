package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// debounceDelay absorbs bursts of events from editors that write files in
// several steps (temp file + rename).
const debounceDelay = 50 * time.Millisecond

// FSChangeMsg is sent when file system changes are detected
type FSChangeMsg struct {
	time time.Time
}

// Watcher watches the working tree and key git metadata for changes so the
// diff view can reload automatically.
type Watcher struct {
	watcher    *fsnotify.Watcher
	rootPath   string
	gitPath    string
	isWatching bool
}

// NewWatcher creates a watcher rooted at the repository root.
func NewWatcher(rootPath string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		watcher:  fsWatcher,
		rootPath: rootPath,
		gitPath:  filepath.Join(rootPath, ".git"),
	}

	// Watch the working tree recursively (except .git) so unstaged edits
	// are detected.
	if err := w.addRecursiveDirs(w.rootPath); err != nil {
		_ = fsWatcher.Close()
		return nil, err
	}

	// Staged changes and branch switches only show up in git metadata.
	gitPaths := []string{
		w.gitPath,
		filepath.Join(w.gitPath, "HEAD"),
		filepath.Join(w.gitPath, "index"),
		filepath.Join(w.gitPath, "refs"),
		filepath.Join(w.gitPath, "refs", "heads"),
	}
	for _, path := range gitPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		_ = fsWatcher.Add(path)
	}

	w.isWatching = true
	return w, nil
}

// WaitForChange returns a command that blocks until the next relevant file
// system change and then emits an FSChangeMsg.
func (w *Watcher) WaitForChange() tea.Cmd {
	return func() tea.Msg {
		if !w.isWatching {
			return errMsg{errors.New("watcher is not running")}
		}

		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return errMsg{errors.New("watcher closed")}
				}

				if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}

				// Track newly created directories so deep file changes
				// are observed too.
				if event.Op&fsnotify.Create != 0 {
					if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
						_ = w.addRecursiveDirs(event.Name)
					}
				}

				time.Sleep(debounceDelay)
				return FSChangeMsg{time: time.Now()}

			case err, ok := <-w.watcher.Errors:
				if !ok {
					return errMsg{errors.New("watcher closed")}
				}
				return errMsg{err}
			}
		}
	}
}

// Close stops watching
func (w *Watcher) Close() error {
	if !w.isWatching {
		return nil
	}
	w.isWatching = false
	return w.watcher.Close()
}

func (w *Watcher) addRecursiveDirs(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		if w.isGitDir(path) {
			return filepath.SkipDir
		}
		_ = w.watcher.Add(path)
		return nil
	})
}

func (w *Watcher) isGitDir(path string) bool {
	if path == w.gitPath {
		return true
	}
	return strings.HasPrefix(path, w.gitPath+string(os.PathSeparator))
}
