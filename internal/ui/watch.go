package ui

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

type fileEventMsg struct {
	path string
	op   fsnotify.Op
}

type fileWatchErrMsg struct {
	err error
}

// fileWatch forwards fsnotify events for the directory of the open article
// into the Bubble Tea loop.
type fileWatch struct {
	watcher *fsnotify.Watcher
	dir     string
	file    string
	events  chan tea.Msg
	// waiting is set while a wait command is outstanding.
	waiting bool
}

func (w *fileWatch) start(path string) (tea.Cmd, error) {
	if path == "" {
		return nil, nil
	}
	path = filepath.Clean(path)
	if w.watcher == nil {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return nil, err
		}
		w.watcher = watcher
		w.events = make(chan tea.Msg, 10)
		go w.loop(watcher)
	}

	dir := filepath.Dir(path)
	if dir != w.dir {
		if w.dir != "" {
			_ = w.watcher.Remove(w.dir)
		}
		if err := w.watcher.Add(dir); err != nil {
			return nil, err
		}
		w.dir = dir
	}
	w.file = path
	if w.waiting {
		return nil, nil
	}
	return w.wait(), nil
}

func (w *fileWatch) loop(watcher *fsnotify.Watcher) {
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			w.events <- fileEventMsg{path: event.Name, op: event.Op}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			w.events <- fileWatchErrMsg{err: err}
		}
	}
}

func (w *fileWatch) wait() tea.Cmd {
	if w.events == nil {
		return nil
	}
	w.waiting = true
	events := w.events
	return func() tea.Msg {
		msg, ok := <-events
		if !ok {
			return nil
		}
		return msg
	}
}

// matches reports whether the event concerns the watched file.
func (w *fileWatch) matches(msg fileEventMsg) bool {
	return w.file != "" && filepath.Clean(msg.path) == w.file
}

func (w *fileWatch) close() error {
	if w.watcher == nil {
		return nil
	}
	err := w.watcher.Close()
	w.watcher = nil
	w.dir = ""
	w.waiting = false
	return err
}
