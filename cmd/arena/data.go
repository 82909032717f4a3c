package main

import (
	"errors"
	"io/fs"
	"log"
	"path/filepath"

	"go-survivor-arena/internal/config"
	"go-survivor-arena/internal/defs"
	"go-survivor-arena/internal/state"
)

const tuningFile = "tuning.yaml"

// loadData reads the tuning and definitions from dir. Missing files fall
// back to the built-in data.
func loadData(dir string) (state.Reload, error) {
	tuning, err := config.LoadTuning(filepath.Join(dir, tuningFile))
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		log.Printf("main: %s not found, using built-in tuning", tuningFile)
	default:
		return state.Reload{}, err
	}

	lib, err := defs.LoadLibrary(dir)
	if err != nil {
		return state.Reload{}, err
	}
	return state.Reload{Library: lib, Tuning: &tuning}, nil
}

// watchData reloads dir whenever one of its files changes. Broken files are
// logged and skipped so the running session keeps its last good data.
// The goroutine exits when the watcher is closed.
func watchData(dir string, out chan state.Reload) (*defs.Watcher, error) {
	w, err := defs.NewWatcher(dir)
	if err != nil {
		return nil, err
	}
	go func() {
		for {
			select {
			case <-w.Done():
				return
			case name, ok := <-w.Events:
				if !ok {
					return
				}
				r, err := loadData(dir)
				if err != nil {
					log.Printf("main: reload after %s: %v", filepath.Base(name), err)
					continue
				}
				pushLatest(out, r)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Printf("main: watch: %v", err)
			}
		}
	}()
	return w, nil
}

// pushLatest queues r without blocking. A reload nobody has taken yet is
// replaced, since only the newest data matters.
func pushLatest(out chan state.Reload, r state.Reload) {
	for {
		select {
		case out <- r:
			return
		default:
		}
		select {
		case <-out:
		default:
		}
	}
}
