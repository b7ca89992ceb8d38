package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// watch calls onChange with the path of any watched file that is written, until the
// process is interrupted.
func watch(paths []string, onChange func(path string)) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	defer signal.Stop(sig)
	go func() {
		select {
		case <-sig:
			cancel()
		case <-ctx.Done():
		}
	}()

	return watchFiles(ctx, paths, onChange)
}

func watchFiles(ctx context.Context, paths []string, onChange func(path string)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "creating watcher")
	}
	defer w.Close()

	for _, path := range paths {
		if err := w.Add(path); err != nil {
			return errors.Wrapf(err, "watching %s", path)
		}
	}
	log.Printf("watching %d files", len(paths))

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			switch {
			case ev.Op&(fsnotify.Write|fsnotify.Create) != 0:
				onChange(ev.Name)
			case ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
				// editors that save by replacing the file drop the watch with it
				if err := w.Add(ev.Name); err == nil {
					onChange(ev.Name)
				}
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Println("watch error:", err)
		}
	}
}
