package content

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the document at path into src whenever the file is written
// or replaced, until ctx is done. A document that fails to load is logged
// and the previous one stays active.
func Watch(ctx context.Context, path string, src *Source) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create content watcher: %w", err)
	}

	// Watch the directory so editors that replace the file are still seen.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	target := filepath.Clean(path)
	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				doc, err := Load(path)
				if err != nil {
					log.Printf("[CONTENT] Reload failed, keeping previous content: %v", err)
					continue
				}
				src.Replace(doc)
				log.Printf("[CONTENT] Reloaded %s (%d projects)", path, len(doc.Projects))
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("[CONTENT] Watcher error: %v", err)
			}
		}
	}()

	return nil
}
