// Command gen_card_images pre-renders the card image of every project so a
// static host can serve them without the image route.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/dvl-uiux/portfolio/content"
	"github.com/dvl-uiux/portfolio/images"
	"github.com/dvl-uiux/portfolio/project"
)

func main() {
	contentPath := flag.String("content", "", "content document (default: embedded)")
	root := flag.String("root", "static", "directory local project images are resolved against")
	out := flag.String("out", "static/images/cards", "output directory")
	workers := flag.Int("workers", 4, "parallel renders")
	flag.Parse()

	doc, err := loadContent(*contentPath)
	if err != nil {
		log.Fatalf("Failed to load content: %v", err)
	}

	renderer, err := images.NewRenderer(*root)
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}

	if err := os.MkdirAll(*out, 0o755); err != nil {
		log.Fatalf("Failed to create %s: %v", *out, err)
	}

	fmt.Printf("Rendering %d project cards...\n", len(doc.Projects))
	failed := renderAll(renderer, doc.Projects, *out, *workers)
	if failed > 0 {
		log.Fatalf("%d of %d cards failed", failed, len(doc.Projects))
	}
	fmt.Println("Card image generation complete!")
}

func loadContent(path string) (*content.Document, error) {
	if path == "" {
		return content.Default()
	}
	return content.Load(path)
}

// renderAll writes <out>/<id>.webp for every record and returns the number
// of failures.
func renderAll(renderer *images.Renderer, records []project.Record, out string, workers int) int {
	if workers < 1 {
		workers = 1
	}
	jobs := make(chan project.Record)
	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		failed int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for r := range jobs {
				if err := renderOne(renderer, r, out); err != nil {
					log.Printf("Failed to render card for project %s: %v", r.ID, err)
					mu.Lock()
					failed++
					mu.Unlock()
				}
			}
		}()
	}
	for _, r := range records {
		jobs <- r
	}
	close(jobs)
	wg.Wait()
	return failed
}

func renderOne(renderer *images.Renderer, r project.Record, out string) error {
	b, err := renderer.Card(r)
	if err != nil {
		return err
	}
	path := filepath.Join(out, r.ID+".webp")
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}
