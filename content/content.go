package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/dvl-uiux/portfolio/project"
)

//go:embed default.yaml
var defaultDocument []byte

// Sections in page order. Their ids double as anchors.
const (
	SectionHome     = "home"
	SectionAbout    = "about"
	SectionProjects = "projects"
	SectionContact  = "contact"
)

// Sections lists every top-level section in document order.
var Sections = []string{SectionHome, SectionAbout, SectionProjects, SectionContact}

type Owner struct {
	Name      string `yaml:"name"`
	ShortName string `yaml:"short_name"`
	Title     string `yaml:"title"`
}

type SkillGroup struct {
	Title string   `yaml:"title"`
	Items []string `yaml:"items"`
}

type About struct {
	Heading    string       `yaml:"heading"`
	Paragraphs []string     `yaml:"paragraphs"`
	Skills     []SkillGroup `yaml:"skills"`
}

type Card struct {
	Title    string `yaml:"title"`
	Icon     string `yaml:"icon"`
	Text     string `yaml:"text"`
	Link     string `yaml:"link"`
	LinkText string `yaml:"link_text"`
	// Socials places the social links under this card.
	Socials bool `yaml:"socials"`
}

type Social struct {
	Label string `yaml:"label"`
	Icon  string `yaml:"icon"`
	URL   string `yaml:"url"`
}

type Contact struct {
	Heading string   `yaml:"heading"`
	Cards   []Card   `yaml:"cards"`
	Socials []Social `yaml:"socials"`
}

// Document is everything the page says.
type Document struct {
	Owner    Owner            `yaml:"owner"`
	About    About            `yaml:"about"`
	Projects []project.Record `yaml:"projects"`
	Contact  Contact          `yaml:"contact"`
}

// Default returns the embedded document.
func Default() (*Document, error) {
	return Parse(defaultDocument)
}

// Load reads and validates the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("content %s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes and validates a YAML document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	if doc.Owner.ShortName == "" {
		doc.Owner.ShortName = doc.Owner.Name
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate checks the invariants the page relies on.
func (d *Document) Validate() error {
	var errs []error
	if d.Owner.Name == "" {
		errs = append(errs, errors.New("owner.name is required"))
	}
	if len(d.Projects) == 0 {
		errs = append(errs, errors.New("at least one project is required"))
	}
	seen := make(map[string]bool, len(d.Projects))
	for i, p := range d.Projects {
		switch {
		case p.ID == "":
			errs = append(errs, fmt.Errorf("projects[%d]: id is required", i))
		case seen[p.ID]:
			errs = append(errs, fmt.Errorf("projects[%d]: duplicate id %q", i, p.ID))
		}
		seen[p.ID] = true
		if p.Title == "" {
			errs = append(errs, fmt.Errorf("projects[%d]: title is required", i))
		}
	}
	return errors.Join(errs...)
}

// Source hands out the current document. It is safe for concurrent use.
type Source struct {
	mu  sync.RWMutex
	doc *Document
}

func NewSource(doc *Document) *Source {
	return &Source{doc: doc}
}

// Current returns the active document. Callers must not modify it.
func (s *Source) Current() *Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc
}

// Replace swaps the active document. Pages already loaded keep theirs.
func (s *Source) Replace(doc *Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = doc
}
