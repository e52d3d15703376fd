package content

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimal = `
owner:
  name: Test Owner
projects:
  - id: a
    title: Alpha
  - id: b
    title: Beta
`

func TestDefault(t *testing.T) {
	doc, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "Kelvin Adegbemisola Sanni", doc.Owner.Name)
	assert.Equal(t, "Kelvin Sanni", doc.Owner.ShortName)
	assert.Len(t, doc.About.Skills, 3)
	require.Len(t, doc.Projects, 3)
	assert.Equal(t, "Modern E-commerce Platform", doc.Projects[0].Title)
	assert.Equal(t, []string{"React", "TypeScript", "Node.js", "MongoDB", "Stripe"}, doc.Projects[0].Tags)
	assert.Len(t, doc.Contact.Socials, 4)
}

func TestParse_ShortNameDefaultsToName(t *testing.T) {
	doc, err := Parse([]byte(minimal))
	require.NoError(t, err)
	assert.Equal(t, "Test Owner", doc.Owner.ShortName)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		message string
	}{
		{"bad yaml", "owner: [", "decode content"},
		{"missing owner", "projects:\n  - id: a\n    title: A\n", "owner.name is required"},
		{"no projects", "owner:\n  name: X\n", "at least one project"},
		{"duplicate ids", "owner:\n  name: X\nprojects:\n  - id: a\n    title: A\n  - id: a\n    title: B\n", `duplicate id "a"`},
		{"empty id", "owner:\n  name: X\nprojects:\n  - title: A\n", "id is required"},
		{"missing title", "owner:\n  name: X\nprojects:\n  - id: a\n", "title is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimal), 0o644))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Alpha", doc.Projects[0].Title)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSource(t *testing.T) {
	first, err := Parse([]byte(minimal))
	require.NoError(t, err)
	src := NewSource(first)
	assert.Same(t, first, src.Current())

	second, err := Default()
	require.NoError(t, err)
	src.Replace(second)
	assert.Same(t, second, src.Current())
}

func TestWatch_ReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimal), 0o644))

	doc, err := Load(path)
	require.NoError(t, err)
	src := NewSource(doc)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, Watch(ctx, path, src))

	// An invalid document is ignored.
	require.NoError(t, os.WriteFile(path, []byte("owner: ["), 0o644))
	time.Sleep(100 * time.Millisecond)
	assert.Same(t, doc, src.Current())

	updated := minimal + "  - id: c\n    title: Gamma\n"
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o644))

	assert.Eventually(t, func() bool {
		return len(src.Current().Projects) == 3
	}, 2*time.Second, 20*time.Millisecond)
}
