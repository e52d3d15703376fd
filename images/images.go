// Package images renders the card images of the projects grid as WebP.
package images

import (
	"bytes"
	"fmt"
	"hash/fnv"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/dvl-uiux/portfolio/cache"
	"github.com/dvl-uiux/portfolio/project"
)

// Card dimensions match the 200px-high image band of a project card at 2x.
const (
	CardWidth   = 800
	CardHeight  = 400
	CardQuality = 80
)

// Renderer produces card images and caches the encoded bytes.
type Renderer struct {
	root  string
	cache *cache.Cache[[]byte]
}

// NewRenderer resolves local image paths against root.
func NewRenderer(root string) (*Renderer, error) {
	c, err := cache.New[[]byte](func(b []byte) int64 {
		return int64(len(b))
	}, "Card Images")
	if err != nil {
		return nil, err
	}
	return &Renderer{root: root, cache: c}, nil
}

// IsRemote reports whether the record's image is served from elsewhere.
func IsRemote(r project.Record) bool {
	return strings.HasPrefix(r.ImageURL, "http://") || strings.HasPrefix(r.ImageURL, "https://")
}

// Card returns the WebP card image for r: the local image scaled to cover
// the card, or a generated placeholder when the record has no local image.
func (rd *Renderer) Card(r project.Record) ([]byte, error) {
	key := r.ID + "|" + r.ImageURL + "|" + r.Title
	if b, ok := rd.cache.Get(key); ok {
		return b, nil
	}

	var img image.Image
	if r.ImageURL != "" && !IsRemote(r) {
		src, err := rd.load(r.ImageURL)
		if err != nil {
			log.Printf("[IMAGES] Falling back to placeholder for project %s: %v", r.ID, err)
		} else {
			img = cover(src, CardWidth, CardHeight)
		}
	}
	if img == nil {
		img = placeholder(r, CardWidth, CardHeight)
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Lossless: false, Quality: CardQuality}); err != nil {
		return nil, fmt.Errorf("encode card for project %s: %w", r.ID, err)
	}
	b := buf.Bytes()
	rd.cache.Set(key, b, int64(len(b)))
	return b, nil
}

func (rd *Renderer) load(rel string) (image.Image, error) {
	path := filepath.Join(rd.root, filepath.Clean("/"+rel))
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// cover scales src to fill w×h, cropping the overflow around the centre.
func cover(src image.Image, w, h int) image.Image {
	b := src.Bounds()
	var crop image.Rectangle
	if b.Dx()*h > b.Dy()*w {
		cw := b.Dy() * w / h
		x0 := b.Min.X + (b.Dx()-cw)/2
		crop = image.Rect(x0, b.Min.Y, x0+cw, b.Max.Y)
	} else {
		ch := b.Dx() * h / w
		y0 := b.Min.Y + (b.Dy()-ch)/2
		crop = image.Rect(b.Min.X, y0, b.Max.X, y0+ch)
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, crop, xdraw.Over, nil)
	return dst
}

// placeholder draws the project title over a colour derived from its id.
func placeholder(r project.Record, w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	hash := fnv.New32a()
	hash.Write([]byte(r.ID))
	sum := hash.Sum32()
	bg := color.RGBA{
		R: uint8(50 + sum%100),
		G: uint8(50 + (sum>>8)%100),
		B: uint8(50 + (sum>>16)%100),
		A: 255,
	}
	draw.Draw(img, img.Bounds(), &image.Uniform{bg}, image.Point{}, draw.Src)

	title := r.Title
	if title == "" {
		title = r.ID
	}
	lines := []string{title}
	if len(r.Tags) > 0 {
		lines = append(lines, strings.Join(r.Tags, " / "))
	}
	drawCentered(img, lines, color.RGBA{255, 255, 255, 255})
	return img
}

func drawCentered(img *image.RGBA, lines []string, c color.Color) {
	f := basicfont.Face7x13
	lineHeight := f.Height + 20
	bounds := img.Bounds()
	startY := bounds.Dy()/2 - len(lines)*lineHeight/2 + f.Ascent

	for i, line := range lines {
		width := font.MeasureString(f, line).Round()
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(c),
			Face: f,
			Dot:  fixed.P(bounds.Dx()/2-width/2, startY+i*lineHeight),
		}
		d.DrawString(line)
	}
}
