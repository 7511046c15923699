// Package content loads the script and the slideshow photos.
package content

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io/fs"
	"log"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register WebP decoder
)

// PlaceholderCount is how many generated cards stand in for missing photos.
const PlaceholderCount = 4

var photoExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
}

// Photo is a slideshow frame, already scaled to fit.
type Photo struct {
	Name  string
	Image *image.RGBA
}

// LoadPhotos decodes every supported image in dir, sorted by file name, and
// scales each to fit inside frame. Files that fail to decode are logged and
// skipped. A missing directory is not an error: it yields no photos. A zero
// frame lists the photos by name without decoding them.
func LoadPhotos(dir string, frame image.Point) ([]Photo, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read photo dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !photoExts[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		names = append(names, e.Name())
	}
	slices.Sort(names)

	photos := make([]Photo, 0, len(names))
	for _, name := range names {
		if frame == (image.Point{}) {
			photos = append(photos, Photo{Name: name})
			continue
		}
		img, err := decodeFile(filepath.Join(dir, name))
		if err != nil {
			log.Printf("skip photo %s: %v", name, err)
			continue
		}
		photos = append(photos, Photo{Name: name, Image: Fit(img, frame)})
	}
	return photos, nil
}

// PhotosOrPlaceholders loads photos from dir and falls back to generated
// cards when there are none.
func PhotosOrPlaceholders(dir string, frame image.Point) []Photo {
	photos, err := LoadPhotos(dir, frame)
	if err != nil {
		log.Printf("load photos: %v", err)
	}
	if len(photos) == 0 {
		return Placeholders(PlaceholderCount, frame)
	}
	return photos
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return img, nil
}

// FitSize returns the largest size with src's aspect ratio that fits frame.
func FitSize(src, frame image.Point) image.Point {
	if src.X <= 0 || src.Y <= 0 || frame.X <= 0 || frame.Y <= 0 {
		return image.Point{}
	}
	scale := math.Min(float64(frame.X)/float64(src.X), float64(frame.Y)/float64(src.Y))
	w := max(1, int(math.Round(float64(src.X)*scale)))
	h := max(1, int(math.Round(float64(src.Y)*scale)))
	return image.Pt(min(w, frame.X), min(h, frame.Y))
}

// Fit scales src to fit inside frame, keeping its aspect ratio.
func Fit(src image.Image, frame image.Point) *image.RGBA {
	size := FitSize(src.Bounds().Size(), frame)
	dst := image.NewRGBA(image.Rectangle{Max: size})
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}

// placeholderTints are the card backgrounds, one per placeholder.
var placeholderTints = []color.RGBA{
	{0xff, 0xc2, 0xd1, 0xff},
	{0xff, 0xe5, 0xec, 0xff},
	{0xfb, 0x6f, 0x92, 0xff},
	{0xff, 0x8f, 0xab, 0xff},
}

// Placeholders generates n heart cards sized to frame. A zero frame yields
// names only.
func Placeholders(n int, frame image.Point) []Photo {
	out := make([]Photo, n)
	for i := range out {
		out[i].Name = fmt.Sprintf("placeholder-%d", i+1)
		if frame == (image.Point{}) {
			continue
		}
		bg := placeholderTints[i%len(placeholderTints)]
		out[i].Image = heartCard(frame, bg, color.RGBA{0xd9, 0x04, 0x29, 0xff})
	}
	return out
}

// heartCard fills a frame with bg and draws a heart in the middle.
func heartCard(frame image.Point, bg, fg color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rectangle{Max: frame})
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	r := float64(min(frame.X, frame.Y)) * 0.3
	cx, cy := float64(frame.X)/2, float64(frame.Y)/2
	for y := 0; y < frame.Y; y++ {
		for x := 0; x < frame.X; x++ {
			if InHeart((float64(x)-cx)/r, (cy-float64(y))/r) {
				img.SetRGBA(x, y, fg)
			}
		}
	}
	return img
}

// InHeart reports whether (x, y) lies inside the unit heart curve
// (x²+y²-1)³ - x²y³ <= 0. Y points up.
func InHeart(x, y float64) bool {
	a := x*x + y*y - 1
	return a*a*a-x*x*y*y*y <= 0
}
