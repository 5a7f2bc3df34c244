package raster

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/javajack/sheetgrid"
)

// family holds the four styles of one typeface. Missing styles fall back to regular.
type family struct {
	regular    *opentype.Font
	bold       *opentype.Font
	italic     *opentype.Font
	boldItalic *opentype.Font
}

func (f family) pick(bold, italic bool) *opentype.Font {
	var fnt *opentype.Font
	switch {
	case bold && italic:
		fnt = f.boldItalic
	case bold:
		fnt = f.bold
	case italic:
		fnt = f.italic
	}
	if fnt == nil {
		fnt = f.regular
	}
	return fnt
}

type faceKey struct {
	family string
	size   float64
	bold   bool
	italic bool
}

// FontSet resolves font requests to faces. Typefaces are parsed in the
// background; every lookup waits until parsing has finished.
type FontSet struct {
	ready chan struct{}
	err   error

	sans, medium, mono family
	custom             map[string]family // lowercased family name

	mu    sync.Mutex
	faces map[faceKey]font.Face
}

// NewFontSet starts loading the Go typefaces plus the given TTF/OTF files, keyed
// by family name.
func NewFontSet(files map[string]string) *FontSet {
	fs := &FontSet{
		ready:  make(chan struct{}),
		custom: make(map[string]family),
		faces:  make(map[faceKey]font.Face),
	}
	go fs.load(files)
	return fs
}

func (fs *FontSet) load(files map[string]string) {
	defer close(fs.ready)

	var err error
	parse := func(ttf []byte) *opentype.Font {
		if err != nil {
			return nil
		}
		var f *opentype.Font
		f, err = opentype.Parse(ttf)
		return f
	}

	fs.sans = family{
		regular:    parse(goregular.TTF),
		bold:       parse(gobold.TTF),
		italic:     parse(goitalic.TTF),
		boldItalic: parse(gobolditalic.TTF),
	}
	fs.medium = family{
		regular:    parse(gomedium.TTF),
		bold:       fs.sans.bold,
		italic:     parse(gomediumitalic.TTF),
		boldItalic: fs.sans.boldItalic,
	}
	fs.mono = family{
		regular:    parse(gomono.TTF),
		bold:       parse(gomonobold.TTF),
		italic:     parse(gomonoitalic.TTF),
		boldItalic: parse(gomonobolditalic.TTF),
	}
	if err != nil {
		fs.err = fmt.Errorf("parse go fonts: %w", err)
		return
	}

	for name, path := range files {
		data, rerr := os.ReadFile(path)
		if rerr != nil {
			fs.err = fmt.Errorf("read font %q: %w", path, rerr)
			return
		}
		f, perr := opentype.Parse(data)
		if perr != nil {
			fs.err = fmt.Errorf("parse font %q: %w", path, perr)
			return
		}
		fs.custom[strings.ToLower(name)] = family{regular: f}
	}
}

// Wait blocks until every typeface is parsed or ctx is done.
func (fs *FontSet) Wait(ctx context.Context) error {
	select {
	case <-fs.ready:
		return fs.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Face returns a cached face for f. Unknown families map to the Go typefaces:
// names containing "mono" use Go Mono, names containing "medium" use Go Medium,
// everything else Go Regular. If parsing failed the fixed 7x13 face is used.
func (fs *FontSet) Face(f sheetgrid.Font) font.Face {
	<-fs.ready

	key := faceKey{family: strings.ToLower(f.Family), size: f.Size, bold: f.Bold, italic: f.Italic}
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if face, ok := fs.faces[key]; ok {
		return face
	}

	base := fs.typeface(key.family).pick(f.Bold, f.Italic)
	if base == nil || f.Size <= 0 {
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(base, &opentype.FaceOptions{
		Size:    f.Size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}
	fs.faces[key] = face
	return face
}

func (fs *FontSet) typeface(name string) family {
	if fam, ok := fs.custom[name]; ok {
		return fam
	}
	switch {
	case strings.Contains(name, "mono"):
		return fs.mono
	case strings.Contains(name, "medium"):
		return fs.medium
	default:
		return fs.sans
	}
}
