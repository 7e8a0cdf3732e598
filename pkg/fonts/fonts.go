// Package fonts resolves the typeface used for cell labels.
//
// A preferred font is looked up by file name on the host (for example
// "arial.ttf") with go-findfont. When it cannot be found or parsed the
// embedded Go Regular face is used instead, so loading never fails.
// Each font name is resolved once per process.
package fonts

import (
	"os"
	"sync"

	"github.com/flopp/go-findfont"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// DefaultFont is the preferred label font file name.
const DefaultFont = "arial.ttf"

// FallbackName names the embedded fallback face.
const FallbackName = "Go Regular"

// Font is a parsed typeface.
type Font struct {
	Name     string // file path of the loaded font, or FallbackName
	Fallback bool   // true when the preferred font was unavailable
	Err      error  // why the preferred font was rejected, if it was

	sfnt *opentype.Font
}

var (
	mu     sync.Mutex
	loaded = map[string]*Font{}

	fallbackOnce sync.Once
	fallback     *opentype.Font
)

// Load returns the font registered under name, resolving it on first use.
// An empty name selects the fallback face directly.
func Load(name string) *Font {
	mu.Lock()
	defer mu.Unlock()

	if f, ok := loaded[name]; ok {
		return f
	}
	f := resolve(name)
	loaded[name] = f
	return f
}

// Face returns a face of f at size points (72 DPI, so points equal pixels).
func (f *Font) Face(size float64) (font.Face, error) {
	return opentype.NewFace(f.sfnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// Locate returns the path of a font file installed on the host.
func Locate(name string) (string, error) {
	return findfont.Find(name)
}

func resolve(name string) *Font {
	if name == "" {
		return &Font{Name: FallbackName, Fallback: true, sfnt: goRegular()}
	}

	f, path, err := parseFile(name)
	if err != nil {
		return &Font{Name: FallbackName, Fallback: true, Err: err, sfnt: goRegular()}
	}
	return &Font{Name: path, sfnt: f}
}

func parseFile(name string) (*opentype.Font, string, error) {
	path := name
	if _, err := os.Stat(path); err != nil {
		if path, err = Locate(name); err != nil {
			return nil, "", err
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, "", err
	}
	return f, path, nil
}

func goRegular() *opentype.Font {
	fallbackOnce.Do(func() {
		f, err := opentype.Parse(goregular.TTF)
		if err != nil {
			// goregular.TTF is embedded in x/image and always parses.
			panic("fonts: parse embedded Go Regular: " + err.Error())
		}
		fallback = f
	})
	return fallback
}
