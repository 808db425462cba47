// Command glyphdump resolves a font, prints its line metrics and renders
// glyphs as text art, optionally saving them as PNG images.
//
//	glyphdump -family "DejaVu Sans Mono" -size 14 -char "Ag→"
//	glyphdump -fontdir ./fonts -system=false -family Go -bold -char A -out a.png
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/glyphcache"
	"github.com/gogpu/glyphcache/provider/fontmatch"
	"github.com/gogpu/glyphcache/provider/outline"
)

func main() {
	var (
		family  = flag.String("family", "monospace", "font family")
		style   = flag.String("style", "", "specific style name, overrides -bold and -italic")
		bold    = flag.Bool("bold", false, "request a bold face")
		italic  = flag.Bool("italic", false, "request an italic face")
		size    = flag.Float64("size", 12, "font size in points")
		dpr     = flag.Float64("dpr", 1, "device pixel ratio")
		dpi     = flag.Float64("dpi", 96, "logical resolution")
		chars   = flag.String("char", "A", "characters to render")
		glyph   = flag.Int("glyph", -1, "render this glyph index instead of -char")
		fontDir = flag.String("fontdir", "", "comma-separated font directories to index")
		system  = flag.Bool("system", true, "index the platform font directories")
		out     = flag.String("out", "", "write each glyph to a PNG file with this prefix")
		verbose = flag.Bool("v", false, "log resolution details")
	)
	flag.Parse()

	if *verbose {
		glyphcache.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	idx := fontmatch.New()
	if *fontDir != "" {
		for _, dir := range strings.Split(*fontDir, ",") {
			if err := idx.AddDir(strings.TrimSpace(dir)); err != nil {
				log.Fatalf("Failed to index %s: %v", dir, err)
			}
		}
	}
	if *system {
		if err := idx.UseSystemFonts(); err != nil {
			log.Printf("System fonts: %v", err)
		}
	}
	if idx.Len() == 0 {
		log.Fatal("No fonts indexed")
	}

	r := glyphcache.New(idx, outline.NewLibrary(),
		glyphcache.WithDevicePixelRatio(*dpr),
		glyphcache.WithDPI(*dpi))
	defer func() { _ = r.Close() }()

	desc := glyphcache.FontDesc{Family: *family, Style: requestedStyle(*style, *bold, *italic)}
	fontSize := glyphcache.NewSize(*size)
	key, err := r.LoadFont(desc, fontSize)
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}

	m, err := r.Metrics(key, fontSize)
	if err != nil {
		log.Fatalf("Failed to read metrics: %v", err)
	}
	fmt.Printf("%s at %s: %d faces indexed\n", desc, fontSize, idx.Len())
	fmt.Printf("  line height %v, average advance %v, descent %v\n", m.LineHeight, m.AverageAdvance, m.Descent)
	fmt.Printf("  underline %v/%v, strikeout %v/%v\n",
		m.UnderlinePosition, m.UnderlineThickness, m.StrikeoutPosition, m.StrikeoutThickness)

	var keys []glyphcache.KeyType
	if *glyph >= 0 {
		keys = append(keys, glyphcache.GlyphIndex(uint32(*glyph)))
	} else {
		for _, ch := range *chars {
			keys = append(keys, glyphcache.Char(ch))
		}
	}

	for i, k := range keys {
		g, err := r.GetGlyph(glyphcache.GlyphKey{Glyph: k, Font: key, Size: fontSize})
		if err != nil {
			log.Fatalf("Failed to render %s: %v", k, err)
		}
		fmt.Printf("\n%s: %dx%d left %d top %d colored %t\n", k, g.Width, g.Height, g.Left, g.Top, g.Colored)
		fmt.Print(textArt(g))

		if *out != "" {
			name := fmt.Sprintf("%s%d.png", *out, i)
			if err := savePNG(filepath.Clean(name), g); err != nil {
				log.Fatalf("Failed to save: %v", err)
			}
			log.Printf("Glyph saved to %s", name)
		}
	}
}

func requestedStyle(name string, bold, italic bool) glyphcache.Style {
	if name != "" {
		return glyphcache.SpecificStyle(name)
	}
	slant, weight := glyphcache.SlantNormal, glyphcache.WeightNormal
	if italic {
		slant = glyphcache.SlantItalic
	}
	if bold {
		weight = glyphcache.WeightBold
	}
	return glyphcache.DescriptiveStyle(slant, weight)
}

const ramp = " .:-=+*#%@"

// textArt draws the brightest channel of each pixel with ramp characters.
func textArt(g glyphcache.RasterizedGlyph) string {
	var b strings.Builder
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := g.Buf[(y*g.Width+x)*3:]
			v := max(p[0], p[1], p[2])
			b.WriteByte(ramp[int(v)*(len(ramp)-1)/255])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func savePNG(path string, g glyphcache.RasterizedGlyph) error {
	img := image.NewNRGBA(image.Rect(0, 0, g.Width, g.Height))
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := g.Buf[(y*g.Width+x)*3:]
			img.SetNRGBA(x, y, color.NRGBA{R: p[0], G: p[1], B: p[2], A: 255})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
