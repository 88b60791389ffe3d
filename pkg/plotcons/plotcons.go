// 3 Mar 2025

// Package plotcons draws a per-site track, such as entropy or gap
// fraction, as a bar chart and writes it out as a png. If a truetype
// font file is given, the plot gets a title and axis labels. Without
// one, you just get the bars, which is fine for a quick look.
package plotcons

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
)

// Options says how the plot should look. Zero values get replaced by
// defaults, so a caller can pass an empty struct.
type Options struct {
	Width    int     // pixels, default 800
	Height   int     // pixels, default 200
	YMax     float32 // top of the y axis, default is the track maximum
	Title    string  // drawn only if we have a font
	FontPath string  // path to a ttf file, empty means no text
	FontSize float64 // points, default 12
}

const (
	defaultWidth  = 800
	defaultHeight = 200
	margin        = 30 // room around the plot area for labels
)

var (
	bgCol   = color.RGBA{255, 255, 255, 255}
	barCol  = color.RGBA{60, 90, 160, 255}
	axisCol = color.RGBA{0, 0, 0, 255}
	textCol = image.NewUniform(color.RGBA{0, 0, 0, 255})
)

func fillDefaults(opts *Options) {
	if opts.Width == 0 {
		opts.Width = defaultWidth
	}
	if opts.Height == 0 {
		opts.Height = defaultHeight
	}
	if opts.FontSize == 0 {
		opts.FontSize = 12
	}
}

// trackMax finds the top of the y axis.
func trackMax(track []float32) float32 {
	var max float32
	for _, v := range track {
		if v > max {
			max = v
		}
	}
	if max == 0 {
		max = 1 // a flat track still needs a scale
	}
	return max
}

// hline and vline are the poor man's line drawing. Everything we draw
// is axis parallel, so this is all we need.
func hline(img *image.RGBA, x1, x2, y int, col color.RGBA) {
	for x := x1; x <= x2; x++ {
		img.Set(x, y, col)
	}
}
func vline(img *image.RGBA, x, y1, y2 int, col color.RGBA) {
	for y := y1; y <= y2; y++ {
		img.Set(x, y, col)
	}
}

// loadFont reads and parses a truetype file.
func loadFont(fname string) (*truetype.Font, error) {
	b, err := os.ReadFile(fname)
	if err != nil {
		return nil, fmt.Errorf("font file: %w", err)
	}
	fnt, err := freetype.ParseFont(b)
	if err != nil {
		return nil, fmt.Errorf("font file %s: %w", fname, err)
	}
	return fnt, nil
}

// label draws the title and the y axis extremes.
func label(img *image.RGBA, opts *Options, ymax float32) error {
	fnt, err := loadFont(opts.FontPath)
	if err != nil {
		return err
	}
	c := freetype.NewContext()
	c.SetDPI(72)
	c.SetFont(fnt)
	c.SetFontSize(opts.FontSize)
	c.SetClip(img.Bounds())
	c.SetDst(img)
	c.SetSrc(textCol)

	sz := int(c.PointToFixed(opts.FontSize) >> 6)
	if opts.Title != "" {
		if _, err := c.DrawString(opts.Title, freetype.Pt(margin, sz+2)); err != nil {
			return err
		}
	}
	top := fmt.Sprintf("%.2g", ymax)
	if _, err := c.DrawString(top, freetype.Pt(2, margin+sz/2)); err != nil {
		return err
	}
	_, err = c.DrawString("0", freetype.Pt(2, opts.Height-margin))
	return err
}

// Plot draws the track as bars and writes a png to w. One bar per
// site, scaled so the plot area is used fully whatever the range of
// the data.
func Plot(w io.Writer, track []float32, opts *Options) error {
	if len(track) == 0 {
		return errors.New("plotcons: nothing to plot")
	}
	fillDefaults(opts)
	ymax := opts.YMax
	if ymax == 0 {
		ymax = trackMax(track)
	}

	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	for x := 0; x < opts.Width; x++ {
		for y := 0; y < opts.Height; y++ {
			img.Set(x, y, bgCol)
		}
	}

	x0, y0 := margin, opts.Height-margin // bottom left of plot area
	x1, y1 := opts.Width-margin, margin  // top right
	hline(img, x0, x1, y0, axisCol)
	vline(img, x0, y1, y0, axisCol)

	pwidth, pheight := x1-x0, y0-y1
	for i, v := range track {
		if v < 0 {
			v = 0
		}
		if v > ymax {
			v = ymax
		}
		bx0 := x0 + 1 + i*pwidth/len(track)
		bx1 := x0 + (i+1)*pwidth/len(track)
		if bx1 < bx0 {
			bx1 = bx0 // more sites than pixels
		}
		h := int(v / ymax * float32(pheight))
		for x := bx0; x <= bx1; x++ {
			vline(img, x, y0-h, y0-1, barCol)
		}
	}

	if opts.FontPath != "" {
		if err := label(img, opts, ymax); err != nil {
			return err
		}
	}
	return png.Encode(w, img)
}

// PlotFile is Plot, but writing to a named file. An empty name means
// standard output.
func PlotFile(fname string, track []float32, opts *Options) error {
	fp := os.Stdout
	if fname != "" {
		var err error
		if fp, err = os.Create(fname); err != nil {
			return err
		}
		defer fp.Close()
	}
	return Plot(fp, track, opts)
}
