package export

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/mindloom/mindloom/pkg/mindmap"
)

// Node footprint in scene units. Positions address node centers.
const (
	nodeWidth    = 120.0
	nodeHeight   = 40.0
	cornerRadius = 8.0
	fontSize     = 13.0
)

// RenderPNG draws a mind map into an in-memory image.
func RenderPNG(m *mindmap.MindMap, opts Options) (image.Image, error) {
	dc, err := render(m, opts)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// WritePNG renders a mind map and saves it to path.
func WritePNG(path string, m *mindmap.MindMap, opts Options) error {
	dc, err := render(m, opts)
	if err != nil {
		return err
	}
	return dc.SavePNG(path)
}

// render draws the scene. Edges go first so nodes sit on top of them.
func render(m *mindmap.MindMap, opts Options) (*gg.Context, error) {
	natural, err := SceneSize(m)
	if err != nil {
		return nil, err
	}
	if opts.Width <= 0 {
		opts.Width = natural.Width
	}
	if opts.Height <= 0 {
		opts.Height = natural.Height
	}

	dc := gg.NewContext(opts.Width, opts.Height)
	if !opts.Transparent {
		bg := m.Background()
		dc.SetColor(color.RGBA{R: bg.R, G: bg.G, B: bg.B, A: 255})
		dc.Clear()
	}

	ttf, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	dc.SetFontFace(truetype.NewFace(ttf, &truetype.Options{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	}))

	minX, minY, _, _, _ := m.Bounds()
	sx := float64(opts.Width) / float64(natural.Width)
	sy := float64(opts.Height) / float64(natural.Height)

	// Maps a scene coordinate to a pixel coordinate.
	toPixel := func(x, y float64) (float64, float64) {
		px := (x - minX + padding + nodeWidth/2) * sx
		py := (y - minY + padding + nodeHeight/2) * sy
		return px, py
	}

	dc.SetLineWidth(2)
	dc.SetColor(color.Black)
	for _, e := range m.Edges() {
		from := m.Node(e.From)
		to := m.Node(e.To)
		if from == nil || to == nil {
			continue
		}
		x1, y1 := toPixel(from.X, from.Y)
		x2, y2 := toPixel(to.X, to.Y)
		dc.DrawLine(x1, y1, x2, y2)
		dc.Stroke()
	}

	for _, n := range m.Nodes() {
		cx, cy := toPixel(n.X, n.Y)
		w := nodeWidth * sx
		h := nodeHeight * sy

		dc.SetColor(color.RGBA{R: n.Color.R, G: n.Color.G, B: n.Color.B, A: 255})
		dc.DrawRoundedRectangle(cx-w/2, cy-h/2, w, h, cornerRadius)
		dc.Fill()

		dc.SetColor(color.Black)
		dc.DrawRoundedRectangle(cx-w/2, cy-h/2, w, h, cornerRadius)
		dc.Stroke()
		dc.DrawStringAnchored(n.Text, cx, cy, 0.5, 0.5)
	}

	return dc, nil
}
