// Package render lays out the completion certificate. Rendering is a pure
// function of the persisted diploma tuple and the locale: no clocks, no
// randomness, so re-downloads are byte-for-byte identical.
package render

import (
	"bytes"
	"fmt"
	"image/color"
	"os"
	"strings"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"cybershield-academy/internal/domain"
	"cybershield-academy/internal/i18n"
)

// A4 landscape at 150dpi. Layout coordinates below are in millimetres and
// scaled, matching the print geometry of the original certificate.
const (
	pageWidthMM  = 297.0
	pageHeightMM = 210.0
	canvasWidth  = 1754
	canvasHeight = 1240
	renderDPI    = 150
)

var (
	colorBackground = color.NRGBA{R: 15, G: 23, B: 42, A: 255}
	colorAccent     = color.NRGBA{R: 0, G: 255, B: 136, A: 255}
	colorAccentDim  = color.NRGBA{R: 0, G: 255, B: 136, A: 64}
	colorWhite      = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	colorMuted      = color.NRGBA{R: 148, G: 163, B: 184, A: 255}
	colorBody       = color.NRGBA{R: 203, G: 213, B: 225, A: 255}
	colorFaint      = color.NRGBA{R: 100, G: 116, B: 139, A: 255}
	colorFooter     = color.NRGBA{R: 71, G: 85, B: 105, A: 255}
)

// Renderer draws certificates with a TTF that must cover both supported
// scripts (Cyrillic included). The font loads lazily and a load failure is a
// *domain.RenderError: there is no fallback face, because a glyph-incomplete
// font would produce unreadable output in the Bulgarian locale.
type Renderer struct {
	fontPath  string
	moduleIDs []string

	mu    sync.Mutex
	font  *truetype.Font
	faces map[float64]font.Face
}

func NewRenderer(fontPath string, moduleIDs []string) *Renderer {
	return &Renderer{
		fontPath:  fontPath,
		moduleIDs: moduleIDs,
		faces:     make(map[float64]font.Face),
	}
}

// FileName is the locale-specific download name for the artifact.
func (r *Renderer) FileName(loc domain.Locale) string {
	return i18n.Resolve("cert.filename", loc)
}

// Render produces the certificate PNG for a persisted diploma.
func (r *Renderer) Render(d domain.Diploma, loc domain.Locale) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensureFontLocked(); err != nil {
		return nil, err
	}

	dc := gg.NewContext(canvasWidth, canvasHeight)
	w := float64(canvasWidth)
	h := float64(canvasHeight)
	cx := w / 2

	dc.SetColor(colorBackground)
	dc.Clear()

	// Double border with corner accents.
	dc.SetColor(colorAccent)
	dc.SetLineWidth(mm(1.2))
	dc.DrawRectangle(mm(10), mm(10), w-mm(20), h-mm(20))
	dc.Stroke()
	dc.SetLineWidth(mm(0.3))
	dc.DrawRectangle(mm(14), mm(14), w-mm(28), h-mm(28))
	dc.Stroke()

	corner := mm(15)
	dc.SetLineWidth(mm(0.9))
	for _, c := range [][4]float64{
		{mm(10), mm(10), 1, 1},
		{w - mm(10), mm(10), -1, 1},
		{mm(10), h - mm(10), 1, -1},
		{w - mm(10), h - mm(10), -1, -1},
	} {
		x, y, dx, dy := c[0], c[1], c[2], c[3]
		dc.DrawLine(x, y, x+dx*corner, y)
		dc.DrawLine(x, y, x, y+dy*corner)
	}
	dc.Stroke()

	// Repeated circle motif along the top and bottom edges.
	dc.SetColor(colorAccentDim)
	dc.SetLineWidth(mm(0.2))
	for i := 0; i < 6; i++ {
		off := mm(25 + float64(i)*8)
		for _, y := range []float64{mm(30), h - mm(30)} {
			dc.DrawCircle(off, y, mm(3))
			dc.DrawCircle(w-off, y, mm(3))
		}
	}
	dc.Stroke()

	// Shield ring above the title block.
	dc.SetColor(colorAccent)
	dc.SetLineWidth(mm(0.6))
	dc.DrawCircle(cx, mm(38), mm(12))
	dc.Stroke()

	if err := r.textLocked(dc, i18n.Resolve("cert.kicker", loc), 14, colorAccent, cx, mm(60)); err != nil {
		return nil, err
	}
	if err := r.textLocked(dc, i18n.Resolve("cert.title", loc), 32, colorWhite, cx, mm(75)); err != nil {
		return nil, err
	}

	dc.SetColor(colorAccent)
	dc.SetLineWidth(mm(0.5))
	dc.DrawLine(cx-mm(60), mm(82), cx+mm(60), mm(82))
	dc.Stroke()

	if err := r.textLocked(dc, i18n.Resolve("cert.awardedTo", loc), 12, colorMuted, cx, mm(95)); err != nil {
		return nil, err
	}
	if err := r.textLocked(dc, d.FullName, 28, colorAccent, cx, mm(112)); err != nil {
		return nil, err
	}

	dc.SetLineWidth(mm(0.3))
	dc.DrawLine(cx-mm(50), mm(117), cx+mm(50), mm(117))
	dc.Stroke()

	if err := r.textLocked(dc, i18n.Resolve("cert.desc1", loc), 11, colorBody, cx, mm(130)); err != nil {
		return nil, err
	}
	desc2 := fmt.Sprintf(i18n.Resolve("cert.desc2", loc), len(r.moduleIDs))
	if err := r.textLocked(dc, desc2, 11, colorBody, cx, mm(138)); err != nil {
		return nil, err
	}

	labels := make([]string, 0, len(r.moduleIDs))
	for _, id := range r.moduleIDs {
		labels = append(labels, i18n.ModuleLabel(id, loc))
	}
	if err := r.textLocked(dc, strings.Join(labels, "  •  "), 8, colorFaint, cx, mm(150)); err != nil {
		return nil, err
	}

	date := i18n.FormatIssueDate(d.CreatedAt, loc)
	dateLine := fmt.Sprintf("%s: %s", i18n.Resolve("cert.date", loc), date)
	idLine := fmt.Sprintf("%s: %s", i18n.Resolve("cert.id", loc), d.CertID)
	if err := r.textLocked(dc, dateLine, 10, colorMuted, cx-mm(50), mm(170)); err != nil {
		return nil, err
	}
	if err := r.textLocked(dc, idLine, 10, colorMuted, cx+mm(50), mm(170)); err != nil {
		return nil, err
	}

	if err := r.textLocked(dc, i18n.Resolve("cert.brand", loc), 9, colorFooter, cx, mm(185)); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, &domain.RenderError{Reason: "encode png", Err: err}
	}
	return buf.Bytes(), nil
}

// ensureFontLocked loads and caches the TTF. Failure leaves the renderer in
// its unloaded state so the next call retries.
func (r *Renderer) ensureFontLocked() error {
	if r.font != nil {
		return nil
	}
	data, err := os.ReadFile(r.fontPath)
	if err != nil {
		return &domain.RenderError{Reason: "read font " + r.fontPath, Err: err}
	}
	parsed, err := truetype.Parse(data)
	if err != nil {
		return &domain.RenderError{Reason: "parse font " + r.fontPath, Err: err}
	}
	r.font = parsed
	return nil
}

func (r *Renderer) faceLocked(sizePt float64) (font.Face, error) {
	if f, ok := r.faces[sizePt]; ok {
		return f, nil
	}
	if err := r.ensureFontLocked(); err != nil {
		return nil, err
	}
	f := truetype.NewFace(r.font, &truetype.Options{
		Size:    sizePt,
		DPI:     renderDPI,
		Hinting: font.HintingNone,
	})
	r.faces[sizePt] = f
	return f, nil
}

func (r *Renderer) textLocked(dc *gg.Context, s string, sizePt float64, c color.NRGBA, x, y float64) error {
	face, err := r.faceLocked(sizePt)
	if err != nil {
		return err
	}
	dc.SetFontFace(face)
	dc.SetColor(c)
	dc.DrawStringAnchored(s, x, y, 0.5, 0.35)
	return nil
}

// mm converts layout millimetres to canvas pixels.
func mm(v float64) float64 {
	return v * canvasWidth / pageWidthMM
}
