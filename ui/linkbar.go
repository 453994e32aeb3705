package ui

import (
	"bytes"
	stdimage "image"
	"image/color"

	"github.com/automoto/showcase/commands"
	cfg "github.com/automoto/showcase/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font/gofont/goregular"
)

// linkBarFade is how long, in ticks of dt, the bar takes to fade in.
const linkBarFade = 40

// LinkBar is the controller chrome drawn over every page: a fullscreen
// toggle in the top-right corner and the studio's social links along the
// bottom edge. It stays hidden until the first page is shown.
type LinkBar struct {
	UI *ebitenui.UI

	publish func(...commands.Command)

	fullscreen *widget.Button
	links      []*widget.Button
	buttons    []*widget.Button

	face text.Face

	shown   bool
	enabled bool
	alpha   float64
	fadeIn  *gween.Tween

	offscreen *ebiten.Image
}

// NewLinkBar builds the bar. publish receives the commands of clicks.
func NewLinkBar(publish func(...commands.Command)) *LinkBar {
	lb := &LinkBar{
		publish: publish,
		enabled: true,
		fadeIn:  gween.New(0, 1, linkBarFade, ease.OutQuad),
	}
	lb.loadFonts()
	lb.buildUI()
	return lb
}

func (lb *LinkBar) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	lb.face = &text.GoTextFace{
		Source: fontSource,
		Size:   14,
	}
}

func (lb *LinkBar) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	corner := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)
	lb.fullscreen = lb.newButton("Fullscreen", cfg.Background, commands.ToggleFullscreen{})
	corner.AddChild(lb.fullscreen)

	bottom := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(24),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)
	for _, l := range []struct {
		label string
		url   string
		color color.RGBA
	}{
		{"Facebook", cfg.Links.Facebook, cfg.Facebook},
		{"YouTube", cfg.Links.YouTube, cfg.YouTube},
		{"LinkedIn", cfg.Links.LinkedIn, cfg.LinkedIn},
	} {
		btn := lb.newButton(l.label, l.color, commands.OpenURL{URL: l.url})
		lb.links = append(lb.links, btn)
		bottom.AddChild(btn)
	}

	rootContainer.AddChild(corner)
	rootContainer.AddChild(bottom)

	lb.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (lb *LinkBar) newButton(label string, base color.RGBA, cmd commands.Command) *widget.Button {
	btn := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(110, 32),
		),
		widget.ButtonOpts.Image(buttonImage(base)),
		widget.ButtonOpts.Text(label, &lb.face, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    color.RGBA{255, 255, 200, 255},
			Pressed:  color.RGBA{200, 200, 200, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if lb.shown && lb.enabled && lb.publish != nil {
				lb.publish(cmd)
			}
		}),
	)
	lb.buttons = append(lb.buttons, btn)
	return btn
}

func buttonImage(base color.RGBA) *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(shade(base, 1)),
		Hover:    image.NewNineSliceColor(shade(base, 1.25)),
		Pressed:  image.NewNineSliceColor(shade(base, 0.75)),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

// shade scales the color channels of c, saturating at 255.
func shade(c color.RGBA, f float64) color.RGBA {
	ch := func(v uint8) uint8 {
		s := float64(v) * f
		if s > 255 {
			return 255
		}
		return uint8(s)
	}
	return color.RGBA{ch(c.R), ch(c.G), ch(c.B), c.A}
}

// Show starts fading the bar in. Repeated calls do nothing.
func (lb *LinkBar) Show() {
	lb.shown = true
}

// Shown reports whether Show has been called.
func (lb *LinkBar) Shown() bool { return lb.shown }

// Alpha returns the current fade-in opacity.
func (lb *LinkBar) Alpha() float64 { return lb.alpha }

// SetEnabled enables or disables every button. The bar is disabled while a
// page fade or a page load blocks input.
func (lb *LinkBar) SetEnabled(enabled bool) {
	if lb.enabled == enabled {
		return
	}
	lb.enabled = enabled
	for _, b := range lb.buttons {
		b.GetWidget().Disabled = !enabled
	}
}

// Enabled reports whether the buttons accept clicks.
func (lb *LinkBar) Enabled() bool { return lb.enabled }

// SetFullscreen relabels the toggle for the current window mode.
func (lb *LinkBar) SetFullscreen(fullscreen bool) {
	label := "Fullscreen"
	if fullscreen {
		label = "Windowed"
	}
	if t := lb.fullscreen.Text(); t != nil {
		t.Label = label
	}
}

// Contains reports whether (x, y) is over one of the bar's buttons.
func (lb *LinkBar) Contains(x, y int) bool {
	if !lb.shown {
		return false
	}
	p := stdimage.Pt(x, y)
	for _, b := range lb.buttons {
		if p.In(b.GetWidget().Rect) {
			return true
		}
	}
	return false
}

// Update advances the fade-in and lets the widgets handle input.
func (lb *LinkBar) Update(dt float64) {
	if !lb.shown {
		return
	}
	v, _ := lb.fadeIn.Update(float32(dt))
	lb.alpha = float64(v)
	lb.UI.Update()
}

// Draw renders the bar with its fade-in opacity.
func (lb *LinkBar) Draw(screen *ebiten.Image) {
	if !lb.shown || lb.alpha <= 0 {
		return
	}
	if lb.alpha >= 1 {
		lb.UI.Draw(screen)
		return
	}

	b := screen.Bounds()
	if lb.offscreen == nil || lb.offscreen.Bounds().Size() != b.Size() {
		if lb.offscreen != nil {
			lb.offscreen.Deallocate()
		}
		lb.offscreen = ebiten.NewImage(b.Dx(), b.Dy())
	} else {
		lb.offscreen.Clear()
	}
	lb.UI.Draw(lb.offscreen)

	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(float32(lb.alpha))
	screen.DrawImage(lb.offscreen, op)
}
