package page

import (
	"context"
	"errors"
	"image/color"
	"math"
	"testing"
	"testing/fstest"

	"github.com/automoto/showcase/assets"
	"github.com/automoto/showcase/commands"
	"github.com/automoto/showcase/graph"
	"github.com/automoto/showcase/layout"
	"github.com/automoto/showcase/motion"
	"github.com/automoto/showcase/phi"
	"github.com/hajimehoshi/ebiten/v2"
)

type recorder struct {
	cmds []commands.Command
}

func (r *recorder) publish(cmds ...commands.Command) {
	r.cmds = append(r.cmds, cmds...)
}

func newRuntime(rec *recorder, keys ...string) *Runtime {
	lib := assets.NewLibrary(fstest.MapFS{})
	for _, k := range keys {
		lib.Put(k, ebiten.NewImage(100, 40))
	}
	return &Runtime{
		Library: lib,
		Motion:  motion.NewShared(motion.DefaultSharedConfig),
		Publish: rec.publish,
		Caption: func(string) *ebiten.Image { return ebiten.NewImage(60, 20) },
	}
}

var opaque = color.RGBA{R: 255, G: 255, B: 255, A: 255}

var baseKeys = []string{"title", "slogan", "arrow", "TM", "cheese"}

func twoFrames(p *Page) error {
	p.NewContainer("a", p.Frames).AddChild(graph.NewRect("ra", 10, 10, opaque))
	p.NewContainer("b", p.Frames).AddChild(graph.NewRect("rb", 10, 10, opaque))
	return nil
}

func mustBuild(t *testing.T, p *Page) {
	t.Helper()
	if err := p.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := p.Build(); err != nil {
		t.Fatalf("Build: %v", err)
	}
}

func TestSettingsDefaults(t *testing.T) {
	p := New(Settings{Key: "x"}, Hooks{}, newRuntime(&recorder{}))
	if p.Settings.Title != "title" || p.Settings.Slogan != "slogan" {
		t.Errorf("Title, Slogan = %q, %q, want title, slogan", p.Settings.Title, p.Settings.Slogan)
	}
	if p.Settings.Fractal.MaxIterations != DefaultMaxIterations {
		t.Errorf("MaxIterations = %d, want %d", p.Settings.Fractal.MaxIterations, DefaultMaxIterations)
	}
	if p.Settings.ReferenceWidth != layout.DefaultReferenceWidth {
		t.Errorf("ReferenceWidth = %v, want %v", p.Settings.ReferenceWidth, layout.DefaultReferenceWidth)
	}
}

func TestTexturesListsEverything(t *testing.T) {
	p := New(Settings{
		Key:      "x",
		Textures: []string{"f"},
		TMTitle:  true,
		UI:       []Shortcut{{Texture: "cheese", Page: "home"}},
	}, Hooks{}, newRuntime(&recorder{}))

	want := []string{"title", "slogan", "arrow", "TM", "f", "cheese"}
	got := p.Textures()
	if len(got) != len(want) {
		t.Fatalf("Textures() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Textures()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLoadMissingTexture(t *testing.T) {
	p := New(Settings{Key: "x", Textures: []string{"nope"}}, Hooks{}, newRuntime(&recorder{}, baseKeys...))
	err := p.Load(context.Background())
	if !errors.Is(err, assets.ErrMissingTexture) {
		t.Fatalf("Load error = %v, want ErrMissingTexture", err)
	}
	if p.Built() {
		t.Error("page built after failed load")
	}
}

func TestBuildCreatesBaseNodes(t *testing.T) {
	rec := &recorder{}
	p := New(Settings{
		Key:      "x",
		TMSlogan: true,
		UI:       []Shortcut{{Texture: "cheese", Page: "home"}},
	}, Hooks{}, newRuntime(rec, baseKeys...))
	mustBuild(t, p)

	if p.TMTitle != nil {
		t.Error("TMTitle created without TMTitle setting")
	}
	if p.TMSlogan == nil || p.TMSlogan.Alpha != 0.125 {
		t.Errorf("TMSlogan = %+v, want alpha 0.125", p.TMSlogan)
	}
	if p.Title2.Alpha != 0.5 || p.Slogan2.Alpha != 0.5 {
		t.Errorf("echo alphas = %v, %v, want 0.5", p.Title2.Alpha, p.Slogan2.Alpha)
	}
	if len(p.UI) != 1 {
		t.Fatalf("len(UI) = %d, want 1", len(p.UI))
	}

	p.UI[0].OnClick()
	if len(rec.cmds) != 1 || rec.cmds[0] != (commands.RequestPageLoad{Key: "home"}) {
		t.Errorf("shortcut click = %v, want RequestPageLoad{home}", rec.cmds)
	}

	root := p.Root
	if err := p.Build(); err != nil || p.Root != root {
		t.Error("second Build rebuilt the page")
	}
}

func TestTitleAndArrowClicks(t *testing.T) {
	rec := &recorder{}
	p := New(Settings{Key: "x"}, Hooks{}, newRuntime(rec, baseKeys...))
	mustBuild(t, p)

	p.Title2.OnClick()
	want := []commands.Command{
		commands.TriggerColorPulse{Index: motion.ColorTitle, Amount: 1},
		commands.TriggerAccel{Target: commands.AccelTitle, Amount: 8},
		commands.RequestFrameAdvance{Offset: 1},
	}
	if len(rec.cmds) != len(want) {
		t.Fatalf("title click = %v, want %v", rec.cmds, want)
	}
	for i := range want {
		if rec.cmds[i] != want[i] {
			t.Errorf("title click[%d] = %#v, want %#v", i, rec.cmds[i], want[i])
		}
	}

	rec.cmds = nil
	p.LeftArrow.OnClick()
	if got := rec.cmds[len(rec.cmds)-1]; got != (commands.RequestFrameAdvance{Offset: -1}) {
		t.Errorf("left arrow last command = %#v, want RequestFrameAdvance{-1}", got)
	}
	if got := rec.cmds[0]; got != (commands.TriggerColorPulse{Index: motion.ColorSlogan, Amount: 1}) {
		t.Errorf("left arrow first command = %#v, want slogan color pulse", got)
	}
}

func TestApplyFrameAdvance(t *testing.T) {
	p := New(Settings{Key: "x"}, Hooks{Init: twoFrames}, newRuntime(&recorder{}, baseKeys...))
	mustBuild(t, p)

	a, b := p.Frames.Children()[0], p.Frames.Children()[1]
	if !a.Visible || b.Visible {
		t.Fatalf("after build visible = %v, %v, want true, false", a.Visible, b.Visible)
	}

	if !p.Apply(commands.RequestFrameAdvance{Offset: 1}) {
		t.Fatal("Apply(RequestFrameAdvance) = false")
	}
	p.UpdateBase(10)
	if p.Frames.ScaleX != 0 {
		t.Errorf("mid transition scale = %v, want 0", p.Frames.ScaleX)
	}
	if a.Visible || !b.Visible {
		t.Errorf("mid transition visible = %v, %v, want false, true", a.Visible, b.Visible)
	}

	p.UpdateBase(10)
	if p.Frames.ScaleX != 1 || p.Sequencer.Current() != 1 {
		t.Errorf("after transition scale, current = %v, %d, want 1, 1", p.Frames.ScaleX, p.Sequencer.Current())
	}

	p.Reload()
	if p.Sequencer.Current() != 0 || !a.Visible || b.Visible {
		t.Error("Reload did not return to the first frame")
	}
}

func TestApplyIgnoresSharedCommands(t *testing.T) {
	p := New(Settings{Key: "x"}, Hooks{}, newRuntime(&recorder{}, baseKeys...))
	mustBuild(t, p)

	for _, c := range []commands.Command{
		commands.TriggerColorPulse{Index: 0, Amount: 1},
		commands.TriggerAccel{Target: commands.AccelGlow, Amount: 8},
		commands.RequestPageLoad{Key: "home"},
	} {
		if p.Apply(c) {
			t.Errorf("Apply(%#v) = true, want false", c)
		}
	}
}

func TestApplySpinnerCommands(t *testing.T) {
	p := New(Settings{Key: "x"}, Hooks{}, newRuntime(&recorder{}, baseKeys...))
	s := p.AddSpinner("cheese", NewSpinner(0.02, motion.NewFastImpulse(motion.Additive)))

	p.Apply(commands.FlipRotation{Spinner: "cheese"})
	if s.Direction != -1 {
		t.Errorf("Direction = %v, want -1", s.Direction)
	}
	p.Apply(commands.TriggerAccel{Target: commands.AccelSpinner, Spinner: "cheese", Amount: 8})
	if s.Accel.Value() != 8 {
		t.Errorf("Accel = %v, want 8", s.Accel.Value())
	}
	// unknown spinners are ignored
	p.Apply(commands.FlipRotation{Spinner: "nope"})
}

func TestInitErrorLeavesPageUnbuilt(t *testing.T) {
	boom := errors.New("boom")
	p := New(Settings{Key: "x"}, Hooks{Init: func(*Page) error { return boom }}, newRuntime(&recorder{}, baseKeys...))
	if err := p.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := p.Build(); !errors.Is(err, boom) {
		t.Errorf("Build error = %v, want boom", err)
	}
	if p.Built() {
		t.Error("Built() = true after Init error")
	}
}

func TestLayoutBaseHorizontal(t *testing.T) {
	var hooked Frame
	p := New(Settings{
		Key:     "x",
		TMTitle: true,
		UI:      []Shortcut{{Texture: "cheese", Page: "home"}},
	}, Hooks{Layout: func(_ *Page, f Frame) { hooked = f }}, newRuntime(&recorder{}, baseKeys...))
	mustBuild(t, p)

	m := layout.Compute(2048, 2048, 0)
	p.LayoutBase(m)

	if math.Abs(p.Title1.Y-(-phi.Conjugate*1024)) > 1e-9 || p.Title1.X != 0 {
		t.Errorf("Title1 = (%v, %v), want (0, %v)", p.Title1.X, p.Title1.Y, -phi.Conjugate*1024)
	}
	if p.Slogan1.ScaleX != 0.75 {
		t.Errorf("Slogan1.ScaleX = %v, want 0.75", p.Slogan1.ScaleX)
	}
	if p.LeftArrow.ScaleX != -0.5 || p.RightArrow.ScaleX != 0.5 {
		t.Errorf("arrow scales = %v, %v, want -0.5, 0.5", p.LeftArrow.ScaleX, p.RightArrow.ScaleX)
	}
	if math.Abs(p.RightArrow.X-phi.Conjugate*1024) > 1e-9 {
		t.Errorf("RightArrow.X = %v, want %v", p.RightArrow.X, phi.Conjugate*1024)
	}

	// title is 100 wide at scale 1
	if want := p.Title1.X + 50 + 80; p.TMTitle.X != want {
		t.Errorf("TMTitle.X = %v, want %v", p.TMTitle.X, want)
	}

	// cheese is 100 wide at scale 0.2, left aligned 50 px in
	if want := -1024.0 + 50 + 10; math.Abs(p.UI[0].X-want) > 1e-9 {
		t.Errorf("shortcut X = %v, want %v", p.UI[0].X, want)
	}
	if want := -1024.0 + 150; p.UI[0].Y != want {
		t.Errorf("shortcut Y = %v, want %v", p.UI[0].Y, want)
	}

	if !hooked.Horizontal || hooked.CenterX != 1024 {
		t.Errorf("layout hook frame = %+v, want horizontal with CenterX 1024", hooked)
	}
}

func TestLayoutBaseVertical(t *testing.T) {
	p := New(Settings{Key: "x", Story: []string{"a"}}, Hooks{Init: func(p *Page) error {
		p.AddStory()
		return nil
	}}, newRuntime(&recorder{}, baseKeys...))
	mustBuild(t, p)

	p.LayoutBase(layout.Compute(1000, 2000, 0))
	if p.RightArrow.ScaleX != 0.75 || p.LeftArrow.ScaleX != -0.75 {
		t.Errorf("arrow scales = %v, %v, want 0.75, -0.75", p.RightArrow.ScaleX, p.LeftArrow.ScaleX)
	}
	if p.Story.ScaleX != 1.5 {
		t.Errorf("story scale = %v, want 1.5", p.Story.ScaleX)
	}
}

func TestUpdateBaseTintsAndStory(t *testing.T) {
	rec := &recorder{}
	p := New(Settings{Key: "x", Story: []string{"one", "two"}}, Hooks{Init: func(p *Page) error {
		p.AddStory()
		return nil
	}}, newRuntime(rec, baseKeys...))
	mustBuild(t, p)

	if p.Story == nil || len(p.Story.Captions()) != 2 {
		t.Fatalf("story = %+v, want two captions", p.Story)
	}

	// a third of a caption's lifetime is inside the hold
	p.UpdateBase(100)

	m := p.Motion()
	if p.Title2.Tint != m.Color(motion.ColorTitle).RGBA(motion.EchoOffset) {
		t.Errorf("Title2.Tint = %v, want echo of color 0", p.Title2.Tint)
	}
	if p.Slogan1.Tint != m.Color(motion.ColorSlogan).RGBA(0) {
		t.Errorf("Slogan1.Tint = %v, want color 2", p.Slogan1.Tint)
	}

	caps := p.Story.Captions()
	if !caps[0].Visible || caps[1].Visible {
		t.Errorf("caption visibility = %v, %v, want true, false", caps[0].Visible, caps[1].Visible)
	}
	if caps[0].Alpha != 1 {
		t.Errorf("caption alpha = %v, want 1", caps[0].Alpha)
	}
	if caps[0].Tint != m.Color(motion.ColorContent).RGBA(0) {
		t.Errorf("caption tint = %v, want color 3", caps[0].Tint)
	}

	p.Story.OnClick()
	if len(rec.cmds) != 1 || rec.cmds[0] != (commands.AdvanceStory{}) {
		t.Fatalf("story click = %v, want AdvanceStory", rec.cmds)
	}
	p.Apply(rec.cmds[0])
	p.UpdateBase(0)
	if !caps[1].Visible || caps[0].Visible {
		t.Error("AdvanceStory did not show the second caption")
	}
}

func TestSpinnerOwnImpulse(t *testing.T) {
	s := NewSpinner(0.02, motion.NewFastImpulse(motion.Additive))
	s.Kick(8)
	s.Advance(1, 100)
	if want := 0.02 * 9; math.Abs(s.Angle-want) > 1e-12 {
		t.Errorf("Angle = %v, want %v", s.Angle, want)
	}
	if s.Accel.Value() >= 8 {
		t.Errorf("Accel = %v, want decayed below 8", s.Accel.Value())
	}
}

func TestSpinnerSharedMultiplier(t *testing.T) {
	s := NewSpinner(0.02, nil)
	s.Flip()
	s.Kick(8) // no impulse, ignored
	s.Advance(1, 3)
	if want := -0.06; math.Abs(s.Angle-want) > 1e-12 {
		t.Errorf("Angle = %v, want %v", s.Angle, want)
	}
	if got := NewSpinner(1, nil).Pulse(); got != 1 {
		t.Errorf("Pulse at angle 0 = %v, want 1", got)
	}
}
