package systems

import (
	"context"
	"errors"
	"math"
	"testing"
	"testing/fstest"
	"time"

	"github.com/automoto/showcase/assets"
	"github.com/automoto/showcase/commands"
	cfg "github.com/automoto/showcase/config"
	"github.com/automoto/showcase/page"
	"github.com/automoto/showcase/pages"
	"github.com/automoto/showcase/systems/factory"
	"github.com/automoto/showcase/transition"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/browser"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var textures = []string{
	"loading", "title", "slogan", "arrow", "TM", "cheese", "f", "pieceQuest", "scholar",
	"duelist", "mage", "awakening", "epicFranchise", "comingSoon",
}

type harness struct {
	ecs     *ecs.ECS
	visited []string
	fail    map[string]bool
	// deferred holds loads that finish only when run
	deferred []func()
	hold     bool
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	lib := assets.NewLibrary(fstest.MapFS{})
	for _, k := range textures {
		lib.Put(k, ebiten.NewImage(200, 100))
	}

	h := &harness{
		ecs:  ecs.NewECS(donburi.NewWorld()),
		fail: make(map[string]bool),
	}
	_, err := factory.CreateController(h.ecs, factory.ControllerOptions{
		Library: lib,
		Width:   1280,
		Height:  720,
		Load:    h.load,
		Visited: func(key string) { h.visited = append(h.visited, key) },
	})
	if err != nil {
		t.Fatalf("CreateController: %v", err)
	}
	SubscribeCommands(h.ecs.World)
	UpdateViewport(h.ecs)
	return h
}

func (h *harness) load(p *page.Page, done func(error)) {
	run := func() {
		if h.fail[p.Key()] {
			done(errors.New("media unavailable"))
			return
		}
		done(p.Load(context.Background()))
	}
	if h.hold {
		h.deferred = append(h.deferred, run)
		return
	}
	run()
}

func (h *harness) world() donburi.World { return h.ecs.World }

// show requests key and applies the finished load.
func (h *harness) show(t *testing.T, key string) {
	t.Helper()
	RequestPage(h.world(), key)
	UpdatePageLoads(h.ecs)
}

// finishFade runs the fade to the end and returns the ticks until the swap.
func (h *harness) finishFade(t *testing.T) int {
	t.Helper()
	pg := pagesOf(h.world())
	swapAt := -1
	before := pg.Attached
	for i := 1; i <= 200; i++ {
		UpdatePageFade(h.ecs)
		if swapAt < 0 && pg.Attached != before {
			swapAt = i
		}
		if !pg.Fade.Fading() {
			return swapAt
		}
	}
	t.Fatal("fade did not finish")
	return swapAt
}

func TestFirstPageAttachesImmediately(t *testing.T) {
	h := newHarness(t)
	pg := pagesOf(h.world())

	RequestPage(h.world(), "HOME")
	if !pg.Loading[pages.KeyHome] {
		t.Fatal("home should be loading")
	}
	UpdatePageLoads(h.ecs)

	if pg.Attached == nil || pg.Attached.Key() != pages.KeyHome {
		t.Fatalf("Attached = %v, want home", pg.Attached)
	}
	if pg.Fade.Fading() {
		t.Error("first page should not fade in")
	}
	if len(pg.Loading) != 0 {
		t.Errorf("Loading = %v, want empty", pg.Loading)
	}
	if len(h.visited) != 1 || h.visited[0] != pages.KeyHome {
		t.Errorf("visited = %v, want [home]", h.visited)
	}
	st := stageOf(h.world())
	if got := st.PageLayer.Children(); len(got) != 1 || got[0] != pg.Attached.Root {
		t.Error("page root should be the only child of the page layer")
	}
	if !linkBarOf(h.world()).Bar.Shown() {
		t.Error("link bar should show with the first page")
	}
}

func TestUnknownKeyLoadsHome(t *testing.T) {
	h := newHarness(t)
	h.show(t, "nowhere")
	if got := pagesOf(h.world()).Attached.Key(); got != pages.KeyHome {
		t.Errorf("Attached = %q, want home", got)
	}
}

func TestLoadingShowsSpinnerAndBlocksClicks(t *testing.T) {
	h := newHarness(t)
	h.show(t, pages.KeyHome)
	h.hold = true

	RequestPage(h.world(), pages.KeyPieceQuest)
	UpdatePageFade(h.ecs)

	st := stageOf(h.world())
	if st.Overlay.Alpha != cfg.Fade.LoadingAlpha {
		t.Errorf("overlay alpha = %v, want %v", st.Overlay.Alpha, cfg.Fade.LoadingAlpha)
	}
	if !st.Loading.Visible {
		t.Error("spinner should be visible while loading")
	}
	x, y, w, ht := pagesOf(h.world()).Attached.Title2.Bounds()
	if Click(h.ecs, int(x+w/2), int(y+ht/2)) {
		t.Error("click should be swallowed while loading")
	}
	if !pointerOf(h.world()).Blocked {
		t.Error("pointer should report blocked")
	}

	// a second request for the same page does not start another load
	RequestPage(h.world(), pages.KeyPieceQuest)
	if len(h.deferred) != 1 {
		t.Errorf("loads started = %d, want 1", len(h.deferred))
	}

	h.deferred[0]()
	UpdatePageLoads(h.ecs)
	UpdatePageFade(h.ecs)
	if st.Loading.Visible {
		t.Error("spinner should hide once the page loaded")
	}
}

func TestLoadFailureKeepsCurrentPage(t *testing.T) {
	h := newHarness(t)
	h.show(t, pages.KeyHome)
	pg := pagesOf(h.world())
	home := pg.Attached

	h.fail[pages.KeyPieceQuest] = true
	h.show(t, pages.KeyPieceQuest)

	if pg.Attached != home {
		t.Errorf("Attached = %q, want home", pg.Attached.Key())
	}
	if _, ok := pg.Cache[pages.KeyPieceQuest]; ok {
		t.Error("failed page should not be cached")
	}
	if pg.Fade.Fading() || len(pg.Loading) != 0 {
		t.Error("failed load should leave the controller idle")
	}

	// a later request retries
	delete(h.fail, pages.KeyPieceQuest)
	h.show(t, pages.KeyPieceQuest)
	if _, ok := pg.Cache[pages.KeyPieceQuest]; !ok {
		t.Error("retry should cache the page")
	}
	if pg.Fade.Leg() != transition.LegOut {
		t.Errorf("Leg() = %v, want out", pg.Fade.Leg())
	}
}

func TestFailedFirstPageFallsBackToHome(t *testing.T) {
	h := newHarness(t)
	h.fail[pages.KeyAwakening] = true

	RequestPage(h.world(), pages.KeyAwakening)
	UpdatePageLoads(h.ecs)

	pg := pagesOf(h.world())
	if pg.Attached == nil || pg.Attached.Key() != pages.KeyHome {
		t.Errorf("Attached = %v, want home", pg.Attached)
	}
}

func TestFadeSwapsPages(t *testing.T) {
	h := newHarness(t)
	h.show(t, pages.KeyHome)
	pg := pagesOf(h.world())
	st := stageOf(h.world())
	home := pg.Attached

	h.show(t, pages.KeyPieceQuest)
	if pg.Attached != home {
		t.Fatal("swap should wait for the opaque overlay")
	}

	UpdatePageFade(h.ecs)
	UpdatePageFade(h.ecs)
	if want := cfg.Fade.Rate; math.Abs(st.Overlay.Alpha-want) > 1e-9 {
		t.Errorf("overlay alpha = %v, want %v", st.Overlay.Alpha, want)
	}

	swapAt := h.finishFade(t)
	if swapAt < 37 || swapAt > 39 {
		t.Errorf("swap after %d more ticks, want 38 or so", swapAt)
	}
	if pg.Attached.Key() != pages.KeyPieceQuest {
		t.Errorf("Attached = %q, want piecequest", pg.Attached.Key())
	}
	if home.Root.Parent() != nil {
		t.Error("old page should be detached")
	}
	if st.Overlay.Alpha != 0 {
		t.Errorf("overlay alpha = %v after the fade, want 0", st.Overlay.Alpha)
	}
	if st.MaxIterations != 20 {
		t.Errorf("MaxIterations = %d, want 20", st.MaxIterations)
	}
	want, _ := assets.JuliaShader(20)
	for i, j := range st.Julia {
		if j.Shader != want {
			t.Errorf("julia filter %d not recompiled", i)
		}
	}
	if got := h.visited[len(h.visited)-1]; got != pages.KeyPieceQuest {
		t.Errorf("last visited = %q, want piecequest", got)
	}
}

func TestCachedPageFadesWithoutLoading(t *testing.T) {
	h := newHarness(t)
	h.show(t, pages.KeyHome)
	h.show(t, pages.KeyPieceQuest)
	h.finishFade(t)

	h.hold = true
	RequestPage(h.world(), pages.KeyHome)
	pg := pagesOf(h.world())
	if len(h.deferred) != 0 || len(pg.Loading) != 0 {
		t.Error("cached page should not load again")
	}
	if !pg.Fade.Fading() {
		t.Error("cached page should fade in")
	}
}

func TestClickAppliesCommandsBeforeMotion(t *testing.T) {
	h := newHarness(t)
	h.show(t, pages.KeyHome)
	p := pagesOf(h.world()).Attached
	m := motionOf(h.world()).Shared

	x, y, w, ht := p.Title2.Bounds()
	if !Click(h.ecs, int(x+w/2), int(y+ht/2)) {
		t.Fatal("click on the title missed")
	}
	if m.Title.Value() != 0 {
		t.Error("commands should wait for ProcessCommands")
	}
	ProcessCommands(h.ecs)
	if m.Title.Value() != cfg.Motion.Urgency {
		t.Errorf("title accel = %v, want %v", m.Title.Value(), cfg.Motion.Urgency)
	}
	if !p.Sequencer.Animating() {
		t.Error("title click should start a frame transition")
	}
}

func TestSharedCommands(t *testing.T) {
	h := newHarness(t)
	h.show(t, pages.KeyHome)
	m := motionOf(h.world()).Shared

	before := m.Color(3).Sample(0)
	commands.Publish(h.world(),
		commands.TriggerColorPulse{Index: 3, Amount: 1},
		commands.TriggerAccel{Target: commands.AccelGlow, Amount: 8},
		commands.TriggerAccel{Target: commands.AccelFractal, Amount: 4},
		commands.TriggerColorPulse{Index: 9, Amount: 1},
	)
	julia := m.Julia.Value()
	ProcessCommands(h.ecs)

	if m.Color(3).Sample(0) == before {
		t.Error("color pulse should move color 3")
	}
	if m.Glow.Value() != 8 {
		t.Errorf("glow accel = %v, want 8", m.Glow.Value())
	}
	if got := m.Julia.Value(); got != julia+4 {
		t.Errorf("fractal accel = %v, want %v", got, julia+4)
	}
}

func TestWindowCommands(t *testing.T) {
	h := newHarness(t)

	var fullscreen bool
	var opened []string
	isFullscreen = func() bool { return fullscreen }
	setFullscreen = func(v bool) { fullscreen = v }
	openURL = func(url string) error {
		opened = append(opened, url)
		return nil
	}
	t.Cleanup(func() {
		isFullscreen = ebiten.IsFullscreen
		setFullscreen = ebiten.SetFullscreen
		openURL = browser.OpenURL
	})

	commands.Publish(h.world(), commands.ToggleFullscreen{}, commands.OpenURL{URL: cfg.Links.YouTube})
	ProcessCommands(h.ecs)

	if !fullscreen {
		t.Error("ToggleFullscreen should enter fullscreen")
	}
	if len(opened) != 1 || opened[0] != cfg.Links.YouTube {
		t.Errorf("opened = %v, want [%s]", opened, cfg.Links.YouTube)
	}
}

func TestResizeIsDebounced(t *testing.T) {
	h := newHarness(t)
	start := time.Unix(1000, 0)
	clock := start
	now = func() time.Time { return clock }
	t.Cleanup(func() { now = time.Now })

	vp := viewportOf(h.world())
	Resize(h.world(), 800, 600)
	Resize(h.world(), 1024, 600)

	clock = start.Add(200 * time.Millisecond)
	UpdateViewport(h.ecs)
	if vp.Size.Width != 1280 {
		t.Errorf("width = %d before the window passed, want 1280", vp.Size.Width)
	}

	clock = start.Add(cfg.Layout.Debounce)
	UpdateViewport(h.ecs)
	if vp.Size.Width != 1024 || vp.Metrics.Width != 1024 {
		t.Errorf("width = %d, metrics %v, want 1024", vp.Size.Width, vp.Metrics.Width)
	}
	st := stageOf(h.world())
	if st.Overlay.Width != 1024 || st.PageLayer.X != 512 {
		t.Errorf("overlay width %v, page layer x %v, want 1024, 512", st.Overlay.Width, st.PageLayer.X)
	}
}

func TestPortraitBackgroundBand(t *testing.T) {
	h := newHarness(t)
	h.show(t, pages.KeyHome)
	viewportOf(h.world()).Size.Width = 600
	viewportOf(h.world()).Size.Height = 1000
	viewportOf(h.world()).Dirty = true
	UpdateViewport(h.ecs)

	band := 1000 * cfg.Layout.PortraitBand
	for i, l := range stageOf(h.world()).Layers {
		if l.Height != band || math.Abs(l.Y-(1000-band)/2) > 1e-9 {
			t.Errorf("layer %d height, y = %v, %v, want %v, %v", i, l.Height, l.Y, band, (1000-band)/2)
		}
	}
	if got := pagesOf(h.world()).Attached.Metrics(); got.Horizontal {
		t.Error("page should be laid out vertically")
	}
}

func TestUpdateMotionFeedsShaders(t *testing.T) {
	h := newHarness(t)
	st := stageOf(h.world())
	m := motionOf(h.world())

	UpdateMotion(h.ecs)
	for i, j := range st.Julia {
		p := m.Shared.Fractal.Parameters(i)
		if j.Float("Time") != float64(float32(p.Time)) {
			t.Errorf("julia %d Time = %v, want %v", i, j.Float("Time"), p.Time)
		}
	}
	if m.Spinner != cfg.Motion.SpinnerRate || st.Loading.Rotation != m.Spinner {
		t.Errorf("spinner = %v, rotation %v, want %v", m.Spinner, st.Loading.Rotation, cfg.Motion.SpinnerRate)
	}
}

func TestPauseFreezesMotion(t *testing.T) {
	h := newHarness(t)
	cfg.Debug.PauseEnabled = true
	t.Cleanup(func() { cfg.Debug.PauseEnabled = false })

	TogglePause(h.ecs)
	m := motionOf(h.world())
	before := m.Shared.Fractal.Time()
	WithPauseCheck(UpdateMotion)(h.ecs)
	if m.Shared.Fractal.Time() != before {
		t.Error("paused motion should not advance")
	}

	TogglePause(h.ecs)
	WithPauseCheck(UpdateMotion)(h.ecs)
	if m.Shared.Fractal.Time() == before {
		t.Error("resumed motion should advance")
	}
}

func TestLinkBarDisabledWhileFading(t *testing.T) {
	h := newHarness(t)
	h.show(t, pages.KeyHome)
	h.show(t, pages.KeyPieceQuest)

	bar := linkBarOf(h.world()).Bar
	syncLinkBar(h.world())
	if bar.Enabled() {
		t.Error("link bar should be disabled during a fade")
	}
	h.finishFade(t)
	syncLinkBar(h.world())
	if !bar.Enabled() {
		t.Error("link bar should be enabled after the fade")
	}
}

func TestFadeBlocksClicksOnBothPages(t *testing.T) {
	h := newHarness(t)
	h.show(t, pages.KeyHome)
	pg := pagesOf(h.world())
	home := pg.Attached
	h.show(t, pages.KeyPieceQuest)
	next := pg.Cache[pages.KeyPieceQuest]

	centre := func(p *page.Page) (int, int) {
		x, y, w, ht := p.Title2.Bounds()
		return int(x + w/2), int(y + ht/2)
	}
	for i := 0; pg.Fade.Fading(); i++ {
		if i > 200 {
			t.Fatal("fade did not finish")
		}
		if x, y := centre(home); Click(h.ecs, x, y) {
			t.Fatalf("tick %d: click on the outgoing page fired during the fade", i)
		}
		if x, y := centre(next); Click(h.ecs, x, y) {
			t.Fatalf("tick %d: click on the incoming page fired during the fade", i)
		}
		UpdatePageFade(h.ecs)
	}

	if pg.Attached != next {
		t.Fatalf("Attached = %q, want piecequest", pg.Attached.Key())
	}
	if x, y := centre(next); !Click(h.ecs, x, y) {
		t.Error("click should fire once the fade finished")
	}
}
