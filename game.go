package main

import (
	"context"
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/hako/durafmt"
)

const (
	initialWindowW, initialWindowH = 1280, 720

	// clamp dt after a stall so one long frame cannot slam the camera
	// onto its target
	maxFrameDt = 0.25

	nearClip = 0.05
)

var lastSettingsSave time.Time

// sceneList is the diagnostic scene collaborator: it tracks attached
// shape nodes so Draw can render them. Attach/Detach and Draw all run on
// the frame goroutine.
type sceneList struct {
	nodes []*Shape
}

func (s *sceneList) Attach(sh *Shape) { s.nodes = append(s.nodes, sh) }

func (s *sceneList) Detach(sh *Shape) {
	for i, n := range s.nodes {
		if n == sh {
			s.nodes = append(s.nodes[:i], s.nodes[i+1:]...)
			return
		}
	}
}

// Game hosts the interpreter in the ebiten loop and renders the
// diagnostic view of its scene.
type Game struct {
	ctx     context.Context
	adapter *wsAdapter
	world   *world
	scene   *sceneList
	last    time.Time
	started time.Time
	batch   []string
}

func newGame(ctx context.Context, adapter *wsAdapter) *Game {
	scene := &sceneList{}
	return &Game{
		ctx:     ctx,
		adapter: adapter,
		world:   newWorld(scene),
		scene:   scene,
		started: time.Now(),
	}
}

func (g *Game) Update() error {
	select {
	case <-g.ctx.Done():
		return ebiten.Termination
	default:
	}

	now := time.Now()
	dt := 0.0
	if !g.last.IsZero() {
		dt = now.Sub(g.last).Seconds()
		if dt > maxFrameDt {
			dt = maxFrameDt
		}
	}
	g.last = now

	g.batch = g.batch[:0]
drain:
	for {
		select {
		case m := <-g.adapter.Messages():
			g.batch = append(g.batch, m)
		default:
			break drain
		}
	}

	// With the tracker gone, anything still buffered is stale; keep the
	// scene and camera but stop the placement cycle from advancing.
	if !g.adapter.Connected() {
		g.world.dropBuffered(len(g.batch))
		g.batch = g.batch[:0]
	}

	g.world.tick(dt, g.batch)

	if settingsDirty && now.Sub(lastSettingsSave) >= 5*time.Second {
		saveSettings()
		settingsDirty = false
		lastSettingsSave = now
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	w := float64(screen.Bounds().Dx())
	h := float64(screen.Bounds().Dy())

	g.drawDeadZoneBands(screen, w, h)

	for _, s := range g.scene.nodes {
		g.drawShape(screen, s, w, h)
	}
	g.drawCursor(screen, w, h)
	g.drawHUD(screen, h)
}

// worldToScreen projects a world point through the interpreter's own
// camera; ok is false when the point is behind the eye.
func (g *Game) worldToScreen(p Vec3, w, h float64) (float64, float64, float64, bool) {
	fwd, right, up := g.world.rig.Basis()
	rel := p.Sub(g.world.rig.Position())
	zc := rel.Dot(fwd)
	if zc < nearClip {
		return 0, 0, 0, false
	}
	half := math.Tan(viewFOV / 2)
	sx := (0.5 + rel.Dot(right)/(2*zc*half*viewAspect)) * w
	sy := (0.5 - rel.Dot(up)/(2*zc*half)) * h
	return sx, sy, zc, true
}

func (g *Game) drawShape(screen *ebiten.Image, s *Shape, w, h float64) {
	sx, sy, zc, ok := g.worldToScreen(s.Pos, w, h)
	if !ok {
		return
	}
	size := float32(math.Min(120, 60/zc*gs.PlaneDistance))
	if size < 2 {
		size = 2
	}

	col := color.RGBA{0x40, 0xc0, 0x40, 0xff}
	if s == g.world.shapes.active {
		col = color.RGBA{0xff, 0xff, 0x40, 0xff}
	}
	x, y := float32(sx), float32(sy)
	if s.Kind == "cube" {
		vector.StrokeRect(screen, x-size/2, y-size/2, size, size, 2, col, true)
	} else {
		vector.StrokeCircle(screen, x, y, size/2, 2, col, true)
	}
}

func (g *Game) drawCursor(screen *ebiten.Image, w, h float64) {
	// marker anchored where the cursor ray meets the fixed ground plane
	anchor := projectFixedPlane(g.world.rig, g.world.cursorX, g.world.cursorY, gs.PlaneOffset)
	if sx, sy, _, ok := g.worldToScreen(anchor, w, h); ok {
		vector.StrokeCircle(screen, float32(sx), float32(sy), 4, 1, color.RGBA{0x80, 0x80, 0xff, 0xff}, true)
	}

	cx := float32(g.world.cursorX / 100 * w)
	cy := float32(g.world.cursorY / 100 * h)
	col := color.RGBA{0xff, 0xff, 0xff, 0xff}
	if g.world.clickHeld {
		col = color.RGBA{0xff, 0x40, 0x40, 0xff}
	}
	vector.StrokeLine(screen, cx-8, cy, cx+8, cy, 1, col, true)
	vector.StrokeLine(screen, cx, cy-8, cx, cy+8, 1, col, true)
}

// drawDeadZoneBands marks the 25/75 percent thresholds the push mapping
// uses while a depth pick is pending.
func (g *Game) drawDeadZoneBands(screen *ebiten.Image, w, h float64) {
	if g.world.seq != seqAwaitZ {
		return
	}
	col := color.RGBA{0x50, 0x50, 0x50, 0xff}
	vector.StrokeLine(screen, 0, float32(h*0.25), float32(w), float32(h*0.25), 1, col, false)
	vector.StrokeLine(screen, 0, float32(h*0.75), float32(w), float32(h*0.75), 1, col, false)
}

func (g *Game) drawHUD(screen *ebiten.Image, h float64) {
	conn := "disconnected"
	if g.adapter.Connected() {
		conn = "connected"
	}
	up := durafmt.Parse(time.Since(g.started).Round(time.Second)).LimitFirstN(2)

	hud := fmt.Sprintf("%s  %s up %s  recv %s\nstate %s  placed %d  cmds %d ok / %d rejected / %d dropped",
		conn, gs.ServerURL, up,
		humanize.Bytes(g.adapter.BytesRead()),
		g.world.seq, len(g.world.shapes.placed),
		g.world.accepted, g.world.rejected, g.world.dropped)
	if gs.ShowFPS {
		hud = fmt.Sprintf("%.0f fps  %s", ebiten.ActualFPS(), hud)
	}
	ebitenutil.DebugPrintAt(screen, hud, 8, 8)

	tail := consoleTail(6)
	for i, msg := range tail {
		y := int(h) - (len(tail)-i)*14 - 8
		ebitenutil.DebugPrintAt(screen, msg, 8, y)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
