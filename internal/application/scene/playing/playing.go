// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sirupsen/logrus"

	"github.com/younwookim/lootrun/internal/application/replay"
	"github.com/younwookim/lootrun/internal/application/scene"
	"github.com/younwookim/lootrun/internal/application/simulation"
	"github.com/younwookim/lootrun/internal/application/state"
	"github.com/younwookim/lootrun/internal/application/system"
	"github.com/younwookim/lootrun/internal/domain/entity"
	"github.com/younwookim/lootrun/internal/domain/world"
	"github.com/younwookim/lootrun/internal/infrastructure/logger"
)

// Colors for rendering
var (
	colorBG        = color.RGBA{26, 26, 46, 255}
	colorPlayer    = color.RGBA{100, 200, 100, 255}
	colorDashing   = color.RGBA{220, 255, 220, 255}
	colorChest     = color.RGBA{255, 215, 0, 255}
	colorChestOpen = color.RGBA{110, 80, 40, 255}
	colorOutline   = color.RGBA{20, 20, 20, 255}
	colorHealthBG  = color.RGBA{60, 60, 60, 255}
	colorHealthFG  = color.RGBA{100, 200, 100, 255}
	colorPause     = color.RGBA{0, 0, 0, 128}
	colorGameOver  = color.RGBA{100, 0, 0, 180}

	tileColors = [entity.TileTypeCount]color.RGBA{
		entity.TileGrass:   {70, 130, 60, 255},
		entity.TileDirt:    {130, 100, 60, 255},
		entity.TileStone:   {110, 110, 120, 255},
		entity.TileFlowers: {90, 150, 80, 255},
	}

	enemyColors = map[entity.EnemyState]color.RGBA{
		entity.StateIdle:      {150, 150, 170, 255},
		entity.StatePacing:    {200, 150, 100, 255},
		entity.StateChasing:   {230, 110, 60, 255},
		entity.StateAttacking: {230, 40, 40, 255},
	}
)

// Screen shake intensities in pixels
const (
	shakePlayerHit = 4.0
	shakeKill      = 3.0
	shakeChest     = 1.5
	shakeDecay     = 0.85
)

// InputSource produces the intent for the next tick
type InputSource interface {
	Read() system.Intent
}

// Options configure a Playing scene
type Options struct {
	// Input defaults to the keyboard
	Input InputSource
	// Replayer feeds recorded frames instead of live input when set
	Replayer *replay.Replayer
	// RecordPath enables recording. The file is written on game over and on exit.
	RecordPath string
	// ConfigName is stored in recordings
	ConfigName string
}

// Playing is the main gameplay scene
type Playing struct {
	sim     *simulation.Simulation
	state   state.GameState
	input   InputSource
	screenW int
	screenH int

	// justPressed is swapped in tests
	justPressed func(ebiten.Key) bool

	// Time spent paused is removed from the timestamps the simulation sees
	pausedAt float64
	pausedMs float64

	// Feedback
	shake float64
	fx    *rand.Rand

	replayer *replay.Replayer

	// Input recording
	recorder   *replay.Recorder
	recordPath string

	log *logrus.Entry
}

// New creates a new Playing scene around sim
func New(sim *simulation.Simulation, screenW, screenH int, opts Options) *Playing {
	p := &Playing{
		sim:         sim,
		state:       state.StatePlaying,
		input:       opts.Input,
		screenW:     screenW,
		screenH:     screenH,
		justPressed: inpututil.IsKeyJustPressed,
		fx:          rand.New(rand.NewSource(sim.Seed())),
		replayer:    opts.Replayer,
		recordPath:  opts.RecordPath,
		log:         logger.For("playing"),
	}
	if p.input == nil {
		p.input = system.NewKeyboardInput(system.DefaultKeyBindings())
	}

	if opts.RecordPath != "" && opts.Replayer == nil {
		p.recorder = replay.NewRecorder(sim.Seed(), opts.ConfigName)
		p.log.WithFields(logrus.Fields{
			"file": opts.RecordPath,
			"seed": sim.Seed(),
		}).Info("recording enabled")
	}

	sim.SetEvents(simulation.Events{
		OnPlayerHit: func(int) {
			p.addShake(shakePlayerHit)
		},
		OnEnemyKilled: func(*entity.Enemy) {
			p.addShake(shakeKill)
		},
		OnChestOpened: func(*entity.Chest) {
			p.addShake(shakeChest)
		},
	})

	return p
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(nowMs float64) (scene.Scene, error) {
	if p.replayer != nil {
		return nil, p.updateReplay()
	}

	switch p.state {
	case state.StatePlaying:
		if p.justPressed(ebiten.KeyEscape) {
			p.state = p.state.TogglePause()
			p.pausedAt = nowMs
			return nil, nil
		}
		if p.justPressed(ebiten.KeyR) {
			if err := p.restart(); err != nil {
				return nil, err
			}
		}
		p.step(nowMs - p.pausedMs)
	case state.StatePaused:
		if p.justPressed(ebiten.KeyEscape) {
			p.pausedMs += nowMs - p.pausedAt
			p.state = p.state.TogglePause()
		}
	case state.StateGameOver:
		if p.justPressed(ebiten.KeyR) || p.justPressed(ebiten.KeyEnter) {
			if err := p.restart(); err != nil {
				return nil, err
			}
			p.state = state.StatePlaying
		}
	}

	return nil, nil // nil = stay on this scene
}

func (p *Playing) step(simNow float64) {
	in := p.input.Read()
	if p.recorder != nil {
		p.recorder.RecordFrame(simNow, in)
	}

	p.sim.Tick(simNow, in)
	p.shake *= shakeDecay

	if p.sim.Over() {
		p.state = state.StateGameOver
		stats := p.sim.Stats()
		p.log.WithFields(logrus.Fields{
			"ticks": stats.Ticks,
			"kills": stats.Kills,
			"gold":  p.sim.World().Player.Gold,
		}).Info("game over")

		// Auto-save recording on game over
		p.saveRecording()
	}
}

func (p *Playing) updateReplay() error {
	f, ok := p.replayer.Next()
	if !ok {
		return nil
	}

	if err := replay.Apply(p.sim, f); err != nil {
		return fmt.Errorf("failed to apply replay frame %d: %w", p.replayer.CurrentFrame()-1, err)
	}
	p.shake *= shakeDecay

	p.state = state.StatePlaying
	if p.sim.Over() {
		p.state = state.StateGameOver
	}
	return nil
}

func (p *Playing) restart() error {
	if err := p.sim.Reset(); err != nil {
		return err
	}
	p.shake = 0
	if p.recorder != nil {
		p.recorder.RecordReset()
	}
	return nil
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil || p.recorder.FrameCount() == 0 {
		return
	}

	filename := p.recordPath
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		p.log.WithError(err).Error("failed to save recording")
		return
	}
	p.log.WithFields(logrus.Fields{
		"file":   filename,
		"frames": p.recorder.FrameCount(),
	}).Info("recording saved")
}

func (p *Playing) addShake(amount float64) {
	p.shake = max(p.shake, amount)
}

// State returns the current scene state
func (p *Playing) State() state.GameState {
	return p.state
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	snap := p.sim.Snapshot()
	camX, camY := snap.Camera.X, snap.Camera.Y
	if p.shake > 0.5 {
		camX += p.shake * (2*p.fx.Float64() - 1)
		camY += p.shake * (2*p.fx.Float64() - 1)
	}

	p.drawTiles(screen, snap.Map, camX, camY)
	p.drawChests(screen, snap.Chests, camX, camY)
	p.drawEnemies(screen, snap.Enemies, camX, camY)
	p.drawPlayer(screen, snap.Player, camX, camY)

	// Always on top
	p.drawUI(screen, snap.Player)

	switch p.state {
	case state.StatePaused:
		p.drawOverlay(screen, colorPause, "PAUSED\n\nPress ESC to resume", 50)
	case state.StateGameOver:
		text := fmt.Sprintf("GAME OVER\n\nGold collected: %d\n\nPress R or Enter to restart", snap.Player.Gold)
		p.drawOverlay(screen, colorGameOver, text, 80)
	}
}

func (p *Playing) drawTiles(screen *ebiten.Image, m world.MapView, camX, camY float64) {
	grid := entity.GameMap{Cols: m.Cols, Rows: m.Rows, TileSize: m.TileSize, Tiles: m.Tiles}
	startX, startY, endX, endY := grid.VisibleRange(camX, camY, float64(p.screenW), float64(p.screenH))
	size := float32(m.TileSize)

	for ty := startY; ty <= endY; ty++ {
		for tx := startX; tx <= endX; tx++ {
			tile := grid.GetTile(tx, ty)
			x := float32(float64(tx*m.TileSize) - camX)
			y := float32(float64(ty*m.TileSize) - camY)
			vector.DrawFilledRect(screen, x, y, size, size, tileColors[tile.Type], false)

			if tile.Type == entity.TileFlowers {
				vector.DrawFilledCircle(screen, x+size/2, y+size/2, size/8, color.RGBA{240, 220, 90, 255}, false)
			}
		}
	}
}

func (p *Playing) drawChests(screen *ebiten.Image, chests []world.ChestView, camX, camY float64) {
	for _, c := range chests {
		x, y := float32(c.X-camX), float32(c.Y-camY)
		size := float32(c.Size)

		fill := colorChest
		if c.Open {
			fill = colorChestOpen
		}
		vector.DrawFilledRect(screen, x+2, y+4, size-4, size-8, fill, false)
		vector.StrokeRect(screen, x+2, y+4, size-4, size-8, 1, colorOutline, false)
	}
}

func (p *Playing) drawEnemies(screen *ebiten.Image, enemies []world.EnemyView, camX, camY float64) {
	for _, e := range enemies {
		x, y := float32(e.X-camX), float32(e.Y-camY)
		size := float32(e.Size)

		vector.DrawFilledRect(screen, x, y, size, size, enemyColors[e.State], false)
		vector.StrokeRect(screen, x, y, size, size, 1, colorOutline, false)
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image, pl world.PlayerView, camX, camY float64) {
	x, y := float32(pl.X-camX), float32(pl.Y-camY)
	size := float32(pl.Size)

	c := colorPlayer
	if pl.Dashing {
		c = colorDashing
	}
	vector.DrawFilledRect(screen, x, y, size, size, c, false)
	vector.StrokeRect(screen, x, y, size, size, 1, colorOutline, false)
}

func (p *Playing) drawUI(screen *ebiten.Image, pl world.PlayerView) {
	// Health bar
	barX, barY := float32(10), float32(p.screenH-20)
	barW, barH := float32(100), float32(10)

	vector.DrawFilledRect(screen, barX, barY, barW, barH, colorHealthBG, false)
	ratio := float32(0)
	if pl.MaxHealth > 0 && pl.Health > 0 {
		ratio = float32(pl.Health) / float32(pl.MaxHealth)
	}
	vector.DrawFilledRect(screen, barX, barY, barW*ratio, barH, colorHealthFG, false)

	ebitenutil.DebugPrintAt(screen, hudText(pl), 10, p.screenH-38)

	controls := "WASD: Move | J: Attack | Space: Dash | R: Reset | ESC: Pause"
	if p.replayer != nil {
		controls = fmt.Sprintf("REPLAY %d/%d", p.replayer.CurrentFrame(), p.replayer.TotalFrames())
	}
	ebitenutil.DebugPrint(screen, controls)
}

func (p *Playing) drawOverlay(screen *ebiten.Image, c color.RGBA, text string, halfWidth int) {
	vector.DrawFilledRect(screen, 0, 0, float32(p.screenW), float32(p.screenH), c, false)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-halfWidth, p.screenH/2-30)
}

// hudText formats the status line: health, gold and dash readiness
func hudText(pl world.PlayerView) string {
	dash := "READY"
	if !pl.DashReady() {
		dash = fmt.Sprintf("%.1fs", pl.DashCooldownRemaining/1000)
	}
	return fmt.Sprintf("HP %d/%d  Gold %d  Dash: %s", max(pl.Health, 0), pl.MaxHealth, pl.Gold, dash)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Scene is already initialized in New
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
	if p.recorder != nil {
		p.recorder.Stop()
	}
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}
