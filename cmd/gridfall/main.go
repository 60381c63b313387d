package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime/debug"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/profile"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/eskarin-dev/gridfall/audio"
	"github.com/eskarin-dev/gridfall/component"
	"github.com/eskarin-dev/gridfall/config"
	"github.com/eskarin-dev/gridfall/engine"
	"github.com/eskarin-dev/gridfall/input"
	"github.com/eskarin-dev/gridfall/render"
	"github.com/eskarin-dev/gridfall/system"
)

var (
	configFlag  = flag.String("config", "", "Path to TOML config (built-in defaults if empty)")
	colorFlag   = flag.String("color", "", "Color mode override: auto, truecolor, 256")
	profileFlag = flag.Bool("profile", false, "Write a CPU profile to the working directory")
	muteFlag    = flag.Bool("mute", false, "Disable audio")
)

func main() {
	flag.Parse()

	cfg := config.Defaults()
	if *configFlag != "" {
		var err error
		cfg, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "gridfall: %v\n", err)
			os.Exit(1)
		}
	}
	if *colorFlag != "" {
		cfg.Render.ColorMode = *colorFlag
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}

	if *profileFlag {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	logger, err := buildLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gridfall: build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	screen, err := render.NewScreen(render.ParseColorMode(cfg.Render.ColorMode))
	if err != nil {
		fmt.Fprintf(os.Stderr, "gridfall: %v\n", err)
		os.Exit(1)
	}

	// The terminal must be restored before a panic reaches the console,
	// or the stack trace lands on the alternate screen and is lost.
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "gridfall crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	player, err := audio.NewEngine(cfg.Audio.Enabled, cfg.Audio.SampleRate, cfg.Audio.Volume)
	if err != nil {
		logger.Warn("audio unavailable, running silent", zap.Error(err))
		player, _ = audio.NewEngine(false, cfg.Audio.SampleRate, cfg.Audio.Volume)
	}
	defer player.Close()

	world := engine.NewWorld()
	engine.AddResource(world.Resources, screen)
	engine.AddResource(world.Resources, player)
	engine.AddResource(world.Resources, cfg)

	logger.Info("world created", zap.String("world", world.ID().String()))

	quitCh := make(chan struct{})
	var quitOnce sync.Once
	quit := func() { quitOnce.Do(func() { close(quitCh) }) }

	actions := make(chan input.Action, 64)
	go input.Pump(screen, actions)

	budget := cfg.Engine.FrameBudget.Std()
	sched := engine.NewScheduler(world)
	sched.Register(engine.Monitored(system.NewInputSystem(actions, quit), logger, budget))
	sched.Register(engine.Monitored(system.NewMovementSystem(), logger, budget))
	sched.Register(engine.Monitored(system.NewLifetimeSystem(), logger, budget))
	sched.Register(engine.Monitored(system.NewDeathSystem(), logger, budget))
	sched.Register(engine.Monitored(system.NewAudioTriggerSystem(), logger, budget))
	sched.Register(engine.Monitored(system.NewRenderSystem(), logger, budget))
	sched.Start()
	defer sched.Stop()

	spawnDemo(world, screen)

	ticker := time.NewTicker(cfg.Engine.TickRate.Std())
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-quitCh:
			logger.Info("shutting down",
				zap.Int("entities", world.EntityCount()))
			return
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			sched.Tick(dt)
		}
	}
}

// spawnDemo populates the world with a steerable player and a field of
// drifting motes that expire on their own.
func spawnDemo(world *engine.World, screen *render.Screen) {
	w, h := screen.Size()

	engine.With(
		engine.With(
			engine.With(
				world.NewEntity().Named("player").Tagged(system.PlayerTag),
				component.PositionComponent{Pos: mgl64.Vec2{float64(w / 2), float64(h / 2)}},
			),
			component.GlyphComponent{Rune: '@', Style: tcell.StyleDefault.Bold(true), Layer: 2},
		),
		component.HealthComponent{Current: 100, Max: 100},
	).Build()

	for i := 0; i < 40; i++ {
		mote := engine.With(
			engine.With(
				engine.With(
					world.NewEntity().Tagged("mote"),
					component.PositionComponent{Pos: mgl64.Vec2{
						rand.Float64() * float64(w),
						rand.Float64() * float64(h),
					}},
				),
				component.VelocityComponent{Vel: mgl64.Vec2{
					(rand.Float64() - 0.5) * 6,
					(rand.Float64() - 0.5) * 3,
				}},
			),
			component.GlyphComponent{
				Rune:  '.',
				Style: tcell.StyleDefault.Foreground(tcell.ColorGray),
			},
		).Build()

		// Half the motes are mortal so the lifetime reaper has work.
		if i%2 == 0 {
			engine.Set(world, mote, component.LifetimeComponent{
				Remaining: time.Duration(3+rand.Intn(10)) * time.Second,
			})
		}
	}
}

// buildLogger writes structured logs to a file; the terminal belongs to the
// renderer.
func buildLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var zcfg zap.Config
	if cfg.Format == "json" {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}
	if lvl, err := zapcore.ParseLevel(cfg.Level); err == nil {
		zcfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	zcfg.OutputPaths = []string{"gridfall.log"}
	zcfg.ErrorOutputPaths = []string{"gridfall.log"}
	return zcfg.Build()
}
