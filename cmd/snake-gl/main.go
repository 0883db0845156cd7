package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/byrax15/snake-gl/audio"
	"github.com/byrax15/snake-gl/core"
	"github.com/byrax15/snake-gl/engine"
	"github.com/byrax15/snake-gl/event"
	"github.com/byrax15/snake-gl/game"
	"github.com/byrax15/snake-gl/input"
	"github.com/byrax15/snake-gl/logger"
	"github.com/byrax15/snake-gl/network"
	"github.com/byrax15/snake-gl/render"
)

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		logrus.WithError(err).Fatal("Invalid configuration")
	}

	log, logCloser, err := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
	})
	if err != nil {
		logrus.WithError(err).Fatal("Logger setup failed")
	}
	defer logCloser.Close()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "snake-gl needs an interactive terminal")
		os.Exit(1)
	}

	// Grid errors are fatal before the terminal switches to raw mode
	g, err := game.New(game.Config{
		GridDim:     cfg.GridDim,
		Apples:      cfg.Apples,
		Seed:        cfg.Seed,
		ColorJitter: cfg.ColorJitter,
	}, game.Deps{Logger: log})
	if err != nil {
		logrus.WithError(err).Fatal("Game setup failed")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		logrus.WithError(err).Fatal("Terminal setup failed")
	}
	if err := screen.Init(); err != nil {
		logrus.WithError(err).Fatal("Terminal init failed")
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	// Goroutine panics restore the terminal before printing the stack
	core.SetCrashReset(screen.Fini)
	screen.HideCursor()

	w, h := screen.Size()
	if needW, needH := render.FieldSize(cfg.GridDim); w < needW || h < needH {
		log.WithFields(logrus.Fields{
			"width":       w,
			"height":      h,
			"need_width":  needW,
			"need_height": needH,
		}).Warn("Terminal smaller than the play field")
	}

	router := event.NewRouter(g.Events())

	if cfg.Audio {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			log.WithError(err).Warn("Audio initialization failed, continuing without audio")
		} else {
			defer sm.Cleanup()
			router.Register(audio.NewEventHandler(sm))
		}
	}

	var hub *network.Hub
	if cfg.SpectateAddr != "" {
		netCfg := network.DefaultConfig()
		netCfg.Address = cfg.SpectateAddr
		hub = network.NewHub(netCfg, log)
		if _, err := hub.Start(); err != nil {
			log.WithError(err).Warn("Spectator feed disabled")
			hub = nil
		} else {
			router.Register(hub)
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				_ = hub.Stop(ctx)
			}()
		}
	}

	renderer := render.NewRenderer(screen)
	renderer.Draw(g.Snapshot())

	// Tick, outcome dispatch and rendering share the scheduler goroutine
	scheduler := engine.NewClockScheduler(cfg.TickInterval(), func() {
		g.Tick()
		router.DispatchAll()

		snap := g.Snapshot()
		renderer.Draw(snap)
		if hub != nil {
			hub.BroadcastSnapshot(snap)
		}
	})
	scheduler.Start()
	defer scheduler.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	events := make(chan tcell.Event, 64)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// Nil after Fini
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	})

	handler := input.NewHandler(nil, g)
	log.WithField("tick_rate", cfg.TickRate).Info("Game started")

	for {
		select {
		case <-ctx.Done():
			log.Info("Signal received, exiting")
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				screen.Sync()
				continue
			}
			if !handler.HandleEvent(ev) {
				log.Info("Quit requested")
				return
			}
		}
	}
}
