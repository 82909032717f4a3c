package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"go-survivor-arena/internal/app"
	"go-survivor-arena/internal/config"
	"go-survivor-arena/internal/state"
	"go-survivor-arena/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := float64(now.Sub(a.lastUpdateTime)) / float64(time.Millisecond)
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	dataDir := flag.String("data", "assets/data", "directory with tuning.yaml, upgrades.yaml and hostiles.yaml")
	seed := flag.Int64("seed", 0, "random seed, 0 seeds from the clock")
	watch := flag.Bool("watch", false, "reload data files when they change")
	pprofAddr := flag.String("pprof", "", "serve net/http/pprof on this address")
	skipMenu := flag.Bool("play", false, "start the session without the title screen")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	data, err := loadData(*dataDir)
	if err != nil {
		log.Fatalf("main: %v", err)
	}

	reloads := make(chan state.Reload, 1)
	if *watch {
		w, err := watchData(*dataDir, reloads)
		if err != nil {
			log.Fatalf("main: watch %s: %v", *dataDir, err)
		}
		defer w.Close()
	}

	game := app.NewGame(app.Options{
		Tuning:   data.Tuning,
		Upgrades: data.Library.Upgrades,
		Hostiles: data.Library.Hostiles,
		Seed:     *seed,
	})
	app.LogEvents(game.EventDispatcher)

	fonts := ui.LoadFonts()
	sm := state.NewStateMachine()
	start := func() state.State {
		return state.NewGameState(sm, game, fonts, reloads)
	}
	if *skipMenu {
		sm.SetState(start())
	} else {
		sm.SetState(state.NewMenuState(sm, fonts, start))
	}

	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Survivor Arena")
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
