package main

import (
	"flag"
	"image"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/inkbrawl/config"
	"github.com/automoto/inkbrawl/fonts"
	"github.com/automoto/inkbrawl/scenes"
	"github.com/automoto/inkbrawl/sim"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds  image.Rectangle
	scene   Scene
	sim     *sim.Simulation
	watcher *config.TuningWatcher
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(s *sim.Simulation, character string) *Game {
	g := &Game{
		bounds: image.Rectangle{},
		sim:    s,
	}

	s.OnGameOver(func() {
		g.ChangeScene(scenes.NewGameOverScene(g, s))
	})

	if character != "" {
		if err := s.StartRun(character); err != nil {
			log.Printf("Warning: %v, opening character select", err)
		} else {
			g.scene = scenes.NewPlatformerScene(g, s)
			return g
		}
	}
	g.scene = scenes.NewMenuScene(g, s)
	return g
}

func (g *Game) Update() error {
	g.reloadTuning()
	g.scene.Update()
	return nil
}

// reloadTuning applies pending tuning file changes between frames so the
// simulation never sees a half-applied configuration.
func (g *Game) reloadTuning() {
	if g.watcher == nil {
		return
	}
	select {
	case path := <-g.watcher.Events:
		if err := config.LoadTuning(path); err != nil {
			log.Printf("Tuning reload failed: %v", err)
			return
		}
		log.Printf("Tuning reloaded from %s", path)
	case err := <-g.watcher.Errors:
		log.Printf("Tuning watcher error: %v", err)
	default:
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	character := flag.String("character", "", "skip character select (sharpshooter, splatter, charger)")
	tuning := flag.String("tuning", "", "YAML file overriding tuning values")
	watch := flag.Bool("watch", false, "reload the tuning file when it changes")
	level := flag.String("level", "", "TMX level file to play instead of the bundled arena")
	flag.Parse()

	if *tuning != "" {
		if err := config.LoadTuning(*tuning); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		log.Printf("Tuning loaded from %s", *tuning)
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	opts := sim.Options{}
	if *level != "" {
		opts.LevelFS = os.DirFS(filepath.Dir(*level))
		opts.LevelPath = filepath.Base(*level)
	}

	g := NewGame(sim.New(opts), *character)

	if *watch && *tuning != "" {
		w, err := config.WatchTuning(*tuning)
		if err != nil {
			log.Printf("Warning: could not watch %s: %v", *tuning, err)
		} else {
			g.watcher = w
			defer w.Close()
		}
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Inkbrawl")

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
