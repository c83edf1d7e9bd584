package main

import (
	"flag"
	"log"

	"slimelab/game"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	config := game.DefaultConfig()

	flag.IntVar(&config.ParticleCount, "particles", config.ParticleCount, "particles on the slime's ring")
	flag.Float64Var(&config.RingRadius, "radius", config.RingRadius, "initial slime radius")
	flag.Float64Var(&config.Jitter, "jitter", config.Jitter, "max initial particle speed (0 starts at rest)")
	flag.Uint64Var(&config.Seed, "seed", config.Seed, "jitter seed")
	flag.IntVar(&config.TicksPerSecond, "tps", config.TicksPerSecond, "simulation ticks per second")
	flag.BoolVar(&config.Oscillate, "oscillate", config.Oscillate, "drive the temperature with a sine wave instead of the keyboard")
	flag.BoolVar(&config.Autopilot, "autopilot", config.Autopilot, "orbit the pointer around the slime instead of following the mouse")
	mute := flag.Bool("mute", false, "disable the freeze/thaw chime")
	flag.BoolVar(&config.Profile, "profile", config.Profile, "capture a CPU profile and trace on frame rate drops")
	flag.StringVar(&config.ProfilesDir, "profiles-dir", config.ProfilesDir, "where captured profiles are written")
	flag.Parse()
	config.Audio = !*mute

	g, err := game.NewGame(config)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Slime")
	ebiten.SetWindowResizable(true)
	ebiten.SetTPS(config.TicksPerSecond)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
