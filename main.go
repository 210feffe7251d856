package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/solar-visualization/internal/config"
	"github.com/iburimskiy/solar-visualization/internal/game"
)

// pickTrack returns the audio path from argv or, absent one, a file
// dialog. An empty path with nil error means the user cancelled and the
// visualization runs without audio.
func pickTrack() (string, error) {
	if len(os.Args) > 1 {
		return os.Args[1], nil
	}
	path, err := zenity.SelectFile(
		zenity.Title("Open Audio Track"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", err
	}
	return path, nil
}

func main() {
	g := game.New()

	path, err := pickTrack()
	if err != nil {
		fmt.Fprintln(os.Stderr, "track selection:", err)
	}
	if path != "" {
		player, err := game.LoadTrack(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, "load track:", err)
		} else {
			fmt.Printf("Loaded track %v\n", path)
			g.SetPlayer(player)
		}
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Solar Visualization - Click Start, Space: Pause, Esc/Q: Quit")

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		panic(err)
	}
}
