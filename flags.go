package main

import (
	"flag"
	"log"
	"strings"

	"Countdown/timer"
)

// parseConfig registers one flag per configuration option on fs, parses
// args and returns the resulting configuration. Defaults come from
// timer.DefaultConfig.
func parseConfig(fs *flag.FlagSet, args []string) timer.Config {
	def := timer.DefaultConfig()

	sound := fs.String("sound", def.SoundFile, "alarm sound file (empty plays a built-in tone with the beep backend)")
	volume := fs.String("volume", def.Volume, "alarm volume, 1 is nominal")
	reps := fs.Int("repeat", def.Repetitions, "number of times the alarm sound is played")
	backend := fs.String("backend", string(def.Backend), "alarm backend: exec or beep")
	player := fs.String("player", def.PlayerCommand, "external player command for the exec backend")
	playerArgs := fs.String("player-args", strings.Join(def.PlayerArgs, " "), "player arguments; {volume} and {file} are substituted")
	width := fs.Float64("width", float64(def.WindowWidth), "window width")
	height := fs.Float64("height", float64(def.WindowHeight), "window height")
	fontLarge := fs.Float64("font-large", float64(def.FontSizeLarge), "clock font size")
	fontNormal := fs.Float64("font-normal", float64(def.FontSizeNormal), "text font size")
	padding := fs.Float64("padding", float64(def.Padding), "window padding")
	stay := fs.Bool("stay", !def.ExitOnFinish, "keep the application open after the alarm")
	notify := fs.Bool("notify", def.Notify, "also post a desktop notification when the time is up")

	if err := fs.Parse(args); err != nil {
		log.Fatalf("Failed to parse flags: %v", err)
	}

	return timer.NewConfig(
		timer.WithSoundFile(*sound),
		timer.WithVolume(*volume),
		timer.WithRepetitions(*reps),
		timer.WithBackend(timer.Backend(*backend)),
		timer.WithPlayer(*player, strings.Fields(*playerArgs)...),
		timer.WithWindowSize(float32(*width), float32(*height)),
		timer.WithFontSizes(float32(*fontLarge), float32(*fontNormal)),
		timer.WithPadding(float32(*padding)),
		timer.WithExitOnFinish(!*stay),
		timer.WithNotify(*notify),
	)
}
