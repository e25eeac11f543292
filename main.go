package main

import (
	"context"
	"flag"
	"log"
	"os"

	"Countdown/i18n"
	"Countdown/timer"
	"Countdown/tui"
	"Countdown/ui"

	"fyne.io/fyne/v2/app"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

func main() {
	useTUI := flag.Bool("tui", false, "run in the terminal instead of a window")
	lang := flag.String("lang", "", "force the interface language (en, es)")
	cfg := parseConfig(flag.CommandLine, os.Args[1:])

	if *lang != "" {
		i18n.SetLang(*lang)
	}

	a, err := NewAppManager(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize alarm: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if *useTUI {
		runTerminal(ctx, a, cfg)
		return
	}
	runDesktop(ctx, a, cfg)
}

func runDesktop(ctx context.Context, a *AppManager, cfg timer.Config) {
	fyneApp := app.New()
	fyneApp.Settings().SetTheme(ui.NewCustomTheme(cfg.FontSizeNormal))

	w := ui.CreateMainWindow(a.Controller(), fyneApp, cfg)
	a.SetFrontend(w)
	a.Run(ctx)

	w.ShowTimeInput()
	w.Window().ShowAndRun()
}

func runTerminal(ctx context.Context, a *AppManager, cfg timer.Config) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Fatalf("-tui requires a terminal on stdout")
	}

	p := tea.NewProgram(tui.NewModel(cfg, a.Controller()), tea.WithAltScreen())
	a.SetFrontend(tui.NewFrontend(p))
	a.Run(ctx)

	if _, err := p.Run(); err != nil {
		log.Fatalf("Alas, there's been an error: %v", err)
	}
}
