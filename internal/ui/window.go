package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"github.com/CHANDARA-code/countdown/internal/config"
	"github.com/CHANDARA-code/countdown/internal/countdown"
	"github.com/CHANDARA-code/countdown/internal/storage"
)

type MainWindow struct {
	window  fyne.Window
	timer   *TimerView
	history *HistoryView
}

func NewMainWindow(app fyne.App, cfg *config.Config, db *storage.SQLite, store *countdown.Store) *MainWindow {
	w := &MainWindow{
		window:  app.NewWindow(cfg.App.Name),
		timer:   NewTimerView(store, cfg.Timer.Duration),
		history: NewHistoryView(db),
	}
	w.setup(cfg)
	return w
}

func (w *MainWindow) setup(cfg *config.Config) {
	tabs := container.NewAppTabs(
		container.NewTabItem("Timer", w.timer.Container()),
		container.NewTabItem("History", w.history.Container()),
	)

	w.window.SetContent(tabs)
	w.window.Resize(fyne.NewSize(float32(cfg.App.WindowWidth), float32(cfg.App.WindowHeight)))
}

func (w *MainWindow) Show() {
	w.window.ShowAndRun()
}
