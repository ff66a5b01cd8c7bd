package main

import (
	"log"

	"fyne.io/fyne/v2/app"

	"github.com/CHANDARA-code/countdown/internal/clock"
	"github.com/CHANDARA-code/countdown/internal/config"
	"github.com/CHANDARA-code/countdown/internal/countdown"
	"github.com/CHANDARA-code/countdown/internal/models"
	"github.com/CHANDARA-code/countdown/internal/storage"
	"github.com/CHANDARA-code/countdown/internal/ui"
)

func main() {
	configManager, err := config.NewManager()
	if err != nil {
		log.Fatal(err)
	}
	cfg := configManager.GetConfig()

	db, err := storage.Open(configManager.DatabasePath())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	store := countdown.New(db, clock.System)
	store.SetRecorder(func(session *models.Session) {
		if err := db.InsertSession(session); err != nil {
			log.Printf("record session: %v", err)
		}
	})

	// Pick up a timer that was running when the app last exited.
	if err := store.Restore(); err != nil {
		log.Fatal(err)
	}

	myApp := app.New()
	mainWindow := ui.NewMainWindow(myApp, cfg, db, store)
	mainWindow.Show()
}
