package ui

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/CHANDARA-code/countdown/internal/models"
	"github.com/CHANDARA-code/countdown/internal/storage"
)

const historyLimit = 50

// HistoryView lists finished timer runs with a totals line on top.
type HistoryView struct {
	container  *fyne.Container
	db         *storage.SQLite
	statsLabel *widget.Label
	sessions   []*models.Session
	list       *widget.List
	refreshBtn *widget.Button
}

func NewHistoryView(db *storage.SQLite) *HistoryView {
	hv := &HistoryView{
		db:         db,
		statsLabel: widget.NewLabel(""),
	}
	hv.setup()
	hv.Reload()
	return hv
}

func (hv *HistoryView) setup() {
	title := widget.NewLabelWithStyle("History", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	hv.refreshBtn = widget.NewButtonWithIcon("", theme.ViewRefreshIcon(), hv.Reload)

	hv.list = widget.NewList(
		func() int { return len(hv.sessions) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(i widget.ListItemID, o fyne.CanvasObject) {
			if i >= len(hv.sessions) {
				return
			}
			o.(*widget.Label).SetText(sessionLine(hv.sessions[i]))
		},
	)

	toolbar := container.NewBorder(nil, nil, nil, hv.refreshBtn, hv.statsLabel)

	hv.container = container.NewBorder(
		container.NewVBox(title, toolbar),
		nil, nil, nil,
		hv.list,
	)
}

func (hv *HistoryView) Container() fyne.CanvasObject {
	return hv.container
}

// Reload re-queries the session table and refreshes the list.
func (hv *HistoryView) Reload() {
	sessions, err := hv.db.ListSessions(historyLimit)
	if err != nil {
		hv.statsLabel.SetText("failed to load history")
		return
	}
	hv.sessions = sessions

	stats, err := hv.db.GetSessionStats(time.Time{})
	if err == nil {
		hv.statsLabel.SetText(fmt.Sprintf(
			"%d runs, %d completed, %s total",
			stats.TotalSessions,
			stats.CompletedRuns,
			(time.Duration(stats.TotalSeconds) * time.Second).String(),
		))
	}

	hv.list.Refresh()
}

func sessionLine(s *models.Session) string {
	return fmt.Sprintf(
		"%s  %ds of %ds  (%s)",
		s.StartTime.Format("2006-01-02 15:04:05"),
		s.Elapsed,
		s.Requested,
		s.Outcome,
	)
}
