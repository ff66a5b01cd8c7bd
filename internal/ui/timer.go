package ui

import (
	"fmt"
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/CHANDARA-code/countdown/internal/countdown"
	"github.com/CHANDARA-code/countdown/internal/models"
)

var timeColor = color.NRGBA{R: 25, G: 25, B: 25, A: 255}

// TimerView is the countdown screen: the remaining-seconds readout, a
// Start/Stop toggle and a Reset button.
type TimerView struct {
	container *fyne.Container
	store     *countdown.Store
	duration  time.Duration

	timeLabel    *canvas.Text
	toggleButton *widget.Button
	resetButton  *widget.Button
}

// NewTimerView builds the screen and subscribes to the store. duration is
// the length of a run started from the toggle button.
func NewTimerView(store *countdown.Store, duration time.Duration) *TimerView {
	v := &TimerView{
		store:    store,
		duration: duration,
	}

	v.timeLabel = canvas.NewText(remainingText(store.State()), timeColor)
	v.timeLabel.TextStyle = fyne.TextStyle{Bold: true}
	v.timeLabel.TextSize = 28
	v.timeLabel.Alignment = fyne.TextAlignCenter

	v.toggleButton = widget.NewButtonWithIcon("Start Timer", theme.MediaPlayIcon(), func() {
		if v.store.State().Running {
			v.store.Stop()
		} else {
			v.store.Start(v.duration)
		}
	})
	v.toggleButton.Importance = widget.HighImportance

	v.resetButton = widget.NewButtonWithIcon("Reset Timer", theme.MediaReplayIcon(), v.store.Reset)
	v.resetButton.Importance = widget.MediumImportance

	controls := container.NewHBox(
		v.toggleButton,
		v.resetButton,
	)

	v.container = container.NewVBox(
		container.NewPadded(v.timeLabel),
		container.NewCenter(controls),
	)

	store.SetOnChange(v.apply)
	v.apply(store.State())

	return v
}

// Container returns the root object for embedding in the window.
func (v *TimerView) Container() fyne.CanvasObject {
	return v.container
}

// apply re-renders the view from a state snapshot. Called from the store's
// tick callback as well as directly from button handlers.
func (v *TimerView) apply(state models.TimerState) {
	v.timeLabel.Text = remainingText(state)
	v.timeLabel.Refresh()

	if state.Running {
		v.toggleButton.SetIcon(theme.MediaStopIcon())
		v.toggleButton.SetText("Stop Timer")
	} else {
		v.toggleButton.SetIcon(theme.MediaPlayIcon())
		v.toggleButton.SetText("Start Timer")
	}
}

func remainingText(state models.TimerState) string {
	return fmt.Sprintf("Remaining Time: %d seconds", state.Seconds())
}
