package main

import (
	"fmt"
	"image"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// fyneDisplay shows a rendered chart in a window and blocks until it is closed.
// A nil App starts a fresh desktop application; tests inject fyne's test app and set noRun.
type fyneDisplay struct {
	App   fyne.App
	noRun bool
}

func (d fyneDisplay) Display(title string, img image.Image) error {
	a := d.App
	if a == nil {
		a = fyneapp.NewWithID("io.github.iafilius.qreplot")
	}
	if title == "" {
		title = "qreplot"
	}
	w := a.NewWindow(title)

	b := img.Bounds()
	ci := canvas.NewImageFromImage(img)
	ci.FillMode = canvas.ImageFillContain
	ci.SetMinSize(fyne.NewSize(float32(b.Dx())/2, float32(b.Dy())/2))
	status := widget.NewLabel(fmt.Sprintf("%d×%d px", b.Dx(), b.Dy()))
	w.SetContent(container.NewBorder(nil, status, nil, nil, ci))
	w.Resize(fyne.NewSize(float32(b.Dx()), float32(b.Dy())+40))

	if d.noRun {
		w.Show()
		return nil
	}
	w.ShowAndRun()
	return nil
}
