package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"digitalGarden/internal/domain/lamp"
)

// lampFace regroupe les objets canvas à rafraîchir à chaque snapshot.
type lampFace struct {
	root      fyne.CanvasObject
	mainRects [lamp.MainChannelCount]*canvas.Rectangle
	flowers   []*canvas.Rectangle
	modeLabel *widget.Label
}

// buildFace construit la vue complète : pastilles de couleur, boutons
// on/off, boutons de mode et curseurs de réglage.
func buildFace(c *Controller) *lampFace {
	face := &lampFace{modeLabel: widget.NewLabel("Mode : MANUAL")}

	channelRows := make([]fyne.CanvasObject, 0, lamp.MainChannelCount)
	for i, ch := range lamp.MainChannels {
		rect := canvas.NewRectangle(color.NRGBA{A: 255})
		rect.SetMinSize(fyne.NewSize(48, 24))
		face.mainRects[i] = rect

		name := ch.String()
		row := container.NewHBox(
			rect,
			widget.NewLabel(name),
			widget.NewButton("ON", func() { c.Send(name + " ON") }),
			widget.NewButton("OFF", func() { c.Send(name + " OFF") }),
		)
		channelRows = append(channelRows, row)
	}

	flowerRects := make([]fyne.CanvasObject, 0, c.FlowerCount())
	for i := 0; i < c.FlowerCount(); i++ {
		rect := canvas.NewRectangle(color.NRGBA{A: 255})
		rect.SetMinSize(fyne.NewSize(24, 24))
		face.flowers = append(face.flowers, rect)
		flowerRects = append(flowerRects, rect)
	}

	modeButtons := make([]fyne.CanvasObject, 0, lamp.ModeCount)
	for _, name := range []string{"MANUAL", "CHASE", "BLINK", "FADE", "RAINBOW"} {
		mode := name
		modeButtons = append(modeButtons, widget.NewButton(mode, func() { c.Send("MODE " + mode) }))
	}

	face.root = container.NewVBox(
		face.modeLabel,
		container.NewHBox(modeButtons...),
		widget.NewSeparator(),
		container.NewVBox(channelRows...),
		widget.NewSeparator(),
		widget.NewLabel("Fleurs"),
		container.NewHBox(flowerRects...),
		widget.NewSeparator(),
		buildTunableSliders(c),
	)
	return face
}

func buildTunableSliders(c *Controller) fyne.CanvasObject {
	rows := []struct {
		key    string
		lo, hi float64
		start  float64
	}{
		{"BLINK", 50, 2000, 500},
		{"CHASE", 50, 2000, 150},
		{"FADE", 1, 20, 5},
		{"RAINBOW", 10, 200, 30},
		{"TWINKLE", 1, 100, 50},
	}

	items := make([]fyne.CanvasObject, 0, len(rows)*2)
	for _, row := range rows {
		key := row.key
		slider := widget.NewSlider(row.lo, row.hi)
		slider.Value = row.start
		slider.OnChangeEnded = func(v float64) {
			c.Send(fmt.Sprintf("SET %s %d", key, int(v)))
		}
		items = append(items, widget.NewLabel(key), slider)
	}
	return container.NewVBox(items...)
}

// apply pousse un snapshot dans les objets canvas.
func (f *lampFace) apply(s Snapshot) {
	f.modeLabel.SetText("Mode : " + s.Mode.String())

	for i, ch := range lamp.MainChannels {
		f.mainRects[i].FillColor = channelColor(ch, s.Levels[ch])
		canvas.Refresh(f.mainRects[i])
	}
	for i, rect := range f.flowers {
		v := s.Levels[lamp.Flower(i)]
		// Teinte chaude pour les fleurs.
		rect.FillColor = color.NRGBA{R: v, G: uint8(int(v) * 3 / 4), B: v / 5, A: 255}
		canvas.Refresh(rect)
	}
}

func channelColor(ch lamp.ChannelID, v uint8) color.NRGBA {
	switch ch {
	case lamp.Red:
		return color.NRGBA{R: v, A: 255}
	case lamp.Green:
		return color.NRGBA{G: v, A: 255}
	case lamp.Blue:
		return color.NRGBA{B: v, A: 255}
	default:
		return color.NRGBA{R: v, G: v, B: v, A: 255}
	}
}
