package ui

import (
	"context"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

// Run ouvre la fenêtre "face de lampe" et bloque jusqu'à sa fermeture.
// Un ticker rafraîchit l'affichage depuis les snapshots : l'UI ne
// touche jamais l'état du cœur directement.
func Run(ctx context.Context, c *Controller) {
	a := app.New()
	w := a.NewWindow("Digital Garden")

	face := buildFace(c)
	w.SetContent(face.root)
	w.Resize(fyne.NewSize(520, 640))

	go func() {
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				a.Quit()
				return
			case <-ticker.C:
				face.apply(c.Snapshot())
			}
		}
	}()

	w.ShowAndRun()
}
