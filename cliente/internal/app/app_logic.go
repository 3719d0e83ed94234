package app

import (
	"log"
)

// update processa um frame: entrada, câmera, streaming e cena, nessa ordem.
func (a *App) update(dt float32) {
	a.frameTimes.Push(dt)
	a.source.Poll()

	if a.renderer != nil {
		a.renderer.ProcessLoads()
	}

	if a.State != StateViewing {
		return
	}

	a.City.Step(dt)
	a.logDiff()
}

// logDiff registra as trocas de tiles do último frame.
func (a *App) logDiff() {
	diff := a.City.LastDiff
	if diff.Empty() {
		return
	}
	center, _ := a.City.Streamer.Center()
	log.Printf("[Streaming] Célula %s: +%d -%d (ativos: %d)",
		center, len(diff.Added), len(diff.Removed), a.City.Streamer.Len())
}
