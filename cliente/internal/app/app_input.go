package app

import (
	"log"

	"InfiniteCity/cliente/internal/camera"
	"InfiniteCity/cliente/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// RaylibSource lê o estado de entrada da Raylib uma vez por frame e o
// converte em eventos para o dispatcher.
type RaylibSource struct {
	d           *input.Dispatcher
	enableTouch bool

	mouseDown bool
	lastMouse rl.Vector2
	touches   map[int32]rl.Vector2 // Toques ativos no frame anterior
}

// NewRaylibSource cria a fonte. Com enableTouch=false os toques são ignorados
// (no desktop a Raylib emula toque com o mouse).
func NewRaylibSource(d *input.Dispatcher, enableTouch bool) *RaylibSource {
	return &RaylibSource{
		d:           d,
		enableTouch: enableTouch,
		touches:     make(map[int32]rl.Vector2),
	}
}

// Poll despacha os eventos ocorridos desde o último frame.
func (s *RaylibSource) Poll() {
	for _, key := range input.WatchedKeys {
		if rl.IsKeyPressed(key) {
			s.d.Dispatch(input.Event{Kind: input.KindKeyDown, Key: key})
		}
		if rl.IsKeyReleased(key) {
			s.d.Dispatch(input.Event{Kind: input.KindKeyUp, Key: key})
		}
	}

	s.pollMouse()

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		// Raylib: positivo = rolar para cima. Evento: positivo = para baixo, em "pixels".
		s.d.Dispatch(input.Event{Kind: input.KindWheel, DeltaY: -wheel * 100})
	}

	if s.enableTouch {
		s.pollTouch()
	}
}

func (s *RaylibSource) pollMouse() {
	pos := rl.GetMousePosition()
	down := rl.IsMouseButtonDown(rl.MouseLeftButton)

	switch {
	case down && !s.mouseDown:
		s.d.Dispatch(input.Event{Kind: input.KindPointerDown, X: pos.X, Y: pos.Y})
	case !down && s.mouseDown:
		s.d.Dispatch(input.Event{Kind: input.KindPointerUp, X: pos.X, Y: pos.Y})
	}
	if pos != s.lastMouse {
		s.d.Dispatch(input.Event{Kind: input.KindPointerMove, X: pos.X, Y: pos.Y})
	}

	s.mouseDown = down
	s.lastMouse = pos
}

func (s *RaylibSource) pollTouch() {
	current := make(map[int32]rl.Vector2)
	for i := int32(0); i < int32(rl.GetTouchPointCount()); i++ {
		current[rl.GetTouchPointId(i)] = rl.GetTouchPosition(i)
	}

	for id, pos := range current {
		prev, ok := s.touches[id]
		switch {
		case !ok:
			s.d.Dispatch(input.Event{Kind: input.KindTouchStart, TouchID: id, X: pos.X, Y: pos.Y})
		case prev != pos:
			s.d.Dispatch(input.Event{Kind: input.KindTouchMove, TouchID: id, X: pos.X, Y: pos.Y})
		}
	}
	for id, pos := range s.touches {
		if _, ok := current[id]; !ok {
			s.d.Dispatch(input.Event{Kind: input.KindTouchEnd, TouchID: id, X: pos.X, Y: pos.Y})
		}
	}
	s.touches = current
}

const handlerAppKeys = "app.keydown"

// registerHandlers registra os atalhos gerais da aplicação.
func (a *App) registerHandlers() {
	a.dispatcher.Register(handlerAppKeys, input.KindKeyDown, a.onKeyDown)
}

func (a *App) unregisterHandlers() {
	a.dispatcher.Unregister(handlerAppKeys)
}

// onKeyDown processa atalhos de teclado gerais.
func (a *App) onKeyDown(ev input.Event) bool {
	switch ev.Key {
	case input.KeyEscape:
		a.togglePause()
		return true
	case input.KeyF3:
		a.Config.ShowDebugInfo = !a.Config.ShowDebugInfo
	case input.KeyF11:
		rl.ToggleFullscreen()
	}

	if a.State != StateViewing {
		return false
	}

	switch ev.Key {
	case input.KeyG:
		a.Config.ShowGrid = !a.Config.ShowGrid
	case input.KeyC:
		a.toggleScheme()
	case input.KeyR:
		a.City.Cam.Reset()
		log.Println("[Camera] Pose inicial restaurada")
	}
	return false
}

// togglePause: pausado, a câmera sai do dispatcher e descarta o arrasto em curso.
func (a *App) togglePause() {
	switch a.State {
	case StateViewing:
		a.State = StatePaused
		a.City.Cam.Detach()
		log.Println("[App] Pausado")
	case StatePaused:
		a.State = StateViewing
		a.City.Cam.Attach(a.dispatcher)
		log.Println("[App] Retomando")
	}
}

func (a *App) toggleScheme() {
	next := camera.SchemeLook
	if a.City.Cam.Scheme == camera.SchemeLook {
		next = camera.SchemeFly
	}
	a.City.Cam.SetScheme(next)
	a.Config.CameraScheme = next.String()
	log.Printf("[Camera] Esquema: %s", next)
}
