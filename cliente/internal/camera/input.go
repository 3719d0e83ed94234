package camera

import "InfiniteCity/cliente/internal/input"

// Teclas de movimento (setas como alternativa ao WASD).
var (
	keysForward = []int32{input.KeyW, input.KeyUp}
	keysBack    = []int32{input.KeyS, input.KeyDown}
	keysRight   = []int32{input.KeyD, input.KeyRight}
	keysLeft    = []int32{input.KeyA, input.KeyLeft}
	keysUp      = []int32{input.KeySpace}
	keysDown    = []int32{input.KeyLeftShift, input.KeyRightShift}
)

const noTouch int32 = -1

// InputState é a "caixa de correio" entre os handlers de evento e o Update.
// Handlers só escrevem escalares; Update é o único leitor e zera os deltas.
type InputState struct {
	Keys    map[int32]bool
	Engaged bool // Ponteiro ou primeiro toque pressionado
	LastX   float32
	LastY   float32
	TouchID int32 // Toque que controla o arrasto; noTouch se nenhum

	// Deltas acumulados desde o último Update
	DragDX  float32
	DragDY  float32
	WheelDY float32
}

func (s *InputState) reset() {
	s.Keys = make(map[int32]bool)
	s.Engaged = false
	s.TouchID = noTouch
	s.drain()
}

func (s *InputState) drain() {
	s.DragDX, s.DragDY, s.WheelDY = 0, 0, 0
}

func (s *InputState) anyDown(keys ...int32) bool {
	for _, k := range keys {
		if s.Keys[k] {
			return true
		}
	}
	return false
}

// Nomes dos handlers registrados no dispatcher.
const (
	handlerKeyDown     = "camera.keydown"
	handlerKeyUp       = "camera.keyup"
	handlerPointerDown = "camera.pointerdown"
	handlerPointerMove = "camera.pointermove"
	handlerPointerUp   = "camera.pointerup"
	handlerTouchStart  = "camera.touchstart"
	handlerTouchMove   = "camera.touchmove"
	handlerTouchEnd    = "camera.touchend"
	handlerWheel       = "camera.wheel"
)

type attachment struct {
	d     *input.Dispatcher
	names []string
}

// Attach registra os handlers da câmera no dispatcher.
// Chamar Attach de novo primeiro desfaz o registro anterior.
func (c *CameraController) Attach(d *input.Dispatcher) {
	c.Detach()

	handlers := []struct {
		name string
		kind input.Kind
		fn   input.Handler
	}{
		{handlerKeyDown, input.KindKeyDown, c.onKeyDown},
		{handlerKeyUp, input.KindKeyUp, c.onKeyUp},
		{handlerPointerDown, input.KindPointerDown, c.onPointerDown},
		{handlerPointerMove, input.KindPointerMove, c.onPointerMove},
		{handlerPointerUp, input.KindPointerUp, c.onPointerUp},
		{handlerTouchStart, input.KindTouchStart, c.onTouchStart},
		{handlerTouchMove, input.KindTouchMove, c.onTouchMove},
		{handlerTouchEnd, input.KindTouchEnd, c.onTouchEnd},
		{handlerWheel, input.KindWheel, c.onWheel},
	}

	att := &attachment{d: d}
	for _, h := range handlers {
		d.Register(h.name, h.kind, h.fn)
		att.names = append(att.names, h.name)
	}
	c.attached = att
}

// Detach remove todos os handlers registrados, inclusive no meio de um arrasto.
func (c *CameraController) Detach() {
	if c.attached == nil {
		return
	}
	for _, name := range c.attached.names {
		c.attached.d.Unregister(name)
	}
	c.attached = nil
	c.Input.reset()
}

// Attached indica se os handlers estão registrados.
func (c *CameraController) Attached() bool {
	return c.attached != nil
}

func (c *CameraController) onKeyDown(ev input.Event) bool {
	c.Input.Keys[ev.Key] = true
	return false
}

func (c *CameraController) onKeyUp(ev input.Event) bool {
	delete(c.Input.Keys, ev.Key)
	return false
}

func (c *CameraController) onPointerDown(ev input.Event) bool {
	c.Input.Engaged = true
	c.Input.LastX, c.Input.LastY = ev.X, ev.Y
	return false
}

func (c *CameraController) onPointerMove(ev input.Event) bool {
	// Move sem down anterior (ou durante um toque) é ignorado
	if !c.Input.Engaged || c.Input.TouchID != noTouch {
		return false
	}
	c.accumulateDrag(ev.X, ev.Y)
	return false
}

func (c *CameraController) onPointerUp(ev input.Event) bool {
	if c.Input.TouchID != noTouch {
		return false
	}
	c.Input.Engaged = false
	return false
}

func (c *CameraController) onTouchStart(ev input.Event) bool {
	// Só o primeiro toque ativo conta; toques extras são ignorados
	if c.Input.TouchID != noTouch {
		return false
	}
	c.Input.TouchID = ev.TouchID
	c.Input.Engaged = true
	c.Input.LastX, c.Input.LastY = ev.X, ev.Y
	return false
}

func (c *CameraController) onTouchMove(ev input.Event) bool {
	if c.Input.TouchID == noTouch || ev.TouchID != c.Input.TouchID {
		return false
	}
	c.accumulateDrag(ev.X, ev.Y)
	return false
}

func (c *CameraController) onTouchEnd(ev input.Event) bool {
	if ev.TouchID != c.Input.TouchID {
		return false
	}
	c.Input.TouchID = noTouch
	c.Input.Engaged = false
	return false
}

// onWheel sempre consome o evento: o wheel é zoom, nunca rolagem.
func (c *CameraController) onWheel(ev input.Event) bool {
	c.Input.WheelDY += ev.DeltaY
	return true
}

func (c *CameraController) accumulateDrag(x, y float32) {
	c.Input.DragDX += x - c.Input.LastX
	c.Input.DragDY += y - c.Input.LastY
	c.Input.LastX, c.Input.LastY = x, y
}
