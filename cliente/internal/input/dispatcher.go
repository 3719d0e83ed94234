package input

import "sort"

// Kind identifica o tipo de evento de entrada.
type Kind int

const (
	KindKeyDown Kind = iota
	KindKeyUp
	KindPointerDown
	KindPointerMove
	KindPointerUp
	KindTouchStart
	KindTouchMove
	KindTouchEnd
	KindWheel
)

var kindNames = [...]string{
	"keydown", "keyup",
	"pointerdown", "pointermove", "pointerup",
	"touchstart", "touchmove", "touchend",
	"wheel",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Códigos de tecla. Os valores são os mesmos da Raylib (GLFW), assim o
// RaylibSource repassa o código sem tradução.
const (
	KeySpace        int32 = 32
	KeyA            int32 = 65
	KeyC            int32 = 67
	KeyD            int32 = 68
	KeyG            int32 = 71
	KeyR            int32 = 82
	KeyS            int32 = 83
	KeyW            int32 = 87
	KeyEscape       int32 = 256
	KeyRight        int32 = 262
	KeyLeft         int32 = 263
	KeyDown         int32 = 264
	KeyUp           int32 = 265
	KeyF3           int32 = 292
	KeyF11          int32 = 300
	KeyLeftShift    int32 = 340
	KeyRightShift   int32 = 344
	KeyLeftControl  int32 = 341
	KeyRightControl int32 = 345
)

// WatchedKeys são as teclas que a fonte de eventos acompanha.
var WatchedKeys = []int32{
	KeyW, KeyA, KeyS, KeyD,
	KeyUp, KeyDown, KeyLeft, KeyRight,
	KeySpace, KeyLeftShift, KeyRightShift,
	KeyC, KeyG, KeyR, KeyF3, KeyF11, KeyEscape,
}

// Event é um evento de entrada já normalizado.
// Para wheel, DeltaY segue a convenção do navegador: positivo = rolar para baixo.
type Event struct {
	Kind    Kind
	Key     int32
	X, Y    float32
	TouchID int32
	DeltaY  float32
}

// Handler processa um evento. Retornar true consome o evento e suprime o
// comportamento padrão do host (ex.: rolagem da página no wheel).
type Handler func(ev Event) bool

type registration struct {
	name  string
	kind  Kind
	order int
	fn    Handler
}

// Dispatcher mantém handlers nomeados por tipo de evento.
// Não é thread-safe: registro e despacho acontecem na thread do loop de frames.
type Dispatcher struct {
	byName map[string]*registration
	seq    int
}

// NewDispatcher cria um dispatcher vazio.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{byName: make(map[string]*registration)}
}

// Register associa um handler a um nome. Registrar de novo o mesmo nome
// substitui o handler anterior.
func (d *Dispatcher) Register(name string, kind Kind, fn Handler) {
	if fn == nil {
		return
	}
	d.seq++
	d.byName[name] = &registration{name: name, kind: kind, order: d.seq, fn: fn}
}

// Unregister remove o handler com esse nome. Retorna false se não existia.
func (d *Dispatcher) Unregister(name string) bool {
	if _, ok := d.byName[name]; !ok {
		return false
	}
	delete(d.byName, name)
	return true
}

// Has indica se existe um handler com esse nome.
func (d *Dispatcher) Has(name string) bool {
	_, ok := d.byName[name]
	return ok
}

// Len retorna o número de handlers registrados.
func (d *Dispatcher) Len() int {
	return len(d.byName)
}

// Dispatch entrega o evento a todos os handlers do tipo, na ordem de registro.
// Retorna true se algum handler consumiu o evento.
func (d *Dispatcher) Dispatch(ev Event) bool {
	regs := make([]*registration, 0, 4)
	for _, r := range d.byName {
		if r.kind == ev.Kind {
			regs = append(regs, r)
		}
	}
	sort.Slice(regs, func(i, j int) bool { return regs[i].order < regs[j].order })

	handled := false
	for _, r := range regs {
		// Um handler anterior pode ter removido este durante o despacho.
		if d.byName[r.name] != r {
			continue
		}
		if r.fn(ev) {
			handled = true
		}
	}
	return handled
}
