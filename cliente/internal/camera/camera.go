package camera

import (
	"math"

	"InfiniteCity/shared/util"

	"github.com/go-gl/mathgl/mgl32"
)

// Scheme define o esquema de controle da câmera.
type Scheme int

const (
	// SchemeFly: direção de olhar fixa; arrasto, wheel e teclado deslocam a
	// posição alvo e a câmera segue com amortecimento.
	SchemeFly Scheme = iota
	// SchemeLook: arrasto gira yaw/pitch diretamente; teclado translada a
	// câmera nos próprios eixos.
	SchemeLook
)

func (s Scheme) String() string {
	if s == SchemeLook {
		return "look"
	}
	return "fly"
}

var worldUp = mgl32.Vec3{0, 1, 0}

// Settings agrupa as constantes do controlador (definidas na inicialização).
type Settings struct {
	Scheme          Scheme
	MinHeight       float32
	MaxHeight       float32
	DragSpeed       float32 // Unidades de mundo por pixel arrastado (fly)
	ZoomSpeed       float32 // Unidades de mundo por unidade de deltaY do wheel
	KeySpeed        float32 // Unidades por segundo no teclado (fly)
	MoveSpeed       float32 // Unidades por segundo no teclado (look)
	LookSensitivity float32 // Radianos por pixel arrastado (look)
	Smoothing       float32 // Taxa do amortecimento exponencial (fly)
	LookDistance    float32 // Distância do ponto de mira à frente da câmera
	StartPosition   mgl32.Vec3
	LookDirection   mgl32.Vec3
}

// DefaultSettings retorna valores equivalentes ao config padrão.
func DefaultSettings() Settings {
	return Settings{
		Scheme:          SchemeFly,
		MinHeight:       5,
		MaxHeight:       200,
		DragSpeed:       0.5,
		ZoomSpeed:       0.5,
		KeySpeed:        100,
		MoveSpeed:       60,
		LookSensitivity: 0.005,
		Smoothing:       8,
		LookDistance:    100,
		StartPosition:   mgl32.Vec3{0, 60, 120},
		LookDirection:   mgl32.Vec3{0, -0.5, -1},
	}
}

// Pose é a transformação final da câmera em um frame.
type Pose struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3 // Ponto para onde a câmera olha
	Up       mgl32.Vec3
}

// CameraController gerencia o estado da câmera e traduz a entrada acumulada
// em movimento uma vez por frame. É o único escritor da pose da câmera.
type CameraController struct {
	Settings

	// Estado atual
	Position  mgl32.Vec3
	TargetPos mgl32.Vec3 // Onde a câmera quer chegar (fly)
	LookDir   mgl32.Vec3 // Unitário
	Yaw       float32    // Radianos, em torno do eixo Y do mundo (look)
	Pitch     float32    // Radianos, em torno do eixo X local (look)

	Input InputState

	attached *attachment
}

// New cria um controlador já na pose inicial.
func New(s Settings) *CameraController {
	c := &CameraController{Settings: s}
	c.Input.reset()
	c.Reset()
	return c
}

// Reset restaura a pose inicial e descarta deslocamentos pendentes.
func (c *CameraController) Reset() {
	c.Position = c.StartPosition
	c.Position[1] = util.Clamp(c.Position[1], c.MinHeight, c.MaxHeight)
	c.TargetPos = c.Position

	c.LookDir = normalizeOr(c.Settings.LookDirection, mgl32.Vec3{0, 0, -1})
	c.Yaw, c.Pitch = yawPitchFromDir(c.LookDir)

	c.Input.drain()
}

// SetScheme troca o esquema de controle mantendo a posição e a direção atuais.
func (c *CameraController) SetScheme(s Scheme) {
	if s == c.Scheme {
		return
	}
	switch s {
	case SchemeLook:
		// Continua olhando para o mesmo lado
		c.Yaw, c.Pitch = yawPitchFromDir(c.LookDir)
	case SchemeFly:
		c.LookDir = c.lookForward()
	}
	c.Scheme = s
	c.TargetPos = c.Position
	c.Input.drain()
}

// Update aplica a entrada acumulada e avança a câmera por dt segundos.
func (c *CameraController) Update(dt float32) {
	if dt < 0 || math.IsNaN(float64(dt)) {
		dt = 0
	}

	switch c.Scheme {
	case SchemeLook:
		c.updateLook(dt)
	default:
		c.updateFly(dt)
	}

	c.Input.drain()
}

// updateFly: entrada desloca o alvo; a posição segue com amortecimento crítico.
func (c *CameraController) updateFly(dt float32) {
	forward, right := c.GroundAxes()

	// Arrasto: "agarrar o chão". Mover o ponteiro para a direita leva a câmera para a esquerda.
	if c.Input.DragDX != 0 || c.Input.DragDY != 0 {
		c.TargetPos = c.TargetPos.
			Add(right.Mul(-c.Input.DragDX * c.DragSpeed)).
			Add(forward.Mul(c.Input.DragDY * c.DragSpeed))
	}

	// Wheel: deltaY negativo (rolar para cima) aproxima ao longo da direção de olhar.
	if c.Input.WheelDY != 0 {
		c.TargetPos = c.TargetPos.Add(c.LookDir.Mul(-c.Input.WheelDY * c.ZoomSpeed))
	}

	// Teclado nos eixos projetados no chão + vertical do mundo
	move := c.keyAxes(forward, right)
	if move.Len() > 0 {
		c.TargetPos = c.TargetPos.Add(move.Mul(c.KeySpeed * dt))
	}

	c.TargetPos[1] = util.Clamp(c.TargetPos[1], c.MinHeight, c.MaxHeight)

	c.Position = util.LerpVec(c.Position, c.TargetPos, util.DampFactor(c.Smoothing, dt))
}

// updateLook: arrasto gira a câmera; teclado translada nos eixos da câmera.
func (c *CameraController) updateLook(dt float32) {
	c.Yaw -= c.Input.DragDX * c.LookSensitivity
	c.Pitch -= c.Input.DragDY * c.LookSensitivity
	c.Pitch = util.Clamp(c.Pitch, -math.Pi/2, math.Pi/2)

	rot := c.lookRotation()
	forward := rot.Rotate(mgl32.Vec3{0, 0, -1})
	right := rot.Rotate(mgl32.Vec3{1, 0, 0})

	move := c.keyAxes(forward, right)
	if move.Len() > 0 {
		c.Position = c.Position.Add(move.Mul(c.MoveSpeed * dt))
	}

	c.Position[1] = util.Clamp(c.Position[1], c.MinHeight, c.MaxHeight)
	c.TargetPos = c.Position
}

// keyAxes soma os eixos das teclas seguradas. O componente horizontal é
// normalizado para que a diagonal não seja mais rápida.
func (c *CameraController) keyAxes(forward, right mgl32.Vec3) mgl32.Vec3 {
	var planar mgl32.Vec3
	if c.Input.anyDown(keysForward...) {
		planar = planar.Add(forward)
	}
	if c.Input.anyDown(keysBack...) {
		planar = planar.Sub(forward)
	}
	if c.Input.anyDown(keysRight...) {
		planar = planar.Add(right)
	}
	if c.Input.anyDown(keysLeft...) {
		planar = planar.Sub(right)
	}
	if planar.Len() > 1e-6 {
		planar = planar.Normalize()
	}

	var vertical float32
	if c.Input.anyDown(keysUp...) {
		vertical++
	}
	if c.Input.anyDown(keysDown...) {
		vertical--
	}

	return planar.Add(worldUp.Mul(vertical))
}

// GroundAxes retorna forward e right projetados no plano XZ (Y = 0, unitários).
// Olhando reto para baixo, forward cai para -Z.
func (c *CameraController) GroundAxes() (forward, right mgl32.Vec3) {
	dir := c.LookDir
	if c.Scheme == SchemeLook {
		dir = c.lookForward()
	}
	forward = normalizeOr(mgl32.Vec3{dir.X(), 0, dir.Z()}, mgl32.Vec3{0, 0, -1})
	right = forward.Cross(worldUp).Normalize()
	return forward, right
}

// lookRotation aplica yaw no eixo Y do mundo primeiro e depois pitch no eixo X local.
// Essa ordem fixa evita o rolamento e a inversão da câmera.
func (c *CameraController) lookRotation() mgl32.Quat {
	yaw := mgl32.QuatRotate(c.Yaw, worldUp)
	pitch := mgl32.QuatRotate(c.Pitch, mgl32.Vec3{1, 0, 0})
	return yaw.Mul(pitch)
}

func (c *CameraController) lookForward() mgl32.Vec3 {
	return c.lookRotation().Rotate(mgl32.Vec3{0, 0, -1}).Normalize()
}

// Pose calcula a transformação para o renderizador.
func (c *CameraController) Pose() Pose {
	if c.Scheme == SchemeLook {
		rot := c.lookRotation()
		forward := rot.Rotate(mgl32.Vec3{0, 0, -1})
		return Pose{
			Position: c.Position,
			Target:   c.Position.Add(forward.Mul(c.lookDistance())),
			Up:       rot.Rotate(worldUp),
		}
	}

	up := worldUp
	if float32(math.Abs(float64(c.LookDir.Y()))) > 0.999 {
		up = mgl32.Vec3{0, 0, -1}
	}
	return Pose{
		Position: c.Position,
		Target:   c.Position.Add(c.LookDir.Mul(c.lookDistance())),
		Up:       up,
	}
}

func (c *CameraController) lookDistance() float32 {
	if c.LookDistance > 0 {
		return c.LookDistance
	}
	return 1
}

// Snapshot é uma cópia do estado da câmera para HUD e testes.
type Snapshot struct {
	Scheme    Scheme
	Position  mgl32.Vec3
	TargetPos mgl32.Vec3
	LookDir   mgl32.Vec3
	Yaw       float32
	Pitch     float32
	Engaged   bool
}

// Snapshot retorna uma cópia do estado atual.
func (c *CameraController) Snapshot() Snapshot {
	dir := c.LookDir
	if c.Scheme == SchemeLook {
		dir = c.lookForward()
	}
	return Snapshot{
		Scheme:    c.Scheme,
		Position:  c.Position,
		TargetPos: c.TargetPos,
		LookDir:   dir,
		Yaw:       c.Yaw,
		Pitch:     c.Pitch,
		Engaged:   c.Input.Engaged,
	}
}

func normalizeOr(v, fallback mgl32.Vec3) mgl32.Vec3 {
	if v.Len() < 1e-6 {
		return fallback
	}
	return v.Normalize()
}

// yawPitchFromDir inverte lookRotation: forward (0,0,-1) equivale a yaw = pitch = 0.
func yawPitchFromDir(dir mgl32.Vec3) (yaw, pitch float32) {
	d := normalizeOr(dir, mgl32.Vec3{0, 0, -1})
	pitch = float32(math.Asin(float64(util.Clamp(d.Y(), -1, 1))))
	yaw = float32(math.Atan2(float64(-d.X()), float64(-d.Z())))
	return yaw, pitch
}
