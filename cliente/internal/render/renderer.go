package render

import (
	"log"
	"math"

	"InfiniteCity/cliente/internal/assets"
	"InfiniteCity/cliente/internal/scene"
	"InfiniteCity/shared/config"
	"InfiniteCity/shared/util"

	"github.com/go-gl/mathgl/mgl32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Cores do céu/neblina e do chão.
var (
	SkyColor    = rl.NewColor(168, 186, 204, 255)
	groundColor = rl.NewColor(92, 96, 102, 255)
	gridColor   = rl.NewColor(120, 126, 134, 255)
)

// DrawStats conta o que foi desenhado no último frame.
type DrawStats struct {
	Drawn   int
	Skipped int // Nós cujo asset não está disponível
}

// Renderer desenha os nós da cena. Todos os nós que referenciam o mesmo asset
// compartilham um único rl.Model; o tint e a escala vão por chamada.
type Renderer struct {
	// Modelos 3D carregados, por nome lógico
	Models  map[string]rl.Model
	failed  map[string]bool
	pending *util.UniqueQueue[string] // Modelos pedidos em Draw, carregados em ProcessLoads

	fallback    rl.Model
	hasFallback bool

	Shader        rl.Shader
	camPosLoc     int32
	fogColorLoc   int32
	fogDensityLoc int32

	// Gerenciador de Assets (models.json)
	AssetMgr *assets.Manager

	blockSize      float32
	renderDistance int
	modelScale     float32

	Stats DrawStats
}

// NewRenderer cria o renderizador. Precisa da janela aberta para carregar
// shader e modelos.
func NewRenderer(mgr *assets.Manager, cfg *config.Config) *Renderer {
	r := &Renderer{
		Models:         make(map[string]rl.Model),
		failed:         make(map[string]bool),
		pending:        util.NewUniqueQueue[string](),
		AssetMgr:       mgr,
		blockSize:      cfg.BlockSize,
		renderDistance: cfg.RenderDistance,
		modelScale:     cfg.ModelScale,
	}
	if r.modelScale <= 0 {
		r.modelScale = 1
	}

	if !rl.IsWindowReady() {
		log.Printf("[Renderer] AVISO: janela não inicializada, nada carregado")
		return r
	}

	r.Shader = rl.LoadShaderFromMemory(cityVertexShader, cityFragmentShader)
	if r.Shader.ID != 0 {
		r.camPosLoc = rl.GetShaderLocation(r.Shader, "camPos")
		r.fogColorLoc = rl.GetShaderLocation(r.Shader, "fogColor")
		r.fogDensityLoc = rl.GetShaderLocation(r.Shader, "fogDensity")

		sky := rl.ColorNormalize(SkyColor)
		rl.SetShaderValue(r.Shader, r.fogColorLoc, []float32{sky.X, sky.Y, sky.Z}, rl.ShaderUniformVec3)
		rl.SetShaderValue(r.Shader, r.fogDensityLoc, []float32{FogDensity(r.blockSize, r.renderDistance)}, rl.ShaderUniformFloat)
	} else {
		log.Printf("[Renderer] AVISO: shader da cidade não compilou, usando o padrão")
	}

	r.loadModels()
	if cfg.FallbackBuilding {
		r.loadFallback()
	}

	log.Printf("[Renderer] NewRenderer() finalizado. Models=%d, fallback=%v", len(r.Models), r.hasFallback)
	return r
}

// FogDensity escolhe a densidade para que a neblina feche perto da borda da janela.
func FogDensity(blockSize float32, renderDistance int) float32 {
	radius := (float32(renderDistance) + 0.5) * blockSize
	if radius <= 0 {
		return 0
	}
	return 1.6 / radius
}

// modelFor retorna o modelo de um asset. Modelos ainda não carregados entram
// na fila e o nó usa o prédio padrão até lá.
func (r *Renderer) modelFor(name string) (rl.Model, bool) {
	if m, ok := r.Models[name]; ok {
		return m, true
	}
	if r.AssetMgr != nil && !r.failed[name] {
		r.pending.Enqueue(name)
	}
	if r.hasFallback {
		return r.fallback, true
	}
	return rl.Model{}, false
}

// ProcessLoads carrega no máximo um modelo pendente por frame (evita stutter).
func (r *Renderer) ProcessLoads() {
	if name, ok := r.pending.Dequeue(); ok {
		r.loadSingleModel(name)
	}
}

// Draw renderiza o chão e os nós da cena. Deve ser chamado entre BeginMode3D/EndMode3D.
func (r *Renderer) Draw(camera3d rl.Camera3D, sc *scene.Scene, showGrid bool) {
	camPos := camera3d.Position
	if r.Shader.ID != 0 {
		rl.SetShaderValue(r.Shader, r.camPosLoc, []float32{camPos.X, camPos.Y, camPos.Z}, rl.ShaderUniformVec3)
	}

	r.drawGround(camPos, showGrid)

	r.Stats = DrawStats{}
	axis := rl.NewVector3(0, 1, 0)
	sc.Each(func(n *scene.Node) {
		model, ok := r.modelFor(n.Asset)
		if !ok {
			r.Stats.Skipped++
			return
		}
		scale := n.Scale.Mul(r.modelScale)
		tint := rl.NewColor(n.Tint[0], n.Tint[1], n.Tint[2], n.Tint[3])
		rl.DrawModelEx(model, toVector3(n.Position), axis, 0, toVector3(scale), tint)
		r.Stats.Drawn++
	})
}

// drawGround desenha o plano do chão centrado na célula da câmera.
func (r *Renderer) drawGround(camPos rl.Vector3, showGrid bool) {
	center := util.WorldToGrid(mgl32.Vec3{camPos.X, camPos.Y, camPos.Z}, r.blockSize)
	origin := util.GridToWorld(center, r.blockSize)
	side := float32(2*r.renderDistance+3) * r.blockSize

	rl.DrawPlane(toVector3(origin), rl.NewVector2(side, side), groundColor)
	if !showGrid {
		return
	}

	// Linhas nas bordas das células (meio bloco fora do centro de cada tile)
	half := side / 2
	n := 2*r.renderDistance + 3
	const lift = 0.05
	for i := 0; i <= n; i++ {
		off := -half + float32(i)*r.blockSize
		rl.DrawLine3D(
			rl.NewVector3(origin.X()+off, lift, origin.Z()-half),
			rl.NewVector3(origin.X()+off, lift, origin.Z()+half), gridColor)
		rl.DrawLine3D(
			rl.NewVector3(origin.X()-half, lift, origin.Z()+off),
			rl.NewVector3(origin.X()+half, lift, origin.Z()+off), gridColor)
	}
}

// Unload libera modelos e shader.
func (r *Renderer) Unload() {
	for name, m := range r.Models {
		rl.UnloadModel(m)
		delete(r.Models, name)
	}
	if r.hasFallback {
		rl.UnloadModel(r.fallback)
		r.hasFallback = false
	}
	r.pending.Clear()
	if r.Shader.ID != 0 {
		rl.UnloadShader(r.Shader)
		r.Shader = rl.Shader{}
	}
}

func toVector3(v mgl32.Vec3) rl.Vector3 {
	return rl.NewVector3(v.X(), v.Y(), v.Z())
}

// CameraFromPose monta a câmera raylib a partir da pose.
func CameraFromPose(pos, target, up mgl32.Vec3, fov float32) rl.Camera3D {
	if fov <= 0 || fov >= 180 || math.IsNaN(float64(fov)) {
		fov = 60
	}
	return rl.Camera3D{
		Position:   toVector3(pos),
		Target:     toVector3(target),
		Up:         toVector3(up),
		Fovy:       fov,
		Projection: rl.CameraPerspective,
	}
}
