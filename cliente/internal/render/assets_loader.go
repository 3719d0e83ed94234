package render

import (
	"log"
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// loadModels carrega os modelos da lista de preload do Asset Manager.
func (r *Renderer) loadModels() {
	if r.AssetMgr == nil {
		return
	}
	for _, name := range r.AssetMgr.PreloadList() {
		r.loadSingleModel(name)
	}
	log.Printf("[Renderer] Total de modelos 3D carregados: %d", len(r.Models))
}

func (r *Renderer) loadSingleModel(name string) bool {
	if _, ok := r.Models[name]; ok {
		return true
	}
	if r.failed[name] {
		return false
	}

	path, err := r.AssetMgr.Resolve(name)
	if err != nil || !r.AssetMgr.Available(name) {
		log.Printf("[Renderer] Modelo %q indisponível (%s)", name, path)
		r.failed[name] = true
		return false
	}

	model := rl.LoadModel(path)
	if model.MeshCount == 0 {
		log.Printf("[Renderer] FALHA ao carregar modelo: %s", path)
		r.failed[name] = true
		return false
	}

	r.applyShader(&model)
	r.Models[name] = model
	log.Printf("[Renderer] Modelo carregado: %s (Key: %s)", path, name)
	return true
}

// loadFallback gera o prédio padrão: um bloco com a base apoiada em Y=0.
func (r *Renderer) loadFallback() {
	footprint := r.blockSize * 0.7
	height := r.blockSize * 1.2

	mesh := rl.GenMeshCube(footprint, height, footprint)
	model := rl.LoadModelFromMesh(mesh)
	model.Transform = rl.MatrixTranslate(0, height/2, 0)
	r.applyShader(&model)

	r.fallback = model
	r.hasFallback = true
	log.Printf("[Renderer] Prédio padrão gerado (%.0fx%.0fx%.0f)", footprint, height, footprint)
}

func (r *Renderer) applyShader(model *rl.Model) {
	if r.Shader.ID == 0 || model.MaterialCount == 0 {
		return
	}
	materials := unsafe.Slice(model.Materials, model.MaterialCount)
	for i := range materials {
		materials[i].Shader = r.Shader
	}
}
