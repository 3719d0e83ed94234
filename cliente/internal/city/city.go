// Package city amarra câmera, streaming de tiles e cena em um passo de frame
// com ordem fixa.
package city

import (
	"fmt"

	"InfiniteCity/cliente/internal/camera"
	"InfiniteCity/cliente/internal/scene"
	"InfiniteCity/cliente/internal/streaming"
	"InfiniteCity/shared/config"

	"github.com/go-gl/mathgl/mgl32"
)

// City é o estado compartilhado do loop de frames. O dono (App) passa o
// ponteiro para os handlers de entrada e para o Step.
type City struct {
	Cam      *camera.CameraController
	Streamer *streaming.Streamer
	Scene    *scene.Scene

	LastDiff streaming.Diff
	Frames   int
}

// CameraSettings converte a configuração em Settings da câmera.
func CameraSettings(cfg *config.Config) camera.Settings {
	scheme := camera.SchemeFly
	if cfg.CameraScheme == config.SchemeLook {
		scheme = camera.SchemeLook
	}
	return camera.Settings{
		Scheme:          scheme,
		MinHeight:       cfg.MinHeight,
		MaxHeight:       cfg.MaxHeight,
		DragSpeed:       cfg.DragSpeed,
		ZoomSpeed:       cfg.ZoomSpeed,
		KeySpeed:        cfg.KeySpeed,
		MoveSpeed:       cfg.MoveSpeed,
		LookSensitivity: cfg.LookSensitivity,
		Smoothing:       cfg.Smoothing,
		LookDistance:    cfg.LookDistance,
		StartPosition:   mgl32.Vec3(cfg.StartPosition),
		LookDirection:   mgl32.Vec3(cfg.LookDirection),
	}
}

// StreamingConfig converte a configuração em Config do streamer.
func StreamingConfig(cfg *config.Config) streaming.Config {
	policy := streaming.PolicyOnCellChange
	if cfg.StreamPolicy == config.PolicyEveryFrame {
		policy = streaming.PolicyEveryFrame
	}
	return streaming.Config{
		RenderDistance: cfg.RenderDistance,
		BlockSize:      cfg.BlockSize,
		Policy:         policy,
		ScaleMin:       cfg.HeightScaleMin,
		ScaleMax:       cfg.HeightScaleMax,
		Asset:          cfg.CityModel,
	}
}

// New valida a configuração e monta os componentes.
func New(cfg *config.Config) (*City, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuração inválida: %w", err)
	}

	var opts []streaming.Option
	if cfg.Seed != 0 {
		opts = append(opts, streaming.WithSeed(uint64(cfg.Seed)))
	}
	st, err := streaming.New(StreamingConfig(cfg), opts...)
	if err != nil {
		return nil, fmt.Errorf("falha ao criar streamer: %w", err)
	}

	return &City{
		Cam:      camera.New(CameraSettings(cfg)),
		Streamer: st,
		Scene:    scene.New(),
	}, nil
}

// Step avança um frame. A câmera é atualizada antes de calcular a janela de
// tiles, então o streaming sempre enxerga a posição deste frame.
func (c *City) Step(dt float32) streaming.Diff {
	c.Frames++

	c.Cam.Update(dt)

	diff := c.Streamer.Update(c.Cam.Position)
	c.Scene.Apply(diff)

	c.LastDiff = diff
	return diff
}

// Rebuild descarta todos os tiles e reconstrói a janela na posição atual.
func (c *City) Rebuild() {
	c.Scene.Apply(c.Streamer.Reset())
	c.LastDiff = c.Streamer.Update(c.Cam.Position)
	c.Scene.Apply(c.LastDiff)
}
