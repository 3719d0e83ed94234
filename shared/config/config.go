package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Erros de validação. Configuração inválida deve falhar na inicialização,
// nunca virar matemática de grid indefinida no meio do loop.
var (
	ErrInvalidRenderDistance = errors.New("render_distance deve ser >= 0")
	ErrInvalidBlockSize      = errors.New("block_size deve ser > 0")
	ErrInvalidHeightBounds   = errors.New("min_height deve ser <= max_height")
	ErrInvalidScaleRange     = errors.New("faixa de escala de altura inválida")
	ErrInvalidSpeed          = errors.New("velocidades da câmera não podem ser negativas")
	ErrInvalidLookDirection  = errors.New("look_direction não pode ser nulo")
	ErrInvalidEnum           = errors.New("valor desconhecido")
)

// Políticas de atualização do streaming de tiles.
const (
	PolicyOnCellChange = "on_cell_change"
	PolicyEveryFrame   = "every_frame"
)

// Esquemas de controle da câmera.
const (
	SchemeFly  = "fly"
	SchemeLook = "look"
)

// Config armazena as configurações do InfiniteCity.
type Config struct {
	// Janela
	WindowWidth  int32   `json:"window_width" yaml:"window_width"`
	WindowHeight int32   `json:"window_height" yaml:"window_height"`
	WindowTitle  string  `json:"window_title" yaml:"window_title"`
	Fullscreen   bool    `json:"fullscreen" yaml:"fullscreen"`
	TargetFPS    int32   `json:"target_fps" yaml:"target_fps"`
	FOV          float32 `json:"fov" yaml:"fov"`

	// Assets
	AssetsDir        string  `json:"assets_dir" yaml:"assets_dir"`
	CityModel        string  `json:"city_model" yaml:"city_model"` // Nome do modelo em models.json
	ModelScale       float32 `json:"model_scale" yaml:"model_scale"`
	FallbackBuilding bool    `json:"fallback_building" yaml:"fallback_building"`

	// Streaming de tiles
	RenderDistance int     `json:"render_distance" yaml:"render_distance"` // Células por eixo a partir do centro
	BlockSize      float32 `json:"block_size" yaml:"block_size"`           // Unidades de mundo por tile
	StreamPolicy   string  `json:"stream_policy" yaml:"stream_policy"`
	HeightScaleMin float32 `json:"height_scale_min" yaml:"height_scale_min"`
	HeightScaleMax float32 `json:"height_scale_max" yaml:"height_scale_max"`
	Seed           int64   `json:"seed" yaml:"seed"` // 0 = aleatório por sessão

	// Câmera
	CameraScheme    string     `json:"camera_scheme" yaml:"camera_scheme"`
	MinHeight       float32    `json:"min_height" yaml:"min_height"`
	MaxHeight       float32    `json:"max_height" yaml:"max_height"`
	DragSpeed       float32    `json:"drag_speed" yaml:"drag_speed"`
	ZoomSpeed       float32    `json:"zoom_speed" yaml:"zoom_speed"`
	KeySpeed        float32    `json:"key_speed" yaml:"key_speed"`
	MoveSpeed       float32    `json:"move_speed" yaml:"move_speed"`
	LookSensitivity float32    `json:"look_sensitivity" yaml:"look_sensitivity"` // Radianos por pixel
	Smoothing       float32    `json:"smoothing" yaml:"smoothing"`
	LookDistance    float32    `json:"look_distance" yaml:"look_distance"`
	StartPosition   [3]float32 `json:"start_position" yaml:"start_position"`
	LookDirection   [3]float32 `json:"look_direction" yaml:"look_direction"`

	// Entrada
	EnableTouch bool `json:"enable_touch" yaml:"enable_touch"`

	// Debug
	ShowDebugInfo bool `json:"show_debug_info" yaml:"show_debug_info"`
	ShowGrid      bool `json:"show_grid" yaml:"show_grid"`

	path string
}

// DefaultConfig retorna a configuração padrão.
func DefaultConfig() *Config {
	return &Config{
		WindowWidth:  1280,
		WindowHeight: 720,
		WindowTitle:  "InfiniteCity",
		Fullscreen:   false,
		TargetFPS:    60,
		FOV:          60.0,

		AssetsDir:        "assets",
		CityModel:        "city",
		ModelScale:       1.0,
		FallbackBuilding: true,

		RenderDistance: 5,
		BlockSize:      50.0,
		StreamPolicy:   PolicyOnCellChange,
		HeightScaleMin: 0.8,
		HeightScaleMax: 1.6,

		CameraScheme:    SchemeFly,
		MinHeight:       5.0,
		MaxHeight:       200.0,
		DragSpeed:       0.5,
		ZoomSpeed:       0.5,
		KeySpeed:        100.0,
		MoveSpeed:       60.0,
		LookSensitivity: 0.005,
		Smoothing:       8.0,
		LookDistance:    100.0,
		StartPosition:   [3]float32{0, 60, 120},
		LookDirection:   [3]float32{0, -0.5, -1},

		ShowDebugInfo: true,
		ShowGrid:      false,
	}
}

// DefaultPath retorna o caminho padrão do arquivo de configuração (ao lado do executável).
func DefaultPath() string {
	execDir, err := os.Executable()
	if err != nil {
		return "config.json"
	}
	return filepath.Join(filepath.Dir(execDir), "config.json")
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// Load carrega as configurações de um arquivo JSON ou YAML (pela extensão).
// Se o arquivo não existir, retorna as configurações padrão.
// Campos ausentes no arquivo mantêm o valor padrão.
func Load(path string) *Config {
	cfg := DefaultConfig()
	cfg.path = path

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	if isYAML(path) {
		err = yaml.Unmarshal(data, cfg)
	} else {
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		log.Printf("[Config] Arquivo %s inválido, usando padrões: %v", path, err)
		cfg = DefaultConfig()
		cfg.path = path
	}

	return cfg
}

// Path retorna o caminho de onde a configuração foi carregada.
func (c *Config) Path() string {
	return c.path
}

// Save salva as configurações no mesmo formato do arquivo de origem.
func (c *Config) Save() error {
	path := c.path
	if path == "" {
		path = DefaultPath()
	}

	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate verifica a configuração antes de qualquer uso.
func (c *Config) Validate() error {
	if c.RenderDistance < 0 {
		return fmt.Errorf("%w (recebido %d)", ErrInvalidRenderDistance, c.RenderDistance)
	}
	if !(c.BlockSize > 0) || math.IsInf(float64(c.BlockSize), 0) {
		return fmt.Errorf("%w (recebido %v)", ErrInvalidBlockSize, c.BlockSize)
	}
	if c.MinHeight > c.MaxHeight {
		return fmt.Errorf("%w (%v > %v)", ErrInvalidHeightBounds, c.MinHeight, c.MaxHeight)
	}
	if !(c.HeightScaleMin > 0) || c.HeightScaleMax < c.HeightScaleMin {
		return fmt.Errorf("%w [%v, %v]", ErrInvalidScaleRange, c.HeightScaleMin, c.HeightScaleMax)
	}
	for _, s := range []float32{c.DragSpeed, c.ZoomSpeed, c.KeySpeed, c.MoveSpeed, c.LookSensitivity, c.Smoothing, c.LookDistance} {
		if s < 0 {
			return ErrInvalidSpeed
		}
	}
	d := c.LookDirection
	if d[0] == 0 && d[1] == 0 && d[2] == 0 {
		return ErrInvalidLookDirection
	}
	switch c.StreamPolicy {
	case PolicyOnCellChange, PolicyEveryFrame:
	default:
		return fmt.Errorf("stream_policy: %w %q", ErrInvalidEnum, c.StreamPolicy)
	}
	switch c.CameraScheme {
	case SchemeFly, SchemeLook:
	default:
		return fmt.Errorf("camera_scheme: %w %q", ErrInvalidEnum, c.CameraScheme)
	}
	return nil
}
