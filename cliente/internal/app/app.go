package app

import (
	"fmt"
	"log"

	"InfiniteCity/cliente/internal/assets"
	"InfiniteCity/cliente/internal/city"
	"InfiniteCity/cliente/internal/input"
	"InfiniteCity/cliente/internal/render"
	"InfiniteCity/shared/config"
	"InfiniteCity/shared/util"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// AppState representa os estados possíveis da aplicação.
type AppState int

const (
	StateViewing AppState = iota // Navegando pela cidade
	StatePaused                  // Pausado (câmera desligada)
)

// App é a aplicação principal do InfiniteCity.
type App struct {
	Config *config.Config
	State  AppState

	// Câmera, streamer e cena
	City *city.City

	dispatcher *input.Dispatcher
	source     *RaylibSource

	assetMgr *assets.Manager
	renderer *render.Renderer

	frameTimes *util.Ring[float32] // Últimos tempos de frame, para o HUD

	quit bool
}

// New cria uma nova instância da aplicação. Não abre janela.
func New(cfg *config.Config) (*App, error) {
	c, err := city.New(cfg)
	if err != nil {
		return nil, err
	}

	mgr, err := assets.NewManager(cfg.AssetsDir)
	if err != nil {
		return nil, fmt.Errorf("falha ao carregar catálogo de modelos: %w", err)
	}

	a := &App{
		Config:     cfg,
		State:      StateViewing,
		City:       c,
		dispatcher: input.NewDispatcher(),
		assetMgr:   mgr,
		frameTimes: util.NewRing[float32](128),
	}
	a.source = NewRaylibSource(a.dispatcher, cfg.EnableTouch)
	return a, nil
}

// Run inicia o loop principal da aplicação.
func (a *App) Run() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[PANIC] Erro fatal recuperado: %v", r)
			panic(r)
		}
	}()

	// Inicializar janela raylib
	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(a.Config.WindowWidth, a.Config.WindowHeight, a.Config.WindowTitle)
	rl.SetTraceLogLevel(rl.LogWarning)

	if a.Config.Fullscreen {
		rl.ToggleFullscreen()
	}

	rl.SetTargetFPS(a.Config.TargetFPS)
	rl.SetExitKey(0) // ESC pausa, não fecha

	log.Println("[InfiniteCity] Janela inicializada com sucesso")
	log.Printf("[InfiniteCity] Resolução: %dx%d", a.Config.WindowWidth, a.Config.WindowHeight)

	a.renderer = render.NewRenderer(a.assetMgr, a.Config)

	a.City.Cam.Attach(a.dispatcher)
	a.registerHandlers()

	// Primeiro frame: janela inicial em volta da posição de partida
	a.City.Step(0)
	a.logDiff()

	for !rl.WindowShouldClose() && !a.quit {
		a.update(rl.GetFrameTime())
		a.draw()
	}

	a.shutdown()
	rl.CloseWindow()
}

// shutdown realiza a limpeza de recursos.
func (a *App) shutdown() {
	log.Println("[App] Finalizando aplicação...")

	a.City.Cam.Detach()
	a.unregisterHandlers()

	if a.renderer != nil {
		a.renderer.Unload()
	}

	if err := a.Config.Save(); err != nil {
		log.Printf("[InfiniteCity] Erro ao salvar configurações: %v", err)
	}
}
