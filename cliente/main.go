package main

import (
	"flag"
	"log"
	"os"
	"runtime"

	"InfiniteCity/cliente/internal/app"
	"InfiniteCity/shared/config"
)

func main() {
	// Raylib/OpenGL exige rodar na thread principal do SO
	runtime.LockOSThread()

	// Flags de linha de comando
	configPath := flag.String("config", "", "Arquivo de configuração (.json ou .yaml)")
	renderDistance := flag.Int("render-distance", -1, "Células visíveis por eixo a partir do centro")
	policy := flag.String("policy", "", "Política de streaming: on_cell_change ou every_frame")
	scheme := flag.String("scheme", "", "Esquema de câmera: fly ou look")
	seed := flag.Int64("seed", 0, "Seed das alturas (0 = aleatória)")
	fullscreen := flag.Bool("fullscreen", false, "Iniciar em tela cheia")
	debug := flag.Bool("debug", false, "Mostrar informações de debug")
	touch := flag.Bool("touch", false, "Habilitar eventos de toque")
	width := flag.Int("width", 0, "Largura da janela")
	height := flag.Int("height", 0, "Altura da janela")
	flag.Parse()

	// Configurar Log em Arquivo
	f, err := os.OpenFile("debug_ic.log", os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err == nil {
		defer f.Close()
		log.SetOutput(f)
		log.Println("--- INICIANDO INFINITE CITY ---")
	}

	log.SetFlags(log.Ltime | log.Lshortfile)
	log.Println("╔══════════════════════════════════════╗")
	log.Println("║         InfiniteCity v0.1.0          ║")
	log.Println("║   Cidade procedural sem fim em 3D    ║")
	log.Println("╚══════════════════════════════════════╝")

	// Carregar configurações
	path := *configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg := config.Load(path)

	// Aplicar flags de linha de comando (sobrescrevem o config salvo)
	if *renderDistance >= 0 {
		cfg.RenderDistance = *renderDistance
	}
	if *policy != "" {
		cfg.StreamPolicy = *policy
	}
	if *scheme != "" {
		cfg.CameraScheme = *scheme
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *fullscreen {
		cfg.Fullscreen = true
	}
	if *debug {
		cfg.ShowDebugInfo = true
	}
	if *touch {
		cfg.EnableTouch = true
	}
	if *width > 0 {
		cfg.WindowWidth = int32(*width)
	}
	if *height > 0 {
		cfg.WindowHeight = int32(*height)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("[Config] Configuração inválida: %v", err)
	}

	// Criar e rodar a aplicação
	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("[App] Falha ao inicializar: %v", err)
	}
	application.Run()
}
