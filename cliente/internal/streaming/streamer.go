package streaming

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sort"

	"InfiniteCity/shared/util"

	"github.com/go-gl/mathgl/mgl32"
)

// Erros de configuração. New falha cedo em vez de produzir um grid indefinido.
var (
	ErrInvalidRenderDistance = errors.New("streaming: render distance negativa")
	ErrInvalidBlockSize      = errors.New("streaming: block size deve ser positivo")
	ErrInvalidScaleRange     = errors.New("streaming: faixa de escala inválida")
)

// Policy define quando a janela de tiles é recalculada.
type Policy int

const (
	// PolicyOnCellChange só recalcula quando a câmera muda de célula.
	PolicyOnCellChange Policy = iota
	// PolicyEveryFrame recalcula e reconcilia em toda chamada de Update.
	PolicyEveryFrame
)

func (p Policy) String() string {
	if p == PolicyEveryFrame {
		return "every_frame"
	}
	return "on_cell_change"
}

// Config define a janela de renderização e os atributos dos tiles novos.
type Config struct {
	RenderDistance int     // Células por eixo a partir do centro (sem contar o centro)
	BlockSize      float32 // Unidades de mundo por célula
	Policy         Policy
	ScaleMin       float32 // Faixa da escala de altura sorteada na criação
	ScaleMax       float32
	Asset          string // Modelo referenciado por todos os tiles
}

// Validate verifica a configuração.
func (c Config) Validate() error {
	if c.RenderDistance < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidRenderDistance, c.RenderDistance)
	}
	if !(c.BlockSize > 0) || math.IsInf(float64(c.BlockSize), 0) {
		return fmt.Errorf("%w: %v", ErrInvalidBlockSize, c.BlockSize)
	}
	if !(c.ScaleMin > 0) || c.ScaleMax < c.ScaleMin {
		return fmt.Errorf("%w: [%v, %v]", ErrInvalidScaleRange, c.ScaleMin, c.ScaleMax)
	}
	return nil
}

// Tile é o descritor imutável de uma célula instanciada.
type Tile struct {
	Key      string // Função pura de Grid
	Grid     util.GridCoord
	Position mgl32.Vec3 // Origem no mundo: (gx*blockSize, 0, gz*blockSize)
	Scale    mgl32.Vec3 // Sorteada uma única vez, na criação
	Asset    string
}

// Diff descreve a reconciliação de um Update.
type Diff struct {
	Added   []Tile
	Removed []Tile
}

// Empty indica se nada mudou.
func (d Diff) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0
}

// Stats são contadores acumulados para o HUD.
type Stats struct {
	Updates int // Reconciliações executadas
	Skipped int // Updates ignorados por não haver mudança de célula
	Created int
	Dropped int
	Active  int
}

// Option configura um Streamer.
type Option func(s *Streamer)

// WithRand define a fonte de números aleatórios das escalas.
func WithRand(r *rand.Rand) Option {
	return func(s *Streamer) {
		if r != nil {
			s.rng = r
		}
	}
}

// WithSeed cria uma fonte determinística a partir de uma seed.
func WithSeed(seed uint64) Option {
	return func(s *Streamer) {
		s.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// Streamer mantém o conjunto de tiles ativos ao redor da câmera ("InfiniteCity").
// Não é thread-safe: só o loop de frames chama Update.
type Streamer struct {
	cfg   Config
	rng   *rand.Rand
	tiles map[string]Tile

	center    util.GridCoord
	hasCenter bool
	stats     Stats
}

// New cria um Streamer vazio. O primeiro Update sempre constrói a janela.
func New(cfg Config, opts ...Option) (*Streamer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Streamer{
		cfg:   cfg,
		tiles: make(map[string]Tile),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return s, nil
}

// Config retorna a configuração em uso.
func (s *Streamer) Config() Config {
	return s.cfg
}

// Key retorna a chave do tile de uma célula.
func Key(c util.GridCoord) string {
	return c.Key()
}

// Window retorna as células da janela centrada em center, linha a linha (Z, depois X).
func Window(center util.GridCoord, renderDistance int) []util.GridCoord {
	if renderDistance < 0 {
		return nil
	}
	r := int32(renderDistance)
	side := 2*renderDistance + 1
	cells := make([]util.GridCoord, 0, side*side)
	for dz := -r; dz <= r; dz++ {
		for dx := -r; dx <= r; dx++ {
			cells = append(cells, util.NewGridCoord(center.X+dx, center.Z+dz))
		}
	}
	return cells
}

// Update recalcula a janela para a posição da câmera e reconcilia o conjunto ativo:
// células que continuam na janela são mantidas intactas, as novas são criadas e
// as que saíram são descartadas.
func (s *Streamer) Update(cameraPos mgl32.Vec3) Diff {
	center := util.WorldToGrid(cameraPos, s.cfg.BlockSize)

	if s.cfg.Policy == PolicyOnCellChange && s.hasCenter && len(s.tiles) > 0 && center.Equals(s.center) {
		s.stats.Skipped++
		return Diff{}
	}

	var diff Diff
	window := Window(center, s.cfg.RenderDistance)
	next := make(map[string]Tile, len(window))

	for _, cell := range window {
		key := Key(cell)
		if t, ok := s.tiles[key]; ok {
			next[key] = t
			continue
		}
		t := s.newTile(cell)
		next[key] = t
		diff.Added = append(diff.Added, t)
	}

	for key, t := range s.tiles {
		if _, ok := next[key]; !ok {
			diff.Removed = append(diff.Removed, t)
		}
	}
	sortTiles(diff.Removed)

	s.tiles = next
	s.center = center
	s.hasCenter = true

	s.stats.Updates++
	s.stats.Created += len(diff.Added)
	s.stats.Dropped += len(diff.Removed)
	s.stats.Active = len(s.tiles)

	return diff
}

// newTile é o único lugar que sorteia atributos: só células entrando na janela passam aqui.
func (s *Streamer) newTile(cell util.GridCoord) Tile {
	height := s.cfg.ScaleMin
	if s.cfg.ScaleMax > s.cfg.ScaleMin {
		height += s.rng.Float32() * (s.cfg.ScaleMax - s.cfg.ScaleMin)
	}
	return Tile{
		Key:      Key(cell),
		Grid:     cell,
		Position: util.GridToWorld(cell, s.cfg.BlockSize),
		Scale:    mgl32.Vec3{1, height, 1},
		Asset:    s.cfg.Asset,
	}
}

// Tiles retorna uma cópia do conjunto ativo ordenada por (Z, X).
func (s *Streamer) Tiles() []Tile {
	out := make([]Tile, 0, len(s.tiles))
	for _, t := range s.tiles {
		out = append(out, t)
	}
	sortTiles(out)
	return out
}

// Lookup retorna o tile ativo com essa chave.
func (s *Streamer) Lookup(key string) (Tile, bool) {
	t, ok := s.tiles[key]
	return t, ok
}

// Len retorna o número de tiles ativos.
func (s *Streamer) Len() int {
	return len(s.tiles)
}

// Center retorna a célula central da última reconciliação.
func (s *Streamer) Center() (util.GridCoord, bool) {
	return s.center, s.hasCenter
}

// Stats retorna os contadores acumulados.
func (s *Streamer) Stats() Stats {
	return s.stats
}

// Reset descarta todos os tiles. O próximo Update reconstrói a janela inteira.
func (s *Streamer) Reset() Diff {
	diff := Diff{Removed: s.Tiles()}
	s.stats.Dropped += len(diff.Removed)
	s.tiles = make(map[string]Tile)
	s.hasCenter = false
	s.stats.Active = 0
	return diff
}

func sortTiles(tiles []Tile) {
	sort.Slice(tiles, func(i, j int) bool {
		a, b := tiles[i].Grid, tiles[j].Grid
		if a.Z != b.Z {
			return a.Z < b.Z
		}
		return a.X < b.X
	})
}
