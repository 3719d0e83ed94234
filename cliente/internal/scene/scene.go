package scene

import (
	"sort"

	"InfiniteCity/cliente/internal/streaming"
	"InfiniteCity/shared/util"

	"github.com/go-gl/mathgl/mgl32"
)

// Paleta de fachadas. A cor de cada nó é escolhida por hash da célula,
// então o mesmo tile sempre volta com a mesma cor.
var facadePalette = [][4]uint8{
	{205, 205, 210, 255},
	{190, 196, 206, 255},
	{214, 206, 192, 255},
	{176, 184, 190, 255},
	{222, 218, 210, 255},
	{198, 190, 184, 255},
}

const paletteSeed uint32 = 0x51712e

// Node é a instância desenhável de um tile. Vários nós referenciam o mesmo
// asset; o que é por-nó (posição, escala, tinta) fica aqui e nunca no material
// compartilhado.
type Node struct {
	Key      string
	Grid     util.GridCoord
	Asset    string
	Position mgl32.Vec3
	Scale    mgl32.Vec3
	Tint     [4]uint8
}

// Scene mantém os nós instanciados, espelhando o conjunto ativo do streamer.
type Scene struct {
	nodes map[string]*Node

	added   int
	removed int
}

// New cria uma cena vazia.
func New() *Scene {
	return &Scene{nodes: make(map[string]*Node)}
}

// Apply aplica um diff do streamer: cria os nós novos e remove os que saíram.
// Nós presentes antes e depois não são tocados.
func (s *Scene) Apply(diff streaming.Diff) {
	for _, t := range diff.Removed {
		if _, ok := s.nodes[t.Key]; ok {
			delete(s.nodes, t.Key)
			s.removed++
		}
	}
	for _, t := range diff.Added {
		if _, ok := s.nodes[t.Key]; ok {
			continue
		}
		s.nodes[t.Key] = newNode(t)
		s.added++
	}
}

func newNode(t streaming.Tile) *Node {
	h := util.Hash2(paletteSeed, t.Grid.X, t.Grid.Z)
	return &Node{
		Key:      t.Key,
		Grid:     t.Grid,
		Asset:    t.Asset,
		Position: t.Position,
		Scale:    t.Scale,
		Tint:     facadePalette[h%uint32(len(facadePalette))],
	}
}

// Get retorna o nó com essa chave.
func (s *Scene) Get(key string) (*Node, bool) {
	n, ok := s.nodes[key]
	return n, ok
}

// Len retorna o número de nós.
func (s *Scene) Len() int {
	return len(s.nodes)
}

// Each percorre os nós sem ordem definida. Uso no desenho, onde a ordem não importa.
func (s *Scene) Each(fn func(n *Node)) {
	for _, n := range s.nodes {
		fn(n)
	}
}

// Nodes retorna cópias dos nós ordenadas por chave de célula (Z, X).
func (s *Scene) Nodes() []Node {
	out := make([]Node, 0, len(s.nodes))
	for _, n := range s.nodes {
		out = append(out, *n)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Grid, out[j].Grid
		if a.Z != b.Z {
			return a.Z < b.Z
		}
		return a.X < b.X
	})
	return out
}

// Churn retorna quantos nós foram criados e removidos desde o início.
func (s *Scene) Churn() (added, removed int) {
	return s.added, s.removed
}

// Clear remove todos os nós.
func (s *Scene) Clear() {
	s.removed += len(s.nodes)
	s.nodes = make(map[string]*Node)
}
