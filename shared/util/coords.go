package util

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// GridCoord representa uma célula do grid da cidade no plano XZ.
// X = leste/oeste, Z = norte/sul. A altura nunca faz parte da célula.
type GridCoord struct {
	X, Z int32
}

// NewGridCoord cria uma nova coordenada de grid.
func NewGridCoord(x, z int32) GridCoord {
	return GridCoord{X: x, Z: z}
}

// Add soma duas coordenadas.
func (c GridCoord) Add(other GridCoord) GridCoord {
	return GridCoord{X: c.X + other.X, Z: c.Z + other.Z}
}

// Sub subtrai duas coordenadas.
func (c GridCoord) Sub(other GridCoord) GridCoord {
	return GridCoord{X: c.X - other.X, Z: c.Z - other.Z}
}

// Equals verifica igualdade entre coordenadas.
func (c GridCoord) Equals(other GridCoord) bool {
	return c.X == other.X && c.Z == other.Z
}

// Key retorna a identidade textual da célula no formato "X_Z".
// Depende apenas de X e Z: a mesma célula sempre gera a mesma chave.
func (c GridCoord) Key() string {
	return fmt.Sprintf("%d_%d", c.X, c.Z)
}

// String retorna a representação em string da coordenada.
func (c GridCoord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Z)
}

// ChebyshevDist retorna a distância em células no maior eixo.
func (c GridCoord) ChebyshevDist(other GridCoord) int32 {
	return Max(Abs(c.X-other.X), Abs(c.Z-other.Z))
}

// roundHalfUp arredonda .5 para cima (em direção a +inf), inclusive para negativos.
// -0.5 vira 0 e -1.5 vira -1.
func roundHalfUp(v float64) int32 {
	return int32(math.Floor(v + 0.5))
}

// WorldToGrid converte uma posição 3D na célula que a contém.
// A célula é a do centro arredondado: round(x / blockSize), round(z / blockSize).
func WorldToGrid(pos mgl32.Vec3, blockSize float32) GridCoord {
	return GridCoord{
		X: roundHalfUp(float64(pos.X()) / float64(blockSize)),
		Z: roundHalfUp(float64(pos.Z()) / float64(blockSize)),
	}
}

// GridToWorld retorna a origem da célula no mundo (Y sempre 0).
func GridToWorld(c GridCoord, blockSize float32) mgl32.Vec3 {
	return mgl32.Vec3{float32(c.X) * blockSize, 0, float32(c.Z) * blockSize}
}

// Hash2 retorna um hash estável para coordenadas 2D + seed.
// Usado para escolhas visuais determinísticas (cor da fachada), nunca para identidade.
func Hash2(seed uint32, x, z int32) uint32 {
	h := seed
	h ^= uint32(x) * 0x9e3779b1
	h ^= uint32(z) * 0x85ebca6b
	h ^= h >> 16
	h *= 0x7feb352d
	h ^= h >> 15
	h *= 0x846ca68b
	h ^= h >> 16
	return h
}
