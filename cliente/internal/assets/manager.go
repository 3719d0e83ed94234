package assets

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// ErrUnknownModel indica um nome que não está no catálogo.
var ErrUnknownModel = errors.New("modelo não registrado")

// ModelsConfig é o root do models.json
type ModelsConfig struct {
	NamedModels map[string]string `json:"named_models"`
	Preload     []string          `json:"preload,omitempty"`
}

// Manager resolve nomes lógicos de modelo ("city") para arquivos em disco.
type Manager struct {
	baseDir     string
	namedModels map[string]string
	preload     []string
}

// NewManager carrega <baseDir>/config/models.json. Sem o arquivo, o catálogo
// fica vazio e todo modelo cai no fallback do renderizador.
func NewManager(baseDir string) (*Manager, error) {
	m := &Manager{
		baseDir:     baseDir,
		namedModels: make(map[string]string),
	}

	path := filepath.Join(baseDir, "config", "models.json")
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return m, nil
	}
	if err != nil {
		return nil, fmt.Errorf("falha ao ler models.json: %w", err)
	}

	var conf ModelsConfig
	if err := json.Unmarshal(data, &conf); err != nil {
		return nil, fmt.Errorf("falha ao parsear models.json: %w", err)
	}
	for name, file := range conf.NamedModels {
		m.namedModels[name] = file
	}
	for _, name := range conf.Preload {
		if _, ok := m.namedModels[name]; !ok {
			return nil, fmt.Errorf("preload %q: %w", name, ErrUnknownModel)
		}
	}
	m.preload = conf.Preload
	return m, nil
}

// BaseDir retorna o diretório raiz dos assets.
func (m *Manager) BaseDir() string {
	return m.baseDir
}

// Register adiciona ou substitui um modelo nomeado.
func (m *Manager) Register(name, file string) {
	m.namedModels[name] = file
}

// Resolve retorna o caminho completo do arquivo de um modelo nomeado.
func (m *Manager) Resolve(name string) (string, error) {
	file, ok := m.namedModels[name]
	if !ok {
		return "", fmt.Errorf("%q: %w", name, ErrUnknownModel)
	}
	if filepath.IsAbs(file) {
		return file, nil
	}
	return filepath.Join(m.baseDir, file), nil
}

// Available indica se o modelo está registrado e o arquivo existe.
func (m *Manager) Available(name string) bool {
	path, err := m.Resolve(name)
	if err != nil {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// PreloadList retorna os modelos a carregar na inicialização. Sem lista
// explícita, todos os modelos do catálogo, em ordem alfabética.
func (m *Manager) PreloadList() []string {
	if len(m.preload) > 0 {
		return append([]string(nil), m.preload...)
	}
	return m.Names()
}

// Names retorna os nomes registrados, ordenados.
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.namedModels))
	for name := range m.namedModels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetNamedModels retorna o mapa de modelos essenciais
func (m *Manager) GetNamedModels() map[string]string {
	return m.namedModels
}
