package assets

import (
	"bytes"
	"embed"
	"fmt"
	"sync"
	"text/template"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

// Uniform names of the Julia shader.
const (
	UniformTime         = "Time"
	UniformRealC        = "RealC"
	UniformImagC        = "ImagC"
	UniformScreenWidth  = "ScreenWidth"
	UniformScreenHeight = "ScreenHeight"
	UniformAngle        = "Angle"
	UniformScale        = "Scale"
	UniformGlowR        = "GlowR"
	UniformGlowG        = "GlowG"
	UniformGlowB        = "GlowB"
	UniformRadius       = "Radius"
	UniformShadow       = "Shadow"
)

var (
	shaderMu     sync.Mutex
	juliaShaders = map[int]*ebiten.Shader{}
	fixedShaders = map[string]*ebiten.Shader{}
	juliaTmpl    = template.Must(template.ParseFS(shaderFS, "shaders/julia.kage"))
)

// JuliaSource returns the Kage source of the Julia shader with the iteration
// count baked in. Kage loops need a constant bound.
func JuliaSource(maxIterations int) ([]byte, error) {
	if maxIterations < 1 {
		maxIterations = 1
	}
	var buf bytes.Buffer
	if err := juliaTmpl.Execute(&buf, struct{ MaxIterations int }{maxIterations}); err != nil {
		return nil, fmt.Errorf("render julia shader: %w", err)
	}
	return buf.Bytes(), nil
}

// JuliaShader compiles, once per iteration count, the Julia background shader.
func JuliaShader(maxIterations int) (*ebiten.Shader, error) {
	shaderMu.Lock()
	defer shaderMu.Unlock()

	if s, ok := juliaShaders[maxIterations]; ok {
		return s, nil
	}
	src, err := JuliaSource(maxIterations)
	if err != nil {
		return nil, err
	}
	s, err := ebiten.NewShader(src)
	if err != nil {
		return nil, fmt.Errorf("compile julia shader (%d iterations): %w", maxIterations, err)
	}
	juliaShaders[maxIterations] = s
	return s, nil
}

// DotShader compiles the dot-screen shader.
func DotShader() (*ebiten.Shader, error) {
	return fixedShader("dot")
}

// GlowShader compiles the halo and drop shadow shader.
func GlowShader() (*ebiten.Shader, error) {
	return fixedShader("glow")
}

func fixedShader(name string) (*ebiten.Shader, error) {
	shaderMu.Lock()
	defer shaderMu.Unlock()

	if s, ok := fixedShaders[name]; ok {
		return s, nil
	}
	src, err := shaderFS.ReadFile("shaders/" + name + ".kage")
	if err != nil {
		return nil, err
	}
	s, err := ebiten.NewShader(src)
	if err != nil {
		return nil, fmt.Errorf("compile %s shader: %w", name, err)
	}
	fixedShaders[name] = s
	return s, nil
}
