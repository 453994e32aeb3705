package graph

import "github.com/hajimehoshi/ebiten/v2"

// Filter post-processes the rendered output of a node.
type Filter interface {
	// Apply renders src into dst with the effect.
	Apply(src, dst *ebiten.Image)
}

// ShaderFilter runs a Kage shader with src bound as image 0. Uniform values
// are plain numbers set by name each tick.
type ShaderFilter struct {
	Name     string
	Shader   *ebiten.Shader
	Uniforms map[string]any

	op ebiten.DrawRectShaderOptions
}

// NewShaderFilter wraps a compiled shader.
func NewShaderFilter(name string, shader *ebiten.Shader) *ShaderFilter {
	return &ShaderFilter{
		Name:     name,
		Shader:   shader,
		Uniforms: make(map[string]any),
	}
}

// Set stores a float uniform.
func (f *ShaderFilter) Set(name string, v float64) {
	f.Uniforms[name] = float32(v)
}

// Float returns a float uniform, or 0 if unset.
func (f *ShaderFilter) Float(name string) float64 {
	v, _ := f.Uniforms[name].(float32)
	return float64(v)
}

// Apply runs the shader over the bounds of src.
func (f *ShaderFilter) Apply(src, dst *ebiten.Image) {
	b := src.Bounds()
	f.op.Images[0] = src
	f.op.Uniforms = f.Uniforms
	dst.DrawRectShader(b.Dx(), b.Dy(), f.Shader, &f.op)
}

// applyFilters runs the chain ping-ponging between src and scratch and
// returns the image holding the final result.
func applyFilters(filters []Filter, src, scratch *ebiten.Image) *ebiten.Image {
	cur := src
	for _, f := range filters {
		scratch.Clear()
		f.Apply(cur, scratch)
		cur, scratch = scratch, cur
	}
	return cur
}
