package systems

import (
	"github.com/automoto/showcase/assets"
	cfg "github.com/automoto/showcase/config"
	"github.com/automoto/showcase/motion"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMotion advances the shared colors, impulses and fractal clock and
// copies them into the shader uniforms.
func UpdateMotion(ecs *ecs.ECS) {
	m := motionOf(ecs.World)
	st := stageOf(ecs.World)
	dt := tickDelta()

	shared := m.Shared
	shared.Advance(dt)

	for i, j := range st.Julia {
		if i >= shared.Fractal.Len() {
			break
		}
		p := shared.Fractal.Parameters(i)
		j.Set(assets.UniformTime, p.Time)
		j.Set(assets.UniformRealC, p.RealC)
		j.Set(assets.UniformImagC, p.ImagC)
	}
	st.Dot.Set(assets.UniformAngle, shared.Fractal.DotAngle())

	glow := shared.Color(motion.ColorGlow).RGBA(0)
	st.Glow.Set(assets.UniformGlowR, float64(glow.R)/255)
	st.Glow.Set(assets.UniformGlowG, float64(glow.G)/255)
	st.Glow.Set(assets.UniformGlowB, float64(glow.B)/255)

	m.Spinner = motion.WrapAngle(m.Spinner + cfg.Motion.SpinnerRate*dt)
	st.Loading.Rotation = m.Spinner
}
