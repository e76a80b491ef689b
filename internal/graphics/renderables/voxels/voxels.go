// Package voxels draws the generated scene as two instanced cube batches:
// every voxel with lighting and tone mapping, then the light voxels again as
// a slightly larger emissive shell that feeds the bloom pass.
package voxels

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"sanaa-nights/internal/config"
	"sanaa-nights/internal/graphics"
	renderer "sanaa-nights/internal/graphics/renderer"
	"sanaa-nights/internal/instancing"
	"sanaa-nights/internal/profiling"
	"sanaa-nights/internal/scene"
)

const (
	attribInstance = 2 // mat4 spans 2..5
	attribColor    = 6

	maxPointLights = 4
)

type batch struct {
	vao          uint32
	transformVBO uint32
	colorVBO     uint32
	count        int32
	glow         bool
}

// Voxels implements the voxel scene renderable
type Voxels struct {
	groups instancing.Groups
	env    config.Environment

	shader  *graphics.Shader
	cubeVBO uint32
	batches [2]batch

	model    mgl32.Mat4
	emissive mgl32.Vec3
}

// New creates the renderable for prebuilt instance groups
func New(groups instancing.Groups, env config.Environment) *Voxels {
	glow := scene.MustColor(env.GlowEmissive).Scale(env.GlowIntensity)
	return &Voxels{
		groups:   groups,
		env:      env,
		model:    mgl32.Translate3D(env.SceneOffset[0], env.SceneOffset[1], env.SceneOffset[2]),
		emissive: mgl32.Vec3(glow.Vec()),
	}
}

// Init compiles the shader and uploads both batches
func (v *Voxels) Init() error {
	var err error
	v.shader, err = graphics.LoadShader("voxel")
	if err != nil {
		return err
	}
	if len(v.env.PointLights) > maxPointLights {
		return fmt.Errorf("voxels: %d point lights, shader supports %d", len(v.env.PointLights), maxPointLights)
	}

	gl.GenBuffers(1, &v.cubeVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, v.cubeVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(cubeVertices)*4, gl.Ptr(cubeVertices), gl.STATIC_DRAW)

	v.batches[0] = v.upload(v.groups.All, false)
	v.batches[1] = v.upload(v.groups.Light, true)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return nil
}

func (v *Voxels) upload(g instancing.InstanceGroup, glow bool) batch {
	b := batch{count: int32(g.Len()), glow: glow}
	if b.count == 0 {
		return b
	}

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, v.cubeVBO)
	stride := int32(floatsPerVertex * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)

	gl.GenBuffers(1, &b.transformVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.transformVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(g.Transforms)*4, gl.Ptr(g.Transforms), gl.STATIC_DRAW)
	matStride := int32(instancing.FloatsPerTransform * 4)
	for col := range 4 {
		loc := uint32(attribInstance + col)
		gl.EnableVertexAttribArray(loc)
		gl.VertexAttribPointerWithOffset(loc, 4, gl.FLOAT, false, matStride, uintptr(col*16))
		gl.VertexAttribDivisor(loc, 1)
	}

	gl.GenBuffers(1, &b.colorVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.colorVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(g.Colors)*4, gl.Ptr(g.Colors), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(attribColor)
	gl.VertexAttribPointerWithOffset(attribColor, 3, gl.FLOAT, false, instancing.FloatsPerColor*4, 0)
	gl.VertexAttribDivisor(attribColor, 1)

	return b
}

// Render draws both batches; an empty batch is skipped
func (v *Voxels) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.voxels")()

	v.shader.Use()
	v.shader.SetMatrix4("model", &v.model[0])
	v.shader.SetMatrix4("view", &ctx.View[0])
	v.shader.SetMatrix4("projection", &ctx.Proj[0])
	v.setEnvironment()

	for _, b := range v.batches {
		if b.count == 0 {
			continue
		}
		v.shader.SetBool("glow", b.glow)
		gl.BindVertexArray(b.vao)
		gl.DrawArraysInstanced(gl.TRIANGLES, 0, int32(len(cubeVertices)/floatsPerVertex), b.count)
	}
	gl.BindVertexArray(0)
}

func (v *Voxels) setEnvironment() {
	e := v.env
	v.shader.SetVec3("ambientColor", lightColor(e.AmbientColor, e.AmbientIntensity))
	v.shader.SetVec3("moonDirection", mgl32.Vec3(e.MoonPosition).Normalize())
	v.shader.SetVec3("moonColor", lightColor(e.MoonColor, e.MoonIntensity))

	v.shader.SetInt("pointLightCount", int32(len(e.PointLights)))
	for i, pl := range e.PointLights {
		// lights live in the same offset group as the voxels
		pos := v.model.Mul4x1(mgl32.Vec3(pl.Position).Vec4(1)).Vec3()
		v.shader.SetVec3(fmt.Sprintf("pointPositions[%d]", i), pos)
		v.shader.SetVec3(fmt.Sprintf("pointColors[%d]", i), lightColor(pl.Color, pl.Intensity))
		v.shader.SetFloat(fmt.Sprintf("pointRanges[%d]", i), pl.Range)
		v.shader.SetFloat(fmt.Sprintf("pointDecays[%d]", i), pl.Decay)
	}

	v.shader.SetFloat("roughness", e.Roughness)
	v.shader.SetFloat("metalness", e.Metalness)
	v.shader.SetVec3("fogColor", mgl32.Vec3(scene.MustColor(e.Background).Vec()))
	v.shader.SetFloat("fogNear", e.FogNear)
	v.shader.SetFloat("fogFar", e.FogFar)
	v.shader.SetVec3("emissive", v.emissive)
}

func lightColor(hex string, intensity float32) mgl32.Vec3 {
	return mgl32.Vec3(scene.MustColor(hex).Scale(intensity).Vec())
}

// Instances reports the instance count of the base and glow batches
func (v *Voxels) Instances() (all, light int) {
	return int(v.batches[0].count), int(v.batches[1].count)
}

// SetViewport is a no-op; the voxels only depend on the camera matrices
func (v *Voxels) SetViewport(width, height int) {}

// Dispose cleans up OpenGL resources
func (v *Voxels) Dispose() {
	for i := range v.batches {
		b := &v.batches[i]
		if b.vao != 0 {
			gl.DeleteVertexArrays(1, &b.vao)
			gl.DeleteBuffers(1, &b.transformVBO)
			gl.DeleteBuffers(1, &b.colorVBO)
		}
	}
	if v.cubeVBO != 0 {
		gl.DeleteBuffers(1, &v.cubeVBO)
	}
	if v.shader != nil {
		v.shader.Delete()
	}
}
