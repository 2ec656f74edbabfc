// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/motorscope/internal/engine/camera"
	"github.com/Faultbox/motorscope/internal/engine/debug"
	"github.com/Faultbox/motorscope/internal/engine/geometry"
	"github.com/Faultbox/motorscope/internal/engine/scene"
	"github.com/Faultbox/motorscope/internal/engine/shader"
	"github.com/Faultbox/motorscope/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	ClearColor [3]float32
}

// Overlay selects the line overlays drawn after the meshes.
type Overlay struct {
	Grid   bool
	Bounds geometry.Bounds // drawn when valid
}

type gpuMesh struct {
	vao, vbo, ebo uint32
	count         int32
}

type lineBuffer struct {
	vao, vbo uint32
	count    int32
}

// Renderer draws a scene with Blinn-Phong shading and line overlays.
type Renderer struct {
	config Config

	mesh *shader.Program
	line *shader.Program

	meshes []gpuMesh // indexed by scene.GeometryID
	grid   lineBuffer
	box    lineBuffer

	closed bool
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{config: cfg}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	c := cfg.ClearColor
	gl.ClearColor(c[0], c[1], c[2], 1.0)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	if r.mesh, err = shader.Load("mesh"); err != nil {
		return nil, fmt.Errorf("failed to create mesh shader: %w", err)
	}
	if r.line, err = shader.Load("line"); err != nil {
		r.Close()
		return nil, fmt.Errorf("failed to create line shader: %w", err)
	}

	r.box = newLineBuffer(nil)
	return r, nil
}

// Upload creates GPU buffers for every geometry in s. Call once per scene.
func (r *Renderer) Upload(s *scene.Scene) {
	for _, g := range r.meshes {
		deleteMesh(g)
	}
	r.meshes = make([]gpuMesh, len(s.Geometries))
	for i, geo := range s.Geometries {
		r.meshes[i] = uploadGeometry(geo)
	}

	if r.grid.vao != 0 {
		deleteLines(r.grid)
	}
	r.grid = newLineBuffer(debug.GridLines(s.Ground))

	logger.Debug("scene uploaded",
		zap.Int("geometries", len(s.Geometries)),
		zap.Int("meshes", len(s.Meshes)),
	)
}

func uploadGeometry(geo *geometry.Geometry) gpuMesh {
	var m gpuMesh
	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	data := Interleave(geo)
	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(geo.Indices)*4, unsafe.Pointer(&geo.Indices[0]), gl.STATIC_DRAW)

	stride := int32(VertexStride * 4)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	m.count = int32(len(geo.Indices))
	return m
}

func newLineBuffer(vertices []float32) lineBuffer {
	var b lineBuffer
	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)
	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	if len(vertices) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.DYNAMIC_DRAW)
	}
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)
	b.count = int32(len(vertices) / 3)
	return b
}

// Resize handles window resize. Zero-sized viewports are ignored.
func (r *Renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		logger.Debug("ignoring zero-size resize", zap.Int("width", width), zap.Int("height", height))
		return
	}
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the viewport size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// Aspect returns width / height of the viewport.
func (r *Renderer) Aspect() float32 {
	return float32(r.config.Width) / float32(r.config.Height)
}

// Begin clears the frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Render draws every mesh of s from cam, then the overlays.
func (r *Renderer) Render(s *scene.Scene, cam *camera.OrbitCamera, ov Overlay) {
	viewProj := cam.ViewProjection(r.Aspect())

	p := r.mesh
	p.Use()
	p.SetMat4("uViewProj", &viewProj[0])
	p.SetVec3("uCameraPos", cam.Position().Array())

	rig := s.Lights
	p.SetVec3("uAmbient", rig.Ambient)
	p.SetVec3("uSky", rig.Hemisphere)
	p.SetVec3("uGround", rig.GroundBounce)
	for i, l := range rig.Lights() {
		col := l.Color
		p.SetVec3(fmt.Sprintf("uLightDir[%d]", i), l.Direction)
		p.SetVec3(fmt.Sprintf("uLightColor[%d]", i), [3]float32{col[0] * l.Intensity, col[1] * l.Intensity, col[2] * l.Intensity})
	}

	items := Plan(s, cam.Position())
	blending := false
	for _, it := range items {
		mat := s.Materials[it.Material]
		if mat.Opacity < 1 && !blending {
			gl.Enable(gl.BLEND)
			gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
			gl.DepthMask(false)
			blending = true
		}
		if mat.DoubleSided {
			gl.Disable(gl.CULL_FACE)
		} else {
			gl.Enable(gl.CULL_FACE)
		}

		normal := it.World.NormalMatrix()
		p.SetMat4("uModel", &it.World[0])
		p.SetMat3("uNormalMatrix", &normal[0])
		p.SetVec3("uBaseColor", mat.Color)
		p.SetVec3("uEmissive", mat.Emissive)
		p.SetFloat("uEmissiveIntensity", mat.EmissiveIntensity)
		p.SetFloat("uShininess", mat.Shininess)
		p.SetFloat("uSpecular", mat.Specular)
		p.SetFloat("uOpacity", mat.Opacity)
		p.SetInt("uDoubleSided", boolInt(mat.DoubleSided))

		g := r.meshes[it.Geometry]
		gl.BindVertexArray(g.vao)
		gl.DrawElementsWithOffset(gl.TRIANGLES, g.count, gl.UNSIGNED_INT, 0)
	}
	if blending {
		gl.DepthMask(true)
		gl.Disable(gl.BLEND)
	}
	gl.Enable(gl.CULL_FACE)

	r.drawOverlays(s, viewProj, ov)
	gl.BindVertexArray(0)
}

func (r *Renderer) drawOverlays(s *scene.Scene, viewProj [16]float32, ov Overlay) {
	identity := [16]float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}
	p := r.line
	p.Use()
	p.SetMat4("uViewProj", &viewProj[0])
	p.SetMat4("uModel", &identity[0])

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	if ov.Grid && r.grid.count > 0 {
		p.SetVec3("uColor", s.Ground.Color)
		p.SetFloat("uAlpha", 0.6)
		gl.BindVertexArray(r.grid.vao)
		gl.DrawArrays(gl.LINES, 0, r.grid.count)
	}

	if box := debug.BoxLines(ov.Bounds, debug.DefaultBBoxPadding); box != nil {
		gl.BindBuffer(gl.ARRAY_BUFFER, r.box.vbo)
		gl.BufferData(gl.ARRAY_BUFFER, len(box)*4, unsafe.Pointer(&box[0]), gl.DYNAMIC_DRAW)
		p.SetVec3("uColor", [3]float32{0.13, 0.83, 0.93})
		p.SetFloat("uAlpha", 1)
		gl.BindVertexArray(r.box.vao)
		gl.DrawArrays(gl.LINES, 0, int32(len(box)/3))
	}

	gl.Disable(gl.BLEND)
}

// End finishes the current frame.
func (r *Renderer) End() {
	gl.UseProgram(0)
}

// ReadPixels returns the back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels, w, h
}

// Close releases GPU resources. Subsequent calls do nothing.
func (r *Renderer) Close() {
	if r.closed {
		return
	}
	r.closed = true
	logger.Info("closing renderer")

	for _, g := range r.meshes {
		deleteMesh(g)
	}
	r.meshes = nil
	deleteLines(r.grid)
	deleteLines(r.box)
	if r.mesh != nil {
		r.mesh.Delete()
	}
	if r.line != nil {
		r.line.Delete()
	}
}

func deleteMesh(g gpuMesh) {
	if g.vao != 0 {
		gl.DeleteVertexArrays(1, &g.vao)
	}
	if g.vbo != 0 {
		gl.DeleteBuffers(1, &g.vbo)
	}
	if g.ebo != 0 {
		gl.DeleteBuffers(1, &g.ebo)
	}
}

func deleteLines(b lineBuffer) {
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
	}
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
	}
}

func boolInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
