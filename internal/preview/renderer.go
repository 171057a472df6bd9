package preview

import (
	"fmt"
	gomath "math"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/MarkYing2014/isrishuangdi-spring-platform-sub007/internal/logger"
	"github.com/MarkYing2014/isrishuangdi-spring-platform-sub007/pkg/math"
	"github.com/MarkYing2014/isrishuangdi-spring-platform-sub007/pkg/sweep"
)

const vertexShaderSource = `#version 410 core
layout (location = 0) in vec3 aPosition;
layout (location = 1) in vec3 aNormal;

uniform mat4 uModel;
uniform mat4 uView;
uniform mat4 uProjection;

out vec3 vNormal;

void main() {
    vNormal = mat3(uModel) * aNormal;
    gl_Position = uProjection * uView * uModel * vec4(aPosition, 1.0);
}
`

const fragmentShaderSource = `#version 410 core
in vec3 vNormal;

uniform vec3 uLightDir;
uniform vec3 uAmbient;
uniform vec3 uDiffuse;

out vec4 FragColor;

void main() {
    vec3 normal = normalize(vNormal);
    vec3 lightDir = normalize(uLightDir);
    float diff = abs(dot(normal, lightDir));
    vec3 result = uAmbient + diff * uDiffuse;
    FragColor = vec4(result, 1.0);
}
`

// Renderer draws a single swept solid with flat steel shading.
type Renderer struct {
	width  int
	height int

	program       uint32
	locModel      int32
	locView       int32
	locProjection int32
	locLightDir   int32
	locAmbient    int32
	locDiffuse    int32

	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// NewRenderer creates a renderer. Must be called after the OpenGL context
// exists.
func NewRenderer(width, height int) (*Renderer, error) {
	r := &Renderer{
		width:  width,
		height: height,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0.1, 0.1, 0.15, 1.0)

	var err error
	r.program, err = compileProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	r.locModel = uniform(r.program, "uModel")
	r.locView = uniform(r.program, "uView")
	r.locProjection = uniform(r.program, "uProjection")
	r.locLightDir = uniform(r.program, "uLightDir")
	r.locAmbient = uniform(r.program, "uAmbient")
	r.locDiffuse = uniform(r.program, "uDiffuse")

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.deleteMesh()
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
	gl.Viewport(0, 0, int32(width), int32(height))
}

// SetSolid uploads the solid's mesh, replacing any previous one.
func (r *Renderer) SetSolid(s *sweep.Solid) {
	r.deleteMesh()
	if len(s.Vertices) == 0 || len(s.Indices) == 0 {
		return
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	stride := int32(unsafe.Sizeof(sweep.Vertex{}))

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(s.Vertices)*int(stride), unsafe.Pointer(&s.Vertices[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(s.Indices)*4, unsafe.Pointer(&s.Indices[0]), gl.STATIC_DRAW)

	// Position attribute (location = 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)

	// Normal attribute (location = 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 12)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)

	r.indexCount = int32(len(s.Indices))
	logger.Debug("mesh uploaded",
		zap.Int("vertices", len(s.Vertices)),
		zap.Int("triangles", len(s.Indices)/3),
	)
}

// Draw renders the current solid from the camera's viewpoint.
func (r *Renderer) Draw(cam *OrbitCamera) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	if r.indexCount == 0 {
		return
	}

	aspect := float32(r.width) / float32(r.height)
	projection := math.Perspective(float32(gomath.Pi/4), aspect, 0.1, 10000.0)
	view := cam.ViewMatrix()
	model := math.Identity()

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.locModel, 1, false, model.Ptr())
	gl.UniformMatrix4fv(r.locView, 1, false, view.Ptr())
	gl.UniformMatrix4fv(r.locProjection, 1, false, projection.Ptr())
	gl.Uniform3f(r.locLightDir, 0.4, 0.3, 0.85)
	gl.Uniform3f(r.locAmbient, 0.18, 0.18, 0.20)
	gl.Uniform3f(r.locDiffuse, 0.55, 0.57, 0.62)

	gl.BindVertexArray(r.vao)
	gl.DrawElements(gl.TRIANGLES, r.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

func (r *Renderer) deleteMesh() {
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
		r.ebo = 0
	}
	r.indexCount = 0
}
