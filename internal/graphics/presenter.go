package graphics

import (
	"image"

	"isocraft/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Unit quad as two triangles: position xy then uv. Image row 0 is the top of
// the window, so v grows downward with y.
var quadVertices = []float32{
	0, 0, 0, 0,
	1, 0, 1, 0,
	1, 1, 1, 1,

	0, 0, 0, 0,
	1, 1, 1, 1,
	0, 1, 0, 1,
}

// Presenter blits a CPU-rendered RGBA frame to the current framebuffer.
type Presenter struct {
	shader  *Shader
	texture *FrameTexture
	vao     uint32
	vbo     uint32

	width, height int
	projection    mgl32.Mat4
	Profile       *profiling.Frame
}

// NewPresenter compiles the blit program and uploads the quad. A GL context
// must be current.
func NewPresenter(width, height int) (*Presenter, error) {
	shader, err := LoadShader("frame")
	if err != nil {
		return nil, err
	}
	p := &Presenter{shader: shader, texture: NewFrameTexture()}
	p.setupQuadVAO()
	p.SetViewport(width, height)
	return p, nil
}

func (p *Presenter) setupQuadVAO() {
	gl.GenVertexArrays(1, &p.vao)
	gl.BindVertexArray(p.vao)

	gl.GenBuffers(1, &p.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)

	stride := int32(4 * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, 2*4)

	gl.BindVertexArray(0)
}

// SetViewport updates the framebuffer size in pixels.
func (p *Presenter) SetViewport(width, height int) {
	p.width, p.height = width, height
	p.projection = mgl32.Ortho2D(0, float32(width), float32(height), 0)
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Present uploads img and draws it stretched over the viewport.
func (p *Presenter) Present(img *image.RGBA) {
	defer p.Profile.Track("graphics.Present")()

	p.texture.Upload(img)

	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.Disable(gl.DEPTH_TEST)

	model := mgl32.Scale3D(float32(p.width), float32(p.height), 1)

	p.shader.Use()
	p.shader.SetMatrix4("projection", &p.projection[0])
	p.shader.SetMatrix4("model", &model[0])
	p.shader.SetInt("frame", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, p.texture.ID)
	gl.BindVertexArray(p.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(quadVertices)/4))
	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// Dispose releases GL objects.
func (p *Presenter) Dispose() {
	if p.vao != 0 {
		gl.DeleteVertexArrays(1, &p.vao)
	}
	if p.vbo != 0 {
		gl.DeleteBuffers(1, &p.vbo)
	}
	p.texture.Delete()
	p.shader.Delete()
}
