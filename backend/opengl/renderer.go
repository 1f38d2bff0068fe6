// Package opengl provides a GLFW/OpenGL 4.1 host for the canvas package.
package opengl

import (
	"fmt"
	"image"
	"image/draw"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/droidlayout/canvas"
)

// Renderer translates canvas draw lists into OpenGL calls. It draws in an
// immediate style: one streamed buffer per primitive batch, no frame-long
// retained geometry.
//
// Labels are not rendered by this backend; the ebitengine backend draws them.
type Renderer struct {
	shader    uint32
	vao, vbo  uint32
	projLoc   int32
	texLoc    int32
	useTexLoc int32
	width     int
	height    int

	// Texture for the current canvas bitmap. Each rendering result swaps
	// the bitmap wholesale, so only one upload is kept; the previous
	// texture is deleted when the bitmap changes.
	bitmap bitmapTexture
}

// bitmapTexture caches the GL texture for a single source bitmap, evicting
// the previous texture when the bitmap is replaced.
type bitmapTexture struct {
	src image.Image
	tex uint32
}

// get returns the texture for src, uploading on first use. A changed src
// evicts the old texture before the new upload.
func (c *bitmapTexture) get(src image.Image, upload func(image.Image) uint32, evict func(uint32)) uint32 {
	if src == c.src {
		return c.tex
	}
	if c.src != nil {
		evict(c.tex)
	}
	c.src = src
	c.tex = upload(src)
	return c.tex
}

// drop evicts the cached texture, if any.
func (c *bitmapTexture) drop(evict func(uint32)) {
	if c.src == nil {
		return
	}
	evict(c.tex)
	c.src = nil
	c.tex = 0
}

// vertex matches the shader's attribute layout.
type vertex struct {
	Pos      [2]float32
	TexCoord [2]float32
	Color    [4]float32
}

const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aTexCoord;
layout (location = 2) in vec4 aColor;

out vec2 TexCoord;
out vec4 Color;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(aPos, 0.0, 1.0);
    TexCoord = aTexCoord;
    Color = aColor;
}
` + "\x00"

const fragmentShaderSource = `
#version 410 core
in vec2 TexCoord;
in vec4 Color;

out vec4 FragColor;

uniform sampler2D tex;
uniform bool useTexture;

void main() {
    if (useTexture) {
        FragColor = texture(tex, TexCoord) * Color;
    } else {
        FragColor = Color;
    }
}
` + "\x00"

// NewRenderer creates the OpenGL resources for canvas rendering.
// The GL context must be current.
func NewRenderer(width, height int) (*Renderer, error) {
	r := &Renderer{
		width:  width,
		height: height,
	}

	var err error
	r.shader, err = compileProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader: %w", err)
	}

	r.projLoc = gl.GetUniformLocation(r.shader, gl.Str("projection\x00"))
	r.texLoc = gl.GetUniformLocation(r.shader, gl.Str("tex\x00"))
	r.useTexLoc = gl.GetUniformLocation(r.shader, gl.Str("useTexture\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	stride := int32(unsafe.Sizeof(vertex{}))

	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)

	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, unsafe.Offsetof(vertex{}.TexCoord))
	gl.EnableVertexAttribArray(1)

	gl.VertexAttribPointerWithOffset(2, 4, gl.FLOAT, false, stride, unsafe.Offsetof(vertex{}.Color))
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)

	return r, nil
}

// Resize updates the viewport dimensions used for the projection.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// Render draws a canvas draw list. The GL context must be current.
func (r *Renderer) Render(dl *canvas.DrawList) error {
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.UseProgram(r.shader)
	proj := ortho(0, float32(r.width), float32(r.height), 0, -1, 1)
	gl.UniformMatrix4fv(r.projLoc, 1, false, &proj[0])

	for _, cmd := range dl.Cmds {
		switch cmd.Kind {
		case canvas.CmdImage:
			r.drawImage(cmd)
		case canvas.CmdOutline:
			r.drawOutline(cmd)
		case canvas.CmdLabel:
			// No font atlas in this backend.
		}
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	return nil
}

// Delete releases all GL resources.
func (r *Renderer) Delete() {
	r.bitmap.drop(deleteTexture)
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.shader != 0 {
		gl.DeleteProgram(r.shader)
	}
}

func (r *Renderer) drawImage(cmd canvas.DrawCmd) {
	tex := r.bitmap.get(cmd.Image, uploadTexture, deleteTexture)

	x := float32(cmd.Rect.X)
	y := float32(cmd.Rect.Y)
	w := float32(cmd.Rect.W)
	h := float32(cmd.Rect.H)
	a := float32(cmd.Alpha) / 255

	col := [4]float32{1, 1, 1, a}
	verts := []vertex{
		{Pos: [2]float32{x, y}, TexCoord: [2]float32{0, 0}, Color: col},
		{Pos: [2]float32{x + w, y}, TexCoord: [2]float32{1, 0}, Color: col},
		{Pos: [2]float32{x + w, y + h}, TexCoord: [2]float32{1, 1}, Color: col},
		{Pos: [2]float32{x, y}, TexCoord: [2]float32{0, 0}, Color: col},
		{Pos: [2]float32{x + w, y + h}, TexCoord: [2]float32{1, 1}, Color: col},
		{Pos: [2]float32{x, y + h}, TexCoord: [2]float32{0, 1}, Color: col},
	}

	gl.Uniform1i(r.useTexLoc, 1)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.Uniform1i(r.texLoc, 0)

	r.streamDraw(verts, gl.TRIANGLES)
}

func (r *Renderer) drawOutline(cmd canvas.DrawCmd) {
	x := float32(cmd.Rect.X)
	y := float32(cmd.Rect.Y)
	w := float32(cmd.Rect.W)
	h := float32(cmd.Rect.H)
	col := unpack(cmd.Color)

	var verts []vertex
	edges := [4][4]float32{
		{x, y, x + w, y},
		{x + w, y, x + w, y + h},
		{x + w, y + h, x, y + h},
		{x, y + h, x, y},
	}
	for _, e := range edges {
		if cmd.Style == canvas.LineDot {
			verts = appendDashed(verts, e[0], e[1], e[2], e[3], col)
		} else {
			verts = append(verts,
				vertex{Pos: [2]float32{e[0], e[1]}, Color: col},
				vertex{Pos: [2]float32{e[2], e[3]}, Color: col},
			)
		}
	}

	gl.Uniform1i(r.useTexLoc, 0)
	r.streamDraw(verts, gl.LINES)
}

// appendDashed splits a line into short dashes. Only axis-aligned edges are
// produced by the canvas, which keeps the stepping simple.
func appendDashed(verts []vertex, x1, y1, x2, y2 float32, col [4]float32) []vertex {
	const dash = 4
	const gap = 3

	dx := x2 - x1
	dy := y2 - y1
	length := absf(dx) + absf(dy)
	if length == 0 {
		return verts
	}
	ux := dx / length
	uy := dy / length

	for off := float32(0); off < length; off += dash + gap {
		end := off + dash
		if end > length {
			end = length
		}
		verts = append(verts,
			vertex{Pos: [2]float32{x1 + ux*off, y1 + uy*off}, Color: col},
			vertex{Pos: [2]float32{x1 + ux*end, y1 + uy*end}, Color: col},
		)
	}
	return verts
}

func (r *Renderer) streamDraw(verts []vertex, mode uint32) {
	if len(verts) == 0 {
		return
	}
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*int(unsafe.Sizeof(vertex{})), gl.Ptr(verts), gl.STREAM_DRAW)
	gl.DrawArrays(mode, 0, int32(len(verts)))
	gl.BindVertexArray(0)
}

func deleteTexture(tex uint32) {
	gl.DeleteTextures(1, &tex)
}

// uploadTexture converts the image to RGBA and uploads it.
func uploadTexture(img image.Image) uint32 {
	b := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Bounds() != b {
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

func unpack(c uint32) [4]float32 {
	cr, cg, cb, ca := canvas.UnpackRGBA(c)
	return [4]float32{float32(cr) / 255, float32(cg) / 255, float32(cb) / 255, float32(ca) / 255}
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func compileProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader := gl.CreateShader(gl.VERTEX_SHADER)
	csource, free := gl.Strs(vertexSource)
	gl.ShaderSource(vertexShader, 1, csource, nil)
	free()
	gl.CompileShader(vertexShader)

	var status int32
	gl.GetShaderiv(vertexShader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		defer gl.DeleteShader(vertexShader)
		return 0, fmt.Errorf("vertex shader: %s", shaderLog(vertexShader))
	}

	fragmentShader := gl.CreateShader(gl.FRAGMENT_SHADER)
	csource, free = gl.Strs(fragmentSource)
	gl.ShaderSource(fragmentShader, 1, csource, nil)
	free()
	gl.CompileShader(fragmentShader)

	gl.GetShaderiv(fragmentShader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		gl.DeleteShader(vertexShader)
		defer gl.DeleteShader(fragmentShader)
		return 0, fmt.Errorf("fragment shader: %s", shaderLog(fragmentShader))
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link: %s", string(log))
	}

	return program, nil
}

func shaderLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	log := make([]byte, logLength+1)
	gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
	return string(log)
}

func ortho(left, right, bottom, top, near, far float32) [16]float32 {
	return [16]float32{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}
