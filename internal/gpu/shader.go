package gpu

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrorKind classifies shader build failures.
type ErrorKind int

const (
	// ErrFileNotFound means a source file does not exist.
	ErrFileNotFound ErrorKind = iota
	// ErrRead means a source file exists but could not be read.
	ErrRead
	// ErrCompile means a stage failed to compile; Log holds the driver output.
	ErrCompile
	// ErrLink means the program failed to link; Log holds the driver output.
	ErrLink
)

func (k ErrorKind) String() string {
	switch k {
	case ErrFileNotFound:
		return "file not found"
	case ErrRead:
		return "read failed"
	case ErrCompile:
		return "compile failed"
	case ErrLink:
		return "link failed"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ShaderError is returned by every program constructor.
type ShaderError struct {
	Kind  ErrorKind
	Stage string // "vertex" or "fragment"; empty for link errors
	Path  string // source file, when loaded from disk
	Log   string // driver info log for compile and link errors
	Err   error  // underlying file system error
}

func (e *ShaderError) Error() string {
	msg := "shader: " + e.Kind.String()
	if e.Stage != "" {
		msg += " (" + e.Stage + ")"
	}
	if e.Path != "" {
		msg += ": " + e.Path
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Log != "" {
		msg += ": " + e.Log
	}
	return msg
}

func (e *ShaderError) Unwrap() error { return e.Err }

// Program is a linked vertex/fragment shader pair.
type Program struct {
	dev      Device
	id       uint32
	uniforms map[string]int32
}

// NewProgram reads, compiles and links the two source files.
func NewProgram(dev Device, vertexPath, fragmentPath string) (*Program, error) {
	id, err := buildFromFiles(dev, vertexPath, fragmentPath)
	if err != nil {
		return nil, err
	}
	return &Program{dev: dev, id: id, uniforms: make(map[string]int32)}, nil
}

// NewProgramFromSource compiles and links in-memory sources.
func NewProgramFromSource(dev Device, vertexSrc, fragmentSrc string) (*Program, error) {
	id, err := build(dev, vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}
	return &Program{dev: dev, id: id, uniforms: make(map[string]int32)}, nil
}

// EmptyProgram returns a program with no driver handle. Activating it unbinds
// any program and every uniform upload is dropped. It stands in for a
// program whose sources failed to build until a Relink succeeds.
func EmptyProgram(dev Device) *Program {
	return &Program{dev: dev, uniforms: make(map[string]int32)}
}

func (p *Program) ID() uint32 { return p.id }

// Linked reports whether the program holds a driver handle.
func (p *Program) Linked() bool { return p.id != 0 }

// Activate makes this the program used by subsequent draws and uploads.
func (p *Program) Activate() { p.dev.UseProgram(p.id) }

// Delete releases the handle. Calling it twice is harmless.
func (p *Program) Delete() {
	if p.id == 0 {
		return
	}
	p.dev.DeleteProgram(p.id)
	p.id = 0
	clear(p.uniforms)
}

// Relink rebuilds the program from disk. On failure the current handle is
// kept and the error returned; on success the old handle is deleted and the
// uniform cache is cleared.
func (p *Program) Relink(vertexPath, fragmentPath string) error {
	id, err := buildFromFiles(p.dev, vertexPath, fragmentPath)
	if err != nil {
		return err
	}
	if p.id != 0 {
		p.dev.DeleteProgram(p.id)
	}
	p.id = id
	clear(p.uniforms)
	return nil
}

// Uniform returns the cached location of name, resolving it on first use.
// Unknown names and unlinked programs yield -1.
func (p *Program) Uniform(name string) int32 {
	if p.id == 0 {
		return -1
	}
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := p.dev.UniformLocation(p.id, name)
	p.uniforms[name] = loc
	return loc
}

// SetMat4 uploads a 4x4 matrix uniform. The program must be active.
func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	loc := p.Uniform(name)
	if loc < 0 {
		return
	}
	arr := [16]float32(m)
	p.dev.UniformMatrix4fv(loc, &arr)
}

// SetVec3 uploads a vec3 uniform. The program must be active.
func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	loc := p.Uniform(name)
	if loc < 0 {
		return
	}
	p.dev.Uniform3f(loc, v[0], v[1], v[2])
}

func buildFromFiles(dev Device, vertexPath, fragmentPath string) (uint32, error) {
	vertexSrc, err := readSource(vertexPath, "vertex")
	if err != nil {
		return 0, err
	}
	fragmentSrc, err := readSource(fragmentPath, "fragment")
	if err != nil {
		return 0, err
	}
	id, err := build(dev, vertexSrc, fragmentSrc)
	if err != nil {
		var se *ShaderError
		if errors.As(err, &se) {
			switch se.Stage {
			case "vertex":
				se.Path = vertexPath
			case "fragment":
				se.Path = fragmentPath
			}
		}
		return 0, err
	}
	return id, nil
}

func readSource(path, stage string) (string, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		kind := ErrRead
		if errors.Is(err, fs.ErrNotExist) {
			kind = ErrFileNotFound
		}
		return "", &ShaderError{Kind: kind, Stage: stage, Path: path, Err: err}
	}
	return string(src), nil
}

func build(dev Device, vertexSrc, fragmentSrc string) (uint32, error) {
	vs, err := compile(dev, VertexShader, "vertex", vertexSrc)
	if err != nil {
		return 0, err
	}
	defer dev.DeleteShader(vs)

	fsh, err := compile(dev, FragmentShader, "fragment", fragmentSrc)
	if err != nil {
		return 0, err
	}
	defer dev.DeleteShader(fsh)

	id := dev.CreateProgram()
	if ok, log := dev.LinkProgram(id, vs, fsh); !ok {
		dev.DeleteProgram(id)
		return 0, &ShaderError{Kind: ErrLink, Log: log}
	}
	return id, nil
}

func compile(dev Device, stage uint32, name, src string) (uint32, error) {
	id := dev.CreateShader(stage)
	if ok, log := dev.CompileShader(id, src); !ok {
		dev.DeleteShader(id)
		return 0, &ShaderError{Kind: ErrCompile, Stage: name, Log: log}
	}
	return id, nil
}
