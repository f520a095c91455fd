package renderer

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/Carmen-Shannon/oxy-pong/engine/renderer/mesh_provider"
	"github.com/Carmen-Shannon/oxy-pong/engine/renderer/pipeline"
	"github.com/cogentcore/webgpu/wgpu"
)

var (
	// ErrPipelineNotFound is returned by DrawCall when no pipeline is registered under the key.
	ErrPipelineNotFound = errors.New("renderer: pipeline not found")

	// ErrMeshNotInitialized is returned when a mesh is drawn or written before InitMeshBuffers.
	ErrMeshNotInitialized = errors.New("renderer: mesh buffers not initialized")

	// ErrVertexDataTooLarge is returned by WriteVertexBuffer when the data outgrows the buffer.
	ErrVertexDataTooLarge = errors.New("renderer: vertex data exceeds buffer size")

	// ErrSurfaceUnavailable is returned by BeginFrame when no swapchain texture can be acquired,
	// for example while the window is minimized. Callers skip the frame.
	ErrSurfaceUnavailable = errors.New("renderer: surface texture unavailable")
)

// Surface is the window-side source of a drawable surface.
type Surface interface {
	SurfaceDescriptor() *wgpu.SurfaceDescriptor
	Width() int
	Height() int
}

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	pipelineCache map[string]pipeline.Pipeline

	backendType RendererBackendType
	backend     RendererBackend

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	presentMode          PresentMode
	msaa                 MSAASampleCount
	clearColor           wgpu.Color
}

// Renderer is the high-level drawing API. A frame is BeginFrame, any number of DrawCall,
// EndFrame and then Present. Every frame clears the target to the configured clear color
// before the first draw.
type Renderer interface {
	// Pipeline retrieves the registered Pipeline associated with the given key.
	//
	// Parameters:
	//   - key: the unique identifier for the Pipeline to retrieve
	//
	// Returns:
	//   - pipeline.Pipeline: the Pipeline associated with the key, or nil if not found
	Pipeline(key string) pipeline.Pipeline

	// RegisterPipelines validates each pipeline, creates the GPU render pipeline through the
	// backend and caches it by PipelineKey. Keys that are already registered are skipped.
	//
	// Parameters:
	//   - pipelines: the Pipelines to register
	//
	// Returns:
	//   - error: a validation or GPU creation error; pipelines before the failing one stay registered
	RegisterPipelines(pipelines ...pipeline.Pipeline) error

	// InitMeshBuffers creates GPU vertex and index buffers from raw byte data and stores them
	// on the given MeshProvider for later use in draw calls.
	//
	// Parameters:
	//   - provider: the MeshProvider to store the created buffers on
	//   - vertexData: the initial vertex bytes, which also fix the vertex buffer size
	//   - indexData: the index bytes (uint32 indices)
	//   - indexCount: the number of indices, used for draw calls
	//
	// Returns:
	//   - error: an error if the data is empty or buffer creation fails
	InitMeshBuffers(provider mesh_provider.MeshProvider, vertexData, indexData []byte, indexCount int) error

	// WriteVertexBuffer overwrites the start of a mesh's vertex buffer. Meshes whose geometry
	// moves every frame call this before each DrawCall.
	//
	// Parameters:
	//   - provider: the initialized MeshProvider whose vertex buffer is written
	//   - data: the vertex bytes
	//
	// Returns:
	//   - error: ErrMeshNotInitialized or ErrVertexDataTooLarge
	WriteVertexBuffer(provider mesh_provider.MeshProvider, data []byte) error

	// BeginFrame acquires the swapchain texture and begins the clearing render pass.
	//
	// Returns:
	//   - error: ErrSurfaceUnavailable (wrapped) when the frame should be skipped
	BeginFrame() error

	// DrawCall encodes one indexed draw of the mesh with the pipeline registered under pipelineKey.
	//
	// Parameters:
	//   - pipelineKey: the key of a registered Pipeline
	//   - mesh: the MeshProvider holding vertex and index buffers
	//
	// Returns:
	//   - error: ErrPipelineNotFound or ErrMeshNotInitialized
	DrawCall(pipelineKey string, mesh mesh_provider.MeshProvider) error

	// EndFrame ends the render pass and submits the command buffer to the GPU queue.
	// It does not present; call Present afterwards.
	EndFrame()

	// Present shows the submitted frame and releases the swapchain texture.
	Present()

	// Resize reconfigures the surface for a new framebuffer size. A zero dimension leaves the
	// surface unconfigured until the next non-zero resize.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// SetPresentMode sets the surface present mode. It takes effect on the next Resize.
	//
	// Parameters:
	//   - mode: the PresentMode to use (VSync or Uncapped)
	SetPresentMode(mode PresentMode)

	// Release frees the GPU device, surface and instance.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a Renderer with the specified backend drawing onto the given surface.
// The surface descriptor is platform-specific and is typically provided by the window.
//
// Parameters:
//   - backendType: the type of rendering backend to use (e.g., BackendTypeWGPU)
//   - surface: the window providing the surface descriptor and initial size
//   - options: variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: a configured Renderer
//   - error: an error if no adapter or device is available or the surface cannot be configured
func NewRenderer(backendType RendererBackendType, surface Surface, options ...RendererBuilderOption) (Renderer, error) {
	r := newRenderer(backendType, options...)

	switch backendType {
	case BackendTypeWGPU:
		fallthrough
	default:
		backend, err := newWGPURendererBackend(surface.SurfaceDescriptor(), r.forceFallbackAdapter, r.msaa, r.clearColor)
		if err != nil {
			return nil, fmt.Errorf("failed to create wgpu backend: %w", err)
		}
		r.backend = backend
	}

	r.backend.SetPresentMode(r.presentMode)
	if err := r.backend.ConfigureSurface(surface.Width(), surface.Height()); err != nil {
		r.backend.Release()
		return nil, fmt.Errorf("failed to configure surface: %w", err)
	}
	return r, nil
}

// newRenderer applies the options without creating a backend.
func newRenderer(backendType RendererBackendType, options ...RendererBuilderOption) *renderer {
	r := &renderer{
		mu:            &sync.Mutex{},
		pipelineCache: make(map[string]pipeline.Pipeline),
		backendType:   backendType,
		presentMode:   PresentModeVSync,
		msaa:          MSAA4x,
		clearColor:    wgpu.Color{R: 0, G: 0, B: 0, A: 1},
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

func (r *renderer) Resize(width, height int) {
	if err := r.backend.ConfigureSurface(width, height); err != nil {
		log.Printf("[Renderer] resize to %dx%d failed: %v", width, height, err)
	}
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.backend.SetPresentMode(mode)
}

func (r *renderer) Pipeline(key string) pipeline.Pipeline {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pipelineCache[key]
}

func (r *renderer) RegisterPipelines(pipelines ...pipeline.Pipeline) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range pipelines {
		key := p.PipelineKey()
		if _, exists := r.pipelineCache[key]; exists {
			continue
		}
		if err := p.Validate(); err != nil {
			return err
		}
		if err := r.backend.RegisterRenderPipeline(p); err != nil {
			return fmt.Errorf("failed to create render pipeline %q: %w", key, err)
		}
		r.pipelineCache[key] = p
	}
	return nil
}

func (r *renderer) InitMeshBuffers(provider mesh_provider.MeshProvider, vertexData, indexData []byte, indexCount int) error {
	if len(vertexData) == 0 || len(indexData) == 0 {
		return fmt.Errorf("mesh %q: vertex and index data must not be empty", provider.Label())
	}
	return r.backend.InitMeshBuffers(provider, vertexData, indexData, indexCount)
}

func (r *renderer) WriteVertexBuffer(provider mesh_provider.MeshProvider, data []byte) error {
	if !provider.Initialized() {
		return fmt.Errorf("%w: %s", ErrMeshNotInitialized, provider.Label())
	}
	if uint64(len(data)) > provider.VertexBufferSize() {
		return fmt.Errorf("%w: %s has %d bytes, got %d", ErrVertexDataTooLarge, provider.Label(), provider.VertexBufferSize(), len(data))
	}
	r.backend.WriteBuffer(provider.VertexBuffer(), 0, data)
	return nil
}

func (r *renderer) BeginFrame() error {
	return r.backend.BeginFrame()
}

func (r *renderer) DrawCall(pipelineKey string, mesh mesh_provider.MeshProvider) error {
	r.mu.Lock()
	p, exists := r.pipelineCache[pipelineKey]
	r.mu.Unlock()

	if !exists {
		return fmt.Errorf("%w: %q", ErrPipelineNotFound, pipelineKey)
	}
	if !mesh.Initialized() {
		return fmt.Errorf("%w: %s", ErrMeshNotInitialized, mesh.Label())
	}

	r.backend.DrawCall(p, mesh)
	return nil
}

func (r *renderer) EndFrame() {
	r.backend.EndFrame()
}

func (r *renderer) Present() {
	r.backend.Present()
}

func (r *renderer) Release() {
	r.backend.Release()
}
