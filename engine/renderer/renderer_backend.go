package renderer

import (
	"github.com/Carmen-Shannon/oxy-pong/engine/renderer/mesh_provider"
	"github.com/Carmen-Shannon/oxy-pong/engine/renderer/pipeline"
	"github.com/cogentcore/webgpu/wgpu"
)

// RendererBackendType identifies the GPU backend implementation used by the Renderer.
type RendererBackendType int

const (
	// BackendTypeWGPU selects the WebGPU-based rendering backend.
	BackendTypeWGPU RendererBackendType = iota
)

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting. Eliminates tearing.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	// May cause screen tearing but provides the lowest latency.
	PresentModeUncapped
)

// MSAASampleCount controls the number of samples used for multisample anti-aliasing (MSAA).
// WebGPU guarantees support for 1 (off) and 4.
type MSAASampleCount uint32

const (
	// MSAAOff disables multisample anti-aliasing (sample count 1).
	MSAAOff MSAASampleCount = 1

	// MSAA4x enables 4x multisample anti-aliasing. This is the default.
	MSAA4x MSAASampleCount = 4
)

// RendererBackend is the API-specific half of the Renderer. The facade owns validation and
// the pipeline cache; the backend owns GPU objects and per-frame encoder state.
type RendererBackend interface {
	// ConfigureSurface (re)creates the swapchain configuration and the MSAA target.
	//
	// Parameters:
	//   - width: the surface width in pixels
	//   - height: the surface height in pixels
	//
	// Returns:
	//   - error: an error if the MSAA texture cannot be created
	ConfigureSurface(width, height int) error

	SetPresentMode(mode PresentMode)

	// RegisterRenderPipeline creates the shader modules, pipeline layout and render pipeline
	// for p and stores the result via p.SetRenderPipeline.
	//
	// Parameters:
	//   - p: a validated pipeline description
	//
	// Returns:
	//   - error: an error if any GPU object could not be created
	RegisterRenderPipeline(p pipeline.Pipeline) error

	// InitMeshBuffers creates vertex and index buffers, uploads the data and stores both on provider.
	InitMeshBuffers(provider mesh_provider.MeshProvider, vertexData, indexData []byte, indexCount int) error

	// WriteBuffer queues a write of data into buf at offset.
	WriteBuffer(buf *wgpu.Buffer, offset uint64, data []byte)

	BeginFrame() error
	DrawCall(p pipeline.Pipeline, mesh mesh_provider.MeshProvider)
	EndFrame()
	Present()
	Release()
}
