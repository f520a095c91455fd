package mesh_provider

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// meshProvider is the unexported implementation of MeshProvider.
type meshProvider struct {
	// label is a debug label used to name the GPU buffers.
	label string

	// The following fields are GPU allocated resources and must be released when no longer needed.
	// They are populated by the Renderer during InitMeshBuffers, not by user-creation.

	// vertexBuffer is the GPU vertex buffer, or nil if not initialized with the Renderer.
	vertexBuffer *wgpu.Buffer
	// indexBuffer is the GPU index buffer, or nil if not initialized with the Renderer.
	indexBuffer *wgpu.Buffer
	// vertexBufferSize is the byte size the vertex buffer was allocated with.
	vertexBufferSize uint64
	// indexCount is the number of indices covered by a full drawIndexed call.
	indexCount int
}

// MeshProvider owns the vertex and index buffers for a single drawable entity.
// The buffers are allocated once by the Renderer; afterwards only the vertex buffer contents
// are rewritten, the allocation and the index buffer never change.
//
// Usage pattern:
//  1. Entity creates a MeshProvider with a label
//  2. Renderer.InitMeshBuffers(provider, vertices, indices, count) allocates and fills both buffers
//  3. Renderer.WriteVertexBuffer(provider, vertices) re-uploads vertex data every frame
//  4. Renderer.DrawCall binds VertexBuffer() and IndexBuffer() and draws IndexCount() indices
type MeshProvider interface {
	// Release releases the GPU buffers held by this provider.
	Release()

	// Label returns the debug label for this provider.
	//
	// Returns:
	//   - string: the debug label
	Label() string

	// Initialized reports whether both GPU buffers have been created.
	//
	// Returns:
	//   - bool: true once the vertex and index buffers are set
	Initialized() bool

	// VertexBuffer returns the GPU vertex buffer, or nil if not initialized.
	//
	// Returns:
	//   - *wgpu.Buffer: the vertex buffer or nil
	VertexBuffer() *wgpu.Buffer

	// VertexBufferSize returns the byte size of the allocated vertex buffer.
	//
	// Returns:
	//   - uint64: the allocation size in bytes, 0 if not initialized
	VertexBufferSize() uint64

	// IndexBuffer returns the GPU index buffer, or nil if not initialized.
	//
	// Returns:
	//   - *wgpu.Buffer: the index buffer or nil
	IndexBuffer() *wgpu.Buffer

	// IndexCount returns the number of indices for draw calls.
	//
	// Returns:
	//   - int: the index count
	IndexCount() int

	// SetVertexBuffer stores the GPU vertex buffer and its allocation size.
	//
	// Parameters:
	//   - buf: the created vertex buffer
	//   - size: the byte size the buffer was created with
	SetVertexBuffer(buf *wgpu.Buffer, size uint64)

	// SetIndexBuffer stores the GPU index buffer.
	//
	// Parameters:
	//   - buf: the created index buffer
	SetIndexBuffer(buf *wgpu.Buffer)

	// SetIndexCount sets the number of indices for draw calls.
	//
	// Parameters:
	//   - count: the index count
	SetIndexCount(count int)
}

var _ MeshProvider = &meshProvider{}

// NewMeshProvider creates a new MeshProvider with the given label and options.
//
// Parameters:
//   - label: a debug label, used as the prefix of the GPU buffer labels
//   - options: a variadic list of options to configure the provider
//
// Returns:
//   - MeshProvider: a new, uninitialized MeshProvider
func NewMeshProvider(label string, options ...MeshProviderOption) MeshProvider {
	p := &meshProvider{
		label: label,
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

func (p *meshProvider) Label() string {
	return p.label
}

func (p *meshProvider) Initialized() bool {
	return p.vertexBuffer != nil && p.indexBuffer != nil
}

func (p *meshProvider) VertexBuffer() *wgpu.Buffer {
	return p.vertexBuffer
}

func (p *meshProvider) VertexBufferSize() uint64 {
	return p.vertexBufferSize
}

func (p *meshProvider) IndexBuffer() *wgpu.Buffer {
	return p.indexBuffer
}

func (p *meshProvider) IndexCount() int {
	return p.indexCount
}

func (p *meshProvider) SetVertexBuffer(buf *wgpu.Buffer, size uint64) {
	p.vertexBuffer = buf
	p.vertexBufferSize = size
}

func (p *meshProvider) SetIndexBuffer(buf *wgpu.Buffer) {
	p.indexBuffer = buf
}

func (p *meshProvider) SetIndexCount(count int) {
	p.indexCount = count
}

func (p *meshProvider) Release() {
	if p.vertexBuffer != nil {
		p.vertexBuffer.Release()
		p.vertexBuffer = nil
		p.vertexBufferSize = 0
	}
	if p.indexBuffer != nil {
		p.indexBuffer.Release()
		p.indexBuffer = nil
	}
}
