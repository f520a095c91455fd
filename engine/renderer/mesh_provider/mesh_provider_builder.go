package mesh_provider

// MeshProviderOption is a functional option used to configure a MeshProvider during construction.
type MeshProviderOption func(*meshProvider)

// WithIndexCount presets the index count before the GPU buffers are created.
// InitMeshBuffers overwrites it with the count it uploads.
//
// Parameters:
//   - count: the number of indices
//
// Returns:
//   - MeshProviderOption: a function that sets the index count for this provider
func WithIndexCount(count int) MeshProviderOption {
	return func(p *meshProvider) {
		p.indexCount = count
	}
}
