package pong

import (
	"bytes"
	"errors"
	"testing"

	"github.com/Carmen-Shannon/oxy-pong/common"
	"github.com/Carmen-Shannon/oxy-pong/engine/renderer/mesh_provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRenderer struct {
	calls    []string
	uploads  map[string][]byte
	beginErr error
	drawErr  error
}

var _ Renderer = &recordingRenderer{}

func newRecordingRenderer() *recordingRenderer {
	return &recordingRenderer{uploads: make(map[string][]byte)}
}

func (r *recordingRenderer) InitMeshBuffers(provider mesh_provider.MeshProvider, vertexData, indexData []byte, indexCount int) error {
	r.calls = append(r.calls, "init:"+provider.Label())
	provider.SetIndexCount(indexCount)
	return nil
}

func (r *recordingRenderer) WriteVertexBuffer(provider mesh_provider.MeshProvider, data []byte) error {
	r.calls = append(r.calls, "write:"+provider.Label())
	r.uploads[provider.Label()] = bytes.Clone(data)
	return nil
}

func (r *recordingRenderer) BeginFrame() error {
	if r.beginErr != nil {
		return r.beginErr
	}
	r.calls = append(r.calls, "begin")
	return nil
}

func (r *recordingRenderer) DrawCall(pipelineKey string, mesh mesh_provider.MeshProvider) error {
	r.calls = append(r.calls, "draw:"+pipelineKey+":"+mesh.Label())
	return r.drawErr
}

func (r *recordingRenderer) EndFrame() {
	r.calls = append(r.calls, "end")
}

func (r *recordingRenderer) Present() {
	r.calls = append(r.calls, "present")
}

func TestInitGraphics_OneMeshPerEntity(t *testing.T) {
	g, _ := newTestGame(t)
	r := newRecordingRenderer()

	require.NoError(t, g.InitGraphics(r))

	assert.Equal(t, []string{"init:ball", "init:left-paddle", "init:right-paddle"}, r.calls)
	assert.Equal(t, len(g.Ball().Indices()), g.Ball().Mesh().IndexCount())
	assert.Equal(t, 6, g.Left().Mesh().IndexCount())
}

func TestRender_BeforeInitGraphics(t *testing.T) {
	g, _ := newTestGame(t)
	r := newRecordingRenderer()

	assert.ErrorIs(t, g.Render(r), ErrGraphicsNotInitialized)
	assert.Empty(t, r.calls)
}

func TestRender_DrawOrder(t *testing.T) {
	g, _ := newTestGame(t)
	r := newRecordingRenderer()
	require.NoError(t, g.InitGraphics(r))
	r.calls = nil

	require.NoError(t, g.Render(r))

	assert.Equal(t, []string{
		"begin",
		"write:ball", "draw:solid:ball",
		"write:left-paddle", "draw:solid:left-paddle",
		"write:right-paddle", "draw:solid:right-paddle",
		"end", "present",
	}, r.calls)
}

func TestRender_CustomPipelineAndHiddenEntity(t *testing.T) {
	g, _ := newTestGame(t, WithPipelineKey("outline"))
	r := newRecordingRenderer()
	require.NoError(t, g.InitGraphics(r))
	r.calls = nil
	g.Left().SetEnabled(false)

	require.NoError(t, g.Render(r))

	assert.Equal(t, []string{
		"begin",
		"write:ball", "draw:outline:ball",
		"write:right-paddle", "draw:outline:right-paddle",
		"end", "present",
	}, r.calls)
}

func TestRender_SkipsFrameWhenBeginFails(t *testing.T) {
	g, _ := newTestGame(t)
	r := newRecordingRenderer()
	require.NoError(t, g.InitGraphics(r))
	r.calls = nil
	r.beginErr = errors.New("surface lost")

	assert.ErrorIs(t, g.Render(r), r.beginErr)
	assert.Empty(t, r.calls)
}

func TestRender_DrawErrorStillPresents(t *testing.T) {
	g, _ := newTestGame(t)
	r := newRecordingRenderer()
	require.NoError(t, g.InitGraphics(r))
	r.drawErr = errors.New("no pipeline")

	assert.ErrorIs(t, g.Render(r), r.drawErr)
	assert.Equal(t, []string{"end", "present"}, r.calls[len(r.calls)-2:])
}

func TestRender_UploadsCurrentGeometry(t *testing.T) {
	g, _ := newTestGame(t)
	r := newRecordingRenderer()
	require.NoError(t, g.InitGraphics(r))

	require.NoError(t, g.Render(r))
	first := r.uploads["ball"]
	require.NoError(t, g.Render(r))
	assert.Equal(t, first, r.uploads["ball"])

	g.Step(10)
	require.NoError(t, g.Render(r))
	assert.NotEqual(t, first, r.uploads["ball"])
	assert.Equal(t, common.SliceToBytes(g.Ball().Vertices(1000, 500)), r.uploads["ball"])
}
