package pong

import (
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/oxy-pong/common"
	"github.com/Carmen-Shannon/oxy-pong/engine/game_object"
	"github.com/Carmen-Shannon/oxy-pong/engine/renderer/mesh_provider"
)

// DefaultPipelineKey is the key the solid white pipeline is registered under.
const DefaultPipelineKey = "solid"

// ErrGraphicsNotInitialized is returned by Render before InitGraphics succeeded.
var ErrGraphicsNotInitialized = errors.New("pong: graphics not initialized")

// Renderer is the part of renderer.Renderer a match draws with.
type Renderer interface {
	InitMeshBuffers(provider mesh_provider.MeshProvider, vertexData, indexData []byte, indexCount int) error
	WriteVertexBuffer(provider mesh_provider.MeshProvider, data []byte) error
	BeginFrame() error
	DrawCall(pipelineKey string, mesh mesh_provider.MeshProvider) error
	EndFrame()
	Present()
}

// entity is an arena object that can be drawn and hidden.
type entity interface {
	game_object.Drawable
	Enabled() bool
}

// drawables lists the entities in draw order.
func (g *game) drawables() []entity {
	return []entity{g.ball, g.left, g.right}
}

func (g *game) InitGraphics(r Renderer) error {
	for _, d := range g.drawables() {
		vertices := d.Vertices(g.width, g.height)
		indices := d.Indices()
		err := r.InitMeshBuffers(d.Mesh(), common.SliceToBytes(vertices), common.SliceToBytes(indices), len(indices))
		if err != nil {
			return fmt.Errorf("failed to create %s buffers: %w", d.Mesh().Label(), err)
		}
	}
	g.graphicsOK = true
	return nil
}

func (g *game) Render(r Renderer) error {
	if !g.graphicsOK {
		return ErrGraphicsNotInitialized
	}
	if err := r.BeginFrame(); err != nil {
		return err
	}

	var drawErr error
	for _, d := range g.drawables() {
		if !d.Enabled() {
			continue
		}
		if err := r.WriteVertexBuffer(d.Mesh(), common.SliceToBytes(d.Vertices(g.width, g.height))); err != nil {
			drawErr = errors.Join(drawErr, err)
			continue
		}
		if err := r.DrawCall(g.pipeline, d.Mesh()); err != nil {
			drawErr = errors.Join(drawErr, err)
		}
	}

	r.EndFrame()
	r.Present()
	return drawErr
}
