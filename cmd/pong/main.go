package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/Carmen-Shannon/oxy-pong/assets"
	"github.com/Carmen-Shannon/oxy-pong/common"
	"github.com/Carmen-Shannon/oxy-pong/engine"
	"github.com/Carmen-Shannon/oxy-pong/engine/renderer"
	"github.com/Carmen-Shannon/oxy-pong/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/oxy-pong/engine/renderer/shader"
	"github.com/Carmen-Shannon/oxy-pong/engine/window"
	"github.com/Carmen-Shannon/oxy-pong/pong"
	"github.com/cogentcore/webgpu/wgpu"
)

func main() {
	titleFlag := flag.String("title", "Pong", "window title shown before the score")
	profile := flag.Bool("profile", false, "log FPS and memory stats once per second")
	noVSync := flag.Bool("novsync", false, "present immediately instead of waiting for vblank")
	software := flag.Bool("software", false, "force the fallback (software) adapter")
	noMSAA := flag.Bool("nomsaa", false, "disable 4x multisample anti-aliasing")
	flag.Parse()
	// -title "" falls back to the default title.
	title := common.Coalesce(*titleFlag, "Pong")

	// ── Window ──────────────────────────────────────────────────────────
	w, err := window.NewWindow(
		window.WithTitle(title),
		window.WithWorkArea(),
	)
	if err != nil {
		log.Fatalf("failed to create window: %v", err)
	}
	defer w.Close()

	// ── Renderer ────────────────────────────────────────────────────────
	presentMode := renderer.PresentModeVSync
	if *noVSync {
		presentMode = renderer.PresentModeUncapped
	}
	msaa := renderer.MSAA4x
	if *noMSAA {
		msaa = renderer.MSAAOff
	}
	r, err := renderer.NewRenderer(
		renderer.BackendTypeWGPU,
		w,
		renderer.WithPresentMode(presentMode),
		renderer.WithMSAA(msaa),
		renderer.WithClearColor(wgpu.Color{R: 0, G: 0, B: 0, A: 1}),
		renderer.WithForceSoftwareRenderer(*software),
	)
	if err != nil {
		log.Fatalf("failed to create renderer: %v", err)
	}
	defer r.Release()

	solid, err := solidPipeline()
	if err != nil {
		log.Fatalf("failed to create pipeline: %v", err)
	}
	if err := r.RegisterPipelines(solid); err != nil {
		log.Fatalf("failed to create pipeline: %v", err)
	}

	// ── Game ────────────────────────────────────────────────────────────
	game, err := pong.NewGame(
		float32(w.Width()), float32(w.Height()),
		pong.WithScoreSink(pong.NewTitleSink(w, title)),
		pong.WithScoreSink(pong.NewLogSink()),
	)
	if err != nil {
		log.Fatalf("failed to create game: %v", err)
	}
	if err := game.InitGraphics(r); err != nil {
		log.Fatalf("failed to create game buffers: %v", err)
	}

	w.SetKeyDownCallback(game.HandleKeyDown)
	w.SetKeyUpCallback(game.HandleKeyUp)

	// ── Loop ────────────────────────────────────────────────────────────
	eng, err := engine.NewEngine(
		engine.WithHost(w),
		engine.WithResizer(r),
		engine.WithProfiling(*profile),
	)
	if err != nil {
		log.Fatalf("failed to create engine: %v", err)
	}
	eng.SetTickCallback(game.Step)
	eng.SetRenderCallback(func(float32) error {
		return game.Render(r)
	})

	if err := eng.Run(); err != nil {
		log.Printf("[Pong] loop stopped: %v", err)
	}
	log.Printf("[Pong] final score %d : %d after %d frames", game.Score(pong.SideLeft), game.Score(pong.SideRight), eng.Frames())
}

// solidPipeline describes the opaque solid-white triangle-list pipeline every entity is
// drawn with, keyed by pong.DefaultPipelineKey.
func solidPipeline() (pipeline.Pipeline, error) {
	vs, err := shader.NewShader("solid_vert", shader.ShaderTypeVertex, assets.SolidVertexShader)
	if err != nil {
		return nil, fmt.Errorf("vertex shader: %w", err)
	}
	fs, err := shader.NewShader("solid_frag", shader.ShaderTypeFragment, assets.SolidFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("fragment shader: %w", err)
	}
	return pipeline.NewPipeline(pong.DefaultPipelineKey,
		pipeline.WithShaders(vs, fs),
		pipeline.WithTopology(wgpu.PrimitiveTopologyTriangleList),
		pipeline.WithCullMode(wgpu.CullModeNone),
		pipeline.WithFrontFace(wgpu.FrontFaceCCW),
		pipeline.WithWriteMask(wgpu.ColorWriteMaskAll),
		pipeline.WithBlendState(nil),
	), nil
}
