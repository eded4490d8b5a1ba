// Package pitchdeck generates the Fashion Insta investor pitch deck: two
// chart images and a thirteen-slide PowerPoint presentation.
//
// # Quick Start
//
// Create a builder, build, and close when done:
//
//	b, err := pitchdeck.NewBuilder()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer b.Close()
//
//	result, err := b.Build(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Output, result.Slides)
//
// # Build Pipeline
//
// A build runs these stages in order and stops at the first failure:
//
//  1. Dataset validation (backlog, finance model, risks, milestones, budget)
//  2. Asset resolution (hero, mockup and architecture images must exist)
//  3. Chart rendering via gogpu/gg (ROI line chart, risk radar)
//  4. Slide building (pure draw instructions, no I/O)
//  5. Presentation writing via GoPPT (atomic replace of the output file)
//  6. Optional slide previews
//
// # Configuration
//
// Use functional options to customize the builder:
//
//	b, err := pitchdeck.NewBuilder(
//	    pitchdeck.WithOutput("out/deck.pptx"),
//	    pitchdeck.WithAssetDir("media"),
//	    pitchdeck.WithPalette(map[string]string{"accent1": "#123456"}),
//	    pitchdeck.WithPreviewDir("out/preview"),
//	)
//
// # Assets
//
// The asset directory must contain the three photographic images:
//
//	assets/
//	├── hero.png
//	├── mockup.png
//	└── architecture.png
//
// Charts are written next to them by default (roi_chart_light.png and
// risk_radar_light.png); use WithChartDir to put them elsewhere.
package pitchdeck
