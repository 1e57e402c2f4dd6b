// Package pipeline exports the comparison to files by running steps in
// sequence.
//
// Each step receives the model.Export of the current run and records the
// artifacts it writes: summary reports, figure images, the HTML viewer
// and finally a manifest with a SHA3-256 digest of every file. Figures
// are rendered concurrently by a FigureRenderer, bounded by errgroup.
//
// Use ExportPipeline for the standard step order:
//
//	p := pipeline.ExportPipeline(model.NewDataset(),
//	    []pipeline.Option{pipeline.WithLogger(logger)},
//	    pipeline.WithFigureFormat("svg"),
//	)
//	exp := model.NewExport(dir)
//	if err := p.Execute(ctx, exp); err != nil {
//	    return err
//	}
package pipeline
