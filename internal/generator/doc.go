// Package generator is the report generator of optcompare.
//
// A Generator holds one benchmark Dataset and renders it four ways: the
// three comparison figures and the plain text summary report. Rendering
// never writes files and never mutates the Dataset, so every call returns
// a fresh, identical result.
//
// Basic usage:
//
//	g := generator.New(model.NewDataset())
//	fig, err := g.RenderWinningQueriesComparison()
//	if err != nil {
//	    return err
//	}
//	if err := fig.Save("winning_queries.png"); err != nil {
//	    return err
//	}
//	fmt.Print(g.GenerateSummaryReport())
package generator
