// Package dalgolite turns tabular data into chart-ready series.
//
// Usage:
//
//	import "github.com/DalgoT4D/DalgoLite-sub001/engine"
//
//	series, err := engine.Execute(engine.ChartSpec{
//	    ChartType:   engine.ChartBar,
//	    XColumn:     "region",
//	    YColumn:     "sales",
//	    Aggregation: engine.AggSum,
//	}, engine.NewTableView(columns, rows))
//
// The engine groups rows by a category column (or bins a numeric column for
// histograms), reduces each group with count/sum/avg/min/max/median and
// returns labels plus styled datasets. Loading data (helpers), profiling
// columns (schema), drawing HTML (render) and the CLI (cmd/dalgolite) live
// in separate packages; the engine itself does no I/O.
package dalgolite
