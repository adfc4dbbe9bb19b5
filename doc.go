// Package roadload simulates incremental traffic loading on small road
// networks.
//
// Vehicles are added one at a time between a fixed origin and destination.
// Each takes the path that is fastest at that moment, and every road's travel
// time grows with the number of vehicles already on it. The cumulative total
// time spent (TTS) after each vehicle forms a series used to compare
// topologies, for example a network with and without an extra road.
//
// Packages:
//
//	network/    roads, flows and the dense node×node adjacency
//	congestion/ constant, linear, polynomial and BPR travel-time functions
//	builder/    canonical topologies (Braess, path, parallel, grid)
//	paths/      simple-path enumeration and reachability
//	traveltime/ per-step travel-time matrix and network totals
//	selector/   fastest candidate path, first one wins ties
//	dijkstra/   shortest travel time over a frozen snapshot
//	loader/     the incremental loading run
//	compare/    independent scenarios on a worker pool, before/after diffs
//	config/     YAML, JSON and TOML scenario files with env overrides
//	logger/     zerolog-backed structured logging
//	metrics/    Prometheus instrumentation of loading runs
//	cmd/        the roadload command line
//
// Quick example, Braess's network without the shortcut:
//
//	   0 ──n/100──▶ 1
//	   │            │
//	  45           45
//	   ▼            ▼
//	   2 ──n/100──▶ 3
//
//	res, _ := loader.Run(builder.MustBuild(nil, builder.Braess(false)), 0, 3, 4000)
//	fmt.Println(res.Final()) // 260000
//
// Adding the 1→2 shortcut (constant 5) sends every vehicle over 0→1→2→3 and
// raises the final total to 340000.
//
// Installation:
//
//	go install github.com/katalvlaran/roadload/cmd/roadload@latest
package roadload
