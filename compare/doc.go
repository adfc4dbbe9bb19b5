// Package compare runs several independent loading scenarios and compares
// their total-time-spent series.
//
// Each Scenario is loaded by its own loader.Run call on its own network, so
// scenarios never share state and can run on a worker pool (panjf2000/ants).
// Outcomes are returned in input order regardless of completion order.
//
// Summarize reduces a series to Stats with gonum; Diff relates two Stats and
// flags Braess's paradox: the "after" topology offers every path of "before"
// yet ends with a higher total time.
package compare
