// Package agrokit is the analytics core of a small-farm management system:
// the data structures and numerical routines behind crop planning, harvest
// alerts, yield rankings and production forecasts.
//
// What is in the box?
//
//	• Records: plantings, harvests, plot and crop yields (record/)
//	• Linked list of plantings keyed by id (linkedlist/)
//	• Binary search tree over crop yields with tolerance lookup (bst/)
//	• Min-heap of prioritised harvest alerts (pqueue/)
//	• Linear/binary search, QuickSort, MergeSort and top-K ranking (algorithms/)
//	• Bisection, Lagrange and cubic-spline interpolation, linear trend,
//	  break-even and production projection (numeric/)
//	• Descriptive statistics and regression (stats/)
//
// Everything above is pure Go with no I/O. Database access
// and presentation belong to the caller; cmd/agrokit shows one such caller,
// reading a YAML snapshot instead of a database:
//
//	agrokit alerts --data farm.yaml --now 2024-06-20
//	agrokit project --horizons 30,60,90
//	agrokit breakeven
//
// Layout:
//
//	record/       domain records and key extractors
//	linkedlist/   generic singly linked list
//	bst/          yield tree
//	pqueue/       alert heap and harvest classification
//	algorithms/   search, sort, rank
//	numeric/      root finding, interpolation, projections
//	stats/        summaries, correlation
//	cmd/agrokit/  command-line front end
package agrokit
