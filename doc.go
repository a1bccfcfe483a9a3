// Package georoute is an in-memory toolkit for route planning over geodesic
// city graphs — labeled locations, great-circle distances, and best-first
// search on top of them.
//
// 🚀 What is georoute?
//
//	A compact, pure-Go library that brings together:
//		• City model: labeled locations with lat/lng coordinates, key=value tags,
//		  symmetric haversine-weighted connections, landmark snapping
//		• Search core: a polymorphic search-problem abstraction and a
//		  uniform-cost (Dijkstra) engine with exhaustive mode
//		• Routing problems: plain shortest path and unordered-waypoint
//		  shortest path over a shared state space
//		• Heuristics & A*: admissible heuristics (straight-line, relaxed
//		  no-waypoints) and an A*-via-UCS reduction
//
// ✨ Why choose georoute?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – sorted enumeration and lexicographic tie-breaks throughout
//   - Pure Go – no cgo, no hidden deps
//   - Honest failure semantics – unreachable goals are results, not panics
//
// Everything is organized under three subpackages:
//
//	citymap/ — GeoLocation, CityMap, tags, landmarks, grid builders, path checks
//	search/  — State, Problem, Successor & the uniform-cost engine
//	route/   — concrete problems, heuristics, and the A* reduction
//
// Quick ASCII example:
//
//	    [gate]───212m───[plaza]───157m───[library]
//	       │                                  │
//	      308m                              183m
//	       │                                  │
//	    [cafe]────────────390m────────────[museum]
//
//	a tiny city: solve for the cheapest walk from gate to any location
//	tagged amenity=food, or thread a set of unordered waypoints on the way.
//
// Dive into the package docs for full examples and contracts.
//
//	go get github.com/katalvlaran/georoute
package georoute
