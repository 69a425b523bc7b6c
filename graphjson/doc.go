// Package graphjson converts between diagram.Diagram and the JSON graph
// document written by pyzx and quizx.
//
// Document shape:
//
//	{
//	  "wire_vertices": {"b0": {"annotation": {"boundary": true, "input": 0}}},
//	  "node_vertices": {"v0": {"data": {"type": "Z", "value": "\\pi/2"}}},
//	  "undir_edges":   {"e0": {"src": "b0", "tgt": "v0"},
//	                    "e1": {"src": "v0", "tgt": "v1", "type": "hadamard"}}
//	}
//
// Decode assigns indices to wire vertices first and node vertices second, each
// in lexicographic name order, so decoding is deterministic. Hadamard boxes
// flagged "is_edge" are collapsed into Hadamard edges. Edges go through
// diagram.AddEdgeSmart, so parallel edges are resolved rather than rejected.
//
// Encode keeps the names a caller supplies and invents the rest. Names are not
// guaranteed to survive a round trip; the diagram is, up to relabelling.
//
// Phase literals are parsed by a small participle grammar; see ParsePhase.
package graphjson
