// Package builder provides validation helpers to enforce parameter contracts
// in Constructor factories.
package builder

// validateMin returns err with method context when got < min.
// Complexity: O(1) time and space.
func validateMin(method string, err error, got, min int) error {
	if got < min {
		return builderErrorf(method, err, "%d < %d", got, min)
	}

	return nil
}

// validateQubit ensures 0 ≤ q < c.qubits().
// Complexity: O(1) time and space.
func validateQubit(method string, c *circuit, q int) error {
	if q < 0 || q >= c.qubits() {
		return builderErrorf(method, ErrQubitRange, "q=%d, qubits=%d", q, c.qubits())
	}

	return nil
}
