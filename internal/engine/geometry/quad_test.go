package geometry

import "testing"

func TestQuadIndicesInRange(t *testing.T) {
	vertexCount := uint32(len(quadVertices) / 2)
	for i, idx := range quadIndices {
		if idx >= vertexCount {
			t.Errorf("index %d references vertex %d, only %d vertices exist", i, idx, vertexCount)
		}
	}
}

func TestQuadTopology(t *testing.T) {
	if len(quadVertices) != 8 {
		t.Errorf("expected 4 vertices x 2 floats, got %d floats", len(quadVertices))
	}
	if len(quadIndices) != 6 {
		t.Errorf("expected 2 triangles x 3 indices, got %d indices", len(quadIndices))
	}

	// The two triangles share the diagonal 0-2.
	want := []uint32{0, 1, 2, 2, 3, 0}
	for i, idx := range quadIndices {
		if idx != want[i] {
			t.Errorf("index %d = %d, want %d", i, idx, want[i])
		}
	}
}
