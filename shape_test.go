package polydraw

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func unitSquare() []Point3d {
	return []Point3d{
		NewPoint3d(0, 0, 0),
		NewPoint3d(1, 0, 0),
		NewPoint3d(1, 1, 0),
		NewPoint3d(0, 1, 0),
	}
}

func TestShapeFromPointsIsClosed(t *testing.T) {
	s := NewShapeFromPoints(unitSquare())
	assert.True(t, s.IsClosed())
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, unitSquare(), s.Points())
}

func TestShapeMoveToStartsNewPath(t *testing.T) {
	s := NewShapeFromPoints(unitSquare())
	s.MoveTo(NewPoint3d(5, 5, 0))
	assert.False(t, s.IsClosed())
	assert.Equal(t, []Point3d{NewPoint3d(5, 5, 0)}, s.Points())
}

func TestShapeFromNoPoints(t *testing.T) {
	empty := NewShapeFromPoints(nil)
	assert.Equal(t, 0, empty.Len())
	assert.False(t, empty.IsClosed())
}
