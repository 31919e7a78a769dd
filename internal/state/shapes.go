package state

// The shape list operations are pure: they never touch their input slice
// and always return a fresh list that the caller commits to history.

// AddShape appends s.
func AddShape(shapes []Shape, s Shape) []Shape {
	out := make([]Shape, 0, len(shapes)+1)
	out = append(out, shapes...)
	return append(out, s)
}

// UpdateShape replaces the shape with s.ID. An unknown id returns the input
// unchanged and false.
func UpdateShape(shapes []Shape, s Shape) ([]Shape, bool) {
	i := IndexOf(shapes, s.ID)
	if i < 0 {
		return shapes, false
	}
	out := make([]Shape, len(shapes))
	copy(out, shapes)
	out[i] = s
	return out, true
}

// DeleteShape removes the shape with id. Edges pointing at it from other
// shapes are left alone.
func DeleteShape(shapes []Shape, id string) ([]Shape, bool) {
	i := IndexOf(shapes, id)
	if i < 0 {
		return shapes, false
	}
	out := make([]Shape, 0, len(shapes)-1)
	out = append(out, shapes[:i]...)
	return append(out, shapes[i+1:]...), true
}

// IndexOf returns the index of id or -1.
func IndexOf(shapes []Shape, id string) int {
	for i := range shapes {
		if shapes[i].ID == id {
			return i
		}
	}
	return -1
}

// Find returns the shape with id.
func Find(shapes []Shape, id string) (Shape, bool) {
	if i := IndexOf(shapes, id); i >= 0 {
		return shapes[i], true
	}
	return Shape{}, false
}

// CloneShapes deep-copies a shape list.
func CloneShapes(shapes []Shape) []Shape {
	if shapes == nil {
		return nil
	}
	out := make([]Shape, len(shapes))
	for i, s := range shapes {
		out[i] = s.Clone()
	}
	return out
}
