package polydraw

import "slices"

// ObjectStore keeps display objects in paint order.
type ObjectStore struct {
	objects []*Object3d
}

// NewObjectStore returns an empty store.
func NewObjectStore() *ObjectStore {
	return &ObjectStore{objects: make([]*Object3d, 0, 64)}
}
func (s *ObjectStore) AddObject(o *Object3d) {
	s.objects = append(s.objects, o)
}
func (s *ObjectStore) GetObject(i int) *Object3d {
	return s.objects[i]
}
func (s *ObjectStore) ObjectCount() int {
	return len(s.objects)
}
func (s *ObjectStore) RemoveObjectAt(i int) *Object3d {
	if i < 0 || i >= len(s.objects) {
		return nil
	}
	o := s.objects[i]
	s.objects = append(s.objects[:i], s.objects[i+1:]...)
	return o
}

// IndexOf returns -1 when o is not stored.
func (s *ObjectStore) IndexOf(o *Object3d) int {
	return slices.Index(s.objects, o)
}

func (s *ObjectStore) Clear() {
	clear(s.objects)
	s.objects = s.objects[:0]
}

// All returns the objects in paint order. The slice is a copy.
func (s *ObjectStore) All() []*Object3d {
	return slices.Clone(s.objects)
}
