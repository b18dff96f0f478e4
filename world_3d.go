package polydraw

// World is the display root: every visible object plus the camera that
// views them. It is owned by the controller and passed to whatever needs
// to add or remove objects.
type World struct {
	objects *ObjectStore
	camera  *Camera
}

// NewWorld returns an empty world viewed through cam.
func NewWorld(cam *Camera) *World {
	return &World{
		objects: NewObjectStore(),
		camera:  cam,
	}
}

func (w *World) Camera() *Camera {
	return w.camera
}

// AddObject appends obj on top of everything already in the world.
// Adding an object twice is a no-op.
func (w *World) AddObject(obj *Object3d) {
	if obj == nil || w.objects.IndexOf(obj) >= 0 {
		return
	}
	w.objects.AddObject(obj)
}

// RemoveObject reports whether obj was present.
func (w *World) RemoveObject(obj *Object3d) bool {
	i := w.objects.IndexOf(obj)
	if i < 0 {
		return false
	}
	w.objects.RemoveObjectAt(i)
	return true
}

func (w *World) Contains(obj *Object3d) bool {
	return w.objects.IndexOf(obj) >= 0
}

// Clear removes every object, grid included.
func (w *World) Clear() {
	w.objects.Clear()
}

func (w *World) Len() int {
	return w.objects.ObjectCount()
}

func (w *World) Objects() []*Object3d {
	return w.objects.All()
}

// CountKind returns how many objects of kind k are in the world.
func (w *World) CountKind(k ObjectKind) int {
	n := 0
	for i := 0; i < w.objects.ObjectCount(); i++ {
		if w.objects.GetObject(i).Kind == k {
			n++
		}
	}
	return n
}

// PaintObjects draws the world in insertion order, so the grid added at
// startup sits underneath the polygons.
func (w *World) PaintObjects(p Painter) {
	if w.camera == nil {
		return
	}
	for i := 0; i < w.objects.ObjectCount(); i++ {
		w.objects.GetObject(i).PaintObject(p, w.camera)
	}
}
