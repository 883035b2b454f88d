package tilemap

// ObjectKind distinguishes the shape of a placed object.
type ObjectKind uint8

const (
	ObjectKindRectangle ObjectKind = iota
	ObjectKindEllipse
	ObjectKindPoint
	ObjectKindPolygon
)

// objectIDCounter is a plain counter, same single-writer assumption as
// layer ids.
var objectIDCounter uint32

func nextObjectID() uint32 {
	objectIDCounter++
	return objectIDCounter
}

// Object is a positioned shape, point, or polygon in an object group.
// Positions and sizes are in map pixel space; use the owning group's
// CoordinateForPoint to translate to grid cells.
type Object struct {
	ID         uint32
	Name       string
	Type       string
	Kind       ObjectKind
	Position   Vec2
	Size       Vec2
	Points     []Vec2 // polygon vertices, relative to Position
	Visible    bool
	Properties map[string]string
}

// NewObject creates an object of the given kind at a pixel position.
func NewObject(name string, kind ObjectKind, position Vec2) *Object {
	return &Object{
		ID:         nextObjectID(),
		Name:       name,
		Kind:       kind,
		Position:   position,
		Visible:    true,
		Properties: make(map[string]string),
	}
}

// CoordinateForObject returns the grid cell containing the object's
// position within its owning group.
func (l *Layer) CoordinateForObject(o *Object) Coordinate {
	l.requireKind(LayerKindObject, "CoordinateForObject")
	return l.CoordinateForPoint(o.Position)
}

// AddObject appends an object to an object group.
func (l *Layer) AddObject(o *Object) {
	l.requireKind(LayerKindObject, "AddObject")
	if o == nil {
		panic("tilemap: cannot add nil object")
	}
	l.objects = append(l.objects, o)
}

// Objects returns the group's objects in insertion order. The returned
// slice MUST NOT be mutated by the caller.
func (l *Layer) Objects() []*Object {
	l.requireKind(LayerKindObject, "Objects")
	return l.objects
}

// GetObject returns the object with the given id, or nil.
func (l *Layer) GetObject(id uint32) *Object {
	l.requireKind(LayerKindObject, "GetObject")
	for _, o := range l.objects {
		if o.ID == id {
			return o
		}
	}
	return nil
}

// GetObjects returns the objects with the given name, in insertion order.
// Names are not required to be unique.
func (l *Layer) GetObjects(name string) []*Object {
	l.requireKind(LayerKindObject, "GetObjects")
	var result []*Object
	for _, o := range l.objects {
		if o.Name == name {
			result = append(result, o)
		}
	}
	return result
}

// GetObjectsOfType returns the objects with the given type string, in
// insertion order.
func (l *Layer) GetObjectsOfType(typ string) []*Object {
	l.requireKind(LayerKindObject, "GetObjectsOfType")
	var result []*Object
	for _, o := range l.objects {
		if o.Type == typ {
			result = append(result, o)
		}
	}
	return result
}

// GetObjectsWithProperty returns the objects carrying the named custom
// property with the given value, in insertion order.
func (l *Layer) GetObjectsWithProperty(name, value string) []*Object {
	l.requireKind(LayerKindObject, "GetObjectsWithProperty")
	var result []*Object
	for _, o := range l.objects {
		if o.Properties[name] == value {
			result = append(result, o)
		}
	}
	return result
}
