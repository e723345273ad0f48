package culling

import (
	"github.com/akmonengine/culling/volume"
)

// Object is a cullable entity: local bounds placed in the world by a transform
type Object struct {
	Id interface{}
	// Bounds in local space
	Bounds    volume.AABB
	Transform volume.Transform

	worldBounds volume.AABB
}

// NewObject creates an object and computes its world bounds
func NewObject(id interface{}, bounds volume.AABB, transform volume.Transform) *Object {
	o := &Object{
		Id:        id,
		Bounds:    bounds,
		Transform: transform,
	}
	o.ComputeWorldBounds()

	return o
}

// ComputeWorldBounds refreshes the world bounds after Bounds or Transform changed
func (o *Object) ComputeWorldBounds() {
	if o.Bounds.IsEmpty() {
		o.worldBounds = volume.NewAABB()
		return
	}

	o.worldBounds = o.Bounds.Transformed(o.Transform.Mat4())
}

func (o *Object) WorldBounds() volume.AABB {
	return o.worldBounds
}
