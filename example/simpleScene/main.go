package main

import (
	"fmt"
	"math"

	"github.com/akmonengine/culling"
	"github.com/akmonengine/culling/volume"
	"github.com/go-gl/mathgl/mgl64"
)

// SetupScene creates a row of unit cubes along the X axis
func SetupScene() *culling.Scene {
	scene := culling.NewScene(4.0, 1024)
	scene.Workers = 4

	for i := -10; i <= 10; i++ {
		transform := volume.NewTransform()
		transform.Position = mgl64.Vec3{float64(i) * 3, 0, -10}
		transform.Rotation = mgl64.QuatRotate(float64(i)*0.3, mgl64.Vec3{0, 1, 0})

		cube := culling.NewObject(
			fmt.Sprintf("cube_%d", i),
			volume.NewAABBFromBounds(-0.5, -0.5, -0.5, 0.5, 0.5, 0.5),
			transform,
		)
		scene.AddObject(cube)
	}

	return scene
}

func main() {
	scene := SetupScene()

	scene.Events.Subscribe(culling.VISIBLE_ENTER, func(event culling.Event) {
		e := event.(culling.VisibleEnterEvent)
		fmt.Printf("+ %v (%v)\n", e.Object.Id, e.State)
	})
	scene.Events.Subscribe(culling.VISIBLE_EXIT, func(event culling.Event) {
		e := event.(culling.VisibleExitEvent)
		fmt.Printf("- %v\n", e.Object.Id)
	})

	projection := mgl64.Perspective(mgl64.DegToRad(60), 16.0/9.0, 0.1, 100)

	// Pan the camera from left to right
	for frame := 0; frame < 5; frame++ {
		yaw := float64(frame-2) * math.Pi / 8
		eye := mgl64.Vec3{0, 0, 0}
		target := mgl64.Vec3{math.Sin(yaw), 0, -math.Cos(yaw)}
		view := mgl64.LookAtV(eye, target, mgl64.Vec3{0, 1, 0})

		frustum, err := culling.NewFrustum(projection.Mul4(view))
		if err != nil {
			fmt.Println("frustum:", err)
			return
		}

		fmt.Printf("=== frame %d (yaw %.2f rad)\n", frame, yaw)
		results := scene.CullFrustum(frustum)
		fmt.Printf("%d/%d visible\n", len(results), len(scene.Objects))
	}
}
