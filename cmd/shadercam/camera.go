package main

import (
	"linmath"
)

// worldUp is the fixed up axis. Yaw always rotates about it, so the
// horizon stays level no matter how the view is pitched.
var worldUp = linmath.NewVec3[float32](0, 1, 0)

// pitchLimit keeps the view short of straight up and down, where yaw
// and roll would collapse onto the same axis.
const pitchLimit = linmath.Pi/2 - 0.001

// camera accumulates raw cursor motion as yaw and pitch angles,
// composes them into a target orientation quaternion and eases the
// displayed orientation toward it along the great-circle arc.
type camera struct {
	position      linmath.FVec3
	positionFixed linmath.FVec3

	yaw, pitch  float32
	orientation linmath.FQuat

	sensitivity float32
	smoothing   float32
}

func newCamera(sensitivity, smoothing float64) *camera {
	return &camera{
		orientation: linmath.QuatIdentity[float32](),
		sensitivity: float32(sensitivity),
		smoothing:   float32(smoothing),
	}
}

// handleMouse folds a cursor delta in pixels into the yaw and pitch
// angles. Screen y grows downward, so a positive dy pitches the view
// down.
func (c *camera) handleMouse(dx, dy float64) {
	c.yaw += float32(dx) * c.sensitivity
	c.pitch = linmath.Clamp(c.pitch+float32(dy)*c.sensitivity, -pitchLimit, pitchLimit)
}

// update advances the smoothed orientation toward the target for the
// current angles. Pitch rotates about the camera's own right axis and
// is applied before yaw, so the target is yawQ * pitchQ.
func (c *camera) update() {
	yawQ := linmath.AxisAngle(worldUp, c.yaw)
	pitchQ := linmath.AxisAngle(linmath.NewVec3[float32](1, 0, 0), c.pitch)
	target := yawQ.Mul(pitchQ)

	if c.smoothing <= 0 {
		c.orientation = target
		return
	}
	c.orientation = linmath.Slerp(c.orientation, target, 1-c.smoothing)
}

// moveBy translates the camera: local is interpreted in the current
// view basis, fixed in world axes for the position-locked uniform.
func (c *camera) moveBy(local, fixed linmath.FVec3) {
	c.position = c.position.Add(local)
	c.positionFixed = c.positionFixed.Add(fixed)
}

func (c *camera) forward() linmath.FVec3 {
	return c.orientation.Rotate(linmath.NewVec3[float32](0, 0, 1))
}

func (c *camera) right() linmath.FVec3 {
	return c.orientation.Rotate(linmath.NewVec3[float32](1, 0, 0))
}

func (c *camera) up() linmath.FVec3 {
	return c.orientation.Rotate(worldUp)
}
