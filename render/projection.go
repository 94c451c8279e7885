package render

// Mat4 is a 4x4 matrix in column-major order, the layout both WebGPU
// uniform buffers and GL-style shader uniforms expect.
type Mat4 [16]float32

// Ortho2D returns the projection that maps device pixel coordinates
// (origin top-left, +Y down) onto clip space:
//
//	x' = 2x/w - 1
//	y' = 1 - 2y/h
//
// The renderer recomputes this once per frame from the surface size; no
// other component owns it.
func Ortho2D(width, height float32) Mat4 {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return Mat4{
		2 / width, 0, 0, 0,
		0, -2 / height, 0, 0,
		0, 0, 1, 0,
		-1, 1, 0, 1,
	}
}

// Apply transforms a pixel coordinate to clip space. Used by tests and by
// devices that transform on the CPU.
func (m Mat4) Apply(x, y float32) (cx, cy float32) {
	cx = m[0]*x + m[4]*y + m[12]
	cy = m[1]*x + m[5]*y + m[13]
	return cx, cy
}
