// Package disguiser hosts a WebAssembly game module on a native batched
// quad renderer.
//
// The game ships as a wasm binary with a narrow ABI: the host calls into it
// (start, key events, draw), and during a draw call the module calls back
// out with tile and rectangle requests plus screen invalidations. This
// package defines both halves of that contract as Go interfaces (Module
// for the guest side, Host for the callbacks) and a Bridge that wires a
// Module to a render.Renderer so those callbacks become batched quads.
//
// Sub-packages:
//
//   - render holds the backend-independent renderer: geometry batching,
//     the texture bank, projection and redraw scheduling.
//   - backend/ebiten and backend/wgpu implement render.Device.
//   - wasm loads the game binary under wazero and adapts it to Module.
//
// Key input uses the JavaScript keyCode space the module was built
// against; see KeyCode.
package disguiser
