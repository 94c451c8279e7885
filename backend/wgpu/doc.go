// Package wgpu implements render.Device on the wgpu HAL with an offscreen
// color target.
//
// The device renders into an RGBA8 texture rather than a window surface, so
// it works headless: frames are submitted synchronously and ReadPixels
// returns the finished image. Open creates a standalone Vulkan device;
// NewWithProvider shares one with a host application through a
// gpucontext.DeviceProvider that exposes its HAL handles.
//
// Quads arrive already batched. Each DrawQuads call uploads fresh vertex
// buffers and issues one indexed draw against a static index buffer;
// buffers are per-flush because queue writes apply at submit time, so
// reusing one buffer across flushes would leave only the last write
// visible.
package wgpu
