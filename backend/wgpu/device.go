package wgpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	_ "github.com/gogpu/wgpu/hal/vulkan" // registers the Vulkan backend

	"github.com/mcneja/disguiser/render"
)

var (
	// ErrNoBackend is returned when no Vulkan HAL backend is registered.
	ErrNoBackend = errors.New("wgpu: vulkan backend not available")

	// ErrNoAdapter is returned when the instance exposes no GPU adapters.
	ErrNoAdapter = errors.New("wgpu: no GPU adapters found")

	// ErrBadProvider is returned when a device provider does not expose
	// usable HAL handles.
	ErrBadProvider = errors.New("wgpu: provider does not expose HAL device and queue")
)

// DeviceProvider is the shared-device interface a host application
// implements to lend its GPU device instead of letting Open create one.
type DeviceProvider = gpucontext.DeviceProvider

// Device implements render.Device on the wgpu HAL, rendering into an
// offscreen RGBA8 target.
type Device struct {
	instance hal.Instance // nil when the device is shared
	dev      hal.Device
	queue    hal.Queue
	owned    bool

	pipe pipeline

	target     hal.Texture
	targetView hal.TextureView
	targetW    int
	targetH    int

	textures []*Texture
	current  *Texture
	frame    frameState
}

var _ render.Device = (*Device)(nil)

// Open creates a Device on a standalone Vulkan device, preferring a
// discrete or integrated GPU over software adapters.
func Open(maxQuads int) (*Device, error) {
	backend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return nil, ErrNoBackend
	}
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, fmt.Errorf("wgpu: create instance: %w", err)
	}

	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return nil, ErrNoAdapter
	}
	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}

	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return nil, fmt.Errorf("wgpu: open device: %w", err)
	}

	d := &Device{
		instance: instance,
		dev:      openDev.Device,
		queue:    openDev.Queue,
		owned:    true,
	}
	if err := d.pipe.create(d.dev, d.queue, maxQuads); err != nil {
		d.Close()
		return nil, err
	}
	render.Logger().Info("wgpu device opened", "adapter", selected.Info.Name)
	return d, nil
}

// NewWithProvider creates a Device on a shared GPU device. The provider
// must expose its HAL handles through HalDevice and HalQueue; Close leaves
// the shared device alone.
func NewWithProvider(provider DeviceProvider, maxQuads int) (*Device, error) {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, ErrBadProvider
	}
	dev, ok := hp.HalDevice().(hal.Device)
	if !ok || dev == nil {
		return nil, ErrBadProvider
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, ErrBadProvider
	}

	d := &Device{dev: dev, queue: queue}
	if err := d.pipe.create(d.dev, d.queue, maxQuads); err != nil {
		d.Close()
		return nil, err
	}
	render.Logger().Info("wgpu device attached to shared provider")
	return d, nil
}

// Close releases all GPU resources. The underlying device and instance are
// destroyed only when Open created them.
func (d *Device) Close() {
	if d.dev == nil {
		return
	}
	for _, t := range d.textures {
		d.dev.DestroyTextureView(t.view)
		d.dev.DestroyTexture(t.tex)
	}
	d.textures = nil
	d.current = nil
	d.destroyTarget()
	d.pipe.destroy(d.dev)
	if d.owned {
		d.dev.Destroy()
	}
	d.dev = nil
	d.queue = nil
	if d.instance != nil {
		d.instance.Destroy()
		d.instance = nil
	}
}

// ensureTarget (re)creates the offscreen color target at the given size.
func (d *Device) ensureTarget(width, height int) error {
	if d.target != nil && d.targetW == width && d.targetH == height {
		return nil
	}
	d.destroyTarget()

	tex, err := d.dev.CreateTexture(&hal.TextureDescriptor{
		Label: "quad_target",
		Size: hal.Extent3D{
			Width:              uint32(width),
			Height:             uint32(height),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage:         gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageCopySrc,
	})
	if err != nil {
		return fmt.Errorf("wgpu: create target: %w", err)
	}
	view, err := d.dev.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label:         "quad_target_view",
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		d.dev.DestroyTexture(tex)
		return fmt.Errorf("wgpu: create target view: %w", err)
	}
	d.target = tex
	d.targetView = view
	d.targetW = width
	d.targetH = height
	return nil
}

func (d *Device) destroyTarget() {
	if d.targetView != nil {
		d.dev.DestroyTextureView(d.targetView)
		d.targetView = nil
	}
	if d.target != nil {
		d.dev.DestroyTexture(d.target)
		d.target = nil
	}
	d.targetW, d.targetH = 0, 0
}
