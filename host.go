package disguiser

import "github.com/mcneja/disguiser/render"

// rendererHost adapts a render.Renderer to Host with no module attached.
type rendererHost struct {
	r *render.Renderer
}

// RendererHost returns a Host whose callbacks feed r directly. Use it to
// construct a Module before its Bridge exists; the module's draw requests
// and the bridge's frames meet at the same renderer.
func RendererHost(r *render.Renderer) Host {
	return rendererHost{r: r}
}

func (h rendererHost) DrawTile(destX, destY, sizeX, sizeY int32, color Color, textureIndex, srcX, srcY int32) {
	h.r.DrawTile(destX, destY, sizeX, sizeY, color, textureIndex, srcX, srcY)
}

func (h rendererHost) DrawRect(destX, destY, sizeX, sizeY int32, color Color) {
	h.r.DrawRect(destX, destY, sizeX, sizeY, color)
}

func (h rendererHost) InvalidateScreen() { h.r.Invalidate() }
