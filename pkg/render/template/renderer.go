package template

// TemplateRenderer is the seam document renderers rely on so the engine
// behind them can be swapped or stubbed.
type TemplateRenderer interface {
	RenderTemplate(name string, data any) (string, error)
	GlobalContext(data any) error
}
