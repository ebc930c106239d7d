package ui

// View presents a model through a content node. Render may be called any
// number of times with new models.
type View interface {
	Render(model any)
	Content() Node
}
