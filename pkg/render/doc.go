// Package render converts vdom trees into HTML.
//
// The renderer handles escaping of text and attribute values, void elements
// (img, meta, link, ...), boolean attributes, and deterministic attribute
// order so that the same tree always produces byte-identical output.
//
// To render a node to a string:
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(node)
//
// To render a complete document:
//
//	err := renderer.RenderPage(w, render.PageData{
//	    Title: "Scorer",
//	    Body:  bodyNode,
//	})
//
// Raw HTML can be inserted using KindRaw nodes, but should only be used with
// trusted content.
package render
