// Package vdom provides the in-memory node tree used to build server-rendered
// markup.
//
// # Core Types
//
// VNode is the fundamental building block representing elements, text,
// fragments, components, and raw HTML. Props holds the attributes of an
// element. Attr values are passed to element factories to build Props.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("flex", "items-center"),
//	    A(Href("https://ceramic.network/"), Text("Ceramic")),
//	    Img(Src("/assets/docsIconDark.svg")),
//	)
//
// Nil arguments are skipped, which lets callers build attributes and
// children conditionally with If.
package vdom
