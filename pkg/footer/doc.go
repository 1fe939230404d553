// Package footer renders the Scorer interface page footer.
//
// The footer is a pure function of its Props: the display mode selects an
// AssetBundle (emphasis color and icon paths) and the layout is otherwise
// fixed. A Footer keeps a Memo so the bundle is only rebuilt when the mode
// changes between renders:
//
//	f := footer.New(assets.NewPassthroughResolver(assets.DefaultPrefix))
//	node := f.Render(footer.Props{
//	    Mode:       footer.ModeDark,
//	    ClassName:  "mt-auto",
//	    CommitHash: cfg.Footer.CommitHash,
//	})
//
// The commit hash is passed in explicitly. An empty hash renders a commit
// link ending in "/commit/".
package footer
