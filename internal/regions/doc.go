// Package regions computes the editable and read-only spans of a script
// assembled from template sections.
//
// A template is an ordered list of sections. Joining their contents without a
// separator gives the document shown in the editor. Calculate returns one
// ConstrainedRange per section, in editor coordinates (1-based lines,
// UTF-16 columns). The ranges tile the document: each range ends exactly
// where the next one starts.
//
//	ranges := regions.Calculate([]regions.Section{
//	    {Editable: false, Content: "header "},
//	    {Editable: true, Content: "BODY"},
//	})
//	// ranges[0] = {1 1 1 8 true}, ranges[1] = {1 8 1 12 false}
//
// Templates are stored as TOML or YAML files and loaded with LoadTemplate.
// A Watcher reloads one whenever it changes on disk.
package regions
