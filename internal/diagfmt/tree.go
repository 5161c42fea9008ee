package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"concatident/internal/source"
	"concatident/internal/tree"
)

type TreeNodeOutput struct {
	Type     string           `json:"type"`
	Kind     string           `json:"kind,omitempty"`
	Text     string           `json:"text,omitempty"`
	Span     source.Span      `json:"span"`
	Children []TreeNodeOutput `json:"children,omitempty"`
}

// FormatTreePretty печатает дерево токенов с рамкой из ├─ / └─.
func FormatTreePretty(w io.Writer, file *tree.File, fs *source.FileSet) error {
	header := "File"
	if fs != nil && file.EOF.Span.File < source.FileID(fs.Len()) {
		f := fs.Get(file.EOF.Span.File)
		header = formatPath(f, fs, PathModeAuto)
	}
	if _, err := fmt.Fprintf(w, "%s (%d nodes)\n", header, len(file.Nodes)); err != nil {
		return err
	}
	return formatNodesPretty(w, file.Nodes, fs, "")
}

func formatNodesPretty(w io.Writer, nodes []tree.Node, fs *source.FileSet, prefix string) error {
	for i, n := range nodes {
		branch, next := "├─ ", "│  "
		if i == len(nodes)-1 {
			branch, next = "└─ ", "   "
		}
		if _, err := fmt.Fprintf(w, "%s%s%s\n", prefix, branch, nodeLabel(n, fs)); err != nil {
			return err
		}
		var children []tree.Node
		switch n := n.(type) {
		case *tree.Group:
			children = n.Nodes
		case *tree.Invocation:
			children = n.Args.Nodes
		}
		if err := formatNodesPretty(w, children, fs, prefix+next); err != nil {
			return err
		}
	}
	return nil
}

func nodeLabel(n tree.Node, fs *source.FileSet) string {
	span := formatSpan(n.Span(), fs)
	switch n := n.(type) {
	case *tree.Leaf:
		return fmt.Sprintf("%s %q (span: %s)", n.Tok.Kind, n.Tok.Text, span)
	case *tree.Group:
		label := fmt.Sprintf("Group%s (span: %s)", n.Delim, span)
		if n.Close.Text == "" {
			label += " unclosed"
		}
		return label
	case *tree.Invocation:
		return fmt.Sprintf("Invocation %s!%s (span: %s)", n.MacroName(), n.Args.Delim, span)
	}
	return fmt.Sprintf("%T", n)
}

// FormatTreeJSON выводит дерево токенов в JSON.
func FormatTreeJSON(w io.Writer, file *tree.File) error {
	output := TreeNodeOutput{
		Type:     "File",
		Span:     file.EOF.Span,
		Children: treeNodesJSON(file.Nodes),
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func treeNodesJSON(nodes []tree.Node) []TreeNodeOutput {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]TreeNodeOutput, 0, len(nodes))
	for _, n := range nodes {
		switch n := n.(type) {
		case *tree.Leaf:
			out = append(out, TreeNodeOutput{Type: "Leaf", Kind: n.Tok.Kind.String(), Text: n.Tok.Text, Span: n.Span()})
		case *tree.Group:
			out = append(out, TreeNodeOutput{Type: "Group", Kind: n.Delim.String(), Span: n.Span(), Children: treeNodesJSON(n.Nodes)})
		case *tree.Invocation:
			out = append(out, TreeNodeOutput{
				Type:     "Invocation",
				Kind:     n.Args.Delim.String(),
				Text:     n.MacroName(),
				Span:     n.Span(),
				Children: treeNodesJSON(n.Args.Nodes),
			})
		}
	}
	return out
}
