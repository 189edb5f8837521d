/*
Package graphviz renders trees as graphviz graphs.
*/
package graphviz

import (
	"fmt"
	"io"
	"strings"

	gv "github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"
	"github.com/pbanos/cart/tree"
)

// FormatError is returned for unsupported output formats
type FormatError string

func (fe FormatError) Error() string {
	return fmt.Sprintf("unsupported graph format %q", string(fe))
}

/*
ParseFormat takes a format name (dot, svg, png or jpg) or a file name
with one of those extensions and returns the corresponding graphviz
format or a FormatError.
*/
func ParseFormat(name string) (gv.Format, error) {
	ext := strings.ToLower(name)
	if i := strings.LastIndex(ext, "."); i >= 0 {
		ext = ext[i+1:]
	}
	switch ext {
	case "dot", "gv":
		return gv.XDOT, nil
	case "svg":
		return gv.SVG, nil
	case "png":
		return gv.PNG, nil
	case "jpg", "jpeg":
		return gv.JPG, nil
	}
	return "", FormatError(name)
}

/*
Render takes a tree, a graphviz format and an io.Writer and writes the
drawing of the tree in that format to the writer. Split nodes show their
criterion, leaves are boxes with their prediction and edges are labelled
with the branch they represent.
*/
func Render(t *tree.Tree, format gv.Format, w io.Writer) error {
	g := gv.New()
	defer g.Close()
	graph, err := g.Graph()
	if err != nil {
		return fmt.Errorf("creating graph: %v", err)
	}
	defer graph.Close()
	if t.Root != nil {
		if err = draw(graph, t.Root, nil, ""); err != nil {
			return err
		}
	}
	if err = g.Render(graph, format, w); err != nil {
		return fmt.Errorf("rendering graph as %s: %v", format, err)
	}
	return nil
}

func draw(g *cgraph.Graph, n *tree.Node, parent *cgraph.Node, branch string) error {
	current, err := g.CreateNode(n.ID)
	if err != nil {
		return fmt.Errorf("creating graph node %s: %v", n.ID, err)
	}
	if parent != nil {
		e, err := g.CreateEdge("", parent, current)
		if err != nil {
			return fmt.Errorf("creating graph edge to %s: %v", n.ID, err)
		}
		e.SetLabel(branch)
	}
	if n.IsLeaf() {
		current.SetLabel(fmt.Sprintf("%v", n.Prediction))
		current.SetShape(cgraph.BoxShape)
		return nil
	}
	current.SetLabel(fmt.Sprintf("%v\n%v", n.Criterion, n.Prediction))
	for _, child := range []struct {
		node   *tree.Node
		branch string
	}{{n.True, "true"}, {n.False, "false"}} {
		if child.node == nil {
			continue
		}
		if err = draw(g, child.node, current, child.branch); err != nil {
			return err
		}
	}
	return nil
}
