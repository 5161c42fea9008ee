package driver

import (
	"context"
	"fmt"
	"strconv"

	"concatident/internal/diag"
	"concatident/internal/lexer"
	"concatident/internal/macro"
	"concatident/internal/source"
	"concatident/internal/trace"
	"concatident/internal/tree"
)

// Result is the outcome of expanding one template.
type Result struct {
	Path     string
	FileID   source.FileID
	Output   []byte // nil when Bag has errors
	Bag      *diag.Bag
	Rounds   int // rounds that expanded at least one invocation
	Expanded int // successfully expanded invocations
	Cached   bool
}

// OK reports whether the file expanded without errors.
func (r *Result) OK() bool {
	return r != nil && !r.Bag.HasErrors()
}

// ExpandSource expands every registered macro invocation of a loaded file.
//
// Each round expands the outermost invocations and splices their output in
// place; output produced in a round is not searched again until the next one,
// so nested invocations are expanded one level per round. Expansion stops when
// a round changes nothing or after MaxDepth rounds. Diagnostics go to the
// result's Bag; the returned error is only set when ctx is cancelled.
func ExpandSource(ctx context.Context, fs *source.FileSet, id source.FileID, opts Options) (*Result, error) {
	opts = opts.withDefaults()
	file := fs.Get(id)
	res := &Result{Path: file.Path, FileID: id, Bag: diag.NewBag(opts.MaxDiagnostics)}

	if opts.Cache != nil && loadCached(opts, file, res) {
		return res, nil
	}

	tr := trace.FromContext(ctx)
	sp := trace.Begin(tr, trace.ScopeFile, "expand", trace.SpanFromContext(ctx))
	defer func() {
		sp.WithExtra("rounds", strconv.Itoa(res.Rounds)).
			WithExtra("expanded", strconv.Itoa(res.Expanded)).
			End(file.Path)
	}()

	reporter := diag.NewDedupReporter(diag.BagReporter{Bag: res.Bag})

	stop := opts.Timer.Begin("lex")
	tokens := lexer.New(file, lexer.Options{Reporter: reporter}).All()
	f := tree.Build(tokens, reporter)
	stop("")
	if res.Bag.HasErrors() {
		return res, nil
	}

	x := &expander{registry: opts.Registry, reporter: reporter, tracer: tr}
	stop = opts.Timer.Begin("expand")
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		round := trace.Begin(tr, trace.ScopeRound, "round", sp.ID())
		x.parent = round.ID()
		nodes, changed := x.round(f.Nodes, true)
		f.Nodes = nodes
		round.End(fmt.Sprintf("%d invocations", changed))
		if changed == 0 {
			break
		}
		res.Rounds++
		if res.Rounds >= opts.MaxDepth {
			if inv := x.pending(f.Nodes); inv != nil {
				diag.ReportError(reporter, diag.ExpRecursionLimit, inv.Span(),
					fmt.Sprintf("expansion did not settle after %d rounds", opts.MaxDepth)).
					WithNote(inv.Name.Span(), "this invocation is still unexpanded; raise [expand].max_depth if nesting is intended").
					Emit()
			}
			break
		}
	}
	res.Expanded = x.expanded
	stop(file.Path)

	if !res.Bag.HasErrors() {
		res.Output = render(file, f, opts, reporter)
	}
	if opts.Cache != nil {
		storeCached(opts, file, res)
	}
	return res, nil
}

// expander runs one round over a node list.
type expander struct {
	registry *macro.Registry
	reporter diag.Reporter
	tracer   trace.Tracer
	parent   uint64
	expanded int
}

// round returns the rewritten nodes and how many invocations were consumed.
// Failed invocations are consumed too: they are replaced with nothing and
// their diagnostics stay in the bag. stmts is set when nodes is a statement
// list (file level or a brace block) and spliced output needs a terminator.
func (x *expander) round(nodes []tree.Node, stmts bool) ([]tree.Node, int) {
	changed := 0
	out := make([]tree.Node, 0, len(nodes))
	for _, n := range nodes {
		switch n := n.(type) {
		case *tree.Invocation:
			e, ok := x.registry.Lookup(n.MacroName())
			if !ok {
				// чужой макрос: оставляем, но ищем наши внутри
				var c int
				n.Args.Nodes, c = x.round(n.Args.Nodes, false)
				changed += c
				out = append(out, n)
				continue
			}
			trace.Point(x.tracer, trace.ScopeMacro, "macro:"+n.MacroName(), n.Span().String(), x.parent)
			expanded, ok := e.Expand(n, x.reporter)
			changed++
			if ok {
				x.expanded++
				if stmts {
					expanded = tree.Terminate(expanded, n.Span())
				}
			} else {
				expanded = nil
			}
			out = append(out, tree.Splice(n, expanded)...)
		case *tree.Group:
			var c int
			n.Nodes, c = x.round(n.Nodes, n.Delim == tree.Brace)
			changed += c
			out = append(out, n)
		default:
			out = append(out, n)
		}
	}
	return out, changed
}

// pending returns the first registered invocation left in nodes.
func (x *expander) pending(nodes []tree.Node) *tree.Invocation {
	var found *tree.Invocation
	tree.Inspect(nodes, func(n tree.Node) bool {
		if found != nil {
			return false
		}
		if inv, ok := n.(*tree.Invocation); ok {
			if _, registered := x.registry.Lookup(inv.MacroName()); registered {
				found = inv
				return false
			}
		}
		return true
	})
	return found
}
