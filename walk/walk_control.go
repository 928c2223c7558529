package walk

import (
	"arcc/ast"
	"arcc/ir"
	"arcc/typing"
)

// walkIf walks a conditional chain.  Else-if branches are nested in the else
// block of the preceding branch.
func (w *Walker) walkIf(ie *ast.If, mode Mode) (typing.Type, string) {
	type branch struct {
		cond, body string
	}

	// compile in source order so slots are numbered in order
	branches := make([]branch, len(ie.Branches))
	var typ typing.Type
	returned := false
	for i, br := range ie.Branches {
		condType, cond := w.walkExpr(br.Cond, mode)
		w.checkCondition(br.Cond, condType)

		bodyType, body, ret := w.walkBlock(br.Body, mode)
		if i == 0 {
			typ = bodyType
		}

		returned = returned || ret
		branches[i] = branch{cond: cond, body: body}
	}

	var els string
	if ie.Else != nil {
		_, els, _ = w.walkBlock(ie.Else, mode)
	} else if !returned {
		typ = typing.Void
	}

	frag := els
	for i := len(branches) - 1; i >= 0; i-- {
		frag = ir.If(branches[i].cond, branches[i].body, frag)
	}

	return typ, frag
}

// checkCondition checks that a condition is a boolean.  Comparisons yield
// integers so integers are accepted as well.
func (w *Walker) checkCondition(expr ast.Expr, typ typing.Type) {
	switch typing.KindOf(typ) {
	case typing.KindBoolean, typing.KindInteger:
		return
	}

	if !typing.IsAuto(typ) {
		w.wrongType(expr.Span(), typ, "BOOL")
	}
}

func (w *Walker) walkWhile(wl *ast.While, mode Mode) (typing.Type, string) {
	condType, cond := w.walkExpr(wl.Cond, mode)
	w.checkCondition(wl.Cond, condType)

	body := w.walkLoopBody(wl.Body, mode)
	return typing.Void, ir.While(cond, body)
}

// walkLoopBody walks the body of a loop.
func (w *Walker) walkLoopBody(body *ast.Block, mode Mode) string {
	w.fn.loopDepth++
	defer func() {
		w.fn.loopDepth--
	}()

	_, frag, _ := w.walkBlock(body, mode)
	return frag
}

// walkForRange lowers a counting loop to a while loop over a fresh counter
// variable.  The bound is evaluated once into a hidden slot.
func (w *Walker) walkForRange(fr *ast.ForRange, mode Mode) (typing.Type, string) {
	_, from := w.walkValue(fr.From, typing.IntegerType, mode)
	_, to := w.walkValue(fr.To, typing.IntegerType, mode)

	w.PushScope()
	defer w.PopScope()

	counter := w.define(fr.Var, typing.IntegerType, -1, fr.Span())
	boundSlot := w.nextSlot()
	body := w.walkLoopBody(fr.Body, mode)

	return typing.Void, ir.Join(
		ir.Store(counter.Slot, from),
		ir.Store(boundSlot, to),
		ir.While(
			ir.Binary(ir.GreaterThan, ir.LoadVariable(boundSlot), ir.LoadVariable(counter.Slot)),
			ir.Join(body, increment(counter.Slot)),
		),
	)
}

// walkForEach lowers iteration over an array or string to a while loop over a
// hidden index.
func (w *Walker) walkForEach(fe *ast.ForEach, mode Mode) (typing.Type, string) {
	iterType, iter := w.walkExpr(fe.Iter, mode)
	elemType, ok := typing.ElemType(iterType)
	if !ok {
		w.wrongType(fe.Iter.Span(), iterType, "array")
	}

	w.PushScope()
	defer w.PopScope()

	seqSlot := w.nextSlot()
	indexSlot := w.nextSlot()
	elem := w.define(fe.Var, elemType, -1, fe.Span())
	body := w.walkLoopBody(fe.Body, mode)

	seq := ir.LoadVariable(seqSlot)
	index := ir.LoadVariable(indexSlot)
	return typing.Void, ir.Join(
		ir.Store(seqSlot, iter),
		ir.Store(indexSlot, ir.Constant("INT", "0")),
		ir.While(
			ir.Binary(ir.GreaterThan, ir.Length(seq), index),
			ir.Join(
				ir.Store(elem.Slot, ir.Index(seq, index)),
				body,
				increment(indexSlot),
			),
		),
	)
}

// increment adds one to the integer in a slot.
func increment(slot int) string {
	return ir.Store(slot, ir.Binary(ir.Add, ir.LoadVariable(slot), ir.Constant("INT", "1")))
}
