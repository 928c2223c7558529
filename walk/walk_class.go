package walk

import (
	"fmt"

	"arcc/ast"
	"arcc/ir"
	"arcc/report"
	"arcc/typing"
)

func (w *Walker) walkClassDecl(cd *ast.ClassDecl, mode Mode) (typing.Type, string) {
	name := w.location + cd.Name
	if _, ok := w.compounds[name]; ok {
		w.error(report.ConstantRedeclared, cd.Span(), "type `%s` is already declared", cd.Name)
	}

	ct := &typing.CompoundType{Name: name}
	info := w.registerCompound(ct, cd.Public)
	w.addFields(info, cd.Fields, mode)

	if mode == Probe {
		return typing.Void, ""
	}

	return typing.Void, ir.Compound(ct.Name, ct.FieldLabels())
}

// walkExtendDecl appends fields to an existing class and redeclares its
// compound record.
func (w *Walker) walkExtendDecl(ed *ast.ExtendDecl, mode Mode) (typing.Type, string) {
	info, ok := w.lookupClass(ed.Name)
	if !ok || info.module {
		w.error(report.UnknownType, ed.Span(), "unknown type: `%s`", ed.Name)
	}

	w.addFields(info, ed.Fields, mode)

	if mode == Probe {
		return typing.Void, ""
	}

	return typing.Void, ir.Compound(info.typ.Name, info.typ.FieldLabels())
}

// addFields adds field declarations to a class.  Function fields are compiled
// once here; the types of data fields are determined by probing their
// initializers which are compiled again for each instance.
func (w *Walker) addFields(info *classInfo, fields []*ast.FieldDecl, mode Mode) {
	ct := info.typ

	for _, fd := range fields {
		if _, ok := ct.Field(fd.Name); ok {
			w.error(report.ConstantRedeclared, fd.Span(), "`%s` already has a field named `%s`", ct.Name, fd.Name)
		}

		var declared typing.Type = typing.Auto
		if fd.Type != nil {
			declared = w.resolveTypeExpr(fd.Type)
		}

		if fl, ok := fd.Init.(*ast.FuncLit); ok {
			if !typing.IsAuto(declared) {
				w.wrongType(fl.Span(), &typing.FunctionType{}, declared.Transpile())
			}

			var self *typing.CompoundType
			if fl.IsMethod() {
				self = ct
			}

			// the field is added first so methods can call each other
			// through self
			ft := &typing.FunctionType{Return: typing.Auto}
			ct.AddField(fd.Name, ft, fd.Init)
			w.walkFuncLit(fl, mode, funcBinding{name: ct.Name + "." + fd.Name, typ: ft, self: self})
			continue
		}

		typ := w.probeValue(fd.Init, declared)
		if typing.IsVoid(typ) {
			w.wrongType(fd.Init.Span(), typ, "a value")
		}

		w.settleMaps(typ, mode)

		ct.AddField(fd.Name, typ, fd.Init)
	}
}

// probeValue determines the type of a value without emitting anything.
func (w *Walker) probeValue(expr ast.Expr, expected typing.Type) typing.Type {
	state := w.saveState()
	defer w.restoreState(state)

	typ, _ := w.walkValue(expr, expected, Probe)
	if !typing.IsAuto(expected) {
		return expected
	}

	return typ
}

// settleMaps names the hashmap compounds minted while probing a field
// initializer and, when emitting, declares them.  Each instance of the class
// then fills these same compounds.
func (w *Walker) settleMaps(typ typing.Type, mode Mode) {
	switch v := typ.(type) {
	case *typing.ArrayType:
		w.settleMaps(v.Elem, mode)
	case *typing.CompoundType:
		if !isMapCompound(v) {
			return
		}

		if info, ok := w.compounds[v.Name]; ok && info.typ == v {
			return
		}

		// the probe rewound the map counter
		w.mapCounter++
		v.Name = fmt.Sprintf("MAP_%d", w.mapCounter)

		for _, field := range v.Fields {
			w.settleMaps(field.Type, mode)
		}

		if mode == Emit {
			w.registerCompound(v, false)
			w.pending = append(w.pending, ir.Compound(v.Name, v.FieldLabels()))
		}
	}
}
