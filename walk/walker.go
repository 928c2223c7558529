package walk

import (
	"arcc/ast"
	"arcc/common"
	"arcc/ir"
	"arcc/mods"
	"arcc/report"
	"arcc/sem"
	"arcc/typing"
)

// Mode selects whether a walk emits IR or only computes types.
type Mode int

// Enumeration of walk modes.
const (
	// Emit performs the full semantic pass and produces IR.
	Emit Mode = iota

	// Probe performs the semantic pass for its type result only.  Probing
	// never creates function buffers or compound records and leaves the slot
	// and function counters as it found them.
	Probe
)

// ModuleLoader loads the modules named by import statements.
type ModuleLoader interface {
	// LoadModule resolves the import path relative to the importing file and
	// loads the module it names.
	LoadModule(importer, path string) (*Module, error)
}

// Module is a loaded import: either a parsed source file or a native library
// described by its manifest.  Exactly one of Program and Library is set.
type Module struct {
	// AbsPath is the absolute path to the module.  It identifies the module
	// for the purposes of cycle detection.
	AbsPath string

	Program *ast.Program
	Library *mods.Manifest
}

// Walker is responsible for walking a program, performing semantic analysis
// on it and emitting its IR.  A walker compiles a single program (along with
// everything that program imports).
type Walker struct {
	// The loader used to load imported modules.
	loader ModuleLoader

	// The arena of all scopes created during the compilation.
	scopes *sem.Arena

	// The function buffers in creation order.  The main buffer is not
	// included.
	buffers     []*ir.Buffer
	bufferNames map[string]struct{}
	main        *ir.Buffer

	// The function currently being compiled.
	fn *funcContext

	// The current module location prefix, the export name of the current
	// module and the path of the file currently being compiled.  These are
	// saved on the location stack while compiling an import.
	location   string
	exportName string
	file       string
	locations  []locationEntry

	// The paths of the files currently being compiled, outermost first.
	importStack []string

	// The absolute paths of every module imported in import order.
	imports []string

	// The declared compound types by qualified name along with their
	// declaration order.
	compounds     map[string]*classInfo
	compoundOrder []string

	// The builtin extension methods by receiver kind and name.
	extensions map[int]map[string]*Extension

	// Compound records that must be emitted before the statement currently
	// being compiled.
	pending []string

	slotCounter, funcCounter, mapCounter int
}

// funcContext is the compilation state of a single function.
type funcContext struct {
	parent *funcContext

	id int

	// The buffer the function's statements are written to.  This is nil while
	// probing.
	buf *ir.Buffer

	// The declared return type or nil if the return type is inferred.
	declaredReturn typing.Type

	// The first return type found in each enclosing block of the function.
	// Entries are nil until a return is compiled.
	returnFrames []typing.Type

	// The number of loops enclosing the current position in the function.
	loopDepth int
}

// locationEntry is a saved module location context.
type locationEntry struct {
	location, exportName, file string
}

// classInfo is a declared compound type along with where it was declared.
type classInfo struct {
	typ *typing.CompoundType

	// The scope and location the type was declared in: field initializers are
	// compiled in them.
	scope    int
	location string

	public bool

	// Whether the compound holds the exports of an imported module.  For
	// modules, hidden holds the names of the module's non-public bindings.
	module bool
	hidden map[string]struct{}
}

// New creates a new walker which loads imports using the given loader.  The
// loader may be nil if the program does not import anything.
func New(loader ModuleLoader) *Walker {
	w := &Walker{
		loader:      loader,
		scopes:      sem.NewArena(),
		bufferNames: make(map[string]struct{}),
		main:        ir.NewBuffer(common.MainFunctionName),
		compounds:   make(map[string]*classInfo),
		extensions:  newExtensionRegistry(),
	}

	w.bufferNames[common.MainFunctionName] = struct{}{}
	w.fn = &funcContext{id: 0, buf: w.main}
	return w
}

// Compile compiles the program.  The name of the program is used as the path
// of the importing file when resolving its imports.
func (w *Walker) Compile(prog *ast.Program) (out *Output, err error) {
	defer report.Catch(&err)

	w.file = prog.Name
	if prog.Name != "" {
		w.importStack = append(w.importStack, prog.Name)
	}

	_, frags := w.walkStmts(prog.Stmts, Emit)
	for _, frag := range frags {
		w.main.Write(frag)
	}

	return &Output{
		Functions: w.buffers,
		Main:      w.main,
		Imports:   w.imports,
	}, nil
}

// -----------------------------------------------------------------------------

// DefineVariable defines a new symbol in the current scope.  The name is
// qualified with the current module location.  A parameter ID of -1 defines
// an ordinary variable which is given a fresh slot.
func (w *Walker) DefineVariable(name string, typ typing.Type, paramID int) *sem.Symbol {
	sym := &sem.Symbol{
		Name:    w.location + name,
		Slot:    -1,
		Type:    typ,
		ParamID: paramID,
		FuncID:  w.fn.id,
	}

	if paramID < 0 {
		sym.Slot = w.nextSlot()
	}

	w.scopes.Define(sym)
	return sym
}

// Resolve looks up a symbol by name.  The name qualified with the current
// module location is tried first so that modules do not see each other's
// bindings; the bare name is tried second so top level names remain visible.
func (w *Walker) Resolve(name string) (*sem.Symbol, bool) {
	if w.location != "" {
		if sym, ok := w.scopes.Lookup(w.location + name); ok {
			return sym, true
		}
	}

	return w.scopes.Lookup(name)
}

// PushScope pushes a new scope nested in the current scope.
func (w *Walker) PushScope() {
	w.scopes.Push()
}

// PopScope exits the current scope.
func (w *Walker) PopScope() {
	w.scopes.Pop()
}

// -----------------------------------------------------------------------------

// define defines a new symbol checking that it does not redeclare a constant
// in the same scope.
func (w *Walker) define(name string, typ typing.Type, paramID int, span *report.TextSpan) *sem.Symbol {
	w.checkRedeclare(name, span)

	sym := w.DefineVariable(name, typ, paramID)
	sym.DefSpan = span
	return sym
}

// checkRedeclare raises an error if the name is bound to a constant in the
// current scope.
func (w *Walker) checkRedeclare(name string, span *report.TextSpan) {
	if prev, ok := w.scopes.LookupLocal(w.location + name); ok && prev.HasModifier(sem.ModConstant) {
		w.error(report.ConstantRedeclared, span, "constant `%s` is already declared in this scope", name)
	}
}

// lookup resolves a symbol by name.  If no symbol by the given name can be
// found, then an error is raised.
func (w *Walker) lookup(name string, span *report.TextSpan) *sem.Symbol {
	if sym, ok := w.Resolve(name); ok {
		return sym
	}

	w.error(report.UnknownSymbol, span, "undefined symbol: `%s`", name)
	return nil
}

// lookupClass looks up a compound type by its declared name.
func (w *Walker) lookupClass(name string) (*classInfo, bool) {
	if w.location != "" {
		if info, ok := w.compounds[w.location+name]; ok {
			return info, true
		}
	}

	info, ok := w.compounds[name]
	return info, ok
}

// registerCompound records a newly declared compound type.
func (w *Walker) registerCompound(ct *typing.CompoundType, public bool) *classInfo {
	info := &classInfo{
		typ:      ct,
		scope:    w.scopes.Current(),
		location: w.location,
		public:   public,
	}

	w.compounds[ct.Name] = info
	w.compoundOrder = append(w.compoundOrder, ct.Name)
	return info
}

// -----------------------------------------------------------------------------

// nextSlot returns a fresh variable slot.
func (w *Walker) nextSlot() int {
	slot := w.slotCounter
	w.slotCounter++
	return slot
}

// nextFuncID returns a fresh function ID.  The main function is always 0.
func (w *Walker) nextFuncID() int {
	w.funcCounter++
	return w.funcCounter
}

// addBuffer records a new function buffer.
func (w *Walker) addBuffer(buf *ir.Buffer) {
	w.buffers = append(w.buffers, buf)
	w.bufferNames[buf.Name] = struct{}{}
}

// takePending removes and returns the pending compound records.
func (w *Walker) takePending() []string {
	pending := w.pending
	w.pending = nil
	return pending
}

// walkState is the part of the walker's state that is restored after probing.
type walkState struct {
	slots, funcs, maps, compounds int
}

// saveState captures the walker's counters before probing.
func (w *Walker) saveState() walkState {
	return walkState{
		slots:     w.slotCounter,
		funcs:     w.funcCounter,
		maps:      w.mapCounter,
		compounds: len(w.compoundOrder),
	}
}

// restoreState resets the walker's counters and forgets any compound types
// declared since the state was saved.
func (w *Walker) restoreState(s walkState) {
	w.slotCounter = s.slots
	w.funcCounter = s.funcs
	w.mapCounter = s.maps

	for _, name := range w.compoundOrder[s.compounds:] {
		delete(w.compounds, name)
	}

	w.compoundOrder = w.compoundOrder[:s.compounds]
}

// -----------------------------------------------------------------------------

// pushReturnFrame opens a new return frame for a block.
func (fc *funcContext) pushReturnFrame() int {
	fc.returnFrames = append(fc.returnFrames, nil)
	return len(fc.returnFrames) - 1
}

// popReturnFrame closes the return frame at the given index and returns the
// first return type recorded in it (or nil).
func (fc *funcContext) popReturnFrame(frame int) typing.Type {
	typ := fc.returnFrames[frame]
	fc.returnFrames = fc.returnFrames[:frame]
	return typ
}

// recordReturn records a return type in every open frame which has not
// already seen one.  Types still being inferred are skipped.
func (fc *funcContext) recordReturn(typ typing.Type) {
	if typing.IsAuto(typ) {
		return
	}

	for i, frameType := range fc.returnFrames {
		if frameType == nil {
			fc.returnFrames[i] = typ
		}
	}
}

// -----------------------------------------------------------------------------

// error raises a compile error of the given kind which aborts compilation.
func (w *Walker) error(kind int, span *report.TextSpan, msg string, args ...interface{}) {
	panic(report.Raise(kind, span, msg, args...))
}

// wrongType raises a type mismatch error.
func (w *Walker) wrongType(span *report.TextSpan, got typing.Type, expected string) {
	panic(report.RaiseWrongType(span, got.Transpile(), expected))
}
