package binder

// builtinNames is the documented set of names the target language makes
// available in every module without an import (spec §4.1's "~130-name
// documented built-in list"): the exception hierarchy, the warning
// hierarchy, and the top-level built-in functions and types. It is not
// exhaustive of every CPython release's builtins.__dict__; it is the
// stable, documented subset a binder can safely assume exists across
// supported language versions.
var builtinNames = []string{
	// Top-level functions.
	"abs", "aiter", "anext", "all", "any", "ascii", "bin", "bool",
	"breakpoint", "bytearray", "bytes", "callable", "chr", "classmethod",
	"compile", "complex", "delattr", "dict", "dir", "divmod",
	"enumerate", "eval", "exec", "filter", "float", "format",
	"frozenset", "getattr", "globals", "hasattr", "hash", "help",
	"hex", "id", "input", "int", "isinstance", "issubclass", "iter",
	"len", "list", "locals", "map", "max", "memoryview", "min", "next",
	"object", "oct", "open", "ord", "pow", "print", "property", "range",
	"repr", "reversed", "round", "set", "setattr", "slice", "sorted",
	"staticmethod", "str", "sum", "super", "tuple", "type", "vars", "zip",
	"__import__",
	// Module-level dunders.
	"__name__", "__doc__", "__file__", "__loader__", "__package__",
	"__spec__", "__builtins__", "__debug__",
	// Constants.
	"True", "False", "None", "NotImplemented", "Ellipsis", "__debug__",
	// Exception hierarchy.
	"BaseException", "BaseExceptionGroup", "Exception", "ArithmeticError",
	"AssertionError", "AttributeError", "BlockingIOError",
	"BrokenPipeError", "BufferError", "BytesWarning", "ChildProcessError",
	"ConnectionAbortedError", "ConnectionError", "ConnectionRefusedError",
	"ConnectionResetError", "DeprecationWarning", "EOFError",
	"Ellipsis", "EncodingWarning", "EnvironmentError", "ExceptionGroup",
	"FileExistsError", "FileNotFoundError", "FloatingPointError",
	"FutureWarning", "GeneratorExit", "IOError", "ImportError",
	"ImportWarning", "IndentationError", "IndexError", "InterruptedError",
	"IsADirectoryError", "KeyError", "KeyboardInterrupt", "LookupError",
	"MemoryError", "ModuleNotFoundError", "NameError",
	"NotADirectoryError", "NotImplementedError", "OSError",
	"OverflowError", "PendingDeprecationWarning", "PermissionError",
	"ProcessLookupError", "RecursionError", "ReferenceError",
	"ResourceWarning", "RuntimeError", "RuntimeWarning", "StopAsyncIteration",
	"StopIteration", "SyntaxError", "SyntaxWarning", "SystemError",
	"SystemExit", "TabError", "TimeoutError", "TypeError",
	"UnboundLocalError", "UnicodeDecodeError", "UnicodeEncodeError",
	"UnicodeError", "UnicodeTranslateError", "UnicodeWarning",
	"UserWarning", "ValueError", "Warning", "ZeroDivisionError",
}

// typingSpecialForms is seeded in addition to builtinNames when
// FileInfo.IsTypingStubFile is set, for binding the language's own
// typing stub module (spec §4.1: "the typing stub file's own module
// scope additionally admits its documented special forms").
var typingSpecialForms = []string{
	"Any", "Union", "Optional", "List", "Dict", "Set", "FrozenSet",
	"Tuple", "Type", "Generic", "Protocol", "Callable", "ClassVar",
	"Final", "Literal", "TypedDict", "TypeVar", "TypeVarTuple",
	"ParamSpec", "NoReturn", "Never", "overload", "final", "runtime_checkable",
	"NamedTuple", "NewType", "cast", "get_type_hints", "TYPE_CHECKING",
	"Annotated", "Concatenate", "Self", "Unpack", "Required", "NotRequired",
}

// newBuiltinScope constructs a fresh built-in scope seeded with
// builtinNames (and typingSpecialForms, if typingStub), each bound to a
// BuiltInDeclaration. Declarations carry no syntax node (Node is nil):
// they were never written by the analyzed source, matching spec §4.1's
// note that built-in declarations "carry a pre-resolved type rather
// than one inferred from syntax".
func newBuiltinScope(typingStub bool) *Scope {
	scope := newScope(BuiltinScope, nil, nil)
	filter := newOrderedSet()
	scope.ExportFilter = filter

	seed := func(name string) {
		filter.Add(name)
		sym := scope.Table.GetOrCreate(name)
		sym.AddDeclaration(BuiltInDeclaration{
			declCommon: declCommon{Path: "<builtins>"},
		})
	}
	for _, name := range builtinNames {
		seed(name)
	}
	if typingStub {
		for _, name := range typingSpecialForms {
			seed(name)
		}
	}
	return scope
}

// builtinScopeFor returns a bare, unseeded built-in scope for the
// built-ins stub file itself; otherwise fi.PrebuiltBuiltins if set, or
// else a freshly built one (spec §4.1: hosts may share a single
// built-in scope across every file they bind, since it never depends
// on the analyzed file).
func builtinScopeFor(fi *FileInfo) *Scope {
	if fi != nil && fi.IsBuiltInStubFile {
		return newScope(BuiltinScope, nil, nil)
	}
	if fi != nil && fi.PrebuiltBuiltins != nil {
		return fi.PrebuiltBuiltins
	}
	return newBuiltinScope(fi != nil && fi.IsTypingStubFile)
}
