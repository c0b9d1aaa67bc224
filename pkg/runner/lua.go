package runner

import (
	"context"
	"fmt"
	"strings"
	"time"

	lua "github.com/yuin/gopher-lua"
)

// luaRunTimeout caps a single script run so an accidental infinite loop
// cannot wedge the session.
const luaRunTimeout = 10 * time.Second

// LuaEngine is the embedded interpreter for workspace Lua files. Each run
// gets a fresh sandboxed VM: no file system, no process control, print and
// require rebound to the workspace.
type LuaEngine struct{}

// NewLuaEngine returns the interpreter.
func NewLuaEngine() *LuaEngine {
	return &LuaEngine{}
}

// Run executes source in a sandboxed VM. print lines go to out; require
// resolves modules against the virtual workspace via lookup.
func (e *LuaEngine) Run(ctx context.Context, source string, out func(string), lookup func(string) (string, bool)) error {
	L := newSandboxedState()
	defer L.Close()

	runCtx, cancel := context.WithTimeout(ctx, luaRunTimeout)
	defer cancel()
	L.SetContext(runCtx)

	L.SetGlobal("print", L.NewFunction(func(L *lua.LState) int {
		parts := make([]string, L.GetTop())
		for i := 1; i <= L.GetTop(); i++ {
			parts[i-1] = L.ToStringMeta(L.Get(i)).String()
		}
		out(strings.Join(parts, "\t"))
		return 0
	}))

	loaded := L.NewTable()
	L.SetGlobal("require", L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		if cached := loaded.RawGetString(name); cached != lua.LNil {
			L.Push(cached)
			return 1
		}
		src, ok := lookup(name)
		if !ok {
			src, ok = lookup(name + ".lua")
		}
		if !ok {
			L.RaiseError("module '%s' not found in workspace", name)
			return 0
		}
		fn, err := L.LoadString(src)
		if err != nil {
			L.RaiseError("load module '%s': %v", name, err)
			return 0
		}
		L.Push(fn)
		if err := L.PCall(0, 1, nil); err != nil {
			L.RaiseError("run module '%s': %v", name, err)
			return 0
		}
		result := L.Get(-1)
		if result == lua.LNil {
			result = lua.LTrue
		}
		loaded.RawSetString(name, result)
		return 1
	}))

	if err := L.DoString(source); err != nil {
		return fmt.Errorf("%s", luaErrorText(err))
	}
	return nil
}

// newSandboxedState builds a VM with only the safe standard libraries and
// the dangerous globals stripped.
func newSandboxedState() *lua.LState {
	L := lua.NewState(lua.Options{
		SkipOpenLibs:        true,
		CallStackSize:       128,
		MinimizeStackMemory: true,
	})

	for _, lib := range []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		L.Push(L.NewFunction(lib.fn))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}

	for _, name := range []string{"dofile", "loadfile", "require"} {
		L.SetGlobal(name, lua.LNil)
	}
	return L
}

// luaErrorText trims gopher-lua's stack traceback down to the first line so
// the console shows a single error entry.
func luaErrorText(err error) string {
	text := err.Error()
	if i := strings.Index(text, "\nstack traceback"); i >= 0 {
		text = text[:i]
	}
	return text
}
