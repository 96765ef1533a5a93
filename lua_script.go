// lua_script.go - Per-frame callbacks written in Lua

/*
(c) 2024 - 2026 Zayn Otley
License: GPLv3 or later
*/

package glasspane

import (
	"fmt"
	"os"
	"strings"

	lua "github.com/yuin/gopher-lua"
)

// ScriptTicker runs a Lua chunk's global on_tick() function once per frame.
// The chunk reaches the overlay through the global "overlay" table.
type ScriptTicker struct {
	name    string
	L       *lua.LState
	onTick  *lua.LFunction
	current *Overlay
}

// LoadScriptTicker compiles the Lua file at path.
func LoadScriptTicker(path string) (*ScriptTicker, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return NewScriptTicker(path, string(src))
}

// NewScriptTicker compiles and runs source once; it must define on_tick.
func NewScriptTicker(name, source string) (*ScriptTicker, error) {
	s := &ScriptTicker{name: name, L: lua.NewState()}
	s.L.SetGlobal("overlay", s.L.SetFuncs(s.L.NewTable(), s.exports()))

	chunk, err := s.L.Load(strings.NewReader(source), name)
	if err != nil {
		s.L.Close()
		return nil, fmt.Errorf("compile %s: %w", name, err)
	}
	s.L.Push(chunk)
	if err := s.L.PCall(0, lua.MultRet, nil); err != nil {
		s.L.Close()
		return nil, fmt.Errorf("run %s: %w", name, err)
	}
	fn, ok := s.L.GetGlobal("on_tick").(*lua.LFunction)
	if !ok {
		s.L.Close()
		return nil, fmt.Errorf("%s: no on_tick function defined", name)
	}
	s.onTick = fn
	return s, nil
}

func (s *ScriptTicker) Tick(o *Overlay) error {
	s.current = o
	defer func() { s.current = nil }()
	err := s.L.CallByParam(lua.P{Fn: s.onTick, NRet: 0, Protect: true})
	if err != nil {
		return fmt.Errorf("%s: on_tick: %w", s.name, err)
	}
	return nil
}

func (s *ScriptTicker) Close() {
	s.L.Close()
}

func (s *ScriptTicker) exports() map[string]lua.LGFunction {
	return map[string]lua.LGFunction{
		"draw_line":       s.luaDrawLine,
		"draw_line_angle": s.luaDrawLineAngle,
		"draw_rect":       s.luaDrawRect,
		"fill_rect":       s.luaFillRect,
		"draw_circle":     s.luaDrawCircle,
		"fill_circle":     s.luaFillCircle,
		"draw_dot":        s.luaDrawDot,
		"draw_text":       s.luaDrawText,
		"key_pressed":     s.luaKeyPressed,
		"stop":            s.luaStop,
		"fps":             s.luaFPS,
		"ms":              s.luaMS,
		"size":            s.luaSize,
		"target":          s.luaTarget,
	}
}

// overlay returns the overlay of the tick in progress or raises a Lua error.
func (s *ScriptTicker) overlay(L *lua.LState) *Overlay {
	if s.current == nil {
		L.RaiseError("overlay functions are only available inside on_tick")
	}
	return s.current
}

// checkColor accepts a palette name or a {r, g, b, a} table, either keyed or
// positional. Alpha defaults to 1.
func checkColor(L *lua.LState, n int) RGBA {
	switch v := L.Get(n).(type) {
	case lua.LString:
		c, ok := ColorByName(string(v))
		if !ok {
			L.ArgError(n, fmt.Sprintf("unknown colour %q", string(v)))
		}
		return c
	case *lua.LTable:
		field := func(key string, idx int, def float64) float64 {
			val := v.RawGetString(key)
			if val == lua.LNil {
				val = v.RawGetInt(idx)
			}
			if num, ok := val.(lua.LNumber); ok {
				return float64(num)
			}
			return def
		}
		return RGBA{
			R: clampByte(field("r", 1, 0)),
			G: clampByte(field("g", 2, 0)),
			B: clampByte(field("b", 3, 0)),
			A: float32(field("a", 4, 1)),
		}
	case *lua.LNilType:
		return White
	}
	L.ArgError(n, "colour must be a name or a table")
	return RGBA{}
}

func clampByte(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}

func checkPoint(L *lua.LState, n int) Point {
	return Point{X: L.CheckInt(n), Y: L.CheckInt(n + 1)}
}

func checkRect(L *lua.LState, n int) Rect {
	return Rect{Left: L.CheckInt(n), Top: L.CheckInt(n + 1), Right: L.CheckInt(n + 2), Bottom: L.CheckInt(n + 3)}
}

// draw_line(x0, y0, x1, y1, colour [, width])
func (s *ScriptTicker) luaDrawLine(L *lua.LState) int {
	o := s.overlay(L)
	o.DrawLineWidth(checkPoint(L, 1), checkPoint(L, 3), float32(L.OptNumber(6, 1)), checkColor(L, 5))
	return 0
}

// draw_line_angle(x, y, degrees, length, colour [, width])
func (s *ScriptTicker) luaDrawLineAngle(L *lua.LState) int {
	o := s.overlay(L)
	o.DrawLineFromAngleWidth(checkPoint(L, 1), float64(L.CheckNumber(3)), float64(L.CheckNumber(4)),
		float32(L.OptNumber(6, 1)), checkColor(L, 5))
	return 0
}

// draw_rect(left, top, right, bottom, colour [, width [, degrees]])
func (s *ScriptTicker) luaDrawRect(L *lua.LState) int {
	o := s.overlay(L)
	o.DrawEmptyRectFromAngleWidth(checkRect(L, 1), float64(L.OptNumber(7, 0)),
		float32(L.OptNumber(6, 1)), checkColor(L, 5))
	return 0
}

// fill_rect(left, top, right, bottom, colour [, degrees])
func (s *ScriptTicker) luaFillRect(L *lua.LState) int {
	o := s.overlay(L)
	o.DrawFilledRectFromAngle(checkRect(L, 1), float64(L.OptNumber(6, 0)), checkColor(L, 5))
	return 0
}

// draw_circle(x, y, radius, colour [, width])
func (s *ScriptTicker) luaDrawCircle(L *lua.LState) int {
	o := s.overlay(L)
	o.DrawEmptyCircleWidth(checkPoint(L, 1), float64(L.CheckNumber(3)), float32(L.OptNumber(5, 1)), checkColor(L, 4))
	return 0
}

// fill_circle(x, y, radius, colour)
func (s *ScriptTicker) luaFillCircle(L *lua.LState) int {
	o := s.overlay(L)
	o.DrawFilledCircle(checkPoint(L, 1), float64(L.CheckNumber(3)), checkColor(L, 4))
	return 0
}

// draw_dot(x, y, size, colour)
func (s *ScriptTicker) luaDrawDot(L *lua.LState) int {
	o := s.overlay(L)
	o.DrawFilledDot(checkPoint(L, 1), float32(L.CheckNumber(3)), checkColor(L, 4))
	return 0
}

// draw_text(text, x, y [, colour [, anchor]])
func (s *ScriptTicker) luaDrawText(L *lua.LState) int {
	o := s.overlay(L)
	str := L.CheckString(1)
	pos := checkPoint(L, 2)
	c := checkColor(L, 4)
	if L.GetTop() < 5 {
		o.DrawText(str, pos, c)
		return 0
	}
	anchor, err := ParseAnchor(L.CheckString(5))
	if err != nil {
		L.ArgError(5, err.Error())
	}
	o.DrawTextAnchored(str, pos, anchor, c)
	return 0
}

// key_pressed(name) -> bool
func (s *ScriptTicker) luaKeyPressed(L *lua.LState) int {
	o := s.overlay(L)
	k, err := ParseKey(L.CheckString(1))
	if err != nil {
		L.ArgError(1, err.Error())
	}
	L.Push(lua.LBool(o.KeyPressed(k)))
	return 1
}

func (s *ScriptTicker) luaStop(L *lua.LState) int {
	s.overlay(L).Stop()
	return 0
}

func (s *ScriptTicker) luaFPS(L *lua.LState) int {
	L.Push(lua.LNumber(s.overlay(L).FPS()))
	return 1
}

func (s *ScriptTicker) luaMS(L *lua.LState) int {
	L.Push(lua.LNumber(s.overlay(L).MS()))
	return 1
}

func (s *ScriptTicker) luaSize(L *lua.LState) int {
	w, h := s.overlay(L).Size()
	L.Push(lua.LNumber(w))
	L.Push(lua.LNumber(h))
	return 2
}

// target() -> {left, top, right, bottom, width, height, cx, cy, valid, exists}
// The bounds are relative to the overlay, ready for the draw calls.
func (s *ScriptTicker) luaTarget(L *lua.LState) int {
	t := s.overlay(L).Target()
	tbl := L.NewTable()
	if t == nil {
		tbl.RawSetString("valid", lua.LFalse)
		tbl.RawSetString("exists", lua.LFalse)
		L.Push(tbl)
		return 1
	}
	r := t.Rect()
	c := r.Center()
	tbl.RawSetString("title", lua.LString(t.Title()))
	tbl.RawSetString("left", lua.LNumber(r.Left))
	tbl.RawSetString("top", lua.LNumber(r.Top))
	tbl.RawSetString("right", lua.LNumber(r.Right))
	tbl.RawSetString("bottom", lua.LNumber(r.Bottom))
	tbl.RawSetString("width", lua.LNumber(r.Width()))
	tbl.RawSetString("height", lua.LNumber(r.Height()))
	tbl.RawSetString("cx", lua.LNumber(c.X))
	tbl.RawSetString("cy", lua.LNumber(c.Y))
	tbl.RawSetString("valid", lua.LBool(t.IsValid()))
	tbl.RawSetString("exists", lua.LBool(t.Exists()))
	L.Push(tbl)
	return 1
}
