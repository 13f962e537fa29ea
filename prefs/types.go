// This file is part of vitainput.
//
// vitainput is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// vitainput is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with vitainput.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/jetsetilly/vitainput/curated"
)

// Value represents the actual Go preference value.
type Value interface{}

// Pref is implemented by every preference type and is the type accepted by
// Disk.Add().
type Pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// Hook is called with the new value of a preference. A pre hook can prevent
// the value from being changed by returning an error.
type Hook func(value Value) error

// Sentinal error patterns.
const (
	CannotConvert = "prefs: cannot convert %T to %s"
	NoPrefsFile   = "prefs: no preferences file (%s)"
	DuplicateKey  = "prefs: duplicate key (%s)"
	InvalidKey    = "prefs: invalid key (%s)"
)

// the storage and hook handling common to all the primitive preference
// types. the zero value of the type is returned by load() if no value has
// been stored
type value[T any] struct {
	v        atomic.Value
	hookPre  Hook
	hookPost Hook
}

func (p *value[T]) load() T {
	if v := p.v.Load(); v != nil {
		return v.(T)
	}
	var z T
	return z
}

func (p *value[T]) store(nv T) error {
	if p.hookPre != nil {
		if err := p.hookPre(nv); err != nil {
			return err
		}
	}

	p.v.Store(nv)

	if p.hookPost != nil {
		if err := p.hookPost(nv); err != nil {
			return err
		}
	}

	return nil
}

// SetHookPre sets the function to be called before the value changes.
func (p *value[T]) SetHookPre(f Hook) {
	p.hookPre = f
}

// SetHookPost sets the function to be called after the value changes.
func (p *value[T]) SetHookPost(f Hook) {
	p.hookPost = f
}

// Bool implements a boolean type in the prefs system. Strings are converted
// to true only if they are "true" (ignoring case).
type Bool struct {
	value[bool]
}

func (p *Bool) String() string {
	return strconv.FormatBool(p.load())
}

// Set new value to Bool type. New value must be of type bool or string.
func (p *Bool) Set(v Value) error {
	switch v := v.(type) {
	case bool:
		return p.store(v)
	case string:
		return p.store(strings.EqualFold(strings.TrimSpace(v), "true"))
	}
	return curated.Errorf(CannotConvert, v, "prefs.Bool")
}

// Get returns the raw pref value.
func (p *Bool) Get() Value {
	return p.load()
}

// Reset sets the boolean value to false.
func (p *Bool) Reset() error {
	return p.Set(false)
}

// Int implements an integer type in the prefs system.
type Int struct {
	value[int]
}

func (p *Int) String() string {
	return strconv.Itoa(p.load())
}

// Set new value to Int type. New value can be an int or string.
func (p *Int) Set(v Value) error {
	switch v := v.(type) {
	case int:
		return p.store(v)
	case int32:
		return p.store(int(v))
	case int64:
		return p.store(int(v))
	case string:
		nv, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return curated.Errorf("prefs: %v", err)
		}
		return p.store(nv)
	}
	return curated.Errorf(CannotConvert, v, "prefs.Int")
}

// Get returns the raw pref value.
func (p *Int) Get() Value {
	return p.load()
}

// Reset sets the int value to zero.
func (p *Int) Reset() error {
	return p.Set(0)
}

// Float implements a floating point type in the prefs system.
type Float struct {
	value[float64]
}

func (p *Float) String() string {
	return fmt.Sprintf("%.3f", p.load())
}

// Set new value to Float type. New value can be a float, an int or a string.
func (p *Float) Set(v Value) error {
	switch v := v.(type) {
	case float64:
		return p.store(v)
	case float32:
		return p.store(float64(v))
	case int:
		return p.store(float64(v))
	case string:
		nv, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return curated.Errorf("prefs: %v", err)
		}
		return p.store(nv)
	}
	return curated.Errorf(CannotConvert, v, "prefs.Float")
}

// Get returns the raw pref value.
func (p *Float) Get() Value {
	return p.load()
}

// Reset sets the float value to zero.
func (p *Float) Reset() error {
	return p.Set(0.0)
}

// String implements a string type in the prefs system.
type String struct {
	value[string]
	maxLen int
}

func (p *String) String() string {
	return p.load()
}

// SetMaxLen sets the maximum length of the string. An existing value that is
// too long is cropped. A value of zero removes the limit.
func (p *String) SetMaxLen(max int) {
	p.maxLen = max
	if s := p.load(); p.maxLen > 0 && len(s) > p.maxLen {
		p.v.Store(s[:p.maxLen])
	}
}

// Set new value to String type. Any type is accepted and converted with the
// %v verb.
func (p *String) Set(v Value) error {
	nv := fmt.Sprintf("%v", v)
	if p.maxLen > 0 && len(nv) > p.maxLen {
		nv = nv[:p.maxLen]
	}
	return p.store(nv)
}

// Get returns the raw pref value.
func (p *String) Get() Value {
	return p.load()
}

// Reset sets the string value to the empty string.
func (p *String) Reset() error {
	return p.Set("")
}

// Generic is a preference whose value is held outside the prefs system. The
// set and get functions convert between the external value and its string
// representation.
type Generic struct {
	crit sync.Mutex
	set  func(string) error
	get  func() string
}

// NewGeneric is the preferred method of initialisation for the Generic type.
func NewGeneric(set func(string) error, get func() string) *Generic {
	return &Generic{
		set: set,
		get: get,
	}
}

func (p *Generic) String() string {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.get()
}

// Set new value to Generic type. The value is converted to a string with the
// %v verb before being passed to the set function.
func (p *Generic) Set(v Value) error {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.set(fmt.Sprintf("%v", v))
}

// Get returns the string representation of the value.
func (p *Generic) Get() Value {
	return p.String()
}

// Reset sets the value to the empty string.
func (p *Generic) Reset() error {
	return p.Set("")
}
