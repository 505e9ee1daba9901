package dbg

import (
	"fmt"
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// Name converts arbitrary values (in practice, scene node pointers) into
// random readable names. Scene dumps full of hex pointers are hard to tell
// apart by eye; "BraveMarmot" is not. The memo leaks, but names are
// generated lazily, so this costs nothing unless a dump is requested.

var memo map[interface{}]string

func init() {
	memo = make(map[interface{}]string)
	// Names are handed out in demand order, so make them nondeterministic
	// as a reminder that they don't refer to the same node between runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if obj == nil || (reflect.ValueOf(obj).Kind() == reflect.Ptr && reflect.ValueOf(obj).IsNil()) {
		return "Ø"
	}

	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}
