package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary values into random readable names. It flagrantly
// leaks memory but generates the names lazily, so it's not a problem unless
// you're actually using it. Triangle handles are plain integers that get
// reused across calls, and "QuietOtter" is easier to follow through a page of
// flip traces than "417".

var (
	memoMu sync.Mutex
	memo   = make(map[interface{}]string)
)

func init() {
	// Since the names are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

// Name returns the readable name for obj, creating one on first use. obj must
// be comparable.
func Name(obj interface{}) string {
	if isNil(obj) {
		return "Ø"
	}

	memoMu.Lock()
	defer memoMu.Unlock()
	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", title(petname.Adjective()), title(petname.Name()))
	memo[obj] = r
	return r
}

func isNil(obj interface{}) bool {
	if obj == nil {
		return true
	}
	switch v := reflect.ValueOf(obj); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

func title(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
