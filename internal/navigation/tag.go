package navigation

import (
	"path"
	"reflect"
	"strings"
	"sync"
)

// Identifiable is anything with a stable identity string.
type Identifiable interface {
	UniqueID() string
}

// Tag identifies a container slot. Two containers are the same slot iff
// their tags report the same UniqueID.
type Tag struct {
	id string
}

// NamedTag builds a tag with an explicit id.
func NamedTag(name string) Tag { return Tag{id: name} }

// TagFor derives a tag from the type T. If a non-pointer T implements
// Identifiable its zero value supplies the id; otherwise the id is "pkg.Type".
func TagFor[T any]() Tag {
	t := reflect.TypeOf((*T)(nil)).Elem()
	var zero T
	if v, ok := any(zero).(Identifiable); ok && t.Kind() != reflect.Pointer {
		if id := v.UniqueID(); id != "" {
			return Tag{id: id}
		}
	}
	return Tag{id: TypeName(t)}
}

// TagOf derives a tag from the dynamic type of v.
func TagOf(v any) Tag {
	if v == nil {
		return Tag{}
	}
	if id, ok := v.(Identifiable); ok {
		return Tag{id: id.UniqueID()}
	}
	return Tag{id: TypeName(reflect.TypeOf(v))}
}

func (t Tag) UniqueID() string { return t.id }

// Is reports whether both tags name the same slot. A zero tag names no slot
// and matches nothing, itself included.
func (t Tag) Is(other Tag) bool { return t.id != "" && t.id == other.id }

func (t Tag) IsZero() bool { return t.id == "" }

func (t Tag) String() string { return t.id }

var typeNameCache sync.Map // reflect.Type -> string

// TypeName returns the stable "pkg.Type" name for t, unwrapping pointers
// and dropping generic instantiation arguments.
func TypeName(t reflect.Type) string {
	if t == nil {
		return ""
	}
	if v, ok := typeNameCache.Load(t); ok {
		return v.(string)
	}
	base := t
	for base.Kind() == reflect.Pointer {
		base = base.Elem()
	}
	name := base.Name()
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	if name == "" {
		name = base.String()
	} else if p := base.PkgPath(); p != "" {
		name = path.Base(p) + "." + name
	}
	typeNameCache.Store(t, name)
	return name
}
