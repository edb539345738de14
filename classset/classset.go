package classset

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/veloxlabs/dexmodel/descriptor"
	"github.com/veloxlabs/dexmodel/dex"
	"github.com/veloxlabs/dexmodel/errors"
	"github.com/veloxlabs/dexmodel/hierarchy"
)

// File is the on-disk class-set document.
type File struct {
	Classes []Entry `json:"classes"`
}

// Entry describes one class.
type Entry struct {
	Descriptor     string   `json:"descriptor"`
	Super          string   `json:"super,omitempty"`
	Interfaces     []string `json:"interfaces,omitempty"`
	Access         []string `json:"access,omitempty"`
	VirtualMethods []Member `json:"virtual_methods,omitempty"`
	DirectMethods  []Member `json:"direct_methods,omitempty"`
	InstanceFields []Member `json:"instance_fields,omitempty"`
}

// Member describes one method or field. Type is only meaningful for fields.
type Member struct {
	Name   string   `json:"name"`
	Type   string   `json:"type,omitempty"`
	Access []string `json:"access,omitempty"`
}

var accessNames = map[string]dex.AccessFlags{
	"public":      dex.AccPublic,
	"private":     dex.AccPrivate,
	"protected":   dex.AccProtected,
	"static":      dex.AccStatic,
	"final":       dex.AccFinal,
	"volatile":    dex.AccVolatile,
	"transient":   dex.AccTransient,
	"native":      dex.AccNative,
	"interface":   dex.AccInterface,
	"abstract":    dex.AccAbstract,
	"synthetic":   dex.AccSynthetic,
	"annotation":  dex.AccAnnotation,
	"enum":        dex.AccEnum,
	"constructor": dex.AccConstructor,
}

// Load decodes a class-set document and interns every descriptor through
// pool. Entries that fail validation are skipped; their errors are
// aggregated and returned alongside the classes that did load, so callers
// can choose between strict and best-effort handling.
func Load(r io.Reader, pool *descriptor.Pool) ([]*dex.Class, error) {
	var doc File
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.PhaseLoad, errors.KindInvalidData, err, "decode class set")
	}

	var (
		classes []*dex.Class
		errs    error
	)
	for i, entry := range doc.Classes {
		cls, err := buildClass(entry, i, pool)
		if err != nil {
			Logger().Warn("skipping class entry",
				zap.Int("index", i),
				zap.String("descriptor", entry.Descriptor),
				zap.Error(err))
			errs = multierr.Append(errs, err)
			continue
		}
		classes = append(classes, cls)
	}

	Logger().Info("loaded class set",
		zap.Int("classes", len(classes)),
		zap.Int("rejected", len(doc.Classes)-len(classes)))
	return classes, errs
}

// LoadFile is Load over the named file.
func LoadFile(path string, pool *descriptor.Pool) ([]*dex.Class, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseLoad, errors.KindNotFound, err, "open class set")
	}
	defer f.Close()
	return Load(f, pool)
}

// Populate registers every class into idx. A loaded document is expected
// to carry each descriptor once, so duplicates are reported rather than
// silently dropped; the first occurrence stays registered.
func Populate(idx *hierarchy.Index, classes []*dex.Class) error {
	var errs error
	for _, cls := range classes {
		if err := idx.RegisterStrict(cls); err != nil {
			Logger().Warn("duplicate class in set",
				zap.String("descriptor", cls.Type.Name()))
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}

func buildClass(entry Entry, index int, pool *descriptor.Pool) (*dex.Class, error) {
	at := func(parts ...string) []string {
		return append([]string{"classes", fmt.Sprint(index)}, parts...)
	}

	if entry.Descriptor == "" {
		return nil, errors.FieldMissing(errors.PhaseLoad, at(), "descriptor")
	}
	t, err := internObject(entry.Descriptor, pool, at("descriptor"))
	if err != nil {
		return nil, err
	}

	cls := &dex.Class{Type: t}

	if entry.Super != "" {
		super, err := internObject(entry.Super, pool, at("super"))
		if err != nil {
			return nil, err
		}
		cls.SuperType = super
	}

	for j, name := range entry.Interfaces {
		intf, err := internObject(name, pool, at("interfaces", fmt.Sprint(j)))
		if err != nil {
			return nil, err
		}
		cls.Interfaces = append(cls.Interfaces, intf)
	}

	cls.Access, err = parseAccess(entry.Access, at("access"))
	if err != nil {
		return nil, err
	}

	for j, m := range entry.VirtualMethods {
		method, err := buildMethod(m, at("virtual_methods", fmt.Sprint(j)))
		if err != nil {
			return nil, err
		}
		cls.VirtualMethods = append(cls.VirtualMethods, method)
	}
	for j, m := range entry.DirectMethods {
		method, err := buildMethod(m, at("direct_methods", fmt.Sprint(j)))
		if err != nil {
			return nil, err
		}
		cls.DirectMethods = append(cls.DirectMethods, method)
	}

	for j, f := range entry.InstanceFields {
		field, err := buildField(f, pool, at("instance_fields", fmt.Sprint(j)))
		if err != nil {
			return nil, err
		}
		cls.InstanceFields = append(cls.InstanceFields, field)
	}

	return cls, nil
}

// internObject interns name and requires it to denote a class type.
func internObject(name string, pool *descriptor.Pool, path []string) (*descriptor.Type, error) {
	t, err := pool.Intern(name)
	if err != nil {
		return nil, errors.New(errors.PhaseLoad, errors.KindInvalidDescriptor).
			Path(path...).
			Descriptor(name).
			Cause(err).
			Detail("invalid descriptor").
			Build()
	}
	if t.Kind() != descriptor.KindObject {
		return nil, errors.New(errors.PhaseLoad, errors.KindInvalidData).
			Path(path...).
			Descriptor(name).
			Detail("expected a class descriptor, got %s", t.Kind()).
			Build()
	}
	return t, nil
}

func buildMethod(m Member, path []string) (*dex.Method, error) {
	if m.Name == "" {
		return nil, errors.FieldMissing(errors.PhaseLoad, path, "name")
	}
	access, err := parseAccess(m.Access, path)
	if err != nil {
		return nil, err
	}
	return &dex.Method{Name: m.Name, Access: access}, nil
}

func buildField(f Member, pool *descriptor.Pool, path []string) (*dex.Field, error) {
	if f.Name == "" {
		return nil, errors.FieldMissing(errors.PhaseLoad, path, "name")
	}
	if f.Type == "" {
		return nil, errors.FieldMissing(errors.PhaseLoad, path, "type")
	}
	t, err := pool.Intern(f.Type)
	if err != nil {
		return nil, errors.New(errors.PhaseLoad, errors.KindInvalidDescriptor).
			Path(path...).
			Descriptor(f.Type).
			Cause(err).
			Detail("invalid field type").
			Build()
	}
	if t.Kind() == descriptor.KindVoid {
		return nil, errors.InvalidData(errors.PhaseLoad, path, "field of type void")
	}
	access, err := parseAccess(f.Access, path)
	if err != nil {
		return nil, err
	}
	return &dex.Field{Name: f.Name, Type: t, Access: access}, nil
}

func parseAccess(names []string, path []string) (dex.AccessFlags, error) {
	var flags dex.AccessFlags
	for _, name := range names {
		f, ok := accessNames[name]
		if !ok {
			return 0, errors.InvalidAccess(path, name)
		}
		flags |= f
	}
	return flags, nil
}
