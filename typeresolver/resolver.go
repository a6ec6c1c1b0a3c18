// Package typeresolver implements the type-identifier grammar used by tool
// callers that build pin types from user- or LLM-supplied strings.
//
// Resolution order, first match wins:
//  1. fully-qualified asset path, classified by the entity's own kind
//  2. a generic category keyword (object, class, struct, enum, interface)
//     with a mandatory sub-type name scoped to that kind
//  3. the static tables: primitive scalars, math structs, special categories
//  4. retry as a bare object/class name
//
// Container wrapping is applied after scalar resolution; map keys resolve
// recursively with the container forced to none and are validated against
// the hashable-key allow list.
package typeresolver

import (
	"strings"

	"github.com/flashpoint493/NodeToCode-sub000/errors"
	"github.com/flashpoint493/NodeToCode-sub000/ir"
)

// Resolver resolves type identifier tuples into TypeDescriptors.
type Resolver struct {
	catalog Catalog
}

// New creates a Resolver backed by the given catalog.
func New(catalog Catalog) *Resolver {
	return &Resolver{catalog: catalog}
}

// Resolve is a pure function of its inputs: identical tuples always yield
// identical descriptors. All failures are caller-correctable input errors,
// returned with the offending identifier in the message and never retried.
func (r *Resolver) Resolve(typeID, subTypeID, container, keyTypeID string, isRef, isConst bool) (ir.TypeDescriptor, error) {
	desc, err := r.resolveScalar(typeID, subTypeID)
	if err != nil {
		return ir.TypeDescriptor{}, err
	}

	kind, err := ir.ParseContainerKind(container)
	if err != nil {
		return ir.TypeDescriptor{}, err
	}
	desc.Container = kind

	if kind == ir.ContainerMap {
		if keyTypeID == "" {
			return ir.TypeDescriptor{}, errors.Wrap(errors.ErrMissingKeyType, "map container requires a key type")
		}
		// Key types cannot themselves be containers.
		key, err := r.Resolve(keyTypeID, "", "none", "", false, false)
		if err != nil {
			return ir.TypeDescriptor{}, errors.Wrapf(err, "map key type %q", keyTypeID)
		}
		if !validMapKey(key.Category) {
			return ir.TypeDescriptor{}, errors.Wrapf(errors.ErrInvalidMapKey, "key type %q", keyTypeID)
		}
		desc.KeyType = &key
	}

	// Reference and const are orthogonal flags; they never affect resolution.
	desc.IsReference = isRef
	desc.IsConst = isConst
	return desc, nil
}

func (r *Resolver) resolveScalar(typeID, subTypeID string) (ir.TypeDescriptor, error) {
	// 1. Fully-qualified paths classify by the entity's own kind.
	if isFullPath(typeID) {
		entry, ok := r.catalog.FindByPath(typeID)
		if !ok {
			return ir.TypeDescriptor{}, errors.Wrapf(errors.ErrNotFound, "no type at path %q", typeID)
		}
		return descriptorFor(entry, ""), nil
	}

	// 2. Generic category keywords require a sub-type name.
	lower := strings.ToLower(typeID)
	if category, isGeneric := genericCategories[lower]; isGeneric {
		if subTypeID == "" {
			return ir.TypeDescriptor{}, errors.Wrapf(errors.ErrMissingSubType, "type %q requires a sub-type identifier", typeID)
		}
		return r.resolveNamed(lower, category, subTypeID)
	}

	// 3. Static tables, in order: primitives, math structs, specials.
	if category, ok := primitiveTypes[lower]; ok {
		return ir.TypeDescriptor{Category: category, Container: ir.ContainerNone}, nil
	}
	if entry, ok := mathTypes[lower]; ok {
		return descriptorFor(entry, ""), nil
	}
	if category, ok := specialTypes[lower]; ok {
		return ir.TypeDescriptor{Category: category, Container: ir.ContainerNone}, nil
	}

	// 4. A bare class or struct name passed as the primary identifier:
	// retry as an object sub-type.
	if desc, err := r.resolveNamed("object", ir.CategoryObject, typeID); err == nil {
		return desc, nil
	}
	return ir.TypeDescriptor{}, errors.Wrapf(errors.ErrUnknownType, "type %q", typeID)
}

func (r *Resolver) resolveNamed(category string, pinCategory ir.PinCategory, name string) (ir.TypeDescriptor, error) {
	kind := catalogKinds[category]

	// Sub-types may themselves be given as full paths.
	if isFullPath(name) {
		entry, ok := r.catalog.FindByPath(name)
		if !ok || entry.Kind != kind {
			return ir.TypeDescriptor{}, errors.Wrapf(errors.ErrNotFound, "could not resolve %s type %q", category, name)
		}
		return descriptorFor(entry, pinCategory), nil
	}

	entry, ok := r.catalog.FindByName(name, kind)
	if !ok {
		return ir.TypeDescriptor{}, errors.Wrapf(errors.ErrNotFound, "could not resolve %s type %q", category, name)
	}
	return descriptorFor(entry, pinCategory), nil
}

// descriptorFor builds a descriptor from a catalog entry. An explicit
// override keeps the caller's category (object vs class share KindClass
// entries); otherwise the entry's own kind decides.
func descriptorFor(entry Entry, override ir.PinCategory) ir.TypeDescriptor {
	category := override
	if category == "" {
		switch entry.Kind {
		case KindStruct:
			category = ir.CategoryStruct
		case KindEnum:
			category = ir.CategoryEnum
		case KindInterface:
			category = ir.CategoryInterface
		default:
			category = ir.CategoryObject
		}
	}
	return ir.TypeDescriptor{
		Category:  category,
		SubType:   entry.Name,
		Path:      entry.Path,
		Container: ir.ContainerNone,
	}
}

// genericCategories are the keywords of resolution step 2.
var genericCategories = map[string]ir.PinCategory{
	"object":    ir.CategoryObject,
	"class":     ir.CategoryClass,
	"struct":    ir.CategoryStruct,
	"enum":      ir.CategoryEnum,
	"interface": ir.CategoryInterface,
}

// catalogKinds maps generic category keywords to the catalog kind searched.
var catalogKinds = map[string]EntryKind{
	"object":    KindClass,
	"class":     KindClass,
	"struct":    KindStruct,
	"enum":      KindEnum,
	"interface": KindInterface,
}

// primitiveTypes is the scalar table, including the engine-style aliases.
var primitiveTypes = map[string]ir.PinCategory{
	"bool":    ir.CategoryBoolean,
	"boolean": ir.CategoryBoolean,
	"byte":    ir.CategoryByte,
	"uint8":   ir.CategoryByte,
	"int":     ir.CategoryInt32,
	"int32":   ir.CategoryInt32,
	"int64":   ir.CategoryInt64,
	"float":   ir.CategoryFloat,
	"double":  ir.CategoryDouble,
	"string":  ir.CategoryString,
	"fstring": ir.CategoryString,
	"text":    ir.CategoryText,
	"ftext":   ir.CategoryText,
	"name":    ir.CategoryName,
	"fname":   ir.CategoryName,
}

// mathTypes maps math keywords to their canonical struct entries.
var mathTypes = map[string]Entry{
	"vector":       {Name: "Vector", Path: "/Script/CoreUObject.Vector", Kind: KindStruct},
	"vector3":      {Name: "Vector", Path: "/Script/CoreUObject.Vector", Kind: KindStruct},
	"fvector":      {Name: "Vector", Path: "/Script/CoreUObject.Vector", Kind: KindStruct},
	"vector2d":     {Name: "Vector2D", Path: "/Script/CoreUObject.Vector2D", Kind: KindStruct},
	"fvector2d":    {Name: "Vector2D", Path: "/Script/CoreUObject.Vector2D", Kind: KindStruct},
	"vector4":      {Name: "Vector4", Path: "/Script/CoreUObject.Vector4", Kind: KindStruct},
	"fvector4":     {Name: "Vector4", Path: "/Script/CoreUObject.Vector4", Kind: KindStruct},
	"rotator":      {Name: "Rotator", Path: "/Script/CoreUObject.Rotator", Kind: KindStruct},
	"frotator":     {Name: "Rotator", Path: "/Script/CoreUObject.Rotator", Kind: KindStruct},
	"transform":    {Name: "Transform", Path: "/Script/CoreUObject.Transform", Kind: KindStruct},
	"ftransform":   {Name: "Transform", Path: "/Script/CoreUObject.Transform", Kind: KindStruct},
	"quat":         {Name: "Quat", Path: "/Script/CoreUObject.Quat", Kind: KindStruct},
	"fquat":        {Name: "Quat", Path: "/Script/CoreUObject.Quat", Kind: KindStruct},
	"color":        {Name: "Color", Path: "/Script/CoreUObject.Color", Kind: KindStruct},
	"fcolor":       {Name: "Color", Path: "/Script/CoreUObject.Color", Kind: KindStruct},
	"linearcolor":  {Name: "LinearColor", Path: "/Script/CoreUObject.LinearColor", Kind: KindStruct},
	"flinearcolor": {Name: "LinearColor", Path: "/Script/CoreUObject.LinearColor", Kind: KindStruct},
}

// specialTypes covers the remaining categories.
var specialTypes = map[string]ir.PinCategory{
	"wildcard":           ir.CategoryWildcard,
	"delegate":           ir.CategoryDelegate,
	"multicastdelegate":  ir.CategoryMulticastDelegate,
	"multicast_delegate": ir.CategoryMulticastDelegate,
	"multicast-delegate": ir.CategoryMulticastDelegate,
	"softobject":         ir.CategorySoftObject,
	"soft_object":        ir.CategorySoftObject,
	"soft-object":        ir.CategorySoftObject,
	"softclass":          ir.CategorySoftClass,
	"soft_class":         ir.CategorySoftClass,
	"soft-class":         ir.CategorySoftClass,
}

// validMapKey implements the conservative key policy: only types with a
// deterministic hash/equality contract in the target runtime are accepted.
// All struct keys are rejected uniformly; any relaxation is a policy change.
func validMapKey(category ir.PinCategory) bool {
	switch category {
	case ir.CategoryByte, ir.CategoryInt32, ir.CategoryInt64,
		ir.CategoryFloat, ir.CategoryDouble,
		ir.CategoryName, ir.CategoryString,
		ir.CategoryObject, ir.CategoryClass,
		ir.CategorySoftObject, ir.CategorySoftClass,
		ir.CategoryEnum:
		return true
	default:
		return false
	}
}
