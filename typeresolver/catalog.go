package typeresolver

import (
	"strings"
)

// EntryKind classifies a catalog entry.
type EntryKind string

const (
	KindStruct    EntryKind = "struct"
	KindClass     EntryKind = "class"
	KindEnum      EntryKind = "enum"
	KindInterface EntryKind = "interface"
)

// Entry is one named type known to the catalog.
type Entry struct {
	Name string
	Path string
	Kind EntryKind
}

// Catalog answers named and path lookups for struct/class/enum/interface
// types. The original system resolves these against the engine's live object
// registry; a service process resolves against a registered catalog instead.
type Catalog interface {
	// FindByPath resolves a fully-qualified asset path.
	FindByPath(path string) (Entry, bool)
	// FindByName resolves a bare type name scoped to one kind.
	// Matching is case-insensitive.
	FindByName(name string, kind EntryKind) (Entry, bool)
}

// StaticCatalog is an in-memory Catalog seeded with the common engine types
// and extensible via Register. Not safe for concurrent mutation; register
// everything up front.
type StaticCatalog struct {
	byPath map[string]Entry
	byName map[nameKey]Entry
}

type nameKey struct {
	name string
	kind EntryKind
}

// NewStaticCatalog returns a catalog preloaded with the engine core types.
func NewStaticCatalog() *StaticCatalog {
	c := &StaticCatalog{
		byPath: make(map[string]Entry),
		byName: make(map[nameKey]Entry),
	}
	for _, e := range builtinEntries {
		c.Register(e)
	}
	return c
}

// Register adds an entry, indexing it by path and lowercase name.
func (c *StaticCatalog) Register(e Entry) {
	if e.Path != "" {
		c.byPath[e.Path] = e
	}
	c.byName[nameKey{strings.ToLower(e.Name), e.Kind}] = e
}

func (c *StaticCatalog) FindByPath(path string) (Entry, bool) {
	e, ok := c.byPath[path]
	return e, ok
}

func (c *StaticCatalog) FindByName(name string, kind EntryKind) (Entry, bool) {
	e, ok := c.byName[nameKey{strings.ToLower(name), kind}]
	return e, ok
}

// builtinEntries covers the engine types blueprint graphs reference most.
var builtinEntries = []Entry{
	// Classes
	{Name: "Object", Path: "/Script/CoreUObject.Object", Kind: KindClass},
	{Name: "Actor", Path: "/Script/Engine.Actor", Kind: KindClass},
	{Name: "Pawn", Path: "/Script/Engine.Pawn", Kind: KindClass},
	{Name: "Character", Path: "/Script/Engine.Character", Kind: KindClass},
	{Name: "ActorComponent", Path: "/Script/Engine.ActorComponent", Kind: KindClass},
	{Name: "SceneComponent", Path: "/Script/Engine.SceneComponent", Kind: KindClass},
	{Name: "StaticMeshComponent", Path: "/Script/Engine.StaticMeshComponent", Kind: KindClass},
	{Name: "PlayerController", Path: "/Script/Engine.PlayerController", Kind: KindClass},
	{Name: "GameModeBase", Path: "/Script/Engine.GameModeBase", Kind: KindClass},
	{Name: "World", Path: "/Script/Engine.World", Kind: KindClass},

	// Structs
	{Name: "Vector", Path: "/Script/CoreUObject.Vector", Kind: KindStruct},
	{Name: "Vector2D", Path: "/Script/CoreUObject.Vector2D", Kind: KindStruct},
	{Name: "Vector4", Path: "/Script/CoreUObject.Vector4", Kind: KindStruct},
	{Name: "Rotator", Path: "/Script/CoreUObject.Rotator", Kind: KindStruct},
	{Name: "Transform", Path: "/Script/CoreUObject.Transform", Kind: KindStruct},
	{Name: "Quat", Path: "/Script/CoreUObject.Quat", Kind: KindStruct},
	{Name: "Color", Path: "/Script/CoreUObject.Color", Kind: KindStruct},
	{Name: "LinearColor", Path: "/Script/CoreUObject.LinearColor", Kind: KindStruct},
	{Name: "HitResult", Path: "/Script/Engine.HitResult", Kind: KindStruct},

	// Enums
	{Name: "ECollisionChannel", Path: "/Script/Engine.ECollisionChannel", Kind: KindEnum},
	{Name: "EAttachmentRule", Path: "/Script/Engine.EAttachmentRule", Kind: KindEnum},

	// Interfaces
	{Name: "Interface", Path: "/Script/CoreUObject.Interface", Kind: KindInterface},
}

// pathPrefixes are the asset/module roots recognized as fully-qualified paths.
var pathPrefixes = []string{"/Script/", "/Game/", "/Plugin/"}

// isFullPath reports whether the identifier is a fully-qualified asset path.
func isFullPath(identifier string) bool {
	for _, prefix := range pathPrefixes {
		if strings.HasPrefix(identifier, prefix) {
			return true
		}
	}
	return false
}
