// Package taxonomy models a tiny animal taxonomy with two conforming variants.
//
// It demonstrates capability-style polymorphism without a runtime type
// hierarchy: Animal is the capability (speak + classify + describe), and each
// variant (Generic, Dog) picks its behavior at construction time.
//
// Design goals:
//   - True encapsulation: the species label is a private field readable only
//     through the Species accessor, set once at construction and never mutated.
//   - Observable construction: every successful construction emits a structured
//     log line through an injected logger (no-op by default).
//   - Safe defaults: missing required fields are detected early and reported
//     via typed errors.
package taxonomy

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Classification labels shared by all instances of a kind.
//
// Variants resolve their own label; Generic reports ClassificationUnknown,
// Dog reports ClassificationMammal.
const (
	ClassificationUnknown = "Unknown"
	ClassificationMammal  = "Mammal"
)

// SpeciesDog is the fixed species of every Dog. Callers never supply it.
const SpeciesDog = "Dog"

// MissingFieldError is returned when a constructor is called without a
// required field.
type MissingFieldError struct{ Field string }

// Error implements the error interface.
func (e MissingFieldError) Error() string {
	// Example: taxonomy: missing required field "name"
	return "taxonomy: missing required field " + strconv.Quote(e.Field)
}

// Animal is the capability shared by every variant in the taxonomy.
//
// Implementations are immutable after construction apart from their opaque
// identity.
type Animal interface {
	fmt.Stringer

	// ID returns the opaque identity assigned at construction.
	ID() string

	// Name returns the display name supplied at construction.
	Name() string

	// Species returns the species label. The label itself is private to the
	// implementation; this accessor is the only way to read it.
	Species() string

	// Speak returns the variant's fixed utterance.
	Speak() string

	// Classification returns the classification label of the variant.
	Classification() string

	// IsLivingThing always reports true, for any variant.
	IsLivingThing() bool
}

// IsLivingThing is the package-level counterpart of Animal.IsLivingThing,
// usable without an instance. It is a pure function of no state.
func IsLivingThing() bool { return true }

// Option customises construction of any variant.
type Option func(*base)

// WithLogger injects the logger used for creation notifications.
//
// The default is a no-op logger, so library users pay nothing unless they
// opt in.
func WithLogger(log *zap.Logger) Option {
	return func(b *base) {
		if log != nil {
			b.log = log
		}
	}
}

// base carries the state common to all variants.
//
// species is intentionally unexported: external code can only read it through
// the Species accessor.
type base struct {
	id      string
	name    string
	species string
	log     *zap.Logger
}

func newBase(name, species string, opts ...Option) (base, error) {
	if name == "" {
		return base{}, MissingFieldError{Field: "name"}
	}
	if species == "" {
		return base{}, MissingFieldError{Field: "species"}
	}

	b := base{
		id:      uuid.NewString(),
		name:    name,
		species: species,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&b)
		}
	}

	b.log.Info("animal created",
		zap.String("id", b.id),
		zap.String("name", b.name),
		zap.String("species", b.species),
	)
	return b, nil
}

// ID returns the opaque identity assigned at construction.
func (b *base) ID() string { return b.id }

// Name returns the display name supplied at construction.
func (b *base) Name() string { return b.name }

// Species returns the species label supplied at construction.
func (b *base) Species() string { return b.species }

// IsLivingThing always reports true.
func (b *base) IsLivingThing() bool { return true }

// String renders "<name> the <species>".
func (b *base) String() string { return b.name + " the " + b.species }

// Generic is the base variant: caller-supplied species, generic behavior.
type Generic struct {
	base
}

// NewGeneric constructs a Generic animal with the given name and species.
//
// It returns a MissingFieldError if either field is empty, and emits a
// creation notification on success.
func NewGeneric(name, species string, opts ...Option) (*Generic, error) {
	b, err := newBase(name, species, opts...)
	if err != nil {
		return nil, err
	}
	return &Generic{base: b}, nil
}

// Speak returns the generic utterance.
func (g *Generic) Speak() string { return "Some generic animal sound" }

// Classification returns ClassificationUnknown.
func (g *Generic) Classification() string { return ClassificationUnknown }

// Dog is the derived variant. Its species is fixed to SpeciesDog and it
// carries an additional breed label.
type Dog struct {
	base
	breed string
}

// NewDog constructs a Dog with the given name and breed.
//
// The species is always SpeciesDog; callers cannot override it. It returns a
// MissingFieldError if name or breed is empty, and emits two creation
// notifications on success (one for the animal, one for the dog specifics).
func NewDog(name, breed string, opts ...Option) (*Dog, error) {
	if breed == "" {
		return nil, MissingFieldError{Field: "breed"}
	}

	b, err := newBase(name, SpeciesDog, opts...)
	if err != nil {
		return nil, err
	}

	d := &Dog{base: b, breed: breed}
	d.log.Info("dog created",
		zap.String("id", d.id),
		zap.String("name", d.name),
		zap.String("breed", d.breed),
	)
	return d, nil
}

// Speak returns the dog's utterance, overriding the generic one.
func (d *Dog) Speak() string { return "Woof! Woof!" }

// Classification returns ClassificationMammal, overriding the default.
func (d *Dog) Classification() string { return ClassificationMammal }

// Breed returns the breed label supplied at construction.
func (d *Dog) Breed() string { return d.breed }

// Fetch returns a dog-specific action description.
func (d *Dog) Fetch() string { return d.name + " is fetching!" }

var (
	_ Animal = (*Generic)(nil)
	_ Animal = (*Dog)(nil)
)
