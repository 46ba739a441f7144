package tour

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/sghaida/tour/compute"
	"github.com/sghaida/tour/seq"
	"github.com/sghaida/tour/taxonomy"
	"github.com/sghaida/tour/wrap"
)

// Section IDs of the built-in tour.
const (
	SectionTaxonomy    SectionID = "taxonomy"
	SectionWrapping    SectionID = "wrapping"
	SectionRecursion   SectionID = "recursion"
	SectionErrors      SectionID = "errors"
	SectionCollections SectionID = "collections"
	SectionFileIO      SectionID = "fileio"
)

// DefaultRegistry returns the built-in sections in their canonical order.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.MustRegister(Section{ID: SectionTaxonomy, Title: "Object Model & Polymorphism", Run: runTaxonomy})
	r.MustRegister(Section{ID: SectionWrapping, Title: "Behavior Wrapping", Run: runWrapping})
	r.MustRegister(Section{ID: SectionRecursion, Title: "Recursion", Run: runRecursion})
	r.MustRegister(Section{ID: SectionErrors, Title: "Error Handling", Run: runErrors})
	r.MustRegister(Section{ID: SectionCollections, Title: "Collection Helpers", Run: runCollections})
	r.MustRegister(Section{ID: SectionFileIO, Title: "File I/O", Run: runFileIO})
	return r
}

func runTaxonomy(ctx *Context) error {
	generic, err := taxonomy.NewGeneric("Generic", "Creature", taxonomy.WithLogger(ctx.Log))
	if err != nil {
		return err
	}
	dog, err := taxonomy.NewDog("Buddy", "Golden Retriever", taxonomy.WithLogger(ctx.Log))
	if err != nil {
		return err
	}

	fmt.Fprintf(ctx.Out, "generic animal's species: %s\n", generic.Species())
	fmt.Fprintf(ctx.Out, "dog's species: %s\n", dog.Species())
	fmt.Fprintf(ctx.Out, "dog's breed: %s\n", dog.Breed())

	fmt.Fprintf(ctx.Out, "generic animal says: %s\n", generic.Speak())
	fmt.Fprintf(ctx.Out, "dog says: %s\n", dog.Speak())
	fmt.Fprintln(ctx.Out, dog.Fetch())

	fmt.Fprintf(ctx.Out, "generic animal object: %s\n", generic)
	fmt.Fprintf(ctx.Out, "dog object: %s\n", dog)

	fmt.Fprintf(ctx.Out, "is an animal a living thing? %t\n", taxonomy.IsLivingThing())
	fmt.Fprintf(ctx.Out, "is this dog a living thing? %t\n", dog.IsLivingThing())

	fmt.Fprintf(ctx.Out, "generic classification: %s\n", generic.Classification())
	fmt.Fprintf(ctx.Out, "dog classification: %s\n", dog.Classification())
	return nil
}

func runWrapping(ctx *Context) error {
	hooks := wrap.Hooks{
		Before: func() { fmt.Fprintln(ctx.Out, "something happens before the call") },
		After:  func() { fmt.Fprintln(ctx.Out, "something happens after the call") },
	}

	greet := wrap.Func1(compute.Greet, hooks)
	fmt.Fprintf(ctx.Out, "wrapped greet returned: %s\n", greet("Wrappers"))

	describe := wrap.Variadic(func(args ...any) any {
		return fmt.Sprintf("received %d arguments", len(args))
	}, hooks)
	fmt.Fprintf(ctx.Out, "wrapped variadic returned: %v\n", describe(1, "apple", 3.14))
	return nil
}

func runRecursion(ctx *Context) error {
	result, err := compute.Factorial(5)
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.Out, "factorial of 5: %d\n", result)

	if _, err := compute.Factorial(-1); err != nil {
		fmt.Fprintf(ctx.Out, "factorial of -1 rejected: %v\n", err)
	}
	return nil
}

// runErrors demonstrates the error taxonomy: most specific kind first, then a
// catch-all, with cleanup that runs regardless of the outcome and a
// success-only branch when nothing failed.
func runErrors(ctx *Context) error {
	defer fmt.Fprintln(ctx.Out, "cleanup always runs")

	inspect := func(input string) {
		n, err := compute.ParseQuantity(input)
		if err != nil {
			var parse compute.ParseError
			switch {
			case errors.As(err, &parse):
				fmt.Fprintf(ctx.Out, "error: invalid value for conversion: %q\n", parse.Input)
			default:
				fmt.Fprintf(ctx.Out, "an unexpected error occurred: %v\n", err)
			}
			return
		}
		// Success-only branch.
		fmt.Fprintf(ctx.Out, "operation successful, result: %d\n", n)
	}

	inspect("42")
	inspect("abc")

	group, err := compute.ClassifyAge(25)
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.Out, "age 25 classified as: %s\n", group)

	if _, err := compute.ClassifyAge(-5); err != nil {
		fmt.Fprintf(ctx.Out, "caught expected error: %v\n", err)
	}
	return nil
}

func runCollections(ctx *Context) error {
	nums := []int{1, 2, 3, 4, 5, 6}

	fmt.Fprintf(ctx.Out, "numbers: %v\n", nums)
	fmt.Fprintf(ctx.Out, "squares: %v\n", seq.Map(nums, func(n int) int { return n * n }))
	fmt.Fprintf(ctx.Out, "evens: %v\n", seq.Filter(nums, func(n int) bool { return n%2 == 0 }))
	fmt.Fprintf(ctx.Out, "sum: %d\n", seq.Reduce(nums, 0, func(acc, n int) int { return acc + n }))
	fmt.Fprintf(ctx.Out, "unique of [1 2 2 3 3 3]: %v\n", seq.Unique([]int{1, 2, 2, 3, 3, 3}))

	type person struct {
		Name string
		Age  int
	}
	people := []person{
		{Name: "Charlie", Age: 35},
		{Name: "Alice", Age: 30},
		{Name: "Bob", Age: 40},
	}
	byAge := seq.SortBy(people, func(p person) int { return p.Age })
	fmt.Fprintf(ctx.Out, "people sorted by age: %v\n",
		seq.Map(byAge, func(p person) string { return p.Name }))

	fmt.Fprint(ctx.Out, "squares, generated lazily:")
	for sq := range seq.Squares(nums) {
		fmt.Fprintf(ctx.Out, " %d", sq)
	}
	fmt.Fprintln(ctx.Out)
	return nil
}

func runFileIO(ctx *Context) error {
	path := ctx.Cfg.SampleFile

	lines := []string{
		"This is the first line.",
		"This is the second line.",
		"File handling is important.",
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(f, line); err != nil {
			_ = f.Close()
			return err
		}
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(ctx.Out, "successfully wrote to %s\n", path)

	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	fmt.Fprintf(ctx.Out, "reading from %s:\n", path)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		fmt.Fprintf(ctx.Out, "  - %s\n", scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	if ctx.Cfg.KeepSample {
		fmt.Fprintf(ctx.Out, "(keeping %s for inspection)\n", path)
		return nil
	}
	if err := os.Remove(path); err != nil {
		return err
	}
	fmt.Fprintf(ctx.Out, "removed %s\n", path)
	return nil
}
