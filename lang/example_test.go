package lang_test

import (
	"context"
	"fmt"
	"regexp"

	"github.com/ardnew/sift/lang"
)

func ExampleCompile() {
	pred, err := lang.Compile(context.Background(),
		"{ name: @, age: (> 17 && < 66) }",
		lang.WithValues(regexp.MustCompile(`^[A-Z]`)),
	)
	if err != nil {
		fmt.Println(err)

		return
	}

	fmt.Println(pred(map[string]any{"name": "Ada", "age": 36}))
	fmt.Println(pred(map[string]any{"name": "ada", "age": 36}))
	fmt.Println(pred(map[string]any{"name": "Bob", "age": 12}))
	// Output:
	// true
	// false
	// false
}

func ExampleCompileSegments() {
	pred, err := lang.CompileSegments(context.Background(), []lang.Segment{
		lang.Text("!"),
		lang.Embed(lang.Number),
	})
	if err != nil {
		fmt.Println(err)

		return
	}

	fmt.Println(pred("text"))
	fmt.Println(pred(42))
	// Output:
	// true
	// false
}
