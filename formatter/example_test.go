package formatter_test

import (
	"fmt"
	"strings"
	"time"

	"github.com/philipp01105/buildlog/core"
	"github.com/philipp01105/buildlog/formatter"
)

func ExampleNewTextFormatter() {
	f := formatter.NewTextFormatter(formatter.Config{ShowLogName: true, ShortLogName: true})

	entry := &core.Entry{
		Time:    time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
		Level:   core.WarnLevel,
		Logger:  "org.example.Compiler",
		Message: "deprecated API",
	}

	out, _ := f.Format(entry)
	fmt.Print(string(out))
	// Output:
	// [WARNING] Compiler - deprecated API
}

func ExampleNewJSONFormatter() {
	f := formatter.NewJSONFormatter(formatter.Config{})

	entry := &core.Entry{
		Time:    time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
		Level:   core.InfoLevel,
		Logger:  "build",
		Message: "module built",
		Fields: []core.Field{
			{Key: "modules", Int64: 3, Type: core.Int64Type},
		},
	}

	out, _ := f.Format(entry)
	fmt.Println(strings.Contains(string(out), `"level":"INFO"`))
	fmt.Println(strings.Contains(string(out), `"logger":"build"`))
	// Output:
	// true
	// true
}
