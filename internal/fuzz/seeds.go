package fuzztests

import (
	"os"
	"path/filepath"
	"testing"

	"scooter/internal/testkit"
)

const maxSeedBytes = 64 << 10 // 64 KiB: ограничение для тестового корпуса

var fixedSeeds = []string{
	"",
	"fn main() {}",
	"fn main() -> i32 { return 0; }\n",
	"fn f() { let x: i32 = 1\nlet y: i32 = 2; }", // missing semicolon
	"struct P {} impl P { fn new() -> P { return P::new(); } }",
	"fn main() -> bool { let b: bool = true; return b; }",
	"fn f() { { { { } } } }",
	"fn f(a: i32, b: i32, c: i32) -> i32 { return f(f(a, b, c), -b, c * 2); }",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range fixedSeeds {
		f.Add([]byte(s))
	}
	addGoldenSeeds(f)
}

// addGoldenSeeds adds the sources of every golden case.
func addGoldenSeeds(f *testing.F) {
	files, err := filepath.Glob(filepath.Join("..", "testkit", "testdata", "*.md"))
	if err != nil {
		return
	}
	for _, path := range files {
		// #nosec G304 -- path comes from repository testdata glob
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cases, err := testkit.ExtractCases(data)
		if err != nil {
			f.Fatalf("%s: %v", path, err)
		}
		for _, c := range cases {
			f.Add(clampSeed([]byte(c.Source)))
		}
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
