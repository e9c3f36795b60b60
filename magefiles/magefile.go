//go:build mage

// Package main contains Mage build targets for pdf-extractor developer tooling.
package main

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "pdf-extractor"
	cmdPkg  = "./cmd/pdf-extractor"

	schemaFile = "funding_details.json"
)

// sampleSchema describes the details of a funding call.
const sampleSchema = `[
  {
    "name": "Funder",
    "description": "Organisation offering the funding"
  },
  {
    "name": "Amount",
    "description": "Funding amount available per award, with currency"
  },
  {
    "name": "Deadline",
    "description": "Submission deadline",
    "children": [
      {"name": "Date", "description": "Closing date (YYYY-MM-DD)"},
      {"name": "Time", "description": "Closing time and time zone"}
    ]
  },
  {
    "name": "Eligibility",
    "description": "Who may apply",
    "children": [
      {"name": "Applicants", "description": "Eligible applicant types"},
      {"name": "Regions", "description": "Eligible countries or regions"}
    ]
  },
  {
    "name": "Documents",
    "description": "List of documents required with the application"
  }
]
`

// Init writes a sample funding_details.json schema unless one already exists.
func Init() error {
	if _, err := os.Stat(schemaFile); err == nil {
		fmt.Printf("%s already exists, leaving it alone.\n", schemaFile)
		return nil
	}
	if err := os.WriteFile(schemaFile, []byte(sampleSchema), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", schemaFile, err)
	}
	fmt.Printf("Wrote sample schema %s\n", schemaFile)
	return nil
}

// Build compiles the CLI binary into bin/, stamping the version from git.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	version, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil {
		version = "dev"
	}
	out := filepath.Join(binDir, binName)
	ldflags := "-X main.version=" + version
	if err := sh.RunV("go", "build", "-ldflags", ldflags, "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s (%s)\n", out, version)
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Lint runs go vet, then the tests.
func Lint() error {
	if err := sh.RunV("go", "vet", "./..."); err != nil {
		return fmt.Errorf("go vet: %w", err)
	}
	mg.Deps(Test)
	return nil
}

// Stats prints project metrics: Go production/test LOC and documentation word count.
func Stats() error {
	prodLines, testLines, err := countGoLines(".")
	if err != nil {
		return err
	}
	docWords, err := countDocWords(".")
	if err != nil {
		return err
	}

	fmt.Printf("Lines of code (Go, production): %d\n", prodLines)
	fmt.Printf("Lines of code (Go, tests):      %d\n", testLines)
	fmt.Printf("Words (documentation):          %d\n", docWords)
	return nil
}

// countGoLines counts non-blank lines in Go files under root, split into
// production and test code. Directories starting with _ or . are skipped.
func countGoLines(root string) (prod, test int, err error) {
	err = walkFiles(root, func(path string, data []byte) {
		if filepath.Ext(path) != ".go" {
			return
		}
		n := 0
		sc := bufio.NewScanner(bytes.NewReader(data))
		for sc.Scan() {
			if strings.TrimSpace(sc.Text()) != "" {
				n++
			}
		}
		if strings.HasSuffix(path, "_test.go") {
			test += n
		} else {
			prod += n
		}
	})
	return prod, test, err
}

// countDocWords counts words in the Markdown files under root.
func countDocWords(root string) (int, error) {
	total := 0
	err := walkFiles(root, func(path string, data []byte) {
		if filepath.Ext(path) == ".md" {
			total += len(strings.Fields(string(data)))
		}
	})
	return total, err
}

func walkFiles(root string, fn func(path string, data []byte)) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		fn(path, data)
		return nil
	})
}
