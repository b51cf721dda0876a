package docs

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestTopics(t *testing.T) {
	// This test ensures that the documentation is in sync with itself:
	// 1. Every topic listed in readme.md can be loaded with GetTopic.
	// 2. Every .md file (excluding readme.md) is listed in readme.md.

	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topicsInReadme []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)

	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			topicsInReadme = append(topicsInReadme, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}

	for _, topic := range topicsInReadme {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatalf("failed to glob *.md: %v", err)
	}
	for _, f := range files {
		base := strings.TrimSuffix(filepath.Base(f), ".md")
		if base == "readme" {
			continue
		}
		if !slices.Contains(topicsInReadme, base) {
			t.Errorf("topic %q is not listed in readme.md", base)
		}
	}
}

func TestGetAllTopics(t *testing.T) {
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	if slices.Contains(topics, "readme") {
		t.Errorf("readme must not be listed as a topic")
	}
	if !slices.IsSorted(topics) {
		t.Errorf("topics are not sorted: %v", topics)
	}
	if _, err := GetTopics(topics...); err != nil {
		t.Errorf("could not load all topics: %v", err)
	}
}

func TestCodeBlocksHaveLanguage(t *testing.T) {
	// Fenced code blocks in the documentation must carry a language tag so
	// the terminal renderer highlights them.
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	files = append(files, "../README.md")

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			content, err := os.ReadFile(file)
			if err != nil {
				t.Fatalf("failed to read %s: %v", file, err)
			}
			root := goldmark.DefaultParser().Parse(text.NewReader(content))
			ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
				if !entering {
					return ast.WalkContinue, nil
				}
				if fcb, ok := n.(*ast.FencedCodeBlock); ok {
					if fcb.Info == nil || len(fcb.Info.Segment.Value(content)) == 0 {
						t.Errorf("%s: fenced code block without a language tag", file)
					}
				}
				return ast.WalkContinue, nil
			})
		})
	}
}
